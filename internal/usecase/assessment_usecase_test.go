package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerpath/interview-prep/internal/apperror"
	"github.com/offerpath/interview-prep/internal/model"
)

func intPtr(v int) *int { return &v }

func finishedSession(oppID uuid.UUID, startedAt time.Time, score int) model.InterviewSession {
	s := model.InterviewSession{
		ID:            uuid.New(),
		OpportunityID: oppID,
		Status:        model.SessionStatusFinished,
		StartedAt:     startedAt,
		OverallScore:  intPtr(score),
		ReportSummary: "summary",
	}
	_ = s.SetRadarChart(map[string]int{"communication": score})
	return s
}

func newAssessmentFixture() (*AssessmentUsecase, *fakeUserRepo, *fakeOppRepo, *fakeSessionRepo) {
	userRepo := &fakeUserRepo{}
	oppRepo := &fakeOppRepo{}
	sessionRepo := &fakeSessionRepo{}
	return NewAssessmentUsecase(userRepo, oppRepo, sessionRepo), userRepo, oppRepo, sessionRepo
}

func TestLatestAndPreviousUnknownUser(t *testing.T) {
	uc, _, _, _ := newAssessmentFixture()

	_, err := uc.LatestAndPrevious("nobody")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestLatestAndPreviousNoOpportunities(t *testing.T) {
	uc, userRepo, _, _ := newAssessmentFixture()
	userRepo.users = append(userRepo.users, model.User{ID: uuid.New(), OpenID: "openid-1"})

	pair, err := uc.LatestAndPrevious("openid-1")
	require.NoError(t, err)
	assert.Nil(t, pair.Latest)
	assert.Nil(t, pair.Previous)
}

func TestLatestAndPreviousNoSessions(t *testing.T) {
	uc, userRepo, oppRepo, _ := newAssessmentFixture()
	seedUserAndOpportunity(userRepo, oppRepo)

	pair, err := uc.LatestAndPrevious("openid-1")
	require.NoError(t, err)
	assert.Nil(t, pair.Latest)
	assert.Nil(t, pair.Previous)
}

func TestLatestAndPreviousSingleSession(t *testing.T) {
	uc, userRepo, oppRepo, sessionRepo := newAssessmentFixture()
	opp := seedUserAndOpportunity(userRepo, oppRepo)
	sessionRepo.sessions = append(sessionRepo.sessions, finishedSession(opp.ID, time.Now(), 80))

	pair, err := uc.LatestAndPrevious("openid-1")
	require.NoError(t, err)
	require.NotNil(t, pair.Latest)
	assert.Nil(t, pair.Previous)
	assert.Equal(t, 80, *pair.Latest.OverallScore)
	assert.Equal(t, map[string]int{"communication": 80}, pair.Latest.RadarChartData)
}

func TestLatestAndPreviousAcrossOpportunities(t *testing.T) {
	uc, userRepo, oppRepo, sessionRepo := newAssessmentFixture()
	opp := seedUserAndOpportunity(userRepo, oppRepo)
	other := model.Opportunity{
		ID:           uuid.New(),
		UserID:       opp.UserID,
		PositionName: "Platform Engineer",
		CompanyName:  "Globex",
		Status:       "interviewing",
		CreatedAt:    time.Now(),
	}
	oppRepo.opps = append(oppRepo.opps, other)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	oldest := finishedSession(opp.ID, base, 70)
	middle := finishedSession(other.ID, base.Add(24*time.Hour), 75)
	newest := finishedSession(opp.ID, base.Add(48*time.Hour), 88)
	sessionRepo.sessions = append(sessionRepo.sessions, oldest, middle, newest)

	pair, err := uc.LatestAndPrevious("openid-1")
	require.NoError(t, err)
	require.NotNil(t, pair.Latest)
	require.NotNil(t, pair.Previous)
	assert.Equal(t, newest.ID, pair.Latest.SessionID)
	assert.Equal(t, middle.ID, pair.Previous.SessionID)
}

func TestPickLatestAndPreviousTieBreaksByID(t *testing.T) {
	oppID := uuid.New()
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	a := finishedSession(oppID, at, 70)
	b := finishedSession(oppID, at, 75)

	latest, previous := pickLatestAndPrevious([]model.InterviewSession{a, b})
	require.NotNil(t, latest)
	require.NotNil(t, previous)
	assert.Greater(t, latest.ID.String(), previous.ID.String())

	// order of the input slice must not matter
	latest2, previous2 := pickLatestAndPrevious([]model.InterviewSession{b, a})
	assert.Equal(t, latest.ID, latest2.ID)
	assert.Equal(t, previous.ID, previous2.ID)
}
