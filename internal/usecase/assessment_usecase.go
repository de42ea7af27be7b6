package usecase

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/offerpath/interview-prep/internal/model"
	"github.com/offerpath/interview-prep/internal/repository"
)

// SessionView is the assessment-facing projection of a session.
type SessionView struct {
	SessionID      uuid.UUID      `json:"session_id"`
	OpportunityID  uuid.UUID      `json:"opportunity_id"`
	StartedAt      time.Time      `json:"session_date"`
	Status         string         `json:"status"`
	OverallScore   *int           `json:"overall_score"`
	ReportSummary  string         `json:"report_summary"`
	RadarChartData map[string]int `json:"radar_chart_data"`
}

// AssessmentPair is the latest-vs-previous delta view across all of a user's
// sessions. Either side is null when there is nothing to show.
type AssessmentPair struct {
	Latest   *SessionView `json:"latest_assessment"`
	Previous *SessionView `json:"previous_assessment"`
}

// AssessmentUsecase aggregates interview sessions across all of a user's
// opportunities.
type AssessmentUsecase struct {
	userRepo    repository.UserRepositoryInterface
	oppRepo     repository.OpportunityRepositoryInterface
	sessionRepo repository.SessionRepositoryInterface
}

func NewAssessmentUsecase(userRepo repository.UserRepositoryInterface, oppRepo repository.OpportunityRepositoryInterface, sessionRepo repository.SessionRepositoryInterface) *AssessmentUsecase {
	return &AssessmentUsecase{userRepo: userRepo, oppRepo: oppRepo, sessionRepo: sessionRepo}
}

// LatestAndPrevious returns the user's two most recent sessions across all
// opportunities. A user with no opportunities or no sessions gets both sides
// null.
func (uc *AssessmentUsecase) LatestAndPrevious(openid string) (*AssessmentPair, error) {
	user, err := uc.userRepo.FindByOpenID(openid)
	if err != nil {
		return nil, err
	}

	opps, err := uc.oppRepo.FindByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	if len(opps) == 0 {
		return &AssessmentPair{}, nil
	}

	ids := make([]uuid.UUID, len(opps))
	for i, opp := range opps {
		ids[i] = opp.ID
	}
	sessions, err := uc.sessionRepo.FindByOpportunityIDs(ids)
	if err != nil {
		return nil, err
	}

	latest, previous := pickLatestAndPrevious(sessions)
	pair := &AssessmentPair{}
	if pair.Latest, err = sessionView(latest); err != nil {
		return nil, err
	}
	if pair.Previous, err = sessionView(previous); err != nil {
		return nil, err
	}
	return pair, nil
}

// pickLatestAndPrevious orders sessions by start time descending, ties broken
// by id descending, and returns the first two.
func pickLatestAndPrevious(sessions []model.InterviewSession) (latest, previous *model.InterviewSession) {
	if len(sessions) == 0 {
		return nil, nil
	}
	sorted := make([]model.InterviewSession, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].StartedAt.Equal(sorted[j].StartedAt) {
			return sorted[i].StartedAt.After(sorted[j].StartedAt)
		}
		return sorted[i].ID.String() > sorted[j].ID.String()
	})
	latest = &sorted[0]
	if len(sorted) > 1 {
		previous = &sorted[1]
	}
	return latest, previous
}

func sessionView(session *model.InterviewSession) (*SessionView, error) {
	if session == nil {
		return nil, nil
	}
	chart, err := session.RadarChart()
	if err != nil {
		return nil, err
	}
	return &SessionView{
		SessionID:      session.ID,
		OpportunityID:  session.OpportunityID,
		StartedAt:      session.StartedAt,
		Status:         session.Status,
		OverallScore:   session.OverallScore,
		ReportSummary:  session.ReportSummary,
		RadarChartData: chart,
	}, nil
}
