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

func oppWithStatus(userID uuid.UUID, status string, createdAt time.Time) model.Opportunity {
	return model.Opportunity{
		ID:           uuid.New(),
		UserID:       userID,
		PositionName: "Engineer",
		CompanyName:  "Acme",
		Status:       status,
		CreatedAt:    createdAt,
	}
}

func TestSuggestionsUnknownUser(t *testing.T) {
	uc := NewSuggestionUsecase(&fakeUserRepo{}, &fakeOppRepo{})

	_, err := uc.Suggestions("nobody")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestSuggestionsEmptyWhenNoActionableStatus(t *testing.T) {
	suggestions := buildSuggestions([]model.Opportunity{
		oppWithStatus(uuid.New(), "offered", time.Now()),
		oppWithStatus(uuid.New(), "closed", time.Now()),
		oppWithStatus(uuid.New(), "", time.Now()),
	})
	assert.Empty(t, suggestions)
}

func TestSuggestionsGroupCountsAndOrder(t *testing.T) {
	userID := uuid.New()
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	firstInterviewing := oppWithStatus(userID, "interviewing", base)
	opps := []model.Opportunity{
		firstInterviewing,
		oppWithStatus(userID, "offered", base.Add(time.Hour)),
		oppWithStatus(userID, "submitted", base.Add(2*time.Hour)),
		oppWithStatus(userID, "interviewing", base.Add(3*time.Hour)),
		oppWithStatus(userID, "pending", base.Add(4*time.Hour)),
	}

	suggestions := buildSuggestions(opps)
	require.Len(t, suggestions, 3)

	assert.Equal(t, "interviewing", suggestions[0].Type)
	assert.Equal(t, "pending", suggestions[1].Type)
	assert.Equal(t, "submitted", suggestions[2].Type)

	assert.Equal(t, "practiceInterview", suggestions[0].Action)
	assert.Equal(t, "🎙️", suggestions[0].Icon)
	assert.Contains(t, suggestions[0].Text, "2 opportunities")
	assert.Equal(t, firstInterviewing.ID, suggestions[0].OpportunityID,
		"the suggestion must reference the earliest-created opportunity of its group")

	assert.Contains(t, suggestions[1].Text, "1 opportunity")
	assert.Equal(t, "generateResume", suggestions[1].Action)
	assert.Equal(t, "predictQuestions", suggestions[2].Action)
}

func TestSuggestionsThroughRepositories(t *testing.T) {
	userRepo := &fakeUserRepo{}
	oppRepo := &fakeOppRepo{}
	opp := seedUserAndOpportunity(userRepo, oppRepo) // status "pending"
	uc := NewSuggestionUsecase(userRepo, oppRepo)

	suggestions, err := uc.Suggestions("openid-1")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "pending", suggestions[0].Type)
	assert.Equal(t, opp.ID, suggestions[0].OpportunityID)
}
