package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerpath/interview-prep/internal/apperror"
	"github.com/offerpath/interview-prep/internal/model"
)

func newContentFixture() (*ContentUsecase, *fakeUserRepo, *fakeOppRepo, *fakeGenerator, *model.Opportunity) {
	userRepo := &fakeUserRepo{}
	oppRepo := &fakeOppRepo{}
	gen := &fakeGenerator{questions: testQuestions, resume: "# Resume", feedback: "Good answer."}
	opp := seedUserAndOpportunity(userRepo, oppRepo)
	return NewContentUsecase(userRepo, oppRepo, gen), userRepo, oppRepo, gen, opp
}

func TestGetOrGenerateQuestionsGeneratesOnce(t *testing.T) {
	uc, _, oppRepo, gen, opp := newContentFixture()
	ctx := context.Background()

	first, err := uc.GetOrGenerateQuestions(ctx, opp.ID)
	require.NoError(t, err)
	assert.Equal(t, testQuestions, first)
	assert.Equal(t, 1, gen.questionCalls)

	// the set is now cached on the row
	stored, err := oppRepo.FindByID(opp.ID)
	require.NoError(t, err)
	cached, err := stored.QuestionSet()
	require.NoError(t, err)
	assert.Equal(t, testQuestions, cached)

	second, err := uc.GetOrGenerateQuestions(ctx, opp.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, gen.questionCalls, "cached set must not trigger another generation")
}

func TestGetOrGenerateQuestionsCorruptCacheRegenerates(t *testing.T) {
	uc, _, oppRepo, gen, opp := newContentFixture()

	opp.GeneratedQAJSON = "{not valid json"
	require.NoError(t, oppRepo.Save(opp))

	qs, err := uc.GetOrGenerateQuestions(context.Background(), opp.ID)
	require.NoError(t, err)
	assert.Equal(t, testQuestions, qs)
	assert.Equal(t, 1, gen.questionCalls)
}

func TestGetOrGenerateQuestionsUnknownOpportunity(t *testing.T) {
	uc, _, _, gen, _ := newContentFixture()

	_, err := uc.GetOrGenerateQuestions(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.Zero(t, gen.questionCalls)
}

func TestRegenerateQuestionsAlwaysCallsGenerator(t *testing.T) {
	uc, _, _, gen, opp := newContentFixture()
	ctx := context.Background()

	_, err := uc.RegenerateQuestions(ctx, opp.ID)
	require.NoError(t, err)
	_, err = uc.RegenerateQuestions(ctx, opp.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, gen.questionCalls)
}

func TestRegenerateFailurePreservesCache(t *testing.T) {
	uc, _, oppRepo, gen, opp := newContentFixture()
	ctx := context.Background()

	_, err := uc.GetOrGenerateQuestions(ctx, opp.ID)
	require.NoError(t, err)

	gen.questionErr = errors.New("model unavailable")
	_, err = uc.RegenerateQuestions(ctx, opp.ID)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindGenerationFailed))

	stored, err := oppRepo.FindByID(opp.ID)
	require.NoError(t, err)
	cached, err := stored.QuestionSet()
	require.NoError(t, err)
	assert.Equal(t, testQuestions, cached, "failed regeneration must keep the previous cache")
}

func TestRegenerateEmptySetFails(t *testing.T) {
	uc, _, _, gen, opp := newContentFixture()
	gen.questions = nil

	_, err := uc.RegenerateQuestions(context.Background(), opp.ID)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindGenerationFailed))
}

func TestSetQuestionsBypassesGenerator(t *testing.T) {
	uc, _, _, gen, opp := newContentFixture()
	ctx := context.Background()

	manual := model.QuestionSet{{Question: "Custom question?", SuggestedAnswer: "Custom answer."}}
	require.NoError(t, uc.SetQuestions(ctx, opp.ID, manual))

	qs, err := uc.GetOrGenerateQuestions(ctx, opp.ID)
	require.NoError(t, err)
	assert.Equal(t, manual, qs)
	assert.Zero(t, gen.questionCalls)
}

func TestGenerateResumeCachesResult(t *testing.T) {
	uc, _, oppRepo, gen, opp := newContentFixture()
	gen.resume = "# Ada\n\nBackend Engineer"

	resume, err := uc.GenerateResume(context.Background(), opp.ID, "Go, Postgres")
	require.NoError(t, err)
	assert.Equal(t, gen.resume, resume)

	stored, err := oppRepo.FindByID(opp.ID)
	require.NoError(t, err)
	assert.Equal(t, gen.resume, stored.GeneratedResumeMD)
}

func TestGenerateResumeFailurePreservesCache(t *testing.T) {
	uc, _, oppRepo, gen, opp := newContentFixture()
	ctx := context.Background()

	require.NoError(t, uc.SetResume(ctx, opp.ID, "# Existing"))

	gen.resumeErr = errors.New("model unavailable")
	_, err := uc.GenerateResume(ctx, opp.ID, "")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindGenerationFailed))

	stored, err := oppRepo.FindByID(opp.ID)
	require.NoError(t, err)
	assert.Equal(t, "# Existing", stored.GeneratedResumeMD)
}

func TestSimilarOpportunitiesRefreshesEmbeddingLazily(t *testing.T) {
	uc, _, oppRepo, gen, opp := newContentFixture()
	gen.embedding = make([]float32, 8)

	_, err := uc.SimilarOpportunities(context.Background(), opp.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, gen.embeddingCalls)

	stored, err := oppRepo.FindByID(opp.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.JDEmbedding)
}
