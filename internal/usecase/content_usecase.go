package usecase

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"github.com/offerpath/interview-prep/internal/apperror"
	"github.com/offerpath/interview-prep/internal/model"
	"github.com/offerpath/interview-prep/internal/repository"
	"github.com/offerpath/interview-prep/internal/service"
)

// ContentUsecase owns the generated-content cache on opportunities: question
// sets and tailored resumes are generated at most once and reused until the
// caller explicitly regenerates or manually overwrites them.
type ContentUsecase struct {
	userRepo  repository.UserRepositoryInterface
	oppRepo   repository.OpportunityRepositoryInterface
	generator service.ContentGeneratorInterface
}

func NewContentUsecase(userRepo repository.UserRepositoryInterface, oppRepo repository.OpportunityRepositoryInterface, generator service.ContentGeneratorInterface) *ContentUsecase {
	return &ContentUsecase{userRepo: userRepo, oppRepo: oppRepo, generator: generator}
}

// resolve loads the opportunity and its owning user. Generation prompts are
// built from the user's profile, so an unresolvable owner is an error.
func (uc *ContentUsecase) resolve(opportunityID uuid.UUID) (*model.Opportunity, *model.User, error) {
	opp, err := uc.oppRepo.FindByID(opportunityID)
	if err != nil {
		return nil, nil, err
	}
	user, err := uc.userRepo.FindByID(opp.UserID)
	if err != nil {
		return nil, nil, err
	}
	return opp, user, nil
}

// GetOrGenerateQuestions returns the cached question set, generating and
// persisting one only when the cache is empty. A cache that fails to
// deserialize is treated as empty and regenerated.
func (uc *ContentUsecase) GetOrGenerateQuestions(ctx context.Context, opportunityID uuid.UUID) (model.QuestionSet, error) {
	opp, user, err := uc.resolve(opportunityID)
	if err != nil {
		return nil, err
	}

	qs, err := opp.QuestionSet()
	if err != nil {
		log.Printf("corrupt cached question set on opportunity %s, regenerating: %v", opp.ID, err)
	} else if len(qs) > 0 {
		return qs, nil
	}

	return uc.generateAndCacheQuestions(ctx, opp, user)
}

// RegenerateQuestions unconditionally invokes the generator and overwrites
// the cache. On failure the previous cached content is preserved.
func (uc *ContentUsecase) RegenerateQuestions(ctx context.Context, opportunityID uuid.UUID) (model.QuestionSet, error) {
	opp, user, err := uc.resolve(opportunityID)
	if err != nil {
		return nil, err
	}
	return uc.generateAndCacheQuestions(ctx, opp, user)
}

func (uc *ContentUsecase) generateAndCacheQuestions(ctx context.Context, opp *model.Opportunity, user *model.User) (model.QuestionSet, error) {
	qs, err := uc.generator.GenerateQuestions(ctx, user.ProfileContent, opp.JobDescription)
	if err != nil {
		return nil, apperror.GenerationFailed(err, "question generation failed")
	}
	if len(qs) == 0 {
		return nil, apperror.GenerationFailed(nil, "generator returned an empty question set")
	}
	if err := opp.SetQuestionSet(qs); err != nil {
		return nil, err
	}
	if err := uc.oppRepo.Save(opp); err != nil {
		return nil, err
	}
	return qs, nil
}

// GenerateResume produces a tailored resume and caches it on the opportunity.
func (uc *ContentUsecase) GenerateResume(ctx context.Context, opportunityID uuid.UUID, keywords string) (string, error) {
	opp, user, err := uc.resolve(opportunityID)
	if err != nil {
		return "", err
	}
	resume, err := uc.generator.GenerateResume(ctx, user.ProfileContent, opp.JobDescription, keywords)
	if err != nil {
		return "", apperror.GenerationFailed(err, "resume generation failed")
	}
	opp.GeneratedResumeMD = resume
	if err := uc.oppRepo.Save(opp); err != nil {
		return "", err
	}
	return resume, nil
}

// AnalyzeJD matches the owner's profile against the job description. The
// result is returned to the caller and not cached.
func (uc *ContentUsecase) AnalyzeJD(ctx context.Context, opportunityID uuid.UUID) (*service.JDAnalysis, error) {
	opp, user, err := uc.resolve(opportunityID)
	if err != nil {
		return nil, err
	}
	analysis, err := uc.generator.AnalyzeJD(ctx, user.ProfileContent, opp.JobDescription)
	if err != nil {
		return nil, apperror.GenerationFailed(err, "job description analysis failed")
	}
	return analysis, nil
}

// SetQuestions overwrites the cached question set with caller-supplied
// content. The generator is not involved.
func (uc *ContentUsecase) SetQuestions(ctx context.Context, opportunityID uuid.UUID, qs model.QuestionSet) error {
	opp, err := uc.oppRepo.FindByID(opportunityID)
	if err != nil {
		return err
	}
	if err := opp.SetQuestionSet(qs); err != nil {
		return err
	}
	return uc.oppRepo.Save(opp)
}

// SetResume overwrites the cached resume with caller-supplied markdown.
func (uc *ContentUsecase) SetResume(ctx context.Context, opportunityID uuid.UUID, resumeMD string) error {
	opp, err := uc.oppRepo.FindByID(opportunityID)
	if err != nil {
		return err
	}
	opp.GeneratedResumeMD = resumeMD
	return uc.oppRepo.Save(opp)
}

// RefreshEmbedding recomputes the JD embedding. Called best-effort after
// create/update; failures are logged by the caller, never fatal.
func (uc *ContentUsecase) RefreshEmbedding(ctx context.Context, opp *model.Opportunity) error {
	if opp.JobDescription == "" {
		return nil
	}
	values, err := uc.generator.GenerateEmbedding(ctx, opp.JobDescription)
	if err != nil {
		return err
	}
	vec := pgvector.NewVector(values)
	opp.JDEmbedding = &vec
	return uc.oppRepo.Save(opp)
}

// SimilarOpportunities returns the user's other opportunities nearest to this
// one by JD embedding distance.
func (uc *ContentUsecase) SimilarOpportunities(ctx context.Context, opportunityID uuid.UUID, topK int) ([]model.Opportunity, error) {
	opp, err := uc.oppRepo.FindByID(opportunityID)
	if err != nil {
		return nil, err
	}
	if opp.JDEmbedding == nil {
		if err := uc.RefreshEmbedding(ctx, opp); err != nil {
			return nil, apperror.GenerationFailed(err, "embedding generation failed")
		}
	}
	if opp.JDEmbedding == nil {
		return nil, apperror.InvalidInput("opportunity has no job description to compare")
	}
	return uc.oppRepo.NearestByEmbedding(opp.UserID, opp.ID, *opp.JDEmbedding, topK)
}
