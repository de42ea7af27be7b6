package usecase

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/offerpath/interview-prep/internal/apperror"
	"github.com/offerpath/interview-prep/internal/model"
	"github.com/offerpath/interview-prep/internal/repository"
)

const defaultOpportunityStatus = "pending"

// OpportunityPatch carries a partial update; nil fields are left untouched.
type OpportunityPatch struct {
	PositionName   *string
	CompanyName    *string
	JobDescription *string
	Source         *string
	Status         *string
	LatestProgress *string
}

type OpportunityUsecase struct {
	userRepo repository.UserRepositoryInterface
	oppRepo  repository.OpportunityRepositoryInterface
	content  *ContentUsecase
}

func NewOpportunityUsecase(userRepo repository.UserRepositoryInterface, oppRepo repository.OpportunityRepositoryInterface, content *ContentUsecase) *OpportunityUsecase {
	return &OpportunityUsecase{userRepo: userRepo, oppRepo: oppRepo, content: content}
}

func (uc *OpportunityUsecase) Create(ctx context.Context, userOpenID, positionName, companyName, jobDescription, source, status, latestProgress string) (*model.Opportunity, error) {
	if userOpenID == "" || positionName == "" || companyName == "" {
		return nil, apperror.InvalidInput("user openid, position name and company name are required")
	}
	user, err := uc.userRepo.FindByOpenID(userOpenID)
	if err != nil {
		return nil, err
	}
	if status == "" {
		status = defaultOpportunityStatus
	}
	opp := &model.Opportunity{
		ID:             uuid.New(),
		UserID:         user.ID,
		PositionName:   positionName,
		CompanyName:    companyName,
		JobDescription: jobDescription,
		Source:         source,
		Status:         status,
		LatestProgress: latestProgress,
	}
	if err := uc.oppRepo.Create(opp); err != nil {
		return nil, err
	}
	uc.refreshEmbeddingAsync(opp.ID)
	return opp, nil
}

func (uc *OpportunityUsecase) ListByUser(openid string, page, pageSize int) ([]model.Opportunity, int64, error) {
	user, err := uc.userRepo.FindByOpenID(openid)
	if err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return uc.oppRepo.PageByUserID(user.ID, page, pageSize)
}

func (uc *OpportunityUsecase) Get(id uuid.UUID) (*model.Opportunity, error) {
	return uc.oppRepo.FindByID(id)
}

func (uc *OpportunityUsecase) Update(ctx context.Context, id uuid.UUID, patch OpportunityPatch) (*model.Opportunity, error) {
	opp, err := uc.oppRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	jdChanged := false
	if patch.PositionName != nil {
		opp.PositionName = *patch.PositionName
	}
	if patch.CompanyName != nil {
		opp.CompanyName = *patch.CompanyName
	}
	if patch.JobDescription != nil && *patch.JobDescription != opp.JobDescription {
		opp.JobDescription = *patch.JobDescription
		opp.JDEmbedding = nil
		jdChanged = true
	}
	if patch.Source != nil {
		opp.Source = *patch.Source
	}
	if patch.Status != nil {
		opp.Status = *patch.Status
	}
	if patch.LatestProgress != nil {
		opp.LatestProgress = *patch.LatestProgress
	}
	if err := uc.oppRepo.Save(opp); err != nil {
		return nil, err
	}
	if jdChanged {
		uc.refreshEmbeddingAsync(opp.ID)
	}
	return opp, nil
}

func (uc *OpportunityUsecase) Delete(id uuid.UUID) error {
	opp, err := uc.oppRepo.FindByID(id)
	if err != nil {
		return err
	}
	return uc.oppRepo.Delete(opp)
}

// refreshEmbeddingAsync recomputes the JD embedding off the request path.
// Embeddings only power the similarity view, so failures are logged and
// dropped.
func (uc *OpportunityUsecase) refreshEmbeddingAsync(id uuid.UUID) {
	go func() {
		opp, err := uc.oppRepo.FindByID(id)
		if err != nil {
			return
		}
		if err := uc.content.RefreshEmbedding(context.Background(), opp); err != nil {
			log.Printf("jd embedding refresh for opportunity %s failed: %v", id, err)
		}
	}()
}
