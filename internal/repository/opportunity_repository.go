package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/offerpath/interview-prep/internal/apperror"
	"github.com/offerpath/interview-prep/internal/model"
)

type OpportunityRepositoryInterface interface {
	Create(opp *model.Opportunity) error
	Save(opp *model.Opportunity) error
	FindByID(id uuid.UUID) (*model.Opportunity, error)
	FindByUserID(userID uuid.UUID) ([]model.Opportunity, error)
	PageByUserID(userID uuid.UUID, page, pageSize int) ([]model.Opportunity, int64, error)
	Delete(opp *model.Opportunity) error
	NearestByEmbedding(userID, excludeID uuid.UUID, embedding pgvector.Vector, topK int) ([]model.Opportunity, error)
}

type OpportunityRepository struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) *OpportunityRepository {
	return &OpportunityRepository{db}
}

func (r *OpportunityRepository) Create(opp *model.Opportunity) error {
	return r.db.Create(opp).Error
}

func (r *OpportunityRepository) Save(opp *model.Opportunity) error {
	return r.db.Save(opp).Error
}

func (r *OpportunityRepository) FindByID(id uuid.UUID) (*model.Opportunity, error) {
	var opp model.Opportunity
	err := r.db.First(&opp, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("opportunity %s not found", id)
	}
	return &opp, err
}

func (r *OpportunityRepository) FindByUserID(userID uuid.UUID) ([]model.Opportunity, error) {
	var opps []model.Opportunity
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&opps).Error
	return opps, err
}

func (r *OpportunityRepository) PageByUserID(userID uuid.UUID, page, pageSize int) ([]model.Opportunity, int64, error) {
	var total int64
	if err := r.db.Model(&model.Opportunity{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var opps []model.Opportunity
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&opps).Error
	return opps, total, err
}

// Delete removes the opportunity together with its sessions and their answers.
func (r *OpportunityRepository) Delete(opp *model.Opportunity) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&model.InterviewSession{}).Select("id").Where("opportunity_id = ?", opp.ID)
		if err := tx.Where("session_id IN (?)", sub).Delete(&model.SessionAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("opportunity_id = ?", opp.ID).Delete(&model.InterviewSession{}).Error; err != nil {
			return err
		}
		return tx.Delete(opp).Error
	})
}

// NearestByEmbedding returns the user's other opportunities ordered by JD
// embedding distance, nearest first. Rows without an embedding are skipped.
func (r *OpportunityRepository) NearestByEmbedding(userID, excludeID uuid.UUID, embedding pgvector.Vector, topK int) ([]model.Opportunity, error) {
	var opps []model.Opportunity
	err := r.db.Raw(`
        SELECT *
        FROM opportunities
        WHERE user_id = ? AND id <> ? AND jd_embedding IS NOT NULL
        ORDER BY jd_embedding <-> ?
        LIMIT ?
    `, userID, excludeID, embedding, topK).Scan(&opps).Error
	return opps, err
}
