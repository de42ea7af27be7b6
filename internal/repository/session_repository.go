package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/offerpath/interview-prep/internal/apperror"
	"github.com/offerpath/interview-prep/internal/model"
)

type SessionRepositoryInterface interface {
	// CreateWithAnswers inserts the session row and its answer rows as one
	// transaction, so a partial answer set can never be observed.
	CreateWithAnswers(session *model.InterviewSession) error
	Save(session *model.InterviewSession) error
	SaveAnswer(answer *model.SessionAnswer) error
	FindByID(id uuid.UUID) (*model.InterviewSession, error)
	FindByOpportunityID(opportunityID uuid.UUID) ([]model.InterviewSession, error)
	LatestByOpportunityID(opportunityID uuid.UUID) (*model.InterviewSession, error)
	FindByOpportunityIDs(opportunityIDs []uuid.UUID) ([]model.InterviewSession, error)
}

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db}
}

func (r *SessionRepository) CreateWithAnswers(session *model.InterviewSession) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		answers := session.SessionAnswers
		session.SessionAnswers = nil
		if err := tx.Create(session).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].SessionID = session.ID
		}
		if len(answers) > 0 {
			if err := tx.Create(&answers).Error; err != nil {
				return err
			}
		}
		session.SessionAnswers = answers
		return nil
	})
}

func (r *SessionRepository) Save(session *model.InterviewSession) error {
	return r.db.Omit("SessionAnswers").Save(session).Error
}

func (r *SessionRepository) SaveAnswer(answer *model.SessionAnswer) error {
	return r.db.Save(answer).Error
}

func (r *SessionRepository) FindByID(id uuid.UUID) (*model.InterviewSession, error) {
	var session model.InterviewSession
	err := r.db.Preload("SessionAnswers", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("interview session %s not found", id)
	}
	return &session, err
}

func (r *SessionRepository) FindByOpportunityID(opportunityID uuid.UUID) ([]model.InterviewSession, error) {
	var sessions []model.InterviewSession
	err := r.db.Preload("SessionAnswers", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Where("opportunity_id = ?", opportunityID).
		Order("started_at DESC, id DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepository) LatestByOpportunityID(opportunityID uuid.UUID) (*model.InterviewSession, error) {
	var session model.InterviewSession
	err := r.db.Preload("SessionAnswers", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Where("opportunity_id = ?", opportunityID).
		Order("started_at DESC, id DESC").
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("no interview sessions for opportunity %s", opportunityID)
	}
	return &session, err
}

func (r *SessionRepository) FindByOpportunityIDs(opportunityIDs []uuid.UUID) ([]model.InterviewSession, error) {
	if len(opportunityIDs) == 0 {
		return nil, nil
	}
	var sessions []model.InterviewSession
	err := r.db.Where("opportunity_id IN ?", opportunityIDs).
		Order("started_at DESC, id DESC").
		Find(&sessions).Error
	return sessions, err
}
