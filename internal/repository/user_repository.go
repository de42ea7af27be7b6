package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/offerpath/interview-prep/internal/apperror"
	"github.com/offerpath/interview-prep/internal/model"
)

type UserRepositoryInterface interface {
	FindByOpenID(openid string) (*model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
	Save(user *model.User) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) FindByOpenID(openid string) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, "open_id = ?", openid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("user %s not found", openid)
	}
	return &user, err
}

func (r *UserRepository) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("user %s not found", id)
	}
	return &user, err
}

func (r *UserRepository) Save(user *model.User) error {
	return r.db.Save(user).Error
}
