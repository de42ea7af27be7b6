package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OpenID         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"openid"`
	Name           string    `gorm:"type:varchar(255)" json:"name"`
	AvatarURL      string    `gorm:"type:varchar(512)" json:"avatar_url"`
	ProfileContent string    `gorm:"type:text" json:"profile_content"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}
