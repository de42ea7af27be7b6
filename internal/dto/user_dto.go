package dto

type CreateUserRequest struct {
	OpenID         string  `json:"openid" validate:"required"`
	Name           *string `json:"name"`
	AvatarURL      *string `json:"avatar_url"`
	ProfileContent *string `json:"profile_content"`
}

type UpdateProfileRequest struct {
	ProfileContent string `json:"profile_content" validate:"required"`
}
