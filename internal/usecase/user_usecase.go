package usecase

import (
	"strings"

	"github.com/offerpath/interview-prep/internal/apperror"
	"github.com/offerpath/interview-prep/internal/model"
	"github.com/offerpath/interview-prep/internal/repository"
	"github.com/offerpath/interview-prep/internal/util"
)

const (
	defaultUserName   = "New User"
	defaultUserAvatar = "https://via.placeholder.com/150"
)

type UserUsecase struct {
	userRepo repository.UserRepositoryInterface
}

func NewUserUsecase(userRepo repository.UserRepositoryInterface) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

// CreateOrUpdate upserts the user keyed by openid. Nil fields leave existing
// values untouched. The second return value reports whether a row was created.
func (uc *UserUsecase) CreateOrUpdate(openid string, name, avatarURL, profileContent *string) (*model.User, bool, error) {
	if strings.TrimSpace(openid) == "" {
		return nil, false, apperror.InvalidInput("openid is required")
	}

	user, err := uc.userRepo.FindByOpenID(openid)
	if err != nil && !apperror.Is(err, apperror.KindNotFound) {
		return nil, false, err
	}

	created := false
	if user == nil || apperror.Is(err, apperror.KindNotFound) {
		user = &model.User{
			OpenID:    openid,
			Name:      defaultUserName,
			AvatarURL: defaultUserAvatar,
		}
		created = true
	}
	if name != nil {
		user.Name = *name
	}
	if avatarURL != nil {
		user.AvatarURL = *avatarURL
	}
	if profileContent != nil {
		user.ProfileContent = *profileContent
	}
	if err := uc.userRepo.Save(user); err != nil {
		return nil, false, err
	}
	return user, created, nil
}

func (uc *UserUsecase) GetByOpenID(openid string) (*model.User, error) {
	return uc.userRepo.FindByOpenID(openid)
}

func (uc *UserUsecase) UpdateProfile(openid, profileContent string) (*model.User, error) {
	if profileContent == "" {
		return nil, apperror.InvalidInput("profile_content is required")
	}
	user, err := uc.userRepo.FindByOpenID(openid)
	if err != nil {
		return nil, err
	}
	user.ProfileContent = profileContent
	if err := uc.userRepo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ImportProfilePDF extracts the text of an uploaded resume PDF and stores it
// as the user's profile content.
func (uc *UserUsecase) ImportProfilePDF(openid, pdfPath string) (*model.User, error) {
	user, err := uc.userRepo.FindByOpenID(openid)
	if err != nil {
		return nil, err
	}
	content, err := util.ExtractPDFText(pdfPath)
	if err != nil {
		return nil, apperror.InvalidInput("could not extract text from PDF: %v", err)
	}
	user.ProfileContent = content
	if err := uc.userRepo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}
