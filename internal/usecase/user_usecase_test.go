package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerpath/interview-prep/internal/apperror"
	"github.com/offerpath/interview-prep/internal/model"
)

func strPtr(s string) *string { return &s }

func TestCreateOrUpdateCreatesWithDefaults(t *testing.T) {
	uc := NewUserUsecase(&fakeUserRepo{})

	user, created, err := uc.CreateOrUpdate("wx-123", nil, nil, nil)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "wx-123", user.OpenID)
	assert.Equal(t, defaultUserName, user.Name)
	assert.Equal(t, defaultUserAvatar, user.AvatarURL)
	assert.Empty(t, user.ProfileContent)
}

func TestCreateOrUpdateUpdatesOnlyProvidedFields(t *testing.T) {
	repo := &fakeUserRepo{}
	repo.users = append(repo.users, model.User{
		ID:             uuid.New(),
		OpenID:         "wx-123",
		Name:           "Ada",
		AvatarURL:      "https://example.com/a.png",
		ProfileContent: "profile",
	})
	uc := NewUserUsecase(repo)

	user, created, err := uc.CreateOrUpdate("wx-123", strPtr("Ada L."), nil, nil)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Ada L.", user.Name)
	assert.Equal(t, "https://example.com/a.png", user.AvatarURL)
	assert.Equal(t, "profile", user.ProfileContent)
}

func TestCreateOrUpdateRequiresOpenID(t *testing.T) {
	uc := NewUserUsecase(&fakeUserRepo{})

	_, _, err := uc.CreateOrUpdate("  ", nil, nil, nil)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindInvalidInput))
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	uc := NewUserUsecase(&fakeUserRepo{})

	_, err := uc.UpdateProfile("nobody", "new profile")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestUpdateProfileReplacesContent(t *testing.T) {
	repo := &fakeUserRepo{}
	repo.users = append(repo.users, model.User{ID: uuid.New(), OpenID: "wx-123", ProfileContent: "old"})
	uc := NewUserUsecase(repo)

	user, err := uc.UpdateProfile("wx-123", "new profile")
	require.NoError(t, err)
	assert.Equal(t, "new profile", user.ProfileContent)

	stored, err := repo.FindByOpenID("wx-123")
	require.NoError(t, err)
	assert.Equal(t, "new profile", stored.ProfileContent)
}
