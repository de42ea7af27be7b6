package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("user %s not found", "x"), fiber.StatusNotFound},
		{"invalid input", InvalidInput("openid is required"), fiber.StatusBadRequest},
		{"generation failed", GenerationFailed(errors.New("timeout"), "question generation failed"), fiber.StatusBadGateway},
		{"render failed", RenderFailed(errors.New("chrome crashed"), "pdf render failed"), fiber.StatusInternalServerError},
		{"plain error", errors.New("boom"), fiber.StatusInternalServerError},
		{"wrapped", fmt.Errorf("outer: %w", NotFound("gone")), fiber.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestIsMatchesKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("context: %w", InvalidInput("bad"))
	assert.True(t, Is(err, KindInvalidInput))
	assert.False(t, Is(err, KindNotFound))
	assert.False(t, Is(errors.New("plain"), KindNotFound))
}

func TestMessageStripsWrappedCause(t *testing.T) {
	err := GenerationFailed(errors.New("status 500"), "question generation failed")
	assert.Equal(t, "question generation failed", Message(err))
	assert.Contains(t, err.Error(), "status 500")

	assert.Equal(t, "plain", Message(errors.New("plain")))
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("timeout")
	err := GenerationFailed(cause, "failed")
	assert.ErrorIs(t, err, cause)
}
