package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/offerpath/interview-prep/internal/apperror"
	"github.com/offerpath/interview-prep/internal/util"
)

var validate = validator.New()

// parseBody decodes and validates a JSON request body. On failure it writes
// the error response itself, so callers just return the error.
func parseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := validate.Struct(dst); err != nil {
		fields := map[string]string{}
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, ve := range verrs {
				fields[ve.Field()] = ve.Tag()
			}
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "validation failed",
		}, util.NewFormError("validation failed", fields))
	}
	return nil
}

// paramUUID reads a UUID path parameter. On failure it writes the error
// response itself.
func paramUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: name + " must be a valid uuid",
		}, err)
	}
	return id, nil
}

// respondError maps a usecase error onto the standard error envelope.
func respondError(c *fiber.Ctx, err error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    apperror.HTTPStatus(err),
		Message: apperror.Message(err),
	}, err)
}
