package handler

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/offerpath/interview-prep/internal/config"
	"github.com/offerpath/interview-prep/internal/dto"
	"github.com/offerpath/interview-prep/internal/usecase"
	"github.com/offerpath/interview-prep/internal/util"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/users", h.CreateOrUpdate)
	app.Get("/users/:openid", h.Get)
	app.Put("/users/:openid", h.UpdateProfile)
	app.Post("/users/:openid/profile_file", h.UploadProfileFile)
}

func (h *UserHandler) CreateOrUpdate(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, created, err := h.uc.CreateOrUpdate(req.OpenID, req.Name, req.AvatarURL, req.ProfileContent)
	if err != nil {
		return respondError(c, err)
	}

	code := fiber.StatusOK
	message := "Success update user"
	if created {
		code = fiber.StatusCreated
		message = "Success create user"
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    code,
		Message: message,
		Data:    user,
	})
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.uc.GetByOpenID(c.Params("openid"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get user",
		Data:    user,
	})
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.uc.UpdateProfile(c.Params("openid"), req.ProfileContent)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update profile",
		Data:    user,
	})
}

// UploadProfileFile accepts a PDF resume upload and replaces the user's
// profile content with the extracted text.
func (h *UserHandler) UploadProfileFile(c *fiber.Ctx) error {
	file, err := c.FormFile("profile_file")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "profile_file is required",
		}, err)
	}

	if file.Size > config.LoadAppConfig().MaxUploadBytes {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "profile_file is too large",
		}, nil)
	}

	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "only pdf files are supported",
		}, nil)
	}

	savePath := filepath.Join("./uploads/profile/", filepath.Base(file.Filename))
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot save profile_file",
		}, err)
	}

	user, err := h.uc.ImportProfilePDF(c.Params("openid"), savePath)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success import profile file",
		Data:    user,
	})
}
