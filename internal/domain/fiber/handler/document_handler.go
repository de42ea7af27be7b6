package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/offerpath/interview-prep/internal/apperror"
	"github.com/offerpath/interview-prep/internal/dto"
	"github.com/offerpath/interview-prep/internal/middleware"
	"github.com/offerpath/interview-prep/internal/service"
)

type DocumentHandler struct {
	renderer service.RenderServiceInterface
}

func NewDocumentHandler(renderer service.RenderServiceInterface) *DocumentHandler {
	return &DocumentHandler{renderer: renderer}
}

func (h *DocumentHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/generate_pdf", middleware.RateLimiter(10, time.Minute), h.GeneratePDF)
}

func (h *DocumentHandler) GeneratePDF(c *fiber.Ctx) error {
	var req dto.GeneratePDFRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	pdf, err := h.renderer.RenderMarkdownToPDF(c.Context(), req.ResumeMD)
	if err != nil {
		return respondError(c, apperror.RenderFailed(err, "resume rendering failed"))
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume.pdf"`)
	return c.Send(pdf)
}
