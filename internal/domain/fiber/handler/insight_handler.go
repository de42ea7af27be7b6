package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/offerpath/interview-prep/internal/usecase"
	"github.com/offerpath/interview-prep/internal/util"
)

// InsightHandler serves the dashboard endpoints: assessment comparison and
// action suggestions.
type InsightHandler struct {
	assessments *usecase.AssessmentUsecase
	suggestions *usecase.SuggestionUsecase
}

func NewInsightHandler(assessments *usecase.AssessmentUsecase, suggestions *usecase.SuggestionUsecase) *InsightHandler {
	return &InsightHandler{assessments: assessments, suggestions: suggestions}
}

func (h *InsightHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/assessments/latest/:openid", h.LatestAssessments)
	app.Get("/suggestions/:openid", h.Suggestions)
}

func (h *InsightHandler) LatestAssessments(c *fiber.Ctx) error {
	pair, err := h.assessments.LatestAndPrevious(c.Params("openid"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get latest assessments",
		Data:    pair,
	})
}

func (h *InsightHandler) Suggestions(c *fiber.Ctx) error {
	suggestions, err := h.suggestions.Suggestions(c.Params("openid"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get suggestions",
		Data:    suggestions,
	})
}
