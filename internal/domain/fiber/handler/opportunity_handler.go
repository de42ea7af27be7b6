package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/offerpath/interview-prep/internal/dto"
	"github.com/offerpath/interview-prep/internal/middleware"
	"github.com/offerpath/interview-prep/internal/response"
	"github.com/offerpath/interview-prep/internal/usecase"
	"github.com/offerpath/interview-prep/internal/util"
)

type OpportunityHandler struct {
	uc      *usecase.OpportunityUsecase
	content *usecase.ContentUsecase
}

func NewOpportunityHandler(uc *usecase.OpportunityUsecase, content *usecase.ContentUsecase) *OpportunityHandler {
	return &OpportunityHandler{uc: uc, content: content}
}

func (h *OpportunityHandler) RegisterRoutes(app *fiber.App) {
	generateLimiter := middleware.RateLimiter(10, time.Minute)

	app.Post("/opportunities", h.Create)
	app.Get("/opportunities/:openid", h.ListByUser)
	app.Get("/opportunity/:id", h.Get)
	app.Put("/opportunity/:id", h.Update)
	app.Delete("/opportunity/:id", h.Delete)
	app.Post("/opportunity/:id/analyze_jd", generateLimiter, h.AnalyzeJD)
	app.Post("/opportunity/:id/generate_qa", generateLimiter, h.GenerateQA)
	app.Post("/opportunity/:id/generate_resume", generateLimiter, h.GenerateResume)
	app.Put("/opportunity/:id/update_qa_content", h.UpdateQAContent)
	app.Put("/opportunity/:id/update_resume_content", h.UpdateResumeContent)
	app.Get("/opportunity/:id/similar", h.Similar)
}

func (h *OpportunityHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateOpportunityRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	opp, err := h.uc.Create(c.Context(), req.UserOpenID, req.PositionName, req.CompanyName,
		req.JobDescription, req.Source, req.Status, req.LatestProgress)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create opportunity",
		Data:    opp,
	})
}

func (h *OpportunityHandler) ListByUser(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	opps, total, err := h.uc.ListByUser(c.Params("openid"), page, pageSize)
	if err != nil {
		return respondError(c, err)
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	from := 0
	to := 0
	if len(opps) > 0 {
		from = (page-1)*pageSize + 1
		to = from + len(opps) - 1
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get opportunities",
		Data:    opps,
		Pagination: &response.Pagination{
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
			TotalItems: total,
			HasMore:    int64(page) < totalPages,
			From:       from,
			To:         to,
		},
	})
}

func (h *OpportunityHandler) Get(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	opp, err := h.uc.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get opportunity",
		Data:    opp,
	})
}

func (h *OpportunityHandler) Update(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateOpportunityRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	opp, err := h.uc.Update(c.Context(), id, usecase.OpportunityPatch{
		PositionName:   req.PositionName,
		CompanyName:    req.CompanyName,
		JobDescription: req.JobDescription,
		Source:         req.Source,
		Status:         req.Status,
		LatestProgress: req.LatestProgress,
	})
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update opportunity",
		Data:    opp,
	})
}

func (h *OpportunityHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success delete opportunity",
	})
}

func (h *OpportunityHandler) AnalyzeJD(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	analysis, err := h.content.AnalyzeJD(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success analyze job description",
		Data:    analysis,
	})
}

func (h *OpportunityHandler) GenerateQA(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	qs, err := h.content.RegenerateQuestions(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success generate interview questions",
		Data:    fiber.Map{"qa_list": qs},
	})
}

func (h *OpportunityHandler) GenerateResume(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	var req dto.GenerateResumeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resumeMD, err := h.content.GenerateResume(c.Context(), id, req.Keywords)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success generate resume",
		Data:    fiber.Map{"resume_md": resumeMD},
	})
}

func (h *OpportunityHandler) UpdateQAContent(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateQAContentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	if err := h.content.SetQuestions(c.Context(), id, req.QuestionSet()); err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update question content",
	})
}

func (h *OpportunityHandler) UpdateResumeContent(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateResumeContentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	if err := h.content.SetResume(c.Context(), id, req.ResumeMD); err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update resume content",
	})
}

func (h *OpportunityHandler) Similar(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	topK := c.QueryInt("top_k", 5)

	opps, err := h.content.SimilarOpportunities(c.Context(), id, topK)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get similar opportunities",
		Data:    opps,
	})
}
