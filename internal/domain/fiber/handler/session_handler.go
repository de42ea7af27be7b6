package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/offerpath/interview-prep/internal/dto"
	"github.com/offerpath/interview-prep/internal/usecase"
	"github.com/offerpath/interview-prep/internal/util"
)

type SessionHandler struct {
	uc *usecase.SessionUsecase
}

func NewSessionHandler(uc *usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

func (h *SessionHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/opportunity/:id/interview_sessions", h.Start)
	app.Get("/opportunity/:id/interview_sessions", h.List)
	app.Get("/opportunity/:id/interview_sessions/latest", h.Latest)
	app.Get("/interview_session/:id", h.Get)
	app.Post("/interview_session/:id/answer", h.Answer)
	app.Put("/interview_session/:id/finish", h.Finish)
}

func (h *SessionHandler) Start(c *fiber.Ctx) error {
	oppID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	session, err := h.uc.StartSession(c.Context(), oppID)
	if err != nil {
		return respondError(c, err)
	}
	data, err := dto.NewSessionDTO(session)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success start interview session",
		Data:    data,
	})
}

func (h *SessionHandler) List(c *fiber.Ctx) error {
	oppID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	sessions, err := h.uc.ListSessions(oppID)
	if err != nil {
		return respondError(c, err)
	}
	data, err := dto.NewSessionDTOs(sessions)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get interview sessions",
		Data:    data,
	})
}

// Latest responds 200 with empty data when the opportunity has no sessions
// yet, so clients can treat "none yet" as a normal state.
func (h *SessionHandler) Latest(c *fiber.Ctx) error {
	oppID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	session, err := h.uc.LatestSession(oppID)
	if err != nil {
		return respondError(c, err)
	}
	if session == nil {
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Message: "No interview sessions found for this opportunity",
		})
	}
	data, err := dto.NewSessionDTO(session)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get latest interview session",
		Data:    data,
	})
}

func (h *SessionHandler) Get(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	session, err := h.uc.GetSession(id)
	if err != nil {
		return respondError(c, err)
	}
	data, err := dto.NewSessionDTO(session)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get interview session",
		Data:    data,
	})
}

func (h *SessionHandler) Answer(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	var req dto.RecordAnswerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	answer, err := h.uc.RecordAnswer(c.Context(), id, req.QuestionText, req.UserAnswerTranscript, req.UserAudioURL)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success record answer",
		Data:    answer,
	})
}

func (h *SessionHandler) Finish(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	session, err := h.uc.FinishSession(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	data, err := dto.NewSessionDTO(session)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success finish interview session",
		Data:    data,
	})
}
