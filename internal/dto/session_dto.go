package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/offerpath/interview-prep/internal/model"
)

type RecordAnswerRequest struct {
	QuestionText         string `json:"question_text" validate:"required"`
	UserAnswerTranscript string `json:"user_answer_transcript"`
	UserAudioURL         string `json:"user_audio_url"`
}

// SessionDTO is the API projection of an interview session with its radar
// chart deserialized.
type SessionDTO struct {
	ID             uuid.UUID             `json:"id"`
	OpportunityID  uuid.UUID             `json:"opportunity_id"`
	Status         string                `json:"status"`
	SessionDate    time.Time             `json:"session_date"`
	OverallScore   *int                  `json:"overall_score"`
	ReportSummary  string                `json:"report_summary"`
	RadarChartData map[string]int        `json:"radar_chart_data"`
	SessionAnswers []model.SessionAnswer `json:"session_answers"`
}

func NewSessionDTO(session *model.InterviewSession) (*SessionDTO, error) {
	chart, err := session.RadarChart()
	if err != nil {
		return nil, err
	}
	return &SessionDTO{
		ID:             session.ID,
		OpportunityID:  session.OpportunityID,
		Status:         session.Status,
		SessionDate:    session.StartedAt,
		OverallScore:   session.OverallScore,
		ReportSummary:  session.ReportSummary,
		RadarChartData: chart,
		SessionAnswers: session.SessionAnswers,
	}, nil
}

func NewSessionDTOs(sessions []model.InterviewSession) ([]SessionDTO, error) {
	dtos := make([]SessionDTO, 0, len(sessions))
	for i := range sessions {
		d, err := NewSessionDTO(&sessions[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *d)
	}
	return dtos, nil
}
