package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Session lifecycle. State is stored explicitly rather than inferred from
// score nullability, so a future partial score cannot make it ambiguous.
const (
	SessionStatusCreated  = "created"
	SessionStatusFinished = "finished"
)

// InterviewSession is one simulated interview run against an opportunity's
// question set. Answers are created in bulk when the session starts and the
// set is fixed afterwards; they are cascade-deleted with the session.
type InterviewSession struct {
	ID             uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OpportunityID  uuid.UUID       `gorm:"type:uuid;index;not null" json:"opportunity_id"`
	Status         string          `gorm:"type:varchar(20);not null" json:"status"`
	StartedAt      time.Time       `gorm:"not null" json:"session_date"`
	OverallScore   *int            `json:"overall_score"`
	ReportSummary  string          `gorm:"type:text" json:"report_summary"`
	RadarChartJSON string          `gorm:"column:radar_chart_data;type:jsonb" json:"-"`
	SessionAnswers []SessionAnswer `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"session_answers"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (s *InterviewSession) TableName() string {
	return "interview_sessions"
}

// RadarChart deserializes the capability-dimension score map.
func (s *InterviewSession) RadarChart() (map[string]int, error) {
	if s.RadarChartJSON == "" {
		return nil, nil
	}
	var chart map[string]int
	if err := json.Unmarshal([]byte(s.RadarChartJSON), &chart); err != nil {
		return nil, err
	}
	return chart, nil
}

func (s *InterviewSession) SetRadarChart(chart map[string]int) error {
	raw, err := json.Marshal(chart)
	if err != nil {
		return err
	}
	s.RadarChartJSON = string(raw)
	return nil
}

// SessionAnswer is one question/answer/feedback slot within a session.
// UserAnswerTranscript stays null until the answer is recorded.
type SessionAnswer struct {
	ID                   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessionID            uuid.UUID `gorm:"type:uuid;index;not null" json:"session_id"`
	Position             int       `gorm:"not null;default:0" json:"position"`
	QuestionText         string    `gorm:"type:text;not null" json:"question_text"`
	SuggestedAnswer      string    `gorm:"type:text" json:"suggested_answer"`
	UserAnswerTranscript *string   `gorm:"type:text" json:"user_answer_transcript"`
	UserAudioURL         string    `gorm:"type:varchar(512)" json:"user_audio_url"`
	AIFeedback           string    `gorm:"column:ai_feedback;type:text" json:"ai_feedback"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (a *SessionAnswer) TableName() string {
	return "session_answers"
}
