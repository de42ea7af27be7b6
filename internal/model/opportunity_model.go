package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// Opportunity is one tracked job application. Status is a free-form string
// matched by exact value (e.g. "pending", "interviewing", "submitted",
// "offered", "closed") rather than an enum. The generated resume and question
// set are cached directly on the row; they are only written by the generation
// and manual-edit paths.
type Opportunity struct {
	ID                uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID            uuid.UUID        `gorm:"type:uuid;index;not null" json:"user_id"`
	PositionName      string           `gorm:"type:varchar(255);not null" json:"position_name"`
	CompanyName       string           `gorm:"type:varchar(255);not null" json:"company_name"`
	JobDescription    string           `gorm:"type:text" json:"job_description"`
	Source            string           `gorm:"type:varchar(100)" json:"source"`
	Status            string           `gorm:"type:varchar(50)" json:"status"`
	LatestProgress    string           `gorm:"type:varchar(255)" json:"latest_progress"`
	GeneratedResumeMD string           `gorm:"column:generated_resume_md;type:text" json:"generated_resume_md"`
	GeneratedQAJSON   string           `gorm:"column:generated_qa_json;type:text" json:"generated_qa_json"`
	JDEmbedding       *pgvector.Vector `gorm:"column:jd_embedding;type:vector(3072)" json:"-"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func (o *Opportunity) TableName() string {
	return "opportunities"
}

// QAPair is one generated question with its suggested answer.
type QAPair struct {
	Question        string `json:"question"`
	SuggestedAnswer string `json:"suggested_answer"`
}

// QuestionSet is the ordered question list cached on an opportunity.
type QuestionSet []QAPair

// QuestionSet deserializes the cached question set. An empty cache yields
// a nil set and no error.
func (o *Opportunity) QuestionSet() (QuestionSet, error) {
	if o.GeneratedQAJSON == "" {
		return nil, nil
	}
	var qs QuestionSet
	if err := json.Unmarshal([]byte(o.GeneratedQAJSON), &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// SetQuestionSet serializes qs onto the row, preserving order.
func (o *Opportunity) SetQuestionSet(qs QuestionSet) error {
	raw, err := json.Marshal(qs)
	if err != nil {
		return err
	}
	o.GeneratedQAJSON = string(raw)
	return nil
}
