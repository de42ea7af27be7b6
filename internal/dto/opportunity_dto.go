package dto

import (
	"github.com/offerpath/interview-prep/internal/model"
)

type CreateOpportunityRequest struct {
	UserOpenID     string `json:"user_openid" validate:"required"`
	PositionName   string `json:"position_name" validate:"required"`
	CompanyName    string `json:"company_name" validate:"required"`
	JobDescription string `json:"job_description"`
	Source         string `json:"source"`
	Status         string `json:"status"`
	LatestProgress string `json:"latest_progress"`
}

type UpdateOpportunityRequest struct {
	PositionName   *string `json:"position_name"`
	CompanyName    *string `json:"company_name"`
	JobDescription *string `json:"job_description"`
	Source         *string `json:"source"`
	Status         *string `json:"status"`
	LatestProgress *string `json:"latest_progress"`
}

type GenerateResumeRequest struct {
	Keywords string `json:"keywords"`
}

type UpdateResumeContentRequest struct {
	ResumeMD string `json:"resume_md" validate:"required"`
}

type QAPairDTO struct {
	Question        string `json:"question" validate:"required"`
	SuggestedAnswer string `json:"suggested_answer"`
}

type UpdateQAContentRequest struct {
	QAList []QAPairDTO `json:"qa_list" validate:"required,min=1,dive"`
}

func (r *UpdateQAContentRequest) QuestionSet() model.QuestionSet {
	qs := make(model.QuestionSet, len(r.QAList))
	for i, pair := range r.QAList {
		qs[i] = model.QAPair{Question: pair.Question, SuggestedAnswer: pair.SuggestedAnswer}
	}
	return qs
}

type GeneratePDFRequest struct {
	ResumeMD string `json:"resume_md" validate:"required"`
}
