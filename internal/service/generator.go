package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/offerpath/interview-prep/internal/model"
)

// JDAnalysis is the structured result of matching a profile against a job
// description.
type JDAnalysis struct {
	Keywords        []string `json:"keywords"`
	MatchAssessment string   `json:"match_assessment"`
}

// ContentGeneratorInterface is the adapter to the content-generation backend.
// Output is not deterministic across calls; callers cache what they need.
// Implementations bound each call with their own request timeout.
type ContentGeneratorInterface interface {
	GenerateQuestions(ctx context.Context, profile, jobDescription string) (model.QuestionSet, error)
	GenerateResume(ctx context.Context, profile, jobDescription, keywords string) (string, error)
	AnalyzeJD(ctx context.Context, profile, jobDescription string) (*JDAnalysis, error)
	CritiqueAnswer(ctx context.Context, question, transcript string) (string, error)
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

const (
	minQuestions = 3
	maxQuestions = 5
)

func questionPrompt(profile, jobDescription string) string {
	return fmt.Sprintf(`You are an experienced interviewer. Based on the candidate profile and the job description below, generate 5 high-frequency interview questions with suggested answers. Mix technical, project and behavioral questions.

Return STRICTLY JSON with this schema:
{
  "qa_list": [
    {"question": "<question text>", "suggested_answer": "<advice on how to answer>"}
  ]
}

--- Candidate profile ---
%s

--- Job description ---
%s
`, profile, jobDescription)
}

func resumePrompt(profile, jobDescription, keywords string) string {
	kw := keywords
	if kw == "" {
		kw = "none"
	}
	return fmt.Sprintf(`Based on the candidate profile, the job description and the requested keywords below, write a resume in Markdown tailored to this position. Emphasize where the candidate's skills and experience match the job description, and weave in the keywords naturally.

Keywords: %s

Return ONLY the Markdown document, no surrounding commentary.

--- Candidate profile ---
%s

--- Job description ---
%s
`, kw, profile, jobDescription)
}

func analysisPrompt(profile, jobDescription string) string {
	return fmt.Sprintf(`Analyze how well the candidate profile below matches the job description.

Return STRICTLY JSON with this schema:
{
  "keywords": ["<5-8 core keywords extracted from the job description>"],
  "match_assessment": "<assessment of the match with concrete suggestions>"
}

--- Candidate profile ---
%s

--- Job description ---
%s
`, profile, jobDescription)
}

func critiquePrompt(question, transcript string) string {
	return fmt.Sprintf(`You are an interview coach. The candidate was asked the question below and gave the answer below. Give short, concrete feedback in Markdown: what was good, what was missing, and one suggestion to improve.

--- Question ---
%s

--- Answer ---
%s
`, question, transcript)
}

// stripCodeFence removes a surrounding markdown code fence, which chat models
// add around JSON output despite instructions.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// parseQuestionSet extracts and normalizes the qa_list of an LLM response:
// blank pairs are dropped and the list is truncated to the contract maximum.
func parseQuestionSet(text string) (model.QuestionSet, error) {
	body := stripCodeFence(text)
	list := gjson.Get(body, "qa_list")
	if !list.Exists() {
		return nil, fmt.Errorf("response has no qa_list")
	}
	var qs model.QuestionSet
	for _, item := range list.Array() {
		q := strings.TrimSpace(item.Get("question").String())
		a := strings.TrimSpace(item.Get("suggested_answer").String())
		if q == "" {
			continue
		}
		qs = append(qs, model.QAPair{Question: q, SuggestedAnswer: a})
	}
	if len(qs) < minQuestions {
		return nil, fmt.Errorf("got %d usable questions, need at least %d", len(qs), minQuestions)
	}
	if len(qs) > maxQuestions {
		qs = qs[:maxQuestions]
	}
	return qs, nil
}

func parseJDAnalysis(text string) (*JDAnalysis, error) {
	body := stripCodeFence(text)
	assessment := gjson.Get(body, "match_assessment").String()
	keywordsResult := gjson.Get(body, "keywords")
	if assessment == "" && !keywordsResult.Exists() {
		return nil, fmt.Errorf("response has neither keywords nor match_assessment")
	}
	analysis := &JDAnalysis{MatchAssessment: assessment}
	for _, kw := range keywordsResult.Array() {
		if s := strings.TrimSpace(kw.String()); s != "" {
			analysis.Keywords = append(analysis.Keywords, s)
		}
	}
	return analysis, nil
}
