package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/offerpath/interview-prep/internal/config"
	"github.com/offerpath/interview-prep/internal/model"
)

const openRouterURL = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouterService implements ContentGeneratorInterface over the OpenRouter
// chat-completions API. Embeddings are not available on this backend.
type OpenRouterService struct {
	APIKey         string
	Model          string
	RequestTimeout time.Duration
	client         *resty.Client
}

func NewOpenRouterService() *OpenRouterService {
	timeout := 90 * time.Second
	return &OpenRouterService{
		APIKey:         config.LoadGeneratorConfig().OpenRouterAPIKey,
		Model:          "openai/gpt-4o-mini",
		RequestTimeout: timeout,
		client:         resty.New().SetTimeout(timeout),
	}
}

func (s *OpenRouterService) GenerateQuestions(ctx context.Context, profile, jobDescription string) (model.QuestionSet, error) {
	text, err := s.chat(ctx, questionPrompt(profile, jobDescription))
	if err != nil {
		return nil, err
	}
	return parseQuestionSet(text)
}

func (s *OpenRouterService) GenerateResume(ctx context.Context, profile, jobDescription, keywords string) (string, error) {
	text, err := s.chat(ctx, resumePrompt(profile, jobDescription, keywords))
	if err != nil {
		return "", err
	}
	resume := stripCodeFence(text)
	if resume == "" {
		return "", fmt.Errorf("empty resume returned")
	}
	return resume, nil
}

func (s *OpenRouterService) AnalyzeJD(ctx context.Context, profile, jobDescription string) (*JDAnalysis, error) {
	text, err := s.chat(ctx, analysisPrompt(profile, jobDescription))
	if err != nil {
		return nil, err
	}
	return parseJDAnalysis(text)
}

func (s *OpenRouterService) CritiqueAnswer(ctx context.Context, question, transcript string) (string, error) {
	text, err := s.chat(ctx, critiquePrompt(question, transcript))
	if err != nil {
		return "", err
	}
	feedback := strings.TrimSpace(text)
	if feedback == "" {
		return "", fmt.Errorf("empty feedback returned")
	}
	return feedback, nil
}

func (s *OpenRouterService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return nil, fmt.Errorf("embeddings are not supported by the openrouter backend")
}

func (s *OpenRouterService) chat(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": s.Model,
			"messages": []map[string]string{
				{"role": "system", "content": "You are an assistant helping a job seeker prepare applications and interviews."},
				{"role": "user", "content": prompt},
			},
		}).
		Post(openRouterURL)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() >= 400 {
		return "", fmt.Errorf("openrouter returned status %d", resp.StatusCode())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text, nil
}
