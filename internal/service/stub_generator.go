package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/offerpath/interview-prep/internal/model"
)

// embeddingDim matches the vector column on opportunities.
const embeddingDim = 3072

// StubGenerator is the content backend used when no API key is configured.
// It returns canned content after a configurable simulated latency, the way
// the reference backend behaves during local development.
type StubGenerator struct {
	Delay time.Duration
}

func NewStubGenerator(delay time.Duration) *StubGenerator {
	return &StubGenerator{Delay: delay}
}

var stubQuestionBank = model.QuestionSet{
	{
		Question:        "Walk me through the most challenging project you have worked on. What was your role, what went wrong, and how did you resolve it?",
		SuggestedAnswer: "Structure the answer with the STAR method (situation, task, action, result) and emphasize your own contribution and how you unblocked the problem.",
	},
	{
		Question:        "What do you know about our company, and why do you want to join us?",
		SuggestedAnswer: "Research the company's products and recent news beforehand; connect them to your own interests and career plans, and be sincere about the match.",
	},
	{
		Question:        "What are your biggest strengths and weaknesses?",
		SuggestedAnswer: "Pick strengths that map to the role and back them with examples; pick a weakness that does not undermine core duties and explain how you are improving it.",
	},
	{
		Question:        "Where do you see your career in the next few years?",
		SuggestedAnswer: "Combine personal interest with the direction of the industry and show a concrete plan you are already working toward.",
	},
	{
		Question:        "Do you have any questions for us?",
		SuggestedAnswer: "Prepare two or three thoughtful questions about team culture, project challenges or growth opportunities to show genuine interest.",
	},
}

func (s *StubGenerator) wait(ctx context.Context) error {
	if s.Delay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *StubGenerator) GenerateQuestions(ctx context.Context, profile, jobDescription string) (model.QuestionSet, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	n := minQuestions + rand.Intn(maxQuestions-minQuestions+1)
	qs := make(model.QuestionSet, n)
	copy(qs, stubQuestionBank[:n])
	return qs, nil
}

func (s *StubGenerator) GenerateResume(ctx context.Context, profile, jobDescription, keywords string) (string, error) {
	if err := s.wait(ctx); err != nil {
		return "", err
	}
	kwLine := "A close read of the role's requirements informed every section below."
	if keywords != "" {
		kwLine = fmt.Sprintf("The projects below deliberately highlight **%s**.", keywords)
	}
	resume := fmt.Sprintf(`# Tailored Resume

---

### Highlights

- **Role fit**: skills and experience restructured around the responsibilities in the posting.
- **Keywords**: %s

### Experience

**Library Management System (coursework)**
- **Stack**: Flask, SQLite, Nginx
- Designed and built a multi-user book lending system end to end, from schema design to deployment.
- Implemented registration, login, catalogue search, borrowing and returns.

*(See the full profile for additional projects and activities.)*
`, kwLine)
	return resume, nil
}

func (s *StubGenerator) AnalyzeJD(ctx context.Context, profile, jobDescription string) (*JDAnalysis, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return &JDAnalysis{
		Keywords:        []string{"Python", "Flask", "React", "data analysis", "machine learning", "teamwork"},
		MatchAssessment: "[stub] Your profile matches this position well. Python and Flask line up with the stack; describe your role in the React project more concretely to strengthen the application.",
	}, nil
}

func (s *StubGenerator) CritiqueAnswer(ctx context.Context, question, transcript string) (string, error) {
	if err := s.wait(ctx); err != nil {
		return "", err
	}
	return "[stub] **Good**: the answer is structured and on topic. **Missing**: a concrete, quantified example. **Suggestion**: lead with the outcome, then explain how you achieved it.", nil
}

// GenerateEmbedding derives a deterministic pseudo-embedding from the text so
// the similarity flow works locally: identical text maps to identical vectors.
func (s *StubGenerator) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	h := fnv.New64a()
	h.Write([]byte(text))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	vec := make([]float32, embeddingDim)
	for i := range vec {
		vec[i] = rng.Float32()*2 - 1
	}
	return vec, nil
}
