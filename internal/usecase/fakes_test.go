package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"github.com/offerpath/interview-prep/internal/apperror"
	"github.com/offerpath/interview-prep/internal/model"
	"github.com/offerpath/interview-prep/internal/service"
)

// In-memory repository fakes. They mirror the GORM implementations' contract:
// not-found lookups return apperror.NotFound, reads return copies so callers
// cannot mutate stored rows without an explicit Save.

type fakeUserRepo struct {
	users []model.User
}

func (r *fakeUserRepo) FindByOpenID(openid string) (*model.User, error) {
	for i := range r.users {
		if r.users[i].OpenID == openid {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, apperror.NotFound("user %s not found", openid)
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, apperror.NotFound("user %s not found", id)
}

func (r *fakeUserRepo) Save(user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}
	r.users = append(r.users, *user)
	return nil
}

type fakeOppRepo struct {
	opps []model.Opportunity
}

func (r *fakeOppRepo) Create(opp *model.Opportunity) error {
	if opp.ID == uuid.Nil {
		opp.ID = uuid.New()
	}
	r.opps = append(r.opps, *opp)
	return nil
}

func (r *fakeOppRepo) Save(opp *model.Opportunity) error {
	for i := range r.opps {
		if r.opps[i].ID == opp.ID {
			r.opps[i] = *opp
			return nil
		}
	}
	r.opps = append(r.opps, *opp)
	return nil
}

func (r *fakeOppRepo) FindByID(id uuid.UUID) (*model.Opportunity, error) {
	for i := range r.opps {
		if r.opps[i].ID == id {
			o := r.opps[i]
			return &o, nil
		}
	}
	return nil, apperror.NotFound("opportunity %s not found", id)
}

func (r *fakeOppRepo) FindByUserID(userID uuid.UUID) ([]model.Opportunity, error) {
	var out []model.Opportunity
	for i := range r.opps {
		if r.opps[i].UserID == userID {
			out = append(out, r.opps[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *fakeOppRepo) PageByUserID(userID uuid.UUID, page, pageSize int) ([]model.Opportunity, int64, error) {
	all, _ := r.FindByUserID(userID)
	total := int64(len(all))
	start := (page - 1) * pageSize
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *fakeOppRepo) Delete(opp *model.Opportunity) error {
	for i := range r.opps {
		if r.opps[i].ID == opp.ID {
			r.opps = append(r.opps[:i], r.opps[i+1:]...)
			return nil
		}
	}
	return apperror.NotFound("opportunity %s not found", opp.ID)
}

func (r *fakeOppRepo) NearestByEmbedding(userID, excludeID uuid.UUID, embedding pgvector.Vector, topK int) ([]model.Opportunity, error) {
	var out []model.Opportunity
	for i := range r.opps {
		if r.opps[i].UserID == userID && r.opps[i].ID != excludeID && r.opps[i].JDEmbedding != nil {
			out = append(out, r.opps[i])
		}
	}
	if len(out) > topK {
		out = out[:topK]
	}
	return out, nil
}

type fakeSessionRepo struct {
	sessions []model.InterviewSession
}

func copySession(s model.InterviewSession) model.InterviewSession {
	answers := make([]model.SessionAnswer, len(s.SessionAnswers))
	copy(answers, s.SessionAnswers)
	s.SessionAnswers = answers
	return s
}

func (r *fakeSessionRepo) CreateWithAnswers(session *model.InterviewSession) error {
	r.sessions = append(r.sessions, copySession(*session))
	return nil
}

func (r *fakeSessionRepo) Save(session *model.InterviewSession) error {
	for i := range r.sessions {
		if r.sessions[i].ID == session.ID {
			answers := r.sessions[i].SessionAnswers
			r.sessions[i] = copySession(*session)
			r.sessions[i].SessionAnswers = answers
			return nil
		}
	}
	return apperror.NotFound("interview session %s not found", session.ID)
}

func (r *fakeSessionRepo) SaveAnswer(answer *model.SessionAnswer) error {
	for i := range r.sessions {
		if r.sessions[i].ID != answer.SessionID {
			continue
		}
		for j := range r.sessions[i].SessionAnswers {
			if r.sessions[i].SessionAnswers[j].ID == answer.ID {
				r.sessions[i].SessionAnswers[j] = *answer
				return nil
			}
		}
	}
	return apperror.NotFound("session answer %s not found", answer.ID)
}

func (r *fakeSessionRepo) FindByID(id uuid.UUID) (*model.InterviewSession, error) {
	for i := range r.sessions {
		if r.sessions[i].ID == id {
			s := copySession(r.sessions[i])
			sort.SliceStable(s.SessionAnswers, func(a, b int) bool {
				return s.SessionAnswers[a].Position < s.SessionAnswers[b].Position
			})
			return &s, nil
		}
	}
	return nil, apperror.NotFound("interview session %s not found", id)
}

func (r *fakeSessionRepo) FindByOpportunityID(opportunityID uuid.UUID) ([]model.InterviewSession, error) {
	var out []model.InterviewSession
	for i := range r.sessions {
		if r.sessions[i].OpportunityID == opportunityID {
			out = append(out, copySession(r.sessions[i]))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].StartedAt.After(out[j].StartedAt)
		}
		return out[i].ID.String() > out[j].ID.String()
	})
	return out, nil
}

func (r *fakeSessionRepo) LatestByOpportunityID(opportunityID uuid.UUID) (*model.InterviewSession, error) {
	sessions, _ := r.FindByOpportunityID(opportunityID)
	if len(sessions) == 0 {
		return nil, apperror.NotFound("no interview sessions for opportunity %s", opportunityID)
	}
	return &sessions[0], nil
}

func (r *fakeSessionRepo) FindByOpportunityIDs(opportunityIDs []uuid.UUID) ([]model.InterviewSession, error) {
	var out []model.InterviewSession
	for _, id := range opportunityIDs {
		sessions, _ := r.FindByOpportunityID(id)
		out = append(out, sessions...)
	}
	return out, nil
}

// fakeGenerator counts calls and returns canned content, with per-method
// error injection.
type fakeGenerator struct {
	questions model.QuestionSet
	resume    string
	analysis  *service.JDAnalysis
	feedback  string
	embedding []float32

	questionCalls  int
	resumeCalls    int
	analysisCalls  int
	critiqueCalls  int
	embeddingCalls int

	questionErr  error
	resumeErr    error
	analysisErr  error
	critiqueErr  error
	embeddingErr error
}

func (g *fakeGenerator) GenerateQuestions(ctx context.Context, profile, jobDescription string) (model.QuestionSet, error) {
	g.questionCalls++
	if g.questionErr != nil {
		return nil, g.questionErr
	}
	return g.questions, nil
}

func (g *fakeGenerator) GenerateResume(ctx context.Context, profile, jobDescription, keywords string) (string, error) {
	g.resumeCalls++
	if g.resumeErr != nil {
		return "", g.resumeErr
	}
	return g.resume, nil
}

func (g *fakeGenerator) AnalyzeJD(ctx context.Context, profile, jobDescription string) (*service.JDAnalysis, error) {
	g.analysisCalls++
	if g.analysisErr != nil {
		return nil, g.analysisErr
	}
	return g.analysis, nil
}

func (g *fakeGenerator) CritiqueAnswer(ctx context.Context, question, transcript string) (string, error) {
	g.critiqueCalls++
	if g.critiqueErr != nil {
		return "", g.critiqueErr
	}
	return g.feedback, nil
}

func (g *fakeGenerator) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	g.embeddingCalls++
	if g.embeddingErr != nil {
		return nil, g.embeddingErr
	}
	return g.embedding, nil
}

// seedUserAndOpportunity wires a user with one opportunity into the fakes.
func seedUserAndOpportunity(userRepo *fakeUserRepo, oppRepo *fakeOppRepo) *model.Opportunity {
	user := model.User{
		ID:             uuid.New(),
		OpenID:         "openid-1",
		Name:           "Ada",
		ProfileContent: "Backend engineer, five years of Go and Postgres.",
	}
	userRepo.users = append(userRepo.users, user)

	opp := model.Opportunity{
		ID:             uuid.New(),
		UserID:         user.ID,
		PositionName:   "Backend Engineer",
		CompanyName:    "Acme",
		JobDescription: "Build APIs in Go.",
		Status:         "pending",
	}
	oppRepo.opps = append(oppRepo.opps, opp)
	return &opp
}

var testQuestions = model.QuestionSet{
	{Question: "Tell me about a project you are proud of.", SuggestedAnswer: "Use the STAR structure."},
	{Question: "How do you handle production incidents?", SuggestedAnswer: "Walk through detection, mitigation, postmortem."},
	{Question: "Why this company?", SuggestedAnswer: "Tie motivation to the role."},
}
