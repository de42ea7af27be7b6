package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/offerpath/interview-prep/internal/model"
	"github.com/offerpath/interview-prep/internal/repository"
)

// Suggestion is one derived next-best-action for the user.
type Suggestion struct {
	Type          string    `json:"type"`
	Text          string    `json:"text"`
	Action        string    `json:"action"`
	Icon          string    `json:"icon"`
	OpportunityID uuid.UUID `json:"opportunity_id"`
}

// suggestionRules fix both which statuses produce a suggestion and the order
// suggestions appear in. Any other status is silently ignored.
var suggestionRules = []struct {
	status   string
	action   string
	icon     string
	singular string
	plural   string
}{
	{
		status:   "interviewing",
		action:   "practiceInterview",
		icon:     "🎙️",
		singular: "You have 1 opportunity in interviews — run a mock interview session.",
		plural:   "You have %d opportunities in interviews — run a mock interview session.",
	},
	{
		status:   "pending",
		action:   "generateResume",
		icon:     "📝",
		singular: "You have 1 opportunity pending submission — generate a tailored resume.",
		plural:   "You have %d opportunities pending submission — generate a tailored resume.",
	},
	{
		status:   "submitted",
		action:   "predictQuestions",
		icon:     "🧠",
		singular: "You have 1 submitted application awaiting a response — prepare likely interview questions.",
		plural:   "You have %d submitted applications awaiting a response — prepare likely interview questions.",
	},
}

// SuggestionUsecase derives prioritized next-best-actions from the status
// distribution of a user's opportunities.
type SuggestionUsecase struct {
	userRepo repository.UserRepositoryInterface
	oppRepo  repository.OpportunityRepositoryInterface
}

func NewSuggestionUsecase(userRepo repository.UserRepositoryInterface, oppRepo repository.OpportunityRepositoryInterface) *SuggestionUsecase {
	return &SuggestionUsecase{userRepo: userRepo, oppRepo: oppRepo}
}

// Suggestions emits at most one suggestion per recognized status, in fixed
// order, each referencing the group's earliest-created opportunity.
func (uc *SuggestionUsecase) Suggestions(openid string) ([]Suggestion, error) {
	user, err := uc.userRepo.FindByOpenID(openid)
	if err != nil {
		return nil, err
	}
	opps, err := uc.oppRepo.FindByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	return buildSuggestions(opps), nil
}

// buildSuggestions groups opportunities by exact status value. Input order is
// the repository's creation order, so the referenced opportunity per group is
// deterministic.
func buildSuggestions(opps []model.Opportunity) []Suggestion {
	type group struct {
		count int
		first *model.Opportunity
	}
	groups := make(map[string]*group)
	for i := range opps {
		g, ok := groups[opps[i].Status]
		if !ok {
			g = &group{first: &opps[i]}
			groups[opps[i].Status] = g
		}
		g.count++
	}

	suggestions := make([]Suggestion, 0, len(suggestionRules))
	for _, rule := range suggestionRules {
		g, ok := groups[rule.status]
		if !ok {
			continue
		}
		text := rule.singular
		if g.count > 1 {
			text = fmt.Sprintf(rule.plural, g.count)
		}
		suggestions = append(suggestions, Suggestion{
			Type:          rule.status,
			Text:          text,
			Action:        rule.action,
			Icon:          rule.icon,
			OpportunityID: g.first.ID,
		})
	}
	return suggestions
}
