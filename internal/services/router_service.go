package services

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"promptrouter/internal/models"
	"promptrouter/internal/router"
)

// RouterService fronts the pure classification core for every surface (CLI,
// HTTP, TUI). It owns the boundary guard: empty prompts are rejected here so
// the core itself stays total.
type RouterService struct {
	router *router.Router
}

func NewRouterService(r *router.Router) *RouterService {
	return &RouterService{router: r}
}

// Classify validates the raw prompt and returns the recommendation.
// Whitespace-only input is rejected with models.ErrEmptyPrompt.
func (s *RouterService) Classify(raw string) (router.Recommendation, error) {
	if strings.TrimSpace(raw) == "" {
		return router.Recommendation{}, models.ErrEmptyPrompt
	}

	rec := s.router.Recommend(raw)
	log.WithFields(log.Fields{
		"model":      rec.Model,
		"rule":       s.router.RuleFor(raw),
		"prompt_len": len(router.Normalize(raw)),
	}).Debug("classified prompt")
	return rec, nil
}

// KeywordSets returns the active keyword tables keyed by set name, in
// display order.
func (s *RouterService) KeywordSets() []KeywordSet {
	sets := make([]KeywordSet, 0, len(router.SetNames))
	for _, name := range router.SetNames {
		sets = append(sets, KeywordSet{
			Name:  string(name),
			Terms: s.router.Keywords(name),
		})
	}
	return sets
}

// KeywordSet is one named keyword table as exposed to the surfaces.
type KeywordSet struct {
	Name  string   `json:"name"`
	Terms []string `json:"terms"`
}

// Render formats a Recommendation as the multi-line display text shown in
// the result pane and copied to the clipboard.
func Render(rec router.Recommendation) string {
	return fmt.Sprintf(
		"Recommended model: %s\n\nReason:\n%s\n\nAlternatives:\n%s\n",
		rec.Model, rec.Reason, rec.Alternatives,
	)
}
