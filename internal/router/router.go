// Package router implements the prompt classification core: a fixed cascade
// of keyword-set containment tests with a text-length fallback. The whole
// package is pure — no I/O, no shared mutable state — so every surface
// (CLI, HTTP, TUI) calls the same deterministic function.
package router

import (
	"fmt"
	"unicode/utf8"
)

// LengthThreshold is the normalized-length cutoff for the final fallback
// rule. Prompts strictly longer than this with no keyword hits are routed to
// the reasoning model; everything else falls back to fast iterations.
const LengthThreshold = 700

// rule pairs a predicate with the fixed Recommendation returned when it
// fires. Rules are evaluated in order, first match wins; overlap between the
// keyword sets makes the order significant.
type rule struct {
	name  string
	match func(r *Router, text string) bool
	rec   Recommendation
}

// Router classifies prompts against its keyword sets. Immutable after New;
// safe for concurrent use.
type Router struct {
	sets  map[SetName][]string
	rules []rule
}

// Default returns a Router using only the built-in keyword tables.
func Default() *Router {
	r, _ := New(nil)
	return r
}

// New builds a Router from the built-in keyword tables plus optional extra
// terms per set. Extra terms are lowercased via Normalize before use.
// Unknown set names are rejected.
func New(extra map[SetName][]string) (*Router, error) {
	sets := defaultSets()
	for name, terms := range extra {
		base, ok := sets[name]
		if !ok {
			return nil, fmt.Errorf("unknown keyword set %q", name)
		}
		merged := make([]string, 0, len(base)+len(terms))
		merged = append(merged, base...)
		for _, term := range terms {
			if t := Normalize(term); t != "" {
				merged = append(merged, t)
			}
		}
		sets[name] = merged
	}
	r := &Router{sets: sets}
	r.rules = cascade()
	return r, nil
}

// Keywords returns a copy of the terms in the given set.
func (r *Router) Keywords(name SetName) []string {
	terms := r.sets[name]
	out := make([]string, len(terms))
	copy(out, terms)
	return out
}

func (r *Router) matches(name SetName, text string) bool {
	return containsAny(text, r.sets[name])
}

// Recommend classifies a raw prompt. Total over all inputs: an empty or
// unmatched prompt falls through to the final length-based rules rather
// than failing.
func (r *Router) Recommend(raw string) Recommendation {
	rec, _ := r.recommend(raw)
	return rec
}

// RuleFor reports which rule fires for the given prompt. Used for logging
// and by tests that pin the cascade order.
func (r *Router) RuleFor(raw string) string {
	_, name := r.recommend(raw)
	return name
}

func (r *Router) recommend(raw string) (Recommendation, string) {
	text := Normalize(raw)
	for _, ru := range r.rules {
		if ru.match(r, text) {
			return ru.rec, ru.name
		}
	}
	// The last rule always matches; not reached.
	return Recommendation{}, ""
}

// cascade builds the ordered rule list. The order is the contract:
// modalities beat everything, code beats plain reasoning, reasoning beats
// quick edits, and the length fallback only fires when no set matched.
func cascade() []rule {
	return []rule{
		{
			name: "multimodal",
			match: func(r *Router, t string) bool {
				return r.matches(SetAudio, t) || r.matches(SetImage, t)
			},
			rec: Recommendation{
				Model:        ModelGPT4o,
				Reason:       "Audio or image signals detected – GPT-4o is optimized for voice and vision input.",
				Alternatives: "If deeper thinking is needed after transcription or image analysis: o3. For lots of short follow-up edits: o4-mini.",
			},
		},
		{
			name: "coding-deep",
			match: func(r *Router, t string) bool {
				if !r.matches(SetCode, t) {
					return false
				}
				return r.matches(SetReasoning, t) ||
					containsAny(t, []string{"algorithm", "architektur"})
			},
			rec: Recommendation{
				Model:        ModelO3,
				Reason:       "Coding task with conceptual or algorithmic weight – o3 prioritizes deep reasoning.",
				Alternatives: "For straight implementing or refactoring: GPT-4.1. For fast iterations: o4-mini.",
			},
		},
		{
			name: "coding-direct",
			match: func(r *Router, t string) bool {
				return r.matches(SetCode, t)
			},
			rec: Recommendation{
				Model:        ModelGPT41,
				Reason:       "Concrete coding task detected – 4.1 follows instructions reliably and is strong at refactoring and implementation.",
				Alternatives: "If analysis or decisions are required: o3. For many small edit loops: o4-mini.",
			},
		},
		{
			name: "reasoning",
			match: func(r *Router, t string) bool {
				return r.matches(SetReasoning, t)
			},
			rec: Recommendation{
				Model:        ModelO3,
				Reason:       "Terms point to planning, analysis or decision making – o3 is the reasoning model.",
				Alternatives: "If you need many quick iterations: o4-mini. If images or voice come into play: GPT-4o.",
			},
		},
		{
			name: "quick-edit",
			match: func(r *Router, t string) bool {
				return r.matches(SetQuickEdit, t)
			},
			rec: Recommendation{
				Model:        ModelO4Mini,
				Reason:       "Short-form work like rewriting or summarizing – o4-mini is fast and cost-efficient.",
				Alternatives: "For particularly tricky passages: o3. For voice or images: GPT-4o.",
			},
		},
		{
			name: "fallback-long",
			match: func(r *Router, t string) bool {
				// Characters, not bytes: umlauts in German prompts must not
				// push a 700-character prompt over the threshold.
				return utf8.RuneCountInString(t) > LengthThreshold
			},
			rec: Recommendation{
				Model:        ModelO3,
				Reason:       "Long or ambiguous prompt – o3 as the safe choice for thorough thinking.",
				Alternatives: "If it is mostly quick surface work: o4-mini.",
			},
		},
		{
			name:  "fallback-short",
			match: func(r *Router, t string) bool { return true },
			rec: Recommendation{
				Model:        ModelO4Mini,
				Reason:       "No specific pattern detected, likely a short task – o4-mini for fast iterations.",
				Alternatives: "If deeper analysis turns out to be needed: o3. For voice or images: GPT-4o.",
			},
		},
	}
}
