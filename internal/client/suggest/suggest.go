// Package suggest is the seam for the prompt-generation collaborator. The
// production app backs it with an LLM text service; this repo ships a
// deterministic static implementation so the journal works offline and
// tests stay reproducible.
package suggest

import (
	"context"
	"time"
)

// Suggester produces the opening sentence and prompt suggestions shown when
// the user composes the day's entry.
type Suggester interface {
	OpeningSentence(ctx context.Context, day time.Time) (string, error)
	Suggestions(ctx context.Context, day time.Time, n int) ([]string, error)
}

var openings = []string{
	"Today I appreciate...",
	"Something that made me smile today:",
	"I'm thankful for...",
	"A small thing that went right today:",
	"Today I noticed...",
}

var prompts = []string{
	"a person who helped you",
	"something in nature",
	"a meal you enjoyed",
	"a comfort you usually overlook",
	"something your body did for you",
	"a sound or smell you liked",
	"progress on something difficult",
	"a moment of quiet",
}

// Static picks openings and prompts by day of year, so everyone sees the
// same rotation on the same day but the content varies across days.
type Static struct{}

func NewStatic() *Static { return &Static{} }

func (s *Static) OpeningSentence(ctx context.Context, day time.Time) (string, error) {
	return openings[day.YearDay()%len(openings)], nil
}

func (s *Static) Suggestions(ctx context.Context, day time.Time, n int) ([]string, error) {
	if n <= 0 || n > len(prompts) {
		n = 3
	}
	out := make([]string, 0, n)
	start := day.YearDay() % len(prompts)
	for i := range n {
		out = append(out, prompts[(start+i)%len(prompts)])
	}
	return out, nil
}
