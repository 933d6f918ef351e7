package source

import (
	"context"
	"time"
)

// Source names as they appear in Candidate.Source and diagnostics.
const (
	SourceStackOverflow = "stackoverflow"
	SourceDevto         = "devto"
	SourceReddit        = "reddit"
)

// Candidate is one piece of source content considered as topic fuel.
// Popularity is normalized within the batch it was fetched with and is
// not comparable across sources in absolute terms.
type Candidate struct {
	Title      string
	Source     string
	URL        string
	Popularity float64
	CreatedAt  time.Time
}

// Fetcher fetches raw items from one external API and maps them into
// candidates with a normalized popularity score.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Candidate, error)
	Name() string
}

// normalize scales raw scores into [0,1] relative to the batch maximum.
// An all-zero or negative batch yields zero popularity rather than a
// division error. Candidates and scores are index-aligned.
func normalize(scores []float64) []float64 {
	m := 0.0
	for _, s := range scores {
		if s > m {
			m = s
		}
	}
	if m <= 0 {
		m = 1
	}
	out := make([]float64, len(scores))
	for i, s := range scores {
		if s < 0 {
			s = 0
		}
		out[i] = s / m
	}
	return out
}
