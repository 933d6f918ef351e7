package topic

import (
	"strings"

	"github.com/trendscribe/trendscribe/internal/source"
)

// maxTopics caps how many clustered lines become topics per run. The
// clustering backend is asked for exactly this many but is not trusted
// to comply.
const maxTopics = 10

// ParseClustered turns the clustering backend's line-oriented output into
// topics. Each useful line looks like "title | description"; lines without
// a pipe are skipped rather than treated as errors because the producer is
// not under our control. Each topic is re-linked to the best-matching
// candidate in pool for its primary URL.
func ParseClustered(raw string, pool []source.Candidate) []Topic {
	var topics []Topic
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < 2 {
			continue
		}
		title := strings.TrimSpace(parts[0])
		// Descriptions may legitimately contain a pipe; stitch the rest
		// back together.
		rest := make([]string, 0, len(parts)-1)
		for _, p := range parts[1:] {
			rest = append(rest, strings.TrimSpace(p))
		}
		description := strings.Join(rest, " | ")

		t := Topic{
			ID:          Slugify(title),
			Title:       title,
			Description: description,
		}
		if best := bestMatch(title, pool); best != nil {
			t.PrimaryURL = best.URL
			t.SupportingURLs = []string{best.URL}
		}
		topics = append(topics, t)
		if len(topics) == maxTopics {
			break
		}
	}
	return topics
}

// bestMatch finds the pool candidate whose title shares the most words
// with target. Cheap bag-of-words overlap, not semantic matching; ties
// keep the earliest candidate in pool order. Returns nil when nothing
// overlaps at all.
func bestMatch(target string, pool []source.Candidate) *source.Candidate {
	targetWords := strings.Fields(strings.ToLower(target))

	bestScore := 0
	var best *source.Candidate
	for i := range pool {
		words := map[string]bool{}
		for _, w := range strings.Fields(strings.ToLower(pool[i].Title)) {
			words[w] = true
		}
		score := 0
		for _, w := range targetWords {
			if words[w] {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = &pool[i]
		}
	}
	return best
}
