package topic

import (
	"fmt"
	"strings"
	"testing"

	"github.com/trendscribe/trendscribe/internal/source"
)

func TestParseClustered_CapsAtTen(t *testing.T) {
	var lines []string
	for i := 0; i < 12; i++ {
		if i == 3 || i == 7 {
			lines = append(lines, fmt.Sprintf("malformed line %d without separator", i))
			continue
		}
		lines = append(lines, fmt.Sprintf("Topic %d | description %d", i, i))
	}
	// 12 lines, 2 without a pipe: the first 10 valid lines become topics.
	raw := strings.Join(lines, "\n")

	topics := ParseClustered(raw, nil)
	if len(topics) != 10 {
		t.Fatalf("expected 10 topics, got %d", len(topics))
	}
	if topics[0].Title != "Topic 0" {
		t.Fatalf("expected first topic to be Topic 0, got %q", topics[0].Title)
	}
	// Indices 3 and 7 were malformed, so the 10th valid line is index 11.
	if topics[9].Title != "Topic 11" {
		t.Fatalf("expected last topic to be Topic 11, got %q", topics[9].Title)
	}
}

func TestParseClustered_SkipsBlankAndPipelessLines(t *testing.T) {
	raw := "\n\n   \nno separator here\n\t\n"
	if topics := ParseClustered(raw, nil); len(topics) != 0 {
		t.Fatalf("expected 0 topics, got %d", len(topics))
	}
}

func TestParseClustered_DescriptionKeepsExtraPipes(t *testing.T) {
	raw := "Pattern Matching | covers switch | case | guards"
	topics := ParseClustered(raw, nil)
	if len(topics) != 1 {
		t.Fatalf("expected 1 topic, got %d", len(topics))
	}
	if topics[0].Description != "covers switch | case | guards" {
		t.Fatalf("unexpected description %q", topics[0].Description)
	}
}

func TestParseClustered_DerivesSlugID(t *testing.T) {
	topics := ParseClustered("Understanding C# 13 and .NET 9 Performance | perf deep dive", nil)
	if len(topics) != 1 {
		t.Fatalf("expected 1 topic, got %d", len(topics))
	}
	if topics[0].ID != "understanding-csharp-13-and-net-9-performance" {
		t.Fatalf("unexpected id %q", topics[0].ID)
	}
}

func TestParseClustered_LinksBestCandidate(t *testing.T) {
	pool := []source.Candidate{
		{Title: "Garbage collection pauses in production", URL: "https://example.com/gc"},
		{Title: "Async streams deep dive", URL: "https://example.com/async"},
	}
	topics := ParseClustered("Async Streams Explained | how async streams work", pool)
	if len(topics) != 1 {
		t.Fatalf("expected 1 topic, got %d", len(topics))
	}
	if topics[0].PrimaryURL != "https://example.com/async" {
		t.Fatalf("expected async candidate, got %q", topics[0].PrimaryURL)
	}
	if len(topics[0].SupportingURLs) != 1 || topics[0].SupportingURLs[0] != "https://example.com/async" {
		t.Fatalf("unexpected supporting urls %v", topics[0].SupportingURLs)
	}
}

func TestParseClustered_NoOverlapLeavesURLsEmpty(t *testing.T) {
	pool := []source.Candidate{
		{Title: "completely unrelated words", URL: "https://example.com/x"},
	}
	topics := ParseClustered("Quantum Entanglement | physics corner", pool)
	if len(topics) != 1 {
		t.Fatalf("expected 1 topic, got %d", len(topics))
	}
	if topics[0].PrimaryURL != "" {
		t.Fatalf("expected empty primary url, got %q", topics[0].PrimaryURL)
	}
	if len(topics[0].SupportingURLs) != 0 {
		t.Fatalf("expected no supporting urls, got %v", topics[0].SupportingURLs)
	}
}

func TestBestMatch_TieKeepsFirstCandidate(t *testing.T) {
	pool := []source.Candidate{
		{Title: "async streams intro", URL: "https://example.com/first"},
		{Title: "async streams again", URL: "https://example.com/second"},
	}
	best := bestMatch("async streams", pool)
	if best == nil {
		t.Fatal("expected a match")
	}
	if best.URL != "https://example.com/first" {
		t.Fatalf("expected first candidate on tie, got %q", best.URL)
	}
}

func TestBestMatch_DuplicateTargetWordsCount(t *testing.T) {
	pool := []source.Candidate{
		{Title: "go go gadget", URL: "https://example.com/a"},
		{Title: "gadget reviews weekly edition", URL: "https://example.com/b"},
	}
	// "go go go gadget" scores 4 against the first title (duplicates in the
	// target count individually) and 1 against the second.
	best := bestMatch("go go go gadget", pool)
	if best == nil || best.URL != "https://example.com/a" {
		t.Fatalf("expected first candidate, got %+v", best)
	}
}
