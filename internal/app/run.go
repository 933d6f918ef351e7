package app

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/trendscribe/trendscribe/internal/history"
	"github.com/trendscribe/trendscribe/internal/source"
	"github.com/trendscribe/trendscribe/internal/topic"
)

// Generator is the generative backend the pipeline delegates clustering
// and authoring to.
type Generator interface {
	Cluster(ctx context.Context, candidates []source.Candidate) (string, error)
	Author(ctx context.Context, t topic.Topic) (string, error)
}

// PostStore persists one finished article and returns where it landed.
type PostStore interface {
	CreatePost(t topic.Topic, body string) (string, error)
}

// LedgerStore loads and saves the usage ledger.
type LedgerStore interface {
	Load() *history.Ledger
	Save(l *history.Ledger) error
}

// Pipeline is one full discover-cluster-select-author-publish run.
type Pipeline struct {
	collector  *source.Collector
	generator  Generator
	gate       *history.Gate
	ledgers    LedgerStore
	posts      PostStore
	windowDays int
	logger     *log.Logger
}

func NewPipeline(collector *source.Collector, generator Generator, gate *history.Gate, ledgers LedgerStore, posts PostStore, windowDays int, logger *log.Logger) *Pipeline {
	return &Pipeline{
		collector:  collector,
		generator:  generator,
		gate:       gate,
		ledgers:    ledgers,
		posts:      posts,
		windowDays: windowDays,
		logger:     logger,
	}
}

// Run executes one pipeline pass. It returns the written post path, or
// "" when there was nothing to publish (a normal outcome, not an error).
// The post file and the ledger entry are only written together, after
// every earlier stage has succeeded.
func (p *Pipeline) Run(ctx context.Context) (string, error) {
	runID := uuid.NewString()
	p.logger.Printf("[RUN %s] starting", runID)

	candidates, err := p.collector.Collect(ctx)
	if err != nil {
		return "", fmt.Errorf("collecting candidates: %w", err)
	}
	if len(candidates) == 0 {
		p.logger.Printf("[RUN %s] no candidates from any source, nothing to do", runID)
		return "", nil
	}
	p.logger.Printf("[RUN %s] collected %d candidates", runID, len(candidates))

	raw, err := p.generator.Cluster(ctx, candidates)
	if err != nil {
		return "", fmt.Errorf("clustering candidates: %w", err)
	}

	topics := topic.ParseClustered(raw, candidates)
	if len(topics) == 0 {
		p.logger.Printf("[RUN %s] clustering produced no usable topics, nothing to publish", runID)
		return "", nil
	}
	p.logger.Printf("[RUN %s] resolved %d topics", runID, len(topics))

	ledger := p.ledgers.Load()
	chosen := p.gate.Select(topics, ledger, p.windowDays)
	p.logger.Printf("[RUN %s] selected topic %q (%s)", runID, chosen.Title, chosen.ID)

	body, err := p.generator.Author(ctx, chosen)
	if err != nil {
		return "", fmt.Errorf("authoring article: %w", err)
	}

	path, err := p.posts.CreatePost(chosen, body)
	if err != nil {
		return "", fmt.Errorf("writing post: %w", err)
	}

	ledger.Append(chosen.ID, p.gate.Now())
	if err := p.ledgers.Save(ledger); err != nil {
		return "", fmt.Errorf("saving ledger: %w", err)
	}

	p.logger.Printf("[RUN %s] published %s", runID, path)
	return path, nil
}
