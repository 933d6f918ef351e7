package source

import (
	"context"
	"log"
	"sort"
	"sync"
)

// Collector fans out to every configured fetcher, merges the batches and
// keeps the globally best candidates.
type Collector struct {
	fetchers    []Fetcher
	maxCombined int
	logger      *log.Logger
}

func NewCollector(fetchers []Fetcher, maxCombined int, logger *log.Logger) *Collector {
	return &Collector{fetchers: fetchers, maxCombined: maxCombined, logger: logger}
}

// Collect runs all fetchers concurrently and waits for every one of them.
// A fetcher that fails contributes an empty batch; the error is logged and
// swallowed so that two dead sources cannot take down the run. Cancellation
// is the exception: it aborts the whole collect.
func (c *Collector) Collect(ctx context.Context) ([]Candidate, error) {
	batches := make([][]Candidate, len(c.fetchers))

	var wg sync.WaitGroup
	for i, f := range c.fetchers {
		wg.Add(1)
		go func(i int, f Fetcher) {
			defer wg.Done()
			got, err := f.Fetch(ctx)
			if err != nil {
				c.logger.Printf("[SOURCE] %s unavailable: %v", f.Name(), err)
				return
			}
			c.logger.Printf("[SOURCE] %s returned %d candidates", f.Name(), len(got))
			batches[i] = got
		}(i, f)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var merged []Candidate
	for _, b := range batches {
		merged = append(merged, b...)
	}

	// Stable keeps same-score candidates in source order.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Popularity > merged[j].Popularity
	})
	if c.maxCombined > 0 && len(merged) > c.maxCombined {
		merged = merged[:c.maxCombined]
	}
	return merged, nil
}
