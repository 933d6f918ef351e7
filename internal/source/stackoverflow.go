package source

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/trendscribe/trendscribe/config"
)

// StackOverflowFetcher pulls top-voted questions for a tag via the
// Stack Exchange API. The raw score is the question vote score.
type StackOverflowFetcher struct {
	cfg  config.StackOverflowConfig
	http *HTTPClient
}

func NewStackOverflowFetcher(cfg config.StackOverflowConfig, http *HTTPClient) *StackOverflowFetcher {
	return &StackOverflowFetcher{cfg: cfg, http: http}
}

func (f *StackOverflowFetcher) Name() string { return SourceStackOverflow }

func (f *StackOverflowFetcher) Fetch(ctx context.Context) ([]Candidate, error) {
	endpoint := f.cfg.Endpoint
	if endpoint == "" {
		endpoint = "https://api.stackexchange.com/2.3/questions"
	}

	params := url.Values{}
	params.Set("order", "desc")
	params.Set("sort", "votes")
	params.Set("tagged", f.cfg.Tag)
	params.Set("site", f.cfg.Site)
	params.Set("pagesize", fmt.Sprintf("%d", f.cfg.PageSize))
	if f.cfg.Key != "" {
		params.Set("key", f.cfg.Key)
	}

	var resp struct {
		Items []struct {
			Title        string `json:"title"`
			Link         string `json:"link"`
			Score        int    `json:"score"`
			CreationDate int64  `json:"creation_date"`
		} `json:"items"`
	}
	if err := f.http.GetJSON(ctx, endpoint+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("stackexchange fetch: %w", err)
	}

	scores := make([]float64, len(resp.Items))
	for i, it := range resp.Items {
		scores[i] = float64(it.Score)
	}
	pops := normalize(scores)

	out := make([]Candidate, 0, len(resp.Items))
	for i, it := range resp.Items {
		out = append(out, Candidate{
			Title:      it.Title,
			Source:     f.Name(),
			URL:        it.Link,
			Popularity: pops[i],
			CreatedAt:  time.Unix(it.CreationDate, 0).UTC(),
		})
	}
	return out, nil
}
