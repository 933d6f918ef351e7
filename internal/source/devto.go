package source

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/trendscribe/trendscribe/config"
)

// DevtoFetcher pulls recent top articles for a tag from the Dev.to API.
// The raw score is the public reaction count.
type DevtoFetcher struct {
	cfg  config.DevtoConfig
	http *HTTPClient
}

func NewDevtoFetcher(cfg config.DevtoConfig, http *HTTPClient) *DevtoFetcher {
	return &DevtoFetcher{cfg: cfg, http: http}
}

func (f *DevtoFetcher) Name() string { return SourceDevto }

func (f *DevtoFetcher) Fetch(ctx context.Context) ([]Candidate, error) {
	endpoint := f.cfg.Endpoint
	if endpoint == "" {
		endpoint = "https://dev.to/api/articles"
	}

	params := url.Values{}
	params.Set("tag", f.cfg.Tag)
	params.Set("top", "7")
	params.Set("per_page", fmt.Sprintf("%d", f.cfg.PageSize))

	var headers map[string]string
	if f.cfg.APIKey != "" {
		headers = map[string]string{"api-key": f.cfg.APIKey}
	}

	var resp []struct {
		Title       string    `json:"title"`
		URL         string    `json:"url"`
		Reactions   int       `json:"public_reactions_count"`
		PublishedAt time.Time `json:"published_at"`
	}
	if err := f.http.GetJSON(ctx, endpoint+"?"+params.Encode(), headers, &resp); err != nil {
		return nil, fmt.Errorf("devto fetch: %w", err)
	}

	scores := make([]float64, len(resp))
	for i, a := range resp {
		scores[i] = float64(a.Reactions)
	}
	pops := normalize(scores)

	out := make([]Candidate, 0, len(resp))
	for i, a := range resp {
		out = append(out, Candidate{
			Title:      a.Title,
			Source:     f.Name(),
			URL:        a.URL,
			Popularity: pops[i],
			CreatedAt:  a.PublishedAt.UTC(),
		})
	}
	return out, nil
}
