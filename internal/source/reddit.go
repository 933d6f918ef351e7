package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/trendscribe/trendscribe/config"
)

// RedditFetcher pulls the day's top posts from a subreddit using the
// public JSON listing. The raw score is the upvote count. Reddit
// rejects requests without a descriptive User-Agent.
type RedditFetcher struct {
	cfg  config.RedditConfig
	http *HTTPClient
}

func NewRedditFetcher(cfg config.RedditConfig, http *HTTPClient) *RedditFetcher {
	return &RedditFetcher{cfg: cfg, http: http}
}

func (f *RedditFetcher) Name() string { return SourceReddit }

func (f *RedditFetcher) Fetch(ctx context.Context) ([]Candidate, error) {
	endpoint := f.cfg.Endpoint
	if endpoint == "" {
		endpoint = "https://www.reddit.com"
	}
	endpoint = strings.TrimRight(endpoint, "/")

	params := url.Values{}
	params.Set("t", "day")
	params.Set("limit", fmt.Sprintf("%d", f.cfg.PageSize))

	userAgent := f.cfg.UserAgent
	if userAgent == "" {
		userAgent = "trendscribe/1.0"
	}
	headers := map[string]string{"User-Agent": userAgent}

	var resp struct {
		Data struct {
			Children []struct {
				Data struct {
					Title      string  `json:"title"`
					Permalink  string  `json:"permalink"`
					Ups        int     `json:"ups"`
					CreatedUTC float64 `json:"created_utc"`
				} `json:"data"`
			} `json:"children"`
		} `json:"data"`
	}
	reqURL := fmt.Sprintf("%s/r/%s/top.json?%s", endpoint, f.cfg.Subreddit, params.Encode())
	if err := f.http.GetJSON(ctx, reqURL, headers, &resp); err != nil {
		return nil, fmt.Errorf("reddit fetch: %w", err)
	}

	scores := make([]float64, len(resp.Data.Children))
	for i, c := range resp.Data.Children {
		scores[i] = float64(c.Data.Ups)
	}
	pops := normalize(scores)

	out := make([]Candidate, 0, len(resp.Data.Children))
	for i, c := range resp.Data.Children {
		out = append(out, Candidate{
			Title:      c.Data.Title,
			Source:     f.Name(),
			URL:        endpoint + c.Data.Permalink,
			Popularity: pops[i],
			CreatedAt:  time.Unix(int64(c.Data.CreatedUTC), 0).UTC(),
		})
	}
	return out, nil
}
