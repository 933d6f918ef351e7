package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/trendscribe/trendscribe/config"
	"github.com/trendscribe/trendscribe/internal/source"
	"github.com/trendscribe/trendscribe/internal/topic"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Client talks to an OpenAI-compatible chat completions backend. It is
// the only component allowed to spend tokens; everything else treats its
// output as opaque text.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
}

// Message represents a message in a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type response struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewClient(cfg config.LLMConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 2 * time.Minute
	}
	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     baseURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// Cluster asks the backend to cluster candidates into topic lines. The
// reply is expected, but not guaranteed, to hold 10 "title | description"
// lines; the topic resolver tolerates anything else.
func (c *Client) Cluster(ctx context.Context, candidates []source.Candidate) (string, error) {
	messages := []Message{
		{Role: "system", Content: clusterSystemPrompt},
		{Role: "user", Content: formatCandidates(candidates)},
	}
	return c.sendRequest(ctx, messages)
}

// Author asks the backend for a full Markdown article body for the topic.
func (c *Client) Author(ctx context.Context, t topic.Topic) (string, error) {
	messages := []Message{
		{Role: "system", Content: authorSystemPrompt},
		{Role: "user", Content: formatTopic(t)},
	}
	return c.sendRequest(ctx, messages)
}

func formatCandidates(candidates []source.Candidate) string {
	var sb strings.Builder
	for i, cand := range candidates {
		sb.WriteString(fmt.Sprintf("[%d] Title: %s\n", i, cand.Title))
		sb.WriteString(fmt.Sprintf("    Source: %s\n", cand.Source))
		sb.WriteString(fmt.Sprintf("    Popularity: %.2f\n", cand.Popularity))
		sb.WriteString(fmt.Sprintf("    URL: %s\n\n", cand.URL))
	}
	return sb.String()
}

func formatTopic(t topic.Topic) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Topic: %s\n", t.Title))
	sb.WriteString(fmt.Sprintf("Description: %s\n", t.Description))
	if t.PrimaryURL != "" {
		sb.WriteString(fmt.Sprintf("Reference discussion: %s\n", t.PrimaryURL))
	}
	return sb.String()
}

func (c *Client) sendRequest(ctx context.Context, messages []Message) (string, error) {
	body := request{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}
	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status: %d", resp.StatusCode)
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return out.Choices[0].Message.Content, nil
}
