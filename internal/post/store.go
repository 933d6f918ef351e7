package post

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/trendscribe/trendscribe/internal/topic"
)

// frontMatter is the metadata header rendered at the top of every post.
type frontMatter struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Date        time.Time `yaml:"date"`
	Canonical   string    `yaml:"canonical,omitempty"`
	Sources     []string  `yaml:"sources,omitempty"`
}

// Store writes finished articles as dated Markdown files.
type Store struct {
	dir string
	now func() time.Time
}

func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// NewStoreWithClock pins the clock, for tests.
func NewStoreWithClock(dir string, now func() time.Time) *Store {
	return &Store{dir: dir, now: now}
}

// CreatePost writes the article for t under the posts directory as
// <date>-<id>.md with YAML front matter and returns the file path.
func (s *Store) CreatePost(t topic.Topic, body string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating posts dir: %w", err)
	}

	now := s.now().UTC()
	fm := frontMatter{
		Title:       t.Title,
		Description: t.Description,
		Date:        now,
		Canonical:   t.PrimaryURL,
		Sources:     t.SupportingURLs,
	}
	meta, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("encoding front matter: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(meta)
	sb.WriteString("---\n\n")
	sb.WriteString(fmt.Sprintf("# %s\n\n", t.Title))
	sb.WriteString(strings.TrimSpace(body))
	sb.WriteString("\n")

	name := fmt.Sprintf("%s-%s.md", now.Format("2006-01-02"), t.ID)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing post: %w", err)
	}
	return path, nil
}
