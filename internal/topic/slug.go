package topic

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpacing = regexp.MustCompile(`[\s_]+`)
	slugHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a stable URL-safe id from a title. The "c#" and ".net"
// replacements run before general cleanup so those language names survive
// punctuation stripping. The output is deterministic: the same title always
// slugs to the same id.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = strings.ReplaceAll(s, "c#", "csharp")
	s = strings.ReplaceAll(s, ".net", "net")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSpacing.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
