package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization.
var pathPatterns = []*PathPattern{
	// Post permalinks carry two free-form segments
	{Pattern: regexp.MustCompile(`^/posts/u/[^/]+/[^/]+$`), Template: "/posts/u/:username/:slug"},

	// Tag detail routes (if added later, matched before the static list route)
	{Pattern: regexp.MustCompile(`^/tags/[^/]+$`), Template: "/tags/:name"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Permalink paths like /posts/u/alice/hello-world
// collapse to /posts/u/:username/:slug; static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/posts/u/alice/hello")   // "/posts/u/:username/:slug"
//	NormalizePath("/posts/random")          // "/posts/random" (unchanged)
//	NormalizePath("/posts")                 // "/posts" (unchanged)
//	NormalizePath("/healthz")               // "/healthz" (unchanged)
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/posts?offset=20")       // "/posts"
//	NormalizePath("/posts/u/alice/hello/")  // "/posts/u/:username/:slug"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// No match found. Static paths like /posts, /tags, /healthz and
	// /metrics pass through unchanged.
	return path
}
