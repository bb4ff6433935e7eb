package storage

import (
	"strings"
)

// PathResolver maps a public image URL back to the object path used to
// delete it. An unresolved URL means "not storage backed": callers skip
// it and log a warning, they never fail on it.
type PathResolver struct {
	matchers []matcher
}

type matcher func(url string) (string, bool)

func NewPathResolver(bucketName string) *PathResolver {
	return &PathResolver{
		matchers: []matcher{
			segmentMatcher("/" + bucketName + "/"),
			segmentMatcher("/object/public/"),
			barePathMatcher,
			filenameMatcher,
		},
	}
}

// Resolve tries each matcher in order, first match wins.
func (r *PathResolver) Resolve(url string) (string, bool) {
	url = stripQuery(url)
	for _, match := range r.matchers {
		if path, ok := match(url); ok && path != "" {
			return path, true
		}
	}
	return "", false
}

// segmentMatcher takes everything after the first occurrence of segment.
func segmentMatcher(segment string) matcher {
	return func(url string) (string, bool) {
		idx := strings.Index(url, segment)
		if idx < 0 {
			return "", false
		}
		return url[idx+len(segment):], true
	}
}

// barePathMatcher keeps an already-resolved object path unchanged, so
// resolving is idempotent.
func barePathMatcher(url string) (string, bool) {
	if strings.Contains(url, "://") {
		return "", false
	}
	if !strings.Contains(lastToken(url), ".") {
		return "", false
	}
	return strings.TrimPrefix(url, "/"), true
}

// filenameMatcher falls back to the final path token when it looks like
// a filename.
func filenameMatcher(url string) (string, bool) {
	token := lastToken(url)
	if !strings.Contains(token, ".") {
		return "", false
	}
	return token, true
}

func lastToken(url string) string {
	idx := strings.LastIndex(url, "/")
	if idx < 0 {
		return url
	}
	return url[idx+1:]
}

func stripQuery(url string) string {
	if idx := strings.IndexAny(url, "?#"); idx >= 0 {
		return url[:idx]
	}
	return url
}
