package canon

import (
	"fmt"
	"strings"
)

// Split is the structural (scheme, netloc, path, query, fragment) view
// of a url. Splitting is purely positional: nothing is decoded and
// nothing is re-encoded.
type Split struct {
	Scheme   string
	Netloc   string
	Path     string
	Query    string
	Fragment string
}

// split separates url into its five components. The scheme must open
// with a letter, the netloc runs from "//" to the next / ? or end, and
// bracket balance in the netloc is the one structural error worth
// rejecting outright.
func split(url string) (Split, error) {
	var parts Split
	rest := url

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		parts.Fragment = rest[i+1:]
		rest = rest[:i]
	}

	if i := strings.IndexByte(rest, ':'); i > 0 && validScheme(rest[:i]) {
		parts.Scheme = rest[:i]
		rest = rest[i+1:]
	}

	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		end := strings.IndexAny(rest, "/?")
		if end < 0 {
			end = len(rest)
		}
		parts.Netloc = rest[:end]
		rest = rest[end:]
		if strings.Contains(parts.Netloc, "[") != strings.Contains(parts.Netloc, "]") {
			return Split{}, fmt.Errorf("%w: unbalanced brackets in netloc: %q", ErrInvalidURL, url)
		}
	}

	if i := strings.IndexByte(rest, '?'); i >= 0 {
		parts.Query = rest[i+1:]
		rest = rest[:i]
	}
	parts.Path = rest
	return parts, nil
}

func validScheme(s string) bool {
	if s == "" || !isAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isAlpha(c) && !(c >= '0' && c <= '9') && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// join reassembles components. The canonical pipeline always passes an
// empty fragment: for crawl purposes a fragment never changes which
// resource is retrieved.
func join(parts Split) string {
	var b strings.Builder
	if parts.Scheme != "" {
		b.WriteString(parts.Scheme)
		b.WriteByte(':')
	}
	if parts.Netloc != "" || strings.HasPrefix(parts.Path, "//") {
		b.WriteString("//")
		b.WriteString(parts.Netloc)
		if parts.Path != "" && !strings.HasPrefix(parts.Path, "/") {
			b.WriteByte('/')
		}
	}
	b.WriteString(parts.Path)
	if parts.Query != "" {
		b.WriteByte('?')
		b.WriteString(parts.Query)
	}
	if parts.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(parts.Fragment)
	}
	return b.String()
}
