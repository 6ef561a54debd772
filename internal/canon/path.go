package canon

import (
	"fmt"
	"strings"
)

// RemoveDotSegments resolves "." and ".." segments per RFC 3986. The
// paths seen here come out of non-relative urls, so the input must
// begin with '/'. ".." at the root is silently discarded rather than
// escaping above it. Repeated slashes collapse, except that a trailing
// slash survives.
func RemoveDotSegments(path string) (string, error) {
	if path == "" || path[0] != '/' {
		return "", fmt.Errorf("%w: must start with /: %q", ErrInvalidPath, path)
	}

	segments := strings.Split(path, "/")[1:]
	last := len(segments) - 1

	resolved := make([]string, 0, len(segments))
	for i, s := range segments {
		switch {
		case s == "" && i != last:
			// interior empty segment, would render as //
		case s == ".":
		case s == "..":
			if len(resolved) > 0 {
				resolved = resolved[:len(resolved)-1]
			}
		default:
			resolved = append(resolved, s)
		}
	}
	return "/" + strings.Join(resolved, "/"), nil
}
