package canon

import (
	"strings"

	"github.com/shadycyan/urlcanon/internal/surt"
)

// Canonicalize applies every transformation that cannot change which
// resource the url names: selective percent-decoding, scheme and host
// case-folding, punycoding, default-port removal and dot-segment
// resolution. The fragment comes back separately, '#'-prefixed, and
// never appears in the canonical string. The result is RFC 3986
// equivalent to the input; a structurally unparseable input is
// ErrInvalidURL, propagated rather than defaulted.
func Canonicalize(url string) (canonical, frag string, err error) {
	url = Unquote(url, unreserved)

	parts, err := split(url)
	if err != nil {
		return "", "", err
	}

	parts.Scheme = strings.ToLower(parts.Scheme)
	parts.Netloc = surt.CanonicalNetloc(parts.Scheme, parts.Netloc)

	if parts.Path == "" {
		parts.Path = "/"
	}
	parts.Path, err = RemoveDotSegments(parts.Path)
	if err != nil {
		return "", "", err
	}
	// needed for Windows-flavored authoring
	parts.Path = strings.ReplaceAll(parts.Path, `\`, "/")
	parts.Path = Unquote(parts.Path, unquoteInPath)

	parts.Query = Unquote(parts.Query, unquoteInQuery)

	if parts.Fragment != "" {
		frag = "#" + Unquote(parts.Fragment, unquoteInFrag)
	}
	parts.Fragment = ""

	return join(parts), frag, nil
}
