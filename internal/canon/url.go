package canon

import (
	"log/slog"
	"strings"

	"github.com/shadycyan/urlcanon/internal/domain"
	"github.com/shadycyan/urlcanon/internal/surt"
)

// URL is the canonical form of a link, with everything the crawl needs
// precomputed at construction. A URL is immutable: the factories either
// return a fully built value or an error, never something partial.
// Construction is cpu-heavy (two structural splits, idna, suffix
// lookup), so callers typically run it inside their own worker pools;
// nothing here needs locking afterwards.
type URL struct {
	url                string
	split              Split
	netloc             string
	hostname           string
	hostnameWithoutWWW string
	surtKey            string
	registeredDomain   string
	originalFrag       string
}

// Parse builds a URL from a raw absolute link.
func Parse(raw string) (*URL, error) { return build(raw, nil, false) }

// ParseSeed builds a URL from a seed-list entry, which may lack a
// scheme.
func ParseSeed(raw string) (*URL, error) { return build(raw, nil, true) }

// ParseWithBase builds a URL from a raw link found on base, resolving
// relative references against it. base may be nil.
func ParseWithBase(raw string, base *URL) (*URL, error) { return build(raw, base, false) }

// ParseRef is ParseWithBase for callers holding the base as a string.
func ParseRef(raw, base string) (*URL, error) {
	b, err := Parse(base)
	if err != nil {
		return nil, err
	}
	return build(raw, b, false)
}

func build(raw string, base *URL, seed bool) (*URL, error) {
	if seed {
		raw = NormalizeSeed(raw)
	}

	baseStr := ""
	if base != nil {
		baseStr = base.url
	}
	raw = CleanLink(raw, baseStr)

	if base != nil {
		switch {
		case strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://"):
			// already absolute
		case strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//"):
			// dodge the full resolution cost for the common case
			raw = base.split.Scheme + "://" + base.hostname + raw
		default:
			resolved, err := resolveReference(base.url, raw)
			if err != nil {
				return nil, err
			}
			raw = resolved
		}
	}

	canonical, frag, err := Canonicalize(raw)
	if err != nil {
		slog.Info("dropping unparseable link", "link", raw, "base", baseStr, "error", err)
		return nil, err
	}

	parts, err := split(canonical)
	if err != nil {
		slog.Info("invalid url out of canonicalization", "url", canonical, "error", err)
		return nil, err
	}
	if parts.Path == "" {
		parts.Path = "/"
	}
	parts.Netloc = surt.CanonicalNetloc(parts.Scheme, parts.Netloc)

	u := &URL{
		split:        parts,
		netloc:       parts.Netloc,
		originalFrag: frag,
	}
	u.url = join(parts)
	u.hostname = surt.Hostname(parts.Netloc)
	u.hostnameWithoutWWW = surt.WithoutWWW(u.hostname)
	u.surtKey = surt.Key(u.url)
	u.registeredDomain = domain.Registered(u.hostname)
	return u, nil
}

// String returns the canonical url. The fragment is never part of it.
func (u *URL) String() string { return u.url }

// Split returns the structural view of the canonical url. Fragment is
// always empty there; see OriginalFrag.
func (u *URL) Split() Split { return u.split }

func (u *URL) Netloc() string   { return u.netloc }
func (u *URL) Hostname() string { return u.hostname }

// HostnameWithoutWWW returns the hostname with a single leading www
// label removed, when one was present.
func (u *URL) HostnameWithoutWWW() string { return u.hostnameWithoutWWW }

// SURT returns the sort-friendly reordering key of the canonical url.
func (u *URL) SURT() string { return u.surtKey }

// RegisteredDomain returns the public-suffix-aware pay-level domain,
// or "" when the host has none.
func (u *URL) RegisteredDomain() string { return u.registeredDomain }

// OriginalFrag returns the fragment as authored, '#' included, or ""
// when the link had none.
func (u *URL) OriginalFrag() string { return u.originalFrag }
