package canon

import (
	"log/slog"
	"regexp"
	"strings"
)

// Browsers tolerate a lot of garbage in href attributes, and html
// parsers add some of their own: improperly terminated urls that
// swallow the rest of the document, backslashes from Windows-flavored
// authoring, stray newlines. CleanLink repairs what a browser would
// repair, before any resolution happens.

var (
	slashRun     = regexp.MustCompile(`^(?i)(?:https?:)?/{3,}`)
	backslashRun = regexp.MustCompile(`^(?i)(?:https?:)?\\{2,}`)
)

// maxLinkLen is an arbitrary threshold for "runaway" links.
const maxLinkLen = 300

// IsAbsolute reports whether link is protocol-relative or carries an
// explicit http/https scheme.
func IsAbsolute(link string) bool {
	if strings.HasPrefix(link, "//") {
		return true
	}
	if len(link) >= 7 && strings.EqualFold(link[:7], "http://") {
		return true
	}
	if len(link) >= 8 && strings.EqualFold(link[:8], "https://") {
		return true
	}
	return false
}

// CleanLink cleans a raw href pulled out of a webpage. base is used for
// diagnostics only. An empty result means the link is unusable and the
// caller should fall back to its base. CleanLink never fails.
func CleanLink(link, base string) string {
	link = strings.TrimFunc(link, func(r rune) bool {
		return r <= 0x1f || r == ' '
	})

	// FF and Chrome read both ///example.com and http:///example.com
	// as a hostname.
	if m := slashRun.FindString(link); m != "" {
		link = strings.TrimRight(m, "/") + "//" + link[len(m):]
	}
	// ditto for \\example.com, which also fixes up http:\\
	if m := backslashRun.FindString(link); m != "" {
		link = strings.TrimRight(m, `\`) + "//" + link[len(m):]
	}

	// a \ directly after the hostname acts as the first /
	if IsAbsolute(link) {
		start := strings.Index(link, "://") + 3 // lands after // either way
		rest := link[start:]
		if i := strings.IndexAny(rest, `\/?#`); i >= 0 && rest[i] == '\\' {
			link = link[:start] + strings.Replace(rest, `\`, "/", 1)
		}
	}

	// Runaway urls. At this point there is no telling which urls were
	// properly delimited in the html, so only molest ones that seem
	// awfully long. Browsers truncate undelimited urls at characters
	// that are rare in urls and common in markup.
	if len(link) > maxLinkLen {
		if i := strings.IndexAny(link, "<>\"'\r\n "); i >= 0 {
			link = link[:i]
		}
		if len(link) > maxLinkLen {
			slog.Info("discarding invalid-looking link", "base", base, "link", link)
			return ""
		}
	}

	link = strings.ReplaceAll(link, "\r", "")
	return strings.ReplaceAll(link, "\n", "")
}

// NormalizeSeed readies a seed-list entry. Seed lists are rarely clean,
// so a missing scheme defaults to http.
func NormalizeSeed(seed string) string {
	if parts, err := split(seed); err == nil && parts.Scheme != "" {
		return seed
	}
	if strings.HasPrefix(seed, "//") {
		return "http:" + seed
	}
	return "http://" + seed
}
