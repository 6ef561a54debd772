// Package domain answers "what is the pay-level domain of this host"
// using the public suffix list.
package domain

import (
	"net"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// includePrivate selects whether psl private-section rules (blogspot.com
// and friends) count as suffixes, making every subdomain its own
// registered domain. Crawls that treat *.blogspot.com as distinct sites
// want true; set once at process start, before any lookups.
var includePrivate = true

// IncludePrivateSuffixes configures the suffix policy. Call before the
// first Registered lookup.
func IncludePrivateSuffixes(v bool) { includePrivate = v }

// Registered returns the public-suffix-aware registered domain of
// hostname, or "" when it has none (ip literals, bare suffixes).
func Registered(hostname string) string {
	hostname = strings.ToLower(strings.Trim(hostname, "."))
	if hostname == "" || net.ParseIP(strings.Trim(hostname, "[]")) != nil {
		return ""
	}

	suffix, icann := publicsuffix.PublicSuffix(hostname)
	if !includePrivate {
		// walk a private rule up to the nearest icann rule
		for !icann && strings.Contains(suffix, ".") {
			candidate := suffix[strings.IndexByte(suffix, '.')+1:]
			suffix, icann = publicsuffix.PublicSuffix(candidate)
		}
	}
	if suffix == hostname {
		return ""
	}

	prefix := strings.TrimSuffix(hostname, "."+suffix)
	if prefix == hostname || prefix == "" {
		return ""
	}
	if i := strings.LastIndexByte(prefix, '.'); i >= 0 {
		prefix = prefix[i+1:]
	}
	return prefix + "." + suffix
}
