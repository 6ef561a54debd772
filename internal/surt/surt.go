// Package surt canonicalizes netlocs and derives Sort-friendly URI
// Reordering Transform keys: host labels reversed and comma-joined, so
// that sorting urls groups everything under one site together.
package surt

import (
	"net"
	"strings"

	"golang.org/x/net/idna"
)

// defaultPorts are dropped from the netloc when explicit.
var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
	"ftp":   "21",
}

// CanonicalNetloc case-folds and punycodes the host and drops the
// scheme's default port. Userinfo and ipv6 brackets survive untouched.
// It never fails: a host idna cannot encode stays case-folded as-is.
func CanonicalNetloc(scheme, netloc string) string {
	userinfo, hostport := splitUserinfo(netloc)
	host, port := splitHostPort(hostport)

	host = canonicalHost(host)
	if port != "" && port == defaultPorts[scheme] {
		port = ""
	}

	var b strings.Builder
	b.Grow(len(netloc))
	if userinfo != "" {
		b.WriteString(userinfo)
		b.WriteByte('@')
	}
	b.WriteString(host)
	if port != "" {
		b.WriteByte(':')
		b.WriteString(port)
	}
	return b.String()
}

// Hostname extracts the bare host from a netloc: no userinfo, no port,
// no ipv6 brackets.
func Hostname(netloc string) string {
	_, hostport := splitUserinfo(netloc)
	host, _ := splitHostPort(hostport)
	return trimBrackets(host)
}

// WithoutWWW drops a single leading www label. Hostnames where www is
// the registrable label itself (www.com) are left alone.
func WithoutWWW(hostname string) string {
	if rest, ok := strings.CutPrefix(hostname, "www."); ok && strings.Contains(rest, ".") {
		return rest
	}
	return hostname
}

// Key derives the SURT key of an already-canonical url: scheme and www
// dropped, host labels reversed and comma-joined (ip literals keep
// their order), port kept, then ')' and the path+query.
func Key(canonical string) string {
	rest := canonical
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
	} else if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
	}

	netloc, pathquery := rest, "/"
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		netloc, pathquery = rest[:i], rest[i:]
	}

	_, hostport := splitUserinfo(netloc)
	host, port := splitHostPort(hostport)
	host = WithoutWWW(trimBrackets(host))

	var b strings.Builder
	b.Grow(len(canonical))
	if net.ParseIP(host) != nil {
		b.WriteString(host)
	} else {
		labels := strings.Split(host, ".")
		for i := len(labels) - 1; i >= 0; i-- {
			b.WriteString(labels[i])
			if i > 0 {
				b.WriteByte(',')
			}
		}
	}
	if port != "" {
		b.WriteByte(':')
		b.WriteString(port)
	}
	b.WriteByte(')')
	b.WriteString(pathquery)
	return b.String()
}

func splitUserinfo(netloc string) (userinfo, hostport string) {
	if i := strings.LastIndexByte(netloc, '@'); i >= 0 {
		return netloc[:i], netloc[i+1:]
	}
	return "", netloc
}

func splitHostPort(hostport string) (host, port string) {
	if strings.HasPrefix(hostport, "[") {
		if i := strings.IndexByte(hostport, ']'); i >= 0 {
			if rest := hostport[i+1:]; strings.HasPrefix(rest, ":") {
				return hostport[:i+1], rest[1:]
			}
		}
		return hostport, ""
	}
	// a lone colon separates a port; more than one is a bare ipv6 host
	if i := strings.IndexByte(hostport, ':'); i >= 0 && strings.LastIndexByte(hostport, ':') == i {
		return hostport[:i], hostport[i+1:]
	}
	return hostport, ""
}

func canonicalHost(host string) string {
	host = strings.ToLower(host)
	if isASCII(host) || strings.HasPrefix(host, "[") {
		return host
	}
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		return ascii
	}
	return host
}

func trimBrackets(host string) string {
	return strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
