package canon

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "Canonical form",
			raw:      "HTTP://Example.COM:80/a/./b/../c",
			expected: "http://example.com/a/c",
		},
		{
			name:     "Root path default",
			raw:      "http://example.com",
			expected: "http://example.com/",
		},
		{
			name:     "Messy link survives",
			raw:      " http:///example.com/a\nb ",
			expected: "http://example.com/ab",
		},
		{
			name:     "Punycode host",
			raw:      "http://bücher.example/x",
			expected: "http://xn--bcher-kva.example/x",
		},
		{
			name:     "Fragment excluded",
			raw:      "http://example.com/p#frag",
			expected: "http://example.com/p",
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Parse(tt.raw)
			if err != nil {
				t.Errorf("Test %v - '%s' FAIL: unexpected error: %v", i, tt.name, err)
				return
			}
			if u.String() != tt.expected {
				t.Errorf("Test %v - '%s' FAIL: expected %q, actual %q", i, tt.name, tt.expected, u.String())
			}
		})
	}
}

func TestParseDerivedFields(t *testing.T) {
	u, err := Parse("HTTPS://User@WWW.Example.CO.UK:443/a/b?c=d#Frag")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if u.String() != "https://User@www.example.co.uk/a/b?c=d" {
		t.Errorf("url FAIL: actual %q", u.String())
	}
	if u.Netloc() != "User@www.example.co.uk" {
		t.Errorf("netloc FAIL: actual %q", u.Netloc())
	}
	if u.Hostname() != "www.example.co.uk" {
		t.Errorf("hostname FAIL: actual %q", u.Hostname())
	}
	if u.HostnameWithoutWWW() != "example.co.uk" {
		t.Errorf("hostname without www FAIL: actual %q", u.HostnameWithoutWWW())
	}
	if u.RegisteredDomain() != "example.co.uk" {
		t.Errorf("registered domain FAIL: actual %q", u.RegisteredDomain())
	}
	if u.OriginalFrag() != "#Frag" {
		t.Errorf("fragment FAIL: actual %q", u.OriginalFrag())
	}
	if u.Split().Fragment != "" {
		t.Errorf("split fragment FAIL: must be empty, actual %q", u.Split().Fragment)
	}
	if u.Split().Path != "/a/b" {
		t.Errorf("split path FAIL: actual %q", u.Split().Path)
	}
}

func TestParseSURTKey(t *testing.T) {
	u, err := Parse("https://www.example.com/a?b=c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.SURT() != "com,example)/a?b=c" {
		t.Errorf("surt FAIL: actual %q", u.SURT())
	}
}

func TestParseIdempotent(t *testing.T) {
	raws := []string{
		"HTTP://Example.COM:80/a/./b/../c?x=%2cy#frag",
		"http://example.com",
		"https://www.bücher.example/a%2Fb?c=%26d",
		"http://example.com:8080/x/",
	}

	for i, raw := range raws {
		u, err := Parse(raw)
		if err != nil {
			t.Errorf("Test %v FAIL: unexpected error: %v", i, err)
			continue
		}
		again, err := Parse(u.String())
		if err != nil {
			t.Errorf("Test %v FAIL: reparse error: %v", i, err)
			continue
		}
		if again.String() != u.String() {
			t.Errorf("Test %v FAIL: not idempotent: %q != %q", i, again.String(), u.String())
		}
	}
}

func TestParseWithBase(t *testing.T) {
	base, err := Parse("https://www.example.com/dir/page.html?q=1")
	if err != nil {
		t.Fatalf("unexpected error building base: %v", err)
	}

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "Absolute link ignores base",
			raw:      "http://other.example/z",
			expected: "http://other.example/z",
		},
		{
			name:     "Rooted link takes the fast path",
			raw:      "/x/y.html",
			expected: "https://www.example.com/x/y.html",
		},
		{
			name:     "Relative link resolves fully",
			raw:      "sub/page2.html",
			expected: "https://www.example.com/dir/sub/page2.html",
		},
		{
			name:     "Parent link resolves fully",
			raw:      "../up.html",
			expected: "https://www.example.com/up.html",
		},
		{
			name:     "Protocol relative keeps base scheme",
			raw:      "//cdn.example/lib.js",
			expected: "https://cdn.example/lib.js",
		},
		{
			name:     "Query only link keeps base path",
			raw:      "?q=2",
			expected: "https://www.example.com/dir/page.html?q=2",
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ParseWithBase(tt.raw, base)
			if err != nil {
				t.Errorf("Test %v - '%s' FAIL: unexpected error: %v", i, tt.name, err)
				return
			}
			if u.String() != tt.expected {
				t.Errorf("Test %v - '%s' FAIL: expected %q, actual %q", i, tt.name, tt.expected, u.String())
			}
		})
	}
}

func TestParseWithBaseUnusableLink(t *testing.T) {
	base, err := Parse("https://example.com/dir/")
	if err != nil {
		t.Fatalf("unexpected error building base: %v", err)
	}

	// a runaway link is unusable; it resolves back to its base
	u, err := ParseWithBase(strings.Repeat("a", 400), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.String() != base.String() {
		t.Errorf("runaway fallback FAIL: expected %q, actual %q", base.String(), u.String())
	}
}

func TestParseRef(t *testing.T) {
	u, err := ParseRef("/x", "https://example.com/dir/page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.String() != "https://example.com/x" {
		t.Errorf("ParseRef FAIL: actual %q", u.String())
	}
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "Bare hostname",
			raw:      "example.com",
			expected: "http://example.com/",
		},
		{
			name:     "Protocol relative",
			raw:      "//example.com/x",
			expected: "http://example.com/x",
		},
		{
			name:     "Scheme kept",
			raw:      "https://example.com",
			expected: "https://example.com/",
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ParseSeed(tt.raw)
			if err != nil {
				t.Errorf("Test %v - '%s' FAIL: unexpected error: %v", i, tt.name, err)
				return
			}
			if u.String() != tt.expected {
				t.Errorf("Test %v - '%s' FAIL: expected %q, actual %q", i, tt.name, tt.expected, u.String())
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("http://exa[mple.com/"); !errors.Is(err, ErrInvalidURL) {
		t.Errorf("unbalanced bracket FAIL: expected ErrInvalidURL, got %v", err)
	}
	if _, err := Parse("foo/bar"); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("relative without base FAIL: expected ErrInvalidPath, got %v", err)
	}
}
