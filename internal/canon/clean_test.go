package canon

import (
	"strings"
	"testing"
)

func TestCleanLink(t *testing.T) {
	tests := []struct {
		name     string
		link     string
		expected string
	}{
		{
			name:     "Triple slash after scheme collapses",
			link:     "http:///example.com",
			expected: "http://example.com",
		},
		{
			name:     "Bare slash run collapses",
			link:     "///example.com",
			expected: "//example.com",
		},
		{
			name:     "Many slashes collapse",
			link:     "https://////example.com/x",
			expected: "https://example.com/x",
		},
		{
			name:     "Backslashes after scheme become slashes",
			link:     `http:\\example.com`,
			expected: "http://example.com",
		},
		{
			name:     "Backslash after hostname becomes first slash",
			link:     `http://example.com\foo\bar`,
			expected: `http://example.com/foo\bar`,
		},
		{
			name:     "Control chars and spaces trim",
			link:     "\x01\x02 http://example.com/ \x1f",
			expected: "http://example.com/",
		},
		{
			name:     "Embedded newline removed",
			link:     "http://example.com/a\nb",
			expected: "http://example.com/ab",
		},
		{
			name:     "Embedded carriage return removed",
			link:     "http://example.com/a\rb",
			expected: "http://example.com/ab",
		},
		{
			name:     "Ordinary link untouched",
			link:     "http://example.com/a?b=c",
			expected: "http://example.com/a?b=c",
		},
		{
			name:     "Relative link untouched",
			link:     "a/b.html",
			expected: "a/b.html",
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := CleanLink(tt.link, "")
			if actual != tt.expected {
				t.Errorf("Test %v - '%s' FAIL: expected %q, actual %q", i, tt.name, tt.expected, actual)
			}
		})
	}
}

func TestCleanLinkRunaway(t *testing.T) {
	long := strings.Repeat("a", 400)

	if actual := CleanLink(long, "http://example.com/"); actual != "" {
		t.Errorf("runaway link FAIL: expected empty sentinel, actual %q", actual)
	}

	// a markup character inside rescues the prefix
	truncatable := strings.Repeat("a", 100) + "<p>" + strings.Repeat("b", 300)
	if actual := CleanLink(truncatable, ""); actual != strings.Repeat("a", 100) {
		t.Errorf("truncatable link FAIL: expected 100 a's, actual %q", actual)
	}

	// under the threshold nothing is truncated
	short := "http://example.com/<x"
	if actual := CleanLink(short, ""); actual != short {
		t.Errorf("short link FAIL: expected %q untouched, actual %q", short, actual)
	}
}

func TestIsAbsolute(t *testing.T) {
	tests := []struct {
		link     string
		expected bool
	}{
		{"//example.com", true},
		{"http://example.com", true},
		{"HTTPS://example.com", true},
		{"HtTp://example.com", true},
		{"/path", false},
		{"ftp://example.com", false},
		{"example.com", false},
	}

	for i, tt := range tests {
		if actual := IsAbsolute(tt.link); actual != tt.expected {
			t.Errorf("Test %v FAIL: IsAbsolute(%q) = %v, expected %v", i, tt.link, actual, tt.expected)
		}
	}
}

func TestNormalizeSeed(t *testing.T) {
	tests := []struct {
		name     string
		seed     string
		expected string
	}{
		{
			name:     "Scheme present",
			seed:     "https://example.com",
			expected: "https://example.com",
		},
		{
			name:     "Protocol relative",
			seed:     "//example.com",
			expected: "http://example.com",
		},
		{
			name:     "Bare hostname",
			seed:     "example.com",
			expected: "http://example.com",
		},
		{
			name:     "Hostname with path",
			seed:     "example.com/a/b",
			expected: "http://example.com/a/b",
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := NormalizeSeed(tt.seed)
			if actual != tt.expected {
				t.Errorf("Test %v - '%s' FAIL: expected %q, actual %q", i, tt.name, tt.expected, actual)
			}
		})
	}
}
