package canon

import "strings"

// Redirect labels a benign redirect category. The empty value means the
// pair matched no category.
type Redirect string

const (
	RedirectSame          Redirect = "same"
	RedirectAddSlash      Redirect = "addslash"
	RedirectRemoveSlash   Redirect = "removeslash"
	RedirectToHTTPS       Redirect = "tohttps"
	RedirectToHTTP        Redirect = "tohttp"
	RedirectToWWW         Redirect = "towww"
	RedirectToNonWWW      Redirect = "tononwww"
	RedirectToWWWHTTPS    Redirect = "towww+tohttps"
	RedirectToWWWHTTP     Redirect = "towww+tohttp"
	RedirectToNonWWWHTTPS Redirect = "tononwww+tohttps"
	RedirectToNonWWWHTTP  Redirect = "tononwww+tohttp"
)

// defaultMaxLengthDelta is len("www.") + len("s"), the biggest length
// change a single classified transformation produces.
const defaultMaxLengthDelta = 5

// Classifier labels origin→destination transitions. MaxLengthDelta
// bounds the length difference worth examining before any string
// comparisons run; zero means the default. Combined transformations
// (www + scheme + slash) can legitimately exceed the default, which is
// why it is a knob.
type Classifier struct {
	MaxLengthDelta int
}

// ClassifyRedirect labels origin→next with the default classifier.
func ClassifyRedirect(origin, next *URL) Redirect {
	return Classifier{}.Classify(origin, next)
}

// Classify labels the origin→next transition. Rule order is deliberate:
// cheaper and more specific tests run first.
func (c Classifier) Classify(origin, next *URL) Redirect {
	maxDelta := c.MaxLengthDelta
	if maxDelta == 0 {
		maxDelta = defaultMaxLengthDelta
	}

	o, n := origin.url, next.url

	if delta := len(o) - len(n); delta > maxDelta || -delta > maxDelta {
		return ""
	}

	if o == n {
		return RedirectSame
	}

	if !strings.HasSuffix(o, "/") && o+"/" == n {
		return RedirectAddSlash
	}
	if strings.HasSuffix(o, "/") && o == n+"/" {
		return RedirectRemoveSlash
	}

	if strings.Replace(o, "http", "https", 1) == n {
		return RedirectToHTTPS
	}
	if strings.HasPrefix(o, "https") && strings.Replace(o, "https", "http", 1) == n {
		return RedirectToHTTP
	}

	if strings.HasPrefix(origin.split.Netloc, "www.") {
		switch {
		case strings.Replace(o, "www.", "", 1) == n:
			return RedirectToNonWWW
		case strings.Replace(strings.Replace(o, "www.", "", 1), "http", "https", 1) == n:
			return RedirectToNonWWWHTTPS
		case strings.HasPrefix(o, "https") &&
			strings.Replace(strings.Replace(o, "www.", "", 1), "https", "http", 1) == n:
			return RedirectToNonWWWHTTP
		}
	} else if strings.HasPrefix(next.split.Netloc, "www.") {
		switch {
		case o == strings.Replace(n, "www.", "", 1):
			return RedirectToWWW
		case strings.Replace(n, "www.", "", 1) == strings.Replace(o, "http", "https", 1):
			return RedirectToWWWHTTPS
		case strings.HasPrefix(o, "https") &&
			strings.Replace(n, "www.", "", 1) == strings.Replace(o, "https", "http", 1):
			return RedirectToWWWHTTP
		}
	}

	return ""
}
