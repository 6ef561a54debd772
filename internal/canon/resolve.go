package canon

import "strings"

// resolveReference resolves ref against an absolute base url per
// RFC 3986 section 5.2. It works on raw strings through split, so
// existing percent-encoding passes through untouched and stray % signs
// (which browsers tolerate) never abort the resolution.
func resolveReference(base, ref string) (string, error) {
	b, err := split(base)
	if err != nil {
		return "", err
	}
	r, err := split(ref)
	if err != nil {
		return "", err
	}

	var t Split
	switch {
	case r.Scheme != "":
		t = r
		t.Path = dotless(t.Path)
	case r.Netloc != "":
		t = r
		t.Scheme = b.Scheme
		t.Path = dotless(t.Path)
	case r.Path == "":
		t = b
		if r.Query != "" {
			t.Query = r.Query
		}
	case strings.HasPrefix(r.Path, "/"):
		t = Split{Scheme: b.Scheme, Netloc: b.Netloc, Path: dotless(r.Path), Query: r.Query}
	default:
		t = Split{Scheme: b.Scheme, Netloc: b.Netloc, Path: dotless(mergePaths(b, r.Path)), Query: r.Query}
	}
	t.Fragment = r.Fragment
	return join(t), nil
}

// dotless applies dot-segment removal where it is legal. Opaque
// (non-rooted) paths are left for the canonicalizer to reject.
func dotless(path string) string {
	if !strings.HasPrefix(path, "/") {
		return path
	}
	// a trailing . or .. resolves to a directory, per RFC 3986 5.4
	if strings.HasSuffix(path, "/.") || strings.HasSuffix(path, "/..") {
		path += "/"
	}
	resolved, err := RemoveDotSegments(path)
	if err != nil {
		return path
	}
	return resolved
}

// mergePaths implements RFC 3986 section 5.2.3: a relative path
// replaces everything after the base path's last slash.
func mergePaths(base Split, refPath string) string {
	if base.Netloc != "" && base.Path == "" {
		return "/" + refPath
	}
	if i := strings.LastIndexByte(base.Path, '/'); i >= 0 {
		return base.Path[:i+1] + refPath
	}
	return refPath
}
