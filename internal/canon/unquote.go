package canon

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Unquote selectively percent-decodes text. A %XX triplet is decoded to
// its literal byte only when the case-normalized hex pair is in safe;
// valid pairs outside safe are re-emitted with uppercase hex. A lone
// trailing % or a malformed pair passes through unchanged. Decoded
// characters are never re-scanned, so the output cannot grow new
// escapes. Unquote is pure and total.
func Unquote(text string, safe mapset.Set[string]) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		if text[i] != '%' {
			b.WriteByte(text[i])
			i++
			continue
		}
		if i+1 >= len(text) {
			// trailing lone %
			b.WriteByte('%')
			break
		}
		if !isHexDigit(text[i+1]) {
			// malformed pair, both characters are literals
			b.WriteByte('%')
			b.WriteByte(text[i+1])
			i += 2
			continue
		}
		if i+2 >= len(text) || !isHexDigit(text[i+2]) {
			b.WriteByte('%')
			b.WriteByte(text[i+1])
			i += 2
			continue
		}
		pair := strings.ToUpper(text[i+1 : i+3])
		if safe.Contains(pair) {
			b.WriteByte(hexByte(pair))
		} else {
			b.WriteByte('%')
			b.WriteString(pair)
		}
		i += 3
	}
	return b.String()
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func hexByte(pair string) byte {
	return hexVal(pair[0])<<4 | hexVal(pair[1])
}

func hexVal(c byte) byte {
	if c <= '9' {
		return c - '0'
	}
	return c - 'A' + 10
}
