package canon

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Char classes from RFC 3986, expressed as sets of two-digit uppercase
// hex codes. Unreserved characters never act as delimiters and can
// always be decoded. Sub-delims may appear literally in a path or
// query, so decoding them is safe there too -- except & and = in the
// query, which keep their structural meaning.
//
// Built once here and never mutated, so the thread-unsafe sets are fine
// to read from any number of workers.
var (
	unreserved     mapset.Set[string]
	subdelims      mapset.Set[string]
	unquoteInPath  mapset.Set[string]
	unquoteInQuery mapset.Set[string]
	unquoteInFrag  mapset.Set[string]
)

func hexRange(lo, hi byte) []string {
	codes := make([]string, 0, hi-lo+1)
	for c := lo; c <= hi; c++ {
		codes = append(codes, fmt.Sprintf("%02X", c))
	}
	return codes
}

func init() {
	unreserved = mapset.NewThreadUnsafeSet(hexRange('A', 'Z')...)
	unreserved.Append(hexRange('a', 'z')...)
	unreserved.Append(hexRange('0', '9')...)
	unreserved.Append("2D", "2E", "5F", "7E") // -._~

	subdelims = mapset.NewThreadUnsafeSet("21", "24", "3B", "3D") // !$;=
	subdelims.Append(hexRange('&', ',')...)                       // &'()*+,

	unquoteInPath = subdelims.Clone()
	unquoteInPath.Append("3A", "40") // :@

	unquoteInQuery = subdelims.Clone()
	unquoteInQuery.Append("3A", "2F", "3F", "40") // :/?@
	unquoteInQuery.Remove("26")                   // & still delimits the query
	unquoteInQuery.Remove("3D")                   // = ditto

	unquoteInFrag = unquoteInQuery.Clone()
}
