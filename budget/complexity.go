package budget

import "strings"

// complexKeywords mark queries that tend to produce long responses and so
// need a larger response reserve. Matching is case-insensitive substring.
var complexKeywords = []string{
	"analyze",
	"analyse",
	"compare",
	"comprehensive",
	"detailed",
	"explain",
	"step by step",
	"step-by-step",
	"summarize",
	"summarise",
	"translate",
	"in depth",
	"pros and cons",
}

// IsComplex reports whether the query text matches the fixed list of
// complexity keywords.
func IsComplex(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range complexKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
