// internal/family/classify.go
package family

import (
	"regexp"
	"strings"
)

var (
	leadingNonDigits = regexp.MustCompile(`^\D*`)
	reindexedSuffix  = regexp.MustCompile(`^(.*)-reindexed`)
	rolloverSeq      = regexp.MustCompile(`\d{6}`)
	dateSuffixStart  = regexp.MustCompile(`\d{4}\.`)
)

// Classification is the result of classifying a single index name
type Classification struct {
	Prefix    string
	Rollover  bool
	TimeBased bool
}

// Classify derives the family prefix and lifecycle flags for an index name
func Classify(name string) Classification {
	rollover := IsRollover(name)
	return Classification{
		Prefix:    Prefix(name),
		Rollover:  rollover,
		TimeBased: !rollover && dateSuffixStart.MatchString(name),
	}
}

// Prefix returns the family key for an index name: the leading non-digit
// run with trailing '_' and '-' removed, and any "-reindexed" suffix dropped.
func Prefix(name string) string {
	prefix := strings.TrimRight(leadingNonDigits.FindString(name), "_-")

	if m := reindexedSuffix.FindStringSubmatch(prefix); m != nil {
		prefix = m[1]
	}
	return prefix
}

// IsRollover reports whether the name carries a six digit generation number
func IsRollover(name string) bool {
	return rolloverSeq.MatchString(name)
}

// IsTimeBased reports whether a non-rollover name carries a dotted date suffix
func IsTimeBased(name string) bool {
	return Classify(name).TimeBased
}
