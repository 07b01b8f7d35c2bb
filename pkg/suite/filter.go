package suite

import "sort"

// Filter selects tests by tag membership. A test is selected iff
// no inclusion set is specified or its tag set intersects the
// inclusion set, and its tag set does not intersect the
// exclusion set. Tag values are opaque strings, conventionally
// fully qualified names such as "com.example.SlowAsMolasses";
// the core interprets nothing beyond set membership.
type Filter struct {
	// Include is the inclusion set. A nil slice means no
	// inclusion filtering; an empty non-nil slice selects
	// nothing.
	Include []string

	// Exclude is the exclusion set.
	Exclude []string
}

// Selects reports whether a test with the given tag set passes
// the filter.
func (f Filter) Selects(tags map[string]struct{}) bool {
	if f.Include != nil && !intersects(tags, f.Include) {
		return false
	}
	return !intersects(tags, f.Exclude)
}

func intersects(tags map[string]struct{}, set []string) bool {
	for _, t := range set {
		if _, ok := tags[t]; ok {
			return true
		}
	}
	return false
}

func sortedTags(tags map[string]struct{}) []string {
	out := make([]string, 0, len(tags))
	for t := range tags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
