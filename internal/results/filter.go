package results

import "strings"

// Filter holds the lowercased search query.
type Filter struct {
	query string
}

// SetQuery stores q lowercased. It reports whether the query changed.
func (f *Filter) SetQuery(q string) bool {
	lowered := strings.ToLower(q)
	if lowered == f.query {
		return false
	}
	f.query = lowered
	return true
}

// Query returns the stored, lowercased query.
func (f Filter) Query() string {
	return f.query
}

// Active reports whether filtering is in effect. A query made only of
// whitespace counts as empty.
func (f Filter) Active() bool {
	return strings.TrimSpace(f.query) != ""
}

// Match reports whether r passes the filter. The file name and the score
// are matched as case-insensitive substrings of the untrimmed query.
func (f Filter) Match(r Record) bool {
	if !f.Active() {
		return true
	}
	return strings.Contains(strings.ToLower(r.FileName), f.query) ||
		strings.Contains(strings.ToLower(r.Score), f.query)
}

// Visible returns the newest-first store indices that pass the filter.
func (f Filter) Visible(s *Store) []int {
	indices := make([]int, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		if f.Match(s.At(i)) {
			indices = append(indices, i)
		}
	}
	return indices
}
