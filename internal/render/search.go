package render

import "strings"

// Position addresses one wrapped display line: a record index and a line
// offset within that record's active view.
type Position struct {
	Record int
	Line   int
}

// LineProvider returns the active view's wrapped lines for one record.
type LineProvider func(record int) []string

// SearchNext scans forward for the next display line containing query,
// starting one line after pos, continuing into subsequent records from their
// first line. Matching is case-sensitive substring containment per wrapped
// line; a match split across two wrapped lines is not found. The scan does
// not wrap around: exhausting all count records returns (Position{0, 0},
// false), telling the caller to restart from the top. An empty query succeeds
// immediately at pos.
func SearchNext(pos Position, query string, count int, lines LineProvider) (Position, bool) {
	if query == "" {
		return pos, true
	}
	rec := pos.Record
	if rec < 0 {
		rec = 0
	}
	line := pos.Line + 1
	for ; rec < count; rec++ {
		ls := lines(rec)
		for ; line < len(ls); line++ {
			if strings.Contains(ls[line], query) {
				return Position{Record: rec, Line: line}, true
			}
		}
		line = 0
	}
	return Position{}, false
}
