package ui

import (
	"regexp"
	"strings"
)

// keyRE matches a pretty-printed object key at the start of a wrapped line:
// indentation, a quoted key, then ": ".
var keyRE = regexp.MustCompile(`^(\s*)("(?:[^"\\]|\\.)*"): `)

// colorizeLine applies display attributes to one cached plain-text line:
// the JSON key span gets the key color and occurrences of the active search
// query get the match highlight. The cache stays attribute-free so rendering
// is a pure function of (record, width).
func colorizeLine(line, query string, st Styles) string {
	if loc := keyRE.FindStringSubmatchIndex(line); loc != nil {
		indent := line[loc[2]:loc[3]]
		key := line[loc[4]:loc[5]]
		rest := line[loc[1]:]
		return indent + st.JSONKey.Render(key) + ": " + emphasize(rest, query, st)
	}
	return emphasize(line, query, st)
}

func emphasize(s, query string, st Styles) string {
	if query == "" || !strings.Contains(s, query) {
		return s
	}
	return strings.ReplaceAll(s, query, st.SearchMatch.Render(query))
}
