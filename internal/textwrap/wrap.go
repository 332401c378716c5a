package textwrap

// Wrap splits text into segments whose display width does not exceed maxWidth.
// Code points below 128 count as one column, everything else as two, which
// approximates double-width East-Asian characters. Packing is greedy with no
// word-boundary awareness; a segment may split mid-token. The result is never
// empty: an empty input yields one empty segment.
func Wrap(text string, maxWidth int) []string {
	if maxWidth < 1 {
		maxWidth = 1
	}
	segs := []string{}
	cur := make([]rune, 0, maxWidth)
	width := 0
	for _, r := range text {
		w := RuneWidth(r)
		if width+w > maxWidth && len(cur) > 0 {
			segs = append(segs, string(cur))
			cur = cur[:0]
			width = 0
		}
		cur = append(cur, r)
		width += w
	}
	return append(segs, string(cur))
}

// RuneWidth reports the display width of a single code point: 1 below 128,
// otherwise 2.
func RuneWidth(r rune) int {
	if r < 128 {
		return 1
	}
	return 2
}

// Width reports the total display width of text under the same rule as Wrap.
func Width(text string) int {
	w := 0
	for _, r := range text {
		w += RuneWidth(r)
	}
	return w
}
