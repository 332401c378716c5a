package render

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/SnocrashWang/FileExplorer/internal/textwrap"
)

// ParseErrorText is displayed in place of a record whose raw text is not
// valid JSON.
const ParseErrorText = "Error: Invalid JSON content."

// Record is one raw record rendered at a fixed column width: the full
// pretty-printed form and the skeleton form with leaf values replaced by
// their type tokens. Rendering is a pure function of (raw, width).
type Record struct {
	FullLines     []string
	SkeletonLines []string
}

// Lines returns the wrapped line sequence for the requested view.
func (r Record) Lines(skeleton bool) []string {
	if skeleton {
		return r.SkeletonLines
	}
	return r.FullLines
}

// Render parses raw as one JSON value and produces both wrapped views at
// width columns. On parse failure both views carry ParseErrorText.
func Render(raw string, width int) Record {
	v, err := parseValue(raw)
	if err != nil {
		lines := textwrap.Wrap(ParseErrorText, width)
		return Record{FullLines: lines, SkeletonLines: lines}
	}
	return Record{
		FullLines:     wrapAll(serialize(v, fullLeaf), width),
		SkeletonLines: wrapAll(serialize(v, skeletonLeaf), width),
	}
}

func parseValue(raw string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// serialize walks v with 2-space indentation and sorted object keys, so the
// output is deterministic regardless of map iteration order. leaf renders
// terminal values; structure is shared between the full and skeleton views.
func serialize(v any, leaf func(any) string) string {
	var b strings.Builder
	writeValue(&b, v, 0, leaf)
	return b.String()
}

func writeValue(b *strings.Builder, v any, indent int, leaf func(any) string) {
	switch t := v.(type) {
	case map[string]any:
		if len(t) == 0 {
			b.WriteString("{}")
			return
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString("{\n")
		for i, k := range keys {
			writeIndent(b, indent+1)
			writeString(b, k)
			b.WriteString(": ")
			writeValue(b, t[k], indent+1, leaf)
			if i < len(keys)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		writeIndent(b, indent)
		b.WriteString("}")
	case []any:
		if len(t) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for i, el := range t {
			writeIndent(b, indent+1)
			writeValue(b, el, indent+1, leaf)
			if i < len(t)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		writeIndent(b, indent)
		b.WriteString("]")
	default:
		b.WriteString(leaf(v))
	}
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

// writeString emits s quoted with minimal escaping: backslashes and quotes
// are escaped, non-ASCII characters stay literal, and newlines inside string
// values become real line breaks so multi-line text displays as lines.
func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}

func fullLeaf(v any) string {
	switch t := v.(type) {
	case string:
		var b strings.Builder
		writeString(&b, t)
		return b.String()
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	case nil:
		return "null"
	}
	b, _ := json.Marshal(v)
	return string(b)
}

// skeletonLeaf maps a leaf value onto its unquoted type token.
func skeletonLeaf(v any) string {
	switch t := v.(type) {
	case string:
		return "str"
	case json.Number:
		if strings.ContainsAny(t.String(), ".eE") {
			return "float"
		}
		return "int"
	case bool:
		return "bool"
	case nil:
		return "null"
	}
	return "str"
}

func wrapAll(s string, width int) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = append(out, textwrap.Wrap(line, width)...)
	}
	return out
}
