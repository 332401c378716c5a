package render

import (
	"reflect"
	"strings"
	"testing"
)

func TestRenderDeterministic(t *testing.T) {
	raw := `{"b": [2, "x"], "a": 1, "z": {"k": null}}`
	r1 := Render(raw, 40)
	r2 := Render(raw, 40)
	if !reflect.DeepEqual(r1, r2) {
		t.Fatal("rendering the same record twice must be byte-identical")
	}
}

func TestRenderFullForm(t *testing.T) {
	r := Render(`{"b": 2, "a": "hi"}`, 80)
	want := []string{
		"{",
		`  "a": "hi",`,
		`  "b": 2`,
		"}",
	}
	if !reflect.DeepEqual(r.FullLines, want) {
		t.Fatalf("full form:\n%q\nwant:\n%q", r.FullLines, want)
	}
}

func TestRenderSkeletonTokens(t *testing.T) {
	r := Render(`{"a": 1, "b": [2.5, "x", true, null]}`, 80)
	got := strings.Join(r.SkeletonLines, "\n")
	want := strings.Join([]string{
		"{",
		`  "a": int,`,
		`  "b": [`,
		"    float,",
		"    str,",
		"    bool,",
		"    null",
		"  ]",
		"}",
	}, "\n")
	if got != want {
		t.Fatalf("skeleton:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderSkeletonTokensUnquoted(t *testing.T) {
	r := Render(`{"age": 5}`, 80)
	joined := strings.Join(r.SkeletonLines, "\n")
	if strings.Contains(joined, `"int"`) {
		t.Fatalf("type token must be unquoted: %s", joined)
	}
	if !strings.Contains(joined, `"age": int`) {
		t.Fatalf("skeleton: %s", joined)
	}
}

func TestRenderEmbeddedNewline(t *testing.T) {
	// A real newline inside a string value becomes a line break; an escaped
	// backslash before n stays as backslash-n text.
	r := Render(`{"a": "one\ntwo", "b": "keep\\nliteral"}`, 80)
	joined := strings.Join(r.FullLines, "\n")
	if !strings.Contains(joined, "\"one\ntwo\"") {
		t.Fatalf("embedded newline not broken into lines:\n%s", joined)
	}
	if !strings.Contains(joined, `"keep\\nliteral"`) {
		t.Fatalf("escaped backslash mangled:\n%s", joined)
	}
}

func TestRenderNonASCIILiteral(t *testing.T) {
	r := Render(`{"name": "张三"}`, 80)
	joined := strings.Join(r.FullLines, "\n")
	if !strings.Contains(joined, "张三") {
		t.Fatalf("non-ASCII must stay literal:\n%s", joined)
	}
}

func TestRenderParseFailure(t *testing.T) {
	r := Render("definitely not json", 80)
	if len(r.FullLines) == 0 || r.FullLines[0] != ParseErrorText {
		t.Fatalf("full: %q", r.FullLines)
	}
	if len(r.SkeletonLines) == 0 || r.SkeletonLines[0] != ParseErrorText {
		t.Fatalf("skeleton: %q", r.SkeletonLines)
	}
}

func TestRenderWrapsToWidth(t *testing.T) {
	r := Render(`{"key": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}`, 10)
	for _, line := range r.FullLines {
		if len(line) > 10 {
			t.Fatalf("line wider than 10: %q", line)
		}
	}
}

func TestRenderEmptyContainers(t *testing.T) {
	r := Render(`{"a": {}, "b": []}`, 80)
	joined := strings.Join(r.FullLines, "\n")
	if !strings.Contains(joined, `"a": {}`) || !strings.Contains(joined, `"b": []`) {
		t.Fatalf("empty containers:\n%s", joined)
	}
}
