package record

import (
	"errors"
	"strings"
	"testing"
)

func fakeRead(content string) ReadFileFunc {
	return func(string) ([]byte, error) { return []byte(content), nil }
}

func TestOpenJSONL(t *testing.T) {
	s := Open("data.jsonl", fakeRead("{\"a\":1}\n{\"a\":2}\n"))
	if s.Count() != 2 {
		t.Fatalf("count: %d", s.Count())
	}
	if s.Raw(1) != `{"a":2}` {
		t.Fatalf("raw(1): %q", s.Raw(1))
	}
	if s.Failed() {
		t.Fatal("unexpected failure")
	}
}

func TestOpenJSONArray(t *testing.T) {
	s := Open("data.json", fakeRead(`[{"a": 1}, "x", 3]`))
	if s.Count() != 3 {
		t.Fatalf("count: %d", s.Count())
	}
	if s.Raw(0) != `{"a":1}` {
		t.Fatalf("raw(0): %q", s.Raw(0))
	}
	if s.Raw(1) != `"x"` || s.Raw(2) != "3" {
		t.Fatalf("records: %q %q", s.Raw(1), s.Raw(2))
	}
}

func TestOpenJSONScalar(t *testing.T) {
	s := Open("data.json", fakeRead(`{"only": true}`))
	if s.Count() != 1 {
		t.Fatalf("count: %d", s.Count())
	}
	if s.Raw(0) != `{"only":true}` {
		t.Fatalf("raw(0): %q", s.Raw(0))
	}
}

func TestOpenTabbedSecondField(t *testing.T) {
	s := Open("data.txt", fakeRead("id1\t{\"a\":1}\textra\nid2\t{\"a\":2}\n"))
	if s.Count() != 2 {
		t.Fatalf("count: %d", s.Count())
	}
	if s.Raw(0) != `{"a":1}` || s.Raw(1) != `{"a":2}` {
		t.Fatalf("records: %q %q", s.Raw(0), s.Raw(1))
	}
}

func TestOpenTabbedMalformedLine(t *testing.T) {
	s := Open("data.txt", fakeRead("id1\t{\"a\":1}\nno-tab-here\n"))
	if s.Count() != 1 {
		t.Fatalf("malformed file must collapse to one error record, got %d", s.Count())
	}
	if !s.Failed() {
		t.Fatal("expected failed source")
	}
	if !strings.Contains(s.Raw(0), "malformed line 2") {
		t.Fatalf("error record: %q", s.Raw(0))
	}
}

func TestOpenReadError(t *testing.T) {
	s := Open("gone.jsonl", func(string) ([]byte, error) { return nil, errors.New("permission denied") })
	if s.Count() != 1 || !s.Failed() {
		t.Fatalf("want single error record, got count=%d failed=%v", s.Count(), s.Failed())
	}
	// The error record is a JSON string so the renderer shows it verbatim.
	if !strings.HasPrefix(s.Raw(0), `"Error:`) {
		t.Fatalf("error record not JSON-encoded: %q", s.Raw(0))
	}
}

func TestOpenUnsupportedExtension(t *testing.T) {
	if IsSupported("notes.md") {
		t.Fatal("md must not be openable")
	}
	if !IsSupported("a.jsonl") || !IsSupported("b.JSON") || !IsSupported("c.txt") {
		t.Fatal("jsonl/json/txt must be openable")
	}
	s := Open("notes.md", fakeRead("# hi"))
	if s.Count() != 1 || !s.Failed() {
		t.Fatal("unsupported extension must yield one error record")
	}
}

func TestRawClamps(t *testing.T) {
	s := Open("data.jsonl", fakeRead("1\n2\n"))
	if s.Raw(-5) != "1" || s.Raw(99) != "2" {
		t.Fatalf("clamping: %q %q", s.Raw(-5), s.Raw(99))
	}
}
