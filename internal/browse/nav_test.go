package browse

import (
	"testing"
	"time"
)

func navFixture() (*Nav, *fakeDir) {
	fd := newFakeDir()
	fd.set("/root", time.Unix(1, 0),
		Entry{Name: "sub", IsDir: true},
		Entry{Name: "a.jsonl"},
		Entry{Name: "b.jsonl"},
	)
	fd.set("/root/sub", time.Unix(1, 0),
		Entry{Name: "one.jsonl"},
		Entry{Name: "two.jsonl"},
		Entry{Name: "three.jsonl"},
	)
	return NewNav(NewListingCache(fd.list, fd.stat), "/root"), fd
}

func TestNavEnterDirectoryAndOpenFile(t *testing.T) {
	n, _ := navFixture()
	n.MoveDown() // "sub"
	if _, ok := n.Enter(); ok {
		t.Fatal("entering a directory must not open a file")
	}
	if n.Path() != "/root/sub" {
		t.Fatalf("path: %s", n.Path())
	}
	n.MoveDown() // first file
	path, ok := n.Enter()
	if !ok || path != "/root/sub/one.jsonl" {
		t.Fatalf("open: %q ok=%v", path, ok)
	}
}

func TestNavRoundTripRestoresSelectionByName(t *testing.T) {
	n, fd := navFixture()
	n.MoveDown()
	n.Enter() // into /root/sub
	// Move to index 3: ../, one.jsonl, three.jsonl, two.jsonl
	n.MoveDown()
	n.MoveDown()
	n.MoveDown()
	picked := n.SelectedEntry().Name
	if picked != "two.jsonl" {
		t.Fatalf("setup: selected %q", picked)
	}
	n.Up()
	if n.Path() != "/root" || n.SelectedEntry().Name != "sub" {
		t.Fatalf("up: path=%s selected=%q", n.Path(), n.SelectedEntry().Name)
	}
	// The subdirectory gains an entry, shifting indices.
	fd.set("/root/sub", time.Unix(2, 0),
		Entry{Name: "aaa.jsonl"},
		Entry{Name: "one.jsonl"},
		Entry{Name: "two.jsonl"},
		Entry{Name: "three.jsonl"},
	)
	n.Enter()
	if got := n.SelectedEntry().Name; got != picked {
		t.Fatalf("re-entering must restore %q by name, got %q", picked, got)
	}
}

func TestNavUpWithoutHistoryDefaultsToTop(t *testing.T) {
	fd := newFakeDir()
	fd.set("/a", time.Unix(1, 0), Entry{Name: "b", IsDir: true})
	fd.set("/a/b", time.Unix(1, 0), Entry{Name: "x.jsonl"})
	n := NewNav(NewListingCache(fd.list, fd.stat), "/a/b")
	n.Up()
	if n.Path() != "/a" || n.Selected() != 0 {
		t.Fatalf("path=%s selected=%d", n.Path(), n.Selected())
	}
}

func TestNavFilterNarrowsAndResetsSelection(t *testing.T) {
	n, _ := navFixture()
	n.MoveDown()
	n.MoveDown()
	n.AppendFilter('a')
	if n.Selected() != 0 {
		t.Fatalf("filter must reset selection, got %d", n.Selected())
	}
	visible := n.Visible()
	// ../ stays pinned; only a.jsonl contains "a".
	if len(visible) != 2 || visible[0].Name != ParentName || visible[1].Name != "a.jsonl" {
		t.Fatalf("visible: %v", visible)
	}
}

func TestNavFilterCaseInsensitive(t *testing.T) {
	fd := newFakeDir()
	fd.set("/d", time.Unix(1, 0), Entry{Name: "Data.JSONL"}, Entry{Name: "other.txt"})
	n := NewNav(NewListingCache(fd.list, fd.stat), "/d")
	n.AppendFilter('d')
	n.AppendFilter('a')
	visible := n.Visible()
	if len(visible) != 2 || visible[1].Name != "Data.JSONL" {
		t.Fatalf("visible: %v", visible)
	}
}

func TestNavBackspaceShortensThenGoesUp(t *testing.T) {
	n, _ := navFixture()
	n.MoveDown()
	n.Enter() // /root/sub
	n.AppendFilter('o')
	n.AppendFilter('n')
	n.Backspace()
	if n.Filter() != "o" || n.Path() != "/root/sub" {
		t.Fatalf("filter=%q path=%s", n.Filter(), n.Path())
	}
	n.Backspace()
	if n.Filter() != "" {
		t.Fatalf("filter: %q", n.Filter())
	}
	n.Backspace() // empty filter: behaves as Up
	if n.Path() != "/root" {
		t.Fatalf("path: %s", n.Path())
	}
}

func TestNavSelectionWrapsAround(t *testing.T) {
	n, _ := navFixture()
	n.MoveUp() // from 0 wraps to the last entry
	if got := n.SelectedEntry().Name; got != "b.jsonl" {
		t.Fatalf("wrap up: %q", got)
	}
	n.MoveDown()
	if n.Selected() != 0 {
		t.Fatalf("wrap down: %d", n.Selected())
	}
}

func TestNavEnterParentEntryGoesUp(t *testing.T) {
	n, _ := navFixture()
	n.MoveDown()
	n.Enter() // /root/sub, selection restored to 0 (../)
	if _, ok := n.Enter(); ok {
		t.Fatal("../ must not open a file")
	}
	if n.Path() != "/root" {
		t.Fatalf("path: %s", n.Path())
	}
}
