package browse

import (
	"path/filepath"
	"strings"

	"github.com/SnocrashWang/FileExplorer/internal/util/logx"
)

type historyEntry struct {
	selectedName string
	names        []string
}

// Nav tracks the current directory, the selection within its displayed
// (possibly filtered) listing, the active filename filter, and per-directory
// history so returning to a directory restores its last selection. Selection
// history is kept by entry name, not index: indices shift when a listing is
// refreshed, names survive.
type Nav struct {
	cache    *ListingCache
	path     string
	selected int
	filter   string
	history  map[string]historyEntry
}

// NewNav starts a navigation session rooted at start.
func NewNav(cache *ListingCache, start string) *Nav {
	return &Nav{cache: cache, path: filepath.Clean(start), history: map[string]historyEntry{}}
}

func (n *Nav) Path() string   { return n.path }
func (n *Nav) Filter() string { return n.filter }
func (n *Nav) Selected() int  { return n.selected }

// Listing returns the current directory's full (unfiltered) listing.
func (n *Nav) Listing() *Listing { return n.cache.Get(n.path) }

// Visible returns the displayed entries: "../" pinned first, the rest
// narrowed to names containing the filter, case-insensitively.
func (n *Nav) Visible() []Entry {
	entries := n.Listing().Entries
	if n.filter == "" {
		return entries
	}
	needle := strings.ToLower(n.filter)
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Name == ParentName || strings.Contains(strings.ToLower(e.Name), needle) {
			out = append(out, e)
		}
	}
	return out
}

// SelectedEntry returns the entry under the cursor.
func (n *Nav) SelectedEntry() Entry {
	visible := n.Visible()
	idx := n.selected
	if idx < 0 || idx >= len(visible) {
		idx = 0
	}
	return visible[idx]
}

// MoveUp and MoveDown cycle the selection through the displayed listing.
func (n *Nav) MoveUp() {
	count := len(n.Visible())
	n.selected = (n.selected - 1 + count) % count
}

func (n *Nav) MoveDown() {
	n.selected = (n.selected + 1) % len(n.Visible())
}

// Enter acts on the selected entry: "../" goes up, a directory is entered
// (recording the current selection for the way back), and a file's path is
// returned with ok=true for the caller to open.
func (n *Nav) Enter() (openPath string, ok bool) {
	e := n.SelectedEntry()
	if e.Name == ParentName {
		n.Up()
		return "", false
	}
	target := filepath.Join(n.path, e.Name)
	if e.IsDir {
		n.remember()
		n.path = target
		n.filter = ""
		n.selected = n.restore(target)
		logx.Debugf("nav: entered %s", target)
		return "", false
	}
	return target, true
}

// Up moves to the parent directory, clearing the filter and restoring the
// parent's prior selection by name when that name still exists.
func (n *Nav) Up() {
	parent := filepath.Dir(n.path)
	if parent == n.path {
		return
	}
	n.remember()
	n.path = parent
	n.filter = ""
	n.selected = n.restore(parent)
}

// AppendFilter narrows the listing; any filter change resets the selection.
func (n *Nav) AppendFilter(r rune) {
	n.filter += string(r)
	n.selected = 0
}

// Backspace shortens a non-empty filter; with no filter active it behaves
// as Up.
func (n *Nav) Backspace() {
	if n.filter == "" {
		n.Up()
		return
	}
	n.filter = n.filter[:len(n.filter)-1]
	n.selected = 0
}

// remember records the current directory's selection by name, resolved
// through the displayed listing, together with a snapshot of the unfiltered
// names at that moment.
func (n *Nav) remember() {
	entries := n.Listing().Entries
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	n.history[n.path] = historyEntry{selectedName: n.SelectedEntry().Name, names: names}
}

// restore resolves a directory's remembered selection against its current
// listing, defaulting to the top when the name is gone or never visited.
func (n *Nav) restore(path string) int {
	h, ok := n.history[path]
	if !ok {
		return 0
	}
	for i, e := range n.cache.Get(path).Entries {
		if e.Name == h.selectedName {
			return i
		}
	}
	return 0
}
