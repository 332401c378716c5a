package browse

import (
	"os"
	"sort"
	"time"

	"github.com/SnocrashWang/FileExplorer/internal/util/logx"
)

// ParentName is the synthetic first entry of every listing.
const ParentName = "../"

// Entry is one name inside a directory listing.
type Entry struct {
	Name  string
	IsDir bool
}

// Listing is a directory's captured entry list. Entries start with the
// synthetic "../", then directories, then files, each group sorted by name.
// A listing whose ModTime no longer matches disk is stale and gets replaced
// wholesale, never patched.
type Listing struct {
	Path    string
	ModTime time.Time
	Entries []Entry
}

// ListDirFunc reads a directory's entries and its modification time.
type ListDirFunc func(path string) ([]Entry, time.Time, error)

// StatFunc reports a path's current modification time.
type StatFunc func(path string) (time.Time, error)

// ListingCache memoizes directory listings keyed by path, recomputing only
// when the on-disk modification time changes. A read failure degrades to a
// parent-only listing so the browser stays navigable.
type ListingCache struct {
	list     ListDirFunc
	stat     StatFunc
	listings map[string]*Listing
}

// NewListingCache builds a cache over the given collaborators; nil defaults
// to the real filesystem.
func NewListingCache(list ListDirFunc, stat StatFunc) *ListingCache {
	if list == nil {
		list = OSListDir
	}
	if stat == nil {
		stat = OSStat
	}
	return &ListingCache{list: list, stat: stat, listings: map[string]*Listing{}}
}

// Get returns path's listing, reusing the cached one while its modification
// time still matches disk.
func (c *ListingCache) Get(path string) *Listing {
	if cached, ok := c.listings[path]; ok {
		if mt, err := c.stat(path); err == nil && mt.Equal(cached.ModTime) {
			return cached
		}
	}
	entries, mt, err := c.list(path)
	if err != nil {
		logx.Warnf("browse: cannot list %s: %v", path, err)
		l := &Listing{Path: path, Entries: []Entry{{Name: ParentName, IsDir: true}}}
		c.listings[path] = l
		return l
	}
	l := &Listing{Path: path, ModTime: mt, Entries: arrange(entries)}
	c.listings[path] = l
	return l
}

// arrange orders entries directories-then-files, each sorted, behind "../".
func arrange(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsDir != sorted[j].IsDir {
			return sorted[i].IsDir
		}
		return sorted[i].Name < sorted[j].Name
	})
	return append([]Entry{{Name: ParentName, IsDir: true}}, sorted...)
}

// OSListDir lists a real directory.
func OSListDir(path string) ([]Entry, time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, time.Time{}, err
	}
	des, err := os.ReadDir(path)
	if err != nil {
		return nil, time.Time{}, err
	}
	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		entries = append(entries, Entry{Name: de.Name(), IsDir: de.IsDir()})
	}
	return entries, info.ModTime(), nil
}

// OSStat reads a real path's modification time.
func OSStat(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
