package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SnocrashWang/FileExplorer/internal/util/logx"
)

// ReadFileFunc abstracts file reads so sources can be built from fakes in tests.
type ReadFileFunc func(path string) ([]byte, error)

// Source holds one open file's records as an ordered sequence of raw text
// blobs. A source always contains at least one record: when the file cannot
// be read or parsed, the single record carries the error message (encoded as
// a JSON string so the render pipeline displays it as-is).
type Source struct {
	path    string
	records []string
	failed  bool
}

// IsSupported reports whether path has an extension the viewer can open.
func IsSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".json", ".txt":
		return true
	}
	return false
}

// Open loads path's records using the adapter selected by file extension.
// readFile defaults to os.ReadFile when nil.
func Open(path string, readFile ReadFileFunc) *Source {
	if readFile == nil {
		readFile = os.ReadFile
	}
	data, err := readFile(path)
	if err != nil {
		logx.Warnf("record: cannot read %s: %v", path, err)
		return errorSource(path, fmt.Sprintf("cannot open file: %v", err))
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl":
		return fromLines(path, data)
	case ".json":
		return fromJSON(path, data)
	case ".txt":
		return fromTabbed(path, data)
	}
	return errorSource(path, fmt.Sprintf("unsupported file type: %s", filepath.Ext(path)))
}

// Path returns the file this source was loaded from.
func (s *Source) Path() string { return s.path }

// Count reports the number of records; always at least 1.
func (s *Source) Count() int { return len(s.records) }

// Failed reports whether this source holds an error record instead of data.
func (s *Source) Failed() bool { return s.failed }

// Raw returns the record at index i, clamped into the valid range.
func (s *Source) Raw(i int) string {
	if i < 0 {
		i = 0
	}
	if i >= len(s.records) {
		i = len(s.records) - 1
	}
	return s.records[i]
}

func fromLines(path string, data []byte) *Source {
	lines := splitLines(data)
	if len(lines) == 0 {
		return errorSource(path, "file contains no records")
	}
	return &Source{path: path, records: lines}
}

func fromJSON(path string, data []byte) *Source {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return errorSource(path, fmt.Sprintf("invalid JSON: %v", err))
	}
	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return errorSource(path, "file contains no records")
		}
		records := make([]string, 0, len(arr))
		for _, el := range arr {
			b, err := json.Marshal(el)
			if err != nil {
				return errorSource(path, fmt.Sprintf("invalid JSON element: %v", err))
			}
			records = append(records, string(b))
		}
		return &Source{path: path, records: records}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return errorSource(path, fmt.Sprintf("invalid JSON: %v", err))
	}
	return &Source{path: path, records: []string{string(b)}}
}

func fromTabbed(path string, data []byte) *Source {
	lines := splitLines(data)
	if len(lines) == 0 {
		return errorSource(path, "file contains no records")
	}
	records := make([]string, 0, len(lines))
	for i, line := range lines {
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return errorSource(path, fmt.Sprintf("malformed line %d: expected at least 2 tab-separated fields", i+1))
		}
		records = append(records, fields[1])
	}
	return &Source{path: path, records: records}
}

func splitLines(data []byte) []string {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

func errorSource(path, msg string) *Source {
	// The message is stored as a JSON string so the renderer parses it
	// cleanly and shows the text instead of a generic parse error.
	b, _ := json.Marshal("Error: " + msg)
	return &Source{path: path, records: []string{string(b)}, failed: true}
}
