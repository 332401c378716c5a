// Package viewer holds the per-file viewing state machine: which record is
// shown, how far it is scrolled, which input mode is active, and whether the
// skeleton view is toggled on. The state is created when a record file is
// opened and discarded when the viewer closes; nothing persists across
// reopens.
package viewer

import "strconv"

// Mode selects where typed input goes.
type Mode int

const (
	ModeSearch Mode = iota
	ModeJump
)

func (m Mode) String() string {
	if m == ModeJump {
		return "JUMP"
	}
	return "SEARCH"
}

// State is one open file's viewing state. Record indexes into the visible
// sequence, which maps to underlying source indices (identity when no record
// filter is applied).
type State struct {
	Record       int
	Scroll       int
	Mode         Mode
	SearchBuf    string
	JumpBuf      string
	ShowSkeleton bool
	visible      []int
}

// New opens a viewer over a source with count records.
func New(count int) *State {
	return &State{visible: identity(count)}
}

func identity(count int) []int {
	v := make([]int, count)
	for i := range v {
		v[i] = i
	}
	return v
}

// Count reports the number of visible records.
func (s *State) Count() int { return len(s.visible) }

// SourceIndex maps a visible-sequence index onto the underlying record index.
func (s *State) SourceIndex(i int) int {
	if len(s.visible) == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i >= len(s.visible) {
		i = len(s.visible) - 1
	}
	return s.visible[i]
}

// CurrentSource is the underlying index of the record on screen.
func (s *State) CurrentSource() int { return s.SourceIndex(s.Record) }

// NextRecord and PrevRecord move between records, clamped at the ends, and
// reset the scroll to the top.
func (s *State) NextRecord() {
	if s.Record+1 < len(s.visible) {
		s.Record++
	}
	s.Scroll = 0
}

func (s *State) PrevRecord() {
	if s.Record > 0 {
		s.Record--
	}
	s.Scroll = 0
}

// ScrollDown moves within the current record's wrapped lines: clamped when
// the content fits one screenful, cyclic modulo the line count otherwise.
func (s *State) ScrollDown(lineCount, pageRows int) {
	if lineCount <= pageRows {
		s.Scroll = 0
		return
	}
	s.Scroll = (s.Scroll + 1) % lineCount
}

func (s *State) ScrollUp(lineCount, pageRows int) {
	if lineCount <= pageRows {
		s.Scroll = 0
		return
	}
	s.Scroll = (s.Scroll - 1 + lineCount) % lineCount
}

// CycleMode flips between SEARCH and JUMP.
func (s *State) CycleMode() {
	if s.Mode == ModeSearch {
		s.Mode = ModeJump
	} else {
		s.Mode = ModeSearch
	}
}

// ToggleSkeleton flips the structure view; both views share scroll offsets.
func (s *State) ToggleSkeleton() { s.ShowSkeleton = !s.ShowSkeleton }

// TypeRune routes a typed character to the active mode's buffer: printable
// ASCII for search, digits for jump. Anything else is dropped.
func (s *State) TypeRune(r rune) {
	switch s.Mode {
	case ModeSearch:
		if r >= ' ' && r < 127 {
			s.SearchBuf += string(r)
		}
	case ModeJump:
		if r >= '0' && r <= '9' {
			s.JumpBuf += string(r)
		}
	}
}

// Backspace shortens the active mode's buffer.
func (s *State) Backspace() {
	switch s.Mode {
	case ModeSearch:
		if s.SearchBuf != "" {
			s.SearchBuf = s.SearchBuf[:len(s.SearchBuf)-1]
		}
	case ModeJump:
		if s.JumpBuf != "" {
			s.JumpBuf = s.JumpBuf[:len(s.JumpBuf)-1]
		}
	}
}

// SubmitJump parses the jump buffer as a 1-based record number, clamping
// silently into range. A non-numeric buffer is ignored and left in place for
// correction; a successful jump consumes it.
func (s *State) SubmitJump() {
	n, err := strconv.Atoi(s.JumpBuf)
	if err != nil {
		return
	}
	if n < 1 {
		n = 1
	}
	if n > len(s.visible) {
		n = len(s.visible)
	}
	s.Record = n - 1
	s.Scroll = 0
	s.JumpBuf = ""
}

// SetPosition places the viewer on a record and line, used to land on a
// search match or to reset to the start of file.
func (s *State) SetPosition(record, line int) {
	s.Record = record
	s.Scroll = line
}

// ApplyFilter replaces the visible sequence with the given underlying
// indices. The current record is kept when it survives the filter, otherwise
// the viewer resets to the first visible record.
func (s *State) ApplyFilter(indices []int, sourceCount int) {
	if indices == nil {
		indices = identity(sourceCount)
	}
	current := s.CurrentSource()
	s.visible = indices
	s.Record = 0
	s.Scroll = 0
	for i, idx := range indices {
		if idx == current {
			s.Record = i
			break
		}
	}
}
