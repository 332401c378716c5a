package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/SnocrashWang/FileExplorer/internal/browse"
	"github.com/SnocrashWang/FileExplorer/internal/config"
	"github.com/SnocrashWang/FileExplorer/internal/record"
	"github.com/SnocrashWang/FileExplorer/internal/render"
	"github.com/SnocrashWang/FileExplorer/internal/viewer"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalHelp
	modalLogs
)

type inlineMode int

const (
	inlineNone inlineMode = iota
	inlineFilter
)

// Model is the bubbletea front end. It owns the navigation and viewer state
// machines plus both caches and translates key messages into their events;
// all record/listing state lives in the internal packages, none of it here.
type Model struct {
	ctx context.Context
	cfg *config.Config

	styles Styles
	keymap KeyMap

	// Directory browser
	listings *browse.ListingCache
	nav      *browse.Nav

	// Record viewer; nil while browsing
	src      *record.Source
	cache    *render.Cache
	vw       *viewer.State
	criteria record.Criteria
	eval     *record.Evaluator
	// last applied search query, kept for match highlighting
	lastQuery string

	// Inline record-filter input on the bottom line
	inlineMode  inlineMode
	filterInput textinput.Model

	// Modal popup
	modalActive bool
	modalKind   modalKind
	modalTitle  string
	modalVP     viewport.Model

	termWidth  int
	termHeight int
	lastMsg    string
}

type helpItem struct {
	group string
	key   string
	text  string
}
