package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SnocrashWang/FileExplorer/internal/browse"
	"github.com/SnocrashWang/FileExplorer/internal/config"
)

func initialModel(ctx context.Context, cfg *config.Config) *Model {
	listings := browse.NewListingCache(nil, nil)
	m := &Model{
		ctx:        ctx,
		cfg:        cfg,
		styles:     NewStyles(cfg.Theme == config.ThemeDark),
		keymap:     DefaultKeyMap(),
		listings:   listings,
		nav:        browse.NewNav(listings, cfg.StartDir),
		termWidth:  80,
		termHeight: 24,
	}
	m.filterInput = textinput.New()
	m.filterInput.Placeholder = "expression, e.g. age > 30"
	m.filterInput.CharLimit = 256
	m.filterInput.Prompt = "filter: "
	m.modalVP = viewport.New(78, 20)
	return m
}

func Run(ctx context.Context, cfg *config.Config) error {
	m := initialModel(ctx, cfg)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}
