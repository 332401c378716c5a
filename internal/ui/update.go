package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SnocrashWang/FileExplorer/internal/export"
	"github.com/SnocrashWang/FileExplorer/internal/record"
	"github.com/SnocrashWang/FileExplorer/internal/render"
	"github.com/SnocrashWang/FileExplorer/internal/util/logx"
	"github.com/SnocrashWang/FileExplorer/internal/viewer"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		if m.modalActive {
			m.resizeModal()
		}
		return m, nil
	case tea.KeyMsg:
		if keyMatches(msg, m.keymap.Quit) {
			return m, tea.Quit
		}
		if m.modalActive {
			return m.updateModal(msg)
		}
		if m.inlineMode == inlineFilter {
			return m.updateInlineFilter(msg)
		}
		if keyMatches(msg, m.keymap.Help) {
			m.openModal(modalHelp, "Help", m.renderHelpBody())
			return m, nil
		}
		if keyMatches(msg, m.keymap.AppLogs) {
			m.openModal(modalLogs, "Application logs", logx.Dump())
			return m, nil
		}
		if m.vw != nil {
			return m.updateViewer(msg)
		}
		return m.updateBrowser(msg)
	}
	return m, nil
}

func (m *Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.modalActive = false
		return m, nil
	}
	var cmd tea.Cmd
	m.modalVP, cmd = m.modalVP.Update(msg)
	return m, cmd
}

func (m *Model) updateBrowser(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		m.nav.MoveUp()
	case tea.KeyDown:
		m.nav.MoveDown()
	case tea.KeyEnter:
		if path, ok := m.nav.Enter(); ok {
			if record.IsSupported(path) {
				m.openViewer(path)
			} else {
				m.lastMsg = fmt.Sprintf("cannot open %s: unsupported file type", path)
			}
		}
	case tea.KeyBackspace:
		m.nav.Backspace()
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= ' ' && r < 127 {
				m.nav.AppendFilter(r)
			}
		}
	}
	return m, nil
}

func (m *Model) updateViewer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keymap.Skeleton):
		m.vw.ToggleSkeleton()
		return m, nil
	case keyMatches(msg, m.keymap.Reload):
		m.reload()
		return m, nil
	case keyMatches(msg, m.keymap.Filter):
		m.inlineMode = inlineFilter
		m.filterInput.SetValue(m.criteria.Expr)
		m.filterInput.Focus()
		return m, nil
	case keyMatches(msg, m.keymap.Copy):
		copyToClipboard(m.src.Raw(m.vw.CurrentSource()))
		m.lastMsg = "copied record to clipboard"
		return m, nil
	case keyMatches(msg, m.keymap.Export):
		m.exportVisible()
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		m.closeViewer()
	case tea.KeyLeft:
		m.vw.PrevRecord()
	case tea.KeyRight:
		m.vw.NextRecord()
	case tea.KeyUp:
		m.vw.ScrollUp(len(m.activeLines(m.vw.Record)), m.pageRows())
	case tea.KeyDown:
		m.vw.ScrollDown(len(m.activeLines(m.vw.Record)), m.pageRows())
	case tea.KeyTab:
		m.vw.CycleMode()
	case tea.KeyBackspace:
		m.vw.Backspace()
	case tea.KeyEnter:
		if m.vw.Mode == viewer.ModeJump {
			m.vw.SubmitJump()
		} else {
			m.submitSearch()
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.vw.TypeRune(r)
		}
	}
	return m, nil
}

func (m *Model) updateInlineFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.applyRecordFilter(strings.TrimSpace(m.filterInput.Value()))
		m.inlineMode = inlineNone
		m.filterInput.Blur()
		return m, nil
	case tea.KeyEsc:
		m.inlineMode = inlineNone
		m.filterInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

// ===== viewer actions =====

func (m *Model) openViewer(path string) {
	m.src = record.Open(path, nil)
	m.cache = render.NewCache(m.cfg.CacheCap)
	m.vw = viewer.New(m.src.Count())
	m.criteria = record.Criteria{}
	m.eval = nil
	m.lastQuery = ""
	m.lastMsg = ""
	logx.Infof("viewer: opened %s (%d records)", path, m.src.Count())
}

func (m *Model) closeViewer() {
	m.src = nil
	m.cache = nil
	m.vw = nil
	m.eval = nil
	m.inlineMode = inlineNone
	m.lastMsg = ""
}

// reload re-reads the file from disk and drops every cached rendering, for
// files that changed between views. The record filter is re-applied against
// the fresh contents.
func (m *Model) reload() {
	path := m.src.Path()
	m.src = record.Open(path, nil)
	m.cache.Purge()
	m.applyVisible()
	m.lastMsg = fmt.Sprintf("reloaded %s (%d records)", path, m.src.Count())
	logx.Infof("viewer: reloaded %s", path)
}

func (m *Model) applyRecordFilter(expr string) {
	ev, err := record.NewEvaluator(record.Criteria{Expr: expr})
	if err != nil {
		m.lastMsg = "filter: " + err.Error()
		logx.Warnf("filter: bad expression %q: %v", expr, err)
		return
	}
	if expr == "" {
		ev = nil
	}
	if ev != nil && len(record.VisibleIndices(m.src, ev)) == 0 {
		m.lastMsg = "filter matches no records"
		return
	}
	m.criteria.Expr = expr
	m.eval = ev
	m.applyVisible()
	if expr == "" {
		m.lastMsg = "filter cleared"
	} else {
		m.lastMsg = fmt.Sprintf("filter: %d/%d records", m.vw.Count(), m.src.Count())
	}
}

func (m *Model) applyVisible() {
	if m.eval == nil {
		m.vw.ApplyFilter(nil, m.src.Count())
		return
	}
	m.vw.ApplyFilter(record.VisibleIndices(m.src, m.eval), m.src.Count())
}

func (m *Model) submitSearch() {
	query := m.vw.SearchBuf
	m.lastQuery = query
	if query == "" {
		return
	}
	pos := render.Position{Record: m.vw.Record, Line: m.vw.Scroll}
	next, ok := render.SearchNext(pos, query, m.vw.Count(), m.activeLines)
	if ok {
		m.vw.SetPosition(next.Record, next.Line)
		m.lastMsg = ""
		return
	}
	m.vw.SetPosition(0, 0)
	m.lastMsg = "no more matches, back at start of file"
}

func (m *Model) exportVisible() {
	records := make([]string, 0, m.vw.Count())
	for i := 0; i < m.vw.Count(); i++ {
		records = append(records, m.src.Raw(m.vw.SourceIndex(i)))
	}
	if err := export.ToJSONL(m.cfg.ExportOut, records); err != nil {
		m.lastMsg = "export: " + err.Error()
		logx.Errorf("export: %v", err)
		return
	}
	m.lastMsg = fmt.Sprintf("exported %d records to %s", len(records), m.cfg.ExportOut)
	logx.Infof("export: wrote %d records to %s", len(records), m.cfg.ExportOut)
}

// activeLines returns the wrapped lines of one visible record in whichever
// view the user is looking at, through the render cache.
func (m *Model) activeLines(visible int) []string {
	rec := m.cache.Get(m.vw.SourceIndex(visible), m.contentWidth(), m.src.Raw)
	return rec.Lines(m.vw.ShowSkeleton)
}

func (m *Model) contentWidth() int {
	if m.termWidth < 1 {
		return 80
	}
	return m.termWidth
}

// pageRows is the body height: everything minus two header lines and two
// bottom lines.
func (m *Model) pageRows() int {
	rows := m.termHeight - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

// ===== modal =====

func (m *Model) openModal(kind modalKind, title, body string) {
	m.modalActive = true
	m.modalKind = kind
	m.modalTitle = title
	m.resizeModal()
	if body == "" {
		body = "(empty)"
	}
	m.modalVP.SetContent(body)
}

func (m *Model) resizeModal() {
	w := m.termWidth - 8
	if w < 20 {
		w = 20
	}
	h := m.termHeight - 6
	if h < 5 {
		h = 5
	}
	m.modalVP.Width = w
	m.modalVP.Height = h
}

func (m *Model) buildHelpItems() []helpItem {
	km := m.keymap
	return []helpItem{
		{group: "Browser", key: "up/down", text: "Move selection (wraps around)"},
		{group: "Browser", key: "enter", text: "Enter directory / open record file"},
		{group: "Browser", key: "a-z 0-9", text: "Narrow listing by filename substring"},
		{group: "Browser", key: "backspace", text: "Shorten filter, or go to parent"},
		{group: "Browser", key: "esc", text: "Quit"},

		{group: "Viewer", key: "left/right", text: "Previous / next record"},
		{group: "Viewer", key: "up/down", text: "Scroll within record"},
		{group: "Viewer", key: "tab", text: "Switch SEARCH / JUMP mode"},
		{group: "Viewer", key: "enter", text: "Run search or jump to record"},
		{group: "Viewer", key: keyLabel(km.Skeleton), text: "Toggle skeleton view"},
		{group: "Viewer", key: keyLabel(km.Filter), text: "Filter records by expression"},
		{group: "Viewer", key: keyLabel(km.Reload), text: "Reload file from disk"},
		{group: "Viewer", key: keyLabel(km.Copy), text: "Copy raw record to clipboard"},
		{group: "Viewer", key: keyLabel(km.Export), text: "Export visible records"},
		{group: "Viewer", key: "esc", text: "Back to browser"},

		{group: "Anywhere", key: keyLabel(km.Help), text: "This help"},
		{group: "Anywhere", key: keyLabel(km.AppLogs), text: "Application logs"},
		{group: "Anywhere", key: keyLabel(km.Quit), text: "Quit"},
	}
}
