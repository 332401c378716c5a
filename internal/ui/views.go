package ui

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/SnocrashWang/FileExplorer/internal/browse"
	"github.com/SnocrashWang/FileExplorer/internal/viewer"
)

func (m *Model) View() string {
	var v string
	if m.vw != nil {
		v = m.renderViewer()
	} else {
		v = m.renderBrowser()
	}
	if m.modalActive {
		dimmed := lipgloss.NewStyle().Faint(true).Render(v)
		v = overlay(dimmed, m.renderModal())
	}
	return v
}

// ===== browser =====

func (m *Model) renderBrowser() string {
	width := m.contentWidth()
	rows := m.pageRows()
	visible := m.nav.Visible()
	selected := m.nav.Selected()
	if selected >= len(visible) {
		selected = 0
	}

	header := runewidth.Truncate("Current directory: "+m.nav.Path(), width, "…")
	page := selected / rows
	pageCount := (len(visible) + rows - 1) / rows
	info := fmt.Sprintf("Page: %d / %d, %d entries", page+1, pageCount, len(visible))
	if f := m.nav.Filter(); f != "" {
		info += "  filter: " + f
	}

	lines := make([]string, 0, rows+4)
	lines = append(lines, m.styles.Header.Render(header))
	lines = append(lines, m.styles.Status.Render(info))

	start := page * rows
	end := start + rows
	if end > len(visible) {
		end = len(visible)
	}
	for i := start; i < end; i++ {
		e := visible[i]
		name := e.Name
		if e.IsDir && name != browse.ParentName {
			name += "/"
		}
		name = runewidth.Truncate(name, width, "…")
		switch {
		case i == selected:
			name = m.styles.Selected.Render(name)
		case e.IsDir:
			name = m.styles.Directory.Render(name)
		}
		lines = append(lines, name)
	}
	for len(lines) < rows+2 {
		lines = append(lines, "")
	}

	hint := "[enter]=open [backspace]=up [type]=filter [esc]=quit " + keyLabel(m.keymap.Help) + "=help"
	lines = append(lines, m.styles.Help.Render(runewidth.Truncate(hint, width, "…")))
	lines = append(lines, m.styles.Status.Render(runewidth.Truncate(m.lastMsg, width, "…")))
	return strings.Join(lines, "\n")
}

// ===== viewer =====

func (m *Model) renderViewer() string {
	width := m.contentWidth()
	rows := m.pageRows()

	all := m.activeLines(m.vw.Record)
	scroll := m.vw.Scroll
	if scroll >= len(all) {
		scroll = 0
	}
	end := scroll + rows
	if end > len(all) {
		end = len(all)
	}

	view := "full"
	if m.vw.ShowSkeleton {
		view = "skeleton"
	}
	header := runewidth.Truncate(fmt.Sprintf("File: %s", m.src.Path()), width, "…")
	info := fmt.Sprintf("Record %d / %d  [%s]", m.vw.Record+1, m.vw.Count(), view)
	if m.criteria.Expr != "" {
		info += fmt.Sprintf("  filtered by %q", m.criteria.Expr)
	}

	lines := make([]string, 0, rows+4)
	lines = append(lines, m.styles.Header.Render(header))
	lines = append(lines, m.styles.Status.Render(runewidth.Truncate(info, width, "…")))
	for _, line := range all[scroll:end] {
		lines = append(lines, colorizeLine(line, m.lastQuery, m.styles))
	}
	for len(lines) < rows+2 {
		lines = append(lines, "")
	}

	lines = append(lines, m.renderInputLine(width))
	lines = append(lines, m.styles.Status.Render(runewidth.Truncate(m.lastMsg, width, "…")))
	return strings.Join(lines, "\n")
}

// renderInputLine shows the mode-specific buffer, or the filter input while
// it is being edited.
func (m *Model) renderInputLine(width int) string {
	if m.inlineMode == inlineFilter {
		return m.filterInput.View()
	}
	var line string
	switch m.vw.Mode {
	case viewer.ModeJump:
		line = fmt.Sprintf("jump to record: %s  [tab]=search mode [enter]=go", m.vw.JumpBuf)
	default:
		line = fmt.Sprintf("search: %s  [tab]=jump mode [enter]=next match", m.vw.SearchBuf)
	}
	return m.styles.Help.Render(runewidth.Truncate(line, width, "…"))
}

// ===== modal =====

func (m *Model) renderModal() string {
	box := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.PopupTitle.Render(m.modalTitle),
		m.modalVP.View(),
		m.styles.Help.Render("[esc]=close  up/down=scroll"),
	)
	popup := m.styles.PopupBox.Render(box)
	return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, popup)
}

func (m *Model) renderHelpBody() string {
	var b strings.Builder
	group := ""
	for _, it := range m.buildHelpItems() {
		if it.group != group {
			if group != "" {
				b.WriteString("\n")
			}
			group = it.group
			b.WriteString(m.styles.PopupTitle.Render(group))
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "  %-12s %s\n", it.key, it.text)
	}
	return b.String()
}

// overlay draws overlay on top of base, treating whitespace-only overlay
// lines as transparent.
func overlay(base, over string) string {
	bLines := strings.Split(base, "\n")
	oLines := strings.Split(over, "\n")
	maxLen := len(bLines)
	if len(oLines) > maxLen {
		maxLen = len(oLines)
	}
	for len(bLines) < maxLen {
		bLines = append(bLines, "")
	}
	for len(oLines) < maxLen {
		oLines = append(oLines, "")
	}
	out := make([]string, maxLen)
	for i := 0; i < maxLen; i++ {
		if strings.TrimSpace(oLines[i]) != "" {
			out[i] = oLines[i]
		} else {
			out[i] = bLines[i]
		}
	}
	return strings.Join(out, "\n")
}

// copyToClipboard prefers the system clipboard and falls back to OSC52,
// which works in many terminals even over SSH.
func copyToClipboard(s string) {
	if err := clipboard.WriteAll(s); err == nil {
		return
	}
	enc := base64.StdEncoding.EncodeToString([]byte(s))
	payload := fmt.Sprintf("\x1b]52;c;%s\x07", enc)
	// Write to /dev/tty to avoid clobbering the app's stdout buffer.
	if f, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0); err == nil {
		defer f.Close()
		_, _ = f.WriteString(payload)
		return
	}
	fmt.Fprint(os.Stdout, payload)
}
