package ui

import tea "github.com/charmbracelet/bubbletea"

// KeyMap names the chorded commands. Plain characters are never bound here:
// in the browser they feed the filename filter and in the viewer they feed
// the mode buffer, so commands must live on control combos.
type KeyMap struct {
	Quit     tea.Key
	Help     tea.Key
	AppLogs  tea.Key
	Reload   tea.Key
	Skeleton tea.Key
	Filter   tea.Key
	Copy     tea.Key
	Export   tea.Key
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:     tea.Key{Type: tea.KeyCtrlC},
		Help:     tea.Key{Type: tea.KeyCtrlG},
		AppLogs:  tea.Key{Type: tea.KeyCtrlL},
		Reload:   tea.Key{Type: tea.KeyCtrlR},
		Skeleton: tea.Key{Type: tea.KeyCtrlT},
		Filter:   tea.Key{Type: tea.KeyCtrlF},
		Copy:     tea.Key{Type: tea.KeyCtrlY},
		Export:   tea.Key{Type: tea.KeyCtrlE},
	}
}

func keyMatches(msg tea.KeyMsg, k tea.Key) bool {
	if k.Type != tea.KeyRunes {
		return msg.Type == k.Type
	}
	if len(k.Runes) > 0 {
		return msg.String() == string(k.Runes)
	}
	return false
}

func keyLabel(k tea.Key) string {
	if k.Type == tea.KeyRunes && len(k.Runes) > 0 {
		return string(k.Runes)
	}
	return tea.KeyMsg{Type: k.Type}.String()
}
