package ui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	var body string
	switch m.screen {
	case screenDetail:
		body = m.detailView()
	default:
		body = m.listView()
	}

	lines := []string{"", body}
	if m.errMsg != "" {
		lines = append(lines, "", m.center("! "+m.errMsg))
	}
	lines = append(lines, "", m.statusBar())
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) statusBar() string {
	hint := "(#) to select game"
	if m.screen == screenDetail {
		hint = "press 'b' to back"
	}

	bar := fmt.Sprintf("Press 'q' to exit | %s", hint)
	if snap := m.recorder.Totals(); snap.Calls > 0 {
		bar += fmt.Sprintf(" | last fetch %dms", snap.LastCallLatency.Milliseconds())
	}
	return bar
}

// center pads a line to the middle of the terminal when the width is known.
func (m Model) center(s string) string {
	if m.width <= len(s) {
		return s
	}
	return strings.Repeat(" ", (m.width-len(s))/2) + s
}
