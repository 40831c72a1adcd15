package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const iconMarker = "● "

// View implements tea.Model. The row content was prepared by the renderer
// callbacks; this only styles and joins it.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	lines := make([]string, 0, len(m.rowBuf)+3)
	for _, row := range m.rowBuf {
		lines = append(lines, m.renderRow(row))
	}
	lines = append(lines, "")
	if m.errMsg != "" {
		lines = append(lines, render(styles.Error, fmt.Sprintf("Error: %s", m.errMsg)))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, m.filterLine())
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(row sessionRow) string {
	if row.Empty {
		return ""
	}
	prefix := "  "
	if row.Icon != "" {
		prefix = render(styles.Icon, iconMarker)
	}
	text := row.Name
	if m.width > 0 {
		text = truncate.StringWithTail(text, uint(max(m.width-2, 1)), "…")
	}
	if row.Selected {
		return prefix + render(styles.SelectedItem, text)
	}
	return prefix + render(styles.Item, text)
}

// filterLine renders the query prompt. Outside the overlay window the line
// shows only a placeholder, matching the debounced filter display.
func (m *Model) filterLine() string {
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	query := m.session.Query()
	if query == "" || !m.overlayVisible() {
		placeholder := "(type to search)"
		return prompt + render(styles.FilterPlaceholder, placeholder)
	}
	m.filterCursor.SetChar(" ")
	caret := m.filterCursor.View()
	return prompt + render(styles.Filter, query) + caret
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}
