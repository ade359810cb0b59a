package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

const title = "focusring"

// View implements tea.Model.
func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	if m.mouse {
		v.MouseMode = tea.MouseModeCellMotion
	}
	return v
}

// render draws the screen. Rows line up with the areas handed to the focus
// registry, so the popup is composited at its registered position.
func (m *Model) render() string {
	m.layout()
	lines := []string{
		styles.Title.Render(title),
		"",
		m.form.View(),
		"",
		m.statusLine(),
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styles.Footer.Render(truncateText(info, m.width)))
	}
	lines = append(lines, styles.Footer.Render(truncateText(m.footer(), m.width)))
	screen := strings.Join(lines, "\n")

	if popup := m.kind.PopupView(); popup != "" {
		area, _ := m.kind.PopupArea()
		height := m.height
		if height <= 0 {
			height = strings.Count(screen, "\n") + 1
		}
		screen = overlayAt(screen, popup, area.Min.X, area.Min.Y, m.width, height)
	}
	return screen
}

func (m *Model) statusLine() string {
	focused := m.FocusedName()
	if focused == "" {
		focused = "-"
	}
	status := fmt.Sprintf("%s  focus %s", m.outcome, focused)
	if len(m.gained) > 0 {
		status += "  gained " + strings.Join(m.gained, ",")
	}
	if len(m.lost) > 0 {
		status += "  lost " + strings.Join(m.lost, ",")
	}
	return styles.Status.Render(truncateText(status, m.width))
}

func (m *Model) footer() string {
	next := m.keys.Next.Help().Key
	prev := m.keys.Prev.Help().Key
	if m.mouse {
		return fmt.Sprintf("%s/%s move · click focuses · ctrl+c quits", next, prev)
	}
	return fmt.Sprintf("%s/%s move · ctrl+c quits", next, prev)
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return ansi.Truncate(text, width, "…")
}
