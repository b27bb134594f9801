package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/orbit/internal/ui"
)

// cardChrome is the horizontal space a card adds around its ring:
// border, padding and right margin.
const cardChrome = 5

// renderDashboard renders the complete dashboard view.
func (m *Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.layoutCards(m.renderCards()))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(StatusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title with a count of finished jobs.
func (m *Model) renderHeader() string {
	done := 0
	for _, sp := range m.spinners {
		if sp.State == ui.SpinnerComponentSuccess {
			done++
		}
	}

	title := ui.AccentStyle().Render("◍ orbit demo")
	if m.version != "" {
		title += " " + ui.MutedStyle().Render(m.version)
	}
	stats := ui.MutedStyle().Render(fmt.Sprintf(" | %d rings | %d done", len(m.rings), done))
	return HeaderStyle.Render(title + stats)
}

// renderCards renders one card per ring: the ring, its value and the job line.
func (m *Model) renderCards() []string {
	cards := make([]string, 0, len(m.rings))
	for i, r := range m.rings {
		value := ui.FormatPercent(r.DisplayedProgress())
		if !r.Bound() {
			value += " " + ui.MutedStyle().Render("manual")
		}

		body := lipgloss.JoinVertical(lipgloss.Center,
			r.View(),
			strings.TrimSpace(value),
			m.spinners[i].View(),
		)

		style := CardStyle
		if i == m.selected {
			style = CardSelectedStyle
		}
		cards = append(cards, style.Render(body))
	}
	return cards
}

// layoutCards arranges cards in rows based on terminal width.
func (m *Model) layoutCards(cards []string) string {
	if len(cards) == 0 {
		return ""
	}

	cardsPerRow := len(cards)
	if m.width > 0 {
		cardWidth := lipgloss.Width(cards[0])
		if cardWidth < 1 {
			cardWidth = cardChrome
		}
		cardsPerRow = m.width / cardWidth
		if cardsPerRow < 1 {
			cardsPerRow = 1
		}
	}

	var rows []string
	for i := 0; i < len(cards); i += cardsPerRow {
		end := i + cardsPerRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderFooter renders the keyboard help footer.
func (m *Model) renderFooter() string {
	return FooterStyle.Render(m.help.View(keys))
}
