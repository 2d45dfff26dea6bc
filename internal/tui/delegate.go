package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/dailytodo/internal/board"
	"github.com/idilsaglam/dailytodo/internal/model"
	"github.com/idilsaglam/dailytodo/internal/ui"
)

const (
	cardHeight   = 4 // title, two content lines, tags
	cardSpacing  = 1
	contentLines = 2
)

// cardItem adapts model.Item to list.Item.
type cardItem struct {
	model.Item
}

func (c cardItem) FilterValue() string {
	return c.Title + " " + strings.Join(c.Tags, " ")
}

// cardDelegate renders one card per list item.
type cardDelegate struct {
	theme   ui.Theme
	session *board.Session
}

func (d cardDelegate) Height() int                         { return cardHeight }
func (d cardDelegate) Spacing() int                        { return cardSpacing }
func (d cardDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(cardItem)
	if !ok {
		return
	}
	style := d.theme.Card
	if index == m.Index() {
		style = d.theme.SelectedCard
	}
	if id, dragging := d.session.DraggedID(); dragging && id == ci.ID {
		style = d.theme.GrabbedCard
	}
	width := m.Width() - style.GetHorizontalFrameSize()
	if width < 1 {
		width = 1
	}
	line := lipgloss.NewStyle().MaxWidth(width)

	rows := make([]string, 0, cardHeight)
	rows = append(rows, line.Render(d.theme.CardTitle.Render(ci.Title)))
	for _, c := range clampLines(ci.Content, width, contentLines) {
		rows = append(rows, d.theme.CardContent.Render(c))
	}
	rows = append(rows, line.Render(tagsLine(d.theme, ci.Tags)))

	fmt.Fprint(w, style.Render(strings.Join(rows, "\n")))
}

func tagsLine(t ui.Theme, tags []string) string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, t.Tag.Render("#"+tag))
	}
	return strings.Join(out, " ")
}

// clampLines wraps text to width and returns exactly n lines, marking cut
// text with an ellipsis.
func clampLines(text string, width, n int) []string {
	out := make([]string, n)
	text = strings.TrimSpace(text)
	if text == "" || width < 1 {
		return out
	}
	wrapped := strings.Split(lipgloss.NewStyle().Width(width).Render(text), "\n")
	for i := 0; i < n && i < len(wrapped); i++ {
		out[i] = strings.TrimRight(wrapped[i], " ")
	}
	if len(wrapped) > n {
		last := out[n-1]
		if lipgloss.Width(last)+1 > width {
			last = lipgloss.NewStyle().MaxWidth(width - 1).Render(last)
		}
		out[n-1] = last + "…"
	}
	return out
}

// cardText is the plain text copied to the clipboard.
func cardText(it model.Item) string {
	var b strings.Builder
	b.WriteString(it.Title)
	if it.Content != "" {
		b.WriteString("\n" + it.Content)
	}
	if len(it.Tags) > 0 {
		b.WriteString("\n#" + strings.Join(it.Tags, " #"))
	}
	return b.String()
}
