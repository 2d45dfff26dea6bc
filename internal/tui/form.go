package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/dailytodo/internal/board"
)

const (
	labelWidth  = 9
	contentRows = 3
	// border + title + content + tags line + tag chips + border
	formHeight = 1 + 1 + contentRows + 1 + 1 + 1
	// border + padding before the first column of form text
	formInset = 2
)

type formFocus int

const (
	focusTitle formFocus = iota
	focusContent
	focusTags
	focusCount
)

// span is a half-open column range [from, to) on one row.
type span struct {
	from, to int
}

func (s span) contains(x int) bool { return x >= s.from && x < s.to }

func newTitleInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Take dog out on walk"
	ti.CharLimit = 200
	return ti
}

func newContentInput() textarea.Model {
	ta := textarea.New()
	ta.Prompt = ""
	ta.Placeholder = "Details"
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetHeight(contentRows)
	return ta
}

// focusInputs moves keyboard focus to the current form field.
func (m *Model) focusInputs() tea.Cmd {
	m.title.Blur()
	m.content.Blur()
	switch m.focus {
	case focusTitle:
		return m.title.Focus()
	case focusContent:
		return m.content.Focus()
	}
	return nil
}

func (m *Model) blurInputs() {
	m.title.Blur()
	m.content.Blur()
}

// loadDraft copies the session draft into the inputs.
func (m *Model) loadDraft() {
	d := m.session.Draft()
	m.title.SetValue(d.TitleText())
	m.title.CursorEnd()
	m.content.SetValue(d.ContentText())
}

func (m *Model) clearInputs() {
	m.title.Reset()
	m.content.Reset()
	m.chip = 0
}

// updateForm routes a key to the focused field and turns value changes
// into draft edits.
func (m Model) updateForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		before := m.title.Value()
		m.title, cmd = m.title.Update(msg)
		if v := m.title.Value(); v != before {
			m.session.Apply(board.FieldSet{Field: board.FieldTitle, Value: v})
		}
	case focusContent:
		before := m.content.Value()
		m.content, cmd = m.content.Update(msg)
		if v := m.content.Value(); v != before {
			m.session.Apply(board.FieldSet{Field: board.FieldContent, Value: v})
		}
	case focusTags:
		m.updateChips(msg)
	}
	return m, cmd
}

func (m *Model) updateChips(msg tea.KeyMsg) {
	n := len(m.session.Tags())
	if n == 0 {
		return
	}
	switch {
	case key.Matches(msg, m.keys.chipLeft):
		m.chip = (m.chip + n - 1) % n
	case key.Matches(msg, m.keys.chipRight):
		m.chip = (m.chip + 1) % n
	case key.Matches(msg, m.keys.toggleChip):
		m.toggleChip(m.chip)
	}
}

func (m *Model) toggleChip(i int) {
	tags := m.session.Tags()
	if i < 0 || i >= len(tags) {
		return
	}
	m.chip = i
	m.session.Apply(board.TagToggle{Text: tags[i]})
}

func (m Model) chipView(i int, tag string, on bool) string {
	switch {
	case m.focus == focusTags && i == m.chip:
		return m.theme.ChipFocused.Render(tag)
	case on:
		return m.theme.ChipOn.Render(tag)
	}
	return m.theme.Chip.Render(tag)
}

// chipSpans returns the screen columns of each vocabulary chip.
func (m Model) chipSpans() []span {
	d := m.session.Draft()
	x := formInset + labelWidth
	var out []span
	for i, tag := range m.session.Tags() {
		w := lipgloss.Width(m.chipView(i, tag, slices.Contains(d.Tags, tag)))
		out = append(out, span{from: x, to: x + w})
		x += w + 1
	}
	return out
}

func (m Model) formView(width int) string {
	d := m.session.Draft()
	inner := width - 2*formInset
	if inner < labelWidth+1 {
		inner = labelWidth + 1
	}
	row := lipgloss.NewStyle().MaxWidth(inner)
	label := func(s string) string { return m.theme.Label.Width(labelWidth).Render(s) }

	tags := d.TagsText()
	if tags == "" {
		tags = m.theme.Muted.Render("Tags")
	}
	chips := make([]string, 0, len(m.session.Tags()))
	for i, tag := range m.session.Tags() {
		chips = append(chips, m.chipView(i, tag, slices.Contains(d.Tags, tag)))
	}

	rows := []string{
		row.Render(label("Title") + m.title.View()),
		row.Render(lipgloss.JoinHorizontal(lipgloss.Top, label("Content"), m.content.View())),
		row.Render(label("Tags") + tags),
		row.Render(label("") + strings.Join(chips, " ")),
	}
	return m.theme.Form.Width(width - 2).Render(strings.Join(rows, "\n"))
}

// formRow returns which form field sits on screen row y.
func (m Model) formRow(lay layout, y int) (formFocus, bool) {
	if lay.formTop < 0 {
		return 0, false
	}
	rel := y - lay.formTop - 1
	switch {
	case rel == 0:
		return focusTitle, true
	case rel >= 1 && rel <= contentRows:
		return focusContent, true
	case rel == contentRows+2:
		return focusTags, true
	}
	return 0, false
}
