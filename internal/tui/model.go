// Package tui is the interactive card board.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/dailytodo/internal/board"
	"github.com/idilsaglam/dailytodo/internal/logging"
	"github.com/idilsaglam/dailytodo/internal/ui"
)

const (
	headerHeight       = 2
	barHeight          = 1
	dropZoneWidth      = 16
	minListHeight      = cardHeight
	defaultScrollDelay = 50 * time.Millisecond
)

// scrollMsg asks the list to bring its last card into view.
type scrollMsg struct{}

// Model is the bubbletea model of one board session.
type Model struct {
	session *board.Session
	theme   ui.Theme
	log     *logging.Logger
	keys    keyMap
	help    help.Model

	list    list.Model
	title   textinput.Model
	content textarea.Model
	focus   formFocus
	chip    int

	scrollDelay time.Duration
	copyText    func(string) error
	status      string

	width, height int
}

// NewModel builds the board view over s.
func NewModel(s *board.Session, opts ...Option) Model {
	theme, _ := ui.ThemeByName("")
	m := Model{
		session:     s,
		theme:       theme,
		keys:        newKeyMap(),
		help:        help.New(),
		title:       newTitleInput(),
		content:     newContentInput(),
		scrollDelay: defaultScrollDelay,
		copyText:    clipboard.WriteAll,
		width:       80,
		height:      24,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.log == nil {
		m.log = logging.Discard()
	}

	l := list.New(nil, cardDelegate{theme: m.theme, session: s}, m.width, m.height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	m.list = l

	m.syncList()
	m.keys.setMode(m.mode())
	m.resize()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Session returns the board state the model drives.
func (m Model) Session() *board.Session { return m.session }

// ---- layout ----

// layout is the screen geometry of the current frame.
type layout struct {
	listTop, listHeight, listWidth int
	zoneX                          int // -1 when the drop zone is hidden
	formTop                        int // -1 when the form is hidden
	barY                           int
}

func (m Model) layout() layout {
	lay := layout{listTop: headerHeight, listWidth: m.width, zoneX: -1, formTop: -1}
	if m.session.Dragging() {
		lay.listWidth = m.width - dropZoneWidth
		lay.zoneX = lay.listWidth
	}
	reserved := headerHeight + barHeight + lipgloss.Height(m.helpView())
	if m.session.FormVisible() {
		reserved += formHeight
	}
	lay.listHeight = m.height - reserved
	if lay.listHeight < minListHeight {
		lay.listHeight = minListHeight
	}
	next := lay.listTop + lay.listHeight
	if m.session.FormVisible() {
		lay.formTop = next
		next += formHeight
	}
	lay.barY = next
	return lay
}

func (m *Model) resize() {
	lay := m.layout()
	m.list.SetSize(lay.listWidth, lay.listHeight)
	m.help.Width = m.width

	inner := m.width - 2*formInset - labelWidth
	if inner < 1 {
		inner = 1
	}
	m.title.Width = inner - 1
	m.content.SetWidth(inner)
}

func (m Model) mode() mode {
	switch {
	case m.session.FormVisible():
		return modeForm
	case m.session.Dragging():
		return modeGrab
	}
	return modeBoard
}

// ---- update ----

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case scrollMsg:
		if m.session.FormVisible() && len(m.list.Items()) > 0 {
			m.list.Select(len(m.list.Items()) - 1)
		}
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m, cmd = m.handleMouse(msg)
	default:
		if m.session.FormVisible() {
			var c1, c2 tea.Cmd
			m.title, c1 = m.title.Update(msg)
			m.content, c2 = m.content.Update(msg)
			cmd = tea.Batch(c1, c2)
		}
	}
	m.keys.setMode(m.mode())
	m.resize()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.forceQuit) {
		return m, tea.Quit
	}
	switch m.mode() {
	case modeForm:
		switch {
		case key.Matches(msg, m.keys.confirm):
			m.commit()
		case key.Matches(msg, m.keys.cancel):
			m.cancel()
		case key.Matches(msg, m.keys.nextField):
			m.focus = (m.focus + 1) % focusCount
			cmd := m.focusInputs()
			return m, cmd
		case key.Matches(msg, m.keys.prevField):
			m.focus = (m.focus + focusCount - 1) % focusCount
			cmd := m.focusInputs()
			return m, cmd
		default:
			return m.updateForm(msg)
		}
	case modeGrab:
		switch {
		case key.Matches(msg, m.keys.drop):
			m.drop()
		case key.Matches(msg, m.keys.release):
			m.session.DragEnd()
			m.status = ""
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		}
	default:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.toggleHelp):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.up):
			m.list.CursorUp()
		case key.Matches(msg, m.keys.down):
			m.list.CursorDown()
		case key.Matches(msg, m.keys.add):
			cmd := m.openForm()
			return m, cmd
		case key.Matches(msg, m.keys.grab):
			if ci, ok := m.list.SelectedItem().(cardItem); ok {
				m.session.DragStart(ci.ID)
				m.session.DragEnter()
				m.status = fmt.Sprintf("grabbed %q", ci.Title)
			}
		case key.Matches(msg, m.keys.yank):
			m.yank()
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	lay := m.layout()
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.list.CursorUp()
			return m, nil
		case tea.MouseButtonWheelDown:
			m.list.CursorDown()
			return m, nil
		case tea.MouseButtonLeft:
		default:
			return m, nil
		}
		if msg.Y == lay.barY {
			for _, b := range m.barButtons() {
				if b.at.contains(msg.X) {
					return m.press(b.action)
				}
			}
			return m, nil
		}
		if f, ok := m.formRow(lay, msg.Y); ok {
			m.focus = f
			cmd := m.focusInputs()
			if f == focusTags {
				for i, s := range m.chipSpans() {
					if s.contains(msg.X) {
						m.toggleChip(i)
						break
					}
				}
			}
			return m, cmd
		}
		if i, ok := m.cardAt(lay, msg.X, msg.Y); ok {
			m.list.Select(i)
			if ci, ok := m.list.SelectedItem().(cardItem); ok {
				m.session.DragStart(ci.ID)
			}
		}
	case tea.MouseActionMotion:
		if !m.session.Dragging() {
			return m, nil
		}
		if inZone(lay, msg.X, msg.Y) {
			m.session.DragEnter()
		} else {
			m.session.DragLeave()
		}
	case tea.MouseActionRelease:
		if !m.session.Dragging() {
			return m, nil
		}
		if inZone(lay, msg.X, msg.Y) {
			m.drop()
		} else {
			m.session.DragEnd()
		}
	}
	return m, nil
}

func inZone(lay layout, x, y int) bool {
	return lay.zoneX >= 0 && x >= lay.zoneX &&
		y >= lay.listTop && y < lay.listTop+lay.listHeight
}

// cardAt maps a screen cell to the index of the card drawn there.
func (m Model) cardAt(lay layout, x, y int) (int, bool) {
	if x < 0 || x >= lay.listWidth || y < lay.listTop || y >= lay.listTop+lay.listHeight {
		return 0, false
	}
	rel := y - lay.listTop
	slot := cardHeight + cardSpacing
	if rel%slot >= cardHeight {
		return 0, false
	}
	start, end := m.list.Paginator.GetSliceBounds(len(m.list.Items()))
	i := start + rel/slot
	if i >= end {
		return 0, false
	}
	return i, true
}

// ---- actions ----

type barAction int

const (
	actionAdd barAction = iota
	actionCancel
	actionOK
)

type barButton struct {
	label  string
	action barAction
	at     span
}

func (m Model) barButtons() []barButton {
	var out []barButton
	if m.session.FormVisible() {
		out = []barButton{{label: "Cancel", action: actionCancel}, {label: "OK", action: actionOK}}
	} else {
		out = []barButton{{label: m.theme.AddGlyph, action: actionAdd}}
	}
	x := 0
	for i := range out {
		w := lipgloss.Width(m.theme.Button.Render(out[i].label))
		out[i].at = span{from: x, to: x + w}
		x += w + 2
	}
	return out
}

func (m Model) press(a barAction) (Model, tea.Cmd) {
	switch a {
	case actionAdd:
		cmd := m.openForm()
		return m, cmd
	case actionCancel:
		m.cancel()
	case actionOK:
		m.commit()
	}
	return m, nil
}

func (m *Model) openForm() tea.Cmd {
	if !m.session.OpenForm() {
		return nil
	}
	m.loadDraft()
	m.focus = focusTitle
	m.chip = 0
	m.status = ""
	m.resize()
	scroll := tea.Tick(m.scrollDelay, func(time.Time) tea.Msg { return scrollMsg{} })
	return tea.Batch(m.focusInputs(), scroll)
}

func (m *Model) commit() {
	it, ok := m.session.Commit()
	if !ok {
		return
	}
	m.blurInputs()
	m.clearInputs()
	m.syncList()
	m.list.Select(len(m.list.Items()) - 1)
	m.status = fmt.Sprintf("added %q", it.Title)
}

func (m *Model) cancel() {
	m.session.Cancel()
	m.blurInputs()
	m.status = ""
}

func (m *Model) drop() {
	it, ok := m.session.Drop()
	if !ok {
		m.session.DragEnd()
		m.syncList()
		return
	}
	m.syncList()
	m.status = fmt.Sprintf("deleted %q", it.Title)
}

func (m *Model) yank() {
	ci, ok := m.list.SelectedItem().(cardItem)
	if !ok {
		return
	}
	if err := m.copyText(cardText(ci.Item)); err != nil {
		m.log.Warn("clipboard write failed", "err", err)
		m.status = "copy failed"
		return
	}
	m.status = fmt.Sprintf("copied %q", ci.Title)
}

// syncList reloads the list from the session, keeping the cursor in range.
func (m *Model) syncList() {
	cards := m.session.Items()
	items := make([]list.Item, 0, len(cards))
	for _, c := range cards {
		items = append(items, cardItem{c})
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

// ---- view ----

func (m Model) View() string {
	lay := m.layout()
	body := m.list.View()
	if lay.zoneX >= 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(lay.listWidth).Render(body),
			m.dropZoneView(lay.listHeight))
	}
	body = lipgloss.NewStyle().Height(lay.listHeight).MaxHeight(lay.listHeight).Render(body)

	parts := []string{m.headerView(), body}
	if m.session.FormVisible() {
		parts = append(parts, m.formView(m.width))
	}
	parts = append(parts, m.barView(), m.helpView())
	return strings.Join(parts, "\n")
}

func (m Model) headerView() string {
	title := m.theme.Title.Render("Daily Todo")
	count := m.theme.Muted.Render(fmt.Sprintf("%d cards", m.session.Len()))
	return title + "  " + count + "\n"
}

func (m Model) dropZoneView(height int) string {
	style := m.theme.DropZone
	text := m.theme.TrashGlyph + "\ndrop here"
	if m.session.Hovering() {
		style = m.theme.DropZoneOver
		text = m.theme.TrashGlyph + "\nrelease to\ndelete"
	}
	frame := style.GetVerticalFrameSize()
	return style.
		Width(dropZoneWidth - style.GetHorizontalBorderSize()).
		Height(max(height-frame, 1)).
		Render(text)
}

func (m Model) barView() string {
	buttons := m.barButtons()
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		style := m.theme.Button
		if b.action == actionOK {
			style = m.theme.ButtonFocused
		}
		parts = append(parts, style.Render(b.label))
	}
	bar := strings.Join(parts, "  ")
	if m.status != "" {
		bar += "  " + m.theme.Muted.Render(m.status)
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(bar)
}

func (m Model) helpView() string {
	return m.help.View(m.keys)
}
