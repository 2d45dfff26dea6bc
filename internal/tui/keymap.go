package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding. Bindings that don't apply to the current
// mode are disabled, which hides them from help and from key.Matches.
type keyMap struct {
	quit       key.Binding
	forceQuit  key.Binding
	toggleHelp key.Binding
	up         key.Binding
	down       key.Binding
	add        key.Binding
	grab       key.Binding
	yank       key.Binding

	drop    key.Binding
	release key.Binding

	confirm    key.Binding
	cancel     key.Binding
	nextField  key.Binding
	prevField  key.Binding
	chipLeft   key.Binding
	chipRight  key.Binding
	toggleChip key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		forceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		toggleHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "card up")),
		down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "card down")),
		add:        key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "new card")),
		grab:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "grab card")),
		yank:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy card")),

		drop:    key.NewBinding(key.WithKeys("enter", "d"), key.WithHelp("enter", "drop on bin")),
		release: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "release")),

		confirm:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "ok")),
		cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		nextField:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		prevField:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		chipLeft:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev tag")),
		chipRight:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next tag")),
		toggleChip: key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "toggle tag")),
	}
}

type mode int

const (
	modeBoard mode = iota
	modeForm
	modeGrab
)

// setMode enables the bindings of m and disables the rest.
func (k *keyMap) setMode(m mode) {
	for _, b := range []*key.Binding{&k.toggleHelp, &k.up, &k.down, &k.add, &k.grab, &k.yank} {
		b.SetEnabled(m == modeBoard)
	}
	k.quit.SetEnabled(m != modeForm)
	for _, b := range []*key.Binding{&k.drop, &k.release} {
		b.SetEnabled(m == modeGrab)
	}
	for _, b := range []*key.Binding{&k.confirm, &k.cancel, &k.nextField, &k.prevField, &k.chipLeft, &k.chipRight, &k.toggleChip} {
		b.SetEnabled(m == modeForm)
	}
}

// ShortHelp returns the bindings for the one-line help.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.add, k.grab, k.yank, k.drop, k.release,
		k.confirm, k.cancel, k.nextField, k.toggleChip,
		k.toggleHelp, k.quit,
	}
}

// FullHelp returns the bindings for the expanded help.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.add, k.grab, k.yank},
		{k.drop, k.release},
		{k.confirm, k.cancel, k.nextField, k.prevField},
		{k.chipLeft, k.chipRight, k.toggleChip},
		{k.toggleHelp, k.quit, k.forceQuit},
	}
}
