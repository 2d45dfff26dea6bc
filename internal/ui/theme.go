package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles and glyphs the board and the CLI render with.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error lipgloss.Style

	Card, SelectedCard, GrabbedCard lipgloss.Style
	CardTitle, CardContent, Tag     lipgloss.Style

	Form, Label, Chip, ChipOn, ChipFocused lipgloss.Style

	Button, ButtonFocused  lipgloss.Style
	DropZone, DropZoneOver lipgloss.Style
	Panel                  lipgloss.Style

	AddGlyph, TrashGlyph, OKGlyph, FailGlyph string
	BarFilled, BarEmpty                      string
}

// ThemeNames lists the themes ThemeByName accepts.
var ThemeNames = []string{"classic", "neon", "mono"}

// ThemeByName returns the named theme.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		return classic(), nil
	case "neon":
		return neon(), nil
	case "mono":
		return mono(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}

func cardBase() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		PaddingLeft(1)
}

func classic() Theme {
	accent := lipgloss.Color("12")
	rose := lipgloss.Color("204")
	gray := lipgloss.Color("8")
	return Theme{
		Name:    "classic",
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		Muted:   lipgloss.NewStyle().Faint(true),
		Accent:  lipgloss.NewStyle().Foreground(accent),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Card:         cardBase().BorderForeground(gray),
		SelectedCard: cardBase().BorderForeground(accent),
		GrabbedCard:  cardBase().BorderForeground(rose).Faint(true),
		CardTitle:    lipgloss.NewStyle().Bold(true),
		CardContent:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Tag:          lipgloss.NewStyle().Foreground(rose),

		Form:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(gray).Padding(0, 1),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Chip:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		ChipOn:      lipgloss.NewStyle().Foreground(rose).Bold(true).Padding(0, 1),
		ChipFocused: lipgloss.NewStyle().Reverse(true).Padding(0, 1),

		Button:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ButtonFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		DropZone:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(rose).Foreground(rose).Align(lipgloss.Center, lipgloss.Center),
		DropZoneOver:  lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("9")).Foreground(lipgloss.Color("9")).Bold(true).Align(lipgloss.Center, lipgloss.Center),
		Panel:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(gray).Padding(0, 1),

		AddGlyph: "[ + ]", TrashGlyph: "🗑", OKGlyph: "✔", FailGlyph: "✖",
		BarFilled: "█", BarEmpty: "░",
	}
}

func neon() Theme {
	t := classic()
	magenta := lipgloss.Color("201")
	cyan := lipgloss.Color("51")
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(magenta)
	t.Accent = lipgloss.NewStyle().Foreground(cyan)
	t.SelectedCard = cardBase().BorderForeground(cyan)
	t.Tag = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	t.ChipOn = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true).Padding(0, 1)
	t.Form = t.Form.BorderForeground(magenta)
	t.Panel = t.Panel.BorderForeground(magenta)
	t.ButtonFocused = lipgloss.NewStyle().Foreground(magenta).Bold(true)
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	card := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		PaddingLeft(1)
	box := lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	return Theme{
		Name:    "mono",
		Title:   plain.Bold(true),
		Muted:   plain,
		Accent:  plain,
		Success: plain,
		Error:   plain.Bold(true),

		Card:         card,
		SelectedCard: card.Border(lipgloss.ThickBorder(), false, false, false, true),
		GrabbedCard:  card.Border(lipgloss.DoubleBorder(), false, false, false, true),
		CardTitle:    plain.Bold(true),
		CardContent:  plain,
		Tag:          plain,

		Form:        box.Padding(0, 1),
		Label:       plain,
		Chip:        plain.Padding(0, 1),
		ChipOn:      plain.Bold(true).Padding(0, 1),
		ChipFocused: plain.Reverse(true).Padding(0, 1),

		Button:        plain,
		ButtonFocused: plain.Reverse(true),
		DropZone:      box.Align(lipgloss.Center, lipgloss.Center),
		DropZoneOver:  lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Align(lipgloss.Center, lipgloss.Center),
		Panel:         box.Padding(0, 1),

		AddGlyph: "[+]", TrashGlyph: "[x]", OKGlyph: "ok", FailGlyph: "error:",
		BarFilled: "#", BarEmpty: "-",
	}
}
