package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit       key.Binding
	PanLeft    key.Binding
	PanRight   key.Binding
	StepUp     key.Binding
	StepDown   key.Binding
	SetStep    key.Binding
	JumpRegion key.Binding
	Export     key.Binding
	CopyRegion key.Binding
	OpenHelp   key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	PanLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("◄/h", "scroll left by step"),
	),
	PanRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("►/l", "scroll right by step"),
	),
	StepUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "double step size"),
	),
	StepDown: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "halve step size"),
	),
	SetStep: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "set step size"),
	),
	JumpRegion: key.NewBinding(
		key.WithKeys(":", "g"),
		key.WithHelp(":/g", "jump to region"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export view as bedGraph"),
	),
	CopyRegion: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy region to clipboard"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

// Legend is the full list shown by the help dialog.
func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.PanLeft,
		k.PanRight,
		k.StepUp,
		k.StepDown,
		k.SetStep,
		k.JumpRegion,
		k.Export,
		k.CopyRegion,
		k.OpenHelp,
		k.Quit,
	}
}

// ShortLegend is the one-line key summary for the footer.
func (k Keymap) ShortLegend() string {
	short := []key.Binding{k.PanLeft, k.PanRight, k.JumpRegion, k.OpenHelp, k.Quit}
	parts := make([]string, 0, len(short))
	for _, b := range short {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return "(" + strings.Join(parts, " · ") + ")"
}
