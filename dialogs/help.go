package dialogs

import (
	"fmt"
	"strings"

	"github.com/andareed/tcov/logging"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Help is a visible flag plus the key bindings to list.
type Help struct {
	visible  bool
	bindings []key.Binding
}

func (d Help) Init() tea.Cmd { return nil }

// NewHelpDialog creates a new help dialog showing the given bindings.
func NewHelpDialog(bindings []key.Binding) *Help {
	return &Help{
		visible:  true,
		bindings: bindings,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	logging.Debug("HelpDialog:Update called")

	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "enter", "esc", "?", "q":
			d.visible = false
			return d, nil
		}
	}

	return d, nil
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}

	var lines []string
	for _, b := range d.bindings {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
	}

	content := fmt.Sprintf("%s\n\n%s", strings.Join(lines, "\n"), hint("enter/esc to return"))
	return boxStyle().Render(content)
}

func (d *Help) Show() { d.visible = true }
func (d *Help) Hide() { d.visible = false }

func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
func (d Help) IsVisible() bool { return d.visible }
