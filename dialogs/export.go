package dialogs

import (
	"fmt"
	"path/filepath"

	"github.com/andareed/tcov/logging"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---------------------------------------------------------------

type (
	ExportConfirmedMsg struct{ Path string }
	ExportCanceledMsg  struct{}
)

// Export asks for the file the visible depth profile is written to.
type Export struct {
	input   textinput.Model
	visible bool
	// relative names are placed in lastDir when set
	lastDir string
}

func (d Export) Init() tea.Cmd { return d.input.Focus() }

func NewExportDialog(defaultName, lastDir string) *Export {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = "Export bedGraph as: "
	ti.CharLimit = 256
	ti.Width = 30
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	ti.Focus()
	return &Export{input: ti, visible: true, lastDir: lastDir}
}

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path := d.input.Value()
			if path == "" {
				// fall back to placeholder if user left it blank
				path = d.input.Placeholder
			}
			if path == "" {
				return d, nil
			}
			if d.lastDir != "" && !filepath.IsAbs(path) && filepath.Dir(path) == "." {
				path = filepath.Join(d.lastDir, filepath.Base(path))
			}
			logging.Debugf("ExportDialog: confirmed %s", path)
			return d, func() tea.Msg { return ExportConfirmedMsg{Path: path} }
		case "esc":
			logging.Debug("ExportDialog: canceled")
			return d, func() tea.Msg { return ExportCanceledMsg{} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d Export) View() string {
	if !d.visible {
		return ""
	}
	content := fmt.Sprintf("%s\n\n%s", d.input.View(), hint("enter to export • esc to cancel"))
	return boxStyle().Render(content)
}

func (d *Export) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Export) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Export) Focus() tea.Cmd { return d.input.Focus() }
func (d *Export) Blur()          { d.input.Blur() }
func (d Export) IsVisible() bool { return d.visible }
