package main

import (
	"fmt"
	"math"
	"time"

	"github.com/andareed/tcov/coverage"
	"github.com/andareed/tcov/dialogs"
	"github.com/andareed/tcov/logging"
	"github.com/andareed/tcov/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const tickRate = 250 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// referenceChecker is implemented by sources that can tell whether a
// reference name exists, so a typo in a jump is a notice and not a fatal
// query error.
type referenceChecker interface {
	Reference(name string) (int, error)
}

type model struct {
	source  coverage.Source
	filter  coverage.FilterConfig
	color   lipgloss.Color
	bamPath string

	view    nav.State
	profile coverage.Profile

	ui           uiState
	activeDialog dialogs.Dialog

	terminalWidth  int
	terminalHeight int
	ready          bool

	// err is set when a runtime query fails; the loop quits and main
	// reports it.
	err error
}

func newModel(src coverage.Source, cfg config) (*model, error) {
	state, err := nav.New(cfg.region, cfg.step)
	if err != nil {
		return nil, err
	}
	m := &model{
		source:  src,
		filter:  cfg.filter,
		color:   cfg.color.Lipgloss(),
		bamPath: cfg.bamPath,
		view:    state,
	}
	p, err := m.query(state.Region)
	if err != nil {
		return nil, err
	}
	m.profile = p
	return m, nil
}

func (m *model) Init() tea.Cmd {
	logging.Infof("tcov: viewing %s step=%d filter=%s", m.view.Region, m.view.Step, m.filter)
	return tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.activeDialog != nil && m.activeDialog.IsVisible() {
			return m.updateDialog(msg)
		}
		return m.updateKey(msg)
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.ready = true
		logging.Debugf("window size %dx%d", msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		// nothing to recompute; the redraw refreshes the caption
		return m, tick()
	case noticeExpiredMsg:
		m.expireNotice(msg.seq)
		return m, nil
	case dialogs.ExportConfirmedMsg:
		m.activeDialog = nil
		return m, m.exportProfile(msg.Path)
	case dialogs.ExportCanceledMsg:
		m.activeDialog = nil
		return m, nil
	}
	return m, nil
}

func (m *model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	d, cmd := m.activeDialog.Update(msg)
	if !d.IsVisible() {
		m.activeDialog = nil
		return m, cmd
	}
	m.activeDialog = d
	return m, cmd
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	default:
		return m.handleViewModeKey(msg)
	}
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		logging.Infof("tcov: quit at %s", m.view.Region)
		return m, tea.Quit
	case key.Matches(msg, Keys.PanLeft):
		return m, m.navigate(nav.Command{Action: nav.PanLeft})
	case key.Matches(msg, Keys.PanRight):
		return m, m.navigate(nav.Command{Action: nav.PanRight})
	case key.Matches(msg, Keys.StepUp):
		if m.view.Step > math.MaxInt/2 {
			return m, m.notify(noticeWarn, "Step size at maximum")
		}
		return m, m.changeStep(m.view.Step * 2)
	case key.Matches(msg, Keys.StepDown):
		return m, m.changeStep(max(1, m.view.Step/2))
	case key.Matches(msg, Keys.SetStep):
		m.enterCommandMode(CmdStep)
	case key.Matches(msg, Keys.JumpRegion):
		m.enterCommandMode(CmdJump)
	case key.Matches(msg, Keys.Export):
		return m, m.openExportDialog()
	case key.Matches(msg, Keys.CopyRegion):
		return m, m.copyRegion()
	case key.Matches(msg, Keys.OpenHelp):
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend())
	}
	return m, nil
}

// navigate applies cmd to the view state. When the region changes the
// depth profile is recomputed before the new state is committed, so a
// failed query leaves the previous view in place.
func (m *model) navigate(cmd nav.Command) tea.Cmd {
	next, ok := m.view.Apply(cmd)
	if !ok {
		logging.Warnf("navigate: %s rejected", cmd.Action)
		return m.notify(noticeWarn, "Command rejected")
	}
	if next.Region != m.view.Region {
		p, err := m.query(next.Region)
		if err != nil {
			logging.Errorf("navigate: %v", err)
			m.err = err
			return tea.Quit
		}
		m.profile = p
	}
	m.view = next
	return nil
}

func (m *model) changeStep(step int) tea.Cmd {
	if step <= 0 {
		return m.notify(noticeWarn, "Step size must be positive")
	}
	if cmd := m.navigate(nav.Command{Action: nav.SetStep, Step: step}); cmd != nil {
		return cmd
	}
	return m.notify(noticeInfo, fmt.Sprintf("Step size %d", m.view.Step))
}

func (m *model) query(region coverage.Region) (coverage.Profile, error) {
	started := time.Now()
	p, err := coverage.Query(m.source, region, m.filter)
	if err != nil {
		return nil, err
	}
	m.ui.queries++
	m.ui.lastQuery = time.Since(started)
	logging.Debugf("query %s: %d positions, max %d, %s", region, len(p), p.Max(0, len(p)), m.ui.lastQuery)
	return p, nil
}
