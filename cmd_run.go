package main

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/andareed/tcov/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) enterCommandMode(cmd Command) {
	logging.Debugf("Entering command mode: %s", commandLabel(cmd))
	m.ui.mode = modeCommand
	m.ui.command = CommandInput{cmd: cmd}
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) runCommand() tea.Cmd {
	buf := strings.TrimSpace(m.ui.command.buf)
	switch m.ui.command.cmd {
	case CmdJump:
		return m.jumpToRegion(buf)

	case CmdStep:
		n, err := strconv.Atoi(buf)
		if err != nil {
			return m.notify(noticeWarn, "Invalid step size")
		}
		return m.changeStep(n)
	}
	return nil
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.exitCommandMode()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		cmd := m.runCommand()
		m.exitCommandMode()
		return m, cmd
	case tea.KeyBackspace:
		_, size := utf8.DecodeLastRuneInString(m.ui.command.buf)
		m.ui.command.buf = m.ui.command.buf[:len(m.ui.command.buf)-size]
		return m, nil
	}

	// append printable runes
	if msg.Type == tea.KeyRunes {
		m.ui.command.buf += string(msg.Runes)
	}
	return m, nil
}
