package main

type Command int

const (
	CmdNone Command = iota
	CmdJump
	CmdStep
)

type CommandInput struct {
	cmd Command
	buf string
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "JUMP"
	case CmdStep:
		return "STEP"
	default:
		return "NORMAL"
	}
}

func (m *model) commandBadge(cmd Command) string {
	return "[" + commandLabel(cmd) + "]"
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "region: "
	case CmdStep:
		return "step: "
	default:
		return ""
	}
}

// activeCommandLine returns the command prompt text for the footer status line.
func (m *model) activeCommandLine() string {
	return m.commandBadge(m.ui.command.cmd) + " " + m.commandPrompt(m.ui.command.cmd) + m.ui.command.buf
}
