package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const noticeDuration = 2 * time.Second

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeWarn
	noticeError
)

func (k noticeKind) icon() string {
	switch k {
	case noticeSuccess:
		return "✓"
	case noticeWarn:
		return "!"
	case noticeError:
		return "×"
	default:
		return "ℹ"
	}
}

// notice is the transient message shown in the status bar. seq identifies
// it so an expiry for an older notice leaves a newer one alone.
type notice struct {
	seq  int
	kind noticeKind
	text string
}

func (n notice) String() string {
	if n.text == "" {
		return ""
	}
	return n.kind.icon() + " " + n.text
}

type noticeExpiredMsg struct{ seq int }

func (m *model) notify(kind noticeKind, text string) tea.Cmd {
	seq := m.ui.notice.seq + 1
	m.ui.notice = notice{seq: seq, kind: kind, text: text}
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg { return noticeExpiredMsg{seq: seq} })
}

func (m *model) expireNotice(seq int) {
	if seq == m.ui.notice.seq {
		m.ui.notice.text = ""
	}
}
