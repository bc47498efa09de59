package main

import (
	"fmt"
	"strings"

	"github.com/andareed/tcov/logging"
	"github.com/andareed/tcov/render"
	"github.com/charmbracelet/lipgloss"
)

// eighths are the partial block glyphs, indexed by filled eighths of a cell.
var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// chrome is the rows used by everything except the chart: the margins of
// appstyle, the caption, the axis and the two footer lines.
const chrome = 2 + 1 + 1 + 2

func (m *model) contentSize() (int, int) {
	w := max(0, m.terminalWidth-appstyle.GetHorizontalMargins())
	h := max(1, m.terminalHeight-chrome)
	return w, h
}

// chartLines paints the frame as height rows of bar glyphs, top row first.
func chartLines(f render.Frame, width, height int) []string {
	levels := f.Levels(height)
	lines := make([]string, height)
	var b strings.Builder
	for row := 0; row < height; row++ {
		b.Reset()
		floor := (height - 1 - row) * 8
		for col := 0; col < width; col++ {
			lvl := 0
			if col < len(levels) {
				lvl = min(8, max(0, levels[col]-floor))
			}
			b.WriteRune(eighths[lvl])
		}
		lines[row] = b.String()
	}
	return lines
}

func (m *model) chartView(f render.Frame, width, height int) string {
	return barStyle(m.color).Render(strings.Join(chartLines(f, width, height), "\n"))
}

func (m *model) footerView(width int, f render.Frame) string {
	st := FooterState{
		Mode:      CmdNone,
		Region:    m.view.Region.String(),
		Step:      m.view.Step,
		Filter:    m.filter.String(),
		Max:       f.Max,
		PerColumn: f.PerColumn,
		Legend:    Keys.ShortLegend(),
	}
	if m.ui.mode == modeCommand {
		st.Mode = m.ui.command.cmd
		st.ModeInput = m.activeCommandLine()
	}
	st.StatusMessage = m.ui.notice.String()
	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d q=%d last=%s", m.terminalWidth, m.terminalHeight, m.ui.queries, m.ui.lastQuery)
	}
	return RenderFooter(width, st, DefaultFooterStyles())
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color(overlayColor)),
		)
	}

	width, height := m.contentSize()
	frame := render.Shape(m.profile, m.view.Region, width)

	caption := lipgloss.PlaceHorizontal(width, lipgloss.Center, captionStyle.Render(frame.Caption))
	parts := []string{
		caption,
		m.chartView(frame, width, height),
		axisStyle.Render(frame.Axis(width)),
		m.footerView(width, frame),
	}
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
