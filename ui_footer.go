package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
)

type FooterState struct {
	Mode      Command
	ModeInput string

	Region string
	Step   int
	Filter string

	Max       int
	PerColumn int

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	RegionFG   lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		RegionFG:   lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

// RenderFooter renders the two footer lines: a control bar with the mode,
// region and settings, and a status bar with notices and the key legend.
func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Filter == "" {
		st.Filter = "None"
	}
	if st.Max < 0 {
		st.Max = 0
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func settingsLabel(st FooterState) string {
	return fmt.Sprintf("[STEP: %d] · [FILTER: %s]", st.Step, st.Filter)
}

func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	gapW := 1

	rightPlain := fmt.Sprintf(" max %d", st.Max)
	if st.PerColumn > 1 {
		rightPlain += fmt.Sprintf(" · %dbp/col", st.PerColumn)
	}
	rightPlain = truncatePlain(rightPlain, width)
	rightW := runeWidth(rightPlain)
	leftW := max(0, width-rightW)

	modeText := commandLabel(st.Mode)
	modeColW := min(runeWidth(modeText)+2, leftW)
	statusColW := min(runeWidth(settingsLabel(st)), max(0, leftW-modeColW-2*gapW))
	regionColW := max(0, leftW-modeColW-statusColW-2*gapW)

	modeSeg := renderModeSegment(modeColW, st, styles)
	regionSeg := renderRegionSegment(regionColW, st, styles)
	statusSeg := renderSettingsSegment(statusColW, st, styles)

	left := modeSeg + strings.Repeat(" ", gapW) + regionSeg + strings.Repeat(" ", gapW) + statusSeg
	if used := modeColW + regionColW + statusColW + 2*gapW; used < leftW {
		left += strings.Repeat(" ", leftW-used)
	}

	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	leftW := max(0, width-runeWidth(legendPlain))

	msgPlain := truncatePlain(st.StatusMessage, leftW)
	msgPlain = padRightPlain(msgPlain, leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func renderModeSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	pillPlain := truncatePlain(" "+commandLabel(st.Mode)+" ", colW)
	pad := strings.Repeat(" ", colW-runeWidth(pillPlain))

	pill := bgSeq(styles.ModePillBG) + fgSeq(styles.ModePillFG) + pillPlain
	pill += bgSeq(styles.BarBG) + fgSeq(styles.TextFG) + pad
	return pill
}

// renderRegionSegment shows the region, or the command line while one is
// being typed.
func renderRegionSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	text := "▸ " + strings.TrimSpace(st.Region)
	if input := strings.TrimSpace(st.ModeInput); input != "" {
		text += " ▸ " + input
	}
	text = padRightPlain(truncatePlain(text, colW), colW)
	return applyFG(text, styles.RegionFG, styles.TextFG)
}

func renderSettingsSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	plain := padRightPlain(truncatePlain(settingsLabel(st), colW), colW)
	return applyFG(plain, styles.DimFG, styles.TextFG)
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return bgSeq(bg) + fgSeq(baseFG) + s + termenv.CSI + termenv.ResetSeq + "m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return fgSeq(fg) + s + fgSeq(resetFG)
}

func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func bgSeq(c lipgloss.Color) string {
	return colorSeq(c, true)
}

// colorSeq returns the escape sequence for c in the terminal's color
// profile; it is empty when the profile has no colors.
func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	tc := lipgloss.ColorProfile().Color(value)
	if tc == nil {
		return ""
	}
	seq := tc.Sequence(bg)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return padding.String(s, uint(w))
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return truncate.String(s, uint(w))
}

// runeWidth is the printed cell width of s.
func runeWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}
