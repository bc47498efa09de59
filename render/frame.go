// Package render turns a depth profile into the values a chart draws:
// per-column bar values, a caption and axis labels.
package render

import (
	"fmt"
	"strings"

	"github.com/andareed/tcov/coverage"
)

// labelWidth is the zero-padded width of axis position labels.
const labelWidth = 9

// Frame is one drawable snapshot of a profile.
type Frame struct {
	Region  coverage.Region
	Columns []int // depth shown in each chart column
	Max     int
	// PerColumn is the number of positions folded into each column.
	PerColumn int
	Caption   string
}

// Shape fits p into at most cols columns. When the profile is wider than
// the chart, consecutive positions share a column which shows their
// maximum, so single-base peaks stay visible.
func Shape(p coverage.Profile, region coverage.Region, cols int) Frame {
	f := Frame{Region: region, PerColumn: 1}
	f.Max = p.Max(0, len(p))
	f.Caption = fmt.Sprintf("%s (current max: %d)", region, f.Max)
	if cols <= 0 || len(p) == 0 {
		return f
	}
	if len(p) <= cols {
		f.Columns = append([]int(nil), p...)
		return f
	}
	per := (len(p) + cols - 1) / cols
	f.PerColumn = per
	f.Columns = make([]int, 0, cols)
	for lo := 0; lo < len(p); lo += per {
		f.Columns = append(f.Columns, p.Max(lo, lo+per))
	}
	return f
}

// Levels scales the columns to bar heights in eighths of a cell for a
// chart height rows tall. Non-zero depths always get at least one eighth.
func (f Frame) Levels(height int) []int {
	out := make([]int, len(f.Columns))
	if height <= 0 || f.Max == 0 {
		return out
	}
	full := height * 8
	for i, v := range f.Columns {
		if v == 0 {
			continue
		}
		out[i] = max(1, v*full/f.Max)
	}
	return out
}

// Axis lays out the 1-based start and the end of the region, left and
// right aligned across width cells.
func (f Frame) Axis(width int) string {
	start := fmt.Sprintf("%0*d", labelWidth, f.Region.Start+1)
	end := fmt.Sprintf("%0*d", labelWidth, f.Region.End)
	if width < len(start)+len(end) {
		if width < len(start) {
			return start[:max(0, width)]
		}
		return start
	}
	return start + strings.Repeat(" ", width-len(start)-len(end)) + end
}
