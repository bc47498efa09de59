package main

import (
	"fmt"
	"strings"

	"github.com/andareed/tcov/coverage"
	"github.com/andareed/tcov/logging"
	"github.com/andareed/tcov/nav"
	tea "github.com/charmbracelet/bubbletea"
)

// parseJumpTarget accepts "chr:start-end", or "start-end" on the current
// reference.
func (m *model) parseJumpTarget(s string) (coverage.Region, error) {
	if !strings.Contains(s, ":") {
		s = m.view.Region.Chrom + ":" + s
	}
	return coverage.ParseRegion(s)
}

func (m *model) jumpToRegion(s string) tea.Cmd {
	logging.Infof("jumpToRegion %q", s)
	if s == "" {
		return nil
	}
	region, err := m.parseJumpTarget(s)
	if err != nil {
		logging.Warnf("jumpToRegion: %v", err)
		return m.notify(noticeWarn, fmt.Sprintf("Invalid region %q", s))
	}
	if rc, ok := m.source.(referenceChecker); ok {
		refLen, err := rc.Reference(region.Chrom)
		if err != nil {
			return m.notify(noticeWarn, fmt.Sprintf("Unknown reference %q", region.Chrom))
		}
		if err := checkRegionOnReference(region, refLen); err != nil {
			logging.Warnf("jumpToRegion: %v", err)
			return m.notify(noticeWarn, fmt.Sprintf("%s is past the end of %s", region, region.Chrom))
		}
	}
	return m.navigate(nav.Command{Action: nav.Jump, Region: region})
}
