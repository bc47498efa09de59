package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andareed/tcov/clipboard"
	"github.com/andareed/tcov/coverage"
	"github.com/andareed/tcov/dialogs"
	"github.com/andareed/tcov/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// defaultExportName is chrom_start_end.bedgraph for the current region.
func (m *model) defaultExportName() string {
	r := m.view.Region
	chrom := strings.Map(func(c rune) rune {
		if c == '/' || c == ':' || c == '*' || c == ' ' {
			return '_'
		}
		return c
	}, r.Chrom)
	return fmt.Sprintf("%s_%d_%d.bedgraph", chrom, r.Start+1, r.End)
}

func (m *model) openExportDialog() tea.Cmd {
	d := dialogs.NewExportDialog(m.defaultExportName(), filepath.Dir(m.bamPath))
	m.activeDialog = d
	return d.Init()
}

func (m *model) exportProfile(path string) tea.Cmd {
	if err := writeBedGraphFile(path, m.view.Region, m.profile); err != nil {
		logging.Errorf("export: %v", err)
		return m.notify(noticeError, fmt.Sprintf("Export failed: %v", err))
	}
	logging.Infof("export: wrote %s", path)
	return m.notify(noticeSuccess, "Exported to "+path)
}

func writeBedGraphFile(path string, region coverage.Region, p coverage.Profile) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating export file")
	}
	if err := coverage.WriteBedGraph(f, region, p); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "closing export file")
}

func (m *model) copyRegion() tea.Cmd {
	text := m.view.Region.String()
	if err := clipboard.Copy(text); err != nil {
		return m.notify(noticeError, "Copy failed: "+err.Error())
	}
	return m.notify(noticeSuccess, "Copied "+text)
}
