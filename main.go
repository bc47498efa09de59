package main

import (
	"fmt"
	"log"
	"os"

	arg "github.com/alexflint/go-arg"
	"github.com/andareed/tcov/bamsource"
	"github.com/andareed/tcov/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	p, cfg, err := parseArgs(args)
	switch {
	case err == arg.ErrHelp:
		p.WriteHelp(os.Stdout)
		return 0
	case err == arg.ErrVersion:
		fmt.Println(cliArgs{}.Version())
		return 0
	case err != nil:
		if p != nil {
			p.WriteUsage(os.Stderr)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	cleanup, err := logging.SetupLogging(cfg.logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to setup logging: %v\n", err)
		return 1
	}
	defer cleanup()

	log.Println("tcov: Started")

	src, err := bamsource.Open(cfg.bamPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	defer src.Close()

	refLen, err := src.Reference(cfg.region.Chrom)
	if err == nil {
		err = checkRegionOnReference(cfg.region, refLen)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	m, err := newModel(src, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", errors.Wrap(err, "loading initial region"))
		return 1
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	if fm, ok := final.(*model); ok && fm.err != nil {
		fmt.Fprintln(os.Stderr, "Error:", fm.err)
		return 1
	}
	return 0
}
