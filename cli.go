package main

import (
	"strconv"
	"strings"

	arg "github.com/alexflint/go-arg"
	"github.com/andareed/tcov/coverage"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

// Version is reported by --version.
var Version = "0.2.0"

// colorNames maps the accepted --color values to ANSI palette indices.
var colorNames = map[string]string{
	"black":        "0",
	"red":          "1",
	"green":        "2",
	"yellow":       "3",
	"blue":         "4",
	"magenta":      "5",
	"cyan":         "6",
	"gray":         "7",
	"darkgray":     "8",
	"lightred":     "9",
	"lightgreen":   "10",
	"lightyellow":  "11",
	"lightblue":    "12",
	"lightmagenta": "13",
	"lightcyan":    "14",
	"white":        "15",
}

// Color is a named terminal color accepted by --color.
type Color string

func (c *Color) UnmarshalText(b []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(b)))
	if _, ok := colorNames[name]; !ok {
		return errors.Errorf("unknown color %q", string(b))
	}
	*c = Color(name)
	return nil
}

// Lipgloss returns the palette color for c.
func (c Color) Lipgloss() lipgloss.Color {
	if v, ok := colorNames[string(c)]; ok {
		return lipgloss.Color(v)
	}
	return lipgloss.Color(colorNames["blue"])
}

// FlagMask is a SAM flag bitmask given in decimal or 0x hex.
type FlagMask uint16

func (f *FlagMask) UnmarshalText(b []byte) error {
	v, err := strconv.ParseUint(strings.TrimSpace(string(b)), 0, 16)
	if err != nil {
		return errors.Errorf("invalid flag mask %q", string(b))
	}
	*f = FlagMask(v)
	return nil
}

type cliArgs struct {
	Bam    string `arg:"-b,--bam,required" help:"input bam file with index"`
	Region string `arg:"-r,--region,required" help:"input region, format: chr:start-end"`

	Color    Color `arg:"-c,--color" default:"blue" help:"display color for coverage"`
	StepSize int   `arg:"-s,--step-size" default:"10" help:"step size for moving the view"`

	IncludeFlags FlagMask `arg:"-f,--include-flags" default:"0" help:"only count reads with all of these flags"`
	ExcludeFlags FlagMask `arg:"-F,--exclude-flags" default:"0" help:"skip reads with any of these flags"`
	MinMapQ      uint8    `arg:"-q,--min-mapq" default:"0" help:"minimum mapping quality"`

	Debug string `arg:"--debug" help:"write debug logs to file"`
}

func (cliArgs) Version() string {
	return "tcov " + Version
}

func (cliArgs) Description() string {
	return "tcov -- view coverage data in terminal"
}

// config is the validated startup configuration.
type config struct {
	bamPath string
	region  coverage.Region
	step    int
	color   Color
	filter  coverage.FilterConfig
	logFile string
}

func (c cliArgs) config() (config, error) {
	region, err := coverage.ParseRegion(c.Region)
	if err != nil {
		return config{}, err
	}
	if c.StepSize <= 0 {
		return config{}, errors.Errorf("step size must be positive, got %d", c.StepSize)
	}
	color := c.Color
	if color == "" {
		color = "blue"
	}
	return config{
		bamPath: c.Bam,
		region:  region,
		step:    c.StepSize,
		color:   color,
		filter: coverage.FilterConfig{
			IncludeFlags: uint16(c.IncludeFlags),
			ExcludeFlags: uint16(c.ExcludeFlags),
			MinMapQ:      c.MinMapQ,
		},
		logFile: c.Debug,
	}, nil
}

// checkRegionOnReference rejects a region that starts past the end of its
// reference. A region may run off the end; those positions read as zero.
func checkRegionOnReference(region coverage.Region, refLen int) error {
	if region.Start >= refLen {
		return errors.Errorf("region %s starts past the end of %s (length %d)", region, region.Chrom, refLen)
	}
	return nil
}

// parseArgs parses command line arguments (without the program name).
// arg.ErrHelp and arg.ErrVersion are returned untouched so the caller can
// print help or the version and exit cleanly.
func parseArgs(args []string) (*arg.Parser, config, error) {
	var cli cliArgs
	p, err := arg.NewParser(arg.Config{Program: "tcov"}, &cli)
	if err != nil {
		return nil, config{}, err
	}
	if err := p.Parse(args); err != nil {
		return p, config{}, err
	}
	cfg, err := cli.config()
	return p, cfg, err
}
