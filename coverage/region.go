// Package coverage computes per-base read depth over a genomic region.
package coverage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxWidth is the widest region a profile is computed for. It covers the
// longest human chromosome.
const MaxWidth = 1 << 28

// Region is a half-open interval [Start, End) on a named reference,
// using 0-based coordinates.
type Region struct {
	Chrom string
	Start int
	End   int
}

// NewRegion returns a validated Region.
func NewRegion(chrom string, start, end int) (Region, error) {
	r := Region{Chrom: chrom, Start: start, End: end}
	if err := r.Validate(); err != nil {
		return Region{}, err
	}
	return r, nil
}

// Validate reports whether r is a usable, non-empty interval.
func (r Region) Validate() error {
	switch {
	case r.Chrom == "":
		return errors.New("region: empty reference name")
	case r.Start < 0:
		return errors.Errorf("region: negative start %d", r.Start)
	case r.Start >= r.End:
		return errors.Errorf("region: start %d not before end %d", r.Start+1, r.End)
	case r.End-r.Start > MaxWidth:
		return errors.Errorf("region: %d bases is wider than the %d base limit", r.End-r.Start, MaxWidth)
	}
	return nil
}

// Width is the number of positions covered by r.
func (r Region) Width() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Shift returns a region of the same width starting at start.
func (r Region) Shift(start int) Region {
	return Region{Chrom: r.Chrom, Start: start, End: start + r.Width()}
}

// String formats r the way it is typed on the command line: 1-based, inclusive.
func (r Region) String() string {
	return fmt.Sprintf("%s:%d-%d", r.Chrom, r.Start+1, r.End)
}

// ParseRegion parses "chrom:start-end" with 1-based inclusive coordinates.
// Thousands separators are allowed in the numbers.
func ParseRegion(s string) (Region, error) {
	s = strings.TrimSpace(s)
	idx := strings.LastIndex(s, ":")
	if idx <= 0 {
		return Region{}, errors.Errorf("invalid region %q: want chr:start-end", s)
	}
	chrom := s[:idx]
	se := strings.Split(s[idx+1:], "-")
	if len(se) != 2 {
		return Region{}, errors.Errorf("invalid region %q: want chr:start-end", s)
	}
	start, err := parsePosition(se[0])
	if err != nil {
		return Region{}, errors.Wrapf(err, "invalid region %q: start", s)
	}
	end, err := parsePosition(se[1])
	if err != nil {
		return Region{}, errors.Wrapf(err, "invalid region %q: end", s)
	}
	if start < 1 {
		return Region{}, errors.Errorf("invalid region %q: positions are 1-based", s)
	}
	r, err := NewRegion(chrom, start-1, end)
	if err != nil {
		return Region{}, errors.Wrapf(err, "invalid region %q", s)
	}
	return r, nil
}

func parsePosition(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	return strconv.Atoi(s)
}
