package coverage

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// WriteBedGraph writes p as bedGraph lines (chrom, 0-based start, end,
// depth), merging adjacent positions that share a depth.
func WriteBedGraph(w io.Writer, region Region, p Profile) error {
	bw := bufio.NewWriter(w)
	runStart := 0
	for i := 1; i <= len(p); i++ {
		if i < len(p) && p[i] == p[runStart] {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s\t%d\t%d\t%d\n", region.Chrom,
			region.Start+runStart, region.Start+i, p[runStart]); err != nil {
			return errors.Wrap(err, "writing bedGraph")
		}
		runStart = i
	}
	return errors.Wrap(bw.Flush(), "writing bedGraph")
}
