package coverage

import "github.com/pkg/errors"

// Profile holds one depth value per position of a Region; index i is
// position Region.Start+i.
type Profile []int

// Max returns the largest depth in p[lo:hi], clamped to the profile bounds.
func (p Profile) Max(lo, hi int) int {
	lo = max(lo, 0)
	hi = min(hi, len(p))
	m := 0
	for i := lo; i < hi; i++ {
		if p[i] > m {
			m = p[i]
		}
	}
	return m
}

// Compute builds the depth profile of region from the records in it.
// Records rejected by cfg are skipped; records extending past either edge
// of the region only count inside it. The iterator is not closed.
func Compute(region Region, it Iterator, cfg FilterConfig) (Profile, error) {
	width := region.Width()
	if width == 0 {
		return Profile{}, nil
	}
	if width > MaxWidth {
		return nil, errors.Errorf("region %s is wider than %d bases", region, MaxWidth)
	}
	// one extra slot so a record ending exactly at region.End needs no check
	diff := make([]int, width+1)
	for it.Next() {
		rec := it.Record()
		if !cfg.Accept(rec) {
			continue
		}
		lo := max(rec.Start, region.Start)
		hi := min(rec.End, region.End)
		if lo >= hi {
			continue
		}
		diff[lo-region.Start]++
		diff[hi-region.Start]--
	}
	if err := it.Error(); err != nil {
		return nil, errors.Wrapf(err, "computing depth over %s", region)
	}

	p := make(Profile, width)
	depth := 0
	for i := range p {
		depth += diff[i]
		p[i] = depth
	}
	return p, nil
}

// Query runs a region query against src and computes its depth profile.
func Query(src Source, region Region, cfg FilterConfig) (Profile, error) {
	it, err := src.Query(region.Chrom, region.Start, region.End)
	if err != nil {
		return nil, errors.Wrapf(err, "querying %s", region)
	}
	defer it.Close()
	return Compute(region, it, cfg)
}
