package coverage

import "sort"

// Record is the part of an alignment that depth counting needs.
// Start and End are 0-based, half-open reference coordinates.
type Record struct {
	Start int
	End   int
	Flags uint16
	MapQ  uint8
}

// Iterator walks the records returned by a Source query.
type Iterator interface {
	Next() bool
	Record() Record
	Error() error
	Close() error
}

// Source answers region queries against an alignment file. Each call to
// Query is independent: implementations keep no state between queries and
// return an empty iterator, not an error, for ranges with no data.
type Source interface {
	Query(chrom string, start, end int) (Iterator, error)
}

// SliceIterator iterates over an in-memory slice of records.
type SliceIterator struct {
	recs []Record
	i    int
}

// NewSliceIterator returns an Iterator over recs.
func NewSliceIterator(recs []Record) *SliceIterator {
	return &SliceIterator{recs: recs, i: -1}
}

func (it *SliceIterator) Next() bool {
	if it.i+1 >= len(it.recs) {
		it.i = len(it.recs)
		return false
	}
	it.i++
	return true
}

func (it *SliceIterator) Record() Record { return it.recs[it.i] }
func (it *SliceIterator) Error() error   { return nil }
func (it *SliceIterator) Close() error   { return nil }

// MemSource is a Source backed by records held in memory, keyed by
// reference name.
type MemSource struct {
	refs map[string][]Record
	// Queries counts calls to Query.
	Queries int
}

// NewMemSource returns an empty MemSource.
func NewMemSource() *MemSource {
	return &MemSource{refs: make(map[string][]Record)}
}

// Add stores recs under chrom, keeping them sorted by start.
func (s *MemSource) Add(chrom string, recs ...Record) {
	all := append(s.refs[chrom], recs...)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Start < all[j].Start })
	s.refs[chrom] = all
}

// Query returns the records on chrom overlapping [start, end).
func (s *MemSource) Query(chrom string, start, end int) (Iterator, error) {
	s.Queries++
	var out []Record
	for _, r := range s.refs[chrom] {
		if r.End > start && r.Start < end {
			out = append(out, r)
		}
	}
	return NewSliceIterator(out), nil
}
