package bamsource

import (
	"github.com/andareed/tcov/coverage"
	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// blockIterator yields one coverage.Record per aligned block of each read
// returned by the index query. Blocks are split on reference skips (N), so
// spliced reads do not count across introns; deletions count as covered.
type blockIterator struct {
	it         *bam.Iterator
	ref        *sam.Reference
	start, end int

	pending []coverage.Record
	cur     coverage.Record
}

func (b *blockIterator) Next() bool {
	for len(b.pending) == 0 {
		if !b.it.Next() {
			return false
		}
		rec := b.it.Record()
		if rec.Ref == nil || rec.Ref.ID() != b.ref.ID() {
			continue
		}
		b.pending = appendBlocks(b.pending[:0], rec, b.start, b.end)
	}
	b.cur = b.pending[0]
	b.pending = b.pending[1:]
	return true
}

func (b *blockIterator) Record() coverage.Record { return b.cur }
func (b *blockIterator) Error() error            { return b.it.Error() }
func (b *blockIterator) Close() error            { return b.it.Close() }

// appendBlocks appends the blocks of rec that overlap [start, end).
func appendBlocks(dst []coverage.Record, rec *sam.Record, start, end int) []coverage.Record {
	pos := rec.Pos
	blockStart := pos
	flush := func() {
		if pos > blockStart && pos > start && blockStart < end {
			dst = append(dst, coverage.Record{
				Start: blockStart,
				End:   pos,
				Flags: uint16(rec.Flags),
				MapQ:  rec.MapQ,
			})
		}
	}
	for _, co := range rec.Cigar {
		switch co.Type() {
		case sam.CigarMatch, sam.CigarEqual, sam.CigarMismatch, sam.CigarDeletion:
			pos += co.Len()
		case sam.CigarSkipped:
			flush()
			pos += co.Len()
			blockStart = pos
		}
	}
	flush()
	return dst
}
