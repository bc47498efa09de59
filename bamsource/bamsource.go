// Package bamsource answers coverage region queries from an indexed BAM
// file.
package bamsource

import (
	"bufio"
	"os"
	"strings"

	"github.com/andareed/tcov/coverage"
	"github.com/andareed/tcov/logging"
	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/pkg/errors"
)

// Source holds the BAM index and reader. Because Source holds the
// underlying os.File open, it is not safe to query from multiple
// goroutines.
type Source struct {
	br   *bam.Reader
	idx  *bam.Index
	fh   *os.File
	refs map[string]*sam.Reference
}

var _ coverage.Source = (*Source)(nil)

// Open returns a Source for the BAM at path. The index is looked up at
// path+".bai" and then with the ".bam" extension replaced by ".bai".
func Open(path string) (*Source, error) {
	idx, err := readIndex(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	br, err := bam.NewReader(fh, 1)
	if err != nil {
		fh.Close()
		return nil, errors.Wrapf(err, "reading bam header from %s", path)
	}
	s := &Source{br: br, idx: idx, fh: fh}
	refs := br.Header().Refs()
	s.refs = make(map[string]*sam.Reference, len(refs))
	for _, r := range refs {
		s.refs[r.Name()] = r
	}
	logging.Infof("bamsource: opened %s with %d references", path, len(refs))
	return s, nil
}

func readIndex(path string) (*bam.Index, error) {
	f, err := os.Open(path + ".bai")
	if stem := strings.TrimSuffix(path, ".bam"); err != nil && stem != path {
		f, err = os.Open(stem + ".bai")
	}
	if err != nil {
		return nil, errors.Wrapf(err, "opening index for %s", path)
	}
	defer f.Close()
	idx, err := bam.ReadIndex(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "reading index for %s", path)
	}
	return idx, nil
}

// Reference returns the length of the named reference, or an error if the
// BAM header does not contain it.
func (s *Source) Reference(name string) (int, error) {
	ref, ok := s.refs[name]
	if !ok {
		return 0, errors.Errorf("reference %q not found in bam header", name)
	}
	return ref.Len(), nil
}

// Query returns the aligned blocks of reads overlapping the 0-based
// half-open interval [start, end) on chrom. Ranges past the end of the
// reference, or with no indexed reads, give an empty iterator.
func (s *Source) Query(chrom string, start, end int) (coverage.Iterator, error) {
	ref, ok := s.refs[chrom]
	if !ok {
		return nil, errors.Errorf("reference %q not found in bam header", chrom)
	}
	start = max(start, 0)
	end = min(end, ref.Len())
	if start >= end {
		logging.Debugf("bamsource: %s:%d-%d is outside the reference", chrom, start, end)
		return coverage.NewSliceIterator(nil), nil
	}
	chunks, err := s.idx.Chunks(ref, start, end)
	if err != nil || len(chunks) == 0 {
		// the index has no bins for this range
		logging.Debugf("bamsource: no chunks for %s:%d-%d: %v", chrom, start, end, err)
		return coverage.NewSliceIterator(nil), nil
	}
	it, err := bam.NewIterator(s.br, chunks)
	if err != nil {
		return nil, errors.Wrapf(err, "querying %s:%d-%d", chrom, start+1, end)
	}
	return &blockIterator{it: it, ref: ref, start: start, end: end}, nil
}

// Close closes the underlying file and the bam.Reader.
func (s *Source) Close() error {
	if s == nil {
		return nil
	}
	if s.br != nil {
		s.br.Close()
	}
	if s.fh != nil {
		return s.fh.Close()
	}
	return nil
}
