package bamsource

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andareed/tcov/coverage"
	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRead struct {
	name  string
	pos   int
	mapq  byte
	flags sam.Flags
	cigar []sam.CigarOp
}

// writeIndexedBam writes reads on a single 10kb reference to a temporary
// BAM with a .bai alongside it, and returns the BAM path.
func writeIndexedBam(t *testing.T, reads []testRead) string {
	t.Helper()
	ref, err := sam.NewReference("chr1", "", "", 10000, nil, nil)
	require.NoError(t, err)
	h, err := sam.NewHeader(nil, []*sam.Reference{ref})
	require.NoError(t, err)
	h.SortOrder = sam.Coordinate

	var buf bytes.Buffer
	bw, err := bam.NewWriter(&buf, h, 1)
	require.NoError(t, err)
	for _, r := range reads {
		qlen := 0
		for _, co := range r.cigar {
			if co.Type().Consumes().Query == 1 {
				qlen += co.Len()
			}
		}
		seq := bytes.Repeat([]byte("A"), qlen)
		rec, err := sam.NewRecord(r.name, ref, nil, r.pos, -1, 0, r.mapq, r.cigar, seq, nil, nil)
		require.NoError(t, err)
		rec.Flags = r.flags
		require.NoError(t, bw.Write(rec))
	}
	require.NoError(t, bw.Close())

	dir := t.TempDir()
	path := filepath.Join(dir, "reads.bam")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	br, err := bam.NewReader(bytes.NewReader(buf.Bytes()), 1)
	require.NoError(t, err)
	var idx bam.Index
	for {
		rec, err := br.Read()
		if err != nil {
			break
		}
		require.NoError(t, idx.Add(rec, br.LastChunk()))
	}
	require.NoError(t, br.Close())

	f, err := os.Create(path + ".bai")
	require.NoError(t, err)
	require.NoError(t, bam.WriteIndex(f, &idx))
	require.NoError(t, f.Close())
	return path
}

func match(n int) sam.CigarOp { return sam.NewCigarOp(sam.CigarMatch, n) }

var testReads = []testRead{
	{name: "a", pos: 100, mapq: 60, cigar: []sam.CigarOp{match(50)}},
	{name: "b", pos: 120, mapq: 10, flags: sam.Duplicate, cigar: []sam.CigarOp{match(50)}},
	{name: "c", pos: 140, mapq: 60, cigar: []sam.CigarOp{
		match(10), sam.NewCigarOp(sam.CigarSkipped, 100), match(10),
	}},
	{name: "d", pos: 300, mapq: 60, cigar: []sam.CigarOp{
		sam.NewCigarOp(sam.CigarSoftClipped, 5), match(5),
		sam.NewCigarOp(sam.CigarDeletion, 3), sam.NewCigarOp(sam.CigarInsertion, 2), match(5),
	}},
}

func TestOpenAndReference(t *testing.T) {
	path := writeIndexedBam(t, testReads)
	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	n, err := src.Reference("chr1")
	require.NoError(t, err)
	assert.Equal(t, 10000, n)

	_, err = src.Reference("chr2")
	assert.Error(t, err)
}

func TestOpenMissingIndex(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "none.bam")
	require.NoError(t, os.WriteFile(path, []byte("not a bam"), 0o644))
	_, err := Open(path)
	assert.Error(t, err)
}

func TestOpenStemIndex(t *testing.T) {
	path := writeIndexedBam(t, testReads)
	stemIdx := strings.TrimSuffix(path, ".bam") + ".bai"
	require.NoError(t, os.Rename(path+".bai", stemIdx))

	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()
	p, err := coverage.Query(src, coverage.Region{Chrom: "chr1", Start: 100, End: 110}, coverage.FilterConfig{})
	require.NoError(t, err)
	assert.Equal(t, 1, p[0])

	// reads.bai sits next to readsXbam but only a .bam suffix is replaced
	other := filepath.Join(filepath.Dir(path), "readsXbam")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(other, data, 0o644))
	_, err = Open(other)
	assert.Error(t, err)
}

func TestQueryDepth(t *testing.T) {
	src, err := Open(writeIndexedBam(t, testReads))
	require.NoError(t, err)
	defer src.Close()

	region := coverage.Region{Chrom: "chr1", Start: 90, End: 320}
	p, err := coverage.Query(src, region, coverage.FilterConfig{})
	require.NoError(t, err)

	at := func(pos int) int { return p[pos-region.Start] }
	assert.Equal(t, 0, at(99))
	assert.Equal(t, 1, at(100))
	assert.Equal(t, 2, at(120))
	assert.Equal(t, 3, at(145))
	assert.Equal(t, 1, at(150))
	// intron of read c
	assert.Equal(t, 1, at(160))
	assert.Equal(t, 0, at(200))
	assert.Equal(t, 1, at(250))
	assert.Equal(t, 0, at(260))
	// read d: 5M 3D 2I 5M covers 300..313
	assert.Equal(t, 1, at(300))
	assert.Equal(t, 1, at(306))
	assert.Equal(t, 1, at(312))
	assert.Equal(t, 0, at(313))
}

func TestQueryFilters(t *testing.T) {
	src, err := Open(writeIndexedBam(t, testReads))
	require.NoError(t, err)
	defer src.Close()

	region := coverage.Region{Chrom: "chr1", Start: 120, End: 170}
	p, err := coverage.Query(src, region, coverage.FilterConfig{ExcludeFlags: uint16(sam.Duplicate)})
	require.NoError(t, err)
	assert.Equal(t, 1, p[0])
	assert.Equal(t, 2, p.Max(0, len(p)))

	p, err = coverage.Query(src, region, coverage.FilterConfig{MinMapQ: 30})
	require.NoError(t, err)
	assert.Equal(t, 1, p[0])
}

func TestQueryPastEnd(t *testing.T) {
	src, err := Open(writeIndexedBam(t, testReads))
	require.NoError(t, err)
	defer src.Close()

	region := coverage.Region{Chrom: "chr1", Start: 20000, End: 20100}
	p, err := coverage.Query(src, region, coverage.FilterConfig{})
	require.NoError(t, err)
	assert.Len(t, p, 100)
	assert.Equal(t, 0, p.Max(0, len(p)))

	// repeated queries are independent
	p, err = coverage.Query(src, coverage.Region{Chrom: "chr1", Start: 100, End: 110}, coverage.FilterConfig{})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Max(0, len(p)))
}

func TestQueryUnknownReference(t *testing.T) {
	src, err := Open(writeIndexedBam(t, testReads))
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Query("chrUn", 0, 10)
	assert.Error(t, err)
}

func TestAppendBlocksClipsToRange(t *testing.T) {
	rec := &sam.Record{Pos: 10, Flags: sam.Paired, MapQ: 7, Cigar: []sam.CigarOp{
		match(5), sam.NewCigarOp(sam.CigarSkipped, 10), match(5),
	}}
	got := appendBlocks(nil, rec, 0, 100)
	assert.Equal(t, []coverage.Record{
		{Start: 10, End: 15, Flags: uint16(sam.Paired), MapQ: 7},
		{Start: 25, End: 30, Flags: uint16(sam.Paired), MapQ: 7},
	}, got)

	got = appendBlocks(nil, rec, 20, 100)
	assert.Equal(t, []coverage.Record{{Start: 25, End: 30, Flags: uint16(sam.Paired), MapQ: 7}}, got)

	unmapped := &sam.Record{Pos: 10, Flags: sam.Unmapped}
	assert.Empty(t, appendBlocks(nil, unmapped, 0, 100))
}
