package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyUTRs_ForwardStrand(t *testing.T) {
	tr := &Transcript{
		ID:    "T1",
		Chrom: "chr1",
		CDS: []Interval{
			{Start: 101, End: 150, Strand: 1},
		},
		UTR: []Interval{
			{Start: 50, End: 100, Strand: 1},
			{Start: 151, End: 200, Strand: 1},
		},
	}

	tr.ClassifyUTRs()

	require.True(t, tr.Classified)
	require.Len(t, tr.UTR5, 1)
	require.Len(t, tr.UTR3, 1)
	assert.Equal(t, Interval{Start: 50, End: 100, Strand: 1}, tr.UTR5[0])
	assert.Equal(t, Interval{Start: 151, End: 200, Strand: 1}, tr.UTR3[0])
}

func TestClassifyUTRs_ReverseStrand(t *testing.T) {
	// On the reverse strand the 5'UTR lies genomically after the CDS.
	tr := &Transcript{
		ID:    "T1",
		Chrom: "chr1",
		CDS: []Interval{
			{Start: 101, End: 150, Strand: -1},
		},
		UTR: []Interval{
			{Start: 50, End: 100, Strand: -1},
			{Start: 151, End: 200, Strand: -1},
		},
	}

	tr.ClassifyUTRs()

	require.Len(t, tr.UTR5, 1)
	require.Len(t, tr.UTR3, 1)
	assert.Equal(t, int64(151), tr.UTR5[0].Start)
	assert.Equal(t, int64(50), tr.UTR3[0].Start)
}

func TestClassifyUTRs_MixedStrandIntervals(t *testing.T) {
	// Strand is read per interval, not per transcript.
	tr := &Transcript{
		CDS: []Interval{{Start: 101, End: 150, Strand: 1}},
		UTR: []Interval{
			{Start: 50, End: 100, Strand: 1},   // forward: 5'
			{Start: 151, End: 200, Strand: -1}, // reverse: 5'
		},
	}

	tr.ClassifyUTRs()

	require.Len(t, tr.UTR5, 2)
	assert.Empty(t, tr.UTR3)
}

func TestClassifyUTRs_OverlappingIntervalDropped(t *testing.T) {
	tr := &Transcript{
		CDS: []Interval{{Start: 101, End: 150, Strand: 1}},
		UTR: []Interval{
			{Start: 90, End: 120, Strand: 1},  // overlaps CDS start
			{Start: 101, End: 150, Strand: 1}, // inside CDS span
			{Start: 140, End: 160, Strand: 1}, // overlaps CDS end
		},
	}

	tr.ClassifyUTRs()

	assert.True(t, tr.Classified)
	assert.Empty(t, tr.UTR5)
	assert.Empty(t, tr.UTR3)
}

func TestClassifyUTRs_NoCDS(t *testing.T) {
	tr := &Transcript{
		UTR: []Interval{{Start: 50, End: 100, Strand: 1}},
	}

	tr.ClassifyUTRs()

	assert.False(t, tr.Classified)
	assert.Nil(t, tr.UTR5)
	assert.Nil(t, tr.UTR3)
}

func TestClassifyUTRs_NoUTR(t *testing.T) {
	tr := &Transcript{
		CDS: []Interval{{Start: 101, End: 150, Strand: 1}},
	}

	tr.ClassifyUTRs()

	assert.False(t, tr.Classified)
}

func TestClassifyUTRs_Idempotent(t *testing.T) {
	tr := &Transcript{
		CDS: []Interval{{Start: 101, End: 150, Strand: 1}},
		UTR: []Interval{
			{Start: 50, End: 100, Strand: 1},
			{Start: 151, End: 200, Strand: 1},
			{Start: 120, End: 160, Strand: 1},
		},
	}

	tr.ClassifyUTRs()
	utr5 := append([]Interval(nil), tr.UTR5...)
	utr3 := append([]Interval(nil), tr.UTR3...)

	tr.ClassifyUTRs()

	assert.Equal(t, utr5, tr.UTR5)
	assert.Equal(t, utr3, tr.UTR3)
}

func TestClassifyUTRs_MultiExonCDSBoundaries(t *testing.T) {
	// Boundaries come from the first CDS start and the last CDS end.
	tr := &Transcript{
		CDS: []Interval{
			{Start: 101, End: 110, Strand: 1},
			{Start: 120, End: 150, Strand: 1},
		},
		UTR: []Interval{
			{Start: 50, End: 100, Strand: 1},
			{Start: 115, End: 118, Strand: 1}, // intronic, inside the span: dropped
			{Start: 151, End: 200, Strand: 1},
		},
	}

	tr.ClassifyUTRs()

	require.Len(t, tr.UTR5, 1)
	require.Len(t, tr.UTR3, 1)
	assert.Equal(t, int64(50), tr.UTR5[0].Start)
	assert.Equal(t, int64(151), tr.UTR3[0].Start)
}

func TestClassify_Set(t *testing.T) {
	set := NewTranscriptSet()
	a := set.obtain("A")
	a.CDS = []Interval{{Start: 101, End: 150, Strand: 1}}
	a.UTR = []Interval{{Start: 50, End: 100, Strand: 1}}
	b := set.obtain("B")
	b.UTR = []Interval{{Start: 10, End: 20, Strand: 1}}

	Classify(set)

	assert.True(t, a.Classified)
	assert.False(t, b.Classified)
}
