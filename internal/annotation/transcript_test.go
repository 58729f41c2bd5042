package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscriptSet_AddAndGet(t *testing.T) {
	set := NewTranscriptSet()
	assert.Equal(t, 0, set.Len())
	assert.Nil(t, set.Get("T1"))

	set.Add(&Transcript{ID: "T1", Chrom: "chr1"})
	set.Add(&Transcript{ID: "T2", Chrom: "chr2"})

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, "chr1", set.Get("T1").Chrom)
}

func TestTranscriptSet_ReplaceKeepsPosition(t *testing.T) {
	set := NewTranscriptSet()
	set.Add(&Transcript{ID: "T1"})
	set.Add(&Transcript{ID: "T2"})
	set.Add(&Transcript{ID: "T1", Chrom: "chr9"})

	assert.Equal(t, 2, set.Len())

	var ids []string
	for _, tr := range set.Transcripts() {
		ids = append(ids, tr.ID)
	}
	assert.Equal(t, []string{"T1", "T2"}, ids)
	assert.Equal(t, "chr9", set.Get("T1").Chrom)
}

func TestInterval_IsForwardStrand(t *testing.T) {
	assert.True(t, Interval{Strand: 1}.IsForwardStrand())
	assert.False(t, Interval{Strand: -1}.IsForwardStrand())
}
