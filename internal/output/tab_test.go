package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkaplan/gcprof/internal/profile"
)

func TestTabWriter_WriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewTabWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Flush())

	assert.Equal(t, "Transcript_ID\tChromosome\tCDS_GC_Ratio\tUTR_5_GC_Ratio\tUTR_3_GC_Ratio\n", buf.String())
}

func TestTabWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := NewTabWriter(&buf)

	r := &profile.Result{
		TranscriptID: "T1",
		Chrom:        "chr1",
		CDS:          profile.Ratio{Value: 100, Valid: true},
		UTR5:         profile.Ratio{Value: 0, Valid: true},
		UTR3:         profile.Ratio{Value: 0, Valid: true},
	}

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write(r))
	require.NoError(t, w.Flush())

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "T1\tchr1\t100.00\t0.00\t0.00", lines[1])
}

func TestTabWriter_AbsentRatiosAsDash(t *testing.T) {
	var buf bytes.Buffer
	w := NewTabWriter(&buf)

	r := &profile.Result{
		TranscriptID: "T2",
		Chrom:        "chr2",
		CDS:          profile.Ratio{Value: 43.75, Valid: true},
	}

	require.NoError(t, w.Write(r))
	require.NoError(t, w.Flush())

	assert.Equal(t, "T2\tchr2\t43.75\t-\t-\n", buf.String())
}

func TestFormatRatio(t *testing.T) {
	tests := []struct {
		name     string
		ratio    profile.Ratio
		expected string
	}{
		{"absent", profile.Ratio{}, "-"},
		{"zero is not a dash", profile.Ratio{Value: 0, Valid: true}, "0.00"},
		{"two decimals", profile.Ratio{Value: 100.0 / 3.0, Valid: true}, "33.33"},
		{"full", profile.Ratio{Value: 100, Valid: true}, "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatRatio(tt.ratio))
		})
	}
}
