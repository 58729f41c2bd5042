// Package seq reconstructs spliced sequences and computes base composition.
package seq

import (
	"fmt"
	"strings"

	"github.com/bkaplan/gcprof/internal/annotation"
)

// complementTable maps each IUPAC nucleotide code to its Watson-Crick
// complement, upper and lower case kept distinct. Bytes outside the
// alphabet pass through unchanged.
var complementTable = map[byte]byte{
	'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G',
	'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K', 'B': 'V', 'V': 'B',
	'D': 'H', 'H': 'D', 'N': 'N', 'U': 'A',
	'a': 't', 't': 'a', 'g': 'c', 'c': 'g',
	'r': 'y', 'y': 'r', 's': 's', 'w': 'w',
	'k': 'm', 'm': 'k', 'b': 'v', 'v': 'b',
	'd': 'h', 'h': 'd', 'n': 'n', 'u': 'a',
}

// Complement returns the complement of a single base.
func Complement(base byte) byte {
	if c, ok := complementTable[base]; ok {
		return c
	}
	return base
}

// ReverseComplement returns the reverse complement of a DNA sequence.
func ReverseComplement(s string) string {
	n := len(s)
	result := make([]byte, n)
	for i := 0; i < n; i++ {
		result[i] = Complement(s[n-1-i])
	}
	return string(result)
}

// Extract concatenates the chromosome substrings covered by the given
// intervals, in list order, into one spliced sequence. Intervals on the
// reverse strand are reverse-complemented individually. Coordinates are
// 1-based inclusive.
//
// List order is authoritative: for minus-strand transcripts the
// fragments are still joined in ascending-genomic-start order, matching
// the interval lists built by the loader. Assembly in transcription
// order is deliberately not applied here.
func Extract(chromSeq string, intervals []annotation.Interval) (string, error) {
	var sb strings.Builder
	for _, iv := range intervals {
		if iv.Start < 1 || iv.End < iv.Start || iv.End > int64(len(chromSeq)) {
			return "", fmt.Errorf("invalid interval %d-%d for sequence of length %d",
				iv.Start, iv.End, len(chromSeq))
		}
		frag := chromSeq[iv.Start-1 : iv.End]
		if !iv.IsForwardStrand() {
			frag = ReverseComplement(frag)
		}
		sb.WriteString(frag)
	}
	return sb.String(), nil
}

// GCRatio returns the percentage of bases in s that are 'G' or 'C'.
// Only uppercase bases count; soft-masked (lowercase) bases do not.
// An empty sequence has a ratio of 0.
func GCRatio(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(s); i++ {
		if s[i] == 'G' || s[i] == 'C' {
			gc++
		}
	}
	return 100 * float64(gc) / float64(len(s))
}
