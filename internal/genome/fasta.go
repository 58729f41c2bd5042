// Package genome loads chromosome sequences from FASTA files.
package genome

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Genome maps chromosome identifiers to their full nucleotide sequences.
// Identifiers are taken verbatim from the FASTA headers (first
// whitespace-delimited token); they must match the annotation's
// chromosome column exactly for lookups to succeed.
type Genome struct {
	sequences map[string]string
}

// Load reads a FASTA file into memory, one entry per chromosome or contig.
func Load(path string) (*Genome, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open FASTA file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f

	// Handle gzipped files
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	return Parse(reader)
}

// Parse reads FASTA content from a reader.
func Parse(reader io.Reader) (*Genome, error) {
	scanner := bufio.NewScanner(reader)
	// Increase buffer size for long sequence lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	g := &Genome{sequences: make(map[string]string)}

	var currentID string
	var currentSeq strings.Builder

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, ">") {
			if currentID != "" {
				g.sequences[currentID] = currentSeq.String()
			}
			currentID = parseHeader(line)
			currentSeq.Reset()
		} else {
			currentSeq.WriteString(strings.TrimSpace(line))
		}
	}

	if currentID != "" {
		g.sequences[currentID] = currentSeq.String()
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan FASTA: %w", err)
	}

	return g, nil
}

// parseHeader extracts the chromosome identifier from a FASTA header:
// everything between ">" and the first whitespace.
func parseHeader(header string) string {
	header = strings.TrimPrefix(header, ">")
	if idx := strings.IndexAny(header, " \t"); idx != -1 {
		return header[:idx]
	}
	return header
}

// Sequence returns the full sequence for a chromosome. A chromosome
// present in the annotation but absent here is a fatal condition for
// the pipeline, so the miss is reported as an error rather than an
// empty string.
func (g *Genome) Sequence(chrom string) (string, error) {
	seq, ok := g.sequences[chrom]
	if !ok {
		return "", fmt.Errorf("chromosome %q not found in sequence file", chrom)
	}
	return seq, nil
}

// Has reports whether a sequence is loaded for the given chromosome.
func (g *Genome) Has(chrom string) bool {
	_, ok := g.sequences[chrom]
	return ok
}

// Count returns the number of loaded sequences.
func (g *Genome) Count() int {
	return len(g.sequences)
}
