// Package annotation loads transcript annotations from GTF-style files.
package annotation

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Loader loads CDS and UTR intervals for protein-coding transcripts
// from a GTF annotation file.
type Loader struct {
	path string
}

// NewLoader creates a new annotation loader.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load parses the annotation file and returns the transcript set.
func (l *Loader) Load() (*TranscriptSet, error) {
	return l.load("")
}

// LoadChromosome parses the annotation file keeping only records on the
// given chromosome.
func (l *Loader) LoadChromosome(chrom string) (*TranscriptSet, error) {
	return l.load(chrom)
}

func (l *Loader) load(filterChrom string) (*TranscriptSet, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open annotation file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f

	// Handle gzipped files
	if strings.HasSuffix(l.path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	return l.parse(reader, filterChrom)
}

// feature represents one parsed annotation line.
type feature struct {
	chrom       string
	featureType string
	start       int64
	end         int64
	strand      int8
	attributes  map[string]string
}

// parse consumes annotation records and groups CDS/UTR intervals by
// transcript. Only records carrying a transcript_id with
// transcript_type "protein_coding" are retained.
func (l *Loader) parse(reader io.Reader, filterChrom string) (*TranscriptSet, error) {
	scanner := bufio.NewScanner(reader)
	// Increase buffer size for long lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	set := NewTranscriptSet()

	for scanner.Scan() {
		line := scanner.Text()

		// Skip comments and empty lines
		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}

		feat, err := parseLine(line)
		if err != nil {
			continue // Skip malformed lines
		}

		if filterChrom != "" && feat.chrom != filterChrom {
			continue
		}

		transcriptID := feat.attributes["transcript_id"]
		if transcriptID == "" {
			continue
		}
		if feat.attributes["transcript_type"] != "protein_coding" {
			continue
		}

		// Every retained row creates or touches its transcript, so
		// discovery order follows first sighting of the identifier,
		// not the first CDS/UTR row.
		t := set.obtain(transcriptID)
		t.Chrom = feat.chrom

		iv := Interval{Start: feat.start, End: feat.end, Strand: feat.strand}

		switch feat.featureType {
		case "CDS":
			t.CDS = append(t.CDS, iv)
		case "UTR":
			t.UTR = append(t.UTR, iv)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan annotation: %w", err)
	}

	// Sort interval lists by genomic start
	for _, t := range set.Transcripts() {
		sort.SliceStable(t.CDS, func(i, j int) bool {
			return t.CDS[i].Start < t.CDS[j].Start
		})
		sort.SliceStable(t.UTR, func(i, j int) bool {
			return t.UTR[i].Start < t.UTR[j].Start
		})
	}

	return set, nil
}

// parseLine parses a single annotation line.
func parseLine(line string) (*feature, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 9 {
		return nil, fmt.Errorf("invalid annotation line: expected 9 fields, got %d", len(fields))
	}

	start, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse start: %w", err)
	}

	end, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse end: %w", err)
	}

	feat := &feature{
		chrom:       fields[0],
		featureType: fields[2],
		start:       start,
		end:         end,
		strand:      parseStrand(fields[6]),
		attributes:  parseAttributes(fields[8]),
	}

	return feat, nil
}

// parseAttributes parses the GTF attribute column.
// Format: key "value"; key "value"; ...
func parseAttributes(attrStr string) map[string]string {
	attrs := make(map[string]string)

	parts := strings.Split(attrStr, ";")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		idx := strings.Index(part, " ")
		if idx == -1 {
			continue
		}

		key := part[:idx]
		value := strings.TrimSpace(part[idx+1:])
		value = strings.Trim(value, "\"")

		attrs[key] = value
	}

	return attrs
}

// parseStrand converts strand string to int8.
func parseStrand(s string) int8 {
	if s == "-" {
		return -1
	}
	return 1
}
