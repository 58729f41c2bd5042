// Package profile computes regional GC-content statistics per transcript.
package profile

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/bkaplan/gcprof/internal/annotation"
	"github.com/bkaplan/gcprof/internal/genome"
	"github.com/bkaplan/gcprof/internal/seq"
)

// Ratio is a GC percentage in [0,100]. Valid is false when the region
// was never classified or had no intervals to compute over, which is
// distinct from a ratio of 0 on an empty extracted sequence.
type Ratio struct {
	Value float64
	Valid bool
}

// Result holds the computed GC ratios for one transcript.
type Result struct {
	TranscriptID string
	Chrom        string
	CDS          Ratio
	UTR5         Ratio
	UTR3         Ratio
}

// ReportWriter defines the interface for writing per-transcript results.
type ReportWriter interface {
	WriteHeader() error
	Write(r *Result) error
	Flush() error
}

// Profiler computes GC ratios for transcripts against a genome.
type Profiler struct {
	genome *genome.Genome
	logger *zap.Logger
}

// New creates a profiler over the given genome.
func New(g *genome.Genome) *Profiler {
	return &Profiler{
		genome: g,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for warning and info messages.
func (p *Profiler) SetLogger(l *zap.Logger) {
	p.logger = l
}

// Profile computes the CDS, 5'UTR and 3'UTR GC ratios for one
// transcript. The transcript must already be classified; unclassified
// transcripts simply get no UTR ratios. A chromosome missing from the
// genome is an error.
func (p *Profiler) Profile(t *annotation.Transcript) (*Result, error) {
	chromSeq, err := p.genome.Sequence(t.Chrom)
	if err != nil {
		return nil, fmt.Errorf("transcript %s: %w", t.ID, err)
	}

	r := &Result{TranscriptID: t.ID, Chrom: t.Chrom}

	cdsSeq, err := seq.Extract(chromSeq, t.CDS)
	if err != nil {
		return nil, fmt.Errorf("transcript %s: extract CDS: %w", t.ID, err)
	}
	r.CDS = Ratio{Value: seq.GCRatio(cdsSeq), Valid: true}

	r.UTR5, err = p.utrRatio(chromSeq, t.UTR5)
	if err != nil {
		return nil, fmt.Errorf("transcript %s: extract 5'UTR: %w", t.ID, err)
	}
	r.UTR3, err = p.utrRatio(chromSeq, t.UTR3)
	if err != nil {
		return nil, fmt.Errorf("transcript %s: extract 3'UTR: %w", t.ID, err)
	}

	return r, nil
}

// utrRatio computes the ratio over a classified UTR set. An empty set
// (never classified, or nothing survived classification) yields no ratio.
func (p *Profiler) utrRatio(chromSeq string, intervals []annotation.Interval) (Ratio, error) {
	if len(intervals) == 0 {
		return Ratio{}, nil
	}
	s, err := seq.Extract(chromSeq, intervals)
	if err != nil {
		return Ratio{}, err
	}
	return Ratio{Value: seq.GCRatio(s), Valid: true}, nil
}

// ProfileAll classifies every transcript, computes its ratios and writes
// the report, preserving the set's discovery order.
func (p *Profiler) ProfileAll(set *annotation.TranscriptSet, writer ReportWriter) error {
	if err := writer.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, t := range set.Transcripts() {
		t.ClassifyUTRs()

		if len(t.UTR) > 0 && !t.Classified {
			p.logger.Warn("transcript has UTR intervals but no CDS to classify against",
				zap.String("transcript", t.ID),
				zap.String("chrom", t.Chrom))
		} else if t.Classified && len(t.UTR5)+len(t.UTR3) < len(t.UTR) {
			p.logger.Warn("dropped UTR intervals overlapping the CDS span",
				zap.String("transcript", t.ID),
				zap.Int("dropped", len(t.UTR)-len(t.UTR5)-len(t.UTR3)))
		}

		r, err := p.Profile(t)
		if err != nil {
			return err
		}
		if err := writer.Write(r); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}

	return writer.Flush()
}
