// Package annotation loads transcript annotations from GTF-style files.
package annotation

// Interval is a genomic interval with 1-based inclusive coordinates.
type Interval struct {
	Start  int64 // Genomic start (1-based)
	End    int64 // Genomic end (1-based, inclusive)
	Strand int8  // +1 or -1
}

// IsForwardStrand returns true if the interval lies on the forward strand.
func (iv Interval) IsForwardStrand() bool {
	return iv.Strand == 1
}

// Transcript holds the CDS and UTR intervals of one protein-coding transcript.
type Transcript struct {
	ID    string     // Transcript ID (e.g., ENST00000311936.8)
	Chrom string     // Chromosome, verbatim from the annotation
	CDS   []Interval // CDS intervals, sorted ascending by start
	UTR   []Interval // Raw UTR intervals, sorted ascending by start

	// UTR5 and UTR3 are populated by Classify. Classified distinguishes
	// "classification never ran" from "classified, nothing survived".
	UTR5       []Interval
	UTR3       []Interval
	Classified bool
}

// TranscriptSet stores transcripts keyed by ID while preserving the order
// in which they were first seen in the annotation. Report rows follow this
// order, so it is kept explicitly rather than left to map iteration.
type TranscriptSet struct {
	byID  map[string]*Transcript
	order []string
}

// NewTranscriptSet creates an empty transcript set.
func NewTranscriptSet() *TranscriptSet {
	return &TranscriptSet{byID: make(map[string]*Transcript)}
}

// Get returns the transcript with the given ID, or nil if absent.
func (s *TranscriptSet) Get(id string) *Transcript {
	return s.byID[id]
}

// Add inserts a transcript, registering its ID at the end of the
// discovery order. An existing transcript with the same ID is replaced
// without changing its position.
func (s *TranscriptSet) Add(t *Transcript) {
	if _, ok := s.byID[t.ID]; !ok {
		s.order = append(s.order, t.ID)
	}
	s.byID[t.ID] = t
}

// obtain returns the transcript for id, creating it on first sighting.
func (s *TranscriptSet) obtain(id string) *Transcript {
	if t, ok := s.byID[id]; ok {
		return t
	}
	t := &Transcript{ID: id}
	s.byID[id] = t
	s.order = append(s.order, id)
	return t
}

// Len returns the number of transcripts in the set.
func (s *TranscriptSet) Len() int {
	return len(s.byID)
}

// Transcripts returns all transcripts in discovery order.
func (s *TranscriptSet) Transcripts() []*Transcript {
	out := make([]*Transcript, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}
