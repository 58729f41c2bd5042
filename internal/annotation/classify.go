package annotation

// Classify partitions each transcript's UTR intervals into 5' and 3'
// sets by comparing against the outermost CDS boundaries. An interval's
// own strand selects the comparison: on the forward strand a 5'UTR ends
// before the first CDS base and a 3'UTR starts after the last one; on
// the reverse strand the two are mirrored. Intervals that lie neither
// strictly before nor strictly after the CDS span are dropped.
//
// Transcripts without UTR intervals, or without any CDS interval to
// compare against, are left unclassified.
func Classify(set *TranscriptSet) {
	for _, t := range set.Transcripts() {
		t.ClassifyUTRs()
	}
}

// ClassifyUTRs classifies this transcript's UTR intervals. Surviving
// intervals keep their coordinates and relative order. Calling it again
// rebuilds the same 5'/3' sets, so repeated classification is harmless.
func (t *Transcript) ClassifyUTRs() {
	if len(t.UTR) == 0 || len(t.CDS) == 0 {
		return
	}

	cdsFirst := t.CDS[0].Start
	cdsLast := t.CDS[len(t.CDS)-1].End

	t.UTR5 = nil
	t.UTR3 = nil
	for _, iv := range t.UTR {
		switch {
		case iv.IsForwardStrand() && iv.End < cdsFirst:
			t.UTR5 = append(t.UTR5, iv)
		case iv.IsForwardStrand() && iv.Start > cdsLast:
			t.UTR3 = append(t.UTR3, iv)
		case !iv.IsForwardStrand() && iv.Start > cdsLast:
			t.UTR5 = append(t.UTR5, iv)
		case !iv.IsForwardStrand() && iv.End < cdsFirst:
			t.UTR3 = append(t.UTR3, iv)
		}
		// Intervals overlapping the CDS span match no case and are dropped.
	}
	t.Classified = true
}
