// Copyright ©2026 The count-fasta-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqstats

// Results is the finished, immutable analysis report for one input. All
// sequence lengths are given in base pairs.
type Results struct {
	Name string // Display name of the input (empty for stdin runs).

	TotalLength   int
	SequenceCount int
	GCCount       int
	NCount        int

	LargestContig  int
	ShortestContig int

	// For each quartile threshold, the triggering length and the number
	// of sequences, longest first, needed to reach it.
	N25, N25SequenceCount int
	N50, N50SequenceCount int
	N75, N75SequenceCount int
}

// AverageLength returns the truncating integer mean sequence length, as
// printed in the console report.
func (r *Results) AverageLength() int { return r.TotalLength / r.SequenceCount }

// AverageLengthFloat returns the exact mean sequence length, as stored in
// CSV rows.
func (r *Results) AverageLengthFloat() float64 {
	return float64(r.TotalLength) / float64(r.SequenceCount)
}

// GCPercentage returns the G+C share of the total length as a percentage.
// It is 0 when the input carried no length at all.
func (r *Results) GCPercentage() float64 {
	if r.TotalLength == 0 {
		return 0
	}
	return float64(r.GCCount) / float64(r.TotalLength) * 100
}

// NPercentage returns the N share of the total length as a percentage.
// It is 0 when the input carried no length at all.
func (r *Results) NPercentage() float64 {
	if r.TotalLength == 0 {
		return 0
	}
	return float64(r.NCount) / float64(r.TotalLength) * 100
}
