// Copyright ©2026 The count-fasta-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seqstats accumulates running statistics over a stream of
// sequences and computes assembly contiguity metrics (N25, N50, N75)
// once the stream is exhausted. It is useful for analyzing metrics of
// microbial genome assemblies or metagenome "bins".
package seqstats

import (
	"errors"
	"sort"
)

const maxInt = int(^uint(0) >> 1)

// ErrNoSequences is returned by Finalize when no sequence was ingested.
var ErrNoSequences = errors.New("seqstats: no sequences found")

// An Accumulator holds the running totals for a single analysis pass over
// one input. It is fed one sequence at a time by Ingest and closed out by
// a single call to Finalize. It is not safe for concurrent use.
type Accumulator struct {
	name string

	totalLength   int
	sequenceCount int
	gcCount       int
	nCount        int
	largest       int
	shortest      int

	lengths []int
}

// New returns an empty Accumulator for the named input.
func New(name string) *Accumulator {
	// shortest must lose the first comparison against any real length.
	return &Accumulator{name: name, shortest: maxInt}
}

// Ingest records one sequence. Every byte is examined case-insensitively:
// G and C add to the GC count, N to the N count, any other byte counts
// only toward the length. A zero-length sequence is legal and counted.
// The sequence is not retained.
func (a *Accumulator) Ingest(seq []byte) {
	length := len(seq)
	a.sequenceCount++
	a.totalLength += length
	for _, b := range seq {
		switch b {
		case 'G', 'C', 'g', 'c':
			a.gcCount++
		case 'N', 'n':
			a.nCount++
		}
	}
	if length > a.largest {
		a.largest = length
	}
	if length < a.shortest {
		a.shortest = length
	}
	a.lengths = append(a.lengths, length)
}

// Lengths returns the accumulator's backing length store: ingestion order
// before Finalize, descending afterwards. The caller must not mutate it.
func (a *Accumulator) Lengths() []int { return a.lengths }

// Finalize computes the rank statistics and returns the finished report.
// It sorts the length store in place, so it must be called exactly once,
// after the last Ingest. An empty stream returns ErrNoSequences rather
// than a report full of divisions by zero.
func (a *Accumulator) Finalize() (*Results, error) {
	if a.sequenceCount == 0 {
		return nil, ErrNoSequences
	}
	r := &Results{
		Name:           a.name,
		TotalLength:    a.totalLength,
		SequenceCount:  a.sequenceCount,
		GCCount:        a.gcCount,
		NCount:         a.nCount,
		LargestContig:  a.largest,
		ShortestContig: a.shortest,
	}

	sort.Sort(sort.Reverse(sort.IntSlice(a.lengths)))

	// An input of only empty sequences has no length mass, so no
	// threshold is ever reached; the rank fields stay zero.
	if a.totalLength == 0 {
		return r, nil
	}

	// Walk the lengths longest first, recording the first length at
	// which the cumulative sum reaches each quartile threshold. The
	// thresholds use truncating integer division so boundary behavior
	// is reproducible. N75 is the last threshold needed, so the walk
	// stops there.
	var cumulativeLength, cumulativeSequences int
	for _, length := range a.lengths {
		cumulativeLength += length
		cumulativeSequences++
		if r.N25 == 0 && cumulativeLength >= a.totalLength/4 {
			r.N25 = length
			r.N25SequenceCount = cumulativeSequences
		}
		if r.N50 == 0 && cumulativeLength >= a.totalLength/2 {
			r.N50 = length
			r.N50SequenceCount = cumulativeSequences
		}
		if r.N75 == 0 && cumulativeLength >= a.totalLength*3/4 {
			r.N75 = length
			r.N75SequenceCount = cumulativeSequences
			break
		}
	}
	return r, nil
}
