// Copyright ©2026 The count-fasta-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders finished analysis results: a fixed-layout
// console report, a locked CSV append, or a length-distribution
// histogram image.
package report

import (
	"fmt"
	"io"

	"github.com/jovillarrealm/count-fasta-go/seqstats"
)

// Fprint writes the fixed-order console report for r to w. The layout,
// including tab stops, is kept stable so downstream scripts can keep
// grepping it.
func Fprint(w io.Writer, r *seqstats.Results) {
	fmt.Fprintf(w, "\nFile name:\t%s \n", r.Name)
	fmt.Fprintf(w, "Total length of sequence:\t%d bp\n", r.TotalLength)
	fmt.Fprintf(w, "Total number of sequences:\t%d\n", r.SequenceCount)
	fmt.Fprintf(w, "Average contig length is:\t%d bp\n", r.AverageLength())
	fmt.Fprintf(w, "Largest contig:\t\t%d bp\n", r.LargestContig)
	fmt.Fprintf(w, "Shortest contig:\t\t%d bp\n", r.ShortestContig)
	fmt.Fprintf(w, "N25 stats:\t\t\t25%% of total sequence length is contained in the %d sequences >= %d bp\n",
		r.N25SequenceCount, r.N25)
	fmt.Fprintf(w, "N50 stats:\t\t\t50%% of total sequence length is contained in the %d sequences >= %d bp\n",
		r.N50SequenceCount, r.N50)
	fmt.Fprintf(w, "N75 stats:\t\t\t75%% of total sequence length is contained in the %d sequences >= %d bp\n",
		r.N75SequenceCount, r.N75)
	fmt.Fprintf(w, "Total GC count:\t\t\t%d bp\n", r.GCCount)
	fmt.Fprintf(w, "GC %%:\t\t\t\t%.2f %%\n", r.GCPercentage())
	fmt.Fprintf(w, "Number of Ns:\t\t\t%d\n", r.NCount)
	fmt.Fprintf(w, "Ns %%:\t\t\t\t%.2f %%\n", r.NPercentage())
}
