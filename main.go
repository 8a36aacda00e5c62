// Copyright ©2026 The count-fasta-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// count-fasta-go calculates assembly statistics from a multi-FASTA DNA
// sequence file, optionally gzip, bzip2 or xz compressed. It prints the
// total length, number of sequences, average length, largest and
// shortest contig, N25/N50/N75 and GC/N content, or appends one row to
// a semicolon-delimited CSV.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"

	"github.com/jovillarrealm/count-fasta-go/report"
	"github.com/jovillarrealm/count-fasta-go/seqfile"
	"github.com/jovillarrealm/count-fasta-go/seqstats"
)

var (
	csvPath  = flag.String("c", "", "append one row to this CSV file instead of printing the report")
	plotPath = flag.String("plot", "", "also save a length-distribution histogram image here")
	help     = flag.Bool("help", false, "help prints this message")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-c csv_file] [-plot image_file] <fasta_file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Expected FASTA file after options")
		flag.Usage()
		os.Exit(1)
	}

	src, err := seqfile.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer src.Close()

	acc := seqstats.New(src.Name())
	for src.Next() {
		s := src.Seq().(*linear.Seq)
		acc.Ingest(alphabet.LettersToBytes(s.Seq))
	}
	if err := src.Err(); err != nil {
		log.Fatalf("failed during read: %v", err)
	}

	res, err := acc.Finalize()
	if err != nil {
		log.Fatalf("failed to analyze %q: %v", src.Name(), err)
	}

	if *csvPath != "" {
		if err := report.AppendCSV(*csvPath, res); err != nil {
			log.Fatalf("failed to write CSV: %v", err)
		}
	} else {
		report.Fprint(os.Stdout, res)
	}
	if *plotPath != "" {
		if err := report.SaveLengthHist(*plotPath, acc.Lengths()); err != nil {
			log.Fatalf("failed to save histogram: %v", err)
		}
	}
}
