// Copyright ©2026 The count-fasta-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seqfile opens FASTA inputs for scanning, transparently
// decompressing gzip, bgzip, bzip2 and xz streams based on the file
// extension.
package seqfile

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/ulikunitz/xz"
)

// A File is one open sequence input. Records are pulled with Next/Seq in
// the usual scanner idiom; Err reports the first structural failure seen.
type File struct {
	name    string
	sc      *seqio.Scanner
	closers []io.Closer
}

// Open opens the sequence file at path, stacking a decompressor chosen by
// extension (.gz, .bgz and .bgzip are gzip; .bz2 bzip2; .xz xz; anything
// else raw). The path "-" reads from stdin.
func Open(path string) (*File, error) {
	f := &File{}

	var in io.Reader
	if path == "-" {
		f.name = "stdin"
		in = os.Stdin
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("seqfile: open %q: %v", path, err)
		}
		f.name = filepath.Base(path)
		f.closers = append(f.closers, fh)
		in = fh
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".bgz", ".bgzip":
		zr, err := gzip.NewReader(in)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("seqfile: gzip open %q: %v", path, err)
		}
		f.closers = append(f.closers, zr)
		in = zr
	case ".bz2":
		in = bzip2.NewReader(in)
	case ".xz":
		xr, err := xz.NewReader(in)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("seqfile: xz open %q: %v", path, err)
		}
		in = xr
	}

	f.sc = seqio.NewScanner(fasta.NewReader(in, linear.NewSeq("", nil, alphabet.DNA)))
	return f, nil
}

// Name returns the input's display name: the base name of the opened
// path, or "stdin".
func (f *File) Name() string { return f.name }

// Next advances to the next record, returning false at end of input or on
// the first error.
func (f *File) Next() bool { return f.sc.Next() }

// Seq returns the current record.
func (f *File) Seq() seq.Sequence { return f.sc.Seq() }

// Err returns the error, if any, that stopped scanning.
func (f *File) Err() error { return f.sc.Error() }

// Close releases the decompressor and the underlying file.
func (f *File) Close() error {
	var err error
	for i := len(f.closers) - 1; i >= 0; i-- {
		if cerr := f.closers[i].Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
