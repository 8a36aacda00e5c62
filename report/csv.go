// Copyright ©2026 The count-fasta-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gofrs/flock"

	"github.com/jovillarrealm/count-fasta-go/seqstats"
)

const csvHeader = "filename;assembly_length;number_of_sequences;average_length;largest_contig;shortest_contig;N50;GC_percentage;total_N;N_percentage\n"

// AppendCSV appends one result row to the semicolon-delimited CSV at
// path, writing the header row first if the file is new or empty. The
// whole operation runs under an exclusive advisory lock so concurrent
// runs appending to the same file serialize; the emptiness check happens
// under the lock, so only one writer ever emits the header.
func AppendCSV(path string, r *seqstats.Results) error {
	lock := flock.New(path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("report: lock %q: %v", path, err)
	}
	defer lock.Unlock()

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("report: open %q: %v", path, err)
	}
	err = appendRow(f, r)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("report: close %q: %v", path, cerr)
	}
	return err
}

func appendRow(f *os.File, r *seqstats.Results) error {
	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("report: stat %q: %v", f.Name(), err)
	}
	w := bufio.NewWriter(f)
	if fi.Size() == 0 {
		w.WriteString(csvHeader)
	}
	fmt.Fprintf(w, "%s;%d;%d;%v;%d;%d;%d;%v;%d;%v\n",
		r.Name,
		r.TotalLength,
		r.SequenceCount,
		r.AverageLengthFloat(),
		r.LargestContig,
		r.ShortestContig,
		r.N50,
		r.GCPercentage(),
		r.NCount,
		r.NPercentage(),
	)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("report: write %q: %v", f.Name(), err)
	}
	return nil
}
