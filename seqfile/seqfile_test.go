// Copyright ©2026 The count-fasta-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqfile

import (
	"compress/gzip"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz"
	check "gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

// testFasta holds three records; seq2's sequence is split over two lines
// and must come back as one 8 bp record.
const testFasta = ">seq1\nACGT\n>seq2\nNNNN\nacgt\n>seq3\nGGCC\n"

type record struct {
	name   string
	length int
}

var testRecords = []record{
	{"seq1", 4},
	{"seq2", 8},
	{"seq3", 4},
}

func scanAll(c *check.C, path string) (string, []record) {
	f, err := Open(path)
	c.Assert(err, check.IsNil)

	var recs []record
	for f.Next() {
		s := f.Seq()
		recs = append(recs, record{s.Name(), s.Len()})
	}
	c.Assert(f.Err(), check.IsNil)
	c.Assert(f.Close(), check.IsNil)
	return f.Name(), recs
}

func (s *S) TestPlain(c *check.C) {
	path := filepath.Join(c.MkDir(), "test.fa")
	c.Assert(ioutil.WriteFile(path, []byte(testFasta), 0644), check.IsNil)

	name, recs := scanAll(c, path)
	c.Check(name, check.Equals, "test.fa")
	c.Check(recs, check.DeepEquals, testRecords)
}

func (s *S) TestGzip(c *check.C) {
	path := filepath.Join(c.MkDir(), "test.fa.gz")
	f, err := os.Create(path)
	c.Assert(err, check.IsNil)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(testFasta))
	c.Assert(err, check.IsNil)
	c.Assert(zw.Close(), check.IsNil)
	c.Assert(f.Close(), check.IsNil)

	name, recs := scanAll(c, path)
	c.Check(name, check.Equals, "test.fa.gz")
	c.Check(recs, check.DeepEquals, testRecords)
}

func (s *S) TestXz(c *check.C) {
	path := filepath.Join(c.MkDir(), "test.fa.xz")
	f, err := os.Create(path)
	c.Assert(err, check.IsNil)
	xw, err := xz.NewWriter(f)
	c.Assert(err, check.IsNil)
	_, err = xw.Write([]byte(testFasta))
	c.Assert(err, check.IsNil)
	c.Assert(xw.Close(), check.IsNil)
	c.Assert(f.Close(), check.IsNil)

	_, recs := scanAll(c, path)
	c.Check(recs, check.DeepEquals, testRecords)
}

func (s *S) TestOpenMissing(c *check.C) {
	f, err := Open(filepath.Join(c.MkDir(), "no-such.fa"))
	c.Check(f, check.IsNil)
	c.Check(err, check.NotNil)
}

func (s *S) TestGzipBadMagic(c *check.C) {
	// A .gz path whose content is not gzip must fail at Open, not
	// produce garbage records.
	path := filepath.Join(c.MkDir(), "test.fa.gz")
	c.Assert(ioutil.WriteFile(path, []byte(testFasta), 0644), check.IsNil)

	f, err := Open(path)
	c.Check(f, check.IsNil)
	c.Check(err, check.NotNil)
}
