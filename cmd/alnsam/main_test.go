// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biogo/hts/bgzf"
	"github.com/grailbio/testutil"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"

	"github.com/biogo/alnsam/sam"
)

const results = "QNAME\tSEQ\tQUAL\tSCORE\tSCORE2\tMINSCORE\tRNAME\tPOS\tSTRAND\tCIGAR\tMD\tNM\tRNEXT\tPNEXT\tTLEN\n" +
	"r1\tACGT\t!!##\t100\t50\t20\tchr1\t99\t-\t4M\t4\t0\t*\t0\t0\n" +
	"r2\tACGTA\t*\t40\t0\t20\tchr2\t0\t+\t5M\t2A2\t1\tchr2\t199\t-250\n" +
	"r3\tTTTT\tIIII\t0\t0\t20\t*\t0\t+\t*\t\t0\t*\t0\t0\n"

const records = "r1\t16\tchr1\t100\t3\t4M\t*\t1\t0\tACGT\t##!!\tAS:i:100\tNM:i:0\tZS:i:50\tMD:Z:4\n" +
	"r2\t0\tchr2\t1\t254\t5M\tchr2\t200\t-250\tACGTA\t*\tAS:i:40\tNM:i:1\tMD:Z:2A2\n" +
	"r3\t4\t*\t0\t255\t*\t*\t0\t0\t*\t*\n"

func TestConvert(t *testing.T) {
	var buf bytes.Buffer
	w, err := sam.NewWriter(&buf, nil)
	require.NoError(t, err)
	require.NoError(t, convert(strings.NewReader(results), w))
	assert.Equal(t, records, buf.String())
	assert.EqualValues(t, 3, w.Records())
	assert.EqualValues(t, 1, w.Unmapped())
}

func TestConvertColumnOrder(t *testing.T) {
	const in = "STRAND\tQNAME\tSEQ\tQUAL\tSCORE\tSCORE2\tMINSCORE\tRNAME\tPOS\tCIGAR\tMD\tNM\tRNEXT\tPNEXT\tTLEN\n" +
		"-\tr1\tACGT\t!!##\t100\t50\t20\tchr1\t99\t4M\t4\t0\t*\t0\t0\n"
	var buf bytes.Buffer
	w, err := sam.NewWriter(&buf, nil)
	require.NoError(t, err)
	require.NoError(t, convert(strings.NewReader(in), w))
	assert.Equal(t, strings.SplitAfter(records, "\n")[0], buf.String())
}

func TestConvertErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		row  string
	}{
		{"bad strand", "r1\tACGT\t!!##\t100\t50\t20\tchr1\t99\t?\t4M\t4\t0\t*\t0\t0\n"},
		{"bad score", "r1\tACGT\t!!##\tten\t50\t20\tchr1\t99\t+\t4M\t4\t0\t*\t0\t0\n"},
		{"quality length", "r1\tACGT\t!!#\t100\t50\t20\tchr1\t99\t+\t4M\t4\t0\t*\t0\t0\n"},
	} {
		header := strings.SplitAfter(results, "\n")[0]
		var buf bytes.Buffer
		w, err := sam.NewWriter(&buf, nil)
		require.NoError(t, err)
		err = convert(strings.NewReader(header+test.row), w)
		assert.Error(t, err, test.name)
		assert.Equal(t, 0, buf.Len(), test.name)
	}
}

func TestParseRefs(t *testing.T) {
	refs, err := parseRefs("chr1:1000,HLA-A*01:01:01:01:3503")
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "chr1", refs[0].Name())
	assert.Equal(t, 1000, refs[0].Len())
	assert.Equal(t, "HLA-A*01:01:01:01", refs[1].Name())
	assert.Equal(t, 3503, refs[1].Len())

	refs, err = parseRefs("")
	assert.NoError(t, err)
	assert.Nil(t, refs)

	for _, bad := range []string{"chr1", "chr1:x", "chr1:0", ":10"} {
		_, err = parseRefs(bad)
		assert.Error(t, err, bad)
	}
}

func TestCompressionFor(t *testing.T) {
	for _, test := range []struct {
		path, compress, want string
	}{
		{"out.sam", compressAuto, compressNone},
		{"out.sam.gz", compressAuto, compressBGZF},
		{"out.sam.xz", compressAuto, compressXZ},
		{"out.sam.gz", compressGzip, compressGzip},
		{"out.sam", compressXZ, compressXZ},
	} {
		got, err := compressionFor(test.path, test.compress)
		require.NoError(t, err)
		assert.Equal(t, test.want, got, test.path)
	}
	_, err := compressionFor("out.sam", "zip")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	dir, cleanup := testutil.TempDir(t, "", "alnsam")
	defer cleanup()

	inPath := filepath.Join(dir, "results.tsv")
	require.NoError(t, ioutil.WriteFile(inPath, []byte(results), 0644))

	chr1, err := sam.NewReference("chr1", 1000)
	require.NoError(t, err)
	chr2, err := sam.NewReference("chr2", 500)
	require.NoError(t, err)
	opts := options{
		refs:        []*sam.Reference{chr1, chr2},
		sortOrder:   sam.Unsorted,
		parallelism: 2,
		command:     "alnsam results.tsv out.sam",
	}
	const header = "@HD\tVN:1.6\tSO:unsorted\n" +
		"@SQ\tSN:chr1\tLN:1000\n" +
		"@SQ\tSN:chr2\tLN:500\n" +
		"@PG\tID:alnsam\tPN:alnsam\tCL:alnsam results.tsv out.sam\tVN:" + version + "\n"

	for _, test := range []struct {
		name     string
		compress string
		open     func(r io.Reader) (io.Reader, error)
	}{
		{
			name:     "out.sam",
			compress: compressAuto,
			open:     func(r io.Reader) (io.Reader, error) { return r, nil },
		},
		{
			name:     "out.sam.gz",
			compress: compressAuto,
			open: func(r io.Reader) (io.Reader, error) {
				return bgzf.NewReader(r, 1)
			},
		},
		{
			name:     "out.gzip.sam.gz",
			compress: compressGzip,
			open: func(r io.Reader) (io.Reader, error) {
				return gzip.NewReader(r)
			},
		},
		{
			name:     "out.sam.xz",
			compress: compressAuto,
			open: func(r io.Reader) (io.Reader, error) {
				return xz.NewReader(r)
			},
		},
	} {
		opts.compress = test.compress
		outPath := filepath.Join(dir, test.name)
		st, err := run(context.Background(), inPath, outPath, opts)
		require.NoError(t, err, test.name)
		assert.Equal(t, stats{records: 3, unmapped: 1}, st, test.name)

		f, err := os.Open(outPath)
		require.NoError(t, err, test.name)
		r, err := test.open(f)
		require.NoError(t, err, test.name)
		got, err := ioutil.ReadAll(r)
		require.NoError(t, err, test.name)
		f.Close()
		assert.Equal(t, header+records, string(got), test.name)
	}
}

func TestRunMissingInput(t *testing.T) {
	dir, cleanup := testutil.TempDir(t, "", "alnsam")
	defer cleanup()
	_, err := run(context.Background(), filepath.Join(dir, "missing.tsv"), filepath.Join(dir, "out.sam"), options{compress: compressAuto})
	assert.Error(t, err)
}
