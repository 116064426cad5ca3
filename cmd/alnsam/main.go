// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

// See doc.go for documentation.

import (
	"context"
	"flag"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"

	"github.com/biogo/alnsam/sam"
)

const version = "0.1.0"

var (
	compressFlag    = flag.String("compress", compressAuto, "Output compression: auto, none, gzip, bgzf or xz")
	sqFlag          = flag.String("sq", "", "Comma separated name:length reference sequences for the header")
	sortFlag        = flag.String("sort", "unknown", "Sort order recorded in the header")
	parallelismFlag = flag.Int("parallelism", runtime.NumCPU(), "Number of BGZF compression workers")
)

// options holds the settings for a conversion.
type options struct {
	compress    string
	refs        []*sam.Reference
	sortOrder   sam.SortOrder
	parallelism int
	command     string
}

// stats summarizes a conversion.
type stats struct {
	records, unmapped int64
}

// run converts the alignment results at inPath to SAM at outPath.
func run(ctx context.Context, inPath, outPath string, opts options) (st stats, err error) {
	compression, err := compressionFor(outPath, opts.compress)
	if err != nil {
		return st, err
	}

	var in io.Reader
	if inPath == "-" {
		in = os.Stdin
	} else {
		f, err := file.Open(ctx, inPath)
		if err != nil {
			return st, errors.E(err, "open", inPath)
		}
		defer f.Close(ctx) // nolint: errcheck
		in = f.Reader(ctx)
	}

	h, err := sam.NewHeader(opts.refs)
	if err != nil {
		return st, err
	}
	h.SortOrder = opts.sortOrder
	err = h.AddProgram(sam.NewProgram("alnsam", "alnsam", opts.command, "", version))
	if err != nil {
		return st, err
	}

	out, err := createOutput(ctx, outPath, compression, opts.parallelism)
	if err != nil {
		return st, err
	}
	defer func() {
		if e := out.Close(); e != nil && err == nil {
			err = errors.E(e, "close", outPath)
		}
	}()

	w, err := sam.NewWriter(out, h)
	if err != nil {
		return st, errors.E(err, "write header to", outPath)
	}
	err = convert(in, w)
	st = stats{records: w.Records(), unmapped: w.Unmapped()}
	return st, err
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	flag.Usage = func() {
		os.Stderr.WriteString(`Usage: alnsam [flags] <results.tsv> <out.sam>

Converts a table of precomputed alignment results to SAM. Either path may
be "-" for stdin or stdout.

`)
		flag.PrintDefaults()
	}
	shutdown := grail.Init()
	defer shutdown()

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(1)
	}
	refs, err := parseRefs(*sqFlag)
	if err != nil {
		log.Panicf("-sq: %v", err)
	}
	so, err := sam.ParseSortOrder(*sortFlag)
	if err != nil {
		log.Panicf("-sort: %v", err)
	}
	opts := options{
		compress:    *compressFlag,
		refs:        refs,
		sortOrder:   so,
		parallelism: *parallelismFlag,
		command:     strings.Join(os.Args, " "),
	}

	st, err := run(vcontext.Background(), args[0], args[1], opts)
	if err != nil {
		log.Panicf("convert %v to %v: %v", args[0], args[1], err)
	}
	log.Printf("wrote %d records (%d unmapped) to %s", st.records, st.unmapped, args[1])
}
