// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bgzf"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
)

// Output compression formats.
const (
	compressAuto = "auto"
	compressNone = "none"
	compressGzip = "gzip"
	compressBGZF = "bgzf"
	compressXZ   = "xz"
)

// compressionFor returns the compression format used for path.
func compressionFor(path, c string) (string, error) {
	switch c {
	case compressNone, compressGzip, compressBGZF, compressXZ:
		return c, nil
	case compressAuto:
		switch {
		case strings.HasSuffix(path, ".gz"):
			return compressBGZF, nil
		case strings.HasSuffix(path, ".xz"):
			return compressXZ, nil
		}
		return compressNone, nil
	}
	return "", errors.E(errors.Invalid, "unknown compression", c)
}

// output is a possibly compressed SAM destination. Closing an output
// flushes and closes each layer, innermost last.
type output struct {
	io.Writer
	closers []func() error
}

func (o *output) push(w io.Writer, close func() error) {
	o.Writer = w
	o.closers = append(o.closers, close)
}

// Close closes all layers of the output, returning the first error.
func (o *output) Close() error {
	var err error
	for i := len(o.closers) - 1; i >= 0; i-- {
		if e := o.closers[i](); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// createOutput opens path for writing with the given compression.
// A path of "-" writes to stdout.
func createOutput(ctx context.Context, path, compression string, parallelism int) (*output, error) {
	o := &output{}
	if path == "-" {
		o.push(os.Stdout, func() error { return nil })
	} else {
		f, err := file.Create(ctx, path)
		if err != nil {
			return nil, errors.E(err, "create", path)
		}
		o.push(f.Writer(ctx), func() error { return f.Close(ctx) })
	}

	switch compression {
	case compressGzip:
		gz := gzip.NewWriter(o.Writer)
		o.push(gz, gz.Close)
	case compressBGZF:
		bg := bgzf.NewWriter(o.Writer, parallelism)
		o.push(bg, bg.Close)
	case compressXZ:
		xw, err := xz.NewWriter(o.Writer)
		if err != nil {
			o.Close()
			return nil, errors.E(err, "xz writer for", path)
		}
		o.push(xw, xw.Close)
	}

	bw := bufio.NewWriter(o.Writer)
	o.push(bw, bw.Flush)
	return o, nil
}
