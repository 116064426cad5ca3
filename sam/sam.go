// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sam implements writing of single-end alignment results as SAM
// format lines. The SAM format is described in the SAM specification.
//
// http://samtools.github.io/hts-specs/SAMv1.pdf
//
// Alignments may be written either as a Record, which holds every field
// of the line, or as an Alignment, which holds the raw aligner output
// and derives the flag, mapping quality and quality orientation from it.
// The two forms differ in their position convention: Record positions
// are written as held while Alignment positions are 0-based and written
// 1-based.
package sam

import (
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/biogo/alnsam/internal/pool"
)

// fields holds the eleven mandatory fields of a SAM line.
type fields struct {
	name     []byte
	flags    Flags
	rname    string
	pos      int
	mapQ     byte
	cigar    string
	rnext    string
	pnext    int
	tlen     int64
	seq      []byte
	qual     []byte
	reversed bool // Write qual in reverse order.
}

// appendFields appends the tab separated mandatory fields of f to dst.
// Empty string fields are written as "*".
func appendFields(dst []byte, f *fields) []byte {
	dst = appendName(dst, f.name)
	dst = append(dst, '\t')
	dst = strconv.AppendUint(dst, uint64(f.flags), 10)
	dst = append(dst, '\t')
	dst = appendOrStar(dst, f.rname)
	dst = append(dst, '\t')
	dst = strconv.AppendInt(dst, int64(f.pos), 10)
	dst = append(dst, '\t')
	dst = strconv.AppendUint(dst, uint64(f.mapQ), 10)
	dst = append(dst, '\t')
	dst = appendOrStar(dst, f.cigar)
	dst = append(dst, '\t')
	dst = appendOrStar(dst, f.rnext)
	dst = append(dst, '\t')
	dst = strconv.AppendInt(dst, int64(f.pnext), 10)
	dst = append(dst, '\t')
	dst = strconv.AppendInt(dst, f.tlen, 10)
	dst = append(dst, '\t')
	if len(f.seq) == 0 {
		dst = append(dst, '*')
	} else {
		dst = append(dst, f.seq...)
	}
	dst = append(dst, '\t')
	return appendQual(dst, f.qual, f.reversed)
}

func appendName(dst, name []byte) []byte {
	if len(name) == 0 {
		return append(dst, '*')
	}
	return append(dst, name...)
}

func appendOrStar(dst []byte, s string) []byte {
	if s == "" {
		return append(dst, '*')
	}
	return append(dst, s...)
}

// appendQual appends q to dst, in reverse order if reversed is true.
// An empty q is written as "*". Quality values are only reordered,
// never complemented.
func appendQual(dst, q []byte, reversed bool) []byte {
	if len(q) == 0 {
		return append(dst, '*')
	}
	if !reversed {
		return append(dst, q...)
	}
	for i := len(q) - 1; i >= 0; i-- {
		dst = append(dst, q[i])
	}
	return dst
}

// lineSize returns an estimate of the length of the SAM line for
// the given read and variable length fields.
func lineSize(r *Read, s ...string) int {
	n := 96 + len(r.Name) + len(r.Seq) + len(r.Qual)
	for _, f := range s {
		n += len(f)
	}
	return n
}

// Write writes r to w as a single newline terminated SAM line using a
// single call to w.Write. Nothing is written if r is not valid. Errors
// from w are returned wrapped; errors.Cause returns the original error.
func Write(w io.Writer, r *Record) error {
	if err := r.validate(); err != nil {
		return err
	}
	buf := pool.GetBuffer(lineSize(r.Read, r.RName, r.Cigar, r.RNext, r.MD))
	defer pool.PutBuffer(buf)
	b, err := r.appendSAM(*buf)
	if err != nil {
		return err
	}
	*buf = append(b, '\n')
	return writeLine(w, *buf)
}

// WriteAlignment writes a to w as a single newline terminated SAM line
// using a single call to w.Write. Nothing is written if a is not valid.
// Errors from w are returned wrapped; errors.Cause returns the original
// error.
func WriteAlignment(w io.Writer, a *Alignment) error {
	if err := a.validate(); err != nil {
		return err
	}
	buf := pool.GetBuffer(lineSize(a.Read, a.RefName, a.Cigar, a.MateRef, a.MD))
	defer pool.PutBuffer(buf)
	b, err := a.appendSAM(*buf)
	if err != nil {
		return err
	}
	*buf = append(b, '\n')
	return writeLine(w, *buf)
}

func writeLine(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	if err != nil {
		return errors.Wrap(err, "sam: failed to write record")
	}
	return nil
}

// Writer implements SAM format writing. A Writer performs no locking;
// concurrent users of a Writer, or of its underlying io.Writer, must
// serialize their calls.
type Writer struct {
	w io.Writer

	records  int64
	unmapped int64
}

// NewWriter returns a Writer to the given io.Writer. If h is not nil
// the header is written before NewWriter returns.
func NewWriter(w io.Writer, h *Header) (*Writer, error) {
	sw := &Writer{w: w}
	if h == nil {
		return sw, nil
	}
	text, err := h.MarshalText()
	if err != nil {
		return nil, err
	}
	_, err = w.Write(text)
	if err != nil {
		return nil, errors.Wrap(err, "sam: failed to write header")
	}
	return sw, nil
}

// Write writes r to the SAM stream.
func (w *Writer) Write(r *Record) error {
	err := Write(w.w, r)
	if err != nil {
		return err
	}
	w.count(r.IsMapped())
	return nil
}

// WriteAlignment writes a to the SAM stream.
func (w *Writer) WriteAlignment(a *Alignment) error {
	err := WriteAlignment(w.w, a)
	if err != nil {
		return err
	}
	w.count(a.Score != 0)
	return nil
}

func (w *Writer) count(mapped bool) {
	w.records++
	if !mapped {
		w.unmapped++
	}
}

// Records returns the number of records successfully written.
func (w *Writer) Records() int64 { return w.records }

// Unmapped returns the number of unmapped records successfully written.
func (w *Writer) Unmapped() int64 { return w.unmapped }
