// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/tsv"

	"github.com/biogo/alnsam/sam"
)

// alignmentRow is a row of the alignment results table.
type alignmentRow struct {
	QName    string `tsv:"QNAME"`
	Seq      string `tsv:"SEQ"`
	Qual     string `tsv:"QUAL"`
	Score    int64  `tsv:"SCORE"`
	Score2   int64  `tsv:"SCORE2"`
	MinScore int64  `tsv:"MINSCORE"`
	RName    string `tsv:"RNAME"`
	Pos      int64  `tsv:"POS"`
	Strand   string `tsv:"STRAND"`
	Cigar    string `tsv:"CIGAR"`
	MD       string `tsv:"MD"`
	NM       int64  `tsv:"NM"`
	RNext    string `tsv:"RNEXT"`
	PNext    int64  `tsv:"PNEXT"`
	TLen     int64  `tsv:"TLEN"`
}

// alignment returns the sam.Alignment described by the row.
func (r *alignmentRow) alignment() (*sam.Alignment, error) {
	var reverse bool
	switch r.Strand {
	case "+":
	case "-":
		reverse = true
	default:
		return nil, errors.E(errors.Invalid, fmt.Sprintf("invalid strand %q", r.Strand))
	}
	qual := r.Qual
	if qual == "*" {
		qual = ""
	}
	return &sam.Alignment{
		Read:       sam.NewRead(r.QName, r.Seq, qual),
		Score:      int32(r.Score),
		Score2:     int32(r.Score2),
		MinScore:   int32(r.MinScore),
		RefName:    r.RName,
		RefPos:     int(r.Pos),
		Reverse:    reverse,
		Cigar:      r.Cigar,
		MD:         r.MD,
		Mismatches: int(r.NM),
		MateRef:    r.RNext,
		MatePos:    int(r.PNext),
		TempLen:    int32(r.TLen),
	}, nil
}

// convert reads alignment rows from r and writes them to w.
func convert(r io.Reader, w *sam.Writer) error {
	tr := tsv.NewReader(r)
	tr.HasHeaderRow = true
	tr.UseHeaderNames = true
	tr.LazyQuotes = true
	for row := 1; ; row++ {
		var ar alignmentRow
		err := tr.Read(&ar)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.E(err, "reading row", strconv.Itoa(row))
		}
		a, err := ar.alignment()
		if err != nil {
			return errors.E(err, "row", strconv.Itoa(row))
		}
		err = w.WriteAlignment(a)
		if err != nil {
			return errors.E(err, "writing row", strconv.Itoa(row), ar.QName)
		}
	}
}

// parseRefs parses a comma separated list of name:length pairs.
func parseRefs(s string) ([]*sam.Reference, error) {
	if s == "" {
		return nil, nil
	}
	var refs []*sam.Reference
	for _, f := range strings.Split(s, ",") {
		i := strings.LastIndexByte(f, ':')
		if i < 0 {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("reference %q: missing length", f))
		}
		n, err := strconv.Atoi(f[i+1:])
		if err != nil {
			return nil, errors.E(errors.Invalid, err, fmt.Sprintf("reference %q", f))
		}
		ref, err := sam.NewReference(f[:i], n)
		if err != nil {
			return nil, errors.E(errors.Invalid, err, fmt.Sprintf("reference %q", f))
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
