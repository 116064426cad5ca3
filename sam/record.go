// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sam

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidRecord is returned when a record or alignment does not
	// refer to a read.
	ErrInvalidRecord = errors.New("sam: record has no read")

	// ErrQualLength is returned when a read's quality string length
	// differs from its sequence length.
	ErrQualLength = errors.New("sam: sequence/quality length mismatch")

	errOutOfRange = errors.New("sam: value out of range")
)

// Record represents a single SAM alignment record. The Read is borrowed
// from the caller; see Read for the lifetime requirements.
//
// Pos and PNext are stored 1-based and are written verbatim.
type Record struct {
	Read  *Read
	Flags Flags
	RName string
	Pos   int
	MapQ  byte
	Cigar string
	RNext string
	PNext int
	TLen  int

	// Optional fields. These are only written when
	// the Unmapped flag is clear.
	AS int    // Alignment score.
	NM int    // Edit distance to the reference.
	ZS int    // Second best score, written only when positive.
	MD string // Mismatched and deleted reference bases.
}

// NewRecord returns a Record bound to read with values describing
// an unmapped read: Flags is Unmapped, MapQ is 255 and RName, RNext
// and Cigar are "*". A nil read results in ErrInvalidRecord.
func NewRecord(read *Read) (*Record, error) {
	if read == nil {
		return nil, ErrInvalidRecord
	}
	return &Record{
		Read:  read,
		Flags: Unmapped,
		RName: "*",
		MapQ:  255,
		Cigar: "*",
		RNext: "*",
	}, nil
}

// IsMapped returns whether the record describes a placed alignment.
func (r *Record) IsMapped() bool { return r.Flags.IsMapped() }

// String returns a short human readable representation of the Record.
func (r *Record) String() string {
	var name []byte
	if r.Read != nil {
		name = r.Read.Name
	}
	return fmt.Sprintf("%s %v %s:%d %d %s", name, r.Flags, r.RName, r.Pos, r.MapQ, r.Cigar)
}

// MarshalText implements encoding.TextMarshaler. It calls MarshalSAM.
func (r *Record) MarshalText() ([]byte, error) {
	return r.MarshalSAM()
}

// MarshalSAM formats a Record as a SAM line without the line terminator.
// The read's quality string is written as held; no strand dependent
// reversal is applied in this form.
func (r *Record) MarshalSAM() ([]byte, error) {
	return r.appendSAM(nil)
}

func (r *Record) validate() error {
	if r == nil {
		return ErrInvalidRecord
	}
	if err := r.Read.validate(); err != nil {
		return err
	}
	if r.Pos < 0 || r.PNext < 0 {
		return errOutOfRange
	}
	return nil
}

// appendSAM appends the SAM line for r to dst. On error dst is returned
// unaltered.
func (r *Record) appendSAM(dst []byte) ([]byte, error) {
	if err := r.validate(); err != nil {
		return dst, err
	}
	dst = appendFields(dst, &fields{
		name:  r.Read.Name,
		flags: r.Flags,
		rname: r.RName,
		pos:   r.Pos,
		mapQ:  r.MapQ,
		cigar: r.Cigar,
		rnext: r.RNext,
		pnext: r.PNext,
		tlen:  int64(r.TLen),
		seq:   r.Read.Seq,
		qual:  r.Read.Qual,
	})
	if r.Flags&Unmapped == 0 {
		dst = appendAlignmentTags(dst, int64(r.AS), int64(r.NM), int64(r.ZS), r.MD)
	}
	return dst, nil
}
