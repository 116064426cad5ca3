// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sam

// Alignment holds the result of a single-end alignment as reported by
// an aligner. It is an alternative to Record for callers that do not
// build records: the flag, mapping quality and quality orientation are
// derived from the alignment rather than held.
//
// RefPos and MatePos are 0-based and are written 1-based.
type Alignment struct {
	Read *Read

	Score    int32 // Best alignment score. Zero indicates an unmapped read.
	Score2   int32 // Second best score. Zero indicates no second best alignment.
	MinScore int32 // Minimum acceptable score. Not used by the MAPQ estimate.

	RefName string
	RefPos  int
	Reverse bool // The read aligned as its reverse complement.

	Cigar      string
	MD         string
	Mismatches int

	MateRef string // Reference name of the next read; "*" when empty.
	MatePos int
	TempLen int32
}

// unmappedLine is the content written after the query name for an
// alignment with a zero score.
const unmappedLine = "\t4\t*\t0\t255\t*\t*\t0\t0\t*\t*"

// Flags returns the FLAG value written for the alignment.
func (a *Alignment) Flags() Flags {
	switch {
	case a.Score == 0:
		return Unmapped
	case a.Reverse:
		return Reverse
	}
	return 0
}

// MapQ returns the mapping quality estimate for the alignment.
func (a *Alignment) MapQ() byte {
	if a.Score == 0 {
		return NoMapQ
	}
	return MapQ(a.Score, a.Score2)
}

// MarshalText implements encoding.TextMarshaler. It calls MarshalSAM.
func (a *Alignment) MarshalText() ([]byte, error) {
	return a.MarshalSAM()
}

// MarshalSAM formats an Alignment as a SAM line without the line
// terminator. A zero score gives a fixed unmapped line without optional
// fields. Otherwise the optional fields are always written and, for a
// reverse alignment, the quality string is written in reverse order.
func (a *Alignment) MarshalSAM() ([]byte, error) {
	return a.appendSAM(nil)
}

func (a *Alignment) validate() error {
	if a == nil {
		return ErrInvalidRecord
	}
	if err := a.Read.validate(); err != nil {
		return err
	}
	if a.RefPos < 0 || a.MatePos < 0 {
		return errOutOfRange
	}
	return nil
}

// appendSAM appends the SAM line for a to dst. On error dst is returned
// unaltered.
func (a *Alignment) appendSAM(dst []byte) ([]byte, error) {
	if err := a.validate(); err != nil {
		return dst, err
	}
	if a.Score == 0 {
		dst = appendName(dst, a.Read.Name)
		return append(dst, unmappedLine...), nil
	}
	dst = appendFields(dst, &fields{
		name:     a.Read.Name,
		flags:    a.Flags(),
		rname:    a.RefName,
		pos:      a.RefPos + 1,
		mapQ:     a.MapQ(),
		cigar:    a.Cigar,
		rnext:    a.MateRef,
		pnext:    a.MatePos + 1,
		tlen:     int64(a.TempLen),
		seq:      a.Read.Seq,
		qual:     a.Read.Qual,
		reversed: a.Reverse,
	})
	return appendAlignmentTags(dst, int64(a.Score), int64(a.Mismatches), int64(a.Score2), a.MD), nil
}
