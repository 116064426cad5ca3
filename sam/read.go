// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sam

// Read holds the identity of a sequenced read: its query name, its
// sequence and its Phred+33 encoded quality string. A nil or empty
// Qual indicates that no quality data is available.
//
// A Read is owned by the caller. Records and Alignments refer to it
// without copying and never modify it, so the Read must remain valid
// and unchanged until the record referring to it has been written.
type Read struct {
	Name []byte
	Seq  []byte
	Qual []byte
}

// NewRead returns a Read for the given name, sequence and quality
// strings. An empty qual gives a Read without quality data.
func NewRead(name, seq, qual string) *Read {
	r := &Read{Name: []byte(name), Seq: []byte(seq)}
	if qual != "" {
		r.Qual = []byte(qual)
	}
	return r
}

// HasQual returns whether the read carries quality data.
func (r *Read) HasQual() bool { return len(r.Qual) != 0 }

// validate checks that the read is present and that any quality data
// matches the sequence length.
func (r *Read) validate() error {
	if r == nil {
		return ErrInvalidRecord
	}
	if r.HasQual() && len(r.Qual) != len(r.Seq) {
		return ErrQualLength
	}
	return nil
}
