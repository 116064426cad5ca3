// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sam

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

const maxRefLen = 1<<31 - 1

// Reference is a mapping reference sequence.
type Reference struct {
	name string
	lRef int32
}

// NewReference returns a new Reference with the given name and length.
// The length must be a valid SAM reference length, [1, 1<<31).
func NewReference(name string, length int) (*Reference, error) {
	if length < 1 || length > maxRefLen {
		return nil, errors.New("sam: length out of range")
	}
	if name == "" || name == "*" || name == "=" {
		return nil, errors.Errorf("sam: invalid reference name %q", name)
	}
	return &Reference{name: name, lRef: int32(length)}, nil
}

// Name returns the reference name. A nil Reference has the name "*".
func (r *Reference) Name() string {
	if r == nil {
		return "*"
	}
	return r.name
}

// Len returns the length of the reference sequence.
func (r *Reference) Len() int {
	if r == nil {
		return -1
	}
	return int(r.lRef)
}

// String returns the @SQ header line for the Reference.
func (r *Reference) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "@%s\t%s:%s\t%s:%d", refDictTag, refNameTag, r.name, refLengthTag, r.lRef)
	return buf.String()
}
