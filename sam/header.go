// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sam

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	errDupReference = errors.New("sam: duplicate reference name")
	errDupProgram   = errors.New("sam: duplicate program name")
	errBadComment   = errors.New("sam: comment contains line break")
)

// SortOrder indicates the sort order of a SAM file.
type SortOrder int

const (
	UnknownOrder SortOrder = iota
	Unsorted
	QueryName
	Coordinate
)

var (
	sortOrder = [...]string{
		UnknownOrder: "unknown",
		Unsorted:     "unsorted",
		QueryName:    "queryname",
		Coordinate:   "coordinate",
	}
	sortOrderMap = map[string]SortOrder{
		"unknown":    UnknownOrder,
		"unsorted":   Unsorted,
		"queryname":  QueryName,
		"coordinate": Coordinate,
	}
)

// String returns the string representation of a SortOrder.
func (so SortOrder) String() string {
	if so < Unsorted || so > Coordinate {
		return sortOrder[UnknownOrder]
	}
	return sortOrder[so]
}

// ParseSortOrder returns the SortOrder named by s.
func ParseSortOrder(s string) (SortOrder, error) {
	so, ok := sortOrderMap[s]
	if !ok {
		return UnknownOrder, errors.Errorf("sam: unknown sort order %q", s)
	}
	return so, nil
}

// DefaultVersion is the SAM format version written when a Header
// has no Version.
const DefaultVersion = "1.6"

// Header is a SAM header. Alignment writing does not depend on the
// header; it is only written when a Writer is created with one.
type Header struct {
	Version   string
	SortOrder SortOrder

	refs     []*Reference
	progs    []*Program
	seenRefs map[string]bool

	Comments []string
}

// NewHeader returns a new Header holding the given references.
func NewHeader(refs []*Reference) (*Header, error) {
	h := &Header{Version: DefaultVersion}
	for _, r := range refs {
		err := h.AddReference(r)
		if err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Refs returns the Header's list of References. The returned slice
// should not be altered.
func (h *Header) Refs() []*Reference { return h.refs }

// Progs returns the Header's list of Programs. The returned slice
// should not be altered.
func (h *Header) Progs() []*Program { return h.progs }

// AddReference adds r to the Header.
func (h *Header) AddReference(r *Reference) error {
	if h.seenRefs == nil {
		h.seenRefs = make(map[string]bool)
	}
	if h.seenRefs[r.Name()] {
		return errDupReference
	}
	h.seenRefs[r.Name()] = true
	h.refs = append(h.refs, r)
	return nil
}

// AddProgram adds p to the Header.
func (h *Header) AddProgram(p *Program) error {
	for _, hp := range h.progs {
		if hp.uid == p.uid {
			return errDupProgram
		}
	}
	h.progs = append(h.progs, p)
	return nil
}

// MarshalText implements encoding.TextMarshaler. Each header line is
// newline terminated.
func (h *Header) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	v := h.Version
	if v == "" {
		v = DefaultVersion
	}
	fmt.Fprintf(&buf, "@%s\t%s:%s\t%s:%s\n", headerTag, versionTag, v, sortOrderTag, h.SortOrder)
	for _, r := range h.refs {
		fmt.Fprintf(&buf, "%s\n", r)
	}
	for _, p := range h.progs {
		fmt.Fprintf(&buf, "%s\n", p)
	}
	for _, co := range h.Comments {
		if strings.ContainsAny(co, "\r\n") {
			return nil, errBadComment
		}
		fmt.Fprintf(&buf, "@%s\t%s\n", commentTag, co)
	}
	return buf.Bytes(), nil
}
