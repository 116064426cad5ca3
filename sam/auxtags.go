// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sam

import "strconv"

// A Tag represents an optional field tag label.
type Tag [2]byte

// Optional field tags written for mapped alignments.
var (
	ScoreTag       = Tag{'A', 'S'} // Alignment score.
	EditDistTag    = Tag{'N', 'M'} // Edit distance to the reference.
	SecondScoreTag = Tag{'Z', 'S'} // Second best alignment score.
	MismatchTag    = Tag{'M', 'D'} // Mismatched and deleted reference bases.
)

// Header line and field tags.
var (
	headerTag    = Tag{'H', 'D'}
	versionTag   = Tag{'V', 'N'}
	sortOrderTag = Tag{'S', 'O'}
	refDictTag   = Tag{'S', 'Q'}
	refNameTag   = Tag{'S', 'N'}
	refLengthTag = Tag{'L', 'N'}
	programTag   = Tag{'P', 'G'}
	idTag        = Tag{'I', 'D'}
	progNameTag  = Tag{'P', 'N'}
	commandTag   = Tag{'C', 'L'}
	prevProgTag  = Tag{'P', 'P'}
	commentTag   = Tag{'C', 'O'}
)

// NewTag returns a Tag from the tag string. It panics is len(tag) != 2.
func NewTag(tag string) Tag {
	var t Tag
	if copy(t[:], tag) != 2 {
		panic("sam: illegal tag length")
	}
	return t
}

// String returns a string representation of a Tag.
func (t Tag) String() string { return string(t[:]) }

// appendIntAux appends a tab and the "TG:i:value" optional field to dst.
func appendIntAux(dst []byte, t Tag, v int64) []byte {
	dst = append(dst, '\t', t[0], t[1], ':', 'i', ':')
	return strconv.AppendInt(dst, v, 10)
}

// appendStringAux appends a tab and the "TG:Z:value" optional field to dst.
func appendStringAux(dst []byte, t Tag, v string) []byte {
	dst = append(dst, '\t', t[0], t[1], ':', 'Z', ':')
	return append(dst, v...)
}

// appendAlignmentTags appends the AS, NM, ZS and MD fields in that order.
// ZS is only written when zs is positive since zero indicates that no
// second best score was computed.
func appendAlignmentTags(dst []byte, as, nm, zs int64, md string) []byte {
	dst = appendIntAux(dst, ScoreTag, as)
	dst = appendIntAux(dst, EditDistTag, nm)
	if zs > 0 {
		dst = appendIntAux(dst, SecondScoreTag, zs)
	}
	return appendStringAux(dst, MismatchTag, md)
}
