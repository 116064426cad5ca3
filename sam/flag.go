// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sam

// A Flags represents a SAM record's alignment FLAG field. Flag bits are
// independent and may be combined freely; no combination is rejected.
type Flags uint16

const (
	Paired        Flags = 1 << iota // The template has multiple segments in sequencing.
	ProperPair                      // Each segment is properly aligned according to the aligner.
	Unmapped                        // The segment is unmapped.
	MateUnmapped                    // The next segment in the template is unmapped.
	Reverse                         // SEQ is reverse complemented.
	MateReverse                     // SEQ of the next segment in the template is reverse complemented.
	Read1                           // The first segment in the template.
	Read2                           // The last segment in the template.
	Secondary                       // Secondary alignment.
	QCFail                          // Not passing platform/vendor quality controls.
	Duplicate                       // PCR or optical duplicate.
	Supplementary                   // Supplementary alignment.
)

// Has returns whether all the bits in mask are set in f.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// IsMapped returns whether the Unmapped bit is clear.
func (f Flags) IsMapped() bool { return f&Unmapped == 0 }

// String representation of alignment flags:
//  0x001 - p - Paired
//  0x002 - P - ProperPair
//  0x004 - u - Unmapped
//  0x008 - U - MateUnmapped
//  0x010 - r - Reverse
//  0x020 - R - MateReverse
//  0x040 - 1 - Read1
//  0x080 - 2 - Read2
//  0x100 - s - Secondary
//  0x200 - f - QCFail
//  0x400 - d - Duplicate
//  0x800 - S - Supplementary
//
// Unlike the SAM FLAG field, all bits are shown as set whether or not
// Paired is set. Flag bits are represented high order to the right.
func (f Flags) String() string {
	const flags = "pPuUrR12sfdS"

	b := make([]byte, len(flags))
	for i, c := range flags {
		if f&(1<<uint(i)) != 0 {
			b[i] = byte(c)
		} else {
			b[i] = '-'
		}
	}

	return string(b)
}
