// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sam_test

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/biogo/alnsam/sam"
)

func Example() {
	read := sam.NewRead("read1", "ACGT", "!!##")

	var buf bytes.Buffer

	// A raw alignment on the reverse strand. The position is 0-based
	// and the quality string is written reversed.
	err := sam.WriteAlignment(&buf, &sam.Alignment{
		Read:    read,
		Score:   100,
		Score2:  50,
		RefName: "chr1",
		RefPos:  99,
		Reverse: true,
		Cigar:   "4M",
		MD:      "4",
	})
	if err != nil {
		log.Fatal(err)
	}

	// The same alignment as a record. The position is written as held
	// and the quality string is not reordered.
	r, err := sam.NewRecord(read)
	if err != nil {
		log.Fatal(err)
	}
	r.Flags = sam.Reverse
	r.RName = "chr1"
	r.Pos = 100
	r.MapQ = sam.MapQ(100, 50)
	r.Cigar = "4M"
	r.AS = 100
	r.ZS = 50
	r.MD = "4"
	err = sam.Write(&buf, r)
	if err != nil {
		log.Fatal(err)
	}

	// An unaligned read.
	err = sam.WriteAlignment(&buf, &sam.Alignment{Read: sam.NewRead("read2", "TTTT", "")})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(strings.Replace(buf.String(), "\t", " ", -1))

	// Output:
	// read1 16 chr1 100 3 4M * 1 0 ACGT ##!! AS:i:100 NM:i:0 ZS:i:50 MD:Z:4
	// read1 16 chr1 100 3 4M * 0 0 ACGT !!## AS:i:100 NM:i:0 ZS:i:50 MD:Z:4
	// read2 4 * 0 255 * * 0 0 * *
}
