// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
alnsam converts precomputed single-end alignment results to SAM.

Usage: alnsam [flags] <results.tsv> <out.sam>

The input is a tab separated table with a header row naming the columns

  QNAME SEQ QUAL SCORE SCORE2 MINSCORE RNAME POS STRAND CIGAR MD NM RNEXT PNEXT TLEN

in any order. POS and PNEXT are 0-based, STRAND is "+" or "-" and a QUAL
of "*" marks a read without quality data. A SCORE of zero marks an
unaligned read. Fields holding a '"' character must be quoted as in CSV.

Either path may be "-" for stdin or stdout. The output is compressed
according to -compress; with the default, "auto", a ".gz" output is
written as BGZF and a ".xz" output as xz.

A header is written naming the program. Reference sequence lines are
added with -sq, for example -sq chr1:248956422,chr2:242193529.
*/
package main
