// Copyright 2020 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*
Package hapmat reads haplotype matrices from text and writes PBWT results as
TSV.

A matrix file holds one site per line, in site order.  Each line lists the
alleles of every haplotype at that site as '0' or '1' characters; they may be
separated by spaces, tabs or commas, or written as one contiguous run.  Empty
lines and lines starting with '#' are ignored.  Every site must list the same
number of haplotypes.  With Opts.Transpose, each line instead holds one
haplotype across all sites.

	# 4 haplotypes, 3 sites
	1,1,0,1
	0 1 1 1
	1111

Files whose names end in .gz are decompressed.
*/
package hapmat
