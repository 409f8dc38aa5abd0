// Copyright 2020 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*
bio-pbwt builds the positional Burrows-Wheeler transform of a haplotype matrix
and reports long matches: groups of haplotypes identical over at least
-min-size consecutive sites.

The input holds one site per line (see package encoding/hapmat); use
-transpose when each line is a haplotype instead.  Two files are written:

  <out>.matches.tsv  one row per match: END, N, ALLELE0, ALLELE1
  <out>.arrays.tsv   the prefix and divergence arrays at the target site

Sample usage:
bio-pbwt \
    --min-size 20 \
    --out chr20 \
    chr20.haps.gz
*/
package main
