// Copyright 2020 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pbwt implements the positional Burrows-Wheeler transform (Durbin
// 2014) over a matrix of biallelic haplotypes.
//
// The transform is built one site at a time.  At site k, the positional
// prefix array a_k orders the haplotypes by their reversed allele history on
// sites [0, k), so haplotypes sharing the longest recent history are
// adjacent.  The divergence array d_k records, for each a_k entry, the first
// site of the run it shares with its predecessor.
//
// Step advances (a_k, d_k) to (a_{k+1}, d_{k+1}).  FindLongMatches performs
// the same transition while reporting groups of haplotypes that have been
// identical for at least minSize sites.  BuildPrefixArrays and
// FindAllLongMatches sweep a whole Matrix.
package pbwt
