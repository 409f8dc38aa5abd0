// Copyright 2020 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pbwt

import (
	"github.com/grailbio/base/log"
)

// Result is the output of a full sweep.
type Result struct {
	// Matches holds every match in emission order: by End, then by
	// prefix-array position.
	Matches []Match
	// Prefix and Divergence are the arrays at the target site.
	Prefix     []int
	Divergence []int
}

func checkTargetSite(m *Matrix, kSite int) error {
	if kSite < 1 || kSite > m.NSites() {
		return invalidf("target site %d outside [1, %d]", kSite, m.NSites())
	}
	return nil
}

// BuildPrefixArrays returns a_{kSite-1} and d_{kSite-1}, obtained by applying
// Step to sites 0 .. kSite-2.  kSite must be in [1, m.NSites()].
func BuildPrefixArrays(m *Matrix, kSite int) (prefix, divergence []int, err error) {
	if err = checkTargetSite(m, kSite); err != nil {
		return nil, nil, err
	}
	if prefix, divergence, err = Init(m.NHaplo()); err != nil {
		return nil, nil, err
	}
	for k := 0; k < kSite-1; k++ {
		if prefix, divergence, err = Step(prefix, divergence, m.Column(k), k); err != nil {
			return nil, nil, err
		}
	}
	return prefix, divergence, nil
}

// FindAllLongMatches applies FindLongMatches to sites 0 .. kSite-2 and
// collects the matches along with the final prefix and divergence arrays.
// kSite must be in [1, m.NSites()] and minSize must be positive.
func FindAllLongMatches(m *Matrix, kSite, minSize int) (Result, error) {
	if err := checkTargetSite(m, kSite); err != nil {
		return Result{}, err
	}
	if minSize <= 0 {
		return Result{}, invalidf("minimum match length must be positive, got %d", minSize)
	}
	prefix, divergence, err := Init(m.NHaplo())
	if err != nil {
		return Result{}, err
	}
	var all []Match
	for k := 0; k < kSite-1; k++ {
		var matches []Match
		if matches, prefix, divergence, err = FindLongMatches(prefix, divergence, m.Column(k), k, minSize); err != nil {
			return Result{}, err
		}
		all = append(all, matches...)
	}
	log.Debug.Printf("pbwt: %d haplotypes, %d transitions, min size %d: %d matches",
		m.NHaplo(), kSite-1, minSize, len(all))
	return Result{Matches: all, Prefix: prefix, Divergence: divergence}, nil
}

// BuildAll sweeps every site of the site-major allele matrix, as
// FindAllLongMatches(m, nSites, minSize) with m = NewMatrix(alleles, nHaplo,
// nSites).
func BuildAll(alleles []uint8, nHaplo, nSites, minSize int) (Result, error) {
	m, err := NewMatrix(alleles, nHaplo, nSites)
	if err != nil {
		return Result{}, err
	}
	return FindAllLongMatches(m, nSites, minSize)
}
