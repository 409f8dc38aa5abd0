// Copyright 2020 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pbwt

// Sentinel returns the divergence value meaning "no shared run" during the
// transition at site k.  It exceeds every legitimate divergence start, which
// lies in [0, k].  0 is a legitimate start (identical since the first site),
// so it cannot serve as the sentinel.
func Sentinel(k int) int {
	return k + 1
}

// Init returns the prefix and divergence arrays for site 0: the identity
// permutation and all zeros.
func Init(nHaplo int) (prefix, divergence []int, err error) {
	if nHaplo <= 0 {
		return nil, nil, invalidf("haplotype count must be positive, got %d", nHaplo)
	}
	prefix = make([]int, nHaplo)
	for i := range prefix {
		prefix[i] = i
	}
	return prefix, make([]int, nHaplo), nil
}

// Step computes (a_{k+1}, d_{k+1}) from (a_k, d_k) and the alleles at site k.
// column is indexed by haplotype.  The inputs are not modified, and the
// outputs are freshly allocated.
//
// Haplotypes carrying allele 0 at site k precede those carrying allele 1, and
// each group keeps its relative order from a_k.
func Step(prefix, divergence []int, column []uint8, k int) (nextPrefix, nextDivergence []int, err error) {
	if err = checkStep(prefix, divergence, column, k); err != nil {
		return nil, nil, err
	}
	p := newPartition(k, len(prefix))
	for i, h := range prefix {
		p.add(h, divergence[i], column[h])
	}
	nextPrefix, nextDivergence = p.finish()
	return nextPrefix, nextDivergence, nil
}

// checkStep validates the arguments of a single transition.  It runs to
// completion before any output is produced.
func checkStep(prefix, divergence []int, column []uint8, k int) error {
	n := len(prefix)
	if n == 0 {
		return invalidf("empty prefix array")
	}
	if len(divergence) != n {
		return invalidf("divergence array has length %d, prefix array has length %d", len(divergence), n)
	}
	if len(column) != n {
		return invalidf("site %d has %d alleles, expected %d", k, len(column), n)
	}
	if k < 0 {
		return invalidf("negative site index %d", k)
	}
	for h, v := range column {
		if v > 1 {
			return invalidf("non-binary allele %d at site %d, haplotype %d", v, k, h)
		}
	}
	seen := make([]bool, n)
	for i, h := range prefix {
		if h < 0 || h >= n {
			return invalidf("prefix array entry %d is %d, outside [0, %d)", i, h, n)
		}
		if seen[h] {
			return invalidf("prefix array entry %d repeats haplotype %d", i, h)
		}
		seen[h] = true
	}
	return nil
}

// partition accumulates the stable two-way split of a_k by allele at site k,
// along with the divergence values of the split.  It lives for one
// transition.
type partition struct {
	// start[v] is the start of the run shared by the next allele-v haplotype
	// and the previous one.  Sentinel(k) means there is no previous one yet.
	start      [2]int
	prefix     [2][]int
	divergence [2][]int
}

func newPartition(k, n int) *partition {
	p := &partition{start: [2]int{Sentinel(k), Sentinel(k)}}
	for v := range p.prefix {
		p.prefix[v] = make([]int, 0, n)
		p.divergence[v] = make([]int, 0, n)
	}
	return p
}

// add appends haplotype h, whose run with its predecessor in a_k begins at
// start, to the group for allele v.
func (p *partition) add(h, start int, v uint8) {
	// Both trackers see every divergence value, so a run that passes through
	// haplotypes of the other allele is bounded correctly.
	if start > p.start[0] {
		p.start[0] = start
	}
	if start > p.start[1] {
		p.start[1] = start
	}
	p.prefix[v] = append(p.prefix[v], h)
	p.divergence[v] = append(p.divergence[v], p.start[v])
	p.start[v] = 0
}

// finish concatenates the allele-0 and allele-1 groups.
func (p *partition) finish() (prefix, divergence []int) {
	n := len(p.prefix[0]) + len(p.prefix[1])
	prefix = make([]int, 0, n)
	prefix = append(prefix, p.prefix[0]...)
	prefix = append(prefix, p.prefix[1]...)
	divergence = make([]int, 0, n)
	divergence = append(divergence, p.divergence[0]...)
	divergence = append(divergence, p.divergence[1]...)
	return prefix, divergence
}
