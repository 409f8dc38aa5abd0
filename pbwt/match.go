// Copyright 2020 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pbwt

// Match is a group of haplotypes that are contiguous in the prefix array at
// site End and pairwise identical on at least the minSize sites before End.
// HaploA holds the members carrying allele 0 at End, HaploB those carrying
// allele 1, each in prefix-array order.  Either side may be empty.
type Match struct {
	HaploA []int
	HaploB []int
	End    int
}

// Size returns the number of haplotypes in the match.
func (m Match) Size() int {
	return len(m.HaploA) + len(m.HaploB)
}

// Members returns HaploA followed by HaploB in a new slice.
func (m Match) Members() []int {
	members := make([]int, 0, m.Size())
	members = append(members, m.HaploA...)
	return append(members, m.HaploB...)
}

// matchAccumulator collects the run of a_k entries whose divergence is at
// least minSize sites old.
type matchAccumulator struct {
	k       int
	members [2][]int
	matches []Match
}

func (acc *matchAccumulator) add(h int, v uint8) {
	acc.members[v] = append(acc.members[v], h)
}

// flush closes the current run.  A run of one haplotype matches nothing and
// is dropped.
func (acc *matchAccumulator) flush() {
	if len(acc.members[0])+len(acc.members[1]) >= 2 {
		acc.matches = append(acc.matches, Match{
			HaploA: append([]int{}, acc.members[0]...),
			HaploB: append([]int{}, acc.members[1]...),
			End:    acc.k,
		})
	}
	acc.members[0] = acc.members[0][:0]
	acc.members[1] = acc.members[1][:0]
}

// FindLongMatches performs the same transition as Step and also returns, in
// prefix-array order, every maximal run of a_k whose members are identical on
// at least the minSize sites before k.  Each run becomes a Match with End = k,
// split by allele at k.  Runs whose members all carry the same allele at k are
// reported too; callers interested only in runs that split can filter on
// len(HaploA) > 0 && len(HaploB) > 0.  A run of a single haplotype matches
// nothing and is never reported.
func FindLongMatches(prefix, divergence []int, column []uint8, k, minSize int) (matches []Match, nextPrefix, nextDivergence []int, err error) {
	if minSize <= 0 {
		return nil, nil, nil, invalidf("minimum match length must be positive, got %d", minSize)
	}
	if err = checkStep(prefix, divergence, column, k); err != nil {
		return nil, nil, nil, err
	}
	p := newPartition(k, len(prefix))
	acc := matchAccumulator{k: k}
	for i, h := range prefix {
		start := divergence[i]
		if start+minSize > k {
			acc.flush()
		}
		v := column[h]
		p.add(h, start, v)
		acc.add(h, v)
	}
	acc.flush()
	nextPrefix, nextDivergence = p.finish()
	return acc.matches, nextPrefix, nextDivergence, nil
}
