// Copyright 2020 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pbwt

import (
	"encoding/binary"

	"blainsmith.com/go/seahash"
)

// Checksum returns a fingerprint of r.  Two results have the same checksum
// iff (modulo hash collisions) they have identical arrays and identical
// matches in the same order.
func Checksum(r Result) uint64 {
	h := seahash.New()
	var buf [8]byte
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	putInts := func(vals []int) {
		putInt(len(vals))
		for _, v := range vals {
			putInt(v)
		}
	}
	putInts(r.Prefix)
	putInts(r.Divergence)
	putInt(len(r.Matches))
	for _, m := range r.Matches {
		putInt(m.End)
		putInts(m.HaploA)
		putInts(m.HaploB)
	}
	return h.Sum64()
}
