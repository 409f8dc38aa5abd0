// Copyright 2020 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pbwt

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// invalidf returns an error of kind errors.Invalid.  Every input problem
// detected by this package is reported this way.
func invalidf(format string, args ...interface{}) error {
	return errors.E(errors.Invalid, fmt.Sprintf("pbwt: "+format, args...))
}

// IsInvalidInput reports whether err was caused by invalid input: a
// non-binary allele, mismatched dimensions, an empty matrix, an out-of-range
// target site, or a nonpositive minimum match length.
func IsInvalidInput(err error) bool {
	return err != nil && errors.Is(errors.Invalid, err)
}

// Matrix is an immutable sites x haplotypes matrix of biallelic markers.
type Matrix struct {
	nHaplo, nSites int
	alleles        []uint8 // site-major nSites*nHaplo array.
}

// NewMatrix wraps alleles, a site-major array of length nHaplo*nSites, in a
// Matrix.  The allele for haplotype h at site k is alleles[k*nHaplo+h], and it
// must be 0 or 1.  alleles must not be modified afterwards.
func NewMatrix(alleles []uint8, nHaplo, nSites int) (*Matrix, error) {
	if nHaplo <= 0 {
		return nil, invalidf("haplotype count must be positive, got %d", nHaplo)
	}
	if nSites <= 0 {
		return nil, invalidf("site count must be positive, got %d", nSites)
	}
	// Compare by division first; nHaplo*nSites may overflow.
	if nSites > len(alleles)/nHaplo || len(alleles) != nHaplo*nSites {
		return nil, invalidf("matrix has %d alleles, expected %d haplotypes x %d sites",
			len(alleles), nHaplo, nSites)
	}
	for i, v := range alleles {
		if v > 1 {
			return nil, invalidf("non-binary allele %d at site %d, haplotype %d", v, i/nHaplo, i%nHaplo)
		}
	}
	return &Matrix{nHaplo: nHaplo, nSites: nSites, alleles: alleles}, nil
}

// NHaplo returns the number of haplotypes.
func (m *Matrix) NHaplo() int { return m.nHaplo }

// NSites returns the number of sites.
func (m *Matrix) NSites() int { return m.nSites }

// At returns the allele of haplotype h at site k.
func (m *Matrix) At(k, h int) uint8 {
	return m.alleles[k*m.nHaplo+h]
}

// Column returns the alleles of all haplotypes at site k, indexed by
// haplotype.  The result shares storage with the matrix and must not be
// modified.
func (m *Matrix) Column(k int) []uint8 {
	return m.alleles[k*m.nHaplo : (k+1)*m.nHaplo : (k+1)*m.nHaplo]
}

// String returns the matrix with one site per line.
func (m *Matrix) String() string {
	buf := make([]byte, 0, m.nSites*(m.nHaplo+1))
	for k := 0; k < m.nSites; k++ {
		for _, v := range m.Column(k) {
			buf = append(buf, '0'+v)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
