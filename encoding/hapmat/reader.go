// Copyright 2020 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hapmat

import (
	"bufio"
	"context"
	"io"

	gerrors "github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/grailbio/pbwt/pbwt"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// maxLineLen bounds the length of a single matrix row.  Rows of whole
// chromosomes can be long, and bufio.Scanner does not grow past its limit.
const maxLineLen = 1 << 30

// Opts controls matrix parsing.
type Opts struct {
	// Transpose indicates that each line holds one haplotype rather than one
	// site.
	Transpose bool
}

// DefaultOpts reads one site per line.
var DefaultOpts = Opts{}

// parseRow appends the alleles on line to dst.
func parseRow(dst []uint8, line []byte, lineNum int) ([]uint8, error) {
	for col, c := range line {
		switch c {
		case '0', '1':
			dst = append(dst, c-'0')
		case ' ', '\t', ',', '\r':
		default:
			return dst, errors.Errorf("line %d, column %d: invalid allele %q", lineNum, col+1, c)
		}
	}
	return dst, nil
}

// ReadMatrix parses a haplotype matrix from r.
func ReadMatrix(r io.Reader, opts Opts) (*pbwt.Matrix, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineLen)
	var (
		alleles []uint8
		rowLen  = -1
		nRows   int
		lineNum int
		err     error
	)
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		prevLen := len(alleles)
		if alleles, err = parseRow(alleles, line, lineNum); err != nil {
			return nil, err
		}
		n := len(alleles) - prevLen
		if n == 0 {
			continue
		}
		if rowLen < 0 {
			rowLen = n
		} else if n != rowLen {
			return nil, errors.Errorf("line %d: %d alleles, previous rows have %d", lineNum, n, rowLen)
		}
		nRows++
	}
	if err = scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "couldn't read haplotype matrix")
	}
	if nRows == 0 {
		return nil, errors.Errorf("empty haplotype matrix")
	}
	if !opts.Transpose {
		log.Debug.Printf("hapmat: read %d sites x %d haplotypes", nRows, rowLen)
		return pbwt.NewMatrix(alleles, rowLen, nRows)
	}
	nHaplo, nSites := nRows, rowLen
	siteMajor := make([]uint8, len(alleles))
	for h := 0; h < nHaplo; h++ {
		for k := 0; k < nSites; k++ {
			siteMajor[k*nHaplo+h] = alleles[h*nSites+k]
		}
	}
	log.Debug.Printf("hapmat: read %d haplotypes x %d sites", nHaplo, nSites)
	return pbwt.NewMatrix(siteMajor, nHaplo, nSites)
}

// ReadMatrixFromPath is a wrapper for ReadMatrix that takes a path instead of
// an io.Reader.  Gzip-compressed files are decompressed.
func ReadMatrixFromPath(ctx context.Context, path string, opts Opts) (m *pbwt.Matrix, err error) {
	var infile file.File
	if infile, err = file.Open(ctx, path); err != nil {
		return nil, gerrors.E(err, path)
	}
	defer func() {
		if cerr := infile.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(infile.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		var gz *gzip.Reader
		if gz, err = gzip.NewReader(reader); err != nil {
			return nil, gerrors.E(err, path)
		}
		defer gz.Close() // nolint: errcheck
		reader = gz
	}
	if m, err = ReadMatrix(reader, opts); err != nil {
		return nil, gerrors.E(err, path)
	}
	return m, nil
}
