// Copyright 2020 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

// See doc.go for documentation

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/pbwt/encoding/hapmat"
	"github.com/grailbio/pbwt/pbwt"
)

// Opts holds the command-line options.
type Opts struct {
	// MinSize is the minimum number of sites a match must span.
	MinSize int
	// KSite is the number of sites to sweep; 0 means all of them.
	KSite int
	// OutPrefix is the output path prefix.
	OutPrefix string
	// Checksum causes a fingerprint of the result to be logged.
	Checksum bool
	// Transpose indicates that input rows are haplotypes.
	Transpose bool
}

// DefaultOpts are the flag defaults.
var DefaultOpts = Opts{
	MinSize:   3,
	OutPrefix: "bio-pbwt",
}

var (
	minSize   = flag.Int("min-size", DefaultOpts.MinSize, "Minimum number of sites a match must span")
	kSite     = flag.Int("k-site", DefaultOpts.KSite, "Number of sites to sweep; 0 = all sites")
	outPrefix = flag.String("out", DefaultOpts.OutPrefix, "Output path prefix; <out>.matches.tsv and <out>.arrays.tsv are written")
	checksum  = flag.Bool("checksum", DefaultOpts.Checksum, "Log a checksum of the arrays and matches")
	transpose = flag.Bool("transpose", DefaultOpts.Transpose, "Input rows are haplotypes instead of sites")
)

// run reads the matrix at path, sweeps it, and writes the result.  It
// returns the result for callers that want to inspect it.
func run(ctx context.Context, path string, opts Opts) (pbwt.Result, error) {
	m, err := hapmat.ReadMatrixFromPath(ctx, path, hapmat.Opts{Transpose: opts.Transpose})
	if err != nil {
		return pbwt.Result{}, err
	}
	target := opts.KSite
	if target == 0 {
		target = m.NSites()
	}
	r, err := pbwt.FindAllLongMatches(m, target, opts.MinSize)
	if err != nil {
		return pbwt.Result{}, err
	}
	if err = hapmat.WriteResult(ctx, opts.OutPrefix, r); err != nil {
		return pbwt.Result{}, err
	}
	log.Printf("%s: %d haplotypes, %d sites swept, %d matches written to %s",
		path, m.NHaplo(), target, len(r.Matches), hapmat.MatchesPath(opts.OutPrefix))
	if opts.Checksum {
		log.Printf("checksum: %016x", pbwt.Checksum(r))
	}
	return r, nil
}

func bioPBWTUsage() {
	fmt.Printf("Usage: %s [OPTIONS] matrixpath\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = bioPBWTUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 1 {
		log.Fatalf("Expected exactly one positional argument (matrixpath); please check flag syntax: '%s'", strings.Join(flag.Args(), " "))
	}
	opts := Opts{
		MinSize:   *minSize,
		KSite:     *kSite,
		OutPrefix: *outPrefix,
		Checksum:  *checksum,
		Transpose: *transpose,
	}
	if _, err := run(vcontext.Background(), flag.Arg(0), opts); err != nil {
		log.Panicf("%v", err)
	}
	log.Debug.Printf("exiting")
}
