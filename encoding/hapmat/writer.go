// Copyright 2020 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hapmat

import (
	"context"
	"io"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/pbwt/pbwt"
)

// writeMembers writes haplotype indices as one comma-separated field, or "."
// if there are none.
func writeMembers(w *tsv.Writer, members []int) {
	if len(members) == 0 {
		w.WriteString(".")
		return
	}
	for _, h := range members {
		w.WriteCsvUint32(uint32(h))
	}
	w.EndCsv()
}

// WriteMatchesTSV writes one row per match: the end site, the number of
// members, and the allele-0 and allele-1 members.
func WriteMatchesTSV(w io.Writer, matches []pbwt.Match) (err error) {
	out := tsv.NewWriter(w)
	out.WriteString("END\tN\tALLELE0\tALLELE1")
	if err = out.EndLine(); err != nil {
		return
	}
	for _, m := range matches {
		out.WriteInt64(int64(m.End))
		out.WriteInt64(int64(m.Size()))
		writeMembers(out, m.HaploA)
		writeMembers(out, m.HaploB)
		if err = out.EndLine(); err != nil {
			return
		}
	}
	return out.Flush()
}

// WriteArraysTSV writes the prefix and divergence arrays, one row per prefix
// array position.
func WriteArraysTSV(w io.Writer, prefix, divergence []int) (err error) {
	out := tsv.NewWriter(w)
	out.WriteString("RANK\tHAPLO\tDIVERGENCE")
	if err = out.EndLine(); err != nil {
		return
	}
	for i, h := range prefix {
		out.WriteInt64(int64(i))
		out.WriteInt64(int64(h))
		out.WriteInt64(int64(divergence[i]))
		if err = out.EndLine(); err != nil {
			return
		}
	}
	return out.Flush()
}

// MatchesPath returns the path WriteResult writes matches to.
func MatchesPath(outPrefix string) string { return outPrefix + ".matches.tsv" }

// ArraysPath returns the path WriteResult writes the final arrays to.
func ArraysPath(outPrefix string) string { return outPrefix + ".arrays.tsv" }

// WriteResult writes r to MatchesPath(outPrefix) and ArraysPath(outPrefix).
func WriteResult(ctx context.Context, outPrefix string, r pbwt.Result) (err error) {
	var matchesOut, arraysOut file.File
	if matchesOut, err = file.Create(ctx, MatchesPath(outPrefix)); err != nil {
		return
	}
	defer file.CloseAndReport(ctx, matchesOut, &err)
	if err = WriteMatchesTSV(matchesOut.Writer(ctx), r.Matches); err != nil {
		return
	}
	if arraysOut, err = file.Create(ctx, ArraysPath(outPrefix)); err != nil {
		return
	}
	defer file.CloseAndReport(ctx, arraysOut, &err)
	return WriteArraysTSV(arraysOut.Writer(ctx), r.Prefix, r.Divergence)
}
