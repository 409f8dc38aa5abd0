// Copyright 2020 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/pbwt/encoding/hapmat"
	"github.com/grailbio/pbwt/pbwt"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

const eightBySix = `0 1 1 0 0 1 1 0
1 1 1 1 0 0 1 1
0 0 1 1 0 0 0 0
1 0 1 1 0 0 0 1
0 0 1 1 0 1 0 1
1 1 1 0 0 0 1 0
`

func TestRun(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "bio-pbwt")
	defer cleanup()
	inPath := filepath.Join(tempDir, "in.txt")
	assert.NoError(t, ioutil.WriteFile(inPath, []byte(eightBySix), 0644))

	opts := DefaultOpts
	opts.OutPrefix = filepath.Join(tempDir, "out")
	opts.Checksum = true
	r, err := run(ctx, inPath, opts)
	assert.NoError(t, err)
	expect.EQ(t, r.Prefix, []int{4, 1, 6, 0, 5, 7, 3, 2})
	expect.EQ(t, r.Divergence, []int{5, 2, 0, 4, 5, 4, 3, 1})
	expect.EQ(t, len(r.Matches), 6)

	got, err := ioutil.ReadFile(hapmat.MatchesPath(opts.OutPrefix))
	assert.NoError(t, err)
	expect.EQ(t, string(got), "END\tN\tALLELE0\tALLELE1\n"+
		"3\t2\t.\t0,7\n"+
		"3\t2\t1,6\t.\n"+
		"4\t2\t4\t5\n"+
		"4\t2\t1,6\t.\n"+
		"4\t2\t0\t7\n"+
		"4\t2\t.\t3,2\n")
	_, err = os.Stat(hapmat.ArraysPath(opts.OutPrefix))
	assert.NoError(t, err)

	opts.KSite = 1
	r, err = run(ctx, inPath, opts)
	assert.NoError(t, err)
	expect.EQ(t, r.Prefix, []int{0, 1, 2, 3, 4, 5, 6, 7})
	expect.EQ(t, len(r.Matches), 0)
}

func TestRunInvalid(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "bio-pbwt")
	defer cleanup()
	inPath := filepath.Join(tempDir, "in.txt")
	assert.NoError(t, ioutil.WriteFile(inPath, []byte(eightBySix), 0644))

	opts := DefaultOpts
	opts.OutPrefix = filepath.Join(tempDir, "out")
	opts.MinSize = 0
	_, err := run(ctx, inPath, opts)
	expect.True(t, pbwt.IsInvalidInput(err), "%v", err)

	opts.MinSize = 3
	opts.KSite = 7
	_, err = run(ctx, inPath, opts)
	expect.True(t, pbwt.IsInvalidInput(err), "%v", err)
}

func TestMain(m *testing.M) {
	shutdown := grail.Init()
	defer shutdown()
	os.Exit(m.Run())
}
