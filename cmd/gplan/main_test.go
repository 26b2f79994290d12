// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errw bytes.Buffer
	code := run(context.Background(), args, &out, &errw)
	return code, out.String(), errw.String()
}

func TestSolveGen(t *testing.T) {
	code, out, _ := runCLI(t, "solve", "--gen", "cake", "--stats")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "s FOUND\n0: {eat()}\n1: {bake()}\n")
	assert.Contains(t, out, "c levels      2\n")
}

func TestSolveExitCode(t *testing.T) {
	code, out, _ := runCLI(t, "solve", "--gen", "cake", "--exit-code")
	assert.Equal(t, 10, code)
	assert.Contains(t, out, "s FOUND")

	code, out, _ = runCLI(t, "solve", "--gen", "blocks-cycle", "--exit-code")
	assert.Equal(t, 20, code)
	assert.Contains(t, out, "s UNSOLVABLE")
}

func TestSolveMaxLevels(t *testing.T) {
	code, out, _ := runCLI(t, "solve", "--gen", "blocks3", "--max-levels", "1", "--exit-code")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "s UNKNOWN")
}

func TestSolveErrors(t *testing.T) {
	code, _, errw := runCLI(t, "solve", "--gen", "nope")
	assert.Equal(t, 1, code)
	assert.Contains(t, errw, "unknown generator")

	code, _, errw = runCLI(t, "solve", "--gen", "cake", "x.yaml")
	assert.Equal(t, 1, code)
	assert.Contains(t, errw, "not both")

	code, _, _ = runCLI(t, "solve", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)
}

func TestGenSolveFile(t *testing.T) {
	dir := t.TempDir()
	code, out, _ := runCLI(t, "gen", "-o", dir, "cake", "adder")
	require.Equal(t, 0, code)
	assert.Contains(t, out, filepath.Join(dir, "cake.yaml"))

	code, out, _ = runCLI(t, "solve", "--check", filepath.Join(dir, "adder.yaml"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "s FOUND")

	code, out, _ = runCLI(t, "gen", "--gz", "--blocks", "4", "-n", "2", "-o", dir)
	require.Equal(t, 0, code)
	for _, f := range []string{"rblocks4-0.yaml.gz", "rblocks4-1.yaml.gz"} {
		assert.Contains(t, out, f)
		assert.FileExists(t, filepath.Join(dir, f))
	}
	code, out, _ = runCLI(t, "solve", filepath.Join(dir, "rblocks4-0.yaml.gz"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "s FOUND")
}

func TestGenList(t *testing.T) {
	code, out, _ := runCLI(t, "gen")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "hanoi\n")
	assert.Contains(t, out, "missionaries\n")
}

func TestDump(t *testing.T) {
	code, out, _ := runCLI(t, "dump", "--gen", "cake")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "s FOUND")
	assert.Contains(t, out, "Level 2")
}

func TestBench(t *testing.T) {
	dir := t.TempDir()
	code, _, _ := runCLI(t, "gen", "-o", dir, "cake", "adder", "blocks-cycle")
	require.Equal(t, 0, code)

	res := filepath.Join(t.TempDir(), "run.yaml")
	code, out, errw := runCLI(t, "bench", "run", "--jobs", "2", "--name", "a", "-o", res, dir)
	require.Equal(t, 0, code, errw)
	assert.Contains(t, out, "a: 3 insts, 2 found, 1 unsolvable, 0 unknown, 0 errors")
	assert.FileExists(t, res)

	code, out, _ = runCLI(t, "bench", "cmp", res, res)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "a: 3 insts")

	code, _, _ = runCLI(t, "bench", "run", t.TempDir())
	assert.Equal(t, 1, code)
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gplan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_levels: 1\n"), 0o644))
	code, out, _ := runCLI(t, "--config", path, "solve", "--gen", "blocks3")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "s UNKNOWN")

	// flags override the file
	code, out, _ = runCLI(t, "--config", path, "solve", "--gen", "cake", "--max-levels", "0")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "s FOUND")

	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0o644))
	code, _, errw := runCLI(t, "--config", path, "gen")
	assert.Equal(t, 1, code)
	assert.Contains(t, errw, "log_level")
}

func TestTrace(t *testing.T) {
	code, _, errw := runCLI(t, "--trace", "solve", "--gen", "cake")
	assert.Equal(t, 0, code)
	assert.Contains(t, errw, `"pg.Extend"`)
}
