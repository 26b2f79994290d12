// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gplan.yaml")
	doc := `
log_level: debug
timeout: 1m
bench:
  jobs: 4
  metrics_addr: ":9090"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	c, e := LoadConfig(path)
	require.NoError(t, e)
	want := DefaultConfig()
	want.LogLevel = "debug"
	want.Timeout = time.Minute
	want.Bench.Jobs = 4
	want.Bench.MetricsAddr = ":9090"
	if d := cmp.Diff(want, c); d != "" {
		t.Errorf("config (-want +got):\n%s", d)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	_, e := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, e, os.ErrNotExist)

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bench:\n  workers: 3\n"), 0o644))
	_, e = LoadConfig(path)
	assert.Error(t, e)
}
