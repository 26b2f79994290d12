// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/go-air/gplan/gen"
	"github.com/go-air/gplan/pdef"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// suiteDir writes the named generated problems and a malformed file to a
// temporary directory.
func suiteDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		g, ok := gen.Lookup(n)
		require.True(t, ok, n)
		require.NoError(t, pdef.WriteFile(filepath.Join(dir, n+".yaml"), g()))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("name: [\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me\n"), 0o644))
	return dir
}

func TestMatchSelect(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	for _, p := range []string{"a.yaml", "b.yaml", "c.txt", "sub/d.yaml"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, p), nil, 0o644))
	}
	all, e := MatchSelect("*.yaml", 0, dir)
	require.NoError(t, e)
	want := []string{
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "b.yaml"),
		filepath.Join(dir, "sub", "d.yaml")}
	assert.Equal(t, want, all)

	some, e := MatchSelect("*.yaml", 2, dir)
	require.NoError(t, e)
	require.Len(t, some, 2)
	assert.Subset(t, want, some)

	every, e := Select(0, dir)
	require.NoError(t, e)
	assert.Len(t, every, 4)

	_, e = MatchSelect("*", 0, filepath.Join(dir, "missing"))
	assert.Error(t, e)
}

func TestOpenSuiteEmpty(t *testing.T) {
	_, e := OpenSuite("*.yaml", 0, t.TempDir())
	assert.ErrorIs(t, e, ErrEmpty)
}

func TestRun(t *testing.T) {
	dir := suiteDir(t, "cake", "adder", "blocks-cycle")
	s, e := OpenSuite("*.yaml", 0, dir)
	require.NoError(t, e)
	require.Equal(t, 4, s.Len())

	m := NewMetrics()
	r := NewRun(s, Config{Name: "t", Jobs: 2, InstTimeout: time.Minute, Metrics: m})
	require.NoError(t, r.Do(context.Background()))

	byName := map[string]*InstRun{}
	for _, ir := range r.InstRuns {
		byName[filepath.Base(ir.Path)] = ir
	}
	cake := byName["cake.yaml"]
	assert.Equal(t, 1, cake.Result)
	assert.Equal(t, "cake", cake.Name)
	assert.Equal(t, 2, cake.Steps)
	assert.Equal(t, 2, cake.Actions)
	assert.Equal(t, 2, cake.Levels)
	assert.Equal(t, 1, byName["adder.yaml"].Result)
	assert.Equal(t, -1, byName["blocks-cycle.yaml"].Result)
	bad := byName["bad.yaml"]
	assert.True(t, bad.Failed())
	assert.Equal(t, 0, bad.Result)

	assert.Equal(t, 2, FoundTotal(r))
	assert.Equal(t, 1, UnsolvableTotal(r))
	assert.Equal(t, 1, UnknownTotal(r))
	assert.Equal(t, 1, ErrorTotal(r))
	assert.Equal(t, 3, SolveTotal(r))
	assert.InDelta(t, 0.75, SolvePortion(r), 1e-9)
	assert.Contains(t, Summary(r), "2 found, 1 unsolvable")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.insts.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.insts.WithLabelValues("unsolvable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.insts.WithLabelValues("error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.running))
}

func TestRunCanceled(t *testing.T) {
	s, e := OpenSuite("*.yaml", 0, suiteDir(t, "cake", "blocks3"))
	require.NoError(t, e)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRun(s, Config{Jobs: 1})
	assert.ErrorIs(t, r.Do(ctx), context.Canceled)
	assert.Equal(t, len(r.InstRuns), UnknownTotal(r))
	assert.Equal(t, 0, ErrorTotal(r))
	assert.Len(t, r.Name, 8)
}

func TestRunWriteRead(t *testing.T) {
	s, e := OpenSuite("cake.yaml", 0, suiteDir(t, "cake"))
	require.NoError(t, e)
	r := NewRun(s, Config{Desc: "round trip", InstTimeout: time.Second, Timeout: time.Minute})
	require.NoError(t, r.Do(context.Background()))

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, r.WriteFile(path))
	got, e := ReadRunFile(path)
	require.NoError(t, e)
	if d := cmp.Diff(r, got, cmpopts.IgnoreUnexported(Run{})); d != "" {
		t.Errorf("run differs (-want +got):\n%s", d)
	}

	_, e = ReadRun(bytes.NewBufferString("id: x\nbogus: 1\n"))
	assert.Error(t, e)
}

func TestCompare(t *testing.T) {
	a := &Run{InstRuns: []*InstRun{
		{Path: "x", Result: 1}, {Path: "y", Result: 0}, {Path: "z", Result: -1}}}
	b := &Run{InstRuns: []*InstRun{
		{Path: "y", Result: 1}, {Path: "x", Result: 1}}}
	ds := Compare(a, b)
	require.Len(t, ds, 1)
	assert.Equal(t, "y", ds[0].Path)
	assert.Equal(t, 0, ds[0].A.Result)
	assert.Equal(t, 1, ds[0].B.Result)
}

func TestSolveRate(t *testing.T) {
	r := &Run{InstRuns: []*InstRun{
		{Result: 1, Dur: time.Second}, {Result: 0, Dur: time.Second}}}
	assert.InDelta(t, 2.0, Times(r), 1e-9)
	assert.InDelta(t, 0.5, SolveRate(r, time.Second), 1e-9)
	assert.Equal(t, 0.0, SolveRate(&Run{}, time.Second))
	assert.Equal(t, 0.0, SolvePortion(&Run{}))
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics()
	m.observe(&InstRun{Result: 1, Levels: 3, Dur: time.Millisecond})
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `gplan_bench_instances_total{result="found"} 1`)
	assert.Contains(t, body, "gplan_bench_instance_levels_count 1")
}

func TestMetricsServe(t *testing.T) {
	m := NewMetrics()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Serve(ctx, "127.0.0.1:0") }()
	time.Sleep(10 * time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}
