package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseOps(t *testing.T) {
	ops, err := parseOps([]string{"3", "+4", "5=50", "-3", "+-2", "--2"})
	require.NoError(t, err)
	require.Equal(t, []op{
		{key: 3, val: 3},
		{key: 4, val: 4},
		{key: 5, val: 50},
		{del: true, key: 3, val: 3},
		{key: -2, val: -2},
		{del: true, key: -2, val: -2},
	}, ops)
	require.Equal(t, "5=50", ops[2].String())
	require.Equal(t, "-3", ops[3].String())

	for _, bad := range []string{"", "x", "-3=4", "1=y", "+"} {
		_, err := parseOps([]string{bad})
		require.Error(t, err, "token %q", bad)
	}
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestWalk(t *testing.T) {
	got := run(t, "walk", "--", "3", "4", "0", "7", "5", "8", "6", "-4", "5=50")
	require.Equal(t, "forward: 0=0 3=3 5=50 6=6 7=7 8=8\nbackward: 8=8 7=7 6=6 5=50 3=3 0=0\n", got)
}

func TestWalkEmpty(t *testing.T) {
	require.Equal(t, "forward:\nbackward:\n", run(t, "walk"))
}

func TestDot(t *testing.T) {
	got := run(t, "dot", "1", "2", "3")
	require.Contains(t, got, "digraph")

	file := filepath.Join(t.TempDir(), "tree.dot")
	require.Empty(t, run(t, "dot", "--out", file, "1", "2"))
	bz, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(bz), "digraph")
}

func TestSoak(t *testing.T) {
	log := zerolog.Nop()
	require.NoError(t, soak(&log, soakParams{ops: 20_000, keys: 500, seed: 7, checkEvery: 1_000}))
	require.Error(t, soak(&log, soakParams{ops: 1, keys: 0, seed: 7, checkEvery: 1}))
}
