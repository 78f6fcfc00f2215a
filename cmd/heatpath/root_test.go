package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatpath/config"
	"github.com/katalvlaran/heatpath/gridgraph"
)

const example = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestRoot_Stdin(t *testing.T) {
	out, _, err := run(t, example, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "part1: 102\npart2: 94\n", out)
}

func TestRoot_SingleFile(t *testing.T) {
	p := writeFile(t, t.TempDir(), "input.txt", example)
	out, _, err := run(t, "", p)
	require.NoError(t, err)
	assert.Equal(t, "part1: 102\npart2: 94\n", out)
}

func TestRoot_ManyFilesArePrefixed(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", example)
	b := writeFile(t, dir, "b.txt", "11111\n")
	out, _, err := run(t, "", "--workers", "2", a, b)
	require.NoError(t, err)
	assert.Equal(t,
		a+" part1: 102\n"+a+" part2: 94\n"+b+" part1: unreachable\n"+b+" part2: 4\n",
		out)
}

func TestRoot_Path(t *testing.T) {
	out, _, err := run(t, "12\n34\n", "--path")
	require.NoError(t, err)
	assert.Equal(t, "part1: 6 >v\npart2: unreachable\n", out)
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "heatpath.yaml", "variants:\n  - {name: ultra, min_run: 4, max_run: 10}\nlog: {level: warn, format: json}\n")
	out, _, err := run(t, example, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "ultra: 94\n", out)
}

func TestRoot_JSONLogs(t *testing.T) {
	_, logs, err := run(t, "12\n34\n", "--log-format", "json", "--log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"variant solved"`)
	assert.Contains(t, logs, `"msg":"goal unreachable"`)
}

func TestRoot_Errors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, "", filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "12\n3x\n")
	assert.ErrorIs(t, err, gridgraph.ErrNonDigit)

	_, _, err = run(t, "", "--config", filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrRead)

	_, _, err = run(t, example, "--workers", "0")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRoute(t *testing.T) {
	path := []gridgraph.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}
	assert.Equal(t, ">v<^", route(path))
	assert.Equal(t, "", route(path[:1]))
}
