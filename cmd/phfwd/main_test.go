// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaissmai/phfwd"
	"github.com/gaissmai/phfwd/internal/script"
)

// execute runs the root command with args and stdin,
// returns stdout, stderr and the error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

	cmd := NewCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunStdin(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "12 > 9\n12345 ?\n? 945\n", "run")
	require.NoError(t, err)
	assert.Equal(t, "9345\n1245 945\n", out)

	out, _, err = execute(t, "1 > 2\nlist\n", "run", "-")
	require.NoError(t, err)
	assert.Equal(t, "1 > 2\n", out)
}

func TestRunFile(t *testing.T) {
	t.Parallel()

	name := filepath.Join(t.TempDir(), "calls.txt")
	require.NoError(t, os.WriteFile(name, []byte("// test\n5>77\n555?\n"), 0o600))

	out, _, err := execute(t, "", "run", name)
	require.NoError(t, err)
	assert.Equal(t, "7755\n", out)

	_, _, err = execute(t, "", "run", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	_, stderr, err := execute(t, "1>2\nfoo\n3?\n", "run")
	require.Error(t, err)
	assert.True(t, errors.Is(err, script.ErrSyntax))
	assert.Contains(t, stderr, "line 2")

	// keep going, all errors reported
	out, stderr, err := execute(t, "1>1\nfoo\n1>2\n1?\n", "run", "--keep-going")
	require.Error(t, err)
	assert.True(t, errors.Is(err, script.ErrSyntax))
	assert.True(t, errors.Is(err, phfwd.ErrIdenticalNumbers))
	assert.Equal(t, "2\n", out)
	assert.Contains(t, stderr, "keep going")
}

func TestRunFormatJSON(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "1>2\nlist\n", "run", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"from":"1","to":"2"}]`, out)
}

func TestGet(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "get", "--redirect", "12=9", "--redirect", "123=8", "12345", "1299", "42")
	require.NoError(t, err)
	assert.Equal(t, "845\n999\n42\n", out)
}

func TestReverse(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "reverse", "--redirect", "12=9", "--redirect", "3=9", "945")
	require.NoError(t, err)
	assert.Equal(t, "1245 345 945\n", out)
}

func TestLookupErrors(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "get", "--redirect", "12", "1")
	assert.Error(t, err)

	// pflag flattens the error to a message
	_, _, err = execute(t, "", "get", "--redirect", "1a=2", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), phfwd.ErrInvalidNumber.Error())

	_, _, err = execute(t, "", "get", "--redirect", "1=1", "1")
	assert.ErrorIs(t, err, phfwd.ErrIdenticalNumbers)

	_, _, err = execute(t, "", "get", "1x")
	assert.ErrorIs(t, err, phfwd.ErrInvalidNumber)

	_, _, err = execute(t, "", "reverse")
	assert.Error(t, err)
}

func TestFlagErrors(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"run", "--log-level", "loud"},
		{"run", "--log-format", "xml"},
		{"run", "--format", "yaml"},
	} {
		_, _, err := execute(t, "", args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestLogLevelJSON(t *testing.T) {
	t.Parallel()

	_, stderr, err := execute(t, "1>2\n", "run", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"add redirection"`)
	assert.Contains(t, stderr, `"from":"1"`)
}

func TestLogLevelEnv(t *testing.T) {
	t.Setenv(envLogLevel, "debug")

	_, stderr, err := execute(t, "1>2\n", "run")
	require.NoError(t, err)
	assert.Contains(t, stderr, "add redirection")

	// the flag wins
	_, stderr, err = execute(t, "1>2\n", "run", "--log-level", "info")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "add redirection")
}

func TestBench(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "bench", "--redirections", "1000", "--lookups", "1000")
	require.NoError(t, err)

	for _, s := range []string{"add:", "get:", "reverse:", "engine:", "1,000 ops"} {
		assert.Contains(t, out, s)
	}
}

func TestRedirectsValue(t *testing.T) {
	t.Parallel()

	var rv redirectsValue
	require.NoError(t, rv.Set("1=2"))
	require.NoError(t, rv.Set("*=#"))

	assert.Equal(t, "[1=2,*=#]", rv.String())
	assert.Equal(t, "FROM=TO", rv.Type())
	assert.Equal(t, redirectsValue{{"1", "2"}, {"*", "#"}}, rv)
}
