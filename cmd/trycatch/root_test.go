package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo")

	require.NoError(t, err)
	assert.Contains(t, out, "name: exact-match")
	assert.Contains(t, out, "handled: example#0")
	assert.Contains(t, out, "unhandled: true")
	assert.Contains(t, out, "handled: sub#1")
	assert.Contains(t, out, "inspected: 1")
}

func TestRun_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	doc := "scenarios:\n  - name: sub-only\n    raise: sub\n    handlers: [sub]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := execute(t, "run", path)

	require.NoError(t, err)
	assert.Contains(t, out, "name: sub-only")
	assert.Contains(t, out, "handled: sub#0")
}

func TestRun_MissingFile(t *testing.T) {
	_, err := execute(t, "run", filepath.Join(t.TempDir(), "nope.yaml"))

	assert.ErrorContains(t, err, "open scenarios")
}

func TestRun_InvalidScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios:\n  - name: x\n    raise: fire\n"), 0o644))

	_, err := execute(t, "run", path)

	assert.ErrorContains(t, err, "unknown raise")
}
