package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PRIORITY_RULES_PATH", "")
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	out, err := run(t, "classify", "--category", "other", "Cash", "unit", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "critical (pattern: cash unit error)")
	assert.Contains(t, out, "scores: critical=4")

	out, err = run(t, "classify", "-c", "unknown-xyz", "nothing matches here")
	require.NoError(t, err)
	assert.Contains(t, out, "low (fallback)")
}

func TestClassifyCommand_JSON(t *testing.T) {
	out, err := run(t, "classify", "--json", "--category", "security", "--issue-type", "cybersecurity incident")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "critical", decoded["priority"])
	assert.Equal(t, "issue_default", decoded["source"])
	assert.Equal(t, []any{}, decoded["matched_pattern"])
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "0 errors")
	assert.Contains(t, out, "warning dead_synonym")

	_, err = run(t, "validate", "--strict")
	require.Error(t, err)
}

func TestValidateCommand_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("patterns:\n  high:\n    - []\n"), 0o600))

	out, err := run(t, "--rules", path, "validate")
	require.Error(t, err)
	assert.Contains(t, out, "error empty_pattern")
}
