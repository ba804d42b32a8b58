package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/helpdesk-priority/internal/config"
)

func TestLoadClassifier_Embedded(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	c, report, err := LoadClassifier(config.PriorityConfig{}, zap.New(core))
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.False(t, report.HasErrors())
	assert.Equal(t, len(report.Warnings()), logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Equal(t, 1, logs.FilterMessage("priority rules loaded").Len())
}

func TestLoadClassifier_StrictRejectsWarnings(t *testing.T) {
	_, report, err := LoadClassifier(config.PriorityConfig{StrictRules: true}, nil)
	require.Error(t, err)
	assert.NotEmpty(t, report.Warnings())
}

func TestLoadClassifier_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("patterns:\n  urgent:\n    - [fire]\n"), 0o600))

	_, report, err := LoadClassifier(config.PriorityConfig{RulesPath: path}, nil)
	require.Error(t, err)
	assert.True(t, report.HasErrors())

	_, _, err = LoadClassifier(config.PriorityConfig{RulesPath: filepath.Join(t.TempDir(), "missing.yaml")}, nil)
	require.Error(t, err)
}
