package util

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		value, min, max, want int
	}{
		{value: 0, min: 1, max: 60, want: 1},
		{value: 1, min: 1, max: 60, want: 1},
		{value: 30, min: 1, max: 60, want: 30},
		{value: 61, min: 1, max: 60, want: 60},
		{value: -100, min: 1, max: 60, want: 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clamp(tt.value, tt.min, tt.max), "Clamp(%d, %d, %d)", tt.value, tt.min, tt.max)
	}
}

func TestClampFloat(t *testing.T) {
	assert.Equal(t, 0.0, ClampFloat(-0.5, 0, 1))
	assert.Equal(t, 0.25, ClampFloat(0.25, 0, 1))
	assert.Equal(t, 1.0, ClampFloat(3, 0, 1))
}

func TestDataDirHonoursXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)
	assert.Equal(t, filepath.Join(base, "dialtimer"), DataDir("dialtimer"))
}

func TestDataDirFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, ".local", "share", "dialtimer"), DataDir("dialtimer"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel(""))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}

func TestInitLoggingWritesFilteredLevels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, InitLogging(dir, "test.log"))
	t.Cleanup(func() {
		SetLevel(LevelInfo)
		_ = CloseLogging()
	})

	SetLevel(LevelWarn)
	Infof("hidden %d", 1)
	Warnf("shown %d", 2)
	LogError("context", errors.New("boom"))
	LogError("nil context", nil)
	require.NoError(t, CloseLogging())

	data, err := os.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	out := string(data)
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "[WARN] shown 2")
	assert.Contains(t, out, "[ERROR] context: boom")
	assert.NotContains(t, out, "nil context")
}
