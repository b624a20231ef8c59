package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Disabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sup.log")
	logger, err := New(false, path)
	require.NoError(t, err)

	logger.Info("ignored")
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestNew_DebugWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sup.log")
	logger, err := New(true, path)
	require.NoError(t, err)

	logger.Debug("hello", zap.String("chat", "Nurat P"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "Nurat P")
}
