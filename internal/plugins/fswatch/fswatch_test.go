package fswatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ando-archive/internal/logger"
)

func TestInitCreatesArchiveDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "documents")
	plugin := New(dir, logger.Nop{})

	require.NoError(t, plugin.Init(context.Background()))
	defer plugin.Shutdown()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestShutdownStopsWatcher(t *testing.T) {
	plugin := New(t.TempDir(), logger.Nop{})
	require.NoError(t, plugin.Init(context.Background()))

	plugin.Shutdown()

	// Second shutdown must be harmless.
	plugin.Shutdown()
}
