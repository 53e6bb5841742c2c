package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSaveWritesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "seiten.txt")
	require.NoError(t, New(zap.NewNop()).Save(path, "本文\n\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "本文\n\n", string(data))
}

func TestSaveOverwritesExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seiten.txt")
	sink := New(zap.NewNop())
	require.NoError(t, sink.Save(path, "旧"))
	require.NoError(t, sink.Save(path, "新"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "新", string(data))
}

func TestSaveReportsWriteFailure(t *testing.T) {
	t.Parallel()

	// The target path is an existing directory, so the write must fail.
	dir := t.TempDir()
	require.Error(t, New(zap.NewNop()).Save(dir, "本文"))
}
