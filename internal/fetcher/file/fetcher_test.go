package filefetcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seiten-tools/seiten-formatter/internal/fetcher"
)

func TestFetchReadsLocalFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "in.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>聖典</p>"), 0o600))

	body, err := New(zap.NewNop()).Fetch(context.Background(), "file://"+path)
	require.NoError(t, err)
	require.Equal(t, "<p>聖典</p>", body)
}

func TestFetchMissingFile(t *testing.T) {
	t.Parallel()

	url := "file://" + filepath.Join(t.TempDir(), "missing.html")
	_, err := New(zap.NewNop()).Fetch(context.Background(), url)
	require.ErrorIs(t, err, fetcher.ErrNotFound)
}

func TestFetchUnreadableFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// A directory fails the read with something other than not-exist.
	_, err := New(zap.NewNop()).Fetch(context.Background(), "file://"+dir)
	require.Error(t, err)
	require.NotErrorIs(t, err, fetcher.ErrNotFound)
}
