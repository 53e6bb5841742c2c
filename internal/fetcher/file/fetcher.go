// Package filefetcher reads file:// sources from the local filesystem.
package filefetcher

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/seiten-tools/seiten-formatter/internal/fetcher"
)

// Fetcher implements fetcher.Fetcher for file:// URLs. Contents are read
// as UTF-8 text.
type Fetcher struct {
	logger *zap.Logger
}

// New builds a Fetcher.
func New(logger *zap.Logger) *Fetcher {
	return &Fetcher{logger: logger}
}

// Fetch reads the local file named by url.
func (f *Fetcher) Fetch(_ context.Context, url string) (string, error) {
	path := fetcher.LocalPath(url)
	f.logger.Info("reading local page", zap.String("path", path))

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = fmt.Errorf("%w: %s", fetcher.ErrNotFound, path)
		} else {
			err = fmt.Errorf("read %s: %w", path, err)
		}
		f.logger.Error("local read failed", zap.String("path", path), zap.Error(err))
		return "", err
	}
	return string(data), nil
}
