// Package writer persists the finished transcript to disk.
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// TextSink writes UTF-8 text files, overwriting any existing file.
type TextSink struct {
	logger *zap.Logger
}

// New returns a TextSink.
func New(logger *zap.Logger) *TextSink {
	return &TextSink{logger: logger}
}

// Save writes text to path, creating parent directories as needed.
func (s *TextSink) Save(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			err = fmt.Errorf("create output dir %s: %w", dir, err)
			s.logger.Error("save failed", zap.String("path", path), zap.Error(err))
			return err
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		err = fmt.Errorf("write %s: %w", path, err)
		s.logger.Error("save failed", zap.String("path", path), zap.Error(err))
		return err
	}
	s.logger.Info("text saved", zap.String("path", path), zap.Int("bytes", len(text)))
	return nil
}
