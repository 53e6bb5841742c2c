// Package fetcher defines the page retrieval contract shared by the HTTP
// and local-file implementations.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// FileScheme marks a URL as a local-file reference.
const FileScheme = "file://"

// Fetcher retrieves the raw markup behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Failure classes. Each maps to one diagnostic the original tool printed.
var (
	ErrTimeout    = errors.New("request timed out")
	ErrConnection = errors.New("connection failed")
	ErrBadStatus  = errors.New("unexpected HTTP status")
	ErrNotFound   = errors.New("file not found")
)

// IsLocal reports whether url names a local file rather than a remote page.
func IsLocal(url string) bool {
	return strings.HasPrefix(url, FileScheme)
}

// LocalPath strips the file scheme prefix from url.
func LocalPath(url string) string {
	return strings.TrimPrefix(url, FileScheme)
}

// ClassifyTransport wraps a transport error with the matching failure class
// so callers can log one diagnostic per class.
func ClassifyTransport(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return fmt.Errorf("request failed: %w", err)
}
