package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsLocal(t *testing.T) {
	t.Parallel()

	require.True(t, IsLocal("file:///tmp/in.html"))
	require.False(t, IsLocal("https://example.com/in.html"))
	require.Equal(t, "/tmp/in.html", LocalPath("file:///tmp/in.html"))
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassifyTransport(t *testing.T) {
	t.Parallel()

	require.NoError(t, ClassifyTransport(nil))

	err := ClassifyTransport(fmt.Errorf("visit: %w", context.DeadlineExceeded))
	require.ErrorIs(t, err, ErrTimeout)

	var netErr net.Error = timeoutErr{}
	require.ErrorIs(t, ClassifyTransport(netErr), ErrTimeout)

	opErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	require.ErrorIs(t, ClassifyTransport(opErr), ErrConnection)

	generic := ClassifyTransport(errors.New("boom"))
	require.Error(t, generic)
	require.NotErrorIs(t, generic, ErrTimeout)
	require.NotErrorIs(t, generic, ErrConnection)
}

func TestClassifyTransportDeadlineFromContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()
	require.ErrorIs(t, ClassifyTransport(ctx.Err()), ErrTimeout)
}
