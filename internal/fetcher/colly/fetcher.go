// Package collyfetcher retrieves remote pages using gocolly.
package collyfetcher

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"

	"github.com/seiten-tools/seiten-formatter/internal/fetcher"
)

// Config controls collector behavior.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// Fetcher implements fetcher.Fetcher for http:// and https:// URLs. The
// response body is re-decoded to UTF-8 from its detected charset.
type Fetcher struct {
	cfg           Config
	logger        *zap.Logger
	baseCollector *colly.Collector
}

// New builds a Fetcher.
func New(cfg Config, logger *zap.Logger) *Fetcher {
	opts := []colly.CollectorOption{
		colly.DetectCharset(),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, colly.UserAgent(cfg.UserAgent))
	}
	c := colly.NewCollector(opts...)
	c.WithTransport(newHTTPTransport())

	return &Fetcher{
		cfg:           cfg,
		logger:        logger,
		baseCollector: c,
	}
}

// Fetch executes a single HTTP GET and returns the decoded body.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.logger.Info("fetching page", zap.String("url", url))

	var (
		body       string
		statusCode int
		fetchErr   error
	)

	collector := f.baseCollector.Clone()
	timeout := f.cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	collector.SetRequestTimeout(timeout)

	collector.OnResponse(func(r *colly.Response) {
		statusCode = r.StatusCode
		body = string(r.Body)
	})
	collector.OnError(func(r *colly.Response, err error) {
		if r != nil {
			statusCode = r.StatusCode
		}
		fetchErr = err
	})

	done := make(chan error, 1)
	go func() {
		done <- collector.Visit(url)
	}()

	var visitErr error
	select {
	case <-ctx.Done():
		err := fetcher.ClassifyTransport(ctx.Err())
		f.logFailure(url, 0, err)
		return "", err
	case visitErr = <-done:
		if visitErr == nil && fetchErr == nil {
			return body, nil
		}
	}

	if fetchErr == nil {
		fetchErr = visitErr
	}
	err := f.classify(statusCode, fetchErr)
	f.logFailure(url, statusCode, err)
	return "", err
}

func (f *Fetcher) classify(statusCode int, err error) error {
	if statusCode != 0 && (statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices) {
		return fmt.Errorf("%w %d", fetcher.ErrBadStatus, statusCode)
	}
	return fetcher.ClassifyTransport(err)
}

func (f *Fetcher) logFailure(url string, statusCode int, err error) {
	fields := []zap.Field{zap.String("url", url), zap.Error(err)}
	if statusCode != 0 {
		fields = append(fields, zap.Int("status", statusCode))
	}
	f.logger.Error("fetch failed", fields...)
}

func newHTTPTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConns:          16,
		IdleConnTimeout:       30 * time.Second,
	}
}
