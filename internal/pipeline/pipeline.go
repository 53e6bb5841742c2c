// Package pipeline wires the formatter stages into one sequential run.
package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/seiten-tools/seiten-formatter/internal/config"
	"github.com/seiten-tools/seiten-formatter/internal/extract"
	"github.com/seiten-tools/seiten-formatter/internal/fetcher"
	collyfetcher "github.com/seiten-tools/seiten-formatter/internal/fetcher/colly"
	filefetcher "github.com/seiten-tools/seiten-formatter/internal/fetcher/file"
	"github.com/seiten-tools/seiten-formatter/internal/normalize"
	"github.com/seiten-tools/seiten-formatter/internal/writer"
)

// Pipeline runs fetch → strip → extract → normalize → save once.
type Pipeline struct {
	cfg    config.Config
	logger *zap.Logger
	fetch  fetcher.Fetcher
	sink   *writer.TextSink
}

// New builds a Pipeline for the loaded configuration, choosing the fetcher
// implementation from the URL scheme.
func New(cfg config.Config, logger *zap.Logger) *Pipeline {
	var fetch fetcher.Fetcher
	if fetcher.IsLocal(cfg.URL) {
		fetch = filefetcher.New(logger)
	} else {
		fetch = collyfetcher.New(collyfetcher.Config{
			UserAgent: cfg.Fetch.UserAgent,
			Timeout:   cfg.FetchTimeout(),
		}, logger)
	}
	return &Pipeline{
		cfg:    cfg,
		logger: logger,
		fetch:  fetch,
		sink:   writer.New(logger),
	}
}

// Run executes the pipeline. Fetch and save failures have already been
// logged with their failure class when Run returns; a parse failure is
// returned unlogged and terminates the run upstream.
func (p *Pipeline) Run(ctx context.Context) error {
	markup, err := p.fetch.Fetch(ctx, p.cfg.URL)
	if err != nil {
		return err
	}

	doc, err := extract.Parse(markup)
	if err != nil {
		return err
	}
	extract.StripAnnotations(doc)

	text := normalize.Text(extract.Paragraphs(doc))

	return p.sink.Save(p.cfg.OutputFile, text)
}
