package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/toolsite/internal/content"
	"github.com/dmitrymomot/toolsite/internal/site"
	"github.com/dmitrymomot/toolsite/pkg/config"
	"github.com/dmitrymomot/toolsite/pkg/i18n"
	"github.com/dmitrymomot/toolsite/pkg/logger"
	"github.com/dmitrymomot/toolsite/pkg/requestid"
)

// app holds what every command needs: configuration, logger, catalogs and
// the assembled pages.
type app struct {
	cfg   site.Config
	log   *slog.Logger
	tr    *i18n.Translator
	pages *site.Pages
}

func bootstrap(ctx context.Context, out io.Writer, overrides ...func(*site.Config)) (*app, error) {
	var cfg site.Config
	if err := config.Load(&cfg); err != nil {
		return nil, fmt.Errorf("app config: %w", err)
	}
	if len(overrides) > 0 {
		for _, fn := range overrides {
			fn(&cfg)
		}
		if err := config.Validate(cfg); err != nil {
			return nil, fmt.Errorf("app config: %w", err)
		}
	}
	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		return nil, fmt.Errorf("log config: %w", err)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithConfig(logCfg),
		logger.WithOutput(out),
		logger.WithContextExtractors(
			logger.StringExtractor("request_id", requestid.FromContext),
			logger.StringExtractor("locale", i18n.GetLocale),
		),
	)

	tr, err := content.NewTranslator(ctx, cfg.ContentDir, log.With(logger.Component("i18n")))
	if err != nil {
		return nil, fmt.Errorf("load catalogs: %w", err)
	}
	reg, err := content.NewRegistry(content.Builtin()...)
	if err != nil {
		return nil, fmt.Errorf("tool registry: %w", err)
	}
	pages, err := site.NewPages(reg, tr, cfg)
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "catalogs loaded",
		slog.Any("locales", pages.Locales()),
		logger.Version(tr.Version()),
		logger.Count(reg.Len()),
	)
	return &app{cfg: cfg, log: log, tr: tr, pages: pages}, nil
}
