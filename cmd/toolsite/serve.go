package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/toolsite/internal/metrics"
	"github.com/dmitrymomot/toolsite/internal/site"
	"github.com/dmitrymomot/toolsite/pkg/cache"
	"github.com/dmitrymomot/toolsite/pkg/config"
	"github.com/dmitrymomot/toolsite/pkg/httpserver"
	"github.com/dmitrymomot/toolsite/pkg/logger"
	"github.com/dmitrymomot/toolsite/pkg/redis"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Run the HTTP server",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), cmd)
		},
	}
}

func serve(ctx context.Context, cmd *cobra.Command) error {
	a, err := bootstrap(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var (
		httpCfg  httpserver.Config
		cacheCfg cache.Config
		redisCfg redis.Config
	)
	if err := errors.Join(
		config.Load(&httpCfg),
		config.Load(&cacheCfg),
		config.Load(&redisCfg),
	); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := metrics.New()
	m.CatalogReloaded(a.tr.Version(), nil)

	var opts []site.ServerOption
	opts = append(opts, site.WithLogger(a.log))

	store, check, closeStore, err := pageCache(ctx, a.log, cacheCfg, redisCfg)
	if err != nil {
		return err
	}
	defer closeStore()
	if check != nil {
		opts = append(opts, site.WithReadinessChecks(*check))
	}

	if a.cfg.ContentDir != "" {
		w := site.NewCatalogWatcher(a.cfg.ContentDir, a.tr, m,
			site.WithWatchLogger(a.log.With(logger.Component("watcher"))),
		)
		go func() {
			if err := w.Run(ctx); err != nil {
				a.log.ErrorContext(ctx, "catalog watcher stopped", logger.Error(err))
			}
		}()
	}

	renderer := site.NewRenderer(store, m, a.log)
	h, err := site.NewServer(a.pages, renderer, m, opts...).Handler()
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(a.log))
	return srv.Run(ctx, h)
}

// pageCache picks Redis when REDIS_URL is set, so replicas share rendered
// pages, and an in-process LRU otherwise.
func pageCache(ctx context.Context, log *slog.Logger, cacheCfg cache.Config, redisCfg redis.Config) (cache.Store, *httpserver.Check, func(), error) {
	if !redisCfg.Enabled() {
		if cacheCfg.Size == 0 {
			log.InfoContext(ctx, "page cache disabled")
			return cache.Nop{}, nil, func() {}, nil
		}
		log.InfoContext(ctx, "page cache in memory", logger.Count(cacheCfg.Size))
		return cache.NewMemoryStore(cacheCfg.Size, cacheCfg.TTL), nil, func() {}, nil
	}

	client, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	store, err := cache.NewRedisStore(client, cache.WithTTL(cacheCfg.TTL))
	if err != nil {
		_ = client.Close()
		return nil, nil, nil, err
	}
	log.InfoContext(ctx, "page cache in redis")
	check := &httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)}
	return store, check, func() { _ = client.Close() }, nil
}
