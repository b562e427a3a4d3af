package main

import (
	"context"
	"fmt"

	"github.com/folio/internal/cache"
	"github.com/folio/internal/config"
	"github.com/folio/internal/content"
	"github.com/folio/internal/db"
	"github.com/folio/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const redisKeyPrefix = "folio:"

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "folio",
		Short:         "Personal site content service",
		Long:          "folio imports markdown content into SQLite and serves it as a JSON API with robots.txt and sitemaps.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				return config.LoadDotEnv(envFile)
			}
			return config.LoadDotEnv()
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load (default is ./.env when present)")

	root.AddCommand(newServeCmd(), newImportCmd(), newListCmd())
	return root
}

// app 持有各子命令共享的运行时依赖。
type app struct {
	cfg    config.AppConfig
	site   config.SiteConfig
	logger *zap.Logger
	cache  cache.Cache
	store  *content.Store
}

func newApp(ctx context.Context) (*app, error) {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.GinMode)
	if err != nil {
		return nil, err
	}

	site, err := config.LoadSite(cfg.SiteConfig)
	if err != nil {
		return nil, err
	}
	site = site.WithOrigin(cfg.SiteURL)

	if err := db.Init(cfg.DatabaseDriver, cfg.DSN()); err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	var c cache.Cache = cache.NewMemory()
	if cfg.RedisURL != "" {
		rc, err := cache.ConnectRedis(ctx, cfg.RedisURL, redisKeyPrefix)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		c = rc
		logger.Info("render cache backed by redis")
	}

	return &app{
		cfg:    cfg,
		site:   site,
		logger: logger,
		cache:  c,
		store:  content.NewStore(db.DB, c, logger),
	}, nil
}

func (a *app) close() {
	if err := a.cache.Close(); err != nil {
		a.logger.Warn("close cache", zap.Error(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.logger.Sync()
}

// importContent 导入内容目录，并逐条记录被跳过的文件。
func (a *app) importContent(ctx context.Context, dir string, prune bool) (*content.ImportResult, *content.Loader, error) {
	loader := content.NewLoader(a.store, a.cfg.StaticDir, prune, a.logger)
	result, err := loader.Import(ctx, dir)
	if err != nil {
		return nil, loader, err
	}
	for _, fileErr := range result.Errors {
		a.logger.Warn("content file skipped", zap.String("path", fileErr.Path), zap.Error(fileErr.Err))
	}
	return result, loader, nil
}
