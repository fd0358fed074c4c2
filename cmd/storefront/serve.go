package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/config"
	"storefront/internal/infra/cache"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	repo "storefront/internal/repository"
	"storefront/internal/server"
	"storefront/internal/session"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const janitorInterval = time.Minute

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "HTTPサーバーを起動する",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		//DB接続
		gormDB, err := db.Connect(cfg)
		if err != nil {
			return err
		}
		if sqlDB, err := gormDB.DB(); err == nil {
			defer sqlDB.Close()
		}
		if autoMigrate {
			if err := db.Migrate(gormDB); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}

		//Repository（GORM実装）生成
		var productRepo repo.ProductRepository = infraRepo.NewProductGormRepository(gormDB)
		if cfg.RedisAddr != "" {
			client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
			defer client.Close()

			if err := client.Ping(ctx).Err(); err != nil {
				//起動時に繋がらなくてもキャッシュ層はDBに流すので続行
				logger.Warn("redis unreachable", zap.String("addr", cfg.RedisAddr), zap.Error(err))
			}
			productRepo = cache.NewCachedProductRepository(productRepo, client, cfg.CacheTTL, logger)
			logger.Info("product cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CacheTTL))
		}

		if cfg.AdminPasswordHash == "" {
			logger.Warn("ADMIN_PASSWORD_HASH is empty; /admin is disabled")
		}

		registry := session.NewRegistry(logger)
		go registry.RunJanitor(ctx, janitorInterval, cfg.SessionIdleTimeout)

		e := server.Build(cfg, logger, productRepo, registry)
		return server.Start(ctx, e, ":"+cfg.Port, logger)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "run migrations before serving")
}
