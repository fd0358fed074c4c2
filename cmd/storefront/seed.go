package main

import (
	"storefront/internal/config"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "サンプル商品を登録する",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		gormDB, err := db.Connect(cfg)
		if err != nil {
			return err
		}
		if sqlDB, err := gormDB.DB(); err == nil {
			defer sqlDB.Close()
		}
		if err := db.Migrate(gormDB); err != nil {
			return err
		}

		n, err := db.Seed(cmd.Context(), infraRepo.NewProductGormRepository(gormDB), db.SampleProducts())
		if err != nil {
			return err
		}
		logger.Info("seeded", zap.Int("created", n))
		return nil
	},
}
