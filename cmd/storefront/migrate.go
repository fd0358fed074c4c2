package main

import (
	"storefront/internal/config"
	"storefront/internal/infra/db"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "テーブルを作成/更新する",
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
		logger.Info("migrated")
		return nil
	},
}
