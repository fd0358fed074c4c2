package main

import (
	"fmt"
	"os"

	"storefront/internal/config"
	applog "storefront/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	envFiles []string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "セッションごとのカタログ/カートを持つストアフロントAPI",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		//.envを読んでから環境変数を見る
		if err := config.LoadDotEnv(envFiles...); err != nil {
			return err
		}

		var err error
		logger, err = applog.New(os.Getenv("GO_ENV"))
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env", "../.env"}, ".env files to load (missing files are ignored)")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, hashPasswordCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
