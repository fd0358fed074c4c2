package logger

import (
	"go.uber.org/zap"
)

// New はGO_ENVに応じたzap.Loggerを返す。prodはJSON、それ以外は開発用の出力。
func New(goEnv string) (*zap.Logger, error) {
	if goEnv == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
