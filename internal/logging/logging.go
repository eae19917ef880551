// Package logging はzapロガーの生成とLambdaリクエストIDの付与を行う
package logging

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New はCloudWatch Logs向けのJSONロガーを作成する
func New(level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("ログレベル '%s' が不正です: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("ロガーの作成に失敗: %w", err)
	}
	return logger.Sugar(), nil
}

// NewDevelopment はCLI向けのコンソールロガーを作成する
func NewDevelopment() (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("ロガーの作成に失敗: %w", err)
	}
	return logger.Sugar(), nil
}

// WithRequestID はLambdaのリクエストIDをロガーのフィールドに追加する
// Lambda外（CLIやテスト）から呼ばれた場合はそのまま返す
func WithRequestID(ctx context.Context, logger *zap.SugaredLogger) *zap.SugaredLogger {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return logger.With("aws_request_id", lc.AwsRequestID)
	}
	return logger
}
