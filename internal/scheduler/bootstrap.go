package scheduler

import (
	"context"
	"fmt"

	"ec2sched/internal/aws"
	"ec2sched/internal/config"
	"ec2sched/internal/logging"
	"ec2sched/internal/service/metrics"
)

// NewFromEnv はコールドスタート時に環境変数とLambda実行ロールからHandlerを組み立てる
func NewFromEnv(ctx context.Context, flow Flow) (*Handler, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("設定の読み込みに失敗: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// リージョンはLambdaの実行環境（AWS_REGION）から解決される
	awsCfg, err := aws.LoadAwsConfig(ctx, aws.Context{})
	if err != nil {
		return nil, fmt.Errorf("AWS設定の読み込みに失敗: %w", err)
	}

	return NewWithClients(aws.NewAwsClientsFromConfig(awsCfg), cfg, flow, WithLogger(logger)), nil
}

// NewWithClients は作成済みのクライアント群と設定からHandlerを組み立てる
// MetricsNamespaceが設定されている場合のみCloudWatchへメトリクスを送信する
func NewWithClients(clients *aws.Clients, cfg config.Config, flow Flow, opts ...Option) *Handler {
	if cfg.MetricsNamespace != "" {
		opts = append(opts, WithMetrics(metrics.NewCloudWatchPublisher(clients.CloudWatch(), cfg.MetricsNamespace)))
	}
	return New(clients.Ec2(), cfg.Tag(), flow, opts...)
}
