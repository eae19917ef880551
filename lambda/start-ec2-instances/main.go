package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"ec2sched/internal/scheduler"
)

func main() {
	// クライアントとタグ条件はコールドスタート時に一度だけ解決する
	h, err := scheduler.NewFromEnv(context.Background(), scheduler.StartFlow)
	if err != nil {
		zap.Must(zap.NewProduction()).Sugar().Fatalw("failed to initialize handler", "error", err)
	}

	lambda.Start(h.Handle)
}
