// Package metrics はスケジュール実行の結果をCloudWatchカスタムメトリクスとして送信する
package metrics

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const (
	MetricSelected     = "InstancesSelected"
	MetricTransitioned = "InstancesTransitioned"
	DimensionAction    = "Action"
)

// PutMetricDataAPI はメトリクス送信に必要なCloudWatch API
type PutMetricDataAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Publisher は1回の実行結果（検出数と操作数）を記録する
type Publisher interface {
	Publish(ctx context.Context, action string, selected, transitioned int) error
}

// CloudWatchPublisher は指定されたネームスペースへメトリクスを送信する
type CloudWatchPublisher struct {
	client    PutMetricDataAPI
	namespace string
}

// NewCloudWatchPublisher はCloudWatchPublisherを作成する
func NewCloudWatchPublisher(client PutMetricDataAPI, namespace string) *CloudWatchPublisher {
	return &CloudWatchPublisher{client: client, namespace: namespace}
}

// Publish は検出数と操作数を1リクエストで送信する
func (p *CloudWatchPublisher) Publish(ctx context.Context, action string, selected, transitioned int) error {
	dimensions := []types.Dimension{
		{
			Name:  aws.String(DimensionAction),
			Value: aws.String(action),
		},
	}

	_, err := p.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(p.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(MetricSelected),
				Dimensions: dimensions,
				Unit:       types.StandardUnitCount,
				Value:      aws.Float64(float64(selected)),
			},
			{
				MetricName: aws.String(MetricTransitioned),
				Dimensions: dimensions,
				Unit:       types.StandardUnitCount,
				Value:      aws.Float64(float64(transitioned)),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("CloudWatchメトリクスの送信に失敗: %w", err)
	}
	return nil
}
