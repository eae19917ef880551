package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCloudWatch struct {
	inputs []*cloudwatch.PutMetricDataInput
	err    error
}

func (f *fakeCloudWatch) PutMetricData(_ context.Context, params *cloudwatch.PutMetricDataInput, _ ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &cloudwatch.PutMetricDataOutput{}, nil
}

func TestCloudWatchPublisherPublish(t *testing.T) {
	client := &fakeCloudWatch{}
	publisher := NewCloudWatchPublisher(client, "Ec2Scheduler")

	require.NoError(t, publisher.Publish(t.Context(), "stop", 3, 3))

	require.Len(t, client.inputs, 1)
	input := client.inputs[0]
	assert.Equal(t, "Ec2Scheduler", aws.ToString(input.Namespace))
	require.Len(t, input.MetricData, 2)

	byName := map[string]types.MetricDatum{}
	for _, d := range input.MetricData {
		byName[aws.ToString(d.MetricName)] = d
		assert.Equal(t, types.StandardUnitCount, d.Unit)
		require.Len(t, d.Dimensions, 1)
		assert.Equal(t, DimensionAction, aws.ToString(d.Dimensions[0].Name))
		assert.Equal(t, "stop", aws.ToString(d.Dimensions[0].Value))
	}
	assert.Equal(t, 3.0, aws.ToFloat64(byName[MetricSelected].Value))
	assert.Equal(t, 3.0, aws.ToFloat64(byName[MetricTransitioned].Value))
}

func TestCloudWatchPublisherError(t *testing.T) {
	client := &fakeCloudWatch{err: errors.New("throttled")}
	publisher := NewCloudWatchPublisher(client, "Ec2Scheduler")

	err := publisher.Publish(t.Context(), "start", 0, 0)

	assert.EqualError(t, err, "CloudWatchメトリクスの送信に失敗: throttled")
}
