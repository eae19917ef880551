package ec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

const noNameLabel = "（名前なし）"

// BuildFilters は状態とタグの完全一致（AND条件）のフィルタを組み立てる
func BuildFilters(state InstanceState, tag TagPredicate) []types.Filter {
	return []types.Filter{
		{
			Name:   aws.String("instance-state-name"),
			Values: []string{string(state)},
		},
		{
			Name:   aws.String("tag:" + tag.Key),
			Values: []string{tag.Value},
		},
	}
}

// SelectInstances は指定した状態とタグに一致するインスタンスIDを全ページ分取得する
func SelectInstances(ctx context.Context, client DescribeInstancesAPI, state InstanceState, tag TagPredicate) ([]string, error) {
	ids := []string{}
	err := describeMatching(ctx, client, state, tag, func(instance types.Instance) {
		ids = append(ids, aws.ToString(instance.InstanceId))
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ListCandidates は SelectInstances と同じ条件でインスタンスの詳細を取得する
func ListCandidates(ctx context.Context, client DescribeInstancesAPI, state InstanceState, tag TagPredicate) ([]Instance, error) {
	instances := []Instance{}
	err := describeMatching(ctx, client, state, tag, func(instance types.Instance) {
		// インスタンス名を取得（Nameタグから）
		instanceName := noNameLabel
		for _, t := range instance.Tags {
			if aws.ToString(t.Key) == "Name" && t.Value != nil {
				instanceName = *t.Value
				break
			}
		}

		var instanceState string
		if instance.State != nil {
			instanceState = string(instance.State.Name)
		}

		instances = append(instances, Instance{
			InstanceId:   aws.ToString(instance.InstanceId),
			InstanceName: instanceName,
			State:        instanceState,
		})
	})
	if err != nil {
		return nil, err
	}
	return instances, nil
}

// FilterByIds は指定されたIDに含まれるインスタンスのみを残す
func FilterByIds(instances []Instance, ids []string) []Instance {
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	filtered := []Instance{}
	for _, ins := range instances {
		if _, ok := idSet[ins.InstanceId]; ok {
			filtered = append(filtered, ins)
		}
	}
	return filtered
}

func describeMatching(ctx context.Context, client DescribeInstancesAPI, state InstanceState, tag TagPredicate, visit func(types.Instance)) error {
	if !state.Valid() {
		return &QueryError{State: state, Tag: tag, Err: fmt.Errorf("%w: unsupported instance state %q", ErrInvalidInput, state)}
	}
	if !tag.Valid() {
		return &QueryError{State: state, Tag: tag, Err: fmt.Errorf("%w: tag key and value must not be empty", ErrInvalidInput)}
	}

	input := &ec2.DescribeInstancesInput{
		Filters: BuildFilters(state, tag),
	}

	// ページネーション対応（Reservation単位の入れ子をフラットにする）
	paginator := ec2.NewDescribeInstancesPaginator(client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return &QueryError{State: state, Tag: tag, Err: err}
		}

		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				visit(instance)
			}
		}
	}

	return nil
}
