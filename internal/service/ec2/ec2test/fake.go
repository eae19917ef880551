// Package ec2test はEC2 APIのインメモリ実装をテスト用に提供する
package ec2test

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// Instance はフェイクが保持するインスタンス
type Instance struct {
	ID    string
	State types.InstanceStateName
	Tags  map[string]string
}

// Client はDescribeInstances/StartInstances/StopInstancesを模したフェイク
// DescribeInstancesはEC2と同じくフィルタをAND条件で評価する
type Client struct {
	Instances []Instance

	// PageSize が正の場合、1ページあたりのインスタンス数を制限してNextTokenを返す
	PageSize int
	// ReservationSize が正の場合、1Reservationに含めるインスタンス数
	ReservationSize int

	DescribeErr error
	StartErr    error
	StopErr     error

	mu            sync.Mutex
	DescribeCalls []*ec2.DescribeInstancesInput
	StartCalls    [][]string
	StopCalls     [][]string
}

// DescribeInstances はフィルタに一致するインスタンスを返す
func (c *Client) DescribeInstances(_ context.Context, params *ec2.DescribeInstancesInput, _ ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.DescribeCalls = append(c.DescribeCalls, params)
	if c.DescribeErr != nil {
		return nil, c.DescribeErr
	}

	var matched []Instance
	for _, ins := range c.Instances {
		if matches(ins, params.Filters) {
			matched = append(matched, ins)
		}
	}

	start := 0
	if params.NextToken != nil {
		start, _ = strconv.Atoi(*params.NextToken)
	}
	end := len(matched)
	if c.PageSize > 0 && start+c.PageSize < end {
		end = start + c.PageSize
	}
	if start > end {
		start = end
	}

	out := &ec2.DescribeInstancesOutput{
		Reservations: reservations(matched[start:end], c.ReservationSize),
	}
	if end < len(matched) {
		out.NextToken = aws.String(strconv.Itoa(end))
	}
	return out, nil
}

// StartInstances は呼び出しを記録し、成功時は対象を pending 状態にする
func (c *Client) StartInstances(_ context.Context, params *ec2.StartInstancesInput, _ ...func(*ec2.Options)) (*ec2.StartInstancesOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.StartCalls = append(c.StartCalls, append([]string(nil), params.InstanceIds...))
	if c.StartErr != nil {
		return nil, c.StartErr
	}
	c.setState(params.InstanceIds, types.InstanceStateNamePending)
	return &ec2.StartInstancesOutput{}, nil
}

// StopInstances は呼び出しを記録し、成功時は対象を stopping 状態にする
func (c *Client) StopInstances(_ context.Context, params *ec2.StopInstancesInput, _ ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.StopCalls = append(c.StopCalls, append([]string(nil), params.InstanceIds...))
	if c.StopErr != nil {
		return nil, c.StopErr
	}
	c.setState(params.InstanceIds, types.InstanceStateNameStopping)
	return &ec2.StopInstancesOutput{}, nil
}

func (c *Client) setState(ids []string, state types.InstanceStateName) {
	for _, id := range ids {
		for i := range c.Instances {
			if c.Instances[i].ID == id {
				c.Instances[i].State = state
			}
		}
	}
}

func matches(ins Instance, filters []types.Filter) bool {
	for _, f := range filters {
		name := aws.ToString(f.Name)
		var actual string
		var present bool
		switch {
		case name == "instance-state-name":
			actual, present = string(ins.State), true
		case strings.HasPrefix(name, "tag:"):
			actual, present = ins.Tags[strings.TrimPrefix(name, "tag:")]
		default:
			continue
		}
		if !present || !contains(f.Values, actual) {
			return false
		}
	}
	return true
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func reservations(instances []Instance, size int) []types.Reservation {
	if len(instances) == 0 {
		return []types.Reservation{}
	}
	if size <= 0 {
		size = len(instances)
	}

	var out []types.Reservation
	for i := 0; i < len(instances); i += size {
		end := min(i+size, len(instances))
		r := types.Reservation{}
		for _, ins := range instances[i:end] {
			r.Instances = append(r.Instances, toSDK(ins))
		}
		out = append(out, r)
	}
	return out
}

func toSDK(ins Instance) types.Instance {
	tags := make([]types.Tag, 0, len(ins.Tags))
	for k, v := range ins.Tags {
		tags = append(tags, types.Tag{Key: aws.String(k), Value: aws.String(v)})
	}
	return types.Instance{
		InstanceId: aws.String(ins.ID),
		State:      &types.InstanceState{Name: ins.State},
		Tags:       tags,
	}
}
