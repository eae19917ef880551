package ec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// DescribeInstancesAPI はインスタンス検索に必要なEC2 APIのみを切り出したインターフェース
type DescribeInstancesAPI interface {
	ec2.DescribeInstancesAPIClient
}

// InstanceStateAPI は起動・停止の一括リクエストに必要なEC2 API
type InstanceStateAPI interface {
	StartInstances(ctx context.Context, params *ec2.StartInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StartInstancesOutput, error)
	StopInstances(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error)
}

// API はスケジューラが利用するEC2 APIの全体（*ec2.Client が満たす）
type API interface {
	DescribeInstancesAPI
	InstanceStateAPI
}

// InstanceState は検索対象とするインスタンスの状態
type InstanceState string

const (
	StateRunning InstanceState = InstanceState(types.InstanceStateNameRunning)
	StateStopped InstanceState = InstanceState(types.InstanceStateNameStopped)
)

// Valid は検索条件として受け付ける状態かどうかを返す
func (s InstanceState) Valid() bool {
	return s == StateRunning || s == StateStopped
}

// Action はインスタンスに対して発行する電源操作
type Action int

const (
	ActionStart Action = iota + 1
	ActionStop
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionStop:
		return "stop"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// TagPredicate は管理対象インスタンスを識別するタグのキーと値
type TagPredicate struct {
	Key   string
	Value string
}

// Valid はキー・値ともに空でないかを返す
func (t TagPredicate) Valid() bool {
	return t.Key != "" && t.Value != ""
}

func (t TagPredicate) String() string {
	return fmt.Sprintf("%s=%s", t.Key, t.Value)
}

// Instance EC2インスタンスの情報を格納する構造体
type Instance struct {
	InstanceId   string
	InstanceName string
	State        string
}
