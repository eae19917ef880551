package ec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// TransitionInstances は指定されたインスタンスに起動または停止を一括で要求する
// 状態遷移の完了は待たない。idsが空でないことは呼び出し側が保証する
func TransitionInstances(ctx context.Context, client InstanceStateAPI, ids []string, action Action) error {
	var err error
	switch action {
	case ActionStart:
		_, err = client.StartInstances(ctx, &ec2.StartInstancesInput{
			InstanceIds: ids,
		})
	case ActionStop:
		_, err = client.StopInstances(ctx, &ec2.StopInstancesInput{
			InstanceIds: ids,
		})
	default:
		err = fmt.Errorf("%w: unsupported action %s", ErrInvalidInput, action)
	}

	if err != nil {
		return &CommandError{Action: action, InstanceIds: ids, Err: err}
	}
	return nil
}
