package ec2

import (
	"errors"

	"github.com/aws/smithy-go"
)

// ErrInvalidInput は検索・操作の入力が不正な場合のエラー
var ErrInvalidInput = errors.New("invalid input")

// QueryError はインスタンス検索（DescribeInstances）の失敗を表す
type QueryError struct {
	State InstanceState
	Tag   TagPredicate
	Err   error
}

// Error は元のエラーメッセージをそのまま返す
func (e *QueryError) Error() string {
	return e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// CommandError は起動・停止リクエストの失敗を表す
type CommandError struct {
	Action      Action
	InstanceIds []string
	Err         error
}

// Error は元のエラーメッセージをそのまま返す
func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ErrorCode はAWS APIエラーのエラーコードを取り出す（APIエラーでなければ空文字）
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
