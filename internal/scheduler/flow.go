package scheduler

import (
	"fmt"

	ec2svc "ec2sched/internal/service/ec2"
)

// Flow は起動・停止それぞれの処理を特徴づける固定値
type Flow struct {
	Name        string               // "start" / "stop"
	Gerund      string               // エラーメッセージ用の進行形
	SourceState ec2svc.InstanceState // 検索対象の状態
	Action      ec2svc.Action
}

var (
	// StartFlow は停止中のインスタンスを起動する
	StartFlow = Flow{
		Name:        "start",
		Gerund:      "starting",
		SourceState: ec2svc.StateStopped,
		Action:      ec2svc.ActionStart,
	}

	// StopFlow は起動中のインスタンスを停止する
	StopFlow = Flow{
		Name:        "stop",
		Gerund:      "stopping",
		SourceState: ec2svc.StateRunning,
		Action:      ec2svc.ActionStop,
	}
)

// ParseFlow は "start" / "stop" からFlowを返す
func ParseFlow(name string) (Flow, error) {
	switch name {
	case StartFlow.Name:
		return StartFlow, nil
	case StopFlow.Name:
		return StopFlow, nil
	default:
		return Flow{}, fmt.Errorf("不明な処理 '%s' です（start または stop を指定してください）", name)
	}
}

func (f Flow) completedMessage() string {
	return fmt.Sprintf("EC2 instance %s process completed.", f.Name)
}

func (f Flow) errorMessage(err error) string {
	return fmt.Sprintf("Error %s EC2 instances: %s", f.Gerund, err)
}
