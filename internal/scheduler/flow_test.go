package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ec2svc "ec2sched/internal/service/ec2"
)

func TestParseFlow(t *testing.T) {
	flow, err := ParseFlow("start")
	require.NoError(t, err)
	assert.Equal(t, StartFlow, flow)

	flow, err = ParseFlow("stop")
	require.NoError(t, err)
	assert.Equal(t, StopFlow, flow)

	_, err = ParseFlow("reboot")
	assert.Error(t, err)
}

func TestFlowPredicates(t *testing.T) {
	assert.Equal(t, ec2svc.StateStopped, StartFlow.SourceState)
	assert.Equal(t, ec2svc.ActionStart, StartFlow.Action)
	assert.Equal(t, ec2svc.StateRunning, StopFlow.SourceState)
	assert.Equal(t, ec2svc.ActionStop, StopFlow.Action)
}

func TestFlowMessages(t *testing.T) {
	assert.Equal(t, "EC2 instance start process completed.", StartFlow.completedMessage())
	assert.Equal(t, "EC2 instance stop process completed.", StopFlow.completedMessage())
	assert.Equal(t, "Error starting EC2 instances: boom", StartFlow.errorMessage(errors.New("boom")))
	assert.Equal(t, "Error stopping EC2 instances: boom", StopFlow.errorMessage(errors.New("boom")))
}
