package ec2

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ec2sched/internal/service/ec2/ec2test"
)

func TestTransitionInstances(t *testing.T) {
	ids := []string{"i-1", "i-2", "i-3"}

	t.Run("Start", func(t *testing.T) {
		client := &ec2test.Client{}

		err := TransitionInstances(t.Context(), client, ids, ActionStart)

		require.NoError(t, err)
		assert.Equal(t, [][]string{ids}, client.StartCalls)
		assert.Empty(t, client.StopCalls)
	})

	t.Run("Stop", func(t *testing.T) {
		client := &ec2test.Client{}

		err := TransitionInstances(t.Context(), client, ids, ActionStop)

		require.NoError(t, err)
		assert.Equal(t, [][]string{ids}, client.StopCalls)
		assert.Empty(t, client.StartCalls)
	})

	t.Run("UnknownAction", func(t *testing.T) {
		client := &ec2test.Client{}

		err := TransitionInstances(t.Context(), client, ids, Action(0))

		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Empty(t, client.StartCalls)
		assert.Empty(t, client.StopCalls)
	})
}

func TestTransitionInstancesUpdatesProviderState(t *testing.T) {
	client := &ec2test.Client{
		Instances: []ec2test.Instance{
			{ID: "i-1", State: types.InstanceStateNameRunning},
			{ID: "i-2", State: types.InstanceStateNameRunning},
		},
	}

	require.NoError(t, TransitionInstances(t.Context(), client, []string{"i-2"}, ActionStop))

	assert.Equal(t, types.InstanceStateNameRunning, client.Instances[0].State)
	assert.Equal(t, types.InstanceStateNameStopping, client.Instances[1].State)
}

func TestTransitionInstancesCommandError(t *testing.T) {
	cause := errors.New("IncorrectInstanceState")
	client := &ec2test.Client{StartErr: cause}

	err := TransitionInstances(t.Context(), client, []string{"i-1"}, ActionStart)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, ActionStart, cmdErr.Action)
	assert.Equal(t, []string{"i-1"}, cmdErr.InstanceIds)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "IncorrectInstanceState", err.Error())
	assert.Len(t, client.StartCalls, 1)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "start", ActionStart.String())
	assert.Equal(t, "stop", ActionStop.String())
	assert.Equal(t, "Action(7)", Action(7).String())
}
