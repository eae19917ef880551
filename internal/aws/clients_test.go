package aws

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
)

func TestClientsAreLazilyInitializedOnce(t *testing.T) {
	c := NewAwsClientsFromConfig(aws.Config{Region: "ap-northeast-1"})

	assert.Equal(t, "ap-northeast-1", c.Region())
	assert.Nil(t, c.ec2)

	first := c.Ec2()
	assert.NotNil(t, first)
	assert.Same(t, first, c.Ec2())
	assert.Same(t, c.Cfn(), c.Cfn())
	assert.Same(t, c.CloudWatch(), c.CloudWatch())
}

func TestGetConfigReturnsCachedConfig(t *testing.T) {
	cached := aws.Config{Region: "us-west-2"}
	awsCtx := Context{config: &cached}

	cfg, err := awsCtx.GetConfig(t.Context())
	assert.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)
}
