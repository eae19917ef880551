package cfn

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
)

const ec2InstanceResourceType = "AWS::EC2::Instance"

// GetAllEc2FromStack はCloudFormationスタックからすべてのEC2インスタンスIDを取得します
func GetAllEc2FromStack(ctx context.Context, cfnClient DescribeStackResourcesAPI, stackName string) ([]string, error) {
	stackResources, err := GetStackResources(ctx, cfnClient, stackName)
	if err != nil {
		return nil, err
	}

	instanceIds := []string{}
	for _, resource := range stackResources {
		if awssdk.ToString(resource.ResourceType) == ec2InstanceResourceType && resource.PhysicalResourceId != nil {
			instanceIds = append(instanceIds, *resource.PhysicalResourceId)
		}
	}

	return instanceIds, nil
}
