package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// Clients はAWS設定と各サービスクライアントを管理
type Clients struct {
	cfg aws.Config

	// 遅延初期化されるクライアント群
	ec2        *ec2.Client
	cfn        *cloudformation.Client
	cloudWatch *cloudwatch.Client
}

// NewAwsClients は認証情報からAWS設定を読み込んでクライアント管理構造体を作成
func NewAwsClients(ctx context.Context, awsCtx Context) (*Clients, error) {
	cfg, err := awsCtx.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	return NewAwsClientsFromConfig(cfg), nil
}

// NewAwsClientsFromConfig は読み込み済みのAWS設定からクライアント管理構造体を作成
func NewAwsClientsFromConfig(cfg aws.Config) *Clients {
	return &Clients{cfg: cfg}
}

// Region は設定されているリージョンを返す
func (c *Clients) Region() string {
	return c.cfg.Region
}

// Ec2 は遅延初期化でEC2クライアントを取得
func (c *Clients) Ec2() *ec2.Client {
	if c.ec2 == nil {
		c.ec2 = ec2.NewFromConfig(c.cfg)
	}
	return c.ec2
}

// Cfn は遅延初期化でCloudFormationクライアントを取得
func (c *Clients) Cfn() *cloudformation.Client {
	if c.cfn == nil {
		c.cfn = cloudformation.NewFromConfig(c.cfg)
	}
	return c.cfn
}

// CloudWatch は遅延初期化でCloudWatchクライアントを取得
func (c *Clients) CloudWatch() *cloudwatch.Client {
	if c.cloudWatch == nil {
		c.cloudWatch = cloudwatch.NewFromConfig(c.cfg)
	}
	return c.cloudWatch
}
