package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ec2sched/internal/config"
)

// resolveStackName はコマンドライン引数または環境変数からスタック名を決定する
func resolveStackName(cmd *cobra.Command, stackName string) string {
	if stackName != "" {
		return stackName
	}
	envStack := os.Getenv("AWS_STACK_NAME")
	if envStack != "" {
		cmd.Println("🔍 環境変数 AWS_STACK_NAME の値 '" + envStack + "' を使用します")
	}
	return envStack
}

// resolveConfig は環境変数の設定を読み込み、--tag-key/--tag-value が指定されていれば上書きする
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	if f := cmd.Flag("tag-key"); f != nil && f.Changed {
		cfg.TagKey = tagKey
	}
	if f := cmd.Flag("tag-value"); f != nil && f.Changed {
		cfg.TagValue = tagValue
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("--tag-key/--tag-value: %w", err)
	}
	return cfg, nil
}
