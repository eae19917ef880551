package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ec2sched/internal/aws"
	"ec2sched/internal/config"
	"ec2sched/internal/service/common"
)

// AppName はコマンド名
const AppName = "ec2sched"

var (
	region   string
	profile  string
	tagKey   string
	tagValue string

	awsCtx     aws.Context
	awsClients *aws.Clients
	appCfg     config.Config
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   AppName,
	Short: "タグ指定でEC2インスタンスを起動・停止するスケジューラの運用ツール",
	Long: `AutoScheduleタグ（TAG_KEY/TAG_VALUE）が付与されたEC2インスタンスを
起動・停止するLambdaハンドラーと同じ処理を、ローカルから確認・実行するためのツールです。`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&region, "region", "R", "", "AWSリージョン")
	RootCmd.PersistentFlags().StringVarP(&profile, "profile", "P", "", "AWSプロファイル")
	RootCmd.PersistentFlags().StringVar(&tagKey, "tag-key", "", "対象タグのキー（デフォルト: 環境変数 TAG_KEY または AutoSchedule）")
	RootCmd.PersistentFlags().StringVar(&tagValue, "tag-value", "", "対象タグの値（デフォルト: 環境変数 TAG_VALUE または True）")

	// コマンド実行前に共通でプロファイル・設定・AWSクライアントを準備する
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// ヘルプ・バージョンコマンドの場合はスキップ
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		cmd.SilenceUsage = true

		resolveProfile(cmd)

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("%s 設定エラー: %w", common.ErrorIcon, err)
		}
		appCfg = cfg

		awsCtx = aws.Context{Profile: profile, Region: region}
		clients, err := aws.NewAwsClients(cmd.Context(), awsCtx)
		if err != nil {
			return fmt.Errorf("%s AWS設定の読み込みエラー: %w", common.ErrorIcon, err)
		}
		awsClients = clients
		return nil
	}
}

// resolveProfile はプロファイル未指定の場合に環境変数 AWS_PROFILE を使用する
// どちらもなければデフォルトの認証情報チェーンに任せる
func resolveProfile(cmd *cobra.Command) {
	if profile != "" {
		return
	}
	envProfile := os.Getenv("AWS_PROFILE")
	if envProfile == "" {
		return
	}
	profile = envProfile
	cmd.Println(common.SearchIcon + " 環境変数 AWS_PROFILE の値 '" + profile + "' を使用します")
}
