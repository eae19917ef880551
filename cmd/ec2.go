package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"ec2sched/internal/logging"
	"ec2sched/internal/scheduler"
	"ec2sched/internal/service/cfn"
	"ec2sched/internal/service/common"
	ec2svc "ec2sched/internal/service/ec2"
)

var lsStackName string

var lsCmd = &cobra.Command{
	Use:       "ls <start|stop>",
	Short:     "処理対象となるEC2インスタンスを表示するコマンド",
	ValidArgs: []string{scheduler.StartFlow.Name, scheduler.StopFlow.Name},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Long: `start/stop 処理を実行した場合に対象となるEC2インスタンスを表示します。
インスタンスの状態は変更しません。

例:
  ` + AppName + ` ls start -P my-profile
  ` + AppName + ` ls stop -P my-profile -S my-stack`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flow, err := scheduler.ParseFlow(args[0])
		if err != nil {
			return err
		}

		tag := appCfg.Tag()
		cmd.Printf("%s タグ '%s' を持つ %s 状態のインスタンスを検索中...\n", common.SearchIcon, tag, flow.SourceState)

		instances, err := ec2svc.ListCandidates(cmd.Context(), awsClients.Ec2(), flow.SourceState, tag)
		if err != nil {
			return fmt.Errorf("%s EC2インスタンス一覧の取得に失敗: %w", common.ErrorIcon, err)
		}

		if stack := resolveStackName(cmd, lsStackName); stack != "" {
			ids, err := cfn.GetAllEc2FromStack(cmd.Context(), awsClients.Cfn(), stack)
			if err != nil {
				return fmt.Errorf("%s %w", common.ErrorIcon, err)
			}
			instances = ec2svc.FilterByIds(instances, ids)
		}

		common.DisplayList(cmd.OutOrStdout(), instances, fmt.Sprintf("%s対象のEC2インスタンス", flow.Name), instancesToTableData, &common.DisplayOptions{
			ShowCount:    true,
			EmptyMessage: fmt.Sprintf("%s 対象となるEC2インスタンスはありません", common.InfoIcon),
		})
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:       "run <start|stop>",
	Short:     "Lambdaと同じ起動・停止処理をローカルで実行するコマンド",
	ValidArgs: []string{scheduler.StartFlow.Name, scheduler.StopFlow.Name},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Long: `Lambdaハンドラーと同じ処理（検索→一括起動/停止）を実行し、結果をJSONで表示します。

例:
  ` + AppName + ` run start -P my-profile
  ` + AppName + ` run stop -P my-profile --tag-key Schedule --tag-value office-hours`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flow, err := scheduler.ParseFlow(args[0])
		if err != nil {
			return err
		}

		logger, err := logging.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		h := scheduler.NewWithClients(awsClients, appCfg, flow, scheduler.WithLogger(logger))
		result, _ := h.Handle(cmd.Context(), nil)

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		if result.StatusCode != 200 {
			return fmt.Errorf("%s %s", common.ErrorIcon, result.Body)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", common.SuccessIcon, result.Body)
		return nil
	},
}

// instancesToTableData はインスタンス一覧をテーブル表示用のデータに変換する
func instancesToTableData(instances []ec2svc.Instance) ([]common.TableColumn, [][]string) {
	columns := []common.TableColumn{
		{Header: "インスタンスID"},
		{Header: "インスタンス名"},
		{Header: "状態"},
	}

	data := make([][]string, len(instances))
	for i, instance := range instances {
		data[i] = []string{instance.InstanceId, instance.InstanceName, instance.State}
	}
	return columns, data
}

func init() {
	RootCmd.AddCommand(lsCmd)
	RootCmd.AddCommand(runCmd)

	lsCmd.Flags().StringVarP(&lsStackName, "stack", "S", "", "CloudFormationスタック名（指定時はスタック内のインスタンスに絞り込む）")
}
