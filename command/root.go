package command

import (
	"github.com/neko-project/nekopay/config"
	"github.com/spf13/cobra"

	// 注册银行卡支付后端
	_ "github.com/neko-project/nekopay/relay/cryptobot"
	_ "github.com/neko-project/nekopay/relay/customeu"
)

var rootCmd = &cobra.Command{
	Use:     "nekopay",
	Short:   "Neko checkout pricing and invoice relay",
	Version: config.GetAppVersion(),
}

func init() {
	rootCmd.AddCommand(httpCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(checkoutCmd)
}

// Execute 执行命令
func Execute() error {
	return rootCmd.Execute()
}
