package command

import (
	"context"

	"github.com/gookit/color"
	"github.com/neko-project/nekopay/config"
	"github.com/neko-project/nekopay/model/service"
	"github.com/neko-project/nekopay/util/money"
	"github.com/spf13/cobra"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "拉取并打印当前汇率",
	Run: func(cmd *cobra.Command, args []string) {
		rates := service.NewDefaultRateProvider()
		rates.Refresh(context.Background())
		PrintRates(rates)
	},
}

// PrintRates 打印价格表
func PrintRates(rates *service.RateProvider) {
	table := rates.Table()
	for _, asset := range config.SupportedAssets {
		price, ok := table[asset]
		if !ok || !service.UsablePrice(price) {
			color.Warn.Printf("%-5s %s\n", asset, money.Placeholder)
			continue
		}
		color.Info.Printf("%-5s %s\n", asset, money.FormatMoney(price, "USD"))
	}
	color.Comment.Printf("%s (source: %s)\n", rates.Status(), rates.Source())
}
