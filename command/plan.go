package command

import (
	"context"

	"github.com/gookit/color"
	"github.com/neko-project/nekopay/config"
	"github.com/neko-project/nekopay/model/dao"
	"github.com/neko-project/nekopay/model/data"
	"github.com/spf13/cobra"
)

var (
	planProduct  string
	planName     string
	planPrice    string
	planCurrency string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "选择套餐，写入收银台交接数据",
	Run: func(cmd *cobra.Command, args []string) {
		payload := data.BuildPayloadFromPlan(planProduct, planName, planPrice, planCurrency)
		if err := data.SetCheckoutPayload(context.Background(), dao.Slots, payload); err != nil {
			color.Warn.Printf("套餐未保存: %v\n", err)
			return
		}
		if config.GetStoreDriver() == config.StoreDriverMemory {
			color.Warn.Println("store_driver=memory，套餐只在当前进程内有效")
		}
		color.Info.Printf("已选择 %s %s %.2f %s\n", payload.Product, payload.Plan, payload.Price, payload.Currency)
	},
}

func init() {
	planCmd.Flags().StringVar(&planProduct, "product", "", "商品名称")
	planCmd.Flags().StringVar(&planName, "plan", "", "套餐名称")
	planCmd.Flags().StringVar(&planPrice, "price", "0", "套餐价格")
	planCmd.Flags().StringVar(&planCurrency, "currency", "USD", "法币币种")
}
