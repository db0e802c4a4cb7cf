package command

import (
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/neko-project/nekopay/model/service"
)

// ConsoleRenderer 在终端展示收银台
type ConsoleRenderer struct {
	Out io.Writer
}

func (r *ConsoleRenderer) printf(style color.Style, format string, args ...interface{}) {
	if r.Out != nil {
		_, _ = fmt.Fprintf(r.Out, format, args...)
		return
	}
	style.Printf(format, args...)
}

func (r *ConsoleRenderer) ShowRedirectOverlay(details service.RedirectDetails) {
	r.printf(color.Style{color.FgCyan}, "Redirecting…\n  item:   %s\n  total:  %s\n  amount: %s\n  asset:  %s\n",
		details.Item, details.Total, details.Amount, details.Asset)
}

func (r *ConsoleRenderer) HideRedirectOverlay() {
	r.printf(color.Style{color.FgGray}, "Redirect cancelled\n")
}

func (r *ConsoleRenderer) Alert(message string) {
	r.printf(color.Style{color.FgRed, color.OpBold}, "%s\n", message)
}

func (r *ConsoleRenderer) Navigate(url string) {
	r.printf(color.Style{color.FgGreen}, "→ %s\n", url)
}

func (r *ConsoleRenderer) ShowSuccess(view service.SuccessView) {
	r.printf(color.Style{color.FgGreen, color.OpBold}, "%s\n", view.Title)
	r.printf(color.Style{color.FgWhite}, "  %s\n  email:  %s\n  item:   %s\n  total:  %s\n  method: %s\n",
		view.Description, view.Email, view.Item, view.Total, view.Method)
}

// RenderView 打印收银台当前状态
func (r *ConsoleRenderer) RenderView(view service.CheckoutView) {
	r.printf(color.Style{color.OpBold}, "%s %s\n", view.Product, view.Plan)
	r.printf(color.Style{color.FgWhite}, "  subtotal: %s\n  total:    %s\n  method:   %s\n", view.Subtotal, view.Total, view.State)
	if view.Regions.WalletBox {
		r.printf(color.Style{color.FgCyan}, "  pay:      %s %s (%s)\n  address:  %s\n",
			view.Wallet.Amount, view.Wallet.Asset, view.Wallet.FiatEquivalent, view.Wallet.Address)
	}
	if view.RatesStatus != "" {
		r.printf(color.Style{color.FgGray}, "  %s\n", view.RatesStatus)
	}
}

var statusStyle = color.Style{color.FgYellow}
