package route

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/neko-project/nekopay/controller"
)

// RegisterRoute 路由注册
func RegisterRoute(e *echo.Echo) {
	RegisterWithControllers(e, controller.NewInvoiceController(), controller.NewRateController())
}

// RegisterWithControllers 使用指定的控制器注册路由
func RegisterWithControllers(e *echo.Echo, invoice *controller.InvoiceController, rates *controller.RateController) {
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodPost, http.MethodOptions, http.MethodGet},
		AllowHeaders: []string{echo.HeaderContentType},
	}))

	api := e.Group("/api")
	api.POST("/cryptobot/create-invoice", invoice.CreateInvoice)
	api.GET("/rates", rates.GetRates)
}
