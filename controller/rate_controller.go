package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/neko-project/nekopay/model/response"
	"github.com/neko-project/nekopay/model/service"
)

// RateController 服务端价格表
type RateController struct {
	Rates *service.RateProvider
}

func NewRateController() *RateController {
	return &RateController{Rates: service.ServerRates()}
}

// GetRates GET /api/rates
func (c *RateController) GetRates(ctx echo.Context) error {
	ctx.Response().Header().Set("Cache-Control", "no-store")
	status := c.Rates.Status()
	if status == "" {
		status = service.RateStatusFallback
	}
	return ctx.JSON(http.StatusOK, response.RatesResponse{
		Ok:     true,
		Status: status,
		Source: c.Rates.Source(),
		Rates:  c.Rates.Table(),
	})
}
