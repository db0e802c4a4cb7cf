package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/neko-project/nekopay/model/response"
	"github.com/neko-project/nekopay/model/service"
	"github.com/neko-project/nekopay/util/constant"
	"github.com/neko-project/nekopay/util/log"
)

// InvoiceController 发票中继接口
type InvoiceController struct {
	Service *service.InvoiceService
}

func NewInvoiceController() *InvoiceController {
	return &InvoiceController{Service: service.NewDefaultInvoiceService()}
}

// CreateInvoice POST /api/cryptobot/create-invoice
func (c *InvoiceController) CreateInvoice(ctx echo.Context) error {
	ctx.Response().Header().Set("Cache-Control", "no-store")
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return c.serverError(ctx, err)
	}
	result, err := c.Service.CreateInvoice(ctx.Request().Context(), body)
	if err != nil {
		return c.fail(ctx, err)
	}
	return ctx.JSONBlob(http.StatusOK, result)
}

func (c *InvoiceController) fail(ctx echo.Context, err error) error {
	var upstream *constant.UpstreamError
	switch {
	case constant.IsKind(err, constant.KindConfiguration):
		log.Sugar.Error("[invoice] crypto pay token is not configured")
		return ctx.JSON(http.StatusInternalServerError, response.RelayErrorResponse{Error: constant.CodeMissingToken})
	case errors.Is(err, constant.InvoiceAmountInvalid):
		return ctx.JSON(http.StatusBadRequest, response.RelayErrorResponse{Error: constant.CodeInvalidAmount})
	case errors.As(err, &upstream):
		return ctx.JSON(http.StatusBadGateway, response.UpstreamErrorResponse{Error: upstream.Reason, Raw: upstream.Raw})
	default:
		return c.serverError(ctx, err)
	}
}

func (c *InvoiceController) serverError(ctx echo.Context, err error) error {
	log.Sugar.Errorf("[invoice] create invoice failed: %v", err)
	return ctx.JSON(http.StatusInternalServerError, response.RelayErrorResponse{
		Error:   constant.CodeServerError,
		Message: err.Error(),
	})
}
