package command

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/neko-project/nekopay/config"
	"github.com/neko-project/nekopay/route"
	"github.com/neko-project/nekopay/task"
	"github.com/neko-project/nekopay/telegram"
	"github.com/neko-project/nekopay/util/log"
	"github.com/spf13/cobra"
)

var httpCmd = &cobra.Command{
	Use:   "http",
	Short: "发票中继服务",
}

var httpStartCmd = &cobra.Command{
	Use:   "start",
	Short: "启动发票中继服务",
	Run: func(cmd *cobra.Command, args []string) {
		HttpServerStart()
	},
}

func init() {
	httpCmd.AddCommand(httpStartCmd)
}

// HttpServerStart 启动 HTTP 服务，收到退出信号后优雅关闭
func HttpServerStart() {
	// telegram机器人启动
	go telegram.BotStart()
	// 定时任务
	go task.Start()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = config.AppDebug
	route.RegisterRoute(e)

	go func() {
		log.Sugar.Infof("[http] listening on %s", config.GetHttpListen())
		if err := e.Start(config.GetHttpListen()); err != nil && err != http.ErrServerClosed {
			log.Sugar.Fatalf("[http] server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Sugar.Error(err)
	}
	log.Sugar.Info("[http] server shutdown")
}
