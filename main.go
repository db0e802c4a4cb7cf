package main

import (
	"github.com/gookit/color"
	"github.com/neko-project/nekopay/bootstrap"
	"github.com/neko-project/nekopay/config"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			color.Error.Println("启动服务错误: ", err)
		}
	}()
	color.Infof("%s 版本(%s)\n", config.GetAppName(), config.GetAppVersion())
	bootstrap.Start()
}

// go run . http start
// go run . checkout --query "?product=Pro&plan=Monthly&price=9.99" --email a@b.c --method crypto --asset TRX
