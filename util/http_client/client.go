package http_client

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/neko-project/nekopay/config"
)

// GetHttpClient 获取请求客户端
func GetHttpClient(proxys ...string) *resty.Client {
	client := resty.New()
	// 优先使用传入的代理，否则使用全局代理
	if len(proxys) > 0 && proxys[0] != "" {
		client.SetProxy(proxys[0])
	} else if config.Proxy != "" {
		client.SetProxy(config.Proxy)
	}
	client.SetTimeout(time.Second * 5)
	return client
}

// GetNoStoreHttpClient 不走任何缓存的请求客户端，汇率查询使用
func GetNoStoreHttpClient() *resty.Client {
	return GetHttpClient().
		SetHeader("Cache-Control", "no-store").
		SetHeader("Pragma", "no-cache")
}
