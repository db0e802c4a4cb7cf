package relay

import (
	"context"
	"sync"

	"github.com/neko-project/nekopay/model/mdb"
	"github.com/tidwall/gjson"
)

// CardBackend 银行卡支付的中继后端，返回跳转地址
type CardBackend interface {
	// GetName 后端名称，对应配置 card_backend
	GetName() string

	// CreatePaymentLink 为订单创建支付链接
	CreatePaymentLink(ctx context.Context, order *mdb.Order) (string, error)
}

// Factory 后端注册表
type Factory struct {
	backends map[string]CardBackend
	mu       sync.RWMutex
}

var defaultFactory *Factory

func init() {
	defaultFactory = &Factory{
		backends: make(map[string]CardBackend),
	}
}

// RegisterBackend 注册后端
func RegisterBackend(backend CardBackend) {
	defaultFactory.mu.Lock()
	defer defaultFactory.mu.Unlock()
	defaultFactory.backends[backend.GetName()] = backend
}

// GetBackend 获取后端
func GetBackend(name string) CardBackend {
	defaultFactory.mu.RLock()
	defer defaultFactory.mu.RUnlock()
	return defaultFactory.backends[name]
}

// GetAllBackendNames 获取所有注册的后端名称
func GetAllBackendNames() []string {
	defaultFactory.mu.RLock()
	defer defaultFactory.mu.RUnlock()

	names := make([]string, 0, len(defaultFactory.backends))
	for name := range defaultFactory.backends {
		names = append(names, name)
	}
	return names
}

// ExtractRedirectUrl 按优先级取第一个非空的字符串字段
func ExtractRedirectUrl(body []byte, paths ...string) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, path := range paths {
		result := gjson.GetBytes(body, path)
		if result.Type == gjson.String && result.Str != "" {
			return result.Str
		}
	}
	return ""
}
