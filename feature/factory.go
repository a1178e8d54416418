package feature

import (
	"time"

	"github.com/rushteam/menukit/core"
)

// TasteServiceFactory 是口味服务工厂，按常见组合一步创建服务。
type TasteServiceFactory struct{}

// NewTasteServiceFactory 创建口味服务工厂
func NewTasteServiceFactory() *TasteServiceFactory {
	return &TasteServiceFactory{}
}

// CreateFromStore 从 core.Store 创建口味服务（最常用）
func (f *TasteServiceFactory) CreateFromStore(store core.Store, opts ...ServiceOption) core.TasteService {
	return NewBaseTasteService(NewStoreTasteProvider(store), opts...)
}

// CreateWithCache 创建带内存缓存的 Store 口味服务
func (f *TasteServiceFactory) CreateWithCache(store core.Store, cacheSize int, cacheTTL time.Duration, opts ...ServiceOption) core.TasteService {
	cache := NewMemoryTasteCache(cacheSize, cacheTTL)
	opts = append(opts, WithCache(cache, cacheTTL))
	return f.CreateFromStore(store, opts...)
}

// CreateWithHistoryFallback 创建带历史推导降级的 Store 口味服务：
// 画像缺失的顾客用订单历史现场推导。
func (f *TasteServiceFactory) CreateWithHistoryFallback(
	store core.Store,
	orders core.OrderHistoryProvider,
	catalog core.CatalogProvider,
	opts ...ServiceOption,
) core.TasteService {
	opts = append(opts, WithFallback(NewHistoryTasteProvider(orders, catalog)))
	return f.CreateFromStore(store, opts...)
}

// CreateFromHistory 只用历史推导创建口味服务（无画像存储时）
func (f *TasteServiceFactory) CreateFromHistory(
	orders core.OrderHistoryProvider,
	catalog core.CatalogProvider,
	opts ...ServiceOption,
) core.TasteService {
	return NewBaseTasteService(NewHistoryTasteProvider(orders, catalog), opts...)
}
