package feature

import (
	"context"
	"time"
)

// TasteProvider 是口味画像的数据源抽象，采用策略模式。
// 不同的来源（Store Hash、Feast、历史推导）实现此接口。
//
// 约定：无数据返回空 map 而非错误；错误留给真正的数据源故障。
type TasteProvider interface {
	// Name 返回提供者名称（用于日志）
	Name() string

	// GetTastes 获取顾客口味亲和度。key 为品类或子品类，value 为 0-1 权重。
	GetTastes(ctx context.Context, customerID string) (map[string]float64, error)
}

// TasteCache 是口味画像的本地缓存抽象，减少对远程数据源的访问。
type TasteCache interface {
	// Get 查缓存。未命中或已过期返回 ok=false。
	Get(ctx context.Context, customerID string) (map[string]float64, bool)

	// Set 写缓存。ttl <= 0 时使用缓存自身的默认 TTL。
	Set(ctx context.Context, customerID string, tastes map[string]float64, ttl time.Duration)

	// Invalidate 失效单个顾客的缓存
	Invalidate(ctx context.Context, customerID string)

	// Clear 清空缓存
	Clear(ctx context.Context)
}
