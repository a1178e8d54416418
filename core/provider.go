package core

import "context"

// OrderHistoryProvider 是订单历史的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（provider / store）实现
//   - 引擎通过构造注入持有句柄，不使用全局单例，便于用假实现做单元测试
//   - 只读：引擎不通过它写任何数据
//
// 错误约定：
//   - 顾客不存在：返回 NOT_FOUND（引擎按空历史处理，不视为失败）
//   - 数据源不可达 / 坏数据：返回 DATA_UNAVAILABLE（引擎原样上抛）
type OrderHistoryProvider interface {
	// GetOrderHistory 获取一个顾客的全量订单历史
	GetOrderHistory(ctx context.Context, customerID string) ([]*Order, error)
}

// CatalogProvider 是菜单目录的领域接口。
//
// 错误约定与 OrderHistoryProvider 相同；空目录返回空切片而非错误。
type CatalogProvider interface {
	// GetMenuItems 获取目录快照。availableOnly 为 true 时只返回可售条目。
	GetMenuItems(ctx context.Context, availableOnly bool) ([]*MenuItem, error)

	// GetPopularItems 获取热门聚合：只统计可售条目，按去重订单数降序、
	// 总售出数量降序，取前 limit 个。
	GetPopularItems(ctx context.Context, limit int) ([]*PopularItem, error)
}

// CustomerProvider 是顾客画像的领域接口（可选协作方）。
// 画像缺失返回 NOT_FOUND，引擎按匿名顾客处理。
type CustomerProvider interface {
	// GetCustomer 获取顾客画像
	GetCustomer(ctx context.Context, customerID string) (*Customer, error)
}

// TasteService 是口味偏好特征的统一接口，提供顾客口味亲和度的获取能力。
// 采用策略模式，支持多种实现（Store、Feast、历史推导降级等）。
//
// ID 类型：使用 string（通用，支持所有 ID 格式）
type TasteService interface {
	// Name 返回服务名称（用于日志/监控）
	Name() string

	// GetTastes 获取顾客口味亲和度。
	// key: 品类或子品类，value: 亲和度权重 (0-1)。
	// 无数据时返回空 map 而非错误。
	GetTastes(ctx context.Context, customerID string) (map[string]float64, error)

	// Close 关闭服务，释放资源
	Close() error
}
