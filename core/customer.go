package core

import "time"

// Customer 是顾客画像的核心抽象。
//
// 一句话定义：顾客画像 = 推荐链路的"全局上下文 + 口味信号 + 约束来源"
//
// 它不是某一个 Node，而是：
//   - 被所有 Node 共享（挂在 RecommendContext 上）
//   - 驱动口味加权（BoostNode）与过敏原过滤（AllergenFilter）
//   - 可以随消费持续演进
//
// 设计要点：
//
//	维度          作用
//	静态属性      识别 / 展示
//	口味偏好      加权调分
//	过敏原        硬过滤
//	到店统计      冷启动判断 / 运营
type Customer struct {
	ID   string
	Name string

	// Tastes 是口味偏好画像。
	// key: 品类或子品类（如 "coffee"、"pastry"），value: 亲和度权重 (0-1)
	Tastes map[string]float64

	// Allergens 是顾客需要规避的过敏原（如 "nuts"、"dairy"）
	Allergens []string

	// 到店统计
	VisitCount int
	FirstVisit time.Time
	LastVisit  time.Time
}

// NewCustomer 创建一个新的顾客画像。
func NewCustomer(id string) *Customer {
	return &Customer{
		ID:     id,
		Tastes: make(map[string]float64),
	}
}

// UpdateTaste 更新口味偏好权重。
func (c *Customer) UpdateTaste(key string, weight float64) {
	if c.Tastes == nil {
		c.Tastes = make(map[string]float64)
	}
	c.Tastes[key] = weight
}

// TasteWeight 获取口味偏好权重，未知口味返回 0。
func (c *Customer) TasteWeight(key string) float64 {
	if c.Tastes == nil {
		return 0
	}
	return c.Tastes[key]
}

// RecordVisit 记录一次到店。
func (c *Customer) RecordVisit(at time.Time) {
	c.VisitCount++
	if c.FirstVisit.IsZero() || at.Before(c.FirstVisit) {
		c.FirstVisit = at
	}
	if at.After(c.LastVisit) {
		c.LastVisit = at
	}
}
