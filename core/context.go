package core

import (
	"time"

	"github.com/rushteam/menukit/pkg/utils"
)

// RecommendContext 承载单次推荐请求的全部快照，贯穿整个 Pipeline 透传。
//
// 引擎每次请求只取一次订单历史和一次目录快照，所有策略共享同一份只读数据，
// 保证各策略看到一致的视图，也避免重复 I/O。请求结束后整个上下文被丢弃。
type RecommendContext struct {
	RequestID  string
	CustomerID string // 使用 string 类型（通用，支持所有 ID 格式）
	Scene      string

	// Now 是本次请求的时间基准，时效窗口以它为右端点。
	// 由引擎在请求入口统一注入（测试中可注入固定时钟）。
	Now time.Time

	// Orders 是顾客的全量订单历史（可能为空）
	Orders []*Order

	// Catalog 是本次请求的目录快照，只读共享
	Catalog []*MenuItem

	// Customer 是强类型顾客画像（可选）
	Customer *Customer

	// Tastes 是口味偏好，由 TasteService 加载（可选）。
	// 如果 Customer 不为空且带 Tastes，优先使用 Customer.Tastes。
	Tastes map[string]float64

	// Labels 是请求级标签，可驱动整个 Pipeline 行为
	// 例如：冷启动、常客、价格敏感等
	Labels map[string]utils.Label

	// Params 请求级上下文参数：time_of_day、table、device 等
	Params map[string]any

	ownedSet  map[string]bool
	catalogIx map[string]*MenuItem
}

// OwnedSet 返回顾客购买过的菜品 ID 集合（惰性构建并缓存在上下文内）。
// 非并发安全：引擎在并发扇出前各调用一次完成预热，并发阶段只读。
func (rctx *RecommendContext) OwnedSet() map[string]bool {
	if rctx.ownedSet == nil {
		rctx.ownedSet = OwnedItemIDs(rctx.Orders)
	}
	return rctx.ownedSet
}

// CatalogByID 返回目录快照的 ID 索引（惰性构建并缓存在上下文内）。
// 与 OwnedSet 相同的预热约定。
func (rctx *RecommendContext) CatalogByID() map[string]*MenuItem {
	if rctx.catalogIx == nil {
		ix := make(map[string]*MenuItem, len(rctx.Catalog))
		for _, item := range rctx.Catalog {
			if item != nil {
				ix[item.ID] = item
			}
		}
		rctx.catalogIx = ix
	}
	return rctx.catalogIx
}

// TasteWeight 获取口味亲和度：优先顾客画像，其次 Tastes 字段，未知返回 0。
func (rctx *RecommendContext) TasteWeight(key string) float64 {
	if rctx.Customer != nil && len(rctx.Customer.Tastes) > 0 {
		return rctx.Customer.TasteWeight(key)
	}
	if rctx.Tastes != nil {
		return rctx.Tastes[key]
	}
	return 0
}

// PutLabel 写入请求级 Label。
func (rctx *RecommendContext) PutLabel(key string, lbl utils.Label) {
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}

// GetLabel 获取请求级 Label。
func (rctx *RecommendContext) GetLabel(key string) (utils.Label, bool) {
	if rctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := rctx.Labels[key]
	return lbl, ok
}
