package provider

import (
	"context"
	"sort"

	"github.com/rushteam/menukit/core"
)

// StaticProvider 是内存切片实现的目录 / 历史 / 画像提供者。
//
// 设计原则：
//   - 数据在构造时一次性给定，之后只读，可安全并发调用
//   - 热门聚合在读取时现算：只统计可售条目，按去重订单数降序、
//     总售出数量降序，同分保持目录顺序
//   - 未知顾客返回空历史而非错误，引擎按冷启动处理
type StaticProvider struct {
	items     []*core.MenuItem
	orders    []*core.Order
	customers map[string]*core.Customer
}

var (
	_ core.OrderHistoryProvider = (*StaticProvider)(nil)
	_ core.CatalogProvider      = (*StaticProvider)(nil)
	_ core.CustomerProvider     = (*StaticProvider)(nil)
)

// NewStaticProvider 创建静态提供者。items 为目录快照，orders 为全量订单
// （跨顾客，热门聚合需要全量）。
func NewStaticProvider(items []*core.MenuItem, orders []*core.Order) *StaticProvider {
	return &StaticProvider{
		items:     items,
		orders:    orders,
		customers: make(map[string]*core.Customer),
	}
}

// WithCustomers 注册顾客画像（可选协作方，链式调用）。
func (p *StaticProvider) WithCustomers(customers ...*core.Customer) *StaticProvider {
	for _, c := range customers {
		if c != nil && c.ID != "" {
			p.customers[c.ID] = c
		}
	}
	return p
}

func (p *StaticProvider) Name() string { return "provider.static" }

// GetOrderHistory 按顾客过滤全量订单，保持给定顺序。
func (p *StaticProvider) GetOrderHistory(ctx context.Context, customerID string) ([]*core.Order, error) {
	var out []*core.Order
	for _, o := range p.orders {
		if o != nil && o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (p *StaticProvider) GetMenuItems(ctx context.Context, availableOnly bool) ([]*core.MenuItem, error) {
	out := make([]*core.MenuItem, 0, len(p.items))
	for _, item := range p.items {
		if item == nil {
			continue
		}
		if availableOnly && !item.Available {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// GetPopularItems 现场聚合热门排行。
//
// 统计口径：
//   - 去重订单数：同一订单内同一菜品只计一次
//   - 总售出数量：跨订单累加 Quantity
//   - 只统计目录中存在且可售的菜品；从未被点过的菜品不进排行
func (p *StaticProvider) GetPopularItems(ctx context.Context, limit int) ([]*core.PopularItem, error) {
	type tally struct {
		orders   int64
		quantity int64
	}
	counts := make(map[string]*tally)
	for _, o := range p.orders {
		if o == nil {
			continue
		}
		seen := make(map[string]bool)
		for _, line := range o.Lines {
			if line.MenuItemID == "" || line.Quantity <= 0 {
				continue
			}
			t := counts[line.MenuItemID]
			if t == nil {
				t = &tally{}
				counts[line.MenuItemID] = t
			}
			if !seen[line.MenuItemID] {
				t.orders++
				seen[line.MenuItemID] = true
			}
			t.quantity += int64(line.Quantity)
		}
	}

	// 按目录顺序收集，sort.SliceStable 之后同分顺序即目录顺序
	ranked := make([]*core.PopularItem, 0, len(counts))
	for _, item := range p.items {
		if item == nil || !item.Available {
			continue
		}
		t, ok := counts[item.ID]
		if !ok {
			continue
		}
		ranked = append(ranked, &core.PopularItem{
			Item:          item,
			OrderCount:    t.orders,
			TotalQuantity: t.quantity,
		})
	}
	sortPopular(ranked)

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// sortPopular 按去重订单数降序、总售出数量降序稳定排序，同分保持原有顺序。
func sortPopular(ranked []*core.PopularItem) {
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].OrderCount != ranked[j].OrderCount {
			return ranked[i].OrderCount > ranked[j].OrderCount
		}
		return ranked[i].TotalQuantity > ranked[j].TotalQuantity
	})
}

func (p *StaticProvider) GetCustomer(ctx context.Context, customerID string) (*core.Customer, error) {
	c, ok := p.customers[customerID]
	if !ok {
		return nil, core.NewDomainError(core.ModuleProvider, core.ErrorCodeNotFound,
			"customer not found: "+customerID)
	}
	return c, nil
}
