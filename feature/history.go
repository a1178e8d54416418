package feature

import (
	"context"

	"github.com/rushteam/menukit/core"
)

// HistoryTasteProvider 从订单历史现场推导口味亲和度，作为没有画像数据时的
// 降级数据源。
//
// 推导口径：每个菜品按其子品类与品类两个层级累计购买数量，再除以总购买
// 数量得到 0-1 的份额。例如一个总是点拿铁的顾客会得到
// {"coffee": 0.8, "drink": 0.8, "pastry": 0.2, "food": 0.2} 这样的画像。
type HistoryTasteProvider struct {
	orders  core.OrderHistoryProvider
	catalog core.CatalogProvider
}

var _ TasteProvider = (*HistoryTasteProvider)(nil)

// NewHistoryTasteProvider 创建历史推导数据源。
func NewHistoryTasteProvider(orders core.OrderHistoryProvider, catalog core.CatalogProvider) *HistoryTasteProvider {
	return &HistoryTasteProvider{
		orders:  orders,
		catalog: catalog,
	}
}

func (p *HistoryTasteProvider) Name() string { return "taste.history" }

func (p *HistoryTasteProvider) GetTastes(ctx context.Context, customerID string) (map[string]float64, error) {
	orders, err := p.orders.GetOrderHistory(ctx, customerID)
	if err != nil {
		if core.IsNotFound(err) {
			return map[string]float64{}, nil
		}
		return nil, err
	}
	if len(orders) == 0 {
		return map[string]float64{}, nil
	}

	items, err := p.catalog.GetMenuItems(ctx, false)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*core.MenuItem, len(items))
	for _, item := range items {
		if item != nil {
			byID[item.ID] = item
		}
	}

	counts := make(map[string]int)
	total := 0
	for _, o := range orders {
		if o == nil {
			continue
		}
		for _, line := range o.Lines {
			item, ok := byID[line.MenuItemID]
			if !ok || line.Quantity <= 0 {
				continue
			}
			if item.Subcategory != "" {
				counts[item.Subcategory] += line.Quantity
			}
			if item.Category != "" {
				counts[string(item.Category)] += line.Quantity
			}
			total += line.Quantity
		}
	}
	if total == 0 {
		return map[string]float64{}, nil
	}

	tastes := make(map[string]float64, len(counts))
	for key, count := range counts {
		tastes[key] = float64(count) / float64(total)
	}
	return tastes, nil
}
