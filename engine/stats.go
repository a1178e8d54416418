package engine

import (
	"context"
	"sort"

	"github.com/rushteam/menukit/core"
)

// maxTopItems 是消费统计中最常点菜品的最大条数。
const maxTopItems = 5

// ItemCount 是某个菜品的累计购买量。
type ItemCount struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

// Stats 是一个顾客的消费统计。
type Stats struct {
	CustomerID        string      `json:"customer_id"`
	TotalOrders       int         `json:"total_orders"`
	TotalSpent        float64     `json:"total_spent"`
	AverageOrderValue float64     `json:"average_order_value"`
	TopItems          []ItemCount `json:"top_items"` // 按购买量降序，至多 5 条
}

// CustomerStats 汇总一个顾客的消费统计：订单数、累计消费、平均单价、
// 最常点的菜品。未知顾客返回全零统计而非错误；菜品名从目录快照解析
// （含暂停售卖的条目），目录里已不存在的引用直接用 ID 展示。
func (e *Engine) CustomerStats(ctx context.Context, customerID string) (*Stats, error) {
	orders, err := e.orders.GetOrderHistory(ctx, customerID)
	if err != nil {
		if !core.IsNotFound(err) {
			return nil, asDataUnavailable(err)
		}
		orders = nil
	}

	stats := &Stats{CustomerID: customerID}
	if len(orders) == 0 {
		return stats, nil
	}

	var spent float64
	for _, o := range orders {
		if o == nil {
			continue
		}
		stats.TotalOrders++
		if o.Total > 0 {
			spent += o.Total
			continue
		}
		// Total 缺失时按行补算
		for _, line := range o.Lines {
			spent += float64(line.Quantity) * line.UnitPrice
		}
	}
	stats.TotalSpent = spent
	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = spent / float64(stats.TotalOrders)
	}

	catalog, err := e.catalog.GetMenuItems(ctx, false)
	if err != nil {
		return nil, asDataUnavailable(err)
	}
	byID := make(map[string]*core.MenuItem, len(catalog))
	for _, item := range catalog {
		if item != nil {
			byID[item.ID] = item
		}
	}

	counts := core.QuantityByItem(orders)
	top := make([]ItemCount, 0, len(counts))
	// 沿目录顺序收集，平分时顺序确定；目录外的引用补在末尾（按 ID 升序）
	for _, item := range catalog {
		if item == nil {
			continue
		}
		if qty, ok := counts[item.ID]; ok {
			top = append(top, ItemCount{MenuItemID: item.ID, Name: item.Name, Quantity: qty})
			delete(counts, item.ID)
		}
	}
	if len(counts) > 0 {
		dangling := make([]ItemCount, 0, len(counts))
		for id, qty := range counts {
			dangling = append(dangling, ItemCount{MenuItemID: id, Name: id, Quantity: qty})
		}
		sort.Slice(dangling, func(i, j int) bool { return dangling[i].MenuItemID < dangling[j].MenuItemID })
		top = append(top, dangling...)
	}

	sort.SliceStable(top, func(i, j int) bool { return top[i].Quantity > top[j].Quantity })
	if len(top) > maxTopItems {
		top = top[:maxTopItems]
	}
	stats.TopItems = top
	return stats, nil
}
