package core

import "time"

// OrderLine 是订单中的一行：某个菜品及其数量、单价。
type OrderLine struct {
	MenuItemID     string  `json:"menu_item_id"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	Customizations string  `json:"customizations,omitempty"` // 如 "extra shot" / "oat milk"
}

// Order 是一次顾客消费事件，由历史方（OrderHistoryProvider）提供，创建后不可变。
//
// OrderedAt 为零值表示上游记录的时间戳无法解析（坏数据显式降级，而非静默异常）：
// 这类订单仍参与频次统计，但不参与时效（recency）窗口判断。
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	OrderedAt  time.Time   `json:"ordered_at"`
	Total      float64     `json:"total"`
	Note       string      `json:"note,omitempty"`
	Lines      []OrderLine `json:"lines"`
}

// QuantityByItem 汇总一批订单中每个菜品的购买总量。
func QuantityByItem(orders []*Order) map[string]int {
	counts := make(map[string]int)
	for _, o := range orders {
		if o == nil {
			continue
		}
		for _, line := range o.Lines {
			if line.MenuItemID == "" || line.Quantity <= 0 {
				continue
			}
			counts[line.MenuItemID] += line.Quantity
		}
	}
	return counts
}

// OwnedItemIDs 返回一批订单覆盖的菜品 ID 去重集合（顾客的 owned set）。
func OwnedItemIDs(orders []*Order) map[string]bool {
	owned := make(map[string]bool)
	for _, o := range orders {
		if o == nil {
			continue
		}
		for _, line := range o.Lines {
			if line.MenuItemID == "" {
				continue
			}
			owned[line.MenuItemID] = true
		}
	}
	return owned
}
