package core

import "strings"

// Category 是菜单条目的一级品类。
type Category string

const (
	CategoryFood  Category = "food"
	CategoryDrink Category = "drink"
)

// MenuItem 是菜单目录中的一个条目，由目录方（CatalogProvider）维护，
// 引擎只读不写。
//
// 设计原则：
//   - ID 使用 string 类型（通用，支持所有 ID 格式）
//   - Ingredients 保持原始顺序，参与内容相似度的文本构建
//   - Available 为 false 的条目不参与热门兜底，个性化路径是否剔除
//     由过滤器决定
type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`              // food / drink
	Subcategory string   `json:"subcategory,omitempty"` // coffee / tea / pastry / sandwich / salad ...
	Price       float64  `json:"price"`
	Ingredients []string `json:"ingredients,omitempty"`
	Allergens   []string `json:"allergens,omitempty"`
	Calories    int      `json:"calories,omitempty"` // 0 表示未知
	Description string   `json:"description,omitempty"`
	Available   bool     `json:"available"`
}

// Document 构建该条目的内容文本：品类 + 子品类 + 配料，用空格连接。
// 相似度打分（TF-IDF 向量化）以此为输入。
func (m *MenuItem) Document() string {
	parts := make([]string, 0, 2+len(m.Ingredients))
	if m.Category != "" {
		parts = append(parts, string(m.Category))
	}
	if m.Subcategory != "" {
		parts = append(parts, m.Subcategory)
	}
	parts = append(parts, m.Ingredients...)
	return strings.Join(parts, " ")
}

// HasAllergen 检查条目是否含有指定过敏原（大小写不敏感）。
func (m *MenuItem) HasAllergen(allergen string) bool {
	for _, a := range m.Allergens {
		if strings.EqualFold(a, allergen) {
			return true
		}
	}
	return false
}

// PopularItem 是目录方聚合出的热门条目：按去重订单数（OrderCount）降序、
// 总售出数量（TotalQuantity）降序排名，只统计可售条目。
type PopularItem struct {
	Item          *MenuItem `json:"item"`
	OrderCount    int64     `json:"order_count"`
	TotalQuantity int64     `json:"total_quantity"`
}
