package engine

import (
	"context"

	"github.com/rushteam/menukit/core"
)

// complementaryReason 是搭配推荐的固定理由。
const complementaryReason = "Great combination with your selection"

// DefaultComplementaryLimit 是搭配推荐的默认返回条目数。
const DefaultComplementaryLimit = 3

// maxPerAnchor 是每个已选菜品最多带出的搭配数。
const maxPerAnchor = 2

// ComplementaryItems 为一组已选菜品推荐搭配（点咖啡配点心、点餐配饮品）。
//
// 规则式搭配，不依赖顾客历史：
//   - 咖啡类饮品：带出至多 2 个糕点
//   - 三明治 / 沙拉类餐食：带出至多 2 个饮品
//
// 已选菜品本身绝不出现在结果中；按 ID 去重；遍历顺序（入参顺序 ×
// 目录顺序）即输出顺序，结果确定。空入参或无可搭配项返回空列表。
func (e *Engine) ComplementaryItems(ctx context.Context, itemIDs []string, limit int) ([]*core.Recommendation, error) {
	if limit <= 0 {
		limit = DefaultComplementaryLimit
	}
	if len(itemIDs) == 0 {
		return nil, nil
	}

	catalog, err := e.catalog.GetMenuItems(ctx, true)
	if err != nil {
		return nil, asDataUnavailable(err)
	}

	byID := make(map[string]*core.MenuItem, len(catalog))
	var pastries, drinks []*core.MenuItem
	for _, item := range catalog {
		if item == nil {
			continue
		}
		byID[item.ID] = item
		switch {
		case item.Category == core.CategoryFood && item.Subcategory == "pastry":
			pastries = append(pastries, item)
		case item.Category == core.CategoryDrink:
			drinks = append(drinks, item)
		}
	}

	given := make(map[string]bool, len(itemIDs))
	for _, id := range itemIDs {
		given[id] = true
	}

	seen := make(map[string]bool)
	out := make([]*core.Recommendation, 0, limit)

	add := func(partners []*core.MenuItem) bool {
		taken := 0
		for _, p := range partners {
			if taken == maxPerAnchor {
				break
			}
			taken++
			if given[p.ID] || seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			out = append(out, &core.Recommendation{
				Item:       p,
				Score:      1,
				Reason:     complementaryReason,
				Strategies: []string{core.StrategyComplementary},
			})
			if len(out) == limit {
				return true
			}
		}
		return false
	}

	for _, id := range itemIDs {
		anchor := byID[id]
		if anchor == nil {
			continue
		}
		var full bool
		switch {
		case anchor.Category == core.CategoryDrink && anchor.Subcategory == "coffee":
			full = add(pastries)
		case anchor.Category == core.CategoryFood &&
			(anchor.Subcategory == "sandwich" || anchor.Subcategory == "salad"):
			full = add(drinks)
		}
		if full {
			break
		}
	}
	return out, nil
}
