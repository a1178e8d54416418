package filter

import (
	"context"

	"github.com/rushteam/menukit/core"
)

// AllergenFilter 是过敏原过滤器，过滤掉含有顾客过敏原的菜品。
//
// 过敏原优先取顾客画像（rctx.Customer.Allergens），
// 也可以在过滤器上直接配置补充名单（例如门店级规则）。
// 过敏原比较大小写不敏感。
type AllergenFilter struct {
	// Allergens 是补充的过敏原名单（可选）
	Allergens []string
}

var _ Filter = (*AllergenFilter)(nil)

func (f *AllergenFilter) Name() string {
	return "filter.allergen"
}

func (f *AllergenFilter) ShouldFilter(
	ctx context.Context,
	rctx *core.RecommendContext,
	cand *core.Candidate,
) (bool, error) {
	if cand == nil || cand.Item == nil {
		return false, nil
	}

	for _, allergen := range f.Allergens {
		if cand.Item.HasAllergen(allergen) {
			return true, nil
		}
	}

	if rctx != nil && rctx.Customer != nil {
		for _, allergen := range rctx.Customer.Allergens {
			if cand.Item.HasAllergen(allergen) {
				return true, nil
			}
		}
	}

	return false, nil
}
