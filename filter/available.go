package filter

import (
	"context"

	"github.com/rushteam/menukit/core"
)

// AvailableFilter 是售卖状态过滤器，过滤掉当前不可售的菜品。
//
// 个性化打分默认不剔除不可售菜品（顾客常买的东西即使暂时售罄
// 也参与打分），需要"只推能买到的"时由调用方挂载本过滤器。
type AvailableFilter struct{}

var _ Filter = (*AvailableFilter)(nil)

func (f *AvailableFilter) Name() string {
	return "filter.available"
}

func (f *AvailableFilter) ShouldFilter(
	ctx context.Context,
	rctx *core.RecommendContext,
	cand *core.Candidate,
) (bool, error) {
	if cand == nil {
		return true, nil
	}

	item := cand.Item
	if item == nil && rctx != nil {
		item = rctx.CatalogByID()[cand.ID]
	}
	if item == nil {
		// 目录中找不到的候选视作悬空引用，一并剔除
		return true, nil
	}
	return !item.Available, nil
}
