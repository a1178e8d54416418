package filter

import (
	"context"

	"github.com/rushteam/menukit/core"
)

// OwnedFilter 是已购过滤器，过滤掉顾客买过的菜品（发现模式）。
//
// 频次/时效策略的本意就是推顾客买过的东西，所以默认链路不挂本过滤器；
// 想让结果全是"没尝试过的新品"时（例如发现页场景）由调用方挂载。
type OwnedFilter struct{}

var _ Filter = (*OwnedFilter)(nil)

func (f *OwnedFilter) Name() string {
	return "filter.owned"
}

func (f *OwnedFilter) ShouldFilter(
	ctx context.Context,
	rctx *core.RecommendContext,
	cand *core.Candidate,
) (bool, error) {
	if cand == nil || rctx == nil {
		return false, nil
	}
	return rctx.OwnedSet()[cand.ID], nil
}
