package filter

import (
	"context"

	"github.com/rushteam/menukit/core"
)

// Filter 是过滤器的抽象接口，用于判断一个候选是否应该被过滤掉。
// 返回 true 表示应该过滤（移除），false 表示保留。
//
// 默认推荐链路不挂任何过滤器（打分语义保持纯粹），
// 过滤器全部由调用方按需挂载。
type Filter interface {
	// Name 返回过滤器名称
	Name() string

	// ShouldFilter 判断候选是否应该被过滤
	ShouldFilter(ctx context.Context, rctx *core.RecommendContext, cand *core.Candidate) (bool, error)
}
