package scorer

import (
	"context"
	"sort"

	"github.com/rushteam/menukit/core"
)

// Scorer 是单个推荐策略的统一接口：读取请求快照，产出带分候选。
//
// 约定：
//   - 每个候选携带恰好一个 Reason 和一个 Strategy 标识，分数为策略本地分
//     （不同策略间不可比，合并权重在 Combiner 上配置）
//   - 空输入（空历史/空目录/无相似基础）返回空列表和 nil error
//   - 数据源失败返回 DATA_UNAVAILABLE，由上层决定跳过还是上抛
//
// 所有内置 Scorer 同时实现 pipeline.Node，可以单独挂进 Pipeline 使用。
type Scorer interface {
	Name() string
	Score(ctx context.Context, rctx *core.RecommendContext) ([]*core.Candidate, error)
}

// sortByScoreDesc 按分数降序稳定排序：分数相同的候选保持进入顺序
// （各策略按目录顺序产出候选，因此平分时目录顺序即最终顺序）。
func sortByScoreDesc(candidates []*core.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}

// truncate 截断候选列表到前 n 个；n <= 0 表示不截断。
func truncate(candidates []*core.Candidate, n int) []*core.Candidate {
	if n > 0 && len(candidates) > n {
		return candidates[:n]
	}
	return candidates
}

// defaultTopK 返回策略默认的候选数：默认返回条数 × 合并余量倍数。
func defaultTopK() int {
	return core.DefaultLimit * core.DefaultHeadroom
}
