package scorer

import (
	"context"

	"github.com/rushteam/menukit/core"
	"github.com/rushteam/menukit/pipeline"
)

// popularityReason 是热门兜底的固定推荐理由。
const popularityReason = "popular choice among customers"

// Popularity 是热门兜底策略：顾客历史太薄（冷启动）时，
// 用全店销售聚合代替个性化信号。
//
// 排名完全来自目录方的聚合契约：只统计可售菜品，
// 按去重订单数降序、总售出数量降序。分数即全店订单数，
// 理由为 "popular choice among customers"。
//
// 输出形态与个性化链路一致，调用方无需区分两条路径。
type Popularity struct {
	// Catalog 提供热门聚合的目录方
	Catalog core.CatalogProvider

	// TopK 返回 TopK 个候选，0 表示使用默认值
	TopK int
}

var (
	_ Scorer        = (*Popularity)(nil)
	_ pipeline.Node = (*Popularity)(nil)
)

func (s *Popularity) Name() string        { return "score.popular" }
func (s *Popularity) Kind() pipeline.Kind { return pipeline.KindScore }

// Process 实现 Node 接口，忽略输入直接产出候选。
func (s *Popularity) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Candidate,
) ([]*core.Candidate, error) {
	return s.Score(ctx, rctx)
}

func (s *Popularity) Score(
	ctx context.Context,
	rctx *core.RecommendContext,
) ([]*core.Candidate, error) {
	if s.Catalog == nil {
		return nil, nil
	}

	topK := s.TopK
	if topK <= 0 {
		topK = defaultTopK()
	}

	populars, err := s.Catalog.GetPopularItems(ctx, topK)
	if err != nil {
		return nil, err
	}

	out := make([]*core.Candidate, 0, len(populars))
	for _, p := range populars {
		if p == nil || p.Item == nil {
			continue
		}
		c := core.NewCandidate(p.Item)
		c.Score = float64(p.OrderCount)
		c.AddReason(popularityReason)
		c.AddStrategy(core.StrategyPopular)
		c.Features["raw_"+core.StrategyPopular] = float64(p.OrderCount)
		out = append(out, c)
	}
	return out, nil
}
