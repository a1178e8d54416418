package feature

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rushteam/menukit/core"
	"github.com/rushteam/menukit/pipeline"
)

// DefaultBoostAlpha 是口味加成的默认强度。
const DefaultBoostAlpha = 0.2

// BoostNode 是口味加成节点（postprocess）：按顾客口味亲和度放大候选分数。
//
// 加成公式：score *= 1 + alpha * affinity，affinity 先查子品类再查品类，
// 查不到不加成。放大系数写入 Features["taste_boost"] 方便解释排序变化。
//
// 口味来源：优先使用 rctx.Tastes（引擎每次请求取一次，全链路共享）；
// 为空且配置了 Tastes 服务时现取。取不到口味按原样放行，加成是锦上
// 添花而非硬依赖。
//
// 注意：节点只改分数不重排，链路末端的 rerank.TopNNode 负责最终排序。
type BoostNode struct {
	Tastes core.TasteService
	Alpha  float64
	Logger zerolog.Logger
}

var _ pipeline.Node = (*BoostNode)(nil)

func (n *BoostNode) Name() string        { return "postprocess.taste_boost" }
func (n *BoostNode) Kind() pipeline.Kind { return pipeline.KindPostProcess }

func (n *BoostNode) Process(ctx context.Context, rctx *core.RecommendContext, candidates []*core.Candidate) ([]*core.Candidate, error) {
	tastes := rctx.Tastes
	if len(tastes) == 0 && n.Tastes != nil && rctx.CustomerID != "" {
		t, err := n.Tastes.GetTastes(ctx, rctx.CustomerID)
		if err != nil {
			n.Logger.Debug().Err(err).
				Str("customer_id", rctx.CustomerID).
				Msg("taste lookup failed, boost skipped")
			return candidates, nil
		}
		tastes = t
	}
	if len(tastes) == 0 {
		return candidates, nil
	}

	alpha := n.Alpha
	if alpha <= 0 {
		alpha = DefaultBoostAlpha
	}

	byID := rctx.CatalogByID()
	for _, cand := range candidates {
		if cand == nil {
			continue
		}
		item := cand.Item
		if item == nil {
			item = byID[cand.ID]
		}
		if item == nil {
			continue
		}

		affinity := tastes[item.Subcategory]
		if affinity == 0 {
			affinity = tastes[string(item.Category)]
		}
		if affinity <= 0 {
			continue
		}

		factor := 1 + alpha*affinity
		cand.Score *= factor
		if cand.Features == nil {
			cand.Features = make(map[string]float64)
		}
		cand.Features["taste_boost"] = factor
	}
	return candidates, nil
}
