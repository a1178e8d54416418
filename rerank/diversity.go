package rerank

import (
	"context"

	"github.com/rushteam/menukit/core"
	"github.com/rushteam/menukit/pipeline"
)

// Diversity 是一个多样性 ReRank 节点：限制每个子品类的候选数量，
// 避免榜单被单一子品类刷屏（例如清一色的咖啡）。
//
// 分组 key 优先取菜品的 Subcategory，为空时退回 Category。
// 默认链路不挂本节点，由调用方按场景挂载。
type Diversity struct {
	// MaxPerKey 每个子品类最多保留的候选数，<= 0 时按 1 处理
	MaxPerKey int
}

var _ pipeline.Node = (*Diversity)(nil)

func (n *Diversity) Name() string {
	return "rerank.diversity"
}

func (n *Diversity) Kind() pipeline.Kind {
	return pipeline.KindRerank
}

func (n *Diversity) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(candidates) == 0 {
		return candidates, nil
	}

	maxPerKey := n.MaxPerKey
	if maxPerKey <= 0 {
		maxPerKey = 1
	}

	seen := make(map[string]int, 16)
	out := make([]*core.Candidate, 0, len(candidates))

	for _, cand := range candidates {
		if cand == nil {
			continue
		}

		key := n.groupKey(rctx, cand)
		if key == "" {
			out = append(out, cand)
			continue
		}
		if seen[key] >= maxPerKey {
			continue
		}
		seen[key]++
		out = append(out, cand)
	}

	return out, nil
}

func (n *Diversity) groupKey(rctx *core.RecommendContext, cand *core.Candidate) string {
	item := cand.Item
	if item == nil && rctx != nil {
		item = rctx.CatalogByID()[cand.ID]
	}
	if item == nil {
		return ""
	}
	if item.Subcategory != "" {
		return item.Subcategory
	}
	return string(item.Category)
}
