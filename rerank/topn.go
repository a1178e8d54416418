package rerank

import (
	"context"
	"sort"

	"github.com/rushteam/menukit/core"
	"github.com/rushteam/menukit/pipeline"
)

// TopNNode 是一个 Top-N 节点：按分数降序稳定排序后截取前 N 个候选。
// 放在链路末端，保证过滤/加权节点改动候选后最终输出仍然有序。
//
// 使用场景：
//   - 合并打分后只返回 Top 5/10 个结果
//   - 过滤或口味加权之后重新收口排序
//
// 示例：
//
//	pipeline := &pipeline.Pipeline{
//	    Nodes: []pipeline.Node{
//	        &scorer.Combiner{...},       // 加权合并
//	        &filter.FilterNode{...},     // 过滤
//	        &rerank.TopNNode{N: 5},      // 最终 Top 5
//	    },
//	}
type TopNNode struct {
	// N 要保留的候选数量（Top N）
	// 如果 N <= 0，只排序不截断
	N int
}

var _ pipeline.Node = (*TopNNode)(nil)

func (n *TopNNode) Name() string {
	return "rerank.topn"
}

func (n *TopNNode) Kind() pipeline.Kind {
	return pipeline.KindRerank
}

func (n *TopNNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(candidates) == 0 {
		return candidates, nil
	}

	// 稳定排序：平分保持进入顺序，整条链路输出确定
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if n.N <= 0 || len(candidates) <= n.N {
		return candidates, nil
	}
	return candidates[:n.N], nil
}
