package scorer

import (
	"context"
	"fmt"

	"github.com/rushteam/menukit/core"
	"github.com/rushteam/menukit/pipeline"
)

// Frequency 是频次策略：统计顾客全量历史中每个菜品的购买总量，
// 买得越多分越高。
//
// 核心思想："顾客反复购买的东西，就是他想要的东西"
//   - 跨全部订单按菜品累加 Quantity
//   - 不在目录快照中的菜品引用（下架/脏数据）静默跳过
//   - 按总量降序，平分按目录顺序，取 TopK
//
// 分数即购买总量，理由为 "ordered this {count} times"。
type Frequency struct {
	// TopK 返回 TopK 个候选，0 表示使用默认值（DefaultLimit × DefaultHeadroom）
	TopK int
}

var (
	_ Scorer        = (*Frequency)(nil)
	_ pipeline.Node = (*Frequency)(nil)
)

func (s *Frequency) Name() string        { return "score.frequency" }
func (s *Frequency) Kind() pipeline.Kind { return pipeline.KindScore }

// Process 实现 Node 接口，忽略输入直接产出候选。
func (s *Frequency) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Candidate,
) ([]*core.Candidate, error) {
	return s.Score(ctx, rctx)
}

func (s *Frequency) Score(
	ctx context.Context,
	rctx *core.RecommendContext,
) ([]*core.Candidate, error) {
	if rctx == nil || len(rctx.Orders) == 0 {
		return nil, nil
	}

	counts := core.QuantityByItem(rctx.Orders)
	if len(counts) == 0 {
		return nil, nil
	}

	// 沿目录顺序收集，保证平分时的确定性；目录外的引用自然被跳过
	out := make([]*core.Candidate, 0, len(counts))
	for _, item := range rctx.Catalog {
		if item == nil {
			continue
		}
		count, ok := counts[item.ID]
		if !ok {
			continue
		}
		c := core.NewCandidate(item)
		c.Score = float64(count)
		c.AddReason(fmt.Sprintf("ordered this %d times", count))
		c.AddStrategy(core.StrategyFrequency)
		c.Features["raw_"+core.StrategyFrequency] = float64(count)
		out = append(out, c)
	}

	sortByScoreDesc(out)

	topK := s.TopK
	if topK <= 0 {
		topK = defaultTopK()
	}
	return truncate(out, topK), nil
}
