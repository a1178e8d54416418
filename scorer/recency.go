package scorer

import (
	"context"
	"fmt"
	"time"

	"github.com/rushteam/menukit/core"
	"github.com/rushteam/menukit/pipeline"
)

// Recency 是时效策略：只统计滑动窗口内的订单，捕捉顾客最近的口味变化。
//
// 核心思想："最近在喝什么，比半年前喝过什么更说明问题"
//   - 窗口以 rctx.Now 为右端点，默认回看 30 天
//   - OrderedAt 为零值的订单（上游时间戳无法解析）不参与窗口判断，
//     这是坏数据的显式降级约定
//   - 窗口内按菜品累加 Quantity，目录外引用静默跳过
//
// 分数即窗口内购买总量，理由为 "recently ordered {count} times"。
type Recency struct {
	// TopK 返回 TopK 个候选，0 表示使用默认值
	TopK int

	// Window 滑动窗口长度，0 表示默认 30 天
	Window time.Duration
}

var (
	_ Scorer        = (*Recency)(nil)
	_ pipeline.Node = (*Recency)(nil)
)

func (s *Recency) Name() string        { return "score.recency" }
func (s *Recency) Kind() pipeline.Kind { return pipeline.KindScore }

// Process 实现 Node 接口，忽略输入直接产出候选。
func (s *Recency) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Candidate,
) ([]*core.Candidate, error) {
	return s.Score(ctx, rctx)
}

func (s *Recency) Score(
	ctx context.Context,
	rctx *core.RecommendContext,
) ([]*core.Candidate, error) {
	if rctx == nil || len(rctx.Orders) == 0 {
		return nil, nil
	}

	window := s.Window
	if window <= 0 {
		window = core.DefaultRecencyWindowDays * 24 * time.Hour
	}

	now := rctx.Now
	if now.IsZero() {
		now = time.Now()
	}

	recent := make([]*core.Order, 0, len(rctx.Orders))
	for _, o := range rctx.Orders {
		if o == nil || o.OrderedAt.IsZero() {
			continue
		}
		if now.Sub(o.OrderedAt) <= window {
			recent = append(recent, o)
		}
	}
	if len(recent) == 0 {
		return nil, nil
	}

	counts := core.QuantityByItem(recent)
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
		c.AddReason(fmt.Sprintf("recently ordered %d times", count))
		c.AddStrategy(core.StrategyRecency)
		c.Features["raw_"+core.StrategyRecency] = float64(count)
		out = append(out, c)
	}

	sortByScoreDesc(out)

	topK := s.TopK
	if topK <= 0 {
		topK = defaultTopK()
	}
	return truncate(out, topK), nil
}
