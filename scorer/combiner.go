package scorer

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rushteam/menukit/core"
	"github.com/rushteam/menukit/pipeline"
)

// Combiner 是一个 Score Node：并发执行多个策略，按权重合并为单一榜单。
// 支持超时、限流、部分失败降级。
//
// 合并规则：
//   - 每个候选按策略权重累加分数：total += weight[tag] × 策略本地分
//   - 同一菜品被多个策略命中时理由与策略标识都会累积，
//     跨策略命中的菜品自然排得更靠前（有意为之）
//   - 候选进入合并器的顺序 = 策略声明顺序 × 各策略内部顺序，
//     稳定排序保证平分时该顺序即最终顺序，结果完全确定
//   - 未在权重表中的策略贡献为 0
//
// 单个策略失败只记 warn 并跳过，残缺结果优于整体失败。
type Combiner struct {
	// Scorers 参与合并的策略，声明顺序即平分时的优先顺序
	// （常规装配为 frequency, similarity, recency）
	Scorers []Scorer

	// Weights 策略合并权重，零值表示使用默认权重（0.4/0.3/0.3）
	Weights core.Weights

	// Limit 合并后返回的候选数，0 表示使用默认值
	Limit int

	// Timeout 每个策略的超时时间，0 表示不限制
	Timeout time.Duration

	// MaxConcurrent 最大并发数，0 表示无限制
	MaxConcurrent int

	// Logger 用于记录被跳过的策略，未设置时不输出日志
	Logger zerolog.Logger
}

var _ pipeline.Node = (*Combiner)(nil)

func (n *Combiner) Name() string        { return "score.combined" }
func (n *Combiner) Kind() pipeline.Kind { return pipeline.KindScore }

func (n *Combiner) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(n.Scorers) == 0 {
		return nil, nil
	}

	// 每个策略写自己的结果槽位，无需互斥锁，合并顺序与声明顺序一致
	results := make([][]*core.Candidate, len(n.Scorers))
	eg, egCtx := errgroup.WithContext(ctx)

	// 限流：使用 semaphore 控制并发数
	var sem chan struct{}
	if n.MaxConcurrent > 0 {
		sem = make(chan struct{}, n.MaxConcurrent)
	}

	for i, s := range n.Scorers {
		i, s := i, s
		eg.Go(func() error {
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}

			scoreCtx := egCtx
			if n.Timeout > 0 {
				var cancel context.CancelFunc
				scoreCtx, cancel = context.WithTimeout(egCtx, n.Timeout)
				defer cancel()
			}

			candidates, err := s.Score(scoreCtx, rctx)
			if err != nil {
				// 超时或失败只跳过该策略，不中断其他策略
				n.Logger.Warn().Err(err).Str("scorer", s.Name()).
					Msg("scorer failed, skipped in combine")
				return nil
			}
			results[i] = candidates
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	merged := n.merge(results)
	sortByScoreDesc(merged)

	limit := n.Limit
	if limit <= 0 {
		limit = core.DefaultLimit
	}
	return truncate(merged, limit), nil
}

// merge 按菜品 ID 聚合各策略的候选：加权累加分数，累积理由与策略标识，
// 保留每个策略的原始分（raw_{tag} Feature，供 Breakdown 解释）。
// 聚合结果按首次出现顺序排列。
func (n *Combiner) merge(results [][]*core.Candidate) []*core.Candidate {
	weights := n.Weights
	if weights == (core.Weights{}) {
		weights = core.DefaultWeights()
	}

	byID := make(map[string]*core.Candidate)
	out := make([]*core.Candidate, 0)

	for _, candidates := range results {
		for _, c := range candidates {
			if c == nil || c.ID == "" {
				continue
			}
			tag := ""
			if len(c.Strategies) > 0 {
				tag = c.Strategies[0]
			}

			acc, ok := byID[c.ID]
			if !ok {
				acc = core.NewCandidate(c.Item)
				acc.ID = c.ID
				byID[c.ID] = acc
				out = append(out, acc)
			}
			if acc.Item == nil && c.Item != nil {
				acc.Item = c.Item
			}

			acc.Score += weights.Of(tag) * c.Score
			for _, r := range c.Reasons {
				acc.AddReason(r)
			}
			for _, t := range c.Strategies {
				acc.AddStrategy(t)
			}
			for k, v := range c.Features {
				acc.Features[k] = v
			}
			if tag != "" {
				acc.Features["raw_"+tag] = c.Score
			}
			for k, lbl := range c.Labels {
				acc.PutLabel(k, lbl)
			}
		}
	}
	return out
}
