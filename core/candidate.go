package core

import "github.com/rushteam/menukit/pkg/utils"

// 策略标识：每个候选会携带产生它的策略标签，合并后可能有多个。
const (
	StrategyFrequency     = "frequency"
	StrategyRecency       = "recency"
	StrategySimilarity    = "similarity"
	StrategyPopular       = "popular"
	StrategyComplementary = "complementary"
)

// Candidate 是推荐链路中的统一承载结构：菜品、分数、推荐理由、策略来源、标签。
// 单个策略产出的候选只有一个 Reason 和一个 Strategy；合并（Combiner）之后
// 二者按策略处理顺序累积。Score 在合并前是策略本地分（不同策略间不可比），
// 合并后是加权总分。
type Candidate struct {
	ID         string
	Item       *MenuItem
	Score      float64
	Reasons    []string
	Strategies []string
	Features   map[string]float64
	Labels     map[string]utils.Label
}

func NewCandidate(item *MenuItem) *Candidate {
	c := &Candidate{
		Features: make(map[string]float64),
		Labels:   make(map[string]utils.Label),
	}
	if item != nil {
		c.ID = item.ID
		c.Item = item
	}
	return c
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (c *Candidate) PutLabel(key string, lbl utils.Label) {
	if c.Labels == nil {
		c.Labels = make(map[string]utils.Label)
	}
	if old, ok := c.Labels[key]; ok {
		c.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	c.Labels[key] = lbl
}

// AddReason 追加推荐理由，重复的理由只保留一次。
func (c *Candidate) AddReason(reason string) {
	if reason == "" {
		return
	}
	for _, r := range c.Reasons {
		if r == reason {
			return
		}
	}
	c.Reasons = append(c.Reasons, reason)
}

// AddStrategy 追加策略标识，重复的标识只保留一次，并同步写入 strategy Label。
func (c *Candidate) AddStrategy(tag string) {
	if tag == "" {
		return
	}
	for _, s := range c.Strategies {
		if s == tag {
			return
		}
	}
	c.Strategies = append(c.Strategies, tag)
	c.PutLabel("strategy", utils.Label{Value: tag, Source: "scorer"})
}

// HasStrategy 检查候选是否由指定策略产出。
func (c *Candidate) HasStrategy(tag string) bool {
	for _, s := range c.Strategies {
		if s == tag {
			return true
		}
	}
	return false
}
