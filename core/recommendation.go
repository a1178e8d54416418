package core

import "strings"

// maxReasonParts 是最终理由串的最大拼接段数。
const maxReasonParts = 2

// Recommendation 是引擎对外的最终输出：菜品、加权总分、理由、命中的策略。
// 对固定的历史/目录/权重快照，Score 与排序完全确定（无随机性）。
// 每次请求即时构建，不做持久化。
type Recommendation struct {
	Item       *MenuItem          `json:"item"`
	Score      float64            `json:"score"`
	Reason     string             `json:"reason"`
	Strategies []string           `json:"strategies"`
	Breakdown  map[string]float64 `json:"breakdown,omitempty"` // 各策略的原始分
}

// FormatReason 将去重后的理由列表拼接为最终理由：最多取前 2 条，用 "; " 连接。
func FormatReason(reasons []string) string {
	if len(reasons) == 0 {
		return ""
	}
	seen := make(map[string]bool, len(reasons))
	out := make([]string, 0, maxReasonParts)
	for _, r := range reasons {
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
		if len(out) == maxReasonParts {
			break
		}
	}
	return strings.Join(out, "; ")
}

// NewRecommendation 从合并后的候选构建最终输出。
func NewRecommendation(c *Candidate) *Recommendation {
	if c == nil {
		return nil
	}
	rec := &Recommendation{
		Item:       c.Item,
		Score:      c.Score,
		Reason:     FormatReason(c.Reasons),
		Strategies: append([]string(nil), c.Strategies...),
	}
	if len(c.Features) > 0 {
		breakdown := make(map[string]float64, len(c.Features))
		for _, tag := range c.Strategies {
			if v, ok := c.Features["raw_"+tag]; ok {
				breakdown[tag] = v
			}
		}
		if len(breakdown) > 0 {
			rec.Breakdown = breakdown
		}
	}
	return rec
}
