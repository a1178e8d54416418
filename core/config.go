package core

import (
	"fmt"
	"math"
)

// 引擎级默认值。
const (
	// DefaultMinOrders 是进入个性化路径的最小历史订单数，少于它走热门兜底
	DefaultMinOrders = 3

	// DefaultRecencyWindowDays 是时效策略的滑动窗口天数
	DefaultRecencyWindowDays = 30

	// DefaultLimit 是单次推荐返回的条目数
	DefaultLimit = 5

	// DefaultHeadroom 是合并前向每个策略多要候选的倍数（2 表示要 2N 个），
	// 给加权合并留出余量
	DefaultHeadroom = 2
)

// weightSumEpsilon 是权重和校验的浮点容差。
const weightSumEpsilon = 1e-9

// Weights 是三个个性化策略的合并权重，约定和为 1.0。
//
// 策略：构造校验采用"拒绝"而非"归一"——权重和偏离 1.0 直接返回
// INVALID_CONFIG，调用方如果想按比例缩放可显式调用 Normalize。
type Weights struct {
	Frequency  float64 `yaml:"frequency" json:"frequency"`
	Similarity float64 `yaml:"similarity" json:"similarity"`
	Recency    float64 `yaml:"recency" json:"recency"`
}

// DefaultWeights 返回默认权重：频次 0.4、相似 0.3、时效 0.3。
func DefaultWeights() Weights {
	return Weights{Frequency: 0.4, Similarity: 0.3, Recency: 0.3}
}

// Validate 校验权重均非负且和为 1.0（±1e-9）。
func (w Weights) Validate() error {
	if w.Frequency < 0 || w.Similarity < 0 || w.Recency < 0 {
		return NewDomainError(ModuleEngine, ErrorCodeInvalidConfig,
			fmt.Sprintf("engine: negative strategy weight (frequency=%v similarity=%v recency=%v)",
				w.Frequency, w.Similarity, w.Recency))
	}
	sum := w.Frequency + w.Similarity + w.Recency
	if math.Abs(sum-1.0) > weightSumEpsilon {
		return NewDomainError(ModuleEngine, ErrorCodeInvalidConfig,
			fmt.Sprintf("engine: strategy weights must sum to 1.0, got %v", sum))
	}
	return nil
}

// Normalize 按比例缩放权重使和为 1.0；全零时回退默认权重。
func (w Weights) Normalize() Weights {
	sum := w.Frequency + w.Similarity + w.Recency
	if sum <= 0 {
		return DefaultWeights()
	}
	return Weights{
		Frequency:  w.Frequency / sum,
		Similarity: w.Similarity / sum,
		Recency:    w.Recency / sum,
	}
}

// Of 返回指定策略标识对应的权重，未知策略返回 0。
func (w Weights) Of(tag string) float64 {
	switch tag {
	case StrategyFrequency:
		return w.Frequency
	case StrategySimilarity:
		return w.Similarity
	case StrategyRecency:
		return w.Recency
	default:
		return 0
	}
}

// ToMap 返回 tag -> weight 的映射。
func (w Weights) ToMap() map[string]float64 {
	return map[string]float64{
		StrategyFrequency:  w.Frequency,
		StrategySimilarity: w.Similarity,
		StrategyRecency:    w.Recency,
	}
}
