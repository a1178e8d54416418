package config

import (
	"fmt"
	"time"

	"github.com/rushteam/menukit/core"
	"github.com/rushteam/menukit/feature"
	"github.com/rushteam/menukit/filter"
	"github.com/rushteam/menukit/pipeline"
	"github.com/rushteam/menukit/pkg/conv"
	"github.com/rushteam/menukit/rerank"
	"github.com/rushteam/menukit/scorer"
)

// 内置 Node 的配置构建器。score.popular 不在其中：热门兜底需要注入
// CatalogProvider 句柄，由调用方通过 Register 补充（见 registry.go 示例）。
func init() {
	Register("score.frequency", BuildFrequencyNode)
	Register("score.recency", BuildRecencyNode)
	Register("score.similarity", BuildSimilarityNode)
	Register("score.combined", BuildCombinerNode)
	Register("filter", BuildFilterNode)
	Register("rerank.topn", BuildTopNNode)
	Register("rerank.diversity", BuildDiversityNode)
	Register("postprocess.taste_boost", BuildBoostNode)
}

// BuildFrequencyNode 构建频次策略节点。配置项：topk。
func BuildFrequencyNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &scorer.Frequency{
		TopK: int(conv.ConfigGetInt64(cfg, "topk", 0)),
	}, nil
}

// BuildRecencyNode 构建时效策略节点。配置项：topk、window_days。
func BuildRecencyNode(cfg map[string]interface{}) (pipeline.Node, error) {
	node := &scorer.Recency{
		TopK: int(conv.ConfigGetInt64(cfg, "topk", 0)),
	}
	if days := conv.ConfigGetInt64(cfg, "window_days", 0); days > 0 {
		node.Window = time.Duration(days) * 24 * time.Hour
	}
	return node, nil
}

// BuildSimilarityNode 构建内容相似策略节点。配置项：topk。
func BuildSimilarityNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &scorer.Similarity{
		TopK: int(conv.ConfigGetInt64(cfg, "topk", 0)),
	}, nil
}

// BuildCombinerNode 构建加权合并节点，内部挂载频次/相似/时效三个策略。
// 配置项：limit、topk（每个策略的候选数）、weights{frequency,similarity,
// recency}、timeout（秒）、max_concurrent、window_days。
func BuildCombinerNode(cfg map[string]interface{}) (pipeline.Node, error) {
	topK := int(conv.ConfigGetInt64(cfg, "topk", 0))

	recency := &scorer.Recency{TopK: topK}
	if days := conv.ConfigGetInt64(cfg, "window_days", 0); days > 0 {
		recency.Window = time.Duration(days) * 24 * time.Hour
	}

	node := &scorer.Combiner{
		Scorers: []scorer.Scorer{
			&scorer.Frequency{TopK: topK},
			&scorer.Similarity{TopK: topK},
			recency,
		},
		Limit:         int(conv.ConfigGetInt64(cfg, "limit", 0)),
		MaxConcurrent: int(conv.ConfigGetInt64(cfg, "max_concurrent", 0)),
	}
	if sec := conv.ConfigGetFloat64(cfg, "timeout", 0); sec > 0 {
		node.Timeout = time.Duration(sec * float64(time.Second))
	}

	if weightsMap, ok := cfg["weights"].(map[string]interface{}); ok {
		w := conv.MapToFloat64(weightsMap)
		weights := core.Weights{
			Frequency:  w[core.StrategyFrequency],
			Similarity: w[core.StrategySimilarity],
			Recency:    w[core.StrategyRecency],
		}
		if err := weights.Validate(); err != nil {
			return nil, err
		}
		node.Weights = weights
	}
	return node, nil
}

// BuildFilterNode 构建过滤节点。配置项 filters 是子过滤器列表，每项：
//
//	{type: available} | {type: owned} | {type: allergen, allergens: [...]}
//	| {type: blocked, ids: [...]} | {type: rule, keep: "CEL 表达式"}
func BuildFilterNode(cfg map[string]interface{}) (pipeline.Node, error) {
	filtersCfg, ok := cfg["filters"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("filters not found or invalid")
	}

	filters := make([]filter.Filter, 0, len(filtersCfg))
	for _, fc := range filtersCfg {
		filterMap, ok := fc.(map[string]interface{})
		if !ok {
			continue
		}
		filterType := conv.ConfigGet(filterMap, "type", "")
		switch filterType {
		case "available":
			filters = append(filters, &filter.AvailableFilter{})
		case "owned":
			filters = append(filters, &filter.OwnedFilter{})
		case "allergen":
			filters = append(filters, &filter.AllergenFilter{
				Allergens: conv.SliceAnyToString(filterMap["allergens"]),
			})
		case "blocked":
			filters = append(filters, &filter.BlockedFilter{
				ItemIDs: conv.SliceAnyToString(filterMap["ids"]),
			})
		case "rule":
			keep := conv.ConfigGet(filterMap, "keep", "")
			if keep == "" {
				return nil, fmt.Errorf("rule filter: keep expression required")
			}
			rf, err := filter.NewRuleFilter(keep)
			if err != nil {
				return nil, fmt.Errorf("rule filter: %w", err)
			}
			filters = append(filters, rf)
		default:
			return nil, fmt.Errorf("unknown filter type: %s", filterType)
		}
	}

	return &filter.FilterNode{Filters: filters}, nil
}

// BuildTopNNode 构建 Top-N 截断节点。配置项：n。
func BuildTopNNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &rerank.TopNNode{
		N: int(conv.ConfigGetInt64(cfg, "n", 0)),
	}, nil
}

// BuildDiversityNode 构建子品类多样性节点。配置项：max_per_key。
func BuildDiversityNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &rerank.Diversity{
		MaxPerKey: int(conv.ConfigGetInt64(cfg, "max_per_key", 0)),
	}, nil
}

// BuildBoostNode 构建口味加成节点。配置项：alpha。
// 口味来源走 rctx.Tastes（由引擎或调用方注入）；需要挂 TasteService 的
// 场景通过 Register 注册携带句柄的自定义构建器。
func BuildBoostNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &feature.BoostNode{
		Alpha: conv.ConfigGetFloat64(cfg, "alpha", feature.DefaultBoostAlpha),
	}, nil
}
