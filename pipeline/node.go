package pipeline

import (
	"context"

	"github.com/rushteam/menukit/core"
)

// Kind 用于标记 Node 类型，方便观测/治理/编排（例如按阶段打点）。
type Kind string

const (
	KindScore       Kind = "score"       // 打分阶段：各信号源生成带分候选
	KindFilter      Kind = "filter"      // 过滤阶段：剔除不符合约束的候选
	KindRerank      Kind = "rerank"      // 重排阶段：截断/排序/多样性调优
	KindPostProcess Kind = "postprocess" // 后处理阶段：补充特征或最终结果修饰
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用“输入 candidates -> 输出 candidates”的形态，
// 方便打分生成、过滤截断、重排等操作自由组合。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		rctx *core.RecommendContext,
		candidates []*core.Candidate,
	) ([]*core.Candidate, error)
}

// NodeBuilder 根据配置构建一个 Node 实例，用于 NodeFactory 注册。
type NodeBuilder func(config map[string]interface{}) (Node, error)
