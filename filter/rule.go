package filter

import (
	"context"

	"github.com/rushteam/menukit/core"
	"github.com/rushteam/menukit/pkg/dsl"
)

// RuleFilter 是规则过滤器：用 CEL 表达式描述候选必须满足的条件，
// 不满足条件的候选被过滤掉。
//
// 表达式编译一次、每个候选求值一次，可访问 item / label / customer / rctx
// 四个变量（详见 pkg/dsl）。典型用法：
//   - 膳食规则：`item.calories > 0 && item.calories < 400`
//   - 过敏原规则：`!("nuts" in item.allergens)`
//   - 业务规则：`item.category == "drink" && item.price < 6.0`
type RuleFilter struct {
	program *dsl.Program
}

// NewRuleFilter 编译 keep 表达式并创建规则过滤器。
// 表达式为空时过滤器恒保留（不过滤任何候选）。
func NewRuleFilter(keepExpr string) (*RuleFilter, error) {
	program, err := dsl.Compile(keepExpr)
	if err != nil {
		return nil, err
	}
	return &RuleFilter{program: program}, nil
}

var _ Filter = (*RuleFilter)(nil)

func (f *RuleFilter) Name() string {
	return "filter.rule"
}

// Expr 返回过滤器的原始表达式文本。
func (f *RuleFilter) Expr() string {
	if f.program == nil {
		return ""
	}
	return f.program.Expr()
}

func (f *RuleFilter) ShouldFilter(
	ctx context.Context,
	rctx *core.RecommendContext,
	cand *core.Candidate,
) (bool, error) {
	if f.program == nil || cand == nil {
		return false, nil
	}

	keep, err := f.program.Eval(cand, rctx)
	if err != nil {
		// 求值失败时保留候选，错误交给上层决定是否观测
		return false, err
	}
	return !keep, nil
}
