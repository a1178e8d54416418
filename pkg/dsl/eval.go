package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/menukit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
	celEnvErr  error
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.Variable("item", cel.DynType),
		cel.Variable("label", cel.DynType),
		cel.Variable("customer", cel.DynType),
		cel.Variable("rctx", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = initCELEnv()
	})
	return celEnv, celEnvErr
}

// Program 是编译后的规则表达式，使用 CEL (Common Expression Language) 实现。
// 表达式编译一次，之后对每个候选重复求值，线程安全。
//
// 表达式语法（CEL 标准语法），可访问的变量：
//   - item: 候选菜品，含 id / name / category / subcategory / price /
//     ingredients / allergens / calories / available / score
//   - label: 候选上的 Label（取 value），例如 label.strategy
//   - customer: 当前顾客画像，含 id / allergens / tastes / visit_count
//   - rctx: 请求上下文，含 customer_id / scene / params
//
// 示例：
//   - `item.calories > 0 && item.calories < 400` → 低卡路里规则
//   - `!("nuts" in item.allergens)` → 过敏原规则
//   - `item.category == "drink" && item.price < 5.0` → 品类+价格规则
//   - `label.strategy != null && label.strategy.contains("similarity")`
type Program struct {
	expr string
	prg  cel.Program
}

// Compile 编译 DSL 表达式。表达式为空时返回恒真程序。
func Compile(expr string) (*Program, error) {
	if expr == "" {
		return &Program{expr: expr}, nil
	}

	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %v", err)
	}

	return &Program{expr: expr, prg: prg}, nil
}

// Expr 返回原始表达式文本。
func (p *Program) Expr() string { return p.expr }

// Eval 对单个候选执行表达式，返回布尔结果。
//
// 注意：CEL 访问不存在的 key 会报错，存在性检查请使用 label.key != null。
func (p *Program) Eval(cand *core.Candidate, rctx *core.RecommendContext) (bool, error) {
	if p.prg == nil {
		return true, nil
	}

	out, _, err := p.prg.Eval(buildInput(cand, rctx))
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}

	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func buildInput(cand *core.Candidate, rctx *core.RecommendContext) map[string]any {
	item := map[string]any{
		"id":    "",
		"score": 0.0,
	}
	labelAccessor := make(map[string]any)

	if cand != nil {
		item["id"] = cand.ID
		item["score"] = cand.Score
		if cand.Item != nil {
			item["name"] = cand.Item.Name
			item["category"] = string(cand.Item.Category)
			item["subcategory"] = cand.Item.Subcategory
			item["price"] = cand.Item.Price
			item["ingredients"] = toAnySlice(cand.Item.Ingredients)
			item["allergens"] = toAnySlice(cand.Item.Allergens)
			item["calories"] = cand.Item.Calories
			item["available"] = cand.Item.Available
		}
		// label.strategy 等直接取 Label 的 value
		for k, v := range cand.Labels {
			labelAccessor[k] = v.Value
		}
	}

	customer := map[string]any{}
	rctxMap := map[string]any{}
	if rctx != nil {
		rctxMap["customer_id"] = rctx.CustomerID
		rctxMap["scene"] = rctx.Scene
		rctxMap["params"] = rctx.Params
		if rctx.Customer != nil {
			customer["id"] = rctx.Customer.ID
			customer["allergens"] = toAnySlice(rctx.Customer.Allergens)
			customer["tastes"] = rctx.Customer.Tastes
			customer["visit_count"] = rctx.Customer.VisitCount
		}
	}

	return map[string]any{
		"item":     item,
		"label":    labelAccessor,
		"customer": customer,
		"rctx":     rctxMap,
	}
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
