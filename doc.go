// Package menukit 是一个菜单推荐工具包（Menu Recommendation Kit）：
// 把顾客的订单历史变成一份个性化的菜单推荐榜单。
//
// 设计要点：
// - Pipeline-first: 推荐逻辑通过 Node 串联（Score → Filter → ReRank → PostProcess）
// - 三信号加权: 购买频次 / 最近时效 / 内容相似（TF-IDF）合并为单一分数
// - 冷启动兜底: 历史不足的顾客回退到全店热门榜，永不返回错误
// - 协作方注入: 订单历史与菜单目录通过接口注入，便于用假实现做单元测试
package menukit

import "github.com/rushteam/menukit/pipeline"

// 轻量 facade：便于用户直接 import "menukit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindScore       = pipeline.KindScore
	KindFilter      = pipeline.KindFilter
	KindRerank      = pipeline.KindRerank
	KindPostProcess = pipeline.KindPostProcess
)
