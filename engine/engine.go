package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rushteam/menukit/core"
	"github.com/rushteam/menukit/model"
	"github.com/rushteam/menukit/pipeline"
	"github.com/rushteam/menukit/rerank"
	"github.com/rushteam/menukit/scorer"
)

// Engine 是推荐引擎的对外门面：持有协作方句柄（构造注入，不用全局单例），
// 每次请求现场组装 Pipeline 并运行。
//
// 两条路径：
//   - 历史订单数 >= MinOrders：频次/相似/时效三策略并发打分，加权合并
//   - 不足（冷启动）：全店热门兜底，输出形态与个性化路径一致
//
// 引擎无状态、无共享可变数据（相似策略的向量空间缓存除外，其内部用
// RWMutex 保护并按目录指纹失效），同一实例可被并发调用。
// 固定历史/目录/权重快照下输出完全确定：时间基准取自可注入的 Clock。
type Engine struct {
	orders    core.OrderHistoryProvider
	catalog   core.CatalogProvider
	customers core.CustomerProvider
	tastes    core.TasteService

	weights       core.Weights
	minOrders     int
	window        time.Duration
	defaultLimit  int
	headroom      int
	scorerTimeout time.Duration
	maxConcurrent int

	extraNodes []pipeline.Node
	clock      func() time.Time
	logger     zerolog.Logger

	// similarity 跨请求复用：目录快照不变时 TF-IDF 向量空间只建一次
	similarity *scorer.Similarity
}

// Option 是 Engine 的构造选项。
type Option func(*Engine)

// WithWeights 覆盖策略合并权重。构造时校验和为 1.0，不满足返回
// INVALID_CONFIG；想按比例缩放的调用方先自行 Normalize。
func WithWeights(w core.Weights) Option {
	return func(e *Engine) { e.weights = w }
}

// WithMinOrders 覆盖进入个性化路径的最小历史订单数。
func WithMinOrders(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.minOrders = n
		}
	}
}

// WithRecencyWindow 覆盖时效策略的滑动窗口长度。
func WithRecencyWindow(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.window = d
		}
	}
}

// WithDefaultLimit 覆盖默认返回条目数（Recommend 的 limit <= 0 时生效）。
func WithDefaultLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.defaultLimit = n
		}
	}
}

// WithHeadroom 覆盖合并余量倍数：每个策略被要求产出 limit × headroom 个候选。
func WithHeadroom(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.headroom = n
		}
	}
}

// WithScorerTimeout 设置单个策略的超时；超时的策略被跳过而非让请求失败。
func WithScorerTimeout(d time.Duration) Option {
	return func(e *Engine) { e.scorerTimeout = d }
}

// WithMaxConcurrent 限制并发执行的策略数，0 表示不限制。
func WithMaxConcurrent(n int) Option {
	return func(e *Engine) { e.maxConcurrent = n }
}

// WithCustomerProvider 挂载顾客画像数据源（可选）。画像用于过敏原过滤、
// 口味加成等挂载节点；取不到画像不影响主链路。
func WithCustomerProvider(p core.CustomerProvider) Option {
	return func(e *Engine) { e.customers = p }
}

// WithTasteService 挂载口味偏好服务（可选），每次请求取一次写入上下文。
func WithTasteService(s core.TasteService) Option {
	return func(e *Engine) { e.tastes = s }
}

// WithNodes 在打分与最终 Top-N 之间追加节点（过滤、口味加成、多样性等），
// 按传入顺序执行。
func WithNodes(nodes ...pipeline.Node) Option {
	return func(e *Engine) { e.extraNodes = append(e.extraNodes, nodes...) }
}

// WithVectorizer 替换相似策略的向量化器（默认目录自建 TF-IDF 空间）。
func WithVectorizer(v model.Vectorizer) Option {
	return func(e *Engine) { e.similarity.Vectorizer = v }
}

// WithClock 注入时间源，测试中用它冻结时效窗口。默认 time.Now。
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithLogger 设置日志器，默认禁用。
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// New 创建引擎。orders 与 catalog 是必需协作方，其余通过 Option 挂载。
// 权重校验失败返回 INVALID_CONFIG。
func New(orders core.OrderHistoryProvider, catalog core.CatalogProvider, opts ...Option) (*Engine, error) {
	if orders == nil || catalog == nil {
		return nil, core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidConfig,
			"engine: order history and catalog providers are required")
	}

	e := &Engine{
		orders:       orders,
		catalog:      catalog,
		weights:      core.DefaultWeights(),
		minOrders:    core.DefaultMinOrders,
		window:       core.DefaultRecencyWindowDays * 24 * time.Hour,
		defaultLimit: core.DefaultLimit,
		headroom:     core.DefaultHeadroom,
		clock:        time.Now,
		logger:       zerolog.Nop(),
		similarity:   &scorer.Similarity{},
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.weights.Validate(); err != nil {
		return nil, err
	}
	e.logger = e.logger.With().Str("component", "engine").Logger()
	e.similarity.TopK = e.defaultLimit * e.headroom
	return e, nil
}

// Recommend 为一个顾客计算 Top-limit 推荐（limit <= 0 时取默认值）。
//
// 顾客不存在、历史为空都不是错误（走热门兜底）；
// 只有数据源故障作为 DATA_UNAVAILABLE 上抛。
func (e *Engine) Recommend(ctx context.Context, customerID string, limit int) ([]*core.Recommendation, error) {
	if limit <= 0 {
		limit = e.defaultLimit
	}
	started := time.Now()
	requestID := uuid.NewString()
	logger := e.logger.With().
		Str("request_id", requestID).
		Str("customer_id", customerID).
		Logger()

	orders, err := e.orders.GetOrderHistory(ctx, customerID)
	if err != nil {
		if !core.IsNotFound(err) {
			return nil, asDataUnavailable(err)
		}
		// 未知顾客按空历史处理（冷启动），不是失败
		orders = nil
	}

	catalog, err := e.catalog.GetMenuItems(ctx, true)
	if err != nil {
		return nil, asDataUnavailable(err)
	}

	rctx := &core.RecommendContext{
		RequestID:  requestID,
		CustomerID: customerID,
		Now:        e.clock(),
		Orders:     orders,
		Catalog:    catalog,
	}
	// 预热惰性索引：并发扇出阶段只读
	rctx.OwnedSet()
	rctx.CatalogByID()
	e.loadProfile(ctx, rctx, logger)

	coldStart := len(orders) < e.minOrders
	headroom := limit * e.headroom

	nodes := make([]pipeline.Node, 0, 2+len(e.extraNodes))
	if coldStart {
		nodes = append(nodes, &scorer.Popularity{Catalog: e.catalog, TopK: headroom})
	} else {
		// 相似策略跨请求共享（向量空间缓存），其 TopK 按默认返回条数
		// 在构造时固定；频次/时效无状态，按本次 limit 现建
		nodes = append(nodes, &scorer.Combiner{
			Scorers: []scorer.Scorer{
				&scorer.Frequency{TopK: headroom},
				e.similarity,
				&scorer.Recency{TopK: headroom, Window: e.window},
			},
			Weights:       e.weights,
			Limit:         headroom,
			Timeout:       e.scorerTimeout,
			MaxConcurrent: e.maxConcurrent,
			Logger:        logger,
		})
	}
	nodes = append(nodes, e.extraNodes...)
	nodes = append(nodes, &rerank.TopNNode{N: limit})

	p := &pipeline.Pipeline{Nodes: nodes}
	candidates, err := p.Run(ctx, rctx, nil)
	if err != nil {
		return nil, asDataUnavailable(err)
	}

	out := make([]*core.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		if rec := core.NewRecommendation(c); rec != nil {
			out = append(out, rec)
		}
	}

	logger.Debug().
		Int("order_count", len(orders)).
		Bool("cold_start", coldStart).
		Int("results", len(out)).
		Dur("elapsed", time.Since(started)).
		Msg("recommendations computed")
	return out, nil
}

// loadProfile 尽力加载顾客画像与口味偏好到请求上下文。两者都是可选
// 增强，取不到只记 debug，不影响主链路。
func (e *Engine) loadProfile(ctx context.Context, rctx *core.RecommendContext, logger zerolog.Logger) {
	if e.customers != nil {
		customer, err := e.customers.GetCustomer(ctx, rctx.CustomerID)
		if err != nil {
			if !core.IsNotFound(err) {
				logger.Debug().Err(err).Msg("customer profile unavailable, proceeding without")
			}
		} else {
			rctx.Customer = customer
		}
	}
	if e.tastes != nil {
		tastes, err := e.tastes.GetTastes(ctx, rctx.CustomerID)
		if err != nil {
			logger.Debug().Err(err).Msg("tastes unavailable, proceeding without")
		} else if len(tastes) > 0 {
			rctx.Tastes = tastes
		}
	}
}

// asDataUnavailable 保证跨引擎边界的失败只有一种错误形态。
func asDataUnavailable(err error) error {
	if core.IsDataUnavailable(err) {
		return err
	}
	return core.NewDataUnavailable(core.ModuleEngine, err)
}
