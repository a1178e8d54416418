package provider

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/rushteam/menukit/core"
)

// Keys 定义 Store 中各类数据的键约定（与 store 包的文档一致）。
type Keys struct {
	Menu            string // 目录快照，默认 "menu:items"
	OrderPrefix     string // 订单历史前缀，默认 "orders:"
	Popular         string // 热门有序集合，默认 "popular:items"
	PopularQuantity string // 热门数量并列字段（Hash），默认 "popular:quantity"
}

// DefaultKeys 返回默认键约定。
func DefaultKeys() Keys {
	return Keys{
		Menu:            "menu:items",
		OrderPrefix:     "orders:",
		Popular:         "popular:items",
		PopularQuantity: "popular:quantity",
	}
}

// StoreProvider 是基于 core.Store 的目录 / 历史提供者，采用适配器模式。
//
// 数据形态：
//   - 目录与订单存 JSON 数组
//   - 热门排行存有序集合（score=去重订单数），数量并列字段存 Hash
//
// 错误约定：
//   - key 不存在：空数据，nil 错误
//   - 存储不可达 / JSON 整体损坏：DATA_UNAVAILABLE
//   - 单条订单时间戳无法解析：该订单保留但 OrderedAt 为零值，
//     打 debug 日志（时效窗口会排除它，频次统计不受影响）
type StoreProvider struct {
	store  core.Store
	keys   Keys
	logger zerolog.Logger
}

var (
	_ core.OrderHistoryProvider = (*StoreProvider)(nil)
	_ core.CatalogProvider      = (*StoreProvider)(nil)
)

// NewStoreProvider 创建基于 Store 的提供者，使用默认键约定。
func NewStoreProvider(s core.Store) *StoreProvider {
	return &StoreProvider{
		store: s,
		keys:  DefaultKeys(),
	}
}

// WithKeys 覆盖键约定（链式调用）。空字段保留默认值。
func (p *StoreProvider) WithKeys(keys Keys) *StoreProvider {
	if keys.Menu != "" {
		p.keys.Menu = keys.Menu
	}
	if keys.OrderPrefix != "" {
		p.keys.OrderPrefix = keys.OrderPrefix
	}
	if keys.Popular != "" {
		p.keys.Popular = keys.Popular
	}
	if keys.PopularQuantity != "" {
		p.keys.PopularQuantity = keys.PopularQuantity
	}
	return p
}

// WithLogger 设置日志器（链式调用），默认为禁用的零值 Logger。
func (p *StoreProvider) WithLogger(logger zerolog.Logger) *StoreProvider {
	p.logger = logger.With().Str("component", "provider.store").Logger()
	return p
}

func (p *StoreProvider) Name() string { return "provider.store." + p.store.Name() }

// orderRecord 是订单在 Store 中的持久化形态。OrderedAt 以 RFC3339 字符串
// 存储（time.Time 的 JSON 编码即此格式），无法解析时降级为零值而非整体失败。
type orderRecord struct {
	ID         string           `json:"id"`
	CustomerID string           `json:"customer_id"`
	OrderedAt  string           `json:"ordered_at"`
	Total      float64          `json:"total"`
	Note       string           `json:"note,omitempty"`
	Lines      []core.OrderLine `json:"lines"`
}

func (p *StoreProvider) GetOrderHistory(ctx context.Context, customerID string) ([]*core.Order, error) {
	data, err := p.store.Get(ctx, p.keys.OrderPrefix+customerID)
	if err != nil {
		if core.IsStoreNotFound(err) {
			return nil, nil
		}
		return nil, core.NewDataUnavailable(core.ModuleProvider, err)
	}

	var records []orderRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, core.NewDataUnavailable(core.ModuleProvider, err)
	}

	orders := make([]*core.Order, 0, len(records))
	for _, r := range records {
		o := &core.Order{
			ID:         r.ID,
			CustomerID: r.CustomerID,
			Total:      r.Total,
			Note:       r.Note,
			Lines:      r.Lines,
		}
		if o.CustomerID == "" {
			o.CustomerID = customerID
		}
		if r.OrderedAt != "" {
			t, perr := time.Parse(time.RFC3339, r.OrderedAt)
			if perr != nil {
				p.logger.Debug().
					Str("order_id", r.ID).
					Str("ordered_at", r.OrderedAt).
					Msg("unparsable order timestamp, kept with zero time")
			} else {
				o.OrderedAt = t
			}
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (p *StoreProvider) GetMenuItems(ctx context.Context, availableOnly bool) ([]*core.MenuItem, error) {
	data, err := p.store.Get(ctx, p.keys.Menu)
	if err != nil {
		if core.IsStoreNotFound(err) {
			return nil, nil
		}
		return nil, core.NewDataUnavailable(core.ModuleProvider, err)
	}

	var items []*core.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, core.NewDataUnavailable(core.ModuleProvider, err)
	}
	if !availableOnly {
		return items, nil
	}

	out := make([]*core.MenuItem, 0, len(items))
	for _, item := range items {
		if item != nil && item.Available {
			out = append(out, item)
		}
	}
	return out, nil
}

// GetPopularItems 从有序集合读取热门排行。
//
// 有序集合按 score（订单数）降序返回；数量并列字段从 Hash 补齐后做一次
// 稳定重排（订单数降序、数量降序），不可售或已下架的成员被剔除。
// 需要 Store 实现 core.KeyValueStore，否则返回 NOT_SUPPORTED。
func (p *StoreProvider) GetPopularItems(ctx context.Context, limit int) ([]*core.PopularItem, error) {
	kv, ok := p.store.(core.KeyValueStore)
	if !ok {
		return nil, core.NewDomainError(core.ModuleProvider, core.ErrorCodeNotSupported,
			"popularity ranking requires an ordered-set capable store")
	}

	members, err := kv.ZRange(ctx, p.keys.Popular, 0, -1)
	if err != nil {
		return nil, core.NewDataUnavailable(core.ModuleProvider, err)
	}
	if len(members) == 0 {
		return nil, nil
	}

	items, err := p.GetMenuItems(ctx, true)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*core.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	quantities := p.loadQuantities(ctx, kv)

	ranked := make([]*core.PopularItem, 0, len(members))
	for _, member := range members {
		item, ok := byID[member]
		if !ok {
			continue
		}
		score, err := kv.ZScore(ctx, p.keys.Popular, member)
		if err != nil {
			if core.IsStoreNotFound(err) {
				continue
			}
			return nil, core.NewDataUnavailable(core.ModuleProvider, err)
		}
		ranked = append(ranked, &core.PopularItem{
			Item:          item,
			OrderCount:    int64(score),
			TotalQuantity: quantities[member],
		})
	}

	sortPopular(ranked)

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// loadQuantities 读取数量并列字段。Hash 缺失或单值损坏都按 0 处理，
// 数量只用于同分排序，不值得让整个排行失败。
func (p *StoreProvider) loadQuantities(ctx context.Context, kv core.KeyValueStore) map[string]int64 {
	quantities := make(map[string]int64)
	fields, err := kv.HGetAll(ctx, p.keys.PopularQuantity)
	if err != nil {
		p.logger.Debug().Err(err).Msg("popularity quantity hash unavailable")
		return quantities
	}
	for member, raw := range fields {
		n, perr := strconv.ParseInt(string(raw), 10, 64)
		if perr != nil {
			p.logger.Debug().Str("member", member).Msg("unparsable popularity quantity")
			continue
		}
		quantities[member] = n
	}
	return quantities
}
