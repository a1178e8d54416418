package feature

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/rushteam/menukit/core"
)

// StoreTasteProvider 是基于 core.Store 的口味数据源，采用适配器模式。
//
// 数据形态（与 store 包的键约定一致，key 为 "taste:{customerID}"）：
//   - KeyValueStore：Hash，field=品类/子品类，value=十进制权重字符串
//   - 普通 Store：JSON 对象 {"coffee": 0.9, ...}
//
// 单个损坏的 Hash 字段跳过并打 debug 日志；整个 JSON 损坏返回
// DATA_UNAVAILABLE。
type StoreTasteProvider struct {
	store     core.Store
	keyPrefix string
	logger    zerolog.Logger
}

var _ TasteProvider = (*StoreTasteProvider)(nil)

// NewStoreTasteProvider 创建基于 Store 的口味数据源，默认键前缀 "taste:"。
func NewStoreTasteProvider(s core.Store) *StoreTasteProvider {
	return &StoreTasteProvider{
		store:     s,
		keyPrefix: "taste:",
	}
}

// WithKeyPrefix 覆盖键前缀（链式调用）。
func (p *StoreTasteProvider) WithKeyPrefix(prefix string) *StoreTasteProvider {
	if prefix != "" {
		p.keyPrefix = prefix
	}
	return p
}

// WithLogger 设置日志器（链式调用）。
func (p *StoreTasteProvider) WithLogger(logger zerolog.Logger) *StoreTasteProvider {
	p.logger = logger.With().Str("component", "feature.store").Logger()
	return p
}

func (p *StoreTasteProvider) Name() string {
	return "taste.store." + p.store.Name()
}

func (p *StoreTasteProvider) GetTastes(ctx context.Context, customerID string) (map[string]float64, error) {
	key := p.keyPrefix + customerID

	if kv, ok := p.store.(core.KeyValueStore); ok {
		return p.tastesFromHash(ctx, kv, key)
	}
	return p.tastesFromJSON(ctx, key)
}

func (p *StoreTasteProvider) tastesFromHash(ctx context.Context, kv core.KeyValueStore, key string) (map[string]float64, error) {
	fields, err := kv.HGetAll(ctx, key)
	if err != nil {
		if core.IsStoreNotFound(err) {
			return map[string]float64{}, nil
		}
		return nil, core.NewDataUnavailable(core.ModuleFeature, err)
	}

	tastes := make(map[string]float64, len(fields))
	for field, raw := range fields {
		weight, perr := strconv.ParseFloat(string(raw), 64)
		if perr != nil {
			p.logger.Debug().Str("key", key).Str("field", field).Msg("unparsable taste weight, skipped")
			continue
		}
		tastes[field] = weight
	}
	return tastes, nil
}

func (p *StoreTasteProvider) tastesFromJSON(ctx context.Context, key string) (map[string]float64, error) {
	data, err := p.store.Get(ctx, key)
	if err != nil {
		if core.IsStoreNotFound(err) {
			return map[string]float64{}, nil
		}
		return nil, core.NewDataUnavailable(core.ModuleFeature, err)
	}

	var tastes map[string]float64
	if err := json.Unmarshal(data, &tastes); err != nil {
		return nil, core.NewDataUnavailable(core.ModuleFeature, err)
	}
	return tastes, nil
}
