package feature

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rushteam/menukit/core"
	"github.com/rushteam/menukit/feast"
)

// FeastTasteProvider 从 Feast Feature Store 读取顾客口味亲和度。
//
// 特征组织方式：一个 feature view 存放顾客口味，每个口味键一列，
// 例如 customer_tastes:coffee、customer_tastes:tea。featureRefs 列出要
// 读取的全部特征引用，口味键取引用中最后一个冒号之后的部分。
type FeastTasteProvider struct {
	client      feast.Client
	project     string
	entityKey   string
	featureRefs []string
	logger      zerolog.Logger
}

var _ TasteProvider = (*FeastTasteProvider)(nil)

// NewFeastTasteProvider 创建 Feast 口味数据源。entityKey 默认 "customer_id"。
func NewFeastTasteProvider(client feast.Client, project string, featureRefs []string) *FeastTasteProvider {
	return &FeastTasteProvider{
		client:      client,
		project:     project,
		entityKey:   "customer_id",
		featureRefs: featureRefs,
	}
}

// WithEntityKey 覆盖实体键名（链式调用）。
func (p *FeastTasteProvider) WithEntityKey(key string) *FeastTasteProvider {
	if key != "" {
		p.entityKey = key
	}
	return p
}

// WithLogger 设置日志器（链式调用）。
func (p *FeastTasteProvider) WithLogger(logger zerolog.Logger) *FeastTasteProvider {
	p.logger = logger.With().Str("component", "feature.feast").Logger()
	return p
}

func (p *FeastTasteProvider) Name() string { return "taste.feast" }

func (p *FeastTasteProvider) GetTastes(ctx context.Context, customerID string) (map[string]float64, error) {
	if len(p.featureRefs) == 0 {
		return map[string]float64{}, nil
	}

	resp, err := p.client.GetOnlineFeatures(ctx, &feast.GetOnlineFeaturesRequest{
		Features:   p.featureRefs,
		EntityRows: []map[string]interface{}{{p.entityKey: customerID}},
		Project:    p.project,
	})
	if err != nil {
		return nil, core.NewDataUnavailable(core.ModuleFeature, err)
	}
	if len(resp.FeatureVectors) == 0 {
		return map[string]float64{}, nil
	}

	values := resp.FeatureVectors[0].Values
	tastes := make(map[string]float64, len(values))
	for _, ref := range p.featureRefs {
		v, ok := values[ref]
		if !ok {
			continue
		}
		weight, ok := toFloat64(v)
		if !ok {
			p.logger.Debug().Str("feature", ref).Msg("non numeric taste feature, skipped")
			continue
		}
		tastes[tasteKey(ref)] = weight
	}
	return tastes, nil
}

// Close 关闭底层 Feast 客户端连接。
func (p *FeastTasteProvider) Close() error {
	return p.client.Close()
}

// tasteKey 取特征引用中最后一个冒号后的部分，如 "customer_tastes:coffee" -> "coffee"。
func tasteKey(ref string) string {
	if i := strings.LastIndex(ref, ":"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// toFloat64 宽松地把特征值转成 float64。
func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
