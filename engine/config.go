package engine

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rushteam/menukit/core"
)

// Config 是引擎的 YAML 配置。零值字段一律表示"使用默认值"。
//
// 示例：
//
//	engine:
//	  min_orders: 3
//	  recency_window_days: 30
//	  default_limit: 5
//	  headroom: 2
//	  scorer_timeout_ms: 300
//	  weights:
//	    frequency: 0.4
//	    similarity: 0.3
//	    recency: 0.3
type Config struct {
	Engine struct {
		MinOrders         int           `yaml:"min_orders"`
		RecencyWindowDays int           `yaml:"recency_window_days"`
		DefaultLimit      int           `yaml:"default_limit"`
		Headroom          int           `yaml:"headroom"`
		ScorerTimeoutMS   int           `yaml:"scorer_timeout_ms"`
		MaxConcurrent     int           `yaml:"max_concurrent"`
		Weights           *core.Weights `yaml:"weights"`
	} `yaml:"engine"`
}

// LoadConfig 从 YAML 文件加载引擎配置。
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &cfg, nil
}

// Options 把配置展开为构造选项，零值字段不产生选项。
// 权重的合法性仍由 New 统一校验。
func (c *Config) Options() []Option {
	opts := make([]Option, 0, 8)
	ec := c.Engine
	if ec.MinOrders > 0 {
		opts = append(opts, WithMinOrders(ec.MinOrders))
	}
	if ec.RecencyWindowDays > 0 {
		opts = append(opts, WithRecencyWindow(time.Duration(ec.RecencyWindowDays)*24*time.Hour))
	}
	if ec.DefaultLimit > 0 {
		opts = append(opts, WithDefaultLimit(ec.DefaultLimit))
	}
	if ec.Headroom > 0 {
		opts = append(opts, WithHeadroom(ec.Headroom))
	}
	if ec.ScorerTimeoutMS > 0 {
		opts = append(opts, WithScorerTimeout(time.Duration(ec.ScorerTimeoutMS)*time.Millisecond))
	}
	if ec.MaxConcurrent > 0 {
		opts = append(opts, WithMaxConcurrent(ec.MaxConcurrent))
	}
	if ec.Weights != nil {
		opts = append(opts, WithWeights(*ec.Weights))
	}
	return opts
}

// NewFromConfigFile 从 YAML 配置文件创建引擎，额外的 opts 追加在配置
// 展开的选项之后（可覆盖配置）。
func NewFromConfigFile(orders core.OrderHistoryProvider, catalog core.CatalogProvider, path string, opts ...Option) (*Engine, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return New(orders, catalog, append(cfg.Options(), opts...)...)
}
