package feature

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rushteam/menukit/core"
)

// BaseTasteService 是口味服务的基础实现，采用组合模式：一个主数据源
// 加上可选的缓存与降级数据源。
//
// 读取顺序：缓存 -> 主数据源 -> 降级数据源。主数据源出错或查不到任何
// 口味时才走降级；成功结果（含降级结果）写回缓存。
type BaseTasteService struct {
	provider TasteProvider
	cache    TasteCache
	fallback TasteProvider
	cacheTTL time.Duration
	logger   zerolog.Logger
}

var _ core.TasteService = (*BaseTasteService)(nil)

// NewBaseTasteService 创建基础口味服务。
func NewBaseTasteService(provider TasteProvider, opts ...ServiceOption) *BaseTasteService {
	s := &BaseTasteService{
		provider: provider,
		cacheTTL: 5 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ServiceOption 是口味服务的配置选项，采用函数式选项模式。
type ServiceOption func(*BaseTasteService)

// WithCache 启用缓存
func WithCache(cache TasteCache, ttl time.Duration) ServiceOption {
	return func(s *BaseTasteService) {
		s.cache = cache
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithFallback 启用降级数据源
func WithFallback(fallback TasteProvider) ServiceOption {
	return func(s *BaseTasteService) {
		s.fallback = fallback
	}
}

// WithLogger 设置日志器
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *BaseTasteService) {
		s.logger = logger.With().Str("component", "feature").Logger()
	}
}

func (s *BaseTasteService) Name() string {
	return s.provider.Name()
}

func (s *BaseTasteService) GetTastes(ctx context.Context, customerID string) (map[string]float64, error) {
	if s.cache != nil {
		if tastes, ok := s.cache.Get(ctx, customerID); ok {
			return tastes, nil
		}
	}

	tastes, err := s.provider.GetTastes(ctx, customerID)
	if err == nil && len(tastes) > 0 {
		if s.cache != nil {
			s.cache.Set(ctx, customerID, tastes, s.cacheTTL)
		}
		return tastes, nil
	}

	if s.fallback != nil {
		if err != nil {
			s.logger.Debug().Err(err).
				Str("provider", s.provider.Name()).
				Str("customer_id", customerID).
				Msg("taste provider failed, trying fallback")
		}
		fb, ferr := s.fallback.GetTastes(ctx, customerID)
		if ferr == nil && len(fb) > 0 {
			if s.cache != nil {
				s.cache.Set(ctx, customerID, fb, s.cacheTTL)
			}
			return fb, nil
		}
	}

	if err != nil {
		return nil, err
	}
	return map[string]float64{}, nil
}

// Close 释放主数据源、降级数据源与缓存持有的资源。
func (s *BaseTasteService) Close() error {
	var first error
	for _, p := range []TasteProvider{s.provider, s.fallback} {
		if closer, ok := p.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	if closer, ok := s.cache.(interface{ Close() }); ok {
		closer.Close()
	}
	return first
}
