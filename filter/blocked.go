package filter

import (
	"context"

	"github.com/rushteam/menukit/core"
)

// BlockedFilter 是下架黑名单过滤器，过滤掉被 86（临时停售/拉黑）的菜品。
// 名单可以是内存列表、Store 中的 key，或两者同时使用。
type BlockedFilter struct {
	// ItemIDs 是内存中的黑名单菜品 ID 列表
	ItemIDs []string

	// Store 用于从存储中读取黑名单（可选）
	Store BlockedStore

	// Key 是 Store 中的黑名单 key（可选），例如 "menu:blocked"
	Key string
}

// BlockedStore 是黑名单存储接口。
type BlockedStore interface {
	// GetBlockedItems 获取黑名单菜品 ID 列表
	GetBlockedItems(ctx context.Context, key string) ([]string, error)
}

// NewBlockedFilter 创建一个黑名单过滤器。
func NewBlockedFilter(itemIDs []string, storeAdapter *StoreAdapter, key string) *BlockedFilter {
	var store BlockedStore
	if storeAdapter != nil {
		store = storeAdapter
	}
	return &BlockedFilter{
		ItemIDs: itemIDs,
		Store:   store,
		Key:     key,
	}
}

var _ Filter = (*BlockedFilter)(nil)

func (f *BlockedFilter) Name() string {
	return "filter.blocked"
}

func (f *BlockedFilter) ShouldFilter(
	ctx context.Context,
	_ *core.RecommendContext,
	cand *core.Candidate,
) (bool, error) {
	if cand == nil {
		return true, nil
	}

	// 从内存列表检查
	for _, id := range f.ItemIDs {
		if cand.ID == id {
			return true, nil
		}
	}

	// 从 Store 检查
	if f.Store != nil && f.Key != "" {
		blocked, err := f.Store.GetBlockedItems(ctx, f.Key)
		if err == nil {
			for _, id := range blocked {
				if cand.ID == id {
					return true, nil
				}
			}
		}
	}

	return false, nil
}
