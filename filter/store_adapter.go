package filter

import (
	"context"
	"encoding/json"

	"github.com/rushteam/menukit/core"
)

// StoreAdapter 将 core.Store 适配为过滤器所需的存储接口。
// 黑名单在 Store 中保存为 JSON 字符串数组，例如 ["latte","croissant"]。
type StoreAdapter struct {
	store core.Store
}

// NewStoreAdapter 创建一个 core.Store 适配器。
func NewStoreAdapter(s core.Store) *StoreAdapter {
	return &StoreAdapter{store: s}
}

var _ BlockedStore = (*StoreAdapter)(nil)

// GetBlockedItems 从 Store 读取黑名单。
// key 不存在视为无黑名单，返回空列表。
func (a *StoreAdapter) GetBlockedItems(ctx context.Context, key string) ([]string, error) {
	data, err := a.store.Get(ctx, key)
	if err != nil {
		if core.IsStoreNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}

	return ids, nil
}
