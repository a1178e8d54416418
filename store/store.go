package store

// 注意：此包只包含实现，接口定义在 core 包。
// 使用 core.Store 和 core.KeyValueStore 接口。
//
// menukit 的存储键约定（provider / feature 包按此读写）：
//   - menu:items            目录快照（JSON 数组）
//   - orders:{customerID}   顾客订单历史（JSON 数组）
//   - popular:items         热门有序集合（member=菜品 ID，score=订单数）
//   - popular:quantity      热门数量并列字段（Hash，field=菜品 ID）
//   - taste:{customerID}    口味画像（Hash，field=品类）
//
// 示例：
//   var store core.Store = NewMemoryStore()
//   var kvStore core.KeyValueStore = NewMemoryStore()
