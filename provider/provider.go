// Package provider 提供目录 / 订单历史 / 顾客画像的具体数据源实现。
//
// 核心思想：
//   - 领域接口（core.CatalogProvider 等）定义在 core，实现放在这里，
//     引擎通过构造注入持有句柄
//   - StaticProvider：内存切片，适合测试、示例、无外部依赖的单店部署
//   - StoreProvider：基于 core.Store 的适配器，订单与目录存 JSON，
//     热门排行存有序集合（见 store 包的 key 约定）
//
// 错误约定（与 core 的错误分层一致）：
//   - 数据源不可达 / 整个 key 的 JSON 损坏：DATA_UNAVAILABLE，原样上抛
//   - key 不存在：按空数据处理，不是错误
//   - 单条坏记录（时间戳无法解析）：解析处降级为零值并打 debug 日志
package provider
