package core

import "errors"

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message），可选携带底层错误（Err）
//   - 支持错误检查函数（IsXXX），与 errors.Is/As 兼容
//
// 错误分层（对应引擎的错误处理约定）：
//   - DATA_UNAVAILABLE：数据源不可达或返回坏数据，原样上抛，引擎不重试
//   - NOT_FOUND：资源不存在；对"顾客不存在"引擎按空历史处理，不算失败
//   - 单条坏记录（时间戳无法解析、菜品引用悬空）不制造错误：
//     解析处跳过该记录并打 debug 日志，残缺结果优于整体失败
//   - 空结果不是错误：空历史/空目录/无相似基础都返回空列表或兜底列表
type DomainError struct {
	Code    string // 错误代码（如 "NOT_FOUND", "DATA_UNAVAILABLE"）
	Message string // 错误消息
	Module  string // 模块名称（如 "store", "engine", "feature"）
	Err     error  // 底层错误（可选）
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// IsDomainError 检查错误是否为 DomainError 类型
func IsDomainError(err error) bool {
	return GetDomainError(err) != nil
}

// GetDomainError 获取 DomainError，如果不是则返回 nil（支持 wrap 链）
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// NewDataUnavailable 包装一次数据源失败：保留底层错误，上层可用
// IsDataUnavailable 识别。
func NewDataUnavailable(module string, err error) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    ErrorCodeDataUnavailable,
		Message: module + ": data unavailable",
		Err:     err,
	}
}

// 错误代码常量
const (
	// 通用错误代码
	ErrorCodeNotFound        = "NOT_FOUND"        // 资源不存在
	ErrorCodeNotSupported    = "NOT_SUPPORTED"    // 操作不支持
	ErrorCodeDataUnavailable = "DATA_UNAVAILABLE" // 数据源不可用
	ErrorCodeInvalidInput    = "INVALID_INPUT"    // 输入无效
	ErrorCodeInvalidConfig   = "INVALID_CONFIG"   // 配置无效
	ErrorCodeInternalError   = "INTERNAL_ERROR"   // 内部错误
)

// 模块名称常量
const (
	ModuleStore    = "store"    // 存储模块
	ModuleProvider = "provider" // 数据提供方模块
	ModuleEngine   = "engine"   // 引擎模块
	ModuleFeature  = "feature"  // 口味特征模块
	ModuleScorer   = "scorer"   // 策略打分模块
)

// 通用错误检查函数

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}

// IsNotSupported 检查错误是否为 NOT_SUPPORTED
func IsNotSupported(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotSupported
	}
	return false
}

// IsDataUnavailable 检查错误是否为 DATA_UNAVAILABLE
func IsDataUnavailable(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeDataUnavailable
	}
	return false
}

// IsInvalidConfig 检查错误是否为 INVALID_CONFIG
func IsInvalidConfig(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeInvalidConfig
	}
	return false
}
