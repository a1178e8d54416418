package feast

import (
	"strconv"
	"strings"
)

// NewClient 统一的客户端创建入口：解析端点地址并创建 gRPC 客户端。
//
// 端点形如 "localhost:6565" 或 "grpc://localhost:6565"，缺省端口 6565。
//
// 示例：
//
//	client, err := feast.NewClient("localhost:6565", "cafe")
func NewClient(endpoint, project string, opts ...ClientOption) (Client, error) {
	host, port := parseEndpoint(endpoint)
	return NewGrpcClient(host, port, project, opts...)
}

// parseEndpoint 解析端点地址，返回 host 和 port（无端口时 port 为 0）。
func parseEndpoint(endpoint string) (string, int) {
	endpoint = strings.TrimPrefix(endpoint, "grpc://")

	if host, portStr, ok := strings.Cut(endpoint, ":"); ok {
		if port, err := strconv.Atoi(portStr); err == nil {
			return host, port
		}
		return host, 0
	}
	return endpoint, 0
}
