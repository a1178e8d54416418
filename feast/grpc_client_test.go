package feast

import (
	"context"
	"testing"

	feasttypes "github.com/feast-dev/feast/sdk/go/protos/feast/types"
)

// TestGrpcClient_GetOnlineFeatures 需要连接真实的 Feast 服务器才能运行。
func TestGrpcClient_GetOnlineFeatures(t *testing.T) {
	t.Skip("requires a running Feast feature server")

	ctx := context.Background()

	client, err := NewGrpcClient("localhost", 6565, "cafe")
	if err != nil {
		t.Fatalf("NewGrpcClient() error = %v", err)
	}
	defer client.Close()

	resp, err := client.GetOnlineFeatures(ctx, &GetOnlineFeaturesRequest{
		Features: []string{
			"customer_tastes:coffee",
			"customer_tastes:tea",
		},
		EntityRows: []map[string]interface{}{
			{"customer_id": "alice"},
			{"customer_id": "bob"},
		},
	})
	if err != nil {
		t.Fatalf("GetOnlineFeatures() error = %v", err)
	}

	if len(resp.FeatureVectors) != 2 {
		t.Errorf("len(FeatureVectors) = %d, want 2", len(resp.FeatureVectors))
	}
	for i, fv := range resp.FeatureVectors {
		t.Logf("vector %d: %+v", i, fv.Values)
	}
}

func TestFromSDKValue(t *testing.T) {
	tests := []struct {
		name string
		val  *feasttypes.Value
		want interface{}
	}{
		{
			name: "double",
			val:  &feasttypes.Value{Val: &feasttypes.Value_DoubleVal{DoubleVal: 0.9}},
			want: 0.9,
		},
		{
			name: "int64 becomes float64",
			val:  &feasttypes.Value{Val: &feasttypes.Value_Int64Val{Int64Val: 42}},
			want: float64(42),
		},
		{
			name: "float becomes float64",
			val:  &feasttypes.Value{Val: &feasttypes.Value_FloatVal{FloatVal: 0.5}},
			want: float64(float32(0.5)),
		},
		{
			name: "string stays string",
			val:  &feasttypes.Value{Val: &feasttypes.Value_StringVal{StringVal: "coffee"}},
			want: "coffee",
		},
		{
			name: "bool becomes 0/1",
			val:  &feasttypes.Value{Val: &feasttypes.Value_BoolVal{BoolVal: true}},
			want: float64(1),
		},
		{
			name: "nil value",
			val:  nil,
			want: nil,
		},
		{
			name: "empty value",
			val:  &feasttypes.Value{},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fromSDKValue(tt.val); got != tt.want {
				t.Errorf("fromSDKValue() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		wantHost string
		wantPort int
	}{
		{"localhost:6565", "localhost", 6565},
		{"grpc://feast.internal:6565", "feast.internal", 6565},
		{"localhost", "localhost", 0},
		{"localhost:bad", "localhost", 0},
	}
	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			host, port := parseEndpoint(tt.endpoint)
			if host != tt.wantHost || port != tt.wantPort {
				t.Errorf("parseEndpoint(%q) = (%s, %d), want (%s, %d)",
					tt.endpoint, host, port, tt.wantHost, tt.wantPort)
			}
		})
	}
}
