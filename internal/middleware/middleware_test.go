package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marilyndevx/FinFusion-V1/internal/auth"
	"github.com/marilyndevx/FinFusion-V1/pkg/api"
)

const echoProcedure = "/finfusion.test.EchoService/Echo"

type echoRequest struct {
	Fail bool `json:"fail"`
}

type echoResponse struct {
	Subject string `json:"subject"`
}

// newEchoClient serves a handler that reports the caller it sees, wrapped in
// the given interceptors.
func newEchoClient(t *testing.T, interceptors ...connect.Interceptor) *connect.Client[echoRequest, echoResponse] {
	t.Helper()

	handler := connect.NewUnaryHandler(echoProcedure,
		func(ctx context.Context, req *connect.Request[echoRequest]) (*connect.Response[echoResponse], error) {
			if req.Msg.Fail {
				return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("asked to fail"))
			}
			return connect.NewResponse(&echoResponse{Subject: GetSubject(ctx)}), nil
		},
		connect.WithCodec(api.Codec()),
		connect.WithInterceptors(interceptors...),
	)

	mux := http.NewServeMux()
	mux.Handle(echoProcedure, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return connect.NewClient[echoRequest, echoResponse](http.DefaultClient, server.URL+echoProcedure,
		connect.WithCodec(api.Codec()))
}

func TestRequireAuth(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	client := newEchoClient(t, RequireAuth(tokens), LoggingInterceptor())

	token, err := tokens.Generate("reporting-job")
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		req := connect.NewRequest(&echoRequest{})
		req.Header().Set("Authorization", "Bearer "+token)

		resp, err := client.CallUnary(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "reporting-job", resp.Msg.Subject)
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic " + token},
		{"bad token", "Bearer nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := connect.NewRequest(&echoRequest{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}

			_, err := client.CallUnary(context.Background(), req)
			assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
		})
	}
}

func TestMetricsInterceptor(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	client := newEchoClient(t, metrics.Interceptor())

	for i := 0; i < 2; i++ {
		_, err := client.CallUnary(context.Background(), connect.NewRequest(&echoRequest{}))
		require.NoError(t, err)
	}
	_, err := client.CallUnary(context.Background(), connect.NewRequest(&echoRequest{Fail: true}))
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.requests.WithLabelValues(echoProcedure, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues(echoProcedure, "invalid_argument")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.duration))
}
