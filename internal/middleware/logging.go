package middleware

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs one line per RPC
// with the procedure, caller, peer and duration. Client mistakes log at WARN,
// internal failures at ERROR. Install it after RequireAuth so the caller is
// known.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			logger := slog.With(
				"procedure", req.Spec().Procedure,
				"subject", GetSubject(ctx), // empty when auth is off
				"peer", req.Peer().Addr,
			)

			resp, err := next(ctx, req)

			duration := time.Since(start).Milliseconds()
			if err == nil {
				logger.Info("RPC ok", "duration_ms", duration)
				return resp, nil
			}

			code := connect.CodeOf(err)
			switch code {
			case connect.CodeInternal, connect.CodeUnknown, connect.CodeDataLoss:
				logger.Error("RPC failed", "code", code, "error", err, "duration_ms", duration)
			default:
				logger.Warn("RPC rejected", "code", code, "error", err, "duration_ms", duration)
			}
			return resp, err
		}
	}
}
