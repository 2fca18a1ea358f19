package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/marilyndevx/FinFusion-V1/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// SubjectKey is the context key for the authenticated caller.
const SubjectKey contextKey = "subject"

// GetSubject extracts the authenticated caller from the context.
// Returns empty string if not found.
func GetSubject(ctx context.Context) string {
	subject, _ := ctx.Value(SubjectKey).(string)
	return subject
}

// RequireAuth returns an interceptor that rejects calls without a valid
// bearer token and adds the token's subject to the request context.
func RequireAuth(tokens *auth.TokenManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			// Parse Bearer token
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			ctx = context.WithValue(ctx, SubjectKey, claims.Subject)
			return next(ctx, req)
		}
	}
}
