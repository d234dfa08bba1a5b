package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/stuti-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/stuti-api/internal/domain"
	"github.com/jsamuelsen11/stuti-api/internal/platform/logging"
)

const bearerPrefix = "Bearer "

// memberIDKey is the context key for the authenticated member id.
type memberIDKey struct{}

// WithMemberID returns a new context carrying the authenticated member id.
func WithMemberID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, memberIDKey{}, id)
}

// MemberIDFromContext returns the authenticated member id, or false if the
// request was not authenticated.
func MemberIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(memberIDKey{}).(int64)
	return id, ok
}

// Authenticate returns middleware that requires an HS256 bearer token signed
// with secret. The numeric "sub" claim becomes the member id, which is stored
// in the request context and added to the request logger. Requests without
// a valid token get a 401 problem response.
func Authenticate(secret []byte) func(http.Handler) http.Handler {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	keyFunc := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			memberID, err := memberIDFromRequest(parser, keyFunc, r)
			if err != nil {
				logging.FromContext(r.Context()).DebugContext(r.Context(), "authentication failed",
					slog.Any("error", err),
				)
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx := WithMemberID(r.Context(), memberID)
			ctx = logging.With(ctx, slog.Int64("member_id", memberID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func memberIDFromRequest(parser *jwt.Parser, keyFunc jwt.Keyfunc, r *http.Request) (int64, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return 0, fmt.Errorf("missing bearer token: %w", domain.ErrUnauthorized)
	}

	var claims jwt.RegisteredClaims
	if _, err := parser.ParseWithClaims(strings.TrimSpace(header[len(bearerPrefix):]), &claims, keyFunc); err != nil {
		return 0, fmt.Errorf("invalid token: %w", errors.Join(domain.ErrUnauthorized, err))
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("subject %q is not a member id: %w", claims.Subject, domain.ErrUnauthorized)
	}
	return id, nil
}

// ActorHandlerFunc is a handler that acts on behalf of an authenticated member.
type ActorHandlerFunc func(w http.ResponseWriter, r *http.Request, actorID int64)

// WithActor adapts fn to an http.HandlerFunc by passing it the member id
// stored by Authenticate. It must be mounted behind Authenticate; without a
// member id it answers 401.
func WithActor(fn ActorHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, ok := MemberIDFromContext(r.Context())
		if !ok {
			dto.WriteErrorResponse(w, r, fmt.Errorf("no authenticated member: %w", domain.ErrUnauthorized))
			return
		}
		fn(w, r, actorID)
	}
}
