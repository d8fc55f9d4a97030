package linkkeep

import "context"

var userIDCtxKey = &contextKey{"user-id"}
var claimsCtxKey = &contextKey{"claims"}

type contextKey struct {
	name string
}

// WithUserID sets the authenticated user id in the given context
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDCtxKey, id)
}

// UserIDFromContext finds the authenticated user id from the context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	raw, ok := ctx.Value(userIDCtxKey).(int64)
	return raw, ok
}

// WithClaimsContext sets the AuthClaims in the given context
func WithClaimsContext(ctx context.Context, claims AuthClaims) context.Context {
	return context.WithValue(ctx, claimsCtxKey, claims)
}

// ClaimsFromContext extracts the AuthClaims from the standard context
func ClaimsFromContext(ctx context.Context) (AuthClaims, bool) {
	raw, ok := ctx.Value(claimsCtxKey).(AuthClaims)
	return raw, ok
}
