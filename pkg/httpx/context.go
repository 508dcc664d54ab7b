package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID holds the authenticated principal used for per-user rate
	// limiting and logging.
	CtxKeyUserID ctxKey = "user_id"
)

// WithUserID records the authenticated principal on ctx.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, userID)
}

// UserIDFromContext returns the principal set by WithUserID.
func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyUserID).(string)
	return v, ok && v != ""
}
