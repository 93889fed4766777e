package httpapi

import "context"

type contextKey string

const actorContextKey contextKey = "actor"

func withActor(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, actorContextKey, username)
}

func actorFromContext(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(actorContextKey).(string)
	return actor, ok && actor != ""
}
