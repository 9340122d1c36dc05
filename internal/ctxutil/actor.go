// Package ctxutil carries the acting owner through context so sqlite log
// writers can attribute mutations. It has no internal dependencies.
package ctxutil

import "context"

type actorKey struct{}

// WithActorID returns a context with the acting owner embedded. The CLI sets
// this from the --owner flag or the configured default before calling
// mutating services.
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorKey{}, actorID)
}

// ActorFromContext returns the acting owner, or empty string if none was set
// (activity log rows then carry a NULL actor).
func ActorFromContext(ctx context.Context) string {
	actor, _ := ctx.Value(actorKey{}).(string)
	return actor
}
