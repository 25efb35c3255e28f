package ponto

import (
	"context"
	"log/slog"
)

// Invalidator descarta o resumo em cache depois de qualquer mutação.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(context.Context) error { return nil }

func orNoop(inv Invalidator) Invalidator {
	if inv == nil {
		return noopInvalidator{}
	}
	return inv
}

func invalidate(ctx context.Context, inv Invalidator) {
	if err := inv.Invalidate(ctx); err != nil {
		slog.WarnContext(ctx, "stats cache invalidation failed", "error", err)
	}
}
