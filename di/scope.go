package di

import (
	"context"
	"fmt"

	diutils "github.com/corewire/godi/di/di-utils"
)

// Scope bundles a lifecycle context with the container it belongs to, so
// callers don't have to thread both values through their own code. It is
// the unit of "per-request" or "per-job" lifetime: services registered
// Scoped are built once per Scope and torn down when the Scope closes.
type Scope struct {
	container Container
	ctx       LifecycleContext
}

// NewScope opens a new scope on the given container.
func NewScope(c Container) *Scope {
	return &Scope{
		container: c,
		ctx:       c.NewContext(),
	}
}

// Context returns the scope's underlying lifecycle context, for callers
// that need to pass it directly to Resolve/ResolveWithKey.
func (s *Scope) Context() LifecycleContext {
	return s.ctx
}

// Close shuts down the scope's lifecycle context, running EndLifecycle on
// every LifecycleListener instance it cached, and removes it from the
// owning container.
func (s *Scope) Close(ctxs ...context.Context) error {
	if s.ctx == nil || s.ctx.IsClosed() {
		return nil
	}
	diutils.DebugLog("Closing scope %s", s.ctx.ID())
	if err := s.container.RemoveContext(s.ctx); err != nil {
		return fmt.Errorf("failed to close scope %s: %w", s.ctx.ID(), err)
	}
	return nil
}

// ResolveScoped resolves a service of type T within this scope.
func ResolveScoped[T any](s *Scope) (T, error) {
	return Resolve[T](s.container, s.ctx)
}

// ResolveScopedWithKey resolves a service registered under key within this scope.
func ResolveScopedWithKey[T any](s *Scope, key string) (T, error) {
	return ResolveWithKey[T](s.container, key, s.ctx)
}

// ResolveScopedAsync resolves a service of type T within this scope,
// awaiting any async-init descriptors on its dependency closure.
func ResolveScopedAsync[T any](parent context.Context, s *Scope) (T, error) {
	return ResolveAsync[T](parent, s.container, s.ctx)
}

// MustResolveScoped resolves a service of type T within this scope, panicking on failure.
func MustResolveScoped[T any](s *Scope) T {
	v, err := ResolveScoped[T](s)
	if err != nil {
		panic(err)
	}
	return v
}
