package di

import (
	"context"
	"fmt"
	"sync"

	diutils "github.com/corewire/godi/di/di-utils"
)

// Lazy defers resolution of a dependency until Get is first called,
// instead of at construction time. A constructor that takes Container and
// builds its own handle with NewLazy, instead of taking the dependency as a
// parameter, breaks an eager cycle that would otherwise trip the
// circular-dependency check: the two sides no longer need each other to
// exist before either one finishes building, only before either one is
// actually used. A *Lazy[T] constructor parameter is not created by the
// container; it is looked up in the registry like any other parameter.
type Lazy[T any] struct {
	once     sync.Once
	mutex    sync.Mutex
	resolved T
	err      error

	container Container
	ctx       LifecycleContext
	key       string
}

// NewLazy creates a Lazy proxy for the service registered under T's
// default key.
func NewLazy[T any](c Container, ctx LifecycleContext) *Lazy[T] {
	return NewLazyWithKey[T](c, diutils.NameOf[T](), ctx)
}

// NewLazyWithKey creates a Lazy proxy for the service registered under key.
func NewLazyWithKey[T any](c Container, key string, ctx LifecycleContext) *Lazy[T] {
	return &Lazy[T]{container: c, ctx: ctx, key: key}
}

// Get resolves the underlying service on first call and caches the result
// (or the error) for subsequent calls; it never re-invokes the container.
func (l *Lazy[T]) Get() (T, error) {
	l.once.Do(func() {
		l.resolved, l.err = ResolveWithKey[T](l.container, l.key, l.ctx)
	})
	return l.resolved, l.err
}

// MustGet resolves the underlying service, panicking on failure.
func (l *Lazy[T]) MustGet() T {
	v, err := l.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// GetAsync resolves the underlying service asynchronously, awaiting any
// async-init descriptors on its dependency closure.
func (l *Lazy[T]) GetAsync(parent context.Context) (T, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	var zero T
	if l.key == "" {
		return zero, fmt.Errorf("lazy proxy has no key")
	}

	resolved, err := ResolveAsyncWithKey[T](parent, l.container, l.key, l.ctx)
	return resolved, err
}
