package di

import (
	"context"
	"sync/atomic"
	"testing"
)

type scopedService struct {
	id int32
}

func TestScope_ResolveScoped_SharesInstanceWithinScope(t *testing.T) {
	c := NewContainer()
	var counter int32

	if err := Register[*scopedService](c, Scoped, func() *scopedService {
		return &scopedService{id: atomic.AddInt32(&counter, 1)}
	}); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	scope := NewScope(c)
	defer scope.Close()

	first, err := ResolveScoped[*scopedService](scope)
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	second, err := ResolveScoped[*scopedService](scope)
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}

	if first != second {
		t.Fatal("expected the same scoped instance within one scope")
	}
	if counter != 1 {
		t.Fatalf("expected factory to run once, ran %d times", counter)
	}
}

func TestScope_SeparateScopesGetSeparateInstances(t *testing.T) {
	c := NewContainer()
	var counter int32

	if err := Register[*scopedService](c, Scoped, func() *scopedService {
		return &scopedService{id: atomic.AddInt32(&counter, 1)}
	}); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	scope1 := NewScope(c)
	defer scope1.Close()
	scope2 := NewScope(c)
	defer scope2.Close()

	first := MustResolveScoped[*scopedService](scope1)
	second := MustResolveScoped[*scopedService](scope2)

	if first.id == second.id {
		t.Fatal("expected distinct scoped instances across distinct scopes")
	}
}

func TestScope_CloseEndsLifecycleListeners(t *testing.T) {
	c := NewContainer()
	called := int32(0)

	if err := Register[*listenerDep](c, Scoped, func() *listenerDep {
		return &listenerDep{called: &called}
	}); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	scope := NewScope(c)
	if _, err := ResolveScoped[*listenerDep](scope); err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}

	if err := scope.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
	if called != 1 {
		t.Fatalf("expected EndLifecycle to run once on scope close, got %d", called)
	}

	// Closing an already-closed scope is a no-op, not an error.
	if err := scope.Close(); err != nil {
		t.Fatalf("expected closing an already-closed scope to be a no-op, got: %v", err)
	}
}

func TestScope_ResolveScopedAsync(t *testing.T) {
	c := NewContainer()

	if err := Register[*scopedService](c, Scoped, func(ctx context.Context) *scopedService {
		return &scopedService{id: 7}
	}, WithAsyncInit()); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	scope := NewScope(c)
	defer scope.Close()

	got, err := ResolveScopedAsync[*scopedService](context.Background(), scope)
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	if got.id != 7 {
		t.Fatalf("expected id 7, got %d", got.id)
	}
}
