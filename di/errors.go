package di

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the taxonomy in the container's error handling design.
// Callers should use errors.Is/errors.As rather than matching on strings.
var (
	// ErrUnregistered is returned when no descriptor (and no test-mode mock)
	// exists for the requested (key, context key) pair.
	ErrUnregistered = errors.New("di: service not registered")

	// ErrLifecycleMismatch is returned when a dependency's lifecycle is
	// incompatible with its parent's (e.g. a singleton depending on a
	// scoped service).
	ErrLifecycleMismatch = errors.New("di: lifecycle mismatch")

	// ErrAsyncRequired is returned by the synchronous Resolve path when the
	// transitive dependency closure contains an async-init descriptor.
	ErrAsyncRequired = errors.New("di: resolution requires ResolveAsync")

	// ErrScopeRequired is returned when a scoped service is resolved
	// outside of any scope.
	ErrScopeRequired = errors.New("di: scoped service requires an active scope")

	// ErrScopeClosed is returned when a registered service is resolved
	// against a closed scope or lifecycle context.
	ErrScopeClosed = errors.New("di: scope is closed")

	// ErrInvalidDescriptor is returned when a descriptor fails validation
	// at registration time.
	ErrInvalidDescriptor = errors.New("di: invalid descriptor")
)

// CyclicDependencyError reports a circular dependency, naming the full
// offending chain in declaration order for diagnostic value.
type CyclicDependencyError struct {
	Chain []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("di: circular dependency detected: %s", strings.Join(e.Chain, " -> "))
}

// ErrCyclicDependency is a sentinel usable with errors.Is against any
// *CyclicDependencyError produced during resolution.
var ErrCyclicDependency = errors.New("di: circular dependency detected")

// Is lets errors.Is(err, ErrCyclicDependency) match any *CyclicDependencyError
// regardless of chain contents.
func (e *CyclicDependencyError) Is(target error) bool {
	return target == ErrCyclicDependency
}

// ConstructionError wraps the error or panic a provider raised while
// building a service, naming the offending key.
type ConstructionError struct {
	Key string
	Err error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("di: construction of %q failed: %v", e.Key, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
