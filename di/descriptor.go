package di

import (
	"fmt"
	"reflect"
	"sync"
)

// ProviderForm tags how a serviceDescriptor knows to build its instance.
type ProviderForm int

const (
	// ProviderConstructor builds by invoking a reflected function whose
	// parameters are themselves resolved from the container.
	ProviderConstructor ProviderForm = iota
	// ProviderFactory invokes a user closure that receives the container
	// (and/or the active lifecycle context) and returns an instance.
	ProviderFactory
	// ProviderInstance returns a pre-built value as-is. Only valid for the
	// Singleton lifecycle.
	ProviderInstance
)

// PropertyInjection declares a post-construction setter call: resolve
// Key and install it on the field named FieldName of the built instance.
type PropertyInjection struct {
	FieldName string
	Key       string
	Optional  bool
}

// dependencyParam describes one positional constructor/factory parameter.
type dependencyParam struct {
	index    int
	typ      reflect.Type
	key      string
	optional bool
}

// serviceDescriptor is the immutable record of how to build and manage one
// service. It is the Go encoding of the "Service Descriptor" component:
// exactly one provider form, a frozen dependency list, and the lifecycle
// that governs caching.
type serviceDescriptor struct {
	key         string
	serviceType reflect.Type

	provider       ProviderForm
	factoryFn      reflect.Value
	instance       reflect.Value
	factoryClosure func(Container, LifecycleContext) (reflect.Value, error)

	lifecycle LifecycleScope
	params    []dependencyParam

	asyncInit          bool
	propertyInjections []PropertyInjection

	// mutex is the per-key construction lock: the first concurrent
	// resolver to reach this descriptor wins, and the rest wait on the
	// lock rather than racing the factory function.
	mutex sync.Mutex

	// dependencyTreeCache memoizes the topological build order computed by
	// getDependencyTree, since the dependency list is fixed at
	// registration and never rediscovered.
	dependencyTreeCache []*serviceDescriptor

	// builtUnderTestMode marks a singleton cache entry that was populated
	// while test mode was active, so DisableTestMode can evict just those
	// entries without touching real singletons built before test mode was
	// enabled.
	builtUnderTestMode bool
}

// RegisterOption customizes a descriptor beyond the reflected constructor
// signature: optional params, async init, and property injection are not
// recoverable from a function's reflect.Type alone.
type RegisterOption func(*serviceDescriptor)

// WithAsyncInit marks the descriptor as requiring ResolveAsync; a
// synchronous Resolve anywhere in its transitive dependency closure fails
// with ErrAsyncRequired.
func WithAsyncInit() RegisterOption {
	return func(d *serviceDescriptor) {
		d.asyncInit = true
	}
}

// WithOptionalParam marks the constructor/factory parameter at the given
// zero-based index as optional: if its dependency is unregistered, the
// resolver substitutes the zero value instead of failing.
func WithOptionalParam(index int) RegisterOption {
	return func(d *serviceDescriptor) {
		for i := range d.params {
			if d.params[i].index == index {
				d.params[i].optional = true
			}
		}
	}
}

// WithPropertyInjection declares a post-construction setter: after the
// instance is built, resolve dependencyKey and assign it into the exported
// struct field named fieldName.
func WithPropertyInjection(fieldName, dependencyKey string, optional bool) RegisterOption {
	return func(d *serviceDescriptor) {
		d.propertyInjections = append(d.propertyInjections, PropertyInjection{
			FieldName: fieldName,
			Key:       dependencyKey,
			Optional:  optional,
		})
	}
}

// validate checks the invariants from the Service Descriptor design: a
// lifecycle value must be one of the three known scopes, and an Instance
// provider may only be used with Singleton lifecycle.
func (d *serviceDescriptor) validate() error {
	switch d.lifecycle {
	case Transient, Singleton, Scoped:
	default:
		return fmt.Errorf("%w: unknown lifecycle %d for %s", ErrInvalidDescriptor, d.lifecycle, d.key)
	}
	if d.provider == ProviderInstance && d.lifecycle != Singleton {
		return fmt.Errorf("%w: instance provider for %s must be registered as Singleton", ErrInvalidDescriptor, d.key)
	}
	return nil
}
