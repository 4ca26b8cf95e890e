package di

import (
	"fmt"
	"reflect"
	"strings"

	diutils "github.com/corewire/godi/di/di-utils"
)

// contextKeySeparator joins a type's reflected name with a qualifier to
// build the registry key for a context-keyed registration. Distinct
// qualifiers for the same type T resolve to distinct descriptors, e.g. two
// database connections registered under "primary" and "replica".
const contextKeySeparator = "#"

// contextualKey builds the composite registry key for a (type, qualifier)
// pair. An empty qualifier degenerates to the plain type key, so
// RegisterContext(c, "", ...) behaves like Register.
func contextualKey[T any](qualifier string) string {
	base := diutils.NameOf[T]()
	if qualifier == "" {
		return base
	}
	return base + contextKeySeparator + qualifier
}

// Register registers a service of type T with the container using the provided factory function and lifecycle scope.
//
// The factory function must be a function that returns exactly one value of type T.
// The scope determines the lifetime of the service instance (Transient, Singleton, Scoped).
func Register[T any](c Container, scope LifecycleScope, factoryFn interface{}, opts ...RegisterOption) error {
	serviceType := diutils.TypeOf[T]()
	key := diutils.NameOfType(serviceType)
	return RegisterWithKey[T](c, key, scope, factoryFn, opts...)
}

// RegisterWithKey registers a service of type T with the container using the provided key, factory function, and lifecycle scope.
func RegisterWithKey[T any](c Container, key string, scope LifecycleScope, factoryFn interface{}, opts ...RegisterOption) error {
	if c == nil {
		return fmt.Errorf("container cannot be nil")
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key cannot be empty")
	}

	serviceType := diutils.TypeOf[T]()
	return c.Register(serviceType, key, scope, factoryFn, opts...)
}

// RegisterContext registers a service of type T under a qualifier distinct
// from its bare type key, so multiple configurations of the same Go type
// can coexist in one container (e.g. two *sql.DB instances).
func RegisterContext[T any](c Container, qualifier string, scope LifecycleScope, factoryFn interface{}, opts ...RegisterOption) error {
	return RegisterWithKey[T](c, contextualKey[T](qualifier), scope, factoryFn, opts...)
}

// RegisterFactory registers a service of type T built by a user-supplied
// closure rather than a reflected constructor. The closure receives the
// container and the active lifecycle context as self, and is invoked
// directly with no parameter introspection — the Factory provider form for
// callers who want to build a value from config or external state instead
// of declaring it through constructor parameters.
func RegisterFactory[T any](c Container, scope LifecycleScope, factoryFn func(Container, LifecycleContext) (T, error), opts ...RegisterOption) error {
	return RegisterFactoryWithKey[T](c, diutils.NameOf[T](), scope, factoryFn, opts...)
}

// RegisterFactoryWithKey registers a Factory-form service of type T under
// the given key.
func RegisterFactoryWithKey[T any](c Container, key string, scope LifecycleScope, factoryFn func(Container, LifecycleContext) (T, error), opts ...RegisterOption) error {
	if c == nil {
		return fmt.Errorf("container cannot be nil")
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key cannot be empty")
	}
	if factoryFn == nil {
		return fmt.Errorf("factoryFn cannot be nil")
	}

	impl, ok := c.(*containerImpl)
	if !ok {
		return fmt.Errorf("container does not support factory registration")
	}

	entry := &serviceDescriptor{
		serviceType: diutils.TypeOf[T](),
		key:         key,
		provider:    ProviderFactory,
		lifecycle:   scope,
		factoryClosure: func(c Container, ctx LifecycleContext) (reflect.Value, error) {
			v, err := factoryFn(c, ctx)
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(v), nil
		},
	}

	for _, opt := range opts {
		opt(entry)
	}

	return impl.registerBuilt(entry)
}

// RegisterInstance registers an already-constructed value of type T as a
// singleton, bypassing the constructor/factory path entirely. Useful for
// wiring values built outside the container, such as a parsed config.
func RegisterInstance[T any](c Container, value T) error {
	return RegisterInstanceWithKey[T](c, diutils.NameOf[T](), value)
}

// RegisterInstanceWithKey registers an already-constructed value of type T
// under the given key as a singleton.
func RegisterInstanceWithKey[T any](c Container, key string, value T) error {
	if c == nil {
		return fmt.Errorf("container cannot be nil")
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key cannot be empty")
	}

	impl, ok := c.(*containerImpl)
	if !ok {
		return fmt.Errorf("container does not support instance registration")
	}

	entry := &serviceDescriptor{
		serviceType: diutils.TypeOf[T](),
		key:         key,
		provider:    ProviderInstance,
		instance:    reflect.ValueOf(value),
		lifecycle:   Singleton,
	}
	return impl.registerBuilt(entry)
}
