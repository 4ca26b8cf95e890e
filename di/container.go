package di

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	diutils "github.com/corewire/godi/di/di-utils"
)

// backgroundContextKey is the key used to identify the background lifecycle context in the container.
const backgroundContextKey = "__BACKGROUND_CONTEXT_KEY__"

// containerReflectedKey is the reflected key for the Container type.
var containerReflectedKey string = diutils.NameOfType(diutils.TypeOf[Container]())

// lifecycleContextReflectedKey is the reflected key for the LifecycleContext type.
var lifecycleContextReflectedKey = diutils.NameOfType(diutils.TypeOf[LifecycleContext]())

// contextPkgType is the reflected type of context.Context, the marker an
// async-init constructor's leading parameter must declare.
var contextPkgType = diutils.TypeOf[context.Context]()

// Container represents a dependency injection container that manages the lifecycle of services.
type Container interface {
	NewContext() LifecycleContext
	RemoveContext(ctx LifecycleContext) error
	BackgroundContext() LifecycleContext
	Shutdown(...context.Context) []error
	Resolve(key string, ctx LifecycleContext) (interface{}, error)
	ResolveAsync(parent context.Context, key string, ctx LifecycleContext) (interface{}, error)
	Register(serviceType reflect.Type, key string, scope LifecycleScope, factoryFn interface{}, opts ...RegisterOption) error
	Validate() error

	// EnableTestMode opens the mock overlay; while active, Resolve and
	// ResolveAsync consult it before the registry.
	EnableTestMode()
	// DisableTestMode clears the overlay and evicts singleton cache
	// entries built while test mode was on, leaving real singletons built
	// before test mode untouched.
	DisableTestMode()
	// Mock installs a mock value for key, visible only while test mode is
	// enabled.
	Mock(key string, value interface{}) error
	// Unmock removes a single mock, if present.
	Unmock(key string)

	// Stats reports lightweight resolution counters for diagnostics.
	Stats() Stats
}

// Stats reports resolution counters, updated atomically on the hot path.
type Stats struct {
	ResolvedCount int64
	FailedCount   int64
}

// NewContainer creates a new dependency injection container.
// It initializes the container's registry and lifecycle contexts, including the background context.
func NewContainer() Container {
	container := &containerImpl{
		registry:          diutils.NewMap[string, *serviceDescriptor](),
		lifecycleContexts: diutils.NewMap[string, LifecycleContext](),
		mocks:             diutils.NewMap[string, reflect.Value](),
	}
	container.lifecycleContexts.Set(backgroundContextKey, NewLifecycleContext())
	return container
}

// containerImpl is the concrete implementation of the Container interface.
type containerImpl struct {
	registry          *diutils.Map[string, *serviceDescriptor]
	lifecycleContexts *diutils.Map[string, LifecycleContext]
	mutex             sync.RWMutex

	testMode int32 // atomic bool, flipped by Enable/DisableTestMode
	mocks    *diutils.Map[string, reflect.Value]

	stats Stats
}

// NewContext creates a new lifecycle context and adds it to the container.
func (c *containerImpl) NewContext() LifecycleContext {
	ctx := NewLifecycleContext()
	c.lifecycleContexts.Set(ctx.ID(), ctx)
	return ctx
}

// BackgroundContext returns the background lifecycle context.
func (c *containerImpl) BackgroundContext() LifecycleContext {
	if value, exists := c.lifecycleContexts.Get(backgroundContextKey); exists {
		return value
	}
	return nil
}

// RemoveContext removes the given lifecycle context from the container and shuts it down.
func (c *containerImpl) RemoveContext(lctx LifecycleContext) error {
	if lctx == nil || lctx.IsClosed() {
		return nil
	}

	c.lifecycleContexts.Delete(lctx.ID())

	if errs := lctx.Shutdown(); len(errs) > 0 {
		return fmt.Errorf("failed to shutdown lifecycle context %s: %v", lctx.ID(), errors.Join(errs...))
	}
	return nil
}

// Shutdown gracefully shuts down the container and all its lifecycle contexts.
func (c *containerImpl) Shutdown(ctxs ...context.Context) []error {
	ctx := context.Background()
	if len(ctxs) > 0 {
		ctx = ctxs[0]
	}

	var errs []error
	var errorsMutex sync.Mutex
	setErrors := func(e ...error) {
		errorsMutex.Lock()
		defer errorsMutex.Unlock()
		errs = append(errs, e...)
	}

	if checkIfCanceled(ctx) {
		setErrors(fmt.Errorf("shutdown canceled before starting"))
		return errs
	}

	diutils.DebugLog("Shutting down container and all lifecycle contexts...")

	semaphore := diutils.NewSemaphore(10)
	defer semaphore.Done()

	lcKeys := c.lifecycleContexts.Keys()

	wg := sync.WaitGroup{}
	for _, lck := range lcKeys {
		if checkIfCanceled(ctx) {
			setErrors(fmt.Errorf("shutdown canceled before starting"))
			return errs
		}

		semaphore.Acquire()

		lcc, _ := c.lifecycleContexts.Get(lck)

		wg.Add(1)
		go func(lc LifecycleContext) {
			defer wg.Done()
			defer semaphore.Release()

			if checkIfCanceled(ctx) {
				setErrors(fmt.Errorf("shutdown canceled for lifecycle context %s", lc.ID()))
				return
			}

			setErrors(lc.Shutdown(ctx)...)
		}(lcc)
	}
	wg.Wait()

	if !checkIfCanceled(ctx) {
		c.lifecycleContexts = diutils.NewMap[string, LifecycleContext]()
		c.lifecycleContexts.Set(backgroundContextKey, NewLifecycleContext())
	}

	return errs
}

// Register registers a service with the given type, key, scope, and factory function in the container.
func (c *containerImpl) Register(serviceType reflect.Type, key string, scope LifecycleScope, factoryFn interface{}, opts ...RegisterOption) error {
	if serviceType == nil {
		return fmt.Errorf("serviceType cannot be nil")
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key cannot be empty")
	}
	if factoryFn == nil {
		return fmt.Errorf("factoryFn cannot be nil")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	factoryFnValue := reflect.ValueOf(factoryFn)
	factoryFnType := factoryFnValue.Type()

	if factoryFnValue.Kind() != reflect.Func || factoryFnType.NumOut() != 1 {
		return fmt.Errorf("factoryFn must be a function that returns exactly one value")
	}
	if !factoryFnType.Out(0).AssignableTo(serviceType) {
		return fmt.Errorf("factoryFn must return a value of type %s, returning %s", serviceType.String(), factoryFnType.Out(0).String())
	}

	entry := &serviceDescriptor{
		serviceType: serviceType,
		key:         key,
		provider:    ProviderConstructor,
		factoryFn:   factoryFnValue,
		lifecycle:   scope,
		params:      make([]dependencyParam, factoryFnType.NumIn()),
	}

	for i := 0; i < factoryFnType.NumIn(); i++ {
		paramType := factoryFnType.In(i)
		entry.params[i] = dependencyParam{
			index: i,
			typ:   paramType,
			key:   diutils.NameOfType(paramType),
		}
	}

	for _, opt := range opts {
		opt(entry)
	}

	if err := entry.validate(); err != nil {
		return err
	}

	if _, exists := c.registry.Get(key); exists {
		diutils.DebugLog("Overwriting existing registration for key: %s", key)
	}
	c.registry.Set(key, entry)

	diutils.DebugLog("Registered service: %s with key: %s scope: %v", serviceType.String(), key, scope)
	return nil
}

// registerBuilt installs an already-assembled descriptor directly, bypassing
// the reflected-constructor path. Used by RegisterInstance and
// RegisterFactory, where there is no reflected function to introspect.
//
// A second registration under the same key silently replaces the first, the
// same overwrite semantics Register applies to reflected constructors.
func (c *containerImpl) registerBuilt(entry *serviceDescriptor) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if err := entry.validate(); err != nil {
		return err
	}
	if _, exists := c.registry.Get(entry.key); exists {
		diutils.DebugLog("Overwriting existing registration for key: %s", entry.key)
	}
	c.registry.Set(entry.key, entry)
	diutils.DebugLog("Registered service: %s with key: %s scope: %v", entry.serviceType.String(), entry.key, entry.lifecycle)
	return nil
}

// aliasKey makes the descriptor already registered under existingKey also
// reachable via newKey, without rebuilding or re-validating it. Used by the
// Module Binder to expose each binder's registration under both its bare
// key and a "module.key" nested path.
func (c *containerImpl) aliasKey(newKey, existingKey string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.registry.Get(existingKey)
	if !exists {
		return fmt.Errorf("%w: %s", ErrUnregistered, existingKey)
	}
	c.registry.Set(newKey, entry)
	diutils.DebugLog("Aliased service %s to nested path %s", existingKey, newKey)
	return nil
}

// Validate checks that all registered services have their dependencies
// (constructor/factory parameters and property injections) also
// registered, and that no singleton directly depends on a scoped
// service.
func (c *containerImpl) Validate() error {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entries := c.registry.Values()

	for _, entry := range entries {
		for _, dep := range entry.params {
			if dep.typ == contextPkgType || dep.key == containerReflectedKey || dep.key == lifecycleContextReflectedKey {
				continue
			}
			depEntry, ok := c.registry.Get(dep.key)
			if !ok {
				if dep.optional {
					continue
				}
				return fmt.Errorf("service %s depends on unregistered type %s", entry.serviceType.String(), dep.typ.String())
			}
			if entry.lifecycle == Singleton && depEntry.lifecycle == Scoped {
				return fmt.Errorf("%w: singleton %s depends on scoped %s", ErrLifecycleMismatch, entry.serviceType.String(), depEntry.serviceType.String())
			}
		}
		for _, pi := range entry.propertyInjections {
			depEntry, ok := c.registry.Get(pi.Key)
			if !ok {
				if pi.Optional {
					continue
				}
				return fmt.Errorf("service %s has a property injection for unregistered key %s", entry.serviceType.String(), pi.Key)
			}
			if entry.lifecycle == Singleton && depEntry.lifecycle == Scoped {
				return fmt.Errorf("%w: singleton %s depends on scoped %s", ErrLifecycleMismatch, entry.serviceType.String(), depEntry.serviceType.String())
			}
		}
	}
	return nil
}

// Resolve resolves the service identified by the given key within the provided lifecycle context.
func (c *containerImpl) Resolve(key string, ctx LifecycleContext) (interface{}, error) {
	ctx = c.resolveContext(ctx)

	if v, ok := c.resolveSpecial(key, ctx); ok {
		return v, nil
	}
	if v, ok := c.resolveMock(key); ok {
		return v, nil
	}

	entry, err := c.getEntry(key)
	if err != nil {
		return nil, err
	}

	if err := c.rejectAsync(key); err != nil {
		atomic.AddInt64(&c.stats.FailedCount, 1)
		return nil, err
	}

	return c.resolveEntryWithDeps(context.Background(), key, entry, ctx, false)
}

// ResolveAsync resolves the service identified by key, running any
// async-init descriptors on its transitive dependency closure with parent
// as their context. It also succeeds for a purely synchronous graph.
func (c *containerImpl) ResolveAsync(parent context.Context, key string, ctx LifecycleContext) (interface{}, error) {
	if parent == nil {
		parent = context.Background()
	}
	ctx = c.resolveContext(ctx)

	if v, ok := c.resolveSpecial(key, ctx); ok {
		return v, nil
	}
	if v, ok := c.resolveMock(key); ok {
		return v, nil
	}

	entry, err := c.getEntry(key)
	if err != nil {
		return nil, err
	}

	return c.resolveEntryWithDeps(parent, key, entry, ctx, true)
}

// rejectAsync walks the transitive dependency closure of key and fails
// with ErrAsyncRequired if any descriptor on it needs async initialization.
func (c *containerImpl) rejectAsync(key string) error {
	deps, err := c.getDependencyTree(key)
	if err != nil {
		return err
	}
	for _, d := range deps {
		if d.asyncInit {
			return fmt.Errorf("%w: %s requires async initialization", ErrAsyncRequired, d.key)
		}
	}
	return nil
}

// resolveContext returns the provided lifecycle context if it is not nil.
func (c *containerImpl) resolveContext(ctx LifecycleContext) LifecycleContext {
	if ctx == nil {
		return c.BackgroundContext()
	}
	return ctx
}

// isBackgroundContext reports whether ctx is the background lifecycle
// context (or nil, which resolveContext would substitute with it). A Scoped
// descriptor resolved against the background context has no real scope to
// cache into, so the resolver treats the two cases identically.
func (c *containerImpl) isBackgroundContext(ctx LifecycleContext) bool {
	return ctx == nil || ctx == c.BackgroundContext()
}

// resolveSpecial checks if the given key corresponds to a special service (Container or LifecycleContext).
func (c *containerImpl) resolveSpecial(key string, ctx LifecycleContext) (interface{}, bool) {
	switch key {
	case containerReflectedKey:
		return c, true
	case lifecycleContextReflectedKey:
		return ctx, true
	default:
		return nil, false
	}
}

// resolveMock returns the test-mode mock for key, if test mode is on and one is registered.
func (c *containerImpl) resolveMock(key string) (interface{}, bool) {
	if atomic.LoadInt32(&c.testMode) == 0 {
		return nil, false
	}
	v, ok := c.mocks.Get(key)
	if !ok {
		return nil, false
	}
	return v.Interface(), true
}

// getEntry retrieves the container entry for the given key.
func (c *containerImpl) getEntry(key string) (*serviceDescriptor, error) {
	entry, exists := c.registry.Get(key)
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnregistered, key)
	}
	return entry, nil
}

// resolveEntryWithDeps resolves the service identified by the given key along with its dependencies.
func (c *containerImpl) resolveEntryWithDeps(
	asyncCtx context.Context,
	key string,
	entry *serviceDescriptor,
	ctx LifecycleContext,
	async bool,
) (interface{}, error) {
	serviceType := entry.serviceType
	diutils.DebugLog("Resolving service: %s with key: %s", serviceType.String(), key)

	if ctx != nil && ctx.IsClosed() {
		atomic.AddInt64(&c.stats.FailedCount, 1)
		return nil, fmt.Errorf("%w: cannot resolve %s in lifecycle context %s", ErrScopeClosed, key, ctx.ID())
	}

	dependencies, err := c.getDependencyTree(key)
	if err != nil {
		atomic.AddInt64(&c.stats.FailedCount, 1)
		return nil, fmt.Errorf("failed to get dependency tree for %s: %w", serviceType.String(), err)
	}

	resolved, err := c.resolveDependencies(asyncCtx, dependencies, ctx, async)
	if err != nil {
		atomic.AddInt64(&c.stats.FailedCount, 1)
		return nil, fmt.Errorf("failed to resolve dependencies for %s: %w", serviceType.String(), err)
	}

	value, exists := resolved[entry.key]
	if !exists {
		atomic.AddInt64(&c.stats.FailedCount, 1)
		return nil, fmt.Errorf("failed to resolve service: %s", serviceType.String())
	}

	atomic.AddInt64(&c.stats.ResolvedCount, 1)
	diutils.DebugLog("Successfully resolved service: %s", serviceType.String())
	return value.Interface(), nil
}

// getDependencyTree returns the topological build order for key, detecting
// circular dependencies and lifecycle mismatches along the way.
func (c *containerImpl) getDependencyTree(key string) ([]*serviceDescriptor, error) {
	if entry, exists := c.registry.Get(key); exists && entry.dependencyTreeCache != nil {
		return entry.dependencyTreeCache, nil
	}

	seen := make(map[*serviceDescriptor]bool)
	visiting := make(map[*serviceDescriptor]bool)
	chain := make([]string, 0)
	order := make([]*serviceDescriptor, 0)

	var visit func(k string, parentScope *LifecycleScope) error
	visit = func(k string, parentScope *LifecycleScope) error {
		if k == containerReflectedKey || k == lifecycleContextReflectedKey {
			var typ reflect.Type
			switch k {
			case containerReflectedKey:
				typ = diutils.TypeOf[Container]()
			case lifecycleContextReflectedKey:
				typ = diutils.TypeOf[LifecycleContext]()
			}
			fakeEntry := &serviceDescriptor{serviceType: typ, key: k, lifecycle: Transient}
			order = append(order, fakeEntry)
			seen[fakeEntry] = true
			return nil
		}

		entry, exists := c.registry.Get(k)
		if !exists {
			return fmt.Errorf("%w: %s", ErrUnregistered, k)
		}

		if parentScope != nil && !lifecycleCompatible(*parentScope, entry.lifecycle) {
			return fmt.Errorf("%w: %s (%s) cannot depend on %s (%s)",
				ErrLifecycleMismatch, chainHead(chain), parentScope.String(), entry.key, entry.lifecycle.String())
		}

		if visiting[entry] {
			chain = append(chain, entry.key)
			return &CyclicDependencyError{Chain: append([]string{}, chain...)}
		}
		if seen[entry] {
			return nil
		}
		visiting[entry] = true
		chain = append(chain, entry.key)

		scope := entry.lifecycle
		for _, dep := range entry.params {
			if dep.typ == contextPkgType {
				continue
			}
			if err := visit(dep.key, &scope); err != nil {
				if dep.optional && errors.Is(err, ErrUnregistered) {
					continue
				}
				return err
			}
		}
		for _, pi := range entry.propertyInjections {
			if err := visit(pi.Key, &scope); err != nil {
				if pi.Optional && errors.Is(err, ErrUnregistered) {
					continue
				}
				return err
			}
		}

		visiting[entry] = false
		chain = chain[:len(chain)-1]
		seen[entry] = true
		order = append(order, entry)
		return nil
	}

	if err := visit(key, nil); err != nil {
		return nil, err
	}

	if entry, exists := c.registry.Get(key); exists {
		entry.dependencyTreeCache = order
	}

	return order, nil
}

func chainHead(chain []string) string {
	if len(chain) == 0 {
		return "<root>"
	}
	return chain[0]
}

// lifecycleCompatible enforces the one forbidden pairing: a singleton may
// never pull in a scoped dependency, since the singleton outlives any
// scope that dependency's cache entry belongs to.
func lifecycleCompatible(parent, child LifecycleScope) bool {
	return !(parent == Singleton && child == Scoped)
}

// resolveDependencies resolves the dependencies for the given container entries within the provided lifecycle context.
func (c *containerImpl) resolveDependencies(asyncCtx context.Context, dependencies []*serviceDescriptor, ctx LifecycleContext, async bool) (map[string]reflect.Value, error) {
	resolved := make(map[string]reflect.Value)
	for _, entry := range dependencies {
		depType := entry.serviceType
		if entry.key == lifecycleContextReflectedKey {
			resolved[entry.key] = reflect.ValueOf(ctx)
			continue
		}
		if entry.key == containerReflectedKey {
			resolved[entry.key] = reflect.ValueOf(c)
			continue
		}

		diutils.DebugLog("Resolving dependency: %s", depType.String())
		instance, err := func() (reflect.Value, error) {
			if entry.lifecycle == Singleton || entry.lifecycle == Scoped {
				entry.mutex.Lock()
				defer entry.mutex.Unlock()
			}

			var zero reflect.Value

			if entry.lifecycle == Scoped && c.isBackgroundContext(ctx) {
				return zero, fmt.Errorf("%w: %s", ErrScopeRequired, entry.key)
			}

			if cached, ok := c.loadInstance(ctx, entry); ok {
				diutils.DebugLog("Using cached instance for: %s", depType.String())
				return cached, nil
			}

			if entry.provider == ProviderInstance {
				if err := c.persistInstance(ctx, entry, entry.instance); err != nil {
					return zero, err
				}
				return entry.instance, nil
			}

			if !async && entry.asyncInit {
				return zero, fmt.Errorf("%w: %s requires async initialization", ErrAsyncRequired, entry.key)
			}

			var instance reflect.Value
			var buildErr error

			if entry.provider == ProviderFactory {
				instance, buildErr = callFactory(entry, c, ctx)
			} else {
				params := make([]reflect.Value, 0, len(entry.params))
				for _, p := range entry.params {
					if p.typ == contextPkgType {
						params = append(params, reflect.ValueOf(asyncCtx))
						continue
					}
					paramValue, exists := resolved[p.key]
					if !exists {
						if p.optional {
							params = append(params, reflect.Zero(p.typ))
							continue
						}
						return zero, fmt.Errorf("dependency %s for service %s not resolved", p.typ.String(), depType.String())
					}
					params = append(params, paramValue)
				}

				instance, buildErr = callConstructor(entry, params)
			}

			if buildErr != nil {
				return zero, &ConstructionError{Key: entry.key, Err: buildErr}
			}

			if !instance.IsValid() || !instance.Type().AssignableTo(entry.serviceType) {
				return zero, &ConstructionError{
					Key: entry.key,
					Err: fmt.Errorf("factory returned type %s, expected %s", instance.Type().String(), entry.serviceType.String()),
				}
			}

			if err := injectProperties(c, ctx, entry, instance); err != nil {
				return zero, &ConstructionError{Key: entry.key, Err: err}
			}

			if err := asyncCtx.Err(); err != nil {
				return zero, fmt.Errorf("resolution of %s canceled: %w", entry.key, err)
			}

			if err := c.persistInstance(ctx, entry, instance); err != nil {
				return zero, err
			}

			diutils.DebugLog("Created new instance for: %s", depType.String())
			return instance, nil
		}()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve dependency %s: %w", depType.String(), err)
		}

		resolved[entry.key] = instance
	}
	return resolved, nil
}

// callConstructor invokes entry's reflected constructor with params,
// recovering from any panic raised inside it so a broken provider surfaces
// as a *ConstructionError instead of unwinding the caller's goroutine.
func callConstructor(entry *serviceDescriptor, params []reflect.Value) (result reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during construction: %v", r)
		}
	}()
	results := entry.factoryFn.Call(params)
	return results[0], nil
}

// callFactory invokes entry's Factory-form closure, passing the container
// and the active lifecycle context as self. Like callConstructor, it
// recovers from a panicking closure and reports it as a build error.
func callFactory(entry *serviceDescriptor, c Container, ctx LifecycleContext) (result reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during construction: %v", r)
		}
	}()
	return entry.factoryClosure(c, ctx)
}

// loadInstance attempts to load a cached instance of the given service type based on its scope.
func (c *containerImpl) loadInstance(ctx LifecycleContext, entry *serviceDescriptor) (reflect.Value, bool) {
	switch entry.lifecycle {
	case Singleton:
		bgCtx := c.BackgroundContext()
		if cached, exists := bgCtx.GetInstance(entry.key); exists {
			return cached, true
		}
	case Scoped:
		// resolveDependencies already rejected a Scoped entry resolved
		// against the background context with ErrScopeRequired, so ctx here
		// is always a real, non-background scope.
		if instance, exists := ctx.GetInstance(entry.key); exists {
			return instance, true
		}
	case Transient:
	}
	return reflect.Value{}, false
}

// persistInstance stores the given instance in the appropriate cache based on its scope.
func (c *containerImpl) persistInstance(ctx LifecycleContext, entry *serviceDescriptor, instance reflect.Value) error {
	switch entry.lifecycle {
	case Singleton:
		bgCtx := c.BackgroundContext()
		if _, exists := bgCtx.GetInstance(entry.key); !exists {
			if err := bgCtx.SetInstance(entry.key, instance); err != nil {
				return err
			}
			if atomic.LoadInt32(&c.testMode) != 0 {
				entry.builtUnderTestMode = true
			}
		}
	case Scoped:
		// Same invariant as loadInstance: ctx is guaranteed to be a real
		// scope by the ErrScopeRequired guard in resolveDependencies.
		if err := ctx.SetInstance(entry.key, instance); err != nil {
			return err
		}
	case Transient:
	}
	return nil
}

// EnableTestMode opens the mock overlay consulted by Resolve/ResolveAsync.
func (c *containerImpl) EnableTestMode() {
	atomic.StoreInt32(&c.testMode, 1)
}

// DisableTestMode closes the mock overlay and evicts any singleton cache
// entries that were populated while test mode was active, leaving real
// singletons built beforehand untouched.
func (c *containerImpl) DisableTestMode() {
	atomic.StoreInt32(&c.testMode, 0)
	c.mocks = diutils.NewMap[string, reflect.Value]()

	bgCtx := c.BackgroundContext()
	for _, entry := range c.registry.Values() {
		if entry.builtUnderTestMode {
			bgCtx.(*lifecycleContextImpl).cache.Delete(entry.key)
			entry.builtUnderTestMode = false
		}
	}
}

// Mock installs a mock value for key, visible only while test mode is
// enabled.
func (c *containerImpl) Mock(key string, value interface{}) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key cannot be empty")
	}
	if value == nil {
		return fmt.Errorf("mock value cannot be nil")
	}
	c.mocks.Set(key, reflect.ValueOf(value))
	return nil
}

// Unmock removes a single mock, if present.
func (c *containerImpl) Unmock(key string) {
	c.mocks.Delete(key)
}

// Stats reports lightweight resolution counters.
func (c *containerImpl) Stats() Stats {
	return Stats{
		ResolvedCount: atomic.LoadInt64(&c.stats.ResolvedCount),
		FailedCount:   atomic.LoadInt64(&c.stats.FailedCount),
	}
}
