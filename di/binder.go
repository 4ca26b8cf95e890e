package di

import (
	"fmt"

	diutils "github.com/corewire/godi/di/di-utils"
)

// Binder is a single registration step contributed to a Module. It mirrors
// the shape of Register/RegisterContext/RegisterInstance so a Module can
// bundle calls to any of them without the caller hand-rolling a loop over
// heterogeneous function signatures. It reports the key it registered so
// Module.Apply can additionally alias the service under a module-qualified
// path.
type Binder func(Container) (key string, err error)

// Module groups a set of related registrations (e.g. everything one
// subsystem needs) so they can be applied to a container as a single unit,
// the same way the demo application's route registration bundles every
// controller/service/repository it needs into one call.
//
// Every service a Module registers stays reachable by its bare key, the
// same as if it had been registered directly; the module additionally
// aliases each one under a dotted "module.key" path as a convenience for
// callers that want to address a whole subsystem's registrations by name.
type Module struct {
	name    string
	binders []Binder
}

// NewModule creates an empty, named Module.
func NewModule(name string) *Module {
	return &Module{name: name}
}

// Add appends a binder to the module and returns the module for chaining.
func (m *Module) Add(b Binder) *Module {
	m.binders = append(m.binders, b)
	return m
}

// Bind registers T with the container directly, without adding a binder
// to a module for later use. Rarely needed outside tests: prefer Add.
func Bind[T any](c Container, scope LifecycleScope, factoryFn interface{}, opts ...RegisterOption) error {
	return Register[T](c, scope, factoryFn, opts...)
}

// Apply runs every binder in the module against the container, in
// registration order, stopping at (and reporting) the first failure. Each
// successfully registered key is additionally aliased under
// "<module name>.<key>".
func (m *Module) Apply(c Container) error {
	impl, ok := c.(*containerImpl)
	if !ok {
		return fmt.Errorf("module %q: container does not support nested-path binding", m.name)
	}

	for i, b := range m.binders {
		key, err := b(c)
		if err != nil {
			return fmt.Errorf("module %q: binder %d: %w", m.name, i, err)
		}
		if key == "" {
			continue
		}
		if err := impl.aliasKey(m.name+"."+key, key); err != nil {
			return fmt.Errorf("module %q: binder %d: aliasing %q: %w", m.name, i, key, err)
		}
	}
	return nil
}

// ApplyModules runs a sequence of modules against the container in order,
// so an application can compose independently-authored subsystems (one
// Module per package) into a single startup call.
func ApplyModules(c Container, modules ...*Module) error {
	for _, m := range modules {
		if err := m.Apply(c); err != nil {
			return err
		}
	}
	return nil
}

// BindFunc adapts a generic Register[T] call into a Binder for use with
// Module.Add, e.g.:
//
//	module.Add(di.BindFunc[services.TodoService](di.Transient, services.NewTodoService))
func BindFunc[T any](scope LifecycleScope, factoryFn interface{}, opts ...RegisterOption) Binder {
	return func(c Container) (string, error) {
		key := diutils.NameOf[T]()
		if err := Register[T](c, scope, factoryFn, opts...); err != nil {
			return "", err
		}
		return key, nil
	}
}

// BindInstance adapts a generic RegisterInstance call into a Binder.
func BindInstance[T any](value T) Binder {
	return func(c Container) (string, error) {
		key := diutils.NameOf[T]()
		if err := RegisterInstance[T](c, value); err != nil {
			return "", err
		}
		return key, nil
	}
}
