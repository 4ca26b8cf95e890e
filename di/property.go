package di

import (
	"fmt"
	"reflect"
	"strings"

	diutils "github.com/corewire/godi/di/di-utils"
)

// injectTag is the struct tag processed for field-based injection:
//
//	type Service struct {
//	    Logger Logger `inject:"github.com/corewire/godi/di/di-logger/Logger"`
//	    Cache  Cache  `inject:"cache.primary,optional"`
//	}
//
// A field tagged with "optional" is left at its zero value instead of
// failing construction when its key is unregistered.
const injectTag = "inject"

// injectProperties applies both forms of property injection an instance
// can declare: the explicit PropertyInjection list attached via
// WithPropertyInjection, and any `inject:"key"` struct tags discovered by
// walking the instance's fields. Struct-tag injection only runs when the
// instance is a pointer to a struct; for any other instance the tags are
// skipped, and an explicit PropertyInjection fails construction.
func injectProperties(c *containerImpl, ctx LifecycleContext, entry *serviceDescriptor, instance reflect.Value) error {
	for _, pi := range entry.propertyInjections {
		if err := setField(c, ctx, instance, pi.FieldName, pi.Key, pi.Optional); err != nil {
			return err
		}
	}

	if instance.Kind() != reflect.Ptr || instance.IsNil() || instance.Elem().Kind() != reflect.Struct {
		return nil
	}

	elem := instance.Elem()
	elemType := elem.Type()
	for i := 0; i < elemType.NumField(); i++ {
		field := elemType.Field(i)
		tag, ok := field.Tag.Lookup(injectTag)
		if !ok || tag == "" {
			continue
		}

		key, optional := parseInjectTag(tag)
		if err := setField(c, ctx, instance, field.Name, key, optional); err != nil {
			return err
		}
	}
	return nil
}

// parseInjectTag splits "key,optional" into its key and optional flag.
func parseInjectTag(tag string) (key string, optional bool) {
	parts := strings.Split(tag, ",")
	key = strings.TrimSpace(parts[0])
	for _, p := range parts[1:] {
		if strings.TrimSpace(p) == "optional" {
			optional = true
		}
	}
	return key, optional
}

// setField resolves dependencyKey and assigns it into the named exported
// field of the struct pointed to by instance.
func setField(c *containerImpl, ctx LifecycleContext, instance reflect.Value, fieldName, dependencyKey string, optional bool) error {
	if instance.Kind() != reflect.Ptr || instance.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("property injection requires a pointer-to-struct instance, got %s", instance.Type().String())
	}

	field := instance.Elem().FieldByName(fieldName)
	if !field.IsValid() {
		return fmt.Errorf("field %s not found for property injection", fieldName)
	}
	if !field.CanSet() {
		return fmt.Errorf("field %s is not settable (must be exported)", fieldName)
	}

	resolved, err := c.Resolve(dependencyKey, ctx)
	if err != nil {
		if optional {
			diutils.DebugLog("optional property injection %s on field %s unresolved: %v", dependencyKey, fieldName, err)
			return nil
		}
		return fmt.Errorf("failed to resolve property %s (key %s): %w", fieldName, dependencyKey, err)
	}

	value := reflect.ValueOf(resolved)
	if !value.Type().AssignableTo(field.Type()) {
		return fmt.Errorf("property %s expects %s, resolved %s", fieldName, field.Type().String(), value.Type().String())
	}
	field.Set(value)
	return nil
}
