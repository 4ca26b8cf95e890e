package diutils

import (
	"reflect"
	"strings"
)

// TypeOf returns the reflect.Type of a generic type T.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// NameOf returns the stable registry key for a generic type T.
func NameOf[T any]() string {
	return NameOfType(TypeOf[T]())
}

// NameOfType returns a stable, collision-resistant registry key for a
// reflect.Type. Pointer and slice indirection is unwrapped and recorded as a
// prefix in front of the base identity, so *Foo and Foo get distinct keys
// and a parameter of either form resolves only against a registration of
// that same form.
func NameOfType(t reflect.Type) string {
	if t == nil {
		return ""
	}

	var prefix strings.Builder
	for {
		switch t.Kind() {
		case reflect.Ptr:
			prefix.WriteByte('*')
			t = t.Elem()
			continue
		case reflect.Slice:
			prefix.WriteString("[]")
			t = t.Elem()
			continue
		}
		break
	}

	if t.PkgPath() == "" {
		// Builtins and unnamed types (interfaces, builtin kinds) have no
		// package path; fall back to the type's String() form so distinct
		// builtins (e.g. int vs string) never collide.
		return prefix.String() + "/" + t.String()
	}

	return prefix.String() + t.PkgPath() + "/" + t.Name()
}
