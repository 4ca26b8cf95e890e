package di

import diutils "github.com/corewire/godi/di/di-utils"

// MockFor installs a mock value for type T, visible only while test mode
// is enabled on the container. It is the typed counterpart of
// Container.Mock, sparing callers from spelling out the reflected key by
// hand in test code.
func MockFor[T any](c Container, value T) error {
	return c.Mock(diutils.NameOf[T](), value)
}

// MockForKey installs a mock value under an explicit key, matching a
// service registered via RegisterWithKey/RegisterContext.
func MockForKey[T any](c Container, key string, value T) error {
	return c.Mock(key, value)
}

// UnmockFor removes the mock installed for type T, if any.
func UnmockFor[T any](c Container) {
	c.Unmock(diutils.NameOf[T]())
}
