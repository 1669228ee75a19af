package registry

import "github.com/joshuapare/regkit/internal/native"

// SwapBackend installs b as the native backend for the duration of a
// test. The returned func restores the previous backend.
func SwapBackend(b native.Backend) (restore func()) {
	prev := activeBackend
	activeBackend = b
	return func() { activeBackend = prev }
}

// NativeRoot exposes the hive → root-handle mapping to tests.
func NativeRoot(h Hive) (native.Handle, bool) {
	return h.nativeRoot()
}
