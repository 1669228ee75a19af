//go:build !windows

package native

// Default returns the stub backend on non-Windows platforms. Every entry
// point fails with ErrUnavailable.
func Default() Backend { return stubBackend{} }

type stubBackend struct{}

func (stubBackend) OpenKey(Handle, []uint16, uint32) (Handle, error)   { return 0, ErrUnavailable }
func (stubBackend) CreateKey(Handle, []uint16, uint32) (Handle, error) { return 0, ErrUnavailable }
func (stubBackend) DeleteKey(Handle, []uint16, bool) error             { return ErrUnavailable }
func (stubBackend) LoadKey(Handle, []uint16, []uint16) error           { return ErrUnavailable }
func (stubBackend) UnloadKey(Handle, []uint16) error                   { return ErrUnavailable }
func (stubBackend) SaveKey(Handle, []uint16) error                     { return ErrUnavailable }
func (stubBackend) CloseKey(Handle) error                              { return ErrUnavailable }
func (stubBackend) QueryValue(Handle, []uint16) (uint32, []byte, error) {
	return 0, nil, ErrUnavailable
}
func (stubBackend) SetValue(Handle, []uint16, uint32, []byte) error { return ErrUnavailable }
func (stubBackend) DeleteValue(Handle, []uint16) error              { return ErrUnavailable }
func (stubBackend) EnumKeys(Handle) ([]string, error)               { return nil, ErrUnavailable }
func (stubBackend) EnumValues(Handle) ([]string, error)             { return nil, ErrUnavailable }
