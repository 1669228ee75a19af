package registry

import (
	"github.com/joshuapare/regkit/internal/native"
	"github.com/joshuapare/regkit/internal/wide"
)

// Key is a live handle to an open registry key, produced by Hive.Open,
// Hive.Create, or their Key-relative counterparts. A Key exclusively owns
// its native handle: it is not safe to share across goroutines, must not
// be copied, and is released with Close.
type Key struct {
	hive   Hive
	handle native.Handle
	path   []uint16
	b      native.Backend
	closed bool
}

// Hive reports the root namespace the key was opened under.
func (k *Key) Hive() Hive { return k.hive }

// Path reports the key path below the hive root, as passed to the open
// or create that produced this key.
func (k *Key) Path() string { return wide.Decode(k.path) }

// String renders the fully qualified key name.
func (k *Key) String() string {
	if k == nil {
		return "<nil>"
	}
	return k.hive.target(k.path)
}

// Close releases the native handle. Closing an already-closed key is a
// no-op.
func (k *Key) Close() error {
	if k == nil || k.closed {
		return nil
	}
	k.closed = true
	if err := k.b.CloseKey(k.handle); err != nil {
		return wrapNative("close", k.String(), err)
	}
	return nil
}

func (k *Key) ensureOpen() error {
	if k == nil || k.closed {
		return ErrClosed
	}
	return nil
}

// join produces the encoded path of a subkey for diagnostics on the
// derived Key. Both inputs are NUL-terminated.
func join(parent, child []uint16) []uint16 {
	if len(parent) <= 1 {
		return child
	}
	out := make([]uint16, 0, len(parent)+len(child))
	out = append(out, parent[:len(parent)-1]...)
	out = append(out, uint16('\\'))
	return append(out, child...)
}

// Open opens an existing subkey below this key.
func (k *Key) Open(path PathSource, sec Security) (*Key, error) {
	if err := k.ensureOpen(); err != nil {
		return nil, err
	}
	u, err := encodePath("open", path)
	if err != nil {
		return nil, err
	}
	full := join(k.path, u)
	nh, err := k.b.OpenKey(k.handle, u, uint32(sec))
	if err != nil {
		return nil, wrapNative("open", k.hive.target(full), err)
	}
	return &Key{hive: k.hive, handle: nh, path: full, b: k.b}, nil
}

// Create opens a subkey below this key, creating it and any missing
// intermediate keys first.
func (k *Key) Create(path PathSource, sec Security) (*Key, error) {
	if err := k.ensureOpen(); err != nil {
		return nil, err
	}
	u, err := encodePath("create", path)
	if err != nil {
		return nil, err
	}
	full := join(k.path, u)
	nh, err := k.b.CreateKey(k.handle, u, uint32(sec))
	if err != nil {
		return nil, wrapNative("create", k.hive.target(full), err)
	}
	return &Key{hive: k.hive, handle: nh, path: full, b: k.b}, nil
}

// Delete removes a subkey below this key. See Hive.Delete for the
// non-recursive and recursive semantics.
func (k *Key) Delete(path PathSource, recursive bool) error {
	if err := k.ensureOpen(); err != nil {
		return err
	}
	u, err := encodePath("delete", path)
	if err != nil {
		return err
	}
	if err := k.b.DeleteKey(k.handle, u, recursive); err != nil {
		return wrapNative("delete", k.hive.target(join(k.path, u)), err)
	}
	return nil
}

// Keys lists the names of the direct subkeys.
func (k *Key) Keys() ([]string, error) {
	if err := k.ensureOpen(); err != nil {
		return nil, err
	}
	names, err := k.b.EnumKeys(k.handle)
	if err != nil {
		return nil, wrapNative("enum keys", k.String(), err)
	}
	return names, nil
}

// Values lists the names of the values stored in the key. The default
// (unnamed) value, if set, appears as an empty string.
func (k *Key) Values() ([]string, error) {
	if err := k.ensureOpen(); err != nil {
		return nil, err
	}
	names, err := k.b.EnumValues(k.handle)
	if err != nil {
		return nil, wrapNative("enum values", k.String(), err)
	}
	return names, nil
}

// Value reads the named value. The empty name addresses the key's
// default value.
func (k *Key) Value(name string) (Value, error) {
	if err := k.ensureOpen(); err != nil {
		return Value{}, err
	}
	n, err := wide.Encode(name)
	if err != nil {
		return Value{}, wrapEncoding("get value", err)
	}
	typ, data, err := k.b.QueryValue(k.handle, n)
	if err != nil {
		return Value{}, wrapNative("get value "+name, k.String(), err)
	}
	return Value{Type: Type(typ), Data: data}, nil
}

// SetValue writes the named value.
func (k *Key) SetValue(name string, v Value) error {
	if err := k.ensureOpen(); err != nil {
		return err
	}
	n, err := wide.Encode(name)
	if err != nil {
		return wrapEncoding("set value", err)
	}
	if err := k.b.SetValue(k.handle, n, uint32(v.Type), v.Data); err != nil {
		return wrapNative("set value "+name, k.String(), err)
	}
	return nil
}

// DeleteValue removes the named value.
func (k *Key) DeleteValue(name string) error {
	if err := k.ensureOpen(); err != nil {
		return err
	}
	n, err := wide.Encode(name)
	if err != nil {
		return wrapEncoding("delete value", err)
	}
	if err := k.b.DeleteValue(k.handle, n); err != nil {
		return wrapNative("delete value "+name, k.String(), err)
	}
	return nil
}
