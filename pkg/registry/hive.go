package registry

import (
	"strings"

	"github.com/joshuapare/regkit/internal/native"
	"github.com/joshuapare/regkit/internal/wide"
)

// Hive identifies one of the seven fixed root namespaces of the registry.
// Every lifecycle operation starts from a Hive. The zero value is
// ClassesRoot.
//
// The mapping from Hive to its predefined native root handle is total and
// fixed for the process lifetime, so Hive values are freely copyable and
// need no synchronization.
type Hive int

const (
	ClassesRoot Hive = iota
	CurrentConfig
	CurrentUser
	CurrentUserLocalSettings
	LocalMachine
	PerformanceData
	Users
)

// nativeRoot resolves the hive to its predefined root handle. The second
// result is false for values outside the enumeration.
func (h Hive) nativeRoot() (native.Handle, bool) {
	switch h {
	case ClassesRoot:
		return native.HKEYClassesRoot, true
	case CurrentConfig:
		return native.HKEYCurrentConfig, true
	case CurrentUser:
		return native.HKEYCurrentUser, true
	case CurrentUserLocalSettings:
		return native.HKEYCurrentUserLocalSettings, true
	case LocalMachine:
		return native.HKEYLocalMachine, true
	case PerformanceData:
		return native.HKEYPerformanceData, true
	case Users:
		return native.HKEYUsers, true
	}
	return 0, false
}

// String renders the canonical root-namespace name.
func (h Hive) String() string {
	switch h {
	case ClassesRoot:
		return "HKEY_CLASSES_ROOT"
	case CurrentConfig:
		return "HKEY_CURRENT_CONFIG"
	case CurrentUser:
		return "HKEY_CURRENT_USER"
	case CurrentUserLocalSettings:
		return "HKEY_CURRENT_USER_LOCAL_SETTINGS"
	case LocalMachine:
		return "HKEY_LOCAL_MACHINE"
	case PerformanceData:
		return "HKEY_PERFORMANCE_DATA"
	case Users:
		return "HKEY_USERS"
	}
	return "HKEY_UNKNOWN"
}

// hiveAliases maps canonical names and their usual abbreviations to hives.
var hiveAliases = map[string]Hive{
	"HKEY_CLASSES_ROOT":                ClassesRoot,
	"HKCR":                             ClassesRoot,
	"HKEY_CURRENT_CONFIG":              CurrentConfig,
	"HKCC":                             CurrentConfig,
	"HKEY_CURRENT_USER":                CurrentUser,
	"HKCU":                             CurrentUser,
	"HKEY_CURRENT_USER_LOCAL_SETTINGS": CurrentUserLocalSettings,
	"HKEY_LOCAL_MACHINE":               LocalMachine,
	"HKLM":                             LocalMachine,
	"HKEY_PERFORMANCE_DATA":            PerformanceData,
	"HKEY_USERS":                       Users,
	"HKU":                              Users,
}

// ParseHive maps a canonical root name or abbreviation (HKLM, HKCU, ...)
// to its Hive, case-insensitively.
func ParseHive(s string) (Hive, error) {
	if h, ok := hiveAliases[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return h, nil
	}
	return 0, &Error{Kind: ErrKindNotFound, Msg: "unknown hive " + s}
}

// hiveErr reports use of a Hive value outside the enumeration.
func hiveErr(op string) error {
	return &Error{Kind: ErrKindBackend, Msg: op + ": unknown hive"}
}

// target renders op context like "HKEY_CURRENT_USER\Software\App".
func (h Hive) target(u []uint16) string {
	p := wide.Decode(u)
	if p == "" {
		return h.String()
	}
	return h.String() + `\` + p
}

// Open opens an existing key at path under the hive with the requested
// access rights. The returned Key exclusively owns the resulting native
// handle; release it with Close.
func (h Hive) Open(path PathSource, sec Security) (*Key, error) {
	u, err := encodePath("open", path)
	if err != nil {
		return nil, err
	}
	root, ok := h.nativeRoot()
	if !ok {
		return nil, hiveErr("open")
	}
	nh, err := backend().OpenKey(root, u, uint32(sec))
	if err != nil {
		return nil, wrapNative("open", h.target(u), err)
	}
	return &Key{hive: h, handle: nh, path: u, b: backend()}, nil
}

// Create opens the key at path, creating it and any missing intermediate
// keys first. Creating a key that already exists is not an error; the
// existing key is returned.
func (h Hive) Create(path PathSource, sec Security) (*Key, error) {
	u, err := encodePath("create", path)
	if err != nil {
		return nil, err
	}
	root, ok := h.nativeRoot()
	if !ok {
		return nil, hiveErr("create")
	}
	nh, err := backend().CreateKey(root, u, uint32(sec))
	if err != nil {
		return nil, wrapNative("create", h.target(u), err)
	}
	return &Key{hive: h, handle: nh, path: u, b: backend()}, nil
}

// Delete removes the key at path. Without recursive it fails with
// ErrNotEmpty if the key still has subkeys. With recursive the whole
// subtree is destroyed; on failure some descendants may already be gone,
// so a failed recursive delete must not be retried blindly.
func (h Hive) Delete(path PathSource, recursive bool) error {
	u, err := encodePath("delete", path)
	if err != nil {
		return err
	}
	root, ok := h.nativeRoot()
	if !ok {
		return hiveErr("delete")
	}
	if err := backend().DeleteKey(root, u, recursive); err != nil {
		return wrapNative("delete", h.target(u), err)
	}
	return nil
}

// Load mounts the hive image in file under this hive as subkey name.
// This mutates system-wide registry state visible to other processes and
// requires the restore privilege to be held by the caller's token; this
// layer does not acquire it.
func (h Hive) Load(name, file PathSource) error {
	n, err := encodePath("load", name)
	if err != nil {
		return err
	}
	f, err := encodePath("load", file)
	if err != nil {
		return err
	}
	root, ok := h.nativeRoot()
	if !ok {
		return hiveErr("load")
	}
	if err := backend().LoadKey(root, n, f); err != nil {
		return wrapNative("load", h.target(n), err)
	}
	return nil
}

// Unload detaches a hive previously mounted under this hive as name. It
// fails with ErrInUse while any process, including this one, still holds
// open handles below the mount.
func (h Hive) Unload(name PathSource) error {
	n, err := encodePath("unload", name)
	if err != nil {
		return err
	}
	root, ok := h.nativeRoot()
	if !ok {
		return hiveErr("unload")
	}
	if err := backend().UnloadKey(root, n); err != nil {
		return wrapNative("unload", h.target(n), err)
	}
	return nil
}

// Save serializes the hive root into an on-disk image at file. Requires
// the backup privilege to be held by the caller's token.
func (h Hive) Save(file PathSource) error {
	f, err := encodePath("save", file)
	if err != nil {
		return err
	}
	root, ok := h.nativeRoot()
	if !ok {
		return hiveErr("save")
	}
	if err := backend().SaveKey(root, f); err != nil {
		return wrapNative("save", h.String(), err)
	}
	return nil
}
