// Package native defines the contract with the OS registry: the handle
// type, the entry points the access layer calls, and the failure codes
// those entry points surface. The Windows implementation talks to
// advapi32; every other platform gets a stub whose calls fail with
// ErrUnavailable.
package native

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned by the stub backend on platforms without a
// live registry. It exists on all platforms so callers can classify it.
var ErrUnavailable = errors.New("native: live registry requires windows")

// Handle is an opaque reference to an open registry key. The seven
// predefined root handles below are valid process-wide without opening.
type Handle uintptr

// Predefined root handles, fixed by the OS for the process lifetime.
const (
	HKEYClassesRoot              Handle = 0x80000000
	HKEYCurrentUser              Handle = 0x80000001
	HKEYLocalMachine             Handle = 0x80000002
	HKEYUsers                    Handle = 0x80000003
	HKEYPerformanceData          Handle = 0x80000004
	HKEYCurrentConfig            Handle = 0x80000005
	HKEYCurrentUserLocalSettings Handle = 0x80000007
)

// Backend is the set of native registry entry points the access layer
// consumes. All paths and names are NUL-terminated UTF-16, produced by
// the wide codec. Implementations return Errno (or ErrUnavailable) so
// callers can classify failures.
type Backend interface {
	// OpenKey opens an existing key below parent.
	OpenKey(parent Handle, path []uint16, access uint32) (Handle, error)
	// CreateKey opens the key below parent, creating it and any missing
	// intermediate keys first. Opening an existing key is not an error.
	CreateKey(parent Handle, path []uint16, access uint32) (Handle, error)
	// DeleteKey removes the key below parent. Without recursive it fails
	// on a key that still has subkeys. With recursive it destroys the
	// whole subtree and may leave it partially deleted on failure.
	DeleteKey(parent Handle, path []uint16, recursive bool) error
	// LoadKey mounts the hive image in file under root as subkey name.
	LoadKey(root Handle, name, file []uint16) error
	// UnloadKey detaches the hive previously mounted under root as name.
	UnloadKey(root Handle, name []uint16) error
	// SaveKey serializes the subtree of key into file.
	SaveKey(key Handle, file []uint16) error
	// CloseKey releases an open handle.
	CloseKey(h Handle) error

	QueryValue(key Handle, name []uint16) (typ uint32, data []byte, err error)
	SetValue(key Handle, name []uint16, typ uint32, data []byte) error
	DeleteValue(key Handle, name []uint16) error
	// EnumKeys lists the names of the direct subkeys of key.
	EnumKeys(key Handle) ([]string, error)
	// EnumValues lists the names of the values stored in key.
	EnumValues(key Handle) ([]string, error)
}

// Errno is a Win32 error code returned by a registry entry point.
type Errno uint32

// Codes the access layer distinguishes. Anything else is passed through
// uninterpreted.
const (
	FileNotFound     Errno = 2    // ERROR_FILE_NOT_FOUND
	AccessDenied     Errno = 5    // ERROR_ACCESS_DENIED
	InvalidHandle    Errno = 6    // ERROR_INVALID_HANDLE
	SharingViolation Errno = 32   // ERROR_SHARING_VIOLATION
	DirNotEmpty      Errno = 145  // ERROR_DIR_NOT_EMPTY
	Busy             Errno = 170  // ERROR_BUSY
	AlreadyExists    Errno = 183  // ERROR_ALREADY_EXISTS
	MoreData         Errno = 234  // ERROR_MORE_DATA
	NoMoreItems      Errno = 259  // ERROR_NO_MORE_ITEMS
	BadDatabase      Errno = 1009 // ERROR_BADDB
	KeyDeleted       Errno = 1018 // ERROR_KEY_DELETED
	PrivilegeNotHeld Errno = 1314 // ERROR_PRIVILEGE_NOT_HELD
)

var errnoNames = map[Errno]string{
	FileNotFound:     "not found",
	AccessDenied:     "access denied",
	InvalidHandle:    "invalid handle",
	SharingViolation: "sharing violation",
	DirNotEmpty:      "key has subkeys",
	Busy:             "busy",
	AlreadyExists:    "already exists",
	MoreData:         "more data",
	NoMoreItems:      "no more items",
	BadDatabase:      "registry database corrupt",
	KeyDeleted:       "key has been deleted",
	PrivilegeNotHeld: "required privilege not held",
}

func (e Errno) Error() string {
	if name, ok := errnoNames[e]; ok {
		return fmt.Sprintf("native: %s (code %d)", name, uint32(e))
	}
	return fmt.Sprintf("native: error code %d", uint32(e))
}
