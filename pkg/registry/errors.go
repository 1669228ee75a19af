package registry

import (
	"errors"

	"github.com/joshuapare/regkit/internal/native"
)

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindEncoding    ErrKind = iota // path or name not representable in UTF-16
	ErrKindNotFound                   // missing key, value, mount, or file
	ErrKindPermission                 // access denied or required privilege not held
	ErrKindExists                     // load target name already mounted
	ErrKindNotEmpty                   // non-recursive delete of a key with subkeys
	ErrKindInUse                      // subtree busy (open handles, sharing violation)
	ErrKindType                       // requested decode doesn't match value type
	ErrKindState                      // operation on a closed key
	ErrKindUnsupported                // no live registry on this platform
	ErrKindBackend                    // any other native failure, code preserved
)

// Error is a typed error with an optional underlying cause. The native
// error code, when there is one, stays reachable through Unwrap for
// diagnostics.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Kind, so errors.Is(err, ErrNotFound) holds for any
// wrapped not-found failure regardless of its message or native code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	// ErrEncoding indicates a path or name could not be encoded to UTF-16.
	ErrEncoding = &Error{Kind: ErrKindEncoding, Msg: "unencodable path"}
	// ErrNotFound indicates a missing key, value, mount, or file.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrPermission indicates denied access or a missing privilege.
	ErrPermission = &Error{Kind: ErrKindPermission, Msg: "access denied"}
	// ErrExists indicates the target name is already present.
	ErrExists = &Error{Kind: ErrKindExists, Msg: "already exists"}
	// ErrNotEmpty indicates a non-recursive delete hit a key with subkeys.
	ErrNotEmpty = &Error{Kind: ErrKindNotEmpty, Msg: "key has subkeys"}
	// ErrInUse indicates the target subtree still has live handles.
	ErrInUse = &Error{Kind: ErrKindInUse, Msg: "key in use"}
	// ErrTypeMismatch indicates the requested decode doesn't match the value type.
	ErrTypeMismatch = &Error{Kind: ErrKindType, Msg: "registry value has different type"}
	// ErrClosed indicates an operation on an already-closed key.
	ErrClosed = &Error{Kind: ErrKindState, Msg: "key is closed"}
	// ErrUnsupported indicates this platform has no live registry.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "registry unavailable on this platform"}
)

// kindOf maps a native failure onto the taxonomy.
func kindOf(err error) ErrKind {
	if errors.Is(err, native.ErrUnavailable) {
		return ErrKindUnsupported
	}
	var code native.Errno
	if errors.As(err, &code) {
		switch code {
		case native.FileNotFound, native.KeyDeleted:
			return ErrKindNotFound
		case native.AccessDenied, native.PrivilegeNotHeld:
			return ErrKindPermission
		case native.AlreadyExists:
			return ErrKindExists
		case native.DirNotEmpty:
			return ErrKindNotEmpty
		case native.SharingViolation, native.Busy:
			return ErrKindInUse
		}
	}
	return ErrKindBackend
}

// wrapNative attaches operation context to a backend failure.
func wrapNative(op, target string, err error) error {
	return &Error{Kind: kindOf(err), Msg: op + " " + target, Err: err}
}

// wrapEncoding surfaces a codec failure before any native call is made.
func wrapEncoding(op string, err error) error {
	return &Error{Kind: ErrKindEncoding, Msg: op + ": unencodable path", Err: err}
}
