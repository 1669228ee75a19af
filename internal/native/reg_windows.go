//go:build windows

package native

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Entry points x/sys/windows does not export are resolved from advapi32
// directly.
var (
	advapi32 = windows.NewLazySystemDLL("advapi32.dll")

	procRegCreateKeyExW = advapi32.NewProc("RegCreateKeyExW")
	procRegDeleteKeyExW = advapi32.NewProc("RegDeleteKeyExW")
	procRegDeleteTreeW  = advapi32.NewProc("RegDeleteTreeW")
	procRegLoadKeyW     = advapi32.NewProc("RegLoadKeyW")
	procRegUnLoadKeyW   = advapi32.NewProc("RegUnLoadKeyW")
	procRegSaveKeyW     = advapi32.NewProc("RegSaveKeyW")
	procRegSetValueExW  = advapi32.NewProc("RegSetValueExW")
	procRegDeleteValueW = advapi32.NewProc("RegDeleteValueW")
	procRegEnumValueW   = advapi32.NewProc("RegEnumValueW")
)

const (
	regOptionNonVolatile = 0

	maxKeyNameLen   = 255
	maxValueNameLen = 16383
)

// Default returns the live advapi32-backed registry backend.
func Default() Backend { return winBackend{} }

type winBackend struct{}

// asErrno converts a syscall error into our Errno so callers can match
// on codes regardless of which call path produced the failure.
func asErrno(err error) error {
	if err == nil {
		return nil
	}
	if en, ok := err.(syscall.Errno); ok {
		return Errno(en)
	}
	return err
}

func callErr(r1 uintptr) error {
	if r1 == 0 {
		return nil
	}
	return Errno(r1)
}

func wstr(p []uint16) *uint16 {
	if len(p) == 0 {
		return nil
	}
	return &p[0]
}

func (winBackend) OpenKey(parent Handle, path []uint16, access uint32) (Handle, error) {
	var h windows.Handle
	err := windows.RegOpenKeyEx(windows.Handle(parent), wstr(path), 0, access, &h)
	if err != nil {
		return 0, asErrno(err)
	}
	return Handle(h), nil
}

func (winBackend) CreateKey(parent Handle, path []uint16, access uint32) (Handle, error) {
	var (
		h           windows.Handle
		disposition uint32
	)
	r1, _, _ := procRegCreateKeyExW.Call(
		uintptr(parent),
		uintptr(unsafe.Pointer(wstr(path))),
		0, // reserved
		0, // class
		regOptionNonVolatile,
		uintptr(access),
		0, // security attributes: default
		uintptr(unsafe.Pointer(&h)),
		uintptr(unsafe.Pointer(&disposition)),
	)
	if err := callErr(r1); err != nil {
		return 0, err
	}
	return Handle(h), nil
}

func (b winBackend) DeleteKey(parent Handle, path []uint16, recursive bool) error {
	if recursive {
		r1, _, _ := procRegDeleteTreeW.Call(
			uintptr(parent),
			uintptr(unsafe.Pointer(wstr(path))),
		)
		return callErr(r1)
	}
	r1, _, _ := procRegDeleteKeyExW.Call(
		uintptr(parent),
		uintptr(unsafe.Pointer(wstr(path))),
		0, // samDesired: default view
		0, // reserved
	)
	err := callErr(r1)
	if err == AccessDenied {
		// RegDeleteKeyEx reports a non-empty key as access denied, which
		// would collapse two failure categories. Disambiguate by counting
		// subkeys.
		if n, cntErr := b.subkeyCount(parent, path); cntErr == nil && n > 0 {
			return DirNotEmpty
		}
	}
	return err
}

func (b winBackend) subkeyCount(parent Handle, path []uint16) (uint32, error) {
	h, err := b.OpenKey(parent, path, uint32(windows.KEY_READ))
	if err != nil {
		return 0, err
	}
	defer b.CloseKey(h) //nolint:errcheck // handle is read-only and short-lived

	var subkeys uint32
	err = windows.RegQueryInfoKey(windows.Handle(h),
		nil, nil, nil, &subkeys, nil, nil, nil, nil, nil, nil, nil)
	if err != nil {
		return 0, asErrno(err)
	}
	return subkeys, nil
}

func (winBackend) LoadKey(root Handle, name, file []uint16) error {
	r1, _, _ := procRegLoadKeyW.Call(
		uintptr(root),
		uintptr(unsafe.Pointer(wstr(name))),
		uintptr(unsafe.Pointer(wstr(file))),
	)
	return callErr(r1)
}

func (winBackend) UnloadKey(root Handle, name []uint16) error {
	r1, _, _ := procRegUnLoadKeyW.Call(
		uintptr(root),
		uintptr(unsafe.Pointer(wstr(name))),
	)
	return callErr(r1)
}

func (winBackend) SaveKey(key Handle, file []uint16) error {
	r1, _, _ := procRegSaveKeyW.Call(
		uintptr(key),
		uintptr(unsafe.Pointer(wstr(file))),
		0, // security attributes: default
	)
	return callErr(r1)
}

func (winBackend) CloseKey(h Handle) error {
	return asErrno(windows.RegCloseKey(windows.Handle(h)))
}

func (winBackend) QueryValue(key Handle, name []uint16) (uint32, []byte, error) {
	var (
		typ  uint32
		size uint32
	)
	err := windows.RegQueryValueEx(windows.Handle(key), wstr(name), nil, &typ, nil, &size)
	if err != nil {
		return 0, nil, asErrno(err)
	}
	for {
		if size == 0 {
			return typ, nil, nil
		}
		buf := make([]byte, size)
		err = windows.RegQueryValueEx(windows.Handle(key), wstr(name), nil, &typ, &buf[0], &size)
		if err == nil {
			return typ, buf[:size], nil
		}
		if en, ok := err.(syscall.Errno); !ok || Errno(en) != MoreData {
			return 0, nil, asErrno(err)
		}
		// Value grew between the size query and the read; retry with the
		// updated size.
	}
}

func (winBackend) SetValue(key Handle, name []uint16, typ uint32, data []byte) error {
	var dataPtr *byte
	if len(data) > 0 {
		dataPtr = &data[0]
	}
	r1, _, _ := procRegSetValueExW.Call(
		uintptr(key),
		uintptr(unsafe.Pointer(wstr(name))),
		0, // reserved
		uintptr(typ),
		uintptr(unsafe.Pointer(dataPtr)),
		uintptr(len(data)),
	)
	return callErr(r1)
}

func (winBackend) DeleteValue(key Handle, name []uint16) error {
	r1, _, _ := procRegDeleteValueW.Call(
		uintptr(key),
		uintptr(unsafe.Pointer(wstr(name))),
	)
	return callErr(r1)
}

func (winBackend) EnumKeys(key Handle) ([]string, error) {
	var names []string
	buf := make([]uint16, maxKeyNameLen+1)
	for i := uint32(0); ; i++ {
		nameLen := uint32(len(buf))
		err := windows.RegEnumKeyEx(windows.Handle(key), i,
			&buf[0], &nameLen, nil, nil, nil, nil)
		if err != nil {
			if en, ok := err.(syscall.Errno); ok && Errno(en) == NoMoreItems {
				return names, nil
			}
			return nil, asErrno(err)
		}
		names = append(names, windows.UTF16ToString(buf[:nameLen]))
	}
}

func (winBackend) EnumValues(key Handle) ([]string, error) {
	var names []string
	buf := make([]uint16, maxValueNameLen+1)
	for i := uint32(0); ; i++ {
		nameLen := uint32(len(buf))
		r1, _, _ := procRegEnumValueW.Call(
			uintptr(key),
			uintptr(i),
			uintptr(unsafe.Pointer(&buf[0])),
			uintptr(unsafe.Pointer(&nameLen)),
			0, // reserved
			0, // type: not needed
			0, // data: names only
			0, // data size
		)
		if err := callErr(r1); err != nil {
			if err == NoMoreItems {
				return names, nil
			}
			return nil, err
		}
		names = append(names, windows.UTF16ToString(buf[:nameLen]))
	}
}
