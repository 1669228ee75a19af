// Package testutil provides an in-memory native.Backend with faithful
// registry lifecycle semantics, so the access layer can be exercised on
// any platform and every backend invocation can be counted.
package testutil

import (
	"bytes"
	"encoding/gob"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/joshuapare/regkit/internal/native"
	"github.com/joshuapare/regkit/internal/wide"
)

// MemBackend is an in-memory implementation of native.Backend. It models
// the seven predefined roots, case-insensitive key names, per-key open
// handle counts, hive mounts, and save/load of subtree images to disk.
//
// The zero value is not usable; construct with NewMemBackend.
type MemBackend struct {
	mu      sync.Mutex
	roots   map[native.Handle]*memKey
	handles map[native.Handle]*memKey
	next    native.Handle
	calls   map[string]int

	// DenyPrivileged makes Load, Unload, and Save fail with
	// PrivilegeNotHeld, simulating a token without backup/restore rights.
	DenyPrivileged bool
}

type memKey struct {
	name    string
	subkeys map[string]*memKey // keyed by lower-cased name
	values  map[string]memValue
	open    int
	deleted bool
	mounted bool
}

type memValue struct {
	name string
	typ  uint32
	data []byte
}

func newMemKey(name string) *memKey {
	return &memKey{
		name:    name,
		subkeys: map[string]*memKey{},
		values:  map[string]memValue{},
	}
}

// NewMemBackend returns a backend with the seven predefined roots and no
// other keys.
func NewMemBackend() *MemBackend {
	roots := map[native.Handle]*memKey{}
	for h, name := range map[native.Handle]string{
		native.HKEYClassesRoot:              "HKEY_CLASSES_ROOT",
		native.HKEYCurrentConfig:            "HKEY_CURRENT_CONFIG",
		native.HKEYCurrentUser:              "HKEY_CURRENT_USER",
		native.HKEYCurrentUserLocalSettings: "HKEY_CURRENT_USER_LOCAL_SETTINGS",
		native.HKEYLocalMachine:             "HKEY_LOCAL_MACHINE",
		native.HKEYPerformanceData:          "HKEY_PERFORMANCE_DATA",
		native.HKEYUsers:                    "HKEY_USERS",
	} {
		roots[h] = newMemKey(name)
	}
	return &MemBackend{
		roots:   roots,
		handles: map[native.Handle]*memKey{},
		next:    0x1000,
		calls:   map[string]int{},
	}
}

// CallCount reports how often the named entry point (e.g. "OpenKey") has
// been invoked.
func (m *MemBackend) CallCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

// TotalCalls reports the number of backend invocations across all entry
// points.
func (m *MemBackend) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

func (m *MemBackend) count(op string) { m.calls[op]++ }

// resolveHandle maps a predefined root or an issued handle to its key.
func (m *MemBackend) resolveHandle(h native.Handle) (*memKey, error) {
	if k, ok := m.roots[h]; ok {
		return k, nil
	}
	k, ok := m.handles[h]
	if !ok {
		return nil, native.InvalidHandle
	}
	if k.deleted {
		return nil, native.KeyDeleted
	}
	return k, nil
}

func splitPath(u []uint16) []string {
	p := wide.Decode(u)
	var out []string
	for _, seg := range strings.Split(p, `\`) {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// walk descends from k along segs, without creating anything.
func walk(k *memKey, segs []string) (*memKey, error) {
	for _, seg := range segs {
		child, ok := k.subkeys[strings.ToLower(seg)]
		if !ok {
			return nil, native.FileNotFound
		}
		k = child
	}
	return k, nil
}

func (m *MemBackend) issue(k *memKey) native.Handle {
	h := m.next
	m.next++
	m.handles[h] = k
	k.open++
	return h
}

func (m *MemBackend) OpenKey(parent native.Handle, path []uint16, _ uint32) (native.Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("OpenKey")
	base, err := m.resolveHandle(parent)
	if err != nil {
		return 0, err
	}
	k, err := walk(base, splitPath(path))
	if err != nil {
		return 0, err
	}
	return m.issue(k), nil
}

func (m *MemBackend) CreateKey(parent native.Handle, path []uint16, _ uint32) (native.Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("CreateKey")
	k, err := m.resolveHandle(parent)
	if err != nil {
		return 0, err
	}
	for _, seg := range splitPath(path) {
		lower := strings.ToLower(seg)
		child, ok := k.subkeys[lower]
		if !ok {
			child = newMemKey(seg)
			k.subkeys[lower] = child
		}
		k = child
	}
	return m.issue(k), nil
}

func (m *MemBackend) DeleteKey(parent native.Handle, path []uint16, recursive bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("DeleteKey")
	base, err := m.resolveHandle(parent)
	if err != nil {
		return err
	}
	segs := splitPath(path)
	if len(segs) == 0 {
		// Deleting a root (or the key behind the handle itself) is refused.
		return native.AccessDenied
	}
	holder, err := walk(base, segs[:len(segs)-1])
	if err != nil {
		return err
	}
	leaf := strings.ToLower(segs[len(segs)-1])
	target, ok := holder.subkeys[leaf]
	if !ok {
		return native.FileNotFound
	}
	if !recursive && len(target.subkeys) > 0 {
		return native.DirNotEmpty
	}
	markDeleted(target)
	delete(holder.subkeys, leaf)
	return nil
}

func markDeleted(k *memKey) {
	k.deleted = true
	for _, child := range k.subkeys {
		markDeleted(child)
	}
}

func anyOpen(k *memKey) bool {
	if k.open > 0 {
		return true
	}
	for _, child := range k.subkeys {
		if anyOpen(child) {
			return true
		}
	}
	return false
}

func (m *MemBackend) LoadKey(root native.Handle, name, file []uint16) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("LoadKey")
	if m.DenyPrivileged {
		return native.PrivilegeNotHeld
	}
	base, ok := m.roots[root]
	if !ok {
		return native.InvalidHandle
	}
	mount := wide.Decode(name)
	if _, exists := base.subkeys[strings.ToLower(mount)]; exists {
		return native.AlreadyExists
	}
	raw, err := os.ReadFile(wide.Decode(file))
	if err != nil {
		return native.FileNotFound
	}
	var img keyImage
	if decErr := gob.NewDecoder(bytes.NewReader(raw)).Decode(&img); decErr != nil {
		return native.BadDatabase
	}
	k := img.restore()
	k.name = mount
	k.mounted = true
	base.subkeys[strings.ToLower(mount)] = k
	return nil
}

func (m *MemBackend) UnloadKey(root native.Handle, name []uint16) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("UnloadKey")
	if m.DenyPrivileged {
		return native.PrivilegeNotHeld
	}
	base, ok := m.roots[root]
	if !ok {
		return native.InvalidHandle
	}
	lower := strings.ToLower(wide.Decode(name))
	k, ok := base.subkeys[lower]
	if !ok {
		return native.FileNotFound
	}
	if anyOpen(k) {
		return native.Busy
	}
	if !k.mounted {
		return native.AccessDenied
	}
	markDeleted(k)
	delete(base.subkeys, lower)
	return nil
}

func (m *MemBackend) SaveKey(key native.Handle, file []uint16) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("SaveKey")
	if m.DenyPrivileged {
		return native.PrivilegeNotHeld
	}
	k, err := m.resolveHandle(key)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if encErr := gob.NewEncoder(&buf).Encode(snapshot(k)); encErr != nil {
		return native.BadDatabase
	}
	if writeErr := os.WriteFile(wide.Decode(file), buf.Bytes(), 0o600); writeErr != nil {
		return native.AccessDenied
	}
	return nil
}

func (m *MemBackend) CloseKey(h native.Handle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("CloseKey")
	if _, ok := m.roots[h]; ok {
		// Closing a predefined root is a no-op, as on Windows.
		return nil
	}
	k, ok := m.handles[h]
	if !ok {
		return native.InvalidHandle
	}
	delete(m.handles, h)
	k.open--
	return nil
}

func (m *MemBackend) QueryValue(key native.Handle, name []uint16) (uint32, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("QueryValue")
	k, err := m.resolveHandle(key)
	if err != nil {
		return 0, nil, err
	}
	v, ok := k.values[strings.ToLower(wide.Decode(name))]
	if !ok {
		return 0, nil, native.FileNotFound
	}
	return v.typ, append([]byte(nil), v.data...), nil
}

func (m *MemBackend) SetValue(key native.Handle, name []uint16, typ uint32, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("SetValue")
	k, err := m.resolveHandle(key)
	if err != nil {
		return err
	}
	n := wide.Decode(name)
	k.values[strings.ToLower(n)] = memValue{name: n, typ: typ, data: append([]byte(nil), data...)}
	return nil
}

func (m *MemBackend) DeleteValue(key native.Handle, name []uint16) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("DeleteValue")
	k, err := m.resolveHandle(key)
	if err != nil {
		return err
	}
	lower := strings.ToLower(wide.Decode(name))
	if _, ok := k.values[lower]; !ok {
		return native.FileNotFound
	}
	delete(k.values, lower)
	return nil
}

func (m *MemBackend) EnumKeys(key native.Handle) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("EnumKeys")
	k, err := m.resolveHandle(key)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, child := range k.subkeys {
		names = append(names, child.name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemBackend) EnumValues(key native.Handle) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count("EnumValues")
	k, err := m.resolveHandle(key)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, v := range k.values {
		names = append(names, v.name)
	}
	sort.Strings(names)
	return names, nil
}

// keyImage is the gob layout of a saved subtree. It is a test-double
// artifact, not a real hive file format.
type keyImage struct {
	Name    string
	Values  []valueImage
	Subkeys []keyImage
}

type valueImage struct {
	Name string
	Type uint32
	Data []byte
}

func snapshot(k *memKey) keyImage {
	img := keyImage{Name: k.name}
	for _, v := range k.values {
		img.Values = append(img.Values, valueImage{Name: v.name, Type: v.typ, Data: append([]byte(nil), v.data...)})
	}
	sort.Slice(img.Values, func(i, j int) bool { return img.Values[i].Name < img.Values[j].Name })
	for _, child := range k.subkeys {
		img.Subkeys = append(img.Subkeys, snapshot(child))
	}
	sort.Slice(img.Subkeys, func(i, j int) bool { return img.Subkeys[i].Name < img.Subkeys[j].Name })
	return img
}

func (img keyImage) restore() *memKey {
	k := newMemKey(img.Name)
	for _, v := range img.Values {
		k.values[strings.ToLower(v.Name)] = memValue{name: v.Name, typ: v.Type, data: append([]byte(nil), v.Data...)}
	}
	for _, sub := range img.Subkeys {
		k.subkeys[strings.ToLower(sub.Name)] = sub.restore()
	}
	return k
}
