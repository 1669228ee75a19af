package testutil

import (
	"testing"

	"github.com/joshuapare/regkit/internal/native"
	"github.com/joshuapare/regkit/internal/wide"
)

func enc(t *testing.T, s string) []uint16 {
	t.Helper()
	u, err := wide.Encode(s)
	if err != nil {
		t.Fatalf("Encode(%q): %v", s, err)
	}
	return u
}

func TestInvalidHandle(t *testing.T) {
	m := NewMemBackend()
	if _, err := m.OpenKey(native.Handle(0xdead), enc(t, "X"), 0); err != native.InvalidHandle {
		t.Fatalf("expected InvalidHandle, got %v", err)
	}
	if err := m.CloseKey(native.Handle(0xdead)); err != native.InvalidHandle {
		t.Fatalf("expected InvalidHandle on close, got %v", err)
	}
}

func TestCaseInsensitiveLookup(t *testing.T) {
	m := NewMemBackend()
	h, err := m.CreateKey(native.HKEYCurrentUser, enc(t, `Software\MixedCase`), 0)
	if err != nil {
		t.Fatalf("CreateKey: %v", err)
	}
	defer m.CloseKey(h)

	h2, err := m.OpenKey(native.HKEYCurrentUser, enc(t, `SOFTWARE\mixedcase`), 0)
	if err != nil {
		t.Fatalf("case-insensitive open: %v", err)
	}
	defer m.CloseKey(h2)
}

func TestDeletedKeyHandle(t *testing.T) {
	m := NewMemBackend()
	h, err := m.CreateKey(native.HKEYCurrentUser, enc(t, "Doomed"), 0)
	if err != nil {
		t.Fatalf("CreateKey: %v", err)
	}
	if err := m.DeleteKey(native.HKEYCurrentUser, enc(t, "Doomed"), true); err != nil {
		t.Fatalf("DeleteKey: %v", err)
	}
	// The stale handle reports key-deleted, not success or not-found.
	if err := m.SetValue(h, enc(t, "V"), 1, nil); err != native.KeyDeleted {
		t.Fatalf("expected KeyDeleted, got %v", err)
	}
	if _, err := m.EnumKeys(h); err != native.KeyDeleted {
		t.Fatalf("expected KeyDeleted from EnumKeys, got %v", err)
	}
}

func TestDeleteRootRefused(t *testing.T) {
	m := NewMemBackend()
	if err := m.DeleteKey(native.HKEYCurrentUser, enc(t, ""), true); err != native.AccessDenied {
		t.Fatalf("expected AccessDenied, got %v", err)
	}
}

func TestCallCounters(t *testing.T) {
	m := NewMemBackend()
	if m.TotalCalls() != 0 {
		t.Fatalf("fresh backend has %d calls", m.TotalCalls())
	}
	h, err := m.CreateKey(native.HKEYCurrentUser, enc(t, "Counted"), 0)
	if err != nil {
		t.Fatalf("CreateKey: %v", err)
	}
	m.CloseKey(h)
	if got := m.CallCount("CreateKey"); got != 1 {
		t.Fatalf("CreateKey count = %d, want 1", got)
	}
	if got := m.CallCount("CloseKey"); got != 1 {
		t.Fatalf("CloseKey count = %d, want 1", got)
	}
	if m.TotalCalls() != 2 {
		t.Fatalf("TotalCalls = %d, want 2", m.TotalCalls())
	}
}
