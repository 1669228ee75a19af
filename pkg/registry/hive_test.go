package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/regkit/internal/native"
	"github.com/joshuapare/regkit/pkg/registry"
)

var allHives = []registry.Hive{
	registry.ClassesRoot,
	registry.CurrentConfig,
	registry.CurrentUser,
	registry.CurrentUserLocalSettings,
	registry.LocalMachine,
	registry.PerformanceData,
	registry.Users,
}

func TestHiveDisplayNames(t *testing.T) {
	want := map[registry.Hive]string{
		registry.ClassesRoot:              "HKEY_CLASSES_ROOT",
		registry.CurrentConfig:            "HKEY_CURRENT_CONFIG",
		registry.CurrentUser:              "HKEY_CURRENT_USER",
		registry.CurrentUserLocalSettings: "HKEY_CURRENT_USER_LOCAL_SETTINGS",
		registry.LocalMachine:             "HKEY_LOCAL_MACHINE",
		registry.PerformanceData:          "HKEY_PERFORMANCE_DATA",
		registry.Users:                    "HKEY_USERS",
	}
	for h, name := range want {
		assert.Equal(t, name, h.String())
	}
}

func TestHiveRootMappingInjective(t *testing.T) {
	seen := map[native.Handle]registry.Hive{}
	for _, h := range allHives {
		root, ok := registry.NativeRoot(h)
		require.True(t, ok, "hive %s has no root handle", h)
		prev, dup := seen[root]
		require.False(t, dup, "hives %s and %s share root handle %#x", prev, h, root)
		seen[root] = h
	}
	require.Len(t, seen, len(allHives))
}

func TestHiveRootMappingRejectsUnknown(t *testing.T) {
	_, ok := registry.NativeRoot(registry.Hive(99))
	assert.False(t, ok)
	assert.Equal(t, "HKEY_UNKNOWN", registry.Hive(99).String())
}

func TestParseHive(t *testing.T) {
	cases := map[string]registry.Hive{
		"HKEY_LOCAL_MACHINE": registry.LocalMachine,
		"hklm":               registry.LocalMachine,
		"HKCU":               registry.CurrentUser,
		"hkey_current_user":  registry.CurrentUser,
		"HKCR":               registry.ClassesRoot,
		"HKU":                registry.Users,
		"HKCC":               registry.CurrentConfig,
		" HKLM ":             registry.LocalMachine,
	}
	for in, want := range cases {
		got, err := registry.ParseHive(in)
		require.NoError(t, err, "ParseHive(%q)", in)
		assert.Equal(t, want, got, "ParseHive(%q)", in)
	}

	_, err := registry.ParseHive("HKEY_BOGUS")
	assert.ErrorIs(t, err, registry.ErrNotFound)
}
