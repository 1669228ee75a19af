//go:build !windows

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joshuapare/regkit/pkg/registry"
)

// Without a swapped-in backend, every operation goes to the platform
// stub and fails with the unsupported kind.
func TestDefaultBackendUnsupported(t *testing.T) {
	_, err := registry.CurrentUser.Open(registry.Path("Software"), registry.Read)
	assert.ErrorIs(t, err, registry.ErrUnsupported)

	err = registry.CurrentUser.Delete(registry.Path("Software"), false)
	assert.ErrorIs(t, err, registry.ErrUnsupported)

	err = registry.CurrentConfig.Save(registry.Path("out.hiv"))
	assert.ErrorIs(t, err, registry.ErrUnsupported)
}
