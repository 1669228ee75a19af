package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/regkit/pkg/registry"
)

func openScratch(t *testing.T) *registry.Key {
	t.Helper()
	newBackend(t)
	key, err := registry.CurrentUser.Create(registry.Path(`Software\Scratch`), registry.AllAccess)
	require.NoError(t, err)
	t.Cleanup(func() { key.Close() })
	return key
}

func TestStringValueRoundTrip(t *testing.T) {
	key := openScratch(t)

	v, err := registry.StringValue("hello, registry")
	require.NoError(t, err)
	require.NoError(t, key.SetValue("Greeting", v))

	got, err := key.Value("Greeting")
	require.NoError(t, err)
	assert.Equal(t, registry.SZ, got.Type)
	s, err := got.StringData()
	require.NoError(t, err)
	assert.Equal(t, "hello, registry", s)
}

func TestExpandStringValueRoundTrip(t *testing.T) {
	key := openScratch(t)

	v, err := registry.ExpandStringValue(`%SystemRoot%\system32`)
	require.NoError(t, err)
	require.NoError(t, key.SetValue("Path", v))

	got, err := key.Value("Path")
	require.NoError(t, err)
	assert.Equal(t, registry.ExpandSZ, got.Type)
	s, err := got.StringData()
	require.NoError(t, err)
	assert.Equal(t, `%SystemRoot%\system32`, s)
}

func TestMultiStringValueRoundTrip(t *testing.T) {
	key := openScratch(t)

	v, err := registry.MultiStringValue([]string{"one", "two", "three"})
	require.NoError(t, err)
	require.NoError(t, key.SetValue("List", v))

	got, err := key.Value("List")
	require.NoError(t, err)
	ss, err := got.MultiStringData()
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, ss)
}

func TestNumericValueRoundTrip(t *testing.T) {
	key := openScratch(t)

	require.NoError(t, key.SetValue("Count", registry.DWordValue(0xDEADBEEF)))
	require.NoError(t, key.SetValue("Big", registry.QWordValue(0xFEEDFACECAFEF00D)))

	d, err := key.Value("Count")
	require.NoError(t, err)
	n32, err := d.DWordData()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), n32)

	q, err := key.Value("Big")
	require.NoError(t, err)
	n64, err := q.QWordData()
	require.NoError(t, err)
	assert.Equal(t, uint64(0xFEEDFACECAFEF00D), n64)
}

func TestBinaryValueRoundTrip(t *testing.T) {
	key := openScratch(t)
	blob := []byte{0x00, 0x01, 0xFF, 0x7F}

	require.NoError(t, key.SetValue("Blob", registry.BinaryValue(blob)))
	got, err := key.Value("Blob")
	require.NoError(t, err)
	assert.Equal(t, registry.Binary, got.Type)
	assert.Equal(t, blob, got.Data)
}

func TestValueTypeMismatch(t *testing.T) {
	key := openScratch(t)
	require.NoError(t, key.SetValue("Count", registry.DWordValue(7)))

	got, err := key.Value("Count")
	require.NoError(t, err)
	_, err = got.StringData()
	assert.ErrorIs(t, err, registry.ErrTypeMismatch)
	_, err = got.MultiStringData()
	assert.ErrorIs(t, err, registry.ErrTypeMismatch)
	_, err = got.QWordData()
	assert.ErrorIs(t, err, registry.ErrTypeMismatch)
}

func TestValueMissing(t *testing.T) {
	key := openScratch(t)
	_, err := key.Value("Nope")
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestDeleteValue(t *testing.T) {
	key := openScratch(t)
	require.NoError(t, key.SetValue("Temp", registry.DWordValue(1)))
	require.NoError(t, key.DeleteValue("Temp"))

	_, err := key.Value("Temp")
	assert.ErrorIs(t, err, registry.ErrNotFound)
	assert.ErrorIs(t, key.DeleteValue("Temp"), registry.ErrNotFound)
}

func TestEnumeration(t *testing.T) {
	key := openScratch(t)

	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		sub, err := key.Create(registry.Path(name), registry.AllAccess)
		require.NoError(t, err)
		require.NoError(t, sub.Close())
	}
	require.NoError(t, key.SetValue("B", registry.DWordValue(2)))
	require.NoError(t, key.SetValue("A", registry.DWordValue(1)))

	keys, err := key.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, keys)

	values, err := key.Values()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, values)
}

func TestValueDisplay(t *testing.T) {
	v, err := registry.StringValue("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", v.String())

	assert.Equal(t, "0x0000002a (42)", registry.DWordValue(42).String())
	assert.Equal(t, "REG_SZ", registry.SZ.String())
	assert.Equal(t, "REG_QWORD", registry.QWord.String())
	assert.Equal(t, "0001ff", registry.BinaryValue([]byte{0x00, 0x01, 0xFF}).String())
}

func TestTypeNames(t *testing.T) {
	names := map[registry.Type]string{
		registry.None:           "REG_NONE",
		registry.ExpandSZ:       "REG_EXPAND_SZ",
		registry.Binary:         "REG_BINARY",
		registry.DWord:          "REG_DWORD",
		registry.DWordBigEndian: "REG_DWORD_BIG_ENDIAN",
		registry.MultiSZ:        "REG_MULTI_SZ",
		registry.Type(200):      "REG_UNKNOWN(200)",
	}
	for typ, want := range names {
		assert.Equal(t, want, typ.String())
	}
}
