// Package wide converts between UTF-8 strings and the NUL-terminated
// UTF-16 form the native registry API consumes. It also provides the
// UTF-16LE byte codec used for REG_SZ-family value payloads.
package wide

import (
	"errors"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
)

// ErrInteriorNUL indicates the input contains an embedded NUL and cannot
// be represented as a NUL-terminated native string.
var ErrInteriorNUL = errors.New("wide: string contains interior NUL")

// utf16le transforms between UTF-8 and the registry's on-the-wire UTF-16LE.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Encode converts s into a NUL-terminated UTF-16 sequence. It fails if s
// contains an interior NUL, since the native API would silently truncate
// the path at that point.
func Encode(s string) ([]uint16, error) {
	for _, r := range s {
		if r == 0 {
			return nil, ErrInteriorNUL
		}
	}
	return utf16.Encode([]rune(s + "\x00")), nil
}

// Decode converts a UTF-16 sequence back into a Go string, stopping at the
// first NUL terminator if one is present.
func Decode(u []uint16) string {
	for i, c := range u {
		if c == 0 {
			u = u[:i]
			break
		}
	}
	return string(utf16.Decode(u))
}

// EncodeBytes converts s into NUL-terminated UTF-16LE bytes, the payload
// layout of REG_SZ and REG_EXPAND_SZ values.
func EncodeBytes(s string) ([]byte, error) {
	for _, r := range s {
		if r == 0 {
			return nil, ErrInteriorNUL
		}
	}
	b, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, err
	}
	return append(b, 0, 0), nil
}

// DecodeBytes converts UTF-16LE bytes into a Go string. A trailing NUL
// terminator, if present, is dropped. Odd-length input has its dangling
// byte ignored, matching how the registry API tolerates short reads.
func DecodeBytes(b []byte) (string, error) {
	if len(b)%2 != 0 {
		b = b[:len(b)-1]
	}
	decoded, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	for len(decoded) > 0 && decoded[len(decoded)-1] == 0 {
		decoded = decoded[:len(decoded)-1]
	}
	return string(decoded), nil
}

// EncodeMulti converts a string list into the double-NUL-terminated
// UTF-16LE layout of REG_MULTI_SZ. Empty strings are rejected because the
// layout cannot represent them (an empty element terminates the list).
func EncodeMulti(ss []string) ([]byte, error) {
	var out []byte
	for _, s := range ss {
		if s == "" {
			return nil, ErrInteriorNUL
		}
		b, err := EncodeBytes(s)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return append(out, 0, 0), nil
}

// DecodeMulti splits a REG_MULTI_SZ payload into its component strings.
func DecodeMulti(b []byte) ([]string, error) {
	if len(b)%2 != 0 {
		b = b[:len(b)-1]
	}
	var (
		out   []string
		start = 0
	)
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			if i == start {
				break
			}
			s, err := DecodeBytes(b[start:i])
			if err != nil {
				return nil, err
			}
			out = append(out, s)
			start = i + 2
		}
	}
	return out, nil
}
