package registry

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/joshuapare/regkit/internal/wide"
)

// Type is the native type tag of a registry value.
type Type uint32

const (
	None Type = iota
	SZ
	ExpandSZ
	Binary
	DWord
	DWordBigEndian
	Link
	MultiSZ
	ResourceList
	FullResourceDescriptor
	ResourceRequirementsList
	QWord
)

var typeNames = map[Type]string{
	None:                     "REG_NONE",
	SZ:                       "REG_SZ",
	ExpandSZ:                 "REG_EXPAND_SZ",
	Binary:                   "REG_BINARY",
	DWord:                    "REG_DWORD",
	DWordBigEndian:           "REG_DWORD_BIG_ENDIAN",
	Link:                     "REG_LINK",
	MultiSZ:                  "REG_MULTI_SZ",
	ResourceList:             "REG_RESOURCE_LIST",
	FullResourceDescriptor:   "REG_FULL_RESOURCE_DESCRIPTOR",
	ResourceRequirementsList: "REG_RESOURCE_REQUIREMENTS_LIST",
	QWord:                    "REG_QWORD",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("REG_UNKNOWN(%d)", uint32(t))
}

// Value is a registry value as stored: a type tag plus the raw payload in
// native layout (UTF-16LE for the string kinds, little-endian for DWord
// and QWord).
type Value struct {
	Type Type
	Data []byte
}

// StringValue builds a REG_SZ value.
func StringValue(s string) (Value, error) {
	b, err := wide.EncodeBytes(s)
	if err != nil {
		return Value{}, wrapEncoding("string value", err)
	}
	return Value{Type: SZ, Data: b}, nil
}

// ExpandStringValue builds a REG_EXPAND_SZ value. The string may contain
// unexpanded %VAR% references; expansion is the consumer's concern.
func ExpandStringValue(s string) (Value, error) {
	b, err := wide.EncodeBytes(s)
	if err != nil {
		return Value{}, wrapEncoding("expand string value", err)
	}
	return Value{Type: ExpandSZ, Data: b}, nil
}

// MultiStringValue builds a REG_MULTI_SZ value. Elements must be
// non-empty; the layout cannot represent an empty element.
func MultiStringValue(ss []string) (Value, error) {
	b, err := wide.EncodeMulti(ss)
	if err != nil {
		return Value{}, wrapEncoding("multi string value", err)
	}
	return Value{Type: MultiSZ, Data: b}, nil
}

// DWordValue builds a REG_DWORD value.
func DWordValue(v uint32) Value {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, v)
	return Value{Type: DWord, Data: data}
}

// QWordValue builds a REG_QWORD value.
func QWordValue(v uint64) Value {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint64(data, v)
	return Value{Type: QWord, Data: data}
}

// BinaryValue builds a REG_BINARY value. The slice is used as-is.
func BinaryValue(b []byte) Value {
	return Value{Type: Binary, Data: b}
}

// StringData decodes a REG_SZ or REG_EXPAND_SZ payload.
func (v Value) StringData() (string, error) {
	if v.Type != SZ && v.Type != ExpandSZ {
		return "", ErrTypeMismatch
	}
	s, err := wide.DecodeBytes(v.Data)
	if err != nil {
		return "", wrapEncoding("decode string value", err)
	}
	return s, nil
}

// MultiStringData decodes a REG_MULTI_SZ payload.
func (v Value) MultiStringData() ([]string, error) {
	if v.Type != MultiSZ {
		return nil, ErrTypeMismatch
	}
	ss, err := wide.DecodeMulti(v.Data)
	if err != nil {
		return nil, wrapEncoding("decode multi string value", err)
	}
	return ss, nil
}

// DWordData decodes a REG_DWORD or REG_DWORD_BIG_ENDIAN payload.
func (v Value) DWordData() (uint32, error) {
	if v.Type != DWord && v.Type != DWordBigEndian {
		return 0, ErrTypeMismatch
	}
	if len(v.Data) != 4 {
		return 0, &Error{Kind: ErrKindType, Msg: fmt.Sprintf("dword payload is %d bytes", len(v.Data))}
	}
	if v.Type == DWordBigEndian {
		return binary.BigEndian.Uint32(v.Data), nil
	}
	return binary.LittleEndian.Uint32(v.Data), nil
}

// QWordData decodes a REG_QWORD payload.
func (v Value) QWordData() (uint64, error) {
	if v.Type != QWord {
		return 0, ErrTypeMismatch
	}
	if len(v.Data) != 8 {
		return 0, &Error{Kind: ErrKindType, Msg: fmt.Sprintf("qword payload is %d bytes", len(v.Data))}
	}
	return binary.LittleEndian.Uint64(v.Data), nil
}

// String renders the value for display, regedit-style.
func (v Value) String() string {
	switch v.Type {
	case SZ, ExpandSZ:
		if s, err := v.StringData(); err == nil {
			return s
		}
	case MultiSZ:
		if ss, err := v.MultiStringData(); err == nil {
			return strings.Join(ss, "; ")
		}
	case DWord, DWordBigEndian:
		if n, err := v.DWordData(); err == nil {
			return fmt.Sprintf("0x%08x (%d)", n, n)
		}
	case QWord:
		if n, err := v.QWordData(); err == nil {
			return fmt.Sprintf("0x%016x (%d)", n, n)
		}
	case None:
		return "(none)"
	}
	return hex.EncodeToString(v.Data)
}
