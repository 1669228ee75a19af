package registry

import (
	"github.com/joshuapare/regkit/internal/wide"
)

// PathSource is any value that can produce the NUL-terminated UTF-16
// key-path form the native backend consumes. Conversion is fallible:
// input containing an interior NUL, or otherwise unrepresentable in
// UTF-16, is rejected before any native call is attempted.
type PathSource interface {
	WidePath() ([]uint16, error)
}

// Path is a UTF-8 registry path or name, encoded at call time.
type Path string

// WidePath implements PathSource.
func (p Path) WidePath() ([]uint16, error) {
	return wide.Encode(string(p))
}

// WidePath is a pre-encoded UTF-16 path. It must carry exactly one NUL,
// as its final element.
type WidePath []uint16

// WidePath implements PathSource. The sequence is validated, not
// re-encoded.
func (p WidePath) WidePath() ([]uint16, error) {
	if len(p) == 0 || p[len(p)-1] != 0 {
		return nil, wide.ErrInteriorNUL
	}
	for _, c := range p[:len(p)-1] {
		if c == 0 {
			return nil, wide.ErrInteriorNUL
		}
	}
	return p, nil
}

// encodePath runs a PathSource through the codec, normalizing failures
// into the encoding kind.
func encodePath(op string, p PathSource) ([]uint16, error) {
	u, err := p.WidePath()
	if err != nil {
		return nil, wrapEncoding(op, err)
	}
	return u, nil
}
