// Package codec centralizes encoding of multivectors and animation frames.
//
// The algebra defines its own JSON form (see cliffgo.Multivector.MarshalJSON);
// a Codec decides which JSON implementation produces the bytes. Both
// built-in codecs produce identical documents.
//
// FrameEncoder streams animate.Frame values as newline-delimited records:
//
//	enc := codec.NewFrameEncoder(os.Stdout, codec.Default)
//	err := a.Run(ctx, points, fn, 60, enc.Encode)
package codec

import (
	"errors"
	"fmt"
)

// ErrUnknownCodec is returned by ByName for an unregistered name.
var ErrUnknownCodec = errors.New("codec: unknown codec")

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Appender is implemented by codecs that can encode into a caller-owned
// buffer. FrameEncoder uses it to reuse one buffer for every frame.
type Appender interface {
	Append(dst []byte, v any) ([]byte, error)
}

// ByName returns a built-in codec by its stable name ("json" or "go-json").
func ByName(name string) (Codec, error) {
	switch name {
	case JSON{}.Name():
		return JSON{}, nil
	case GoJSON{}.Name():
		return GoJSON{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
}

// MustMarshal encodes v with c, or with Default when c is nil, and panics
// on failure.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
