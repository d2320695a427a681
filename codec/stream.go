package codec

import (
	"fmt"
	"io"

	"github.com/hupe1980/cliffgo/animate"
)

// FrameRecord is the encoded form of one animation frame:
// {"frame":3,"points":[[x,y,z],...]}.
type FrameRecord struct {
	Frame  int          `json:"frame"`
	Points [][3]float64 `json:"points"`
}

// RecordOf converts f to its encoded form.
func RecordOf(f animate.Frame) FrameRecord {
	rec := FrameRecord{
		Frame:  f.Index,
		Points: make([][3]float64, len(f.Points)),
	}
	for i, p := range f.Points {
		rec.Points[i] = [3]float64{p.X, p.Y, p.Z}
	}
	return rec
}

// FrameEncoder writes frames as newline-delimited records.
// It is not safe for concurrent use.
type FrameEncoder struct {
	w   io.Writer
	c   Codec
	buf []byte
}

// NewFrameEncoder returns an encoder writing to w with c, or with Default
// when c is nil.
func NewFrameEncoder(w io.Writer, c Codec) *FrameEncoder {
	if c == nil {
		c = Default
	}
	return &FrameEncoder{w: w, c: c}
}

// Encode writes f followed by a newline. Its signature matches the emit
// callback of animate.Animator.Run.
func (e *FrameEncoder) Encode(f animate.Frame) error {
	rec := RecordOf(f)

	var err error
	if a, ok := e.c.(Appender); ok {
		e.buf, err = a.Append(e.buf[:0], rec)
	} else {
		var b []byte
		b, err = e.c.Marshal(rec)
		e.buf = append(e.buf[:0], b...)
	}
	if err != nil {
		return fmt.Errorf("codec %s: frame %d: %w", e.c.Name(), f.Index, err)
	}

	e.buf = append(e.buf, '\n')
	_, err = e.w.Write(e.buf)

	return err
}
