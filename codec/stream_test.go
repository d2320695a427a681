package codec

import (
	"bufio"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/cliffgo/animate"
	"github.com/hupe1980/cliffgo/transform"
)

type failingCodec struct{ JSON }

func (failingCodec) Marshal(any) ([]byte, error) { return nil, errors.New("boom") }

func TestRecordOf(t *testing.T) {
	rec := RecordOf(animate.Frame{Index: 2, Points: []transform.Point{{X: 1, Y: -2, Z: 0.5}}})

	assert.Equal(t, 2, rec.Frame)
	assert.Equal(t, [][3]float64{{1, -2, 0.5}}, rec.Points)
}

func TestFrameEncoder(t *testing.T) {
	frames := []animate.Frame{
		{Index: 0, Points: []transform.Point{{X: 1}, {Y: 1}}},
		{Index: 1, Points: []transform.Point{{Z: -1}}},
		{Index: 2},
	}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			var buf bytes.Buffer
			enc := NewFrameEncoder(&buf, c)
			for _, f := range frames {
				require.NoError(t, enc.Encode(f))
			}

			sc := bufio.NewScanner(&buf)
			var got []FrameRecord
			for sc.Scan() {
				var rec FrameRecord
				require.NoError(t, c.Unmarshal(sc.Bytes(), &rec))
				got = append(got, rec)
			}
			require.NoError(t, sc.Err())
			require.Len(t, got, 3)

			assert.Equal(t, [][3]float64{{1, 0, 0}, {0, 1, 0}}, got[0].Points)
			assert.Equal(t, 1, got[1].Frame)
			assert.Equal(t, [][3]float64{{0, 0, -1}}, got[1].Points)
			assert.Empty(t, got[2].Points)
		})
	}
}

func TestFrameEncoderLineFormat(t *testing.T) {
	var buf bytes.Buffer
	enc := NewFrameEncoder(&buf, nil)

	require.NoError(t, enc.Encode(animate.Frame{Index: 4, Points: []transform.Point{{X: 1, Y: 2, Z: 3}}}))
	assert.Equal(t, "{\"frame\":4,\"points\":[[1,2,3]]}\n", buf.String())
}

func TestFrameEncoderError(t *testing.T) {
	var buf bytes.Buffer
	enc := NewFrameEncoder(&buf, failingCodec{})

	err := enc.Encode(animate.Frame{Index: 9})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frame 9")
	assert.Zero(t, buf.Len())
}

func TestFrameEncoderAsEmit(t *testing.T) {
	a, err := animate.New(animate.WithFPS(1e6), animate.WithBurst(10))
	require.NoError(t, err)

	var buf bytes.Buffer
	enc := NewFrameEncoder(&buf, GoJSON{})

	err = a.Run(t.Context(), []transform.Point{{X: 1}}, transform.TwistXY(0.1), 3, enc.Encode)
	require.NoError(t, err)
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("\n")))
}
