package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/cliffgo"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, err := ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}

	_, err := ByName("msgpack")
	assert.ErrorIs(t, err, ErrUnknownCodec)
}

func TestCodecsAgreeOnMultivectors(t *testing.T) {
	m := cliffgo.Scalar(1.5).Add(cliffgo.Vector(-1, 2)).Add(cliffgo.Bivector(3, 3, 1))

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(m)
			require.NoError(t, err)
			assert.JSONEq(t, string(MustMarshal(JSON{}, m)), string(data))

			var back cliffgo.Multivector
			require.NoError(t, c.Unmarshal(data, &back))
			assert.True(t, back.Equal(m), "got %v", back)
		})
	}
}

func TestGoJSONAppend(t *testing.T) {
	dst := []byte("frame=")

	out, err := GoJSON{}.Append(dst, cliffgo.Vector(2, 1))
	require.NoError(t, err)
	assert.Equal(t, `frame={"terms":[{"blade":[1],"value":2}]}`, string(out))
}

func TestMustMarshalDefault(t *testing.T) {
	assert.JSONEq(t, `{"terms":[]}`, string(MustMarshal(nil, cliffgo.Zero())))
	assert.Panics(t, func() { MustMarshal(JSON{}, make(chan int)) })
}
