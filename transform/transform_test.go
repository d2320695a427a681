package transform

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/cliffgo"
	"github.com/hupe1980/cliffgo/blade"
	"github.com/hupe1980/cliffgo/testutil"
)

const tol = 1e-9

func randomPoints(seed int64, n int) []Point {
	rng := testutil.NewRNG(seed)
	b := testutil.FullBounds()
	b.MinX = 0

	out := make([]Point, n)
	for i, d := range rng.Directions(n, b) {
		out[i] = Point{X: d[0], Y: d[1], Z: d[2]}
	}
	return out
}

func assertPointInDelta(t *testing.T, want, got Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol)
	assert.InDelta(t, want.Y, got.Y, tol)
	assert.InDelta(t, want.Z, got.Z, tol)
}

func TestPointRoundTrip(t *testing.T) {
	p := Point{X: 1, Y: -2, Z: 0.5}
	assert.Equal(t, p, PointOf(p.Multivector()))
	assert.Equal(t, "e₁ - 2e₂ + 0.5e₃", p.Multivector().String())
}

func TestInflateAlong(t *testing.T) {
	fn, err := InflateAlong(Point{X: 1}, math.Pi/2)
	require.NoError(t, err)

	got := PointOf(fn(Point{Y: 1}.Multivector()))
	assertPointInDelta(t, Point{X: -1}, got)
}

func TestTwistXY(t *testing.T) {
	fn := TwistXY(math.Pi / 2)

	assertPointInDelta(t, Point{Y: 1}, PointOf(fn(Point{X: 1}.Multivector())))
	assertPointInDelta(t, Point{Z: 1}, PointOf(fn(Point{Z: 1}.Multivector())))

	generic, err := Twist(cliffgo.Bivector(1, 1, 2), 0.7)
	require.NoError(t, err)
	for _, p := range randomPoints(11, 20) {
		assertPointInDelta(t, PointOf(generic(p.Multivector())), PointOf(TwistXY(0.7)(p.Multivector())))
	}
}

func TestRotationChain(t *testing.T) {
	var fns []Func
	for _, p := range [][2]blade.Index{{1, 2}, {2, 3}, {1, 3}} {
		fn, err := Rotation(math.Pi/2, p[0], p[1])
		require.NoError(t, err)
		fns = append(fns, fn)
	}
	for _, p := range [][2]blade.Index{{1, 3}, {2, 3}, {1, 2}} {
		fn, err := Rotation(-math.Pi/2, p[0], p[1])
		require.NoError(t, err)
		fns = append(fns, fn)
	}

	start := Point{X: 1, Y: 1, Z: 1}
	assertPointInDelta(t, start, PointOf(Chain(fns...)(start.Multivector())))
}

func TestConstructorErrors(t *testing.T) {
	_, err := Inflate(cliffgo.Scalar(1), 0.1)
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = Twist(cliffgo.Vector(1, 1), 0.1)
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = Twist(cliffgo.Bivector(1, 1, 4), 0.1)
	var de *ErrDimension
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 4, int(de.Dimension))

	_, err = Rotation(1, 2, 2)
	assert.ErrorIs(t, err, cliffgo.ErrInvalidArgument)

	_, err = Rotation(1, 1, 5)
	assert.True(t, errors.As(err, &de))
}

func TestApplyMatchesSequential(t *testing.T) {
	points := randomPoints(4711, 5000)
	fn, err := InflateAlong(Point{X: 0, Y: 0, Z: 1}, 0.1)
	require.NoError(t, err)

	mc := &BasicMetricsCollector{}
	out, err := Apply(context.Background(), points, fn,
		WithConcurrency(4),
		WithChunkSize(300),
		WithMetricsCollector(mc),
		WithLogger(cliffgo.NoopLogger()),
	)
	require.NoError(t, err)
	require.Len(t, out, len(points))

	for i, p := range points {
		assertPointInDelta(t, PointOf(fn(p.Multivector())), out[i])
	}

	stats := mc.GetStats()
	assert.Equal(t, int64(1), stats.BatchCount)
	assert.Equal(t, int64(0), stats.BatchErrors)
	assert.Equal(t, int64(5000), stats.BatchPoints)
	assert.Equal(t, int64(17), stats.ChunkCount)
	assert.Equal(t, int64(5000), stats.ChunkPoints)
}

func TestApplyPreservesModuleForTwist(t *testing.T) {
	points := randomPoints(7, 200)

	out, err := Apply(context.Background(), points, TwistXY(1.1))
	require.NoError(t, err)

	for i := range points {
		assert.InDelta(t, points[i].Multivector().Module(), out[i].Multivector().Module(), tol)
	}
}

func TestApplyNilFunc(t *testing.T) {
	_, err := Apply(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrNilTransform)
}

func TestApplyEmpty(t *testing.T) {
	out, err := Apply(context.Background(), nil, TwistXY(1))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestApplyCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mc := &BasicMetricsCollector{}
	_, err := Apply(ctx, randomPoints(1, 100), TwistXY(1), WithMetricsCollector(mc))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(1), mc.GetStats().BatchErrors)
}

func TestApplyLogsBatch(t *testing.T) {
	var buf bytes.Buffer
	logger := cliffgo.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Apply(context.Background(), randomPoints(3, 10), TwistXY(1), WithLogger(logger), WithChunkSize(4))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "op=apply")
	assert.Contains(t, buf.String(), "count=10")
	assert.Contains(t, buf.String(), "chunks=3")
}
