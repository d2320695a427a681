// Package animate steps a point cloud through repeated transformations.
//
// An Animator applies a transform.Func to the current points once per
// frame and hands every frame to a callback, pacing frames with a token
// bucket:
//
//	a, _ := animate.New(animate.WithFPS(30))
//	err := a.Run(ctx, points, transform.TwistXY(0.05), 120, func(f animate.Frame) error {
//	    return scene.Update(f.Points)
//	})
package animate

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/time/rate"

	"github.com/hupe1980/cliffgo"
	"github.com/hupe1980/cliffgo/transform"
)

var (
	// ErrInvalidFPS is returned for a frame rate that is not positive.
	ErrInvalidFPS = errors.New("animate: frame rate must be positive")

	// ErrInvalidBurst is returned for a burst below 1.
	ErrInvalidBurst = errors.New("animate: burst must be at least 1")
)

// DefaultFPS is the frame rate used when WithFPS is not given.
const DefaultFPS = 60

// Frame is one step of an animation.
type Frame struct {
	// Index counts frames from 0.
	Index int
	// Points holds the positions after Index+1 applications.
	Points []transform.Point
}

type options struct {
	fps           float64
	burst         int
	logger        *cliffgo.Logger
	transformOpts []transform.Option
}

// Option configures an Animator.
type Option func(*options)

// WithFPS sets the frame rate. math.Inf(1) disables pacing.
func WithFPS(fps float64) Option {
	return func(o *options) {
		o.fps = fps
	}
}

// WithBurst sets how many frames may be produced back to back after the
// animation fell behind.
func WithBurst(n int) Option {
	return func(o *options) {
		o.burst = n
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *cliffgo.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithTransformOptions forwards options to transform.Apply for every frame.
func WithTransformOptions(optFns ...transform.Option) Option {
	return func(o *options) {
		o.transformOpts = append(o.transformOpts, optFns...)
	}
}

// Animator produces paced frames.
type Animator struct {
	limiter *rate.Limiter
	opts    options
}

// New creates an Animator.
func New(optFns ...Option) (*Animator, error) {
	o := options{
		fps:   DefaultFPS,
		burst: 1,
	}
	for _, fn := range optFns {
		fn(&o)
	}

	if math.IsNaN(o.fps) || o.fps <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFPS, o.fps)
	}
	if o.burst < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBurst, o.burst)
	}
	if o.logger == nil {
		o.logger = cliffgo.NoopLogger()
	}

	limit := rate.Limit(o.fps)
	if math.IsInf(o.fps, 1) {
		limit = rate.Inf
	}

	return &Animator{
		limiter: rate.NewLimiter(limit, o.burst),
		opts:    o,
	}, nil
}

// Run applies fn to points frames times, calling emit after each step.
// A non-positive frames runs until ctx is canceled. Run stops at the first
// error returned by emit, by the transformation, or by ctx.
func (a *Animator) Run(ctx context.Context, points []transform.Point, fn transform.Func, frames int, emit func(Frame) error) error {
	if fn == nil {
		return transform.ErrNilTransform
	}

	log := a.opts.logger.WithOp("animate").WithCount(len(points))

	for i := 0; frames <= 0 || i < frames; i++ {
		if err := a.limiter.Wait(ctx); err != nil {
			log.WarnContext(ctx, "animation stopped", "frame", i, "error", err)
			return err
		}

		next, err := transform.Apply(ctx, points, fn, a.opts.transformOpts...)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		points = next

		log.LogFrame(ctx, i)

		if err := emit(Frame{Index: i, Points: points}); err != nil {
			return err
		}
	}

	return nil
}
