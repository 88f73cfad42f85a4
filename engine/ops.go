// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"context"
	"fmt"

	"github.com/ik5/audtool/audio"
	"github.com/ik5/audtool/silence"
)

// Join concatenates two or more assets in order.
func (e *Engine) Join(ctx context.Context, out Output, assets ...Asset) (Asset, error) {
	if len(assets) < 2 {
		return Asset{}, fmt.Errorf("%w: join needs at least 2 assets, got %d", audio.ErrEmptyInput, len(assets))
	}

	bufs, err := e.loadAll(ctx, assets...)
	if err != nil {
		return Asset{}, err
	}

	joined, err := audio.Sequence(bufs[0].Format(), bufs...)
	if err != nil {
		return Asset{}, fmt.Errorf("join: %w", err)
	}

	return e.save(ctx, out.resolve("join", nil, assets...), joined)
}

// Blend mixes a and b. The result is as long as the longer input, whose tail
// past the shorter one is halved.
func (e *Engine) Blend(ctx context.Context, out Output, a, b Asset) (Asset, error) {
	bufs, err := e.loadAll(ctx, a, b)
	if err != nil {
		return Asset{}, err
	}

	mixed, err := e.mixMode.Mix(bufs[0], bufs[1])
	if err != nil {
		return Asset{}, fmt.Errorf("blend: %w", err)
	}

	return e.save(ctx, out.resolve("blend", nil, a, b), mixed)
}

// BlendWithOffset keeps the first totalSeconds of bg, delays it by
// startSeconds of silence and mixes it under fg.
func (e *Engine) BlendWithOffset(ctx context.Context, out Output, fg, bg Asset, startSeconds, totalSeconds int) (Asset, error) {
	if startSeconds < 0 || totalSeconds < 0 {
		return Asset{}, fmt.Errorf("%w: start=%d, total=%d", audio.ErrOutOfRange, startSeconds, totalSeconds)
	}

	bufs, err := e.loadAll(ctx, fg, bg)
	if err != nil {
		return Asset{}, err
	}

	back, err := audio.Trim(bufs[1], 0, totalSeconds)
	if err != nil {
		return Asset{}, fmt.Errorf("offset: %w", err)
	}

	back, err = silence.Prepend(e.silence, back, startSeconds)
	if err != nil {
		return Asset{}, fmt.Errorf("offset: pad %ds: %w", startSeconds, err)
	}

	mixed, err := e.mixMode.Mix(bufs[0], back)
	if err != nil {
		return Asset{}, fmt.Errorf("offset: %w", err)
	}

	return e.save(ctx, out.resolve("offset", []int{startSeconds, totalSeconds}, fg, bg), mixed)
}

// Cut keeps durationSeconds of a starting at startSeconds. A range past the
// end is truncated; a start past the end gives an empty asset.
func (e *Engine) Cut(ctx context.Context, out Output, a Asset, startSeconds, durationSeconds int) (Asset, error) {
	buf, err := e.load(ctx, a)
	if err != nil {
		return Asset{}, err
	}

	cut, err := audio.Trim(buf, startSeconds, durationSeconds)
	if err != nil {
		return Asset{}, fmt.Errorf("cut: %w", err)
	}

	return e.save(ctx, out.resolve("cut", []int{startSeconds, durationSeconds}, a), cut)
}

// Duration returns the play time of a in seconds.
func (e *Engine) Duration(ctx context.Context, a Asset) (float64, error) {
	buf, err := e.load(ctx, a)
	if err != nil {
		return 0, err
	}
	return audio.Duration(buf), nil
}
