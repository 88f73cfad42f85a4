// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audtool/utils"
)

// Resampler converts a Source to another sample rate with Catmull-Rom
// interpolation over a four frame window. Channel count is preserved.
// Downsampling runs every input frame through a one-pole low-pass first.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames per output frame
	channels int

	// window[0..3] hold frames t-1, t0, t+1, t+2
	window [4][]float32
	filled [4]bool
	primed bool
	eof    bool

	pos     float64
	frame   []float32
	lowpass []float32 // nil when upsampling
}

const lowpassAlpha = 0.5

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		channels: channels,
		frame:    make([]float32, channels),
	}
	if r.step > 1.0 {
		r.lowpass = make([]float32, channels)
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame pulls one frame from src into r.frame.
func (r *Resampler) readFrame(first bool) (bool, error) {
	if r.eof {
		return false, io.EOF
	}
	n, err := r.src.ReadSamples(r.frame)
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("%w", err)
	}
	if n < r.channels {
		if r.eof {
			return false, io.EOF
		}
		return false, nil
	}

	if r.lowpass != nil {
		if first {
			copy(r.lowpass, r.frame)
		}
		for c := range r.channels {
			r.frame[c] = lowpassAlpha*r.frame[c] + (1-lowpassAlpha)*r.lowpass[c]
			r.lowpass[c] = r.frame[c]
		}
	}
	return true, nil
}

func (r *Resampler) prime() error {
	r.primed = true
	got := 0
	for got < 4 {
		ok, err := r.readFrame(got == 0)
		if ok {
			copy(r.window[got], r.frame)
			r.filled[got] = true
			got++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	if got == 0 {
		return io.EOF
	}
	// pad a short stream by repeating its last frame
	for i := got; i < 4; i++ {
		copy(r.window[i], r.window[got-1])
		r.filled[i] = true
	}
	return nil
}

// advance shifts the window by one frame.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	r.window[3] = first
	copy(r.filled[:], r.filled[1:])

	ok, err := r.readFrame(false)
	r.filled[3] = ok
	if ok {
		copy(r.window[3], r.frame)
		return nil
	}
	if err != nil && err != io.EOF {
		return err
	}
	if !r.filled[2] {
		return io.EOF
	}
	return nil
}

// ReadSamples produces dst samples at the destination rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	want := len(dst) / r.channels
	for written < want {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}
		if !r.filled[1] || !r.filled[2] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		for c := range r.channels {
			y0 := r.window[1][c]
			if r.filled[0] {
				y0 = r.window[0][c]
			}
			y3 := r.window[2][c]
			if r.filled[3] {
				y3 = r.window[3][c]
			}
			dst[written*r.channels+c] = utils.CubicInterpolate(y0, r.window[1][c], r.window[2][c], y3, x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
