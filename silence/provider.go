// SPDX-License-Identifier: EPL-2.0

package silence

import (
	"fmt"
	"sync"

	"github.com/ik5/audtool/audio"
)

// Provider hands out silent clips for a duration class.
// Implementations must be safe for concurrent use.
type Provider interface {
	Clip(format audio.Format, seconds int) (audio.Buffer, error)
}

// Catalog is a fixed set of pre-rendered clips sharing one format.
type Catalog struct {
	format audio.Format
	clips  [len(Classes)]audio.Buffer
}

// NewCatalog validates clips keyed by class duration. Every class must be
// present and every clip must be compatible with the first one.
func NewCatalog(clips map[int]audio.Buffer) (*Catalog, error) {
	c := &Catalog{}
	for seconds, clip := range clips {
		i, err := classIndex(seconds)
		if err != nil {
			return nil, err
		}
		c.clips[i] = clip
	}
	for i, clip := range c.clips {
		if clip.Format().Validate() != nil {
			return nil, fmt.Errorf("%w: %ds", ErrMissingClip, Classes[i])
		}
	}

	c.format = c.clips[0].Format()
	for i, clip := range c.clips {
		if !c.format.Compatible(clip.Format()) {
			return nil, fmt.Errorf("%w: %ds clip is %s, want %s", audio.ErrFormatMismatch, Classes[i], clip.Format(), c.format)
		}
	}
	return c, nil
}

// Format of the clips held by c.
func (c *Catalog) Format() audio.Format { return c.format }

func (c *Catalog) Clip(format audio.Format, seconds int) (audio.Buffer, error) {
	i, err := classIndex(seconds)
	if err != nil {
		return audio.Buffer{}, err
	}
	if !format.Compatible(c.format) {
		return audio.Buffer{}, fmt.Errorf("%w: catalog is %s, want %s", audio.ErrFormatMismatch, c.format, format)
	}
	return c.clips[i], nil
}

type synthKey struct {
	format  audio.Format
	seconds int
}

// Synth renders zero-filled clips on first use and keeps them.
type Synth struct {
	clips map[synthKey]audio.Buffer

	mtx *sync.RWMutex
}

func NewSynth() *Synth {
	return &Synth{
		clips: make(map[synthKey]audio.Buffer),
		mtx:   &sync.RWMutex{},
	}
}

func (s *Synth) Clip(format audio.Format, seconds int) (audio.Buffer, error) {
	if _, err := classIndex(seconds); err != nil {
		return audio.Buffer{}, err
	}

	key := synthKey{format: format, seconds: seconds}

	s.mtx.RLock()
	clip, ok := s.clips[key]
	s.mtx.RUnlock()
	if ok {
		return clip, nil
	}

	clip, err := audio.Silence(format, seconds)
	if err != nil {
		return audio.Buffer{}, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if cached, ok := s.clips[key]; ok {
		return cached, nil
	}
	s.clips[key] = clip
	return clip, nil
}
