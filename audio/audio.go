// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"sort"
	"sync"
)

// Source streams interleaved float32 samples.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder turns an encoded payload into PCM.
type Decoder interface {
	Decode(data []byte) (Buffer, error)
}

// Encoder turns PCM into an encoded payload.
type Encoder interface {
	Encode(buf Buffer) ([]byte, error)
}

// Codec converts between an encoding and PCM. Implementations must be safe
// for concurrent use.
type Codec interface {
	Decoder
	Encoder
}

// Registry of codecs by encoding key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Codec

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Codec),
		mtx:    &sync.RWMutex{},
	}
}

func (r *Registry) Register(encoding string, c Codec) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[encoding] = c
}

func (r *Registry) Get(encoding string) (Codec, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	c, ok := r.codecs[encoding]
	return c, ok
}

// Lookup is Get returning ErrUnsupportedFormat for unknown encodings.
func (r *Registry) Lookup(encoding string) (Codec, error) {
	c, ok := r.Get(encoding)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, encoding)
	}
	return c, nil
}

// Encodings lists the registered keys in sorted order.
func (r *Registry) Encodings() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
