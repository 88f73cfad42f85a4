// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/ik5/audtool/audio"
	"github.com/ik5/audtool/formats/wav"
)

const (
	DefaultFFmpeg  = "ffmpeg"
	DefaultQuality = 2
)

// runFunc executes a prepared ffmpeg stream. in, out and errOut are the
// pipes the stream was bound to.
type runFunc func(stream *ffmpeg.Stream, in io.Reader, out, errOut io.Writer) error

func runStream(stream *ffmpeg.Stream, _ io.Reader, _, _ io.Writer) error {
	return stream.Run()
}

// Codec decodes MP3 with go-mp3 and encodes by piping WAV through ffmpeg
// with libmp3lame.
type Codec struct {
	ffmpegPath string
	quality    int
	bitrate    int

	run runFunc
}

type Option func(*Codec)

// WithFFmpeg sets the ffmpeg binary.
func WithFFmpeg(path string) Option {
	return func(c *Codec) {
		if path != "" {
			c.ffmpegPath = path
		}
	}
}

// WithQuality sets the LAME VBR quality, 0 (best) to 9.
func WithQuality(q int) Option {
	return func(c *Codec) { c.quality = min(max(q, 0), 9) }
}

// WithBitrate switches to constant bitrate in kbps. 0 keeps VBR.
func WithBitrate(kbps int) Option {
	return func(c *Codec) { c.bitrate = max(kbps, 0) }
}

func New(opts ...Option) *Codec {
	c := &Codec{
		ffmpegPath: DefaultFFmpeg,
		quality:    DefaultQuality,
		run:        runStream,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Codec) Decode(data []byte) (audio.Buffer, error) { return Decode(data) }

// Encode converts buf to MP3. ffmpeg must be installed.
func (c *Codec) Encode(buf audio.Buffer) ([]byte, error) {
	in, err := wav.Encode(buf)
	if err != nil {
		return nil, err
	}

	var out, stderr bytes.Buffer
	r := bytes.NewReader(in)
	stream := c.stream(r, &out, &stderr)

	if err := c.run(stream, r, &out, &stderr); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("%w: %w: %s", ErrEncoderFailed, err, lastLine(msg))
		}
		return nil, fmt.Errorf("%w: %w", ErrEncoderFailed, err)
	}
	if out.Len() == 0 {
		return nil, ErrNoOutput
	}
	return out.Bytes(), nil
}

// stream builds: ffmpeg -f wav -i pipe: -c:a libmp3lame (-q:a Q | -b:a Nk) -f mp3 pipe:
func (c *Codec) stream(in io.Reader, out, errOut io.Writer) *ffmpeg.Stream {
	args := ffmpeg.KwArgs{
		"format": "mp3",
		"c:a":    "libmp3lame",
	}
	if c.bitrate > 0 {
		args["b:a"] = fmt.Sprintf("%dk", c.bitrate)
	} else {
		args["q:a"] = c.quality
	}

	return ffmpeg.Input("pipe:", ffmpeg.KwArgs{"format": "wav"}).
		Output("pipe:", args).
		WithInput(in).
		WithOutput(out).
		WithErrorOutput(errOut).
		SetFfmpegPath(c.ffmpegPath).
		Silent(true)
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}

var _ audio.Codec = (*Codec)(nil)
