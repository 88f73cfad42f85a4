// SPDX-License-Identifier: EPL-2.0

package audtool

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/audtool/audio"
	"github.com/ik5/audtool/config"
	"github.com/ik5/audtool/engine"
	"github.com/ik5/audtool/silence"
	"github.com/ik5/audtool/store"
)

// Open builds the store named by cfg, the codec registry with cfg's MP3
// encoder settings and the silence source, then returns an Engine over them.
// A configured target format makes the engine conform every input first.
//
// With cfg.SilencePrefix set, the clips "<prefix><n>s.wav" must exist in the
// store; otherwise silence is synthesized per format.
func Open(ctx context.Context, cfg config.Config) (*engine.Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	st, err := store.New(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	var clips silence.Provider = silence.NewSynth()
	source := "synth"
	if cfg.SilencePrefix != "" {
		cat, err := engine.LoadSilence(ctx, st, cfg.SilencePrefix)
		if err != nil {
			return nil, fmt.Errorf("load silence %v: %w", cfg.SilencePrefix, err)
		}
		clips = cat
		source = fmt.Sprintf("%v*.wav %v", cfg.SilencePrefix, cat.Format())
	}

	opts := []engine.Option{
		engine.WithRegistry(engine.DefaultRegistry(cfg.MP3Options()...)),
		engine.WithSilence(clips),
		engine.WithMixMode(cfg.Mix()),
	}
	target := "none"
	if f, ok := cfg.Target(); ok {
		opts = append(opts, engine.WithTargetFormat(f))
		target = f.String()
	}

	logger.Tf(ctx, "audtool open, store=%v, silence=%v, mix=%v, target=%v, ffmpeg=%v",
		cfg.Store.Kind, source, cfg.Mix(), target, cfg.FFmpeg)

	return engine.New(st, opts...), nil
}

// ResampleToMono16 converts a 16-bit buffer to mono at targetRate and returns
// the samples. The pipeline is Resampler (cubic) then ChannelMixer.
func ResampleToMono16(buf audio.Buffer, targetRate int) ([]int16, error) {
	out, err := audio.Conform(buf, audio.Format{SampleRate: targetRate, FrameSize: 2, Channels: 1})
	if err != nil {
		return nil, err
	}

	data := out.Bytes()
	pcm16 := make([]int16, len(data)/2)
	for i := range pcm16 {
		pcm16[i] = int16(binary.LittleEndian.Uint16(data[2*i:]))
	}
	return pcm16, nil
}
