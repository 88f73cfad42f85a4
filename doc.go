// SPDX-License-Identifier: EPL-2.0

// Package audtool edits audio assets: join, blend, blend with a delayed
// background, cut, measure, convert and import.
//
// # Supported Formats
//
//   - WAV (PCM 8, 16, 24 and 32-bit) via formats/wav, read and write
//   - MP3 via formats/mp3, read with go-mp3 and written through ffmpeg
//   - Ogg Vorbis via formats/vorbis, read only
//   - AIFF (PCM 16-bit) via formats/aiff, read only
//
// # Quick Start
//
// Open wires a configuration into an engine.Engine:
//
//	cfg, err := config.LoadFile(".env")
//	if err != nil {
//	    return err
//	}
//	e, err := audtool.Open(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	out, err := e.BlendWithOffset(ctx, engine.Output{Encoding: engine.MP3},
//	    engine.WAV.Asset("voice"), engine.MP3.Asset("music"), 2, 10)
//	// out.File() == "offset-voice-music-2-10.mp3"
//
// # Packages
//
//   - audio: PCM buffers and the sequence, mix, trim and duration primitives
//   - silence: greedy decomposition of a gap into 1, 2, 3, 5 and 10 second clips
//   - engine: operations over named assets
//   - store: local, memory, Redis, COS and S3 persistence
//   - config: AUDTOOL_* environment settings
//
// # Thread Safety
//
// An Engine may be shared between goroutines. Operations that write the same
// output name race and the last writer wins.
package audtool
