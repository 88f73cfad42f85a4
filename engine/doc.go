// SPDX-License-Identifier: EPL-2.0

// Package engine assembles audio assets: join, blend, blend with offset,
// cut, duration, convert and import.
//
// Every operation loads its inputs from a store.Store, decodes them through
// an audio.Registry, works on in-memory PCM and saves exactly one output.
// Intermediate buffers (for example the silence padding of
// BlendWithOffset) are never persisted, so a failed operation leaves the
// store untouched.
//
//	e := engine.New(store.NewMemory())
//	out, err := e.Join(ctx, engine.Output{}, engine.WAV.Asset("audio1"), engine.WAV.Asset("audio2"))
//	// out.File() == "join-audio1-audio2.wav"
//
// Errors are wrapped so callers can test the kind with errors.Is:
// audio.ErrCodecFailure for decode and encode failures, audio.ErrIOFailure
// for store failures (store.ErrNotFound is reachable through it), plus the
// audio package errors for invalid arguments.
//
// The engine does not log and does not lock output names: two operations
// writing the same name race and the last writer wins.
package engine
