// SPDX-License-Identifier: EPL-2.0

// Package silence builds silent lead-ins out of fixed duration clips.
//
// A lead-in of n seconds is decomposed into the duration classes 1, 2, 3,
// 5 and 10 seconds, largest first:
//
//	counts, _ := silence.Decompose(16) // one 10s, one 5s and one 1s clip
//
// Clips come from a Provider. Catalog serves a fixed set of pre-rendered
// clips, Synth renders zero-filled clips for any format on demand.
// Prepend attaches the clips in front of a buffer one at a time.
package silence
