// SPDX-License-Identifier: EPL-2.0

package wav

import "github.com/ik5/audtool/audio"

// Codec registers the WAV container with an audio.Registry.
type Codec struct{}

func (Codec) Decode(data []byte) (audio.Buffer, error) { return Decode(data) }
func (Codec) Encode(buf audio.Buffer) ([]byte, error)  { return Encode(buf) }

var _ audio.Codec = Codec{}
