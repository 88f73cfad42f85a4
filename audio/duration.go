// SPDX-License-Identifier: EPL-2.0

package audio

import "time"

// Duration returns the playback length of buf in seconds.
func Duration(buf Buffer) float64 {
	bps := buf.format.BytesPerSecond()
	if bps == 0 {
		return 0
	}
	return float64(len(buf.data)) / float64(bps)
}

// PlayTime is Duration as a time.Duration.
func PlayTime(buf Buffer) time.Duration {
	return time.Duration(Duration(buf) * float64(time.Second))
}
