// SPDX-License-Identifier: EPL-2.0

package utils

// fullScale16 maps [-1, 1] onto 16-bit samples. -32768 is never produced so
// both directions share one symmetric scale.
const fullScale16 = 32767.0

// Float32ToInt16 clamps x into [-1, 1] and truncates it to a 16-bit sample.
func Float32ToInt16(x float32) int16 {
	return int16(min(max(x, -1), 1) * fullScale16)
}

// Int16ToFloat32 is the inverse of Float32ToInt16; -32768 maps to -1.
func Int16ToFloat32(x int16) float32 {
	return max(float32(x)/fullScale16, -1)
}
