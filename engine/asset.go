// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"path"
	"strings"

	"github.com/ik5/audtool/audio"
)

// Encoding is the registry key of an asset payload and its file extension.
type Encoding string

const (
	WAV  Encoding = "wav"
	MP3  Encoding = "mp3"
	Ogg  Encoding = "ogg"
	AIFF Encoding = "aiff"
)

// Asset returns the asset name encoded with e.
func (e Encoding) Asset(name string) Asset { return Asset{Name: name, Encoding: e} }

// ParseEncoding accepts a known encoding or file extension, e.g. "MP3", ".wav", "aif".
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "wav", "wave":
		return WAV, nil
	case "mp3":
		return MP3, nil
	case "ogg", "oga":
		return Ogg, nil
	case "aiff", "aif":
		return AIFF, nil
	}
	return "", fmt.Errorf("%w: %q", audio.ErrUnsupportedFormat, s)
}

// Asset is an audio payload addressed by logical name and encoding.
type Asset struct {
	Name     string
	Encoding Encoding
}

// File is the store key of the asset.
func (a Asset) File() string { return a.Name + "." + string(a.Encoding) }

func (a Asset) String() string { return a.File() }

// ParseAsset splits a file name like "audio1.mp3" into an Asset.
func ParseAsset(file string) (Asset, error) {
	ext := path.Ext(file)
	name := strings.TrimSuffix(file, ext)
	if name == "" || ext == "" {
		return Asset{}, fmt.Errorf("%w: %q has no name or extension", audio.ErrUnsupportedFormat, file)
	}
	enc, err := ParseEncoding(ext)
	if err != nil {
		return Asset{}, err
	}
	return Asset{Name: name, Encoding: enc}, nil
}

// Output names the result of an operation. An empty Name is derived from the
// operation and its inputs; an empty Encoding reuses the first input's.
type Output struct {
	Name     string
	Encoding Encoding
}

// resolve fills the empty fields of o.
func (o Output) resolve(op string, params []int, inputs ...Asset) Asset {
	out := Asset{Name: o.Name, Encoding: o.Encoding}
	if out.Name == "" {
		out.Name = derivedName(op, params, inputs...)
	}
	if out.Encoding == "" && len(inputs) > 0 {
		out.Encoding = inputs[0].Encoding
	}
	return out
}

// derivedName builds "<op>-<in1>[-<in2>...][-<param>...]".
func derivedName(op string, params []int, inputs ...Asset) string {
	var sb strings.Builder
	sb.WriteString(op)
	for _, in := range inputs {
		sb.WriteByte('-')
		sb.WriteString(in.Name)
	}
	for _, p := range params {
		fmt.Fprintf(&sb, "-%d", p)
	}
	return sb.String()
}
