// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ik5/audtool/audio"
	"github.com/ik5/audtool/formats/mp3"
	"github.com/ik5/audtool/store"
)

// ErrInvalid marks a setting that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config holds every audtool setting.
type Config struct {
	Store store.Config

	FFmpeg     string
	MP3Quality int
	MP3Bitrate int

	// SilencePrefix names pre-rendered clips "<prefix><n>s.wav"; empty
	// synthesizes silence instead.
	SilencePrefix string
	MixMode       string

	// TargetRate and TargetChannels conform every decoded input to 16-bit
	// PCM of that layout. Both zero leaves inputs untouched.
	TargetRate     int
	TargetChannels int
}

// Load reads the AUDTOOL_* variables, applying defaults for missing ones.
func Load() (Config, error) {
	redisDB, err := envInt("AUDTOOL_REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}
	quality, err := envInt("AUDTOOL_MP3_QUALITY", mp3.DefaultQuality)
	if err != nil {
		return Config{}, err
	}
	bitrate, err := envInt("AUDTOOL_MP3_BITRATE", 0)
	if err != nil {
		return Config{}, err
	}
	targetRate, err := envInt("AUDTOOL_TARGET_RATE", 0)
	if err != nil {
		return Config{}, err
	}
	targetChannels, err := envInt("AUDTOOL_TARGET_CHANNELS", 0)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Store: store.Config{
			Kind: store.Kind(strings.ToLower(envStr("AUDTOOL_STORE", string(store.KindLocal)))),
			Dir:  envStr("AUDTOOL_DIR", store.DefaultDir),
			Redis: store.RedisOptions{
				Addr:     envStr("AUDTOOL_REDIS_ADDR", ""),
				Password: envStr("AUDTOOL_REDIS_PASSWORD", ""),
				DB:       redisDB,
				Prefix:   envStr("AUDTOOL_REDIS_PREFIX", "audtool"),
			},
			COS: store.COSOptions{
				BucketURL: envStr("AUDTOOL_COS_BUCKET_URL", ""),
				SecretID:  envStr("AUDTOOL_COS_SECRET_ID", ""),
				SecretKey: envStr("AUDTOOL_COS_SECRET_KEY", ""),
				Prefix:    envStr("AUDTOOL_COS_PREFIX", ""),
			},
			S3: store.S3Options{
				Bucket: envStr("AUDTOOL_S3_BUCKET", ""),
				Region: envStr("AUDTOOL_S3_REGION", store.DefaultS3Region),
				Prefix: envStr("AUDTOOL_S3_PREFIX", ""),
			},
		},
		FFmpeg:        envStr("AUDTOOL_FFMPEG", mp3.DefaultFFmpeg),
		MP3Quality:    quality,
		MP3Bitrate:    bitrate,
		SilencePrefix: envStr("AUDTOOL_SILENCE_PREFIX", ""),
		MixMode:       envStr("AUDTOOL_MIX_MODE", audio.MixBytes.String()),

		TargetRate:     targetRate,
		TargetChannels: targetChannels,
	}
	return cfg, cfg.Validate()
}

// LoadFile loads path into the environment, then calls Load. A missing file
// is not an error.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load %v: %w", path, err)
	}
	return Load()
}

// Validate rejects unknown store kinds and mix modes.
func (c Config) Validate() error {
	if _, err := store.ParseKind(string(c.Store.Kind)); err != nil {
		return fmt.Errorf("%w: AUDTOOL_STORE: %w", ErrInvalid, err)
	}
	if _, err := audio.ParseMixMode(c.MixMode); err != nil {
		return fmt.Errorf("%w: AUDTOOL_MIX_MODE: %w", ErrInvalid, err)
	}
	if c.MP3Quality < 0 || c.MP3Quality > 9 {
		return fmt.Errorf("%w: AUDTOOL_MP3_QUALITY %d not in 0..9", ErrInvalid, c.MP3Quality)
	}
	if c.MP3Bitrate < 0 {
		return fmt.Errorf("%w: AUDTOOL_MP3_BITRATE %d", ErrInvalid, c.MP3Bitrate)
	}
	if (c.TargetRate == 0) != (c.TargetChannels == 0) || c.TargetRate < 0 || c.TargetChannels < 0 {
		return fmt.Errorf("%w: AUDTOOL_TARGET_RATE=%d and AUDTOOL_TARGET_CHANNELS=%d must both be positive or both unset",
			ErrInvalid, c.TargetRate, c.TargetChannels)
	}
	return nil
}

// Target returns the 16-bit format inputs are conformed to, if configured.
func (c Config) Target() (audio.Format, bool) {
	if c.TargetRate <= 0 || c.TargetChannels <= 0 {
		return audio.Format{}, false
	}
	return audio.Format{SampleRate: c.TargetRate, FrameSize: 2 * c.TargetChannels, Channels: c.TargetChannels}, true
}

// Mix returns the parsed mix mode. Call after Validate.
func (c Config) Mix() audio.MixMode {
	m, _ := audio.ParseMixMode(c.MixMode)
	return m
}

// MP3Options converts the encoder settings.
func (c Config) MP3Options() []mp3.Option {
	return []mp3.Option{
		mp3.WithFFmpeg(c.FFmpeg),
		mp3.WithQuality(c.MP3Quality),
		mp3.WithBitrate(c.MP3Bitrate),
	}
}

// String summarizes c for logs, secrets shown by length.
func (c Config) String() string {
	return fmt.Sprintf("AUDTOOL_STORE=%v, AUDTOOL_DIR=%v, AUDTOOL_REDIS_ADDR=%v, AUDTOOL_REDIS_PASSWORD=%vB, "+
		"AUDTOOL_REDIS_DB=%v, AUDTOOL_COS_BUCKET_URL=%v, AUDTOOL_COS_SECRET_ID=%vB, AUDTOOL_COS_SECRET_KEY=%vB, "+
		"AUDTOOL_S3_BUCKET=%v, AUDTOOL_S3_REGION=%v, AUDTOOL_FFMPEG=%v, AUDTOOL_MP3_QUALITY=%v, AUDTOOL_MP3_BITRATE=%v, "+
		"AUDTOOL_SILENCE_PREFIX=%v, AUDTOOL_MIX_MODE=%v, AUDTOOL_TARGET_RATE=%v, AUDTOOL_TARGET_CHANNELS=%v",
		c.Store.Kind, c.Store.Dir, c.Store.Redis.Addr, len(c.Store.Redis.Password),
		c.Store.Redis.DB, c.Store.COS.BucketURL, len(c.Store.COS.SecretID), len(c.Store.COS.SecretKey),
		c.Store.S3.Bucket, c.Store.S3.Region, c.FFmpeg, c.MP3Quality, c.MP3Bitrate,
		c.SilencePrefix, c.MixMode, c.TargetRate, c.TargetChannels,
	)
}

func envStr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := envStr(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v=%q: %w", ErrInvalid, key, v, err)
	}
	return n, nil
}
