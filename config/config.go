// Package config loads store settings from a config file and BRCACHE_*
// environment variables. It covers the plumbing side of brcache.Options;
// Provider, Codec, Logger and Hooks stay code-level concerns.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/unkn0wn-root/brcache"
	"github.com/unkn0wn-root/brcache/compress"
)

// Settings mirror the file/env-tunable subset of brcache.Options.
type Settings struct {
	Prefix        string `mapstructure:"prefix"`
	DisablePrefix bool   `mapstructure:"disable_prefix"`

	// Compressor names one of "brotli", "zstd", "s2", "snappy", "gzip",
	// "none". Empty means brotli at its default quality.
	Compressor    string `mapstructure:"compressor"`
	BrotliQuality int    `mapstructure:"brotli_quality"`
	ZstdLevel     int    `mapstructure:"zstd_level"`
	GzipLevel     int    `mapstructure:"gzip_level"`

	CompressThreshold  int  `mapstructure:"compress_threshold"`
	DisableCompression bool `mapstructure:"disable_compression"`

	TTL time.Duration `mapstructure:"ttl"`
}

// Default returns the settings an empty file would load to. Prefix and
// CompressThreshold stay zero; brcache.New fills those in itself.
func Default() Settings {
	return Settings{
		Compressor:    "brotli",
		BrotliQuality: compress.DefaultQuality,
		ZstdLevel:     3,
		GzipLevel:     6,
	}
}

// Load reads settings from path, overlaid by BRCACHE_* environment
// variables (e.g. BRCACHE_COMPRESSOR=zstd, BRCACHE_TTL=5m). An empty path
// loads defaults plus environment only.
func Load(path string) (Settings, error) {
	v := viper.New()

	// register every key so env-only values survive Unmarshal
	def := Default()
	v.SetDefault("prefix", def.Prefix)
	v.SetDefault("disable_prefix", def.DisablePrefix)
	v.SetDefault("compressor", def.Compressor)
	v.SetDefault("brotli_quality", def.BrotliQuality)
	v.SetDefault("zstd_level", def.ZstdLevel)
	v.SetDefault("gzip_level", def.GzipLevel)
	v.SetDefault("compress_threshold", def.CompressThreshold)
	v.SetDefault("disable_compression", def.DisableCompression)
	v.SetDefault("ttl", def.TTL)

	v.SetEnvPrefix("BRCACHE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return s, nil
}

// NewCompressor resolves the named compressor with its tuning knobs.
func (s Settings) NewCompressor() (compress.Compressor, error) {
	switch s.Compressor {
	case "":
		return compress.Default(), nil
	case "brotli":
		br, err := compress.NewBrotli(s.BrotliQuality)
		if err != nil {
			return nil, err
		}
		return br, nil
	case "zstd":
		zc, err := compress.NewZstd(s.ZstdLevel)
		if err != nil {
			return nil, err
		}
		return zc, nil
	case "s2":
		return compress.S2{}, nil
	case "snappy":
		return compress.Snappy{}, nil
	case "gzip":
		gz, err := compress.NewGzip(s.GzipLevel)
		if err != nil {
			return nil, err
		}
		return gz, nil
	case "none":
		return compress.None{}, nil
	}
	return nil, fmt.Errorf("config: unknown compressor %q", s.Compressor)
}

// Apply copies the settings onto opts, resolving the compressor by name.
// Fields outside the Settings surface are left untouched.
func Apply[V any](s Settings, opts *brcache.Options[V]) error {
	comp, err := s.NewCompressor()
	if err != nil {
		return err
	}
	opts.Compressor = comp
	opts.Prefix = s.Prefix
	opts.DisablePrefix = s.DisablePrefix
	opts.CompressThreshold = s.CompressThreshold
	opts.DisableCompression = s.DisableCompression
	opts.TTL = s.TTL
	return nil
}
