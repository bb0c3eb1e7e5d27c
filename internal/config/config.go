package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "IMAGEUPLOAD"

// Config holds the optional overrides, read from IMAGEUPLOAD_* environment
// variables. The zero-override defaults talk to the local files API.
type Config struct {
	Endpoint      string        `mapstructure:"ENDPOINT"`
	Timeout       time.Duration `mapstructure:"TIMEOUT"` // e.g. "30s"; 0 means no timeout
	LogLevel      string        `mapstructure:"LOG_LEVEL"`
	ArchiveBucket string        `mapstructure:"ARCHIVE_BUCKET"` // empty disables the S3 mirror
	ArchivePrefix string        `mapstructure:"ARCHIVE_PREFIX"`
}

func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ENDPOINT", "http://0.0.0.0:5000/files")
	v.SetDefault("TIMEOUT", time.Duration(0))
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ARCHIVE_BUCKET", "")
	v.SetDefault("ARCHIVE_PREFIX", "uploads/")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// A bare integer would decode as nanoseconds.
	if n, err := strconv.Atoi(strings.TrimSpace(v.GetString("TIMEOUT"))); err == nil && n != 0 {
		return Config{}, fmt.Errorf("timeout %d has no unit, use a duration such as %ds", n, n)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
