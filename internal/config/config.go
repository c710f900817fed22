package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"fushigi/internal/logger"
)

// Config holds process-level settings. User choices such as the asset root
// live in the settings store, not here.
type Config struct {
	LogLevel     logger.LogLevel
	JSONLogs     bool
	SettingsPath string
	FrameRate    int
	NoticeFrames int
}

// FrameInterval is the render tick derived from FrameRate.
func (c Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FrameRate)
}

// Load reads configuration from an optional file and env. Env var overrides
// use prefix FUSHIGI_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("json_logs", false)
	v.SetDefault("settings_path", defaultSettingsPath())
	v.SetDefault("frame_rate", 60)
	v.SetDefault("notice_frames", 240)

	v.SetEnvPrefix("FUSHIGI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath := os.Getenv("FUSHIGI_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	c := Config{
		LogLevel:     logger.ParseLevel(v.GetString("log_level")),
		JSONLogs:     v.GetBool("json_logs"),
		SettingsPath: v.GetString("settings_path"),
		FrameRate:    v.GetInt("frame_rate"),
		NoticeFrames: v.GetInt("notice_frames"),
	}
	if c.FrameRate <= 0 {
		return Config{}, fmt.Errorf("frame_rate must be positive, got %d", c.FrameRate)
	}
	if c.NoticeFrames < 0 {
		c.NoticeFrames = 0
	}
	return c, nil
}

func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "fushigi", "settings.json")
}
