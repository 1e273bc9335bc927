package providers

import (
	"fmt"
	"guildpreview/internal/structures"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const AppName = "GuildPreview"

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("webServer.host", "0.0.0.0")
	v.SetDefault("webServer.port", 8080)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("logger.dir", "")
	v.SetDefault("upstream.baseUrl", "https://discord.com/api/v9")
	v.SetDefault("upstream.timeout", "10s")
	v.SetDefault("upstream.userAgent", "guildpreview (+https://github.com/guildpreview/guildpreview)")
	v.SetDefault("upstream.rateLimit", 5)
	v.SetDefault("upstream.burst", 5)
	v.SetDefault("tree.danglingParent", "drop")
	v.SetDefault("throttle.enabled", false)
	v.SetDefault("throttle.size", 8)
	v.SetDefault("throttle.requests", 30)
	v.SetDefault("throttle.window", "1m")
	v.SetDefault("compression.enabled", true)
	v.SetDefault("metrics.enabled", true)
}

// NewConfigProvider reads the YAML file named by flags.ConfigPath, layered
// over built-in defaults and GUILDPREVIEW_* environment variables. An empty
// ConfigPath runs on defaults and environment only.
func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	setConfigDefaults(v)

	_ = v.BindEnv("webServer.host", "GUILDPREVIEW_HOST")
	_ = v.BindEnv("webServer.port", "GUILDPREVIEW_PORT")
	_ = v.BindEnv("logger.level", "GUILDPREVIEW_LOG_LEVEL")
	_ = v.BindEnv("logger.dir", "GUILDPREVIEW_LOG_DIR")
	_ = v.BindEnv("upstream.baseUrl", "GUILDPREVIEW_UPSTREAM_URL")
	_ = v.BindEnv("upstream.timeout", "GUILDPREVIEW_UPSTREAM_TIMEOUT")
	_ = v.BindEnv("tree.danglingParent", "GUILDPREVIEW_DANGLING_PARENT")
	_ = v.BindEnv("throttle.enabled", "GUILDPREVIEW_THROTTLE_ENABLED")
	_ = v.BindEnv("metrics.enabled", "GUILDPREVIEW_METRICS_ENABLED")

	if flags.ConfigPath != "" {
		filename := filepath.Base(flags.ConfigPath)
		v.AddConfigPath(filepath.Dir(flags.ConfigPath))
		v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	err := v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
