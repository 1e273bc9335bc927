package structures

import "time"

type Server struct {
	Host string `mapstructure:"host" yaml:"host" validate:"required"`
	Port int    `mapstructure:"port" yaml:"port" validate:"required|uint|min:1|max:65535"`
}

type LoggerConfig struct {
	Level string `mapstructure:"level" yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `mapstructure:"mode" yaml:"mode" validate:"required|uint"`
	// Empty Dir sends every log channel to stderr.
	Dir string `mapstructure:"dir" yaml:"dir" validate:"unixPath"`
}

type UpstreamConfig struct {
	BaseUrl   string        `mapstructure:"baseUrl" yaml:"baseUrl" validate:"required"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"min:0"`
	UserAgent string        `mapstructure:"userAgent" yaml:"userAgent"`
	RateLimit float64       `mapstructure:"rateLimit" yaml:"rateLimit" validate:"min:0"`
	Burst     int           `mapstructure:"burst" yaml:"burst" validate:"min:0"`
}

type TreeConfig struct {
	DanglingParent string `mapstructure:"danglingParent" yaml:"danglingParent" validate:"required|in:drop,promote"`
}

type ThrottleConfig struct {
	Enabled  bool          `mapstructure:"enabled" yaml:"enabled"`
	Size     int           `mapstructure:"size" yaml:"size" validate:"min:0"`
	Requests int           `mapstructure:"requests" yaml:"requests" validate:"min:0"`
	Window   time.Duration `mapstructure:"window" yaml:"window" validate:"min:0"`
}

type CompressionConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server            `mapstructure:"webServer" yaml:"webServer"`
	Logger      LoggerConfig      `mapstructure:"logger" yaml:"logger"`
	Upstream    UpstreamConfig    `mapstructure:"upstream" yaml:"upstream"`
	Tree        TreeConfig        `mapstructure:"tree" yaml:"tree"`
	Throttle    ThrottleConfig    `mapstructure:"throttle" yaml:"throttle"`
	Compression CompressionConfig `mapstructure:"compression" yaml:"compression"`
	Metrics     MetricsConfig     `mapstructure:"metrics" yaml:"metrics"`
}
