package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables read as startup options
const EnvPrefix = "YTCLIP"

// Option keys
const (
	OptLogLevel  = "log_level"
	OptLogFormat = "log_format"
	OptYtDlp     = "ytdlp"
	OptOutputDir = "output_dir"
)

// Option defaults
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Options are the startup options shared by the GUI and the CLI.
// Precedence is flag, then environment, then config file, then default.
type Options struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	YtDlpPath string `mapstructure:"ytdlp"`
	OutputDir string `mapstructure:"output_dir"`
}

// NewViper returns a viper instance with defaults and environment binding set
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(OptLogLevel, DefaultLogLevel)
	v.SetDefault(OptLogFormat, DefaultLogFormat)
	v.SetDefault(OptYtDlp, "")
	v.SetDefault(OptOutputDir, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// LoadOptions reads the optional config file at path into v and returns the
// resolved options. Flags must already be bound to v.
func LoadOptions(v *viper.Viper, path string) (*Options, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return nil, fmt.Errorf("failed to decode options: %w", err)
	}

	opts.LogLevel = strings.ToLower(strings.TrimSpace(opts.LogLevel))
	opts.LogFormat = strings.ToLower(strings.TrimSpace(opts.LogFormat))
	opts.YtDlpPath = strings.TrimSpace(opts.YtDlpPath)
	opts.OutputDir = strings.TrimSpace(opts.OutputDir)

	return &opts, nil
}

// ApplyTo copies options that were set onto the persistent GUI settings
func (o *Options) ApplyTo(s *Settings) {
	if o.YtDlpPath != "" {
		s.SetYtDlpPath(o.YtDlpPath)
	}
	if o.OutputDir != "" {
		s.SetDownloadDirectory(o.OutputDir)
	}
}
