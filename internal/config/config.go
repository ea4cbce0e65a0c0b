package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel   string           `mapstructure:"log_level"`
	Server     ServerConfig     `mapstructure:"server"`
	TTS        TTSConfig        `mapstructure:"tts"`
	Preprocess PreprocessConfig `mapstructure:"preprocess"`
}

type ServerConfig struct {
	ListenAddr      string `mapstructure:"listen_addr"`
	Workers         int    `mapstructure:"workers"`
	MaxTextBytes    int    `mapstructure:"max_text_bytes"`
	RequestTimeout  int    `mapstructure:"request_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

type TTSConfig struct {
	Engine       string `mapstructure:"engine"`
	Voice        string `mapstructure:"voice"`
	Language     string `mapstructure:"language"`
	CLIPath      string `mapstructure:"cli_path"`
	BaseURL      string `mapstructure:"base_url"`
	ManifestPath string `mapstructure:"manifest_path"`
	Concurrency  int    `mapstructure:"concurrency"`
	Quiet        bool   `mapstructure:"quiet"`
}

// PreprocessConfig mirrors the two pipeline switches: both default to on,
// matching the behavior expected by the synthesis engines.
type PreprocessConfig struct {
	ExpandNumbers  bool `mapstructure:"expand_numbers"`
	ExpandMaiYamok bool `mapstructure:"expand_mai_yamok"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Server: ServerConfig{
			ListenAddr:      ":8080",
			Workers:         2,
			MaxTextBytes:    4096,
			RequestTimeout:  60,
			ShutdownTimeout: 30,
		},
		TTS: TTSConfig{
			Engine:       EngineLunarlistONNX,
			Voice:        "",
			Language:     "th-th",
			CLIPath:      "",
			BaseURL:      "",
			ManifestPath: "",
			Concurrency:  1,
			Quiet:        true,
		},
		Preprocess: PreprocessConfig{
			ExpandNumbers:  true,
			ExpandMaiYamok: true,
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("server-workers", defaults.Server.Workers, "Max concurrent synthesis requests")
	fs.Int("server-max-text-bytes", defaults.Server.MaxTextBytes, "Maximum text length accepted by POST /tts")
	fs.Int("server-request-timeout", defaults.Server.RequestTimeout, "Per-request synthesis deadline in seconds")
	fs.Int("server-shutdown-timeout", defaults.Server.ShutdownTimeout, "Graceful shutdown drain period in seconds")
	fs.String("tts-engine", defaults.TTS.Engine, "Synthesis engine (lunarlist-onnx|khanomtan|lunarlist|vachana)")
	fs.String("tts-voice", defaults.TTS.Voice, "Voice ID (empty uses the engine default)")
	fs.String("tts-language", defaults.TTS.Language, "Language selector passed to the engine")
	fs.String("tts-cli-path", defaults.TTS.CLIPath, "Path to the engine executable")
	fs.String("tts-base-url", defaults.TTS.BaseURL, "Base URL of an engine HTTP server (overrides the CLI engine)")
	fs.String("tts-manifest-path", defaults.TTS.ManifestPath, "Path to an optional voices/manifest.json override")
	fs.Int("tts-concurrency", defaults.TTS.Concurrency, "Max concurrent engine subprocesses")
	fs.Bool("tts-quiet", defaults.TTS.Quiet, "Pass --quiet to the engine executable")
	fs.Bool("preprocess-expand-numbers", defaults.Preprocess.ExpandNumbers, "Convert numerals to Thai words before synthesis")
	fs.Bool("preprocess-expand-mai-yamok", defaults.Preprocess.ExpandMaiYamok, "Expand the repetition mark before synthesis")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("THAITTS")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("thaitts")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.workers", c.Server.Workers)
	v.SetDefault("server.max_text_bytes", c.Server.MaxTextBytes)
	v.SetDefault("server.request_timeout", c.Server.RequestTimeout)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)
	v.SetDefault("tts.engine", c.TTS.Engine)
	v.SetDefault("tts.voice", c.TTS.Voice)
	v.SetDefault("tts.language", c.TTS.Language)
	v.SetDefault("tts.cli_path", c.TTS.CLIPath)
	v.SetDefault("tts.base_url", c.TTS.BaseURL)
	v.SetDefault("tts.manifest_path", c.TTS.ManifestPath)
	v.SetDefault("tts.concurrency", c.TTS.Concurrency)
	v.SetDefault("tts.quiet", c.TTS.Quiet)
	v.SetDefault("preprocess.expand_numbers", c.Preprocess.ExpandNumbers)
	v.SetDefault("preprocess.expand_mai_yamok", c.Preprocess.ExpandMaiYamok)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("log_level", "log-level")
	v.RegisterAlias("server.listen_addr", "server-listen-addr")
	v.RegisterAlias("server.workers", "server-workers")
	v.RegisterAlias("server.max_text_bytes", "server-max-text-bytes")
	v.RegisterAlias("server.request_timeout", "server-request-timeout")
	v.RegisterAlias("server.shutdown_timeout", "server-shutdown-timeout")
	v.RegisterAlias("tts.engine", "tts-engine")
	v.RegisterAlias("tts.voice", "tts-voice")
	v.RegisterAlias("tts.language", "tts-language")
	v.RegisterAlias("tts.cli_path", "tts-cli-path")
	v.RegisterAlias("tts.base_url", "tts-base-url")
	v.RegisterAlias("tts.manifest_path", "tts-manifest-path")
	v.RegisterAlias("tts.concurrency", "tts-concurrency")
	v.RegisterAlias("tts.quiet", "tts-quiet")
	v.RegisterAlias("preprocess.expand_numbers", "preprocess-expand-numbers")
	v.RegisterAlias("preprocess.expand_mai_yamok", "preprocess-expand-mai-yamok")
}
