package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	BackendHTTP    = "http"
	BackendWhisper = "whisper"
)

type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Scratch  ScratchConfig  `mapstructure:"scratch"`
	Audio    AudioConfig    `mapstructure:"audio"`
	STT      STTConfig      `mapstructure:"stt"`
	Commands CommandsConfig `mapstructure:"commands"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type HTTPConfig struct {
	Port           int   `mapstructure:"port"`
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes"`
}

type ScratchConfig struct {
	Dir string `mapstructure:"dir"`
}

type AudioConfig struct {
	SourceFormat string  `mapstructure:"source_format"`
	SampleRate   int     `mapstructure:"sample_rate"`
	Channels     int     `mapstructure:"channels"`
	GainDB       float64 `mapstructure:"gain_db"`
	FFmpegPath   string  `mapstructure:"ffmpeg_path"`
}

type STTConfig struct {
	Backend   string `mapstructure:"backend"`
	URL       string `mapstructure:"url"`
	Model     string `mapstructure:"model"`
	APIKey    string `mapstructure:"api_key"`
	ModelPath string `mapstructure:"model_path"`
	Language  string `mapstructure:"language"`
}

type CommandsConfig struct {
	File string `mapstructure:"file"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", 5000)
	v.SetDefault("http.max_upload_bytes", 32<<20)

	v.SetDefault("scratch.dir", "temp_audio")

	v.SetDefault("audio.source_format", "webm")
	v.SetDefault("audio.sample_rate", 16000)
	v.SetDefault("audio.channels", 1)
	v.SetDefault("audio.gain_db", 10.0)
	v.SetDefault("audio.ffmpeg_path", "ffmpeg")

	v.SetDefault("stt.backend", BackendHTTP)
	v.SetDefault("stt.url", "http://127.0.0.1:8178/inference")
	v.SetDefault("stt.model", "base")
	v.SetDefault("stt.model_path", "models/ggml-base.bin")
	v.SetDefault("stt.language", "en")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.max_size_mb", 50)
	v.SetDefault("logging.max_backups", 3)
}

// Load reads config.yaml (or the explicit path) and the environment. A missing
// config file is fine; everything has a default.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
		v.AddConfigPath("/app/configs")
	}

	v.SetEnvPrefix("VOXBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// bare names for docker deploys
	_ = v.BindEnv("http.port", "PORT", "VOXBOARD_HTTP_PORT")
	_ = v.BindEnv("scratch.dir", "SCRATCH_DIR", "VOXBOARD_SCRATCH_DIR")
	_ = v.BindEnv("audio.ffmpeg_path", "FFMPEG_PATH", "VOXBOARD_AUDIO_FFMPEG_PATH")
	_ = v.BindEnv("stt.backend", "STT_BACKEND", "VOXBOARD_STT_BACKEND")
	_ = v.BindEnv("stt.url", "WHISPER_URL", "VOXBOARD_STT_URL")
	_ = v.BindEnv("stt.api_key", "WHISPER_API_KEY", "VOXBOARD_STT_API_KEY")
	_ = v.BindEnv("stt.model_path", "WHISPER_MODEL_PATH", "VOXBOARD_STT_MODEL_PATH")
	_ = v.BindEnv("commands.file", "COMMANDS_FILE", "VOXBOARD_COMMANDS_FILE")
	_ = v.BindEnv("logging.level", "LOG_LEVEL", "VOXBOARD_LOGGING_LEVEL")
	_ = v.BindEnv("logging.file", "LOG_FILE", "VOXBOARD_LOGGING_FILE")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http.port %d", c.HTTP.Port)
	}
	if c.HTTP.MaxUploadBytes <= 0 {
		return fmt.Errorf("http.max_upload_bytes must be positive")
	}
	if c.Scratch.Dir == "" {
		return fmt.Errorf("scratch.dir is empty")
	}
	if c.Audio.SourceFormat == "" {
		return fmt.Errorf("audio.source_format is empty")
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("invalid audio.sample_rate %d", c.Audio.SampleRate)
	}
	if c.Audio.Channels <= 0 {
		return fmt.Errorf("invalid audio.channels %d", c.Audio.Channels)
	}

	switch c.STT.Backend {
	case BackendHTTP:
		if c.STT.URL == "" {
			return fmt.Errorf("stt.url is required for the http backend")
		}
	case BackendWhisper:
		if c.STT.ModelPath == "" {
			return fmt.Errorf("stt.model_path is required for the whisper backend")
		}
	default:
		return fmt.Errorf("unknown stt.backend %q", c.STT.Backend)
	}
	return nil
}
