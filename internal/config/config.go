package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/logx"
	"github.com/Abraxas-365/hirematch/recruitment/recommendation"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. HIREMATCH_SERVER_PORT
const EnvPrefix = "HIREMATCH"

var validate = validator.New()

// Config holds all application configuration. Precedence, highest first:
// environment variables, config file, defaults.
type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Redis          RedisConfig          `mapstructure:"redis"`
	Storage        StorageConfig        `mapstructure:"storage"`
	Auth           AuthConfig           `mapstructure:"auth"`
	Parser         ParserConfig         `mapstructure:"parser"`
	Recommendation RecommendationConfig `mapstructure:"recommendation"`
	Worker         WorkerConfig         `mapstructure:"worker"`
	Log            LogConfig            `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	BodyLimit       int           `mapstructure:"body_limit" validate:"gt=0"`
	AllowOrigins    string        `mapstructure:"allow_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr is the listen address
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn" validate:"required"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr" validate:"required"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
}

// Storage drivers
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

type StorageConfig struct {
	Driver string   `mapstructure:"driver" validate:"oneof=local s3"`
	Local  LocalFS  `mapstructure:"local"`
	S3     S3Config `mapstructure:"s3"`
}

type LocalFS struct {
	Root string `mapstructure:"root"`
}

type S3Config struct {
	Bucket string `mapstructure:"bucket"`
	Region string `mapstructure:"region"`
	Prefix string `mapstructure:"prefix"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	Issuer    string        `mapstructure:"issuer" validate:"required"`
	TokenTTL  time.Duration `mapstructure:"token_ttl" validate:"gt=0"`
}

type ParserConfig struct {
	Mode         string `mapstructure:"mode" validate:"oneof=standard basic"`
	PDFBackend   string `mapstructure:"pdf_backend" validate:"oneof=fitz pure"`
	TaxonomyPath string `mapstructure:"taxonomy_path"`
	MaxFileSize  int64  `mapstructure:"max_file_size" validate:"gt=0"`
}

type RecommendationConfig struct {
	SkillWeight      float64 `mapstructure:"skill_weight"`
	ExperienceWeight float64 `mapstructure:"experience_weight"`
	FreshnessWeight  float64 `mapstructure:"freshness_weight"`
	LocationWeight   float64 `mapstructure:"location_weight"`
	Threshold        float64 `mapstructure:"threshold"`
	DefaultLimit     int     `mapstructure:"default_limit" validate:"gte=1"`
	MaxLimit         int     `mapstructure:"max_limit" validate:"gtefield=DefaultLimit"`
}

// Weights converts the configured values into scoring weights. Their
// consistency is checked by the scoring engine.
func (r RecommendationConfig) Weights() recommendation.Weights {
	return recommendation.Weights{
		Skill:      r.SkillWeight,
		Experience: r.ExperienceWeight,
		Freshness:  r.FreshnessWeight,
		Location:   r.LocationWeight,
		Threshold:  r.Threshold,
	}
}

type WorkerConfig struct {
	Count       int           `mapstructure:"count" validate:"gte=1"`
	Queue       string        `mapstructure:"queue" validate:"required"`
	TaskPrefix  string        `mapstructure:"task_prefix" validate:"required"`
	TaskTTL     time.Duration `mapstructure:"task_ttl" validate:"gt=0"`
	TaskTimeout time.Duration `mapstructure:"task_timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// Logx returns the logger configuration
func (l LogConfig) Logx() logx.Config {
	return logx.Config{Level: logx.Level(l.Level), JSON: l.JSON}
}

// Load reads configuration from defaults, an optional file and the
// environment. A .env file in the working directory is loaded first when
// present.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("hirematch")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct constraints and the storage driver's required fields
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	switch c.Storage.Driver {
	case StorageLocal:
		if c.Storage.Local.Root == "" {
			return errors.New("invalid config: storage.local.root is required for the local driver")
		}
	case StorageS3:
		if c.Storage.S3.Bucket == "" || c.Storage.S3.Region == "" {
			return errors.New("invalid config: storage.s3.bucket and storage.s3.region are required for the s3 driver")
		}
	}
	return nil
}
