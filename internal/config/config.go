// Package config provides configuration loading and validation for the CLI, server and worker.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or environment overrides.
type Config struct {
	// Engine
	Vocabulary      string `json:"vocabulary,omitempty"`                                          // Path to a JSON array of skill terms
	Months          int    `json:"months,omitempty" validate:"omitempty,min=1,max=24"`            // Default roadmap length
	RankConcurrency int    `json:"rank_concurrency,omitempty" validate:"omitempty,min=1,max=64"` // Parallel comparisons per ranking

	// Logging
	LogFormat string `json:"log_format,omitempty" validate:"omitempty,oneof=text json"`
	LogLevel  string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`

	// HTTP server
	Port int `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`

	// Queue worker
	RabbitMQURL     string `json:"rabbitmq_url,omitempty" validate:"omitempty,url"`
	Queue           string `json:"queue,omitempty"`
	UpdatesExchange string `json:"updates_exchange,omitempty"`
	Workers         int    `json:"workers,omitempty" validate:"omitempty,min=1,max=64"`

	// Object storage (S3 or R2)
	S3Bucket    string `json:"s3_bucket,omitempty"`
	S3Endpoint  string `json:"s3_endpoint,omitempty" validate:"omitempty,url"`
	S3Region    string `json:"s3_region,omitempty"`
	S3AccessKey string `json:"s3_access_key,omitempty"`
	S3SecretKey string `json:"s3_secret_key,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Months:          3,
		RankConcurrency: 4,
		LogFormat:       "text",
		LogLevel:        "info",
		Port:            8080,
		Queue:           "match_jobs",
		UpdatesExchange: "match_updates",
		Workers:         3,
		S3Region:        "auto",
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Load reads the optional config file at path, applies environment overrides,
// fills defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Zero values are allowed; they are filled by MergeWithDefaults.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config error: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("'%s' must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("'%s' must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("'%s' must be one of [%s]", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("'%s' must be a valid URL", fe.Field())
	default:
		return fmt.Sprintf("'%s' failed '%s' check", fe.Field(), fe.Tag())
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	mergeString(&result.Vocabulary, defaults.Vocabulary)
	mergeString(&result.LogFormat, defaults.LogFormat)
	mergeString(&result.LogLevel, defaults.LogLevel)
	mergeString(&result.RabbitMQURL, defaults.RabbitMQURL)
	mergeString(&result.Queue, defaults.Queue)
	mergeString(&result.UpdatesExchange, defaults.UpdatesExchange)
	mergeString(&result.S3Bucket, defaults.S3Bucket)
	mergeString(&result.S3Endpoint, defaults.S3Endpoint)
	mergeString(&result.S3Region, defaults.S3Region)
	mergeString(&result.S3AccessKey, defaults.S3AccessKey)
	mergeString(&result.S3SecretKey, defaults.S3SecretKey)

	mergeInt(&result.Months, defaults.Months)
	mergeInt(&result.RankConcurrency, defaults.RankConcurrency)
	mergeInt(&result.Port, defaults.Port)
	mergeInt(&result.Workers, defaults.Workers)

	return result
}

func mergeString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

func mergeInt(dst *int, def int) {
	if *dst == 0 {
		*dst = def
	}
}

// ApplyEnv overrides fields from environment variables looked up with getenv.
// Unset variables leave the field untouched.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	strs := map[string]*string{
		"VOCABULARY_PATH":        &c.Vocabulary,
		"LOG_FORMAT":             &c.LogFormat,
		"LOG_LEVEL":              &c.LogLevel,
		"RABBITMQ_URL":           &c.RabbitMQURL,
		"MATCH_QUEUE":            &c.Queue,
		"MATCH_UPDATES_EXCHANGE": &c.UpdatesExchange,
		"S3_BUCKET":              &c.S3Bucket,
		"S3_ENDPOINT":            &c.S3Endpoint,
		"S3_REGION":              &c.S3Region,
		"S3_ACCESS_KEY":          &c.S3AccessKey,
		"S3_SECRET_KEY":          &c.S3SecretKey,
	}
	for key, dst := range strs {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"ROADMAP_MONTHS":   &c.Months,
		"RANK_CONCURRENCY": &c.RankConcurrency,
		"PORT":             &c.Port,
		"WORKER_COUNT":     &c.Workers,
	}
	for key, dst := range ints {
		v := getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: invalid %s: %v", key, err)
		}
		*dst = n
	}

	return nil
}
