package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// this is a pointer so that if someone attempts to use it before loading it will
// panic and force them to load it first.
// it is also private so that it cannot be modified after loading.
var _loaded *Config

// Config is the main configuration structure
type Config struct {
	Common Common `yaml:"common"`
}

// Load loads the configuration following proper precedence: defaults → config file → environment variables
func Load() {
	// Start with defaults
	_loaded = &defaultConfig

	// Try to load from config file and merge over defaults
	configFile := os.Getenv("CONCIERGE_CONFIG_FILE")
	if configFile == "" {
		configFile = "concierge.yaml"
	}

	if err := LoadFromFile(configFile); err != nil {
		log.Printf("Failed to load config file %s: %v, using defaults", configFile, err)
	}

	// Apply environment variable overrides (highest priority)
	ApplyEnvOverrides()
}

func LoadDefault() {
	config := defaultConfig
	_loaded = &config
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := defaultConfig

	// Merge YAML values over defaults
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	_loaded = &cfg
	return nil
}

// ApplyEnvOverrides applies environment variables over the loaded config.
// SMTP_*, FROM_EMAIL and OPENAI_API_KEY keep their unprefixed names so an
// existing deployment .env keeps working; everything else is CONCIERGE_*.
func ApplyEnvOverrides() {
	cfg := *_loaded

	if logLevel := os.Getenv("CONCIERGE_LOG_LEVEL"); logLevel != "" {
		cfg.Common.Log.Level = logLevel
	}
	if logFormat := os.Getenv("CONCIERGE_LOG_FORMAT"); logFormat != "" {
		cfg.Common.Log.Format = logFormat
	}

	if httpHost := os.Getenv("CONCIERGE_HTTP_HOST"); httpHost != "" {
		cfg.Common.Http.Host = httpHost
	}
	if httpPort := os.Getenv("SERVER_PORT"); httpPort != "" {
		if port, err := strconv.Atoi(httpPort); err == nil {
			cfg.Common.Http.Port = port
		}
	}

	if dbHost := os.Getenv("CONCIERGE_DB_HOST"); dbHost != "" {
		cfg.Common.Postgres.Host = dbHost
	}
	if dbPort := os.Getenv("CONCIERGE_DB_PORT"); dbPort != "" {
		if port, err := strconv.Atoi(dbPort); err == nil {
			cfg.Common.Postgres.Port = port
		}
	}
	if dbUser := os.Getenv("CONCIERGE_DB_USER"); dbUser != "" {
		cfg.Common.Postgres.User = dbUser
	}
	if dbPassword := os.Getenv("CONCIERGE_DB_PASSWORD"); dbPassword != "" {
		cfg.Common.Postgres.Password = dbPassword
	}
	if dbName := os.Getenv("CONCIERGE_DB_NAME"); dbName != "" {
		cfg.Common.Postgres.Database = dbName
	}

	if smtpHost := os.Getenv("SMTP_HOST"); smtpHost != "" {
		cfg.Common.Smtp.Host = smtpHost
	}
	if smtpPort := os.Getenv("SMTP_PORT"); smtpPort != "" {
		if port, err := strconv.Atoi(smtpPort); err == nil {
			cfg.Common.Smtp.Port = port
		}
	}
	if smtpUser := os.Getenv("SMTP_USER"); smtpUser != "" {
		cfg.Common.Smtp.User = smtpUser
	}
	if smtpPass := os.Getenv("SMTP_PASS"); smtpPass != "" {
		cfg.Common.Smtp.Password = smtpPass
	}
	if smtpSecure := os.Getenv("SMTP_SECURE"); smtpSecure != "" {
		if secure, err := strconv.ParseBool(smtpSecure); err == nil {
			cfg.Common.Smtp.Secure = secure
		}
	}
	if fromEmail := os.Getenv("FROM_EMAIL"); fromEmail != "" {
		cfg.Common.Smtp.FromEmail = fromEmail
	}

	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		cfg.Common.OpenAI.APIKey = apiKey
	}
	if model := os.Getenv("CONCIERGE_OPENAI_MODEL"); model != "" {
		cfg.Common.OpenAI.Model = model
	}

	if roomsURL := os.Getenv("CONCIERGE_ROOMS_URL"); roomsURL != "" {
		cfg.Common.Booking.RoomsURL = roomsURL
	}
	if bookingURL := os.Getenv("CONCIERGE_BOOKING_URL"); bookingURL != "" {
		cfg.Common.Booking.BookingURL = bookingURL
	}

	_loaded = &cfg
}

// Validate checks that the configuration required to boot is present
func (c *Config) Validate() error {
	if c.Common.Smtp.Host == "" {
		return fmt.Errorf("smtp host is required (SMTP_HOST)")
	}
	if c.Common.Smtp.Port == 0 {
		return fmt.Errorf("smtp port is required (SMTP_PORT)")
	}
	if c.Common.OpenAI.APIKey == "" {
		return fmt.Errorf("openai api key is required (OPENAI_API_KEY)")
	}
	if c.Common.Http.Port == 0 {
		return fmt.Errorf("http port is required (SERVER_PORT)")
	}
	return nil
}

// set sane defaults for all of the config options. when loading the config from
// the file, any options that are not set will be set to these defaults.
var defaultConfig = Config{
	Common: Common{
		Log: logConfig{
			Level:  "info",
			Format: "json",
		},
		Http: httpConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Postgres: postgresConfig{
			User:               "postgres",
			Password:           "postgres",
			Host:               "localhost",
			Port:               5432,
			Database:           "concierge",
			MaxOpenConnections: 10,
		},
		Smtp: smtpConfig{
			Secure:    false,
			FromEmail: "bookings@luxestay.example",
		},
		OpenAI: openAIConfig{
			Model: "gpt-3.5-turbo",
		},
		Booking: bookingConfig{
			RoomsURL:       "https://bot9assignement.deno.dev/rooms",
			BookingURL:     "https://bot9assignement.deno.dev/book",
			TimeoutSeconds: 30,
		},
	},
}

type Common struct {
	Log      logConfig      `yaml:"log"`
	Http     httpConfig     `yaml:"http"`
	Postgres postgresConfig `yaml:"postgres"`
	Smtp     smtpConfig     `yaml:"smtp"`
	OpenAI   openAIConfig   `yaml:"openai"`
	Booking  bookingConfig  `yaml:"booking"`
}

type logConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type httpConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type postgresConfig struct {
	User               string `yaml:"user"`
	Password           string `yaml:"password"`
	Host               string `yaml:"host"`
	Port               int    `yaml:"port"`
	Database           string `yaml:"database"`
	MaxOpenConnections int    `yaml:"max_open_connections"`
}

func (c postgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		url.QueryEscape(c.Database),
	)
}

type smtpConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	User      string `yaml:"user"`
	Password  string `yaml:"password"`
	Secure    bool   `yaml:"secure"`
	FromEmail string `yaml:"from_email"`
}

type openAIConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type bookingConfig struct {
	RoomsURL       string `yaml:"rooms_url"`
	BookingURL     string `yaml:"booking_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Get returns the loaded configuration
func Get() *Config {
	return _loaded
}

// Logger returns the log section of the loaded configuration
func Logger() logConfig {
	return _loaded.Common.Log
}

// Http returns the http section of the loaded configuration
func Http() httpConfig {
	return _loaded.Common.Http
}

// Postgres returns the postgres section of the loaded configuration
func Postgres() postgresConfig {
	return _loaded.Common.Postgres
}

// Smtp returns the smtp section of the loaded configuration
func Smtp() smtpConfig {
	return _loaded.Common.Smtp
}

// OpenAI returns the openai section of the loaded configuration
func OpenAI() openAIConfig {
	return _loaded.Common.OpenAI
}

// Booking returns the booking section of the loaded configuration
func Booking() bookingConfig {
	return _loaded.Common.Booking
}
