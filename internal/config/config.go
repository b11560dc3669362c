package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration. Values are read from a
// YAML file and can be overridden by environment variables.
//
// cleanenv applies env-default to every zero-valued field, so boolean
// settings are phrased so that false is the default.
type Config struct {
	// Environment selects logger defaults (development, production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// Scanner contains the scan controller settings.
	Scanner struct {
		// Continuous reports every accepted detection instead of one code per scanning activation
		Continuous bool `env:"SCANNER_CONTINUOUS" env-default:"false" yaml:"continuous"`
		// SettleDelay is the pause after a capture before scanning resumes; negative disables re-arm
		SettleDelay time.Duration `env:"SCANNER_SETTLE_DELAY" env-default:"500ms" yaml:"settleDelay"`
		// ErrorDisplayDelay is how long the not-found state is shown; negative disables re-arm
		ErrorDisplayDelay time.Duration `env:"SCANNER_ERROR_DISPLAY_DELAY" env-default:"2s" yaml:"errorDisplayDelay"`
		// Symbologies lists the accepted code formats; empty means the default set
		Symbologies []string `env:"SCANNER_SYMBOLOGIES" env-separator:"," yaml:"symbologies"`
		// Device is the capture input to configure
		Device string `env:"SCANNER_DEVICE" env-default:"default" yaml:"device"`
		// TorchMode is the initial torch mode (OFF, ON, AUTO)
		TorchMode string `env:"SCANNER_TORCH_MODE" env-default:"OFF" yaml:"torchMode"`
		// FrameQueueSize bounds the frames waiting for the controller
		FrameQueueSize int `env:"SCANNER_FRAME_QUEUE_SIZE" env-default:"16" yaml:"frameQueueSize"`
	} `yaml:"scanner"`

	// Replay configures the file-driven capture backend used by the CLI.
	Replay struct {
		// Authorization is the simulated camera permission (AUTHORIZED, DENIED, NOT_DETERMINED, RESTRICTED)
		Authorization string `env:"REPLAY_AUTHORIZATION" env-default:"AUTHORIZED" yaml:"authorization"`
		// DenyRequest refuses access when it is requested
		DenyRequest bool `env:"REPLAY_DENY_REQUEST" env-default:"false" yaml:"denyRequest"`
		// Devices lists the devices that can be configured; empty accepts any
		Devices []string `env:"REPLAY_DEVICES" env-separator:"," yaml:"devices"`
		// FrameInterval is the pause between delivered frames
		FrameInterval time.Duration `env:"REPLAY_FRAME_INTERVAL" env-default:"100ms" yaml:"frameInterval"`
	} `yaml:"replay"`

	// HTTP contains the debug and metrics server settings.
	HTTP struct {
		// Disabled turns the HTTP server off
		Disabled bool `env:"HTTP_DISABLED" env-default:"false" yaml:"disabled"`
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSOrigins lists the origins allowed to call the debug API; empty allows any
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" env-separator:"," yaml:"corsOrigins"`
	} `yaml:"http"`

	// Database contains the capture journal database settings.
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"codescanner" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"4" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"2" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Journal controls persistence of captured codes.
	Journal struct {
		// Enabled turns the capture journal on; it requires the database
		Enabled bool `env:"JOURNAL_ENABLED" env-default:"false" yaml:"enabled"`
		// BufferSize is the number of captures waiting to be written before new ones are dropped
		BufferSize int `env:"JOURNAL_BUFFER_SIZE" env-default:"256" yaml:"bufferSize"`
		// BatchSize is the maximum number of captures written in one transaction
		BatchSize int `env:"JOURNAL_BATCH_SIZE" env-default:"32" yaml:"batchSize"`
		// FlushInterval is the maximum time a capture waits in the buffer
		FlushInterval time.Duration `env:"JOURNAL_FLUSH_INTERVAL" env-default:"1s" yaml:"flushInterval"`
		// Retention removes captures older than this on every flush; zero keeps everything
		Retention time.Duration `env:"JOURNAL_RETENTION" env-default:"0" yaml:"retention"`
	} `yaml:"journal"`

	// GracefulShutdownTimeout is the maximum duration to wait for the scanner and servers to stop
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// LoadEnv fills a Config from defaults and environment variables only.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}

	return &cfg, nil
}
