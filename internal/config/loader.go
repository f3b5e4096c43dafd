package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultEnvFile     = ".env"
	defaultMaxBodySize = 1 << 20
	minMaxBodySize     = 1 << 10
	maxMaxBodySize     = 64 << 20
)

type config struct {
	host     string
	httpPort string

	resourceRoot string
	usersFile    string

	readTimeout  time.Duration
	writeTimeout time.Duration
	maxBodySize  int64

	bcryptCost int
	serverName string

	logLevel string
	devMode  bool

	pprofEnabled bool
	pprofPort    string
}

func parse() (*config, error) {
	readTimeout, err := parseDuration("READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	writeTimeout, err := parseDuration("WRITE_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	bcryptCost, err := parseBcryptCost()
	if err != nil {
		return nil, err
	}

	logLevel := getenv("LOG_LEVEL", "info")
	if _, err = zapcore.ParseLevel(logLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL value: %w", err)
	}

	return &config{
		host:         getenv("HOST", "0.0.0.0"),
		httpPort:     getenv("HTTP_PORT", "8080"),
		resourceRoot: getenv("RESOURCE_ROOT", "resources"),
		usersFile:    getenv("USERS_FILE", ""),
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
		maxBodySize:  parseMaxBodySize(),
		bcryptCost:   bcryptCost,
		serverName:   getenv("SERVER_NAME", "was"),
		logLevel:     logLevel,
		devMode:      getenvBool("DEV_MODE", false),
		pprofEnabled: getenvBool("PPROF_ENABLED", false),
		pprofPort:    getenv("PPROF_PORT", "6060"),
	}, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		path = defaultEnvFile
	}
	if _, err := os.Stat(path); err == nil {
		return godotenv.Load(path)
	}
	return nil
}

func parseDuration(key string, def time.Duration) (time.Duration, error) {
	raw := getenv(key, "")
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s value: negative duration", key)
	}
	return d, nil
}

func parseMaxBodySize() int64 {
	raw := getenv("MAX_BODY_SIZE", strconv.Itoa(defaultMaxBodySize))
	size, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || size < minMaxBodySize || size > maxMaxBodySize {
		zap.S().Warnf("Invalid MAX_BODY_SIZE, falling back to %d", defaultMaxBodySize)
		return defaultMaxBodySize
	}
	return size
}

func parseBcryptCost() (int, error) {
	raw := getenv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost))
	cost, err := strconv.Atoi(raw)
	if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return 0, fmt.Errorf("invalid BCRYPT_COST value %q: must be between %d and %d", raw, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return cost, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}
