package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarEmpty error = errors.New("environment variable is empty")

const (
	portEnvKey          = "PORT"
	dbConnEnvKey        = "DB_URL"
	redisURLEnvKey      = "REDIS_URL"
	storeSecretEnvKey   = "SECRET"
	sessionSecretEnvKey = "SESSION_SECRET"
	nodeEnvKey          = "NODE_ENV"
	appEnvKey           = "APP_ENV"
)

const (
	defaultPort     = "3000"
	defaultRedisURL = "redis://localhost:6379/0"
	production      = "production"
)

type App struct {
	Port            string
	DBConnectionURL string
	RedisURL        string
	StoreSecret     string
	SessionSecret   string
	Production      bool
}

// LoadDotEnv reads a .env file into the process environment unless the app runs in production.
// A missing file is not an error.
func LoadDotEnv(filenames ...string) error {
	if environment() == production {
		return nil
	}

	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	existing := make([]string, 0, len(filenames))
	for _, f := range filenames {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}

	return nil
}

func NewApp() (App, error) {
	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	storeSecret, err := lookupSecret(storeSecretEnvKey)
	if err != nil {
		return App{}, err
	}

	sessionSecret, err := lookupSecret(sessionSecretEnvKey)
	if err != nil {
		return App{}, err
	}

	return App{
		Port:            lookupOr(portEnvKey, defaultPort),
		DBConnectionURL: dbConn,
		RedisURL:        lookupOr(redisURLEnvKey, defaultRedisURL),
		StoreSecret:     storeSecret,
		SessionSecret:   sessionSecret,
		Production:      environment() == production,
	}, nil
}

func environment() string {
	if env := os.Getenv(nodeEnvKey); env != "" {
		return env
	}
	return os.Getenv(appEnvKey)
}

// lookupSecret requires key to be set to a non-empty value.
func lookupSecret(key string) (string, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", errEnvVarNotFound, key)
	}
	if value == "" {
		return "", fmt.Errorf("%w: %s", errEnvVarEmpty, key)
	}
	return value, nil
}

func lookupOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
