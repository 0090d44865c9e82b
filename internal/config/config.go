package config

import (
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	LogLevel       string
	LogPath        string
	Port           string
	StorageBackend string
	PostgresDSN    string
	UsersFile      string
	Roster         []string
	ResetSchedule  string
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:            getEnv("APP_ENV", "development"),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			LogPath:        getEnv("LOG_PATH", ""),
			Port:           getEnv("PORT", "5000"),
			StorageBackend: getEnv("STORAGE_BACKEND", "file"),
			PostgresDSN:    getEnv("POSTGRES_DSN", ""),
			UsersFile:      getEnv("USERS_FILE", "data/users.json"),
			Roster:         splitRoster(getEnv("ROSTER", "Dominik,Samu")),
			ResetSchedule:  getEnv("RESET_SCHEDULE", "0 0 * * *"),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	if c.StorageBackend != "file" && c.StorageBackend != "postgres" {
		return errors.New("STORAGE_BACKEND must be one of: file, postgres")
	}
	if c.StorageBackend == "postgres" && c.PostgresDSN == "" {
		return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
	}
	if c.StorageBackend == "file" && c.UsersFile == "" {
		return errors.New("File storage requires USERS_FILE to be set")
	}
	if len(c.Roster) == 0 {
		return errors.New("ROSTER must name at least one participant")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitRoster(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
