package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Defaults; each can be overridden by environment or a .env file.
const (
	defaultFile  = "library.txt"
	defaultTheme = "classic"
	defaultLevel = "info"
)

// Config bundles the few knobs the tool has. The data file is a fixed
// relative name by default and is never set from flags.
type Config struct {
	File     string // backing file path
	Theme    string // classic | neon | mono
	LogFile  string // empty disables logging entirely
	LogLevel string
}

// Load reads a .env file if one exists, then the environment, falling
// back to defaults.
func Load() Config {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	return Config{
		File:     getenv("BOOKSHELF_FILE", defaultFile),
		Theme:    getenv("BOOKSHELF_THEME", defaultTheme),
		LogFile:  getenv("BOOKSHELF_LOG", ""),
		LogLevel: getenv("BOOKSHELF_LOG_LEVEL", defaultLevel),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
