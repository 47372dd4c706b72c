package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookshelf-cli/bookshelf/internal/config"
)

func Test_Load_Defaults(t *testing.T) {
	t.Setenv("BOOKSHELF_FILE", "")
	t.Setenv("BOOKSHELF_THEME", "")
	t.Setenv("BOOKSHELF_LOG", "")
	t.Setenv("BOOKSHELF_LOG_LEVEL", "")

	cfg := config.Load()
	assert.Equal(t, "library.txt", cfg.File)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func Test_Load_EnvOverrides(t *testing.T) {
	t.Setenv("BOOKSHELF_FILE", "/tmp/books.txt")
	t.Setenv("BOOKSHELF_THEME", "mono")
	t.Setenv("BOOKSHELF_LOG", "bookshelf.log")
	t.Setenv("BOOKSHELF_LOG_LEVEL", "debug")

	cfg := config.Load()
	assert.Equal(t, "/tmp/books.txt", cfg.File)
	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, "bookshelf.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}
