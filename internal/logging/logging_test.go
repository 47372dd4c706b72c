package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookshelf-cli/bookshelf/internal/config"
	"github.com/bookshelf-cli/bookshelf/internal/logging"
)

func Test_New_NoLogFile_IsSilent(t *testing.T) {
	log, err := logging.New(config.Config{})
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Infow("dropped", "key", "value") // must not panic or print
}

func Test_New_InvalidLevel(t *testing.T) {
	_, err := logging.New(config.Config{LogFile: "x.log", LogLevel: "shouting"})
	assert.Error(t, err)
}

func Test_New_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookshelf.log")
	log, err := logging.New(config.Config{LogFile: path, LogLevel: "info"})
	require.NoError(t, err)

	log.Infow("library loaded", "books", 3)
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "library loaded")
}
