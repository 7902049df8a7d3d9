package providers

import (
	"insightd/internal/structures"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggerConfig(t *testing.T, level string) *structures.Config {
	t.Helper()
	conf := &structures.Config{}
	conf.Logger.Level = level
	conf.Logger.Mode = 0644
	conf.Logger.Dir = t.TempDir()
	return conf
}

func TestLogProvider_WritesToTypedFiles(t *testing.T) {
	conf := loggerConfig(t, "debug")
	logger, err := NewLogProvider(conf)
	require.NoError(t, err)
	defer logger.Close()

	logger.Infof(TypeApp, "app message %d", 1)
	logger.Warnf(TypeGet, "get message")
	logger.Errorf(TypePost, "post message")

	appLog, err := os.ReadFile(filepath.Join(conf.Logger.Dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(appLog), "app message 1")

	getLog, err := os.ReadFile(filepath.Join(conf.Logger.Dir, "get.log"))
	require.NoError(t, err)
	assert.Contains(t, string(getLog), "get message")
	assert.NotContains(t, string(getLog), "app message")

	postLog, err := os.ReadFile(filepath.Join(conf.Logger.Dir, "post.log"))
	require.NoError(t, err)
	assert.Contains(t, string(postLog), "post message")
}

func TestLogProvider_LevelFilters(t *testing.T) {
	conf := loggerConfig(t, "error")
	logger, err := NewLogProvider(conf)
	require.NoError(t, err)
	defer logger.Close()

	logger.Debugf(TypeApp, "too quiet")
	logger.Errorf(TypeApp, "loud enough")

	appLog, err := os.ReadFile(filepath.Join(conf.Logger.Dir, "app.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(appLog), "too quiet")
	assert.Contains(t, string(appLog), "loud enough")
}

func TestLogProvider_InvalidLevel(t *testing.T) {
	_, err := NewLogProvider(loggerConfig(t, "shouting"))
	assert.Error(t, err)
}

func TestLogProvider_UnwritableDir(t *testing.T) {
	conf := loggerConfig(t, "info")
	conf.Logger.Dir = filepath.Join(conf.Logger.Dir, "does", "not", "exist")
	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}

func TestGetLogTypeByRequestType(t *testing.T) {
	assert.Equal(t, TypePost, GetLogTypeByRequestType(http.MethodPost))
	assert.Equal(t, TypeGet, GetLogTypeByRequestType(http.MethodGet))
	assert.Equal(t, TypeGet, GetLogTypeByRequestType(http.MethodDelete))
}
