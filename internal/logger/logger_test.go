// internal/logger/logger_test.go
package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvogue/anvogue-admin/internal/config"
)

func TestNamedLoggersAreShared(t *testing.T) {
	require.NoError(t, Init(&config.LogConfig{Level: "debug", Format: "json", Output: "stdout"}))

	assert.Same(t, GetLogger("backend"), GetLogger("backend"))
	assert.NotSame(t, GetLogger("backend"), GetAppLogger())
	assert.Equal(t, logrus.DebugLevel, GetAppLogger().GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, GetAppLogger().Formatter)
}

func TestFileOutputCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, Init(&config.LogConfig{Level: "nope", Output: "file", Path: dir, MaxSize: 1}))

	l := GetLogger("http")
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	l.Info("hello")

	_, err := os.Stat(filepath.Join(dir, "http.log"))
	assert.NoError(t, err)
	require.NoError(t, Init(nil))
}
