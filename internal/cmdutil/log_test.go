package cmdutil

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWarns(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(&buf, "warn", false)
	require.NoError(t, err)
	log.Warnf("index %d wraps", 47)
	log.Info("hidden")
	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), "index 47 wraps")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewLoggerQuiet(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(&buf, "debug", true)
	require.NoError(t, err)
	assert.Equal(t, logrus.ErrorLevel, log.GetLevel())
	log.Warn("dropped")
	assert.Empty(t, buf.String())
}

func TestNewLoggerBadLevel(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "loud", false)
	assert.ErrorContains(t, err, "invalid log level")
}
