package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWithAttachesFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(context.Background(), true, "debug")
	log.SetOutput(&buf)

	child := log.With(logrus.Fields{"request_id": "abc"})
	child.Info("hello", logrus.Fields{"chat": "primary"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "primary", entry["chat"])
}

func TestLoggerWithDoesNotLeakIntoParent(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(context.Background(), true, "info")
	log.SetOutput(&buf)

	_ = log.With(logrus.Fields{"request_id": "abc"})
	log.Info("parent")

	assert.NotContains(t, buf.String(), "request_id")
}

func TestLoggerFallsBackToInfoOnBadLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(context.Background(), true, "loud")
	log.SetOutput(&buf)

	log.Debug("hidden")
	log.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
