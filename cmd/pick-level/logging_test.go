// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		verbose bool
		want    slog.Level
	}{
		{"default is warn", "", false, slog.LevelWarn},
		{"named level", "info", false, slog.LevelInfo},
		{"upper case", "ERROR", false, slog.LevelError},
		{"verbose overrides", "error", true, slog.LevelDebug},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := newLogger(&buf, tt.level, tt.verbose)
			require.NoError(t, err)
			assert.True(t, log.Enabled(context.Background(), tt.want))
			assert.False(t, log.Enabled(context.Background(), tt.want-1))
		})
	}
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, "loud", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}
