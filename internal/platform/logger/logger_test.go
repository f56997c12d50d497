package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", Debug},
		{" INFO ", Info},
		{"", Info},
		{"warning", Warn},
		{"error", Error},
		{"nope", Info},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "ParseLevel(%q)", tt.in)
	}
}

func TestNew_JSONIncludesBaseAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "petdesk", Output: &buf})

	log.With(map[string]any{"component": "form"}).Warn("submit failed", map[string]any{
		"pet_id": 7,
		"err":    errors.New("boom"),
		"":       "dropped",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "submit failed", entry["message"])
	assert.Equal(t, "petdesk", entry["app"])
	assert.Equal(t, "form", entry["component"])
	assert.Equal(t, float64(7), entry["pet_id"])
	assert.Equal(t, "boom", entry["err"])
	assert.NotContains(t, entry, "")
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Format: FormatJSON, Output: &buf})

	log.Debug("hidden", nil)
	log.Info("hidden", nil)
	assert.Zero(t, buf.Len())

	log.Error("shown", nil)
	assert.True(t, strings.Contains(buf.String(), "shown"))
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop().With(map[string]any{"a": 1})
	l.Info("x", map[string]any{"b": 2})
}
