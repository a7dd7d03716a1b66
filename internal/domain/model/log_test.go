package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_WithField(t *testing.T) {
	tests := []struct {
		name  string
		entry *LogEntry
	}{
		{name: "nil fields map", entry: &LogEntry{}},
		{name: "existing fields map", entry: &LogEntry{Fields: map[string]interface{}{"existing": 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.entry.WithField("groups", 2)
			assert.Same(t, tt.entry, result)
			assert.Equal(t, 2, result.Fields["groups"])
		})
	}
}

func TestLogEntry_WithFields(t *testing.T) {
	entry := &LogEntry{Fields: map[string]interface{}{"unit": "case"}}

	entry.WithFields(map[string]interface{}{
		"unit":       "piece",
		"line_count": 4,
	})

	assert.Equal(t, "piece", entry.Fields["unit"])
	assert.Equal(t, 4, entry.Fields["line_count"])

	var empty LogEntry
	empty.WithFields(nil)
	assert.NotNil(t, empty.Fields)
	assert.Empty(t, empty.Fields)
}
