package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty falls back to utc", input: "", expected: "UTC"},
		{name: "unknown falls back to utc", input: "Mars/Olympus_Mons", expected: "UTC"},
		{name: "iana name", input: "Asia/Jakarta", expected: "Asia/Jakarta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, load(tt.input).String())
		})
	}
}

func TestNow(t *testing.T) {
	now := Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, Location(), now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Minute)
}
