package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		expected    *Config
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://localhost:9000", "-t", "30", "-d", "state.db"},
			expected: &Config{
				BaseURL:        "http://localhost:9000",
				RequestTimeout: 30 * time.Second,
				DatabasePath:   "state.db",
			},
		},
		{
			name:        "non-numeric timeout",
			args:        []string{"cmd", "-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, config)
		})
	}
}

func TestStripArgs_RemovesOwnedFlagsOnly(t *testing.T) {
	args := []string{"-a", "http://localhost:9000", "-v", "-c", "cfg.json", "submit"}
	assert.Equal(t, []string{"submit"}, StripArgs(args))
}

func TestParseFlags_DefaultsSurvive(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd"}

	config := &Config{}
	config.LoadDefaults()
	parseFlags(config)

	assert.Equal(t, "https://hack-or-snooze-v3.herokuapp.com", config.BaseURL)
	assert.Equal(t, 10*time.Second, config.RequestTimeout)
	assert.Equal(t, "snooze.db", config.DatabasePath)
}
