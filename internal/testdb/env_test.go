package testdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearCI(t *testing.T) {
	t.Helper()
	for _, name := range ciVars {
		t.Setenv(name, "")
	}
}

func TestIsCI(t *testing.T) {
	clearCI(t)
	assert.False(t, IsCI())

	t.Setenv("GITHUB_ACTIONS", "true")
	assert.True(t, IsCI())
}

func TestDatabaseURL(t *testing.T) {
	tests := []struct {
		name     string
		testURL  string
		appURL   string
		expected string
	}{
		{"test url wins", "postgres://t@db/test", "postgres://a@db/app", "postgres://t@db/test"},
		{"falls back to app url", "", "postgres://a@db/app", "postgres://a@db/app"},
		{"nothing set", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvTestDatabaseURL, tt.testURL)
			t.Setenv(EnvDatabaseURL, tt.appURL)
			assert.Equal(t, tt.expected, DatabaseURL(nil))
		})
	}
}

func TestOpen_SkipsWithoutURL(t *testing.T) {
	clearCI(t)
	t.Setenv(EnvTestDatabaseURL, "")
	t.Setenv(EnvDatabaseURL, "")

	skipped := true
	t.Run("open", func(t *testing.T) {
		Open(t)
		skipped = false
	})
	assert.True(t, skipped)
}
