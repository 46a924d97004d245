package testdb

import (
	"log/slog"
	"os"

	"github.com/phrazzld/crm-mobile-api/internal/redact"
)

// Environment variables consulted by the helpers.
const (
	EnvTestDatabaseURL = "CRM_TEST_DATABASE_URL"
	EnvDatabaseURL     = "CRM_DATABASE_URL"
)

var ciVars = []string{
	"CI",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"JENKINS_URL",
	"TRAVIS",
	"CIRCLECI",
}

// IsCI reports whether the tests run under a CI provider.
func IsCI() bool {
	for _, name := range ciVars {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// DatabaseURL returns the first non-empty database URL. The application
// URL is accepted as a fallback with a warning, since tests may write to it.
func DatabaseURL(logger *slog.Logger) string {
	if url := os.Getenv(EnvTestDatabaseURL); url != "" {
		return url
	}
	url := os.Getenv(EnvDatabaseURL)
	if url != "" && logger != nil {
		logger.Warn("using application database for tests",
			"used_var", EnvDatabaseURL,
			"preferred_var", EnvTestDatabaseURL,
			"url", redact.String(url))
	}
	return url
}
