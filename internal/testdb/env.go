package testdb

import (
	"log/slog"
	"os"

	"github.com/phrazzld/taskr-api/internal/redact"
)

// DatabaseURLEnvVars lists the variables consulted for the test database,
// in order of preference.
var DatabaseURLEnvVars = []string{"DATABASE_URL", "TASKR_TEST_DATABASE_URL"}

// RequireDBEnvVar turns a missing test database into a test failure instead
// of a skip. CI jobs that provision PostgreSQL set it.
const RequireDBEnvVar = "TASKR_REQUIRE_DB"

// GetEnvWithFallbacks returns the value of the first non-empty environment
// variable in envVars, or defaultValue when none is set. Using a fallback
// variable is logged with the value redacted.
func GetEnvWithFallbacks(envVars []string, defaultValue string, logger *slog.Logger) string {
	for i, envVar := range envVars {
		if val := os.Getenv(envVar); val != "" {
			if i > 0 && logger != nil {
				logger.Debug("using fallback environment variable",
					slog.String("used_var", envVar),
					slog.String("preferred_var", envVars[0]),
					slog.String("value", redact.String(val)))
			}
			return val
		}
	}
	return defaultValue
}
