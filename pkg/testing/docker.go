// Package testing starts the database containers used by storage tests.
package testing

import (
	"testing"

	"github.com/testcontainers/testcontainers-go"
)

// RequireDocker skips t in -short mode or when no container runtime is available.
func RequireDocker(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
}
