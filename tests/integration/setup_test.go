package integration

import (
	"os"
	"testing"

	"gorm.io/gorm"

	"github.com/dyondem/callsheet/tests/testutil"
)

// TestMain runs before all tests in this package
func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}

// setupTest starts a throwaway Postgres and returns a migrated connection.
// Requires a local Docker daemon; skipped under -short.
func setupTest(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	return testutil.SetupTestDB(t)
}
