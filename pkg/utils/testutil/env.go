package testutil

import (
	"os"
	"testing"
	"time"
)

// GetEnvOrSkip returns the value of the environment variable key. The test is
// skipped when it is not set, so cloud-backed tests run only where configured.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		t.Skipf("%s is not set", key)
	}
	return value
}

// Eventually polls cond every 5ms until it returns true and fails the test
// after timeout.
func Eventually(t testing.TB, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not satisfied within %s", timeout)
		}
		time.Sleep(5 * time.Millisecond)
	}
}
