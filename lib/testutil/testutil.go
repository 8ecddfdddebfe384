package testutil

import (
	"fmt"
	"strconv"
	"testing"

	"evexml/lib/telemetry"

	"github.com/mazen160/go-random"
)

// Setup initializes logging and telemetry for a test package, at most
// once per name. The returned cleanup flushes exporters when any were
// configured.
func Setup(t testing.TB, name string) func() {
	t.Helper()
	return telemetry.SetupForTesting(fmt.Sprintf("test:%s", name))
}

// RandomKey fabricates credential material shaped like the real thing
// (numeric key id, 64 character verification code) for tests that
// never reach the network.
func RandomKey(t testing.TB) (keyID string, vCode string) {
	t.Helper()

	id, err := random.IntRange(1000000, 9999999)
	if err != nil {
		t.Fatal(err)
	}
	code, err := random.String(64)
	if err != nil {
		t.Fatal(err)
	}
	return strconv.Itoa(id), code
}
