package source

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// Cancellation tests drive readers from background goroutines; none may
	// outlive its test.
	goleak.VerifyTestMain(m)
}
