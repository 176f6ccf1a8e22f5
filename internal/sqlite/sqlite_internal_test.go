package sqlite

import (
	"testing"

	"github.com/mesokit/mesokit/internal/testhelpers"
)

func TestClose_stopsOptimizer(t *testing.T) {
	t.Parallel()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := NewDatabase(t.Context(), ":memory:", logger)
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}

	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Close must not return while the optimizer goroutine can still log.
	select {
	case <-db.optimizerDone:
	default:
		t.Fatal("optimizer still running after Close")
	}
}
