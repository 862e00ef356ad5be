package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/ndewijer/portfolio-draft-seeder/internal/metrics"
	"github.com/ndewijer/portfolio-draft-seeder/internal/repository"
	"github.com/ndewijer/portfolio-draft-seeder/internal/service"
)

// NewTestPortfolioDraftService wires a draft service on db that records into m.
// Pass the same m to the router when a test reads /metrics.
func NewTestPortfolioDraftService(t *testing.T, db *sql.DB, m *metrics.Metrics) *service.PortfolioDraftService {
	t.Helper()

	return service.NewPortfolioDraftService(
		repository.NewPortfolioDraftRepository(db),
		m,
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()
	return service.NewSystemService(db)
}

// MakeID generates a UUID for testing.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeDraftName generates a unique portfolio name for testing.
//
// Example usage:
//
//	name := testutil.MakeDraftName("Mission")
//	// Returns: "Mission ABC123"
func MakeDraftName(base string) string {
	if base == "" {
		base = "Portfolio"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
