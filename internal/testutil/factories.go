package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/ndewijer/portfolio-draft-seeder/internal/model"
	"github.com/ndewijer/portfolio-draft-seeder/internal/repository"
)

// PortfolioDraftBuilder provides a fluent interface for creating test drafts.
//
// Example usage:
//
//	// Empty draft with defaults
//	draft := testutil.NewPortfolioDraft().Build(t, db)
//
//	// Draft that already has its portfolio step
//	draft := testutil.NewPortfolioDraft().
//	    WithStep(testutil.NewPortfolioStep()).
//	    Build(t, db)
type PortfolioDraftBuilder struct {
	ID        string
	CreatedAt time.Time
	Step      *model.PortfolioStep
}

// NewPortfolioDraft creates a PortfolioDraftBuilder with sensible defaults.
func NewPortfolioDraft() *PortfolioDraftBuilder {
	return &PortfolioDraftBuilder{
		ID:        MakeID(),
		CreatedAt: time.Now().UTC(),
	}
}

// WithID sets a custom ID.
func (b *PortfolioDraftBuilder) WithID(id string) *PortfolioDraftBuilder {
	b.ID = id
	return b
}

// WithCreatedAt sets a custom creation time.
func (b *PortfolioDraftBuilder) WithCreatedAt(t time.Time) *PortfolioDraftBuilder {
	b.CreatedAt = t.UTC()
	return b
}

// WithStep attaches a portfolio step when the draft is built.
func (b *PortfolioDraftBuilder) WithStep(step model.PortfolioStep) *PortfolioDraftBuilder {
	b.Step = &step
	return b
}

// Build creates the draft (and its step, if any) in the database and returns the stored summary.
func (b *PortfolioDraftBuilder) Build(t *testing.T, db *sql.DB) model.PortfolioDraft {
	t.Helper()

	repo := repository.NewPortfolioDraftRepository(db)
	ctx := context.Background()

	draft := model.PortfolioDraft{
		ID:        b.ID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
		Status:    model.StatusNotStarted,
	}
	if err := repo.InsertPortfolioDraft(ctx, draft); err != nil {
		t.Fatalf("Failed to create test portfolio draft: %v", err)
	}

	if b.Step != nil {
		if err := repo.UpsertPortfolioStep(ctx, b.ID, *b.Step, b.CreatedAt); err != nil {
			t.Fatalf("Failed to create test portfolio step: %v", err)
		}
		draft.Name = b.Step.Name
		draft.NumPortfolioManagers = len(b.Step.PortfolioManagers)
	}

	return draft
}

// NewPortfolioStep returns a valid portfolio step with a unique name.
func NewPortfolioStep() model.PortfolioStep {
	return model.PortfolioStep{
		Name:              MakeDraftName("Test Portfolio"),
		Description:       "Test description",
		CSP:               []string{model.CSPA},
		DoDComponents:     []string{model.DoDComponentArmy, model.DoDComponentNavy},
		PortfolioManagers: []string{"jane.doe@foobartest.mil"},
	}
}

// CreatePortfolioDrafts creates count empty drafts one millisecond apart, oldest first.
func CreatePortfolioDrafts(t *testing.T, db *sql.DB, count int) []model.PortfolioDraft {
	t.Helper()

	base := time.Now().UTC()
	drafts := make([]model.PortfolioDraft, count)
	for i := range drafts {
		drafts[i] = NewPortfolioDraft().
			WithCreatedAt(base.Add(time.Duration(i) * time.Millisecond)).
			Build(t, db)
	}
	return drafts
}
