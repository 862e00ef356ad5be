package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ndewijer/portfolio-draft-seeder/internal/apperrors"
	"github.com/ndewijer/portfolio-draft-seeder/internal/model"
)

// PortfolioDraftRepository provides data access methods for the portfolio_draft and portfolio_step tables.
type PortfolioDraftRepository struct {
	db *sql.DB
}

// NewPortfolioDraftRepository creates a new PortfolioDraftRepository with the provided database connection.
func NewPortfolioDraftRepository(db *sql.DB) *PortfolioDraftRepository {
	return &PortfolioDraftRepository{db: db}
}

// InsertPortfolioDraft stores a new draft summary.
func (r *PortfolioDraftRepository) InsertPortfolioDraft(ctx context.Context, d model.PortfolioDraft) error {
	query := `
		INSERT INTO portfolio_draft (
			id, created_at, updated_at, status, name,
			num_portfolio_managers, num_task_orders, num_applications, num_environments
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		FormatTime(d.CreatedAt),
		FormatTime(d.UpdatedAt),
		string(d.Status),
		d.Name,
		d.NumPortfolioManagers,
		d.NumTaskOrders,
		d.NumApplications,
		d.NumEnvironments,
	)
	if err != nil {
		return fmt.Errorf("failed to insert portfolio draft: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPortfolioDraft(row rowScanner) (model.PortfolioDraft, error) {
	var d model.PortfolioDraft
	var createdAt, updatedAt, status string

	err := row.Scan(
		&d.ID,
		&createdAt,
		&updatedAt,
		&status,
		&d.Name,
		&d.NumPortfolioManagers,
		&d.NumTaskOrders,
		&d.NumApplications,
		&d.NumEnvironments,
	)
	if err != nil {
		return model.PortfolioDraft{}, err
	}

	if d.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.PortfolioDraft{}, err
	}
	if d.UpdatedAt, err = ParseTime(updatedAt); err != nil {
		return model.PortfolioDraft{}, err
	}
	d.Status = model.ProvisioningStatus(status)

	return d, nil
}

const draftColumns = `id, created_at, updated_at, status, name,
	num_portfolio_managers, num_task_orders, num_applications, num_environments`

// GetPortfolioDraft retrieves a single draft by ID.
// Returns apperrors.ErrPortfolioDraftNotFound if no such draft exists.
func (r *PortfolioDraftRepository) GetPortfolioDraft(ctx context.Context, id string) (model.PortfolioDraft, error) {
	query := `SELECT ` + draftColumns + ` FROM portfolio_draft WHERE id = ?`

	d, err := scanPortfolioDraft(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.PortfolioDraft{}, apperrors.ErrPortfolioDraftNotFound
	}
	if err != nil {
		return model.PortfolioDraft{}, fmt.Errorf("failed to query portfolio draft: %w", err)
	}
	return d, nil
}

// GetPortfolioDrafts retrieves drafts ordered by creation time, newest last.
// Returns an empty slice if no drafts match.
func (r *PortfolioDraftRepository) GetPortfolioDrafts(ctx context.Context, filter model.PortfolioDraftFilter) ([]model.PortfolioDraft, error) {
	query := `SELECT ` + draftColumns + ` FROM portfolio_draft ORDER BY created_at, id LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio_draft table: %w", err)
	}
	defer rows.Close()

	drafts := []model.PortfolioDraft{}
	for rows.Next() {
		d, err := scanPortfolioDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan portfolio_draft table results: %w", err)
		}
		drafts = append(drafts, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio_draft table: %w", err)
	}

	return drafts, nil
}

// DeletePortfolioDraft removes a draft and, through the foreign key cascade, its portfolio step.
// Returns apperrors.ErrPortfolioDraftNotFound if no such draft exists.
func (r *PortfolioDraftRepository) DeletePortfolioDraft(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM portfolio_draft WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio draft: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperrors.ErrPortfolioDraftNotFound
	}
	return nil
}

// UpsertPortfolioStep stores the portfolio step for a draft, replacing any earlier one,
// and refreshes the draft's name, manager count and updated_at in the same transaction.
// Returns apperrors.ErrPortfolioDraftNotFound if the draft does not exist.
func (r *PortfolioDraftRepository) UpsertPortfolioStep(ctx context.Context, draftID string, step model.PortfolioStep, now time.Time) (err error) {
	csp, err := encodeList(step.CSP)
	if err != nil {
		return err
	}
	components, err := encodeList(step.DoDComponents)
	if err != nil {
		return err
	}
	managers, err := encodeList(step.PortfolioManagers)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE portfolio_draft
		SET name = ?, num_portfolio_managers = ?, updated_at = ?
		WHERE id = ?
	`, step.Name, len(step.PortfolioManagers), FormatTime(now), draftID)
	if err != nil {
		return fmt.Errorf("failed to update portfolio draft: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperrors.ErrPortfolioDraftNotFound
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO portfolio_step (
			portfolio_draft_id, name, description, csp, dod_components, portfolio_managers, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(portfolio_draft_id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			csp = excluded.csp,
			dod_components = excluded.dod_components,
			portfolio_managers = excluded.portfolio_managers
	`, draftID, step.Name, step.Description, csp, components, managers, FormatTime(now))
	if err != nil {
		return fmt.Errorf("failed to upsert portfolio step: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit portfolio step: %w", err)
	}
	return nil
}

// GetPortfolioStep retrieves the portfolio step submitted for a draft.
// Returns apperrors.ErrPortfolioDraftNotFound if the draft does not exist and
// apperrors.ErrPortfolioStepNotFound if it exists without a step.
func (r *PortfolioDraftRepository) GetPortfolioStep(ctx context.Context, draftID string) (model.PortfolioStep, error) {
	var step model.PortfolioStep
	var csp, components, managers string

	err := r.db.QueryRowContext(ctx, `
		SELECT name, description, csp, dod_components, portfolio_managers
		FROM portfolio_step
		WHERE portfolio_draft_id = ?
	`, draftID).Scan(&step.Name, &step.Description, &csp, &components, &managers)
	if errors.Is(err, sql.ErrNoRows) {
		if _, draftErr := r.GetPortfolioDraft(ctx, draftID); draftErr != nil {
			return model.PortfolioStep{}, draftErr
		}
		return model.PortfolioStep{}, apperrors.ErrPortfolioStepNotFound
	}
	if err != nil {
		return model.PortfolioStep{}, fmt.Errorf("failed to query portfolio step: %w", err)
	}

	if step.CSP, err = decodeList(csp); err != nil {
		return model.PortfolioStep{}, err
	}
	if step.DoDComponents, err = decodeList(components); err != nil {
		return model.PortfolioStep{}, err
	}
	if step.PortfolioManagers, err = decodeList(managers); err != nil {
		return model.PortfolioStep{}, err
	}

	return step, nil
}
