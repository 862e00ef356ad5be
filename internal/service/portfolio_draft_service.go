package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ndewijer/portfolio-draft-seeder/internal/metrics"
	"github.com/ndewijer/portfolio-draft-seeder/internal/model"
	"github.com/ndewijer/portfolio-draft-seeder/internal/repository"
)

// Paging defaults for draft listings.
const (
	DefaultDraftLimit = 20
	MaxDraftLimit     = 100
)

// PortfolioDraftService handles the portfolio draft lifecycle: creating empty drafts,
// attaching the portfolio step and reading drafts back.
type PortfolioDraftService struct {
	draftRepo *repository.PortfolioDraftRepository
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewPortfolioDraftService creates a new PortfolioDraftService. m may be nil.
func NewPortfolioDraftService(draftRepo *repository.PortfolioDraftRepository, m *metrics.Metrics) *PortfolioDraftService {
	return &PortfolioDraftService{
		draftRepo: draftRepo,
		metrics:   m,
		now:       time.Now,
	}
}

// CreatePortfolioDraft stores a new empty draft with a fresh UUID and not_started status.
func (s *PortfolioDraftService) CreatePortfolioDraft(ctx context.Context) (model.PortfolioDraft, error) {
	now := s.now().UTC()
	draft := model.PortfolioDraft{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
		Status:    model.StatusNotStarted,
	}

	if err := s.draftRepo.InsertPortfolioDraft(ctx, draft); err != nil {
		return model.PortfolioDraft{}, err
	}
	if s.metrics != nil {
		s.metrics.DraftsCreated.Inc()
	}
	return draft, nil
}

// GetPortfolioDraft retrieves one draft.
func (s *PortfolioDraftService) GetPortfolioDraft(ctx context.Context, id string) (model.PortfolioDraft, error) {
	return s.draftRepo.GetPortfolioDraft(ctx, id)
}

// GetPortfolioDrafts retrieves a page of drafts. Out-of-range paging values are clamped.
func (s *PortfolioDraftService) GetPortfolioDrafts(ctx context.Context, filter model.PortfolioDraftFilter) ([]model.PortfolioDraft, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultDraftLimit
	}
	if filter.Limit > MaxDraftLimit {
		filter.Limit = MaxDraftLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.draftRepo.GetPortfolioDrafts(ctx, filter)
}

// DeletePortfolioDraft removes a draft and its portfolio step.
func (s *PortfolioDraftService) DeletePortfolioDraft(ctx context.Context, id string) error {
	if err := s.draftRepo.DeletePortfolioDraft(ctx, id); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.DraftsDeleted.Inc()
	}
	return nil
}

// CreatePortfolioStep attaches (or replaces) the portfolio step of a draft and returns it as stored.
// The step is expected to be validated by the caller.
func (s *PortfolioDraftService) CreatePortfolioStep(ctx context.Context, draftID string, step model.PortfolioStep) (model.PortfolioStep, error) {
	if err := s.draftRepo.UpsertPortfolioStep(ctx, draftID, step, s.now().UTC()); err != nil {
		return model.PortfolioStep{}, err
	}
	if s.metrics != nil {
		s.metrics.StepsStored.Inc()
	}
	return step, nil
}

// GetPortfolioStep retrieves the portfolio step of a draft.
func (s *PortfolioDraftService) GetPortfolioStep(ctx context.Context, draftID string) (model.PortfolioStep, error) {
	return s.draftRepo.GetPortfolioStep(ctx, draftID)
}
