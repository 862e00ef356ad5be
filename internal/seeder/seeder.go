// Package seeder fills a portfolio drafts API with randomized test portfolios.
package seeder

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/ndewijer/portfolio-draft-seeder/internal/draftsapi"
	"github.com/ndewijer/portfolio-draft-seeder/internal/model"
)

// DraftAPI is the subset of the drafts API the seeder calls.
type DraftAPI interface {
	CreatePortfolioDraft(ctx context.Context) (draftsapi.Response, error)
	CreatePortfolioStep(ctx context.Context, draftID string, step model.PortfolioStep) (draftsapi.Response, error)
}

// StepGenerator produces the payload submitted for each draft.
type StepGenerator interface {
	PortfolioStep() model.PortfolioStep
}

// Seeder creates Count drafts one after another and submits a generated portfolio step for each.
type Seeder struct {
	api   DraftAPI
	gen   StepGenerator
	count int
	out   io.Writer
}

// Result counts the calls that completed during a run.
type Result struct {
	DraftsCreated int
	StepsCreated  int
}

// New creates a Seeder that runs count iterations and pretty-prints every response to out.
func New(api DraftAPI, gen StepGenerator, count int, out io.Writer) *Seeder {
	return &Seeder{
		api:   api,
		gen:   gen,
		count: count,
		out:   out,
	}
}

// Run performs all iterations sequentially. The first failure stops the run:
// no later call is attempted and the error is returned wrapped with the iteration number.
// The returned Result reflects what completed before the failure.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result

	for i := 1; i <= s.count; i++ {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("iteration %d: %w", i, err)
		}
		if err := s.iterate(ctx, i, &res); err != nil {
			return res, fmt.Errorf("iteration %d: %w", i, err)
		}
	}

	log.Printf("Seeded %d portfolio drafts", res.StepsCreated)
	return res, nil
}

func (s *Seeder) iterate(ctx context.Context, i int, res *Result) error {
	draft, err := s.api.CreatePortfolioDraft(ctx)
	if err != nil {
		return fmt.Errorf("create portfolio draft: %w", err)
	}
	res.DraftsCreated++
	if err := s.print(draft); err != nil {
		return err
	}

	id, err := draft.DraftID()
	if err != nil {
		return err
	}

	step := s.gen.PortfolioStep()
	portfolio, err := s.api.CreatePortfolioStep(ctx, id, step)
	if err != nil {
		return fmt.Errorf("create portfolio step for draft %s: %w", id, err)
	}
	res.StepsCreated++

	log.Printf("Created portfolio %q on draft %s (%d/%d)", step.Name, id, i, s.count)
	return s.print(portfolio)
}

func (s *Seeder) print(resp draftsapi.Response) error {
	pretty, err := resp.Pretty()
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	if _, err := fmt.Fprintf(s.out, "%s\n", pretty); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
