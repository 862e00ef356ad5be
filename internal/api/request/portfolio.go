package request

import (
	"fmt"
	"strconv"

	"github.com/ndewijer/portfolio-draft-seeder/internal/model"
)

// CreatePortfolioStepRequest represents the request body for submitting the portfolio step of a draft.
// Required list fields stay nil when absent so validation can tell missing from empty.
type CreatePortfolioStepRequest struct {
	Name              *string  `json:"name"`
	Description       string   `json:"description"`
	CSP               []string `json:"csp"`
	DoDComponents     []string `json:"dod_components"`
	PortfolioManagers []string `json:"portfolio_managers"`
}

// ToModel converts a validated request into the stored portfolio step.
func (r CreatePortfolioStepRequest) ToModel() model.PortfolioStep {
	step := model.PortfolioStep{
		Description:       r.Description,
		CSP:               r.CSP,
		DoDComponents:     r.DoDComponents,
		PortfolioManagers: r.PortfolioManagers,
	}
	if r.Name != nil {
		step.Name = *r.Name
	}
	return step
}

// ListPortfolioDraftsRequest carries the paging query of GET /portfolioDrafts.
type ListPortfolioDraftsRequest struct {
	Limit  int
	Offset int
}

// ParseListPortfolioDrafts parses the limit and offset query values. Empty values are left at zero
// so the service applies its defaults.
func ParseListPortfolioDrafts(limit, offset string) (ListPortfolioDraftsRequest, error) {
	var req ListPortfolioDraftsRequest

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			return ListPortfolioDraftsRequest{}, fmt.Errorf("invalid limit %q", limit)
		}
		req.Limit = n
	}
	if offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil || n < 0 {
			return ListPortfolioDraftsRequest{}, fmt.Errorf("invalid offset %q", offset)
		}
		req.Offset = n
	}

	return req, nil
}

// ToFilter converts the request into a repository filter.
func (r ListPortfolioDraftsRequest) ToFilter() model.PortfolioDraftFilter {
	return model.PortfolioDraftFilter{Limit: r.Limit, Offset: r.Offset}
}
