package model

import "time"

// ProvisioningStatus tracks where a draft is in the provisioning lifecycle.
type ProvisioningStatus string

// StatusNotStarted is the status of every newly created draft.
const StatusNotStarted ProvisioningStatus = "not_started"

// PortfolioDraft represents a portfolio draft summary as stored and returned by the drafts API.
// The counters reflect the steps submitted so far.
type PortfolioDraft struct {
	ID                   string             `json:"id"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
	Status               ProvisioningStatus `json:"status"`
	Name                 string             `json:"name"`
	NumPortfolioManagers int                `json:"num_portfolio_managers"`
	NumTaskOrders        int                `json:"num_task_orders"`
	NumApplications      int                `json:"num_applications"`
	NumEnvironments      int                `json:"num_environments"`
}

// PortfolioDraftFilter for paging through drafts
type PortfolioDraftFilter struct {
	Limit  int
	Offset int
}
