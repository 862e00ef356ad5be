package validation

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ndewijer/portfolio-draft-seeder/internal/api/request"
	"github.com/ndewijer/portfolio-draft-seeder/internal/model"
)

// ValidateCreatePortfolioStep checks a portfolio step body.
// name, csp, dod_components and portfolio_managers must be present.
func ValidateCreatePortfolioStep(req request.CreatePortfolioStepRequest) error {
	errors := make(map[string]string)

	// Required field
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name is required"
	} else if utf8.RuneCountInString(*req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	// Optional but has constraints
	if utf8.RuneCountInString(req.Description) > 500 {
		errors["description"] = "description must be 500 characters or less"
	}

	switch {
	case req.CSP == nil:
		errors["csp"] = "csp is required"
	case len(req.CSP) == 0:
		errors["csp"] = "at least one csp is required"
	default:
		for _, csp := range req.CSP {
			if !model.IsCloudServiceProvider(csp) {
				errors["csp"] = fmt.Sprintf("unknown csp %q", csp)
				break
			}
		}
	}

	if req.DoDComponents == nil {
		errors["dod_components"] = "dod_components is required"
	} else {
		for _, c := range req.DoDComponents {
			if !model.IsDoDComponent(c) {
				errors["dod_components"] = fmt.Sprintf("unknown dod component %q", c)
				break
			}
		}
	}

	if req.PortfolioManagers == nil {
		errors["portfolio_managers"] = "portfolio_managers is required"
	} else {
		for i, email := range req.PortfolioManagers {
			if err := ValidateEmail(email); err != nil {
				errors["portfolio_managers"] = "entry " + strconv.Itoa(i) + ": " + err.Error()
				break
			}
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateEmail checks that s is a bare address such as "name@domain.mil".
func ValidateEmail(s string) error {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return fmt.Errorf("invalid email address %q", s)
	}
	return nil
}
