package model

// Cloud service providers a portfolio can be provisioned against.
const (
	CSPA = "CSP A"
	CSPB = "CSP B"
)

// CloudServiceProviders lists every CSP token a portfolio step may select.
var CloudServiceProviders = []string{CSPA, CSPB}

// DoD component tokens.
const (
	DoDComponentAirForce    = "air_force"
	DoDComponentArmy        = "army"
	DoDComponentMarineCorps = "marine_corps"
	DoDComponentNavy        = "navy"
	DoDComponentSpaceForce  = "space_force"

	DoDComponentCombatantCommand = "combatant_command"
	DoDComponentJointStaff       = "joint_staff"
	DoDComponentDAFA             = "dafa"
	DoDComponentOSDPSAS          = "osd_psas"
	DoDComponentNSA              = "nsa"
)

// DoDComponents lists the DoD component tokens the seeder picks from.
var DoDComponents = []string{
	DoDComponentAirForce,
	DoDComponentArmy,
	DoDComponentMarineCorps,
	DoDComponentNavy,
	DoDComponentSpaceForce,
}

// AcceptedDoDComponents lists every DoD component token the drafts API accepts.
// It is a superset of DoDComponents.
var AcceptedDoDComponents = append(append([]string{}, DoDComponents...),
	DoDComponentCombatantCommand,
	DoDComponentJointStaff,
	DoDComponentDAFA,
	DoDComponentOSDPSAS,
	DoDComponentNSA,
)

// PortfolioStep is the descriptive part of a portfolio draft, submitted against
// an existing draft ID to finalize the portfolio.
type PortfolioStep struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	CSP               []string `json:"csp"`
	DoDComponents     []string `json:"dod_components"`
	PortfolioManagers []string `json:"portfolio_managers"`
}

// IsCloudServiceProvider reports whether v is a known CSP token.
func IsCloudServiceProvider(v string) bool {
	return contains(CloudServiceProviders, v)
}

// IsDoDComponent reports whether v is a DoD component token the drafts API accepts.
func IsDoDComponent(v string) bool {
	return contains(AcceptedDoDComponents, v)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
