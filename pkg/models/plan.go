package models

// Plan identifiers.
const (
	PlanFree       = "free"
	PlanTeam       = "team"
	PlanEnterprise = "enterprise"
)

// PlanLimits is the per-organization quota record stored on the org row and
// consulted by the plan enforcer before admitting limited actions.
type PlanLimits struct {
	MaxProjects       int `json:"maxProjects"`
	MaxTestRuns       int `json:"maxTestRuns"`
	MaxUsers          int `json:"maxUsers"`
	MaxConcurrentRuns int `json:"maxConcurrentRuns"`
}

// DefaultLimits returns the built-in limits for a plan.
func DefaultLimits(plan string) PlanLimits {
	switch plan {
	case PlanTeam:
		return PlanLimits{MaxProjects: 10, MaxTestRuns: 1000, MaxUsers: 15, MaxConcurrentRuns: 5}
	case PlanEnterprise:
		return PlanLimits{MaxProjects: 100, MaxTestRuns: 20000, MaxUsers: 200, MaxConcurrentRuns: 25}
	default:
		return PlanLimits{MaxProjects: 3, MaxTestRuns: 100, MaxUsers: 3, MaxConcurrentRuns: 1}
	}
}

// LimitStatus is the result of a plan enforcement check.
type LimitStatus struct {
	Action   string `json:"action"`
	Used     int    `json:"current"`
	Limit    int    `json:"limit"`
	Exceeded bool   `json:"exceeded"`
}
