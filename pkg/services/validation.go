package services

// Execution environments accepted by dispatch and schedules.
var environments = map[string]bool{
	"dev":     true,
	"staging": true,
	"prod":    true,
}

// ValidateEnvironment checks an environment name against the known set.
func ValidateEnvironment(env string) error {
	if !environments[env] {
		return NewValidationError("environment", "must be dev, staging, or prod")
	}
	return nil
}
