// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agnox-io/agnox/ent/apikey"
	"github.com/agnox-io/agnox/ent/execution"
	"github.com/agnox-io/agnox/ent/ingestarchive"
	"github.com/agnox-io/agnox/ent/organization"
	"github.com/agnox-io/agnox/ent/project"
	"github.com/agnox-io/agnox/ent/projectenvvar"
	"github.com/agnox-io/agnox/ent/schedule"
	"github.com/agnox-io/agnox/ent/schema"
	"github.com/agnox-io/agnox/ent/testcycle"
	"github.com/agnox-io/agnox/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apikeyFields := schema.APIKey{}.Fields()
	_ = apikeyFields
	// apikeyDescCreatedAt is the schema descriptor for created_at field.
	apikeyDescCreatedAt := apikeyFields[7].Descriptor()
	// apikey.DefaultCreatedAt holds the default value on creation for the created_at field.
	apikey.DefaultCreatedAt = apikeyDescCreatedAt.Default.(func() time.Time)
	executionFields := schema.Execution{}.Fields()
	_ = executionFields
	// executionDescCreatedAt is the schema descriptor for created_at field.
	executionDescCreatedAt := executionFields[20].Descriptor()
	// execution.DefaultCreatedAt holds the default value on creation for the created_at field.
	execution.DefaultCreatedAt = executionDescCreatedAt.Default.(func() time.Time)
	// executionDescUpdatedAt is the schema descriptor for updated_at field.
	executionDescUpdatedAt := executionFields[21].Descriptor()
	// execution.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	execution.DefaultUpdatedAt = executionDescUpdatedAt.Default.(func() time.Time)
	// execution.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	execution.UpdateDefaultUpdatedAt = executionDescUpdatedAt.UpdateDefault.(func() time.Time)
	ingestarchiveFields := schema.IngestArchive{}.Fields()
	_ = ingestarchiveFields
	// ingestarchiveDescCreatedAt is the schema descriptor for created_at field.
	ingestarchiveDescCreatedAt := ingestarchiveFields[11].Descriptor()
	// ingestarchive.DefaultCreatedAt holds the default value on creation for the created_at field.
	ingestarchive.DefaultCreatedAt = ingestarchiveDescCreatedAt.Default.(func() time.Time)
	organizationFields := schema.Organization{}.Fields()
	_ = organizationFields
	// organizationDescCreatedAt is the schema descriptor for created_at field.
	organizationDescCreatedAt := organizationFields[6].Descriptor()
	// organization.DefaultCreatedAt holds the default value on creation for the created_at field.
	organization.DefaultCreatedAt = organizationDescCreatedAt.Default.(func() time.Time)
	// organizationDescUpdatedAt is the schema descriptor for updated_at field.
	organizationDescUpdatedAt := organizationFields[7].Descriptor()
	// organization.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	organization.DefaultUpdatedAt = organizationDescUpdatedAt.Default.(func() time.Time)
	// organization.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	organization.UpdateDefaultUpdatedAt = organizationDescUpdatedAt.UpdateDefault.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[4].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[5].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	projectenvvarFields := schema.ProjectEnvVar{}.Fields()
	_ = projectenvvarFields
	// projectenvvarDescIsSecret is the schema descriptor for is_secret field.
	projectenvvarDescIsSecret := projectenvvarFields[6].Descriptor()
	// projectenvvar.DefaultIsSecret holds the default value on creation for the is_secret field.
	projectenvvar.DefaultIsSecret = projectenvvarDescIsSecret.Default.(bool)
	// projectenvvarDescCreatedAt is the schema descriptor for created_at field.
	projectenvvarDescCreatedAt := projectenvvarFields[7].Descriptor()
	// projectenvvar.DefaultCreatedAt holds the default value on creation for the created_at field.
	projectenvvar.DefaultCreatedAt = projectenvvarDescCreatedAt.Default.(func() time.Time)
	// projectenvvarDescUpdatedAt is the schema descriptor for updated_at field.
	projectenvvarDescUpdatedAt := projectenvvarFields[8].Descriptor()
	// projectenvvar.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	projectenvvar.DefaultUpdatedAt = projectenvvarDescUpdatedAt.Default.(func() time.Time)
	// projectenvvar.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	projectenvvar.UpdateDefaultUpdatedAt = projectenvvarDescUpdatedAt.UpdateDefault.(func() time.Time)
	scheduleFields := schema.Schedule{}.Fields()
	_ = scheduleFields
	// scheduleDescIsActive is the schema descriptor for is_active field.
	scheduleDescIsActive := scheduleFields[6].Descriptor()
	// schedule.DefaultIsActive holds the default value on creation for the is_active field.
	schedule.DefaultIsActive = scheduleDescIsActive.Default.(bool)
	// scheduleDescCreatedAt is the schema descriptor for created_at field.
	scheduleDescCreatedAt := scheduleFields[10].Descriptor()
	// schedule.DefaultCreatedAt holds the default value on creation for the created_at field.
	schedule.DefaultCreatedAt = scheduleDescCreatedAt.Default.(func() time.Time)
	// scheduleDescUpdatedAt is the schema descriptor for updated_at field.
	scheduleDescUpdatedAt := scheduleFields[11].Descriptor()
	// schedule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	schedule.DefaultUpdatedAt = scheduleDescUpdatedAt.Default.(func() time.Time)
	// schedule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	schedule.UpdateDefaultUpdatedAt = scheduleDescUpdatedAt.UpdateDefault.(func() time.Time)
	testcycleFields := schema.TestCycle{}.Fields()
	_ = testcycleFields
	// testcycleDescCreatedAt is the schema descriptor for created_at field.
	testcycleDescCreatedAt := testcycleFields[7].Descriptor()
	// testcycle.DefaultCreatedAt holds the default value on creation for the created_at field.
	testcycle.DefaultCreatedAt = testcycleDescCreatedAt.Default.(func() time.Time)
	// testcycleDescUpdatedAt is the schema descriptor for updated_at field.
	testcycleDescUpdatedAt := testcycleFields[8].Descriptor()
	// testcycle.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	testcycle.DefaultUpdatedAt = testcycleDescUpdatedAt.Default.(func() time.Time)
	// testcycle.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	testcycle.UpdateDefaultUpdatedAt = testcycleDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[8].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[9].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
