// Code generated by ent, DO NOT EDIT.

package ingestarchive

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agnox-io/agnox/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldContainsFold(FieldID, id))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldOrgID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldProjectID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldTaskID, v))
}

// CycleID applies equality check predicate on the "cycle_id" field. It's identical to CycleIDEQ.
func CycleID(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldCycleID, v))
}

// CycleItemID applies equality check predicate on the "cycle_item_id" field. It's identical to CycleItemIDEQ.
func CycleItemID(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldCycleItemID, v))
}

// Framework applies equality check predicate on the "framework" field. It's identical to FrameworkEQ.
func Framework(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldFramework, v))
}

// ReporterVersion applies equality check predicate on the "reporter_version" field. It's identical to ReporterVersionEQ.
func ReporterVersion(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldReporterVersion, v))
}

// TotalTests applies equality check predicate on the "total_tests" field. It's identical to TotalTestsEQ.
func TotalTests(v int) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldTotalTests, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldStatus, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldStartTime, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldCreatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldExpiresAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldContainsFold(FieldOrgID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldContainsFold(FieldProjectID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldContainsFold(FieldTaskID, v))
}

// CycleIDEQ applies the EQ predicate on the "cycle_id" field.
func CycleIDEQ(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldCycleID, v))
}

// CycleIDNEQ applies the NEQ predicate on the "cycle_id" field.
func CycleIDNEQ(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNEQ(FieldCycleID, v))
}

// CycleIDIn applies the In predicate on the "cycle_id" field.
func CycleIDIn(vs ...string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldIn(FieldCycleID, vs...))
}

// CycleIDNotIn applies the NotIn predicate on the "cycle_id" field.
func CycleIDNotIn(vs ...string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNotIn(FieldCycleID, vs...))
}

// CycleIDGT applies the GT predicate on the "cycle_id" field.
func CycleIDGT(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGT(FieldCycleID, v))
}

// CycleIDGTE applies the GTE predicate on the "cycle_id" field.
func CycleIDGTE(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGTE(FieldCycleID, v))
}

// CycleIDLT applies the LT predicate on the "cycle_id" field.
func CycleIDLT(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLT(FieldCycleID, v))
}

// CycleIDLTE applies the LTE predicate on the "cycle_id" field.
func CycleIDLTE(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLTE(FieldCycleID, v))
}

// CycleIDContains applies the Contains predicate on the "cycle_id" field.
func CycleIDContains(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldContains(FieldCycleID, v))
}

// CycleIDHasPrefix applies the HasPrefix predicate on the "cycle_id" field.
func CycleIDHasPrefix(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldHasPrefix(FieldCycleID, v))
}

// CycleIDHasSuffix applies the HasSuffix predicate on the "cycle_id" field.
func CycleIDHasSuffix(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldHasSuffix(FieldCycleID, v))
}

// CycleIDEqualFold applies the EqualFold predicate on the "cycle_id" field.
func CycleIDEqualFold(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEqualFold(FieldCycleID, v))
}

// CycleIDContainsFold applies the ContainsFold predicate on the "cycle_id" field.
func CycleIDContainsFold(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldContainsFold(FieldCycleID, v))
}

// CycleItemIDEQ applies the EQ predicate on the "cycle_item_id" field.
func CycleItemIDEQ(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldCycleItemID, v))
}

// CycleItemIDNEQ applies the NEQ predicate on the "cycle_item_id" field.
func CycleItemIDNEQ(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNEQ(FieldCycleItemID, v))
}

// CycleItemIDIn applies the In predicate on the "cycle_item_id" field.
func CycleItemIDIn(vs ...string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldIn(FieldCycleItemID, vs...))
}

// CycleItemIDNotIn applies the NotIn predicate on the "cycle_item_id" field.
func CycleItemIDNotIn(vs ...string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNotIn(FieldCycleItemID, vs...))
}

// CycleItemIDGT applies the GT predicate on the "cycle_item_id" field.
func CycleItemIDGT(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGT(FieldCycleItemID, v))
}

// CycleItemIDGTE applies the GTE predicate on the "cycle_item_id" field.
func CycleItemIDGTE(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGTE(FieldCycleItemID, v))
}

// CycleItemIDLT applies the LT predicate on the "cycle_item_id" field.
func CycleItemIDLT(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLT(FieldCycleItemID, v))
}

// CycleItemIDLTE applies the LTE predicate on the "cycle_item_id" field.
func CycleItemIDLTE(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLTE(FieldCycleItemID, v))
}

// CycleItemIDContains applies the Contains predicate on the "cycle_item_id" field.
func CycleItemIDContains(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldContains(FieldCycleItemID, v))
}

// CycleItemIDHasPrefix applies the HasPrefix predicate on the "cycle_item_id" field.
func CycleItemIDHasPrefix(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldHasPrefix(FieldCycleItemID, v))
}

// CycleItemIDHasSuffix applies the HasSuffix predicate on the "cycle_item_id" field.
func CycleItemIDHasSuffix(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldHasSuffix(FieldCycleItemID, v))
}

// CycleItemIDEqualFold applies the EqualFold predicate on the "cycle_item_id" field.
func CycleItemIDEqualFold(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEqualFold(FieldCycleItemID, v))
}

// CycleItemIDContainsFold applies the ContainsFold predicate on the "cycle_item_id" field.
func CycleItemIDContainsFold(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldContainsFold(FieldCycleItemID, v))
}

// FrameworkEQ applies the EQ predicate on the "framework" field.
func FrameworkEQ(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldFramework, v))
}

// FrameworkNEQ applies the NEQ predicate on the "framework" field.
func FrameworkNEQ(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNEQ(FieldFramework, v))
}

// FrameworkIn applies the In predicate on the "framework" field.
func FrameworkIn(vs ...string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldIn(FieldFramework, vs...))
}

// FrameworkNotIn applies the NotIn predicate on the "framework" field.
func FrameworkNotIn(vs ...string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNotIn(FieldFramework, vs...))
}

// FrameworkGT applies the GT predicate on the "framework" field.
func FrameworkGT(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGT(FieldFramework, v))
}

// FrameworkGTE applies the GTE predicate on the "framework" field.
func FrameworkGTE(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGTE(FieldFramework, v))
}

// FrameworkLT applies the LT predicate on the "framework" field.
func FrameworkLT(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLT(FieldFramework, v))
}

// FrameworkLTE applies the LTE predicate on the "framework" field.
func FrameworkLTE(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLTE(FieldFramework, v))
}

// FrameworkContains applies the Contains predicate on the "framework" field.
func FrameworkContains(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldContains(FieldFramework, v))
}

// FrameworkHasPrefix applies the HasPrefix predicate on the "framework" field.
func FrameworkHasPrefix(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldHasPrefix(FieldFramework, v))
}

// FrameworkHasSuffix applies the HasSuffix predicate on the "framework" field.
func FrameworkHasSuffix(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldHasSuffix(FieldFramework, v))
}

// FrameworkEqualFold applies the EqualFold predicate on the "framework" field.
func FrameworkEqualFold(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEqualFold(FieldFramework, v))
}

// FrameworkContainsFold applies the ContainsFold predicate on the "framework" field.
func FrameworkContainsFold(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldContainsFold(FieldFramework, v))
}

// ReporterVersionEQ applies the EQ predicate on the "reporter_version" field.
func ReporterVersionEQ(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldReporterVersion, v))
}

// ReporterVersionNEQ applies the NEQ predicate on the "reporter_version" field.
func ReporterVersionNEQ(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNEQ(FieldReporterVersion, v))
}

// ReporterVersionIn applies the In predicate on the "reporter_version" field.
func ReporterVersionIn(vs ...string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldIn(FieldReporterVersion, vs...))
}

// ReporterVersionNotIn applies the NotIn predicate on the "reporter_version" field.
func ReporterVersionNotIn(vs ...string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNotIn(FieldReporterVersion, vs...))
}

// ReporterVersionGT applies the GT predicate on the "reporter_version" field.
func ReporterVersionGT(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGT(FieldReporterVersion, v))
}

// ReporterVersionGTE applies the GTE predicate on the "reporter_version" field.
func ReporterVersionGTE(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGTE(FieldReporterVersion, v))
}

// ReporterVersionLT applies the LT predicate on the "reporter_version" field.
func ReporterVersionLT(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLT(FieldReporterVersion, v))
}

// ReporterVersionLTE applies the LTE predicate on the "reporter_version" field.
func ReporterVersionLTE(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLTE(FieldReporterVersion, v))
}

// ReporterVersionContains applies the Contains predicate on the "reporter_version" field.
func ReporterVersionContains(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldContains(FieldReporterVersion, v))
}

// ReporterVersionHasPrefix applies the HasPrefix predicate on the "reporter_version" field.
func ReporterVersionHasPrefix(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldHasPrefix(FieldReporterVersion, v))
}

// ReporterVersionHasSuffix applies the HasSuffix predicate on the "reporter_version" field.
func ReporterVersionHasSuffix(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldHasSuffix(FieldReporterVersion, v))
}

// ReporterVersionEqualFold applies the EqualFold predicate on the "reporter_version" field.
func ReporterVersionEqualFold(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEqualFold(FieldReporterVersion, v))
}

// ReporterVersionContainsFold applies the ContainsFold predicate on the "reporter_version" field.
func ReporterVersionContainsFold(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldContainsFold(FieldReporterVersion, v))
}

// TotalTestsEQ applies the EQ predicate on the "total_tests" field.
func TotalTestsEQ(v int) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldTotalTests, v))
}

// TotalTestsNEQ applies the NEQ predicate on the "total_tests" field.
func TotalTestsNEQ(v int) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNEQ(FieldTotalTests, v))
}

// TotalTestsIn applies the In predicate on the "total_tests" field.
func TotalTestsIn(vs ...int) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldIn(FieldTotalTests, vs...))
}

// TotalTestsNotIn applies the NotIn predicate on the "total_tests" field.
func TotalTestsNotIn(vs ...int) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNotIn(FieldTotalTests, vs...))
}

// TotalTestsGT applies the GT predicate on the "total_tests" field.
func TotalTestsGT(v int) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGT(FieldTotalTests, v))
}

// TotalTestsGTE applies the GTE predicate on the "total_tests" field.
func TotalTestsGTE(v int) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGTE(FieldTotalTests, v))
}

// TotalTestsLT applies the LT predicate on the "total_tests" field.
func TotalTestsLT(v int) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLT(FieldTotalTests, v))
}

// TotalTestsLTE applies the LTE predicate on the "total_tests" field.
func TotalTestsLTE(v int) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLTE(FieldTotalTests, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldContainsFold(FieldStatus, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLTE(FieldStartTime, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLTE(FieldCreatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.IngestArchive {
	return predicate.IngestArchive(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IngestArchive) predicate.IngestArchive {
	return predicate.IngestArchive(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IngestArchive) predicate.IngestArchive {
	return predicate.IngestArchive(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IngestArchive) predicate.IngestArchive {
	return predicate.IngestArchive(sql.NotPredicates(p))
}
