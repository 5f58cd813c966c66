// Code generated by ent, DO NOT EDIT.

package ingestarchive

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ingestarchive type in the database.
	Label = "ingest_archive"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldCycleID holds the string denoting the cycle_id field in the database.
	FieldCycleID = "cycle_id"
	// FieldCycleItemID holds the string denoting the cycle_item_id field in the database.
	FieldCycleItemID = "cycle_item_id"
	// FieldFramework holds the string denoting the framework field in the database.
	FieldFramework = "framework"
	// FieldReporterVersion holds the string denoting the reporter_version field in the database.
	FieldReporterVersion = "reporter_version"
	// FieldTotalTests holds the string denoting the total_tests field in the database.
	FieldTotalTests = "total_tests"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the ingestarchive in the database.
	Table = "ingest_archives"
)

// Columns holds all SQL columns for ingestarchive fields.
var Columns = []string{
	FieldID,
	FieldOrgID,
	FieldProjectID,
	FieldTaskID,
	FieldCycleID,
	FieldCycleItemID,
	FieldFramework,
	FieldReporterVersion,
	FieldTotalTests,
	FieldStatus,
	FieldStartTime,
	FieldCreatedAt,
	FieldExpiresAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the IngestArchive queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByCycleID orders the results by the cycle_id field.
func ByCycleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCycleID, opts...).ToFunc()
}

// ByCycleItemID orders the results by the cycle_item_id field.
func ByCycleItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCycleItemID, opts...).ToFunc()
}

// ByFramework orders the results by the framework field.
func ByFramework(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFramework, opts...).ToFunc()
}

// ByReporterVersion orders the results by the reporter_version field.
func ByReporterVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReporterVersion, opts...).ToFunc()
}

// ByTotalTests orders the results by the total_tests field.
func ByTotalTests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTests, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}
