// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// APIKey is the predicate function for apikey builders.
type APIKey func(*sql.Selector)

// Execution is the predicate function for execution builders.
type Execution func(*sql.Selector)

// IngestArchive is the predicate function for ingestarchive builders.
type IngestArchive func(*sql.Selector)

// Organization is the predicate function for organization builders.
type Organization func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// ProjectEnvVar is the predicate function for projectenvvar builders.
type ProjectEnvVar func(*sql.Selector)

// Schedule is the predicate function for schedule builders.
type Schedule func(*sql.Selector)

// TestCycle is the predicate function for testcycle builders.
type TestCycle func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
