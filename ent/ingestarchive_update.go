// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agnox-io/agnox/ent/ingestarchive"
	"github.com/agnox-io/agnox/ent/predicate"
)

// IngestArchiveUpdate is the builder for updating IngestArchive entities.
type IngestArchiveUpdate struct {
	config
	hooks    []Hook
	mutation *IngestArchiveMutation
}

// Where appends a list predicates to the IngestArchiveUpdate builder.
func (_u *IngestArchiveUpdate) Where(ps ...predicate.IngestArchive) *IngestArchiveUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *IngestArchiveUpdate) SetOrgID(v string) *IngestArchiveUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *IngestArchiveUpdate) SetNillableOrgID(v *string) *IngestArchiveUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *IngestArchiveUpdate) SetProjectID(v string) *IngestArchiveUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *IngestArchiveUpdate) SetNillableProjectID(v *string) *IngestArchiveUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *IngestArchiveUpdate) SetTaskID(v string) *IngestArchiveUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *IngestArchiveUpdate) SetNillableTaskID(v *string) *IngestArchiveUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetCycleID sets the "cycle_id" field.
func (_u *IngestArchiveUpdate) SetCycleID(v string) *IngestArchiveUpdate {
	_u.mutation.SetCycleID(v)
	return _u
}

// SetNillableCycleID sets the "cycle_id" field if the given value is not nil.
func (_u *IngestArchiveUpdate) SetNillableCycleID(v *string) *IngestArchiveUpdate {
	if v != nil {
		_u.SetCycleID(*v)
	}
	return _u
}

// SetCycleItemID sets the "cycle_item_id" field.
func (_u *IngestArchiveUpdate) SetCycleItemID(v string) *IngestArchiveUpdate {
	_u.mutation.SetCycleItemID(v)
	return _u
}

// SetNillableCycleItemID sets the "cycle_item_id" field if the given value is not nil.
func (_u *IngestArchiveUpdate) SetNillableCycleItemID(v *string) *IngestArchiveUpdate {
	if v != nil {
		_u.SetCycleItemID(*v)
	}
	return _u
}

// SetFramework sets the "framework" field.
func (_u *IngestArchiveUpdate) SetFramework(v string) *IngestArchiveUpdate {
	_u.mutation.SetFramework(v)
	return _u
}

// SetNillableFramework sets the "framework" field if the given value is not nil.
func (_u *IngestArchiveUpdate) SetNillableFramework(v *string) *IngestArchiveUpdate {
	if v != nil {
		_u.SetFramework(*v)
	}
	return _u
}

// SetReporterVersion sets the "reporter_version" field.
func (_u *IngestArchiveUpdate) SetReporterVersion(v string) *IngestArchiveUpdate {
	_u.mutation.SetReporterVersion(v)
	return _u
}

// SetNillableReporterVersion sets the "reporter_version" field if the given value is not nil.
func (_u *IngestArchiveUpdate) SetNillableReporterVersion(v *string) *IngestArchiveUpdate {
	if v != nil {
		_u.SetReporterVersion(*v)
	}
	return _u
}

// SetTotalTests sets the "total_tests" field.
func (_u *IngestArchiveUpdate) SetTotalTests(v int) *IngestArchiveUpdate {
	_u.mutation.ResetTotalTests()
	_u.mutation.SetTotalTests(v)
	return _u
}

// SetNillableTotalTests sets the "total_tests" field if the given value is not nil.
func (_u *IngestArchiveUpdate) SetNillableTotalTests(v *int) *IngestArchiveUpdate {
	if v != nil {
		_u.SetTotalTests(*v)
	}
	return _u
}

// AddTotalTests adds value to the "total_tests" field.
func (_u *IngestArchiveUpdate) AddTotalTests(v int) *IngestArchiveUpdate {
	_u.mutation.AddTotalTests(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestArchiveUpdate) SetStatus(v string) *IngestArchiveUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestArchiveUpdate) SetNillableStatus(v *string) *IngestArchiveUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *IngestArchiveUpdate) SetStartTime(v time.Time) *IngestArchiveUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *IngestArchiveUpdate) SetNillableStartTime(v *time.Time) *IngestArchiveUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *IngestArchiveUpdate) SetExpiresAt(v time.Time) *IngestArchiveUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *IngestArchiveUpdate) SetNillableExpiresAt(v *time.Time) *IngestArchiveUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the IngestArchiveMutation object of the builder.
func (_u *IngestArchiveUpdate) Mutation() *IngestArchiveMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IngestArchiveUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestArchiveUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IngestArchiveUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestArchiveUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IngestArchiveUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(ingestarchive.Table, ingestarchive.Columns, sqlgraph.NewFieldSpec(ingestarchive.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(ingestarchive.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(ingestarchive.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(ingestarchive.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CycleID(); ok {
		_spec.SetField(ingestarchive.FieldCycleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CycleItemID(); ok {
		_spec.SetField(ingestarchive.FieldCycleItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Framework(); ok {
		_spec.SetField(ingestarchive.FieldFramework, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReporterVersion(); ok {
		_spec.SetField(ingestarchive.FieldReporterVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalTests(); ok {
		_spec.SetField(ingestarchive.FieldTotalTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTests(); ok {
		_spec.AddField(ingestarchive.FieldTotalTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestarchive.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(ingestarchive.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(ingestarchive.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestarchive.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IngestArchiveUpdateOne is the builder for updating a single IngestArchive entity.
type IngestArchiveUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IngestArchiveMutation
}

// SetOrgID sets the "org_id" field.
func (_u *IngestArchiveUpdateOne) SetOrgID(v string) *IngestArchiveUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *IngestArchiveUpdateOne) SetNillableOrgID(v *string) *IngestArchiveUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *IngestArchiveUpdateOne) SetProjectID(v string) *IngestArchiveUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *IngestArchiveUpdateOne) SetNillableProjectID(v *string) *IngestArchiveUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *IngestArchiveUpdateOne) SetTaskID(v string) *IngestArchiveUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *IngestArchiveUpdateOne) SetNillableTaskID(v *string) *IngestArchiveUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetCycleID sets the "cycle_id" field.
func (_u *IngestArchiveUpdateOne) SetCycleID(v string) *IngestArchiveUpdateOne {
	_u.mutation.SetCycleID(v)
	return _u
}

// SetNillableCycleID sets the "cycle_id" field if the given value is not nil.
func (_u *IngestArchiveUpdateOne) SetNillableCycleID(v *string) *IngestArchiveUpdateOne {
	if v != nil {
		_u.SetCycleID(*v)
	}
	return _u
}

// SetCycleItemID sets the "cycle_item_id" field.
func (_u *IngestArchiveUpdateOne) SetCycleItemID(v string) *IngestArchiveUpdateOne {
	_u.mutation.SetCycleItemID(v)
	return _u
}

// SetNillableCycleItemID sets the "cycle_item_id" field if the given value is not nil.
func (_u *IngestArchiveUpdateOne) SetNillableCycleItemID(v *string) *IngestArchiveUpdateOne {
	if v != nil {
		_u.SetCycleItemID(*v)
	}
	return _u
}

// SetFramework sets the "framework" field.
func (_u *IngestArchiveUpdateOne) SetFramework(v string) *IngestArchiveUpdateOne {
	_u.mutation.SetFramework(v)
	return _u
}

// SetNillableFramework sets the "framework" field if the given value is not nil.
func (_u *IngestArchiveUpdateOne) SetNillableFramework(v *string) *IngestArchiveUpdateOne {
	if v != nil {
		_u.SetFramework(*v)
	}
	return _u
}

// SetReporterVersion sets the "reporter_version" field.
func (_u *IngestArchiveUpdateOne) SetReporterVersion(v string) *IngestArchiveUpdateOne {
	_u.mutation.SetReporterVersion(v)
	return _u
}

// SetNillableReporterVersion sets the "reporter_version" field if the given value is not nil.
func (_u *IngestArchiveUpdateOne) SetNillableReporterVersion(v *string) *IngestArchiveUpdateOne {
	if v != nil {
		_u.SetReporterVersion(*v)
	}
	return _u
}

// SetTotalTests sets the "total_tests" field.
func (_u *IngestArchiveUpdateOne) SetTotalTests(v int) *IngestArchiveUpdateOne {
	_u.mutation.ResetTotalTests()
	_u.mutation.SetTotalTests(v)
	return _u
}

// SetNillableTotalTests sets the "total_tests" field if the given value is not nil.
func (_u *IngestArchiveUpdateOne) SetNillableTotalTests(v *int) *IngestArchiveUpdateOne {
	if v != nil {
		_u.SetTotalTests(*v)
	}
	return _u
}

// AddTotalTests adds value to the "total_tests" field.
func (_u *IngestArchiveUpdateOne) AddTotalTests(v int) *IngestArchiveUpdateOne {
	_u.mutation.AddTotalTests(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestArchiveUpdateOne) SetStatus(v string) *IngestArchiveUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestArchiveUpdateOne) SetNillableStatus(v *string) *IngestArchiveUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *IngestArchiveUpdateOne) SetStartTime(v time.Time) *IngestArchiveUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *IngestArchiveUpdateOne) SetNillableStartTime(v *time.Time) *IngestArchiveUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *IngestArchiveUpdateOne) SetExpiresAt(v time.Time) *IngestArchiveUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *IngestArchiveUpdateOne) SetNillableExpiresAt(v *time.Time) *IngestArchiveUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the IngestArchiveMutation object of the builder.
func (_u *IngestArchiveUpdateOne) Mutation() *IngestArchiveMutation {
	return _u.mutation
}

// Where appends a list predicates to the IngestArchiveUpdate builder.
func (_u *IngestArchiveUpdateOne) Where(ps ...predicate.IngestArchive) *IngestArchiveUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IngestArchiveUpdateOne) Select(field string, fields ...string) *IngestArchiveUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IngestArchive entity.
func (_u *IngestArchiveUpdateOne) Save(ctx context.Context) (*IngestArchive, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestArchiveUpdateOne) SaveX(ctx context.Context) *IngestArchive {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IngestArchiveUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestArchiveUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IngestArchiveUpdateOne) sqlSave(ctx context.Context) (_node *IngestArchive, err error) {
	_spec := sqlgraph.NewUpdateSpec(ingestarchive.Table, ingestarchive.Columns, sqlgraph.NewFieldSpec(ingestarchive.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IngestArchive.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ingestarchive.FieldID)
		for _, f := range fields {
			if !ingestarchive.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ingestarchive.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(ingestarchive.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(ingestarchive.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(ingestarchive.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CycleID(); ok {
		_spec.SetField(ingestarchive.FieldCycleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CycleItemID(); ok {
		_spec.SetField(ingestarchive.FieldCycleItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Framework(); ok {
		_spec.SetField(ingestarchive.FieldFramework, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReporterVersion(); ok {
		_spec.SetField(ingestarchive.FieldReporterVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalTests(); ok {
		_spec.SetField(ingestarchive.FieldTotalTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTests(); ok {
		_spec.AddField(ingestarchive.FieldTotalTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestarchive.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(ingestarchive.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(ingestarchive.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &IngestArchive{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestarchive.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
