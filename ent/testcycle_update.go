// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/agnox-io/agnox/ent/predicate"
	"github.com/agnox-io/agnox/ent/testcycle"
	"github.com/agnox-io/agnox/pkg/models"
)

// TestCycleUpdate is the builder for updating TestCycle entities.
type TestCycleUpdate struct {
	config
	hooks    []Hook
	mutation *TestCycleMutation
}

// Where appends a list predicates to the TestCycleUpdate builder.
func (_u *TestCycleUpdate) Where(ps ...predicate.TestCycle) *TestCycleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *TestCycleUpdate) SetOrgID(v string) *TestCycleUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *TestCycleUpdate) SetNillableOrgID(v *string) *TestCycleUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *TestCycleUpdate) SetProjectID(v string) *TestCycleUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *TestCycleUpdate) SetNillableProjectID(v *string) *TestCycleUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TestCycleUpdate) SetName(v string) *TestCycleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TestCycleUpdate) SetNillableName(v *string) *TestCycleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TestCycleUpdate) SetStatus(v testcycle.Status) *TestCycleUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TestCycleUpdate) SetNillableStatus(v *testcycle.Status) *TestCycleUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetItems sets the "items" field.
func (_u *TestCycleUpdate) SetItems(v []models.CycleItem) *TestCycleUpdate {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *TestCycleUpdate) AppendItems(v []models.CycleItem) *TestCycleUpdate {
	_u.mutation.AppendItems(v)
	return _u
}

// ClearItems clears the value of the "items" field.
func (_u *TestCycleUpdate) ClearItems() *TestCycleUpdate {
	_u.mutation.ClearItems()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *TestCycleUpdate) SetSummary(v models.CycleSummary) *TestCycleUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *TestCycleUpdate) SetNillableSummary(v *models.CycleSummary) *TestCycleUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *TestCycleUpdate) ClearSummary() *TestCycleUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TestCycleUpdate) SetUpdatedAt(v time.Time) *TestCycleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TestCycleMutation object of the builder.
func (_u *TestCycleUpdate) Mutation() *TestCycleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestCycleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestCycleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestCycleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestCycleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TestCycleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := testcycle.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestCycleUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := testcycle.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TestCycle.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TestCycleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testcycle.Table, testcycle.Columns, sqlgraph.NewFieldSpec(testcycle.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(testcycle.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(testcycle.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(testcycle.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(testcycle.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(testcycle.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testcycle.FieldItems, value)
		})
	}
	if _u.mutation.ItemsCleared() {
		_spec.ClearField(testcycle.FieldItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(testcycle.FieldSummary, field.TypeJSON, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(testcycle.FieldSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(testcycle.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testcycle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestCycleUpdateOne is the builder for updating a single TestCycle entity.
type TestCycleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestCycleMutation
}

// SetOrgID sets the "org_id" field.
func (_u *TestCycleUpdateOne) SetOrgID(v string) *TestCycleUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *TestCycleUpdateOne) SetNillableOrgID(v *string) *TestCycleUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *TestCycleUpdateOne) SetProjectID(v string) *TestCycleUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *TestCycleUpdateOne) SetNillableProjectID(v *string) *TestCycleUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TestCycleUpdateOne) SetName(v string) *TestCycleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TestCycleUpdateOne) SetNillableName(v *string) *TestCycleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TestCycleUpdateOne) SetStatus(v testcycle.Status) *TestCycleUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TestCycleUpdateOne) SetNillableStatus(v *testcycle.Status) *TestCycleUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetItems sets the "items" field.
func (_u *TestCycleUpdateOne) SetItems(v []models.CycleItem) *TestCycleUpdateOne {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *TestCycleUpdateOne) AppendItems(v []models.CycleItem) *TestCycleUpdateOne {
	_u.mutation.AppendItems(v)
	return _u
}

// ClearItems clears the value of the "items" field.
func (_u *TestCycleUpdateOne) ClearItems() *TestCycleUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *TestCycleUpdateOne) SetSummary(v models.CycleSummary) *TestCycleUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *TestCycleUpdateOne) SetNillableSummary(v *models.CycleSummary) *TestCycleUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *TestCycleUpdateOne) ClearSummary() *TestCycleUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TestCycleUpdateOne) SetUpdatedAt(v time.Time) *TestCycleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TestCycleMutation object of the builder.
func (_u *TestCycleUpdateOne) Mutation() *TestCycleMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestCycleUpdate builder.
func (_u *TestCycleUpdateOne) Where(ps ...predicate.TestCycle) *TestCycleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestCycleUpdateOne) Select(field string, fields ...string) *TestCycleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestCycle entity.
func (_u *TestCycleUpdateOne) Save(ctx context.Context) (*TestCycle, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestCycleUpdateOne) SaveX(ctx context.Context) *TestCycle {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestCycleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestCycleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TestCycleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := testcycle.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestCycleUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := testcycle.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TestCycle.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TestCycleUpdateOne) sqlSave(ctx context.Context) (_node *TestCycle, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testcycle.Table, testcycle.Columns, sqlgraph.NewFieldSpec(testcycle.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestCycle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testcycle.FieldID)
		for _, f := range fields {
			if !testcycle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testcycle.FieldID {
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
		_spec.SetField(testcycle.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(testcycle.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(testcycle.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(testcycle.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(testcycle.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testcycle.FieldItems, value)
		})
	}
	if _u.mutation.ItemsCleared() {
		_spec.ClearField(testcycle.FieldItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(testcycle.FieldSummary, field.TypeJSON, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(testcycle.FieldSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(testcycle.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TestCycle{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testcycle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
