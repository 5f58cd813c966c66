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
	"github.com/agnox-io/agnox/ent/predicate"
	"github.com/agnox-io/agnox/ent/projectenvvar"
	"github.com/agnox-io/agnox/pkg/secrets"
)

// ProjectEnvVarUpdate is the builder for updating ProjectEnvVar entities.
type ProjectEnvVarUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectEnvVarMutation
}

// Where appends a list predicates to the ProjectEnvVarUpdate builder.
func (_u *ProjectEnvVarUpdate) Where(ps ...predicate.ProjectEnvVar) *ProjectEnvVarUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *ProjectEnvVarUpdate) SetOrgID(v string) *ProjectEnvVarUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ProjectEnvVarUpdate) SetNillableOrgID(v *string) *ProjectEnvVarUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ProjectEnvVarUpdate) SetProjectID(v string) *ProjectEnvVarUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ProjectEnvVarUpdate) SetNillableProjectID(v *string) *ProjectEnvVarUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *ProjectEnvVarUpdate) SetKey(v string) *ProjectEnvVarUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ProjectEnvVarUpdate) SetNillableKey(v *string) *ProjectEnvVarUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ProjectEnvVarUpdate) SetValue(v string) *ProjectEnvVarUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ProjectEnvVarUpdate) SetNillableValue(v *string) *ProjectEnvVarUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *ProjectEnvVarUpdate) ClearValue() *ProjectEnvVarUpdate {
	_u.mutation.ClearValue()
	return _u
}

// SetEncrypted sets the "encrypted" field.
func (_u *ProjectEnvVarUpdate) SetEncrypted(v secrets.Payload) *ProjectEnvVarUpdate {
	_u.mutation.SetEncrypted(v)
	return _u
}

// SetNillableEncrypted sets the "encrypted" field if the given value is not nil.
func (_u *ProjectEnvVarUpdate) SetNillableEncrypted(v *secrets.Payload) *ProjectEnvVarUpdate {
	if v != nil {
		_u.SetEncrypted(*v)
	}
	return _u
}

// ClearEncrypted clears the value of the "encrypted" field.
func (_u *ProjectEnvVarUpdate) ClearEncrypted() *ProjectEnvVarUpdate {
	_u.mutation.ClearEncrypted()
	return _u
}

// SetIsSecret sets the "is_secret" field.
func (_u *ProjectEnvVarUpdate) SetIsSecret(v bool) *ProjectEnvVarUpdate {
	_u.mutation.SetIsSecret(v)
	return _u
}

// SetNillableIsSecret sets the "is_secret" field if the given value is not nil.
func (_u *ProjectEnvVarUpdate) SetNillableIsSecret(v *bool) *ProjectEnvVarUpdate {
	if v != nil {
		_u.SetIsSecret(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectEnvVarUpdate) SetUpdatedAt(v time.Time) *ProjectEnvVarUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProjectEnvVarMutation object of the builder.
func (_u *ProjectEnvVarUpdate) Mutation() *ProjectEnvVarMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectEnvVarUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectEnvVarUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectEnvVarUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectEnvVarUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectEnvVarUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := projectenvvar.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProjectEnvVarUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(projectenvvar.Table, projectenvvar.Columns, sqlgraph.NewFieldSpec(projectenvvar.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(projectenvvar.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(projectenvvar.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(projectenvvar.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(projectenvvar.FieldValue, field.TypeString, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(projectenvvar.FieldValue, field.TypeString)
	}
	if value, ok := _u.mutation.Encrypted(); ok {
		_spec.SetField(projectenvvar.FieldEncrypted, field.TypeJSON, value)
	}
	if _u.mutation.EncryptedCleared() {
		_spec.ClearField(projectenvvar.FieldEncrypted, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsSecret(); ok {
		_spec.SetField(projectenvvar.FieldIsSecret, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(projectenvvar.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectenvvar.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectEnvVarUpdateOne is the builder for updating a single ProjectEnvVar entity.
type ProjectEnvVarUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectEnvVarMutation
}

// SetOrgID sets the "org_id" field.
func (_u *ProjectEnvVarUpdateOne) SetOrgID(v string) *ProjectEnvVarUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ProjectEnvVarUpdateOne) SetNillableOrgID(v *string) *ProjectEnvVarUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ProjectEnvVarUpdateOne) SetProjectID(v string) *ProjectEnvVarUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ProjectEnvVarUpdateOne) SetNillableProjectID(v *string) *ProjectEnvVarUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *ProjectEnvVarUpdateOne) SetKey(v string) *ProjectEnvVarUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ProjectEnvVarUpdateOne) SetNillableKey(v *string) *ProjectEnvVarUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ProjectEnvVarUpdateOne) SetValue(v string) *ProjectEnvVarUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ProjectEnvVarUpdateOne) SetNillableValue(v *string) *ProjectEnvVarUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *ProjectEnvVarUpdateOne) ClearValue() *ProjectEnvVarUpdateOne {
	_u.mutation.ClearValue()
	return _u
}

// SetEncrypted sets the "encrypted" field.
func (_u *ProjectEnvVarUpdateOne) SetEncrypted(v secrets.Payload) *ProjectEnvVarUpdateOne {
	_u.mutation.SetEncrypted(v)
	return _u
}

// SetNillableEncrypted sets the "encrypted" field if the given value is not nil.
func (_u *ProjectEnvVarUpdateOne) SetNillableEncrypted(v *secrets.Payload) *ProjectEnvVarUpdateOne {
	if v != nil {
		_u.SetEncrypted(*v)
	}
	return _u
}

// ClearEncrypted clears the value of the "encrypted" field.
func (_u *ProjectEnvVarUpdateOne) ClearEncrypted() *ProjectEnvVarUpdateOne {
	_u.mutation.ClearEncrypted()
	return _u
}

// SetIsSecret sets the "is_secret" field.
func (_u *ProjectEnvVarUpdateOne) SetIsSecret(v bool) *ProjectEnvVarUpdateOne {
	_u.mutation.SetIsSecret(v)
	return _u
}

// SetNillableIsSecret sets the "is_secret" field if the given value is not nil.
func (_u *ProjectEnvVarUpdateOne) SetNillableIsSecret(v *bool) *ProjectEnvVarUpdateOne {
	if v != nil {
		_u.SetIsSecret(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectEnvVarUpdateOne) SetUpdatedAt(v time.Time) *ProjectEnvVarUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProjectEnvVarMutation object of the builder.
func (_u *ProjectEnvVarUpdateOne) Mutation() *ProjectEnvVarMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProjectEnvVarUpdate builder.
func (_u *ProjectEnvVarUpdateOne) Where(ps ...predicate.ProjectEnvVar) *ProjectEnvVarUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectEnvVarUpdateOne) Select(field string, fields ...string) *ProjectEnvVarUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProjectEnvVar entity.
func (_u *ProjectEnvVarUpdateOne) Save(ctx context.Context) (*ProjectEnvVar, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectEnvVarUpdateOne) SaveX(ctx context.Context) *ProjectEnvVar {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectEnvVarUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectEnvVarUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectEnvVarUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := projectenvvar.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProjectEnvVarUpdateOne) sqlSave(ctx context.Context) (_node *ProjectEnvVar, err error) {
	_spec := sqlgraph.NewUpdateSpec(projectenvvar.Table, projectenvvar.Columns, sqlgraph.NewFieldSpec(projectenvvar.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProjectEnvVar.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, projectenvvar.FieldID)
		for _, f := range fields {
			if !projectenvvar.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != projectenvvar.FieldID {
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
		_spec.SetField(projectenvvar.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(projectenvvar.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(projectenvvar.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(projectenvvar.FieldValue, field.TypeString, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(projectenvvar.FieldValue, field.TypeString)
	}
	if value, ok := _u.mutation.Encrypted(); ok {
		_spec.SetField(projectenvvar.FieldEncrypted, field.TypeJSON, value)
	}
	if _u.mutation.EncryptedCleared() {
		_spec.ClearField(projectenvvar.FieldEncrypted, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsSecret(); ok {
		_spec.SetField(projectenvvar.FieldIsSecret, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(projectenvvar.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProjectEnvVar{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectenvvar.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
