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
	"github.com/agnox-io/agnox/ent/schedule"
)

// ScheduleUpdate is the builder for updating Schedule entities.
type ScheduleUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduleMutation
}

// Where appends a list predicates to the ScheduleUpdate builder.
func (_u *ScheduleUpdate) Where(ps ...predicate.Schedule) *ScheduleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *ScheduleUpdate) SetOrgID(v string) *ScheduleUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableOrgID(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ScheduleUpdate) SetProjectID(v string) *ScheduleUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableProjectID(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *ScheduleUpdate) ClearProjectID() *ScheduleUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetName sets the "name" field.
func (_u *ScheduleUpdate) SetName(v string) *ScheduleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableName(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCronExpression sets the "cron_expression" field.
func (_u *ScheduleUpdate) SetCronExpression(v string) *ScheduleUpdate {
	_u.mutation.SetCronExpression(v)
	return _u
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableCronExpression(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetCronExpression(*v)
	}
	return _u
}

// SetEnvironment sets the "environment" field.
func (_u *ScheduleUpdate) SetEnvironment(v string) *ScheduleUpdate {
	_u.mutation.SetEnvironment(v)
	return _u
}

// SetNillableEnvironment sets the "environment" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableEnvironment(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetEnvironment(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ScheduleUpdate) SetIsActive(v bool) *ScheduleUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableIsActive(v *bool) *ScheduleUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetImage sets the "image" field.
func (_u *ScheduleUpdate) SetImage(v string) *ScheduleUpdate {
	_u.mutation.SetImage(v)
	return _u
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableImage(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetImage(*v)
	}
	return _u
}

// SetFolder sets the "folder" field.
func (_u *ScheduleUpdate) SetFolder(v string) *ScheduleUpdate {
	_u.mutation.SetFolder(v)
	return _u
}

// SetNillableFolder sets the "folder" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableFolder(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetFolder(*v)
	}
	return _u
}

// ClearFolder clears the value of the "folder" field.
func (_u *ScheduleUpdate) ClearFolder() *ScheduleUpdate {
	_u.mutation.ClearFolder()
	return _u
}

// SetBaseURL sets the "base_url" field.
func (_u *ScheduleUpdate) SetBaseURL(v string) *ScheduleUpdate {
	_u.mutation.SetBaseURL(v)
	return _u
}

// SetNillableBaseURL sets the "base_url" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableBaseURL(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetBaseURL(*v)
	}
	return _u
}

// ClearBaseURL clears the value of the "base_url" field.
func (_u *ScheduleUpdate) ClearBaseURL() *ScheduleUpdate {
	_u.mutation.ClearBaseURL()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduleUpdate) SetUpdatedAt(v time.Time) *ScheduleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScheduleMutation object of the builder.
func (_u *ScheduleUpdate) Mutation() *ScheduleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := schedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ScheduleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(schedule.Table, schedule.Columns, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(schedule.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(schedule.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(schedule.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(schedule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CronExpression(); ok {
		_spec.SetField(schedule.FieldCronExpression, field.TypeString, value)
	}
	if value, ok := _u.mutation.Environment(); ok {
		_spec.SetField(schedule.FieldEnvironment, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(schedule.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Image(); ok {
		_spec.SetField(schedule.FieldImage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Folder(); ok {
		_spec.SetField(schedule.FieldFolder, field.TypeString, value)
	}
	if _u.mutation.FolderCleared() {
		_spec.ClearField(schedule.FieldFolder, field.TypeString)
	}
	if value, ok := _u.mutation.BaseURL(); ok {
		_spec.SetField(schedule.FieldBaseURL, field.TypeString, value)
	}
	if _u.mutation.BaseURLCleared() {
		_spec.ClearField(schedule.FieldBaseURL, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(schedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduleUpdateOne is the builder for updating a single Schedule entity.
type ScheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduleMutation
}

// SetOrgID sets the "org_id" field.
func (_u *ScheduleUpdateOne) SetOrgID(v string) *ScheduleUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableOrgID(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ScheduleUpdateOne) SetProjectID(v string) *ScheduleUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableProjectID(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *ScheduleUpdateOne) ClearProjectID() *ScheduleUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetName sets the "name" field.
func (_u *ScheduleUpdateOne) SetName(v string) *ScheduleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableName(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCronExpression sets the "cron_expression" field.
func (_u *ScheduleUpdateOne) SetCronExpression(v string) *ScheduleUpdateOne {
	_u.mutation.SetCronExpression(v)
	return _u
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableCronExpression(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetCronExpression(*v)
	}
	return _u
}

// SetEnvironment sets the "environment" field.
func (_u *ScheduleUpdateOne) SetEnvironment(v string) *ScheduleUpdateOne {
	_u.mutation.SetEnvironment(v)
	return _u
}

// SetNillableEnvironment sets the "environment" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableEnvironment(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetEnvironment(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ScheduleUpdateOne) SetIsActive(v bool) *ScheduleUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableIsActive(v *bool) *ScheduleUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetImage sets the "image" field.
func (_u *ScheduleUpdateOne) SetImage(v string) *ScheduleUpdateOne {
	_u.mutation.SetImage(v)
	return _u
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableImage(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetImage(*v)
	}
	return _u
}

// SetFolder sets the "folder" field.
func (_u *ScheduleUpdateOne) SetFolder(v string) *ScheduleUpdateOne {
	_u.mutation.SetFolder(v)
	return _u
}

// SetNillableFolder sets the "folder" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableFolder(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetFolder(*v)
	}
	return _u
}

// ClearFolder clears the value of the "folder" field.
func (_u *ScheduleUpdateOne) ClearFolder() *ScheduleUpdateOne {
	_u.mutation.ClearFolder()
	return _u
}

// SetBaseURL sets the "base_url" field.
func (_u *ScheduleUpdateOne) SetBaseURL(v string) *ScheduleUpdateOne {
	_u.mutation.SetBaseURL(v)
	return _u
}

// SetNillableBaseURL sets the "base_url" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableBaseURL(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetBaseURL(*v)
	}
	return _u
}

// ClearBaseURL clears the value of the "base_url" field.
func (_u *ScheduleUpdateOne) ClearBaseURL() *ScheduleUpdateOne {
	_u.mutation.ClearBaseURL()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduleUpdateOne) SetUpdatedAt(v time.Time) *ScheduleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScheduleMutation object of the builder.
func (_u *ScheduleUpdateOne) Mutation() *ScheduleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduleUpdate builder.
func (_u *ScheduleUpdateOne) Where(ps ...predicate.Schedule) *ScheduleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduleUpdateOne) Select(field string, fields ...string) *ScheduleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Schedule entity.
func (_u *ScheduleUpdateOne) Save(ctx context.Context) (*Schedule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleUpdateOne) SaveX(ctx context.Context) *Schedule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := schedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ScheduleUpdateOne) sqlSave(ctx context.Context) (_node *Schedule, err error) {
	_spec := sqlgraph.NewUpdateSpec(schedule.Table, schedule.Columns, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Schedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schedule.FieldID)
		for _, f := range fields {
			if !schedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != schedule.FieldID {
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
		_spec.SetField(schedule.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(schedule.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(schedule.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(schedule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CronExpression(); ok {
		_spec.SetField(schedule.FieldCronExpression, field.TypeString, value)
	}
	if value, ok := _u.mutation.Environment(); ok {
		_spec.SetField(schedule.FieldEnvironment, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(schedule.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Image(); ok {
		_spec.SetField(schedule.FieldImage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Folder(); ok {
		_spec.SetField(schedule.FieldFolder, field.TypeString, value)
	}
	if _u.mutation.FolderCleared() {
		_spec.ClearField(schedule.FieldFolder, field.TypeString)
	}
	if value, ok := _u.mutation.BaseURL(); ok {
		_spec.SetField(schedule.FieldBaseURL, field.TypeString, value)
	}
	if _u.mutation.BaseURLCleared() {
		_spec.ClearField(schedule.FieldBaseURL, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(schedule.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Schedule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
