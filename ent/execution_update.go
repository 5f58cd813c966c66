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
	"github.com/agnox-io/agnox/ent/execution"
	"github.com/agnox-io/agnox/ent/predicate"
	"github.com/agnox-io/agnox/pkg/models"
)

// ExecutionUpdate is the builder for updating Execution entities.
type ExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionMutation
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (_u *ExecutionUpdate) Where(ps ...predicate.Execution) *ExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *ExecutionUpdate) SetTaskID(v string) *ExecutionUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableTaskID(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *ExecutionUpdate) SetOrgID(v string) *ExecutionUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableOrgID(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ExecutionUpdate) SetSource(v execution.Source) *ExecutionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableSource(v *execution.Source) *ExecutionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionUpdate) SetStatus(v execution.Status) *ExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableStatus(v *execution.Status) *ExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetImage sets the "image" field.
func (_u *ExecutionUpdate) SetImage(v string) *ExecutionUpdate {
	_u.mutation.SetImage(v)
	return _u
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableImage(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetImage(*v)
	}
	return _u
}

// SetCommand sets the "command" field.
func (_u *ExecutionUpdate) SetCommand(v string) *ExecutionUpdate {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableCommand(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *ExecutionUpdate) ClearCommand() *ExecutionUpdate {
	_u.mutation.ClearCommand()
	return _u
}

// SetFolder sets the "folder" field.
func (_u *ExecutionUpdate) SetFolder(v string) *ExecutionUpdate {
	_u.mutation.SetFolder(v)
	return _u
}

// SetNillableFolder sets the "folder" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableFolder(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetFolder(*v)
	}
	return _u
}

// ClearFolder clears the value of the "folder" field.
func (_u *ExecutionUpdate) ClearFolder() *ExecutionUpdate {
	_u.mutation.ClearFolder()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *ExecutionUpdate) SetStartTime(v time.Time) *ExecutionUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableStartTime(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *ExecutionUpdate) SetEndTime(v time.Time) *ExecutionUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableEndTime(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *ExecutionUpdate) ClearEndTime() *ExecutionUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetConfig sets the "config" field.
func (_u *ExecutionUpdate) SetConfig(v models.TaskConfig) *ExecutionUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableConfig(v *models.TaskConfig) *ExecutionUpdate {
	if v != nil {
		_u.SetConfig(*v)
	}
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *ExecutionUpdate) ClearConfig() *ExecutionUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetTests sets the "tests" field.
func (_u *ExecutionUpdate) SetTests(v []models.TestResult) *ExecutionUpdate {
	_u.mutation.SetTests(v)
	return _u
}

// AppendTests appends value to the "tests" field.
func (_u *ExecutionUpdate) AppendTests(v []models.TestResult) *ExecutionUpdate {
	_u.mutation.AppendTests(v)
	return _u
}

// ClearTests clears the value of the "tests" field.
func (_u *ExecutionUpdate) ClearTests() *ExecutionUpdate {
	_u.mutation.ClearTests()
	return _u
}

// SetOutput sets the "output" field.
func (_u *ExecutionUpdate) SetOutput(v string) *ExecutionUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableOutput(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ExecutionUpdate) ClearOutput() *ExecutionUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *ExecutionUpdate) SetTrigger(v execution.Trigger) *ExecutionUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableTrigger(v *execution.Trigger) *ExecutionUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetGroupName sets the "group_name" field.
func (_u *ExecutionUpdate) SetGroupName(v string) *ExecutionUpdate {
	_u.mutation.SetGroupName(v)
	return _u
}

// SetNillableGroupName sets the "group_name" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableGroupName(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetGroupName(*v)
	}
	return _u
}

// ClearGroupName clears the value of the "group_name" field.
func (_u *ExecutionUpdate) ClearGroupName() *ExecutionUpdate {
	_u.mutation.ClearGroupName()
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *ExecutionUpdate) SetBatchID(v string) *ExecutionUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableBatchID(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *ExecutionUpdate) ClearBatchID() *ExecutionUpdate {
	_u.mutation.ClearBatchID()
	return _u
}

// SetCycleID sets the "cycle_id" field.
func (_u *ExecutionUpdate) SetCycleID(v string) *ExecutionUpdate {
	_u.mutation.SetCycleID(v)
	return _u
}

// SetNillableCycleID sets the "cycle_id" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableCycleID(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetCycleID(*v)
	}
	return _u
}

// ClearCycleID clears the value of the "cycle_id" field.
func (_u *ExecutionUpdate) ClearCycleID() *ExecutionUpdate {
	_u.mutation.ClearCycleID()
	return _u
}

// SetCycleItemID sets the "cycle_item_id" field.
func (_u *ExecutionUpdate) SetCycleItemID(v string) *ExecutionUpdate {
	_u.mutation.SetCycleItemID(v)
	return _u
}

// SetNillableCycleItemID sets the "cycle_item_id" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableCycleItemID(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetCycleItemID(*v)
	}
	return _u
}

// ClearCycleItemID clears the value of the "cycle_item_id" field.
func (_u *ExecutionUpdate) ClearCycleItemID() *ExecutionUpdate {
	_u.mutation.ClearCycleItemID()
	return _u
}

// SetIngestMeta sets the "ingest_meta" field.
func (_u *ExecutionUpdate) SetIngestMeta(v map[string]interface{}) *ExecutionUpdate {
	_u.mutation.SetIngestMeta(v)
	return _u
}

// ClearIngestMeta clears the value of the "ingest_meta" field.
func (_u *ExecutionUpdate) ClearIngestMeta() *ExecutionUpdate {
	_u.mutation.ClearIngestMeta()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ExecutionUpdate) SetDeletedAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableDeletedAt(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ExecutionUpdate) ClearDeletedAt() *ExecutionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExecutionUpdate) SetUpdatedAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ExecutionMutation object of the builder.
func (_u *ExecutionUpdate) Mutation() *ExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExecutionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := execution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := execution.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Execution.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := execution.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "Execution.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(execution.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(execution.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(execution.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Image(); ok {
		_spec.SetField(execution.FieldImage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(execution.FieldCommand, field.TypeString, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(execution.FieldCommand, field.TypeString)
	}
	if value, ok := _u.mutation.Folder(); ok {
		_spec.SetField(execution.FieldFolder, field.TypeString, value)
	}
	if _u.mutation.FolderCleared() {
		_spec.ClearField(execution.FieldFolder, field.TypeString)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(execution.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(execution.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(execution.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(execution.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(execution.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tests(); ok {
		_spec.SetField(execution.FieldTests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, execution.FieldTests, value)
		})
	}
	if _u.mutation.TestsCleared() {
		_spec.ClearField(execution.FieldTests, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(execution.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(execution.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(execution.FieldTrigger, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GroupName(); ok {
		_spec.SetField(execution.FieldGroupName, field.TypeString, value)
	}
	if _u.mutation.GroupNameCleared() {
		_spec.ClearField(execution.FieldGroupName, field.TypeString)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(execution.FieldBatchID, field.TypeString, value)
	}
	if _u.mutation.BatchIDCleared() {
		_spec.ClearField(execution.FieldBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.CycleID(); ok {
		_spec.SetField(execution.FieldCycleID, field.TypeString, value)
	}
	if _u.mutation.CycleIDCleared() {
		_spec.ClearField(execution.FieldCycleID, field.TypeString)
	}
	if value, ok := _u.mutation.CycleItemID(); ok {
		_spec.SetField(execution.FieldCycleItemID, field.TypeString, value)
	}
	if _u.mutation.CycleItemIDCleared() {
		_spec.ClearField(execution.FieldCycleItemID, field.TypeString)
	}
	if value, ok := _u.mutation.IngestMeta(); ok {
		_spec.SetField(execution.FieldIngestMeta, field.TypeJSON, value)
	}
	if _u.mutation.IngestMetaCleared() {
		_spec.ClearField(execution.FieldIngestMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(execution.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(execution.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(execution.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionUpdateOne is the builder for updating a single Execution entity.
type ExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionMutation
}

// SetTaskID sets the "task_id" field.
func (_u *ExecutionUpdateOne) SetTaskID(v string) *ExecutionUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableTaskID(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *ExecutionUpdateOne) SetOrgID(v string) *ExecutionUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableOrgID(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ExecutionUpdateOne) SetSource(v execution.Source) *ExecutionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableSource(v *execution.Source) *ExecutionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionUpdateOne) SetStatus(v execution.Status) *ExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableStatus(v *execution.Status) *ExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetImage sets the "image" field.
func (_u *ExecutionUpdateOne) SetImage(v string) *ExecutionUpdateOne {
	_u.mutation.SetImage(v)
	return _u
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableImage(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetImage(*v)
	}
	return _u
}

// SetCommand sets the "command" field.
func (_u *ExecutionUpdateOne) SetCommand(v string) *ExecutionUpdateOne {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableCommand(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *ExecutionUpdateOne) ClearCommand() *ExecutionUpdateOne {
	_u.mutation.ClearCommand()
	return _u
}

// SetFolder sets the "folder" field.
func (_u *ExecutionUpdateOne) SetFolder(v string) *ExecutionUpdateOne {
	_u.mutation.SetFolder(v)
	return _u
}

// SetNillableFolder sets the "folder" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableFolder(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetFolder(*v)
	}
	return _u
}

// ClearFolder clears the value of the "folder" field.
func (_u *ExecutionUpdateOne) ClearFolder() *ExecutionUpdateOne {
	_u.mutation.ClearFolder()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *ExecutionUpdateOne) SetStartTime(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableStartTime(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *ExecutionUpdateOne) SetEndTime(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableEndTime(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *ExecutionUpdateOne) ClearEndTime() *ExecutionUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetConfig sets the "config" field.
func (_u *ExecutionUpdateOne) SetConfig(v models.TaskConfig) *ExecutionUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableConfig(v *models.TaskConfig) *ExecutionUpdateOne {
	if v != nil {
		_u.SetConfig(*v)
	}
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *ExecutionUpdateOne) ClearConfig() *ExecutionUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetTests sets the "tests" field.
func (_u *ExecutionUpdateOne) SetTests(v []models.TestResult) *ExecutionUpdateOne {
	_u.mutation.SetTests(v)
	return _u
}

// AppendTests appends value to the "tests" field.
func (_u *ExecutionUpdateOne) AppendTests(v []models.TestResult) *ExecutionUpdateOne {
	_u.mutation.AppendTests(v)
	return _u
}

// ClearTests clears the value of the "tests" field.
func (_u *ExecutionUpdateOne) ClearTests() *ExecutionUpdateOne {
	_u.mutation.ClearTests()
	return _u
}

// SetOutput sets the "output" field.
func (_u *ExecutionUpdateOne) SetOutput(v string) *ExecutionUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableOutput(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ExecutionUpdateOne) ClearOutput() *ExecutionUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *ExecutionUpdateOne) SetTrigger(v execution.Trigger) *ExecutionUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableTrigger(v *execution.Trigger) *ExecutionUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetGroupName sets the "group_name" field.
func (_u *ExecutionUpdateOne) SetGroupName(v string) *ExecutionUpdateOne {
	_u.mutation.SetGroupName(v)
	return _u
}

// SetNillableGroupName sets the "group_name" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableGroupName(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetGroupName(*v)
	}
	return _u
}

// ClearGroupName clears the value of the "group_name" field.
func (_u *ExecutionUpdateOne) ClearGroupName() *ExecutionUpdateOne {
	_u.mutation.ClearGroupName()
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *ExecutionUpdateOne) SetBatchID(v string) *ExecutionUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableBatchID(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *ExecutionUpdateOne) ClearBatchID() *ExecutionUpdateOne {
	_u.mutation.ClearBatchID()
	return _u
}

// SetCycleID sets the "cycle_id" field.
func (_u *ExecutionUpdateOne) SetCycleID(v string) *ExecutionUpdateOne {
	_u.mutation.SetCycleID(v)
	return _u
}

// SetNillableCycleID sets the "cycle_id" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableCycleID(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetCycleID(*v)
	}
	return _u
}

// ClearCycleID clears the value of the "cycle_id" field.
func (_u *ExecutionUpdateOne) ClearCycleID() *ExecutionUpdateOne {
	_u.mutation.ClearCycleID()
	return _u
}

// SetCycleItemID sets the "cycle_item_id" field.
func (_u *ExecutionUpdateOne) SetCycleItemID(v string) *ExecutionUpdateOne {
	_u.mutation.SetCycleItemID(v)
	return _u
}

// SetNillableCycleItemID sets the "cycle_item_id" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableCycleItemID(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetCycleItemID(*v)
	}
	return _u
}

// ClearCycleItemID clears the value of the "cycle_item_id" field.
func (_u *ExecutionUpdateOne) ClearCycleItemID() *ExecutionUpdateOne {
	_u.mutation.ClearCycleItemID()
	return _u
}

// SetIngestMeta sets the "ingest_meta" field.
func (_u *ExecutionUpdateOne) SetIngestMeta(v map[string]interface{}) *ExecutionUpdateOne {
	_u.mutation.SetIngestMeta(v)
	return _u
}

// ClearIngestMeta clears the value of the "ingest_meta" field.
func (_u *ExecutionUpdateOne) ClearIngestMeta() *ExecutionUpdateOne {
	_u.mutation.ClearIngestMeta()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ExecutionUpdateOne) SetDeletedAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableDeletedAt(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ExecutionUpdateOne) ClearDeletedAt() *ExecutionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExecutionUpdateOne) SetUpdatedAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ExecutionMutation object of the builder.
func (_u *ExecutionUpdateOne) Mutation() *ExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (_u *ExecutionUpdateOne) Where(ps ...predicate.Execution) *ExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionUpdateOne) Select(field string, fields ...string) *ExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Execution entity.
func (_u *ExecutionUpdateOne) Save(ctx context.Context) (*Execution, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionUpdateOne) SaveX(ctx context.Context) *Execution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExecutionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := execution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := execution.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Execution.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := execution.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "Execution.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionUpdateOne) sqlSave(ctx context.Context) (_node *Execution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Execution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, execution.FieldID)
		for _, f := range fields {
			if !execution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != execution.FieldID {
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
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(execution.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(execution.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(execution.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Image(); ok {
		_spec.SetField(execution.FieldImage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(execution.FieldCommand, field.TypeString, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(execution.FieldCommand, field.TypeString)
	}
	if value, ok := _u.mutation.Folder(); ok {
		_spec.SetField(execution.FieldFolder, field.TypeString, value)
	}
	if _u.mutation.FolderCleared() {
		_spec.ClearField(execution.FieldFolder, field.TypeString)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(execution.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(execution.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(execution.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(execution.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(execution.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tests(); ok {
		_spec.SetField(execution.FieldTests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, execution.FieldTests, value)
		})
	}
	if _u.mutation.TestsCleared() {
		_spec.ClearField(execution.FieldTests, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(execution.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(execution.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(execution.FieldTrigger, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GroupName(); ok {
		_spec.SetField(execution.FieldGroupName, field.TypeString, value)
	}
	if _u.mutation.GroupNameCleared() {
		_spec.ClearField(execution.FieldGroupName, field.TypeString)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(execution.FieldBatchID, field.TypeString, value)
	}
	if _u.mutation.BatchIDCleared() {
		_spec.ClearField(execution.FieldBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.CycleID(); ok {
		_spec.SetField(execution.FieldCycleID, field.TypeString, value)
	}
	if _u.mutation.CycleIDCleared() {
		_spec.ClearField(execution.FieldCycleID, field.TypeString)
	}
	if value, ok := _u.mutation.CycleItemID(); ok {
		_spec.SetField(execution.FieldCycleItemID, field.TypeString, value)
	}
	if _u.mutation.CycleItemIDCleared() {
		_spec.ClearField(execution.FieldCycleItemID, field.TypeString)
	}
	if value, ok := _u.mutation.IngestMeta(); ok {
		_spec.SetField(execution.FieldIngestMeta, field.TypeJSON, value)
	}
	if _u.mutation.IngestMetaCleared() {
		_spec.ClearField(execution.FieldIngestMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(execution.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(execution.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(execution.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Execution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
