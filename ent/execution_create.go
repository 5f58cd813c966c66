// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agnox-io/agnox/ent/execution"
	"github.com/agnox-io/agnox/pkg/models"
)

// ExecutionCreate is the builder for creating a Execution entity.
type ExecutionCreate struct {
	config
	mutation *ExecutionMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *ExecutionCreate) SetTaskID(v string) *ExecutionCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *ExecutionCreate) SetOrgID(v string) *ExecutionCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *ExecutionCreate) SetSource(v execution.Source) *ExecutionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableSource(v *execution.Source) *ExecutionCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExecutionCreate) SetStatus(v execution.Status) *ExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableStatus(v *execution.Status) *ExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetImage sets the "image" field.
func (_c *ExecutionCreate) SetImage(v string) *ExecutionCreate {
	_c.mutation.SetImage(v)
	return _c
}

// SetCommand sets the "command" field.
func (_c *ExecutionCreate) SetCommand(v string) *ExecutionCreate {
	_c.mutation.SetCommand(v)
	return _c
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableCommand(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetCommand(*v)
	}
	return _c
}

// SetFolder sets the "folder" field.
func (_c *ExecutionCreate) SetFolder(v string) *ExecutionCreate {
	_c.mutation.SetFolder(v)
	return _c
}

// SetNillableFolder sets the "folder" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableFolder(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetFolder(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *ExecutionCreate) SetStartTime(v time.Time) *ExecutionCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *ExecutionCreate) SetEndTime(v time.Time) *ExecutionCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableEndTime(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *ExecutionCreate) SetConfig(v models.TaskConfig) *ExecutionCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableConfig(v *models.TaskConfig) *ExecutionCreate {
	if v != nil {
		_c.SetConfig(*v)
	}
	return _c
}

// SetTests sets the "tests" field.
func (_c *ExecutionCreate) SetTests(v []models.TestResult) *ExecutionCreate {
	_c.mutation.SetTests(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *ExecutionCreate) SetOutput(v string) *ExecutionCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableOutput(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetOutput(*v)
	}
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *ExecutionCreate) SetTrigger(v execution.Trigger) *ExecutionCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableTrigger(v *execution.Trigger) *ExecutionCreate {
	if v != nil {
		_c.SetTrigger(*v)
	}
	return _c
}

// SetGroupName sets the "group_name" field.
func (_c *ExecutionCreate) SetGroupName(v string) *ExecutionCreate {
	_c.mutation.SetGroupName(v)
	return _c
}

// SetNillableGroupName sets the "group_name" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableGroupName(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetGroupName(*v)
	}
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *ExecutionCreate) SetBatchID(v string) *ExecutionCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableBatchID(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetBatchID(*v)
	}
	return _c
}

// SetCycleID sets the "cycle_id" field.
func (_c *ExecutionCreate) SetCycleID(v string) *ExecutionCreate {
	_c.mutation.SetCycleID(v)
	return _c
}

// SetNillableCycleID sets the "cycle_id" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableCycleID(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetCycleID(*v)
	}
	return _c
}

// SetCycleItemID sets the "cycle_item_id" field.
func (_c *ExecutionCreate) SetCycleItemID(v string) *ExecutionCreate {
	_c.mutation.SetCycleItemID(v)
	return _c
}

// SetNillableCycleItemID sets the "cycle_item_id" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableCycleItemID(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetCycleItemID(*v)
	}
	return _c
}

// SetIngestMeta sets the "ingest_meta" field.
func (_c *ExecutionCreate) SetIngestMeta(v map[string]interface{}) *ExecutionCreate {
	_c.mutation.SetIngestMeta(v)
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ExecutionCreate) SetDeletedAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableDeletedAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionCreate) SetCreatedAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableCreatedAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExecutionCreate) SetUpdatedAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableUpdatedAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionCreate) SetID(v string) *ExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExecutionMutation object of the builder.
func (_c *ExecutionCreate) Mutation() *ExecutionMutation {
	return _c.mutation
}

// Save creates the Execution in the database.
func (_c *ExecutionCreate) Save(ctx context.Context) (*Execution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionCreate) SaveX(ctx context.Context) *Execution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := execution.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := execution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		v := execution.DefaultTrigger
		_c.mutation.SetTrigger(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := execution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := execution.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Execution.task_id"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "Execution.org_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Execution.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := execution.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Execution.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Execution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Image(); !ok {
		return &ValidationError{Name: "image", err: errors.New(`ent: missing required field "Execution.image"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "Execution.start_time"`)}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "Execution.trigger"`)}
	}
	if v, ok := _c.mutation.Trigger(); ok {
		if err := execution.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "Execution.trigger": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Execution.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Execution.updated_at"`)}
	}
	return nil
}

func (_c *ExecutionCreate) sqlSave(ctx context.Context) (*Execution, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Execution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionCreate) createSpec() (*Execution, *sqlgraph.CreateSpec) {
	var (
		_node = &Execution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(execution.Table, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(execution.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(execution.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(execution.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Image(); ok {
		_spec.SetField(execution.FieldImage, field.TypeString, value)
		_node.Image = value
	}
	if value, ok := _c.mutation.Command(); ok {
		_spec.SetField(execution.FieldCommand, field.TypeString, value)
		_node.Command = value
	}
	if value, ok := _c.mutation.Folder(); ok {
		_spec.SetField(execution.FieldFolder, field.TypeString, value)
		_node.Folder = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(execution.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(execution.FieldEndTime, field.TypeTime, value)
		_node.EndTime = &value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(execution.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Tests(); ok {
		_spec.SetField(execution.FieldTests, field.TypeJSON, value)
		_node.Tests = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(execution.FieldOutput, field.TypeString, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(execution.FieldTrigger, field.TypeEnum, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.GroupName(); ok {
		_spec.SetField(execution.FieldGroupName, field.TypeString, value)
		_node.GroupName = value
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(execution.FieldBatchID, field.TypeString, value)
		_node.BatchID = value
	}
	if value, ok := _c.mutation.CycleID(); ok {
		_spec.SetField(execution.FieldCycleID, field.TypeString, value)
		_node.CycleID = value
	}
	if value, ok := _c.mutation.CycleItemID(); ok {
		_spec.SetField(execution.FieldCycleItemID, field.TypeString, value)
		_node.CycleItemID = value
	}
	if value, ok := _c.mutation.IngestMeta(); ok {
		_spec.SetField(execution.FieldIngestMeta, field.TypeJSON, value)
		_node.IngestMeta = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(execution.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(execution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(execution.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ExecutionCreateBulk is the builder for creating many Execution entities in bulk.
type ExecutionCreateBulk struct {
	config
	err      error
	builders []*ExecutionCreate
}

// Save creates the Execution entities in the database.
func (_c *ExecutionCreateBulk) Save(ctx context.Context) ([]*Execution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Execution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExecutionCreateBulk) SaveX(ctx context.Context) []*Execution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
