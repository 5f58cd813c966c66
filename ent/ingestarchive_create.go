// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agnox-io/agnox/ent/ingestarchive"
)

// IngestArchiveCreate is the builder for creating a IngestArchive entity.
type IngestArchiveCreate struct {
	config
	mutation *IngestArchiveMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *IngestArchiveCreate) SetOrgID(v string) *IngestArchiveCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *IngestArchiveCreate) SetProjectID(v string) *IngestArchiveCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *IngestArchiveCreate) SetTaskID(v string) *IngestArchiveCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetCycleID sets the "cycle_id" field.
func (_c *IngestArchiveCreate) SetCycleID(v string) *IngestArchiveCreate {
	_c.mutation.SetCycleID(v)
	return _c
}

// SetCycleItemID sets the "cycle_item_id" field.
func (_c *IngestArchiveCreate) SetCycleItemID(v string) *IngestArchiveCreate {
	_c.mutation.SetCycleItemID(v)
	return _c
}

// SetFramework sets the "framework" field.
func (_c *IngestArchiveCreate) SetFramework(v string) *IngestArchiveCreate {
	_c.mutation.SetFramework(v)
	return _c
}

// SetReporterVersion sets the "reporter_version" field.
func (_c *IngestArchiveCreate) SetReporterVersion(v string) *IngestArchiveCreate {
	_c.mutation.SetReporterVersion(v)
	return _c
}

// SetTotalTests sets the "total_tests" field.
func (_c *IngestArchiveCreate) SetTotalTests(v int) *IngestArchiveCreate {
	_c.mutation.SetTotalTests(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *IngestArchiveCreate) SetStatus(v string) *IngestArchiveCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *IngestArchiveCreate) SetStartTime(v time.Time) *IngestArchiveCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IngestArchiveCreate) SetCreatedAt(v time.Time) *IngestArchiveCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IngestArchiveCreate) SetNillableCreatedAt(v *time.Time) *IngestArchiveCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *IngestArchiveCreate) SetExpiresAt(v time.Time) *IngestArchiveCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *IngestArchiveCreate) SetID(v string) *IngestArchiveCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the IngestArchiveMutation object of the builder.
func (_c *IngestArchiveCreate) Mutation() *IngestArchiveMutation {
	return _c.mutation
}

// Save creates the IngestArchive in the database.
func (_c *IngestArchiveCreate) Save(ctx context.Context) (*IngestArchive, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IngestArchiveCreate) SaveX(ctx context.Context) *IngestArchive {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestArchiveCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestArchiveCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IngestArchiveCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ingestarchive.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IngestArchiveCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "IngestArchive.org_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "IngestArchive.project_id"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "IngestArchive.task_id"`)}
	}
	if _, ok := _c.mutation.CycleID(); !ok {
		return &ValidationError{Name: "cycle_id", err: errors.New(`ent: missing required field "IngestArchive.cycle_id"`)}
	}
	if _, ok := _c.mutation.CycleItemID(); !ok {
		return &ValidationError{Name: "cycle_item_id", err: errors.New(`ent: missing required field "IngestArchive.cycle_item_id"`)}
	}
	if _, ok := _c.mutation.Framework(); !ok {
		return &ValidationError{Name: "framework", err: errors.New(`ent: missing required field "IngestArchive.framework"`)}
	}
	if _, ok := _c.mutation.ReporterVersion(); !ok {
		return &ValidationError{Name: "reporter_version", err: errors.New(`ent: missing required field "IngestArchive.reporter_version"`)}
	}
	if _, ok := _c.mutation.TotalTests(); !ok {
		return &ValidationError{Name: "total_tests", err: errors.New(`ent: missing required field "IngestArchive.total_tests"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "IngestArchive.status"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "IngestArchive.start_time"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IngestArchive.created_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "IngestArchive.expires_at"`)}
	}
	return nil
}

func (_c *IngestArchiveCreate) sqlSave(ctx context.Context) (*IngestArchive, error) {
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
			return nil, fmt.Errorf("unexpected IngestArchive.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IngestArchiveCreate) createSpec() (*IngestArchive, *sqlgraph.CreateSpec) {
	var (
		_node = &IngestArchive{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ingestarchive.Table, sqlgraph.NewFieldSpec(ingestarchive.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(ingestarchive.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(ingestarchive.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(ingestarchive.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.CycleID(); ok {
		_spec.SetField(ingestarchive.FieldCycleID, field.TypeString, value)
		_node.CycleID = value
	}
	if value, ok := _c.mutation.CycleItemID(); ok {
		_spec.SetField(ingestarchive.FieldCycleItemID, field.TypeString, value)
		_node.CycleItemID = value
	}
	if value, ok := _c.mutation.Framework(); ok {
		_spec.SetField(ingestarchive.FieldFramework, field.TypeString, value)
		_node.Framework = value
	}
	if value, ok := _c.mutation.ReporterVersion(); ok {
		_spec.SetField(ingestarchive.FieldReporterVersion, field.TypeString, value)
		_node.ReporterVersion = value
	}
	if value, ok := _c.mutation.TotalTests(); ok {
		_spec.SetField(ingestarchive.FieldTotalTests, field.TypeInt, value)
		_node.TotalTests = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ingestarchive.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(ingestarchive.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ingestarchive.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(ingestarchive.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// IngestArchiveCreateBulk is the builder for creating many IngestArchive entities in bulk.
type IngestArchiveCreateBulk struct {
	config
	err      error
	builders []*IngestArchiveCreate
}

// Save creates the IngestArchive entities in the database.
func (_c *IngestArchiveCreateBulk) Save(ctx context.Context) ([]*IngestArchive, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IngestArchive, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IngestArchiveMutation)
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
func (_c *IngestArchiveCreateBulk) SaveX(ctx context.Context) []*IngestArchive {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestArchiveCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestArchiveCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
