// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agnox-io/agnox/ent/projectenvvar"
	"github.com/agnox-io/agnox/pkg/secrets"
)

// ProjectEnvVarCreate is the builder for creating a ProjectEnvVar entity.
type ProjectEnvVarCreate struct {
	config
	mutation *ProjectEnvVarMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *ProjectEnvVarCreate) SetOrgID(v string) *ProjectEnvVarCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *ProjectEnvVarCreate) SetProjectID(v string) *ProjectEnvVarCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *ProjectEnvVarCreate) SetKey(v string) *ProjectEnvVarCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *ProjectEnvVarCreate) SetValue(v string) *ProjectEnvVarCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_c *ProjectEnvVarCreate) SetNillableValue(v *string) *ProjectEnvVarCreate {
	if v != nil {
		_c.SetValue(*v)
	}
	return _c
}

// SetEncrypted sets the "encrypted" field.
func (_c *ProjectEnvVarCreate) SetEncrypted(v secrets.Payload) *ProjectEnvVarCreate {
	_c.mutation.SetEncrypted(v)
	return _c
}

// SetNillableEncrypted sets the "encrypted" field if the given value is not nil.
func (_c *ProjectEnvVarCreate) SetNillableEncrypted(v *secrets.Payload) *ProjectEnvVarCreate {
	if v != nil {
		_c.SetEncrypted(*v)
	}
	return _c
}

// SetIsSecret sets the "is_secret" field.
func (_c *ProjectEnvVarCreate) SetIsSecret(v bool) *ProjectEnvVarCreate {
	_c.mutation.SetIsSecret(v)
	return _c
}

// SetNillableIsSecret sets the "is_secret" field if the given value is not nil.
func (_c *ProjectEnvVarCreate) SetNillableIsSecret(v *bool) *ProjectEnvVarCreate {
	if v != nil {
		_c.SetIsSecret(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProjectEnvVarCreate) SetCreatedAt(v time.Time) *ProjectEnvVarCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProjectEnvVarCreate) SetNillableCreatedAt(v *time.Time) *ProjectEnvVarCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProjectEnvVarCreate) SetUpdatedAt(v time.Time) *ProjectEnvVarCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProjectEnvVarCreate) SetNillableUpdatedAt(v *time.Time) *ProjectEnvVarCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProjectEnvVarCreate) SetID(v string) *ProjectEnvVarCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProjectEnvVarMutation object of the builder.
func (_c *ProjectEnvVarCreate) Mutation() *ProjectEnvVarMutation {
	return _c.mutation
}

// Save creates the ProjectEnvVar in the database.
func (_c *ProjectEnvVarCreate) Save(ctx context.Context) (*ProjectEnvVar, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectEnvVarCreate) SaveX(ctx context.Context) *ProjectEnvVar {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectEnvVarCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectEnvVarCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectEnvVarCreate) defaults() {
	if _, ok := _c.mutation.IsSecret(); !ok {
		v := projectenvvar.DefaultIsSecret
		_c.mutation.SetIsSecret(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := projectenvvar.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := projectenvvar.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectEnvVarCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "ProjectEnvVar.org_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ProjectEnvVar.project_id"`)}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "ProjectEnvVar.key"`)}
	}
	if _, ok := _c.mutation.IsSecret(); !ok {
		return &ValidationError{Name: "is_secret", err: errors.New(`ent: missing required field "ProjectEnvVar.is_secret"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProjectEnvVar.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProjectEnvVar.updated_at"`)}
	}
	return nil
}

func (_c *ProjectEnvVarCreate) sqlSave(ctx context.Context) (*ProjectEnvVar, error) {
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
			return nil, fmt.Errorf("unexpected ProjectEnvVar.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProjectEnvVarCreate) createSpec() (*ProjectEnvVar, *sqlgraph.CreateSpec) {
	var (
		_node = &ProjectEnvVar{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(projectenvvar.Table, sqlgraph.NewFieldSpec(projectenvvar.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(projectenvvar.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(projectenvvar.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(projectenvvar.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(projectenvvar.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Encrypted(); ok {
		_spec.SetField(projectenvvar.FieldEncrypted, field.TypeJSON, value)
		_node.Encrypted = value
	}
	if value, ok := _c.mutation.IsSecret(); ok {
		_spec.SetField(projectenvvar.FieldIsSecret, field.TypeBool, value)
		_node.IsSecret = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(projectenvvar.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(projectenvvar.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProjectEnvVarCreateBulk is the builder for creating many ProjectEnvVar entities in bulk.
type ProjectEnvVarCreateBulk struct {
	config
	err      error
	builders []*ProjectEnvVarCreate
}

// Save creates the ProjectEnvVar entities in the database.
func (_c *ProjectEnvVarCreateBulk) Save(ctx context.Context) ([]*ProjectEnvVar, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProjectEnvVar, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectEnvVarMutation)
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
func (_c *ProjectEnvVarCreateBulk) SaveX(ctx context.Context) []*ProjectEnvVar {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectEnvVarCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectEnvVarCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
