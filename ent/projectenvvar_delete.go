// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agnox-io/agnox/ent/predicate"
	"github.com/agnox-io/agnox/ent/projectenvvar"
)

// ProjectEnvVarDelete is the builder for deleting a ProjectEnvVar entity.
type ProjectEnvVarDelete struct {
	config
	hooks    []Hook
	mutation *ProjectEnvVarMutation
}

// Where appends a list predicates to the ProjectEnvVarDelete builder.
func (_d *ProjectEnvVarDelete) Where(ps ...predicate.ProjectEnvVar) *ProjectEnvVarDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProjectEnvVarDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProjectEnvVarDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProjectEnvVarDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(projectenvvar.Table, sqlgraph.NewFieldSpec(projectenvvar.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ProjectEnvVarDeleteOne is the builder for deleting a single ProjectEnvVar entity.
type ProjectEnvVarDeleteOne struct {
	_d *ProjectEnvVarDelete
}

// Where appends a list predicates to the ProjectEnvVarDelete builder.
func (_d *ProjectEnvVarDeleteOne) Where(ps ...predicate.ProjectEnvVar) *ProjectEnvVarDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProjectEnvVarDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{projectenvvar.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProjectEnvVarDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
