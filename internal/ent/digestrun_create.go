// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/ko-digest-bot/internal/ent/digestrun"
)

// DigestRunCreate is the builder for creating a DigestRun entity.
type DigestRunCreate struct {
	config
	mutation *DigestRunMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *DigestRunCreate) SetCreateTime(v time.Time) *DigestRunCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *DigestRunCreate) SetNillableCreateTime(v *time.Time) *DigestRunCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *DigestRunCreate) SetUpdateTime(v time.Time) *DigestRunCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *DigestRunCreate) SetNillableUpdateTime(v *time.Time) *DigestRunCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetSelectFrom sets the "select_from" field.
func (_c *DigestRunCreate) SetSelectFrom(v time.Time) *DigestRunCreate {
	_c.mutation.SetSelectFrom(v)
	return _c
}

// SetRunDate sets the "run_date" field.
func (_c *DigestRunCreate) SetRunDate(v time.Time) *DigestRunCreate {
	_c.mutation.SetRunDate(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DigestRunCreate) SetStatus(v digestrun.Status) *DigestRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DigestRunCreate) SetNillableStatus(v *digestrun.Status) *DigestRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DigestRunCreate) SetErrorMessage(v string) *DigestRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DigestRunCreate) SetNillableErrorMessage(v *string) *DigestRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the DigestRunMutation object of the builder.
func (_c *DigestRunCreate) Mutation() *DigestRunMutation {
	return _c.mutation
}

// Save creates the DigestRun in the database.
func (_c *DigestRunCreate) Save(ctx context.Context) (*DigestRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DigestRunCreate) SaveX(ctx context.Context) *DigestRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DigestRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DigestRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DigestRunCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := digestrun.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := digestrun.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := digestrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DigestRunCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "DigestRun.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "DigestRun.update_time"`)}
	}
	if _, ok := _c.mutation.SelectFrom(); !ok {
		return &ValidationError{Name: "select_from", err: errors.New(`ent: missing required field "DigestRun.select_from"`)}
	}
	if _, ok := _c.mutation.RunDate(); !ok {
		return &ValidationError{Name: "run_date", err: errors.New(`ent: missing required field "DigestRun.run_date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DigestRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := digestrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DigestRun.status": %w`, err)}
		}
	}
	return nil
}

func (_c *DigestRunCreate) sqlSave(ctx context.Context) (*DigestRun, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DigestRunCreate) createSpec() (*DigestRun, *sqlgraph.CreateSpec) {
	var (
		_node = &DigestRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(digestrun.Table, sqlgraph.NewFieldSpec(digestrun.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(digestrun.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(digestrun.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.SelectFrom(); ok {
		_spec.SetField(digestrun.FieldSelectFrom, field.TypeTime, value)
		_node.SelectFrom = value
	}
	if value, ok := _c.mutation.RunDate(); ok {
		_spec.SetField(digestrun.FieldRunDate, field.TypeTime, value)
		_node.RunDate = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(digestrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(digestrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// DigestRunCreateBulk is the builder for creating many DigestRun entities in bulk.
type DigestRunCreateBulk struct {
	config
	err      error
	builders []*DigestRunCreate
}

// Save creates the DigestRun entities in the database.
func (_c *DigestRunCreateBulk) Save(ctx context.Context) ([]*DigestRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DigestRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DigestRunMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *DigestRunCreateBulk) SaveX(ctx context.Context) []*DigestRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DigestRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DigestRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
