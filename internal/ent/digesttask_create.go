// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/ko-digest-bot/internal/ent/digesttask"
	"github.com/google/uuid"
)

// DigestTaskCreate is the builder for creating a DigestTask entity.
type DigestTaskCreate struct {
	config
	mutation *DigestTaskMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *DigestTaskCreate) SetCreateTime(v time.Time) *DigestTaskCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *DigestTaskCreate) SetNillableCreateTime(v *time.Time) *DigestTaskCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *DigestTaskCreate) SetUpdateTime(v time.Time) *DigestTaskCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *DigestTaskCreate) SetNillableUpdateTime(v *time.Time) *DigestTaskCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetBundleCategoryID sets the "bundle_category_id" field.
func (_c *DigestTaskCreate) SetBundleCategoryID(v uuid.UUID) *DigestTaskCreate {
	_c.mutation.SetBundleCategoryID(v)
	return _c
}

// SetSelectFrom sets the "select_from" field.
func (_c *DigestTaskCreate) SetSelectFrom(v time.Time) *DigestTaskCreate {
	_c.mutation.SetSelectFrom(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DigestTaskCreate) SetStatus(v digesttask.Status) *DigestTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DigestTaskCreate) SetNillableStatus(v *digesttask.Status) *DigestTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *DigestTaskCreate) SetCompletedAt(v time.Time) *DigestTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *DigestTaskCreate) SetNillableCompletedAt(v *time.Time) *DigestTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DigestTaskCreate) SetErrorMessage(v string) *DigestTaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DigestTaskCreate) SetNillableErrorMessage(v *string) *DigestTaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the DigestTaskMutation object of the builder.
func (_c *DigestTaskCreate) Mutation() *DigestTaskMutation {
	return _c.mutation
}

// Save creates the DigestTask in the database.
func (_c *DigestTaskCreate) Save(ctx context.Context) (*DigestTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DigestTaskCreate) SaveX(ctx context.Context) *DigestTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DigestTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DigestTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DigestTaskCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := digesttask.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := digesttask.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := digesttask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DigestTaskCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "DigestTask.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "DigestTask.update_time"`)}
	}
	if _, ok := _c.mutation.BundleCategoryID(); !ok {
		return &ValidationError{Name: "bundle_category_id", err: errors.New(`ent: missing required field "DigestTask.bundle_category_id"`)}
	}
	if _, ok := _c.mutation.SelectFrom(); !ok {
		return &ValidationError{Name: "select_from", err: errors.New(`ent: missing required field "DigestTask.select_from"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DigestTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := digesttask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DigestTask.status": %w`, err)}
		}
	}
	return nil
}

func (_c *DigestTaskCreate) sqlSave(ctx context.Context) (*DigestTask, error) {
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

func (_c *DigestTaskCreate) createSpec() (*DigestTask, *sqlgraph.CreateSpec) {
	var (
		_node = &DigestTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(digesttask.Table, sqlgraph.NewFieldSpec(digesttask.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(digesttask.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(digesttask.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.BundleCategoryID(); ok {
		_spec.SetField(digesttask.FieldBundleCategoryID, field.TypeUUID, value)
		_node.BundleCategoryID = value
	}
	if value, ok := _c.mutation.SelectFrom(); ok {
		_spec.SetField(digesttask.FieldSelectFrom, field.TypeTime, value)
		_node.SelectFrom = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(digesttask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(digesttask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(digesttask.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// DigestTaskCreateBulk is the builder for creating many DigestTask entities in bulk.
type DigestTaskCreateBulk struct {
	config
	err      error
	builders []*DigestTaskCreate
}

// Save creates the DigestTask entities in the database.
func (_c *DigestTaskCreateBulk) Save(ctx context.Context) ([]*DigestTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DigestTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DigestTaskMutation)
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
func (_c *DigestTaskCreateBulk) SaveX(ctx context.Context) []*DigestTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DigestTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DigestTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
