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
	"github.com/fachebot/ko-digest-bot/internal/ent/digestrun"
	"github.com/fachebot/ko-digest-bot/internal/ent/predicate"
)

// DigestRunUpdate is the builder for updating DigestRun entities.
type DigestRunUpdate struct {
	config
	hooks    []Hook
	mutation *DigestRunMutation
}

// Where appends a list predicates to the DigestRunUpdate builder.
func (_u *DigestRunUpdate) Where(ps ...predicate.DigestRun) *DigestRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *DigestRunUpdate) SetUpdateTime(v time.Time) *DigestRunUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetSelectFrom sets the "select_from" field.
func (_u *DigestRunUpdate) SetSelectFrom(v time.Time) *DigestRunUpdate {
	_u.mutation.SetSelectFrom(v)
	return _u
}

// SetNillableSelectFrom sets the "select_from" field if the given value is not nil.
func (_u *DigestRunUpdate) SetNillableSelectFrom(v *time.Time) *DigestRunUpdate {
	if v != nil {
		_u.SetSelectFrom(*v)
	}
	return _u
}

// SetRunDate sets the "run_date" field.
func (_u *DigestRunUpdate) SetRunDate(v time.Time) *DigestRunUpdate {
	_u.mutation.SetRunDate(v)
	return _u
}

// SetNillableRunDate sets the "run_date" field if the given value is not nil.
func (_u *DigestRunUpdate) SetNillableRunDate(v *time.Time) *DigestRunUpdate {
	if v != nil {
		_u.SetRunDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DigestRunUpdate) SetStatus(v digestrun.Status) *DigestRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DigestRunUpdate) SetNillableStatus(v *digestrun.Status) *DigestRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DigestRunUpdate) SetErrorMessage(v string) *DigestRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DigestRunUpdate) SetNillableErrorMessage(v *string) *DigestRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DigestRunUpdate) ClearErrorMessage() *DigestRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the DigestRunMutation object of the builder.
func (_u *DigestRunUpdate) Mutation() *DigestRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DigestRunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DigestRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DigestRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DigestRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DigestRunUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := digestrun.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DigestRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := digestrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DigestRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DigestRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(digestrun.Table, digestrun.Columns, sqlgraph.NewFieldSpec(digestrun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(digestrun.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SelectFrom(); ok {
		_spec.SetField(digestrun.FieldSelectFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RunDate(); ok {
		_spec.SetField(digestrun.FieldRunDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(digestrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(digestrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(digestrun.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{digestrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DigestRunUpdateOne is the builder for updating a single DigestRun entity.
type DigestRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DigestRunMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *DigestRunUpdateOne) SetUpdateTime(v time.Time) *DigestRunUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetSelectFrom sets the "select_from" field.
func (_u *DigestRunUpdateOne) SetSelectFrom(v time.Time) *DigestRunUpdateOne {
	_u.mutation.SetSelectFrom(v)
	return _u
}

// SetNillableSelectFrom sets the "select_from" field if the given value is not nil.
func (_u *DigestRunUpdateOne) SetNillableSelectFrom(v *time.Time) *DigestRunUpdateOne {
	if v != nil {
		_u.SetSelectFrom(*v)
	}
	return _u
}

// SetRunDate sets the "run_date" field.
func (_u *DigestRunUpdateOne) SetRunDate(v time.Time) *DigestRunUpdateOne {
	_u.mutation.SetRunDate(v)
	return _u
}

// SetNillableRunDate sets the "run_date" field if the given value is not nil.
func (_u *DigestRunUpdateOne) SetNillableRunDate(v *time.Time) *DigestRunUpdateOne {
	if v != nil {
		_u.SetRunDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DigestRunUpdateOne) SetStatus(v digestrun.Status) *DigestRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DigestRunUpdateOne) SetNillableStatus(v *digestrun.Status) *DigestRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DigestRunUpdateOne) SetErrorMessage(v string) *DigestRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DigestRunUpdateOne) SetNillableErrorMessage(v *string) *DigestRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DigestRunUpdateOne) ClearErrorMessage() *DigestRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the DigestRunMutation object of the builder.
func (_u *DigestRunUpdateOne) Mutation() *DigestRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the DigestRunUpdate builder.
func (_u *DigestRunUpdateOne) Where(ps ...predicate.DigestRun) *DigestRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DigestRunUpdateOne) Select(field string, fields ...string) *DigestRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DigestRun entity.
func (_u *DigestRunUpdateOne) Save(ctx context.Context) (*DigestRun, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DigestRunUpdateOne) SaveX(ctx context.Context) *DigestRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DigestRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DigestRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DigestRunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := digestrun.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DigestRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := digestrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DigestRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DigestRunUpdateOne) sqlSave(ctx context.Context) (_node *DigestRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(digestrun.Table, digestrun.Columns, sqlgraph.NewFieldSpec(digestrun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DigestRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, digestrun.FieldID)
		for _, f := range fields {
			if !digestrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != digestrun.FieldID {
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
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(digestrun.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SelectFrom(); ok {
		_spec.SetField(digestrun.FieldSelectFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RunDate(); ok {
		_spec.SetField(digestrun.FieldRunDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(digestrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(digestrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(digestrun.FieldErrorMessage, field.TypeString)
	}
	_node = &DigestRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{digestrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
