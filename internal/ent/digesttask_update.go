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
	"github.com/fachebot/ko-digest-bot/internal/ent/digesttask"
	"github.com/fachebot/ko-digest-bot/internal/ent/predicate"
	"github.com/google/uuid"
)

// DigestTaskUpdate is the builder for updating DigestTask entities.
type DigestTaskUpdate struct {
	config
	hooks    []Hook
	mutation *DigestTaskMutation
}

// Where appends a list predicates to the DigestTaskUpdate builder.
func (_u *DigestTaskUpdate) Where(ps ...predicate.DigestTask) *DigestTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *DigestTaskUpdate) SetUpdateTime(v time.Time) *DigestTaskUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetBundleCategoryID sets the "bundle_category_id" field.
func (_u *DigestTaskUpdate) SetBundleCategoryID(v uuid.UUID) *DigestTaskUpdate {
	_u.mutation.SetBundleCategoryID(v)
	return _u
}

// SetNillableBundleCategoryID sets the "bundle_category_id" field if the given value is not nil.
func (_u *DigestTaskUpdate) SetNillableBundleCategoryID(v *uuid.UUID) *DigestTaskUpdate {
	if v != nil {
		_u.SetBundleCategoryID(*v)
	}
	return _u
}

// SetSelectFrom sets the "select_from" field.
func (_u *DigestTaskUpdate) SetSelectFrom(v time.Time) *DigestTaskUpdate {
	_u.mutation.SetSelectFrom(v)
	return _u
}

// SetNillableSelectFrom sets the "select_from" field if the given value is not nil.
func (_u *DigestTaskUpdate) SetNillableSelectFrom(v *time.Time) *DigestTaskUpdate {
	if v != nil {
		_u.SetSelectFrom(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DigestTaskUpdate) SetStatus(v digesttask.Status) *DigestTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DigestTaskUpdate) SetNillableStatus(v *digesttask.Status) *DigestTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DigestTaskUpdate) SetCompletedAt(v time.Time) *DigestTaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DigestTaskUpdate) SetNillableCompletedAt(v *time.Time) *DigestTaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DigestTaskUpdate) ClearCompletedAt() *DigestTaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DigestTaskUpdate) SetErrorMessage(v string) *DigestTaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DigestTaskUpdate) SetNillableErrorMessage(v *string) *DigestTaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DigestTaskUpdate) ClearErrorMessage() *DigestTaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the DigestTaskMutation object of the builder.
func (_u *DigestTaskUpdate) Mutation() *DigestTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DigestTaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DigestTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DigestTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DigestTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DigestTaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := digesttask.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DigestTaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := digesttask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DigestTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DigestTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(digesttask.Table, digesttask.Columns, sqlgraph.NewFieldSpec(digesttask.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(digesttask.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BundleCategoryID(); ok {
		_spec.SetField(digesttask.FieldBundleCategoryID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SelectFrom(); ok {
		_spec.SetField(digesttask.FieldSelectFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(digesttask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(digesttask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(digesttask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(digesttask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(digesttask.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{digesttask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DigestTaskUpdateOne is the builder for updating a single DigestTask entity.
type DigestTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DigestTaskMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *DigestTaskUpdateOne) SetUpdateTime(v time.Time) *DigestTaskUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetBundleCategoryID sets the "bundle_category_id" field.
func (_u *DigestTaskUpdateOne) SetBundleCategoryID(v uuid.UUID) *DigestTaskUpdateOne {
	_u.mutation.SetBundleCategoryID(v)
	return _u
}

// SetNillableBundleCategoryID sets the "bundle_category_id" field if the given value is not nil.
func (_u *DigestTaskUpdateOne) SetNillableBundleCategoryID(v *uuid.UUID) *DigestTaskUpdateOne {
	if v != nil {
		_u.SetBundleCategoryID(*v)
	}
	return _u
}

// SetSelectFrom sets the "select_from" field.
func (_u *DigestTaskUpdateOne) SetSelectFrom(v time.Time) *DigestTaskUpdateOne {
	_u.mutation.SetSelectFrom(v)
	return _u
}

// SetNillableSelectFrom sets the "select_from" field if the given value is not nil.
func (_u *DigestTaskUpdateOne) SetNillableSelectFrom(v *time.Time) *DigestTaskUpdateOne {
	if v != nil {
		_u.SetSelectFrom(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DigestTaskUpdateOne) SetStatus(v digesttask.Status) *DigestTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DigestTaskUpdateOne) SetNillableStatus(v *digesttask.Status) *DigestTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DigestTaskUpdateOne) SetCompletedAt(v time.Time) *DigestTaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DigestTaskUpdateOne) SetNillableCompletedAt(v *time.Time) *DigestTaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DigestTaskUpdateOne) ClearCompletedAt() *DigestTaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DigestTaskUpdateOne) SetErrorMessage(v string) *DigestTaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DigestTaskUpdateOne) SetNillableErrorMessage(v *string) *DigestTaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DigestTaskUpdateOne) ClearErrorMessage() *DigestTaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the DigestTaskMutation object of the builder.
func (_u *DigestTaskUpdateOne) Mutation() *DigestTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the DigestTaskUpdate builder.
func (_u *DigestTaskUpdateOne) Where(ps ...predicate.DigestTask) *DigestTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DigestTaskUpdateOne) Select(field string, fields ...string) *DigestTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DigestTask entity.
func (_u *DigestTaskUpdateOne) Save(ctx context.Context) (*DigestTask, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DigestTaskUpdateOne) SaveX(ctx context.Context) *DigestTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DigestTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DigestTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DigestTaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := digesttask.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DigestTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := digesttask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DigestTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DigestTaskUpdateOne) sqlSave(ctx context.Context) (_node *DigestTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(digesttask.Table, digesttask.Columns, sqlgraph.NewFieldSpec(digesttask.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DigestTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, digesttask.FieldID)
		for _, f := range fields {
			if !digesttask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != digesttask.FieldID {
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
		_spec.SetField(digesttask.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BundleCategoryID(); ok {
		_spec.SetField(digesttask.FieldBundleCategoryID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SelectFrom(); ok {
		_spec.SetField(digesttask.FieldSelectFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(digesttask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(digesttask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(digesttask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(digesttask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(digesttask.FieldErrorMessage, field.TypeString)
	}
	_node = &DigestTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{digesttask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
