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
	"github.com/fachebot/ko-digest-bot/internal/ent/dailydose"
	"github.com/fachebot/ko-digest-bot/internal/ent/predicate"
)

// DailyDoseUpdate is the builder for updating DailyDose entities.
type DailyDoseUpdate struct {
	config
	hooks    []Hook
	mutation *DailyDoseMutation
}

// Where appends a list predicates to the DailyDoseUpdate builder.
func (_u *DailyDoseUpdate) Where(ps ...predicate.DailyDose) *DailyDoseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *DailyDoseUpdate) SetUpdateTime(v time.Time) *DailyDoseUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetQuote sets the "quote" field.
func (_u *DailyDoseUpdate) SetQuote(v string) *DailyDoseUpdate {
	_u.mutation.SetQuote(v)
	return _u
}

// SetNillableQuote sets the "quote" field if the given value is not nil.
func (_u *DailyDoseUpdate) SetNillableQuote(v *string) *DailyDoseUpdate {
	if v != nil {
		_u.SetQuote(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *DailyDoseUpdate) SetSource(v string) *DailyDoseUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DailyDoseUpdate) SetNillableSource(v *string) *DailyDoseUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDdType sets the "dd_type" field.
func (_u *DailyDoseUpdate) SetDdType(v string) *DailyDoseUpdate {
	_u.mutation.SetDdType(v)
	return _u
}

// SetNillableDdType sets the "dd_type" field if the given value is not nil.
func (_u *DailyDoseUpdate) SetNillableDdType(v *string) *DailyDoseUpdate {
	if v != nil {
		_u.SetDdType(*v)
	}
	return _u
}

// Mutation returns the DailyDoseMutation object of the builder.
func (_u *DailyDoseUpdate) Mutation() *DailyDoseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DailyDoseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyDoseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DailyDoseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyDoseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DailyDoseUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := dailydose.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

func (_u *DailyDoseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(dailydose.Table, dailydose.Columns, sqlgraph.NewFieldSpec(dailydose.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(dailydose.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Quote(); ok {
		_spec.SetField(dailydose.FieldQuote, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(dailydose.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.DdType(); ok {
		_spec.SetField(dailydose.FieldDdType, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailydose.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DailyDoseUpdateOne is the builder for updating a single DailyDose entity.
type DailyDoseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DailyDoseMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *DailyDoseUpdateOne) SetUpdateTime(v time.Time) *DailyDoseUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetQuote sets the "quote" field.
func (_u *DailyDoseUpdateOne) SetQuote(v string) *DailyDoseUpdateOne {
	_u.mutation.SetQuote(v)
	return _u
}

// SetNillableQuote sets the "quote" field if the given value is not nil.
func (_u *DailyDoseUpdateOne) SetNillableQuote(v *string) *DailyDoseUpdateOne {
	if v != nil {
		_u.SetQuote(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *DailyDoseUpdateOne) SetSource(v string) *DailyDoseUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DailyDoseUpdateOne) SetNillableSource(v *string) *DailyDoseUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDdType sets the "dd_type" field.
func (_u *DailyDoseUpdateOne) SetDdType(v string) *DailyDoseUpdateOne {
	_u.mutation.SetDdType(v)
	return _u
}

// SetNillableDdType sets the "dd_type" field if the given value is not nil.
func (_u *DailyDoseUpdateOne) SetNillableDdType(v *string) *DailyDoseUpdateOne {
	if v != nil {
		_u.SetDdType(*v)
	}
	return _u
}

// Mutation returns the DailyDoseMutation object of the builder.
func (_u *DailyDoseUpdateOne) Mutation() *DailyDoseMutation {
	return _u.mutation
}

// Where appends a list predicates to the DailyDoseUpdate builder.
func (_u *DailyDoseUpdateOne) Where(ps ...predicate.DailyDose) *DailyDoseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DailyDoseUpdateOne) Select(field string, fields ...string) *DailyDoseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DailyDose entity.
func (_u *DailyDoseUpdateOne) Save(ctx context.Context) (*DailyDose, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyDoseUpdateOne) SaveX(ctx context.Context) *DailyDose {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DailyDoseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyDoseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DailyDoseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := dailydose.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

func (_u *DailyDoseUpdateOne) sqlSave(ctx context.Context) (_node *DailyDose, err error) {
	_spec := sqlgraph.NewUpdateSpec(dailydose.Table, dailydose.Columns, sqlgraph.NewFieldSpec(dailydose.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DailyDose.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dailydose.FieldID)
		for _, f := range fields {
			if !dailydose.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dailydose.FieldID {
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
		_spec.SetField(dailydose.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Quote(); ok {
		_spec.SetField(dailydose.FieldQuote, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(dailydose.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.DdType(); ok {
		_spec.SetField(dailydose.FieldDdType, field.TypeString, value)
	}
	_node = &DailyDose{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailydose.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
