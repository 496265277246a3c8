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
	"github.com/fachebot/ko-digest-bot/internal/ent/knowledgeobject"
	"github.com/fachebot/ko-digest-bot/internal/ent/kosummary"
	"github.com/fachebot/ko-digest-bot/internal/ent/predicate"
	"github.com/google/uuid"
)

// KoSummaryUpdate is the builder for updating KoSummary entities.
type KoSummaryUpdate struct {
	config
	hooks    []Hook
	mutation *KoSummaryMutation
}

// Where appends a list predicates to the KoSummaryUpdate builder.
func (_u *KoSummaryUpdate) Where(ps ...predicate.KoSummary) *KoSummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *KoSummaryUpdate) SetUpdateTime(v time.Time) *KoSummaryUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetKoID sets the "ko_id" field.
func (_u *KoSummaryUpdate) SetKoID(v uuid.UUID) *KoSummaryUpdate {
	_u.mutation.SetKoID(v)
	return _u
}

// SetNillableKoID sets the "ko_id" field if the given value is not nil.
func (_u *KoSummaryUpdate) SetNillableKoID(v *uuid.UUID) *KoSummaryUpdate {
	if v != nil {
		_u.SetKoID(*v)
	}
	return _u
}

// SetKoType sets the "ko_type" field.
func (_u *KoSummaryUpdate) SetKoType(v kosummary.KoType) *KoSummaryUpdate {
	_u.mutation.SetKoType(v)
	return _u
}

// SetNillableKoType sets the "ko_type" field if the given value is not nil.
func (_u *KoSummaryUpdate) SetNillableKoType(v *kosummary.KoType) *KoSummaryUpdate {
	if v != nil {
		_u.SetKoType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *KoSummaryUpdate) SetTitle(v string) *KoSummaryUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *KoSummaryUpdate) SetNillableTitle(v *string) *KoSummaryUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummaryText sets the "summary_text" field.
func (_u *KoSummaryUpdate) SetSummaryText(v string) *KoSummaryUpdate {
	_u.mutation.SetSummaryText(v)
	return _u
}

// SetNillableSummaryText sets the "summary_text" field if the given value is not nil.
func (_u *KoSummaryUpdate) SetNillableSummaryText(v *string) *KoSummaryUpdate {
	if v != nil {
		_u.SetSummaryText(*v)
	}
	return _u
}

// ClearSummaryText clears the value of the "summary_text" field.
func (_u *KoSummaryUpdate) ClearSummaryText() *KoSummaryUpdate {
	_u.mutation.ClearSummaryText()
	return _u
}

// SetSummaryOneLiner sets the "summary_one_liner" field.
func (_u *KoSummaryUpdate) SetSummaryOneLiner(v string) *KoSummaryUpdate {
	_u.mutation.SetSummaryOneLiner(v)
	return _u
}

// SetNillableSummaryOneLiner sets the "summary_one_liner" field if the given value is not nil.
func (_u *KoSummaryUpdate) SetNillableSummaryOneLiner(v *string) *KoSummaryUpdate {
	if v != nil {
		_u.SetSummaryOneLiner(*v)
	}
	return _u
}

// ClearSummaryOneLiner clears the value of the "summary_one_liner" field.
func (_u *KoSummaryUpdate) ClearSummaryOneLiner() *KoSummaryUpdate {
	_u.mutation.ClearSummaryOneLiner()
	return _u
}

// SetKnowledgeObjectID sets the "knowledge_object" edge to the KnowledgeObject entity by ID.
func (_u *KoSummaryUpdate) SetKnowledgeObjectID(id uuid.UUID) *KoSummaryUpdate {
	_u.mutation.SetKnowledgeObjectID(id)
	return _u
}

// SetKnowledgeObject sets the "knowledge_object" edge to the KnowledgeObject entity.
func (_u *KoSummaryUpdate) SetKnowledgeObject(v *KnowledgeObject) *KoSummaryUpdate {
	return _u.SetKnowledgeObjectID(v.ID)
}

// Mutation returns the KoSummaryMutation object of the builder.
func (_u *KoSummaryUpdate) Mutation() *KoSummaryMutation {
	return _u.mutation
}

// ClearKnowledgeObject clears the "knowledge_object" edge to the KnowledgeObject entity.
func (_u *KoSummaryUpdate) ClearKnowledgeObject() *KoSummaryUpdate {
	_u.mutation.ClearKnowledgeObject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KoSummaryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KoSummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KoSummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KoSummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KoSummaryUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := kosummary.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KoSummaryUpdate) check() error {
	if v, ok := _u.mutation.KoType(); ok {
		if err := kosummary.KoTypeValidator(v); err != nil {
			return &ValidationError{Name: "ko_type", err: fmt.Errorf(`ent: validator failed for field "KoSummary.ko_type": %w`, err)}
		}
	}
	if _u.mutation.KnowledgeObjectCleared() && len(_u.mutation.KnowledgeObjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KoSummary.knowledge_object"`)
	}
	return nil
}

func (_u *KoSummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(kosummary.Table, kosummary.Columns, sqlgraph.NewFieldSpec(kosummary.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(kosummary.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.KoType(); ok {
		_spec.SetField(kosummary.FieldKoType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(kosummary.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SummaryText(); ok {
		_spec.SetField(kosummary.FieldSummaryText, field.TypeString, value)
	}
	if _u.mutation.SummaryTextCleared() {
		_spec.ClearField(kosummary.FieldSummaryText, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryOneLiner(); ok {
		_spec.SetField(kosummary.FieldSummaryOneLiner, field.TypeString, value)
	}
	if _u.mutation.SummaryOneLinerCleared() {
		_spec.ClearField(kosummary.FieldSummaryOneLiner, field.TypeString)
	}
	if _u.mutation.KnowledgeObjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   kosummary.KnowledgeObjectTable,
			Columns: []string{kosummary.KnowledgeObjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeObjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   kosummary.KnowledgeObjectTable,
			Columns: []string{kosummary.KnowledgeObjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{kosummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KoSummaryUpdateOne is the builder for updating a single KoSummary entity.
type KoSummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KoSummaryMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *KoSummaryUpdateOne) SetUpdateTime(v time.Time) *KoSummaryUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetKoID sets the "ko_id" field.
func (_u *KoSummaryUpdateOne) SetKoID(v uuid.UUID) *KoSummaryUpdateOne {
	_u.mutation.SetKoID(v)
	return _u
}

// SetNillableKoID sets the "ko_id" field if the given value is not nil.
func (_u *KoSummaryUpdateOne) SetNillableKoID(v *uuid.UUID) *KoSummaryUpdateOne {
	if v != nil {
		_u.SetKoID(*v)
	}
	return _u
}

// SetKoType sets the "ko_type" field.
func (_u *KoSummaryUpdateOne) SetKoType(v kosummary.KoType) *KoSummaryUpdateOne {
	_u.mutation.SetKoType(v)
	return _u
}

// SetNillableKoType sets the "ko_type" field if the given value is not nil.
func (_u *KoSummaryUpdateOne) SetNillableKoType(v *kosummary.KoType) *KoSummaryUpdateOne {
	if v != nil {
		_u.SetKoType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *KoSummaryUpdateOne) SetTitle(v string) *KoSummaryUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *KoSummaryUpdateOne) SetNillableTitle(v *string) *KoSummaryUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummaryText sets the "summary_text" field.
func (_u *KoSummaryUpdateOne) SetSummaryText(v string) *KoSummaryUpdateOne {
	_u.mutation.SetSummaryText(v)
	return _u
}

// SetNillableSummaryText sets the "summary_text" field if the given value is not nil.
func (_u *KoSummaryUpdateOne) SetNillableSummaryText(v *string) *KoSummaryUpdateOne {
	if v != nil {
		_u.SetSummaryText(*v)
	}
	return _u
}

// ClearSummaryText clears the value of the "summary_text" field.
func (_u *KoSummaryUpdateOne) ClearSummaryText() *KoSummaryUpdateOne {
	_u.mutation.ClearSummaryText()
	return _u
}

// SetSummaryOneLiner sets the "summary_one_liner" field.
func (_u *KoSummaryUpdateOne) SetSummaryOneLiner(v string) *KoSummaryUpdateOne {
	_u.mutation.SetSummaryOneLiner(v)
	return _u
}

// SetNillableSummaryOneLiner sets the "summary_one_liner" field if the given value is not nil.
func (_u *KoSummaryUpdateOne) SetNillableSummaryOneLiner(v *string) *KoSummaryUpdateOne {
	if v != nil {
		_u.SetSummaryOneLiner(*v)
	}
	return _u
}

// ClearSummaryOneLiner clears the value of the "summary_one_liner" field.
func (_u *KoSummaryUpdateOne) ClearSummaryOneLiner() *KoSummaryUpdateOne {
	_u.mutation.ClearSummaryOneLiner()
	return _u
}

// SetKnowledgeObjectID sets the "knowledge_object" edge to the KnowledgeObject entity by ID.
func (_u *KoSummaryUpdateOne) SetKnowledgeObjectID(id uuid.UUID) *KoSummaryUpdateOne {
	_u.mutation.SetKnowledgeObjectID(id)
	return _u
}

// SetKnowledgeObject sets the "knowledge_object" edge to the KnowledgeObject entity.
func (_u *KoSummaryUpdateOne) SetKnowledgeObject(v *KnowledgeObject) *KoSummaryUpdateOne {
	return _u.SetKnowledgeObjectID(v.ID)
}

// Mutation returns the KoSummaryMutation object of the builder.
func (_u *KoSummaryUpdateOne) Mutation() *KoSummaryMutation {
	return _u.mutation
}

// ClearKnowledgeObject clears the "knowledge_object" edge to the KnowledgeObject entity.
func (_u *KoSummaryUpdateOne) ClearKnowledgeObject() *KoSummaryUpdateOne {
	_u.mutation.ClearKnowledgeObject()
	return _u
}

// Where appends a list predicates to the KoSummaryUpdate builder.
func (_u *KoSummaryUpdateOne) Where(ps ...predicate.KoSummary) *KoSummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KoSummaryUpdateOne) Select(field string, fields ...string) *KoSummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KoSummary entity.
func (_u *KoSummaryUpdateOne) Save(ctx context.Context) (*KoSummary, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KoSummaryUpdateOne) SaveX(ctx context.Context) *KoSummary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KoSummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KoSummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KoSummaryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := kosummary.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KoSummaryUpdateOne) check() error {
	if v, ok := _u.mutation.KoType(); ok {
		if err := kosummary.KoTypeValidator(v); err != nil {
			return &ValidationError{Name: "ko_type", err: fmt.Errorf(`ent: validator failed for field "KoSummary.ko_type": %w`, err)}
		}
	}
	if _u.mutation.KnowledgeObjectCleared() && len(_u.mutation.KnowledgeObjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KoSummary.knowledge_object"`)
	}
	return nil
}

func (_u *KoSummaryUpdateOne) sqlSave(ctx context.Context) (_node *KoSummary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(kosummary.Table, kosummary.Columns, sqlgraph.NewFieldSpec(kosummary.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KoSummary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, kosummary.FieldID)
		for _, f := range fields {
			if !kosummary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != kosummary.FieldID {
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
		_spec.SetField(kosummary.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.KoType(); ok {
		_spec.SetField(kosummary.FieldKoType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(kosummary.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SummaryText(); ok {
		_spec.SetField(kosummary.FieldSummaryText, field.TypeString, value)
	}
	if _u.mutation.SummaryTextCleared() {
		_spec.ClearField(kosummary.FieldSummaryText, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryOneLiner(); ok {
		_spec.SetField(kosummary.FieldSummaryOneLiner, field.TypeString, value)
	}
	if _u.mutation.SummaryOneLinerCleared() {
		_spec.ClearField(kosummary.FieldSummaryOneLiner, field.TypeString)
	}
	if _u.mutation.KnowledgeObjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   kosummary.KnowledgeObjectTable,
			Columns: []string{kosummary.KnowledgeObjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeObjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   kosummary.KnowledgeObjectTable,
			Columns: []string{kosummary.KnowledgeObjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &KoSummary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{kosummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
