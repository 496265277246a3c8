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
	"github.com/fachebot/ko-digest-bot/internal/ent/bundle"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundlecategory"
	"github.com/fachebot/ko-digest-bot/internal/ent/knowledgeobject"
	"github.com/fachebot/ko-digest-bot/internal/ent/kosummary"
	"github.com/fachebot/ko-digest-bot/internal/ent/predicate"
	"github.com/google/uuid"
)

// KnowledgeObjectUpdate is the builder for updating KnowledgeObject entities.
type KnowledgeObjectUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeObjectMutation
}

// Where appends a list predicates to the KnowledgeObjectUpdate builder.
func (_u *KnowledgeObjectUpdate) Where(ps ...predicate.KnowledgeObject) *KnowledgeObjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *KnowledgeObjectUpdate) SetUpdateTime(v time.Time) *KnowledgeObjectUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetKoType sets the "ko_type" field.
func (_u *KnowledgeObjectUpdate) SetKoType(v knowledgeobject.KoType) *KnowledgeObjectUpdate {
	_u.mutation.SetKoType(v)
	return _u
}

// SetNillableKoType sets the "ko_type" field if the given value is not nil.
func (_u *KnowledgeObjectUpdate) SetNillableKoType(v *knowledgeobject.KoType) *KnowledgeObjectUpdate {
	if v != nil {
		_u.SetKoType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *KnowledgeObjectUpdate) SetTitle(v string) *KnowledgeObjectUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *KnowledgeObjectUpdate) SetNillableTitle(v *string) *KnowledgeObjectUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *KnowledgeObjectUpdate) SetDeleted(v bool) *KnowledgeObjectUpdate {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *KnowledgeObjectUpdate) SetNillableDeleted(v *bool) *KnowledgeObjectUpdate {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetParentID sets the "parent" edge to the KnowledgeObject entity by ID.
func (_u *KnowledgeObjectUpdate) SetParentID(id uuid.UUID) *KnowledgeObjectUpdate {
	_u.mutation.SetParentID(id)
	return _u
}

// SetNillableParentID sets the "parent" edge to the KnowledgeObject entity by ID if the given value is not nil.
func (_u *KnowledgeObjectUpdate) SetNillableParentID(id *uuid.UUID) *KnowledgeObjectUpdate {
	if id != nil {
		_u = _u.SetParentID(*id)
	}
	return _u
}

// SetParent sets the "parent" edge to the KnowledgeObject entity.
func (_u *KnowledgeObjectUpdate) SetParent(v *KnowledgeObject) *KnowledgeObjectUpdate {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the KnowledgeObject entity by IDs.
func (_u *KnowledgeObjectUpdate) AddChildIDs(ids ...uuid.UUID) *KnowledgeObjectUpdate {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the KnowledgeObject entity.
func (_u *KnowledgeObjectUpdate) AddChildren(v ...*KnowledgeObject) *KnowledgeObjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// AddBundleCategoryIDs adds the "bundle_categories" edge to the BundleCategory entity by IDs.
func (_u *KnowledgeObjectUpdate) AddBundleCategoryIDs(ids ...uuid.UUID) *KnowledgeObjectUpdate {
	_u.mutation.AddBundleCategoryIDs(ids...)
	return _u
}

// AddBundleCategories adds the "bundle_categories" edges to the BundleCategory entity.
func (_u *KnowledgeObjectUpdate) AddBundleCategories(v ...*BundleCategory) *KnowledgeObjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBundleCategoryIDs(ids...)
}

// SetSummaryID sets the "summary" edge to the KoSummary entity by ID.
func (_u *KnowledgeObjectUpdate) SetSummaryID(id int) *KnowledgeObjectUpdate {
	_u.mutation.SetSummaryID(id)
	return _u
}

// SetNillableSummaryID sets the "summary" edge to the KoSummary entity by ID if the given value is not nil.
func (_u *KnowledgeObjectUpdate) SetNillableSummaryID(id *int) *KnowledgeObjectUpdate {
	if id != nil {
		_u = _u.SetSummaryID(*id)
	}
	return _u
}

// SetSummary sets the "summary" edge to the KoSummary entity.
func (_u *KnowledgeObjectUpdate) SetSummary(v *KoSummary) *KnowledgeObjectUpdate {
	return _u.SetSummaryID(v.ID)
}

// AddBundleIDs adds the "bundles" edge to the Bundle entity by IDs.
func (_u *KnowledgeObjectUpdate) AddBundleIDs(ids ...uuid.UUID) *KnowledgeObjectUpdate {
	_u.mutation.AddBundleIDs(ids...)
	return _u
}

// AddBundles adds the "bundles" edges to the Bundle entity.
func (_u *KnowledgeObjectUpdate) AddBundles(v ...*Bundle) *KnowledgeObjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBundleIDs(ids...)
}

// Mutation returns the KnowledgeObjectMutation object of the builder.
func (_u *KnowledgeObjectUpdate) Mutation() *KnowledgeObjectMutation {
	return _u.mutation
}

// ClearParent clears the "parent" edge to the KnowledgeObject entity.
func (_u *KnowledgeObjectUpdate) ClearParent() *KnowledgeObjectUpdate {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the KnowledgeObject entity.
func (_u *KnowledgeObjectUpdate) ClearChildren() *KnowledgeObjectUpdate {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to KnowledgeObject entities by IDs.
func (_u *KnowledgeObjectUpdate) RemoveChildIDs(ids ...uuid.UUID) *KnowledgeObjectUpdate {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to KnowledgeObject entities.
func (_u *KnowledgeObjectUpdate) RemoveChildren(v ...*KnowledgeObject) *KnowledgeObjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearBundleCategories clears all "bundle_categories" edges to the BundleCategory entity.
func (_u *KnowledgeObjectUpdate) ClearBundleCategories() *KnowledgeObjectUpdate {
	_u.mutation.ClearBundleCategories()
	return _u
}

// RemoveBundleCategoryIDs removes the "bundle_categories" edge to BundleCategory entities by IDs.
func (_u *KnowledgeObjectUpdate) RemoveBundleCategoryIDs(ids ...uuid.UUID) *KnowledgeObjectUpdate {
	_u.mutation.RemoveBundleCategoryIDs(ids...)
	return _u
}

// RemoveBundleCategories removes "bundle_categories" edges to BundleCategory entities.
func (_u *KnowledgeObjectUpdate) RemoveBundleCategories(v ...*BundleCategory) *KnowledgeObjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBundleCategoryIDs(ids...)
}

// ClearSummary clears the "summary" edge to the KoSummary entity.
func (_u *KnowledgeObjectUpdate) ClearSummary() *KnowledgeObjectUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// ClearBundles clears all "bundles" edges to the Bundle entity.
func (_u *KnowledgeObjectUpdate) ClearBundles() *KnowledgeObjectUpdate {
	_u.mutation.ClearBundles()
	return _u
}

// RemoveBundleIDs removes the "bundles" edge to Bundle entities by IDs.
func (_u *KnowledgeObjectUpdate) RemoveBundleIDs(ids ...uuid.UUID) *KnowledgeObjectUpdate {
	_u.mutation.RemoveBundleIDs(ids...)
	return _u
}

// RemoveBundles removes "bundles" edges to Bundle entities.
func (_u *KnowledgeObjectUpdate) RemoveBundles(v ...*Bundle) *KnowledgeObjectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBundleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeObjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeObjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeObjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeObjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KnowledgeObjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := knowledgeobject.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeObjectUpdate) check() error {
	if v, ok := _u.mutation.KoType(); ok {
		if err := knowledgeobject.KoTypeValidator(v); err != nil {
			return &ValidationError{Name: "ko_type", err: fmt.Errorf(`ent: validator failed for field "KnowledgeObject.ko_type": %w`, err)}
		}
	}
	return nil
}

func (_u *KnowledgeObjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgeobject.Table, knowledgeobject.Columns, sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(knowledgeobject.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.KoType(); ok {
		_spec.SetField(knowledgeobject.FieldKoType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(knowledgeobject.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(knowledgeobject.FieldDeleted, field.TypeBool, value)
	}
	if _u.mutation.ParentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knowledgeobject.ParentTable,
			Columns: []string{knowledgeobject.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knowledgeobject.ParentTable,
			Columns: []string{knowledgeobject.ParentColumn},
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
	if _u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowledgeobject.ChildrenTable,
			Columns: []string{knowledgeobject.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowledgeobject.ChildrenTable,
			Columns: []string{knowledgeobject.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowledgeobject.ChildrenTable,
			Columns: []string{knowledgeobject.ChildrenColumn},
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
	if _u.mutation.BundleCategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   knowledgeobject.BundleCategoriesTable,
			Columns: knowledgeobject.BundleCategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundlecategory.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBundleCategoriesIDs(); len(nodes) > 0 && !_u.mutation.BundleCategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   knowledgeobject.BundleCategoriesTable,
			Columns: knowledgeobject.BundleCategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundlecategory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BundleCategoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   knowledgeobject.BundleCategoriesTable,
			Columns: knowledgeobject.BundleCategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundlecategory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SummaryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   knowledgeobject.SummaryTable,
			Columns: []string{knowledgeobject.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(kosummary.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummaryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   knowledgeobject.SummaryTable,
			Columns: []string{knowledgeobject.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(kosummary.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BundlesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   knowledgeobject.BundlesTable,
			Columns: knowledgeobject.BundlesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundle.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBundlesIDs(); len(nodes) > 0 && !_u.mutation.BundlesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   knowledgeobject.BundlesTable,
			Columns: knowledgeobject.BundlesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundle.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BundlesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   knowledgeobject.BundlesTable,
			Columns: knowledgeobject.BundlesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundle.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgeobject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeObjectUpdateOne is the builder for updating a single KnowledgeObject entity.
type KnowledgeObjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeObjectMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *KnowledgeObjectUpdateOne) SetUpdateTime(v time.Time) *KnowledgeObjectUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetKoType sets the "ko_type" field.
func (_u *KnowledgeObjectUpdateOne) SetKoType(v knowledgeobject.KoType) *KnowledgeObjectUpdateOne {
	_u.mutation.SetKoType(v)
	return _u
}

// SetNillableKoType sets the "ko_type" field if the given value is not nil.
func (_u *KnowledgeObjectUpdateOne) SetNillableKoType(v *knowledgeobject.KoType) *KnowledgeObjectUpdateOne {
	if v != nil {
		_u.SetKoType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *KnowledgeObjectUpdateOne) SetTitle(v string) *KnowledgeObjectUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *KnowledgeObjectUpdateOne) SetNillableTitle(v *string) *KnowledgeObjectUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *KnowledgeObjectUpdateOne) SetDeleted(v bool) *KnowledgeObjectUpdateOne {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *KnowledgeObjectUpdateOne) SetNillableDeleted(v *bool) *KnowledgeObjectUpdateOne {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetParentID sets the "parent" edge to the KnowledgeObject entity by ID.
func (_u *KnowledgeObjectUpdateOne) SetParentID(id uuid.UUID) *KnowledgeObjectUpdateOne {
	_u.mutation.SetParentID(id)
	return _u
}

// SetNillableParentID sets the "parent" edge to the KnowledgeObject entity by ID if the given value is not nil.
func (_u *KnowledgeObjectUpdateOne) SetNillableParentID(id *uuid.UUID) *KnowledgeObjectUpdateOne {
	if id != nil {
		_u = _u.SetParentID(*id)
	}
	return _u
}

// SetParent sets the "parent" edge to the KnowledgeObject entity.
func (_u *KnowledgeObjectUpdateOne) SetParent(v *KnowledgeObject) *KnowledgeObjectUpdateOne {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the KnowledgeObject entity by IDs.
func (_u *KnowledgeObjectUpdateOne) AddChildIDs(ids ...uuid.UUID) *KnowledgeObjectUpdateOne {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the KnowledgeObject entity.
func (_u *KnowledgeObjectUpdateOne) AddChildren(v ...*KnowledgeObject) *KnowledgeObjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// AddBundleCategoryIDs adds the "bundle_categories" edge to the BundleCategory entity by IDs.
func (_u *KnowledgeObjectUpdateOne) AddBundleCategoryIDs(ids ...uuid.UUID) *KnowledgeObjectUpdateOne {
	_u.mutation.AddBundleCategoryIDs(ids...)
	return _u
}

// AddBundleCategories adds the "bundle_categories" edges to the BundleCategory entity.
func (_u *KnowledgeObjectUpdateOne) AddBundleCategories(v ...*BundleCategory) *KnowledgeObjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBundleCategoryIDs(ids...)
}

// SetSummaryID sets the "summary" edge to the KoSummary entity by ID.
func (_u *KnowledgeObjectUpdateOne) SetSummaryID(id int) *KnowledgeObjectUpdateOne {
	_u.mutation.SetSummaryID(id)
	return _u
}

// SetNillableSummaryID sets the "summary" edge to the KoSummary entity by ID if the given value is not nil.
func (_u *KnowledgeObjectUpdateOne) SetNillableSummaryID(id *int) *KnowledgeObjectUpdateOne {
	if id != nil {
		_u = _u.SetSummaryID(*id)
	}
	return _u
}

// SetSummary sets the "summary" edge to the KoSummary entity.
func (_u *KnowledgeObjectUpdateOne) SetSummary(v *KoSummary) *KnowledgeObjectUpdateOne {
	return _u.SetSummaryID(v.ID)
}

// AddBundleIDs adds the "bundles" edge to the Bundle entity by IDs.
func (_u *KnowledgeObjectUpdateOne) AddBundleIDs(ids ...uuid.UUID) *KnowledgeObjectUpdateOne {
	_u.mutation.AddBundleIDs(ids...)
	return _u
}

// AddBundles adds the "bundles" edges to the Bundle entity.
func (_u *KnowledgeObjectUpdateOne) AddBundles(v ...*Bundle) *KnowledgeObjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBundleIDs(ids...)
}

// Mutation returns the KnowledgeObjectMutation object of the builder.
func (_u *KnowledgeObjectUpdateOne) Mutation() *KnowledgeObjectMutation {
	return _u.mutation
}

// ClearParent clears the "parent" edge to the KnowledgeObject entity.
func (_u *KnowledgeObjectUpdateOne) ClearParent() *KnowledgeObjectUpdateOne {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the KnowledgeObject entity.
func (_u *KnowledgeObjectUpdateOne) ClearChildren() *KnowledgeObjectUpdateOne {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to KnowledgeObject entities by IDs.
func (_u *KnowledgeObjectUpdateOne) RemoveChildIDs(ids ...uuid.UUID) *KnowledgeObjectUpdateOne {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to KnowledgeObject entities.
func (_u *KnowledgeObjectUpdateOne) RemoveChildren(v ...*KnowledgeObject) *KnowledgeObjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearBundleCategories clears all "bundle_categories" edges to the BundleCategory entity.
func (_u *KnowledgeObjectUpdateOne) ClearBundleCategories() *KnowledgeObjectUpdateOne {
	_u.mutation.ClearBundleCategories()
	return _u
}

// RemoveBundleCategoryIDs removes the "bundle_categories" edge to BundleCategory entities by IDs.
func (_u *KnowledgeObjectUpdateOne) RemoveBundleCategoryIDs(ids ...uuid.UUID) *KnowledgeObjectUpdateOne {
	_u.mutation.RemoveBundleCategoryIDs(ids...)
	return _u
}

// RemoveBundleCategories removes "bundle_categories" edges to BundleCategory entities.
func (_u *KnowledgeObjectUpdateOne) RemoveBundleCategories(v ...*BundleCategory) *KnowledgeObjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBundleCategoryIDs(ids...)
}

// ClearSummary clears the "summary" edge to the KoSummary entity.
func (_u *KnowledgeObjectUpdateOne) ClearSummary() *KnowledgeObjectUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// ClearBundles clears all "bundles" edges to the Bundle entity.
func (_u *KnowledgeObjectUpdateOne) ClearBundles() *KnowledgeObjectUpdateOne {
	_u.mutation.ClearBundles()
	return _u
}

// RemoveBundleIDs removes the "bundles" edge to Bundle entities by IDs.
func (_u *KnowledgeObjectUpdateOne) RemoveBundleIDs(ids ...uuid.UUID) *KnowledgeObjectUpdateOne {
	_u.mutation.RemoveBundleIDs(ids...)
	return _u
}

// RemoveBundles removes "bundles" edges to Bundle entities.
func (_u *KnowledgeObjectUpdateOne) RemoveBundles(v ...*Bundle) *KnowledgeObjectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBundleIDs(ids...)
}

// Where appends a list predicates to the KnowledgeObjectUpdate builder.
func (_u *KnowledgeObjectUpdateOne) Where(ps ...predicate.KnowledgeObject) *KnowledgeObjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeObjectUpdateOne) Select(field string, fields ...string) *KnowledgeObjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeObject entity.
func (_u *KnowledgeObjectUpdateOne) Save(ctx context.Context) (*KnowledgeObject, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeObjectUpdateOne) SaveX(ctx context.Context) *KnowledgeObject {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeObjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeObjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KnowledgeObjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := knowledgeobject.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeObjectUpdateOne) check() error {
	if v, ok := _u.mutation.KoType(); ok {
		if err := knowledgeobject.KoTypeValidator(v); err != nil {
			return &ValidationError{Name: "ko_type", err: fmt.Errorf(`ent: validator failed for field "KnowledgeObject.ko_type": %w`, err)}
		}
	}
	return nil
}

func (_u *KnowledgeObjectUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeObject, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgeobject.Table, knowledgeobject.Columns, sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeObject.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgeobject.FieldID)
		for _, f := range fields {
			if !knowledgeobject.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgeobject.FieldID {
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
		_spec.SetField(knowledgeobject.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.KoType(); ok {
		_spec.SetField(knowledgeobject.FieldKoType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(knowledgeobject.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(knowledgeobject.FieldDeleted, field.TypeBool, value)
	}
	if _u.mutation.ParentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knowledgeobject.ParentTable,
			Columns: []string{knowledgeobject.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knowledgeobject.ParentTable,
			Columns: []string{knowledgeobject.ParentColumn},
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
	if _u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowledgeobject.ChildrenTable,
			Columns: []string{knowledgeobject.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowledgeobject.ChildrenTable,
			Columns: []string{knowledgeobject.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowledgeobject.ChildrenTable,
			Columns: []string{knowledgeobject.ChildrenColumn},
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
	if _u.mutation.BundleCategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   knowledgeobject.BundleCategoriesTable,
			Columns: knowledgeobject.BundleCategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundlecategory.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBundleCategoriesIDs(); len(nodes) > 0 && !_u.mutation.BundleCategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   knowledgeobject.BundleCategoriesTable,
			Columns: knowledgeobject.BundleCategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundlecategory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BundleCategoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   knowledgeobject.BundleCategoriesTable,
			Columns: knowledgeobject.BundleCategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundlecategory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SummaryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   knowledgeobject.SummaryTable,
			Columns: []string{knowledgeobject.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(kosummary.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummaryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   knowledgeobject.SummaryTable,
			Columns: []string{knowledgeobject.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(kosummary.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BundlesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   knowledgeobject.BundlesTable,
			Columns: knowledgeobject.BundlesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundle.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBundlesIDs(); len(nodes) > 0 && !_u.mutation.BundlesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   knowledgeobject.BundlesTable,
			Columns: knowledgeobject.BundlesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundle.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BundlesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   knowledgeobject.BundlesTable,
			Columns: knowledgeobject.BundlesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundle.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &KnowledgeObject{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgeobject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
