// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundle"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundlecategory"
	"github.com/fachebot/ko-digest-bot/internal/ent/dailydose"
	"github.com/fachebot/ko-digest-bot/internal/ent/digestrun"
	"github.com/fachebot/ko-digest-bot/internal/ent/digesttask"
	"github.com/fachebot/ko-digest-bot/internal/ent/knowledgeobject"
	"github.com/fachebot/ko-digest-bot/internal/ent/kosummary"
	"github.com/fachebot/ko-digest-bot/internal/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBundle          = "Bundle"
	TypeBundleCategory  = "BundleCategory"
	TypeDailyDose       = "DailyDose"
	TypeDigestRun       = "DigestRun"
	TypeDigestTask      = "DigestTask"
	TypeKnowledgeObject = "KnowledgeObject"
	TypeKoSummary       = "KoSummary"
)

// BundleMutation represents an operation that mutates the Bundle nodes in the graph.
type BundleMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	create_time              *time.Time
	update_time              *time.Time
	summary_json             *json.RawMessage
	appendsummary_json       json.RawMessage
	timezone                 *string
	clearedFields            map[string]struct{}
	bundle_category          *uuid.UUID
	clearedbundle_category   bool
	knowledge_objects        map[uuid.UUID]struct{}
	removedknowledge_objects map[uuid.UUID]struct{}
	clearedknowledge_objects bool
	done                     bool
	oldValue                 func(context.Context) (*Bundle, error)
	predicates               []predicate.Bundle
}

var _ ent.Mutation = (*BundleMutation)(nil)

// bundleOption allows management of the mutation configuration using functional options.
type bundleOption func(*BundleMutation)

// newBundleMutation creates new mutation for the Bundle entity.
func newBundleMutation(c config, op Op, opts ...bundleOption) *BundleMutation {
	m := &BundleMutation{
		config:        c,
		op:            op,
		typ:           TypeBundle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBundleID sets the ID field of the mutation.
func withBundleID(id uuid.UUID) bundleOption {
	return func(m *BundleMutation) {
		var (
			err   error
			once  sync.Once
			value *Bundle
		)
		m.oldValue = func(ctx context.Context) (*Bundle, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Bundle.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBundle sets the old Bundle of the mutation.
func withBundle(node *Bundle) bundleOption {
	return func(m *BundleMutation) {
		m.oldValue = func(context.Context) (*Bundle, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BundleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BundleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Bundle entities.
func (m *BundleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BundleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BundleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Bundle.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *BundleMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *BundleMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the Bundle entity.
// If the Bundle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BundleMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *BundleMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *BundleMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *BundleMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the Bundle entity.
// If the Bundle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BundleMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *BundleMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetSummaryJSON sets the "summary_json" field.
func (m *BundleMutation) SetSummaryJSON(jm json.RawMessage) {
	m.summary_json = &jm
	m.appendsummary_json = nil
}

// SummaryJSON returns the value of the "summary_json" field in the mutation.
func (m *BundleMutation) SummaryJSON() (r json.RawMessage, exists bool) {
	v := m.summary_json
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryJSON returns the old "summary_json" field's value of the Bundle entity.
// If the Bundle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BundleMutation) OldSummaryJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryJSON: %w", err)
	}
	return oldValue.SummaryJSON, nil
}

// AppendSummaryJSON adds jm to the "summary_json" field.
func (m *BundleMutation) AppendSummaryJSON(jm json.RawMessage) {
	m.appendsummary_json = append(m.appendsummary_json, jm...)
}

// AppendedSummaryJSON returns the list of values that were appended to the "summary_json" field in this mutation.
func (m *BundleMutation) AppendedSummaryJSON() (json.RawMessage, bool) {
	if len(m.appendsummary_json) == 0 {
		return nil, false
	}
	return m.appendsummary_json, true
}

// ResetSummaryJSON resets all changes to the "summary_json" field.
func (m *BundleMutation) ResetSummaryJSON() {
	m.summary_json = nil
	m.appendsummary_json = nil
}

// SetTimezone sets the "timezone" field.
func (m *BundleMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *BundleMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Bundle entity.
// If the Bundle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BundleMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *BundleMutation) ResetTimezone() {
	m.timezone = nil
}

// SetBundleCategoryID sets the "bundle_category_id" field.
func (m *BundleMutation) SetBundleCategoryID(u uuid.UUID) {
	m.bundle_category = &u
}

// BundleCategoryID returns the value of the "bundle_category_id" field in the mutation.
func (m *BundleMutation) BundleCategoryID() (r uuid.UUID, exists bool) {
	v := m.bundle_category
	if v == nil {
		return
	}
	return *v, true
}

// OldBundleCategoryID returns the old "bundle_category_id" field's value of the Bundle entity.
// If the Bundle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BundleMutation) OldBundleCategoryID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBundleCategoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBundleCategoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBundleCategoryID: %w", err)
	}
	return oldValue.BundleCategoryID, nil
}

// ResetBundleCategoryID resets all changes to the "bundle_category_id" field.
func (m *BundleMutation) ResetBundleCategoryID() {
	m.bundle_category = nil
}

// ClearBundleCategory clears the "bundle_category" edge to the BundleCategory entity.
func (m *BundleMutation) ClearBundleCategory() {
	m.clearedbundle_category = true
	m.clearedFields[bundle.FieldBundleCategoryID] = struct{}{}
}

// BundleCategoryCleared reports if the "bundle_category" edge to the BundleCategory entity was cleared.
func (m *BundleMutation) BundleCategoryCleared() bool {
	return m.clearedbundle_category
}

// BundleCategoryIDs returns the "bundle_category" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BundleCategoryID instead. It exists only for internal usage by the builders.
func (m *BundleMutation) BundleCategoryIDs() (ids []uuid.UUID) {
	if id := m.bundle_category; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBundleCategory resets all changes to the "bundle_category" edge.
func (m *BundleMutation) ResetBundleCategory() {
	m.bundle_category = nil
	m.clearedbundle_category = false
}

// AddKnowledgeObjectIDs adds the "knowledge_objects" edge to the KnowledgeObject entity by ids.
func (m *BundleMutation) AddKnowledgeObjectIDs(ids ...uuid.UUID) {
	if m.knowledge_objects == nil {
		m.knowledge_objects = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.knowledge_objects[ids[i]] = struct{}{}
	}
}

// ClearKnowledgeObjects clears the "knowledge_objects" edge to the KnowledgeObject entity.
func (m *BundleMutation) ClearKnowledgeObjects() {
	m.clearedknowledge_objects = true
}

// KnowledgeObjectsCleared reports if the "knowledge_objects" edge to the KnowledgeObject entity was cleared.
func (m *BundleMutation) KnowledgeObjectsCleared() bool {
	return m.clearedknowledge_objects
}

// RemoveKnowledgeObjectIDs removes the "knowledge_objects" edge to the KnowledgeObject entity by IDs.
func (m *BundleMutation) RemoveKnowledgeObjectIDs(ids ...uuid.UUID) {
	if m.removedknowledge_objects == nil {
		m.removedknowledge_objects = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.knowledge_objects, ids[i])
		m.removedknowledge_objects[ids[i]] = struct{}{}
	}
}

// RemovedKnowledgeObjects returns the removed IDs of the "knowledge_objects" edge to the KnowledgeObject entity.
func (m *BundleMutation) RemovedKnowledgeObjectsIDs() (ids []uuid.UUID) {
	for id := range m.removedknowledge_objects {
		ids = append(ids, id)
	}
	return
}

// KnowledgeObjectsIDs returns the "knowledge_objects" edge IDs in the mutation.
func (m *BundleMutation) KnowledgeObjectsIDs() (ids []uuid.UUID) {
	for id := range m.knowledge_objects {
		ids = append(ids, id)
	}
	return
}

// ResetKnowledgeObjects resets all changes to the "knowledge_objects" edge.
func (m *BundleMutation) ResetKnowledgeObjects() {
	m.knowledge_objects = nil
	m.clearedknowledge_objects = false
	m.removedknowledge_objects = nil
}

// Where appends a list predicates to the BundleMutation builder.
func (m *BundleMutation) Where(ps ...predicate.Bundle) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BundleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BundleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Bundle, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BundleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BundleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Bundle).
func (m *BundleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BundleMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.create_time != nil {
		fields = append(fields, bundle.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, bundle.FieldUpdateTime)
	}
	if m.summary_json != nil {
		fields = append(fields, bundle.FieldSummaryJSON)
	}
	if m.timezone != nil {
		fields = append(fields, bundle.FieldTimezone)
	}
	if m.bundle_category != nil {
		fields = append(fields, bundle.FieldBundleCategoryID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BundleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bundle.FieldCreateTime:
		return m.CreateTime()
	case bundle.FieldUpdateTime:
		return m.UpdateTime()
	case bundle.FieldSummaryJSON:
		return m.SummaryJSON()
	case bundle.FieldTimezone:
		return m.Timezone()
	case bundle.FieldBundleCategoryID:
		return m.BundleCategoryID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BundleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bundle.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case bundle.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case bundle.FieldSummaryJSON:
		return m.OldSummaryJSON(ctx)
	case bundle.FieldTimezone:
		return m.OldTimezone(ctx)
	case bundle.FieldBundleCategoryID:
		return m.OldBundleCategoryID(ctx)
	}
	return nil, fmt.Errorf("unknown Bundle field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BundleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bundle.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case bundle.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case bundle.FieldSummaryJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryJSON(v)
		return nil
	case bundle.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case bundle.FieldBundleCategoryID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBundleCategoryID(v)
		return nil
	}
	return fmt.Errorf("unknown Bundle field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BundleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BundleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BundleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Bundle numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BundleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BundleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BundleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Bundle nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BundleMutation) ResetField(name string) error {
	switch name {
	case bundle.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case bundle.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case bundle.FieldSummaryJSON:
		m.ResetSummaryJSON()
		return nil
	case bundle.FieldTimezone:
		m.ResetTimezone()
		return nil
	case bundle.FieldBundleCategoryID:
		m.ResetBundleCategoryID()
		return nil
	}
	return fmt.Errorf("unknown Bundle field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BundleMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.bundle_category != nil {
		edges = append(edges, bundle.EdgeBundleCategory)
	}
	if m.knowledge_objects != nil {
		edges = append(edges, bundle.EdgeKnowledgeObjects)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BundleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case bundle.EdgeBundleCategory:
		if id := m.bundle_category; id != nil {
			return []ent.Value{*id}
		}
	case bundle.EdgeKnowledgeObjects:
		ids := make([]ent.Value, 0, len(m.knowledge_objects))
		for id := range m.knowledge_objects {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BundleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedknowledge_objects != nil {
		edges = append(edges, bundle.EdgeKnowledgeObjects)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BundleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case bundle.EdgeKnowledgeObjects:
		ids := make([]ent.Value, 0, len(m.removedknowledge_objects))
		for id := range m.removedknowledge_objects {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BundleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbundle_category {
		edges = append(edges, bundle.EdgeBundleCategory)
	}
	if m.clearedknowledge_objects {
		edges = append(edges, bundle.EdgeKnowledgeObjects)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BundleMutation) EdgeCleared(name string) bool {
	switch name {
	case bundle.EdgeBundleCategory:
		return m.clearedbundle_category
	case bundle.EdgeKnowledgeObjects:
		return m.clearedknowledge_objects
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BundleMutation) ClearEdge(name string) error {
	switch name {
	case bundle.EdgeBundleCategory:
		m.ClearBundleCategory()
		return nil
	}
	return fmt.Errorf("unknown Bundle unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BundleMutation) ResetEdge(name string) error {
	switch name {
	case bundle.EdgeBundleCategory:
		m.ResetBundleCategory()
		return nil
	case bundle.EdgeKnowledgeObjects:
		m.ResetKnowledgeObjects()
		return nil
	}
	return fmt.Errorf("unknown Bundle edge %s", name)
}

// BundleCategoryMutation represents an operation that mutates the BundleCategory nodes in the graph.
type BundleCategoryMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	create_time              *time.Time
	update_time              *time.Time
	name                     *string
	summary_required         *bool
	clearedFields            map[string]struct{}
	knowledge_objects        map[uuid.UUID]struct{}
	removedknowledge_objects map[uuid.UUID]struct{}
	clearedknowledge_objects bool
	bundles                  map[uuid.UUID]struct{}
	removedbundles           map[uuid.UUID]struct{}
	clearedbundles           bool
	done                     bool
	oldValue                 func(context.Context) (*BundleCategory, error)
	predicates               []predicate.BundleCategory
}

var _ ent.Mutation = (*BundleCategoryMutation)(nil)

// bundlecategoryOption allows management of the mutation configuration using functional options.
type bundlecategoryOption func(*BundleCategoryMutation)

// newBundleCategoryMutation creates new mutation for the BundleCategory entity.
func newBundleCategoryMutation(c config, op Op, opts ...bundlecategoryOption) *BundleCategoryMutation {
	m := &BundleCategoryMutation{
		config:        c,
		op:            op,
		typ:           TypeBundleCategory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBundleCategoryID sets the ID field of the mutation.
func withBundleCategoryID(id uuid.UUID) bundlecategoryOption {
	return func(m *BundleCategoryMutation) {
		var (
			err   error
			once  sync.Once
			value *BundleCategory
		)
		m.oldValue = func(ctx context.Context) (*BundleCategory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BundleCategory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBundleCategory sets the old BundleCategory of the mutation.
func withBundleCategory(node *BundleCategory) bundlecategoryOption {
	return func(m *BundleCategoryMutation) {
		m.oldValue = func(context.Context) (*BundleCategory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BundleCategoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BundleCategoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BundleCategory entities.
func (m *BundleCategoryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BundleCategoryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BundleCategoryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BundleCategory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *BundleCategoryMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *BundleCategoryMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the BundleCategory entity.
// If the BundleCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BundleCategoryMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *BundleCategoryMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *BundleCategoryMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *BundleCategoryMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the BundleCategory entity.
// If the BundleCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BundleCategoryMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *BundleCategoryMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetName sets the "name" field.
func (m *BundleCategoryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BundleCategoryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the BundleCategory entity.
// If the BundleCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BundleCategoryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BundleCategoryMutation) ResetName() {
	m.name = nil
}

// SetSummaryRequired sets the "summary_required" field.
func (m *BundleCategoryMutation) SetSummaryRequired(b bool) {
	m.summary_required = &b
}

// SummaryRequired returns the value of the "summary_required" field in the mutation.
func (m *BundleCategoryMutation) SummaryRequired() (r bool, exists bool) {
	v := m.summary_required
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryRequired returns the old "summary_required" field's value of the BundleCategory entity.
// If the BundleCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BundleCategoryMutation) OldSummaryRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryRequired: %w", err)
	}
	return oldValue.SummaryRequired, nil
}

// ResetSummaryRequired resets all changes to the "summary_required" field.
func (m *BundleCategoryMutation) ResetSummaryRequired() {
	m.summary_required = nil
}

// AddKnowledgeObjectIDs adds the "knowledge_objects" edge to the KnowledgeObject entity by ids.
func (m *BundleCategoryMutation) AddKnowledgeObjectIDs(ids ...uuid.UUID) {
	if m.knowledge_objects == nil {
		m.knowledge_objects = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.knowledge_objects[ids[i]] = struct{}{}
	}
}

// ClearKnowledgeObjects clears the "knowledge_objects" edge to the KnowledgeObject entity.
func (m *BundleCategoryMutation) ClearKnowledgeObjects() {
	m.clearedknowledge_objects = true
}

// KnowledgeObjectsCleared reports if the "knowledge_objects" edge to the KnowledgeObject entity was cleared.
func (m *BundleCategoryMutation) KnowledgeObjectsCleared() bool {
	return m.clearedknowledge_objects
}

// RemoveKnowledgeObjectIDs removes the "knowledge_objects" edge to the KnowledgeObject entity by IDs.
func (m *BundleCategoryMutation) RemoveKnowledgeObjectIDs(ids ...uuid.UUID) {
	if m.removedknowledge_objects == nil {
		m.removedknowledge_objects = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.knowledge_objects, ids[i])
		m.removedknowledge_objects[ids[i]] = struct{}{}
	}
}

// RemovedKnowledgeObjects returns the removed IDs of the "knowledge_objects" edge to the KnowledgeObject entity.
func (m *BundleCategoryMutation) RemovedKnowledgeObjectsIDs() (ids []uuid.UUID) {
	for id := range m.removedknowledge_objects {
		ids = append(ids, id)
	}
	return
}

// KnowledgeObjectsIDs returns the "knowledge_objects" edge IDs in the mutation.
func (m *BundleCategoryMutation) KnowledgeObjectsIDs() (ids []uuid.UUID) {
	for id := range m.knowledge_objects {
		ids = append(ids, id)
	}
	return
}

// ResetKnowledgeObjects resets all changes to the "knowledge_objects" edge.
func (m *BundleCategoryMutation) ResetKnowledgeObjects() {
	m.knowledge_objects = nil
	m.clearedknowledge_objects = false
	m.removedknowledge_objects = nil
}

// AddBundleIDs adds the "bundles" edge to the Bundle entity by ids.
func (m *BundleCategoryMutation) AddBundleIDs(ids ...uuid.UUID) {
	if m.bundles == nil {
		m.bundles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.bundles[ids[i]] = struct{}{}
	}
}

// ClearBundles clears the "bundles" edge to the Bundle entity.
func (m *BundleCategoryMutation) ClearBundles() {
	m.clearedbundles = true
}

// BundlesCleared reports if the "bundles" edge to the Bundle entity was cleared.
func (m *BundleCategoryMutation) BundlesCleared() bool {
	return m.clearedbundles
}

// RemoveBundleIDs removes the "bundles" edge to the Bundle entity by IDs.
func (m *BundleCategoryMutation) RemoveBundleIDs(ids ...uuid.UUID) {
	if m.removedbundles == nil {
		m.removedbundles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.bundles, ids[i])
		m.removedbundles[ids[i]] = struct{}{}
	}
}

// RemovedBundles returns the removed IDs of the "bundles" edge to the Bundle entity.
func (m *BundleCategoryMutation) RemovedBundlesIDs() (ids []uuid.UUID) {
	for id := range m.removedbundles {
		ids = append(ids, id)
	}
	return
}

// BundlesIDs returns the "bundles" edge IDs in the mutation.
func (m *BundleCategoryMutation) BundlesIDs() (ids []uuid.UUID) {
	for id := range m.bundles {
		ids = append(ids, id)
	}
	return
}

// ResetBundles resets all changes to the "bundles" edge.
func (m *BundleCategoryMutation) ResetBundles() {
	m.bundles = nil
	m.clearedbundles = false
	m.removedbundles = nil
}

// Where appends a list predicates to the BundleCategoryMutation builder.
func (m *BundleCategoryMutation) Where(ps ...predicate.BundleCategory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BundleCategoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BundleCategoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BundleCategory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BundleCategoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BundleCategoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BundleCategory).
func (m *BundleCategoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BundleCategoryMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.create_time != nil {
		fields = append(fields, bundlecategory.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, bundlecategory.FieldUpdateTime)
	}
	if m.name != nil {
		fields = append(fields, bundlecategory.FieldName)
	}
	if m.summary_required != nil {
		fields = append(fields, bundlecategory.FieldSummaryRequired)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BundleCategoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bundlecategory.FieldCreateTime:
		return m.CreateTime()
	case bundlecategory.FieldUpdateTime:
		return m.UpdateTime()
	case bundlecategory.FieldName:
		return m.Name()
	case bundlecategory.FieldSummaryRequired:
		return m.SummaryRequired()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BundleCategoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bundlecategory.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case bundlecategory.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case bundlecategory.FieldName:
		return m.OldName(ctx)
	case bundlecategory.FieldSummaryRequired:
		return m.OldSummaryRequired(ctx)
	}
	return nil, fmt.Errorf("unknown BundleCategory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BundleCategoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bundlecategory.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case bundlecategory.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case bundlecategory.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case bundlecategory.FieldSummaryRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryRequired(v)
		return nil
	}
	return fmt.Errorf("unknown BundleCategory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BundleCategoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BundleCategoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BundleCategoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BundleCategory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BundleCategoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BundleCategoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BundleCategoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BundleCategory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BundleCategoryMutation) ResetField(name string) error {
	switch name {
	case bundlecategory.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case bundlecategory.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case bundlecategory.FieldName:
		m.ResetName()
		return nil
	case bundlecategory.FieldSummaryRequired:
		m.ResetSummaryRequired()
		return nil
	}
	return fmt.Errorf("unknown BundleCategory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BundleCategoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.knowledge_objects != nil {
		edges = append(edges, bundlecategory.EdgeKnowledgeObjects)
	}
	if m.bundles != nil {
		edges = append(edges, bundlecategory.EdgeBundles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BundleCategoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case bundlecategory.EdgeKnowledgeObjects:
		ids := make([]ent.Value, 0, len(m.knowledge_objects))
		for id := range m.knowledge_objects {
			ids = append(ids, id)
		}
		return ids
	case bundlecategory.EdgeBundles:
		ids := make([]ent.Value, 0, len(m.bundles))
		for id := range m.bundles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BundleCategoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedknowledge_objects != nil {
		edges = append(edges, bundlecategory.EdgeKnowledgeObjects)
	}
	if m.removedbundles != nil {
		edges = append(edges, bundlecategory.EdgeBundles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BundleCategoryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case bundlecategory.EdgeKnowledgeObjects:
		ids := make([]ent.Value, 0, len(m.removedknowledge_objects))
		for id := range m.removedknowledge_objects {
			ids = append(ids, id)
		}
		return ids
	case bundlecategory.EdgeBundles:
		ids := make([]ent.Value, 0, len(m.removedbundles))
		for id := range m.removedbundles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BundleCategoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedknowledge_objects {
		edges = append(edges, bundlecategory.EdgeKnowledgeObjects)
	}
	if m.clearedbundles {
		edges = append(edges, bundlecategory.EdgeBundles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BundleCategoryMutation) EdgeCleared(name string) bool {
	switch name {
	case bundlecategory.EdgeKnowledgeObjects:
		return m.clearedknowledge_objects
	case bundlecategory.EdgeBundles:
		return m.clearedbundles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BundleCategoryMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown BundleCategory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BundleCategoryMutation) ResetEdge(name string) error {
	switch name {
	case bundlecategory.EdgeKnowledgeObjects:
		m.ResetKnowledgeObjects()
		return nil
	case bundlecategory.EdgeBundles:
		m.ResetBundles()
		return nil
	}
	return fmt.Errorf("unknown BundleCategory edge %s", name)
}

// DailyDoseMutation represents an operation that mutates the DailyDose nodes in the graph.
type DailyDoseMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	create_time   *time.Time
	update_time   *time.Time
	quote         *string
	source        *string
	dd_type       *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*DailyDose, error)
	predicates    []predicate.DailyDose
}

var _ ent.Mutation = (*DailyDoseMutation)(nil)

// dailydoseOption allows management of the mutation configuration using functional options.
type dailydoseOption func(*DailyDoseMutation)

// newDailyDoseMutation creates new mutation for the DailyDose entity.
func newDailyDoseMutation(c config, op Op, opts ...dailydoseOption) *DailyDoseMutation {
	m := &DailyDoseMutation{
		config:        c,
		op:            op,
		typ:           TypeDailyDose,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDailyDoseID sets the ID field of the mutation.
func withDailyDoseID(id uuid.UUID) dailydoseOption {
	return func(m *DailyDoseMutation) {
		var (
			err   error
			once  sync.Once
			value *DailyDose
		)
		m.oldValue = func(ctx context.Context) (*DailyDose, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DailyDose.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDailyDose sets the old DailyDose of the mutation.
func withDailyDose(node *DailyDose) dailydoseOption {
	return func(m *DailyDoseMutation) {
		m.oldValue = func(context.Context) (*DailyDose, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DailyDoseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DailyDoseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DailyDose entities.
func (m *DailyDoseMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DailyDoseMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DailyDoseMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DailyDose.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *DailyDoseMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *DailyDoseMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the DailyDose entity.
// If the DailyDose object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyDoseMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *DailyDoseMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *DailyDoseMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *DailyDoseMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the DailyDose entity.
// If the DailyDose object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyDoseMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *DailyDoseMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetQuote sets the "quote" field.
func (m *DailyDoseMutation) SetQuote(s string) {
	m.quote = &s
}

// Quote returns the value of the "quote" field in the mutation.
func (m *DailyDoseMutation) Quote() (r string, exists bool) {
	v := m.quote
	if v == nil {
		return
	}
	return *v, true
}

// OldQuote returns the old "quote" field's value of the DailyDose entity.
// If the DailyDose object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyDoseMutation) OldQuote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuote: %w", err)
	}
	return oldValue.Quote, nil
}

// ResetQuote resets all changes to the "quote" field.
func (m *DailyDoseMutation) ResetQuote() {
	m.quote = nil
}

// SetSource sets the "source" field.
func (m *DailyDoseMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *DailyDoseMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the DailyDose entity.
// If the DailyDose object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyDoseMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *DailyDoseMutation) ResetSource() {
	m.source = nil
}

// SetDdType sets the "dd_type" field.
func (m *DailyDoseMutation) SetDdType(s string) {
	m.dd_type = &s
}

// DdType returns the value of the "dd_type" field in the mutation.
func (m *DailyDoseMutation) DdType() (r string, exists bool) {
	v := m.dd_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDdType returns the old "dd_type" field's value of the DailyDose entity.
// If the DailyDose object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyDoseMutation) OldDdType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDdType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDdType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDdType: %w", err)
	}
	return oldValue.DdType, nil
}

// ResetDdType resets all changes to the "dd_type" field.
func (m *DailyDoseMutation) ResetDdType() {
	m.dd_type = nil
}

// Where appends a list predicates to the DailyDoseMutation builder.
func (m *DailyDoseMutation) Where(ps ...predicate.DailyDose) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DailyDoseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DailyDoseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DailyDose, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DailyDoseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DailyDoseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DailyDose).
func (m *DailyDoseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DailyDoseMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.create_time != nil {
		fields = append(fields, dailydose.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, dailydose.FieldUpdateTime)
	}
	if m.quote != nil {
		fields = append(fields, dailydose.FieldQuote)
	}
	if m.source != nil {
		fields = append(fields, dailydose.FieldSource)
	}
	if m.dd_type != nil {
		fields = append(fields, dailydose.FieldDdType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DailyDoseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dailydose.FieldCreateTime:
		return m.CreateTime()
	case dailydose.FieldUpdateTime:
		return m.UpdateTime()
	case dailydose.FieldQuote:
		return m.Quote()
	case dailydose.FieldSource:
		return m.Source()
	case dailydose.FieldDdType:
		return m.DdType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DailyDoseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dailydose.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case dailydose.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case dailydose.FieldQuote:
		return m.OldQuote(ctx)
	case dailydose.FieldSource:
		return m.OldSource(ctx)
	case dailydose.FieldDdType:
		return m.OldDdType(ctx)
	}
	return nil, fmt.Errorf("unknown DailyDose field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyDoseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dailydose.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case dailydose.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case dailydose.FieldQuote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuote(v)
		return nil
	case dailydose.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case dailydose.FieldDdType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDdType(v)
		return nil
	}
	return fmt.Errorf("unknown DailyDose field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DailyDoseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DailyDoseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyDoseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DailyDose numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DailyDoseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DailyDoseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DailyDoseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DailyDose nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DailyDoseMutation) ResetField(name string) error {
	switch name {
	case dailydose.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case dailydose.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case dailydose.FieldQuote:
		m.ResetQuote()
		return nil
	case dailydose.FieldSource:
		m.ResetSource()
		return nil
	case dailydose.FieldDdType:
		m.ResetDdType()
		return nil
	}
	return fmt.Errorf("unknown DailyDose field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DailyDoseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DailyDoseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DailyDoseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DailyDoseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DailyDoseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DailyDoseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DailyDoseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DailyDose unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DailyDoseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DailyDose edge %s", name)
}

// DigestRunMutation represents an operation that mutates the DigestRun nodes in the graph.
type DigestRunMutation struct {
	config
	op            Op
	typ           string
	id            *int
	create_time   *time.Time
	update_time   *time.Time
	select_from   *time.Time
	run_date      *time.Time
	status        *digestrun.Status
	error_message *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*DigestRun, error)
	predicates    []predicate.DigestRun
}

var _ ent.Mutation = (*DigestRunMutation)(nil)

// digestrunOption allows management of the mutation configuration using functional options.
type digestrunOption func(*DigestRunMutation)

// newDigestRunMutation creates new mutation for the DigestRun entity.
func newDigestRunMutation(c config, op Op, opts ...digestrunOption) *DigestRunMutation {
	m := &DigestRunMutation{
		config:        c,
		op:            op,
		typ:           TypeDigestRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDigestRunID sets the ID field of the mutation.
func withDigestRunID(id int) digestrunOption {
	return func(m *DigestRunMutation) {
		var (
			err   error
			once  sync.Once
			value *DigestRun
		)
		m.oldValue = func(ctx context.Context) (*DigestRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DigestRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDigestRun sets the old DigestRun of the mutation.
func withDigestRun(node *DigestRun) digestrunOption {
	return func(m *DigestRunMutation) {
		m.oldValue = func(context.Context) (*DigestRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DigestRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DigestRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DigestRunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DigestRunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DigestRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *DigestRunMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *DigestRunMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the DigestRun entity.
// If the DigestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigestRunMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *DigestRunMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *DigestRunMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *DigestRunMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the DigestRun entity.
// If the DigestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigestRunMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *DigestRunMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetSelectFrom sets the "select_from" field.
func (m *DigestRunMutation) SetSelectFrom(t time.Time) {
	m.select_from = &t
}

// SelectFrom returns the value of the "select_from" field in the mutation.
func (m *DigestRunMutation) SelectFrom() (r time.Time, exists bool) {
	v := m.select_from
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectFrom returns the old "select_from" field's value of the DigestRun entity.
// If the DigestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigestRunMutation) OldSelectFrom(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectFrom: %w", err)
	}
	return oldValue.SelectFrom, nil
}

// ResetSelectFrom resets all changes to the "select_from" field.
func (m *DigestRunMutation) ResetSelectFrom() {
	m.select_from = nil
}

// SetRunDate sets the "run_date" field.
func (m *DigestRunMutation) SetRunDate(t time.Time) {
	m.run_date = &t
}

// RunDate returns the value of the "run_date" field in the mutation.
func (m *DigestRunMutation) RunDate() (r time.Time, exists bool) {
	v := m.run_date
	if v == nil {
		return
	}
	return *v, true
}

// OldRunDate returns the old "run_date" field's value of the DigestRun entity.
// If the DigestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigestRunMutation) OldRunDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunDate: %w", err)
	}
	return oldValue.RunDate, nil
}

// ResetRunDate resets all changes to the "run_date" field.
func (m *DigestRunMutation) ResetRunDate() {
	m.run_date = nil
}

// SetStatus sets the "status" field.
func (m *DigestRunMutation) SetStatus(d digestrun.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DigestRunMutation) Status() (r digestrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DigestRun entity.
// If the DigestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigestRunMutation) OldStatus(ctx context.Context) (v digestrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DigestRunMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *DigestRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DigestRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DigestRun entity.
// If the DigestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigestRunMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DigestRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[digestrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DigestRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[digestrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DigestRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, digestrun.FieldErrorMessage)
}

// Where appends a list predicates to the DigestRunMutation builder.
func (m *DigestRunMutation) Where(ps ...predicate.DigestRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DigestRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DigestRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DigestRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DigestRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DigestRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DigestRun).
func (m *DigestRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DigestRunMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.create_time != nil {
		fields = append(fields, digestrun.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, digestrun.FieldUpdateTime)
	}
	if m.select_from != nil {
		fields = append(fields, digestrun.FieldSelectFrom)
	}
	if m.run_date != nil {
		fields = append(fields, digestrun.FieldRunDate)
	}
	if m.status != nil {
		fields = append(fields, digestrun.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, digestrun.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DigestRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case digestrun.FieldCreateTime:
		return m.CreateTime()
	case digestrun.FieldUpdateTime:
		return m.UpdateTime()
	case digestrun.FieldSelectFrom:
		return m.SelectFrom()
	case digestrun.FieldRunDate:
		return m.RunDate()
	case digestrun.FieldStatus:
		return m.Status()
	case digestrun.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DigestRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case digestrun.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case digestrun.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case digestrun.FieldSelectFrom:
		return m.OldSelectFrom(ctx)
	case digestrun.FieldRunDate:
		return m.OldRunDate(ctx)
	case digestrun.FieldStatus:
		return m.OldStatus(ctx)
	case digestrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown DigestRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DigestRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case digestrun.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case digestrun.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case digestrun.FieldSelectFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectFrom(v)
		return nil
	case digestrun.FieldRunDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunDate(v)
		return nil
	case digestrun.FieldStatus:
		v, ok := value.(digestrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case digestrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown DigestRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DigestRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DigestRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DigestRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DigestRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DigestRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(digestrun.FieldErrorMessage) {
		fields = append(fields, digestrun.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DigestRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DigestRunMutation) ClearField(name string) error {
	switch name {
	case digestrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown DigestRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DigestRunMutation) ResetField(name string) error {
	switch name {
	case digestrun.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case digestrun.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case digestrun.FieldSelectFrom:
		m.ResetSelectFrom()
		return nil
	case digestrun.FieldRunDate:
		m.ResetRunDate()
		return nil
	case digestrun.FieldStatus:
		m.ResetStatus()
		return nil
	case digestrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown DigestRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DigestRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DigestRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DigestRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DigestRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DigestRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DigestRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DigestRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DigestRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DigestRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DigestRun edge %s", name)
}

// DigestTaskMutation represents an operation that mutates the DigestTask nodes in the graph.
type DigestTaskMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	create_time        *time.Time
	update_time        *time.Time
	bundle_category_id *uuid.UUID
	select_from        *time.Time
	status             *digesttask.Status
	completed_at       *time.Time
	error_message      *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*DigestTask, error)
	predicates         []predicate.DigestTask
}

var _ ent.Mutation = (*DigestTaskMutation)(nil)

// digesttaskOption allows management of the mutation configuration using functional options.
type digesttaskOption func(*DigestTaskMutation)

// newDigestTaskMutation creates new mutation for the DigestTask entity.
func newDigestTaskMutation(c config, op Op, opts ...digesttaskOption) *DigestTaskMutation {
	m := &DigestTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeDigestTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDigestTaskID sets the ID field of the mutation.
func withDigestTaskID(id int) digesttaskOption {
	return func(m *DigestTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *DigestTask
		)
		m.oldValue = func(ctx context.Context) (*DigestTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DigestTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDigestTask sets the old DigestTask of the mutation.
func withDigestTask(node *DigestTask) digesttaskOption {
	return func(m *DigestTaskMutation) {
		m.oldValue = func(context.Context) (*DigestTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DigestTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DigestTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DigestTaskMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DigestTaskMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DigestTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *DigestTaskMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *DigestTaskMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the DigestTask entity.
// If the DigestTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigestTaskMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *DigestTaskMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *DigestTaskMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *DigestTaskMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the DigestTask entity.
// If the DigestTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigestTaskMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *DigestTaskMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetBundleCategoryID sets the "bundle_category_id" field.
func (m *DigestTaskMutation) SetBundleCategoryID(u uuid.UUID) {
	m.bundle_category_id = &u
}

// BundleCategoryID returns the value of the "bundle_category_id" field in the mutation.
func (m *DigestTaskMutation) BundleCategoryID() (r uuid.UUID, exists bool) {
	v := m.bundle_category_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBundleCategoryID returns the old "bundle_category_id" field's value of the DigestTask entity.
// If the DigestTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigestTaskMutation) OldBundleCategoryID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBundleCategoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBundleCategoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBundleCategoryID: %w", err)
	}
	return oldValue.BundleCategoryID, nil
}

// ResetBundleCategoryID resets all changes to the "bundle_category_id" field.
func (m *DigestTaskMutation) ResetBundleCategoryID() {
	m.bundle_category_id = nil
}

// SetSelectFrom sets the "select_from" field.
func (m *DigestTaskMutation) SetSelectFrom(t time.Time) {
	m.select_from = &t
}

// SelectFrom returns the value of the "select_from" field in the mutation.
func (m *DigestTaskMutation) SelectFrom() (r time.Time, exists bool) {
	v := m.select_from
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectFrom returns the old "select_from" field's value of the DigestTask entity.
// If the DigestTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigestTaskMutation) OldSelectFrom(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectFrom: %w", err)
	}
	return oldValue.SelectFrom, nil
}

// ResetSelectFrom resets all changes to the "select_from" field.
func (m *DigestTaskMutation) ResetSelectFrom() {
	m.select_from = nil
}

// SetStatus sets the "status" field.
func (m *DigestTaskMutation) SetStatus(d digesttask.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DigestTaskMutation) Status() (r digesttask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DigestTask entity.
// If the DigestTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigestTaskMutation) OldStatus(ctx context.Context) (v digesttask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DigestTaskMutation) ResetStatus() {
	m.status = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *DigestTaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *DigestTaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the DigestTask entity.
// If the DigestTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigestTaskMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *DigestTaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[digesttask.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *DigestTaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[digesttask.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *DigestTaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, digesttask.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *DigestTaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DigestTaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DigestTask entity.
// If the DigestTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DigestTaskMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DigestTaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[digesttask.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DigestTaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[digesttask.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DigestTaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, digesttask.FieldErrorMessage)
}

// Where appends a list predicates to the DigestTaskMutation builder.
func (m *DigestTaskMutation) Where(ps ...predicate.DigestTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DigestTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DigestTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DigestTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DigestTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DigestTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DigestTask).
func (m *DigestTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DigestTaskMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.create_time != nil {
		fields = append(fields, digesttask.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, digesttask.FieldUpdateTime)
	}
	if m.bundle_category_id != nil {
		fields = append(fields, digesttask.FieldBundleCategoryID)
	}
	if m.select_from != nil {
		fields = append(fields, digesttask.FieldSelectFrom)
	}
	if m.status != nil {
		fields = append(fields, digesttask.FieldStatus)
	}
	if m.completed_at != nil {
		fields = append(fields, digesttask.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, digesttask.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DigestTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case digesttask.FieldCreateTime:
		return m.CreateTime()
	case digesttask.FieldUpdateTime:
		return m.UpdateTime()
	case digesttask.FieldBundleCategoryID:
		return m.BundleCategoryID()
	case digesttask.FieldSelectFrom:
		return m.SelectFrom()
	case digesttask.FieldStatus:
		return m.Status()
	case digesttask.FieldCompletedAt:
		return m.CompletedAt()
	case digesttask.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DigestTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case digesttask.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case digesttask.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case digesttask.FieldBundleCategoryID:
		return m.OldBundleCategoryID(ctx)
	case digesttask.FieldSelectFrom:
		return m.OldSelectFrom(ctx)
	case digesttask.FieldStatus:
		return m.OldStatus(ctx)
	case digesttask.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case digesttask.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown DigestTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DigestTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case digesttask.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case digesttask.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case digesttask.FieldBundleCategoryID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBundleCategoryID(v)
		return nil
	case digesttask.FieldSelectFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectFrom(v)
		return nil
	case digesttask.FieldStatus:
		v, ok := value.(digesttask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case digesttask.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case digesttask.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown DigestTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DigestTaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DigestTaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DigestTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DigestTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DigestTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(digesttask.FieldCompletedAt) {
		fields = append(fields, digesttask.FieldCompletedAt)
	}
	if m.FieldCleared(digesttask.FieldErrorMessage) {
		fields = append(fields, digesttask.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DigestTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DigestTaskMutation) ClearField(name string) error {
	switch name {
	case digesttask.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case digesttask.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown DigestTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DigestTaskMutation) ResetField(name string) error {
	switch name {
	case digesttask.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case digesttask.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case digesttask.FieldBundleCategoryID:
		m.ResetBundleCategoryID()
		return nil
	case digesttask.FieldSelectFrom:
		m.ResetSelectFrom()
		return nil
	case digesttask.FieldStatus:
		m.ResetStatus()
		return nil
	case digesttask.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case digesttask.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown DigestTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DigestTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DigestTaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DigestTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DigestTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DigestTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DigestTaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DigestTaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DigestTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DigestTaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DigestTask edge %s", name)
}

// KnowledgeObjectMutation represents an operation that mutates the KnowledgeObject nodes in the graph.
type KnowledgeObjectMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	create_time              *time.Time
	update_time              *time.Time
	ko_type                  *knowledgeobject.KoType
	title                    *string
	deleted                  *bool
	clearedFields            map[string]struct{}
	parent                   *uuid.UUID
	clearedparent            bool
	children                 map[uuid.UUID]struct{}
	removedchildren          map[uuid.UUID]struct{}
	clearedchildren          bool
	bundle_categories        map[uuid.UUID]struct{}
	removedbundle_categories map[uuid.UUID]struct{}
	clearedbundle_categories bool
	summary                  *int
	clearedsummary           bool
	bundles                  map[uuid.UUID]struct{}
	removedbundles           map[uuid.UUID]struct{}
	clearedbundles           bool
	done                     bool
	oldValue                 func(context.Context) (*KnowledgeObject, error)
	predicates               []predicate.KnowledgeObject
}

var _ ent.Mutation = (*KnowledgeObjectMutation)(nil)

// knowledgeobjectOption allows management of the mutation configuration using functional options.
type knowledgeobjectOption func(*KnowledgeObjectMutation)

// newKnowledgeObjectMutation creates new mutation for the KnowledgeObject entity.
func newKnowledgeObjectMutation(c config, op Op, opts ...knowledgeobjectOption) *KnowledgeObjectMutation {
	m := &KnowledgeObjectMutation{
		config:        c,
		op:            op,
		typ:           TypeKnowledgeObject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKnowledgeObjectID sets the ID field of the mutation.
func withKnowledgeObjectID(id uuid.UUID) knowledgeobjectOption {
	return func(m *KnowledgeObjectMutation) {
		var (
			err   error
			once  sync.Once
			value *KnowledgeObject
		)
		m.oldValue = func(ctx context.Context) (*KnowledgeObject, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KnowledgeObject.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKnowledgeObject sets the old KnowledgeObject of the mutation.
func withKnowledgeObject(node *KnowledgeObject) knowledgeobjectOption {
	return func(m *KnowledgeObjectMutation) {
		m.oldValue = func(context.Context) (*KnowledgeObject, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KnowledgeObjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KnowledgeObjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of KnowledgeObject entities.
func (m *KnowledgeObjectMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KnowledgeObjectMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KnowledgeObjectMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KnowledgeObject.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *KnowledgeObjectMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *KnowledgeObjectMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the KnowledgeObject entity.
// If the KnowledgeObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeObjectMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *KnowledgeObjectMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *KnowledgeObjectMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *KnowledgeObjectMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the KnowledgeObject entity.
// If the KnowledgeObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeObjectMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *KnowledgeObjectMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetKoType sets the "ko_type" field.
func (m *KnowledgeObjectMutation) SetKoType(kt knowledgeobject.KoType) {
	m.ko_type = &kt
}

// KoType returns the value of the "ko_type" field in the mutation.
func (m *KnowledgeObjectMutation) KoType() (r knowledgeobject.KoType, exists bool) {
	v := m.ko_type
	if v == nil {
		return
	}
	return *v, true
}

// OldKoType returns the old "ko_type" field's value of the KnowledgeObject entity.
// If the KnowledgeObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeObjectMutation) OldKoType(ctx context.Context) (v knowledgeobject.KoType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKoType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKoType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKoType: %w", err)
	}
	return oldValue.KoType, nil
}

// ResetKoType resets all changes to the "ko_type" field.
func (m *KnowledgeObjectMutation) ResetKoType() {
	m.ko_type = nil
}

// SetTitle sets the "title" field.
func (m *KnowledgeObjectMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *KnowledgeObjectMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the KnowledgeObject entity.
// If the KnowledgeObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeObjectMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *KnowledgeObjectMutation) ResetTitle() {
	m.title = nil
}

// SetDeleted sets the "deleted" field.
func (m *KnowledgeObjectMutation) SetDeleted(b bool) {
	m.deleted = &b
}

// Deleted returns the value of the "deleted" field in the mutation.
func (m *KnowledgeObjectMutation) Deleted() (r bool, exists bool) {
	v := m.deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldDeleted returns the old "deleted" field's value of the KnowledgeObject entity.
// If the KnowledgeObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeObjectMutation) OldDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeleted: %w", err)
	}
	return oldValue.Deleted, nil
}

// ResetDeleted resets all changes to the "deleted" field.
func (m *KnowledgeObjectMutation) ResetDeleted() {
	m.deleted = nil
}

// SetParentID sets the "parent" edge to the KnowledgeObject entity by id.
func (m *KnowledgeObjectMutation) SetParentID(id uuid.UUID) {
	m.parent = &id
}

// ClearParent clears the "parent" edge to the KnowledgeObject entity.
func (m *KnowledgeObjectMutation) ClearParent() {
	m.clearedparent = true
}

// ParentCleared reports if the "parent" edge to the KnowledgeObject entity was cleared.
func (m *KnowledgeObjectMutation) ParentCleared() bool {
	return m.clearedparent
}

// ParentID returns the "parent" edge ID in the mutation.
func (m *KnowledgeObjectMutation) ParentID() (id uuid.UUID, exists bool) {
	if m.parent != nil {
		return *m.parent, true
	}
	return
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *KnowledgeObjectMutation) ParentIDs() (ids []uuid.UUID) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *KnowledgeObjectMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddChildIDs adds the "children" edge to the KnowledgeObject entity by ids.
func (m *KnowledgeObjectMutation) AddChildIDs(ids ...uuid.UUID) {
	if m.children == nil {
		m.children = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.children[ids[i]] = struct{}{}
	}
}

// ClearChildren clears the "children" edge to the KnowledgeObject entity.
func (m *KnowledgeObjectMutation) ClearChildren() {
	m.clearedchildren = true
}

// ChildrenCleared reports if the "children" edge to the KnowledgeObject entity was cleared.
func (m *KnowledgeObjectMutation) ChildrenCleared() bool {
	return m.clearedchildren
}

// RemoveChildIDs removes the "children" edge to the KnowledgeObject entity by IDs.
func (m *KnowledgeObjectMutation) RemoveChildIDs(ids ...uuid.UUID) {
	if m.removedchildren == nil {
		m.removedchildren = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.children, ids[i])
		m.removedchildren[ids[i]] = struct{}{}
	}
}

// RemovedChildren returns the removed IDs of the "children" edge to the KnowledgeObject entity.
func (m *KnowledgeObjectMutation) RemovedChildrenIDs() (ids []uuid.UUID) {
	for id := range m.removedchildren {
		ids = append(ids, id)
	}
	return
}

// ChildrenIDs returns the "children" edge IDs in the mutation.
func (m *KnowledgeObjectMutation) ChildrenIDs() (ids []uuid.UUID) {
	for id := range m.children {
		ids = append(ids, id)
	}
	return
}

// ResetChildren resets all changes to the "children" edge.
func (m *KnowledgeObjectMutation) ResetChildren() {
	m.children = nil
	m.clearedchildren = false
	m.removedchildren = nil
}

// AddBundleCategoryIDs adds the "bundle_categories" edge to the BundleCategory entity by ids.
func (m *KnowledgeObjectMutation) AddBundleCategoryIDs(ids ...uuid.UUID) {
	if m.bundle_categories == nil {
		m.bundle_categories = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.bundle_categories[ids[i]] = struct{}{}
	}
}

// ClearBundleCategories clears the "bundle_categories" edge to the BundleCategory entity.
func (m *KnowledgeObjectMutation) ClearBundleCategories() {
	m.clearedbundle_categories = true
}

// BundleCategoriesCleared reports if the "bundle_categories" edge to the BundleCategory entity was cleared.
func (m *KnowledgeObjectMutation) BundleCategoriesCleared() bool {
	return m.clearedbundle_categories
}

// RemoveBundleCategoryIDs removes the "bundle_categories" edge to the BundleCategory entity by IDs.
func (m *KnowledgeObjectMutation) RemoveBundleCategoryIDs(ids ...uuid.UUID) {
	if m.removedbundle_categories == nil {
		m.removedbundle_categories = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.bundle_categories, ids[i])
		m.removedbundle_categories[ids[i]] = struct{}{}
	}
}

// RemovedBundleCategories returns the removed IDs of the "bundle_categories" edge to the BundleCategory entity.
func (m *KnowledgeObjectMutation) RemovedBundleCategoriesIDs() (ids []uuid.UUID) {
	for id := range m.removedbundle_categories {
		ids = append(ids, id)
	}
	return
}

// BundleCategoriesIDs returns the "bundle_categories" edge IDs in the mutation.
func (m *KnowledgeObjectMutation) BundleCategoriesIDs() (ids []uuid.UUID) {
	for id := range m.bundle_categories {
		ids = append(ids, id)
	}
	return
}

// ResetBundleCategories resets all changes to the "bundle_categories" edge.
func (m *KnowledgeObjectMutation) ResetBundleCategories() {
	m.bundle_categories = nil
	m.clearedbundle_categories = false
	m.removedbundle_categories = nil
}

// SetSummaryID sets the "summary" edge to the KoSummary entity by id.
func (m *KnowledgeObjectMutation) SetSummaryID(id int) {
	m.summary = &id
}

// ClearSummary clears the "summary" edge to the KoSummary entity.
func (m *KnowledgeObjectMutation) ClearSummary() {
	m.clearedsummary = true
}

// SummaryCleared reports if the "summary" edge to the KoSummary entity was cleared.
func (m *KnowledgeObjectMutation) SummaryCleared() bool {
	return m.clearedsummary
}

// SummaryID returns the "summary" edge ID in the mutation.
func (m *KnowledgeObjectMutation) SummaryID() (id int, exists bool) {
	if m.summary != nil {
		return *m.summary, true
	}
	return
}

// SummaryIDs returns the "summary" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SummaryID instead. It exists only for internal usage by the builders.
func (m *KnowledgeObjectMutation) SummaryIDs() (ids []int) {
	if id := m.summary; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSummary resets all changes to the "summary" edge.
func (m *KnowledgeObjectMutation) ResetSummary() {
	m.summary = nil
	m.clearedsummary = false
}

// AddBundleIDs adds the "bundles" edge to the Bundle entity by ids.
func (m *KnowledgeObjectMutation) AddBundleIDs(ids ...uuid.UUID) {
	if m.bundles == nil {
		m.bundles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.bundles[ids[i]] = struct{}{}
	}
}

// ClearBundles clears the "bundles" edge to the Bundle entity.
func (m *KnowledgeObjectMutation) ClearBundles() {
	m.clearedbundles = true
}

// BundlesCleared reports if the "bundles" edge to the Bundle entity was cleared.
func (m *KnowledgeObjectMutation) BundlesCleared() bool {
	return m.clearedbundles
}

// RemoveBundleIDs removes the "bundles" edge to the Bundle entity by IDs.
func (m *KnowledgeObjectMutation) RemoveBundleIDs(ids ...uuid.UUID) {
	if m.removedbundles == nil {
		m.removedbundles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.bundles, ids[i])
		m.removedbundles[ids[i]] = struct{}{}
	}
}

// RemovedBundles returns the removed IDs of the "bundles" edge to the Bundle entity.
func (m *KnowledgeObjectMutation) RemovedBundlesIDs() (ids []uuid.UUID) {
	for id := range m.removedbundles {
		ids = append(ids, id)
	}
	return
}

// BundlesIDs returns the "bundles" edge IDs in the mutation.
func (m *KnowledgeObjectMutation) BundlesIDs() (ids []uuid.UUID) {
	for id := range m.bundles {
		ids = append(ids, id)
	}
	return
}

// ResetBundles resets all changes to the "bundles" edge.
func (m *KnowledgeObjectMutation) ResetBundles() {
	m.bundles = nil
	m.clearedbundles = false
	m.removedbundles = nil
}

// Where appends a list predicates to the KnowledgeObjectMutation builder.
func (m *KnowledgeObjectMutation) Where(ps ...predicate.KnowledgeObject) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KnowledgeObjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KnowledgeObjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KnowledgeObject, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KnowledgeObjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KnowledgeObjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KnowledgeObject).
func (m *KnowledgeObjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KnowledgeObjectMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.create_time != nil {
		fields = append(fields, knowledgeobject.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, knowledgeobject.FieldUpdateTime)
	}
	if m.ko_type != nil {
		fields = append(fields, knowledgeobject.FieldKoType)
	}
	if m.title != nil {
		fields = append(fields, knowledgeobject.FieldTitle)
	}
	if m.deleted != nil {
		fields = append(fields, knowledgeobject.FieldDeleted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KnowledgeObjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case knowledgeobject.FieldCreateTime:
		return m.CreateTime()
	case knowledgeobject.FieldUpdateTime:
		return m.UpdateTime()
	case knowledgeobject.FieldKoType:
		return m.KoType()
	case knowledgeobject.FieldTitle:
		return m.Title()
	case knowledgeobject.FieldDeleted:
		return m.Deleted()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KnowledgeObjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case knowledgeobject.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case knowledgeobject.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case knowledgeobject.FieldKoType:
		return m.OldKoType(ctx)
	case knowledgeobject.FieldTitle:
		return m.OldTitle(ctx)
	case knowledgeobject.FieldDeleted:
		return m.OldDeleted(ctx)
	}
	return nil, fmt.Errorf("unknown KnowledgeObject field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeObjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case knowledgeobject.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case knowledgeobject.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case knowledgeobject.FieldKoType:
		v, ok := value.(knowledgeobject.KoType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKoType(v)
		return nil
	case knowledgeobject.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case knowledgeobject.FieldDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeleted(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeObject field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KnowledgeObjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KnowledgeObjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeObjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown KnowledgeObject numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KnowledgeObjectMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KnowledgeObjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KnowledgeObjectMutation) ClearField(name string) error {
	return fmt.Errorf("unknown KnowledgeObject nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KnowledgeObjectMutation) ResetField(name string) error {
	switch name {
	case knowledgeobject.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case knowledgeobject.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case knowledgeobject.FieldKoType:
		m.ResetKoType()
		return nil
	case knowledgeobject.FieldTitle:
		m.ResetTitle()
		return nil
	case knowledgeobject.FieldDeleted:
		m.ResetDeleted()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeObject field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KnowledgeObjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.parent != nil {
		edges = append(edges, knowledgeobject.EdgeParent)
	}
	if m.children != nil {
		edges = append(edges, knowledgeobject.EdgeChildren)
	}
	if m.bundle_categories != nil {
		edges = append(edges, knowledgeobject.EdgeBundleCategories)
	}
	if m.summary != nil {
		edges = append(edges, knowledgeobject.EdgeSummary)
	}
	if m.bundles != nil {
		edges = append(edges, knowledgeobject.EdgeBundles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KnowledgeObjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case knowledgeobject.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case knowledgeobject.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.children))
		for id := range m.children {
			ids = append(ids, id)
		}
		return ids
	case knowledgeobject.EdgeBundleCategories:
		ids := make([]ent.Value, 0, len(m.bundle_categories))
		for id := range m.bundle_categories {
			ids = append(ids, id)
		}
		return ids
	case knowledgeobject.EdgeSummary:
		if id := m.summary; id != nil {
			return []ent.Value{*id}
		}
	case knowledgeobject.EdgeBundles:
		ids := make([]ent.Value, 0, len(m.bundles))
		for id := range m.bundles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KnowledgeObjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedchildren != nil {
		edges = append(edges, knowledgeobject.EdgeChildren)
	}
	if m.removedbundle_categories != nil {
		edges = append(edges, knowledgeobject.EdgeBundleCategories)
	}
	if m.removedbundles != nil {
		edges = append(edges, knowledgeobject.EdgeBundles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KnowledgeObjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case knowledgeobject.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.removedchildren))
		for id := range m.removedchildren {
			ids = append(ids, id)
		}
		return ids
	case knowledgeobject.EdgeBundleCategories:
		ids := make([]ent.Value, 0, len(m.removedbundle_categories))
		for id := range m.removedbundle_categories {
			ids = append(ids, id)
		}
		return ids
	case knowledgeobject.EdgeBundles:
		ids := make([]ent.Value, 0, len(m.removedbundles))
		for id := range m.removedbundles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KnowledgeObjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedparent {
		edges = append(edges, knowledgeobject.EdgeParent)
	}
	if m.clearedchildren {
		edges = append(edges, knowledgeobject.EdgeChildren)
	}
	if m.clearedbundle_categories {
		edges = append(edges, knowledgeobject.EdgeBundleCategories)
	}
	if m.clearedsummary {
		edges = append(edges, knowledgeobject.EdgeSummary)
	}
	if m.clearedbundles {
		edges = append(edges, knowledgeobject.EdgeBundles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KnowledgeObjectMutation) EdgeCleared(name string) bool {
	switch name {
	case knowledgeobject.EdgeParent:
		return m.clearedparent
	case knowledgeobject.EdgeChildren:
		return m.clearedchildren
	case knowledgeobject.EdgeBundleCategories:
		return m.clearedbundle_categories
	case knowledgeobject.EdgeSummary:
		return m.clearedsummary
	case knowledgeobject.EdgeBundles:
		return m.clearedbundles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KnowledgeObjectMutation) ClearEdge(name string) error {
	switch name {
	case knowledgeobject.EdgeParent:
		m.ClearParent()
		return nil
	case knowledgeobject.EdgeSummary:
		m.ClearSummary()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeObject unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KnowledgeObjectMutation) ResetEdge(name string) error {
	switch name {
	case knowledgeobject.EdgeParent:
		m.ResetParent()
		return nil
	case knowledgeobject.EdgeChildren:
		m.ResetChildren()
		return nil
	case knowledgeobject.EdgeBundleCategories:
		m.ResetBundleCategories()
		return nil
	case knowledgeobject.EdgeSummary:
		m.ResetSummary()
		return nil
	case knowledgeobject.EdgeBundles:
		m.ResetBundles()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeObject edge %s", name)
}

// KoSummaryMutation represents an operation that mutates the KoSummary nodes in the graph.
type KoSummaryMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	create_time             *time.Time
	update_time             *time.Time
	ko_type                 *kosummary.KoType
	title                   *string
	summary_text            *string
	summary_one_liner       *string
	clearedFields           map[string]struct{}
	knowledge_object        *uuid.UUID
	clearedknowledge_object bool
	done                    bool
	oldValue                func(context.Context) (*KoSummary, error)
	predicates              []predicate.KoSummary
}

var _ ent.Mutation = (*KoSummaryMutation)(nil)

// kosummaryOption allows management of the mutation configuration using functional options.
type kosummaryOption func(*KoSummaryMutation)

// newKoSummaryMutation creates new mutation for the KoSummary entity.
func newKoSummaryMutation(c config, op Op, opts ...kosummaryOption) *KoSummaryMutation {
	m := &KoSummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeKoSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKoSummaryID sets the ID field of the mutation.
func withKoSummaryID(id int) kosummaryOption {
	return func(m *KoSummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *KoSummary
		)
		m.oldValue = func(ctx context.Context) (*KoSummary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KoSummary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKoSummary sets the old KoSummary of the mutation.
func withKoSummary(node *KoSummary) kosummaryOption {
	return func(m *KoSummaryMutation) {
		m.oldValue = func(context.Context) (*KoSummary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KoSummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KoSummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KoSummaryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KoSummaryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KoSummary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *KoSummaryMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *KoSummaryMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the KoSummary entity.
// If the KoSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KoSummaryMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *KoSummaryMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *KoSummaryMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *KoSummaryMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the KoSummary entity.
// If the KoSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KoSummaryMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *KoSummaryMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetKoID sets the "ko_id" field.
func (m *KoSummaryMutation) SetKoID(u uuid.UUID) {
	m.knowledge_object = &u
}

// KoID returns the value of the "ko_id" field in the mutation.
func (m *KoSummaryMutation) KoID() (r uuid.UUID, exists bool) {
	v := m.knowledge_object
	if v == nil {
		return
	}
	return *v, true
}

// OldKoID returns the old "ko_id" field's value of the KoSummary entity.
// If the KoSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KoSummaryMutation) OldKoID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKoID: %w", err)
	}
	return oldValue.KoID, nil
}

// ResetKoID resets all changes to the "ko_id" field.
func (m *KoSummaryMutation) ResetKoID() {
	m.knowledge_object = nil
}

// SetKoType sets the "ko_type" field.
func (m *KoSummaryMutation) SetKoType(kt kosummary.KoType) {
	m.ko_type = &kt
}

// KoType returns the value of the "ko_type" field in the mutation.
func (m *KoSummaryMutation) KoType() (r kosummary.KoType, exists bool) {
	v := m.ko_type
	if v == nil {
		return
	}
	return *v, true
}

// OldKoType returns the old "ko_type" field's value of the KoSummary entity.
// If the KoSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KoSummaryMutation) OldKoType(ctx context.Context) (v kosummary.KoType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKoType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKoType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKoType: %w", err)
	}
	return oldValue.KoType, nil
}

// ResetKoType resets all changes to the "ko_type" field.
func (m *KoSummaryMutation) ResetKoType() {
	m.ko_type = nil
}

// SetTitle sets the "title" field.
func (m *KoSummaryMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *KoSummaryMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the KoSummary entity.
// If the KoSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KoSummaryMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *KoSummaryMutation) ResetTitle() {
	m.title = nil
}

// SetSummaryText sets the "summary_text" field.
func (m *KoSummaryMutation) SetSummaryText(s string) {
	m.summary_text = &s
}

// SummaryText returns the value of the "summary_text" field in the mutation.
func (m *KoSummaryMutation) SummaryText() (r string, exists bool) {
	v := m.summary_text
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryText returns the old "summary_text" field's value of the KoSummary entity.
// If the KoSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KoSummaryMutation) OldSummaryText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryText: %w", err)
	}
	return oldValue.SummaryText, nil
}

// ClearSummaryText clears the value of the "summary_text" field.
func (m *KoSummaryMutation) ClearSummaryText() {
	m.summary_text = nil
	m.clearedFields[kosummary.FieldSummaryText] = struct{}{}
}

// SummaryTextCleared returns if the "summary_text" field was cleared in this mutation.
func (m *KoSummaryMutation) SummaryTextCleared() bool {
	_, ok := m.clearedFields[kosummary.FieldSummaryText]
	return ok
}

// ResetSummaryText resets all changes to the "summary_text" field.
func (m *KoSummaryMutation) ResetSummaryText() {
	m.summary_text = nil
	delete(m.clearedFields, kosummary.FieldSummaryText)
}

// SetSummaryOneLiner sets the "summary_one_liner" field.
func (m *KoSummaryMutation) SetSummaryOneLiner(s string) {
	m.summary_one_liner = &s
}

// SummaryOneLiner returns the value of the "summary_one_liner" field in the mutation.
func (m *KoSummaryMutation) SummaryOneLiner() (r string, exists bool) {
	v := m.summary_one_liner
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryOneLiner returns the old "summary_one_liner" field's value of the KoSummary entity.
// If the KoSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KoSummaryMutation) OldSummaryOneLiner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryOneLiner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryOneLiner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryOneLiner: %w", err)
	}
	return oldValue.SummaryOneLiner, nil
}

// ClearSummaryOneLiner clears the value of the "summary_one_liner" field.
func (m *KoSummaryMutation) ClearSummaryOneLiner() {
	m.summary_one_liner = nil
	m.clearedFields[kosummary.FieldSummaryOneLiner] = struct{}{}
}

// SummaryOneLinerCleared returns if the "summary_one_liner" field was cleared in this mutation.
func (m *KoSummaryMutation) SummaryOneLinerCleared() bool {
	_, ok := m.clearedFields[kosummary.FieldSummaryOneLiner]
	return ok
}

// ResetSummaryOneLiner resets all changes to the "summary_one_liner" field.
func (m *KoSummaryMutation) ResetSummaryOneLiner() {
	m.summary_one_liner = nil
	delete(m.clearedFields, kosummary.FieldSummaryOneLiner)
}

// SetKnowledgeObjectID sets the "knowledge_object" edge to the KnowledgeObject entity by id.
func (m *KoSummaryMutation) SetKnowledgeObjectID(id uuid.UUID) {
	m.knowledge_object = &id
}

// ClearKnowledgeObject clears the "knowledge_object" edge to the KnowledgeObject entity.
func (m *KoSummaryMutation) ClearKnowledgeObject() {
	m.clearedknowledge_object = true
	m.clearedFields[kosummary.FieldKoID] = struct{}{}
}

// KnowledgeObjectCleared reports if the "knowledge_object" edge to the KnowledgeObject entity was cleared.
func (m *KoSummaryMutation) KnowledgeObjectCleared() bool {
	return m.clearedknowledge_object
}

// KnowledgeObjectID returns the "knowledge_object" edge ID in the mutation.
func (m *KoSummaryMutation) KnowledgeObjectID() (id uuid.UUID, exists bool) {
	if m.knowledge_object != nil {
		return *m.knowledge_object, true
	}
	return
}

// KnowledgeObjectIDs returns the "knowledge_object" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// KnowledgeObjectID instead. It exists only for internal usage by the builders.
func (m *KoSummaryMutation) KnowledgeObjectIDs() (ids []uuid.UUID) {
	if id := m.knowledge_object; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetKnowledgeObject resets all changes to the "knowledge_object" edge.
func (m *KoSummaryMutation) ResetKnowledgeObject() {
	m.knowledge_object = nil
	m.clearedknowledge_object = false
}

// Where appends a list predicates to the KoSummaryMutation builder.
func (m *KoSummaryMutation) Where(ps ...predicate.KoSummary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KoSummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KoSummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KoSummary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KoSummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KoSummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KoSummary).
func (m *KoSummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KoSummaryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.create_time != nil {
		fields = append(fields, kosummary.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, kosummary.FieldUpdateTime)
	}
	if m.knowledge_object != nil {
		fields = append(fields, kosummary.FieldKoID)
	}
	if m.ko_type != nil {
		fields = append(fields, kosummary.FieldKoType)
	}
	if m.title != nil {
		fields = append(fields, kosummary.FieldTitle)
	}
	if m.summary_text != nil {
		fields = append(fields, kosummary.FieldSummaryText)
	}
	if m.summary_one_liner != nil {
		fields = append(fields, kosummary.FieldSummaryOneLiner)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KoSummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case kosummary.FieldCreateTime:
		return m.CreateTime()
	case kosummary.FieldUpdateTime:
		return m.UpdateTime()
	case kosummary.FieldKoID:
		return m.KoID()
	case kosummary.FieldKoType:
		return m.KoType()
	case kosummary.FieldTitle:
		return m.Title()
	case kosummary.FieldSummaryText:
		return m.SummaryText()
	case kosummary.FieldSummaryOneLiner:
		return m.SummaryOneLiner()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KoSummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case kosummary.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case kosummary.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case kosummary.FieldKoID:
		return m.OldKoID(ctx)
	case kosummary.FieldKoType:
		return m.OldKoType(ctx)
	case kosummary.FieldTitle:
		return m.OldTitle(ctx)
	case kosummary.FieldSummaryText:
		return m.OldSummaryText(ctx)
	case kosummary.FieldSummaryOneLiner:
		return m.OldSummaryOneLiner(ctx)
	}
	return nil, fmt.Errorf("unknown KoSummary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KoSummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case kosummary.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case kosummary.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case kosummary.FieldKoID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKoID(v)
		return nil
	case kosummary.FieldKoType:
		v, ok := value.(kosummary.KoType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKoType(v)
		return nil
	case kosummary.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case kosummary.FieldSummaryText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryText(v)
		return nil
	case kosummary.FieldSummaryOneLiner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryOneLiner(v)
		return nil
	}
	return fmt.Errorf("unknown KoSummary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KoSummaryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KoSummaryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KoSummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown KoSummary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KoSummaryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(kosummary.FieldSummaryText) {
		fields = append(fields, kosummary.FieldSummaryText)
	}
	if m.FieldCleared(kosummary.FieldSummaryOneLiner) {
		fields = append(fields, kosummary.FieldSummaryOneLiner)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KoSummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KoSummaryMutation) ClearField(name string) error {
	switch name {
	case kosummary.FieldSummaryText:
		m.ClearSummaryText()
		return nil
	case kosummary.FieldSummaryOneLiner:
		m.ClearSummaryOneLiner()
		return nil
	}
	return fmt.Errorf("unknown KoSummary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KoSummaryMutation) ResetField(name string) error {
	switch name {
	case kosummary.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case kosummary.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case kosummary.FieldKoID:
		m.ResetKoID()
		return nil
	case kosummary.FieldKoType:
		m.ResetKoType()
		return nil
	case kosummary.FieldTitle:
		m.ResetTitle()
		return nil
	case kosummary.FieldSummaryText:
		m.ResetSummaryText()
		return nil
	case kosummary.FieldSummaryOneLiner:
		m.ResetSummaryOneLiner()
		return nil
	}
	return fmt.Errorf("unknown KoSummary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KoSummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.knowledge_object != nil {
		edges = append(edges, kosummary.EdgeKnowledgeObject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KoSummaryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case kosummary.EdgeKnowledgeObject:
		if id := m.knowledge_object; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KoSummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KoSummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KoSummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedknowledge_object {
		edges = append(edges, kosummary.EdgeKnowledgeObject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KoSummaryMutation) EdgeCleared(name string) bool {
	switch name {
	case kosummary.EdgeKnowledgeObject:
		return m.clearedknowledge_object
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KoSummaryMutation) ClearEdge(name string) error {
	switch name {
	case kosummary.EdgeKnowledgeObject:
		m.ClearKnowledgeObject()
		return nil
	}
	return fmt.Errorf("unknown KoSummary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KoSummaryMutation) ResetEdge(name string) error {
	switch name {
	case kosummary.EdgeKnowledgeObject:
		m.ResetKnowledgeObject()
		return nil
	}
	return fmt.Errorf("unknown KoSummary edge %s", name)
}
