// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/fachebot/ko-digest-bot/internal/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundle"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundlecategory"
	"github.com/fachebot/ko-digest-bot/internal/ent/dailydose"
	"github.com/fachebot/ko-digest-bot/internal/ent/digestrun"
	"github.com/fachebot/ko-digest-bot/internal/ent/digesttask"
	"github.com/fachebot/ko-digest-bot/internal/ent/knowledgeobject"
	"github.com/fachebot/ko-digest-bot/internal/ent/kosummary"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Bundle is the client for interacting with the Bundle builders.
	Bundle *BundleClient
	// BundleCategory is the client for interacting with the BundleCategory builders.
	BundleCategory *BundleCategoryClient
	// DailyDose is the client for interacting with the DailyDose builders.
	DailyDose *DailyDoseClient
	// DigestRun is the client for interacting with the DigestRun builders.
	DigestRun *DigestRunClient
	// DigestTask is the client for interacting with the DigestTask builders.
	DigestTask *DigestTaskClient
	// KnowledgeObject is the client for interacting with the KnowledgeObject builders.
	KnowledgeObject *KnowledgeObjectClient
	// KoSummary is the client for interacting with the KoSummary builders.
	KoSummary *KoSummaryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Bundle = NewBundleClient(c.config)
	c.BundleCategory = NewBundleCategoryClient(c.config)
	c.DailyDose = NewDailyDoseClient(c.config)
	c.DigestRun = NewDigestRunClient(c.config)
	c.DigestTask = NewDigestTaskClient(c.config)
	c.KnowledgeObject = NewKnowledgeObjectClient(c.config)
	c.KoSummary = NewKoSummaryClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Bundle:          NewBundleClient(cfg),
		BundleCategory:  NewBundleCategoryClient(cfg),
		DailyDose:       NewDailyDoseClient(cfg),
		DigestRun:       NewDigestRunClient(cfg),
		DigestTask:      NewDigestTaskClient(cfg),
		KnowledgeObject: NewKnowledgeObjectClient(cfg),
		KoSummary:       NewKoSummaryClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Bundle:          NewBundleClient(cfg),
		BundleCategory:  NewBundleCategoryClient(cfg),
		DailyDose:       NewDailyDoseClient(cfg),
		DigestRun:       NewDigestRunClient(cfg),
		DigestTask:      NewDigestTaskClient(cfg),
		KnowledgeObject: NewKnowledgeObjectClient(cfg),
		KoSummary:       NewKoSummaryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Bundle.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Bundle, c.BundleCategory, c.DailyDose, c.DigestRun, c.DigestTask,
		c.KnowledgeObject, c.KoSummary,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Bundle, c.BundleCategory, c.DailyDose, c.DigestRun, c.DigestTask,
		c.KnowledgeObject, c.KoSummary,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BundleMutation:
		return c.Bundle.mutate(ctx, m)
	case *BundleCategoryMutation:
		return c.BundleCategory.mutate(ctx, m)
	case *DailyDoseMutation:
		return c.DailyDose.mutate(ctx, m)
	case *DigestRunMutation:
		return c.DigestRun.mutate(ctx, m)
	case *DigestTaskMutation:
		return c.DigestTask.mutate(ctx, m)
	case *KnowledgeObjectMutation:
		return c.KnowledgeObject.mutate(ctx, m)
	case *KoSummaryMutation:
		return c.KoSummary.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BundleClient is a client for the Bundle schema.
type BundleClient struct {
	config
}

// NewBundleClient returns a client for the Bundle from the given config.
func NewBundleClient(c config) *BundleClient {
	return &BundleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `bundle.Hooks(f(g(h())))`.
func (c *BundleClient) Use(hooks ...Hook) {
	c.hooks.Bundle = append(c.hooks.Bundle, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `bundle.Intercept(f(g(h())))`.
func (c *BundleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Bundle = append(c.inters.Bundle, interceptors...)
}

// Create returns a builder for creating a Bundle entity.
func (c *BundleClient) Create() *BundleCreate {
	mutation := newBundleMutation(c.config, OpCreate)
	return &BundleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Bundle entities.
func (c *BundleClient) CreateBulk(builders ...*BundleCreate) *BundleCreateBulk {
	return &BundleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BundleClient) MapCreateBulk(slice any, setFunc func(*BundleCreate, int)) *BundleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BundleCreateBulk{err: fmt.Errorf("calling to BundleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BundleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BundleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Bundle.
func (c *BundleClient) Update() *BundleUpdate {
	mutation := newBundleMutation(c.config, OpUpdate)
	return &BundleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BundleClient) UpdateOne(_m *Bundle) *BundleUpdateOne {
	mutation := newBundleMutation(c.config, OpUpdateOne, withBundle(_m))
	return &BundleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BundleClient) UpdateOneID(id uuid.UUID) *BundleUpdateOne {
	mutation := newBundleMutation(c.config, OpUpdateOne, withBundleID(id))
	return &BundleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Bundle.
func (c *BundleClient) Delete() *BundleDelete {
	mutation := newBundleMutation(c.config, OpDelete)
	return &BundleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BundleClient) DeleteOne(_m *Bundle) *BundleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BundleClient) DeleteOneID(id uuid.UUID) *BundleDeleteOne {
	builder := c.Delete().Where(bundle.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BundleDeleteOne{builder}
}

// Query returns a query builder for Bundle.
func (c *BundleClient) Query() *BundleQuery {
	return &BundleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBundle},
		inters: c.Interceptors(),
	}
}

// Get returns a Bundle entity by its id.
func (c *BundleClient) Get(ctx context.Context, id uuid.UUID) (*Bundle, error) {
	return c.Query().Where(bundle.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BundleClient) GetX(ctx context.Context, id uuid.UUID) *Bundle {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBundleCategory queries the bundle_category edge of a Bundle.
func (c *BundleClient) QueryBundleCategory(_m *Bundle) *BundleCategoryQuery {
	query := (&BundleCategoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(bundle.Table, bundle.FieldID, id),
			sqlgraph.To(bundlecategory.Table, bundlecategory.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, bundle.BundleCategoryTable, bundle.BundleCategoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryKnowledgeObjects queries the knowledge_objects edge of a Bundle.
func (c *BundleClient) QueryKnowledgeObjects(_m *Bundle) *KnowledgeObjectQuery {
	query := (&KnowledgeObjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(bundle.Table, bundle.FieldID, id),
			sqlgraph.To(knowledgeobject.Table, knowledgeobject.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, bundle.KnowledgeObjectsTable, bundle.KnowledgeObjectsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BundleClient) Hooks() []Hook {
	return c.hooks.Bundle
}

// Interceptors returns the client interceptors.
func (c *BundleClient) Interceptors() []Interceptor {
	return c.inters.Bundle
}

func (c *BundleClient) mutate(ctx context.Context, m *BundleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BundleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BundleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BundleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BundleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Bundle mutation op: %q", m.Op())
	}
}

// BundleCategoryClient is a client for the BundleCategory schema.
type BundleCategoryClient struct {
	config
}

// NewBundleCategoryClient returns a client for the BundleCategory from the given config.
func NewBundleCategoryClient(c config) *BundleCategoryClient {
	return &BundleCategoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `bundlecategory.Hooks(f(g(h())))`.
func (c *BundleCategoryClient) Use(hooks ...Hook) {
	c.hooks.BundleCategory = append(c.hooks.BundleCategory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `bundlecategory.Intercept(f(g(h())))`.
func (c *BundleCategoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.BundleCategory = append(c.inters.BundleCategory, interceptors...)
}

// Create returns a builder for creating a BundleCategory entity.
func (c *BundleCategoryClient) Create() *BundleCategoryCreate {
	mutation := newBundleCategoryMutation(c.config, OpCreate)
	return &BundleCategoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BundleCategory entities.
func (c *BundleCategoryClient) CreateBulk(builders ...*BundleCategoryCreate) *BundleCategoryCreateBulk {
	return &BundleCategoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BundleCategoryClient) MapCreateBulk(slice any, setFunc func(*BundleCategoryCreate, int)) *BundleCategoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BundleCategoryCreateBulk{err: fmt.Errorf("calling to BundleCategoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BundleCategoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BundleCategoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BundleCategory.
func (c *BundleCategoryClient) Update() *BundleCategoryUpdate {
	mutation := newBundleCategoryMutation(c.config, OpUpdate)
	return &BundleCategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BundleCategoryClient) UpdateOne(_m *BundleCategory) *BundleCategoryUpdateOne {
	mutation := newBundleCategoryMutation(c.config, OpUpdateOne, withBundleCategory(_m))
	return &BundleCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BundleCategoryClient) UpdateOneID(id uuid.UUID) *BundleCategoryUpdateOne {
	mutation := newBundleCategoryMutation(c.config, OpUpdateOne, withBundleCategoryID(id))
	return &BundleCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BundleCategory.
func (c *BundleCategoryClient) Delete() *BundleCategoryDelete {
	mutation := newBundleCategoryMutation(c.config, OpDelete)
	return &BundleCategoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BundleCategoryClient) DeleteOne(_m *BundleCategory) *BundleCategoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BundleCategoryClient) DeleteOneID(id uuid.UUID) *BundleCategoryDeleteOne {
	builder := c.Delete().Where(bundlecategory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BundleCategoryDeleteOne{builder}
}

// Query returns a query builder for BundleCategory.
func (c *BundleCategoryClient) Query() *BundleCategoryQuery {
	return &BundleCategoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBundleCategory},
		inters: c.Interceptors(),
	}
}

// Get returns a BundleCategory entity by its id.
func (c *BundleCategoryClient) Get(ctx context.Context, id uuid.UUID) (*BundleCategory, error) {
	return c.Query().Where(bundlecategory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BundleCategoryClient) GetX(ctx context.Context, id uuid.UUID) *BundleCategory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryKnowledgeObjects queries the knowledge_objects edge of a BundleCategory.
func (c *BundleCategoryClient) QueryKnowledgeObjects(_m *BundleCategory) *KnowledgeObjectQuery {
	query := (&KnowledgeObjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(bundlecategory.Table, bundlecategory.FieldID, id),
			sqlgraph.To(knowledgeobject.Table, knowledgeobject.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, bundlecategory.KnowledgeObjectsTable, bundlecategory.KnowledgeObjectsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBundles queries the bundles edge of a BundleCategory.
func (c *BundleCategoryClient) QueryBundles(_m *BundleCategory) *BundleQuery {
	query := (&BundleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(bundlecategory.Table, bundlecategory.FieldID, id),
			sqlgraph.To(bundle.Table, bundle.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, bundlecategory.BundlesTable, bundlecategory.BundlesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BundleCategoryClient) Hooks() []Hook {
	return c.hooks.BundleCategory
}

// Interceptors returns the client interceptors.
func (c *BundleCategoryClient) Interceptors() []Interceptor {
	return c.inters.BundleCategory
}

func (c *BundleCategoryClient) mutate(ctx context.Context, m *BundleCategoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BundleCategoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BundleCategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BundleCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BundleCategoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BundleCategory mutation op: %q", m.Op())
	}
}

// DailyDoseClient is a client for the DailyDose schema.
type DailyDoseClient struct {
	config
}

// NewDailyDoseClient returns a client for the DailyDose from the given config.
func NewDailyDoseClient(c config) *DailyDoseClient {
	return &DailyDoseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dailydose.Hooks(f(g(h())))`.
func (c *DailyDoseClient) Use(hooks ...Hook) {
	c.hooks.DailyDose = append(c.hooks.DailyDose, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dailydose.Intercept(f(g(h())))`.
func (c *DailyDoseClient) Intercept(interceptors ...Interceptor) {
	c.inters.DailyDose = append(c.inters.DailyDose, interceptors...)
}

// Create returns a builder for creating a DailyDose entity.
func (c *DailyDoseClient) Create() *DailyDoseCreate {
	mutation := newDailyDoseMutation(c.config, OpCreate)
	return &DailyDoseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DailyDose entities.
func (c *DailyDoseClient) CreateBulk(builders ...*DailyDoseCreate) *DailyDoseCreateBulk {
	return &DailyDoseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DailyDoseClient) MapCreateBulk(slice any, setFunc func(*DailyDoseCreate, int)) *DailyDoseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DailyDoseCreateBulk{err: fmt.Errorf("calling to DailyDoseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DailyDoseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DailyDoseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DailyDose.
func (c *DailyDoseClient) Update() *DailyDoseUpdate {
	mutation := newDailyDoseMutation(c.config, OpUpdate)
	return &DailyDoseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DailyDoseClient) UpdateOne(_m *DailyDose) *DailyDoseUpdateOne {
	mutation := newDailyDoseMutation(c.config, OpUpdateOne, withDailyDose(_m))
	return &DailyDoseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DailyDoseClient) UpdateOneID(id uuid.UUID) *DailyDoseUpdateOne {
	mutation := newDailyDoseMutation(c.config, OpUpdateOne, withDailyDoseID(id))
	return &DailyDoseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DailyDose.
func (c *DailyDoseClient) Delete() *DailyDoseDelete {
	mutation := newDailyDoseMutation(c.config, OpDelete)
	return &DailyDoseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DailyDoseClient) DeleteOne(_m *DailyDose) *DailyDoseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DailyDoseClient) DeleteOneID(id uuid.UUID) *DailyDoseDeleteOne {
	builder := c.Delete().Where(dailydose.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DailyDoseDeleteOne{builder}
}

// Query returns a query builder for DailyDose.
func (c *DailyDoseClient) Query() *DailyDoseQuery {
	return &DailyDoseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDailyDose},
		inters: c.Interceptors(),
	}
}

// Get returns a DailyDose entity by its id.
func (c *DailyDoseClient) Get(ctx context.Context, id uuid.UUID) (*DailyDose, error) {
	return c.Query().Where(dailydose.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DailyDoseClient) GetX(ctx context.Context, id uuid.UUID) *DailyDose {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DailyDoseClient) Hooks() []Hook {
	return c.hooks.DailyDose
}

// Interceptors returns the client interceptors.
func (c *DailyDoseClient) Interceptors() []Interceptor {
	return c.inters.DailyDose
}

func (c *DailyDoseClient) mutate(ctx context.Context, m *DailyDoseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DailyDoseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DailyDoseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DailyDoseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DailyDoseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DailyDose mutation op: %q", m.Op())
	}
}

// DigestRunClient is a client for the DigestRun schema.
type DigestRunClient struct {
	config
}

// NewDigestRunClient returns a client for the DigestRun from the given config.
func NewDigestRunClient(c config) *DigestRunClient {
	return &DigestRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `digestrun.Hooks(f(g(h())))`.
func (c *DigestRunClient) Use(hooks ...Hook) {
	c.hooks.DigestRun = append(c.hooks.DigestRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `digestrun.Intercept(f(g(h())))`.
func (c *DigestRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.DigestRun = append(c.inters.DigestRun, interceptors...)
}

// Create returns a builder for creating a DigestRun entity.
func (c *DigestRunClient) Create() *DigestRunCreate {
	mutation := newDigestRunMutation(c.config, OpCreate)
	return &DigestRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DigestRun entities.
func (c *DigestRunClient) CreateBulk(builders ...*DigestRunCreate) *DigestRunCreateBulk {
	return &DigestRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DigestRunClient) MapCreateBulk(slice any, setFunc func(*DigestRunCreate, int)) *DigestRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DigestRunCreateBulk{err: fmt.Errorf("calling to DigestRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DigestRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DigestRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DigestRun.
func (c *DigestRunClient) Update() *DigestRunUpdate {
	mutation := newDigestRunMutation(c.config, OpUpdate)
	return &DigestRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DigestRunClient) UpdateOne(_m *DigestRun) *DigestRunUpdateOne {
	mutation := newDigestRunMutation(c.config, OpUpdateOne, withDigestRun(_m))
	return &DigestRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DigestRunClient) UpdateOneID(id int) *DigestRunUpdateOne {
	mutation := newDigestRunMutation(c.config, OpUpdateOne, withDigestRunID(id))
	return &DigestRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DigestRun.
func (c *DigestRunClient) Delete() *DigestRunDelete {
	mutation := newDigestRunMutation(c.config, OpDelete)
	return &DigestRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DigestRunClient) DeleteOne(_m *DigestRun) *DigestRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DigestRunClient) DeleteOneID(id int) *DigestRunDeleteOne {
	builder := c.Delete().Where(digestrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DigestRunDeleteOne{builder}
}

// Query returns a query builder for DigestRun.
func (c *DigestRunClient) Query() *DigestRunQuery {
	return &DigestRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDigestRun},
		inters: c.Interceptors(),
	}
}

// Get returns a DigestRun entity by its id.
func (c *DigestRunClient) Get(ctx context.Context, id int) (*DigestRun, error) {
	return c.Query().Where(digestrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DigestRunClient) GetX(ctx context.Context, id int) *DigestRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DigestRunClient) Hooks() []Hook {
	return c.hooks.DigestRun
}

// Interceptors returns the client interceptors.
func (c *DigestRunClient) Interceptors() []Interceptor {
	return c.inters.DigestRun
}

func (c *DigestRunClient) mutate(ctx context.Context, m *DigestRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DigestRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DigestRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DigestRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DigestRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DigestRun mutation op: %q", m.Op())
	}
}

// DigestTaskClient is a client for the DigestTask schema.
type DigestTaskClient struct {
	config
}

// NewDigestTaskClient returns a client for the DigestTask from the given config.
func NewDigestTaskClient(c config) *DigestTaskClient {
	return &DigestTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `digesttask.Hooks(f(g(h())))`.
func (c *DigestTaskClient) Use(hooks ...Hook) {
	c.hooks.DigestTask = append(c.hooks.DigestTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `digesttask.Intercept(f(g(h())))`.
func (c *DigestTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.DigestTask = append(c.inters.DigestTask, interceptors...)
}

// Create returns a builder for creating a DigestTask entity.
func (c *DigestTaskClient) Create() *DigestTaskCreate {
	mutation := newDigestTaskMutation(c.config, OpCreate)
	return &DigestTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DigestTask entities.
func (c *DigestTaskClient) CreateBulk(builders ...*DigestTaskCreate) *DigestTaskCreateBulk {
	return &DigestTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DigestTaskClient) MapCreateBulk(slice any, setFunc func(*DigestTaskCreate, int)) *DigestTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DigestTaskCreateBulk{err: fmt.Errorf("calling to DigestTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DigestTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DigestTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DigestTask.
func (c *DigestTaskClient) Update() *DigestTaskUpdate {
	mutation := newDigestTaskMutation(c.config, OpUpdate)
	return &DigestTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DigestTaskClient) UpdateOne(_m *DigestTask) *DigestTaskUpdateOne {
	mutation := newDigestTaskMutation(c.config, OpUpdateOne, withDigestTask(_m))
	return &DigestTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DigestTaskClient) UpdateOneID(id int) *DigestTaskUpdateOne {
	mutation := newDigestTaskMutation(c.config, OpUpdateOne, withDigestTaskID(id))
	return &DigestTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DigestTask.
func (c *DigestTaskClient) Delete() *DigestTaskDelete {
	mutation := newDigestTaskMutation(c.config, OpDelete)
	return &DigestTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DigestTaskClient) DeleteOne(_m *DigestTask) *DigestTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DigestTaskClient) DeleteOneID(id int) *DigestTaskDeleteOne {
	builder := c.Delete().Where(digesttask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DigestTaskDeleteOne{builder}
}

// Query returns a query builder for DigestTask.
func (c *DigestTaskClient) Query() *DigestTaskQuery {
	return &DigestTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDigestTask},
		inters: c.Interceptors(),
	}
}

// Get returns a DigestTask entity by its id.
func (c *DigestTaskClient) Get(ctx context.Context, id int) (*DigestTask, error) {
	return c.Query().Where(digesttask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DigestTaskClient) GetX(ctx context.Context, id int) *DigestTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DigestTaskClient) Hooks() []Hook {
	return c.hooks.DigestTask
}

// Interceptors returns the client interceptors.
func (c *DigestTaskClient) Interceptors() []Interceptor {
	return c.inters.DigestTask
}

func (c *DigestTaskClient) mutate(ctx context.Context, m *DigestTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DigestTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DigestTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DigestTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DigestTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DigestTask mutation op: %q", m.Op())
	}
}

// KnowledgeObjectClient is a client for the KnowledgeObject schema.
type KnowledgeObjectClient struct {
	config
}

// NewKnowledgeObjectClient returns a client for the KnowledgeObject from the given config.
func NewKnowledgeObjectClient(c config) *KnowledgeObjectClient {
	return &KnowledgeObjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `knowledgeobject.Hooks(f(g(h())))`.
func (c *KnowledgeObjectClient) Use(hooks ...Hook) {
	c.hooks.KnowledgeObject = append(c.hooks.KnowledgeObject, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `knowledgeobject.Intercept(f(g(h())))`.
func (c *KnowledgeObjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.KnowledgeObject = append(c.inters.KnowledgeObject, interceptors...)
}

// Create returns a builder for creating a KnowledgeObject entity.
func (c *KnowledgeObjectClient) Create() *KnowledgeObjectCreate {
	mutation := newKnowledgeObjectMutation(c.config, OpCreate)
	return &KnowledgeObjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KnowledgeObject entities.
func (c *KnowledgeObjectClient) CreateBulk(builders ...*KnowledgeObjectCreate) *KnowledgeObjectCreateBulk {
	return &KnowledgeObjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KnowledgeObjectClient) MapCreateBulk(slice any, setFunc func(*KnowledgeObjectCreate, int)) *KnowledgeObjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KnowledgeObjectCreateBulk{err: fmt.Errorf("calling to KnowledgeObjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KnowledgeObjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KnowledgeObjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KnowledgeObject.
func (c *KnowledgeObjectClient) Update() *KnowledgeObjectUpdate {
	mutation := newKnowledgeObjectMutation(c.config, OpUpdate)
	return &KnowledgeObjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KnowledgeObjectClient) UpdateOne(_m *KnowledgeObject) *KnowledgeObjectUpdateOne {
	mutation := newKnowledgeObjectMutation(c.config, OpUpdateOne, withKnowledgeObject(_m))
	return &KnowledgeObjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KnowledgeObjectClient) UpdateOneID(id uuid.UUID) *KnowledgeObjectUpdateOne {
	mutation := newKnowledgeObjectMutation(c.config, OpUpdateOne, withKnowledgeObjectID(id))
	return &KnowledgeObjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KnowledgeObject.
func (c *KnowledgeObjectClient) Delete() *KnowledgeObjectDelete {
	mutation := newKnowledgeObjectMutation(c.config, OpDelete)
	return &KnowledgeObjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KnowledgeObjectClient) DeleteOne(_m *KnowledgeObject) *KnowledgeObjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KnowledgeObjectClient) DeleteOneID(id uuid.UUID) *KnowledgeObjectDeleteOne {
	builder := c.Delete().Where(knowledgeobject.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KnowledgeObjectDeleteOne{builder}
}

// Query returns a query builder for KnowledgeObject.
func (c *KnowledgeObjectClient) Query() *KnowledgeObjectQuery {
	return &KnowledgeObjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKnowledgeObject},
		inters: c.Interceptors(),
	}
}

// Get returns a KnowledgeObject entity by its id.
func (c *KnowledgeObjectClient) Get(ctx context.Context, id uuid.UUID) (*KnowledgeObject, error) {
	return c.Query().Where(knowledgeobject.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KnowledgeObjectClient) GetX(ctx context.Context, id uuid.UUID) *KnowledgeObject {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParent queries the parent edge of a KnowledgeObject.
func (c *KnowledgeObjectClient) QueryParent(_m *KnowledgeObject) *KnowledgeObjectQuery {
	query := (&KnowledgeObjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgeobject.Table, knowledgeobject.FieldID, id),
			sqlgraph.To(knowledgeobject.Table, knowledgeobject.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, knowledgeobject.ParentTable, knowledgeobject.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChildren queries the children edge of a KnowledgeObject.
func (c *KnowledgeObjectClient) QueryChildren(_m *KnowledgeObject) *KnowledgeObjectQuery {
	query := (&KnowledgeObjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgeobject.Table, knowledgeobject.FieldID, id),
			sqlgraph.To(knowledgeobject.Table, knowledgeobject.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, knowledgeobject.ChildrenTable, knowledgeobject.ChildrenColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBundleCategories queries the bundle_categories edge of a KnowledgeObject.
func (c *KnowledgeObjectClient) QueryBundleCategories(_m *KnowledgeObject) *BundleCategoryQuery {
	query := (&BundleCategoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgeobject.Table, knowledgeobject.FieldID, id),
			sqlgraph.To(bundlecategory.Table, bundlecategory.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, knowledgeobject.BundleCategoriesTable, knowledgeobject.BundleCategoriesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySummary queries the summary edge of a KnowledgeObject.
func (c *KnowledgeObjectClient) QuerySummary(_m *KnowledgeObject) *KoSummaryQuery {
	query := (&KoSummaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgeobject.Table, knowledgeobject.FieldID, id),
			sqlgraph.To(kosummary.Table, kosummary.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, knowledgeobject.SummaryTable, knowledgeobject.SummaryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBundles queries the bundles edge of a KnowledgeObject.
func (c *KnowledgeObjectClient) QueryBundles(_m *KnowledgeObject) *BundleQuery {
	query := (&BundleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgeobject.Table, knowledgeobject.FieldID, id),
			sqlgraph.To(bundle.Table, bundle.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, knowledgeobject.BundlesTable, knowledgeobject.BundlesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *KnowledgeObjectClient) Hooks() []Hook {
	return c.hooks.KnowledgeObject
}

// Interceptors returns the client interceptors.
func (c *KnowledgeObjectClient) Interceptors() []Interceptor {
	return c.inters.KnowledgeObject
}

func (c *KnowledgeObjectClient) mutate(ctx context.Context, m *KnowledgeObjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KnowledgeObjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KnowledgeObjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KnowledgeObjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KnowledgeObjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KnowledgeObject mutation op: %q", m.Op())
	}
}

// KoSummaryClient is a client for the KoSummary schema.
type KoSummaryClient struct {
	config
}

// NewKoSummaryClient returns a client for the KoSummary from the given config.
func NewKoSummaryClient(c config) *KoSummaryClient {
	return &KoSummaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `kosummary.Hooks(f(g(h())))`.
func (c *KoSummaryClient) Use(hooks ...Hook) {
	c.hooks.KoSummary = append(c.hooks.KoSummary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `kosummary.Intercept(f(g(h())))`.
func (c *KoSummaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.KoSummary = append(c.inters.KoSummary, interceptors...)
}

// Create returns a builder for creating a KoSummary entity.
func (c *KoSummaryClient) Create() *KoSummaryCreate {
	mutation := newKoSummaryMutation(c.config, OpCreate)
	return &KoSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KoSummary entities.
func (c *KoSummaryClient) CreateBulk(builders ...*KoSummaryCreate) *KoSummaryCreateBulk {
	return &KoSummaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KoSummaryClient) MapCreateBulk(slice any, setFunc func(*KoSummaryCreate, int)) *KoSummaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KoSummaryCreateBulk{err: fmt.Errorf("calling to KoSummaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KoSummaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KoSummaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KoSummary.
func (c *KoSummaryClient) Update() *KoSummaryUpdate {
	mutation := newKoSummaryMutation(c.config, OpUpdate)
	return &KoSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KoSummaryClient) UpdateOne(_m *KoSummary) *KoSummaryUpdateOne {
	mutation := newKoSummaryMutation(c.config, OpUpdateOne, withKoSummary(_m))
	return &KoSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KoSummaryClient) UpdateOneID(id int) *KoSummaryUpdateOne {
	mutation := newKoSummaryMutation(c.config, OpUpdateOne, withKoSummaryID(id))
	return &KoSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KoSummary.
func (c *KoSummaryClient) Delete() *KoSummaryDelete {
	mutation := newKoSummaryMutation(c.config, OpDelete)
	return &KoSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KoSummaryClient) DeleteOne(_m *KoSummary) *KoSummaryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KoSummaryClient) DeleteOneID(id int) *KoSummaryDeleteOne {
	builder := c.Delete().Where(kosummary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KoSummaryDeleteOne{builder}
}

// Query returns a query builder for KoSummary.
func (c *KoSummaryClient) Query() *KoSummaryQuery {
	return &KoSummaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKoSummary},
		inters: c.Interceptors(),
	}
}

// Get returns a KoSummary entity by its id.
func (c *KoSummaryClient) Get(ctx context.Context, id int) (*KoSummary, error) {
	return c.Query().Where(kosummary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KoSummaryClient) GetX(ctx context.Context, id int) *KoSummary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryKnowledgeObject queries the knowledge_object edge of a KoSummary.
func (c *KoSummaryClient) QueryKnowledgeObject(_m *KoSummary) *KnowledgeObjectQuery {
	query := (&KnowledgeObjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(kosummary.Table, kosummary.FieldID, id),
			sqlgraph.To(knowledgeobject.Table, knowledgeobject.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, kosummary.KnowledgeObjectTable, kosummary.KnowledgeObjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *KoSummaryClient) Hooks() []Hook {
	return c.hooks.KoSummary
}

// Interceptors returns the client interceptors.
func (c *KoSummaryClient) Interceptors() []Interceptor {
	return c.inters.KoSummary
}

func (c *KoSummaryClient) mutate(ctx context.Context, m *KoSummaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KoSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KoSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KoSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KoSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KoSummary mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Bundle, BundleCategory, DailyDose, DigestRun, DigestTask, KnowledgeObject,
		KoSummary []ent.Hook
	}
	inters struct {
		Bundle, BundleCategory, DailyDose, DigestRun, DigestTask, KnowledgeObject,
		KoSummary []ent.Interceptor
	}
)
