// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/pix-tracker/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/joseph-ayodele/pix-tracker/gen/ent/pixtransaction"
	"github.com/joseph-ayodele/pix-tracker/gen/ent/reviewtransaction"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// PixTransaction is the client for interacting with the PixTransaction builders.
	PixTransaction *PixTransactionClient
	// ReviewTransaction is the client for interacting with the ReviewTransaction builders.
	ReviewTransaction *ReviewTransactionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.PixTransaction = NewPixTransactionClient(c.config)
	c.ReviewTransaction = NewReviewTransactionClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		PixTransaction:    NewPixTransactionClient(cfg),
		ReviewTransaction: NewReviewTransactionClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		PixTransaction:    NewPixTransactionClient(cfg),
		ReviewTransaction: NewReviewTransactionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		PixTransaction.
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
	c.PixTransaction.Use(hooks...)
	c.ReviewTransaction.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.PixTransaction.Intercept(interceptors...)
	c.ReviewTransaction.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *PixTransactionMutation:
		return c.PixTransaction.mutate(ctx, m)
	case *ReviewTransactionMutation:
		return c.ReviewTransaction.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// PixTransactionClient is a client for the PixTransaction schema.
type PixTransactionClient struct {
	config
}

// NewPixTransactionClient returns a client for the PixTransaction from the given config.
func NewPixTransactionClient(c config) *PixTransactionClient {
	return &PixTransactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pixtransaction.Hooks(f(g(h())))`.
func (c *PixTransactionClient) Use(hooks ...Hook) {
	c.hooks.PixTransaction = append(c.hooks.PixTransaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pixtransaction.Intercept(f(g(h())))`.
func (c *PixTransactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PixTransaction = append(c.inters.PixTransaction, interceptors...)
}

// Create returns a builder for creating a PixTransaction entity.
func (c *PixTransactionClient) Create() *PixTransactionCreate {
	mutation := newPixTransactionMutation(c.config, OpCreate)
	return &PixTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PixTransaction entities.
func (c *PixTransactionClient) CreateBulk(builders ...*PixTransactionCreate) *PixTransactionCreateBulk {
	return &PixTransactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PixTransactionClient) MapCreateBulk(slice any, setFunc func(*PixTransactionCreate, int)) *PixTransactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PixTransactionCreateBulk{err: fmt.Errorf("calling to PixTransactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PixTransactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PixTransactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PixTransaction.
func (c *PixTransactionClient) Update() *PixTransactionUpdate {
	mutation := newPixTransactionMutation(c.config, OpUpdate)
	return &PixTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PixTransactionClient) UpdateOne(_m *PixTransaction) *PixTransactionUpdateOne {
	mutation := newPixTransactionMutation(c.config, OpUpdateOne, withPixTransaction(_m))
	return &PixTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PixTransactionClient) UpdateOneID(id uuid.UUID) *PixTransactionUpdateOne {
	mutation := newPixTransactionMutation(c.config, OpUpdateOne, withPixTransactionID(id))
	return &PixTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PixTransaction.
func (c *PixTransactionClient) Delete() *PixTransactionDelete {
	mutation := newPixTransactionMutation(c.config, OpDelete)
	return &PixTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PixTransactionClient) DeleteOne(_m *PixTransaction) *PixTransactionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PixTransactionClient) DeleteOneID(id uuid.UUID) *PixTransactionDeleteOne {
	builder := c.Delete().Where(pixtransaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PixTransactionDeleteOne{builder}
}

// Query returns a query builder for PixTransaction.
func (c *PixTransactionClient) Query() *PixTransactionQuery {
	return &PixTransactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePixTransaction},
		inters: c.Interceptors(),
	}
}

// Get returns a PixTransaction entity by its id.
func (c *PixTransactionClient) Get(ctx context.Context, id uuid.UUID) (*PixTransaction, error) {
	return c.Query().Where(pixtransaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PixTransactionClient) GetX(ctx context.Context, id uuid.UUID) *PixTransaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PixTransactionClient) Hooks() []Hook {
	return c.hooks.PixTransaction
}

// Interceptors returns the client interceptors.
func (c *PixTransactionClient) Interceptors() []Interceptor {
	return c.inters.PixTransaction
}

func (c *PixTransactionClient) mutate(ctx context.Context, m *PixTransactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PixTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PixTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PixTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PixTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PixTransaction mutation op: %q", m.Op())
	}
}

// ReviewTransactionClient is a client for the ReviewTransaction schema.
type ReviewTransactionClient struct {
	config
}

// NewReviewTransactionClient returns a client for the ReviewTransaction from the given config.
func NewReviewTransactionClient(c config) *ReviewTransactionClient {
	return &ReviewTransactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewtransaction.Hooks(f(g(h())))`.
func (c *ReviewTransactionClient) Use(hooks ...Hook) {
	c.hooks.ReviewTransaction = append(c.hooks.ReviewTransaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewtransaction.Intercept(f(g(h())))`.
func (c *ReviewTransactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewTransaction = append(c.inters.ReviewTransaction, interceptors...)
}

// Create returns a builder for creating a ReviewTransaction entity.
func (c *ReviewTransactionClient) Create() *ReviewTransactionCreate {
	mutation := newReviewTransactionMutation(c.config, OpCreate)
	return &ReviewTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewTransaction entities.
func (c *ReviewTransactionClient) CreateBulk(builders ...*ReviewTransactionCreate) *ReviewTransactionCreateBulk {
	return &ReviewTransactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewTransactionClient) MapCreateBulk(slice any, setFunc func(*ReviewTransactionCreate, int)) *ReviewTransactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewTransactionCreateBulk{err: fmt.Errorf("calling to ReviewTransactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewTransactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewTransactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewTransaction.
func (c *ReviewTransactionClient) Update() *ReviewTransactionUpdate {
	mutation := newReviewTransactionMutation(c.config, OpUpdate)
	return &ReviewTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewTransactionClient) UpdateOne(_m *ReviewTransaction) *ReviewTransactionUpdateOne {
	mutation := newReviewTransactionMutation(c.config, OpUpdateOne, withReviewTransaction(_m))
	return &ReviewTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewTransactionClient) UpdateOneID(id uuid.UUID) *ReviewTransactionUpdateOne {
	mutation := newReviewTransactionMutation(c.config, OpUpdateOne, withReviewTransactionID(id))
	return &ReviewTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewTransaction.
func (c *ReviewTransactionClient) Delete() *ReviewTransactionDelete {
	mutation := newReviewTransactionMutation(c.config, OpDelete)
	return &ReviewTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewTransactionClient) DeleteOne(_m *ReviewTransaction) *ReviewTransactionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewTransactionClient) DeleteOneID(id uuid.UUID) *ReviewTransactionDeleteOne {
	builder := c.Delete().Where(reviewtransaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewTransactionDeleteOne{builder}
}

// Query returns a query builder for ReviewTransaction.
func (c *ReviewTransactionClient) Query() *ReviewTransactionQuery {
	return &ReviewTransactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewTransaction},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewTransaction entity by its id.
func (c *ReviewTransactionClient) Get(ctx context.Context, id uuid.UUID) (*ReviewTransaction, error) {
	return c.Query().Where(reviewtransaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewTransactionClient) GetX(ctx context.Context, id uuid.UUID) *ReviewTransaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewTransactionClient) Hooks() []Hook {
	return c.hooks.ReviewTransaction
}

// Interceptors returns the client interceptors.
func (c *ReviewTransactionClient) Interceptors() []Interceptor {
	return c.inters.ReviewTransaction
}

func (c *ReviewTransactionClient) mutate(ctx context.Context, m *ReviewTransactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewTransaction mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		PixTransaction, ReviewTransaction []ent.Hook
	}
	inters struct {
		PixTransaction, ReviewTransaction []ent.Interceptor
	}
)
