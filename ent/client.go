// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/example/lingua/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/example/lingua/ent/exerciserecord"
	"github.com/example/lingua/ent/learner"
	"github.com/example/lingua/ent/llmrequestevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExerciseRecord is the client for interacting with the ExerciseRecord builders.
	ExerciseRecord *ExerciseRecordClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// Learner is the client for interacting with the Learner builders.
	Learner *LearnerClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExerciseRecord = NewExerciseRecordClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.Learner = NewLearnerClient(c.config)
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
		ExerciseRecord:  NewExerciseRecordClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		Learner:         NewLearnerClient(cfg),
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
		ExerciseRecord:  NewExerciseRecordClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		Learner:         NewLearnerClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExerciseRecord.
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
	c.ExerciseRecord.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.Learner.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ExerciseRecord.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.Learner.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExerciseRecordMutation:
		return c.ExerciseRecord.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LearnerMutation:
		return c.Learner.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExerciseRecordClient is a client for the ExerciseRecord schema.
type ExerciseRecordClient struct {
	config
}

// NewExerciseRecordClient returns a client for the ExerciseRecord from the given config.
func NewExerciseRecordClient(c config) *ExerciseRecordClient {
	return &ExerciseRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exerciserecord.Hooks(f(g(h())))`.
func (c *ExerciseRecordClient) Use(hooks ...Hook) {
	c.hooks.ExerciseRecord = append(c.hooks.ExerciseRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exerciserecord.Intercept(f(g(h())))`.
func (c *ExerciseRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExerciseRecord = append(c.inters.ExerciseRecord, interceptors...)
}

// Create returns a builder for creating a ExerciseRecord entity.
func (c *ExerciseRecordClient) Create() *ExerciseRecordCreate {
	mutation := newExerciseRecordMutation(c.config, OpCreate)
	return &ExerciseRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExerciseRecord entities.
func (c *ExerciseRecordClient) CreateBulk(builders ...*ExerciseRecordCreate) *ExerciseRecordCreateBulk {
	return &ExerciseRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExerciseRecordClient) MapCreateBulk(slice any, setFunc func(*ExerciseRecordCreate, int)) *ExerciseRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExerciseRecordCreateBulk{err: fmt.Errorf("calling to ExerciseRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExerciseRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExerciseRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExerciseRecord.
func (c *ExerciseRecordClient) Update() *ExerciseRecordUpdate {
	mutation := newExerciseRecordMutation(c.config, OpUpdate)
	return &ExerciseRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExerciseRecordClient) UpdateOne(_m *ExerciseRecord) *ExerciseRecordUpdateOne {
	mutation := newExerciseRecordMutation(c.config, OpUpdateOne, withExerciseRecord(_m))
	return &ExerciseRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExerciseRecordClient) UpdateOneID(id int) *ExerciseRecordUpdateOne {
	mutation := newExerciseRecordMutation(c.config, OpUpdateOne, withExerciseRecordID(id))
	return &ExerciseRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExerciseRecord.
func (c *ExerciseRecordClient) Delete() *ExerciseRecordDelete {
	mutation := newExerciseRecordMutation(c.config, OpDelete)
	return &ExerciseRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExerciseRecordClient) DeleteOne(_m *ExerciseRecord) *ExerciseRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExerciseRecordClient) DeleteOneID(id int) *ExerciseRecordDeleteOne {
	builder := c.Delete().Where(exerciserecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExerciseRecordDeleteOne{builder}
}

// Query returns a query builder for ExerciseRecord.
func (c *ExerciseRecordClient) Query() *ExerciseRecordQuery {
	return &ExerciseRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExerciseRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ExerciseRecord entity by its id.
func (c *ExerciseRecordClient) Get(ctx context.Context, id int) (*ExerciseRecord, error) {
	return c.Query().Where(exerciserecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExerciseRecordClient) GetX(ctx context.Context, id int) *ExerciseRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExerciseRecordClient) Hooks() []Hook {
	return c.hooks.ExerciseRecord
}

// Interceptors returns the client interceptors.
func (c *ExerciseRecordClient) Interceptors() []Interceptor {
	return c.inters.ExerciseRecord
}

func (c *ExerciseRecordClient) mutate(ctx context.Context, m *ExerciseRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExerciseRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExerciseRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExerciseRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExerciseRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExerciseRecord mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// LearnerClient is a client for the Learner schema.
type LearnerClient struct {
	config
}

// NewLearnerClient returns a client for the Learner from the given config.
func NewLearnerClient(c config) *LearnerClient {
	return &LearnerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learner.Hooks(f(g(h())))`.
func (c *LearnerClient) Use(hooks ...Hook) {
	c.hooks.Learner = append(c.hooks.Learner, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learner.Intercept(f(g(h())))`.
func (c *LearnerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Learner = append(c.inters.Learner, interceptors...)
}

// Create returns a builder for creating a Learner entity.
func (c *LearnerClient) Create() *LearnerCreate {
	mutation := newLearnerMutation(c.config, OpCreate)
	return &LearnerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Learner entities.
func (c *LearnerClient) CreateBulk(builders ...*LearnerCreate) *LearnerCreateBulk {
	return &LearnerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearnerClient) MapCreateBulk(slice any, setFunc func(*LearnerCreate, int)) *LearnerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearnerCreateBulk{err: fmt.Errorf("calling to LearnerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearnerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearnerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Learner.
func (c *LearnerClient) Update() *LearnerUpdate {
	mutation := newLearnerMutation(c.config, OpUpdate)
	return &LearnerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearnerClient) UpdateOne(_m *Learner) *LearnerUpdateOne {
	mutation := newLearnerMutation(c.config, OpUpdateOne, withLearner(_m))
	return &LearnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearnerClient) UpdateOneID(id int) *LearnerUpdateOne {
	mutation := newLearnerMutation(c.config, OpUpdateOne, withLearnerID(id))
	return &LearnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Learner.
func (c *LearnerClient) Delete() *LearnerDelete {
	mutation := newLearnerMutation(c.config, OpDelete)
	return &LearnerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearnerClient) DeleteOne(_m *Learner) *LearnerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearnerClient) DeleteOneID(id int) *LearnerDeleteOne {
	builder := c.Delete().Where(learner.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearnerDeleteOne{builder}
}

// Query returns a query builder for Learner.
func (c *LearnerClient) Query() *LearnerQuery {
	return &LearnerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearner},
		inters: c.Interceptors(),
	}
}

// Get returns a Learner entity by its id.
func (c *LearnerClient) Get(ctx context.Context, id int) (*Learner, error) {
	return c.Query().Where(learner.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearnerClient) GetX(ctx context.Context, id int) *Learner {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearnerClient) Hooks() []Hook {
	return c.hooks.Learner
}

// Interceptors returns the client interceptors.
func (c *LearnerClient) Interceptors() []Interceptor {
	return c.inters.Learner
}

func (c *LearnerClient) mutate(ctx context.Context, m *LearnerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearnerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearnerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearnerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Learner mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExerciseRecord, LLMRequestEvent, Learner []ent.Hook
	}
	inters struct {
		ExerciseRecord, LLMRequestEvent, Learner []ent.Interceptor
	}
)
