// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/vibemonitor/rca/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vibemonitor/rca/ent/chatsession"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/integration"
	"github.com/vibemonitor/rca/ent/job"
	"github.com/vibemonitor/rca/ent/llmconfig"
	"github.com/vibemonitor/rca/ent/quotacounter"
	"github.com/vibemonitor/rca/ent/securityevent"
	"github.com/vibemonitor/rca/ent/turncomment"
	"github.com/vibemonitor/rca/ent/turnfeedback"
	"github.com/vibemonitor/rca/ent/turnstep"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChatSession is the client for interacting with the ChatSession builders.
	ChatSession *ChatSessionClient
	// ChatTurn is the client for interacting with the ChatTurn builders.
	ChatTurn *ChatTurnClient
	// Integration is the client for interacting with the Integration builders.
	Integration *IntegrationClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// LLMConfig is the client for interacting with the LLMConfig builders.
	LLMConfig *LLMConfigClient
	// QuotaCounter is the client for interacting with the QuotaCounter builders.
	QuotaCounter *QuotaCounterClient
	// SecurityEvent is the client for interacting with the SecurityEvent builders.
	SecurityEvent *SecurityEventClient
	// TurnComment is the client for interacting with the TurnComment builders.
	TurnComment *TurnCommentClient
	// TurnFeedback is the client for interacting with the TurnFeedback builders.
	TurnFeedback *TurnFeedbackClient
	// TurnStep is the client for interacting with the TurnStep builders.
	TurnStep *TurnStepClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChatSession = NewChatSessionClient(c.config)
	c.ChatTurn = NewChatTurnClient(c.config)
	c.Integration = NewIntegrationClient(c.config)
	c.Job = NewJobClient(c.config)
	c.LLMConfig = NewLLMConfigClient(c.config)
	c.QuotaCounter = NewQuotaCounterClient(c.config)
	c.SecurityEvent = NewSecurityEventClient(c.config)
	c.TurnComment = NewTurnCommentClient(c.config)
	c.TurnFeedback = NewTurnFeedbackClient(c.config)
	c.TurnStep = NewTurnStepClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		ChatSession:   NewChatSessionClient(cfg),
		ChatTurn:      NewChatTurnClient(cfg),
		Integration:   NewIntegrationClient(cfg),
		Job:           NewJobClient(cfg),
		LLMConfig:     NewLLMConfigClient(cfg),
		QuotaCounter:  NewQuotaCounterClient(cfg),
		SecurityEvent: NewSecurityEventClient(cfg),
		TurnComment:   NewTurnCommentClient(cfg),
		TurnFeedback:  NewTurnFeedbackClient(cfg),
		TurnStep:      NewTurnStepClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		ChatSession:   NewChatSessionClient(cfg),
		ChatTurn:      NewChatTurnClient(cfg),
		Integration:   NewIntegrationClient(cfg),
		Job:           NewJobClient(cfg),
		LLMConfig:     NewLLMConfigClient(cfg),
		QuotaCounter:  NewQuotaCounterClient(cfg),
		SecurityEvent: NewSecurityEventClient(cfg),
		TurnComment:   NewTurnCommentClient(cfg),
		TurnFeedback:  NewTurnFeedbackClient(cfg),
		TurnStep:      NewTurnStepClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChatSession.
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
		c.ChatSession, c.ChatTurn, c.Integration, c.Job, c.LLMConfig, c.QuotaCounter,
		c.SecurityEvent, c.TurnComment, c.TurnFeedback, c.TurnStep,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ChatSession, c.ChatTurn, c.Integration, c.Job, c.LLMConfig, c.QuotaCounter,
		c.SecurityEvent, c.TurnComment, c.TurnFeedback, c.TurnStep,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChatSessionMutation:
		return c.ChatSession.mutate(ctx, m)
	case *ChatTurnMutation:
		return c.ChatTurn.mutate(ctx, m)
	case *IntegrationMutation:
		return c.Integration.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *LLMConfigMutation:
		return c.LLMConfig.mutate(ctx, m)
	case *QuotaCounterMutation:
		return c.QuotaCounter.mutate(ctx, m)
	case *SecurityEventMutation:
		return c.SecurityEvent.mutate(ctx, m)
	case *TurnCommentMutation:
		return c.TurnComment.mutate(ctx, m)
	case *TurnFeedbackMutation:
		return c.TurnFeedback.mutate(ctx, m)
	case *TurnStepMutation:
		return c.TurnStep.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChatSessionClient is a client for the ChatSession schema.
type ChatSessionClient struct {
	config
}

// NewChatSessionClient returns a client for the ChatSession from the given config.
func NewChatSessionClient(c config) *ChatSessionClient {
	return &ChatSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatsession.Hooks(f(g(h())))`.
func (c *ChatSessionClient) Use(hooks ...Hook) {
	c.hooks.ChatSession = append(c.hooks.ChatSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatsession.Intercept(f(g(h())))`.
func (c *ChatSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatSession = append(c.inters.ChatSession, interceptors...)
}

// Create returns a builder for creating a ChatSession entity.
func (c *ChatSessionClient) Create() *ChatSessionCreate {
	mutation := newChatSessionMutation(c.config, OpCreate)
	return &ChatSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatSession entities.
func (c *ChatSessionClient) CreateBulk(builders ...*ChatSessionCreate) *ChatSessionCreateBulk {
	return &ChatSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatSessionClient) MapCreateBulk(slice any, setFunc func(*ChatSessionCreate, int)) *ChatSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatSessionCreateBulk{err: fmt.Errorf("calling to ChatSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatSession.
func (c *ChatSessionClient) Update() *ChatSessionUpdate {
	mutation := newChatSessionMutation(c.config, OpUpdate)
	return &ChatSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatSessionClient) UpdateOne(_m *ChatSession) *ChatSessionUpdateOne {
	mutation := newChatSessionMutation(c.config, OpUpdateOne, withChatSession(_m))
	return &ChatSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatSessionClient) UpdateOneID(id string) *ChatSessionUpdateOne {
	mutation := newChatSessionMutation(c.config, OpUpdateOne, withChatSessionID(id))
	return &ChatSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatSession.
func (c *ChatSessionClient) Delete() *ChatSessionDelete {
	mutation := newChatSessionMutation(c.config, OpDelete)
	return &ChatSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatSessionClient) DeleteOne(_m *ChatSession) *ChatSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatSessionClient) DeleteOneID(id string) *ChatSessionDeleteOne {
	builder := c.Delete().Where(chatsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatSessionDeleteOne{builder}
}

// Query returns a query builder for ChatSession.
func (c *ChatSessionClient) Query() *ChatSessionQuery {
	return &ChatSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatSession entity by its id.
func (c *ChatSessionClient) Get(ctx context.Context, id string) (*ChatSession, error) {
	return c.Query().Where(chatsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatSessionClient) GetX(ctx context.Context, id string) *ChatSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTurns queries the turns edge of a ChatSession.
func (c *ChatSessionClient) QueryTurns(_m *ChatSession) *ChatTurnQuery {
	query := (&ChatTurnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chatsession.Table, chatsession.FieldID, id),
			sqlgraph.To(chatturn.Table, chatturn.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chatsession.TurnsTable, chatsession.TurnsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChatSessionClient) Hooks() []Hook {
	return c.hooks.ChatSession
}

// Interceptors returns the client interceptors.
func (c *ChatSessionClient) Interceptors() []Interceptor {
	return c.inters.ChatSession
}

func (c *ChatSessionClient) mutate(ctx context.Context, m *ChatSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatSession mutation op: %q", m.Op())
	}
}

// ChatTurnClient is a client for the ChatTurn schema.
type ChatTurnClient struct {
	config
}

// NewChatTurnClient returns a client for the ChatTurn from the given config.
func NewChatTurnClient(c config) *ChatTurnClient {
	return &ChatTurnClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatturn.Hooks(f(g(h())))`.
func (c *ChatTurnClient) Use(hooks ...Hook) {
	c.hooks.ChatTurn = append(c.hooks.ChatTurn, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatturn.Intercept(f(g(h())))`.
func (c *ChatTurnClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatTurn = append(c.inters.ChatTurn, interceptors...)
}

// Create returns a builder for creating a ChatTurn entity.
func (c *ChatTurnClient) Create() *ChatTurnCreate {
	mutation := newChatTurnMutation(c.config, OpCreate)
	return &ChatTurnCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatTurn entities.
func (c *ChatTurnClient) CreateBulk(builders ...*ChatTurnCreate) *ChatTurnCreateBulk {
	return &ChatTurnCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatTurnClient) MapCreateBulk(slice any, setFunc func(*ChatTurnCreate, int)) *ChatTurnCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatTurnCreateBulk{err: fmt.Errorf("calling to ChatTurnClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatTurnCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatTurnCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatTurn.
func (c *ChatTurnClient) Update() *ChatTurnUpdate {
	mutation := newChatTurnMutation(c.config, OpUpdate)
	return &ChatTurnUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatTurnClient) UpdateOne(_m *ChatTurn) *ChatTurnUpdateOne {
	mutation := newChatTurnMutation(c.config, OpUpdateOne, withChatTurn(_m))
	return &ChatTurnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatTurnClient) UpdateOneID(id string) *ChatTurnUpdateOne {
	mutation := newChatTurnMutation(c.config, OpUpdateOne, withChatTurnID(id))
	return &ChatTurnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatTurn.
func (c *ChatTurnClient) Delete() *ChatTurnDelete {
	mutation := newChatTurnMutation(c.config, OpDelete)
	return &ChatTurnDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatTurnClient) DeleteOne(_m *ChatTurn) *ChatTurnDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatTurnClient) DeleteOneID(id string) *ChatTurnDeleteOne {
	builder := c.Delete().Where(chatturn.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatTurnDeleteOne{builder}
}

// Query returns a query builder for ChatTurn.
func (c *ChatTurnClient) Query() *ChatTurnQuery {
	return &ChatTurnQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatTurn},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatTurn entity by its id.
func (c *ChatTurnClient) Get(ctx context.Context, id string) (*ChatTurn, error) {
	return c.Query().Where(chatturn.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatTurnClient) GetX(ctx context.Context, id string) *ChatTurn {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a ChatTurn.
func (c *ChatTurnClient) QuerySession(_m *ChatTurn) *ChatSessionQuery {
	query := (&ChatSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chatturn.Table, chatturn.FieldID, id),
			sqlgraph.To(chatsession.Table, chatsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chatturn.SessionTable, chatturn.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySteps queries the steps edge of a ChatTurn.
func (c *ChatTurnClient) QuerySteps(_m *ChatTurn) *TurnStepQuery {
	query := (&TurnStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chatturn.Table, chatturn.FieldID, id),
			sqlgraph.To(turnstep.Table, turnstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chatturn.StepsTable, chatturn.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJob queries the job edge of a ChatTurn.
func (c *ChatTurnClient) QueryJob(_m *ChatTurn) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chatturn.Table, chatturn.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, chatturn.JobTable, chatturn.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFeedback queries the feedback edge of a ChatTurn.
func (c *ChatTurnClient) QueryFeedback(_m *ChatTurn) *TurnFeedbackQuery {
	query := (&TurnFeedbackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chatturn.Table, chatturn.FieldID, id),
			sqlgraph.To(turnfeedback.Table, turnfeedback.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chatturn.FeedbackTable, chatturn.FeedbackColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryComments queries the comments edge of a ChatTurn.
func (c *ChatTurnClient) QueryComments(_m *ChatTurn) *TurnCommentQuery {
	query := (&TurnCommentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chatturn.Table, chatturn.FieldID, id),
			sqlgraph.To(turncomment.Table, turncomment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chatturn.CommentsTable, chatturn.CommentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChatTurnClient) Hooks() []Hook {
	return c.hooks.ChatTurn
}

// Interceptors returns the client interceptors.
func (c *ChatTurnClient) Interceptors() []Interceptor {
	return c.inters.ChatTurn
}

func (c *ChatTurnClient) mutate(ctx context.Context, m *ChatTurnMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatTurnCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatTurnUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatTurnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatTurnDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatTurn mutation op: %q", m.Op())
	}
}

// IntegrationClient is a client for the Integration schema.
type IntegrationClient struct {
	config
}

// NewIntegrationClient returns a client for the Integration from the given config.
func NewIntegrationClient(c config) *IntegrationClient {
	return &IntegrationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `integration.Hooks(f(g(h())))`.
func (c *IntegrationClient) Use(hooks ...Hook) {
	c.hooks.Integration = append(c.hooks.Integration, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `integration.Intercept(f(g(h())))`.
func (c *IntegrationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Integration = append(c.inters.Integration, interceptors...)
}

// Create returns a builder for creating a Integration entity.
func (c *IntegrationClient) Create() *IntegrationCreate {
	mutation := newIntegrationMutation(c.config, OpCreate)
	return &IntegrationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Integration entities.
func (c *IntegrationClient) CreateBulk(builders ...*IntegrationCreate) *IntegrationCreateBulk {
	return &IntegrationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IntegrationClient) MapCreateBulk(slice any, setFunc func(*IntegrationCreate, int)) *IntegrationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IntegrationCreateBulk{err: fmt.Errorf("calling to IntegrationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IntegrationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IntegrationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Integration.
func (c *IntegrationClient) Update() *IntegrationUpdate {
	mutation := newIntegrationMutation(c.config, OpUpdate)
	return &IntegrationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IntegrationClient) UpdateOne(_m *Integration) *IntegrationUpdateOne {
	mutation := newIntegrationMutation(c.config, OpUpdateOne, withIntegration(_m))
	return &IntegrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IntegrationClient) UpdateOneID(id string) *IntegrationUpdateOne {
	mutation := newIntegrationMutation(c.config, OpUpdateOne, withIntegrationID(id))
	return &IntegrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Integration.
func (c *IntegrationClient) Delete() *IntegrationDelete {
	mutation := newIntegrationMutation(c.config, OpDelete)
	return &IntegrationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IntegrationClient) DeleteOne(_m *Integration) *IntegrationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IntegrationClient) DeleteOneID(id string) *IntegrationDeleteOne {
	builder := c.Delete().Where(integration.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IntegrationDeleteOne{builder}
}

// Query returns a query builder for Integration.
func (c *IntegrationClient) Query() *IntegrationQuery {
	return &IntegrationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIntegration},
		inters: c.Interceptors(),
	}
}

// Get returns a Integration entity by its id.
func (c *IntegrationClient) Get(ctx context.Context, id string) (*Integration, error) {
	return c.Query().Where(integration.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IntegrationClient) GetX(ctx context.Context, id string) *Integration {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IntegrationClient) Hooks() []Hook {
	return c.hooks.Integration
}

// Interceptors returns the client interceptors.
func (c *IntegrationClient) Interceptors() []Interceptor {
	return c.inters.Integration
}

func (c *IntegrationClient) mutate(ctx context.Context, m *IntegrationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IntegrationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IntegrationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IntegrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IntegrationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Integration mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id string) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id string) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id string) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id string) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTurn queries the turn edge of a Job.
func (c *JobClient) QueryTurn(_m *Job) *ChatTurnQuery {
	query := (&ChatTurnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(chatturn.Table, chatturn.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, job.TurnTable, job.TurnColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// LLMConfigClient is a client for the LLMConfig schema.
type LLMConfigClient struct {
	config
}

// NewLLMConfigClient returns a client for the LLMConfig from the given config.
func NewLLMConfigClient(c config) *LLMConfigClient {
	return &LLMConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmconfig.Hooks(f(g(h())))`.
func (c *LLMConfigClient) Use(hooks ...Hook) {
	c.hooks.LLMConfig = append(c.hooks.LLMConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmconfig.Intercept(f(g(h())))`.
func (c *LLMConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMConfig = append(c.inters.LLMConfig, interceptors...)
}

// Create returns a builder for creating a LLMConfig entity.
func (c *LLMConfigClient) Create() *LLMConfigCreate {
	mutation := newLLMConfigMutation(c.config, OpCreate)
	return &LLMConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMConfig entities.
func (c *LLMConfigClient) CreateBulk(builders ...*LLMConfigCreate) *LLMConfigCreateBulk {
	return &LLMConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMConfigClient) MapCreateBulk(slice any, setFunc func(*LLMConfigCreate, int)) *LLMConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMConfigCreateBulk{err: fmt.Errorf("calling to LLMConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMConfig.
func (c *LLMConfigClient) Update() *LLMConfigUpdate {
	mutation := newLLMConfigMutation(c.config, OpUpdate)
	return &LLMConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMConfigClient) UpdateOne(_m *LLMConfig) *LLMConfigUpdateOne {
	mutation := newLLMConfigMutation(c.config, OpUpdateOne, withLLMConfig(_m))
	return &LLMConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMConfigClient) UpdateOneID(id string) *LLMConfigUpdateOne {
	mutation := newLLMConfigMutation(c.config, OpUpdateOne, withLLMConfigID(id))
	return &LLMConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMConfig.
func (c *LLMConfigClient) Delete() *LLMConfigDelete {
	mutation := newLLMConfigMutation(c.config, OpDelete)
	return &LLMConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMConfigClient) DeleteOne(_m *LLMConfig) *LLMConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMConfigClient) DeleteOneID(id string) *LLMConfigDeleteOne {
	builder := c.Delete().Where(llmconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMConfigDeleteOne{builder}
}

// Query returns a query builder for LLMConfig.
func (c *LLMConfigClient) Query() *LLMConfigQuery {
	return &LLMConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMConfig entity by its id.
func (c *LLMConfigClient) Get(ctx context.Context, id string) (*LLMConfig, error) {
	return c.Query().Where(llmconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMConfigClient) GetX(ctx context.Context, id string) *LLMConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMConfigClient) Hooks() []Hook {
	return c.hooks.LLMConfig
}

// Interceptors returns the client interceptors.
func (c *LLMConfigClient) Interceptors() []Interceptor {
	return c.inters.LLMConfig
}

func (c *LLMConfigClient) mutate(ctx context.Context, m *LLMConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMConfig mutation op: %q", m.Op())
	}
}

// QuotaCounterClient is a client for the QuotaCounter schema.
type QuotaCounterClient struct {
	config
}

// NewQuotaCounterClient returns a client for the QuotaCounter from the given config.
func NewQuotaCounterClient(c config) *QuotaCounterClient {
	return &QuotaCounterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quotacounter.Hooks(f(g(h())))`.
func (c *QuotaCounterClient) Use(hooks ...Hook) {
	c.hooks.QuotaCounter = append(c.hooks.QuotaCounter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quotacounter.Intercept(f(g(h())))`.
func (c *QuotaCounterClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuotaCounter = append(c.inters.QuotaCounter, interceptors...)
}

// Create returns a builder for creating a QuotaCounter entity.
func (c *QuotaCounterClient) Create() *QuotaCounterCreate {
	mutation := newQuotaCounterMutation(c.config, OpCreate)
	return &QuotaCounterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuotaCounter entities.
func (c *QuotaCounterClient) CreateBulk(builders ...*QuotaCounterCreate) *QuotaCounterCreateBulk {
	return &QuotaCounterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuotaCounterClient) MapCreateBulk(slice any, setFunc func(*QuotaCounterCreate, int)) *QuotaCounterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuotaCounterCreateBulk{err: fmt.Errorf("calling to QuotaCounterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuotaCounterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuotaCounterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuotaCounter.
func (c *QuotaCounterClient) Update() *QuotaCounterUpdate {
	mutation := newQuotaCounterMutation(c.config, OpUpdate)
	return &QuotaCounterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuotaCounterClient) UpdateOne(_m *QuotaCounter) *QuotaCounterUpdateOne {
	mutation := newQuotaCounterMutation(c.config, OpUpdateOne, withQuotaCounter(_m))
	return &QuotaCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuotaCounterClient) UpdateOneID(id string) *QuotaCounterUpdateOne {
	mutation := newQuotaCounterMutation(c.config, OpUpdateOne, withQuotaCounterID(id))
	return &QuotaCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuotaCounter.
func (c *QuotaCounterClient) Delete() *QuotaCounterDelete {
	mutation := newQuotaCounterMutation(c.config, OpDelete)
	return &QuotaCounterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuotaCounterClient) DeleteOne(_m *QuotaCounter) *QuotaCounterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuotaCounterClient) DeleteOneID(id string) *QuotaCounterDeleteOne {
	builder := c.Delete().Where(quotacounter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuotaCounterDeleteOne{builder}
}

// Query returns a query builder for QuotaCounter.
func (c *QuotaCounterClient) Query() *QuotaCounterQuery {
	return &QuotaCounterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuotaCounter},
		inters: c.Interceptors(),
	}
}

// Get returns a QuotaCounter entity by its id.
func (c *QuotaCounterClient) Get(ctx context.Context, id string) (*QuotaCounter, error) {
	return c.Query().Where(quotacounter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuotaCounterClient) GetX(ctx context.Context, id string) *QuotaCounter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuotaCounterClient) Hooks() []Hook {
	return c.hooks.QuotaCounter
}

// Interceptors returns the client interceptors.
func (c *QuotaCounterClient) Interceptors() []Interceptor {
	return c.inters.QuotaCounter
}

func (c *QuotaCounterClient) mutate(ctx context.Context, m *QuotaCounterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuotaCounterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuotaCounterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuotaCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuotaCounterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuotaCounter mutation op: %q", m.Op())
	}
}

// SecurityEventClient is a client for the SecurityEvent schema.
type SecurityEventClient struct {
	config
}

// NewSecurityEventClient returns a client for the SecurityEvent from the given config.
func NewSecurityEventClient(c config) *SecurityEventClient {
	return &SecurityEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `securityevent.Hooks(f(g(h())))`.
func (c *SecurityEventClient) Use(hooks ...Hook) {
	c.hooks.SecurityEvent = append(c.hooks.SecurityEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `securityevent.Intercept(f(g(h())))`.
func (c *SecurityEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SecurityEvent = append(c.inters.SecurityEvent, interceptors...)
}

// Create returns a builder for creating a SecurityEvent entity.
func (c *SecurityEventClient) Create() *SecurityEventCreate {
	mutation := newSecurityEventMutation(c.config, OpCreate)
	return &SecurityEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SecurityEvent entities.
func (c *SecurityEventClient) CreateBulk(builders ...*SecurityEventCreate) *SecurityEventCreateBulk {
	return &SecurityEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SecurityEventClient) MapCreateBulk(slice any, setFunc func(*SecurityEventCreate, int)) *SecurityEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SecurityEventCreateBulk{err: fmt.Errorf("calling to SecurityEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SecurityEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SecurityEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SecurityEvent.
func (c *SecurityEventClient) Update() *SecurityEventUpdate {
	mutation := newSecurityEventMutation(c.config, OpUpdate)
	return &SecurityEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SecurityEventClient) UpdateOne(_m *SecurityEvent) *SecurityEventUpdateOne {
	mutation := newSecurityEventMutation(c.config, OpUpdateOne, withSecurityEvent(_m))
	return &SecurityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SecurityEventClient) UpdateOneID(id string) *SecurityEventUpdateOne {
	mutation := newSecurityEventMutation(c.config, OpUpdateOne, withSecurityEventID(id))
	return &SecurityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SecurityEvent.
func (c *SecurityEventClient) Delete() *SecurityEventDelete {
	mutation := newSecurityEventMutation(c.config, OpDelete)
	return &SecurityEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SecurityEventClient) DeleteOne(_m *SecurityEvent) *SecurityEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SecurityEventClient) DeleteOneID(id string) *SecurityEventDeleteOne {
	builder := c.Delete().Where(securityevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SecurityEventDeleteOne{builder}
}

// Query returns a query builder for SecurityEvent.
func (c *SecurityEventClient) Query() *SecurityEventQuery {
	return &SecurityEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSecurityEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SecurityEvent entity by its id.
func (c *SecurityEventClient) Get(ctx context.Context, id string) (*SecurityEvent, error) {
	return c.Query().Where(securityevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SecurityEventClient) GetX(ctx context.Context, id string) *SecurityEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SecurityEventClient) Hooks() []Hook {
	return c.hooks.SecurityEvent
}

// Interceptors returns the client interceptors.
func (c *SecurityEventClient) Interceptors() []Interceptor {
	return c.inters.SecurityEvent
}

func (c *SecurityEventClient) mutate(ctx context.Context, m *SecurityEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SecurityEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SecurityEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SecurityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SecurityEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SecurityEvent mutation op: %q", m.Op())
	}
}

// TurnCommentClient is a client for the TurnComment schema.
type TurnCommentClient struct {
	config
}

// NewTurnCommentClient returns a client for the TurnComment from the given config.
func NewTurnCommentClient(c config) *TurnCommentClient {
	return &TurnCommentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `turncomment.Hooks(f(g(h())))`.
func (c *TurnCommentClient) Use(hooks ...Hook) {
	c.hooks.TurnComment = append(c.hooks.TurnComment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `turncomment.Intercept(f(g(h())))`.
func (c *TurnCommentClient) Intercept(interceptors ...Interceptor) {
	c.inters.TurnComment = append(c.inters.TurnComment, interceptors...)
}

// Create returns a builder for creating a TurnComment entity.
func (c *TurnCommentClient) Create() *TurnCommentCreate {
	mutation := newTurnCommentMutation(c.config, OpCreate)
	return &TurnCommentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TurnComment entities.
func (c *TurnCommentClient) CreateBulk(builders ...*TurnCommentCreate) *TurnCommentCreateBulk {
	return &TurnCommentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TurnCommentClient) MapCreateBulk(slice any, setFunc func(*TurnCommentCreate, int)) *TurnCommentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TurnCommentCreateBulk{err: fmt.Errorf("calling to TurnCommentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TurnCommentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TurnCommentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TurnComment.
func (c *TurnCommentClient) Update() *TurnCommentUpdate {
	mutation := newTurnCommentMutation(c.config, OpUpdate)
	return &TurnCommentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TurnCommentClient) UpdateOne(_m *TurnComment) *TurnCommentUpdateOne {
	mutation := newTurnCommentMutation(c.config, OpUpdateOne, withTurnComment(_m))
	return &TurnCommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TurnCommentClient) UpdateOneID(id string) *TurnCommentUpdateOne {
	mutation := newTurnCommentMutation(c.config, OpUpdateOne, withTurnCommentID(id))
	return &TurnCommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TurnComment.
func (c *TurnCommentClient) Delete() *TurnCommentDelete {
	mutation := newTurnCommentMutation(c.config, OpDelete)
	return &TurnCommentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TurnCommentClient) DeleteOne(_m *TurnComment) *TurnCommentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TurnCommentClient) DeleteOneID(id string) *TurnCommentDeleteOne {
	builder := c.Delete().Where(turncomment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TurnCommentDeleteOne{builder}
}

// Query returns a query builder for TurnComment.
func (c *TurnCommentClient) Query() *TurnCommentQuery {
	return &TurnCommentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTurnComment},
		inters: c.Interceptors(),
	}
}

// Get returns a TurnComment entity by its id.
func (c *TurnCommentClient) Get(ctx context.Context, id string) (*TurnComment, error) {
	return c.Query().Where(turncomment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TurnCommentClient) GetX(ctx context.Context, id string) *TurnComment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTurn queries the turn edge of a TurnComment.
func (c *TurnCommentClient) QueryTurn(_m *TurnComment) *ChatTurnQuery {
	query := (&ChatTurnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(turncomment.Table, turncomment.FieldID, id),
			sqlgraph.To(chatturn.Table, chatturn.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, turncomment.TurnTable, turncomment.TurnColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TurnCommentClient) Hooks() []Hook {
	return c.hooks.TurnComment
}

// Interceptors returns the client interceptors.
func (c *TurnCommentClient) Interceptors() []Interceptor {
	return c.inters.TurnComment
}

func (c *TurnCommentClient) mutate(ctx context.Context, m *TurnCommentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TurnCommentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TurnCommentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TurnCommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TurnCommentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TurnComment mutation op: %q", m.Op())
	}
}

// TurnFeedbackClient is a client for the TurnFeedback schema.
type TurnFeedbackClient struct {
	config
}

// NewTurnFeedbackClient returns a client for the TurnFeedback from the given config.
func NewTurnFeedbackClient(c config) *TurnFeedbackClient {
	return &TurnFeedbackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `turnfeedback.Hooks(f(g(h())))`.
func (c *TurnFeedbackClient) Use(hooks ...Hook) {
	c.hooks.TurnFeedback = append(c.hooks.TurnFeedback, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `turnfeedback.Intercept(f(g(h())))`.
func (c *TurnFeedbackClient) Intercept(interceptors ...Interceptor) {
	c.inters.TurnFeedback = append(c.inters.TurnFeedback, interceptors...)
}

// Create returns a builder for creating a TurnFeedback entity.
func (c *TurnFeedbackClient) Create() *TurnFeedbackCreate {
	mutation := newTurnFeedbackMutation(c.config, OpCreate)
	return &TurnFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TurnFeedback entities.
func (c *TurnFeedbackClient) CreateBulk(builders ...*TurnFeedbackCreate) *TurnFeedbackCreateBulk {
	return &TurnFeedbackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TurnFeedbackClient) MapCreateBulk(slice any, setFunc func(*TurnFeedbackCreate, int)) *TurnFeedbackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TurnFeedbackCreateBulk{err: fmt.Errorf("calling to TurnFeedbackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TurnFeedbackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TurnFeedbackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TurnFeedback.
func (c *TurnFeedbackClient) Update() *TurnFeedbackUpdate {
	mutation := newTurnFeedbackMutation(c.config, OpUpdate)
	return &TurnFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TurnFeedbackClient) UpdateOne(_m *TurnFeedback) *TurnFeedbackUpdateOne {
	mutation := newTurnFeedbackMutation(c.config, OpUpdateOne, withTurnFeedback(_m))
	return &TurnFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TurnFeedbackClient) UpdateOneID(id string) *TurnFeedbackUpdateOne {
	mutation := newTurnFeedbackMutation(c.config, OpUpdateOne, withTurnFeedbackID(id))
	return &TurnFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TurnFeedback.
func (c *TurnFeedbackClient) Delete() *TurnFeedbackDelete {
	mutation := newTurnFeedbackMutation(c.config, OpDelete)
	return &TurnFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TurnFeedbackClient) DeleteOne(_m *TurnFeedback) *TurnFeedbackDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TurnFeedbackClient) DeleteOneID(id string) *TurnFeedbackDeleteOne {
	builder := c.Delete().Where(turnfeedback.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TurnFeedbackDeleteOne{builder}
}

// Query returns a query builder for TurnFeedback.
func (c *TurnFeedbackClient) Query() *TurnFeedbackQuery {
	return &TurnFeedbackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTurnFeedback},
		inters: c.Interceptors(),
	}
}

// Get returns a TurnFeedback entity by its id.
func (c *TurnFeedbackClient) Get(ctx context.Context, id string) (*TurnFeedback, error) {
	return c.Query().Where(turnfeedback.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TurnFeedbackClient) GetX(ctx context.Context, id string) *TurnFeedback {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTurn queries the turn edge of a TurnFeedback.
func (c *TurnFeedbackClient) QueryTurn(_m *TurnFeedback) *ChatTurnQuery {
	query := (&ChatTurnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(turnfeedback.Table, turnfeedback.FieldID, id),
			sqlgraph.To(chatturn.Table, chatturn.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, turnfeedback.TurnTable, turnfeedback.TurnColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TurnFeedbackClient) Hooks() []Hook {
	return c.hooks.TurnFeedback
}

// Interceptors returns the client interceptors.
func (c *TurnFeedbackClient) Interceptors() []Interceptor {
	return c.inters.TurnFeedback
}

func (c *TurnFeedbackClient) mutate(ctx context.Context, m *TurnFeedbackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TurnFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TurnFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TurnFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TurnFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TurnFeedback mutation op: %q", m.Op())
	}
}

// TurnStepClient is a client for the TurnStep schema.
type TurnStepClient struct {
	config
}

// NewTurnStepClient returns a client for the TurnStep from the given config.
func NewTurnStepClient(c config) *TurnStepClient {
	return &TurnStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `turnstep.Hooks(f(g(h())))`.
func (c *TurnStepClient) Use(hooks ...Hook) {
	c.hooks.TurnStep = append(c.hooks.TurnStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `turnstep.Intercept(f(g(h())))`.
func (c *TurnStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.TurnStep = append(c.inters.TurnStep, interceptors...)
}

// Create returns a builder for creating a TurnStep entity.
func (c *TurnStepClient) Create() *TurnStepCreate {
	mutation := newTurnStepMutation(c.config, OpCreate)
	return &TurnStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TurnStep entities.
func (c *TurnStepClient) CreateBulk(builders ...*TurnStepCreate) *TurnStepCreateBulk {
	return &TurnStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TurnStepClient) MapCreateBulk(slice any, setFunc func(*TurnStepCreate, int)) *TurnStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TurnStepCreateBulk{err: fmt.Errorf("calling to TurnStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TurnStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TurnStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TurnStep.
func (c *TurnStepClient) Update() *TurnStepUpdate {
	mutation := newTurnStepMutation(c.config, OpUpdate)
	return &TurnStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TurnStepClient) UpdateOne(_m *TurnStep) *TurnStepUpdateOne {
	mutation := newTurnStepMutation(c.config, OpUpdateOne, withTurnStep(_m))
	return &TurnStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TurnStepClient) UpdateOneID(id string) *TurnStepUpdateOne {
	mutation := newTurnStepMutation(c.config, OpUpdateOne, withTurnStepID(id))
	return &TurnStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TurnStep.
func (c *TurnStepClient) Delete() *TurnStepDelete {
	mutation := newTurnStepMutation(c.config, OpDelete)
	return &TurnStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TurnStepClient) DeleteOne(_m *TurnStep) *TurnStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TurnStepClient) DeleteOneID(id string) *TurnStepDeleteOne {
	builder := c.Delete().Where(turnstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TurnStepDeleteOne{builder}
}

// Query returns a query builder for TurnStep.
func (c *TurnStepClient) Query() *TurnStepQuery {
	return &TurnStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTurnStep},
		inters: c.Interceptors(),
	}
}

// Get returns a TurnStep entity by its id.
func (c *TurnStepClient) Get(ctx context.Context, id string) (*TurnStep, error) {
	return c.Query().Where(turnstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TurnStepClient) GetX(ctx context.Context, id string) *TurnStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTurn queries the turn edge of a TurnStep.
func (c *TurnStepClient) QueryTurn(_m *TurnStep) *ChatTurnQuery {
	query := (&ChatTurnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(turnstep.Table, turnstep.FieldID, id),
			sqlgraph.To(chatturn.Table, chatturn.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, turnstep.TurnTable, turnstep.TurnColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TurnStepClient) Hooks() []Hook {
	return c.hooks.TurnStep
}

// Interceptors returns the client interceptors.
func (c *TurnStepClient) Interceptors() []Interceptor {
	return c.inters.TurnStep
}

func (c *TurnStepClient) mutate(ctx context.Context, m *TurnStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TurnStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TurnStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TurnStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TurnStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TurnStep mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChatSession, ChatTurn, Integration, Job, LLMConfig, QuotaCounter, SecurityEvent,
		TurnComment, TurnFeedback, TurnStep []ent.Hook
	}
	inters struct {
		ChatSession, ChatTurn, Integration, Job, LLMConfig, QuotaCounter, SecurityEvent,
		TurnComment, TurnFeedback, TurnStep []ent.Interceptor
	}
)
