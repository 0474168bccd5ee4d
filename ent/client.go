// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/prefrontal-labs/mindly-app/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/prefrontal-labs/mindly-app/ent/chatmessage"
	"github.com/prefrontal-labs/mindly-app/ent/flashcard"
	"github.com/prefrontal-labs/mindly-app/ent/llmrequestevent"
	"github.com/prefrontal-labs/mindly-app/ent/streak"
	"github.com/prefrontal-labs/mindly-app/ent/tutorsession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChatMessage is the client for interacting with the ChatMessage builders.
	ChatMessage *ChatMessageClient
	// Flashcard is the client for interacting with the Flashcard builders.
	Flashcard *FlashcardClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// Streak is the client for interacting with the Streak builders.
	Streak *StreakClient
	// TutorSession is the client for interacting with the TutorSession builders.
	TutorSession *TutorSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChatMessage = NewChatMessageClient(c.config)
	c.Flashcard = NewFlashcardClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.Streak = NewStreakClient(c.config)
	c.TutorSession = NewTutorSessionClient(c.config)
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
		ChatMessage:     NewChatMessageClient(cfg),
		Flashcard:       NewFlashcardClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		Streak:          NewStreakClient(cfg),
		TutorSession:    NewTutorSessionClient(cfg),
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
		ChatMessage:     NewChatMessageClient(cfg),
		Flashcard:       NewFlashcardClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		Streak:          NewStreakClient(cfg),
		TutorSession:    NewTutorSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChatMessage.
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
	c.ChatMessage.Use(hooks...)
	c.Flashcard.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.Streak.Use(hooks...)
	c.TutorSession.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ChatMessage.Intercept(interceptors...)
	c.Flashcard.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.Streak.Intercept(interceptors...)
	c.TutorSession.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChatMessageMutation:
		return c.ChatMessage.mutate(ctx, m)
	case *FlashcardMutation:
		return c.Flashcard.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *StreakMutation:
		return c.Streak.mutate(ctx, m)
	case *TutorSessionMutation:
		return c.TutorSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChatMessageClient is a client for the ChatMessage schema.
type ChatMessageClient struct {
	config
}

// NewChatMessageClient returns a client for the ChatMessage from the given config.
func NewChatMessageClient(c config) *ChatMessageClient {
	return &ChatMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatmessage.Hooks(f(g(h())))`.
func (c *ChatMessageClient) Use(hooks ...Hook) {
	c.hooks.ChatMessage = append(c.hooks.ChatMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatmessage.Intercept(f(g(h())))`.
func (c *ChatMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatMessage = append(c.inters.ChatMessage, interceptors...)
}

// Create returns a builder for creating a ChatMessage entity.
func (c *ChatMessageClient) Create() *ChatMessageCreate {
	mutation := newChatMessageMutation(c.config, OpCreate)
	return &ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatMessage entities.
func (c *ChatMessageClient) CreateBulk(builders ...*ChatMessageCreate) *ChatMessageCreateBulk {
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatMessageClient) MapCreateBulk(slice any, setFunc func(*ChatMessageCreate, int)) *ChatMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatMessageCreateBulk{err: fmt.Errorf("calling to ChatMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatMessage.
func (c *ChatMessageClient) Update() *ChatMessageUpdate {
	mutation := newChatMessageMutation(c.config, OpUpdate)
	return &ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatMessageClient) UpdateOne(_m *ChatMessage) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessage(_m))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatMessageClient) UpdateOneID(id int) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessageID(id))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatMessage.
func (c *ChatMessageClient) Delete() *ChatMessageDelete {
	mutation := newChatMessageMutation(c.config, OpDelete)
	return &ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatMessageClient) DeleteOne(_m *ChatMessage) *ChatMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatMessageClient) DeleteOneID(id int) *ChatMessageDeleteOne {
	builder := c.Delete().Where(chatmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatMessageDeleteOne{builder}
}

// Query returns a query builder for ChatMessage.
func (c *ChatMessageClient) Query() *ChatMessageQuery {
	return &ChatMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatMessage entity by its id.
func (c *ChatMessageClient) Get(ctx context.Context, id int) (*ChatMessage, error) {
	return c.Query().Where(chatmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatMessageClient) GetX(ctx context.Context, id int) *ChatMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChatMessageClient) Hooks() []Hook {
	return c.hooks.ChatMessage
}

// Interceptors returns the client interceptors.
func (c *ChatMessageClient) Interceptors() []Interceptor {
	return c.inters.ChatMessage
}

func (c *ChatMessageClient) mutate(ctx context.Context, m *ChatMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatMessage mutation op: %q", m.Op())
	}
}

// FlashcardClient is a client for the Flashcard schema.
type FlashcardClient struct {
	config
}

// NewFlashcardClient returns a client for the Flashcard from the given config.
func NewFlashcardClient(c config) *FlashcardClient {
	return &FlashcardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `flashcard.Hooks(f(g(h())))`.
func (c *FlashcardClient) Use(hooks ...Hook) {
	c.hooks.Flashcard = append(c.hooks.Flashcard, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `flashcard.Intercept(f(g(h())))`.
func (c *FlashcardClient) Intercept(interceptors ...Interceptor) {
	c.inters.Flashcard = append(c.inters.Flashcard, interceptors...)
}

// Create returns a builder for creating a Flashcard entity.
func (c *FlashcardClient) Create() *FlashcardCreate {
	mutation := newFlashcardMutation(c.config, OpCreate)
	return &FlashcardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Flashcard entities.
func (c *FlashcardClient) CreateBulk(builders ...*FlashcardCreate) *FlashcardCreateBulk {
	return &FlashcardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FlashcardClient) MapCreateBulk(slice any, setFunc func(*FlashcardCreate, int)) *FlashcardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FlashcardCreateBulk{err: fmt.Errorf("calling to FlashcardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FlashcardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FlashcardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Flashcard.
func (c *FlashcardClient) Update() *FlashcardUpdate {
	mutation := newFlashcardMutation(c.config, OpUpdate)
	return &FlashcardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FlashcardClient) UpdateOne(_m *Flashcard) *FlashcardUpdateOne {
	mutation := newFlashcardMutation(c.config, OpUpdateOne, withFlashcard(_m))
	return &FlashcardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FlashcardClient) UpdateOneID(id int) *FlashcardUpdateOne {
	mutation := newFlashcardMutation(c.config, OpUpdateOne, withFlashcardID(id))
	return &FlashcardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Flashcard.
func (c *FlashcardClient) Delete() *FlashcardDelete {
	mutation := newFlashcardMutation(c.config, OpDelete)
	return &FlashcardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FlashcardClient) DeleteOne(_m *Flashcard) *FlashcardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FlashcardClient) DeleteOneID(id int) *FlashcardDeleteOne {
	builder := c.Delete().Where(flashcard.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FlashcardDeleteOne{builder}
}

// Query returns a query builder for Flashcard.
func (c *FlashcardClient) Query() *FlashcardQuery {
	return &FlashcardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFlashcard},
		inters: c.Interceptors(),
	}
}

// Get returns a Flashcard entity by its id.
func (c *FlashcardClient) Get(ctx context.Context, id int) (*Flashcard, error) {
	return c.Query().Where(flashcard.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FlashcardClient) GetX(ctx context.Context, id int) *Flashcard {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FlashcardClient) Hooks() []Hook {
	return c.hooks.Flashcard
}

// Interceptors returns the client interceptors.
func (c *FlashcardClient) Interceptors() []Interceptor {
	return c.inters.Flashcard
}

func (c *FlashcardClient) mutate(ctx context.Context, m *FlashcardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FlashcardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FlashcardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FlashcardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FlashcardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Flashcard mutation op: %q", m.Op())
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

// StreakClient is a client for the Streak schema.
type StreakClient struct {
	config
}

// NewStreakClient returns a client for the Streak from the given config.
func NewStreakClient(c config) *StreakClient {
	return &StreakClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `streak.Hooks(f(g(h())))`.
func (c *StreakClient) Use(hooks ...Hook) {
	c.hooks.Streak = append(c.hooks.Streak, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `streak.Intercept(f(g(h())))`.
func (c *StreakClient) Intercept(interceptors ...Interceptor) {
	c.inters.Streak = append(c.inters.Streak, interceptors...)
}

// Create returns a builder for creating a Streak entity.
func (c *StreakClient) Create() *StreakCreate {
	mutation := newStreakMutation(c.config, OpCreate)
	return &StreakCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Streak entities.
func (c *StreakClient) CreateBulk(builders ...*StreakCreate) *StreakCreateBulk {
	return &StreakCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StreakClient) MapCreateBulk(slice any, setFunc func(*StreakCreate, int)) *StreakCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StreakCreateBulk{err: fmt.Errorf("calling to StreakClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StreakCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StreakCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Streak.
func (c *StreakClient) Update() *StreakUpdate {
	mutation := newStreakMutation(c.config, OpUpdate)
	return &StreakUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StreakClient) UpdateOne(_m *Streak) *StreakUpdateOne {
	mutation := newStreakMutation(c.config, OpUpdateOne, withStreak(_m))
	return &StreakUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StreakClient) UpdateOneID(id int) *StreakUpdateOne {
	mutation := newStreakMutation(c.config, OpUpdateOne, withStreakID(id))
	return &StreakUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Streak.
func (c *StreakClient) Delete() *StreakDelete {
	mutation := newStreakMutation(c.config, OpDelete)
	return &StreakDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StreakClient) DeleteOne(_m *Streak) *StreakDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StreakClient) DeleteOneID(id int) *StreakDeleteOne {
	builder := c.Delete().Where(streak.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StreakDeleteOne{builder}
}

// Query returns a query builder for Streak.
func (c *StreakClient) Query() *StreakQuery {
	return &StreakQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStreak},
		inters: c.Interceptors(),
	}
}

// Get returns a Streak entity by its id.
func (c *StreakClient) Get(ctx context.Context, id int) (*Streak, error) {
	return c.Query().Where(streak.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StreakClient) GetX(ctx context.Context, id int) *Streak {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StreakClient) Hooks() []Hook {
	return c.hooks.Streak
}

// Interceptors returns the client interceptors.
func (c *StreakClient) Interceptors() []Interceptor {
	return c.inters.Streak
}

func (c *StreakClient) mutate(ctx context.Context, m *StreakMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StreakCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StreakUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StreakUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StreakDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Streak mutation op: %q", m.Op())
	}
}

// TutorSessionClient is a client for the TutorSession schema.
type TutorSessionClient struct {
	config
}

// NewTutorSessionClient returns a client for the TutorSession from the given config.
func NewTutorSessionClient(c config) *TutorSessionClient {
	return &TutorSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tutorsession.Hooks(f(g(h())))`.
func (c *TutorSessionClient) Use(hooks ...Hook) {
	c.hooks.TutorSession = append(c.hooks.TutorSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tutorsession.Intercept(f(g(h())))`.
func (c *TutorSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TutorSession = append(c.inters.TutorSession, interceptors...)
}

// Create returns a builder for creating a TutorSession entity.
func (c *TutorSessionClient) Create() *TutorSessionCreate {
	mutation := newTutorSessionMutation(c.config, OpCreate)
	return &TutorSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TutorSession entities.
func (c *TutorSessionClient) CreateBulk(builders ...*TutorSessionCreate) *TutorSessionCreateBulk {
	return &TutorSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TutorSessionClient) MapCreateBulk(slice any, setFunc func(*TutorSessionCreate, int)) *TutorSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TutorSessionCreateBulk{err: fmt.Errorf("calling to TutorSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TutorSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TutorSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TutorSession.
func (c *TutorSessionClient) Update() *TutorSessionUpdate {
	mutation := newTutorSessionMutation(c.config, OpUpdate)
	return &TutorSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TutorSessionClient) UpdateOne(_m *TutorSession) *TutorSessionUpdateOne {
	mutation := newTutorSessionMutation(c.config, OpUpdateOne, withTutorSession(_m))
	return &TutorSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TutorSessionClient) UpdateOneID(id int) *TutorSessionUpdateOne {
	mutation := newTutorSessionMutation(c.config, OpUpdateOne, withTutorSessionID(id))
	return &TutorSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TutorSession.
func (c *TutorSessionClient) Delete() *TutorSessionDelete {
	mutation := newTutorSessionMutation(c.config, OpDelete)
	return &TutorSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TutorSessionClient) DeleteOne(_m *TutorSession) *TutorSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TutorSessionClient) DeleteOneID(id int) *TutorSessionDeleteOne {
	builder := c.Delete().Where(tutorsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TutorSessionDeleteOne{builder}
}

// Query returns a query builder for TutorSession.
func (c *TutorSessionClient) Query() *TutorSessionQuery {
	return &TutorSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTutorSession},
		inters: c.Interceptors(),
	}
}

// Get returns a TutorSession entity by its id.
func (c *TutorSessionClient) Get(ctx context.Context, id int) (*TutorSession, error) {
	return c.Query().Where(tutorsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TutorSessionClient) GetX(ctx context.Context, id int) *TutorSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TutorSessionClient) Hooks() []Hook {
	return c.hooks.TutorSession
}

// Interceptors returns the client interceptors.
func (c *TutorSessionClient) Interceptors() []Interceptor {
	return c.inters.TutorSession
}

func (c *TutorSessionClient) mutate(ctx context.Context, m *TutorSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TutorSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TutorSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TutorSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TutorSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TutorSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChatMessage, Flashcard, LLMRequestEvent, Streak, TutorSession []ent.Hook
	}
	inters struct {
		ChatMessage, Flashcard, LLMRequestEvent, Streak, TutorSession []ent.Interceptor
	}
)
