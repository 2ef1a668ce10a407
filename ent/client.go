// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/memograph/memograph/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/memograph/memograph/ent/activity"
	"github.com/memograph/memograph/ent/activityclosure"
	"github.com/memograph/memograph/ent/commitment"
	"github.com/memograph/memograph/ent/dataqualityreport"
	"github.com/memograph/memograph/ent/embeddingjob"
	"github.com/memograph/memograph/ent/entity"
	"github.com/memograph/memograph/ent/entityfact"
	"github.com/memograph/memograph/ent/entityidentifier"
	"github.com/memograph/memograph/ent/interaction"
	"github.com/memograph/memograph/ent/interactionparticipant"
	"github.com/memograph/memograph/ent/message"
	"github.com/memograph/memograph/ent/pendingapproval"
	"github.com/memograph/memograph/ent/pendingentityresolution"
	"github.com/memograph/memograph/ent/topicalsegment"
	"github.com/memograph/memograph/ent/user"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Activity is the client for interacting with the Activity builders.
	Activity *ActivityClient
	// ActivityClosure is the client for interacting with the ActivityClosure builders.
	ActivityClosure *ActivityClosureClient
	// Commitment is the client for interacting with the Commitment builders.
	Commitment *CommitmentClient
	// DataQualityReport is the client for interacting with the DataQualityReport builders.
	DataQualityReport *DataQualityReportClient
	// EmbeddingJob is the client for interacting with the EmbeddingJob builders.
	EmbeddingJob *EmbeddingJobClient
	// Entity is the client for interacting with the Entity builders.
	Entity *EntityClient
	// EntityFact is the client for interacting with the EntityFact builders.
	EntityFact *EntityFactClient
	// EntityIdentifier is the client for interacting with the EntityIdentifier builders.
	EntityIdentifier *EntityIdentifierClient
	// Interaction is the client for interacting with the Interaction builders.
	Interaction *InteractionClient
	// InteractionParticipant is the client for interacting with the InteractionParticipant builders.
	InteractionParticipant *InteractionParticipantClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// PendingApproval is the client for interacting with the PendingApproval builders.
	PendingApproval *PendingApprovalClient
	// PendingEntityResolution is the client for interacting with the PendingEntityResolution builders.
	PendingEntityResolution *PendingEntityResolutionClient
	// TopicalSegment is the client for interacting with the TopicalSegment builders.
	TopicalSegment *TopicalSegmentClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Activity = NewActivityClient(c.config)
	c.ActivityClosure = NewActivityClosureClient(c.config)
	c.Commitment = NewCommitmentClient(c.config)
	c.DataQualityReport = NewDataQualityReportClient(c.config)
	c.EmbeddingJob = NewEmbeddingJobClient(c.config)
	c.Entity = NewEntityClient(c.config)
	c.EntityFact = NewEntityFactClient(c.config)
	c.EntityIdentifier = NewEntityIdentifierClient(c.config)
	c.Interaction = NewInteractionClient(c.config)
	c.InteractionParticipant = NewInteractionParticipantClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.PendingApproval = NewPendingApprovalClient(c.config)
	c.PendingEntityResolution = NewPendingEntityResolutionClient(c.config)
	c.TopicalSegment = NewTopicalSegmentClient(c.config)
	c.User = NewUserClient(c.config)
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
		ctx:                     ctx,
		config:                  cfg,
		Activity:                NewActivityClient(cfg),
		ActivityClosure:         NewActivityClosureClient(cfg),
		Commitment:              NewCommitmentClient(cfg),
		DataQualityReport:       NewDataQualityReportClient(cfg),
		EmbeddingJob:            NewEmbeddingJobClient(cfg),
		Entity:                  NewEntityClient(cfg),
		EntityFact:              NewEntityFactClient(cfg),
		EntityIdentifier:        NewEntityIdentifierClient(cfg),
		Interaction:             NewInteractionClient(cfg),
		InteractionParticipant:  NewInteractionParticipantClient(cfg),
		Message:                 NewMessageClient(cfg),
		PendingApproval:         NewPendingApprovalClient(cfg),
		PendingEntityResolution: NewPendingEntityResolutionClient(cfg),
		TopicalSegment:          NewTopicalSegmentClient(cfg),
		User:                    NewUserClient(cfg),
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
		ctx:                     ctx,
		config:                  cfg,
		Activity:                NewActivityClient(cfg),
		ActivityClosure:         NewActivityClosureClient(cfg),
		Commitment:              NewCommitmentClient(cfg),
		DataQualityReport:       NewDataQualityReportClient(cfg),
		EmbeddingJob:            NewEmbeddingJobClient(cfg),
		Entity:                  NewEntityClient(cfg),
		EntityFact:              NewEntityFactClient(cfg),
		EntityIdentifier:        NewEntityIdentifierClient(cfg),
		Interaction:             NewInteractionClient(cfg),
		InteractionParticipant:  NewInteractionParticipantClient(cfg),
		Message:                 NewMessageClient(cfg),
		PendingApproval:         NewPendingApprovalClient(cfg),
		PendingEntityResolution: NewPendingEntityResolutionClient(cfg),
		TopicalSegment:          NewTopicalSegmentClient(cfg),
		User:                    NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Activity.
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
		c.Activity, c.ActivityClosure, c.Commitment, c.DataQualityReport,
		c.EmbeddingJob, c.Entity, c.EntityFact, c.EntityIdentifier, c.Interaction,
		c.InteractionParticipant, c.Message, c.PendingApproval,
		c.PendingEntityResolution, c.TopicalSegment, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Activity, c.ActivityClosure, c.Commitment, c.DataQualityReport,
		c.EmbeddingJob, c.Entity, c.EntityFact, c.EntityIdentifier, c.Interaction,
		c.InteractionParticipant, c.Message, c.PendingApproval,
		c.PendingEntityResolution, c.TopicalSegment, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActivityMutation:
		return c.Activity.mutate(ctx, m)
	case *ActivityClosureMutation:
		return c.ActivityClosure.mutate(ctx, m)
	case *CommitmentMutation:
		return c.Commitment.mutate(ctx, m)
	case *DataQualityReportMutation:
		return c.DataQualityReport.mutate(ctx, m)
	case *EmbeddingJobMutation:
		return c.EmbeddingJob.mutate(ctx, m)
	case *EntityMutation:
		return c.Entity.mutate(ctx, m)
	case *EntityFactMutation:
		return c.EntityFact.mutate(ctx, m)
	case *EntityIdentifierMutation:
		return c.EntityIdentifier.mutate(ctx, m)
	case *InteractionMutation:
		return c.Interaction.mutate(ctx, m)
	case *InteractionParticipantMutation:
		return c.InteractionParticipant.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *PendingApprovalMutation:
		return c.PendingApproval.mutate(ctx, m)
	case *PendingEntityResolutionMutation:
		return c.PendingEntityResolution.mutate(ctx, m)
	case *TopicalSegmentMutation:
		return c.TopicalSegment.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActivityClient is a client for the Activity schema.
type ActivityClient struct {
	config
}

// NewActivityClient returns a client for the Activity from the given config.
func NewActivityClient(c config) *ActivityClient {
	return &ActivityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activity.Hooks(f(g(h())))`.
func (c *ActivityClient) Use(hooks ...Hook) {
	c.hooks.Activity = append(c.hooks.Activity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activity.Intercept(f(g(h())))`.
func (c *ActivityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Activity = append(c.inters.Activity, interceptors...)
}

// Create returns a builder for creating a Activity entity.
func (c *ActivityClient) Create() *ActivityCreate {
	mutation := newActivityMutation(c.config, OpCreate)
	return &ActivityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Activity entities.
func (c *ActivityClient) CreateBulk(builders ...*ActivityCreate) *ActivityCreateBulk {
	return &ActivityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActivityClient) MapCreateBulk(slice any, setFunc func(*ActivityCreate, int)) *ActivityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActivityCreateBulk{err: fmt.Errorf("calling to ActivityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActivityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActivityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Activity.
func (c *ActivityClient) Update() *ActivityUpdate {
	mutation := newActivityMutation(c.config, OpUpdate)
	return &ActivityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActivityClient) UpdateOne(_m *Activity) *ActivityUpdateOne {
	mutation := newActivityMutation(c.config, OpUpdateOne, withActivity(_m))
	return &ActivityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActivityClient) UpdateOneID(id string) *ActivityUpdateOne {
	mutation := newActivityMutation(c.config, OpUpdateOne, withActivityID(id))
	return &ActivityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Activity.
func (c *ActivityClient) Delete() *ActivityDelete {
	mutation := newActivityMutation(c.config, OpDelete)
	return &ActivityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActivityClient) DeleteOne(_m *Activity) *ActivityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActivityClient) DeleteOneID(id string) *ActivityDeleteOne {
	builder := c.Delete().Where(activity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActivityDeleteOne{builder}
}

// Query returns a query builder for Activity.
func (c *ActivityClient) Query() *ActivityQuery {
	return &ActivityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActivity},
		inters: c.Interceptors(),
	}
}

// Get returns a Activity entity by its id.
func (c *ActivityClient) Get(ctx context.Context, id string) (*Activity, error) {
	return c.Query().Where(activity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActivityClient) GetX(ctx context.Context, id string) *Activity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActivityClient) Hooks() []Hook {
	return c.hooks.Activity
}

// Interceptors returns the client interceptors.
func (c *ActivityClient) Interceptors() []Interceptor {
	return c.inters.Activity
}

func (c *ActivityClient) mutate(ctx context.Context, m *ActivityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActivityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActivityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActivityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActivityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Activity mutation op: %q", m.Op())
	}
}

// ActivityClosureClient is a client for the ActivityClosure schema.
type ActivityClosureClient struct {
	config
}

// NewActivityClosureClient returns a client for the ActivityClosure from the given config.
func NewActivityClosureClient(c config) *ActivityClosureClient {
	return &ActivityClosureClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activityclosure.Hooks(f(g(h())))`.
func (c *ActivityClosureClient) Use(hooks ...Hook) {
	c.hooks.ActivityClosure = append(c.hooks.ActivityClosure, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activityclosure.Intercept(f(g(h())))`.
func (c *ActivityClosureClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActivityClosure = append(c.inters.ActivityClosure, interceptors...)
}

// Create returns a builder for creating a ActivityClosure entity.
func (c *ActivityClosureClient) Create() *ActivityClosureCreate {
	mutation := newActivityClosureMutation(c.config, OpCreate)
	return &ActivityClosureCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActivityClosure entities.
func (c *ActivityClosureClient) CreateBulk(builders ...*ActivityClosureCreate) *ActivityClosureCreateBulk {
	return &ActivityClosureCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActivityClosureClient) MapCreateBulk(slice any, setFunc func(*ActivityClosureCreate, int)) *ActivityClosureCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActivityClosureCreateBulk{err: fmt.Errorf("calling to ActivityClosureClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActivityClosureCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActivityClosureCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActivityClosure.
func (c *ActivityClosureClient) Update() *ActivityClosureUpdate {
	mutation := newActivityClosureMutation(c.config, OpUpdate)
	return &ActivityClosureUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActivityClosureClient) UpdateOne(_m *ActivityClosure) *ActivityClosureUpdateOne {
	mutation := newActivityClosureMutation(c.config, OpUpdateOne, withActivityClosure(_m))
	return &ActivityClosureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActivityClosureClient) UpdateOneID(id string) *ActivityClosureUpdateOne {
	mutation := newActivityClosureMutation(c.config, OpUpdateOne, withActivityClosureID(id))
	return &ActivityClosureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActivityClosure.
func (c *ActivityClosureClient) Delete() *ActivityClosureDelete {
	mutation := newActivityClosureMutation(c.config, OpDelete)
	return &ActivityClosureDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActivityClosureClient) DeleteOne(_m *ActivityClosure) *ActivityClosureDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActivityClosureClient) DeleteOneID(id string) *ActivityClosureDeleteOne {
	builder := c.Delete().Where(activityclosure.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActivityClosureDeleteOne{builder}
}

// Query returns a query builder for ActivityClosure.
func (c *ActivityClosureClient) Query() *ActivityClosureQuery {
	return &ActivityClosureQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActivityClosure},
		inters: c.Interceptors(),
	}
}

// Get returns a ActivityClosure entity by its id.
func (c *ActivityClosureClient) Get(ctx context.Context, id string) (*ActivityClosure, error) {
	return c.Query().Where(activityclosure.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActivityClosureClient) GetX(ctx context.Context, id string) *ActivityClosure {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActivityClosureClient) Hooks() []Hook {
	return c.hooks.ActivityClosure
}

// Interceptors returns the client interceptors.
func (c *ActivityClosureClient) Interceptors() []Interceptor {
	return c.inters.ActivityClosure
}

func (c *ActivityClosureClient) mutate(ctx context.Context, m *ActivityClosureMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActivityClosureCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActivityClosureUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActivityClosureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActivityClosureDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActivityClosure mutation op: %q", m.Op())
	}
}

// CommitmentClient is a client for the Commitment schema.
type CommitmentClient struct {
	config
}

// NewCommitmentClient returns a client for the Commitment from the given config.
func NewCommitmentClient(c config) *CommitmentClient {
	return &CommitmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `commitment.Hooks(f(g(h())))`.
func (c *CommitmentClient) Use(hooks ...Hook) {
	c.hooks.Commitment = append(c.hooks.Commitment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `commitment.Intercept(f(g(h())))`.
func (c *CommitmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Commitment = append(c.inters.Commitment, interceptors...)
}

// Create returns a builder for creating a Commitment entity.
func (c *CommitmentClient) Create() *CommitmentCreate {
	mutation := newCommitmentMutation(c.config, OpCreate)
	return &CommitmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Commitment entities.
func (c *CommitmentClient) CreateBulk(builders ...*CommitmentCreate) *CommitmentCreateBulk {
	return &CommitmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommitmentClient) MapCreateBulk(slice any, setFunc func(*CommitmentCreate, int)) *CommitmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommitmentCreateBulk{err: fmt.Errorf("calling to CommitmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommitmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommitmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Commitment.
func (c *CommitmentClient) Update() *CommitmentUpdate {
	mutation := newCommitmentMutation(c.config, OpUpdate)
	return &CommitmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommitmentClient) UpdateOne(_m *Commitment) *CommitmentUpdateOne {
	mutation := newCommitmentMutation(c.config, OpUpdateOne, withCommitment(_m))
	return &CommitmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommitmentClient) UpdateOneID(id string) *CommitmentUpdateOne {
	mutation := newCommitmentMutation(c.config, OpUpdateOne, withCommitmentID(id))
	return &CommitmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Commitment.
func (c *CommitmentClient) Delete() *CommitmentDelete {
	mutation := newCommitmentMutation(c.config, OpDelete)
	return &CommitmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommitmentClient) DeleteOne(_m *Commitment) *CommitmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommitmentClient) DeleteOneID(id string) *CommitmentDeleteOne {
	builder := c.Delete().Where(commitment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommitmentDeleteOne{builder}
}

// Query returns a query builder for Commitment.
func (c *CommitmentClient) Query() *CommitmentQuery {
	return &CommitmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommitment},
		inters: c.Interceptors(),
	}
}

// Get returns a Commitment entity by its id.
func (c *CommitmentClient) Get(ctx context.Context, id string) (*Commitment, error) {
	return c.Query().Where(commitment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommitmentClient) GetX(ctx context.Context, id string) *Commitment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CommitmentClient) Hooks() []Hook {
	return c.hooks.Commitment
}

// Interceptors returns the client interceptors.
func (c *CommitmentClient) Interceptors() []Interceptor {
	return c.inters.Commitment
}

func (c *CommitmentClient) mutate(ctx context.Context, m *CommitmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommitmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommitmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommitmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommitmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Commitment mutation op: %q", m.Op())
	}
}

// DataQualityReportClient is a client for the DataQualityReport schema.
type DataQualityReportClient struct {
	config
}

// NewDataQualityReportClient returns a client for the DataQualityReport from the given config.
func NewDataQualityReportClient(c config) *DataQualityReportClient {
	return &DataQualityReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dataqualityreport.Hooks(f(g(h())))`.
func (c *DataQualityReportClient) Use(hooks ...Hook) {
	c.hooks.DataQualityReport = append(c.hooks.DataQualityReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dataqualityreport.Intercept(f(g(h())))`.
func (c *DataQualityReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.DataQualityReport = append(c.inters.DataQualityReport, interceptors...)
}

// Create returns a builder for creating a DataQualityReport entity.
func (c *DataQualityReportClient) Create() *DataQualityReportCreate {
	mutation := newDataQualityReportMutation(c.config, OpCreate)
	return &DataQualityReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DataQualityReport entities.
func (c *DataQualityReportClient) CreateBulk(builders ...*DataQualityReportCreate) *DataQualityReportCreateBulk {
	return &DataQualityReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DataQualityReportClient) MapCreateBulk(slice any, setFunc func(*DataQualityReportCreate, int)) *DataQualityReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DataQualityReportCreateBulk{err: fmt.Errorf("calling to DataQualityReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DataQualityReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DataQualityReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DataQualityReport.
func (c *DataQualityReportClient) Update() *DataQualityReportUpdate {
	mutation := newDataQualityReportMutation(c.config, OpUpdate)
	return &DataQualityReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DataQualityReportClient) UpdateOne(_m *DataQualityReport) *DataQualityReportUpdateOne {
	mutation := newDataQualityReportMutation(c.config, OpUpdateOne, withDataQualityReport(_m))
	return &DataQualityReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DataQualityReportClient) UpdateOneID(id string) *DataQualityReportUpdateOne {
	mutation := newDataQualityReportMutation(c.config, OpUpdateOne, withDataQualityReportID(id))
	return &DataQualityReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DataQualityReport.
func (c *DataQualityReportClient) Delete() *DataQualityReportDelete {
	mutation := newDataQualityReportMutation(c.config, OpDelete)
	return &DataQualityReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DataQualityReportClient) DeleteOne(_m *DataQualityReport) *DataQualityReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DataQualityReportClient) DeleteOneID(id string) *DataQualityReportDeleteOne {
	builder := c.Delete().Where(dataqualityreport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DataQualityReportDeleteOne{builder}
}

// Query returns a query builder for DataQualityReport.
func (c *DataQualityReportClient) Query() *DataQualityReportQuery {
	return &DataQualityReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDataQualityReport},
		inters: c.Interceptors(),
	}
}

// Get returns a DataQualityReport entity by its id.
func (c *DataQualityReportClient) Get(ctx context.Context, id string) (*DataQualityReport, error) {
	return c.Query().Where(dataqualityreport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DataQualityReportClient) GetX(ctx context.Context, id string) *DataQualityReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DataQualityReportClient) Hooks() []Hook {
	return c.hooks.DataQualityReport
}

// Interceptors returns the client interceptors.
func (c *DataQualityReportClient) Interceptors() []Interceptor {
	return c.inters.DataQualityReport
}

func (c *DataQualityReportClient) mutate(ctx context.Context, m *DataQualityReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DataQualityReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DataQualityReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DataQualityReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DataQualityReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DataQualityReport mutation op: %q", m.Op())
	}
}

// EmbeddingJobClient is a client for the EmbeddingJob schema.
type EmbeddingJobClient struct {
	config
}

// NewEmbeddingJobClient returns a client for the EmbeddingJob from the given config.
func NewEmbeddingJobClient(c config) *EmbeddingJobClient {
	return &EmbeddingJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `embeddingjob.Hooks(f(g(h())))`.
func (c *EmbeddingJobClient) Use(hooks ...Hook) {
	c.hooks.EmbeddingJob = append(c.hooks.EmbeddingJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `embeddingjob.Intercept(f(g(h())))`.
func (c *EmbeddingJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.EmbeddingJob = append(c.inters.EmbeddingJob, interceptors...)
}

// Create returns a builder for creating a EmbeddingJob entity.
func (c *EmbeddingJobClient) Create() *EmbeddingJobCreate {
	mutation := newEmbeddingJobMutation(c.config, OpCreate)
	return &EmbeddingJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EmbeddingJob entities.
func (c *EmbeddingJobClient) CreateBulk(builders ...*EmbeddingJobCreate) *EmbeddingJobCreateBulk {
	return &EmbeddingJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmbeddingJobClient) MapCreateBulk(slice any, setFunc func(*EmbeddingJobCreate, int)) *EmbeddingJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmbeddingJobCreateBulk{err: fmt.Errorf("calling to EmbeddingJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmbeddingJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmbeddingJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EmbeddingJob.
func (c *EmbeddingJobClient) Update() *EmbeddingJobUpdate {
	mutation := newEmbeddingJobMutation(c.config, OpUpdate)
	return &EmbeddingJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmbeddingJobClient) UpdateOne(_m *EmbeddingJob) *EmbeddingJobUpdateOne {
	mutation := newEmbeddingJobMutation(c.config, OpUpdateOne, withEmbeddingJob(_m))
	return &EmbeddingJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmbeddingJobClient) UpdateOneID(id string) *EmbeddingJobUpdateOne {
	mutation := newEmbeddingJobMutation(c.config, OpUpdateOne, withEmbeddingJobID(id))
	return &EmbeddingJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EmbeddingJob.
func (c *EmbeddingJobClient) Delete() *EmbeddingJobDelete {
	mutation := newEmbeddingJobMutation(c.config, OpDelete)
	return &EmbeddingJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmbeddingJobClient) DeleteOne(_m *EmbeddingJob) *EmbeddingJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmbeddingJobClient) DeleteOneID(id string) *EmbeddingJobDeleteOne {
	builder := c.Delete().Where(embeddingjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmbeddingJobDeleteOne{builder}
}

// Query returns a query builder for EmbeddingJob.
func (c *EmbeddingJobClient) Query() *EmbeddingJobQuery {
	return &EmbeddingJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmbeddingJob},
		inters: c.Interceptors(),
	}
}

// Get returns a EmbeddingJob entity by its id.
func (c *EmbeddingJobClient) Get(ctx context.Context, id string) (*EmbeddingJob, error) {
	return c.Query().Where(embeddingjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmbeddingJobClient) GetX(ctx context.Context, id string) *EmbeddingJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EmbeddingJobClient) Hooks() []Hook {
	return c.hooks.EmbeddingJob
}

// Interceptors returns the client interceptors.
func (c *EmbeddingJobClient) Interceptors() []Interceptor {
	return c.inters.EmbeddingJob
}

func (c *EmbeddingJobClient) mutate(ctx context.Context, m *EmbeddingJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmbeddingJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmbeddingJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmbeddingJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmbeddingJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EmbeddingJob mutation op: %q", m.Op())
	}
}

// EntityClient is a client for the Entity schema.
type EntityClient struct {
	config
}

// NewEntityClient returns a client for the Entity from the given config.
func NewEntityClient(c config) *EntityClient {
	return &EntityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entity.Hooks(f(g(h())))`.
func (c *EntityClient) Use(hooks ...Hook) {
	c.hooks.Entity = append(c.hooks.Entity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entity.Intercept(f(g(h())))`.
func (c *EntityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Entity = append(c.inters.Entity, interceptors...)
}

// Create returns a builder for creating a Entity entity.
func (c *EntityClient) Create() *EntityCreate {
	mutation := newEntityMutation(c.config, OpCreate)
	return &EntityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Entity entities.
func (c *EntityClient) CreateBulk(builders ...*EntityCreate) *EntityCreateBulk {
	return &EntityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityClient) MapCreateBulk(slice any, setFunc func(*EntityCreate, int)) *EntityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityCreateBulk{err: fmt.Errorf("calling to EntityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Entity.
func (c *EntityClient) Update() *EntityUpdate {
	mutation := newEntityMutation(c.config, OpUpdate)
	return &EntityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityClient) UpdateOne(_m *Entity) *EntityUpdateOne {
	mutation := newEntityMutation(c.config, OpUpdateOne, withEntity(_m))
	return &EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityClient) UpdateOneID(id string) *EntityUpdateOne {
	mutation := newEntityMutation(c.config, OpUpdateOne, withEntityID(id))
	return &EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Entity.
func (c *EntityClient) Delete() *EntityDelete {
	mutation := newEntityMutation(c.config, OpDelete)
	return &EntityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityClient) DeleteOne(_m *Entity) *EntityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityClient) DeleteOneID(id string) *EntityDeleteOne {
	builder := c.Delete().Where(entity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityDeleteOne{builder}
}

// Query returns a query builder for Entity.
func (c *EntityClient) Query() *EntityQuery {
	return &EntityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntity},
		inters: c.Interceptors(),
	}
}

// Get returns a Entity entity by its id.
func (c *EntityClient) Get(ctx context.Context, id string) (*Entity, error) {
	return c.Query().Where(entity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityClient) GetX(ctx context.Context, id string) *Entity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIdentifiers queries the identifiers edge of a Entity.
func (c *EntityClient) QueryIdentifiers(_m *Entity) *EntityIdentifierQuery {
	query := (&EntityIdentifierClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entity.Table, entity.FieldID, id),
			sqlgraph.To(entityidentifier.Table, entityidentifier.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, entity.IdentifiersTable, entity.IdentifiersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFacts queries the facts edge of a Entity.
func (c *EntityClient) QueryFacts(_m *Entity) *EntityFactQuery {
	query := (&EntityFactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entity.Table, entity.FieldID, id),
			sqlgraph.To(entityfact.Table, entityfact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, entity.FactsTable, entity.FactsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOrganization queries the organization edge of a Entity.
func (c *EntityClient) QueryOrganization(_m *Entity) *EntityQuery {
	query := (&EntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entity.Table, entity.FieldID, id),
			sqlgraph.To(entity.Table, entity.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entity.OrganizationTable, entity.OrganizationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMembers queries the members edge of a Entity.
func (c *EntityClient) QueryMembers(_m *Entity) *EntityQuery {
	query := (&EntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entity.Table, entity.FieldID, id),
			sqlgraph.To(entity.Table, entity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, entity.MembersTable, entity.MembersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntityClient) Hooks() []Hook {
	return c.hooks.Entity
}

// Interceptors returns the client interceptors.
func (c *EntityClient) Interceptors() []Interceptor {
	return c.inters.Entity
}

func (c *EntityClient) mutate(ctx context.Context, m *EntityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Entity mutation op: %q", m.Op())
	}
}

// EntityFactClient is a client for the EntityFact schema.
type EntityFactClient struct {
	config
}

// NewEntityFactClient returns a client for the EntityFact from the given config.
func NewEntityFactClient(c config) *EntityFactClient {
	return &EntityFactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entityfact.Hooks(f(g(h())))`.
func (c *EntityFactClient) Use(hooks ...Hook) {
	c.hooks.EntityFact = append(c.hooks.EntityFact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entityfact.Intercept(f(g(h())))`.
func (c *EntityFactClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntityFact = append(c.inters.EntityFact, interceptors...)
}

// Create returns a builder for creating a EntityFact entity.
func (c *EntityFactClient) Create() *EntityFactCreate {
	mutation := newEntityFactMutation(c.config, OpCreate)
	return &EntityFactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntityFact entities.
func (c *EntityFactClient) CreateBulk(builders ...*EntityFactCreate) *EntityFactCreateBulk {
	return &EntityFactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityFactClient) MapCreateBulk(slice any, setFunc func(*EntityFactCreate, int)) *EntityFactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityFactCreateBulk{err: fmt.Errorf("calling to EntityFactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityFactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityFactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntityFact.
func (c *EntityFactClient) Update() *EntityFactUpdate {
	mutation := newEntityFactMutation(c.config, OpUpdate)
	return &EntityFactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityFactClient) UpdateOne(_m *EntityFact) *EntityFactUpdateOne {
	mutation := newEntityFactMutation(c.config, OpUpdateOne, withEntityFact(_m))
	return &EntityFactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityFactClient) UpdateOneID(id string) *EntityFactUpdateOne {
	mutation := newEntityFactMutation(c.config, OpUpdateOne, withEntityFactID(id))
	return &EntityFactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntityFact.
func (c *EntityFactClient) Delete() *EntityFactDelete {
	mutation := newEntityFactMutation(c.config, OpDelete)
	return &EntityFactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityFactClient) DeleteOne(_m *EntityFact) *EntityFactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityFactClient) DeleteOneID(id string) *EntityFactDeleteOne {
	builder := c.Delete().Where(entityfact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityFactDeleteOne{builder}
}

// Query returns a query builder for EntityFact.
func (c *EntityFactClient) Query() *EntityFactQuery {
	return &EntityFactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntityFact},
		inters: c.Interceptors(),
	}
}

// Get returns a EntityFact entity by its id.
func (c *EntityFactClient) Get(ctx context.Context, id string) (*EntityFact, error) {
	return c.Query().Where(entityfact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityFactClient) GetX(ctx context.Context, id string) *EntityFact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEntity queries the entity edge of a EntityFact.
func (c *EntityFactClient) QueryEntity(_m *EntityFact) *EntityQuery {
	query := (&EntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entityfact.Table, entityfact.FieldID, id),
			sqlgraph.To(entity.Table, entity.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entityfact.EntityTable, entityfact.EntityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntityFactClient) Hooks() []Hook {
	return c.hooks.EntityFact
}

// Interceptors returns the client interceptors.
func (c *EntityFactClient) Interceptors() []Interceptor {
	return c.inters.EntityFact
}

func (c *EntityFactClient) mutate(ctx context.Context, m *EntityFactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityFactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityFactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityFactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityFactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntityFact mutation op: %q", m.Op())
	}
}

// EntityIdentifierClient is a client for the EntityIdentifier schema.
type EntityIdentifierClient struct {
	config
}

// NewEntityIdentifierClient returns a client for the EntityIdentifier from the given config.
func NewEntityIdentifierClient(c config) *EntityIdentifierClient {
	return &EntityIdentifierClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entityidentifier.Hooks(f(g(h())))`.
func (c *EntityIdentifierClient) Use(hooks ...Hook) {
	c.hooks.EntityIdentifier = append(c.hooks.EntityIdentifier, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entityidentifier.Intercept(f(g(h())))`.
func (c *EntityIdentifierClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntityIdentifier = append(c.inters.EntityIdentifier, interceptors...)
}

// Create returns a builder for creating a EntityIdentifier entity.
func (c *EntityIdentifierClient) Create() *EntityIdentifierCreate {
	mutation := newEntityIdentifierMutation(c.config, OpCreate)
	return &EntityIdentifierCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntityIdentifier entities.
func (c *EntityIdentifierClient) CreateBulk(builders ...*EntityIdentifierCreate) *EntityIdentifierCreateBulk {
	return &EntityIdentifierCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityIdentifierClient) MapCreateBulk(slice any, setFunc func(*EntityIdentifierCreate, int)) *EntityIdentifierCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityIdentifierCreateBulk{err: fmt.Errorf("calling to EntityIdentifierClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityIdentifierCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityIdentifierCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntityIdentifier.
func (c *EntityIdentifierClient) Update() *EntityIdentifierUpdate {
	mutation := newEntityIdentifierMutation(c.config, OpUpdate)
	return &EntityIdentifierUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityIdentifierClient) UpdateOne(_m *EntityIdentifier) *EntityIdentifierUpdateOne {
	mutation := newEntityIdentifierMutation(c.config, OpUpdateOne, withEntityIdentifier(_m))
	return &EntityIdentifierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityIdentifierClient) UpdateOneID(id string) *EntityIdentifierUpdateOne {
	mutation := newEntityIdentifierMutation(c.config, OpUpdateOne, withEntityIdentifierID(id))
	return &EntityIdentifierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntityIdentifier.
func (c *EntityIdentifierClient) Delete() *EntityIdentifierDelete {
	mutation := newEntityIdentifierMutation(c.config, OpDelete)
	return &EntityIdentifierDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityIdentifierClient) DeleteOne(_m *EntityIdentifier) *EntityIdentifierDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityIdentifierClient) DeleteOneID(id string) *EntityIdentifierDeleteOne {
	builder := c.Delete().Where(entityidentifier.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityIdentifierDeleteOne{builder}
}

// Query returns a query builder for EntityIdentifier.
func (c *EntityIdentifierClient) Query() *EntityIdentifierQuery {
	return &EntityIdentifierQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntityIdentifier},
		inters: c.Interceptors(),
	}
}

// Get returns a EntityIdentifier entity by its id.
func (c *EntityIdentifierClient) Get(ctx context.Context, id string) (*EntityIdentifier, error) {
	return c.Query().Where(entityidentifier.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityIdentifierClient) GetX(ctx context.Context, id string) *EntityIdentifier {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEntity queries the entity edge of a EntityIdentifier.
func (c *EntityIdentifierClient) QueryEntity(_m *EntityIdentifier) *EntityQuery {
	query := (&EntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entityidentifier.Table, entityidentifier.FieldID, id),
			sqlgraph.To(entity.Table, entity.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entityidentifier.EntityTable, entityidentifier.EntityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntityIdentifierClient) Hooks() []Hook {
	return c.hooks.EntityIdentifier
}

// Interceptors returns the client interceptors.
func (c *EntityIdentifierClient) Interceptors() []Interceptor {
	return c.inters.EntityIdentifier
}

func (c *EntityIdentifierClient) mutate(ctx context.Context, m *EntityIdentifierMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityIdentifierCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityIdentifierUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityIdentifierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityIdentifierDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntityIdentifier mutation op: %q", m.Op())
	}
}

// InteractionClient is a client for the Interaction schema.
type InteractionClient struct {
	config
}

// NewInteractionClient returns a client for the Interaction from the given config.
func NewInteractionClient(c config) *InteractionClient {
	return &InteractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interaction.Hooks(f(g(h())))`.
func (c *InteractionClient) Use(hooks ...Hook) {
	c.hooks.Interaction = append(c.hooks.Interaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interaction.Intercept(f(g(h())))`.
func (c *InteractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Interaction = append(c.inters.Interaction, interceptors...)
}

// Create returns a builder for creating a Interaction entity.
func (c *InteractionClient) Create() *InteractionCreate {
	mutation := newInteractionMutation(c.config, OpCreate)
	return &InteractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Interaction entities.
func (c *InteractionClient) CreateBulk(builders ...*InteractionCreate) *InteractionCreateBulk {
	return &InteractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InteractionClient) MapCreateBulk(slice any, setFunc func(*InteractionCreate, int)) *InteractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InteractionCreateBulk{err: fmt.Errorf("calling to InteractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InteractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InteractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Interaction.
func (c *InteractionClient) Update() *InteractionUpdate {
	mutation := newInteractionMutation(c.config, OpUpdate)
	return &InteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InteractionClient) UpdateOne(_m *Interaction) *InteractionUpdateOne {
	mutation := newInteractionMutation(c.config, OpUpdateOne, withInteraction(_m))
	return &InteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InteractionClient) UpdateOneID(id string) *InteractionUpdateOne {
	mutation := newInteractionMutation(c.config, OpUpdateOne, withInteractionID(id))
	return &InteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Interaction.
func (c *InteractionClient) Delete() *InteractionDelete {
	mutation := newInteractionMutation(c.config, OpDelete)
	return &InteractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InteractionClient) DeleteOne(_m *Interaction) *InteractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InteractionClient) DeleteOneID(id string) *InteractionDeleteOne {
	builder := c.Delete().Where(interaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InteractionDeleteOne{builder}
}

// Query returns a query builder for Interaction.
func (c *InteractionClient) Query() *InteractionQuery {
	return &InteractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInteraction},
		inters: c.Interceptors(),
	}
}

// Get returns a Interaction entity by its id.
func (c *InteractionClient) Get(ctx context.Context, id string) (*Interaction, error) {
	return c.Query().Where(interaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InteractionClient) GetX(ctx context.Context, id string) *Interaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessages queries the messages edge of a Interaction.
func (c *InteractionClient) QueryMessages(_m *Interaction) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(interaction.Table, interaction.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, interaction.MessagesTable, interaction.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParticipants queries the participants edge of a Interaction.
func (c *InteractionClient) QueryParticipants(_m *Interaction) *InteractionParticipantQuery {
	query := (&InteractionParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(interaction.Table, interaction.FieldID, id),
			sqlgraph.To(interactionparticipant.Table, interactionparticipant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, interaction.ParticipantsTable, interaction.ParticipantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySegments queries the segments edge of a Interaction.
func (c *InteractionClient) QuerySegments(_m *Interaction) *TopicalSegmentQuery {
	query := (&TopicalSegmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(interaction.Table, interaction.FieldID, id),
			sqlgraph.To(topicalsegment.Table, topicalsegment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, interaction.SegmentsTable, interaction.SegmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InteractionClient) Hooks() []Hook {
	return c.hooks.Interaction
}

// Interceptors returns the client interceptors.
func (c *InteractionClient) Interceptors() []Interceptor {
	return c.inters.Interaction
}

func (c *InteractionClient) mutate(ctx context.Context, m *InteractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InteractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InteractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Interaction mutation op: %q", m.Op())
	}
}

// InteractionParticipantClient is a client for the InteractionParticipant schema.
type InteractionParticipantClient struct {
	config
}

// NewInteractionParticipantClient returns a client for the InteractionParticipant from the given config.
func NewInteractionParticipantClient(c config) *InteractionParticipantClient {
	return &InteractionParticipantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interactionparticipant.Hooks(f(g(h())))`.
func (c *InteractionParticipantClient) Use(hooks ...Hook) {
	c.hooks.InteractionParticipant = append(c.hooks.InteractionParticipant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interactionparticipant.Intercept(f(g(h())))`.
func (c *InteractionParticipantClient) Intercept(interceptors ...Interceptor) {
	c.inters.InteractionParticipant = append(c.inters.InteractionParticipant, interceptors...)
}

// Create returns a builder for creating a InteractionParticipant entity.
func (c *InteractionParticipantClient) Create() *InteractionParticipantCreate {
	mutation := newInteractionParticipantMutation(c.config, OpCreate)
	return &InteractionParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InteractionParticipant entities.
func (c *InteractionParticipantClient) CreateBulk(builders ...*InteractionParticipantCreate) *InteractionParticipantCreateBulk {
	return &InteractionParticipantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InteractionParticipantClient) MapCreateBulk(slice any, setFunc func(*InteractionParticipantCreate, int)) *InteractionParticipantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InteractionParticipantCreateBulk{err: fmt.Errorf("calling to InteractionParticipantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InteractionParticipantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InteractionParticipantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InteractionParticipant.
func (c *InteractionParticipantClient) Update() *InteractionParticipantUpdate {
	mutation := newInteractionParticipantMutation(c.config, OpUpdate)
	return &InteractionParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InteractionParticipantClient) UpdateOne(_m *InteractionParticipant) *InteractionParticipantUpdateOne {
	mutation := newInteractionParticipantMutation(c.config, OpUpdateOne, withInteractionParticipant(_m))
	return &InteractionParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InteractionParticipantClient) UpdateOneID(id string) *InteractionParticipantUpdateOne {
	mutation := newInteractionParticipantMutation(c.config, OpUpdateOne, withInteractionParticipantID(id))
	return &InteractionParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InteractionParticipant.
func (c *InteractionParticipantClient) Delete() *InteractionParticipantDelete {
	mutation := newInteractionParticipantMutation(c.config, OpDelete)
	return &InteractionParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InteractionParticipantClient) DeleteOne(_m *InteractionParticipant) *InteractionParticipantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InteractionParticipantClient) DeleteOneID(id string) *InteractionParticipantDeleteOne {
	builder := c.Delete().Where(interactionparticipant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InteractionParticipantDeleteOne{builder}
}

// Query returns a query builder for InteractionParticipant.
func (c *InteractionParticipantClient) Query() *InteractionParticipantQuery {
	return &InteractionParticipantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInteractionParticipant},
		inters: c.Interceptors(),
	}
}

// Get returns a InteractionParticipant entity by its id.
func (c *InteractionParticipantClient) Get(ctx context.Context, id string) (*InteractionParticipant, error) {
	return c.Query().Where(interactionparticipant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InteractionParticipantClient) GetX(ctx context.Context, id string) *InteractionParticipant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInteraction queries the interaction edge of a InteractionParticipant.
func (c *InteractionParticipantClient) QueryInteraction(_m *InteractionParticipant) *InteractionQuery {
	query := (&InteractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(interactionparticipant.Table, interactionparticipant.FieldID, id),
			sqlgraph.To(interaction.Table, interaction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, interactionparticipant.InteractionTable, interactionparticipant.InteractionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InteractionParticipantClient) Hooks() []Hook {
	return c.hooks.InteractionParticipant
}

// Interceptors returns the client interceptors.
func (c *InteractionParticipantClient) Interceptors() []Interceptor {
	return c.inters.InteractionParticipant
}

func (c *InteractionParticipantClient) mutate(ctx context.Context, m *InteractionParticipantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InteractionParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InteractionParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InteractionParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InteractionParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InteractionParticipant mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id string) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id string) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id string) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id string) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInteraction queries the interaction edge of a Message.
func (c *MessageClient) QueryInteraction(_m *Message) *InteractionQuery {
	query := (&InteractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(interaction.Table, interaction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, message.InteractionTable, message.InteractionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySegments queries the segments edge of a Message.
func (c *MessageClient) QuerySegments(_m *Message) *TopicalSegmentQuery {
	query := (&TopicalSegmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(topicalsegment.Table, topicalsegment.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, message.SegmentsTable, message.SegmentsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// PendingApprovalClient is a client for the PendingApproval schema.
type PendingApprovalClient struct {
	config
}

// NewPendingApprovalClient returns a client for the PendingApproval from the given config.
func NewPendingApprovalClient(c config) *PendingApprovalClient {
	return &PendingApprovalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pendingapproval.Hooks(f(g(h())))`.
func (c *PendingApprovalClient) Use(hooks ...Hook) {
	c.hooks.PendingApproval = append(c.hooks.PendingApproval, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pendingapproval.Intercept(f(g(h())))`.
func (c *PendingApprovalClient) Intercept(interceptors ...Interceptor) {
	c.inters.PendingApproval = append(c.inters.PendingApproval, interceptors...)
}

// Create returns a builder for creating a PendingApproval entity.
func (c *PendingApprovalClient) Create() *PendingApprovalCreate {
	mutation := newPendingApprovalMutation(c.config, OpCreate)
	return &PendingApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PendingApproval entities.
func (c *PendingApprovalClient) CreateBulk(builders ...*PendingApprovalCreate) *PendingApprovalCreateBulk {
	return &PendingApprovalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PendingApprovalClient) MapCreateBulk(slice any, setFunc func(*PendingApprovalCreate, int)) *PendingApprovalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PendingApprovalCreateBulk{err: fmt.Errorf("calling to PendingApprovalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PendingApprovalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PendingApprovalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PendingApproval.
func (c *PendingApprovalClient) Update() *PendingApprovalUpdate {
	mutation := newPendingApprovalMutation(c.config, OpUpdate)
	return &PendingApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PendingApprovalClient) UpdateOne(_m *PendingApproval) *PendingApprovalUpdateOne {
	mutation := newPendingApprovalMutation(c.config, OpUpdateOne, withPendingApproval(_m))
	return &PendingApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PendingApprovalClient) UpdateOneID(id string) *PendingApprovalUpdateOne {
	mutation := newPendingApprovalMutation(c.config, OpUpdateOne, withPendingApprovalID(id))
	return &PendingApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PendingApproval.
func (c *PendingApprovalClient) Delete() *PendingApprovalDelete {
	mutation := newPendingApprovalMutation(c.config, OpDelete)
	return &PendingApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PendingApprovalClient) DeleteOne(_m *PendingApproval) *PendingApprovalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PendingApprovalClient) DeleteOneID(id string) *PendingApprovalDeleteOne {
	builder := c.Delete().Where(pendingapproval.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PendingApprovalDeleteOne{builder}
}

// Query returns a query builder for PendingApproval.
func (c *PendingApprovalClient) Query() *PendingApprovalQuery {
	return &PendingApprovalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePendingApproval},
		inters: c.Interceptors(),
	}
}

// Get returns a PendingApproval entity by its id.
func (c *PendingApprovalClient) Get(ctx context.Context, id string) (*PendingApproval, error) {
	return c.Query().Where(pendingapproval.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PendingApprovalClient) GetX(ctx context.Context, id string) *PendingApproval {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PendingApprovalClient) Hooks() []Hook {
	return c.hooks.PendingApproval
}

// Interceptors returns the client interceptors.
func (c *PendingApprovalClient) Interceptors() []Interceptor {
	return c.inters.PendingApproval
}

func (c *PendingApprovalClient) mutate(ctx context.Context, m *PendingApprovalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PendingApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PendingApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PendingApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PendingApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PendingApproval mutation op: %q", m.Op())
	}
}

// PendingEntityResolutionClient is a client for the PendingEntityResolution schema.
type PendingEntityResolutionClient struct {
	config
}

// NewPendingEntityResolutionClient returns a client for the PendingEntityResolution from the given config.
func NewPendingEntityResolutionClient(c config) *PendingEntityResolutionClient {
	return &PendingEntityResolutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pendingentityresolution.Hooks(f(g(h())))`.
func (c *PendingEntityResolutionClient) Use(hooks ...Hook) {
	c.hooks.PendingEntityResolution = append(c.hooks.PendingEntityResolution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pendingentityresolution.Intercept(f(g(h())))`.
func (c *PendingEntityResolutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PendingEntityResolution = append(c.inters.PendingEntityResolution, interceptors...)
}

// Create returns a builder for creating a PendingEntityResolution entity.
func (c *PendingEntityResolutionClient) Create() *PendingEntityResolutionCreate {
	mutation := newPendingEntityResolutionMutation(c.config, OpCreate)
	return &PendingEntityResolutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PendingEntityResolution entities.
func (c *PendingEntityResolutionClient) CreateBulk(builders ...*PendingEntityResolutionCreate) *PendingEntityResolutionCreateBulk {
	return &PendingEntityResolutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PendingEntityResolutionClient) MapCreateBulk(slice any, setFunc func(*PendingEntityResolutionCreate, int)) *PendingEntityResolutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PendingEntityResolutionCreateBulk{err: fmt.Errorf("calling to PendingEntityResolutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PendingEntityResolutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PendingEntityResolutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PendingEntityResolution.
func (c *PendingEntityResolutionClient) Update() *PendingEntityResolutionUpdate {
	mutation := newPendingEntityResolutionMutation(c.config, OpUpdate)
	return &PendingEntityResolutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PendingEntityResolutionClient) UpdateOne(_m *PendingEntityResolution) *PendingEntityResolutionUpdateOne {
	mutation := newPendingEntityResolutionMutation(c.config, OpUpdateOne, withPendingEntityResolution(_m))
	return &PendingEntityResolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PendingEntityResolutionClient) UpdateOneID(id string) *PendingEntityResolutionUpdateOne {
	mutation := newPendingEntityResolutionMutation(c.config, OpUpdateOne, withPendingEntityResolutionID(id))
	return &PendingEntityResolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PendingEntityResolution.
func (c *PendingEntityResolutionClient) Delete() *PendingEntityResolutionDelete {
	mutation := newPendingEntityResolutionMutation(c.config, OpDelete)
	return &PendingEntityResolutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PendingEntityResolutionClient) DeleteOne(_m *PendingEntityResolution) *PendingEntityResolutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PendingEntityResolutionClient) DeleteOneID(id string) *PendingEntityResolutionDeleteOne {
	builder := c.Delete().Where(pendingentityresolution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PendingEntityResolutionDeleteOne{builder}
}

// Query returns a query builder for PendingEntityResolution.
func (c *PendingEntityResolutionClient) Query() *PendingEntityResolutionQuery {
	return &PendingEntityResolutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePendingEntityResolution},
		inters: c.Interceptors(),
	}
}

// Get returns a PendingEntityResolution entity by its id.
func (c *PendingEntityResolutionClient) Get(ctx context.Context, id string) (*PendingEntityResolution, error) {
	return c.Query().Where(pendingentityresolution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PendingEntityResolutionClient) GetX(ctx context.Context, id string) *PendingEntityResolution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PendingEntityResolutionClient) Hooks() []Hook {
	return c.hooks.PendingEntityResolution
}

// Interceptors returns the client interceptors.
func (c *PendingEntityResolutionClient) Interceptors() []Interceptor {
	return c.inters.PendingEntityResolution
}

func (c *PendingEntityResolutionClient) mutate(ctx context.Context, m *PendingEntityResolutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PendingEntityResolutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PendingEntityResolutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PendingEntityResolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PendingEntityResolutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PendingEntityResolution mutation op: %q", m.Op())
	}
}

// TopicalSegmentClient is a client for the TopicalSegment schema.
type TopicalSegmentClient struct {
	config
}

// NewTopicalSegmentClient returns a client for the TopicalSegment from the given config.
func NewTopicalSegmentClient(c config) *TopicalSegmentClient {
	return &TopicalSegmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topicalsegment.Hooks(f(g(h())))`.
func (c *TopicalSegmentClient) Use(hooks ...Hook) {
	c.hooks.TopicalSegment = append(c.hooks.TopicalSegment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topicalsegment.Intercept(f(g(h())))`.
func (c *TopicalSegmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicalSegment = append(c.inters.TopicalSegment, interceptors...)
}

// Create returns a builder for creating a TopicalSegment entity.
func (c *TopicalSegmentClient) Create() *TopicalSegmentCreate {
	mutation := newTopicalSegmentMutation(c.config, OpCreate)
	return &TopicalSegmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicalSegment entities.
func (c *TopicalSegmentClient) CreateBulk(builders ...*TopicalSegmentCreate) *TopicalSegmentCreateBulk {
	return &TopicalSegmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicalSegmentClient) MapCreateBulk(slice any, setFunc func(*TopicalSegmentCreate, int)) *TopicalSegmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicalSegmentCreateBulk{err: fmt.Errorf("calling to TopicalSegmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicalSegmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicalSegmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicalSegment.
func (c *TopicalSegmentClient) Update() *TopicalSegmentUpdate {
	mutation := newTopicalSegmentMutation(c.config, OpUpdate)
	return &TopicalSegmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicalSegmentClient) UpdateOne(_m *TopicalSegment) *TopicalSegmentUpdateOne {
	mutation := newTopicalSegmentMutation(c.config, OpUpdateOne, withTopicalSegment(_m))
	return &TopicalSegmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicalSegmentClient) UpdateOneID(id string) *TopicalSegmentUpdateOne {
	mutation := newTopicalSegmentMutation(c.config, OpUpdateOne, withTopicalSegmentID(id))
	return &TopicalSegmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicalSegment.
func (c *TopicalSegmentClient) Delete() *TopicalSegmentDelete {
	mutation := newTopicalSegmentMutation(c.config, OpDelete)
	return &TopicalSegmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicalSegmentClient) DeleteOne(_m *TopicalSegment) *TopicalSegmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicalSegmentClient) DeleteOneID(id string) *TopicalSegmentDeleteOne {
	builder := c.Delete().Where(topicalsegment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicalSegmentDeleteOne{builder}
}

// Query returns a query builder for TopicalSegment.
func (c *TopicalSegmentClient) Query() *TopicalSegmentQuery {
	return &TopicalSegmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicalSegment},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicalSegment entity by its id.
func (c *TopicalSegmentClient) Get(ctx context.Context, id string) (*TopicalSegment, error) {
	return c.Query().Where(topicalsegment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicalSegmentClient) GetX(ctx context.Context, id string) *TopicalSegment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInteraction queries the interaction edge of a TopicalSegment.
func (c *TopicalSegmentClient) QueryInteraction(_m *TopicalSegment) *InteractionQuery {
	query := (&InteractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topicalsegment.Table, topicalsegment.FieldID, id),
			sqlgraph.To(interaction.Table, interaction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, topicalsegment.InteractionTable, topicalsegment.InteractionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a TopicalSegment.
func (c *TopicalSegmentClient) QueryMessages(_m *TopicalSegment) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topicalsegment.Table, topicalsegment.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, topicalsegment.MessagesTable, topicalsegment.MessagesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TopicalSegmentClient) Hooks() []Hook {
	return c.hooks.TopicalSegment
}

// Interceptors returns the client interceptors.
func (c *TopicalSegmentClient) Interceptors() []Interceptor {
	return c.inters.TopicalSegment
}

func (c *TopicalSegmentClient) mutate(ctx context.Context, m *TopicalSegmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicalSegmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicalSegmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicalSegmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicalSegmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicalSegment mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Activity, ActivityClosure, Commitment, DataQualityReport, EmbeddingJob, Entity,
		EntityFact, EntityIdentifier, Interaction, InteractionParticipant, Message,
		PendingApproval, PendingEntityResolution, TopicalSegment, User []ent.Hook
	}
	inters struct {
		Activity, ActivityClosure, Commitment, DataQualityReport, EmbeddingJob, Entity,
		EntityFact, EntityIdentifier, Interaction, InteractionParticipant, Message,
		PendingApproval, PendingEntityResolution, TopicalSegment,
		User []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
