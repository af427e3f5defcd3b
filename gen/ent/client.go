// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/fieldlog/fieldlog/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fieldlog/fieldlog/gen/ent/contractor"
	"github.com/fieldlog/fieldlog/gen/ent/editlock"
	"github.com/fieldlog/fieldlog/gen/ent/photo"
	"github.com/fieldlog/fieldlog/gen/ent/project"
	"github.com/fieldlog/fieldlog/gen/ent/report"
	"github.com/fieldlog/fieldlog/gen/ent/reportentry"
	"github.com/fieldlog/fieldlog/gen/ent/reportrawcapture"
	"github.com/fieldlog/fieldlog/gen/ent/userprofile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Contractor is the client for interacting with the Contractor builders.
	Contractor *ContractorClient
	// EditLock is the client for interacting with the EditLock builders.
	EditLock *EditLockClient
	// Photo is the client for interacting with the Photo builders.
	Photo *PhotoClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// Report is the client for interacting with the Report builders.
	Report *ReportClient
	// ReportEntry is the client for interacting with the ReportEntry builders.
	ReportEntry *ReportEntryClient
	// ReportRawCapture is the client for interacting with the ReportRawCapture builders.
	ReportRawCapture *ReportRawCaptureClient
	// UserProfile is the client for interacting with the UserProfile builders.
	UserProfile *UserProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Contractor = NewContractorClient(c.config)
	c.EditLock = NewEditLockClient(c.config)
	c.Photo = NewPhotoClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.Report = NewReportClient(c.config)
	c.ReportEntry = NewReportEntryClient(c.config)
	c.ReportRawCapture = NewReportRawCaptureClient(c.config)
	c.UserProfile = NewUserProfileClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Contractor:       NewContractorClient(cfg),
		EditLock:         NewEditLockClient(cfg),
		Photo:            NewPhotoClient(cfg),
		Project:          NewProjectClient(cfg),
		Report:           NewReportClient(cfg),
		ReportEntry:      NewReportEntryClient(cfg),
		ReportRawCapture: NewReportRawCaptureClient(cfg),
		UserProfile:      NewUserProfileClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		Contractor:       NewContractorClient(cfg),
		EditLock:         NewEditLockClient(cfg),
		Photo:            NewPhotoClient(cfg),
		Project:          NewProjectClient(cfg),
		Report:           NewReportClient(cfg),
		ReportEntry:      NewReportEntryClient(cfg),
		ReportRawCapture: NewReportRawCaptureClient(cfg),
		UserProfile:      NewUserProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Contractor.
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
		c.Contractor, c.EditLock, c.Photo, c.Project, c.Report, c.ReportEntry,
		c.ReportRawCapture, c.UserProfile,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Contractor, c.EditLock, c.Photo, c.Project, c.Report, c.ReportEntry,
		c.ReportRawCapture, c.UserProfile,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ContractorMutation:
		return c.Contractor.mutate(ctx, m)
	case *EditLockMutation:
		return c.EditLock.mutate(ctx, m)
	case *PhotoMutation:
		return c.Photo.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *ReportMutation:
		return c.Report.mutate(ctx, m)
	case *ReportEntryMutation:
		return c.ReportEntry.mutate(ctx, m)
	case *ReportRawCaptureMutation:
		return c.ReportRawCapture.mutate(ctx, m)
	case *UserProfileMutation:
		return c.UserProfile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ContractorClient is a client for the Contractor schema.
type ContractorClient struct {
	config
}

// NewContractorClient returns a client for the Contractor from the given config.
func NewContractorClient(c config) *ContractorClient {
	return &ContractorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contractor.Hooks(f(g(h())))`.
func (c *ContractorClient) Use(hooks ...Hook) {
	c.hooks.Contractor = append(c.hooks.Contractor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contractor.Intercept(f(g(h())))`.
func (c *ContractorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Contractor = append(c.inters.Contractor, interceptors...)
}

// Create returns a builder for creating a Contractor entity.
func (c *ContractorClient) Create() *ContractorCreate {
	mutation := newContractorMutation(c.config, OpCreate)
	return &ContractorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Contractor entities.
func (c *ContractorClient) CreateBulk(builders ...*ContractorCreate) *ContractorCreateBulk {
	return &ContractorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContractorClient) MapCreateBulk(slice any, setFunc func(*ContractorCreate, int)) *ContractorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContractorCreateBulk{err: fmt.Errorf("calling to ContractorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContractorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContractorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Contractor.
func (c *ContractorClient) Update() *ContractorUpdate {
	mutation := newContractorMutation(c.config, OpUpdate)
	return &ContractorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContractorClient) UpdateOne(_m *Contractor) *ContractorUpdateOne {
	mutation := newContractorMutation(c.config, OpUpdateOne, withContractor(_m))
	return &ContractorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContractorClient) UpdateOneID(id uuid.UUID) *ContractorUpdateOne {
	mutation := newContractorMutation(c.config, OpUpdateOne, withContractorID(id))
	return &ContractorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Contractor.
func (c *ContractorClient) Delete() *ContractorDelete {
	mutation := newContractorMutation(c.config, OpDelete)
	return &ContractorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContractorClient) DeleteOne(_m *Contractor) *ContractorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContractorClient) DeleteOneID(id uuid.UUID) *ContractorDeleteOne {
	builder := c.Delete().Where(contractor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContractorDeleteOne{builder}
}

// Query returns a query builder for Contractor.
func (c *ContractorClient) Query() *ContractorQuery {
	return &ContractorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContractor},
		inters: c.Interceptors(),
	}
}

// Get returns a Contractor entity by its id.
func (c *ContractorClient) Get(ctx context.Context, id uuid.UUID) (*Contractor, error) {
	return c.Query().Where(contractor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContractorClient) GetX(ctx context.Context, id uuid.UUID) *Contractor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Contractor.
func (c *ContractorClient) QueryProject(_m *Contractor) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contractor.Table, contractor.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contractor.ProjectTable, contractor.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContractorClient) Hooks() []Hook {
	return c.hooks.Contractor
}

// Interceptors returns the client interceptors.
func (c *ContractorClient) Interceptors() []Interceptor {
	return c.inters.Contractor
}

func (c *ContractorClient) mutate(ctx context.Context, m *ContractorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContractorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContractorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContractorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContractorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Contractor mutation op: %q", m.Op())
	}
}

// EditLockClient is a client for the EditLock schema.
type EditLockClient struct {
	config
}

// NewEditLockClient returns a client for the EditLock from the given config.
func NewEditLockClient(c config) *EditLockClient {
	return &EditLockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `editlock.Hooks(f(g(h())))`.
func (c *EditLockClient) Use(hooks ...Hook) {
	c.hooks.EditLock = append(c.hooks.EditLock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `editlock.Intercept(f(g(h())))`.
func (c *EditLockClient) Intercept(interceptors ...Interceptor) {
	c.inters.EditLock = append(c.inters.EditLock, interceptors...)
}

// Create returns a builder for creating a EditLock entity.
func (c *EditLockClient) Create() *EditLockCreate {
	mutation := newEditLockMutation(c.config, OpCreate)
	return &EditLockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EditLock entities.
func (c *EditLockClient) CreateBulk(builders ...*EditLockCreate) *EditLockCreateBulk {
	return &EditLockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EditLockClient) MapCreateBulk(slice any, setFunc func(*EditLockCreate, int)) *EditLockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EditLockCreateBulk{err: fmt.Errorf("calling to EditLockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EditLockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EditLockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EditLock.
func (c *EditLockClient) Update() *EditLockUpdate {
	mutation := newEditLockMutation(c.config, OpUpdate)
	return &EditLockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EditLockClient) UpdateOne(_m *EditLock) *EditLockUpdateOne {
	mutation := newEditLockMutation(c.config, OpUpdateOne, withEditLock(_m))
	return &EditLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EditLockClient) UpdateOneID(id uuid.UUID) *EditLockUpdateOne {
	mutation := newEditLockMutation(c.config, OpUpdateOne, withEditLockID(id))
	return &EditLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EditLock.
func (c *EditLockClient) Delete() *EditLockDelete {
	mutation := newEditLockMutation(c.config, OpDelete)
	return &EditLockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EditLockClient) DeleteOne(_m *EditLock) *EditLockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EditLockClient) DeleteOneID(id uuid.UUID) *EditLockDeleteOne {
	builder := c.Delete().Where(editlock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EditLockDeleteOne{builder}
}

// Query returns a query builder for EditLock.
func (c *EditLockClient) Query() *EditLockQuery {
	return &EditLockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEditLock},
		inters: c.Interceptors(),
	}
}

// Get returns a EditLock entity by its id.
func (c *EditLockClient) Get(ctx context.Context, id uuid.UUID) (*EditLock, error) {
	return c.Query().Where(editlock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EditLockClient) GetX(ctx context.Context, id uuid.UUID) *EditLock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EditLockClient) Hooks() []Hook {
	return c.hooks.EditLock
}

// Interceptors returns the client interceptors.
func (c *EditLockClient) Interceptors() []Interceptor {
	return c.inters.EditLock
}

func (c *EditLockClient) mutate(ctx context.Context, m *EditLockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EditLockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EditLockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EditLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EditLockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EditLock mutation op: %q", m.Op())
	}
}

// PhotoClient is a client for the Photo schema.
type PhotoClient struct {
	config
}

// NewPhotoClient returns a client for the Photo from the given config.
func NewPhotoClient(c config) *PhotoClient {
	return &PhotoClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `photo.Hooks(f(g(h())))`.
func (c *PhotoClient) Use(hooks ...Hook) {
	c.hooks.Photo = append(c.hooks.Photo, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `photo.Intercept(f(g(h())))`.
func (c *PhotoClient) Intercept(interceptors ...Interceptor) {
	c.inters.Photo = append(c.inters.Photo, interceptors...)
}

// Create returns a builder for creating a Photo entity.
func (c *PhotoClient) Create() *PhotoCreate {
	mutation := newPhotoMutation(c.config, OpCreate)
	return &PhotoCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Photo entities.
func (c *PhotoClient) CreateBulk(builders ...*PhotoCreate) *PhotoCreateBulk {
	return &PhotoCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PhotoClient) MapCreateBulk(slice any, setFunc func(*PhotoCreate, int)) *PhotoCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PhotoCreateBulk{err: fmt.Errorf("calling to PhotoClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PhotoCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PhotoCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Photo.
func (c *PhotoClient) Update() *PhotoUpdate {
	mutation := newPhotoMutation(c.config, OpUpdate)
	return &PhotoUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PhotoClient) UpdateOne(_m *Photo) *PhotoUpdateOne {
	mutation := newPhotoMutation(c.config, OpUpdateOne, withPhoto(_m))
	return &PhotoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PhotoClient) UpdateOneID(id uuid.UUID) *PhotoUpdateOne {
	mutation := newPhotoMutation(c.config, OpUpdateOne, withPhotoID(id))
	return &PhotoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Photo.
func (c *PhotoClient) Delete() *PhotoDelete {
	mutation := newPhotoMutation(c.config, OpDelete)
	return &PhotoDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PhotoClient) DeleteOne(_m *Photo) *PhotoDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PhotoClient) DeleteOneID(id uuid.UUID) *PhotoDeleteOne {
	builder := c.Delete().Where(photo.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PhotoDeleteOne{builder}
}

// Query returns a query builder for Photo.
func (c *PhotoClient) Query() *PhotoQuery {
	return &PhotoQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePhoto},
		inters: c.Interceptors(),
	}
}

// Get returns a Photo entity by its id.
func (c *PhotoClient) Get(ctx context.Context, id uuid.UUID) (*Photo, error) {
	return c.Query().Where(photo.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PhotoClient) GetX(ctx context.Context, id uuid.UUID) *Photo {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a Photo.
func (c *PhotoClient) QueryReport(_m *Photo) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(photo.Table, photo.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, photo.ReportTable, photo.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PhotoClient) Hooks() []Hook {
	return c.hooks.Photo
}

// Interceptors returns the client interceptors.
func (c *PhotoClient) Interceptors() []Interceptor {
	return c.inters.Photo
}

func (c *PhotoClient) mutate(ctx context.Context, m *PhotoMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PhotoCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PhotoUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PhotoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PhotoDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Photo mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id uuid.UUID) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id uuid.UUID) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id uuid.UUID) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id uuid.UUID) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryContractors queries the contractors edge of a Project.
func (c *ProjectClient) QueryContractors(_m *Project) *ContractorQuery {
	query := (&ContractorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(contractor.Table, contractor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.ContractorsTable, project.ContractorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReports queries the reports edge of a Project.
func (c *ProjectClient) QueryReports(_m *Project) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.ReportsTable, project.ReportsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// ReportClient is a client for the Report schema.
type ReportClient struct {
	config
}

// NewReportClient returns a client for the Report from the given config.
func NewReportClient(c config) *ReportClient {
	return &ReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `report.Hooks(f(g(h())))`.
func (c *ReportClient) Use(hooks ...Hook) {
	c.hooks.Report = append(c.hooks.Report, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `report.Intercept(f(g(h())))`.
func (c *ReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.Report = append(c.inters.Report, interceptors...)
}

// Create returns a builder for creating a Report entity.
func (c *ReportClient) Create() *ReportCreate {
	mutation := newReportMutation(c.config, OpCreate)
	return &ReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Report entities.
func (c *ReportClient) CreateBulk(builders ...*ReportCreate) *ReportCreateBulk {
	return &ReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportClient) MapCreateBulk(slice any, setFunc func(*ReportCreate, int)) *ReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportCreateBulk{err: fmt.Errorf("calling to ReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Report.
func (c *ReportClient) Update() *ReportUpdate {
	mutation := newReportMutation(c.config, OpUpdate)
	return &ReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportClient) UpdateOne(_m *Report) *ReportUpdateOne {
	mutation := newReportMutation(c.config, OpUpdateOne, withReport(_m))
	return &ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportClient) UpdateOneID(id uuid.UUID) *ReportUpdateOne {
	mutation := newReportMutation(c.config, OpUpdateOne, withReportID(id))
	return &ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Report.
func (c *ReportClient) Delete() *ReportDelete {
	mutation := newReportMutation(c.config, OpDelete)
	return &ReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportClient) DeleteOne(_m *Report) *ReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportClient) DeleteOneID(id uuid.UUID) *ReportDeleteOne {
	builder := c.Delete().Where(report.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportDeleteOne{builder}
}

// Query returns a query builder for Report.
func (c *ReportClient) Query() *ReportQuery {
	return &ReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReport},
		inters: c.Interceptors(),
	}
}

// Get returns a Report entity by its id.
func (c *ReportClient) Get(ctx context.Context, id uuid.UUID) (*Report, error) {
	return c.Query().Where(report.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportClient) GetX(ctx context.Context, id uuid.UUID) *Report {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Report.
func (c *ReportClient) QueryProject(_m *Report) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, report.ProjectTable, report.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEntries queries the entries edge of a Report.
func (c *ReportClient) QueryEntries(_m *Report) *ReportEntryQuery {
	query := (&ReportEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(reportentry.Table, reportentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.EntriesTable, report.EntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPhotos queries the photos edge of a Report.
func (c *ReportClient) QueryPhotos(_m *Report) *PhotoQuery {
	query := (&PhotoClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(photo.Table, photo.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.PhotosTable, report.PhotosColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReportClient) Hooks() []Hook {
	return c.hooks.Report
}

// Interceptors returns the client interceptors.
func (c *ReportClient) Interceptors() []Interceptor {
	return c.inters.Report
}

func (c *ReportClient) mutate(ctx context.Context, m *ReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Report mutation op: %q", m.Op())
	}
}

// ReportEntryClient is a client for the ReportEntry schema.
type ReportEntryClient struct {
	config
}

// NewReportEntryClient returns a client for the ReportEntry from the given config.
func NewReportEntryClient(c config) *ReportEntryClient {
	return &ReportEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reportentry.Hooks(f(g(h())))`.
func (c *ReportEntryClient) Use(hooks ...Hook) {
	c.hooks.ReportEntry = append(c.hooks.ReportEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reportentry.Intercept(f(g(h())))`.
func (c *ReportEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReportEntry = append(c.inters.ReportEntry, interceptors...)
}

// Create returns a builder for creating a ReportEntry entity.
func (c *ReportEntryClient) Create() *ReportEntryCreate {
	mutation := newReportEntryMutation(c.config, OpCreate)
	return &ReportEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReportEntry entities.
func (c *ReportEntryClient) CreateBulk(builders ...*ReportEntryCreate) *ReportEntryCreateBulk {
	return &ReportEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportEntryClient) MapCreateBulk(slice any, setFunc func(*ReportEntryCreate, int)) *ReportEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportEntryCreateBulk{err: fmt.Errorf("calling to ReportEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReportEntry.
func (c *ReportEntryClient) Update() *ReportEntryUpdate {
	mutation := newReportEntryMutation(c.config, OpUpdate)
	return &ReportEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportEntryClient) UpdateOne(_m *ReportEntry) *ReportEntryUpdateOne {
	mutation := newReportEntryMutation(c.config, OpUpdateOne, withReportEntry(_m))
	return &ReportEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportEntryClient) UpdateOneID(id uuid.UUID) *ReportEntryUpdateOne {
	mutation := newReportEntryMutation(c.config, OpUpdateOne, withReportEntryID(id))
	return &ReportEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReportEntry.
func (c *ReportEntryClient) Delete() *ReportEntryDelete {
	mutation := newReportEntryMutation(c.config, OpDelete)
	return &ReportEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportEntryClient) DeleteOne(_m *ReportEntry) *ReportEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportEntryClient) DeleteOneID(id uuid.UUID) *ReportEntryDeleteOne {
	builder := c.Delete().Where(reportentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportEntryDeleteOne{builder}
}

// Query returns a query builder for ReportEntry.
func (c *ReportEntryClient) Query() *ReportEntryQuery {
	return &ReportEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReportEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a ReportEntry entity by its id.
func (c *ReportEntryClient) Get(ctx context.Context, id uuid.UUID) (*ReportEntry, error) {
	return c.Query().Where(reportentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportEntryClient) GetX(ctx context.Context, id uuid.UUID) *ReportEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a ReportEntry.
func (c *ReportEntryClient) QueryReport(_m *ReportEntry) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reportentry.Table, reportentry.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reportentry.ReportTable, reportentry.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReportEntryClient) Hooks() []Hook {
	return c.hooks.ReportEntry
}

// Interceptors returns the client interceptors.
func (c *ReportEntryClient) Interceptors() []Interceptor {
	return c.inters.ReportEntry
}

func (c *ReportEntryClient) mutate(ctx context.Context, m *ReportEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReportEntry mutation op: %q", m.Op())
	}
}

// ReportRawCaptureClient is a client for the ReportRawCapture schema.
type ReportRawCaptureClient struct {
	config
}

// NewReportRawCaptureClient returns a client for the ReportRawCapture from the given config.
func NewReportRawCaptureClient(c config) *ReportRawCaptureClient {
	return &ReportRawCaptureClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reportrawcapture.Hooks(f(g(h())))`.
func (c *ReportRawCaptureClient) Use(hooks ...Hook) {
	c.hooks.ReportRawCapture = append(c.hooks.ReportRawCapture, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reportrawcapture.Intercept(f(g(h())))`.
func (c *ReportRawCaptureClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReportRawCapture = append(c.inters.ReportRawCapture, interceptors...)
}

// Create returns a builder for creating a ReportRawCapture entity.
func (c *ReportRawCaptureClient) Create() *ReportRawCaptureCreate {
	mutation := newReportRawCaptureMutation(c.config, OpCreate)
	return &ReportRawCaptureCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReportRawCapture entities.
func (c *ReportRawCaptureClient) CreateBulk(builders ...*ReportRawCaptureCreate) *ReportRawCaptureCreateBulk {
	return &ReportRawCaptureCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportRawCaptureClient) MapCreateBulk(slice any, setFunc func(*ReportRawCaptureCreate, int)) *ReportRawCaptureCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportRawCaptureCreateBulk{err: fmt.Errorf("calling to ReportRawCaptureClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportRawCaptureCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportRawCaptureCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReportRawCapture.
func (c *ReportRawCaptureClient) Update() *ReportRawCaptureUpdate {
	mutation := newReportRawCaptureMutation(c.config, OpUpdate)
	return &ReportRawCaptureUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportRawCaptureClient) UpdateOne(_m *ReportRawCapture) *ReportRawCaptureUpdateOne {
	mutation := newReportRawCaptureMutation(c.config, OpUpdateOne, withReportRawCapture(_m))
	return &ReportRawCaptureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportRawCaptureClient) UpdateOneID(id uuid.UUID) *ReportRawCaptureUpdateOne {
	mutation := newReportRawCaptureMutation(c.config, OpUpdateOne, withReportRawCaptureID(id))
	return &ReportRawCaptureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReportRawCapture.
func (c *ReportRawCaptureClient) Delete() *ReportRawCaptureDelete {
	mutation := newReportRawCaptureMutation(c.config, OpDelete)
	return &ReportRawCaptureDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportRawCaptureClient) DeleteOne(_m *ReportRawCapture) *ReportRawCaptureDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportRawCaptureClient) DeleteOneID(id uuid.UUID) *ReportRawCaptureDeleteOne {
	builder := c.Delete().Where(reportrawcapture.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportRawCaptureDeleteOne{builder}
}

// Query returns a query builder for ReportRawCapture.
func (c *ReportRawCaptureClient) Query() *ReportRawCaptureQuery {
	return &ReportRawCaptureQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReportRawCapture},
		inters: c.Interceptors(),
	}
}

// Get returns a ReportRawCapture entity by its id.
func (c *ReportRawCaptureClient) Get(ctx context.Context, id uuid.UUID) (*ReportRawCapture, error) {
	return c.Query().Where(reportrawcapture.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportRawCaptureClient) GetX(ctx context.Context, id uuid.UUID) *ReportRawCapture {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReportRawCaptureClient) Hooks() []Hook {
	return c.hooks.ReportRawCapture
}

// Interceptors returns the client interceptors.
func (c *ReportRawCaptureClient) Interceptors() []Interceptor {
	return c.inters.ReportRawCapture
}

func (c *ReportRawCaptureClient) mutate(ctx context.Context, m *ReportRawCaptureMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportRawCaptureCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportRawCaptureUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportRawCaptureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportRawCaptureDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReportRawCapture mutation op: %q", m.Op())
	}
}

// UserProfileClient is a client for the UserProfile schema.
type UserProfileClient struct {
	config
}

// NewUserProfileClient returns a client for the UserProfile from the given config.
func NewUserProfileClient(c config) *UserProfileClient {
	return &UserProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userprofile.Hooks(f(g(h())))`.
func (c *UserProfileClient) Use(hooks ...Hook) {
	c.hooks.UserProfile = append(c.hooks.UserProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userprofile.Intercept(f(g(h())))`.
func (c *UserProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserProfile = append(c.inters.UserProfile, interceptors...)
}

// Create returns a builder for creating a UserProfile entity.
func (c *UserProfileClient) Create() *UserProfileCreate {
	mutation := newUserProfileMutation(c.config, OpCreate)
	return &UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserProfile entities.
func (c *UserProfileClient) CreateBulk(builders ...*UserProfileCreate) *UserProfileCreateBulk {
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserProfileClient) MapCreateBulk(slice any, setFunc func(*UserProfileCreate, int)) *UserProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserProfileCreateBulk{err: fmt.Errorf("calling to UserProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserProfile.
func (c *UserProfileClient) Update() *UserProfileUpdate {
	mutation := newUserProfileMutation(c.config, OpUpdate)
	return &UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserProfileClient) UpdateOne(_m *UserProfile) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfile(_m))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserProfileClient) UpdateOneID(id uuid.UUID) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfileID(id))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserProfile.
func (c *UserProfileClient) Delete() *UserProfileDelete {
	mutation := newUserProfileMutation(c.config, OpDelete)
	return &UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserProfileClient) DeleteOne(_m *UserProfile) *UserProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserProfileClient) DeleteOneID(id uuid.UUID) *UserProfileDeleteOne {
	builder := c.Delete().Where(userprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserProfileDeleteOne{builder}
}

// Query returns a query builder for UserProfile.
func (c *UserProfileClient) Query() *UserProfileQuery {
	return &UserProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a UserProfile entity by its id.
func (c *UserProfileClient) Get(ctx context.Context, id uuid.UUID) (*UserProfile, error) {
	return c.Query().Where(userprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserProfileClient) GetX(ctx context.Context, id uuid.UUID) *UserProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserProfileClient) Hooks() []Hook {
	return c.hooks.UserProfile
}

// Interceptors returns the client interceptors.
func (c *UserProfileClient) Interceptors() []Interceptor {
	return c.inters.UserProfile
}

func (c *UserProfileClient) mutate(ctx context.Context, m *UserProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserProfile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Contractor, EditLock, Photo, Project, Report, ReportEntry, ReportRawCapture,
		UserProfile []ent.Hook
	}
	inters struct {
		Contractor, EditLock, Photo, Project, Report, ReportEntry, ReportRawCapture,
		UserProfile []ent.Interceptor
	}
)
