// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fieldlog/fieldlog/gen/ent/reportrawcapture"
	"github.com/google/uuid"
)

// ReportRawCaptureCreate is the builder for creating a ReportRawCapture entity.
type ReportRawCaptureCreate struct {
	config
	mutation *ReportRawCaptureMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetReportID sets the "report_id" field.
func (_c *ReportRawCaptureCreate) SetReportID(v uuid.UUID) *ReportRawCaptureCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetCaptureMode sets the "capture_mode" field.
func (_c *ReportRawCaptureCreate) SetCaptureMode(v string) *ReportRawCaptureCreate {
	_c.mutation.SetCaptureMode(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ReportRawCaptureCreate) SetPayload(v map[string]interface{}) *ReportRawCaptureCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReportRawCaptureCreate) SetCreatedAt(v time.Time) *ReportRawCaptureCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReportRawCaptureCreate) SetNillableCreatedAt(v *time.Time) *ReportRawCaptureCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReportRawCaptureCreate) SetID(v uuid.UUID) *ReportRawCaptureCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReportRawCaptureCreate) SetNillableID(v *uuid.UUID) *ReportRawCaptureCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ReportRawCaptureMutation object of the builder.
func (_c *ReportRawCaptureCreate) Mutation() *ReportRawCaptureMutation {
	return _c.mutation
}

// Save creates the ReportRawCapture in the database.
func (_c *ReportRawCaptureCreate) Save(ctx context.Context) (*ReportRawCapture, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportRawCaptureCreate) SaveX(ctx context.Context) *ReportRawCapture {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportRawCaptureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportRawCaptureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportRawCaptureCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reportrawcapture.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reportrawcapture.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportRawCaptureCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "ReportRawCapture.report_id"`)}
	}
	if _, ok := _c.mutation.CaptureMode(); !ok {
		return &ValidationError{Name: "capture_mode", err: errors.New(`ent: missing required field "ReportRawCapture.capture_mode"`)}
	}
	if v, ok := _c.mutation.CaptureMode(); ok {
		if err := reportrawcapture.CaptureModeValidator(v); err != nil {
			return &ValidationError{Name: "capture_mode", err: fmt.Errorf(`ent: validator failed for field "ReportRawCapture.capture_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "ReportRawCapture.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReportRawCapture.created_at"`)}
	}
	return nil
}

func (_c *ReportRawCaptureCreate) sqlSave(ctx context.Context) (*ReportRawCapture, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReportRawCaptureCreate) createSpec() (*ReportRawCapture, *sqlgraph.CreateSpec) {
	var (
		_node = &ReportRawCapture{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reportrawcapture.Table, sqlgraph.NewFieldSpec(reportrawcapture.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ReportID(); ok {
		_spec.SetField(reportrawcapture.FieldReportID, field.TypeUUID, value)
		_node.ReportID = value
	}
	if value, ok := _c.mutation.CaptureMode(); ok {
		_spec.SetField(reportrawcapture.FieldCaptureMode, field.TypeString, value)
		_node.CaptureMode = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(reportrawcapture.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reportrawcapture.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReportRawCapture.Create().
//		SetReportID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportRawCaptureUpsert) {
//			SetReportID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportRawCaptureCreate) OnConflict(opts ...sql.ConflictOption) *ReportRawCaptureUpsertOne {
	_c.conflict = opts
	return &ReportRawCaptureUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReportRawCapture.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportRawCaptureCreate) OnConflictColumns(columns ...string) *ReportRawCaptureUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportRawCaptureUpsertOne{
		create: _c,
	}
}

type (
	// ReportRawCaptureUpsertOne is the builder for "upsert"-ing
	//  one ReportRawCapture node.
	ReportRawCaptureUpsertOne struct {
		create *ReportRawCaptureCreate
	}

	// ReportRawCaptureUpsert is the "OnConflict" setter.
	ReportRawCaptureUpsert struct {
		*sql.UpdateSet
	}
)

// SetReportID sets the "report_id" field.
func (u *ReportRawCaptureUpsert) SetReportID(v uuid.UUID) *ReportRawCaptureUpsert {
	u.Set(reportrawcapture.FieldReportID, v)
	return u
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *ReportRawCaptureUpsert) UpdateReportID() *ReportRawCaptureUpsert {
	u.SetExcluded(reportrawcapture.FieldReportID)
	return u
}

// SetCaptureMode sets the "capture_mode" field.
func (u *ReportRawCaptureUpsert) SetCaptureMode(v string) *ReportRawCaptureUpsert {
	u.Set(reportrawcapture.FieldCaptureMode, v)
	return u
}

// UpdateCaptureMode sets the "capture_mode" field to the value that was provided on create.
func (u *ReportRawCaptureUpsert) UpdateCaptureMode() *ReportRawCaptureUpsert {
	u.SetExcluded(reportrawcapture.FieldCaptureMode)
	return u
}

// SetPayload sets the "payload" field.
func (u *ReportRawCaptureUpsert) SetPayload(v map[string]interface{}) *ReportRawCaptureUpsert {
	u.Set(reportrawcapture.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *ReportRawCaptureUpsert) UpdatePayload() *ReportRawCaptureUpsert {
	u.SetExcluded(reportrawcapture.FieldPayload)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ReportRawCaptureUpsert) SetCreatedAt(v time.Time) *ReportRawCaptureUpsert {
	u.Set(reportrawcapture.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReportRawCaptureUpsert) UpdateCreatedAt() *ReportRawCaptureUpsert {
	u.SetExcluded(reportrawcapture.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ReportRawCapture.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reportrawcapture.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportRawCaptureUpsertOne) UpdateNewValues() *ReportRawCaptureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(reportrawcapture.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReportRawCapture.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReportRawCaptureUpsertOne) Ignore() *ReportRawCaptureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportRawCaptureUpsertOne) DoNothing() *ReportRawCaptureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportRawCaptureCreate.OnConflict
// documentation for more info.
func (u *ReportRawCaptureUpsertOne) Update(set func(*ReportRawCaptureUpsert)) *ReportRawCaptureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportRawCaptureUpsert{UpdateSet: update})
	}))
	return u
}

// SetReportID sets the "report_id" field.
func (u *ReportRawCaptureUpsertOne) SetReportID(v uuid.UUID) *ReportRawCaptureUpsertOne {
	return u.Update(func(s *ReportRawCaptureUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *ReportRawCaptureUpsertOne) UpdateReportID() *ReportRawCaptureUpsertOne {
	return u.Update(func(s *ReportRawCaptureUpsert) {
		s.UpdateReportID()
	})
}

// SetCaptureMode sets the "capture_mode" field.
func (u *ReportRawCaptureUpsertOne) SetCaptureMode(v string) *ReportRawCaptureUpsertOne {
	return u.Update(func(s *ReportRawCaptureUpsert) {
		s.SetCaptureMode(v)
	})
}

// UpdateCaptureMode sets the "capture_mode" field to the value that was provided on create.
func (u *ReportRawCaptureUpsertOne) UpdateCaptureMode() *ReportRawCaptureUpsertOne {
	return u.Update(func(s *ReportRawCaptureUpsert) {
		s.UpdateCaptureMode()
	})
}

// SetPayload sets the "payload" field.
func (u *ReportRawCaptureUpsertOne) SetPayload(v map[string]interface{}) *ReportRawCaptureUpsertOne {
	return u.Update(func(s *ReportRawCaptureUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *ReportRawCaptureUpsertOne) UpdatePayload() *ReportRawCaptureUpsertOne {
	return u.Update(func(s *ReportRawCaptureUpsert) {
		s.UpdatePayload()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ReportRawCaptureUpsertOne) SetCreatedAt(v time.Time) *ReportRawCaptureUpsertOne {
	return u.Update(func(s *ReportRawCaptureUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReportRawCaptureUpsertOne) UpdateCreatedAt() *ReportRawCaptureUpsertOne {
	return u.Update(func(s *ReportRawCaptureUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *ReportRawCaptureUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReportRawCaptureCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportRawCaptureUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReportRawCaptureUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ReportRawCaptureUpsertOne.ID is not supported by MySQL driver. Use ReportRawCaptureUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReportRawCaptureUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReportRawCaptureCreateBulk is the builder for creating many ReportRawCapture entities in bulk.
type ReportRawCaptureCreateBulk struct {
	config
	err      error
	builders []*ReportRawCaptureCreate
	conflict []sql.ConflictOption
}

// Save creates the ReportRawCapture entities in the database.
func (_c *ReportRawCaptureCreateBulk) Save(ctx context.Context) ([]*ReportRawCapture, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReportRawCapture, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportRawCaptureMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReportRawCaptureCreateBulk) SaveX(ctx context.Context) []*ReportRawCapture {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportRawCaptureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportRawCaptureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReportRawCapture.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportRawCaptureUpsert) {
//			SetReportID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportRawCaptureCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReportRawCaptureUpsertBulk {
	_c.conflict = opts
	return &ReportRawCaptureUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReportRawCapture.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportRawCaptureCreateBulk) OnConflictColumns(columns ...string) *ReportRawCaptureUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportRawCaptureUpsertBulk{
		create: _c,
	}
}

// ReportRawCaptureUpsertBulk is the builder for "upsert"-ing
// a bulk of ReportRawCapture nodes.
type ReportRawCaptureUpsertBulk struct {
	create *ReportRawCaptureCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReportRawCapture.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reportrawcapture.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportRawCaptureUpsertBulk) UpdateNewValues() *ReportRawCaptureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(reportrawcapture.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReportRawCapture.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReportRawCaptureUpsertBulk) Ignore() *ReportRawCaptureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportRawCaptureUpsertBulk) DoNothing() *ReportRawCaptureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportRawCaptureCreateBulk.OnConflict
// documentation for more info.
func (u *ReportRawCaptureUpsertBulk) Update(set func(*ReportRawCaptureUpsert)) *ReportRawCaptureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportRawCaptureUpsert{UpdateSet: update})
	}))
	return u
}

// SetReportID sets the "report_id" field.
func (u *ReportRawCaptureUpsertBulk) SetReportID(v uuid.UUID) *ReportRawCaptureUpsertBulk {
	return u.Update(func(s *ReportRawCaptureUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *ReportRawCaptureUpsertBulk) UpdateReportID() *ReportRawCaptureUpsertBulk {
	return u.Update(func(s *ReportRawCaptureUpsert) {
		s.UpdateReportID()
	})
}

// SetCaptureMode sets the "capture_mode" field.
func (u *ReportRawCaptureUpsertBulk) SetCaptureMode(v string) *ReportRawCaptureUpsertBulk {
	return u.Update(func(s *ReportRawCaptureUpsert) {
		s.SetCaptureMode(v)
	})
}

// UpdateCaptureMode sets the "capture_mode" field to the value that was provided on create.
func (u *ReportRawCaptureUpsertBulk) UpdateCaptureMode() *ReportRawCaptureUpsertBulk {
	return u.Update(func(s *ReportRawCaptureUpsert) {
		s.UpdateCaptureMode()
	})
}

// SetPayload sets the "payload" field.
func (u *ReportRawCaptureUpsertBulk) SetPayload(v map[string]interface{}) *ReportRawCaptureUpsertBulk {
	return u.Update(func(s *ReportRawCaptureUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *ReportRawCaptureUpsertBulk) UpdatePayload() *ReportRawCaptureUpsertBulk {
	return u.Update(func(s *ReportRawCaptureUpsert) {
		s.UpdatePayload()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ReportRawCaptureUpsertBulk) SetCreatedAt(v time.Time) *ReportRawCaptureUpsertBulk {
	return u.Update(func(s *ReportRawCaptureUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReportRawCaptureUpsertBulk) UpdateCreatedAt() *ReportRawCaptureUpsertBulk {
	return u.Update(func(s *ReportRawCaptureUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *ReportRawCaptureUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReportRawCaptureCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReportRawCaptureCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportRawCaptureUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
