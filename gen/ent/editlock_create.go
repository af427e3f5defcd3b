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
	"github.com/fieldlog/fieldlog/gen/ent/editlock"
	"github.com/google/uuid"
)

// EditLockCreate is the builder for creating a EditLock entity.
type EditLockCreate struct {
	config
	mutation *EditLockMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *EditLockCreate) SetProjectID(v uuid.UUID) *EditLockCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetReportDate sets the "report_date" field.
func (_c *EditLockCreate) SetReportDate(v time.Time) *EditLockCreate {
	_c.mutation.SetReportDate(v)
	return _c
}

// SetDeviceID sets the "device_id" field.
func (_c *EditLockCreate) SetDeviceID(v string) *EditLockCreate {
	_c.mutation.SetDeviceID(v)
	return _c
}

// SetHolderName sets the "holder_name" field.
func (_c *EditLockCreate) SetHolderName(v string) *EditLockCreate {
	_c.mutation.SetHolderName(v)
	return _c
}

// SetNillableHolderName sets the "holder_name" field if the given value is not nil.
func (_c *EditLockCreate) SetNillableHolderName(v *string) *EditLockCreate {
	if v != nil {
		_c.SetHolderName(*v)
	}
	return _c
}

// SetAcquiredAt sets the "acquired_at" field.
func (_c *EditLockCreate) SetAcquiredAt(v time.Time) *EditLockCreate {
	_c.mutation.SetAcquiredAt(v)
	return _c
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_c *EditLockCreate) SetNillableAcquiredAt(v *time.Time) *EditLockCreate {
	if v != nil {
		_c.SetAcquiredAt(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *EditLockCreate) SetHeartbeatAt(v time.Time) *EditLockCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *EditLockCreate) SetNillableHeartbeatAt(v *time.Time) *EditLockCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EditLockCreate) SetID(v uuid.UUID) *EditLockCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EditLockCreate) SetNillableID(v *uuid.UUID) *EditLockCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the EditLockMutation object of the builder.
func (_c *EditLockCreate) Mutation() *EditLockMutation {
	return _c.mutation
}

// Save creates the EditLock in the database.
func (_c *EditLockCreate) Save(ctx context.Context) (*EditLock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EditLockCreate) SaveX(ctx context.Context) *EditLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EditLockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EditLockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EditLockCreate) defaults() {
	if _, ok := _c.mutation.HolderName(); !ok {
		v := editlock.DefaultHolderName
		_c.mutation.SetHolderName(v)
	}
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		v := editlock.DefaultAcquiredAt()
		_c.mutation.SetAcquiredAt(v)
	}
	if _, ok := _c.mutation.HeartbeatAt(); !ok {
		v := editlock.DefaultHeartbeatAt()
		_c.mutation.SetHeartbeatAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := editlock.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EditLockCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "EditLock.project_id"`)}
	}
	if _, ok := _c.mutation.ReportDate(); !ok {
		return &ValidationError{Name: "report_date", err: errors.New(`ent: missing required field "EditLock.report_date"`)}
	}
	if _, ok := _c.mutation.DeviceID(); !ok {
		return &ValidationError{Name: "device_id", err: errors.New(`ent: missing required field "EditLock.device_id"`)}
	}
	if v, ok := _c.mutation.DeviceID(); ok {
		if err := editlock.DeviceIDValidator(v); err != nil {
			return &ValidationError{Name: "device_id", err: fmt.Errorf(`ent: validator failed for field "EditLock.device_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HolderName(); !ok {
		return &ValidationError{Name: "holder_name", err: errors.New(`ent: missing required field "EditLock.holder_name"`)}
	}
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		return &ValidationError{Name: "acquired_at", err: errors.New(`ent: missing required field "EditLock.acquired_at"`)}
	}
	if _, ok := _c.mutation.HeartbeatAt(); !ok {
		return &ValidationError{Name: "heartbeat_at", err: errors.New(`ent: missing required field "EditLock.heartbeat_at"`)}
	}
	return nil
}

func (_c *EditLockCreate) sqlSave(ctx context.Context) (*EditLock, error) {
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

func (_c *EditLockCreate) createSpec() (*EditLock, *sqlgraph.CreateSpec) {
	var (
		_node = &EditLock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(editlock.Table, sqlgraph.NewFieldSpec(editlock.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(editlock.FieldProjectID, field.TypeUUID, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.ReportDate(); ok {
		_spec.SetField(editlock.FieldReportDate, field.TypeTime, value)
		_node.ReportDate = value
	}
	if value, ok := _c.mutation.DeviceID(); ok {
		_spec.SetField(editlock.FieldDeviceID, field.TypeString, value)
		_node.DeviceID = value
	}
	if value, ok := _c.mutation.HolderName(); ok {
		_spec.SetField(editlock.FieldHolderName, field.TypeString, value)
		_node.HolderName = value
	}
	if value, ok := _c.mutation.AcquiredAt(); ok {
		_spec.SetField(editlock.FieldAcquiredAt, field.TypeTime, value)
		_node.AcquiredAt = value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(editlock.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EditLock.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EditLockUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *EditLockCreate) OnConflict(opts ...sql.ConflictOption) *EditLockUpsertOne {
	_c.conflict = opts
	return &EditLockUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EditLock.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EditLockCreate) OnConflictColumns(columns ...string) *EditLockUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EditLockUpsertOne{
		create: _c,
	}
}

type (
	// EditLockUpsertOne is the builder for "upsert"-ing
	//  one EditLock node.
	EditLockUpsertOne struct {
		create *EditLockCreate
	}

	// EditLockUpsert is the "OnConflict" setter.
	EditLockUpsert struct {
		*sql.UpdateSet
	}
)

// SetProjectID sets the "project_id" field.
func (u *EditLockUpsert) SetProjectID(v uuid.UUID) *EditLockUpsert {
	u.Set(editlock.FieldProjectID, v)
	return u
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *EditLockUpsert) UpdateProjectID() *EditLockUpsert {
	u.SetExcluded(editlock.FieldProjectID)
	return u
}

// SetReportDate sets the "report_date" field.
func (u *EditLockUpsert) SetReportDate(v time.Time) *EditLockUpsert {
	u.Set(editlock.FieldReportDate, v)
	return u
}

// UpdateReportDate sets the "report_date" field to the value that was provided on create.
func (u *EditLockUpsert) UpdateReportDate() *EditLockUpsert {
	u.SetExcluded(editlock.FieldReportDate)
	return u
}

// SetDeviceID sets the "device_id" field.
func (u *EditLockUpsert) SetDeviceID(v string) *EditLockUpsert {
	u.Set(editlock.FieldDeviceID, v)
	return u
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *EditLockUpsert) UpdateDeviceID() *EditLockUpsert {
	u.SetExcluded(editlock.FieldDeviceID)
	return u
}

// SetHolderName sets the "holder_name" field.
func (u *EditLockUpsert) SetHolderName(v string) *EditLockUpsert {
	u.Set(editlock.FieldHolderName, v)
	return u
}

// UpdateHolderName sets the "holder_name" field to the value that was provided on create.
func (u *EditLockUpsert) UpdateHolderName() *EditLockUpsert {
	u.SetExcluded(editlock.FieldHolderName)
	return u
}

// SetAcquiredAt sets the "acquired_at" field.
func (u *EditLockUpsert) SetAcquiredAt(v time.Time) *EditLockUpsert {
	u.Set(editlock.FieldAcquiredAt, v)
	return u
}

// UpdateAcquiredAt sets the "acquired_at" field to the value that was provided on create.
func (u *EditLockUpsert) UpdateAcquiredAt() *EditLockUpsert {
	u.SetExcluded(editlock.FieldAcquiredAt)
	return u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *EditLockUpsert) SetHeartbeatAt(v time.Time) *EditLockUpsert {
	u.Set(editlock.FieldHeartbeatAt, v)
	return u
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *EditLockUpsert) UpdateHeartbeatAt() *EditLockUpsert {
	u.SetExcluded(editlock.FieldHeartbeatAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EditLock.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(editlock.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EditLockUpsertOne) UpdateNewValues() *EditLockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(editlock.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EditLock.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EditLockUpsertOne) Ignore() *EditLockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EditLockUpsertOne) DoNothing() *EditLockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EditLockCreate.OnConflict
// documentation for more info.
func (u *EditLockUpsertOne) Update(set func(*EditLockUpsert)) *EditLockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EditLockUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *EditLockUpsertOne) SetProjectID(v uuid.UUID) *EditLockUpsertOne {
	return u.Update(func(s *EditLockUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *EditLockUpsertOne) UpdateProjectID() *EditLockUpsertOne {
	return u.Update(func(s *EditLockUpsert) {
		s.UpdateProjectID()
	})
}

// SetReportDate sets the "report_date" field.
func (u *EditLockUpsertOne) SetReportDate(v time.Time) *EditLockUpsertOne {
	return u.Update(func(s *EditLockUpsert) {
		s.SetReportDate(v)
	})
}

// UpdateReportDate sets the "report_date" field to the value that was provided on create.
func (u *EditLockUpsertOne) UpdateReportDate() *EditLockUpsertOne {
	return u.Update(func(s *EditLockUpsert) {
		s.UpdateReportDate()
	})
}

// SetDeviceID sets the "device_id" field.
func (u *EditLockUpsertOne) SetDeviceID(v string) *EditLockUpsertOne {
	return u.Update(func(s *EditLockUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *EditLockUpsertOne) UpdateDeviceID() *EditLockUpsertOne {
	return u.Update(func(s *EditLockUpsert) {
		s.UpdateDeviceID()
	})
}

// SetHolderName sets the "holder_name" field.
func (u *EditLockUpsertOne) SetHolderName(v string) *EditLockUpsertOne {
	return u.Update(func(s *EditLockUpsert) {
		s.SetHolderName(v)
	})
}

// UpdateHolderName sets the "holder_name" field to the value that was provided on create.
func (u *EditLockUpsertOne) UpdateHolderName() *EditLockUpsertOne {
	return u.Update(func(s *EditLockUpsert) {
		s.UpdateHolderName()
	})
}

// SetAcquiredAt sets the "acquired_at" field.
func (u *EditLockUpsertOne) SetAcquiredAt(v time.Time) *EditLockUpsertOne {
	return u.Update(func(s *EditLockUpsert) {
		s.SetAcquiredAt(v)
	})
}

// UpdateAcquiredAt sets the "acquired_at" field to the value that was provided on create.
func (u *EditLockUpsertOne) UpdateAcquiredAt() *EditLockUpsertOne {
	return u.Update(func(s *EditLockUpsert) {
		s.UpdateAcquiredAt()
	})
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *EditLockUpsertOne) SetHeartbeatAt(v time.Time) *EditLockUpsertOne {
	return u.Update(func(s *EditLockUpsert) {
		s.SetHeartbeatAt(v)
	})
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *EditLockUpsertOne) UpdateHeartbeatAt() *EditLockUpsertOne {
	return u.Update(func(s *EditLockUpsert) {
		s.UpdateHeartbeatAt()
	})
}

// Exec executes the query.
func (u *EditLockUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EditLockCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EditLockUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EditLockUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EditLockUpsertOne.ID is not supported by MySQL driver. Use EditLockUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EditLockUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EditLockCreateBulk is the builder for creating many EditLock entities in bulk.
type EditLockCreateBulk struct {
	config
	err      error
	builders []*EditLockCreate
	conflict []sql.ConflictOption
}

// Save creates the EditLock entities in the database.
func (_c *EditLockCreateBulk) Save(ctx context.Context) ([]*EditLock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EditLock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EditLockMutation)
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
func (_c *EditLockCreateBulk) SaveX(ctx context.Context) []*EditLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EditLockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EditLockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EditLock.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EditLockUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *EditLockCreateBulk) OnConflict(opts ...sql.ConflictOption) *EditLockUpsertBulk {
	_c.conflict = opts
	return &EditLockUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EditLock.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EditLockCreateBulk) OnConflictColumns(columns ...string) *EditLockUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EditLockUpsertBulk{
		create: _c,
	}
}

// EditLockUpsertBulk is the builder for "upsert"-ing
// a bulk of EditLock nodes.
type EditLockUpsertBulk struct {
	create *EditLockCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EditLock.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(editlock.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EditLockUpsertBulk) UpdateNewValues() *EditLockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(editlock.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EditLock.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EditLockUpsertBulk) Ignore() *EditLockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EditLockUpsertBulk) DoNothing() *EditLockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EditLockCreateBulk.OnConflict
// documentation for more info.
func (u *EditLockUpsertBulk) Update(set func(*EditLockUpsert)) *EditLockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EditLockUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *EditLockUpsertBulk) SetProjectID(v uuid.UUID) *EditLockUpsertBulk {
	return u.Update(func(s *EditLockUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *EditLockUpsertBulk) UpdateProjectID() *EditLockUpsertBulk {
	return u.Update(func(s *EditLockUpsert) {
		s.UpdateProjectID()
	})
}

// SetReportDate sets the "report_date" field.
func (u *EditLockUpsertBulk) SetReportDate(v time.Time) *EditLockUpsertBulk {
	return u.Update(func(s *EditLockUpsert) {
		s.SetReportDate(v)
	})
}

// UpdateReportDate sets the "report_date" field to the value that was provided on create.
func (u *EditLockUpsertBulk) UpdateReportDate() *EditLockUpsertBulk {
	return u.Update(func(s *EditLockUpsert) {
		s.UpdateReportDate()
	})
}

// SetDeviceID sets the "device_id" field.
func (u *EditLockUpsertBulk) SetDeviceID(v string) *EditLockUpsertBulk {
	return u.Update(func(s *EditLockUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *EditLockUpsertBulk) UpdateDeviceID() *EditLockUpsertBulk {
	return u.Update(func(s *EditLockUpsert) {
		s.UpdateDeviceID()
	})
}

// SetHolderName sets the "holder_name" field.
func (u *EditLockUpsertBulk) SetHolderName(v string) *EditLockUpsertBulk {
	return u.Update(func(s *EditLockUpsert) {
		s.SetHolderName(v)
	})
}

// UpdateHolderName sets the "holder_name" field to the value that was provided on create.
func (u *EditLockUpsertBulk) UpdateHolderName() *EditLockUpsertBulk {
	return u.Update(func(s *EditLockUpsert) {
		s.UpdateHolderName()
	})
}

// SetAcquiredAt sets the "acquired_at" field.
func (u *EditLockUpsertBulk) SetAcquiredAt(v time.Time) *EditLockUpsertBulk {
	return u.Update(func(s *EditLockUpsert) {
		s.SetAcquiredAt(v)
	})
}

// UpdateAcquiredAt sets the "acquired_at" field to the value that was provided on create.
func (u *EditLockUpsertBulk) UpdateAcquiredAt() *EditLockUpsertBulk {
	return u.Update(func(s *EditLockUpsert) {
		s.UpdateAcquiredAt()
	})
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *EditLockUpsertBulk) SetHeartbeatAt(v time.Time) *EditLockUpsertBulk {
	return u.Update(func(s *EditLockUpsert) {
		s.SetHeartbeatAt(v)
	})
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *EditLockUpsertBulk) UpdateHeartbeatAt() *EditLockUpsertBulk {
	return u.Update(func(s *EditLockUpsert) {
		s.UpdateHeartbeatAt()
	})
}

// Exec executes the query.
func (u *EditLockUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EditLockCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EditLockCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EditLockUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
