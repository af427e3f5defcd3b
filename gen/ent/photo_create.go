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
	"github.com/fieldlog/fieldlog/gen/ent/photo"
	"github.com/fieldlog/fieldlog/gen/ent/report"
	"github.com/google/uuid"
)

// PhotoCreate is the builder for creating a Photo entity.
type PhotoCreate struct {
	config
	mutation *PhotoMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetReportID sets the "report_id" field.
func (_c *PhotoCreate) SetReportID(v uuid.UUID) *PhotoCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetLocalPhotoID sets the "local_photo_id" field.
func (_c *PhotoCreate) SetLocalPhotoID(v string) *PhotoCreate {
	_c.mutation.SetLocalPhotoID(v)
	return _c
}

// SetCaption sets the "caption" field.
func (_c *PhotoCreate) SetCaption(v string) *PhotoCreate {
	_c.mutation.SetCaption(v)
	return _c
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_c *PhotoCreate) SetNillableCaption(v *string) *PhotoCreate {
	if v != nil {
		_c.SetCaption(*v)
	}
	return _c
}

// SetStorePath sets the "store_path" field.
func (_c *PhotoCreate) SetStorePath(v string) *PhotoCreate {
	_c.mutation.SetStorePath(v)
	return _c
}

// SetNillableStorePath sets the "store_path" field if the given value is not nil.
func (_c *PhotoCreate) SetNillableStorePath(v *string) *PhotoCreate {
	if v != nil {
		_c.SetStorePath(*v)
	}
	return _c
}

// SetLatitude sets the "latitude" field.
func (_c *PhotoCreate) SetLatitude(v float64) *PhotoCreate {
	_c.mutation.SetLatitude(v)
	return _c
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_c *PhotoCreate) SetNillableLatitude(v *float64) *PhotoCreate {
	if v != nil {
		_c.SetLatitude(*v)
	}
	return _c
}

// SetLongitude sets the "longitude" field.
func (_c *PhotoCreate) SetLongitude(v float64) *PhotoCreate {
	_c.mutation.SetLongitude(v)
	return _c
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_c *PhotoCreate) SetNillableLongitude(v *float64) *PhotoCreate {
	if v != nil {
		_c.SetLongitude(*v)
	}
	return _c
}

// SetTakenAt sets the "taken_at" field.
func (_c *PhotoCreate) SetTakenAt(v time.Time) *PhotoCreate {
	_c.mutation.SetTakenAt(v)
	return _c
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_c *PhotoCreate) SetNillableTakenAt(v *time.Time) *PhotoCreate {
	if v != nil {
		_c.SetTakenAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PhotoCreate) SetCreatedAt(v time.Time) *PhotoCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PhotoCreate) SetNillableCreatedAt(v *time.Time) *PhotoCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PhotoCreate) SetID(v uuid.UUID) *PhotoCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PhotoCreate) SetNillableID(v *uuid.UUID) *PhotoCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *PhotoCreate) SetReport(v *Report) *PhotoCreate {
	return _c.SetReportID(v.ID)
}

// Mutation returns the PhotoMutation object of the builder.
func (_c *PhotoCreate) Mutation() *PhotoMutation {
	return _c.mutation
}

// Save creates the Photo in the database.
func (_c *PhotoCreate) Save(ctx context.Context) (*Photo, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PhotoCreate) SaveX(ctx context.Context) *Photo {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhotoCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhotoCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PhotoCreate) defaults() {
	if _, ok := _c.mutation.TakenAt(); !ok {
		v := photo.DefaultTakenAt()
		_c.mutation.SetTakenAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := photo.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := photo.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PhotoCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "Photo.report_id"`)}
	}
	if _, ok := _c.mutation.LocalPhotoID(); !ok {
		return &ValidationError{Name: "local_photo_id", err: errors.New(`ent: missing required field "Photo.local_photo_id"`)}
	}
	if v, ok := _c.mutation.LocalPhotoID(); ok {
		if err := photo.LocalPhotoIDValidator(v); err != nil {
			return &ValidationError{Name: "local_photo_id", err: fmt.Errorf(`ent: validator failed for field "Photo.local_photo_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		return &ValidationError{Name: "taken_at", err: errors.New(`ent: missing required field "Photo.taken_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Photo.created_at"`)}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "Photo.report"`)}
	}
	return nil
}

func (_c *PhotoCreate) sqlSave(ctx context.Context) (*Photo, error) {
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

func (_c *PhotoCreate) createSpec() (*Photo, *sqlgraph.CreateSpec) {
	var (
		_node = &Photo{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(photo.Table, sqlgraph.NewFieldSpec(photo.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LocalPhotoID(); ok {
		_spec.SetField(photo.FieldLocalPhotoID, field.TypeString, value)
		_node.LocalPhotoID = value
	}
	if value, ok := _c.mutation.Caption(); ok {
		_spec.SetField(photo.FieldCaption, field.TypeString, value)
		_node.Caption = value
	}
	if value, ok := _c.mutation.StorePath(); ok {
		_spec.SetField(photo.FieldStorePath, field.TypeString, value)
		_node.StorePath = value
	}
	if value, ok := _c.mutation.Latitude(); ok {
		_spec.SetField(photo.FieldLatitude, field.TypeFloat64, value)
		_node.Latitude = &value
	}
	if value, ok := _c.mutation.Longitude(); ok {
		_spec.SetField(photo.FieldLongitude, field.TypeFloat64, value)
		_node.Longitude = &value
	}
	if value, ok := _c.mutation.TakenAt(); ok {
		_spec.SetField(photo.FieldTakenAt, field.TypeTime, value)
		_node.TakenAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(photo.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   photo.ReportTable,
			Columns: []string{photo.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Photo.Create().
//		SetReportID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PhotoUpsert) {
//			SetReportID(v+v).
//		}).
//		Exec(ctx)
func (_c *PhotoCreate) OnConflict(opts ...sql.ConflictOption) *PhotoUpsertOne {
	_c.conflict = opts
	return &PhotoUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Photo.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PhotoCreate) OnConflictColumns(columns ...string) *PhotoUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PhotoUpsertOne{
		create: _c,
	}
}

type (
	// PhotoUpsertOne is the builder for "upsert"-ing
	//  one Photo node.
	PhotoUpsertOne struct {
		create *PhotoCreate
	}

	// PhotoUpsert is the "OnConflict" setter.
	PhotoUpsert struct {
		*sql.UpdateSet
	}
)

// SetReportID sets the "report_id" field.
func (u *PhotoUpsert) SetReportID(v uuid.UUID) *PhotoUpsert {
	u.Set(photo.FieldReportID, v)
	return u
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *PhotoUpsert) UpdateReportID() *PhotoUpsert {
	u.SetExcluded(photo.FieldReportID)
	return u
}

// SetLocalPhotoID sets the "local_photo_id" field.
func (u *PhotoUpsert) SetLocalPhotoID(v string) *PhotoUpsert {
	u.Set(photo.FieldLocalPhotoID, v)
	return u
}

// UpdateLocalPhotoID sets the "local_photo_id" field to the value that was provided on create.
func (u *PhotoUpsert) UpdateLocalPhotoID() *PhotoUpsert {
	u.SetExcluded(photo.FieldLocalPhotoID)
	return u
}

// SetCaption sets the "caption" field.
func (u *PhotoUpsert) SetCaption(v string) *PhotoUpsert {
	u.Set(photo.FieldCaption, v)
	return u
}

// UpdateCaption sets the "caption" field to the value that was provided on create.
func (u *PhotoUpsert) UpdateCaption() *PhotoUpsert {
	u.SetExcluded(photo.FieldCaption)
	return u
}

// ClearCaption clears the value of the "caption" field.
func (u *PhotoUpsert) ClearCaption() *PhotoUpsert {
	u.SetNull(photo.FieldCaption)
	return u
}

// SetStorePath sets the "store_path" field.
func (u *PhotoUpsert) SetStorePath(v string) *PhotoUpsert {
	u.Set(photo.FieldStorePath, v)
	return u
}

// UpdateStorePath sets the "store_path" field to the value that was provided on create.
func (u *PhotoUpsert) UpdateStorePath() *PhotoUpsert {
	u.SetExcluded(photo.FieldStorePath)
	return u
}

// ClearStorePath clears the value of the "store_path" field.
func (u *PhotoUpsert) ClearStorePath() *PhotoUpsert {
	u.SetNull(photo.FieldStorePath)
	return u
}

// SetLatitude sets the "latitude" field.
func (u *PhotoUpsert) SetLatitude(v float64) *PhotoUpsert {
	u.Set(photo.FieldLatitude, v)
	return u
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *PhotoUpsert) UpdateLatitude() *PhotoUpsert {
	u.SetExcluded(photo.FieldLatitude)
	return u
}

// AddLatitude adds v to the "latitude" field.
func (u *PhotoUpsert) AddLatitude(v float64) *PhotoUpsert {
	u.Add(photo.FieldLatitude, v)
	return u
}

// ClearLatitude clears the value of the "latitude" field.
func (u *PhotoUpsert) ClearLatitude() *PhotoUpsert {
	u.SetNull(photo.FieldLatitude)
	return u
}

// SetLongitude sets the "longitude" field.
func (u *PhotoUpsert) SetLongitude(v float64) *PhotoUpsert {
	u.Set(photo.FieldLongitude, v)
	return u
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *PhotoUpsert) UpdateLongitude() *PhotoUpsert {
	u.SetExcluded(photo.FieldLongitude)
	return u
}

// AddLongitude adds v to the "longitude" field.
func (u *PhotoUpsert) AddLongitude(v float64) *PhotoUpsert {
	u.Add(photo.FieldLongitude, v)
	return u
}

// ClearLongitude clears the value of the "longitude" field.
func (u *PhotoUpsert) ClearLongitude() *PhotoUpsert {
	u.SetNull(photo.FieldLongitude)
	return u
}

// SetTakenAt sets the "taken_at" field.
func (u *PhotoUpsert) SetTakenAt(v time.Time) *PhotoUpsert {
	u.Set(photo.FieldTakenAt, v)
	return u
}

// UpdateTakenAt sets the "taken_at" field to the value that was provided on create.
func (u *PhotoUpsert) UpdateTakenAt() *PhotoUpsert {
	u.SetExcluded(photo.FieldTakenAt)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *PhotoUpsert) SetCreatedAt(v time.Time) *PhotoUpsert {
	u.Set(photo.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PhotoUpsert) UpdateCreatedAt() *PhotoUpsert {
	u.SetExcluded(photo.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Photo.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(photo.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PhotoUpsertOne) UpdateNewValues() *PhotoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(photo.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Photo.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PhotoUpsertOne) Ignore() *PhotoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PhotoUpsertOne) DoNothing() *PhotoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PhotoCreate.OnConflict
// documentation for more info.
func (u *PhotoUpsertOne) Update(set func(*PhotoUpsert)) *PhotoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PhotoUpsert{UpdateSet: update})
	}))
	return u
}

// SetReportID sets the "report_id" field.
func (u *PhotoUpsertOne) SetReportID(v uuid.UUID) *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *PhotoUpsertOne) UpdateReportID() *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.UpdateReportID()
	})
}

// SetLocalPhotoID sets the "local_photo_id" field.
func (u *PhotoUpsertOne) SetLocalPhotoID(v string) *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.SetLocalPhotoID(v)
	})
}

// UpdateLocalPhotoID sets the "local_photo_id" field to the value that was provided on create.
func (u *PhotoUpsertOne) UpdateLocalPhotoID() *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.UpdateLocalPhotoID()
	})
}

// SetCaption sets the "caption" field.
func (u *PhotoUpsertOne) SetCaption(v string) *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.SetCaption(v)
	})
}

// UpdateCaption sets the "caption" field to the value that was provided on create.
func (u *PhotoUpsertOne) UpdateCaption() *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.UpdateCaption()
	})
}

// ClearCaption clears the value of the "caption" field.
func (u *PhotoUpsertOne) ClearCaption() *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.ClearCaption()
	})
}

// SetStorePath sets the "store_path" field.
func (u *PhotoUpsertOne) SetStorePath(v string) *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.SetStorePath(v)
	})
}

// UpdateStorePath sets the "store_path" field to the value that was provided on create.
func (u *PhotoUpsertOne) UpdateStorePath() *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.UpdateStorePath()
	})
}

// ClearStorePath clears the value of the "store_path" field.
func (u *PhotoUpsertOne) ClearStorePath() *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.ClearStorePath()
	})
}

// SetLatitude sets the "latitude" field.
func (u *PhotoUpsertOne) SetLatitude(v float64) *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.SetLatitude(v)
	})
}

// AddLatitude adds v to the "latitude" field.
func (u *PhotoUpsertOne) AddLatitude(v float64) *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.AddLatitude(v)
	})
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *PhotoUpsertOne) UpdateLatitude() *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.UpdateLatitude()
	})
}

// ClearLatitude clears the value of the "latitude" field.
func (u *PhotoUpsertOne) ClearLatitude() *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.ClearLatitude()
	})
}

// SetLongitude sets the "longitude" field.
func (u *PhotoUpsertOne) SetLongitude(v float64) *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.SetLongitude(v)
	})
}

// AddLongitude adds v to the "longitude" field.
func (u *PhotoUpsertOne) AddLongitude(v float64) *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.AddLongitude(v)
	})
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *PhotoUpsertOne) UpdateLongitude() *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.UpdateLongitude()
	})
}

// ClearLongitude clears the value of the "longitude" field.
func (u *PhotoUpsertOne) ClearLongitude() *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.ClearLongitude()
	})
}

// SetTakenAt sets the "taken_at" field.
func (u *PhotoUpsertOne) SetTakenAt(v time.Time) *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.SetTakenAt(v)
	})
}

// UpdateTakenAt sets the "taken_at" field to the value that was provided on create.
func (u *PhotoUpsertOne) UpdateTakenAt() *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.UpdateTakenAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *PhotoUpsertOne) SetCreatedAt(v time.Time) *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PhotoUpsertOne) UpdateCreatedAt() *PhotoUpsertOne {
	return u.Update(func(s *PhotoUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *PhotoUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PhotoCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PhotoUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PhotoUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PhotoUpsertOne.ID is not supported by MySQL driver. Use PhotoUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PhotoUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PhotoCreateBulk is the builder for creating many Photo entities in bulk.
type PhotoCreateBulk struct {
	config
	err      error
	builders []*PhotoCreate
	conflict []sql.ConflictOption
}

// Save creates the Photo entities in the database.
func (_c *PhotoCreateBulk) Save(ctx context.Context) ([]*Photo, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Photo, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PhotoMutation)
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
func (_c *PhotoCreateBulk) SaveX(ctx context.Context) []*Photo {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhotoCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhotoCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Photo.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PhotoUpsert) {
//			SetReportID(v+v).
//		}).
//		Exec(ctx)
func (_c *PhotoCreateBulk) OnConflict(opts ...sql.ConflictOption) *PhotoUpsertBulk {
	_c.conflict = opts
	return &PhotoUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Photo.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PhotoCreateBulk) OnConflictColumns(columns ...string) *PhotoUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PhotoUpsertBulk{
		create: _c,
	}
}

// PhotoUpsertBulk is the builder for "upsert"-ing
// a bulk of Photo nodes.
type PhotoUpsertBulk struct {
	create *PhotoCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Photo.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(photo.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PhotoUpsertBulk) UpdateNewValues() *PhotoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(photo.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Photo.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PhotoUpsertBulk) Ignore() *PhotoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PhotoUpsertBulk) DoNothing() *PhotoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PhotoCreateBulk.OnConflict
// documentation for more info.
func (u *PhotoUpsertBulk) Update(set func(*PhotoUpsert)) *PhotoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PhotoUpsert{UpdateSet: update})
	}))
	return u
}

// SetReportID sets the "report_id" field.
func (u *PhotoUpsertBulk) SetReportID(v uuid.UUID) *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *PhotoUpsertBulk) UpdateReportID() *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.UpdateReportID()
	})
}

// SetLocalPhotoID sets the "local_photo_id" field.
func (u *PhotoUpsertBulk) SetLocalPhotoID(v string) *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.SetLocalPhotoID(v)
	})
}

// UpdateLocalPhotoID sets the "local_photo_id" field to the value that was provided on create.
func (u *PhotoUpsertBulk) UpdateLocalPhotoID() *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.UpdateLocalPhotoID()
	})
}

// SetCaption sets the "caption" field.
func (u *PhotoUpsertBulk) SetCaption(v string) *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.SetCaption(v)
	})
}

// UpdateCaption sets the "caption" field to the value that was provided on create.
func (u *PhotoUpsertBulk) UpdateCaption() *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.UpdateCaption()
	})
}

// ClearCaption clears the value of the "caption" field.
func (u *PhotoUpsertBulk) ClearCaption() *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.ClearCaption()
	})
}

// SetStorePath sets the "store_path" field.
func (u *PhotoUpsertBulk) SetStorePath(v string) *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.SetStorePath(v)
	})
}

// UpdateStorePath sets the "store_path" field to the value that was provided on create.
func (u *PhotoUpsertBulk) UpdateStorePath() *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.UpdateStorePath()
	})
}

// ClearStorePath clears the value of the "store_path" field.
func (u *PhotoUpsertBulk) ClearStorePath() *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.ClearStorePath()
	})
}

// SetLatitude sets the "latitude" field.
func (u *PhotoUpsertBulk) SetLatitude(v float64) *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.SetLatitude(v)
	})
}

// AddLatitude adds v to the "latitude" field.
func (u *PhotoUpsertBulk) AddLatitude(v float64) *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.AddLatitude(v)
	})
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *PhotoUpsertBulk) UpdateLatitude() *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.UpdateLatitude()
	})
}

// ClearLatitude clears the value of the "latitude" field.
func (u *PhotoUpsertBulk) ClearLatitude() *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.ClearLatitude()
	})
}

// SetLongitude sets the "longitude" field.
func (u *PhotoUpsertBulk) SetLongitude(v float64) *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.SetLongitude(v)
	})
}

// AddLongitude adds v to the "longitude" field.
func (u *PhotoUpsertBulk) AddLongitude(v float64) *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.AddLongitude(v)
	})
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *PhotoUpsertBulk) UpdateLongitude() *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.UpdateLongitude()
	})
}

// ClearLongitude clears the value of the "longitude" field.
func (u *PhotoUpsertBulk) ClearLongitude() *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.ClearLongitude()
	})
}

// SetTakenAt sets the "taken_at" field.
func (u *PhotoUpsertBulk) SetTakenAt(v time.Time) *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.SetTakenAt(v)
	})
}

// UpdateTakenAt sets the "taken_at" field to the value that was provided on create.
func (u *PhotoUpsertBulk) UpdateTakenAt() *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.UpdateTakenAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *PhotoUpsertBulk) SetCreatedAt(v time.Time) *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PhotoUpsertBulk) UpdateCreatedAt() *PhotoUpsertBulk {
	return u.Update(func(s *PhotoUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *PhotoUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PhotoCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PhotoCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PhotoUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
