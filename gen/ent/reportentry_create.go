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
	"github.com/fieldlog/fieldlog/gen/ent/report"
	"github.com/fieldlog/fieldlog/gen/ent/reportentry"
	"github.com/google/uuid"
)

// ReportEntryCreate is the builder for creating a ReportEntry entity.
type ReportEntryCreate struct {
	config
	mutation *ReportEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetReportID sets the "report_id" field.
func (_c *ReportEntryCreate) SetReportID(v uuid.UUID) *ReportEntryCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetLocalEntryID sets the "local_entry_id" field.
func (_c *ReportEntryCreate) SetLocalEntryID(v string) *ReportEntryCreate {
	_c.mutation.SetLocalEntryID(v)
	return _c
}

// SetSection sets the "section" field.
func (_c *ReportEntryCreate) SetSection(v string) *ReportEntryCreate {
	_c.mutation.SetSection(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *ReportEntryCreate) SetBody(v string) *ReportEntryCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_c *ReportEntryCreate) SetNillableBody(v *string) *ReportEntryCreate {
	if v != nil {
		_c.SetBody(*v)
	}
	return _c
}

// SetContractorID sets the "contractor_id" field.
func (_c *ReportEntryCreate) SetContractorID(v uuid.UUID) *ReportEntryCreate {
	_c.mutation.SetContractorID(v)
	return _c
}

// SetNillableContractorID sets the "contractor_id" field if the given value is not nil.
func (_c *ReportEntryCreate) SetNillableContractorID(v *uuid.UUID) *ReportEntryCreate {
	if v != nil {
		_c.SetContractorID(*v)
	}
	return _c
}

// SetContractorName sets the "contractor_name" field.
func (_c *ReportEntryCreate) SetContractorName(v string) *ReportEntryCreate {
	_c.mutation.SetContractorName(v)
	return _c
}

// SetNillableContractorName sets the "contractor_name" field if the given value is not nil.
func (_c *ReportEntryCreate) SetNillableContractorName(v *string) *ReportEntryCreate {
	if v != nil {
		_c.SetContractorName(*v)
	}
	return _c
}

// SetCapturedAt sets the "captured_at" field.
func (_c *ReportEntryCreate) SetCapturedAt(v time.Time) *ReportEntryCreate {
	_c.mutation.SetCapturedAt(v)
	return _c
}

// SetNillableCapturedAt sets the "captured_at" field if the given value is not nil.
func (_c *ReportEntryCreate) SetNillableCapturedAt(v *time.Time) *ReportEntryCreate {
	if v != nil {
		_c.SetCapturedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReportEntryCreate) SetCreatedAt(v time.Time) *ReportEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReportEntryCreate) SetNillableCreatedAt(v *time.Time) *ReportEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReportEntryCreate) SetUpdatedAt(v time.Time) *ReportEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReportEntryCreate) SetNillableUpdatedAt(v *time.Time) *ReportEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReportEntryCreate) SetID(v uuid.UUID) *ReportEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReportEntryCreate) SetNillableID(v *uuid.UUID) *ReportEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *ReportEntryCreate) SetReport(v *Report) *ReportEntryCreate {
	return _c.SetReportID(v.ID)
}

// Mutation returns the ReportEntryMutation object of the builder.
func (_c *ReportEntryCreate) Mutation() *ReportEntryMutation {
	return _c.mutation
}

// Save creates the ReportEntry in the database.
func (_c *ReportEntryCreate) Save(ctx context.Context) (*ReportEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportEntryCreate) SaveX(ctx context.Context) *ReportEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportEntryCreate) defaults() {
	if _, ok := _c.mutation.Body(); !ok {
		v := reportentry.DefaultBody
		_c.mutation.SetBody(v)
	}
	if _, ok := _c.mutation.CapturedAt(); !ok {
		v := reportentry.DefaultCapturedAt()
		_c.mutation.SetCapturedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reportentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reportentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reportentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportEntryCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "ReportEntry.report_id"`)}
	}
	if _, ok := _c.mutation.LocalEntryID(); !ok {
		return &ValidationError{Name: "local_entry_id", err: errors.New(`ent: missing required field "ReportEntry.local_entry_id"`)}
	}
	if v, ok := _c.mutation.LocalEntryID(); ok {
		if err := reportentry.LocalEntryIDValidator(v); err != nil {
			return &ValidationError{Name: "local_entry_id", err: fmt.Errorf(`ent: validator failed for field "ReportEntry.local_entry_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Section(); !ok {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required field "ReportEntry.section"`)}
	}
	if v, ok := _c.mutation.Section(); ok {
		if err := reportentry.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "ReportEntry.section": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "ReportEntry.body"`)}
	}
	if _, ok := _c.mutation.CapturedAt(); !ok {
		return &ValidationError{Name: "captured_at", err: errors.New(`ent: missing required field "ReportEntry.captured_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReportEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ReportEntry.updated_at"`)}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "ReportEntry.report"`)}
	}
	return nil
}

func (_c *ReportEntryCreate) sqlSave(ctx context.Context) (*ReportEntry, error) {
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

func (_c *ReportEntryCreate) createSpec() (*ReportEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ReportEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reportentry.Table, sqlgraph.NewFieldSpec(reportentry.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LocalEntryID(); ok {
		_spec.SetField(reportentry.FieldLocalEntryID, field.TypeString, value)
		_node.LocalEntryID = value
	}
	if value, ok := _c.mutation.Section(); ok {
		_spec.SetField(reportentry.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(reportentry.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.ContractorID(); ok {
		_spec.SetField(reportentry.FieldContractorID, field.TypeUUID, value)
		_node.ContractorID = &value
	}
	if value, ok := _c.mutation.ContractorName(); ok {
		_spec.SetField(reportentry.FieldContractorName, field.TypeString, value)
		_node.ContractorName = value
	}
	if value, ok := _c.mutation.CapturedAt(); ok {
		_spec.SetField(reportentry.FieldCapturedAt, field.TypeTime, value)
		_node.CapturedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reportentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reportentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportentry.ReportTable,
			Columns: []string{reportentry.ReportColumn},
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
//	client.ReportEntry.Create().
//		SetReportID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportEntryUpsert) {
//			SetReportID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportEntryCreate) OnConflict(opts ...sql.ConflictOption) *ReportEntryUpsertOne {
	_c.conflict = opts
	return &ReportEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReportEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportEntryCreate) OnConflictColumns(columns ...string) *ReportEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportEntryUpsertOne{
		create: _c,
	}
}

type (
	// ReportEntryUpsertOne is the builder for "upsert"-ing
	//  one ReportEntry node.
	ReportEntryUpsertOne struct {
		create *ReportEntryCreate
	}

	// ReportEntryUpsert is the "OnConflict" setter.
	ReportEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetReportID sets the "report_id" field.
func (u *ReportEntryUpsert) SetReportID(v uuid.UUID) *ReportEntryUpsert {
	u.Set(reportentry.FieldReportID, v)
	return u
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *ReportEntryUpsert) UpdateReportID() *ReportEntryUpsert {
	u.SetExcluded(reportentry.FieldReportID)
	return u
}

// SetLocalEntryID sets the "local_entry_id" field.
func (u *ReportEntryUpsert) SetLocalEntryID(v string) *ReportEntryUpsert {
	u.Set(reportentry.FieldLocalEntryID, v)
	return u
}

// UpdateLocalEntryID sets the "local_entry_id" field to the value that was provided on create.
func (u *ReportEntryUpsert) UpdateLocalEntryID() *ReportEntryUpsert {
	u.SetExcluded(reportentry.FieldLocalEntryID)
	return u
}

// SetSection sets the "section" field.
func (u *ReportEntryUpsert) SetSection(v string) *ReportEntryUpsert {
	u.Set(reportentry.FieldSection, v)
	return u
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *ReportEntryUpsert) UpdateSection() *ReportEntryUpsert {
	u.SetExcluded(reportentry.FieldSection)
	return u
}

// SetBody sets the "body" field.
func (u *ReportEntryUpsert) SetBody(v string) *ReportEntryUpsert {
	u.Set(reportentry.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *ReportEntryUpsert) UpdateBody() *ReportEntryUpsert {
	u.SetExcluded(reportentry.FieldBody)
	return u
}

// SetContractorID sets the "contractor_id" field.
func (u *ReportEntryUpsert) SetContractorID(v uuid.UUID) *ReportEntryUpsert {
	u.Set(reportentry.FieldContractorID, v)
	return u
}

// UpdateContractorID sets the "contractor_id" field to the value that was provided on create.
func (u *ReportEntryUpsert) UpdateContractorID() *ReportEntryUpsert {
	u.SetExcluded(reportentry.FieldContractorID)
	return u
}

// ClearContractorID clears the value of the "contractor_id" field.
func (u *ReportEntryUpsert) ClearContractorID() *ReportEntryUpsert {
	u.SetNull(reportentry.FieldContractorID)
	return u
}

// SetContractorName sets the "contractor_name" field.
func (u *ReportEntryUpsert) SetContractorName(v string) *ReportEntryUpsert {
	u.Set(reportentry.FieldContractorName, v)
	return u
}

// UpdateContractorName sets the "contractor_name" field to the value that was provided on create.
func (u *ReportEntryUpsert) UpdateContractorName() *ReportEntryUpsert {
	u.SetExcluded(reportentry.FieldContractorName)
	return u
}

// ClearContractorName clears the value of the "contractor_name" field.
func (u *ReportEntryUpsert) ClearContractorName() *ReportEntryUpsert {
	u.SetNull(reportentry.FieldContractorName)
	return u
}

// SetCapturedAt sets the "captured_at" field.
func (u *ReportEntryUpsert) SetCapturedAt(v time.Time) *ReportEntryUpsert {
	u.Set(reportentry.FieldCapturedAt, v)
	return u
}

// UpdateCapturedAt sets the "captured_at" field to the value that was provided on create.
func (u *ReportEntryUpsert) UpdateCapturedAt() *ReportEntryUpsert {
	u.SetExcluded(reportentry.FieldCapturedAt)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ReportEntryUpsert) SetCreatedAt(v time.Time) *ReportEntryUpsert {
	u.Set(reportentry.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReportEntryUpsert) UpdateCreatedAt() *ReportEntryUpsert {
	u.SetExcluded(reportentry.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReportEntryUpsert) SetUpdatedAt(v time.Time) *ReportEntryUpsert {
	u.Set(reportentry.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReportEntryUpsert) UpdateUpdatedAt() *ReportEntryUpsert {
	u.SetExcluded(reportentry.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ReportEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reportentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportEntryUpsertOne) UpdateNewValues() *ReportEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(reportentry.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReportEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReportEntryUpsertOne) Ignore() *ReportEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportEntryUpsertOne) DoNothing() *ReportEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportEntryCreate.OnConflict
// documentation for more info.
func (u *ReportEntryUpsertOne) Update(set func(*ReportEntryUpsert)) *ReportEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetReportID sets the "report_id" field.
func (u *ReportEntryUpsertOne) SetReportID(v uuid.UUID) *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *ReportEntryUpsertOne) UpdateReportID() *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.UpdateReportID()
	})
}

// SetLocalEntryID sets the "local_entry_id" field.
func (u *ReportEntryUpsertOne) SetLocalEntryID(v string) *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.SetLocalEntryID(v)
	})
}

// UpdateLocalEntryID sets the "local_entry_id" field to the value that was provided on create.
func (u *ReportEntryUpsertOne) UpdateLocalEntryID() *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.UpdateLocalEntryID()
	})
}

// SetSection sets the "section" field.
func (u *ReportEntryUpsertOne) SetSection(v string) *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *ReportEntryUpsertOne) UpdateSection() *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.UpdateSection()
	})
}

// SetBody sets the "body" field.
func (u *ReportEntryUpsertOne) SetBody(v string) *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *ReportEntryUpsertOne) UpdateBody() *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.UpdateBody()
	})
}

// SetContractorID sets the "contractor_id" field.
func (u *ReportEntryUpsertOne) SetContractorID(v uuid.UUID) *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.SetContractorID(v)
	})
}

// UpdateContractorID sets the "contractor_id" field to the value that was provided on create.
func (u *ReportEntryUpsertOne) UpdateContractorID() *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.UpdateContractorID()
	})
}

// ClearContractorID clears the value of the "contractor_id" field.
func (u *ReportEntryUpsertOne) ClearContractorID() *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.ClearContractorID()
	})
}

// SetContractorName sets the "contractor_name" field.
func (u *ReportEntryUpsertOne) SetContractorName(v string) *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.SetContractorName(v)
	})
}

// UpdateContractorName sets the "contractor_name" field to the value that was provided on create.
func (u *ReportEntryUpsertOne) UpdateContractorName() *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.UpdateContractorName()
	})
}

// ClearContractorName clears the value of the "contractor_name" field.
func (u *ReportEntryUpsertOne) ClearContractorName() *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.ClearContractorName()
	})
}

// SetCapturedAt sets the "captured_at" field.
func (u *ReportEntryUpsertOne) SetCapturedAt(v time.Time) *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.SetCapturedAt(v)
	})
}

// UpdateCapturedAt sets the "captured_at" field to the value that was provided on create.
func (u *ReportEntryUpsertOne) UpdateCapturedAt() *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.UpdateCapturedAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ReportEntryUpsertOne) SetCreatedAt(v time.Time) *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReportEntryUpsertOne) UpdateCreatedAt() *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReportEntryUpsertOne) SetUpdatedAt(v time.Time) *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReportEntryUpsertOne) UpdateUpdatedAt() *ReportEntryUpsertOne {
	return u.Update(func(s *ReportEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ReportEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReportEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReportEntryUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ReportEntryUpsertOne.ID is not supported by MySQL driver. Use ReportEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReportEntryUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReportEntryCreateBulk is the builder for creating many ReportEntry entities in bulk.
type ReportEntryCreateBulk struct {
	config
	err      error
	builders []*ReportEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the ReportEntry entities in the database.
func (_c *ReportEntryCreateBulk) Save(ctx context.Context) ([]*ReportEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReportEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportEntryMutation)
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
func (_c *ReportEntryCreateBulk) SaveX(ctx context.Context) []*ReportEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReportEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportEntryUpsert) {
//			SetReportID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReportEntryUpsertBulk {
	_c.conflict = opts
	return &ReportEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReportEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportEntryCreateBulk) OnConflictColumns(columns ...string) *ReportEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportEntryUpsertBulk{
		create: _c,
	}
}

// ReportEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of ReportEntry nodes.
type ReportEntryUpsertBulk struct {
	create *ReportEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReportEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reportentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportEntryUpsertBulk) UpdateNewValues() *ReportEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(reportentry.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReportEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReportEntryUpsertBulk) Ignore() *ReportEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportEntryUpsertBulk) DoNothing() *ReportEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportEntryCreateBulk.OnConflict
// documentation for more info.
func (u *ReportEntryUpsertBulk) Update(set func(*ReportEntryUpsert)) *ReportEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetReportID sets the "report_id" field.
func (u *ReportEntryUpsertBulk) SetReportID(v uuid.UUID) *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *ReportEntryUpsertBulk) UpdateReportID() *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.UpdateReportID()
	})
}

// SetLocalEntryID sets the "local_entry_id" field.
func (u *ReportEntryUpsertBulk) SetLocalEntryID(v string) *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.SetLocalEntryID(v)
	})
}

// UpdateLocalEntryID sets the "local_entry_id" field to the value that was provided on create.
func (u *ReportEntryUpsertBulk) UpdateLocalEntryID() *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.UpdateLocalEntryID()
	})
}

// SetSection sets the "section" field.
func (u *ReportEntryUpsertBulk) SetSection(v string) *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *ReportEntryUpsertBulk) UpdateSection() *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.UpdateSection()
	})
}

// SetBody sets the "body" field.
func (u *ReportEntryUpsertBulk) SetBody(v string) *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *ReportEntryUpsertBulk) UpdateBody() *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.UpdateBody()
	})
}

// SetContractorID sets the "contractor_id" field.
func (u *ReportEntryUpsertBulk) SetContractorID(v uuid.UUID) *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.SetContractorID(v)
	})
}

// UpdateContractorID sets the "contractor_id" field to the value that was provided on create.
func (u *ReportEntryUpsertBulk) UpdateContractorID() *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.UpdateContractorID()
	})
}

// ClearContractorID clears the value of the "contractor_id" field.
func (u *ReportEntryUpsertBulk) ClearContractorID() *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.ClearContractorID()
	})
}

// SetContractorName sets the "contractor_name" field.
func (u *ReportEntryUpsertBulk) SetContractorName(v string) *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.SetContractorName(v)
	})
}

// UpdateContractorName sets the "contractor_name" field to the value that was provided on create.
func (u *ReportEntryUpsertBulk) UpdateContractorName() *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.UpdateContractorName()
	})
}

// ClearContractorName clears the value of the "contractor_name" field.
func (u *ReportEntryUpsertBulk) ClearContractorName() *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.ClearContractorName()
	})
}

// SetCapturedAt sets the "captured_at" field.
func (u *ReportEntryUpsertBulk) SetCapturedAt(v time.Time) *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.SetCapturedAt(v)
	})
}

// UpdateCapturedAt sets the "captured_at" field to the value that was provided on create.
func (u *ReportEntryUpsertBulk) UpdateCapturedAt() *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.UpdateCapturedAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ReportEntryUpsertBulk) SetCreatedAt(v time.Time) *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReportEntryUpsertBulk) UpdateCreatedAt() *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReportEntryUpsertBulk) SetUpdatedAt(v time.Time) *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReportEntryUpsertBulk) UpdateUpdatedAt() *ReportEntryUpsertBulk {
	return u.Update(func(s *ReportEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ReportEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReportEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReportEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
