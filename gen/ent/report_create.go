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
	"github.com/fieldlog/fieldlog/gen/ent/project"
	"github.com/fieldlog/fieldlog/gen/ent/report"
	"github.com/fieldlog/fieldlog/gen/ent/reportentry"
	"github.com/google/uuid"
)

// ReportCreate is the builder for creating a Report entity.
type ReportCreate struct {
	config
	mutation *ReportMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *ReportCreate) SetProjectID(v uuid.UUID) *ReportCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetReportDate sets the "report_date" field.
func (_c *ReportCreate) SetReportDate(v time.Time) *ReportCreate {
	_c.mutation.SetReportDate(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReportCreate) SetStatus(v string) *ReportCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReportCreate) SetNillableStatus(v *string) *ReportCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCaptureMode sets the "capture_mode" field.
func (_c *ReportCreate) SetCaptureMode(v string) *ReportCreate {
	_c.mutation.SetCaptureMode(v)
	return _c
}

// SetNillableCaptureMode sets the "capture_mode" field if the given value is not nil.
func (_c *ReportCreate) SetNillableCaptureMode(v *string) *ReportCreate {
	if v != nil {
		_c.SetCaptureMode(*v)
	}
	return _c
}

// SetDeviceID sets the "device_id" field.
func (_c *ReportCreate) SetDeviceID(v string) *ReportCreate {
	_c.mutation.SetDeviceID(v)
	return _c
}

// SetOriginalInput sets the "original_input" field.
func (_c *ReportCreate) SetOriginalInput(v map[string]interface{}) *ReportCreate {
	_c.mutation.SetOriginalInput(v)
	return _c
}

// SetAiGenerated sets the "ai_generated" field.
func (_c *ReportCreate) SetAiGenerated(v map[string]interface{}) *ReportCreate {
	_c.mutation.SetAiGenerated(v)
	return _c
}

// SetUserEdits sets the "user_edits" field.
func (_c *ReportCreate) SetUserEdits(v map[string]interface{}) *ReportCreate {
	_c.mutation.SetUserEdits(v)
	return _c
}

// SetToggles sets the "toggles" field.
func (_c *ReportCreate) SetToggles(v map[string]interface{}) *ReportCreate {
	_c.mutation.SetToggles(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReportCreate) SetCreatedAt(v time.Time) *ReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableCreatedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastSaved sets the "last_saved" field.
func (_c *ReportCreate) SetLastSaved(v time.Time) *ReportCreate {
	_c.mutation.SetLastSaved(v)
	return _c
}

// SetNillableLastSaved sets the "last_saved" field if the given value is not nil.
func (_c *ReportCreate) SetNillableLastSaved(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetLastSaved(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReportCreate) SetID(v uuid.UUID) *ReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReportCreate) SetNillableID(v *uuid.UUID) *ReportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ReportCreate) SetProject(v *Project) *ReportCreate {
	return _c.SetProjectID(v.ID)
}

// AddEntryIDs adds the "entries" edge to the ReportEntry entity by IDs.
func (_c *ReportCreate) AddEntryIDs(ids ...uuid.UUID) *ReportCreate {
	_c.mutation.AddEntryIDs(ids...)
	return _c
}

// AddEntries adds the "entries" edges to the ReportEntry entity.
func (_c *ReportCreate) AddEntries(v ...*ReportEntry) *ReportCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEntryIDs(ids...)
}

// AddPhotoIDs adds the "photos" edge to the Photo entity by IDs.
func (_c *ReportCreate) AddPhotoIDs(ids ...uuid.UUID) *ReportCreate {
	_c.mutation.AddPhotoIDs(ids...)
	return _c
}

// AddPhotos adds the "photos" edges to the Photo entity.
func (_c *ReportCreate) AddPhotos(v ...*Photo) *ReportCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPhotoIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_c *ReportCreate) Mutation() *ReportMutation {
	return _c.mutation
}

// Save creates the Report in the database.
func (_c *ReportCreate) Save(ctx context.Context) (*Report, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportCreate) SaveX(ctx context.Context) *Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := report.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CaptureMode(); !ok {
		v := report.DefaultCaptureMode
		_c.mutation.SetCaptureMode(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := report.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastSaved(); !ok {
		v := report.DefaultLastSaved()
		_c.mutation.SetLastSaved(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := report.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Report.project_id"`)}
	}
	if _, ok := _c.mutation.ReportDate(); !ok {
		return &ValidationError{Name: "report_date", err: errors.New(`ent: missing required field "Report.report_date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Report.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CaptureMode(); !ok {
		return &ValidationError{Name: "capture_mode", err: errors.New(`ent: missing required field "Report.capture_mode"`)}
	}
	if v, ok := _c.mutation.CaptureMode(); ok {
		if err := report.CaptureModeValidator(v); err != nil {
			return &ValidationError{Name: "capture_mode", err: fmt.Errorf(`ent: validator failed for field "Report.capture_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeviceID(); !ok {
		return &ValidationError{Name: "device_id", err: errors.New(`ent: missing required field "Report.device_id"`)}
	}
	if v, ok := _c.mutation.DeviceID(); ok {
		if err := report.DeviceIDValidator(v); err != nil {
			return &ValidationError{Name: "device_id", err: fmt.Errorf(`ent: validator failed for field "Report.device_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Report.created_at"`)}
	}
	if _, ok := _c.mutation.LastSaved(); !ok {
		return &ValidationError{Name: "last_saved", err: errors.New(`ent: missing required field "Report.last_saved"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Report.project"`)}
	}
	return nil
}

func (_c *ReportCreate) sqlSave(ctx context.Context) (*Report, error) {
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

func (_c *ReportCreate) createSpec() (*Report, *sqlgraph.CreateSpec) {
	var (
		_node = &Report{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(report.Table, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ReportDate(); ok {
		_spec.SetField(report.FieldReportDate, field.TypeTime, value)
		_node.ReportDate = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CaptureMode(); ok {
		_spec.SetField(report.FieldCaptureMode, field.TypeString, value)
		_node.CaptureMode = value
	}
	if value, ok := _c.mutation.DeviceID(); ok {
		_spec.SetField(report.FieldDeviceID, field.TypeString, value)
		_node.DeviceID = value
	}
	if value, ok := _c.mutation.OriginalInput(); ok {
		_spec.SetField(report.FieldOriginalInput, field.TypeJSON, value)
		_node.OriginalInput = value
	}
	if value, ok := _c.mutation.AiGenerated(); ok {
		_spec.SetField(report.FieldAiGenerated, field.TypeJSON, value)
		_node.AiGenerated = value
	}
	if value, ok := _c.mutation.UserEdits(); ok {
		_spec.SetField(report.FieldUserEdits, field.TypeJSON, value)
		_node.UserEdits = value
	}
	if value, ok := _c.mutation.Toggles(); ok {
		_spec.SetField(report.FieldToggles, field.TypeJSON, value)
		_node.Toggles = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(report.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastSaved(); ok {
		_spec.SetField(report.FieldLastSaved, field.TypeTime, value)
		_node.LastSaved = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.ProjectTable,
			Columns: []string{report.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.EntriesTable,
			Columns: []string{report.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PhotosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.PhotosTable,
			Columns: []string{report.PhotosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(photo.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Report.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportCreate) OnConflict(opts ...sql.ConflictOption) *ReportUpsertOne {
	_c.conflict = opts
	return &ReportUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportCreate) OnConflictColumns(columns ...string) *ReportUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportUpsertOne{
		create: _c,
	}
}

type (
	// ReportUpsertOne is the builder for "upsert"-ing
	//  one Report node.
	ReportUpsertOne struct {
		create *ReportCreate
	}

	// ReportUpsert is the "OnConflict" setter.
	ReportUpsert struct {
		*sql.UpdateSet
	}
)

// SetProjectID sets the "project_id" field.
func (u *ReportUpsert) SetProjectID(v uuid.UUID) *ReportUpsert {
	u.Set(report.FieldProjectID, v)
	return u
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ReportUpsert) UpdateProjectID() *ReportUpsert {
	u.SetExcluded(report.FieldProjectID)
	return u
}

// SetStatus sets the "status" field.
func (u *ReportUpsert) SetStatus(v string) *ReportUpsert {
	u.Set(report.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReportUpsert) UpdateStatus() *ReportUpsert {
	u.SetExcluded(report.FieldStatus)
	return u
}

// SetCaptureMode sets the "capture_mode" field.
func (u *ReportUpsert) SetCaptureMode(v string) *ReportUpsert {
	u.Set(report.FieldCaptureMode, v)
	return u
}

// UpdateCaptureMode sets the "capture_mode" field to the value that was provided on create.
func (u *ReportUpsert) UpdateCaptureMode() *ReportUpsert {
	u.SetExcluded(report.FieldCaptureMode)
	return u
}

// SetDeviceID sets the "device_id" field.
func (u *ReportUpsert) SetDeviceID(v string) *ReportUpsert {
	u.Set(report.FieldDeviceID, v)
	return u
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *ReportUpsert) UpdateDeviceID() *ReportUpsert {
	u.SetExcluded(report.FieldDeviceID)
	return u
}

// SetOriginalInput sets the "original_input" field.
func (u *ReportUpsert) SetOriginalInput(v map[string]interface{}) *ReportUpsert {
	u.Set(report.FieldOriginalInput, v)
	return u
}

// UpdateOriginalInput sets the "original_input" field to the value that was provided on create.
func (u *ReportUpsert) UpdateOriginalInput() *ReportUpsert {
	u.SetExcluded(report.FieldOriginalInput)
	return u
}

// ClearOriginalInput clears the value of the "original_input" field.
func (u *ReportUpsert) ClearOriginalInput() *ReportUpsert {
	u.SetNull(report.FieldOriginalInput)
	return u
}

// SetAiGenerated sets the "ai_generated" field.
func (u *ReportUpsert) SetAiGenerated(v map[string]interface{}) *ReportUpsert {
	u.Set(report.FieldAiGenerated, v)
	return u
}

// UpdateAiGenerated sets the "ai_generated" field to the value that was provided on create.
func (u *ReportUpsert) UpdateAiGenerated() *ReportUpsert {
	u.SetExcluded(report.FieldAiGenerated)
	return u
}

// ClearAiGenerated clears the value of the "ai_generated" field.
func (u *ReportUpsert) ClearAiGenerated() *ReportUpsert {
	u.SetNull(report.FieldAiGenerated)
	return u
}

// SetUserEdits sets the "user_edits" field.
func (u *ReportUpsert) SetUserEdits(v map[string]interface{}) *ReportUpsert {
	u.Set(report.FieldUserEdits, v)
	return u
}

// UpdateUserEdits sets the "user_edits" field to the value that was provided on create.
func (u *ReportUpsert) UpdateUserEdits() *ReportUpsert {
	u.SetExcluded(report.FieldUserEdits)
	return u
}

// ClearUserEdits clears the value of the "user_edits" field.
func (u *ReportUpsert) ClearUserEdits() *ReportUpsert {
	u.SetNull(report.FieldUserEdits)
	return u
}

// SetToggles sets the "toggles" field.
func (u *ReportUpsert) SetToggles(v map[string]interface{}) *ReportUpsert {
	u.Set(report.FieldToggles, v)
	return u
}

// UpdateToggles sets the "toggles" field to the value that was provided on create.
func (u *ReportUpsert) UpdateToggles() *ReportUpsert {
	u.SetExcluded(report.FieldToggles)
	return u
}

// ClearToggles clears the value of the "toggles" field.
func (u *ReportUpsert) ClearToggles() *ReportUpsert {
	u.SetNull(report.FieldToggles)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ReportUpsert) SetCreatedAt(v time.Time) *ReportUpsert {
	u.Set(report.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReportUpsert) UpdateCreatedAt() *ReportUpsert {
	u.SetExcluded(report.FieldCreatedAt)
	return u
}

// SetLastSaved sets the "last_saved" field.
func (u *ReportUpsert) SetLastSaved(v time.Time) *ReportUpsert {
	u.Set(report.FieldLastSaved, v)
	return u
}

// UpdateLastSaved sets the "last_saved" field to the value that was provided on create.
func (u *ReportUpsert) UpdateLastSaved() *ReportUpsert {
	u.SetExcluded(report.FieldLastSaved)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(report.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportUpsertOne) UpdateNewValues() *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(report.FieldID)
		}
		if _, exists := u.create.mutation.ReportDate(); exists {
			s.SetIgnore(report.FieldReportDate)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Report.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReportUpsertOne) Ignore() *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportUpsertOne) DoNothing() *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportCreate.OnConflict
// documentation for more info.
func (u *ReportUpsertOne) Update(set func(*ReportUpsert)) *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *ReportUpsertOne) SetProjectID(v uuid.UUID) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateProjectID() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateProjectID()
	})
}

// SetStatus sets the "status" field.
func (u *ReportUpsertOne) SetStatus(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateStatus() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateStatus()
	})
}

// SetCaptureMode sets the "capture_mode" field.
func (u *ReportUpsertOne) SetCaptureMode(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetCaptureMode(v)
	})
}

// UpdateCaptureMode sets the "capture_mode" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateCaptureMode() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateCaptureMode()
	})
}

// SetDeviceID sets the "device_id" field.
func (u *ReportUpsertOne) SetDeviceID(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateDeviceID() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateDeviceID()
	})
}

// SetOriginalInput sets the "original_input" field.
func (u *ReportUpsertOne) SetOriginalInput(v map[string]interface{}) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetOriginalInput(v)
	})
}

// UpdateOriginalInput sets the "original_input" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateOriginalInput() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateOriginalInput()
	})
}

// ClearOriginalInput clears the value of the "original_input" field.
func (u *ReportUpsertOne) ClearOriginalInput() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearOriginalInput()
	})
}

// SetAiGenerated sets the "ai_generated" field.
func (u *ReportUpsertOne) SetAiGenerated(v map[string]interface{}) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetAiGenerated(v)
	})
}

// UpdateAiGenerated sets the "ai_generated" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateAiGenerated() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateAiGenerated()
	})
}

// ClearAiGenerated clears the value of the "ai_generated" field.
func (u *ReportUpsertOne) ClearAiGenerated() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearAiGenerated()
	})
}

// SetUserEdits sets the "user_edits" field.
func (u *ReportUpsertOne) SetUserEdits(v map[string]interface{}) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetUserEdits(v)
	})
}

// UpdateUserEdits sets the "user_edits" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateUserEdits() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateUserEdits()
	})
}

// ClearUserEdits clears the value of the "user_edits" field.
func (u *ReportUpsertOne) ClearUserEdits() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearUserEdits()
	})
}

// SetToggles sets the "toggles" field.
func (u *ReportUpsertOne) SetToggles(v map[string]interface{}) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetToggles(v)
	})
}

// UpdateToggles sets the "toggles" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateToggles() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateToggles()
	})
}

// ClearToggles clears the value of the "toggles" field.
func (u *ReportUpsertOne) ClearToggles() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearToggles()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ReportUpsertOne) SetCreatedAt(v time.Time) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateCreatedAt() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetLastSaved sets the "last_saved" field.
func (u *ReportUpsertOne) SetLastSaved(v time.Time) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetLastSaved(v)
	})
}

// UpdateLastSaved sets the "last_saved" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateLastSaved() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateLastSaved()
	})
}

// Exec executes the query.
func (u *ReportUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReportCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReportUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ReportUpsertOne.ID is not supported by MySQL driver. Use ReportUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReportUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReportCreateBulk is the builder for creating many Report entities in bulk.
type ReportCreateBulk struct {
	config
	err      error
	builders []*ReportCreate
	conflict []sql.ConflictOption
}

// Save creates the Report entities in the database.
func (_c *ReportCreateBulk) Save(ctx context.Context) ([]*Report, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Report, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportMutation)
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
func (_c *ReportCreateBulk) SaveX(ctx context.Context) []*Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Report.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReportUpsertBulk {
	_c.conflict = opts
	return &ReportUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportCreateBulk) OnConflictColumns(columns ...string) *ReportUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportUpsertBulk{
		create: _c,
	}
}

// ReportUpsertBulk is the builder for "upsert"-ing
// a bulk of Report nodes.
type ReportUpsertBulk struct {
	create *ReportCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(report.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportUpsertBulk) UpdateNewValues() *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(report.FieldID)
			}
			if _, exists := b.mutation.ReportDate(); exists {
				s.SetIgnore(report.FieldReportDate)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReportUpsertBulk) Ignore() *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportUpsertBulk) DoNothing() *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportCreateBulk.OnConflict
// documentation for more info.
func (u *ReportUpsertBulk) Update(set func(*ReportUpsert)) *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *ReportUpsertBulk) SetProjectID(v uuid.UUID) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateProjectID() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateProjectID()
	})
}

// SetStatus sets the "status" field.
func (u *ReportUpsertBulk) SetStatus(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateStatus() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateStatus()
	})
}

// SetCaptureMode sets the "capture_mode" field.
func (u *ReportUpsertBulk) SetCaptureMode(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetCaptureMode(v)
	})
}

// UpdateCaptureMode sets the "capture_mode" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateCaptureMode() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateCaptureMode()
	})
}

// SetDeviceID sets the "device_id" field.
func (u *ReportUpsertBulk) SetDeviceID(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateDeviceID() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateDeviceID()
	})
}

// SetOriginalInput sets the "original_input" field.
func (u *ReportUpsertBulk) SetOriginalInput(v map[string]interface{}) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetOriginalInput(v)
	})
}

// UpdateOriginalInput sets the "original_input" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateOriginalInput() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateOriginalInput()
	})
}

// ClearOriginalInput clears the value of the "original_input" field.
func (u *ReportUpsertBulk) ClearOriginalInput() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearOriginalInput()
	})
}

// SetAiGenerated sets the "ai_generated" field.
func (u *ReportUpsertBulk) SetAiGenerated(v map[string]interface{}) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetAiGenerated(v)
	})
}

// UpdateAiGenerated sets the "ai_generated" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateAiGenerated() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateAiGenerated()
	})
}

// ClearAiGenerated clears the value of the "ai_generated" field.
func (u *ReportUpsertBulk) ClearAiGenerated() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearAiGenerated()
	})
}

// SetUserEdits sets the "user_edits" field.
func (u *ReportUpsertBulk) SetUserEdits(v map[string]interface{}) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetUserEdits(v)
	})
}

// UpdateUserEdits sets the "user_edits" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateUserEdits() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateUserEdits()
	})
}

// ClearUserEdits clears the value of the "user_edits" field.
func (u *ReportUpsertBulk) ClearUserEdits() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearUserEdits()
	})
}

// SetToggles sets the "toggles" field.
func (u *ReportUpsertBulk) SetToggles(v map[string]interface{}) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetToggles(v)
	})
}

// UpdateToggles sets the "toggles" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateToggles() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateToggles()
	})
}

// ClearToggles clears the value of the "toggles" field.
func (u *ReportUpsertBulk) ClearToggles() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearToggles()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ReportUpsertBulk) SetCreatedAt(v time.Time) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateCreatedAt() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetLastSaved sets the "last_saved" field.
func (u *ReportUpsertBulk) SetLastSaved(v time.Time) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetLastSaved(v)
	})
}

// UpdateLastSaved sets the "last_saved" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateLastSaved() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateLastSaved()
	})
}

// Exec executes the query.
func (u *ReportUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReportCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReportCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
