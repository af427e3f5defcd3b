// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fieldlog/fieldlog/gen/ent/photo"
	"github.com/fieldlog/fieldlog/gen/ent/predicate"
	"github.com/fieldlog/fieldlog/gen/ent/project"
	"github.com/fieldlog/fieldlog/gen/ent/report"
	"github.com/fieldlog/fieldlog/gen/ent/reportentry"
	"github.com/google/uuid"
)

// ReportUpdate is the builder for updating Report entities.
type ReportUpdate struct {
	config
	hooks    []Hook
	mutation *ReportMutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdate) Where(ps ...predicate.Report) *ReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ReportUpdate) SetProjectID(v uuid.UUID) *ReportUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableProjectID(v *uuid.UUID) *ReportUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportUpdate) SetStatus(v string) *ReportUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableStatus(v *string) *ReportUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCaptureMode sets the "capture_mode" field.
func (_u *ReportUpdate) SetCaptureMode(v string) *ReportUpdate {
	_u.mutation.SetCaptureMode(v)
	return _u
}

// SetNillableCaptureMode sets the "capture_mode" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableCaptureMode(v *string) *ReportUpdate {
	if v != nil {
		_u.SetCaptureMode(*v)
	}
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *ReportUpdate) SetDeviceID(v string) *ReportUpdate {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableDeviceID(v *string) *ReportUpdate {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetOriginalInput sets the "original_input" field.
func (_u *ReportUpdate) SetOriginalInput(v map[string]interface{}) *ReportUpdate {
	_u.mutation.SetOriginalInput(v)
	return _u
}

// ClearOriginalInput clears the value of the "original_input" field.
func (_u *ReportUpdate) ClearOriginalInput() *ReportUpdate {
	_u.mutation.ClearOriginalInput()
	return _u
}

// SetAiGenerated sets the "ai_generated" field.
func (_u *ReportUpdate) SetAiGenerated(v map[string]interface{}) *ReportUpdate {
	_u.mutation.SetAiGenerated(v)
	return _u
}

// ClearAiGenerated clears the value of the "ai_generated" field.
func (_u *ReportUpdate) ClearAiGenerated() *ReportUpdate {
	_u.mutation.ClearAiGenerated()
	return _u
}

// SetUserEdits sets the "user_edits" field.
func (_u *ReportUpdate) SetUserEdits(v map[string]interface{}) *ReportUpdate {
	_u.mutation.SetUserEdits(v)
	return _u
}

// ClearUserEdits clears the value of the "user_edits" field.
func (_u *ReportUpdate) ClearUserEdits() *ReportUpdate {
	_u.mutation.ClearUserEdits()
	return _u
}

// SetToggles sets the "toggles" field.
func (_u *ReportUpdate) SetToggles(v map[string]interface{}) *ReportUpdate {
	_u.mutation.SetToggles(v)
	return _u
}

// ClearToggles clears the value of the "toggles" field.
func (_u *ReportUpdate) ClearToggles() *ReportUpdate {
	_u.mutation.ClearToggles()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReportUpdate) SetCreatedAt(v time.Time) *ReportUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableCreatedAt(v *time.Time) *ReportUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetLastSaved sets the "last_saved" field.
func (_u *ReportUpdate) SetLastSaved(v time.Time) *ReportUpdate {
	_u.mutation.SetLastSaved(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ReportUpdate) SetProject(v *Project) *ReportUpdate {
	return _u.SetProjectID(v.ID)
}

// AddEntryIDs adds the "entries" edge to the ReportEntry entity by IDs.
func (_u *ReportUpdate) AddEntryIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.AddEntryIDs(ids...)
	return _u
}

// AddEntries adds the "entries" edges to the ReportEntry entity.
func (_u *ReportUpdate) AddEntries(v ...*ReportEntry) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntryIDs(ids...)
}

// AddPhotoIDs adds the "photos" edge to the Photo entity by IDs.
func (_u *ReportUpdate) AddPhotoIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.AddPhotoIDs(ids...)
	return _u
}

// AddPhotos adds the "photos" edges to the Photo entity.
func (_u *ReportUpdate) AddPhotos(v ...*Photo) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPhotoIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdate) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ReportUpdate) ClearProject() *ReportUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearEntries clears all "entries" edges to the ReportEntry entity.
func (_u *ReportUpdate) ClearEntries() *ReportUpdate {
	_u.mutation.ClearEntries()
	return _u
}

// RemoveEntryIDs removes the "entries" edge to ReportEntry entities by IDs.
func (_u *ReportUpdate) RemoveEntryIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.RemoveEntryIDs(ids...)
	return _u
}

// RemoveEntries removes "entries" edges to ReportEntry entities.
func (_u *ReportUpdate) RemoveEntries(v ...*ReportEntry) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntryIDs(ids...)
}

// ClearPhotos clears all "photos" edges to the Photo entity.
func (_u *ReportUpdate) ClearPhotos() *ReportUpdate {
	_u.mutation.ClearPhotos()
	return _u
}

// RemovePhotoIDs removes the "photos" edge to Photo entities by IDs.
func (_u *ReportUpdate) RemovePhotoIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.RemovePhotoIDs(ids...)
	return _u
}

// RemovePhotos removes "photos" edges to Photo entities.
func (_u *ReportUpdate) RemovePhotos(v ...*Photo) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePhotoIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdate) defaults() {
	if _, ok := _u.mutation.LastSaved(); !ok {
		v := report.UpdateDefaultLastSaved()
		_u.mutation.SetLastSaved(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaptureMode(); ok {
		if err := report.CaptureModeValidator(v); err != nil {
			return &ValidationError{Name: "capture_mode", err: fmt.Errorf(`ent: validator failed for field "Report.capture_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeviceID(); ok {
		if err := report.DeviceIDValidator(v); err != nil {
			return &ValidationError{Name: "device_id", err: fmt.Errorf(`ent: validator failed for field "Report.device_id": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.project"`)
	}
	return nil
}

func (_u *ReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaptureMode(); ok {
		_spec.SetField(report.FieldCaptureMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(report.FieldDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalInput(); ok {
		_spec.SetField(report.FieldOriginalInput, field.TypeJSON, value)
	}
	if _u.mutation.OriginalInputCleared() {
		_spec.ClearField(report.FieldOriginalInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.AiGenerated(); ok {
		_spec.SetField(report.FieldAiGenerated, field.TypeJSON, value)
	}
	if _u.mutation.AiGeneratedCleared() {
		_spec.ClearField(report.FieldAiGenerated, field.TypeJSON)
	}
	if value, ok := _u.mutation.UserEdits(); ok {
		_spec.SetField(report.FieldUserEdits, field.TypeJSON, value)
	}
	if _u.mutation.UserEditsCleared() {
		_spec.ClearField(report.FieldUserEdits, field.TypeJSON)
	}
	if value, ok := _u.mutation.Toggles(); ok {
		_spec.SetField(report.FieldToggles, field.TypeJSON, value)
	}
	if _u.mutation.TogglesCleared() {
		_spec.ClearField(report.FieldToggles, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(report.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSaved(); ok {
		_spec.SetField(report.FieldLastSaved, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !_u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PhotosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPhotosIDs(); len(nodes) > 0 && !_u.mutation.PhotosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PhotosIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportUpdateOne is the builder for updating a single Report entity.
type ReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportMutation
}

// SetProjectID sets the "project_id" field.
func (_u *ReportUpdateOne) SetProjectID(v uuid.UUID) *ReportUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableProjectID(v *uuid.UUID) *ReportUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportUpdateOne) SetStatus(v string) *ReportUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableStatus(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCaptureMode sets the "capture_mode" field.
func (_u *ReportUpdateOne) SetCaptureMode(v string) *ReportUpdateOne {
	_u.mutation.SetCaptureMode(v)
	return _u
}

// SetNillableCaptureMode sets the "capture_mode" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableCaptureMode(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetCaptureMode(*v)
	}
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *ReportUpdateOne) SetDeviceID(v string) *ReportUpdateOne {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableDeviceID(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetOriginalInput sets the "original_input" field.
func (_u *ReportUpdateOne) SetOriginalInput(v map[string]interface{}) *ReportUpdateOne {
	_u.mutation.SetOriginalInput(v)
	return _u
}

// ClearOriginalInput clears the value of the "original_input" field.
func (_u *ReportUpdateOne) ClearOriginalInput() *ReportUpdateOne {
	_u.mutation.ClearOriginalInput()
	return _u
}

// SetAiGenerated sets the "ai_generated" field.
func (_u *ReportUpdateOne) SetAiGenerated(v map[string]interface{}) *ReportUpdateOne {
	_u.mutation.SetAiGenerated(v)
	return _u
}

// ClearAiGenerated clears the value of the "ai_generated" field.
func (_u *ReportUpdateOne) ClearAiGenerated() *ReportUpdateOne {
	_u.mutation.ClearAiGenerated()
	return _u
}

// SetUserEdits sets the "user_edits" field.
func (_u *ReportUpdateOne) SetUserEdits(v map[string]interface{}) *ReportUpdateOne {
	_u.mutation.SetUserEdits(v)
	return _u
}

// ClearUserEdits clears the value of the "user_edits" field.
func (_u *ReportUpdateOne) ClearUserEdits() *ReportUpdateOne {
	_u.mutation.ClearUserEdits()
	return _u
}

// SetToggles sets the "toggles" field.
func (_u *ReportUpdateOne) SetToggles(v map[string]interface{}) *ReportUpdateOne {
	_u.mutation.SetToggles(v)
	return _u
}

// ClearToggles clears the value of the "toggles" field.
func (_u *ReportUpdateOne) ClearToggles() *ReportUpdateOne {
	_u.mutation.ClearToggles()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReportUpdateOne) SetCreatedAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableCreatedAt(v *time.Time) *ReportUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetLastSaved sets the "last_saved" field.
func (_u *ReportUpdateOne) SetLastSaved(v time.Time) *ReportUpdateOne {
	_u.mutation.SetLastSaved(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ReportUpdateOne) SetProject(v *Project) *ReportUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddEntryIDs adds the "entries" edge to the ReportEntry entity by IDs.
func (_u *ReportUpdateOne) AddEntryIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.AddEntryIDs(ids...)
	return _u
}

// AddEntries adds the "entries" edges to the ReportEntry entity.
func (_u *ReportUpdateOne) AddEntries(v ...*ReportEntry) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntryIDs(ids...)
}

// AddPhotoIDs adds the "photos" edge to the Photo entity by IDs.
func (_u *ReportUpdateOne) AddPhotoIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.AddPhotoIDs(ids...)
	return _u
}

// AddPhotos adds the "photos" edges to the Photo entity.
func (_u *ReportUpdateOne) AddPhotos(v ...*Photo) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPhotoIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdateOne) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ReportUpdateOne) ClearProject() *ReportUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearEntries clears all "entries" edges to the ReportEntry entity.
func (_u *ReportUpdateOne) ClearEntries() *ReportUpdateOne {
	_u.mutation.ClearEntries()
	return _u
}

// RemoveEntryIDs removes the "entries" edge to ReportEntry entities by IDs.
func (_u *ReportUpdateOne) RemoveEntryIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.RemoveEntryIDs(ids...)
	return _u
}

// RemoveEntries removes "entries" edges to ReportEntry entities.
func (_u *ReportUpdateOne) RemoveEntries(v ...*ReportEntry) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntryIDs(ids...)
}

// ClearPhotos clears all "photos" edges to the Photo entity.
func (_u *ReportUpdateOne) ClearPhotos() *ReportUpdateOne {
	_u.mutation.ClearPhotos()
	return _u
}

// RemovePhotoIDs removes the "photos" edge to Photo entities by IDs.
func (_u *ReportUpdateOne) RemovePhotoIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.RemovePhotoIDs(ids...)
	return _u
}

// RemovePhotos removes "photos" edges to Photo entities.
func (_u *ReportUpdateOne) RemovePhotos(v ...*Photo) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePhotoIDs(ids...)
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdateOne) Where(ps ...predicate.Report) *ReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportUpdateOne) Select(field string, fields ...string) *ReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Report entity.
func (_u *ReportUpdateOne) Save(ctx context.Context) (*Report, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdateOne) SaveX(ctx context.Context) *Report {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdateOne) defaults() {
	if _, ok := _u.mutation.LastSaved(); !ok {
		v := report.UpdateDefaultLastSaved()
		_u.mutation.SetLastSaved(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaptureMode(); ok {
		if err := report.CaptureModeValidator(v); err != nil {
			return &ValidationError{Name: "capture_mode", err: fmt.Errorf(`ent: validator failed for field "Report.capture_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeviceID(); ok {
		if err := report.DeviceIDValidator(v); err != nil {
			return &ValidationError{Name: "device_id", err: fmt.Errorf(`ent: validator failed for field "Report.device_id": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.project"`)
	}
	return nil
}

func (_u *ReportUpdateOne) sqlSave(ctx context.Context) (_node *Report, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Report.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for _, f := range fields {
			if !report.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != report.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaptureMode(); ok {
		_spec.SetField(report.FieldCaptureMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(report.FieldDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalInput(); ok {
		_spec.SetField(report.FieldOriginalInput, field.TypeJSON, value)
	}
	if _u.mutation.OriginalInputCleared() {
		_spec.ClearField(report.FieldOriginalInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.AiGenerated(); ok {
		_spec.SetField(report.FieldAiGenerated, field.TypeJSON, value)
	}
	if _u.mutation.AiGeneratedCleared() {
		_spec.ClearField(report.FieldAiGenerated, field.TypeJSON)
	}
	if value, ok := _u.mutation.UserEdits(); ok {
		_spec.SetField(report.FieldUserEdits, field.TypeJSON, value)
	}
	if _u.mutation.UserEditsCleared() {
		_spec.ClearField(report.FieldUserEdits, field.TypeJSON)
	}
	if value, ok := _u.mutation.Toggles(); ok {
		_spec.SetField(report.FieldToggles, field.TypeJSON, value)
	}
	if _u.mutation.TogglesCleared() {
		_spec.ClearField(report.FieldToggles, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(report.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSaved(); ok {
		_spec.SetField(report.FieldLastSaved, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !_u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PhotosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPhotosIDs(); len(nodes) > 0 && !_u.mutation.PhotosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PhotosIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Report{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
