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
	"github.com/fieldlog/fieldlog/gen/ent/report"
	"github.com/google/uuid"
)

// PhotoUpdate is the builder for updating Photo entities.
type PhotoUpdate struct {
	config
	hooks    []Hook
	mutation *PhotoMutation
}

// Where appends a list predicates to the PhotoUpdate builder.
func (_u *PhotoUpdate) Where(ps ...predicate.Photo) *PhotoUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *PhotoUpdate) SetReportID(v uuid.UUID) *PhotoUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *PhotoUpdate) SetNillableReportID(v *uuid.UUID) *PhotoUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetLocalPhotoID sets the "local_photo_id" field.
func (_u *PhotoUpdate) SetLocalPhotoID(v string) *PhotoUpdate {
	_u.mutation.SetLocalPhotoID(v)
	return _u
}

// SetNillableLocalPhotoID sets the "local_photo_id" field if the given value is not nil.
func (_u *PhotoUpdate) SetNillableLocalPhotoID(v *string) *PhotoUpdate {
	if v != nil {
		_u.SetLocalPhotoID(*v)
	}
	return _u
}

// SetCaption sets the "caption" field.
func (_u *PhotoUpdate) SetCaption(v string) *PhotoUpdate {
	_u.mutation.SetCaption(v)
	return _u
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_u *PhotoUpdate) SetNillableCaption(v *string) *PhotoUpdate {
	if v != nil {
		_u.SetCaption(*v)
	}
	return _u
}

// ClearCaption clears the value of the "caption" field.
func (_u *PhotoUpdate) ClearCaption() *PhotoUpdate {
	_u.mutation.ClearCaption()
	return _u
}

// SetStorePath sets the "store_path" field.
func (_u *PhotoUpdate) SetStorePath(v string) *PhotoUpdate {
	_u.mutation.SetStorePath(v)
	return _u
}

// SetNillableStorePath sets the "store_path" field if the given value is not nil.
func (_u *PhotoUpdate) SetNillableStorePath(v *string) *PhotoUpdate {
	if v != nil {
		_u.SetStorePath(*v)
	}
	return _u
}

// ClearStorePath clears the value of the "store_path" field.
func (_u *PhotoUpdate) ClearStorePath() *PhotoUpdate {
	_u.mutation.ClearStorePath()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *PhotoUpdate) SetLatitude(v float64) *PhotoUpdate {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *PhotoUpdate) SetNillableLatitude(v *float64) *PhotoUpdate {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *PhotoUpdate) AddLatitude(v float64) *PhotoUpdate {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *PhotoUpdate) ClearLatitude() *PhotoUpdate {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *PhotoUpdate) SetLongitude(v float64) *PhotoUpdate {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *PhotoUpdate) SetNillableLongitude(v *float64) *PhotoUpdate {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *PhotoUpdate) AddLongitude(v float64) *PhotoUpdate {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *PhotoUpdate) ClearLongitude() *PhotoUpdate {
	_u.mutation.ClearLongitude()
	return _u
}

// SetTakenAt sets the "taken_at" field.
func (_u *PhotoUpdate) SetTakenAt(v time.Time) *PhotoUpdate {
	_u.mutation.SetTakenAt(v)
	return _u
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_u *PhotoUpdate) SetNillableTakenAt(v *time.Time) *PhotoUpdate {
	if v != nil {
		_u.SetTakenAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PhotoUpdate) SetCreatedAt(v time.Time) *PhotoUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PhotoUpdate) SetNillableCreatedAt(v *time.Time) *PhotoUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *PhotoUpdate) SetReport(v *Report) *PhotoUpdate {
	return _u.SetReportID(v.ID)
}

// Mutation returns the PhotoMutation object of the builder.
func (_u *PhotoUpdate) Mutation() *PhotoMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *PhotoUpdate) ClearReport() *PhotoUpdate {
	_u.mutation.ClearReport()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PhotoUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhotoUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PhotoUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhotoUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhotoUpdate) check() error {
	if v, ok := _u.mutation.LocalPhotoID(); ok {
		if err := photo.LocalPhotoIDValidator(v); err != nil {
			return &ValidationError{Name: "local_photo_id", err: fmt.Errorf(`ent: validator failed for field "Photo.local_photo_id": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Photo.report"`)
	}
	return nil
}

func (_u *PhotoUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(photo.Table, photo.Columns, sqlgraph.NewFieldSpec(photo.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LocalPhotoID(); ok {
		_spec.SetField(photo.FieldLocalPhotoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Caption(); ok {
		_spec.SetField(photo.FieldCaption, field.TypeString, value)
	}
	if _u.mutation.CaptionCleared() {
		_spec.ClearField(photo.FieldCaption, field.TypeString)
	}
	if value, ok := _u.mutation.StorePath(); ok {
		_spec.SetField(photo.FieldStorePath, field.TypeString, value)
	}
	if _u.mutation.StorePathCleared() {
		_spec.ClearField(photo.FieldStorePath, field.TypeString)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(photo.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(photo.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(photo.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(photo.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(photo.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(photo.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TakenAt(); ok {
		_spec.SetField(photo.FieldTakenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(photo.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{photo.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PhotoUpdateOne is the builder for updating a single Photo entity.
type PhotoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PhotoMutation
}

// SetReportID sets the "report_id" field.
func (_u *PhotoUpdateOne) SetReportID(v uuid.UUID) *PhotoUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *PhotoUpdateOne) SetNillableReportID(v *uuid.UUID) *PhotoUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetLocalPhotoID sets the "local_photo_id" field.
func (_u *PhotoUpdateOne) SetLocalPhotoID(v string) *PhotoUpdateOne {
	_u.mutation.SetLocalPhotoID(v)
	return _u
}

// SetNillableLocalPhotoID sets the "local_photo_id" field if the given value is not nil.
func (_u *PhotoUpdateOne) SetNillableLocalPhotoID(v *string) *PhotoUpdateOne {
	if v != nil {
		_u.SetLocalPhotoID(*v)
	}
	return _u
}

// SetCaption sets the "caption" field.
func (_u *PhotoUpdateOne) SetCaption(v string) *PhotoUpdateOne {
	_u.mutation.SetCaption(v)
	return _u
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_u *PhotoUpdateOne) SetNillableCaption(v *string) *PhotoUpdateOne {
	if v != nil {
		_u.SetCaption(*v)
	}
	return _u
}

// ClearCaption clears the value of the "caption" field.
func (_u *PhotoUpdateOne) ClearCaption() *PhotoUpdateOne {
	_u.mutation.ClearCaption()
	return _u
}

// SetStorePath sets the "store_path" field.
func (_u *PhotoUpdateOne) SetStorePath(v string) *PhotoUpdateOne {
	_u.mutation.SetStorePath(v)
	return _u
}

// SetNillableStorePath sets the "store_path" field if the given value is not nil.
func (_u *PhotoUpdateOne) SetNillableStorePath(v *string) *PhotoUpdateOne {
	if v != nil {
		_u.SetStorePath(*v)
	}
	return _u
}

// ClearStorePath clears the value of the "store_path" field.
func (_u *PhotoUpdateOne) ClearStorePath() *PhotoUpdateOne {
	_u.mutation.ClearStorePath()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *PhotoUpdateOne) SetLatitude(v float64) *PhotoUpdateOne {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *PhotoUpdateOne) SetNillableLatitude(v *float64) *PhotoUpdateOne {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *PhotoUpdateOne) AddLatitude(v float64) *PhotoUpdateOne {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *PhotoUpdateOne) ClearLatitude() *PhotoUpdateOne {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *PhotoUpdateOne) SetLongitude(v float64) *PhotoUpdateOne {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *PhotoUpdateOne) SetNillableLongitude(v *float64) *PhotoUpdateOne {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *PhotoUpdateOne) AddLongitude(v float64) *PhotoUpdateOne {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *PhotoUpdateOne) ClearLongitude() *PhotoUpdateOne {
	_u.mutation.ClearLongitude()
	return _u
}

// SetTakenAt sets the "taken_at" field.
func (_u *PhotoUpdateOne) SetTakenAt(v time.Time) *PhotoUpdateOne {
	_u.mutation.SetTakenAt(v)
	return _u
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_u *PhotoUpdateOne) SetNillableTakenAt(v *time.Time) *PhotoUpdateOne {
	if v != nil {
		_u.SetTakenAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PhotoUpdateOne) SetCreatedAt(v time.Time) *PhotoUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PhotoUpdateOne) SetNillableCreatedAt(v *time.Time) *PhotoUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *PhotoUpdateOne) SetReport(v *Report) *PhotoUpdateOne {
	return _u.SetReportID(v.ID)
}

// Mutation returns the PhotoMutation object of the builder.
func (_u *PhotoUpdateOne) Mutation() *PhotoMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *PhotoUpdateOne) ClearReport() *PhotoUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// Where appends a list predicates to the PhotoUpdate builder.
func (_u *PhotoUpdateOne) Where(ps ...predicate.Photo) *PhotoUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PhotoUpdateOne) Select(field string, fields ...string) *PhotoUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Photo entity.
func (_u *PhotoUpdateOne) Save(ctx context.Context) (*Photo, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhotoUpdateOne) SaveX(ctx context.Context) *Photo {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PhotoUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhotoUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhotoUpdateOne) check() error {
	if v, ok := _u.mutation.LocalPhotoID(); ok {
		if err := photo.LocalPhotoIDValidator(v); err != nil {
			return &ValidationError{Name: "local_photo_id", err: fmt.Errorf(`ent: validator failed for field "Photo.local_photo_id": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Photo.report"`)
	}
	return nil
}

func (_u *PhotoUpdateOne) sqlSave(ctx context.Context) (_node *Photo, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(photo.Table, photo.Columns, sqlgraph.NewFieldSpec(photo.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Photo.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, photo.FieldID)
		for _, f := range fields {
			if !photo.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != photo.FieldID {
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
	if value, ok := _u.mutation.LocalPhotoID(); ok {
		_spec.SetField(photo.FieldLocalPhotoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Caption(); ok {
		_spec.SetField(photo.FieldCaption, field.TypeString, value)
	}
	if _u.mutation.CaptionCleared() {
		_spec.ClearField(photo.FieldCaption, field.TypeString)
	}
	if value, ok := _u.mutation.StorePath(); ok {
		_spec.SetField(photo.FieldStorePath, field.TypeString, value)
	}
	if _u.mutation.StorePathCleared() {
		_spec.ClearField(photo.FieldStorePath, field.TypeString)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(photo.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(photo.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(photo.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(photo.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(photo.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(photo.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TakenAt(); ok {
		_spec.SetField(photo.FieldTakenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(photo.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Photo{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{photo.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
