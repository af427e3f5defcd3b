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
	"github.com/fieldlog/fieldlog/gen/ent/predicate"
	"github.com/fieldlog/fieldlog/gen/ent/reportrawcapture"
	"github.com/google/uuid"
)

// ReportRawCaptureUpdate is the builder for updating ReportRawCapture entities.
type ReportRawCaptureUpdate struct {
	config
	hooks    []Hook
	mutation *ReportRawCaptureMutation
}

// Where appends a list predicates to the ReportRawCaptureUpdate builder.
func (_u *ReportRawCaptureUpdate) Where(ps ...predicate.ReportRawCapture) *ReportRawCaptureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *ReportRawCaptureUpdate) SetReportID(v uuid.UUID) *ReportRawCaptureUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *ReportRawCaptureUpdate) SetNillableReportID(v *uuid.UUID) *ReportRawCaptureUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetCaptureMode sets the "capture_mode" field.
func (_u *ReportRawCaptureUpdate) SetCaptureMode(v string) *ReportRawCaptureUpdate {
	_u.mutation.SetCaptureMode(v)
	return _u
}

// SetNillableCaptureMode sets the "capture_mode" field if the given value is not nil.
func (_u *ReportRawCaptureUpdate) SetNillableCaptureMode(v *string) *ReportRawCaptureUpdate {
	if v != nil {
		_u.SetCaptureMode(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ReportRawCaptureUpdate) SetPayload(v map[string]interface{}) *ReportRawCaptureUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReportRawCaptureUpdate) SetCreatedAt(v time.Time) *ReportRawCaptureUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReportRawCaptureUpdate) SetNillableCreatedAt(v *time.Time) *ReportRawCaptureUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ReportRawCaptureMutation object of the builder.
func (_u *ReportRawCaptureUpdate) Mutation() *ReportRawCaptureMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportRawCaptureUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportRawCaptureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportRawCaptureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportRawCaptureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportRawCaptureUpdate) check() error {
	if v, ok := _u.mutation.CaptureMode(); ok {
		if err := reportrawcapture.CaptureModeValidator(v); err != nil {
			return &ValidationError{Name: "capture_mode", err: fmt.Errorf(`ent: validator failed for field "ReportRawCapture.capture_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportRawCaptureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportrawcapture.Table, reportrawcapture.Columns, sqlgraph.NewFieldSpec(reportrawcapture.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(reportrawcapture.FieldReportID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CaptureMode(); ok {
		_spec.SetField(reportrawcapture.FieldCaptureMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(reportrawcapture.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reportrawcapture.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportrawcapture.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportRawCaptureUpdateOne is the builder for updating a single ReportRawCapture entity.
type ReportRawCaptureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportRawCaptureMutation
}

// SetReportID sets the "report_id" field.
func (_u *ReportRawCaptureUpdateOne) SetReportID(v uuid.UUID) *ReportRawCaptureUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *ReportRawCaptureUpdateOne) SetNillableReportID(v *uuid.UUID) *ReportRawCaptureUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetCaptureMode sets the "capture_mode" field.
func (_u *ReportRawCaptureUpdateOne) SetCaptureMode(v string) *ReportRawCaptureUpdateOne {
	_u.mutation.SetCaptureMode(v)
	return _u
}

// SetNillableCaptureMode sets the "capture_mode" field if the given value is not nil.
func (_u *ReportRawCaptureUpdateOne) SetNillableCaptureMode(v *string) *ReportRawCaptureUpdateOne {
	if v != nil {
		_u.SetCaptureMode(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ReportRawCaptureUpdateOne) SetPayload(v map[string]interface{}) *ReportRawCaptureUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReportRawCaptureUpdateOne) SetCreatedAt(v time.Time) *ReportRawCaptureUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReportRawCaptureUpdateOne) SetNillableCreatedAt(v *time.Time) *ReportRawCaptureUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ReportRawCaptureMutation object of the builder.
func (_u *ReportRawCaptureUpdateOne) Mutation() *ReportRawCaptureMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReportRawCaptureUpdate builder.
func (_u *ReportRawCaptureUpdateOne) Where(ps ...predicate.ReportRawCapture) *ReportRawCaptureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportRawCaptureUpdateOne) Select(field string, fields ...string) *ReportRawCaptureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReportRawCapture entity.
func (_u *ReportRawCaptureUpdateOne) Save(ctx context.Context) (*ReportRawCapture, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportRawCaptureUpdateOne) SaveX(ctx context.Context) *ReportRawCapture {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportRawCaptureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportRawCaptureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportRawCaptureUpdateOne) check() error {
	if v, ok := _u.mutation.CaptureMode(); ok {
		if err := reportrawcapture.CaptureModeValidator(v); err != nil {
			return &ValidationError{Name: "capture_mode", err: fmt.Errorf(`ent: validator failed for field "ReportRawCapture.capture_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportRawCaptureUpdateOne) sqlSave(ctx context.Context) (_node *ReportRawCapture, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportrawcapture.Table, reportrawcapture.Columns, sqlgraph.NewFieldSpec(reportrawcapture.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReportRawCapture.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportrawcapture.FieldID)
		for _, f := range fields {
			if !reportrawcapture.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reportrawcapture.FieldID {
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
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(reportrawcapture.FieldReportID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CaptureMode(); ok {
		_spec.SetField(reportrawcapture.FieldCaptureMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(reportrawcapture.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reportrawcapture.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &ReportRawCapture{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportrawcapture.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
