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
	"github.com/fieldlog/fieldlog/gen/ent/editlock"
	"github.com/fieldlog/fieldlog/gen/ent/predicate"
	"github.com/google/uuid"
)

// EditLockUpdate is the builder for updating EditLock entities.
type EditLockUpdate struct {
	config
	hooks    []Hook
	mutation *EditLockMutation
}

// Where appends a list predicates to the EditLockUpdate builder.
func (_u *EditLockUpdate) Where(ps ...predicate.EditLock) *EditLockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *EditLockUpdate) SetProjectID(v uuid.UUID) *EditLockUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *EditLockUpdate) SetNillableProjectID(v *uuid.UUID) *EditLockUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetReportDate sets the "report_date" field.
func (_u *EditLockUpdate) SetReportDate(v time.Time) *EditLockUpdate {
	_u.mutation.SetReportDate(v)
	return _u
}

// SetNillableReportDate sets the "report_date" field if the given value is not nil.
func (_u *EditLockUpdate) SetNillableReportDate(v *time.Time) *EditLockUpdate {
	if v != nil {
		_u.SetReportDate(*v)
	}
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *EditLockUpdate) SetDeviceID(v string) *EditLockUpdate {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *EditLockUpdate) SetNillableDeviceID(v *string) *EditLockUpdate {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetHolderName sets the "holder_name" field.
func (_u *EditLockUpdate) SetHolderName(v string) *EditLockUpdate {
	_u.mutation.SetHolderName(v)
	return _u
}

// SetNillableHolderName sets the "holder_name" field if the given value is not nil.
func (_u *EditLockUpdate) SetNillableHolderName(v *string) *EditLockUpdate {
	if v != nil {
		_u.SetHolderName(*v)
	}
	return _u
}

// SetAcquiredAt sets the "acquired_at" field.
func (_u *EditLockUpdate) SetAcquiredAt(v time.Time) *EditLockUpdate {
	_u.mutation.SetAcquiredAt(v)
	return _u
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_u *EditLockUpdate) SetNillableAcquiredAt(v *time.Time) *EditLockUpdate {
	if v != nil {
		_u.SetAcquiredAt(*v)
	}
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *EditLockUpdate) SetHeartbeatAt(v time.Time) *EditLockUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *EditLockUpdate) SetNillableHeartbeatAt(v *time.Time) *EditLockUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// Mutation returns the EditLockMutation object of the builder.
func (_u *EditLockUpdate) Mutation() *EditLockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EditLockUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EditLockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EditLockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EditLockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EditLockUpdate) check() error {
	if v, ok := _u.mutation.DeviceID(); ok {
		if err := editlock.DeviceIDValidator(v); err != nil {
			return &ValidationError{Name: "device_id", err: fmt.Errorf(`ent: validator failed for field "EditLock.device_id": %w`, err)}
		}
	}
	return nil
}

func (_u *EditLockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(editlock.Table, editlock.Columns, sqlgraph.NewFieldSpec(editlock.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(editlock.FieldProjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ReportDate(); ok {
		_spec.SetField(editlock.FieldReportDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(editlock.FieldDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.HolderName(); ok {
		_spec.SetField(editlock.FieldHolderName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcquiredAt(); ok {
		_spec.SetField(editlock.FieldAcquiredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(editlock.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{editlock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EditLockUpdateOne is the builder for updating a single EditLock entity.
type EditLockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EditLockMutation
}

// SetProjectID sets the "project_id" field.
func (_u *EditLockUpdateOne) SetProjectID(v uuid.UUID) *EditLockUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *EditLockUpdateOne) SetNillableProjectID(v *uuid.UUID) *EditLockUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetReportDate sets the "report_date" field.
func (_u *EditLockUpdateOne) SetReportDate(v time.Time) *EditLockUpdateOne {
	_u.mutation.SetReportDate(v)
	return _u
}

// SetNillableReportDate sets the "report_date" field if the given value is not nil.
func (_u *EditLockUpdateOne) SetNillableReportDate(v *time.Time) *EditLockUpdateOne {
	if v != nil {
		_u.SetReportDate(*v)
	}
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *EditLockUpdateOne) SetDeviceID(v string) *EditLockUpdateOne {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *EditLockUpdateOne) SetNillableDeviceID(v *string) *EditLockUpdateOne {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetHolderName sets the "holder_name" field.
func (_u *EditLockUpdateOne) SetHolderName(v string) *EditLockUpdateOne {
	_u.mutation.SetHolderName(v)
	return _u
}

// SetNillableHolderName sets the "holder_name" field if the given value is not nil.
func (_u *EditLockUpdateOne) SetNillableHolderName(v *string) *EditLockUpdateOne {
	if v != nil {
		_u.SetHolderName(*v)
	}
	return _u
}

// SetAcquiredAt sets the "acquired_at" field.
func (_u *EditLockUpdateOne) SetAcquiredAt(v time.Time) *EditLockUpdateOne {
	_u.mutation.SetAcquiredAt(v)
	return _u
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_u *EditLockUpdateOne) SetNillableAcquiredAt(v *time.Time) *EditLockUpdateOne {
	if v != nil {
		_u.SetAcquiredAt(*v)
	}
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *EditLockUpdateOne) SetHeartbeatAt(v time.Time) *EditLockUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *EditLockUpdateOne) SetNillableHeartbeatAt(v *time.Time) *EditLockUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// Mutation returns the EditLockMutation object of the builder.
func (_u *EditLockUpdateOne) Mutation() *EditLockMutation {
	return _u.mutation
}

// Where appends a list predicates to the EditLockUpdate builder.
func (_u *EditLockUpdateOne) Where(ps ...predicate.EditLock) *EditLockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EditLockUpdateOne) Select(field string, fields ...string) *EditLockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EditLock entity.
func (_u *EditLockUpdateOne) Save(ctx context.Context) (*EditLock, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EditLockUpdateOne) SaveX(ctx context.Context) *EditLock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EditLockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EditLockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EditLockUpdateOne) check() error {
	if v, ok := _u.mutation.DeviceID(); ok {
		if err := editlock.DeviceIDValidator(v); err != nil {
			return &ValidationError{Name: "device_id", err: fmt.Errorf(`ent: validator failed for field "EditLock.device_id": %w`, err)}
		}
	}
	return nil
}

func (_u *EditLockUpdateOne) sqlSave(ctx context.Context) (_node *EditLock, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(editlock.Table, editlock.Columns, sqlgraph.NewFieldSpec(editlock.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EditLock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, editlock.FieldID)
		for _, f := range fields {
			if !editlock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != editlock.FieldID {
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
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(editlock.FieldProjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ReportDate(); ok {
		_spec.SetField(editlock.FieldReportDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(editlock.FieldDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.HolderName(); ok {
		_spec.SetField(editlock.FieldHolderName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcquiredAt(); ok {
		_spec.SetField(editlock.FieldAcquiredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(editlock.FieldHeartbeatAt, field.TypeTime, value)
	}
	_node = &EditLock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{editlock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
