// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fieldlog/fieldlog/gen/ent/editlock"
	"github.com/google/uuid"
)

// EditLock is the model entity for the EditLock schema.
type EditLock struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID uuid.UUID `json:"project_id,omitempty"`
	// ReportDate holds the value of the "report_date" field.
	ReportDate time.Time `json:"report_date,omitempty"`
	// DeviceID holds the value of the "device_id" field.
	DeviceID string `json:"device_id,omitempty"`
	// HolderName holds the value of the "holder_name" field.
	HolderName string `json:"holder_name,omitempty"`
	// AcquiredAt holds the value of the "acquired_at" field.
	AcquiredAt time.Time `json:"acquired_at,omitempty"`
	// HeartbeatAt holds the value of the "heartbeat_at" field.
	HeartbeatAt  time.Time `json:"heartbeat_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EditLock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case editlock.FieldDeviceID, editlock.FieldHolderName:
			values[i] = new(sql.NullString)
		case editlock.FieldReportDate, editlock.FieldAcquiredAt, editlock.FieldHeartbeatAt:
			values[i] = new(sql.NullTime)
		case editlock.FieldID, editlock.FieldProjectID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EditLock fields.
func (_m *EditLock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case editlock.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case editlock.FieldProjectID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value != nil {
				_m.ProjectID = *value
			}
		case editlock.FieldReportDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field report_date", values[i])
			} else if value.Valid {
				_m.ReportDate = value.Time
			}
		case editlock.FieldDeviceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_id", values[i])
			} else if value.Valid {
				_m.DeviceID = value.String
			}
		case editlock.FieldHolderName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field holder_name", values[i])
			} else if value.Valid {
				_m.HolderName = value.String
			}
		case editlock.FieldAcquiredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field acquired_at", values[i])
			} else if value.Valid {
				_m.AcquiredAt = value.Time
			}
		case editlock.FieldHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field heartbeat_at", values[i])
			} else if value.Valid {
				_m.HeartbeatAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EditLock.
// This includes values selected through modifiers, order, etc.
func (_m *EditLock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EditLock.
// Note that you need to call EditLock.Unwrap() before calling this method if this EditLock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EditLock) Update() *EditLockUpdateOne {
	return NewEditLockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EditLock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EditLock) Unwrap() *EditLock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EditLock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EditLock) String() string {
	var builder strings.Builder
	builder.WriteString("EditLock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectID))
	builder.WriteString(", ")
	builder.WriteString("report_date=")
	builder.WriteString(_m.ReportDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("device_id=")
	builder.WriteString(_m.DeviceID)
	builder.WriteString(", ")
	builder.WriteString("holder_name=")
	builder.WriteString(_m.HolderName)
	builder.WriteString(", ")
	builder.WriteString("acquired_at=")
	builder.WriteString(_m.AcquiredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("heartbeat_at=")
	builder.WriteString(_m.HeartbeatAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EditLocks is a parsable slice of EditLock.
type EditLocks []*EditLock
