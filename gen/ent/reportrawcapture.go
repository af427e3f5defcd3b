// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fieldlog/fieldlog/gen/ent/reportrawcapture"
	"github.com/google/uuid"
)

// ReportRawCapture is the model entity for the ReportRawCapture schema.
type ReportRawCapture struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID uuid.UUID `json:"report_id,omitempty"`
	// CaptureMode holds the value of the "capture_mode" field.
	CaptureMode string `json:"capture_mode,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReportRawCapture) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reportrawcapture.FieldPayload:
			values[i] = new([]byte)
		case reportrawcapture.FieldCaptureMode:
			values[i] = new(sql.NullString)
		case reportrawcapture.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case reportrawcapture.FieldID, reportrawcapture.FieldReportID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReportRawCapture fields.
func (_m *ReportRawCapture) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reportrawcapture.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case reportrawcapture.FieldReportID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value != nil {
				_m.ReportID = *value
			}
		case reportrawcapture.FieldCaptureMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field capture_mode", values[i])
			} else if value.Valid {
				_m.CaptureMode = value.String
			}
		case reportrawcapture.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case reportrawcapture.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReportRawCapture.
// This includes values selected through modifiers, order, etc.
func (_m *ReportRawCapture) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReportRawCapture.
// Note that you need to call ReportRawCapture.Unwrap() before calling this method if this ReportRawCapture
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReportRawCapture) Update() *ReportRawCaptureUpdateOne {
	return NewReportRawCaptureClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReportRawCapture entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReportRawCapture) Unwrap() *ReportRawCapture {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReportRawCapture is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReportRawCapture) String() string {
	var builder strings.Builder
	builder.WriteString("ReportRawCapture(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReportID))
	builder.WriteString(", ")
	builder.WriteString("capture_mode=")
	builder.WriteString(_m.CaptureMode)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReportRawCaptures is a parsable slice of ReportRawCapture.
type ReportRawCaptures []*ReportRawCapture
