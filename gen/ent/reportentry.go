// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fieldlog/fieldlog/gen/ent/report"
	"github.com/fieldlog/fieldlog/gen/ent/reportentry"
	"github.com/google/uuid"
)

// ReportEntry is the model entity for the ReportEntry schema.
type ReportEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID uuid.UUID `json:"report_id,omitempty"`
	// LocalEntryID holds the value of the "local_entry_id" field.
	LocalEntryID string `json:"local_entry_id,omitempty"`
	// Section holds the value of the "section" field.
	Section string `json:"section,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// ContractorID holds the value of the "contractor_id" field.
	ContractorID *uuid.UUID `json:"contractor_id,omitempty"`
	// ContractorName holds the value of the "contractor_name" field.
	ContractorName string `json:"contractor_name,omitempty"`
	// CapturedAt holds the value of the "captured_at" field.
	CapturedAt time.Time `json:"captured_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReportEntryQuery when eager-loading is set.
	Edges        ReportEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReportEntryEdges holds the relations/edges for other nodes in the graph.
type ReportEntryEdges struct {
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReportEntryEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReportEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reportentry.FieldContractorID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case reportentry.FieldLocalEntryID, reportentry.FieldSection, reportentry.FieldBody, reportentry.FieldContractorName:
			values[i] = new(sql.NullString)
		case reportentry.FieldCapturedAt, reportentry.FieldCreatedAt, reportentry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case reportentry.FieldID, reportentry.FieldReportID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReportEntry fields.
func (_m *ReportEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reportentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case reportentry.FieldReportID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value != nil {
				_m.ReportID = *value
			}
		case reportentry.FieldLocalEntryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field local_entry_id", values[i])
			} else if value.Valid {
				_m.LocalEntryID = value.String
			}
		case reportentry.FieldSection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section", values[i])
			} else if value.Valid {
				_m.Section = value.String
			}
		case reportentry.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case reportentry.FieldContractorID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field contractor_id", values[i])
			} else if value.Valid {
				_m.ContractorID = new(uuid.UUID)
				*_m.ContractorID = *value.S.(*uuid.UUID)
			}
		case reportentry.FieldContractorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contractor_name", values[i])
			} else if value.Valid {
				_m.ContractorName = value.String
			}
		case reportentry.FieldCapturedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field captured_at", values[i])
			} else if value.Valid {
				_m.CapturedAt = value.Time
			}
		case reportentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case reportentry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReportEntry.
// This includes values selected through modifiers, order, etc.
func (_m *ReportEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the ReportEntry entity.
func (_m *ReportEntry) QueryReport() *ReportQuery {
	return NewReportEntryClient(_m.config).QueryReport(_m)
}

// Update returns a builder for updating this ReportEntry.
// Note that you need to call ReportEntry.Unwrap() before calling this method if this ReportEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReportEntry) Update() *ReportEntryUpdateOne {
	return NewReportEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReportEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReportEntry) Unwrap() *ReportEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReportEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReportEntry) String() string {
	var builder strings.Builder
	builder.WriteString("ReportEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReportID))
	builder.WriteString(", ")
	builder.WriteString("local_entry_id=")
	builder.WriteString(_m.LocalEntryID)
	builder.WriteString(", ")
	builder.WriteString("section=")
	builder.WriteString(_m.Section)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	if v := _m.ContractorID; v != nil {
		builder.WriteString("contractor_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("contractor_name=")
	builder.WriteString(_m.ContractorName)
	builder.WriteString(", ")
	builder.WriteString("captured_at=")
	builder.WriteString(_m.CapturedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReportEntries is a parsable slice of ReportEntry.
type ReportEntries []*ReportEntry
