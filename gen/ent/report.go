// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fieldlog/fieldlog/gen/ent/project"
	"github.com/fieldlog/fieldlog/gen/ent/report"
	"github.com/google/uuid"
)

// Report is the model entity for the Report schema.
type Report struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID uuid.UUID `json:"project_id,omitempty"`
	// ReportDate holds the value of the "report_date" field.
	ReportDate time.Time `json:"report_date,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CaptureMode holds the value of the "capture_mode" field.
	CaptureMode string `json:"capture_mode,omitempty"`
	// DeviceID holds the value of the "device_id" field.
	DeviceID string `json:"device_id,omitempty"`
	// OriginalInput holds the value of the "original_input" field.
	OriginalInput map[string]interface{} `json:"original_input,omitempty"`
	// AiGenerated holds the value of the "ai_generated" field.
	AiGenerated map[string]interface{} `json:"ai_generated,omitempty"`
	// UserEdits holds the value of the "user_edits" field.
	UserEdits map[string]interface{} `json:"user_edits,omitempty"`
	// Toggles holds the value of the "toggles" field.
	Toggles map[string]interface{} `json:"toggles,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// LastSaved holds the value of the "last_saved" field.
	LastSaved time.Time `json:"last_saved,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReportQuery when eager-loading is set.
	Edges        ReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReportEdges holds the relations/edges for other nodes in the graph.
type ReportEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Entries holds the value of the entries edge.
	Entries []*ReportEntry `json:"entries,omitempty"`
	// Photos holds the value of the photos edge.
	Photos []*Photo `json:"photos,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReportEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// EntriesOrErr returns the Entries value or an error if the edge
// was not loaded in eager-loading.
func (e ReportEdges) EntriesOrErr() ([]*ReportEntry, error) {
	if e.loadedTypes[1] {
		return e.Entries, nil
	}
	return nil, &NotLoadedError{edge: "entries"}
}

// PhotosOrErr returns the Photos value or an error if the edge
// was not loaded in eager-loading.
func (e ReportEdges) PhotosOrErr() ([]*Photo, error) {
	if e.loadedTypes[2] {
		return e.Photos, nil
	}
	return nil, &NotLoadedError{edge: "photos"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Report) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case report.FieldOriginalInput, report.FieldAiGenerated, report.FieldUserEdits, report.FieldToggles:
			values[i] = new([]byte)
		case report.FieldStatus, report.FieldCaptureMode, report.FieldDeviceID:
			values[i] = new(sql.NullString)
		case report.FieldReportDate, report.FieldCreatedAt, report.FieldLastSaved:
			values[i] = new(sql.NullTime)
		case report.FieldID, report.FieldProjectID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Report fields.
func (_m *Report) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case report.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case report.FieldProjectID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value != nil {
				_m.ProjectID = *value
			}
		case report.FieldReportDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field report_date", values[i])
			} else if value.Valid {
				_m.ReportDate = value.Time
			}
		case report.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case report.FieldCaptureMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field capture_mode", values[i])
			} else if value.Valid {
				_m.CaptureMode = value.String
			}
		case report.FieldDeviceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_id", values[i])
			} else if value.Valid {
				_m.DeviceID = value.String
			}
		case report.FieldOriginalInput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field original_input", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OriginalInput); err != nil {
					return fmt.Errorf("unmarshal field original_input: %w", err)
				}
			}
		case report.FieldAiGenerated:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ai_generated", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AiGenerated); err != nil {
					return fmt.Errorf("unmarshal field ai_generated: %w", err)
				}
			}
		case report.FieldUserEdits:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field user_edits", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UserEdits); err != nil {
					return fmt.Errorf("unmarshal field user_edits: %w", err)
				}
			}
		case report.FieldToggles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field toggles", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Toggles); err != nil {
					return fmt.Errorf("unmarshal field toggles: %w", err)
				}
			}
		case report.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case report.FieldLastSaved:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_saved", values[i])
			} else if value.Valid {
				_m.LastSaved = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Report.
// This includes values selected through modifiers, order, etc.
func (_m *Report) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Report entity.
func (_m *Report) QueryProject() *ProjectQuery {
	return NewReportClient(_m.config).QueryProject(_m)
}

// QueryEntries queries the "entries" edge of the Report entity.
func (_m *Report) QueryEntries() *ReportEntryQuery {
	return NewReportClient(_m.config).QueryEntries(_m)
}

// QueryPhotos queries the "photos" edge of the Report entity.
func (_m *Report) QueryPhotos() *PhotoQuery {
	return NewReportClient(_m.config).QueryPhotos(_m)
}

// Update returns a builder for updating this Report.
// Note that you need to call Report.Unwrap() before calling this method if this Report
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Report) Update() *ReportUpdateOne {
	return NewReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Report entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Report) Unwrap() *Report {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Report is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Report) String() string {
	var builder strings.Builder
	builder.WriteString("Report(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectID))
	builder.WriteString(", ")
	builder.WriteString("report_date=")
	builder.WriteString(_m.ReportDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("capture_mode=")
	builder.WriteString(_m.CaptureMode)
	builder.WriteString(", ")
	builder.WriteString("device_id=")
	builder.WriteString(_m.DeviceID)
	builder.WriteString(", ")
	builder.WriteString("original_input=")
	builder.WriteString(fmt.Sprintf("%v", _m.OriginalInput))
	builder.WriteString(", ")
	builder.WriteString("ai_generated=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiGenerated))
	builder.WriteString(", ")
	builder.WriteString("user_edits=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserEdits))
	builder.WriteString(", ")
	builder.WriteString("toggles=")
	builder.WriteString(fmt.Sprintf("%v", _m.Toggles))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_saved=")
	builder.WriteString(_m.LastSaved.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Reports is a parsable slice of Report.
type Reports []*Report
