// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fieldlog/fieldlog/gen/ent/photo"
	"github.com/fieldlog/fieldlog/gen/ent/report"
	"github.com/google/uuid"
)

// Photo is the model entity for the Photo schema.
type Photo struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID uuid.UUID `json:"report_id,omitempty"`
	// LocalPhotoID holds the value of the "local_photo_id" field.
	LocalPhotoID string `json:"local_photo_id,omitempty"`
	// Caption holds the value of the "caption" field.
	Caption string `json:"caption,omitempty"`
	// StorePath holds the value of the "store_path" field.
	StorePath string `json:"store_path,omitempty"`
	// Latitude holds the value of the "latitude" field.
	Latitude *float64 `json:"latitude,omitempty"`
	// Longitude holds the value of the "longitude" field.
	Longitude *float64 `json:"longitude,omitempty"`
	// TakenAt holds the value of the "taken_at" field.
	TakenAt time.Time `json:"taken_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PhotoQuery when eager-loading is set.
	Edges        PhotoEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PhotoEdges holds the relations/edges for other nodes in the graph.
type PhotoEdges struct {
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PhotoEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Photo) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case photo.FieldLatitude, photo.FieldLongitude:
			values[i] = new(sql.NullFloat64)
		case photo.FieldLocalPhotoID, photo.FieldCaption, photo.FieldStorePath:
			values[i] = new(sql.NullString)
		case photo.FieldTakenAt, photo.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case photo.FieldID, photo.FieldReportID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Photo fields.
func (_m *Photo) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case photo.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case photo.FieldReportID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value != nil {
				_m.ReportID = *value
			}
		case photo.FieldLocalPhotoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field local_photo_id", values[i])
			} else if value.Valid {
				_m.LocalPhotoID = value.String
			}
		case photo.FieldCaption:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field caption", values[i])
			} else if value.Valid {
				_m.Caption = value.String
			}
		case photo.FieldStorePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field store_path", values[i])
			} else if value.Valid {
				_m.StorePath = value.String
			}
		case photo.FieldLatitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latitude", values[i])
			} else if value.Valid {
				_m.Latitude = new(float64)
				*_m.Latitude = value.Float64
			}
		case photo.FieldLongitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field longitude", values[i])
			} else if value.Valid {
				_m.Longitude = new(float64)
				*_m.Longitude = value.Float64
			}
		case photo.FieldTakenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field taken_at", values[i])
			} else if value.Valid {
				_m.TakenAt = value.Time
			}
		case photo.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Photo.
// This includes values selected through modifiers, order, etc.
func (_m *Photo) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the Photo entity.
func (_m *Photo) QueryReport() *ReportQuery {
	return NewPhotoClient(_m.config).QueryReport(_m)
}

// Update returns a builder for updating this Photo.
// Note that you need to call Photo.Unwrap() before calling this method if this Photo
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Photo) Update() *PhotoUpdateOne {
	return NewPhotoClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Photo entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Photo) Unwrap() *Photo {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Photo is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Photo) String() string {
	var builder strings.Builder
	builder.WriteString("Photo(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReportID))
	builder.WriteString(", ")
	builder.WriteString("local_photo_id=")
	builder.WriteString(_m.LocalPhotoID)
	builder.WriteString(", ")
	builder.WriteString("caption=")
	builder.WriteString(_m.Caption)
	builder.WriteString(", ")
	builder.WriteString("store_path=")
	builder.WriteString(_m.StorePath)
	builder.WriteString(", ")
	if v := _m.Latitude; v != nil {
		builder.WriteString("latitude=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Longitude; v != nil {
		builder.WriteString("longitude=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("taken_at=")
	builder.WriteString(_m.TakenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Photos is a parsable slice of Photo.
type Photos []*Photo
