// Code generated by ent, DO NOT EDIT.

package reportrawcapture

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the reportrawcapture type in the database.
	Label = "report_raw_capture"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldCaptureMode holds the string denoting the capture_mode field in the database.
	FieldCaptureMode = "capture_mode"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the reportrawcapture in the database.
	Table = "report_raw_capture"
)

// Columns holds all SQL columns for reportrawcapture fields.
var Columns = []string{
	FieldID,
	FieldReportID,
	FieldCaptureMode,
	FieldPayload,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CaptureModeValidator is a validator for the "capture_mode" field. It is called by the builders before save.
	CaptureModeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ReportRawCapture queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// ByCaptureMode orders the results by the capture_mode field.
func ByCaptureMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaptureMode, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
