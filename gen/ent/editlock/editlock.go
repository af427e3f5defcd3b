// Code generated by ent, DO NOT EDIT.

package editlock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the editlock type in the database.
	Label = "edit_lock"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldReportDate holds the string denoting the report_date field in the database.
	FieldReportDate = "report_date"
	// FieldDeviceID holds the string denoting the device_id field in the database.
	FieldDeviceID = "device_id"
	// FieldHolderName holds the string denoting the holder_name field in the database.
	FieldHolderName = "holder_name"
	// FieldAcquiredAt holds the string denoting the acquired_at field in the database.
	FieldAcquiredAt = "acquired_at"
	// FieldHeartbeatAt holds the string denoting the heartbeat_at field in the database.
	FieldHeartbeatAt = "heartbeat_at"
	// Table holds the table name of the editlock in the database.
	Table = "active_reports"
)

// Columns holds all SQL columns for editlock fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldReportDate,
	FieldDeviceID,
	FieldHolderName,
	FieldAcquiredAt,
	FieldHeartbeatAt,
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
	// DeviceIDValidator is a validator for the "device_id" field. It is called by the builders before save.
	DeviceIDValidator func(string) error
	// DefaultHolderName holds the default value on creation for the "holder_name" field.
	DefaultHolderName string
	// DefaultAcquiredAt holds the default value on creation for the "acquired_at" field.
	DefaultAcquiredAt func() time.Time
	// DefaultHeartbeatAt holds the default value on creation for the "heartbeat_at" field.
	DefaultHeartbeatAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the EditLock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByReportDate orders the results by the report_date field.
func ByReportDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportDate, opts...).ToFunc()
}

// ByDeviceID orders the results by the device_id field.
func ByDeviceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceID, opts...).ToFunc()
}

// ByHolderName orders the results by the holder_name field.
func ByHolderName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHolderName, opts...).ToFunc()
}

// ByAcquiredAt orders the results by the acquired_at field.
func ByAcquiredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcquiredAt, opts...).ToFunc()
}

// ByHeartbeatAt orders the results by the heartbeat_at field.
func ByHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeartbeatAt, opts...).ToFunc()
}
