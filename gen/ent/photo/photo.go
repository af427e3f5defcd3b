// Code generated by ent, DO NOT EDIT.

package photo

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the photo type in the database.
	Label = "photo"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldLocalPhotoID holds the string denoting the local_photo_id field in the database.
	FieldLocalPhotoID = "local_photo_id"
	// FieldCaption holds the string denoting the caption field in the database.
	FieldCaption = "caption"
	// FieldStorePath holds the string denoting the store_path field in the database.
	FieldStorePath = "store_path"
	// FieldLatitude holds the string denoting the latitude field in the database.
	FieldLatitude = "latitude"
	// FieldLongitude holds the string denoting the longitude field in the database.
	FieldLongitude = "longitude"
	// FieldTakenAt holds the string denoting the taken_at field in the database.
	FieldTakenAt = "taken_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeReport holds the string denoting the report edge name in mutations.
	EdgeReport = "report"
	// Table holds the table name of the photo in the database.
	Table = "photos"
	// ReportTable is the table that holds the report relation/edge.
	ReportTable = "photos"
	// ReportInverseTable is the table name for the Report entity.
	// It exists in this package in order to avoid circular dependency with the "report" package.
	ReportInverseTable = "reports"
	// ReportColumn is the table column denoting the report relation/edge.
	ReportColumn = "report_id"
)

// Columns holds all SQL columns for photo fields.
var Columns = []string{
	FieldID,
	FieldReportID,
	FieldLocalPhotoID,
	FieldCaption,
	FieldStorePath,
	FieldLatitude,
	FieldLongitude,
	FieldTakenAt,
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
	// LocalPhotoIDValidator is a validator for the "local_photo_id" field. It is called by the builders before save.
	LocalPhotoIDValidator func(string) error
	// DefaultTakenAt holds the default value on creation for the "taken_at" field.
	DefaultTakenAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Photo queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// ByLocalPhotoID orders the results by the local_photo_id field.
func ByLocalPhotoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocalPhotoID, opts...).ToFunc()
}

// ByCaption orders the results by the caption field.
func ByCaption(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaption, opts...).ToFunc()
}

// ByStorePath orders the results by the store_path field.
func ByStorePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorePath, opts...).ToFunc()
}

// ByLatitude orders the results by the latitude field.
func ByLatitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatitude, opts...).ToFunc()
}

// ByLongitude orders the results by the longitude field.
func ByLongitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongitude, opts...).ToFunc()
}

// ByTakenAt orders the results by the taken_at field.
func ByTakenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTakenAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByReportField orders the results by report field.
func ByReportField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReportStep(), sql.OrderByField(field, opts...))
	}
}
func newReportStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReportInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
	)
}
