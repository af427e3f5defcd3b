// Code generated by ent, DO NOT EDIT.

package reportentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the reportentry type in the database.
	Label = "report_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldLocalEntryID holds the string denoting the local_entry_id field in the database.
	FieldLocalEntryID = "local_entry_id"
	// FieldSection holds the string denoting the section field in the database.
	FieldSection = "section"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldContractorID holds the string denoting the contractor_id field in the database.
	FieldContractorID = "contractor_id"
	// FieldContractorName holds the string denoting the contractor_name field in the database.
	FieldContractorName = "contractor_name"
	// FieldCapturedAt holds the string denoting the captured_at field in the database.
	FieldCapturedAt = "captured_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeReport holds the string denoting the report edge name in mutations.
	EdgeReport = "report"
	// Table holds the table name of the reportentry in the database.
	Table = "report_entries"
	// ReportTable is the table that holds the report relation/edge.
	ReportTable = "report_entries"
	// ReportInverseTable is the table name for the Report entity.
	// It exists in this package in order to avoid circular dependency with the "report" package.
	ReportInverseTable = "reports"
	// ReportColumn is the table column denoting the report relation/edge.
	ReportColumn = "report_id"
)

// Columns holds all SQL columns for reportentry fields.
var Columns = []string{
	FieldID,
	FieldReportID,
	FieldLocalEntryID,
	FieldSection,
	FieldBody,
	FieldContractorID,
	FieldContractorName,
	FieldCapturedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// LocalEntryIDValidator is a validator for the "local_entry_id" field. It is called by the builders before save.
	LocalEntryIDValidator func(string) error
	// SectionValidator is a validator for the "section" field. It is called by the builders before save.
	SectionValidator func(string) error
	// DefaultBody holds the default value on creation for the "body" field.
	DefaultBody string
	// DefaultCapturedAt holds the default value on creation for the "captured_at" field.
	DefaultCapturedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ReportEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// ByLocalEntryID orders the results by the local_entry_id field.
func ByLocalEntryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocalEntryID, opts...).ToFunc()
}

// BySection orders the results by the section field.
func BySection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSection, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByContractorID orders the results by the contractor_id field.
func ByContractorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractorID, opts...).ToFunc()
}

// ByContractorName orders the results by the contractor_name field.
func ByContractorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractorName, opts...).ToFunc()
}

// ByCapturedAt orders the results by the captured_at field.
func ByCapturedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCapturedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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
