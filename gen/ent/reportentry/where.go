// Code generated by ent, DO NOT EDIT.

package reportentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fieldlog/fieldlog/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldLTE(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldReportID, v))
}

// LocalEntryID applies equality check predicate on the "local_entry_id" field. It's identical to LocalEntryIDEQ.
func LocalEntryID(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldLocalEntryID, v))
}

// Section applies equality check predicate on the "section" field. It's identical to SectionEQ.
func Section(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldSection, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldBody, v))
}

// ContractorID applies equality check predicate on the "contractor_id" field. It's identical to ContractorIDEQ.
func ContractorID(v uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldContractorID, v))
}

// ContractorName applies equality check predicate on the "contractor_name" field. It's identical to ContractorNameEQ.
func ContractorName(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldContractorName, v))
}

// CapturedAt applies equality check predicate on the "captured_at" field. It's identical to CapturedAtEQ.
func CapturedAt(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldCapturedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNotIn(FieldReportID, vs...))
}

// LocalEntryIDEQ applies the EQ predicate on the "local_entry_id" field.
func LocalEntryIDEQ(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldLocalEntryID, v))
}

// LocalEntryIDNEQ applies the NEQ predicate on the "local_entry_id" field.
func LocalEntryIDNEQ(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNEQ(FieldLocalEntryID, v))
}

// LocalEntryIDIn applies the In predicate on the "local_entry_id" field.
func LocalEntryIDIn(vs ...string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldIn(FieldLocalEntryID, vs...))
}

// LocalEntryIDNotIn applies the NotIn predicate on the "local_entry_id" field.
func LocalEntryIDNotIn(vs ...string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNotIn(FieldLocalEntryID, vs...))
}

// LocalEntryIDGT applies the GT predicate on the "local_entry_id" field.
func LocalEntryIDGT(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldGT(FieldLocalEntryID, v))
}

// LocalEntryIDGTE applies the GTE predicate on the "local_entry_id" field.
func LocalEntryIDGTE(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldGTE(FieldLocalEntryID, v))
}

// LocalEntryIDLT applies the LT predicate on the "local_entry_id" field.
func LocalEntryIDLT(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldLT(FieldLocalEntryID, v))
}

// LocalEntryIDLTE applies the LTE predicate on the "local_entry_id" field.
func LocalEntryIDLTE(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldLTE(FieldLocalEntryID, v))
}

// LocalEntryIDContains applies the Contains predicate on the "local_entry_id" field.
func LocalEntryIDContains(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldContains(FieldLocalEntryID, v))
}

// LocalEntryIDHasPrefix applies the HasPrefix predicate on the "local_entry_id" field.
func LocalEntryIDHasPrefix(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldHasPrefix(FieldLocalEntryID, v))
}

// LocalEntryIDHasSuffix applies the HasSuffix predicate on the "local_entry_id" field.
func LocalEntryIDHasSuffix(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldHasSuffix(FieldLocalEntryID, v))
}

// LocalEntryIDEqualFold applies the EqualFold predicate on the "local_entry_id" field.
func LocalEntryIDEqualFold(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEqualFold(FieldLocalEntryID, v))
}

// LocalEntryIDContainsFold applies the ContainsFold predicate on the "local_entry_id" field.
func LocalEntryIDContainsFold(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldContainsFold(FieldLocalEntryID, v))
}

// SectionEQ applies the EQ predicate on the "section" field.
func SectionEQ(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldSection, v))
}

// SectionNEQ applies the NEQ predicate on the "section" field.
func SectionNEQ(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNEQ(FieldSection, v))
}

// SectionIn applies the In predicate on the "section" field.
func SectionIn(vs ...string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldIn(FieldSection, vs...))
}

// SectionNotIn applies the NotIn predicate on the "section" field.
func SectionNotIn(vs ...string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNotIn(FieldSection, vs...))
}

// SectionGT applies the GT predicate on the "section" field.
func SectionGT(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldGT(FieldSection, v))
}

// SectionGTE applies the GTE predicate on the "section" field.
func SectionGTE(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldGTE(FieldSection, v))
}

// SectionLT applies the LT predicate on the "section" field.
func SectionLT(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldLT(FieldSection, v))
}

// SectionLTE applies the LTE predicate on the "section" field.
func SectionLTE(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldLTE(FieldSection, v))
}

// SectionContains applies the Contains predicate on the "section" field.
func SectionContains(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldContains(FieldSection, v))
}

// SectionHasPrefix applies the HasPrefix predicate on the "section" field.
func SectionHasPrefix(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldHasPrefix(FieldSection, v))
}

// SectionHasSuffix applies the HasSuffix predicate on the "section" field.
func SectionHasSuffix(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldHasSuffix(FieldSection, v))
}

// SectionEqualFold applies the EqualFold predicate on the "section" field.
func SectionEqualFold(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEqualFold(FieldSection, v))
}

// SectionContainsFold applies the ContainsFold predicate on the "section" field.
func SectionContainsFold(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldContainsFold(FieldSection, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldContainsFold(FieldBody, v))
}

// ContractorIDEQ applies the EQ predicate on the "contractor_id" field.
func ContractorIDEQ(v uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldContractorID, v))
}

// ContractorIDNEQ applies the NEQ predicate on the "contractor_id" field.
func ContractorIDNEQ(v uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNEQ(FieldContractorID, v))
}

// ContractorIDIn applies the In predicate on the "contractor_id" field.
func ContractorIDIn(vs ...uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldIn(FieldContractorID, vs...))
}

// ContractorIDNotIn applies the NotIn predicate on the "contractor_id" field.
func ContractorIDNotIn(vs ...uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNotIn(FieldContractorID, vs...))
}

// ContractorIDGT applies the GT predicate on the "contractor_id" field.
func ContractorIDGT(v uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldGT(FieldContractorID, v))
}

// ContractorIDGTE applies the GTE predicate on the "contractor_id" field.
func ContractorIDGTE(v uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldGTE(FieldContractorID, v))
}

// ContractorIDLT applies the LT predicate on the "contractor_id" field.
func ContractorIDLT(v uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldLT(FieldContractorID, v))
}

// ContractorIDLTE applies the LTE predicate on the "contractor_id" field.
func ContractorIDLTE(v uuid.UUID) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldLTE(FieldContractorID, v))
}

// ContractorIDIsNil applies the IsNil predicate on the "contractor_id" field.
func ContractorIDIsNil() predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldIsNull(FieldContractorID))
}

// ContractorIDNotNil applies the NotNil predicate on the "contractor_id" field.
func ContractorIDNotNil() predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNotNull(FieldContractorID))
}

// ContractorNameEQ applies the EQ predicate on the "contractor_name" field.
func ContractorNameEQ(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldContractorName, v))
}

// ContractorNameNEQ applies the NEQ predicate on the "contractor_name" field.
func ContractorNameNEQ(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNEQ(FieldContractorName, v))
}

// ContractorNameIn applies the In predicate on the "contractor_name" field.
func ContractorNameIn(vs ...string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldIn(FieldContractorName, vs...))
}

// ContractorNameNotIn applies the NotIn predicate on the "contractor_name" field.
func ContractorNameNotIn(vs ...string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNotIn(FieldContractorName, vs...))
}

// ContractorNameGT applies the GT predicate on the "contractor_name" field.
func ContractorNameGT(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldGT(FieldContractorName, v))
}

// ContractorNameGTE applies the GTE predicate on the "contractor_name" field.
func ContractorNameGTE(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldGTE(FieldContractorName, v))
}

// ContractorNameLT applies the LT predicate on the "contractor_name" field.
func ContractorNameLT(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldLT(FieldContractorName, v))
}

// ContractorNameLTE applies the LTE predicate on the "contractor_name" field.
func ContractorNameLTE(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldLTE(FieldContractorName, v))
}

// ContractorNameContains applies the Contains predicate on the "contractor_name" field.
func ContractorNameContains(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldContains(FieldContractorName, v))
}

// ContractorNameHasPrefix applies the HasPrefix predicate on the "contractor_name" field.
func ContractorNameHasPrefix(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldHasPrefix(FieldContractorName, v))
}

// ContractorNameHasSuffix applies the HasSuffix predicate on the "contractor_name" field.
func ContractorNameHasSuffix(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldHasSuffix(FieldContractorName, v))
}

// ContractorNameIsNil applies the IsNil predicate on the "contractor_name" field.
func ContractorNameIsNil() predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldIsNull(FieldContractorName))
}

// ContractorNameNotNil applies the NotNil predicate on the "contractor_name" field.
func ContractorNameNotNil() predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNotNull(FieldContractorName))
}

// ContractorNameEqualFold applies the EqualFold predicate on the "contractor_name" field.
func ContractorNameEqualFold(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEqualFold(FieldContractorName, v))
}

// ContractorNameContainsFold applies the ContainsFold predicate on the "contractor_name" field.
func ContractorNameContainsFold(v string) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldContainsFold(FieldContractorName, v))
}

// CapturedAtEQ applies the EQ predicate on the "captured_at" field.
func CapturedAtEQ(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldCapturedAt, v))
}

// CapturedAtNEQ applies the NEQ predicate on the "captured_at" field.
func CapturedAtNEQ(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNEQ(FieldCapturedAt, v))
}

// CapturedAtIn applies the In predicate on the "captured_at" field.
func CapturedAtIn(vs ...time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldIn(FieldCapturedAt, vs...))
}

// CapturedAtNotIn applies the NotIn predicate on the "captured_at" field.
func CapturedAtNotIn(vs ...time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNotIn(FieldCapturedAt, vs...))
}

// CapturedAtGT applies the GT predicate on the "captured_at" field.
func CapturedAtGT(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldGT(FieldCapturedAt, v))
}

// CapturedAtGTE applies the GTE predicate on the "captured_at" field.
func CapturedAtGTE(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldGTE(FieldCapturedAt, v))
}

// CapturedAtLT applies the LT predicate on the "captured_at" field.
func CapturedAtLT(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldLT(FieldCapturedAt, v))
}

// CapturedAtLTE applies the LTE predicate on the "captured_at" field.
func CapturedAtLTE(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldLTE(FieldCapturedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReportEntry {
	return predicate.ReportEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.ReportEntry {
	return predicate.ReportEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.Report) predicate.ReportEntry {
	return predicate.ReportEntry(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReportEntry) predicate.ReportEntry {
	return predicate.ReportEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReportEntry) predicate.ReportEntry {
	return predicate.ReportEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReportEntry) predicate.ReportEntry {
	return predicate.ReportEntry(sql.NotPredicates(p))
}
