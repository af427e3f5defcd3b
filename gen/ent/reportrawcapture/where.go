// Code generated by ent, DO NOT EDIT.

package reportrawcapture

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fieldlog/fieldlog/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldLTE(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v uuid.UUID) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldEQ(FieldReportID, v))
}

// CaptureMode applies equality check predicate on the "capture_mode" field. It's identical to CaptureModeEQ.
func CaptureMode(v string) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldEQ(FieldCaptureMode, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldEQ(FieldCreatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v uuid.UUID) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v uuid.UUID) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...uuid.UUID) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...uuid.UUID) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v uuid.UUID) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v uuid.UUID) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v uuid.UUID) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v uuid.UUID) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldLTE(FieldReportID, v))
}

// CaptureModeEQ applies the EQ predicate on the "capture_mode" field.
func CaptureModeEQ(v string) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldEQ(FieldCaptureMode, v))
}

// CaptureModeNEQ applies the NEQ predicate on the "capture_mode" field.
func CaptureModeNEQ(v string) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldNEQ(FieldCaptureMode, v))
}

// CaptureModeIn applies the In predicate on the "capture_mode" field.
func CaptureModeIn(vs ...string) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldIn(FieldCaptureMode, vs...))
}

// CaptureModeNotIn applies the NotIn predicate on the "capture_mode" field.
func CaptureModeNotIn(vs ...string) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldNotIn(FieldCaptureMode, vs...))
}

// CaptureModeGT applies the GT predicate on the "capture_mode" field.
func CaptureModeGT(v string) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldGT(FieldCaptureMode, v))
}

// CaptureModeGTE applies the GTE predicate on the "capture_mode" field.
func CaptureModeGTE(v string) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldGTE(FieldCaptureMode, v))
}

// CaptureModeLT applies the LT predicate on the "capture_mode" field.
func CaptureModeLT(v string) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldLT(FieldCaptureMode, v))
}

// CaptureModeLTE applies the LTE predicate on the "capture_mode" field.
func CaptureModeLTE(v string) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldLTE(FieldCaptureMode, v))
}

// CaptureModeContains applies the Contains predicate on the "capture_mode" field.
func CaptureModeContains(v string) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldContains(FieldCaptureMode, v))
}

// CaptureModeHasPrefix applies the HasPrefix predicate on the "capture_mode" field.
func CaptureModeHasPrefix(v string) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldHasPrefix(FieldCaptureMode, v))
}

// CaptureModeHasSuffix applies the HasSuffix predicate on the "capture_mode" field.
func CaptureModeHasSuffix(v string) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldHasSuffix(FieldCaptureMode, v))
}

// CaptureModeEqualFold applies the EqualFold predicate on the "capture_mode" field.
func CaptureModeEqualFold(v string) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldEqualFold(FieldCaptureMode, v))
}

// CaptureModeContainsFold applies the ContainsFold predicate on the "capture_mode" field.
func CaptureModeContainsFold(v string) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldContainsFold(FieldCaptureMode, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReportRawCapture) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReportRawCapture) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReportRawCapture) predicate.ReportRawCapture {
	return predicate.ReportRawCapture(sql.NotPredicates(p))
}
