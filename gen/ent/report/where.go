// Code generated by ent, DO NOT EDIT.

package report

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fieldlog/fieldlog/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldProjectID, v))
}

// ReportDate applies equality check predicate on the "report_date" field. It's identical to ReportDateEQ.
func ReportDate(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldReportDate, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldStatus, v))
}

// CaptureMode applies equality check predicate on the "capture_mode" field. It's identical to CaptureModeEQ.
func CaptureMode(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCaptureMode, v))
}

// DeviceID applies equality check predicate on the "device_id" field. It's identical to DeviceIDEQ.
func DeviceID(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDeviceID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// LastSaved applies equality check predicate on the "last_saved" field. It's identical to LastSavedEQ.
func LastSaved(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLastSaved, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldProjectID, vs...))
}

// ReportDateEQ applies the EQ predicate on the "report_date" field.
func ReportDateEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldReportDate, v))
}

// ReportDateNEQ applies the NEQ predicate on the "report_date" field.
func ReportDateNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldReportDate, v))
}

// ReportDateIn applies the In predicate on the "report_date" field.
func ReportDateIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldReportDate, vs...))
}

// ReportDateNotIn applies the NotIn predicate on the "report_date" field.
func ReportDateNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldReportDate, vs...))
}

// ReportDateGT applies the GT predicate on the "report_date" field.
func ReportDateGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldReportDate, v))
}

// ReportDateGTE applies the GTE predicate on the "report_date" field.
func ReportDateGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldReportDate, v))
}

// ReportDateLT applies the LT predicate on the "report_date" field.
func ReportDateLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldReportDate, v))
}

// ReportDateLTE applies the LTE predicate on the "report_date" field.
func ReportDateLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldReportDate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldStatus, v))
}

// CaptureModeEQ applies the EQ predicate on the "capture_mode" field.
func CaptureModeEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCaptureMode, v))
}

// CaptureModeNEQ applies the NEQ predicate on the "capture_mode" field.
func CaptureModeNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCaptureMode, v))
}

// CaptureModeIn applies the In predicate on the "capture_mode" field.
func CaptureModeIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCaptureMode, vs...))
}

// CaptureModeNotIn applies the NotIn predicate on the "capture_mode" field.
func CaptureModeNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCaptureMode, vs...))
}

// CaptureModeGT applies the GT predicate on the "capture_mode" field.
func CaptureModeGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldCaptureMode, v))
}

// CaptureModeGTE applies the GTE predicate on the "capture_mode" field.
func CaptureModeGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldCaptureMode, v))
}

// CaptureModeLT applies the LT predicate on the "capture_mode" field.
func CaptureModeLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldCaptureMode, v))
}

// CaptureModeLTE applies the LTE predicate on the "capture_mode" field.
func CaptureModeLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldCaptureMode, v))
}

// CaptureModeContains applies the Contains predicate on the "capture_mode" field.
func CaptureModeContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldCaptureMode, v))
}

// CaptureModeHasPrefix applies the HasPrefix predicate on the "capture_mode" field.
func CaptureModeHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldCaptureMode, v))
}

// CaptureModeHasSuffix applies the HasSuffix predicate on the "capture_mode" field.
func CaptureModeHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldCaptureMode, v))
}

// CaptureModeEqualFold applies the EqualFold predicate on the "capture_mode" field.
func CaptureModeEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldCaptureMode, v))
}

// CaptureModeContainsFold applies the ContainsFold predicate on the "capture_mode" field.
func CaptureModeContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldCaptureMode, v))
}

// DeviceIDEQ applies the EQ predicate on the "device_id" field.
func DeviceIDEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDeviceID, v))
}

// DeviceIDNEQ applies the NEQ predicate on the "device_id" field.
func DeviceIDNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldDeviceID, v))
}

// DeviceIDIn applies the In predicate on the "device_id" field.
func DeviceIDIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldDeviceID, vs...))
}

// DeviceIDNotIn applies the NotIn predicate on the "device_id" field.
func DeviceIDNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldDeviceID, vs...))
}

// DeviceIDGT applies the GT predicate on the "device_id" field.
func DeviceIDGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldDeviceID, v))
}

// DeviceIDGTE applies the GTE predicate on the "device_id" field.
func DeviceIDGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldDeviceID, v))
}

// DeviceIDLT applies the LT predicate on the "device_id" field.
func DeviceIDLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldDeviceID, v))
}

// DeviceIDLTE applies the LTE predicate on the "device_id" field.
func DeviceIDLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldDeviceID, v))
}

// DeviceIDContains applies the Contains predicate on the "device_id" field.
func DeviceIDContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldDeviceID, v))
}

// DeviceIDHasPrefix applies the HasPrefix predicate on the "device_id" field.
func DeviceIDHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldDeviceID, v))
}

// DeviceIDHasSuffix applies the HasSuffix predicate on the "device_id" field.
func DeviceIDHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldDeviceID, v))
}

// DeviceIDEqualFold applies the EqualFold predicate on the "device_id" field.
func DeviceIDEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldDeviceID, v))
}

// DeviceIDContainsFold applies the ContainsFold predicate on the "device_id" field.
func DeviceIDContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldDeviceID, v))
}

// OriginalInputIsNil applies the IsNil predicate on the "original_input" field.
func OriginalInputIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldOriginalInput))
}

// OriginalInputNotNil applies the NotNil predicate on the "original_input" field.
func OriginalInputNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldOriginalInput))
}

// AiGeneratedIsNil applies the IsNil predicate on the "ai_generated" field.
func AiGeneratedIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldAiGenerated))
}

// AiGeneratedNotNil applies the NotNil predicate on the "ai_generated" field.
func AiGeneratedNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldAiGenerated))
}

// UserEditsIsNil applies the IsNil predicate on the "user_edits" field.
func UserEditsIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldUserEdits))
}

// UserEditsNotNil applies the NotNil predicate on the "user_edits" field.
func UserEditsNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldUserEdits))
}

// TogglesIsNil applies the IsNil predicate on the "toggles" field.
func TogglesIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldToggles))
}

// TogglesNotNil applies the NotNil predicate on the "toggles" field.
func TogglesNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldToggles))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldCreatedAt, v))
}

// LastSavedEQ applies the EQ predicate on the "last_saved" field.
func LastSavedEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLastSaved, v))
}

// LastSavedNEQ applies the NEQ predicate on the "last_saved" field.
func LastSavedNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldLastSaved, v))
}

// LastSavedIn applies the In predicate on the "last_saved" field.
func LastSavedIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldLastSaved, vs...))
}

// LastSavedNotIn applies the NotIn predicate on the "last_saved" field.
func LastSavedNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldLastSaved, vs...))
}

// LastSavedGT applies the GT predicate on the "last_saved" field.
func LastSavedGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldLastSaved, v))
}

// LastSavedGTE applies the GTE predicate on the "last_saved" field.
func LastSavedGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldLastSaved, v))
}

// LastSavedLT applies the LT predicate on the "last_saved" field.
func LastSavedLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldLastSaved, v))
}

// LastSavedLTE applies the LTE predicate on the "last_saved" field.
func LastSavedLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldLastSaved, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEntries applies the HasEdge predicate on the "entries" edge.
func HasEntries() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EntriesTable, EntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntriesWith applies the HasEdge predicate on the "entries" edge with a given conditions (other predicates).
func HasEntriesWith(preds ...predicate.ReportEntry) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPhotos applies the HasEdge predicate on the "photos" edge.
func HasPhotos() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PhotosTable, PhotosColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPhotosWith applies the HasEdge predicate on the "photos" edge with a given conditions (other predicates).
func HasPhotosWith(preds ...predicate.Photo) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newPhotosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Report) predicate.Report {
	return predicate.Report(sql.NotPredicates(p))
}
