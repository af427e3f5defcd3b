// Code generated by ent, DO NOT EDIT.

package photo

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fieldlog/fieldlog/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Photo {
	return predicate.Photo(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Photo {
	return predicate.Photo(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Photo {
	return predicate.Photo(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Photo {
	return predicate.Photo(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Photo {
	return predicate.Photo(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Photo {
	return predicate.Photo(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Photo {
	return predicate.Photo(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Photo {
	return predicate.Photo(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Photo {
	return predicate.Photo(sql.FieldLTE(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v uuid.UUID) predicate.Photo {
	return predicate.Photo(sql.FieldEQ(FieldReportID, v))
}

// LocalPhotoID applies equality check predicate on the "local_photo_id" field. It's identical to LocalPhotoIDEQ.
func LocalPhotoID(v string) predicate.Photo {
	return predicate.Photo(sql.FieldEQ(FieldLocalPhotoID, v))
}

// Caption applies equality check predicate on the "caption" field. It's identical to CaptionEQ.
func Caption(v string) predicate.Photo {
	return predicate.Photo(sql.FieldEQ(FieldCaption, v))
}

// StorePath applies equality check predicate on the "store_path" field. It's identical to StorePathEQ.
func StorePath(v string) predicate.Photo {
	return predicate.Photo(sql.FieldEQ(FieldStorePath, v))
}

// Latitude applies equality check predicate on the "latitude" field. It's identical to LatitudeEQ.
func Latitude(v float64) predicate.Photo {
	return predicate.Photo(sql.FieldEQ(FieldLatitude, v))
}

// Longitude applies equality check predicate on the "longitude" field. It's identical to LongitudeEQ.
func Longitude(v float64) predicate.Photo {
	return predicate.Photo(sql.FieldEQ(FieldLongitude, v))
}

// TakenAt applies equality check predicate on the "taken_at" field. It's identical to TakenAtEQ.
func TakenAt(v time.Time) predicate.Photo {
	return predicate.Photo(sql.FieldEQ(FieldTakenAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Photo {
	return predicate.Photo(sql.FieldEQ(FieldCreatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v uuid.UUID) predicate.Photo {
	return predicate.Photo(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v uuid.UUID) predicate.Photo {
	return predicate.Photo(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...uuid.UUID) predicate.Photo {
	return predicate.Photo(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...uuid.UUID) predicate.Photo {
	return predicate.Photo(sql.FieldNotIn(FieldReportID, vs...))
}

// LocalPhotoIDEQ applies the EQ predicate on the "local_photo_id" field.
func LocalPhotoIDEQ(v string) predicate.Photo {
	return predicate.Photo(sql.FieldEQ(FieldLocalPhotoID, v))
}

// LocalPhotoIDNEQ applies the NEQ predicate on the "local_photo_id" field.
func LocalPhotoIDNEQ(v string) predicate.Photo {
	return predicate.Photo(sql.FieldNEQ(FieldLocalPhotoID, v))
}

// LocalPhotoIDIn applies the In predicate on the "local_photo_id" field.
func LocalPhotoIDIn(vs ...string) predicate.Photo {
	return predicate.Photo(sql.FieldIn(FieldLocalPhotoID, vs...))
}

// LocalPhotoIDNotIn applies the NotIn predicate on the "local_photo_id" field.
func LocalPhotoIDNotIn(vs ...string) predicate.Photo {
	return predicate.Photo(sql.FieldNotIn(FieldLocalPhotoID, vs...))
}

// LocalPhotoIDGT applies the GT predicate on the "local_photo_id" field.
func LocalPhotoIDGT(v string) predicate.Photo {
	return predicate.Photo(sql.FieldGT(FieldLocalPhotoID, v))
}

// LocalPhotoIDGTE applies the GTE predicate on the "local_photo_id" field.
func LocalPhotoIDGTE(v string) predicate.Photo {
	return predicate.Photo(sql.FieldGTE(FieldLocalPhotoID, v))
}

// LocalPhotoIDLT applies the LT predicate on the "local_photo_id" field.
func LocalPhotoIDLT(v string) predicate.Photo {
	return predicate.Photo(sql.FieldLT(FieldLocalPhotoID, v))
}

// LocalPhotoIDLTE applies the LTE predicate on the "local_photo_id" field.
func LocalPhotoIDLTE(v string) predicate.Photo {
	return predicate.Photo(sql.FieldLTE(FieldLocalPhotoID, v))
}

// LocalPhotoIDContains applies the Contains predicate on the "local_photo_id" field.
func LocalPhotoIDContains(v string) predicate.Photo {
	return predicate.Photo(sql.FieldContains(FieldLocalPhotoID, v))
}

// LocalPhotoIDHasPrefix applies the HasPrefix predicate on the "local_photo_id" field.
func LocalPhotoIDHasPrefix(v string) predicate.Photo {
	return predicate.Photo(sql.FieldHasPrefix(FieldLocalPhotoID, v))
}

// LocalPhotoIDHasSuffix applies the HasSuffix predicate on the "local_photo_id" field.
func LocalPhotoIDHasSuffix(v string) predicate.Photo {
	return predicate.Photo(sql.FieldHasSuffix(FieldLocalPhotoID, v))
}

// LocalPhotoIDEqualFold applies the EqualFold predicate on the "local_photo_id" field.
func LocalPhotoIDEqualFold(v string) predicate.Photo {
	return predicate.Photo(sql.FieldEqualFold(FieldLocalPhotoID, v))
}

// LocalPhotoIDContainsFold applies the ContainsFold predicate on the "local_photo_id" field.
func LocalPhotoIDContainsFold(v string) predicate.Photo {
	return predicate.Photo(sql.FieldContainsFold(FieldLocalPhotoID, v))
}

// CaptionEQ applies the EQ predicate on the "caption" field.
func CaptionEQ(v string) predicate.Photo {
	return predicate.Photo(sql.FieldEQ(FieldCaption, v))
}

// CaptionNEQ applies the NEQ predicate on the "caption" field.
func CaptionNEQ(v string) predicate.Photo {
	return predicate.Photo(sql.FieldNEQ(FieldCaption, v))
}

// CaptionIn applies the In predicate on the "caption" field.
func CaptionIn(vs ...string) predicate.Photo {
	return predicate.Photo(sql.FieldIn(FieldCaption, vs...))
}

// CaptionNotIn applies the NotIn predicate on the "caption" field.
func CaptionNotIn(vs ...string) predicate.Photo {
	return predicate.Photo(sql.FieldNotIn(FieldCaption, vs...))
}

// CaptionGT applies the GT predicate on the "caption" field.
func CaptionGT(v string) predicate.Photo {
	return predicate.Photo(sql.FieldGT(FieldCaption, v))
}

// CaptionGTE applies the GTE predicate on the "caption" field.
func CaptionGTE(v string) predicate.Photo {
	return predicate.Photo(sql.FieldGTE(FieldCaption, v))
}

// CaptionLT applies the LT predicate on the "caption" field.
func CaptionLT(v string) predicate.Photo {
	return predicate.Photo(sql.FieldLT(FieldCaption, v))
}

// CaptionLTE applies the LTE predicate on the "caption" field.
func CaptionLTE(v string) predicate.Photo {
	return predicate.Photo(sql.FieldLTE(FieldCaption, v))
}

// CaptionContains applies the Contains predicate on the "caption" field.
func CaptionContains(v string) predicate.Photo {
	return predicate.Photo(sql.FieldContains(FieldCaption, v))
}

// CaptionHasPrefix applies the HasPrefix predicate on the "caption" field.
func CaptionHasPrefix(v string) predicate.Photo {
	return predicate.Photo(sql.FieldHasPrefix(FieldCaption, v))
}

// CaptionHasSuffix applies the HasSuffix predicate on the "caption" field.
func CaptionHasSuffix(v string) predicate.Photo {
	return predicate.Photo(sql.FieldHasSuffix(FieldCaption, v))
}

// CaptionIsNil applies the IsNil predicate on the "caption" field.
func CaptionIsNil() predicate.Photo {
	return predicate.Photo(sql.FieldIsNull(FieldCaption))
}

// CaptionNotNil applies the NotNil predicate on the "caption" field.
func CaptionNotNil() predicate.Photo {
	return predicate.Photo(sql.FieldNotNull(FieldCaption))
}

// CaptionEqualFold applies the EqualFold predicate on the "caption" field.
func CaptionEqualFold(v string) predicate.Photo {
	return predicate.Photo(sql.FieldEqualFold(FieldCaption, v))
}

// CaptionContainsFold applies the ContainsFold predicate on the "caption" field.
func CaptionContainsFold(v string) predicate.Photo {
	return predicate.Photo(sql.FieldContainsFold(FieldCaption, v))
}

// StorePathEQ applies the EQ predicate on the "store_path" field.
func StorePathEQ(v string) predicate.Photo {
	return predicate.Photo(sql.FieldEQ(FieldStorePath, v))
}

// StorePathNEQ applies the NEQ predicate on the "store_path" field.
func StorePathNEQ(v string) predicate.Photo {
	return predicate.Photo(sql.FieldNEQ(FieldStorePath, v))
}

// StorePathIn applies the In predicate on the "store_path" field.
func StorePathIn(vs ...string) predicate.Photo {
	return predicate.Photo(sql.FieldIn(FieldStorePath, vs...))
}

// StorePathNotIn applies the NotIn predicate on the "store_path" field.
func StorePathNotIn(vs ...string) predicate.Photo {
	return predicate.Photo(sql.FieldNotIn(FieldStorePath, vs...))
}

// StorePathGT applies the GT predicate on the "store_path" field.
func StorePathGT(v string) predicate.Photo {
	return predicate.Photo(sql.FieldGT(FieldStorePath, v))
}

// StorePathGTE applies the GTE predicate on the "store_path" field.
func StorePathGTE(v string) predicate.Photo {
	return predicate.Photo(sql.FieldGTE(FieldStorePath, v))
}

// StorePathLT applies the LT predicate on the "store_path" field.
func StorePathLT(v string) predicate.Photo {
	return predicate.Photo(sql.FieldLT(FieldStorePath, v))
}

// StorePathLTE applies the LTE predicate on the "store_path" field.
func StorePathLTE(v string) predicate.Photo {
	return predicate.Photo(sql.FieldLTE(FieldStorePath, v))
}

// StorePathContains applies the Contains predicate on the "store_path" field.
func StorePathContains(v string) predicate.Photo {
	return predicate.Photo(sql.FieldContains(FieldStorePath, v))
}

// StorePathHasPrefix applies the HasPrefix predicate on the "store_path" field.
func StorePathHasPrefix(v string) predicate.Photo {
	return predicate.Photo(sql.FieldHasPrefix(FieldStorePath, v))
}

// StorePathHasSuffix applies the HasSuffix predicate on the "store_path" field.
func StorePathHasSuffix(v string) predicate.Photo {
	return predicate.Photo(sql.FieldHasSuffix(FieldStorePath, v))
}

// StorePathIsNil applies the IsNil predicate on the "store_path" field.
func StorePathIsNil() predicate.Photo {
	return predicate.Photo(sql.FieldIsNull(FieldStorePath))
}

// StorePathNotNil applies the NotNil predicate on the "store_path" field.
func StorePathNotNil() predicate.Photo {
	return predicate.Photo(sql.FieldNotNull(FieldStorePath))
}

// StorePathEqualFold applies the EqualFold predicate on the "store_path" field.
func StorePathEqualFold(v string) predicate.Photo {
	return predicate.Photo(sql.FieldEqualFold(FieldStorePath, v))
}

// StorePathContainsFold applies the ContainsFold predicate on the "store_path" field.
func StorePathContainsFold(v string) predicate.Photo {
	return predicate.Photo(sql.FieldContainsFold(FieldStorePath, v))
}

// LatitudeEQ applies the EQ predicate on the "latitude" field.
func LatitudeEQ(v float64) predicate.Photo {
	return predicate.Photo(sql.FieldEQ(FieldLatitude, v))
}

// LatitudeNEQ applies the NEQ predicate on the "latitude" field.
func LatitudeNEQ(v float64) predicate.Photo {
	return predicate.Photo(sql.FieldNEQ(FieldLatitude, v))
}

// LatitudeIn applies the In predicate on the "latitude" field.
func LatitudeIn(vs ...float64) predicate.Photo {
	return predicate.Photo(sql.FieldIn(FieldLatitude, vs...))
}

// LatitudeNotIn applies the NotIn predicate on the "latitude" field.
func LatitudeNotIn(vs ...float64) predicate.Photo {
	return predicate.Photo(sql.FieldNotIn(FieldLatitude, vs...))
}

// LatitudeGT applies the GT predicate on the "latitude" field.
func LatitudeGT(v float64) predicate.Photo {
	return predicate.Photo(sql.FieldGT(FieldLatitude, v))
}

// LatitudeGTE applies the GTE predicate on the "latitude" field.
func LatitudeGTE(v float64) predicate.Photo {
	return predicate.Photo(sql.FieldGTE(FieldLatitude, v))
}

// LatitudeLT applies the LT predicate on the "latitude" field.
func LatitudeLT(v float64) predicate.Photo {
	return predicate.Photo(sql.FieldLT(FieldLatitude, v))
}

// LatitudeLTE applies the LTE predicate on the "latitude" field.
func LatitudeLTE(v float64) predicate.Photo {
	return predicate.Photo(sql.FieldLTE(FieldLatitude, v))
}

// LatitudeIsNil applies the IsNil predicate on the "latitude" field.
func LatitudeIsNil() predicate.Photo {
	return predicate.Photo(sql.FieldIsNull(FieldLatitude))
}

// LatitudeNotNil applies the NotNil predicate on the "latitude" field.
func LatitudeNotNil() predicate.Photo {
	return predicate.Photo(sql.FieldNotNull(FieldLatitude))
}

// LongitudeEQ applies the EQ predicate on the "longitude" field.
func LongitudeEQ(v float64) predicate.Photo {
	return predicate.Photo(sql.FieldEQ(FieldLongitude, v))
}

// LongitudeNEQ applies the NEQ predicate on the "longitude" field.
func LongitudeNEQ(v float64) predicate.Photo {
	return predicate.Photo(sql.FieldNEQ(FieldLongitude, v))
}

// LongitudeIn applies the In predicate on the "longitude" field.
func LongitudeIn(vs ...float64) predicate.Photo {
	return predicate.Photo(sql.FieldIn(FieldLongitude, vs...))
}

// LongitudeNotIn applies the NotIn predicate on the "longitude" field.
func LongitudeNotIn(vs ...float64) predicate.Photo {
	return predicate.Photo(sql.FieldNotIn(FieldLongitude, vs...))
}

// LongitudeGT applies the GT predicate on the "longitude" field.
func LongitudeGT(v float64) predicate.Photo {
	return predicate.Photo(sql.FieldGT(FieldLongitude, v))
}

// LongitudeGTE applies the GTE predicate on the "longitude" field.
func LongitudeGTE(v float64) predicate.Photo {
	return predicate.Photo(sql.FieldGTE(FieldLongitude, v))
}

// LongitudeLT applies the LT predicate on the "longitude" field.
func LongitudeLT(v float64) predicate.Photo {
	return predicate.Photo(sql.FieldLT(FieldLongitude, v))
}

// LongitudeLTE applies the LTE predicate on the "longitude" field.
func LongitudeLTE(v float64) predicate.Photo {
	return predicate.Photo(sql.FieldLTE(FieldLongitude, v))
}

// LongitudeIsNil applies the IsNil predicate on the "longitude" field.
func LongitudeIsNil() predicate.Photo {
	return predicate.Photo(sql.FieldIsNull(FieldLongitude))
}

// LongitudeNotNil applies the NotNil predicate on the "longitude" field.
func LongitudeNotNil() predicate.Photo {
	return predicate.Photo(sql.FieldNotNull(FieldLongitude))
}

// TakenAtEQ applies the EQ predicate on the "taken_at" field.
func TakenAtEQ(v time.Time) predicate.Photo {
	return predicate.Photo(sql.FieldEQ(FieldTakenAt, v))
}

// TakenAtNEQ applies the NEQ predicate on the "taken_at" field.
func TakenAtNEQ(v time.Time) predicate.Photo {
	return predicate.Photo(sql.FieldNEQ(FieldTakenAt, v))
}

// TakenAtIn applies the In predicate on the "taken_at" field.
func TakenAtIn(vs ...time.Time) predicate.Photo {
	return predicate.Photo(sql.FieldIn(FieldTakenAt, vs...))
}

// TakenAtNotIn applies the NotIn predicate on the "taken_at" field.
func TakenAtNotIn(vs ...time.Time) predicate.Photo {
	return predicate.Photo(sql.FieldNotIn(FieldTakenAt, vs...))
}

// TakenAtGT applies the GT predicate on the "taken_at" field.
func TakenAtGT(v time.Time) predicate.Photo {
	return predicate.Photo(sql.FieldGT(FieldTakenAt, v))
}

// TakenAtGTE applies the GTE predicate on the "taken_at" field.
func TakenAtGTE(v time.Time) predicate.Photo {
	return predicate.Photo(sql.FieldGTE(FieldTakenAt, v))
}

// TakenAtLT applies the LT predicate on the "taken_at" field.
func TakenAtLT(v time.Time) predicate.Photo {
	return predicate.Photo(sql.FieldLT(FieldTakenAt, v))
}

// TakenAtLTE applies the LTE predicate on the "taken_at" field.
func TakenAtLTE(v time.Time) predicate.Photo {
	return predicate.Photo(sql.FieldLTE(FieldTakenAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Photo {
	return predicate.Photo(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Photo {
	return predicate.Photo(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Photo {
	return predicate.Photo(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Photo {
	return predicate.Photo(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Photo {
	return predicate.Photo(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Photo {
	return predicate.Photo(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Photo {
	return predicate.Photo(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Photo {
	return predicate.Photo(sql.FieldLTE(FieldCreatedAt, v))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.Photo {
	return predicate.Photo(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.Report) predicate.Photo {
	return predicate.Photo(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Photo) predicate.Photo {
	return predicate.Photo(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Photo) predicate.Photo {
	return predicate.Photo(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Photo) predicate.Photo {
	return predicate.Photo(sql.NotPredicates(p))
}
