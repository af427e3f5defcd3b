// Code generated by ent, DO NOT EDIT.

package editlock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fieldlog/fieldlog/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EditLock {
	return predicate.EditLock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EditLock {
	return predicate.EditLock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EditLock {
	return predicate.EditLock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EditLock {
	return predicate.EditLock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EditLock {
	return predicate.EditLock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EditLock {
	return predicate.EditLock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EditLock {
	return predicate.EditLock(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v uuid.UUID) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldProjectID, v))
}

// ReportDate applies equality check predicate on the "report_date" field. It's identical to ReportDateEQ.
func ReportDate(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldReportDate, v))
}

// DeviceID applies equality check predicate on the "device_id" field. It's identical to DeviceIDEQ.
func DeviceID(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldDeviceID, v))
}

// HolderName applies equality check predicate on the "holder_name" field. It's identical to HolderNameEQ.
func HolderName(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldHolderName, v))
}

// AcquiredAt applies equality check predicate on the "acquired_at" field. It's identical to AcquiredAtEQ.
func AcquiredAt(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldAcquiredAt, v))
}

// HeartbeatAt applies equality check predicate on the "heartbeat_at" field. It's identical to HeartbeatAtEQ.
func HeartbeatAt(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldHeartbeatAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v uuid.UUID) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v uuid.UUID) predicate.EditLock {
	return predicate.EditLock(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...uuid.UUID) predicate.EditLock {
	return predicate.EditLock(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...uuid.UUID) predicate.EditLock {
	return predicate.EditLock(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v uuid.UUID) predicate.EditLock {
	return predicate.EditLock(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v uuid.UUID) predicate.EditLock {
	return predicate.EditLock(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v uuid.UUID) predicate.EditLock {
	return predicate.EditLock(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v uuid.UUID) predicate.EditLock {
	return predicate.EditLock(sql.FieldLTE(FieldProjectID, v))
}

// ReportDateEQ applies the EQ predicate on the "report_date" field.
func ReportDateEQ(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldReportDate, v))
}

// ReportDateNEQ applies the NEQ predicate on the "report_date" field.
func ReportDateNEQ(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldNEQ(FieldReportDate, v))
}

// ReportDateIn applies the In predicate on the "report_date" field.
func ReportDateIn(vs ...time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldIn(FieldReportDate, vs...))
}

// ReportDateNotIn applies the NotIn predicate on the "report_date" field.
func ReportDateNotIn(vs ...time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldNotIn(FieldReportDate, vs...))
}

// ReportDateGT applies the GT predicate on the "report_date" field.
func ReportDateGT(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldGT(FieldReportDate, v))
}

// ReportDateGTE applies the GTE predicate on the "report_date" field.
func ReportDateGTE(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldGTE(FieldReportDate, v))
}

// ReportDateLT applies the LT predicate on the "report_date" field.
func ReportDateLT(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldLT(FieldReportDate, v))
}

// ReportDateLTE applies the LTE predicate on the "report_date" field.
func ReportDateLTE(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldLTE(FieldReportDate, v))
}

// DeviceIDEQ applies the EQ predicate on the "device_id" field.
func DeviceIDEQ(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldDeviceID, v))
}

// DeviceIDNEQ applies the NEQ predicate on the "device_id" field.
func DeviceIDNEQ(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldNEQ(FieldDeviceID, v))
}

// DeviceIDIn applies the In predicate on the "device_id" field.
func DeviceIDIn(vs ...string) predicate.EditLock {
	return predicate.EditLock(sql.FieldIn(FieldDeviceID, vs...))
}

// DeviceIDNotIn applies the NotIn predicate on the "device_id" field.
func DeviceIDNotIn(vs ...string) predicate.EditLock {
	return predicate.EditLock(sql.FieldNotIn(FieldDeviceID, vs...))
}

// DeviceIDGT applies the GT predicate on the "device_id" field.
func DeviceIDGT(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldGT(FieldDeviceID, v))
}

// DeviceIDGTE applies the GTE predicate on the "device_id" field.
func DeviceIDGTE(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldGTE(FieldDeviceID, v))
}

// DeviceIDLT applies the LT predicate on the "device_id" field.
func DeviceIDLT(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldLT(FieldDeviceID, v))
}

// DeviceIDLTE applies the LTE predicate on the "device_id" field.
func DeviceIDLTE(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldLTE(FieldDeviceID, v))
}

// DeviceIDContains applies the Contains predicate on the "device_id" field.
func DeviceIDContains(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldContains(FieldDeviceID, v))
}

// DeviceIDHasPrefix applies the HasPrefix predicate on the "device_id" field.
func DeviceIDHasPrefix(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldHasPrefix(FieldDeviceID, v))
}

// DeviceIDHasSuffix applies the HasSuffix predicate on the "device_id" field.
func DeviceIDHasSuffix(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldHasSuffix(FieldDeviceID, v))
}

// DeviceIDEqualFold applies the EqualFold predicate on the "device_id" field.
func DeviceIDEqualFold(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldEqualFold(FieldDeviceID, v))
}

// DeviceIDContainsFold applies the ContainsFold predicate on the "device_id" field.
func DeviceIDContainsFold(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldContainsFold(FieldDeviceID, v))
}

// HolderNameEQ applies the EQ predicate on the "holder_name" field.
func HolderNameEQ(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldHolderName, v))
}

// HolderNameNEQ applies the NEQ predicate on the "holder_name" field.
func HolderNameNEQ(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldNEQ(FieldHolderName, v))
}

// HolderNameIn applies the In predicate on the "holder_name" field.
func HolderNameIn(vs ...string) predicate.EditLock {
	return predicate.EditLock(sql.FieldIn(FieldHolderName, vs...))
}

// HolderNameNotIn applies the NotIn predicate on the "holder_name" field.
func HolderNameNotIn(vs ...string) predicate.EditLock {
	return predicate.EditLock(sql.FieldNotIn(FieldHolderName, vs...))
}

// HolderNameGT applies the GT predicate on the "holder_name" field.
func HolderNameGT(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldGT(FieldHolderName, v))
}

// HolderNameGTE applies the GTE predicate on the "holder_name" field.
func HolderNameGTE(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldGTE(FieldHolderName, v))
}

// HolderNameLT applies the LT predicate on the "holder_name" field.
func HolderNameLT(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldLT(FieldHolderName, v))
}

// HolderNameLTE applies the LTE predicate on the "holder_name" field.
func HolderNameLTE(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldLTE(FieldHolderName, v))
}

// HolderNameContains applies the Contains predicate on the "holder_name" field.
func HolderNameContains(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldContains(FieldHolderName, v))
}

// HolderNameHasPrefix applies the HasPrefix predicate on the "holder_name" field.
func HolderNameHasPrefix(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldHasPrefix(FieldHolderName, v))
}

// HolderNameHasSuffix applies the HasSuffix predicate on the "holder_name" field.
func HolderNameHasSuffix(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldHasSuffix(FieldHolderName, v))
}

// HolderNameEqualFold applies the EqualFold predicate on the "holder_name" field.
func HolderNameEqualFold(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldEqualFold(FieldHolderName, v))
}

// HolderNameContainsFold applies the ContainsFold predicate on the "holder_name" field.
func HolderNameContainsFold(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldContainsFold(FieldHolderName, v))
}

// AcquiredAtEQ applies the EQ predicate on the "acquired_at" field.
func AcquiredAtEQ(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldAcquiredAt, v))
}

// AcquiredAtNEQ applies the NEQ predicate on the "acquired_at" field.
func AcquiredAtNEQ(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldNEQ(FieldAcquiredAt, v))
}

// AcquiredAtIn applies the In predicate on the "acquired_at" field.
func AcquiredAtIn(vs ...time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldIn(FieldAcquiredAt, vs...))
}

// AcquiredAtNotIn applies the NotIn predicate on the "acquired_at" field.
func AcquiredAtNotIn(vs ...time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldNotIn(FieldAcquiredAt, vs...))
}

// AcquiredAtGT applies the GT predicate on the "acquired_at" field.
func AcquiredAtGT(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldGT(FieldAcquiredAt, v))
}

// AcquiredAtGTE applies the GTE predicate on the "acquired_at" field.
func AcquiredAtGTE(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldGTE(FieldAcquiredAt, v))
}

// AcquiredAtLT applies the LT predicate on the "acquired_at" field.
func AcquiredAtLT(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldLT(FieldAcquiredAt, v))
}

// AcquiredAtLTE applies the LTE predicate on the "acquired_at" field.
func AcquiredAtLTE(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldLTE(FieldAcquiredAt, v))
}

// HeartbeatAtEQ applies the EQ predicate on the "heartbeat_at" field.
func HeartbeatAtEQ(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtNEQ applies the NEQ predicate on the "heartbeat_at" field.
func HeartbeatAtNEQ(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldNEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtIn applies the In predicate on the "heartbeat_at" field.
func HeartbeatAtIn(vs ...time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtNotIn applies the NotIn predicate on the "heartbeat_at" field.
func HeartbeatAtNotIn(vs ...time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldNotIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtGT applies the GT predicate on the "heartbeat_at" field.
func HeartbeatAtGT(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldGT(FieldHeartbeatAt, v))
}

// HeartbeatAtGTE applies the GTE predicate on the "heartbeat_at" field.
func HeartbeatAtGTE(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldGTE(FieldHeartbeatAt, v))
}

// HeartbeatAtLT applies the LT predicate on the "heartbeat_at" field.
func HeartbeatAtLT(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldLT(FieldHeartbeatAt, v))
}

// HeartbeatAtLTE applies the LTE predicate on the "heartbeat_at" field.
func HeartbeatAtLTE(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldLTE(FieldHeartbeatAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EditLock) predicate.EditLock {
	return predicate.EditLock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EditLock) predicate.EditLock {
	return predicate.EditLock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EditLock) predicate.EditLock {
	return predicate.EditLock(sql.NotPredicates(p))
}
