// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fieldlog/fieldlog/db/ent/schema"
	"github.com/fieldlog/fieldlog/gen/ent/contractor"
	"github.com/fieldlog/fieldlog/gen/ent/editlock"
	"github.com/fieldlog/fieldlog/gen/ent/photo"
	"github.com/fieldlog/fieldlog/gen/ent/project"
	"github.com/fieldlog/fieldlog/gen/ent/report"
	"github.com/fieldlog/fieldlog/gen/ent/reportentry"
	"github.com/fieldlog/fieldlog/gen/ent/reportrawcapture"
	"github.com/fieldlog/fieldlog/gen/ent/userprofile"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contractorFields := schema.Contractor{}.Fields()
	_ = contractorFields
	// contractorDescName is the schema descriptor for name field.
	contractorDescName := contractorFields[2].Descriptor()
	// contractor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	contractor.NameValidator = contractorDescName.Validators[0].(func(string) error)
	// contractorDescType is the schema descriptor for type field.
	contractorDescType := contractorFields[4].Descriptor()
	// contractor.DefaultType holds the default value on creation for the type field.
	contractor.DefaultType = contractorDescType.Default.(string)
	// contractor.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	contractor.TypeValidator = contractorDescType.Validators[0].(func(string) error)
	// contractorDescStatus is the schema descriptor for status field.
	contractorDescStatus := contractorFields[6].Descriptor()
	// contractor.DefaultStatus holds the default value on creation for the status field.
	contractor.DefaultStatus = contractorDescStatus.Default.(string)
	// contractor.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	contractor.StatusValidator = contractorDescStatus.Validators[0].(func(string) error)
	// contractorDescSortOrder is the schema descriptor for sort_order field.
	contractorDescSortOrder := contractorFields[7].Descriptor()
	// contractor.DefaultSortOrder holds the default value on creation for the sort_order field.
	contractor.DefaultSortOrder = contractorDescSortOrder.Default.(int)
	// contractorDescID is the schema descriptor for id field.
	contractorDescID := contractorFields[0].Descriptor()
	// contractor.DefaultID holds the default value on creation for the id field.
	contractor.DefaultID = contractorDescID.Default.(func() uuid.UUID)
	editlockFields := schema.EditLock{}.Fields()
	_ = editlockFields
	// editlockDescDeviceID is the schema descriptor for device_id field.
	editlockDescDeviceID := editlockFields[3].Descriptor()
	// editlock.DeviceIDValidator is a validator for the "device_id" field. It is called by the builders before save.
	editlock.DeviceIDValidator = editlockDescDeviceID.Validators[0].(func(string) error)
	// editlockDescHolderName is the schema descriptor for holder_name field.
	editlockDescHolderName := editlockFields[4].Descriptor()
	// editlock.DefaultHolderName holds the default value on creation for the holder_name field.
	editlock.DefaultHolderName = editlockDescHolderName.Default.(string)
	// editlockDescAcquiredAt is the schema descriptor for acquired_at field.
	editlockDescAcquiredAt := editlockFields[5].Descriptor()
	// editlock.DefaultAcquiredAt holds the default value on creation for the acquired_at field.
	editlock.DefaultAcquiredAt = editlockDescAcquiredAt.Default.(func() time.Time)
	// editlockDescHeartbeatAt is the schema descriptor for heartbeat_at field.
	editlockDescHeartbeatAt := editlockFields[6].Descriptor()
	// editlock.DefaultHeartbeatAt holds the default value on creation for the heartbeat_at field.
	editlock.DefaultHeartbeatAt = editlockDescHeartbeatAt.Default.(func() time.Time)
	// editlockDescID is the schema descriptor for id field.
	editlockDescID := editlockFields[0].Descriptor()
	// editlock.DefaultID holds the default value on creation for the id field.
	editlock.DefaultID = editlockDescID.Default.(func() uuid.UUID)
	photoFields := schema.Photo{}.Fields()
	_ = photoFields
	// photoDescLocalPhotoID is the schema descriptor for local_photo_id field.
	photoDescLocalPhotoID := photoFields[2].Descriptor()
	// photo.LocalPhotoIDValidator is a validator for the "local_photo_id" field. It is called by the builders before save.
	photo.LocalPhotoIDValidator = photoDescLocalPhotoID.Validators[0].(func(string) error)
	// photoDescTakenAt is the schema descriptor for taken_at field.
	photoDescTakenAt := photoFields[7].Descriptor()
	// photo.DefaultTakenAt holds the default value on creation for the taken_at field.
	photo.DefaultTakenAt = photoDescTakenAt.Default.(func() time.Time)
	// photoDescCreatedAt is the schema descriptor for created_at field.
	photoDescCreatedAt := photoFields[8].Descriptor()
	// photo.DefaultCreatedAt holds the default value on creation for the created_at field.
	photo.DefaultCreatedAt = photoDescCreatedAt.Default.(func() time.Time)
	// photoDescID is the schema descriptor for id field.
	photoDescID := photoFields[0].Descriptor()
	// photo.DefaultID holds the default value on creation for the id field.
	photo.DefaultID = photoDescID.Default.(func() uuid.UUID)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[1].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescStatus is the schema descriptor for status field.
	projectDescStatus := projectFields[2].Descriptor()
	// project.DefaultStatus holds the default value on creation for the status field.
	project.DefaultStatus = projectDescStatus.Default.(string)
	// project.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	project.StatusValidator = projectDescStatus.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[3].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[4].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectDescID is the schema descriptor for id field.
	projectDescID := projectFields[0].Descriptor()
	// project.DefaultID holds the default value on creation for the id field.
	project.DefaultID = projectDescID.Default.(func() uuid.UUID)
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescStatus is the schema descriptor for status field.
	reportDescStatus := reportFields[3].Descriptor()
	// report.DefaultStatus holds the default value on creation for the status field.
	report.DefaultStatus = reportDescStatus.Default.(string)
	// report.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	report.StatusValidator = reportDescStatus.Validators[0].(func(string) error)
	// reportDescCaptureMode is the schema descriptor for capture_mode field.
	reportDescCaptureMode := reportFields[4].Descriptor()
	// report.DefaultCaptureMode holds the default value on creation for the capture_mode field.
	report.DefaultCaptureMode = reportDescCaptureMode.Default.(string)
	// report.CaptureModeValidator is a validator for the "capture_mode" field. It is called by the builders before save.
	report.CaptureModeValidator = reportDescCaptureMode.Validators[0].(func(string) error)
	// reportDescDeviceID is the schema descriptor for device_id field.
	reportDescDeviceID := reportFields[5].Descriptor()
	// report.DeviceIDValidator is a validator for the "device_id" field. It is called by the builders before save.
	report.DeviceIDValidator = reportDescDeviceID.Validators[0].(func(string) error)
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportFields[10].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescLastSaved is the schema descriptor for last_saved field.
	reportDescLastSaved := reportFields[11].Descriptor()
	// report.DefaultLastSaved holds the default value on creation for the last_saved field.
	report.DefaultLastSaved = reportDescLastSaved.Default.(func() time.Time)
	// report.UpdateDefaultLastSaved holds the default value on update for the last_saved field.
	report.UpdateDefaultLastSaved = reportDescLastSaved.UpdateDefault.(func() time.Time)
	// reportDescID is the schema descriptor for id field.
	reportDescID := reportFields[0].Descriptor()
	// report.DefaultID holds the default value on creation for the id field.
	report.DefaultID = reportDescID.Default.(func() uuid.UUID)
	reportentryFields := schema.ReportEntry{}.Fields()
	_ = reportentryFields
	// reportentryDescLocalEntryID is the schema descriptor for local_entry_id field.
	reportentryDescLocalEntryID := reportentryFields[2].Descriptor()
	// reportentry.LocalEntryIDValidator is a validator for the "local_entry_id" field. It is called by the builders before save.
	reportentry.LocalEntryIDValidator = reportentryDescLocalEntryID.Validators[0].(func(string) error)
	// reportentryDescSection is the schema descriptor for section field.
	reportentryDescSection := reportentryFields[3].Descriptor()
	// reportentry.SectionValidator is a validator for the "section" field. It is called by the builders before save.
	reportentry.SectionValidator = reportentryDescSection.Validators[0].(func(string) error)
	// reportentryDescBody is the schema descriptor for body field.
	reportentryDescBody := reportentryFields[4].Descriptor()
	// reportentry.DefaultBody holds the default value on creation for the body field.
	reportentry.DefaultBody = reportentryDescBody.Default.(string)
	// reportentryDescCapturedAt is the schema descriptor for captured_at field.
	reportentryDescCapturedAt := reportentryFields[7].Descriptor()
	// reportentry.DefaultCapturedAt holds the default value on creation for the captured_at field.
	reportentry.DefaultCapturedAt = reportentryDescCapturedAt.Default.(func() time.Time)
	// reportentryDescCreatedAt is the schema descriptor for created_at field.
	reportentryDescCreatedAt := reportentryFields[8].Descriptor()
	// reportentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	reportentry.DefaultCreatedAt = reportentryDescCreatedAt.Default.(func() time.Time)
	// reportentryDescUpdatedAt is the schema descriptor for updated_at field.
	reportentryDescUpdatedAt := reportentryFields[9].Descriptor()
	// reportentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reportentry.DefaultUpdatedAt = reportentryDescUpdatedAt.Default.(func() time.Time)
	// reportentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reportentry.UpdateDefaultUpdatedAt = reportentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reportentryDescID is the schema descriptor for id field.
	reportentryDescID := reportentryFields[0].Descriptor()
	// reportentry.DefaultID holds the default value on creation for the id field.
	reportentry.DefaultID = reportentryDescID.Default.(func() uuid.UUID)
	reportrawcaptureFields := schema.ReportRawCapture{}.Fields()
	_ = reportrawcaptureFields
	// reportrawcaptureDescCaptureMode is the schema descriptor for capture_mode field.
	reportrawcaptureDescCaptureMode := reportrawcaptureFields[2].Descriptor()
	// reportrawcapture.CaptureModeValidator is a validator for the "capture_mode" field. It is called by the builders before save.
	reportrawcapture.CaptureModeValidator = reportrawcaptureDescCaptureMode.Validators[0].(func(string) error)
	// reportrawcaptureDescCreatedAt is the schema descriptor for created_at field.
	reportrawcaptureDescCreatedAt := reportrawcaptureFields[4].Descriptor()
	// reportrawcapture.DefaultCreatedAt holds the default value on creation for the created_at field.
	reportrawcapture.DefaultCreatedAt = reportrawcaptureDescCreatedAt.Default.(func() time.Time)
	// reportrawcaptureDescID is the schema descriptor for id field.
	reportrawcaptureDescID := reportrawcaptureFields[0].Descriptor()
	// reportrawcapture.DefaultID holds the default value on creation for the id field.
	reportrawcapture.DefaultID = reportrawcaptureDescID.Default.(func() uuid.UUID)
	userprofileFields := schema.UserProfile{}.Fields()
	_ = userprofileFields
	// userprofileDescDeviceID is the schema descriptor for device_id field.
	userprofileDescDeviceID := userprofileFields[1].Descriptor()
	// userprofile.DeviceIDValidator is a validator for the "device_id" field. It is called by the builders before save.
	userprofile.DeviceIDValidator = userprofileDescDeviceID.Validators[0].(func(string) error)
	// userprofileDescDisplayName is the schema descriptor for display_name field.
	userprofileDescDisplayName := userprofileFields[2].Descriptor()
	// userprofile.DefaultDisplayName holds the default value on creation for the display_name field.
	userprofile.DefaultDisplayName = userprofileDescDisplayName.Default.(string)
	// userprofileDescCreatedAt is the schema descriptor for created_at field.
	userprofileDescCreatedAt := userprofileFields[4].Descriptor()
	// userprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	userprofile.DefaultCreatedAt = userprofileDescCreatedAt.Default.(func() time.Time)
	// userprofileDescUpdatedAt is the schema descriptor for updated_at field.
	userprofileDescUpdatedAt := userprofileFields[5].Descriptor()
	// userprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userprofile.DefaultUpdatedAt = userprofileDescUpdatedAt.Default.(func() time.Time)
	// userprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userprofile.UpdateDefaultUpdatedAt = userprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userprofileDescID is the schema descriptor for id field.
	userprofileDescID := userprofileFields[0].Descriptor()
	// userprofile.DefaultID holds the default value on creation for the id field.
	userprofile.DefaultID = userprofileDescID.Default.(func() uuid.UUID)
}
