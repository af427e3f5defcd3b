// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: proto/fieldlog/v1/fieldlog.proto

package fieldlogv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Entry struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	LocalId        string                 `protobuf:"bytes,1,opt,name=local_id,json=localId,proto3" json:"local_id,omitempty"`
	RemoteId       string                 `protobuf:"bytes,2,opt,name=remote_id,json=remoteId,proto3" json:"remote_id,omitempty"`
	Section        string                 `protobuf:"bytes,3,opt,name=section,proto3" json:"section,omitempty"`
	Text           string                 `protobuf:"bytes,4,opt,name=text,proto3" json:"text,omitempty"`
	ContractorId   string                 `protobuf:"bytes,5,opt,name=contractor_id,json=contractorId,proto3" json:"contractor_id,omitempty"`
	ContractorName string                 `protobuf:"bytes,6,opt,name=contractor_name,json=contractorName,proto3" json:"contractor_name,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Entry) Reset() {
	*x = Entry{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Entry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Entry) ProtoMessage() {}

func (x *Entry) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Entry.ProtoReflect.Descriptor instead.
func (*Entry) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{0}
}

func (x *Entry) GetLocalId() string {
	if x != nil {
		return x.LocalId
	}
	return ""
}

func (x *Entry) GetRemoteId() string {
	if x != nil {
		return x.RemoteId
	}
	return ""
}

func (x *Entry) GetSection() string {
	if x != nil {
		return x.Section
	}
	return ""
}

func (x *Entry) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *Entry) GetContractorId() string {
	if x != nil {
		return x.ContractorId
	}
	return ""
}

func (x *Entry) GetContractorName() string {
	if x != nil {
		return x.ContractorName
	}
	return ""
}

func (x *Entry) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

// Report carries the layered documents as JSON strings; clients navigate
// them by dot-path the same way the resolver does.
type Report struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	ReportId          string                 `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	ProjectId         string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	ReportDate        string                 `protobuf:"bytes,3,opt,name=report_date,json=reportDate,proto3" json:"report_date,omitempty"` // YYYY-MM-DD
	Status            string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	CaptureMode       string                 `protobuf:"bytes,5,opt,name=capture_mode,json=captureMode,proto3" json:"capture_mode,omitempty"`
	DeviceId          string                 `protobuf:"bytes,6,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
	OriginalInputJson string                 `protobuf:"bytes,7,opt,name=original_input_json,json=originalInputJson,proto3" json:"original_input_json,omitempty"`
	AiGeneratedJson   string                 `protobuf:"bytes,8,opt,name=ai_generated_json,json=aiGeneratedJson,proto3" json:"ai_generated_json,omitempty"`
	UserEditsJson     string                 `protobuf:"bytes,9,opt,name=user_edits_json,json=userEditsJson,proto3" json:"user_edits_json,omitempty"`
	TogglesJson       string                 `protobuf:"bytes,10,opt,name=toggles_json,json=togglesJson,proto3" json:"toggles_json,omitempty"`
	FieldNotes        []*Entry               `protobuf:"bytes,11,rep,name=field_notes,json=fieldNotes,proto3" json:"field_notes,omitempty"`
	GuidedNotes       []*Entry               `protobuf:"bytes,12,rep,name=guided_notes,json=guidedNotes,proto3" json:"guided_notes,omitempty"`
	CreatedAt         string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	LastSaved         string                 `protobuf:"bytes,14,opt,name=last_saved,json=lastSaved,proto3" json:"last_saved,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Report) Reset() {
	*x = Report{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Report) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Report) ProtoMessage() {}

func (x *Report) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Report.ProtoReflect.Descriptor instead.
func (*Report) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{1}
}

func (x *Report) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

func (x *Report) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *Report) GetReportDate() string {
	if x != nil {
		return x.ReportDate
	}
	return ""
}

func (x *Report) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Report) GetCaptureMode() string {
	if x != nil {
		return x.CaptureMode
	}
	return ""
}

func (x *Report) GetDeviceId() string {
	if x != nil {
		return x.DeviceId
	}
	return ""
}

func (x *Report) GetOriginalInputJson() string {
	if x != nil {
		return x.OriginalInputJson
	}
	return ""
}

func (x *Report) GetAiGeneratedJson() string {
	if x != nil {
		return x.AiGeneratedJson
	}
	return ""
}

func (x *Report) GetUserEditsJson() string {
	if x != nil {
		return x.UserEditsJson
	}
	return ""
}

func (x *Report) GetTogglesJson() string {
	if x != nil {
		return x.TogglesJson
	}
	return ""
}

func (x *Report) GetFieldNotes() []*Entry {
	if x != nil {
		return x.FieldNotes
	}
	return nil
}

func (x *Report) GetGuidedNotes() []*Entry {
	if x != nil {
		return x.GuidedNotes
	}
	return nil
}

func (x *Report) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Report) GetLastSaved() string {
	if x != nil {
		return x.LastSaved
	}
	return ""
}

type Contractor struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProjectId     string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Abbreviation  string                 `protobuf:"bytes,4,opt,name=abbreviation,proto3" json:"abbreviation,omitempty"`
	Type          string                 `protobuf:"bytes,5,opt,name=type,proto3" json:"type,omitempty"`
	Trade         string                 `protobuf:"bytes,6,opt,name=trade,proto3" json:"trade,omitempty"`
	Status        string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Contractor) Reset() {
	*x = Contractor{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Contractor) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Contractor) ProtoMessage() {}

func (x *Contractor) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Contractor.ProtoReflect.Descriptor instead.
func (*Contractor) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{2}
}

func (x *Contractor) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Contractor) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *Contractor) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Contractor) GetAbbreviation() string {
	if x != nil {
		return x.Abbreviation
	}
	return ""
}

func (x *Contractor) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Contractor) GetTrade() string {
	if x != nil {
		return x.Trade
	}
	return ""
}

func (x *Contractor) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type Project struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Contractors   []*Contractor          `protobuf:"bytes,4,rep,name=contractors,proto3" json:"contractors,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Project) Reset() {
	*x = Project{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Project) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Project) ProtoMessage() {}

func (x *Project) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Project.ProtoReflect.Descriptor instead.
func (*Project) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{3}
}

func (x *Project) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Project) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Project) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Project) GetContractors() []*Contractor {
	if x != nil {
		return x.Contractors
	}
	return nil
}

func (x *Project) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Project) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type GetReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReportId      string                 `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReportRequest) Reset() {
	*x = GetReportRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReportRequest) ProtoMessage() {}

func (x *GetReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReportRequest.ProtoReflect.Descriptor instead.
func (*GetReportRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{4}
}

func (x *GetReportRequest) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

type GetReportResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Unset when the report is neither cached nor reachable offline.
	Report        *Report `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReportResponse) Reset() {
	*x = GetReportResponse{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReportResponse) ProtoMessage() {}

func (x *GetReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReportResponse.ProtoReflect.Descriptor instead.
func (*GetReportResponse) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{5}
}

func (x *GetReportResponse) GetReport() *Report {
	if x != nil {
		return x.Report
	}
	return nil
}

type SaveReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Report        *Report                `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveReportRequest) Reset() {
	*x = SaveReportRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveReportRequest) ProtoMessage() {}

func (x *SaveReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveReportRequest.ProtoReflect.Descriptor instead.
func (*SaveReportRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{6}
}

func (x *SaveReportRequest) GetReport() *Report {
	if x != nil {
		return x.Report
	}
	return nil
}

type SaveReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveReportResponse) Reset() {
	*x = SaveReportResponse{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveReportResponse) ProtoMessage() {}

func (x *SaveReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveReportResponse.ProtoReflect.Descriptor instead.
func (*SaveReportResponse) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{7}
}

type SaveFieldEditRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReportId      string                 `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	Path          string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`                            // dot-path field identifier
	ValueJson     string                 `protobuf:"bytes,3,opt,name=value_json,json=valueJson,proto3" json:"value_json,omitempty"` // JSON-encoded value
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveFieldEditRequest) Reset() {
	*x = SaveFieldEditRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveFieldEditRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveFieldEditRequest) ProtoMessage() {}

func (x *SaveFieldEditRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveFieldEditRequest.ProtoReflect.Descriptor instead.
func (*SaveFieldEditRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{8}
}

func (x *SaveFieldEditRequest) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

func (x *SaveFieldEditRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *SaveFieldEditRequest) GetValueJson() string {
	if x != nil {
		return x.ValueJson
	}
	return ""
}

type SaveFieldEditResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveFieldEditResponse) Reset() {
	*x = SaveFieldEditResponse{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveFieldEditResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveFieldEditResponse) ProtoMessage() {}

func (x *SaveFieldEditResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveFieldEditResponse.ProtoReflect.Descriptor instead.
func (*SaveFieldEditResponse) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{9}
}

type SetSectionToggleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReportId      string                 `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	Section       string                 `protobuf:"bytes,2,opt,name=section,proto3" json:"section,omitempty"`
	Value         bool                   `protobuf:"varint,3,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetSectionToggleRequest) Reset() {
	*x = SetSectionToggleRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetSectionToggleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetSectionToggleRequest) ProtoMessage() {}

func (x *SetSectionToggleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetSectionToggleRequest.ProtoReflect.Descriptor instead.
func (*SetSectionToggleRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{10}
}

func (x *SetSectionToggleRequest) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

func (x *SetSectionToggleRequest) GetSection() string {
	if x != nil {
		return x.Section
	}
	return ""
}

func (x *SetSectionToggleRequest) GetValue() bool {
	if x != nil {
		return x.Value
	}
	return false
}

type SetSectionToggleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Allowed       bool                   `protobuf:"varint,1,opt,name=allowed,proto3" json:"allowed,omitempty"`
	CurrentValue  *bool                  `protobuf:"varint,2,opt,name=current_value,json=currentValue,proto3,oneof" json:"current_value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetSectionToggleResponse) Reset() {
	*x = SetSectionToggleResponse{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetSectionToggleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetSectionToggleResponse) ProtoMessage() {}

func (x *SetSectionToggleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetSectionToggleResponse.ProtoReflect.Descriptor instead.
func (*SetSectionToggleResponse) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{11}
}

func (x *SetSectionToggleResponse) GetAllowed() bool {
	if x != nil {
		return x.Allowed
	}
	return false
}

func (x *SetSectionToggleResponse) GetCurrentValue() bool {
	if x != nil && x.CurrentValue != nil {
		return *x.CurrentValue
	}
	return false
}

type TransitionStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReportId      string                 `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	TargetStatus  string                 `protobuf:"bytes,2,opt,name=target_status,json=targetStatus,proto3" json:"target_status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TransitionStatusRequest) Reset() {
	*x = TransitionStatusRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TransitionStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TransitionStatusRequest) ProtoMessage() {}

func (x *TransitionStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TransitionStatusRequest.ProtoReflect.Descriptor instead.
func (*TransitionStatusRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{12}
}

func (x *TransitionStatusRequest) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

func (x *TransitionStatusRequest) GetTargetStatus() string {
	if x != nil {
		return x.TargetStatus
	}
	return ""
}

type TransitionStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Allowed       bool                   `protobuf:"varint,1,opt,name=allowed,proto3" json:"allowed,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	Report        *Report                `protobuf:"bytes,3,opt,name=report,proto3" json:"report,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TransitionStatusResponse) Reset() {
	*x = TransitionStatusResponse{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TransitionStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TransitionStatusResponse) ProtoMessage() {}

func (x *TransitionStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TransitionStatusResponse.ProtoReflect.Descriptor instead.
func (*TransitionStatusResponse) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{13}
}

func (x *TransitionStatusResponse) GetAllowed() bool {
	if x != nil {
		return x.Allowed
	}
	return false
}

func (x *TransitionStatusResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *TransitionStatusResponse) GetReport() *Report {
	if x != nil {
		return x.Report
	}
	return nil
}

type SwitchCaptureModeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReportId      string                 `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SwitchCaptureModeRequest) Reset() {
	*x = SwitchCaptureModeRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SwitchCaptureModeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SwitchCaptureModeRequest) ProtoMessage() {}

func (x *SwitchCaptureModeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SwitchCaptureModeRequest.ProtoReflect.Descriptor instead.
func (*SwitchCaptureModeRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{14}
}

func (x *SwitchCaptureModeRequest) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

type SwitchCaptureModeResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Allowed           bool                   `protobuf:"varint,1,opt,name=allowed,proto3" json:"allowed,omitempty"`
	Reason            string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	RequiresMigration bool                   `protobuf:"varint,3,opt,name=requires_migration,json=requiresMigration,proto3" json:"requires_migration,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *SwitchCaptureModeResponse) Reset() {
	*x = SwitchCaptureModeResponse{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SwitchCaptureModeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SwitchCaptureModeResponse) ProtoMessage() {}

func (x *SwitchCaptureModeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SwitchCaptureModeResponse.ProtoReflect.Descriptor instead.
func (*SwitchCaptureModeResponse) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{15}
}

func (x *SwitchCaptureModeResponse) GetAllowed() bool {
	if x != nil {
		return x.Allowed
	}
	return false
}

func (x *SwitchCaptureModeResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *SwitchCaptureModeResponse) GetRequiresMigration() bool {
	if x != nil {
		return x.RequiresMigration
	}
	return false
}

type CheckEligibilityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckEligibilityRequest) Reset() {
	*x = CheckEligibilityRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckEligibilityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckEligibilityRequest) ProtoMessage() {}

func (x *CheckEligibilityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckEligibilityRequest.ProtoReflect.Descriptor instead.
func (*CheckEligibilityRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{16}
}

func (x *CheckEligibilityRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type CheckEligibilityResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Allowed            bool                   `protobuf:"varint,1,opt,name=allowed,proto3" json:"allowed,omitempty"`
	Reason             string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	BlockingReportId   string                 `protobuf:"bytes,3,opt,name=blocking_report_id,json=blockingReportId,proto3" json:"blocking_report_id,omitempty"`
	BlockingReportDate string                 `protobuf:"bytes,4,opt,name=blocking_report_date,json=blockingReportDate,proto3" json:"blocking_report_date,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *CheckEligibilityResponse) Reset() {
	*x = CheckEligibilityResponse{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckEligibilityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckEligibilityResponse) ProtoMessage() {}

func (x *CheckEligibilityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckEligibilityResponse.ProtoReflect.Descriptor instead.
func (*CheckEligibilityResponse) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{17}
}

func (x *CheckEligibilityResponse) GetAllowed() bool {
	if x != nil {
		return x.Allowed
	}
	return false
}

func (x *CheckEligibilityResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *CheckEligibilityResponse) GetBlockingReportId() string {
	if x != nil {
		return x.BlockingReportId
	}
	return ""
}

func (x *CheckEligibilityResponse) GetBlockingReportDate() string {
	if x != nil {
		return x.BlockingReportDate
	}
	return ""
}

type BackupEntryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReportId      string                 `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	Entry         *Entry                 `protobuf:"bytes,2,opt,name=entry,proto3" json:"entry,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BackupEntryRequest) Reset() {
	*x = BackupEntryRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BackupEntryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BackupEntryRequest) ProtoMessage() {}

func (x *BackupEntryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BackupEntryRequest.ProtoReflect.Descriptor instead.
func (*BackupEntryRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{18}
}

func (x *BackupEntryRequest) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

func (x *BackupEntryRequest) GetEntry() *Entry {
	if x != nil {
		return x.Entry
	}
	return nil
}

type BackupEntryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BackupEntryResponse) Reset() {
	*x = BackupEntryResponse{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BackupEntryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BackupEntryResponse) ProtoMessage() {}

func (x *BackupEntryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BackupEntryResponse.ProtoReflect.Descriptor instead.
func (*BackupEntryResponse) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{19}
}

type DeleteEntryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReportId      string                 `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	LocalEntryId  string                 `protobuf:"bytes,2,opt,name=local_entry_id,json=localEntryId,proto3" json:"local_entry_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteEntryRequest) Reset() {
	*x = DeleteEntryRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteEntryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteEntryRequest) ProtoMessage() {}

func (x *DeleteEntryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteEntryRequest.ProtoReflect.Descriptor instead.
func (*DeleteEntryRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{20}
}

func (x *DeleteEntryRequest) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

func (x *DeleteEntryRequest) GetLocalEntryId() string {
	if x != nil {
		return x.LocalEntryId
	}
	return ""
}

type DeleteEntryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteEntryResponse) Reset() {
	*x = DeleteEntryResponse{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteEntryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteEntryResponse) ProtoMessage() {}

func (x *DeleteEntryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteEntryResponse.ProtoReflect.Descriptor instead.
func (*DeleteEntryResponse) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{21}
}

type RefineReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReportId      string                 `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RefineReportRequest) Reset() {
	*x = RefineReportRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefineReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefineReportRequest) ProtoMessage() {}

func (x *RefineReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefineReportRequest.ProtoReflect.Descriptor instead.
func (*RefineReportRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{22}
}

func (x *RefineReportRequest) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

type RefineReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Report        *Report                `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RefineReportResponse) Reset() {
	*x = RefineReportResponse{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefineReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefineReportResponse) ProtoMessage() {}

func (x *RefineReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefineReportResponse.ProtoReflect.Descriptor instead.
func (*RefineReportResponse) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{23}
}

func (x *RefineReportResponse) GetReport() *Report {
	if x != nil {
		return x.Report
	}
	return nil
}

type SubmitReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReportId      string                 `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitReportRequest) Reset() {
	*x = SubmitReportRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitReportRequest) ProtoMessage() {}

func (x *SubmitReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitReportRequest.ProtoReflect.Descriptor instead.
func (*SubmitReportRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{24}
}

func (x *SubmitReportRequest) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

type SubmitReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Report        *Report                `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitReportResponse) Reset() {
	*x = SubmitReportResponse{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitReportResponse) ProtoMessage() {}

func (x *SubmitReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitReportResponse.ProtoReflect.Descriptor instead.
func (*SubmitReportResponse) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{25}
}

func (x *SubmitReportResponse) GetReport() *Report {
	if x != nil {
		return x.Report
	}
	return nil
}

type CheckLockRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	ReportDate    string                 `protobuf:"bytes,2,opt,name=report_date,json=reportDate,proto3" json:"report_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckLockRequest) Reset() {
	*x = CheckLockRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckLockRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckLockRequest) ProtoMessage() {}

func (x *CheckLockRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckLockRequest.ProtoReflect.Descriptor instead.
func (*CheckLockRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{26}
}

func (x *CheckLockRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *CheckLockRequest) GetReportDate() string {
	if x != nil {
		return x.ReportDate
	}
	return ""
}

type AcquireLockRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	ReportDate    string                 `protobuf:"bytes,2,opt,name=report_date,json=reportDate,proto3" json:"report_date,omitempty"`
	DisplayName   string                 `protobuf:"bytes,3,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AcquireLockRequest) Reset() {
	*x = AcquireLockRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AcquireLockRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AcquireLockRequest) ProtoMessage() {}

func (x *AcquireLockRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AcquireLockRequest.ProtoReflect.Descriptor instead.
func (*AcquireLockRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{27}
}

func (x *AcquireLockRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *AcquireLockRequest) GetReportDate() string {
	if x != nil {
		return x.ReportDate
	}
	return ""
}

func (x *AcquireLockRequest) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

type LockStatus struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Available     bool                   `protobuf:"varint,1,opt,name=available,proto3" json:"available,omitempty"`
	HolderName    string                 `protobuf:"bytes,2,opt,name=holder_name,json=holderName,proto3" json:"holder_name,omitempty"`
	DeviceId      string                 `protobuf:"bytes,3,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
	AcquiredAt    string                 `protobuf:"bytes,4,opt,name=acquired_at,json=acquiredAt,proto3" json:"acquired_at,omitempty"`
	HeartbeatAt   string                 `protobuf:"bytes,5,opt,name=heartbeat_at,json=heartbeatAt,proto3" json:"heartbeat_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LockStatus) Reset() {
	*x = LockStatus{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LockStatus) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LockStatus) ProtoMessage() {}

func (x *LockStatus) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LockStatus.ProtoReflect.Descriptor instead.
func (*LockStatus) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{28}
}

func (x *LockStatus) GetAvailable() bool {
	if x != nil {
		return x.Available
	}
	return false
}

func (x *LockStatus) GetHolderName() string {
	if x != nil {
		return x.HolderName
	}
	return ""
}

func (x *LockStatus) GetDeviceId() string {
	if x != nil {
		return x.DeviceId
	}
	return ""
}

func (x *LockStatus) GetAcquiredAt() string {
	if x != nil {
		return x.AcquiredAt
	}
	return ""
}

func (x *LockStatus) GetHeartbeatAt() string {
	if x != nil {
		return x.HeartbeatAt
	}
	return ""
}

type ReleaseLockRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	ReportDate    string                 `protobuf:"bytes,2,opt,name=report_date,json=reportDate,proto3" json:"report_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReleaseLockRequest) Reset() {
	*x = ReleaseLockRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReleaseLockRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReleaseLockRequest) ProtoMessage() {}

func (x *ReleaseLockRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReleaseLockRequest.ProtoReflect.Descriptor instead.
func (*ReleaseLockRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{29}
}

func (x *ReleaseLockRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *ReleaseLockRequest) GetReportDate() string {
	if x != nil {
		return x.ReportDate
	}
	return ""
}

type ReleaseLockResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReleaseLockResponse) Reset() {
	*x = ReleaseLockResponse{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReleaseLockResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReleaseLockResponse) ProtoMessage() {}

func (x *ReleaseLockResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReleaseLockResponse.ProtoReflect.Descriptor instead.
func (*ReleaseLockResponse) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{30}
}

type ListProjectsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProjectsRequest) Reset() {
	*x = ListProjectsRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProjectsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProjectsRequest) ProtoMessage() {}

func (x *ListProjectsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProjectsRequest.ProtoReflect.Descriptor instead.
func (*ListProjectsRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{31}
}

type RefreshProjectsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RefreshProjectsRequest) Reset() {
	*x = RefreshProjectsRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefreshProjectsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefreshProjectsRequest) ProtoMessage() {}

func (x *RefreshProjectsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefreshProjectsRequest.ProtoReflect.Descriptor instead.
func (*RefreshProjectsRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{32}
}

type ListProjectsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Projects      []*Project             `protobuf:"bytes,1,rep,name=projects,proto3" json:"projects,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProjectsResponse) Reset() {
	*x = ListProjectsResponse{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProjectsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProjectsResponse) ProtoMessage() {}

func (x *ListProjectsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProjectsResponse.ProtoReflect.Descriptor instead.
func (*ListProjectsResponse) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{33}
}

func (x *ListProjectsResponse) GetProjects() []*Project {
	if x != nil {
		return x.Projects
	}
	return nil
}

type ListArchivesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListArchivesRequest) Reset() {
	*x = ListArchivesRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListArchivesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListArchivesRequest) ProtoMessage() {}

func (x *ListArchivesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListArchivesRequest.ProtoReflect.Descriptor instead.
func (*ListArchivesRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{34}
}

func (x *ListArchivesRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type RefreshArchivesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RefreshArchivesRequest) Reset() {
	*x = RefreshArchivesRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefreshArchivesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefreshArchivesRequest) ProtoMessage() {}

func (x *RefreshArchivesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefreshArchivesRequest.ProtoReflect.Descriptor instead.
func (*RefreshArchivesRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{35}
}

func (x *RefreshArchivesRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type ListArchivesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reports       []*Report              `protobuf:"bytes,1,rep,name=reports,proto3" json:"reports,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListArchivesResponse) Reset() {
	*x = ListArchivesResponse{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListArchivesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListArchivesResponse) ProtoMessage() {}

func (x *ListArchivesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListArchivesResponse.ProtoReflect.Descriptor instead.
func (*ListArchivesResponse) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{36}
}

func (x *ListArchivesResponse) GetReports() []*Report {
	if x != nil {
		return x.Reports
	}
	return nil
}

type ExportArchiveRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportArchiveRequest) Reset() {
	*x = ExportArchiveRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportArchiveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportArchiveRequest) ProtoMessage() {}

func (x *ExportArchiveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportArchiveRequest.ProtoReflect.Descriptor instead.
func (*ExportArchiveRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{37}
}

func (x *ExportArchiveRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type ExportArchiveResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportArchiveResponse) Reset() {
	*x = ExportArchiveResponse{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportArchiveResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportArchiveResponse) ProtoMessage() {}

func (x *ExportArchiveResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportArchiveResponse.ProtoReflect.Descriptor instead.
func (*ExportArchiveResponse) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{38}
}

func (x *ExportArchiveResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type GetDeviceIdentityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDeviceIdentityRequest) Reset() {
	*x = GetDeviceIdentityRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDeviceIdentityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDeviceIdentityRequest) ProtoMessage() {}

func (x *GetDeviceIdentityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDeviceIdentityRequest.ProtoReflect.Descriptor instead.
func (*GetDeviceIdentityRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{39}
}

type SetDisplayNameRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DisplayName   string                 `protobuf:"bytes,1,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetDisplayNameRequest) Reset() {
	*x = SetDisplayNameRequest{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetDisplayNameRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetDisplayNameRequest) ProtoMessage() {}

func (x *SetDisplayNameRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetDisplayNameRequest.ProtoReflect.Descriptor instead.
func (*SetDisplayNameRequest) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{40}
}

func (x *SetDisplayNameRequest) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

type DeviceIdentity struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DeviceId      string                 `protobuf:"bytes,1,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
	DisplayName   string                 `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,3,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeviceIdentity) Reset() {
	*x = DeviceIdentity{}
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeviceIdentity) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeviceIdentity) ProtoMessage() {}

func (x *DeviceIdentity) ProtoReflect() protoreflect.Message {
	mi := &file_proto_fieldlog_v1_fieldlog_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeviceIdentity.ProtoReflect.Descriptor instead.
func (*DeviceIdentity) Descriptor() ([]byte, []int) {
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP(), []int{41}
}

func (x *DeviceIdentity) GetDeviceId() string {
	if x != nil {
		return x.DeviceId
	}
	return ""
}

func (x *DeviceIdentity) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *DeviceIdentity) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

var File_proto_fieldlog_v1_fieldlog_proto protoreflect.FileDescriptor

const file_proto_fieldlog_v1_fieldlog_proto_rawDesc = "" +
	"\n" +
	" proto/fieldlog/v1/fieldlog.proto\x12\vfieldlog.v1\"\xda\x01\n" +
	"\x05Entry\x12\x19\n" +
	"\blocal_id\x18\x01 \x01(\tR\alocalId\x12\x1b\n" +
	"\tremote_id\x18\x02 \x01(\tR\bremoteId\x12\x18\n" +
	"\asection\x18\x03 \x01(\tR\asection\x12\x12\n" +
	"\x04text\x18\x04 \x01(\tR\x04text\x12#\n" +
	"\rcontractor_id\x18\x05 \x01(\tR\fcontractorId\x12'\n" +
	"\x0fcontractor_name\x18\x06 \x01(\tR\x0econtractorName\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\"\x8e\x04\n" +
	"\x06Report\x12\x1b\n" +
	"\treport_id\x18\x01 \x01(\tR\breportId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x1f\n" +
	"\vreport_date\x18\x03 \x01(\tR\n" +
	"reportDate\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12!\n" +
	"\fcapture_mode\x18\x05 \x01(\tR\vcaptureMode\x12\x1b\n" +
	"\tdevice_id\x18\x06 \x01(\tR\bdeviceId\x12.\n" +
	"\x13original_input_json\x18\a \x01(\tR\x11originalInputJson\x12*\n" +
	"\x11ai_generated_json\x18\b \x01(\tR\x0faiGeneratedJson\x12&\n" +
	"\x0fuser_edits_json\x18\t \x01(\tR\ruserEditsJson\x12!\n" +
	"\ftoggles_json\x18\n" +
	" \x01(\tR\vtogglesJson\x123\n" +
	"\vfield_notes\x18\v \x03(\v2\x12.fieldlog.v1.EntryR\n" +
	"fieldNotes\x125\n" +
	"\fguided_notes\x18\f \x03(\v2\x12.fieldlog.v1.EntryR\vguidedNotes\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"last_saved\x18\x0e \x01(\tR\tlastSaved\"\xb5\x01\n" +
	"\n" +
	"Contractor\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\"\n" +
	"\fabbreviation\x18\x04 \x01(\tR\fabbreviation\x12\x12\n" +
	"\x04type\x18\x05 \x01(\tR\x04type\x12\x14\n" +
	"\x05trade\x18\x06 \x01(\tR\x05trade\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\"\xbe\x01\n" +
	"\aProject\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x129\n" +
	"\vcontractors\x18\x04 \x03(\v2\x17.fieldlog.v1.ContractorR\vcontractors\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"/\n" +
	"\x10GetReportRequest\x12\x1b\n" +
	"\treport_id\x18\x01 \x01(\tR\breportId\"@\n" +
	"\x11GetReportResponse\x12+\n" +
	"\x06report\x18\x01 \x01(\v2\x13.fieldlog.v1.ReportR\x06report\"@\n" +
	"\x11SaveReportRequest\x12+\n" +
	"\x06report\x18\x01 \x01(\v2\x13.fieldlog.v1.ReportR\x06report\"\x14\n" +
	"\x12SaveReportResponse\"f\n" +
	"\x14SaveFieldEditRequest\x12\x1b\n" +
	"\treport_id\x18\x01 \x01(\tR\breportId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\x12\x1d\n" +
	"\n" +
	"value_json\x18\x03 \x01(\tR\tvalueJson\"\x17\n" +
	"\x15SaveFieldEditResponse\"f\n" +
	"\x17SetSectionToggleRequest\x12\x1b\n" +
	"\treport_id\x18\x01 \x01(\tR\breportId\x12\x18\n" +
	"\asection\x18\x02 \x01(\tR\asection\x12\x14\n" +
	"\x05value\x18\x03 \x01(\bR\x05value\"p\n" +
	"\x18SetSectionToggleResponse\x12\x18\n" +
	"\aallowed\x18\x01 \x01(\bR\aallowed\x12(\n" +
	"\rcurrent_value\x18\x02 \x01(\bH\x00R\fcurrentValue\x88\x01\x01B\x10\n" +
	"\x0e_current_value\"[\n" +
	"\x17TransitionStatusRequest\x12\x1b\n" +
	"\treport_id\x18\x01 \x01(\tR\breportId\x12#\n" +
	"\rtarget_status\x18\x02 \x01(\tR\ftargetStatus\"y\n" +
	"\x18TransitionStatusResponse\x12\x18\n" +
	"\aallowed\x18\x01 \x01(\bR\aallowed\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\x12+\n" +
	"\x06report\x18\x03 \x01(\v2\x13.fieldlog.v1.ReportR\x06report\"7\n" +
	"\x18SwitchCaptureModeRequest\x12\x1b\n" +
	"\treport_id\x18\x01 \x01(\tR\breportId\"|\n" +
	"\x19SwitchCaptureModeResponse\x12\x18\n" +
	"\aallowed\x18\x01 \x01(\bR\aallowed\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\x12-\n" +
	"\x12requires_migration\x18\x03 \x01(\bR\x11requiresMigration\"8\n" +
	"\x17CheckEligibilityRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"\xac\x01\n" +
	"\x18CheckEligibilityResponse\x12\x18\n" +
	"\aallowed\x18\x01 \x01(\bR\aallowed\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\x12,\n" +
	"\x12blocking_report_id\x18\x03 \x01(\tR\x10blockingReportId\x120\n" +
	"\x14blocking_report_date\x18\x04 \x01(\tR\x12blockingReportDate\"[\n" +
	"\x12BackupEntryRequest\x12\x1b\n" +
	"\treport_id\x18\x01 \x01(\tR\breportId\x12(\n" +
	"\x05entry\x18\x02 \x01(\v2\x12.fieldlog.v1.EntryR\x05entry\"\x15\n" +
	"\x13BackupEntryResponse\"W\n" +
	"\x12DeleteEntryRequest\x12\x1b\n" +
	"\treport_id\x18\x01 \x01(\tR\breportId\x12$\n" +
	"\x0elocal_entry_id\x18\x02 \x01(\tR\flocalEntryId\"\x15\n" +
	"\x13DeleteEntryResponse\"2\n" +
	"\x13RefineReportRequest\x12\x1b\n" +
	"\treport_id\x18\x01 \x01(\tR\breportId\"C\n" +
	"\x14RefineReportResponse\x12+\n" +
	"\x06report\x18\x01 \x01(\v2\x13.fieldlog.v1.ReportR\x06report\"2\n" +
	"\x13SubmitReportRequest\x12\x1b\n" +
	"\treport_id\x18\x01 \x01(\tR\breportId\"C\n" +
	"\x14SubmitReportResponse\x12+\n" +
	"\x06report\x18\x01 \x01(\v2\x13.fieldlog.v1.ReportR\x06report\"R\n" +
	"\x10CheckLockRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x1f\n" +
	"\vreport_date\x18\x02 \x01(\tR\n" +
	"reportDate\"w\n" +
	"\x12AcquireLockRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x1f\n" +
	"\vreport_date\x18\x02 \x01(\tR\n" +
	"reportDate\x12!\n" +
	"\fdisplay_name\x18\x03 \x01(\tR\vdisplayName\"\xac\x01\n" +
	"\n" +
	"LockStatus\x12\x1c\n" +
	"\tavailable\x18\x01 \x01(\bR\tavailable\x12\x1f\n" +
	"\vholder_name\x18\x02 \x01(\tR\n" +
	"holderName\x12\x1b\n" +
	"\tdevice_id\x18\x03 \x01(\tR\bdeviceId\x12\x1f\n" +
	"\vacquired_at\x18\x04 \x01(\tR\n" +
	"acquiredAt\x12!\n" +
	"\fheartbeat_at\x18\x05 \x01(\tR\vheartbeatAt\"T\n" +
	"\x12ReleaseLockRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x1f\n" +
	"\vreport_date\x18\x02 \x01(\tR\n" +
	"reportDate\"\x15\n" +
	"\x13ReleaseLockResponse\"\x15\n" +
	"\x13ListProjectsRequest\"\x18\n" +
	"\x16RefreshProjectsRequest\"H\n" +
	"\x14ListProjectsResponse\x120\n" +
	"\bprojects\x18\x01 \x03(\v2\x14.fieldlog.v1.ProjectR\bprojects\"4\n" +
	"\x13ListArchivesRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"7\n" +
	"\x16RefreshArchivesRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"E\n" +
	"\x14ListArchivesResponse\x12-\n" +
	"\areports\x18\x01 \x03(\v2\x13.fieldlog.v1.ReportR\areports\"5\n" +
	"\x14ExportArchiveRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"+\n" +
	"\x15ExportArchiveResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\x1a\n" +
	"\x18GetDeviceIdentityRequest\":\n" +
	"\x15SetDisplayNameRequest\x12!\n" +
	"\fdisplay_name\x18\x01 \x01(\tR\vdisplayName\"o\n" +
	"\x0eDeviceIdentity\x12\x1b\n" +
	"\tdevice_id\x18\x01 \x01(\tR\bdeviceId\x12!\n" +
	"\fdisplay_name\x18\x02 \x01(\tR\vdisplayName\x12\x1d\n" +
	"\n" +
	"created_at\x18\x03 \x01(\tR\tcreatedAt2\xd8\a\n" +
	"\x0eReportsService\x12J\n" +
	"\tGetReport\x12\x1d.fieldlog.v1.GetReportRequest\x1a\x1e.fieldlog.v1.GetReportResponse\x12M\n" +
	"\n" +
	"SaveReport\x12\x1e.fieldlog.v1.SaveReportRequest\x1a\x1f.fieldlog.v1.SaveReportResponse\x12V\n" +
	"\rSaveFieldEdit\x12!.fieldlog.v1.SaveFieldEditRequest\x1a\".fieldlog.v1.SaveFieldEditResponse\x12_\n" +
	"\x10SetSectionToggle\x12$.fieldlog.v1.SetSectionToggleRequest\x1a%.fieldlog.v1.SetSectionToggleResponse\x12_\n" +
	"\x10TransitionStatus\x12$.fieldlog.v1.TransitionStatusRequest\x1a%.fieldlog.v1.TransitionStatusResponse\x12b\n" +
	"\x11SwitchCaptureMode\x12%.fieldlog.v1.SwitchCaptureModeRequest\x1a&.fieldlog.v1.SwitchCaptureModeResponse\x12_\n" +
	"\x10CheckEligibility\x12$.fieldlog.v1.CheckEligibilityRequest\x1a%.fieldlog.v1.CheckEligibilityResponse\x12P\n" +
	"\vBackupEntry\x12\x1f.fieldlog.v1.BackupEntryRequest\x1a .fieldlog.v1.BackupEntryResponse\x12P\n" +
	"\vDeleteEntry\x12\x1f.fieldlog.v1.DeleteEntryRequest\x1a .fieldlog.v1.DeleteEntryResponse\x12S\n" +
	"\fRefineReport\x12 .fieldlog.v1.RefineReportRequest\x1a!.fieldlog.v1.RefineReportResponse\x12S\n" +
	"\fSubmitReport\x12 .fieldlog.v1.SubmitReportRequest\x1a!.fieldlog.v1.SubmitReportResponse2\xee\x01\n" +
	"\fLocksService\x12C\n" +
	"\tCheckLock\x12\x1d.fieldlog.v1.CheckLockRequest\x1a\x17.fieldlog.v1.LockStatus\x12G\n" +
	"\vAcquireLock\x12\x1f.fieldlog.v1.AcquireLockRequest\x1a\x17.fieldlog.v1.LockStatus\x12P\n" +
	"\vReleaseLock\x12\x1f.fieldlog.v1.ReleaseLockRequest\x1a .fieldlog.v1.ReleaseLockResponse2\xf1\x02\n" +
	"\x0fProjectsService\x12S\n" +
	"\fListProjects\x12 .fieldlog.v1.ListProjectsRequest\x1a!.fieldlog.v1.ListProjectsResponse\x12Y\n" +
	"\x0fRefreshProjects\x12#.fieldlog.v1.RefreshProjectsRequest\x1a!.fieldlog.v1.ListProjectsResponse\x12S\n" +
	"\fListArchives\x12 .fieldlog.v1.ListArchivesRequest\x1a!.fieldlog.v1.ListArchivesResponse\x12Y\n" +
	"\x0fRefreshArchives\x12#.fieldlog.v1.RefreshArchivesRequest\x1a!.fieldlog.v1.ListArchivesResponse2g\n" +
	"\rExportService\x12V\n" +
	"\rExportArchive\x12!.fieldlog.v1.ExportArchiveRequest\x1a\".fieldlog.v1.ExportArchiveResponse2\xbc\x01\n" +
	"\x0eProfileService\x12W\n" +
	"\x11GetDeviceIdentity\x12%.fieldlog.v1.GetDeviceIdentityRequest\x1a\x1b.fieldlog.v1.DeviceIdentity\x12Q\n" +
	"\x0eSetDisplayName\x12\".fieldlog.v1.SetDisplayNameRequest\x1a\x1b.fieldlog.v1.DeviceIdentityB?Z=github.com/fieldlog/fieldlog/gen/proto/fieldlog/v1;fieldlogv1b\x06proto3"

var (
	file_proto_fieldlog_v1_fieldlog_proto_rawDescOnce sync.Once
	file_proto_fieldlog_v1_fieldlog_proto_rawDescData []byte
)

func file_proto_fieldlog_v1_fieldlog_proto_rawDescGZIP() []byte {
	file_proto_fieldlog_v1_fieldlog_proto_rawDescOnce.Do(func() {
		file_proto_fieldlog_v1_fieldlog_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_fieldlog_v1_fieldlog_proto_rawDesc), len(file_proto_fieldlog_v1_fieldlog_proto_rawDesc)))
	})
	return file_proto_fieldlog_v1_fieldlog_proto_rawDescData
}

var file_proto_fieldlog_v1_fieldlog_proto_msgTypes = make([]protoimpl.MessageInfo, 42)
var file_proto_fieldlog_v1_fieldlog_proto_goTypes = []any{
	(*Entry)(nil),                     // 0: fieldlog.v1.Entry
	(*Report)(nil),                    // 1: fieldlog.v1.Report
	(*Contractor)(nil),                // 2: fieldlog.v1.Contractor
	(*Project)(nil),                   // 3: fieldlog.v1.Project
	(*GetReportRequest)(nil),          // 4: fieldlog.v1.GetReportRequest
	(*GetReportResponse)(nil),         // 5: fieldlog.v1.GetReportResponse
	(*SaveReportRequest)(nil),         // 6: fieldlog.v1.SaveReportRequest
	(*SaveReportResponse)(nil),        // 7: fieldlog.v1.SaveReportResponse
	(*SaveFieldEditRequest)(nil),      // 8: fieldlog.v1.SaveFieldEditRequest
	(*SaveFieldEditResponse)(nil),     // 9: fieldlog.v1.SaveFieldEditResponse
	(*SetSectionToggleRequest)(nil),   // 10: fieldlog.v1.SetSectionToggleRequest
	(*SetSectionToggleResponse)(nil),  // 11: fieldlog.v1.SetSectionToggleResponse
	(*TransitionStatusRequest)(nil),   // 12: fieldlog.v1.TransitionStatusRequest
	(*TransitionStatusResponse)(nil),  // 13: fieldlog.v1.TransitionStatusResponse
	(*SwitchCaptureModeRequest)(nil),  // 14: fieldlog.v1.SwitchCaptureModeRequest
	(*SwitchCaptureModeResponse)(nil), // 15: fieldlog.v1.SwitchCaptureModeResponse
	(*CheckEligibilityRequest)(nil),   // 16: fieldlog.v1.CheckEligibilityRequest
	(*CheckEligibilityResponse)(nil),  // 17: fieldlog.v1.CheckEligibilityResponse
	(*BackupEntryRequest)(nil),        // 18: fieldlog.v1.BackupEntryRequest
	(*BackupEntryResponse)(nil),       // 19: fieldlog.v1.BackupEntryResponse
	(*DeleteEntryRequest)(nil),        // 20: fieldlog.v1.DeleteEntryRequest
	(*DeleteEntryResponse)(nil),       // 21: fieldlog.v1.DeleteEntryResponse
	(*RefineReportRequest)(nil),       // 22: fieldlog.v1.RefineReportRequest
	(*RefineReportResponse)(nil),      // 23: fieldlog.v1.RefineReportResponse
	(*SubmitReportRequest)(nil),       // 24: fieldlog.v1.SubmitReportRequest
	(*SubmitReportResponse)(nil),      // 25: fieldlog.v1.SubmitReportResponse
	(*CheckLockRequest)(nil),          // 26: fieldlog.v1.CheckLockRequest
	(*AcquireLockRequest)(nil),        // 27: fieldlog.v1.AcquireLockRequest
	(*LockStatus)(nil),                // 28: fieldlog.v1.LockStatus
	(*ReleaseLockRequest)(nil),        // 29: fieldlog.v1.ReleaseLockRequest
	(*ReleaseLockResponse)(nil),       // 30: fieldlog.v1.ReleaseLockResponse
	(*ListProjectsRequest)(nil),       // 31: fieldlog.v1.ListProjectsRequest
	(*RefreshProjectsRequest)(nil),    // 32: fieldlog.v1.RefreshProjectsRequest
	(*ListProjectsResponse)(nil),      // 33: fieldlog.v1.ListProjectsResponse
	(*ListArchivesRequest)(nil),       // 34: fieldlog.v1.ListArchivesRequest
	(*RefreshArchivesRequest)(nil),    // 35: fieldlog.v1.RefreshArchivesRequest
	(*ListArchivesResponse)(nil),      // 36: fieldlog.v1.ListArchivesResponse
	(*ExportArchiveRequest)(nil),      // 37: fieldlog.v1.ExportArchiveRequest
	(*ExportArchiveResponse)(nil),     // 38: fieldlog.v1.ExportArchiveResponse
	(*GetDeviceIdentityRequest)(nil),  // 39: fieldlog.v1.GetDeviceIdentityRequest
	(*SetDisplayNameRequest)(nil),     // 40: fieldlog.v1.SetDisplayNameRequest
	(*DeviceIdentity)(nil),            // 41: fieldlog.v1.DeviceIdentity
}
var file_proto_fieldlog_v1_fieldlog_proto_depIdxs = []int32{
	0,  // 0: fieldlog.v1.Report.field_notes:type_name -> fieldlog.v1.Entry
	0,  // 1: fieldlog.v1.Report.guided_notes:type_name -> fieldlog.v1.Entry
	2,  // 2: fieldlog.v1.Project.contractors:type_name -> fieldlog.v1.Contractor
	1,  // 3: fieldlog.v1.GetReportResponse.report:type_name -> fieldlog.v1.Report
	1,  // 4: fieldlog.v1.SaveReportRequest.report:type_name -> fieldlog.v1.Report
	1,  // 5: fieldlog.v1.TransitionStatusResponse.report:type_name -> fieldlog.v1.Report
	0,  // 6: fieldlog.v1.BackupEntryRequest.entry:type_name -> fieldlog.v1.Entry
	1,  // 7: fieldlog.v1.RefineReportResponse.report:type_name -> fieldlog.v1.Report
	1,  // 8: fieldlog.v1.SubmitReportResponse.report:type_name -> fieldlog.v1.Report
	3,  // 9: fieldlog.v1.ListProjectsResponse.projects:type_name -> fieldlog.v1.Project
	1,  // 10: fieldlog.v1.ListArchivesResponse.reports:type_name -> fieldlog.v1.Report
	4,  // 11: fieldlog.v1.ReportsService.GetReport:input_type -> fieldlog.v1.GetReportRequest
	6,  // 12: fieldlog.v1.ReportsService.SaveReport:input_type -> fieldlog.v1.SaveReportRequest
	8,  // 13: fieldlog.v1.ReportsService.SaveFieldEdit:input_type -> fieldlog.v1.SaveFieldEditRequest
	10, // 14: fieldlog.v1.ReportsService.SetSectionToggle:input_type -> fieldlog.v1.SetSectionToggleRequest
	12, // 15: fieldlog.v1.ReportsService.TransitionStatus:input_type -> fieldlog.v1.TransitionStatusRequest
	14, // 16: fieldlog.v1.ReportsService.SwitchCaptureMode:input_type -> fieldlog.v1.SwitchCaptureModeRequest
	16, // 17: fieldlog.v1.ReportsService.CheckEligibility:input_type -> fieldlog.v1.CheckEligibilityRequest
	18, // 18: fieldlog.v1.ReportsService.BackupEntry:input_type -> fieldlog.v1.BackupEntryRequest
	20, // 19: fieldlog.v1.ReportsService.DeleteEntry:input_type -> fieldlog.v1.DeleteEntryRequest
	22, // 20: fieldlog.v1.ReportsService.RefineReport:input_type -> fieldlog.v1.RefineReportRequest
	24, // 21: fieldlog.v1.ReportsService.SubmitReport:input_type -> fieldlog.v1.SubmitReportRequest
	26, // 22: fieldlog.v1.LocksService.CheckLock:input_type -> fieldlog.v1.CheckLockRequest
	27, // 23: fieldlog.v1.LocksService.AcquireLock:input_type -> fieldlog.v1.AcquireLockRequest
	29, // 24: fieldlog.v1.LocksService.ReleaseLock:input_type -> fieldlog.v1.ReleaseLockRequest
	31, // 25: fieldlog.v1.ProjectsService.ListProjects:input_type -> fieldlog.v1.ListProjectsRequest
	32, // 26: fieldlog.v1.ProjectsService.RefreshProjects:input_type -> fieldlog.v1.RefreshProjectsRequest
	34, // 27: fieldlog.v1.ProjectsService.ListArchives:input_type -> fieldlog.v1.ListArchivesRequest
	35, // 28: fieldlog.v1.ProjectsService.RefreshArchives:input_type -> fieldlog.v1.RefreshArchivesRequest
	37, // 29: fieldlog.v1.ExportService.ExportArchive:input_type -> fieldlog.v1.ExportArchiveRequest
	39, // 30: fieldlog.v1.ProfileService.GetDeviceIdentity:input_type -> fieldlog.v1.GetDeviceIdentityRequest
	40, // 31: fieldlog.v1.ProfileService.SetDisplayName:input_type -> fieldlog.v1.SetDisplayNameRequest
	5,  // 32: fieldlog.v1.ReportsService.GetReport:output_type -> fieldlog.v1.GetReportResponse
	7,  // 33: fieldlog.v1.ReportsService.SaveReport:output_type -> fieldlog.v1.SaveReportResponse
	9,  // 34: fieldlog.v1.ReportsService.SaveFieldEdit:output_type -> fieldlog.v1.SaveFieldEditResponse
	11, // 35: fieldlog.v1.ReportsService.SetSectionToggle:output_type -> fieldlog.v1.SetSectionToggleResponse
	13, // 36: fieldlog.v1.ReportsService.TransitionStatus:output_type -> fieldlog.v1.TransitionStatusResponse
	15, // 37: fieldlog.v1.ReportsService.SwitchCaptureMode:output_type -> fieldlog.v1.SwitchCaptureModeResponse
	17, // 38: fieldlog.v1.ReportsService.CheckEligibility:output_type -> fieldlog.v1.CheckEligibilityResponse
	19, // 39: fieldlog.v1.ReportsService.BackupEntry:output_type -> fieldlog.v1.BackupEntryResponse
	21, // 40: fieldlog.v1.ReportsService.DeleteEntry:output_type -> fieldlog.v1.DeleteEntryResponse
	23, // 41: fieldlog.v1.ReportsService.RefineReport:output_type -> fieldlog.v1.RefineReportResponse
	25, // 42: fieldlog.v1.ReportsService.SubmitReport:output_type -> fieldlog.v1.SubmitReportResponse
	28, // 43: fieldlog.v1.LocksService.CheckLock:output_type -> fieldlog.v1.LockStatus
	28, // 44: fieldlog.v1.LocksService.AcquireLock:output_type -> fieldlog.v1.LockStatus
	30, // 45: fieldlog.v1.LocksService.ReleaseLock:output_type -> fieldlog.v1.ReleaseLockResponse
	33, // 46: fieldlog.v1.ProjectsService.ListProjects:output_type -> fieldlog.v1.ListProjectsResponse
	33, // 47: fieldlog.v1.ProjectsService.RefreshProjects:output_type -> fieldlog.v1.ListProjectsResponse
	36, // 48: fieldlog.v1.ProjectsService.ListArchives:output_type -> fieldlog.v1.ListArchivesResponse
	36, // 49: fieldlog.v1.ProjectsService.RefreshArchives:output_type -> fieldlog.v1.ListArchivesResponse
	38, // 50: fieldlog.v1.ExportService.ExportArchive:output_type -> fieldlog.v1.ExportArchiveResponse
	41, // 51: fieldlog.v1.ProfileService.GetDeviceIdentity:output_type -> fieldlog.v1.DeviceIdentity
	41, // 52: fieldlog.v1.ProfileService.SetDisplayName:output_type -> fieldlog.v1.DeviceIdentity
	32, // [32:53] is the sub-list for method output_type
	11, // [11:32] is the sub-list for method input_type
	11, // [11:11] is the sub-list for extension type_name
	11, // [11:11] is the sub-list for extension extendee
	0,  // [0:11] is the sub-list for field type_name
}

func init() { file_proto_fieldlog_v1_fieldlog_proto_init() }
func file_proto_fieldlog_v1_fieldlog_proto_init() {
	if File_proto_fieldlog_v1_fieldlog_proto != nil {
		return
	}
	file_proto_fieldlog_v1_fieldlog_proto_msgTypes[11].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_fieldlog_v1_fieldlog_proto_rawDesc), len(file_proto_fieldlog_v1_fieldlog_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   42,
			NumExtensions: 0,
			NumServices:   5,
		},
		GoTypes:           file_proto_fieldlog_v1_fieldlog_proto_goTypes,
		DependencyIndexes: file_proto_fieldlog_v1_fieldlog_proto_depIdxs,
		MessageInfos:      file_proto_fieldlog_v1_fieldlog_proto_msgTypes,
	}.Build()
	File_proto_fieldlog_v1_fieldlog_proto = out.File
	file_proto_fieldlog_v1_fieldlog_proto_goTypes = nil
	file_proto_fieldlog_v1_fieldlog_proto_depIdxs = nil
}
