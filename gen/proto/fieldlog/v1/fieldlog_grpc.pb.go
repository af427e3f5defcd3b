// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: proto/fieldlog/v1/fieldlog.proto

package fieldlogv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ReportsService_GetReport_FullMethodName         = "/fieldlog.v1.ReportsService/GetReport"
	ReportsService_SaveReport_FullMethodName        = "/fieldlog.v1.ReportsService/SaveReport"
	ReportsService_SaveFieldEdit_FullMethodName     = "/fieldlog.v1.ReportsService/SaveFieldEdit"
	ReportsService_SetSectionToggle_FullMethodName  = "/fieldlog.v1.ReportsService/SetSectionToggle"
	ReportsService_TransitionStatus_FullMethodName  = "/fieldlog.v1.ReportsService/TransitionStatus"
	ReportsService_SwitchCaptureMode_FullMethodName = "/fieldlog.v1.ReportsService/SwitchCaptureMode"
	ReportsService_CheckEligibility_FullMethodName  = "/fieldlog.v1.ReportsService/CheckEligibility"
	ReportsService_BackupEntry_FullMethodName       = "/fieldlog.v1.ReportsService/BackupEntry"
	ReportsService_DeleteEntry_FullMethodName       = "/fieldlog.v1.ReportsService/DeleteEntry"
	ReportsService_RefineReport_FullMethodName      = "/fieldlog.v1.ReportsService/RefineReport"
	ReportsService_SubmitReport_FullMethodName      = "/fieldlog.v1.ReportsService/SubmitReport"
)

// ReportsServiceClient is the client API for ReportsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ReportsService exposes the report lifecycle: reads are local-first, writes
// land locally and reach the remote store through the pending queue.
type ReportsServiceClient interface {
	GetReport(ctx context.Context, in *GetReportRequest, opts ...grpc.CallOption) (*GetReportResponse, error)
	SaveReport(ctx context.Context, in *SaveReportRequest, opts ...grpc.CallOption) (*SaveReportResponse, error)
	SaveFieldEdit(ctx context.Context, in *SaveFieldEditRequest, opts ...grpc.CallOption) (*SaveFieldEditResponse, error)
	SetSectionToggle(ctx context.Context, in *SetSectionToggleRequest, opts ...grpc.CallOption) (*SetSectionToggleResponse, error)
	TransitionStatus(ctx context.Context, in *TransitionStatusRequest, opts ...grpc.CallOption) (*TransitionStatusResponse, error)
	SwitchCaptureMode(ctx context.Context, in *SwitchCaptureModeRequest, opts ...grpc.CallOption) (*SwitchCaptureModeResponse, error)
	CheckEligibility(ctx context.Context, in *CheckEligibilityRequest, opts ...grpc.CallOption) (*CheckEligibilityResponse, error)
	BackupEntry(ctx context.Context, in *BackupEntryRequest, opts ...grpc.CallOption) (*BackupEntryResponse, error)
	DeleteEntry(ctx context.Context, in *DeleteEntryRequest, opts ...grpc.CallOption) (*DeleteEntryResponse, error)
	RefineReport(ctx context.Context, in *RefineReportRequest, opts ...grpc.CallOption) (*RefineReportResponse, error)
	SubmitReport(ctx context.Context, in *SubmitReportRequest, opts ...grpc.CallOption) (*SubmitReportResponse, error)
}

type reportsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReportsServiceClient(cc grpc.ClientConnInterface) ReportsServiceClient {
	return &reportsServiceClient{cc}
}

func (c *reportsServiceClient) GetReport(ctx context.Context, in *GetReportRequest, opts ...grpc.CallOption) (*GetReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetReportResponse)
	err := c.cc.Invoke(ctx, ReportsService_GetReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportsServiceClient) SaveReport(ctx context.Context, in *SaveReportRequest, opts ...grpc.CallOption) (*SaveReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SaveReportResponse)
	err := c.cc.Invoke(ctx, ReportsService_SaveReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportsServiceClient) SaveFieldEdit(ctx context.Context, in *SaveFieldEditRequest, opts ...grpc.CallOption) (*SaveFieldEditResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SaveFieldEditResponse)
	err := c.cc.Invoke(ctx, ReportsService_SaveFieldEdit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportsServiceClient) SetSectionToggle(ctx context.Context, in *SetSectionToggleRequest, opts ...grpc.CallOption) (*SetSectionToggleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetSectionToggleResponse)
	err := c.cc.Invoke(ctx, ReportsService_SetSectionToggle_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportsServiceClient) TransitionStatus(ctx context.Context, in *TransitionStatusRequest, opts ...grpc.CallOption) (*TransitionStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TransitionStatusResponse)
	err := c.cc.Invoke(ctx, ReportsService_TransitionStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportsServiceClient) SwitchCaptureMode(ctx context.Context, in *SwitchCaptureModeRequest, opts ...grpc.CallOption) (*SwitchCaptureModeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SwitchCaptureModeResponse)
	err := c.cc.Invoke(ctx, ReportsService_SwitchCaptureMode_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportsServiceClient) CheckEligibility(ctx context.Context, in *CheckEligibilityRequest, opts ...grpc.CallOption) (*CheckEligibilityResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CheckEligibilityResponse)
	err := c.cc.Invoke(ctx, ReportsService_CheckEligibility_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportsServiceClient) BackupEntry(ctx context.Context, in *BackupEntryRequest, opts ...grpc.CallOption) (*BackupEntryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BackupEntryResponse)
	err := c.cc.Invoke(ctx, ReportsService_BackupEntry_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportsServiceClient) DeleteEntry(ctx context.Context, in *DeleteEntryRequest, opts ...grpc.CallOption) (*DeleteEntryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteEntryResponse)
	err := c.cc.Invoke(ctx, ReportsService_DeleteEntry_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportsServiceClient) RefineReport(ctx context.Context, in *RefineReportRequest, opts ...grpc.CallOption) (*RefineReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RefineReportResponse)
	err := c.cc.Invoke(ctx, ReportsService_RefineReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportsServiceClient) SubmitReport(ctx context.Context, in *SubmitReportRequest, opts ...grpc.CallOption) (*SubmitReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitReportResponse)
	err := c.cc.Invoke(ctx, ReportsService_SubmitReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReportsServiceServer is the server API for ReportsService service.
// All implementations must embed UnimplementedReportsServiceServer
// for forward compatibility.
//
// ReportsService exposes the report lifecycle: reads are local-first, writes
// land locally and reach the remote store through the pending queue.
type ReportsServiceServer interface {
	GetReport(context.Context, *GetReportRequest) (*GetReportResponse, error)
	SaveReport(context.Context, *SaveReportRequest) (*SaveReportResponse, error)
	SaveFieldEdit(context.Context, *SaveFieldEditRequest) (*SaveFieldEditResponse, error)
	SetSectionToggle(context.Context, *SetSectionToggleRequest) (*SetSectionToggleResponse, error)
	TransitionStatus(context.Context, *TransitionStatusRequest) (*TransitionStatusResponse, error)
	SwitchCaptureMode(context.Context, *SwitchCaptureModeRequest) (*SwitchCaptureModeResponse, error)
	CheckEligibility(context.Context, *CheckEligibilityRequest) (*CheckEligibilityResponse, error)
	BackupEntry(context.Context, *BackupEntryRequest) (*BackupEntryResponse, error)
	DeleteEntry(context.Context, *DeleteEntryRequest) (*DeleteEntryResponse, error)
	RefineReport(context.Context, *RefineReportRequest) (*RefineReportResponse, error)
	SubmitReport(context.Context, *SubmitReportRequest) (*SubmitReportResponse, error)
	mustEmbedUnimplementedReportsServiceServer()
}

// UnimplementedReportsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReportsServiceServer struct{}

func (UnimplementedReportsServiceServer) GetReport(context.Context, *GetReportRequest) (*GetReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetReport not implemented")
}
func (UnimplementedReportsServiceServer) SaveReport(context.Context, *SaveReportRequest) (*SaveReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveReport not implemented")
}
func (UnimplementedReportsServiceServer) SaveFieldEdit(context.Context, *SaveFieldEditRequest) (*SaveFieldEditResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveFieldEdit not implemented")
}
func (UnimplementedReportsServiceServer) SetSectionToggle(context.Context, *SetSectionToggleRequest) (*SetSectionToggleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetSectionToggle not implemented")
}
func (UnimplementedReportsServiceServer) TransitionStatus(context.Context, *TransitionStatusRequest) (*TransitionStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TransitionStatus not implemented")
}
func (UnimplementedReportsServiceServer) SwitchCaptureMode(context.Context, *SwitchCaptureModeRequest) (*SwitchCaptureModeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SwitchCaptureMode not implemented")
}
func (UnimplementedReportsServiceServer) CheckEligibility(context.Context, *CheckEligibilityRequest) (*CheckEligibilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckEligibility not implemented")
}
func (UnimplementedReportsServiceServer) BackupEntry(context.Context, *BackupEntryRequest) (*BackupEntryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BackupEntry not implemented")
}
func (UnimplementedReportsServiceServer) DeleteEntry(context.Context, *DeleteEntryRequest) (*DeleteEntryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteEntry not implemented")
}
func (UnimplementedReportsServiceServer) RefineReport(context.Context, *RefineReportRequest) (*RefineReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RefineReport not implemented")
}
func (UnimplementedReportsServiceServer) SubmitReport(context.Context, *SubmitReportRequest) (*SubmitReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitReport not implemented")
}
func (UnimplementedReportsServiceServer) mustEmbedUnimplementedReportsServiceServer() {}
func (UnimplementedReportsServiceServer) testEmbeddedByValue()                        {}

// UnsafeReportsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReportsServiceServer will
// result in compilation errors.
type UnsafeReportsServiceServer interface {
	mustEmbedUnimplementedReportsServiceServer()
}

func RegisterReportsServiceServer(s grpc.ServiceRegistrar, srv ReportsServiceServer) {
	// If the following call pancis, it indicates UnimplementedReportsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReportsService_ServiceDesc, srv)
}

func _ReportsService_GetReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportsServiceServer).GetReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportsService_GetReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportsServiceServer).GetReport(ctx, req.(*GetReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportsService_SaveReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SaveReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportsServiceServer).SaveReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportsService_SaveReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportsServiceServer).SaveReport(ctx, req.(*SaveReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportsService_SaveFieldEdit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SaveFieldEditRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportsServiceServer).SaveFieldEdit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportsService_SaveFieldEdit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportsServiceServer).SaveFieldEdit(ctx, req.(*SaveFieldEditRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportsService_SetSectionToggle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetSectionToggleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportsServiceServer).SetSectionToggle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportsService_SetSectionToggle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportsServiceServer).SetSectionToggle(ctx, req.(*SetSectionToggleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportsService_TransitionStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TransitionStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportsServiceServer).TransitionStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportsService_TransitionStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportsServiceServer).TransitionStatus(ctx, req.(*TransitionStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportsService_SwitchCaptureMode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SwitchCaptureModeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportsServiceServer).SwitchCaptureMode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportsService_SwitchCaptureMode_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportsServiceServer).SwitchCaptureMode(ctx, req.(*SwitchCaptureModeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportsService_CheckEligibility_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckEligibilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportsServiceServer).CheckEligibility(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportsService_CheckEligibility_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportsServiceServer).CheckEligibility(ctx, req.(*CheckEligibilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportsService_BackupEntry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BackupEntryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportsServiceServer).BackupEntry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportsService_BackupEntry_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportsServiceServer).BackupEntry(ctx, req.(*BackupEntryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportsService_DeleteEntry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteEntryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportsServiceServer).DeleteEntry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportsService_DeleteEntry_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportsServiceServer).DeleteEntry(ctx, req.(*DeleteEntryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportsService_RefineReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RefineReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportsServiceServer).RefineReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportsService_RefineReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportsServiceServer).RefineReport(ctx, req.(*RefineReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportsService_SubmitReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportsServiceServer).SubmitReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportsService_SubmitReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportsServiceServer).SubmitReport(ctx, req.(*SubmitReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReportsService_ServiceDesc is the grpc.ServiceDesc for ReportsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReportsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fieldlog.v1.ReportsService",
	HandlerType: (*ReportsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetReport",
			Handler:    _ReportsService_GetReport_Handler,
		},
		{
			MethodName: "SaveReport",
			Handler:    _ReportsService_SaveReport_Handler,
		},
		{
			MethodName: "SaveFieldEdit",
			Handler:    _ReportsService_SaveFieldEdit_Handler,
		},
		{
			MethodName: "SetSectionToggle",
			Handler:    _ReportsService_SetSectionToggle_Handler,
		},
		{
			MethodName: "TransitionStatus",
			Handler:    _ReportsService_TransitionStatus_Handler,
		},
		{
			MethodName: "SwitchCaptureMode",
			Handler:    _ReportsService_SwitchCaptureMode_Handler,
		},
		{
			MethodName: "CheckEligibility",
			Handler:    _ReportsService_CheckEligibility_Handler,
		},
		{
			MethodName: "BackupEntry",
			Handler:    _ReportsService_BackupEntry_Handler,
		},
		{
			MethodName: "DeleteEntry",
			Handler:    _ReportsService_DeleteEntry_Handler,
		},
		{
			MethodName: "RefineReport",
			Handler:    _ReportsService_RefineReport_Handler,
		},
		{
			MethodName: "SubmitReport",
			Handler:    _ReportsService_SubmitReport_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/fieldlog/v1/fieldlog.proto",
}

const (
	LocksService_CheckLock_FullMethodName   = "/fieldlog.v1.LocksService/CheckLock"
	LocksService_AcquireLock_FullMethodName = "/fieldlog.v1.LocksService/AcquireLock"
	LocksService_ReleaseLock_FullMethodName = "/fieldlog.v1.LocksService/ReleaseLock"
)

// LocksServiceClient is the client API for LocksService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// LocksService manages the per-(project, date) cross-device edit lock.
type LocksServiceClient interface {
	CheckLock(ctx context.Context, in *CheckLockRequest, opts ...grpc.CallOption) (*LockStatus, error)
	AcquireLock(ctx context.Context, in *AcquireLockRequest, opts ...grpc.CallOption) (*LockStatus, error)
	ReleaseLock(ctx context.Context, in *ReleaseLockRequest, opts ...grpc.CallOption) (*ReleaseLockResponse, error)
}

type locksServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLocksServiceClient(cc grpc.ClientConnInterface) LocksServiceClient {
	return &locksServiceClient{cc}
}

func (c *locksServiceClient) CheckLock(ctx context.Context, in *CheckLockRequest, opts ...grpc.CallOption) (*LockStatus, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LockStatus)
	err := c.cc.Invoke(ctx, LocksService_CheckLock_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *locksServiceClient) AcquireLock(ctx context.Context, in *AcquireLockRequest, opts ...grpc.CallOption) (*LockStatus, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LockStatus)
	err := c.cc.Invoke(ctx, LocksService_AcquireLock_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *locksServiceClient) ReleaseLock(ctx context.Context, in *ReleaseLockRequest, opts ...grpc.CallOption) (*ReleaseLockResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReleaseLockResponse)
	err := c.cc.Invoke(ctx, LocksService_ReleaseLock_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LocksServiceServer is the server API for LocksService service.
// All implementations must embed UnimplementedLocksServiceServer
// for forward compatibility.
//
// LocksService manages the per-(project, date) cross-device edit lock.
type LocksServiceServer interface {
	CheckLock(context.Context, *CheckLockRequest) (*LockStatus, error)
	AcquireLock(context.Context, *AcquireLockRequest) (*LockStatus, error)
	ReleaseLock(context.Context, *ReleaseLockRequest) (*ReleaseLockResponse, error)
	mustEmbedUnimplementedLocksServiceServer()
}

// UnimplementedLocksServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedLocksServiceServer struct{}

func (UnimplementedLocksServiceServer) CheckLock(context.Context, *CheckLockRequest) (*LockStatus, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckLock not implemented")
}
func (UnimplementedLocksServiceServer) AcquireLock(context.Context, *AcquireLockRequest) (*LockStatus, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AcquireLock not implemented")
}
func (UnimplementedLocksServiceServer) ReleaseLock(context.Context, *ReleaseLockRequest) (*ReleaseLockResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReleaseLock not implemented")
}
func (UnimplementedLocksServiceServer) mustEmbedUnimplementedLocksServiceServer() {}
func (UnimplementedLocksServiceServer) testEmbeddedByValue()                      {}

// UnsafeLocksServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to LocksServiceServer will
// result in compilation errors.
type UnsafeLocksServiceServer interface {
	mustEmbedUnimplementedLocksServiceServer()
}

func RegisterLocksServiceServer(s grpc.ServiceRegistrar, srv LocksServiceServer) {
	// If the following call pancis, it indicates UnimplementedLocksServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&LocksService_ServiceDesc, srv)
}

func _LocksService_CheckLock_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckLockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LocksServiceServer).CheckLock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LocksService_CheckLock_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LocksServiceServer).CheckLock(ctx, req.(*CheckLockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LocksService_AcquireLock_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AcquireLockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LocksServiceServer).AcquireLock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LocksService_AcquireLock_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LocksServiceServer).AcquireLock(ctx, req.(*AcquireLockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LocksService_ReleaseLock_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReleaseLockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LocksServiceServer).ReleaseLock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LocksService_ReleaseLock_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LocksServiceServer).ReleaseLock(ctx, req.(*ReleaseLockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// LocksService_ServiceDesc is the grpc.ServiceDesc for LocksService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var LocksService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fieldlog.v1.LocksService",
	HandlerType: (*LocksServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CheckLock",
			Handler:    _LocksService_CheckLock_Handler,
		},
		{
			MethodName: "AcquireLock",
			Handler:    _LocksService_AcquireLock_Handler,
		},
		{
			MethodName: "ReleaseLock",
			Handler:    _LocksService_ReleaseLock_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/fieldlog/v1/fieldlog.proto",
}

const (
	ProjectsService_ListProjects_FullMethodName    = "/fieldlog.v1.ProjectsService/ListProjects"
	ProjectsService_RefreshProjects_FullMethodName = "/fieldlog.v1.ProjectsService/RefreshProjects"
	ProjectsService_ListArchives_FullMethodName    = "/fieldlog.v1.ProjectsService/ListArchives"
	ProjectsService_RefreshArchives_FullMethodName = "/fieldlog.v1.ProjectsService/RefreshArchives"
)

// ProjectsServiceClient is the client API for ProjectsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ProjectsService serves the cached project list and per-project archives.
type ProjectsServiceClient interface {
	ListProjects(ctx context.Context, in *ListProjectsRequest, opts ...grpc.CallOption) (*ListProjectsResponse, error)
	RefreshProjects(ctx context.Context, in *RefreshProjectsRequest, opts ...grpc.CallOption) (*ListProjectsResponse, error)
	ListArchives(ctx context.Context, in *ListArchivesRequest, opts ...grpc.CallOption) (*ListArchivesResponse, error)
	RefreshArchives(ctx context.Context, in *RefreshArchivesRequest, opts ...grpc.CallOption) (*ListArchivesResponse, error)
}

type projectsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProjectsServiceClient(cc grpc.ClientConnInterface) ProjectsServiceClient {
	return &projectsServiceClient{cc}
}

func (c *projectsServiceClient) ListProjects(ctx context.Context, in *ListProjectsRequest, opts ...grpc.CallOption) (*ListProjectsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListProjectsResponse)
	err := c.cc.Invoke(ctx, ProjectsService_ListProjects_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *projectsServiceClient) RefreshProjects(ctx context.Context, in *RefreshProjectsRequest, opts ...grpc.CallOption) (*ListProjectsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListProjectsResponse)
	err := c.cc.Invoke(ctx, ProjectsService_RefreshProjects_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *projectsServiceClient) ListArchives(ctx context.Context, in *ListArchivesRequest, opts ...grpc.CallOption) (*ListArchivesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListArchivesResponse)
	err := c.cc.Invoke(ctx, ProjectsService_ListArchives_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *projectsServiceClient) RefreshArchives(ctx context.Context, in *RefreshArchivesRequest, opts ...grpc.CallOption) (*ListArchivesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListArchivesResponse)
	err := c.cc.Invoke(ctx, ProjectsService_RefreshArchives_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProjectsServiceServer is the server API for ProjectsService service.
// All implementations must embed UnimplementedProjectsServiceServer
// for forward compatibility.
//
// ProjectsService serves the cached project list and per-project archives.
type ProjectsServiceServer interface {
	ListProjects(context.Context, *ListProjectsRequest) (*ListProjectsResponse, error)
	RefreshProjects(context.Context, *RefreshProjectsRequest) (*ListProjectsResponse, error)
	ListArchives(context.Context, *ListArchivesRequest) (*ListArchivesResponse, error)
	RefreshArchives(context.Context, *RefreshArchivesRequest) (*ListArchivesResponse, error)
	mustEmbedUnimplementedProjectsServiceServer()
}

// UnimplementedProjectsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedProjectsServiceServer struct{}

func (UnimplementedProjectsServiceServer) ListProjects(context.Context, *ListProjectsRequest) (*ListProjectsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListProjects not implemented")
}
func (UnimplementedProjectsServiceServer) RefreshProjects(context.Context, *RefreshProjectsRequest) (*ListProjectsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RefreshProjects not implemented")
}
func (UnimplementedProjectsServiceServer) ListArchives(context.Context, *ListArchivesRequest) (*ListArchivesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListArchives not implemented")
}
func (UnimplementedProjectsServiceServer) RefreshArchives(context.Context, *RefreshArchivesRequest) (*ListArchivesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RefreshArchives not implemented")
}
func (UnimplementedProjectsServiceServer) mustEmbedUnimplementedProjectsServiceServer() {}
func (UnimplementedProjectsServiceServer) testEmbeddedByValue()                         {}

// UnsafeProjectsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ProjectsServiceServer will
// result in compilation errors.
type UnsafeProjectsServiceServer interface {
	mustEmbedUnimplementedProjectsServiceServer()
}

func RegisterProjectsServiceServer(s grpc.ServiceRegistrar, srv ProjectsServiceServer) {
	// If the following call pancis, it indicates UnimplementedProjectsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ProjectsService_ServiceDesc, srv)
}

func _ProjectsService_ListProjects_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListProjectsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProjectsServiceServer).ListProjects(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProjectsService_ListProjects_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProjectsServiceServer).ListProjects(ctx, req.(*ListProjectsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProjectsService_RefreshProjects_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RefreshProjectsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProjectsServiceServer).RefreshProjects(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProjectsService_RefreshProjects_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProjectsServiceServer).RefreshProjects(ctx, req.(*RefreshProjectsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProjectsService_ListArchives_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListArchivesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProjectsServiceServer).ListArchives(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProjectsService_ListArchives_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProjectsServiceServer).ListArchives(ctx, req.(*ListArchivesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProjectsService_RefreshArchives_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RefreshArchivesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProjectsServiceServer).RefreshArchives(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProjectsService_RefreshArchives_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProjectsServiceServer).RefreshArchives(ctx, req.(*RefreshArchivesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProjectsService_ServiceDesc is the grpc.ServiceDesc for ProjectsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ProjectsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fieldlog.v1.ProjectsService",
	HandlerType: (*ProjectsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListProjects",
			Handler:    _ProjectsService_ListProjects_Handler,
		},
		{
			MethodName: "RefreshProjects",
			Handler:    _ProjectsService_RefreshProjects_Handler,
		},
		{
			MethodName: "ListArchives",
			Handler:    _ProjectsService_ListArchives_Handler,
		},
		{
			MethodName: "RefreshArchives",
			Handler:    _ProjectsService_RefreshArchives_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/fieldlog/v1/fieldlog.proto",
}

const (
	ExportService_ExportArchive_FullMethodName = "/fieldlog.v1.ExportService/ExportArchive"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExportServiceClient interface {
	ExportArchive(ctx context.Context, in *ExportArchiveRequest, opts ...grpc.CallOption) (*ExportArchiveResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportArchive(ctx context.Context, in *ExportArchiveRequest, opts ...grpc.CallOption) (*ExportArchiveResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportArchiveResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportArchive_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
type ExportServiceServer interface {
	ExportArchive(context.Context, *ExportArchiveRequest) (*ExportArchiveResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportArchive(context.Context, *ExportArchiveRequest) (*ExportArchiveResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportArchive not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportArchive_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportArchiveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportArchive(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportArchive_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportArchive(ctx, req.(*ExportArchiveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fieldlog.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportArchive",
			Handler:    _ExportService_ExportArchive_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/fieldlog/v1/fieldlog.proto",
}

const (
	ProfileService_GetDeviceIdentity_FullMethodName = "/fieldlog.v1.ProfileService/GetDeviceIdentity"
	ProfileService_SetDisplayName_FullMethodName    = "/fieldlog.v1.ProfileService/SetDisplayName"
)

// ProfileServiceClient is the client API for ProfileService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ProfileService manages the device identity and its display name.
type ProfileServiceClient interface {
	GetDeviceIdentity(ctx context.Context, in *GetDeviceIdentityRequest, opts ...grpc.CallOption) (*DeviceIdentity, error)
	SetDisplayName(ctx context.Context, in *SetDisplayNameRequest, opts ...grpc.CallOption) (*DeviceIdentity, error)
}

type profileServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProfileServiceClient(cc grpc.ClientConnInterface) ProfileServiceClient {
	return &profileServiceClient{cc}
}

func (c *profileServiceClient) GetDeviceIdentity(ctx context.Context, in *GetDeviceIdentityRequest, opts ...grpc.CallOption) (*DeviceIdentity, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeviceIdentity)
	err := c.cc.Invoke(ctx, ProfileService_GetDeviceIdentity_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *profileServiceClient) SetDisplayName(ctx context.Context, in *SetDisplayNameRequest, opts ...grpc.CallOption) (*DeviceIdentity, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeviceIdentity)
	err := c.cc.Invoke(ctx, ProfileService_SetDisplayName_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProfileServiceServer is the server API for ProfileService service.
// All implementations must embed UnimplementedProfileServiceServer
// for forward compatibility.
//
// ProfileService manages the device identity and its display name.
type ProfileServiceServer interface {
	GetDeviceIdentity(context.Context, *GetDeviceIdentityRequest) (*DeviceIdentity, error)
	SetDisplayName(context.Context, *SetDisplayNameRequest) (*DeviceIdentity, error)
	mustEmbedUnimplementedProfileServiceServer()
}

// UnimplementedProfileServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedProfileServiceServer struct{}

func (UnimplementedProfileServiceServer) GetDeviceIdentity(context.Context, *GetDeviceIdentityRequest) (*DeviceIdentity, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDeviceIdentity not implemented")
}
func (UnimplementedProfileServiceServer) SetDisplayName(context.Context, *SetDisplayNameRequest) (*DeviceIdentity, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetDisplayName not implemented")
}
func (UnimplementedProfileServiceServer) mustEmbedUnimplementedProfileServiceServer() {}
func (UnimplementedProfileServiceServer) testEmbeddedByValue()                        {}

// UnsafeProfileServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ProfileServiceServer will
// result in compilation errors.
type UnsafeProfileServiceServer interface {
	mustEmbedUnimplementedProfileServiceServer()
}

func RegisterProfileServiceServer(s grpc.ServiceRegistrar, srv ProfileServiceServer) {
	// If the following call pancis, it indicates UnimplementedProfileServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ProfileService_ServiceDesc, srv)
}

func _ProfileService_GetDeviceIdentity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDeviceIdentityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProfileServiceServer).GetDeviceIdentity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProfileService_GetDeviceIdentity_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProfileServiceServer).GetDeviceIdentity(ctx, req.(*GetDeviceIdentityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProfileService_SetDisplayName_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetDisplayNameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProfileServiceServer).SetDisplayName(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProfileService_SetDisplayName_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProfileServiceServer).SetDisplayName(ctx, req.(*SetDisplayNameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProfileService_ServiceDesc is the grpc.ServiceDesc for ProfileService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ProfileService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fieldlog.v1.ProfileService",
	HandlerType: (*ProfileServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetDeviceIdentity",
			Handler:    _ProfileService_GetDeviceIdentity_Handler,
		},
		{
			MethodName: "SetDisplayName",
			Handler:    _ProfileService_SetDisplayName_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/fieldlog/v1/fieldlog.proto",
}
