// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: invoices/v1/invoices.proto

package invoicesv1

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
	ImportService_ImportFile_FullMethodName      = "/invoices.v1.ImportService/ImportFile"
	ImportService_ImportUpload_FullMethodName    = "/invoices.v1.ImportService/ImportUpload"
	ImportService_ImportDirectory_FullMethodName = "/invoices.v1.ImportService/ImportDirectory"
	ImportService_Reprocess_FullMethodName       = "/invoices.v1.ImportService/Reprocess"
	ImportService_GetImport_FullMethodName       = "/invoices.v1.ImportService/GetImport"
)

// ImportServiceClient is the client API for ImportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ImportServiceClient interface {
	// ImportFile ingests one invoice already on the server's filesystem.
	ImportFile(ctx context.Context, in *ImportFileRequest, opts ...grpc.CallOption) (*ImportFileResponse, error)
	// ImportUpload ingests an uploaded PDF payload.
	ImportUpload(ctx context.Context, in *ImportUploadRequest, opts ...grpc.CallOption) (*ImportFileResponse, error)
	// ImportDirectory walks an invoice tree and queues every file found.
	ImportDirectory(ctx context.Context, in *ImportDirectoryRequest, opts ...grpc.CallOption) (*ImportDirectoryResponse, error)
	// Reprocess re-runs extraction for an existing import record.
	Reprocess(ctx context.Context, in *ReprocessRequest, opts ...grpc.CallOption) (*ImportFileResponse, error)
	// GetImport fetches one import record by id.
	GetImport(ctx context.Context, in *GetImportRequest, opts ...grpc.CallOption) (*GetImportResponse, error)
}

type importServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewImportServiceClient(cc grpc.ClientConnInterface) ImportServiceClient {
	return &importServiceClient{cc}
}

func (c *importServiceClient) ImportFile(ctx context.Context, in *ImportFileRequest, opts ...grpc.CallOption) (*ImportFileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ImportFileResponse)
	err := c.cc.Invoke(ctx, ImportService_ImportFile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) ImportUpload(ctx context.Context, in *ImportUploadRequest, opts ...grpc.CallOption) (*ImportFileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ImportFileResponse)
	err := c.cc.Invoke(ctx, ImportService_ImportUpload_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) ImportDirectory(ctx context.Context, in *ImportDirectoryRequest, opts ...grpc.CallOption) (*ImportDirectoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ImportDirectoryResponse)
	err := c.cc.Invoke(ctx, ImportService_ImportDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) Reprocess(ctx context.Context, in *ReprocessRequest, opts ...grpc.CallOption) (*ImportFileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ImportFileResponse)
	err := c.cc.Invoke(ctx, ImportService_Reprocess_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importServiceClient) GetImport(ctx context.Context, in *GetImportRequest, opts ...grpc.CallOption) (*GetImportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetImportResponse)
	err := c.cc.Invoke(ctx, ImportService_GetImport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ImportServiceServer is the server API for ImportService service.
// All implementations must embed UnimplementedImportServiceServer
// for forward compatibility.
type ImportServiceServer interface {
	// ImportFile ingests one invoice already on the server's filesystem.
	ImportFile(context.Context, *ImportFileRequest) (*ImportFileResponse, error)
	// ImportUpload ingests an uploaded PDF payload.
	ImportUpload(context.Context, *ImportUploadRequest) (*ImportFileResponse, error)
	// ImportDirectory walks an invoice tree and queues every file found.
	ImportDirectory(context.Context, *ImportDirectoryRequest) (*ImportDirectoryResponse, error)
	// Reprocess re-runs extraction for an existing import record.
	Reprocess(context.Context, *ReprocessRequest) (*ImportFileResponse, error)
	// GetImport fetches one import record by id.
	GetImport(context.Context, *GetImportRequest) (*GetImportResponse, error)
	mustEmbedUnimplementedImportServiceServer()
}

// UnimplementedImportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedImportServiceServer struct{}

func (UnimplementedImportServiceServer) ImportFile(context.Context, *ImportFileRequest) (*ImportFileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ImportFile not implemented")
}
func (UnimplementedImportServiceServer) ImportUpload(context.Context, *ImportUploadRequest) (*ImportFileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ImportUpload not implemented")
}
func (UnimplementedImportServiceServer) ImportDirectory(context.Context, *ImportDirectoryRequest) (*ImportDirectoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ImportDirectory not implemented")
}
func (UnimplementedImportServiceServer) Reprocess(context.Context, *ReprocessRequest) (*ImportFileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Reprocess not implemented")
}
func (UnimplementedImportServiceServer) GetImport(context.Context, *GetImportRequest) (*GetImportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetImport not implemented")
}
func (UnimplementedImportServiceServer) mustEmbedUnimplementedImportServiceServer() {}
func (UnimplementedImportServiceServer) testEmbeddedByValue()                       {}

// UnsafeImportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ImportServiceServer will
// result in compilation errors.
type UnsafeImportServiceServer interface {
	mustEmbedUnimplementedImportServiceServer()
}

func RegisterImportServiceServer(s grpc.ServiceRegistrar, srv ImportServiceServer) {
	// If the following call pancis, it indicates UnimplementedImportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ImportService_ServiceDesc, srv)
}

func _ImportService_ImportFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImportFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).ImportFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_ImportFile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).ImportFile(ctx, req.(*ImportFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_ImportUpload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImportUploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).ImportUpload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_ImportUpload_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).ImportUpload(ctx, req.(*ImportUploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_ImportDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImportDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).ImportDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_ImportDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).ImportDirectory(ctx, req.(*ImportDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_Reprocess_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReprocessRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).Reprocess(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_Reprocess_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).Reprocess(ctx, req.(*ReprocessRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImportService_GetImport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetImportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).GetImport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportService_GetImport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).GetImport(ctx, req.(*GetImportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ImportService_ServiceDesc is the grpc.ServiceDesc for ImportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ImportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "invoices.v1.ImportService",
	HandlerType: (*ImportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ImportFile",
			Handler:    _ImportService_ImportFile_Handler,
		},
		{
			MethodName: "ImportUpload",
			Handler:    _ImportService_ImportUpload_Handler,
		},
		{
			MethodName: "ImportDirectory",
			Handler:    _ImportService_ImportDirectory_Handler,
		},
		{
			MethodName: "Reprocess",
			Handler:    _ImportService_Reprocess_Handler,
		},
		{
			MethodName: "GetImport",
			Handler:    _ImportService_GetImport_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "invoices/v1/invoices.proto",
}

const (
	ReviewService_ListPending_FullMethodName    = "/invoices.v1.ReviewService/ListPending"
	ReviewService_ConfirmInvoice_FullMethodName = "/invoices.v1.ReviewService/ConfirmInvoice"
)

// ReviewServiceClient is the client API for ReviewService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ReviewServiceClient interface {
	// ListPending returns the review inbox. Stale in-flight imports are
	// reclaimed before the listing is built.
	ListPending(ctx context.Context, in *ListPendingRequest, opts ...grpc.CallOption) (*ListPendingResponse, error)
	// ConfirmInvoice applies reviewer corrections and finalizes the import.
	ConfirmInvoice(ctx context.Context, in *ConfirmInvoiceRequest, opts ...grpc.CallOption) (*ConfirmInvoiceResponse, error)
}

type reviewServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReviewServiceClient(cc grpc.ClientConnInterface) ReviewServiceClient {
	return &reviewServiceClient{cc}
}

func (c *reviewServiceClient) ListPending(ctx context.Context, in *ListPendingRequest, opts ...grpc.CallOption) (*ListPendingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPendingResponse)
	err := c.cc.Invoke(ctx, ReviewService_ListPending_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) ConfirmInvoice(ctx context.Context, in *ConfirmInvoiceRequest, opts ...grpc.CallOption) (*ConfirmInvoiceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConfirmInvoiceResponse)
	err := c.cc.Invoke(ctx, ReviewService_ConfirmInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReviewServiceServer is the server API for ReviewService service.
// All implementations must embed UnimplementedReviewServiceServer
// for forward compatibility.
type ReviewServiceServer interface {
	// ListPending returns the review inbox. Stale in-flight imports are
	// reclaimed before the listing is built.
	ListPending(context.Context, *ListPendingRequest) (*ListPendingResponse, error)
	// ConfirmInvoice applies reviewer corrections and finalizes the import.
	ConfirmInvoice(context.Context, *ConfirmInvoiceRequest) (*ConfirmInvoiceResponse, error)
	mustEmbedUnimplementedReviewServiceServer()
}

// UnimplementedReviewServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReviewServiceServer struct{}

func (UnimplementedReviewServiceServer) ListPending(context.Context, *ListPendingRequest) (*ListPendingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPending not implemented")
}
func (UnimplementedReviewServiceServer) ConfirmInvoice(context.Context, *ConfirmInvoiceRequest) (*ConfirmInvoiceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConfirmInvoice not implemented")
}
func (UnimplementedReviewServiceServer) mustEmbedUnimplementedReviewServiceServer() {}
func (UnimplementedReviewServiceServer) testEmbeddedByValue()                       {}

// UnsafeReviewServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReviewServiceServer will
// result in compilation errors.
type UnsafeReviewServiceServer interface {
	mustEmbedUnimplementedReviewServiceServer()
}

func RegisterReviewServiceServer(s grpc.ServiceRegistrar, srv ReviewServiceServer) {
	// If the following call pancis, it indicates UnimplementedReviewServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReviewService_ServiceDesc, srv)
}

func _ReviewService_ListPending_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPendingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).ListPending(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_ListPending_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).ListPending(ctx, req.(*ListPendingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_ConfirmInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfirmInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).ConfirmInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_ConfirmInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).ConfirmInvoice(ctx, req.(*ConfirmInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReviewService_ServiceDesc is the grpc.ServiceDesc for ReviewService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReviewService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "invoices.v1.ReviewService",
	HandlerType: (*ReviewServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListPending",
			Handler:    _ReviewService_ListPending_Handler,
		},
		{
			MethodName: "ConfirmInvoice",
			Handler:    _ReviewService_ConfirmInvoice_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "invoices/v1/invoices.proto",
}

const (
	ReportService_GetReport_FullMethodName        = "/invoices.v1.ReportService/GetReport"
	ReportService_ListReports_FullMethodName      = "/invoices.v1.ReportService/ListReports"
	ReportService_TransitionReport_FullMethodName = "/invoices.v1.ReportService/TransitionReport"
	ReportService_ExportReports_FullMethodName    = "/invoices.v1.ReportService/ExportReports"
)

// ReportServiceClient is the client API for ReportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ReportServiceClient interface {
	GetReport(ctx context.Context, in *GetReportRequest, opts ...grpc.CallOption) (*GetReportResponse, error)
	// ListReports returns reports in a reference-date window, optionally
	// filtered by status.
	ListReports(ctx context.Context, in *ListReportsRequest, opts ...grpc.CallOption) (*ListReportsResponse, error)
	// TransitionReport moves a report through its lifecycle. Cancelling
	// requires a comment.
	TransitionReport(ctx context.Context, in *TransitionReportRequest, opts ...grpc.CallOption) (*TransitionReportResponse, error)
	// ExportReports builds an XLSX workbook for a reference-date window.
	ExportReports(ctx context.Context, in *ExportReportsRequest, opts ...grpc.CallOption) (*ExportReportsResponse, error)
}

type reportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReportServiceClient(cc grpc.ClientConnInterface) ReportServiceClient {
	return &reportServiceClient{cc}
}

func (c *reportServiceClient) GetReport(ctx context.Context, in *GetReportRequest, opts ...grpc.CallOption) (*GetReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetReportResponse)
	err := c.cc.Invoke(ctx, ReportService_GetReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportServiceClient) ListReports(ctx context.Context, in *ListReportsRequest, opts ...grpc.CallOption) (*ListReportsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListReportsResponse)
	err := c.cc.Invoke(ctx, ReportService_ListReports_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportServiceClient) TransitionReport(ctx context.Context, in *TransitionReportRequest, opts ...grpc.CallOption) (*TransitionReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TransitionReportResponse)
	err := c.cc.Invoke(ctx, ReportService_TransitionReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportServiceClient) ExportReports(ctx context.Context, in *ExportReportsRequest, opts ...grpc.CallOption) (*ExportReportsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportReportsResponse)
	err := c.cc.Invoke(ctx, ReportService_ExportReports_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReportServiceServer is the server API for ReportService service.
// All implementations must embed UnimplementedReportServiceServer
// for forward compatibility.
type ReportServiceServer interface {
	GetReport(context.Context, *GetReportRequest) (*GetReportResponse, error)
	// ListReports returns reports in a reference-date window, optionally
	// filtered by status.
	ListReports(context.Context, *ListReportsRequest) (*ListReportsResponse, error)
	// TransitionReport moves a report through its lifecycle. Cancelling
	// requires a comment.
	TransitionReport(context.Context, *TransitionReportRequest) (*TransitionReportResponse, error)
	// ExportReports builds an XLSX workbook for a reference-date window.
	ExportReports(context.Context, *ExportReportsRequest) (*ExportReportsResponse, error)
	mustEmbedUnimplementedReportServiceServer()
}

// UnimplementedReportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReportServiceServer struct{}

func (UnimplementedReportServiceServer) GetReport(context.Context, *GetReportRequest) (*GetReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetReport not implemented")
}
func (UnimplementedReportServiceServer) ListReports(context.Context, *ListReportsRequest) (*ListReportsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListReports not implemented")
}
func (UnimplementedReportServiceServer) TransitionReport(context.Context, *TransitionReportRequest) (*TransitionReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TransitionReport not implemented")
}
func (UnimplementedReportServiceServer) ExportReports(context.Context, *ExportReportsRequest) (*ExportReportsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportReports not implemented")
}
func (UnimplementedReportServiceServer) mustEmbedUnimplementedReportServiceServer() {}
func (UnimplementedReportServiceServer) testEmbeddedByValue()                       {}

// UnsafeReportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReportServiceServer will
// result in compilation errors.
type UnsafeReportServiceServer interface {
	mustEmbedUnimplementedReportServiceServer()
}

func RegisterReportServiceServer(s grpc.ServiceRegistrar, srv ReportServiceServer) {
	// If the following call pancis, it indicates UnimplementedReportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReportService_ServiceDesc, srv)
}

func _ReportService_GetReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).GetReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportService_GetReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).GetReport(ctx, req.(*GetReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportService_ListReports_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListReportsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).ListReports(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportService_ListReports_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).ListReports(ctx, req.(*ListReportsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportService_TransitionReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TransitionReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).TransitionReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportService_TransitionReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).TransitionReport(ctx, req.(*TransitionReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportService_ExportReports_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportReportsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).ExportReports(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportService_ExportReports_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportServiceServer).ExportReports(ctx, req.(*ExportReportsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReportService_ServiceDesc is the grpc.ServiceDesc for ReportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "invoices.v1.ReportService",
	HandlerType: (*ReportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetReport",
			Handler:    _ReportService_GetReport_Handler,
		},
		{
			MethodName: "ListReports",
			Handler:    _ReportService_ListReports_Handler,
		},
		{
			MethodName: "TransitionReport",
			Handler:    _ReportService_TransitionReport_Handler,
		},
		{
			MethodName: "ExportReports",
			Handler:    _ReportService_ExportReports_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "invoices/v1/invoices.proto",
}
