// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: invoices/v1/invoices.proto

package invoicesv1

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

type InvoiceImport struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FilePath        string                 `protobuf:"bytes,2,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	FileHash        string                 `protobuf:"bytes,3,opt,name=file_hash,json=fileHash,proto3" json:"file_hash,omitempty"`
	Year            int32                  `protobuf:"varint,4,opt,name=year,proto3" json:"year,omitempty"`
	City            string                 `protobuf:"bytes,5,opt,name=city,proto3" json:"city,omitempty"`
	Carrier         string                 `protobuf:"bytes,6,opt,name=carrier,proto3" json:"carrier,omitempty"`
	Month           string                 `protobuf:"bytes,7,opt,name=month,proto3" json:"month,omitempty"`
	InvoiceNumber   string                 `protobuf:"bytes,8,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	DueDate         string                 `protobuf:"bytes,9,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`           // YYYY-MM-DD
	TotalValue      string                 `protobuf:"bytes,10,opt,name=total_value,json=totalValue,proto3" json:"total_value,omitempty"` // decimal string, e.g. "150.50"
	ReportId        string                 `protobuf:"bytes,11,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	Status          string                 `protobuf:"bytes,12,opt,name=status,proto3" json:"status,omitempty"`
	ErrorCode       string                 `protobuf:"bytes,13,opt,name=error_code,json=errorCode,proto3" json:"error_code,omitempty"`
	ErrorMessage    string                 `protobuf:"bytes,14,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	ConfidenceScore int32                  `protobuf:"varint,15,opt,name=confidence_score,json=confidenceScore,proto3" json:"confidence_score,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,16,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,17,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *InvoiceImport) Reset() {
	*x = InvoiceImport{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvoiceImport) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvoiceImport) ProtoMessage() {}

func (x *InvoiceImport) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvoiceImport.ProtoReflect.Descriptor instead.
func (*InvoiceImport) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{0}
}

func (x *InvoiceImport) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *InvoiceImport) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *InvoiceImport) GetFileHash() string {
	if x != nil {
		return x.FileHash
	}
	return ""
}

func (x *InvoiceImport) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *InvoiceImport) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *InvoiceImport) GetCarrier() string {
	if x != nil {
		return x.Carrier
	}
	return ""
}

func (x *InvoiceImport) GetMonth() string {
	if x != nil {
		return x.Month
	}
	return ""
}

func (x *InvoiceImport) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *InvoiceImport) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *InvoiceImport) GetTotalValue() string {
	if x != nil {
		return x.TotalValue
	}
	return ""
}

func (x *InvoiceImport) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

func (x *InvoiceImport) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *InvoiceImport) GetErrorCode() string {
	if x != nil {
		return x.ErrorCode
	}
	return ""
}

func (x *InvoiceImport) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *InvoiceImport) GetConfidenceScore() int32 {
	if x != nil {
		return x.ConfidenceScore
	}
	return 0
}

func (x *InvoiceImport) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *InvoiceImport) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Report struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	ReferenceDate string                 `protobuf:"bytes,3,opt,name=reference_date,json=referenceDate,proto3" json:"reference_date,omitempty"` // YYYY-MM-DD
	DueDate       string                 `protobuf:"bytes,4,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`                   // YYYY-MM-DD
	CategoryId    string                 `protobuf:"bytes,5,opt,name=category_id,json=categoryId,proto3" json:"category_id,omitempty"`
	CategoryName  string                 `protobuf:"bytes,6,opt,name=category_name,json=categoryName,proto3" json:"category_name,omitempty"`
	TotalValue    string                 `protobuf:"bytes,7,opt,name=total_value,json=totalValue,proto3" json:"total_value,omitempty"`
	Status        string                 `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Report) Reset() {
	*x = Report{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Report) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Report) ProtoMessage() {}

func (x *Report) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[1]
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
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{1}
}

func (x *Report) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Report) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Report) GetReferenceDate() string {
	if x != nil {
		return x.ReferenceDate
	}
	return ""
}

func (x *Report) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *Report) GetCategoryId() string {
	if x != nil {
		return x.CategoryId
	}
	return ""
}

func (x *Report) GetCategoryName() string {
	if x != nil {
		return x.CategoryName
	}
	return ""
}

func (x *Report) GetTotalValue() string {
	if x != nil {
		return x.TotalValue
	}
	return ""
}

func (x *Report) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Report) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Report) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type GetImportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ImportId      string                 `protobuf:"bytes,1,opt,name=import_id,json=importId,proto3" json:"import_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetImportRequest) Reset() {
	*x = GetImportRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetImportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetImportRequest) ProtoMessage() {}

func (x *GetImportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetImportRequest.ProtoReflect.Descriptor instead.
func (*GetImportRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{2}
}

func (x *GetImportRequest) GetImportId() string {
	if x != nil {
		return x.ImportId
	}
	return ""
}

type GetImportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Import        *InvoiceImport         `protobuf:"bytes,1,opt,name=import,proto3" json:"import,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetImportResponse) Reset() {
	*x = GetImportResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetImportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetImportResponse) ProtoMessage() {}

func (x *GetImportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetImportResponse.ProtoReflect.Descriptor instead.
func (*GetImportResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{3}
}

func (x *GetImportResponse) GetImport() *InvoiceImport {
	if x != nil {
		return x.Import
	}
	return nil
}

type ImportFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	Year          int32                  `protobuf:"varint,2,opt,name=year,proto3" json:"year,omitempty"`
	City          string                 `protobuf:"bytes,3,opt,name=city,proto3" json:"city,omitempty"`
	Carrier       string                 `protobuf:"bytes,4,opt,name=carrier,proto3" json:"carrier,omitempty"`
	Month         string                 `protobuf:"bytes,5,opt,name=month,proto3" json:"month,omitempty"`
	Actor         string                 `protobuf:"bytes,6,opt,name=actor,proto3" json:"actor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportFileRequest) Reset() {
	*x = ImportFileRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportFileRequest) ProtoMessage() {}

func (x *ImportFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportFileRequest.ProtoReflect.Descriptor instead.
func (*ImportFileRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{4}
}

func (x *ImportFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *ImportFileRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *ImportFileRequest) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *ImportFileRequest) GetCarrier() string {
	if x != nil {
		return x.Carrier
	}
	return ""
}

func (x *ImportFileRequest) GetMonth() string {
	if x != nil {
		return x.Month
	}
	return ""
}

func (x *ImportFileRequest) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

type ImportUploadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	Year          int32                  `protobuf:"varint,3,opt,name=year,proto3" json:"year,omitempty"`
	City          string                 `protobuf:"bytes,4,opt,name=city,proto3" json:"city,omitempty"`
	Carrier       string                 `protobuf:"bytes,5,opt,name=carrier,proto3" json:"carrier,omitempty"`
	Month         string                 `protobuf:"bytes,6,opt,name=month,proto3" json:"month,omitempty"`
	Actor         string                 `protobuf:"bytes,7,opt,name=actor,proto3" json:"actor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportUploadRequest) Reset() {
	*x = ImportUploadRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportUploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportUploadRequest) ProtoMessage() {}

func (x *ImportUploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportUploadRequest.ProtoReflect.Descriptor instead.
func (*ImportUploadRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{5}
}

func (x *ImportUploadRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ImportUploadRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ImportUploadRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *ImportUploadRequest) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *ImportUploadRequest) GetCarrier() string {
	if x != nil {
		return x.Carrier
	}
	return ""
}

func (x *ImportUploadRequest) GetMonth() string {
	if x != nil {
		return x.Month
	}
	return ""
}

func (x *ImportUploadRequest) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

type ImportFileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Import        *InvoiceImport         `protobuf:"bytes,1,opt,name=import,proto3" json:"import,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Message       string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportFileResponse) Reset() {
	*x = ImportFileResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportFileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportFileResponse) ProtoMessage() {}

func (x *ImportFileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportFileResponse.ProtoReflect.Descriptor instead.
func (*ImportFileResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{6}
}

func (x *ImportFileResponse) GetImport() *InvoiceImport {
	if x != nil {
		return x.Import
	}
	return nil
}

func (x *ImportFileResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ImportFileResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type ImportDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	Actor         string                 `protobuf:"bytes,2,opt,name=actor,proto3" json:"actor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportDirectoryRequest) Reset() {
	*x = ImportDirectoryRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportDirectoryRequest) ProtoMessage() {}

func (x *ImportDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportDirectoryRequest.ProtoReflect.Descriptor instead.
func (*ImportDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{7}
}

func (x *ImportDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *ImportDirectoryRequest) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

type ImportDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Skipped       uint32                 `protobuf:"varint,3,opt,name=skipped,proto3" json:"skipped,omitempty"`
	Failed        uint32                 `protobuf:"varint,4,opt,name=failed,proto3" json:"failed,omitempty"`
	Queued        uint32                 `protobuf:"varint,5,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportDirectoryResponse) Reset() {
	*x = ImportDirectoryResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportDirectoryResponse) ProtoMessage() {}

func (x *ImportDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportDirectoryResponse.ProtoReflect.Descriptor instead.
func (*ImportDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{8}
}

func (x *ImportDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *ImportDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *ImportDirectoryResponse) GetSkipped() uint32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

func (x *ImportDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *ImportDirectoryResponse) GetQueued() uint32 {
	if x != nil {
		return x.Queued
	}
	return 0
}

type ReprocessRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ImportId      string                 `protobuf:"bytes,1,opt,name=import_id,json=importId,proto3" json:"import_id,omitempty"`
	Actor         string                 `protobuf:"bytes,2,opt,name=actor,proto3" json:"actor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessRequest) Reset() {
	*x = ReprocessRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessRequest) ProtoMessage() {}

func (x *ReprocessRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessRequest.ProtoReflect.Descriptor instead.
func (*ReprocessRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{9}
}

func (x *ReprocessRequest) GetImportId() string {
	if x != nil {
		return x.ImportId
	}
	return ""
}

func (x *ReprocessRequest) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

type ListPendingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPendingRequest) Reset() {
	*x = ListPendingRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPendingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPendingRequest) ProtoMessage() {}

func (x *ListPendingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPendingRequest.ProtoReflect.Descriptor instead.
func (*ListPendingRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{10}
}

type ListPendingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Imports       []*InvoiceImport       `protobuf:"bytes,1,rep,name=imports,proto3" json:"imports,omitempty"`
	Reclaimed     uint32                 `protobuf:"varint,2,opt,name=reclaimed,proto3" json:"reclaimed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPendingResponse) Reset() {
	*x = ListPendingResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPendingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPendingResponse) ProtoMessage() {}

func (x *ListPendingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPendingResponse.ProtoReflect.Descriptor instead.
func (*ListPendingResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{11}
}

func (x *ListPendingResponse) GetImports() []*InvoiceImport {
	if x != nil {
		return x.Imports
	}
	return nil
}

func (x *ListPendingResponse) GetReclaimed() uint32 {
	if x != nil {
		return x.Reclaimed
	}
	return 0
}

type ConfirmInvoiceRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	ImportId string                 `protobuf:"bytes,1,opt,name=import_id,json=importId,proto3" json:"import_id,omitempty"`
	Actor    string                 `protobuf:"bytes,2,opt,name=actor,proto3" json:"actor,omitempty"`
	// Empty fields keep the extracted values.
	TotalValue    string `protobuf:"bytes,3,opt,name=total_value,json=totalValue,proto3" json:"total_value,omitempty"` // decimal string
	DueDate       string `protobuf:"bytes,4,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`          // YYYY-MM-DD
	InvoiceNumber string `protobuf:"bytes,5,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	Carrier       string `protobuf:"bytes,6,opt,name=carrier,proto3" json:"carrier,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmInvoiceRequest) Reset() {
	*x = ConfirmInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmInvoiceRequest) ProtoMessage() {}

func (x *ConfirmInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmInvoiceRequest.ProtoReflect.Descriptor instead.
func (*ConfirmInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{12}
}

func (x *ConfirmInvoiceRequest) GetImportId() string {
	if x != nil {
		return x.ImportId
	}
	return ""
}

func (x *ConfirmInvoiceRequest) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

func (x *ConfirmInvoiceRequest) GetTotalValue() string {
	if x != nil {
		return x.TotalValue
	}
	return ""
}

func (x *ConfirmInvoiceRequest) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *ConfirmInvoiceRequest) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *ConfirmInvoiceRequest) GetCarrier() string {
	if x != nil {
		return x.Carrier
	}
	return ""
}

type ConfirmInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Import        *InvoiceImport         `protobuf:"bytes,1,opt,name=import,proto3" json:"import,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmInvoiceResponse) Reset() {
	*x = ConfirmInvoiceResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmInvoiceResponse) ProtoMessage() {}

func (x *ConfirmInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmInvoiceResponse.ProtoReflect.Descriptor instead.
func (*ConfirmInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{13}
}

func (x *ConfirmInvoiceResponse) GetImport() *InvoiceImport {
	if x != nil {
		return x.Import
	}
	return nil
}

type GetReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReportId      string                 `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReportRequest) Reset() {
	*x = GetReportRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReportRequest) ProtoMessage() {}

func (x *GetReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[14]
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
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{14}
}

func (x *GetReportRequest) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

type GetReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Report        *Report                `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReportResponse) Reset() {
	*x = GetReportResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReportResponse) ProtoMessage() {}

func (x *GetReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[15]
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
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{15}
}

func (x *GetReportResponse) GetReport() *Report {
	if x != nil {
		return x.Report
	}
	return nil
}

type TransitionReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReportId      string                 `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	Actor         string                 `protobuf:"bytes,2,opt,name=actor,proto3" json:"actor,omitempty"`
	TargetStatus  string                 `protobuf:"bytes,3,opt,name=target_status,json=targetStatus,proto3" json:"target_status,omitempty"`
	Comment       string                 `protobuf:"bytes,4,opt,name=comment,proto3" json:"comment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TransitionReportRequest) Reset() {
	*x = TransitionReportRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TransitionReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TransitionReportRequest) ProtoMessage() {}

func (x *TransitionReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TransitionReportRequest.ProtoReflect.Descriptor instead.
func (*TransitionReportRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{16}
}

func (x *TransitionReportRequest) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

func (x *TransitionReportRequest) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

func (x *TransitionReportRequest) GetTargetStatus() string {
	if x != nil {
		return x.TargetStatus
	}
	return ""
}

func (x *TransitionReportRequest) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

type TransitionReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Report        *Report                `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TransitionReportResponse) Reset() {
	*x = TransitionReportResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TransitionReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TransitionReportResponse) ProtoMessage() {}

func (x *TransitionReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TransitionReportResponse.ProtoReflect.Descriptor instead.
func (*TransitionReportResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{17}
}

func (x *TransitionReportResponse) GetReport() *Report {
	if x != nil {
		return x.Report
	}
	return nil
}

type ListReportsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	Statuses      []string               `protobuf:"bytes,3,rep,name=statuses,proto3" json:"statuses,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReportsRequest) Reset() {
	*x = ListReportsRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReportsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReportsRequest) ProtoMessage() {}

func (x *ListReportsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReportsRequest.ProtoReflect.Descriptor instead.
func (*ListReportsRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{18}
}

func (x *ListReportsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListReportsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListReportsRequest) GetStatuses() []string {
	if x != nil {
		return x.Statuses
	}
	return nil
}

type ListReportsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reports       []*Report              `protobuf:"bytes,1,rep,name=reports,proto3" json:"reports,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReportsResponse) Reset() {
	*x = ListReportsResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReportsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReportsResponse) ProtoMessage() {}

func (x *ListReportsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReportsResponse.ProtoReflect.Descriptor instead.
func (*ListReportsResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{19}
}

func (x *ListReportsResponse) GetReports() []*Report {
	if x != nil {
		return x.Reports
	}
	return nil
}

type ExportReportsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	Statuses      []string               `protobuf:"bytes,3,rep,name=statuses,proto3" json:"statuses,omitempty"`
	Actor         string                 `protobuf:"bytes,4,opt,name=actor,proto3" json:"actor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportsRequest) Reset() {
	*x = ExportReportsRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportsRequest) ProtoMessage() {}

func (x *ExportReportsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportsRequest.ProtoReflect.Descriptor instead.
func (*ExportReportsRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{20}
}

func (x *ExportReportsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportReportsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ExportReportsRequest) GetStatuses() []string {
	if x != nil {
		return x.Statuses
	}
	return nil
}

func (x *ExportReportsRequest) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

type ExportReportsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportsResponse) Reset() {
	*x = ExportReportsResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportsResponse) ProtoMessage() {}

func (x *ExportReportsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportsResponse.ProtoReflect.Descriptor instead.
func (*ExportReportsResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{21}
}

func (x *ExportReportsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_invoices_v1_invoices_proto protoreflect.FileDescriptor

const file_invoices_v1_invoices_proto_rawDesc = "" +
	"\n" +
	"\x1ainvoices/v1/invoices.proto\x12\vinvoices.v1\"\xf6\x03\n" +
	"\rInvoiceImport\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tfile_path\x18\x02 \x01(\tR\bfilePath\x12\x1b\n" +
	"\tfile_hash\x18\x03 \x01(\tR\bfileHash\x12\x12\n" +
	"\x04year\x18\x04 \x01(\x05R\x04year\x12\x12\n" +
	"\x04city\x18\x05 \x01(\tR\x04city\x12\x18\n" +
	"\acarrier\x18\x06 \x01(\tR\acarrier\x12\x14\n" +
	"\x05month\x18\a \x01(\tR\x05month\x12%\n" +
	"\x0einvoice_number\x18\b \x01(\tR\rinvoiceNumber\x12\x19\n" +
	"\bdue_date\x18\t \x01(\tR\adueDate\x12\x1f\n" +
	"\vtotal_value\x18\n" +
	" \x01(\tR\n" +
	"totalValue\x12\x1b\n" +
	"\treport_id\x18\v \x01(\tR\breportId\x12\x16\n" +
	"\x06status\x18\f \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"error_code\x18\r \x01(\tR\terrorCode\x12#\n" +
	"\rerror_message\x18\x0e \x01(\tR\ferrorMessage\x12)\n" +
	"\x10confidence_score\x18\x0f \x01(\x05R\x0fconfidenceScore\x12\x1d\n" +
	"\n" +
	"created_at\x18\x10 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x11 \x01(\tR\tupdatedAt\"\xad\x02\n" +
	"\x06Report\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12%\n" +
	"\x0ereference_date\x18\x03 \x01(\tR\rreferenceDate\x12\x19\n" +
	"\bdue_date\x18\x04 \x01(\tR\adueDate\x12\x1f\n" +
	"\vcategory_id\x18\x05 \x01(\tR\n" +
	"categoryId\x12#\n" +
	"\rcategory_name\x18\x06 \x01(\tR\fcategoryName\x12\x1f\n" +
	"\vtotal_value\x18\a \x01(\tR\n" +
	"totalValue\x12\x16\n" +
	"\x06status\x18\b \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"/\n" +
	"\x10GetImportRequest\x12\x1b\n" +
	"\timport_id\x18\x01 \x01(\tR\bimportId\"G\n" +
	"\x11GetImportResponse\x122\n" +
	"\x06import\x18\x01 \x01(\v2\x1a.invoices.v1.InvoiceImportR\x06import\"\x95\x01\n" +
	"\x11ImportFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x12\n" +
	"\x04year\x18\x02 \x01(\x05R\x04year\x12\x12\n" +
	"\x04city\x18\x03 \x01(\tR\x04city\x12\x18\n" +
	"\acarrier\x18\x04 \x01(\tR\acarrier\x12\x14\n" +
	"\x05month\x18\x05 \x01(\tR\x05month\x12\x14\n" +
	"\x05actor\x18\x06 \x01(\tR\x05actor\"\xb9\x01\n" +
	"\x13ImportUploadRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\x12\x12\n" +
	"\x04year\x18\x03 \x01(\x05R\x04year\x12\x12\n" +
	"\x04city\x18\x04 \x01(\tR\x04city\x12\x18\n" +
	"\acarrier\x18\x05 \x01(\tR\acarrier\x12\x14\n" +
	"\x05month\x18\x06 \x01(\tR\x05month\x12\x14\n" +
	"\x05actor\x18\a \x01(\tR\x05actor\"z\n" +
	"\x12ImportFileResponse\x122\n" +
	"\x06import\x18\x01 \x01(\v2\x1a.invoices.v1.InvoiceImportR\x06import\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\"K\n" +
	"\x16ImportDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x14\n" +
	"\x05actor\x18\x02 \x01(\tR\x05actor\"\x97\x01\n" +
	"\x17ImportDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x18\n" +
	"\askipped\x18\x03 \x01(\rR\askipped\x12\x16\n" +
	"\x06failed\x18\x04 \x01(\rR\x06failed\x12\x16\n" +
	"\x06queued\x18\x05 \x01(\rR\x06queued\"E\n" +
	"\x10ReprocessRequest\x12\x1b\n" +
	"\timport_id\x18\x01 \x01(\tR\bimportId\x12\x14\n" +
	"\x05actor\x18\x02 \x01(\tR\x05actor\"\x14\n" +
	"\x12ListPendingRequest\"i\n" +
	"\x13ListPendingResponse\x124\n" +
	"\aimports\x18\x01 \x03(\v2\x1a.invoices.v1.InvoiceImportR\aimports\x12\x1c\n" +
	"\treclaimed\x18\x02 \x01(\rR\treclaimed\"\xc7\x01\n" +
	"\x15ConfirmInvoiceRequest\x12\x1b\n" +
	"\timport_id\x18\x01 \x01(\tR\bimportId\x12\x14\n" +
	"\x05actor\x18\x02 \x01(\tR\x05actor\x12\x1f\n" +
	"\vtotal_value\x18\x03 \x01(\tR\n" +
	"totalValue\x12\x19\n" +
	"\bdue_date\x18\x04 \x01(\tR\adueDate\x12%\n" +
	"\x0einvoice_number\x18\x05 \x01(\tR\rinvoiceNumber\x12\x18\n" +
	"\acarrier\x18\x06 \x01(\tR\acarrier\"L\n" +
	"\x16ConfirmInvoiceResponse\x122\n" +
	"\x06import\x18\x01 \x01(\v2\x1a.invoices.v1.InvoiceImportR\x06import\"/\n" +
	"\x10GetReportRequest\x12\x1b\n" +
	"\treport_id\x18\x01 \x01(\tR\breportId\"@\n" +
	"\x11GetReportResponse\x12+\n" +
	"\x06report\x18\x01 \x01(\v2\x13.invoices.v1.ReportR\x06report\"\x8b\x01\n" +
	"\x17TransitionReportRequest\x12\x1b\n" +
	"\treport_id\x18\x01 \x01(\tR\breportId\x12\x14\n" +
	"\x05actor\x18\x02 \x01(\tR\x05actor\x12#\n" +
	"\rtarget_status\x18\x03 \x01(\tR\ftargetStatus\x12\x18\n" +
	"\acomment\x18\x04 \x01(\tR\acomment\"G\n" +
	"\x18TransitionReportResponse\x12+\n" +
	"\x06report\x18\x01 \x01(\v2\x13.invoices.v1.ReportR\x06report\"f\n" +
	"\x12ListReportsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12\x1a\n" +
	"\bstatuses\x18\x03 \x03(\tR\bstatuses\"D\n" +
	"\x13ListReportsResponse\x12-\n" +
	"\areports\x18\x01 \x03(\v2\x13.invoices.v1.ReportR\areports\"~\n" +
	"\x14ExportReportsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12\x1a\n" +
	"\bstatuses\x18\x03 \x03(\tR\bstatuses\x12\x14\n" +
	"\x05actor\x18\x04 \x01(\tR\x05actor\"+\n" +
	"\x15ExportReportsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xa8\x03\n" +
	"\rImportService\x12M\n" +
	"\n" +
	"ImportFile\x12\x1e.invoices.v1.ImportFileRequest\x1a\x1f.invoices.v1.ImportFileResponse\x12Q\n" +
	"\fImportUpload\x12 .invoices.v1.ImportUploadRequest\x1a\x1f.invoices.v1.ImportFileResponse\x12\\\n" +
	"\x0fImportDirectory\x12#.invoices.v1.ImportDirectoryRequest\x1a$.invoices.v1.ImportDirectoryResponse\x12K\n" +
	"\tReprocess\x12\x1d.invoices.v1.ReprocessRequest\x1a\x1f.invoices.v1.ImportFileResponse\x12J\n" +
	"\tGetImport\x12\x1d.invoices.v1.GetImportRequest\x1a\x1e.invoices.v1.GetImportResponse2\xbc\x01\n" +
	"\rReviewService\x12P\n" +
	"\vListPending\x12\x1f.invoices.v1.ListPendingRequest\x1a .invoices.v1.ListPendingResponse\x12Y\n" +
	"\x0eConfirmInvoice\x12\".invoices.v1.ConfirmInvoiceRequest\x1a#.invoices.v1.ConfirmInvoiceResponse2\xe6\x02\n" +
	"\rReportService\x12J\n" +
	"\tGetReport\x12\x1d.invoices.v1.GetReportRequest\x1a\x1e.invoices.v1.GetReportResponse\x12P\n" +
	"\vListReports\x12\x1f.invoices.v1.ListReportsRequest\x1a .invoices.v1.ListReportsResponse\x12_\n" +
	"\x10TransitionReport\x12$.invoices.v1.TransitionReportRequest\x1a%.invoices.v1.TransitionReportResponse\x12V\n" +
	"\rExportReports\x12!.invoices.v1.ExportReportsRequest\x1a\".invoices.v1.ExportReportsResponseBFZDgithub.com/telbill/invoice-pipeline/gen/proto/invoices/v1;invoicesv1b\x06proto3"

var (
	file_invoices_v1_invoices_proto_rawDescOnce sync.Once
	file_invoices_v1_invoices_proto_rawDescData []byte
)

func file_invoices_v1_invoices_proto_rawDescGZIP() []byte {
	file_invoices_v1_invoices_proto_rawDescOnce.Do(func() {
		file_invoices_v1_invoices_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_invoices_v1_invoices_proto_rawDesc), len(file_invoices_v1_invoices_proto_rawDesc)))
	})
	return file_invoices_v1_invoices_proto_rawDescData
}

var file_invoices_v1_invoices_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_invoices_v1_invoices_proto_goTypes = []any{
	(*InvoiceImport)(nil),            // 0: invoices.v1.InvoiceImport
	(*Report)(nil),                   // 1: invoices.v1.Report
	(*GetImportRequest)(nil),         // 2: invoices.v1.GetImportRequest
	(*GetImportResponse)(nil),        // 3: invoices.v1.GetImportResponse
	(*ImportFileRequest)(nil),        // 4: invoices.v1.ImportFileRequest
	(*ImportUploadRequest)(nil),      // 5: invoices.v1.ImportUploadRequest
	(*ImportFileResponse)(nil),       // 6: invoices.v1.ImportFileResponse
	(*ImportDirectoryRequest)(nil),   // 7: invoices.v1.ImportDirectoryRequest
	(*ImportDirectoryResponse)(nil),  // 8: invoices.v1.ImportDirectoryResponse
	(*ReprocessRequest)(nil),         // 9: invoices.v1.ReprocessRequest
	(*ListPendingRequest)(nil),       // 10: invoices.v1.ListPendingRequest
	(*ListPendingResponse)(nil),      // 11: invoices.v1.ListPendingResponse
	(*ConfirmInvoiceRequest)(nil),    // 12: invoices.v1.ConfirmInvoiceRequest
	(*ConfirmInvoiceResponse)(nil),   // 13: invoices.v1.ConfirmInvoiceResponse
	(*GetReportRequest)(nil),         // 14: invoices.v1.GetReportRequest
	(*GetReportResponse)(nil),        // 15: invoices.v1.GetReportResponse
	(*TransitionReportRequest)(nil),  // 16: invoices.v1.TransitionReportRequest
	(*TransitionReportResponse)(nil), // 17: invoices.v1.TransitionReportResponse
	(*ListReportsRequest)(nil),       // 18: invoices.v1.ListReportsRequest
	(*ListReportsResponse)(nil),      // 19: invoices.v1.ListReportsResponse
	(*ExportReportsRequest)(nil),     // 20: invoices.v1.ExportReportsRequest
	(*ExportReportsResponse)(nil),    // 21: invoices.v1.ExportReportsResponse
}
var file_invoices_v1_invoices_proto_depIdxs = []int32{
	0,  // 0: invoices.v1.GetImportResponse.import:type_name -> invoices.v1.InvoiceImport
	0,  // 1: invoices.v1.ImportFileResponse.import:type_name -> invoices.v1.InvoiceImport
	0,  // 2: invoices.v1.ListPendingResponse.imports:type_name -> invoices.v1.InvoiceImport
	0,  // 3: invoices.v1.ConfirmInvoiceResponse.import:type_name -> invoices.v1.InvoiceImport
	1,  // 4: invoices.v1.GetReportResponse.report:type_name -> invoices.v1.Report
	1,  // 5: invoices.v1.TransitionReportResponse.report:type_name -> invoices.v1.Report
	1,  // 6: invoices.v1.ListReportsResponse.reports:type_name -> invoices.v1.Report
	4,  // 7: invoices.v1.ImportService.ImportFile:input_type -> invoices.v1.ImportFileRequest
	5,  // 8: invoices.v1.ImportService.ImportUpload:input_type -> invoices.v1.ImportUploadRequest
	7,  // 9: invoices.v1.ImportService.ImportDirectory:input_type -> invoices.v1.ImportDirectoryRequest
	9,  // 10: invoices.v1.ImportService.Reprocess:input_type -> invoices.v1.ReprocessRequest
	2,  // 11: invoices.v1.ImportService.GetImport:input_type -> invoices.v1.GetImportRequest
	10, // 12: invoices.v1.ReviewService.ListPending:input_type -> invoices.v1.ListPendingRequest
	12, // 13: invoices.v1.ReviewService.ConfirmInvoice:input_type -> invoices.v1.ConfirmInvoiceRequest
	14, // 14: invoices.v1.ReportService.GetReport:input_type -> invoices.v1.GetReportRequest
	18, // 15: invoices.v1.ReportService.ListReports:input_type -> invoices.v1.ListReportsRequest
	16, // 16: invoices.v1.ReportService.TransitionReport:input_type -> invoices.v1.TransitionReportRequest
	20, // 17: invoices.v1.ReportService.ExportReports:input_type -> invoices.v1.ExportReportsRequest
	6,  // 18: invoices.v1.ImportService.ImportFile:output_type -> invoices.v1.ImportFileResponse
	6,  // 19: invoices.v1.ImportService.ImportUpload:output_type -> invoices.v1.ImportFileResponse
	8,  // 20: invoices.v1.ImportService.ImportDirectory:output_type -> invoices.v1.ImportDirectoryResponse
	6,  // 21: invoices.v1.ImportService.Reprocess:output_type -> invoices.v1.ImportFileResponse
	3,  // 22: invoices.v1.ImportService.GetImport:output_type -> invoices.v1.GetImportResponse
	11, // 23: invoices.v1.ReviewService.ListPending:output_type -> invoices.v1.ListPendingResponse
	13, // 24: invoices.v1.ReviewService.ConfirmInvoice:output_type -> invoices.v1.ConfirmInvoiceResponse
	15, // 25: invoices.v1.ReportService.GetReport:output_type -> invoices.v1.GetReportResponse
	19, // 26: invoices.v1.ReportService.ListReports:output_type -> invoices.v1.ListReportsResponse
	17, // 27: invoices.v1.ReportService.TransitionReport:output_type -> invoices.v1.TransitionReportResponse
	21, // 28: invoices.v1.ReportService.ExportReports:output_type -> invoices.v1.ExportReportsResponse
	18, // [18:29] is the sub-list for method output_type
	7,  // [7:18] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_invoices_v1_invoices_proto_init() }
func file_invoices_v1_invoices_proto_init() {
	if File_invoices_v1_invoices_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_invoices_v1_invoices_proto_rawDesc), len(file_invoices_v1_invoices_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_invoices_v1_invoices_proto_goTypes,
		DependencyIndexes: file_invoices_v1_invoices_proto_depIdxs,
		MessageInfos:      file_invoices_v1_invoices_proto_msgTypes,
	}.Build()
	File_invoices_v1_invoices_proto = out.File
	file_invoices_v1_invoices_proto_goTypes = nil
	file_invoices_v1_invoices_proto_depIdxs = nil
}
