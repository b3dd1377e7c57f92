// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: pix/v1/pix.proto

package pixpb

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

// Transaction is one parsed bank-transfer receipt.
type Transaction struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SourceFilename string                 `protobuf:"bytes,2,opt,name=source_filename,json=sourceFilename,proto3" json:"source_filename,omitempty"`
	Amount         string                 `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"` // decimal string, two places
	PayerName      string                 `protobuf:"bytes,4,opt,name=payer_name,json=payerName,proto3" json:"payer_name,omitempty"`
	PayeeName      string                 `protobuf:"bytes,5,opt,name=payee_name,json=payeeName,proto3" json:"payee_name,omitempty"`
	PixKey         string                 `protobuf:"bytes,6,opt,name=pix_key,json=pixKey,proto3" json:"pix_key,omitempty"`
	KeyType        string                 `protobuf:"bytes,7,opt,name=key_type,json=keyType,proto3" json:"key_type,omitempty"`
	TransferDate   string                 `protobuf:"bytes,8,opt,name=transfer_date,json=transferDate,proto3" json:"transfer_date,omitempty"` // YYYY-MM-DD
	TransferTime   string                 `protobuf:"bytes,9,opt,name=transfer_time,json=transferTime,proto3" json:"transfer_time,omitempty"` // HH:MM or HH:MM:SS
	BankName       string                 `protobuf:"bytes,10,opt,name=bank_name,json=bankName,proto3" json:"bank_name,omitempty"`
	PayerBankName  string                 `protobuf:"bytes,11,opt,name=payer_bank_name,json=payerBankName,proto3" json:"payer_bank_name,omitempty"`
	TransactionId  string                 `protobuf:"bytes,12,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
	Status         string                 `protobuf:"bytes,13,opt,name=status,proto3" json:"status,omitempty"`
	Notes          string                 `protobuf:"bytes,14,opt,name=notes,proto3" json:"notes,omitempty"`
	ProcessedAt    string                 `protobuf:"bytes,15,opt,name=processed_at,json=processedAt,proto3" json:"processed_at,omitempty"` // RFC 3339
	CreatedAt      string                 `protobuf:"bytes,16,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,17,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Transaction) Reset() {
	*x = Transaction{}
	mi := &file_pix_v1_pix_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Transaction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Transaction) ProtoMessage() {}

func (x *Transaction) ProtoReflect() protoreflect.Message {
	mi := &file_pix_v1_pix_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Transaction.ProtoReflect.Descriptor instead.
func (*Transaction) Descriptor() ([]byte, []int) {
	return file_pix_v1_pix_proto_rawDescGZIP(), []int{0}
}

func (x *Transaction) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Transaction) GetSourceFilename() string {
	if x != nil {
		return x.SourceFilename
	}
	return ""
}

func (x *Transaction) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *Transaction) GetPayerName() string {
	if x != nil {
		return x.PayerName
	}
	return ""
}

func (x *Transaction) GetPayeeName() string {
	if x != nil {
		return x.PayeeName
	}
	return ""
}

func (x *Transaction) GetPixKey() string {
	if x != nil {
		return x.PixKey
	}
	return ""
}

func (x *Transaction) GetKeyType() string {
	if x != nil {
		return x.KeyType
	}
	return ""
}

func (x *Transaction) GetTransferDate() string {
	if x != nil {
		return x.TransferDate
	}
	return ""
}

func (x *Transaction) GetTransferTime() string {
	if x != nil {
		return x.TransferTime
	}
	return ""
}

func (x *Transaction) GetBankName() string {
	if x != nil {
		return x.BankName
	}
	return ""
}

func (x *Transaction) GetPayerBankName() string {
	if x != nil {
		return x.PayerBankName
	}
	return ""
}

func (x *Transaction) GetTransactionId() string {
	if x != nil {
		return x.TransactionId
	}
	return ""
}

func (x *Transaction) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Transaction) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *Transaction) GetProcessedAt() string {
	if x != nil {
		return x.ProcessedAt
	}
	return ""
}

func (x *Transaction) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Transaction) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ProcessDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	OriginalName  string                 `protobuf:"bytes,2,opt,name=original_name,json=originalName,proto3" json:"original_name,omitempty"` // optional upload name
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentRequest) Reset() {
	*x = ProcessDocumentRequest{}
	mi := &file_pix_v1_pix_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentRequest) ProtoMessage() {}

func (x *ProcessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pix_v1_pix_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_pix_v1_pix_proto_rawDescGZIP(), []int{1}
}

func (x *ProcessDocumentRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *ProcessDocumentRequest) GetOriginalName() string {
	if x != nil {
		return x.OriginalName
	}
	return ""
}

type ProcessDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Result        string                 `protobuf:"bytes,2,opt,name=result,proto3" json:"result,omitempty"` // success | skipped | error
	Message       string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Transaction   *Transaction           `protobuf:"bytes,4,opt,name=transaction,proto3" json:"transaction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentResponse) Reset() {
	*x = ProcessDocumentResponse{}
	mi := &file_pix_v1_pix_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentResponse) ProtoMessage() {}

func (x *ProcessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pix_v1_pix_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_pix_v1_pix_proto_rawDescGZIP(), []int{2}
}

func (x *ProcessDocumentResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ProcessDocumentResponse) GetResult() string {
	if x != nil {
		return x.Result
	}
	return ""
}

func (x *ProcessDocumentResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ProcessDocumentResponse) GetTransaction() *Transaction {
	if x != nil {
		return x.Transaction
	}
	return nil
}

type ProcessDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	Workers       int32                  `protobuf:"varint,2,opt,name=workers,proto3" json:"workers,omitempty"` // 0 means server default
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDirectoryRequest) Reset() {
	*x = ProcessDirectoryRequest{}
	mi := &file_pix_v1_pix_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDirectoryRequest) ProtoMessage() {}

func (x *ProcessDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pix_v1_pix_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDirectoryRequest.ProtoReflect.Descriptor instead.
func (*ProcessDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_pix_v1_pix_proto_rawDescGZIP(), []int{3}
}

func (x *ProcessDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *ProcessDirectoryRequest) GetWorkers() int32 {
	if x != nil {
		return x.Workers
	}
	return 0
}

type ProcessDirectoryResponse struct {
	state         protoimpl.MessageState     `protogen:"open.v1"`
	Scanned       uint32                     `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                     `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                     `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Skipped       uint32                     `protobuf:"varint,4,opt,name=skipped,proto3" json:"skipped,omitempty"`
	Failed        uint32                     `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*ProcessDocumentResponse `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDirectoryResponse) Reset() {
	*x = ProcessDirectoryResponse{}
	mi := &file_pix_v1_pix_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDirectoryResponse) ProtoMessage() {}

func (x *ProcessDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pix_v1_pix_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDirectoryResponse.ProtoReflect.Descriptor instead.
func (*ProcessDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_pix_v1_pix_proto_rawDescGZIP(), []int{4}
}

func (x *ProcessDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *ProcessDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *ProcessDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *ProcessDirectoryResponse) GetSkipped() uint32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

func (x *ProcessDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *ProcessDirectoryResponse) GetResults() []*ProcessDocumentResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type ListTransactionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTransactionsRequest) Reset() {
	*x = ListTransactionsRequest{}
	mi := &file_pix_v1_pix_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTransactionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTransactionsRequest) ProtoMessage() {}

func (x *ListTransactionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pix_v1_pix_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTransactionsRequest.ProtoReflect.Descriptor instead.
func (*ListTransactionsRequest) Descriptor() ([]byte, []int) {
	return file_pix_v1_pix_proto_rawDescGZIP(), []int{5}
}

func (x *ListTransactionsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListTransactionsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListTransactionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transactions  []*Transaction         `protobuf:"bytes,1,rep,name=transactions,proto3" json:"transactions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTransactionsResponse) Reset() {
	*x = ListTransactionsResponse{}
	mi := &file_pix_v1_pix_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTransactionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTransactionsResponse) ProtoMessage() {}

func (x *ListTransactionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pix_v1_pix_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTransactionsResponse.ProtoReflect.Descriptor instead.
func (*ListTransactionsResponse) Descriptor() ([]byte, []int) {
	return file_pix_v1_pix_proto_rawDescGZIP(), []int{6}
}

func (x *ListTransactionsResponse) GetTransactions() []*Transaction {
	if x != nil {
		return x.Transactions
	}
	return nil
}

type ListReviewTransactionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReviewTransactionsRequest) Reset() {
	*x = ListReviewTransactionsRequest{}
	mi := &file_pix_v1_pix_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReviewTransactionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReviewTransactionsRequest) ProtoMessage() {}

func (x *ListReviewTransactionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pix_v1_pix_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReviewTransactionsRequest.ProtoReflect.Descriptor instead.
func (*ListReviewTransactionsRequest) Descriptor() ([]byte, []int) {
	return file_pix_v1_pix_proto_rawDescGZIP(), []int{7}
}

type ListReviewTransactionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transactions  []*Transaction         `protobuf:"bytes,1,rep,name=transactions,proto3" json:"transactions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReviewTransactionsResponse) Reset() {
	*x = ListReviewTransactionsResponse{}
	mi := &file_pix_v1_pix_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReviewTransactionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReviewTransactionsResponse) ProtoMessage() {}

func (x *ListReviewTransactionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pix_v1_pix_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReviewTransactionsResponse.ProtoReflect.Descriptor instead.
func (*ListReviewTransactionsResponse) Descriptor() ([]byte, []int) {
	return file_pix_v1_pix_proto_rawDescGZIP(), []int{8}
}

func (x *ListReviewTransactionsResponse) GetTransactions() []*Transaction {
	if x != nil {
		return x.Transactions
	}
	return nil
}

type DeleteTransactionRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	SourceFilename string                 `protobuf:"bytes,1,opt,name=source_filename,json=sourceFilename,proto3" json:"source_filename,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *DeleteTransactionRequest) Reset() {
	*x = DeleteTransactionRequest{}
	mi := &file_pix_v1_pix_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteTransactionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteTransactionRequest) ProtoMessage() {}

func (x *DeleteTransactionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pix_v1_pix_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteTransactionRequest.ProtoReflect.Descriptor instead.
func (*DeleteTransactionRequest) Descriptor() ([]byte, []int) {
	return file_pix_v1_pix_proto_rawDescGZIP(), []int{9}
}

func (x *DeleteTransactionRequest) GetSourceFilename() string {
	if x != nil {
		return x.SourceFilename
	}
	return ""
}

type DeleteTransactionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       int32                  `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteTransactionResponse) Reset() {
	*x = DeleteTransactionResponse{}
	mi := &file_pix_v1_pix_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteTransactionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteTransactionResponse) ProtoMessage() {}

func (x *DeleteTransactionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pix_v1_pix_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteTransactionResponse.ProtoReflect.Descriptor instead.
func (*DeleteTransactionResponse) Descriptor() ([]byte, []int) {
	return file_pix_v1_pix_proto_rawDescGZIP(), []int{10}
}

func (x *DeleteTransactionResponse) GetDeleted() int32 {
	if x != nil {
		return x.Deleted
	}
	return 0
}

type ExportTransactionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	IncludeReview bool                   `protobuf:"varint,3,opt,name=include_review,json=includeReview,proto3" json:"include_review,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTransactionsRequest) Reset() {
	*x = ExportTransactionsRequest{}
	mi := &file_pix_v1_pix_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTransactionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTransactionsRequest) ProtoMessage() {}

func (x *ExportTransactionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pix_v1_pix_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTransactionsRequest.ProtoReflect.Descriptor instead.
func (*ExportTransactionsRequest) Descriptor() ([]byte, []int) {
	return file_pix_v1_pix_proto_rawDescGZIP(), []int{11}
}

func (x *ExportTransactionsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportTransactionsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ExportTransactionsRequest) GetIncludeReview() bool {
	if x != nil {
		return x.IncludeReview
	}
	return false
}

type ExportTransactionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTransactionsResponse) Reset() {
	*x = ExportTransactionsResponse{}
	mi := &file_pix_v1_pix_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTransactionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTransactionsResponse) ProtoMessage() {}

func (x *ExportTransactionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pix_v1_pix_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTransactionsResponse.ProtoReflect.Descriptor instead.
func (*ExportTransactionsResponse) Descriptor() ([]byte, []int) {
	return file_pix_v1_pix_proto_rawDescGZIP(), []int{12}
}

func (x *ExportTransactionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_pix_v1_pix_proto protoreflect.FileDescriptor

const file_pix_v1_pix_proto_rawDesc = "" +
	"\n" +
	"\x10pix/v1/pix.proto\x12\x06pix.v1\"\x95\x04\n" +
	"\vTransaction\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12'\n" +
	"\x0fsource_filename\x18\x02 \x01(\tR\x0esourceFilename\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\tR\x06amount\x12\x1d\n" +
	"\n" +
	"payer_name\x18\x04 \x01(\tR\tpayerName\x12\x1d\n" +
	"\n" +
	"payee_name\x18\x05 \x01(\tR\tpayeeName\x12\x17\n" +
	"\apix_key\x18\x06 \x01(\tR\x06pixKey\x12\x19\n" +
	"\bkey_type\x18\a \x01(\tR\akeyType\x12#\n" +
	"\rtransfer_date\x18\b \x01(\tR\ftransferDate\x12#\n" +
	"\rtransfer_time\x18\t \x01(\tR\ftransferTime\x12\x1b\n" +
	"\tbank_name\x18\n" +
	" \x01(\tR\bbankName\x12&\n" +
	"\x0fpayer_bank_name\x18\v \x01(\tR\rpayerBankName\x12%\n" +
	"\x0etransaction_id\x18\f \x01(\tR\rtransactionId\x12\x16\n" +
	"\x06status\x18\r \x01(\tR\x06status\x12\x14\n" +
	"\x05notes\x18\x0e \x01(\tR\x05notes\x12!\n" +
	"\fprocessed_at\x18\x0f \x01(\tR\vprocessedAt\x12\x1d\n" +
	"\n" +
	"created_at\x18\x10 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x11 \x01(\tR\tupdatedAt\"Q\n" +
	"\x16ProcessDocumentRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12#\n" +
	"\roriginal_name\x18\x02 \x01(\tR\foriginalName\"\x9e\x01\n" +
	"\x17ProcessDocumentResponse\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x16\n" +
	"\x06result\x18\x02 \x01(\tR\x06result\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\x125\n" +
	"\vtransaction\x18\x04 \x01(\v2\x13.pix.v1.TransactionR\vtransaction\"P\n" +
	"\x17ProcessDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x18\n" +
	"\aworkers\x18\x02 \x01(\x05R\aworkers\"\xd9\x01\n" +
	"\x18ProcessDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\x18\n" +
	"\askipped\x18\x04 \x01(\rR\askipped\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x129\n" +
	"\aresults\x18\x06 \x03(\v2\x1f.pix.v1.ProcessDocumentResponseR\aresults\"O\n" +
	"\x17ListTransactionsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"S\n" +
	"\x18ListTransactionsResponse\x127\n" +
	"\ftransactions\x18\x01 \x03(\v2\x13.pix.v1.TransactionR\ftransactions\"\x1f\n" +
	"\x1dListReviewTransactionsRequest\"Y\n" +
	"\x1eListReviewTransactionsResponse\x127\n" +
	"\ftransactions\x18\x01 \x03(\v2\x13.pix.v1.TransactionR\ftransactions\"C\n" +
	"\x18DeleteTransactionRequest\x12'\n" +
	"\x0fsource_filename\x18\x01 \x01(\tR\x0esourceFilename\"5\n" +
	"\x19DeleteTransactionResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\x05R\adeleted\"x\n" +
	"\x19ExportTransactionsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12%\n" +
	"\x0einclude_review\x18\x03 \x01(\bR\rincludeReview\"0\n" +
	"\x1aExportTransactionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xbd\x01\n" +
	"\x10IngestionService\x12R\n" +
	"\x0fProcessDocument\x12\x1e.pix.v1.ProcessDocumentRequest\x1a\x1f.pix.v1.ProcessDocumentResponse\x12U\n" +
	"\x10ProcessDirectory\x12\x1f.pix.v1.ProcessDirectoryRequest\x1a .pix.v1.ProcessDirectoryResponse2\xaf\x02\n" +
	"\x13TransactionsService\x12U\n" +
	"\x10ListTransactions\x12\x1f.pix.v1.ListTransactionsRequest\x1a .pix.v1.ListTransactionsResponse\x12g\n" +
	"\x16ListReviewTransactions\x12%.pix.v1.ListReviewTransactionsRequest\x1a&.pix.v1.ListReviewTransactionsResponse\x12X\n" +
	"\x11DeleteTransaction\x12 .pix.v1.DeleteTransactionRequest\x1a!.pix.v1.DeleteTransactionResponse2l\n" +
	"\rExportService\x12[\n" +
	"\x12ExportTransactions\x12!.pix.v1.ExportTransactionsRequest\x1a\".pix.v1.ExportTransactionsResponseB>Z<github.com/joseph-ayodele/pix-tracker/gen/proto/pix/v1;pixpbb\x06proto3"

var (
	file_pix_v1_pix_proto_rawDescOnce sync.Once
	file_pix_v1_pix_proto_rawDescData []byte
)

func file_pix_v1_pix_proto_rawDescGZIP() []byte {
	file_pix_v1_pix_proto_rawDescOnce.Do(func() {
		file_pix_v1_pix_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_pix_v1_pix_proto_rawDesc), len(file_pix_v1_pix_proto_rawDesc)))
	})
	return file_pix_v1_pix_proto_rawDescData
}

var file_pix_v1_pix_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_pix_v1_pix_proto_goTypes = []any{
	(*Transaction)(nil),                    // 0: pix.v1.Transaction
	(*ProcessDocumentRequest)(nil),         // 1: pix.v1.ProcessDocumentRequest
	(*ProcessDocumentResponse)(nil),        // 2: pix.v1.ProcessDocumentResponse
	(*ProcessDirectoryRequest)(nil),        // 3: pix.v1.ProcessDirectoryRequest
	(*ProcessDirectoryResponse)(nil),       // 4: pix.v1.ProcessDirectoryResponse
	(*ListTransactionsRequest)(nil),        // 5: pix.v1.ListTransactionsRequest
	(*ListTransactionsResponse)(nil),       // 6: pix.v1.ListTransactionsResponse
	(*ListReviewTransactionsRequest)(nil),  // 7: pix.v1.ListReviewTransactionsRequest
	(*ListReviewTransactionsResponse)(nil), // 8: pix.v1.ListReviewTransactionsResponse
	(*DeleteTransactionRequest)(nil),       // 9: pix.v1.DeleteTransactionRequest
	(*DeleteTransactionResponse)(nil),      // 10: pix.v1.DeleteTransactionResponse
	(*ExportTransactionsRequest)(nil),      // 11: pix.v1.ExportTransactionsRequest
	(*ExportTransactionsResponse)(nil),     // 12: pix.v1.ExportTransactionsResponse
}
var file_pix_v1_pix_proto_depIdxs = []int32{
	0,  // 0: pix.v1.ProcessDocumentResponse.transaction:type_name -> pix.v1.Transaction
	2,  // 1: pix.v1.ProcessDirectoryResponse.results:type_name -> pix.v1.ProcessDocumentResponse
	0,  // 2: pix.v1.ListTransactionsResponse.transactions:type_name -> pix.v1.Transaction
	0,  // 3: pix.v1.ListReviewTransactionsResponse.transactions:type_name -> pix.v1.Transaction
	1,  // 4: pix.v1.IngestionService.ProcessDocument:input_type -> pix.v1.ProcessDocumentRequest
	3,  // 5: pix.v1.IngestionService.ProcessDirectory:input_type -> pix.v1.ProcessDirectoryRequest
	5,  // 6: pix.v1.TransactionsService.ListTransactions:input_type -> pix.v1.ListTransactionsRequest
	7,  // 7: pix.v1.TransactionsService.ListReviewTransactions:input_type -> pix.v1.ListReviewTransactionsRequest
	9,  // 8: pix.v1.TransactionsService.DeleteTransaction:input_type -> pix.v1.DeleteTransactionRequest
	11, // 9: pix.v1.ExportService.ExportTransactions:input_type -> pix.v1.ExportTransactionsRequest
	2,  // 10: pix.v1.IngestionService.ProcessDocument:output_type -> pix.v1.ProcessDocumentResponse
	4,  // 11: pix.v1.IngestionService.ProcessDirectory:output_type -> pix.v1.ProcessDirectoryResponse
	6,  // 12: pix.v1.TransactionsService.ListTransactions:output_type -> pix.v1.ListTransactionsResponse
	8,  // 13: pix.v1.TransactionsService.ListReviewTransactions:output_type -> pix.v1.ListReviewTransactionsResponse
	10, // 14: pix.v1.TransactionsService.DeleteTransaction:output_type -> pix.v1.DeleteTransactionResponse
	12, // 15: pix.v1.ExportService.ExportTransactions:output_type -> pix.v1.ExportTransactionsResponse
	10, // [10:16] is the sub-list for method output_type
	4,  // [4:10] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_pix_v1_pix_proto_init() }
func file_pix_v1_pix_proto_init() {
	if File_pix_v1_pix_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_pix_v1_pix_proto_rawDesc), len(file_pix_v1_pix_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_pix_v1_pix_proto_goTypes,
		DependencyIndexes: file_pix_v1_pix_proto_depIdxs,
		MessageInfos:      file_pix_v1_pix_proto_msgTypes,
	}.Build()
	File_pix_v1_pix_proto = out.File
	file_pix_v1_pix_proto_goTypes = nil
	file_pix_v1_pix_proto_depIdxs = nil
}
