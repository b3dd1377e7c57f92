// Code generated by ent, DO NOT EDIT.

package pixtransaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the pixtransaction type in the database.
	Label = "pix_transaction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceFilename holds the string denoting the source_filename field in the database.
	FieldSourceFilename = "source_filename"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldPayerName holds the string denoting the payer_name field in the database.
	FieldPayerName = "payer_name"
	// FieldPayeeName holds the string denoting the payee_name field in the database.
	FieldPayeeName = "payee_name"
	// FieldPixKey holds the string denoting the pix_key field in the database.
	FieldPixKey = "pix_key"
	// FieldKeyType holds the string denoting the key_type field in the database.
	FieldKeyType = "key_type"
	// FieldTransferDate holds the string denoting the transfer_date field in the database.
	FieldTransferDate = "transfer_date"
	// FieldTransferTime holds the string denoting the transfer_time field in the database.
	FieldTransferTime = "transfer_time"
	// FieldBankName holds the string denoting the bank_name field in the database.
	FieldBankName = "bank_name"
	// FieldPayerBankName holds the string denoting the payer_bank_name field in the database.
	FieldPayerBankName = "payer_bank_name"
	// FieldTransactionID holds the string denoting the transaction_id field in the database.
	FieldTransactionID = "transaction_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldExtractedJSON holds the string denoting the extracted_json field in the database.
	FieldExtractedJSON = "extracted_json"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the pixtransaction in the database.
	Table = "pix_transactions"
)

// Columns holds all SQL columns for pixtransaction fields.
var Columns = []string{
	FieldID,
	FieldSourceFilename,
	FieldAmount,
	FieldPayerName,
	FieldPayeeName,
	FieldPixKey,
	FieldKeyType,
	FieldTransferDate,
	FieldTransferTime,
	FieldBankName,
	FieldPayerBankName,
	FieldTransactionID,
	FieldStatus,
	FieldNotes,
	FieldExtractedJSON,
	FieldProcessedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SourceFilenameValidator is a validator for the "source_filename" field. It is called by the builders before save.
	SourceFilenameValidator func(string) error
	// PayerNameValidator is a validator for the "payer_name" field. It is called by the builders before save.
	PayerNameValidator func(string) error
	// PayeeNameValidator is a validator for the "payee_name" field. It is called by the builders before save.
	PayeeNameValidator func(string) error
	// PixKeyValidator is a validator for the "pix_key" field. It is called by the builders before save.
	PixKeyValidator func(string) error
	// KeyTypeValidator is a validator for the "key_type" field. It is called by the builders before save.
	KeyTypeValidator func(string) error
	// TransferTimeValidator is a validator for the "transfer_time" field. It is called by the builders before save.
	TransferTimeValidator func(string) error
	// BankNameValidator is a validator for the "bank_name" field. It is called by the builders before save.
	BankNameValidator func(string) error
	// PayerBankNameValidator is a validator for the "payer_bank_name" field. It is called by the builders before save.
	PayerBankNameValidator func(string) error
	// TransactionIDValidator is a validator for the "transaction_id" field. It is called by the builders before save.
	TransactionIDValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultProcessedAt holds the default value on creation for the "processed_at" field.
	DefaultProcessedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PixTransaction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceFilename orders the results by the source_filename field.
func BySourceFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFilename, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByPayerName orders the results by the payer_name field.
func ByPayerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayerName, opts...).ToFunc()
}

// ByPayeeName orders the results by the payee_name field.
func ByPayeeName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayeeName, opts...).ToFunc()
}

// ByPixKey orders the results by the pix_key field.
func ByPixKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPixKey, opts...).ToFunc()
}

// ByKeyType orders the results by the key_type field.
func ByKeyType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeyType, opts...).ToFunc()
}

// ByTransferDate orders the results by the transfer_date field.
func ByTransferDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransferDate, opts...).ToFunc()
}

// ByTransferTime orders the results by the transfer_time field.
func ByTransferTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransferTime, opts...).ToFunc()
}

// ByBankName orders the results by the bank_name field.
func ByBankName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBankName, opts...).ToFunc()
}

// ByPayerBankName orders the results by the payer_bank_name field.
func ByPayerBankName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayerBankName, opts...).ToFunc()
}

// ByTransactionID orders the results by the transaction_id field.
func ByTransactionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransactionID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
