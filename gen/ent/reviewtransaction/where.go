// Code generated by ent, DO NOT EDIT.

package reviewtransaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/pix-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLTE(FieldID, id))
}

// SourceFilename applies equality check predicate on the "source_filename" field. It's identical to SourceFilenameEQ.
func SourceFilename(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldSourceFilename, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldAmount, v))
}

// PayerName applies equality check predicate on the "payer_name" field. It's identical to PayerNameEQ.
func PayerName(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldPayerName, v))
}

// PayeeName applies equality check predicate on the "payee_name" field. It's identical to PayeeNameEQ.
func PayeeName(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldPayeeName, v))
}

// PixKey applies equality check predicate on the "pix_key" field. It's identical to PixKeyEQ.
func PixKey(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldPixKey, v))
}

// KeyType applies equality check predicate on the "key_type" field. It's identical to KeyTypeEQ.
func KeyType(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldKeyType, v))
}

// TransferDate applies equality check predicate on the "transfer_date" field. It's identical to TransferDateEQ.
func TransferDate(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldTransferDate, v))
}

// TransferTime applies equality check predicate on the "transfer_time" field. It's identical to TransferTimeEQ.
func TransferTime(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldTransferTime, v))
}

// BankName applies equality check predicate on the "bank_name" field. It's identical to BankNameEQ.
func BankName(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldBankName, v))
}

// PayerBankName applies equality check predicate on the "payer_bank_name" field. It's identical to PayerBankNameEQ.
func PayerBankName(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldPayerBankName, v))
}

// TransactionID applies equality check predicate on the "transaction_id" field. It's identical to TransactionIDEQ.
func TransactionID(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldTransactionID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldStatus, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldNotes, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldRawText, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldProcessedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourceFilenameEQ applies the EQ predicate on the "source_filename" field.
func SourceFilenameEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldSourceFilename, v))
}

// SourceFilenameNEQ applies the NEQ predicate on the "source_filename" field.
func SourceFilenameNEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNEQ(FieldSourceFilename, v))
}

// SourceFilenameIn applies the In predicate on the "source_filename" field.
func SourceFilenameIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIn(FieldSourceFilename, vs...))
}

// SourceFilenameNotIn applies the NotIn predicate on the "source_filename" field.
func SourceFilenameNotIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotIn(FieldSourceFilename, vs...))
}

// SourceFilenameGT applies the GT predicate on the "source_filename" field.
func SourceFilenameGT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGT(FieldSourceFilename, v))
}

// SourceFilenameGTE applies the GTE predicate on the "source_filename" field.
func SourceFilenameGTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGTE(FieldSourceFilename, v))
}

// SourceFilenameLT applies the LT predicate on the "source_filename" field.
func SourceFilenameLT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLT(FieldSourceFilename, v))
}

// SourceFilenameLTE applies the LTE predicate on the "source_filename" field.
func SourceFilenameLTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLTE(FieldSourceFilename, v))
}

// SourceFilenameContains applies the Contains predicate on the "source_filename" field.
func SourceFilenameContains(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContains(FieldSourceFilename, v))
}

// SourceFilenameHasPrefix applies the HasPrefix predicate on the "source_filename" field.
func SourceFilenameHasPrefix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasPrefix(FieldSourceFilename, v))
}

// SourceFilenameHasSuffix applies the HasSuffix predicate on the "source_filename" field.
func SourceFilenameHasSuffix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasSuffix(FieldSourceFilename, v))
}

// SourceFilenameEqualFold applies the EqualFold predicate on the "source_filename" field.
func SourceFilenameEqualFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEqualFold(FieldSourceFilename, v))
}

// SourceFilenameContainsFold applies the ContainsFold predicate on the "source_filename" field.
func SourceFilenameContainsFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContainsFold(FieldSourceFilename, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLTE(FieldAmount, v))
}

// AmountIsNil applies the IsNil predicate on the "amount" field.
func AmountIsNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIsNull(FieldAmount))
}

// AmountNotNil applies the NotNil predicate on the "amount" field.
func AmountNotNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotNull(FieldAmount))
}

// PayerNameEQ applies the EQ predicate on the "payer_name" field.
func PayerNameEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldPayerName, v))
}

// PayerNameNEQ applies the NEQ predicate on the "payer_name" field.
func PayerNameNEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNEQ(FieldPayerName, v))
}

// PayerNameIn applies the In predicate on the "payer_name" field.
func PayerNameIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIn(FieldPayerName, vs...))
}

// PayerNameNotIn applies the NotIn predicate on the "payer_name" field.
func PayerNameNotIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotIn(FieldPayerName, vs...))
}

// PayerNameGT applies the GT predicate on the "payer_name" field.
func PayerNameGT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGT(FieldPayerName, v))
}

// PayerNameGTE applies the GTE predicate on the "payer_name" field.
func PayerNameGTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGTE(FieldPayerName, v))
}

// PayerNameLT applies the LT predicate on the "payer_name" field.
func PayerNameLT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLT(FieldPayerName, v))
}

// PayerNameLTE applies the LTE predicate on the "payer_name" field.
func PayerNameLTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLTE(FieldPayerName, v))
}

// PayerNameContains applies the Contains predicate on the "payer_name" field.
func PayerNameContains(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContains(FieldPayerName, v))
}

// PayerNameHasPrefix applies the HasPrefix predicate on the "payer_name" field.
func PayerNameHasPrefix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasPrefix(FieldPayerName, v))
}

// PayerNameHasSuffix applies the HasSuffix predicate on the "payer_name" field.
func PayerNameHasSuffix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasSuffix(FieldPayerName, v))
}

// PayerNameIsNil applies the IsNil predicate on the "payer_name" field.
func PayerNameIsNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIsNull(FieldPayerName))
}

// PayerNameNotNil applies the NotNil predicate on the "payer_name" field.
func PayerNameNotNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotNull(FieldPayerName))
}

// PayerNameEqualFold applies the EqualFold predicate on the "payer_name" field.
func PayerNameEqualFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEqualFold(FieldPayerName, v))
}

// PayerNameContainsFold applies the ContainsFold predicate on the "payer_name" field.
func PayerNameContainsFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContainsFold(FieldPayerName, v))
}

// PayeeNameEQ applies the EQ predicate on the "payee_name" field.
func PayeeNameEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldPayeeName, v))
}

// PayeeNameNEQ applies the NEQ predicate on the "payee_name" field.
func PayeeNameNEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNEQ(FieldPayeeName, v))
}

// PayeeNameIn applies the In predicate on the "payee_name" field.
func PayeeNameIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIn(FieldPayeeName, vs...))
}

// PayeeNameNotIn applies the NotIn predicate on the "payee_name" field.
func PayeeNameNotIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotIn(FieldPayeeName, vs...))
}

// PayeeNameGT applies the GT predicate on the "payee_name" field.
func PayeeNameGT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGT(FieldPayeeName, v))
}

// PayeeNameGTE applies the GTE predicate on the "payee_name" field.
func PayeeNameGTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGTE(FieldPayeeName, v))
}

// PayeeNameLT applies the LT predicate on the "payee_name" field.
func PayeeNameLT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLT(FieldPayeeName, v))
}

// PayeeNameLTE applies the LTE predicate on the "payee_name" field.
func PayeeNameLTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLTE(FieldPayeeName, v))
}

// PayeeNameContains applies the Contains predicate on the "payee_name" field.
func PayeeNameContains(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContains(FieldPayeeName, v))
}

// PayeeNameHasPrefix applies the HasPrefix predicate on the "payee_name" field.
func PayeeNameHasPrefix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasPrefix(FieldPayeeName, v))
}

// PayeeNameHasSuffix applies the HasSuffix predicate on the "payee_name" field.
func PayeeNameHasSuffix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasSuffix(FieldPayeeName, v))
}

// PayeeNameIsNil applies the IsNil predicate on the "payee_name" field.
func PayeeNameIsNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIsNull(FieldPayeeName))
}

// PayeeNameNotNil applies the NotNil predicate on the "payee_name" field.
func PayeeNameNotNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotNull(FieldPayeeName))
}

// PayeeNameEqualFold applies the EqualFold predicate on the "payee_name" field.
func PayeeNameEqualFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEqualFold(FieldPayeeName, v))
}

// PayeeNameContainsFold applies the ContainsFold predicate on the "payee_name" field.
func PayeeNameContainsFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContainsFold(FieldPayeeName, v))
}

// PixKeyEQ applies the EQ predicate on the "pix_key" field.
func PixKeyEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldPixKey, v))
}

// PixKeyNEQ applies the NEQ predicate on the "pix_key" field.
func PixKeyNEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNEQ(FieldPixKey, v))
}

// PixKeyIn applies the In predicate on the "pix_key" field.
func PixKeyIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIn(FieldPixKey, vs...))
}

// PixKeyNotIn applies the NotIn predicate on the "pix_key" field.
func PixKeyNotIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotIn(FieldPixKey, vs...))
}

// PixKeyGT applies the GT predicate on the "pix_key" field.
func PixKeyGT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGT(FieldPixKey, v))
}

// PixKeyGTE applies the GTE predicate on the "pix_key" field.
func PixKeyGTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGTE(FieldPixKey, v))
}

// PixKeyLT applies the LT predicate on the "pix_key" field.
func PixKeyLT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLT(FieldPixKey, v))
}

// PixKeyLTE applies the LTE predicate on the "pix_key" field.
func PixKeyLTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLTE(FieldPixKey, v))
}

// PixKeyContains applies the Contains predicate on the "pix_key" field.
func PixKeyContains(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContains(FieldPixKey, v))
}

// PixKeyHasPrefix applies the HasPrefix predicate on the "pix_key" field.
func PixKeyHasPrefix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasPrefix(FieldPixKey, v))
}

// PixKeyHasSuffix applies the HasSuffix predicate on the "pix_key" field.
func PixKeyHasSuffix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasSuffix(FieldPixKey, v))
}

// PixKeyIsNil applies the IsNil predicate on the "pix_key" field.
func PixKeyIsNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIsNull(FieldPixKey))
}

// PixKeyNotNil applies the NotNil predicate on the "pix_key" field.
func PixKeyNotNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotNull(FieldPixKey))
}

// PixKeyEqualFold applies the EqualFold predicate on the "pix_key" field.
func PixKeyEqualFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEqualFold(FieldPixKey, v))
}

// PixKeyContainsFold applies the ContainsFold predicate on the "pix_key" field.
func PixKeyContainsFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContainsFold(FieldPixKey, v))
}

// KeyTypeEQ applies the EQ predicate on the "key_type" field.
func KeyTypeEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldKeyType, v))
}

// KeyTypeNEQ applies the NEQ predicate on the "key_type" field.
func KeyTypeNEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNEQ(FieldKeyType, v))
}

// KeyTypeIn applies the In predicate on the "key_type" field.
func KeyTypeIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIn(FieldKeyType, vs...))
}

// KeyTypeNotIn applies the NotIn predicate on the "key_type" field.
func KeyTypeNotIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotIn(FieldKeyType, vs...))
}

// KeyTypeGT applies the GT predicate on the "key_type" field.
func KeyTypeGT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGT(FieldKeyType, v))
}

// KeyTypeGTE applies the GTE predicate on the "key_type" field.
func KeyTypeGTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGTE(FieldKeyType, v))
}

// KeyTypeLT applies the LT predicate on the "key_type" field.
func KeyTypeLT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLT(FieldKeyType, v))
}

// KeyTypeLTE applies the LTE predicate on the "key_type" field.
func KeyTypeLTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLTE(FieldKeyType, v))
}

// KeyTypeContains applies the Contains predicate on the "key_type" field.
func KeyTypeContains(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContains(FieldKeyType, v))
}

// KeyTypeHasPrefix applies the HasPrefix predicate on the "key_type" field.
func KeyTypeHasPrefix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasPrefix(FieldKeyType, v))
}

// KeyTypeHasSuffix applies the HasSuffix predicate on the "key_type" field.
func KeyTypeHasSuffix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasSuffix(FieldKeyType, v))
}

// KeyTypeIsNil applies the IsNil predicate on the "key_type" field.
func KeyTypeIsNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIsNull(FieldKeyType))
}

// KeyTypeNotNil applies the NotNil predicate on the "key_type" field.
func KeyTypeNotNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotNull(FieldKeyType))
}

// KeyTypeEqualFold applies the EqualFold predicate on the "key_type" field.
func KeyTypeEqualFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEqualFold(FieldKeyType, v))
}

// KeyTypeContainsFold applies the ContainsFold predicate on the "key_type" field.
func KeyTypeContainsFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContainsFold(FieldKeyType, v))
}

// TransferDateEQ applies the EQ predicate on the "transfer_date" field.
func TransferDateEQ(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldTransferDate, v))
}

// TransferDateNEQ applies the NEQ predicate on the "transfer_date" field.
func TransferDateNEQ(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNEQ(FieldTransferDate, v))
}

// TransferDateIn applies the In predicate on the "transfer_date" field.
func TransferDateIn(vs ...time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIn(FieldTransferDate, vs...))
}

// TransferDateNotIn applies the NotIn predicate on the "transfer_date" field.
func TransferDateNotIn(vs ...time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotIn(FieldTransferDate, vs...))
}

// TransferDateGT applies the GT predicate on the "transfer_date" field.
func TransferDateGT(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGT(FieldTransferDate, v))
}

// TransferDateGTE applies the GTE predicate on the "transfer_date" field.
func TransferDateGTE(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGTE(FieldTransferDate, v))
}

// TransferDateLT applies the LT predicate on the "transfer_date" field.
func TransferDateLT(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLT(FieldTransferDate, v))
}

// TransferDateLTE applies the LTE predicate on the "transfer_date" field.
func TransferDateLTE(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLTE(FieldTransferDate, v))
}

// TransferDateIsNil applies the IsNil predicate on the "transfer_date" field.
func TransferDateIsNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIsNull(FieldTransferDate))
}

// TransferDateNotNil applies the NotNil predicate on the "transfer_date" field.
func TransferDateNotNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotNull(FieldTransferDate))
}

// TransferTimeEQ applies the EQ predicate on the "transfer_time" field.
func TransferTimeEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldTransferTime, v))
}

// TransferTimeNEQ applies the NEQ predicate on the "transfer_time" field.
func TransferTimeNEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNEQ(FieldTransferTime, v))
}

// TransferTimeIn applies the In predicate on the "transfer_time" field.
func TransferTimeIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIn(FieldTransferTime, vs...))
}

// TransferTimeNotIn applies the NotIn predicate on the "transfer_time" field.
func TransferTimeNotIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotIn(FieldTransferTime, vs...))
}

// TransferTimeGT applies the GT predicate on the "transfer_time" field.
func TransferTimeGT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGT(FieldTransferTime, v))
}

// TransferTimeGTE applies the GTE predicate on the "transfer_time" field.
func TransferTimeGTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGTE(FieldTransferTime, v))
}

// TransferTimeLT applies the LT predicate on the "transfer_time" field.
func TransferTimeLT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLT(FieldTransferTime, v))
}

// TransferTimeLTE applies the LTE predicate on the "transfer_time" field.
func TransferTimeLTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLTE(FieldTransferTime, v))
}

// TransferTimeContains applies the Contains predicate on the "transfer_time" field.
func TransferTimeContains(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContains(FieldTransferTime, v))
}

// TransferTimeHasPrefix applies the HasPrefix predicate on the "transfer_time" field.
func TransferTimeHasPrefix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasPrefix(FieldTransferTime, v))
}

// TransferTimeHasSuffix applies the HasSuffix predicate on the "transfer_time" field.
func TransferTimeHasSuffix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasSuffix(FieldTransferTime, v))
}

// TransferTimeIsNil applies the IsNil predicate on the "transfer_time" field.
func TransferTimeIsNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIsNull(FieldTransferTime))
}

// TransferTimeNotNil applies the NotNil predicate on the "transfer_time" field.
func TransferTimeNotNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotNull(FieldTransferTime))
}

// TransferTimeEqualFold applies the EqualFold predicate on the "transfer_time" field.
func TransferTimeEqualFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEqualFold(FieldTransferTime, v))
}

// TransferTimeContainsFold applies the ContainsFold predicate on the "transfer_time" field.
func TransferTimeContainsFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContainsFold(FieldTransferTime, v))
}

// BankNameEQ applies the EQ predicate on the "bank_name" field.
func BankNameEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldBankName, v))
}

// BankNameNEQ applies the NEQ predicate on the "bank_name" field.
func BankNameNEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNEQ(FieldBankName, v))
}

// BankNameIn applies the In predicate on the "bank_name" field.
func BankNameIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIn(FieldBankName, vs...))
}

// BankNameNotIn applies the NotIn predicate on the "bank_name" field.
func BankNameNotIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotIn(FieldBankName, vs...))
}

// BankNameGT applies the GT predicate on the "bank_name" field.
func BankNameGT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGT(FieldBankName, v))
}

// BankNameGTE applies the GTE predicate on the "bank_name" field.
func BankNameGTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGTE(FieldBankName, v))
}

// BankNameLT applies the LT predicate on the "bank_name" field.
func BankNameLT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLT(FieldBankName, v))
}

// BankNameLTE applies the LTE predicate on the "bank_name" field.
func BankNameLTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLTE(FieldBankName, v))
}

// BankNameContains applies the Contains predicate on the "bank_name" field.
func BankNameContains(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContains(FieldBankName, v))
}

// BankNameHasPrefix applies the HasPrefix predicate on the "bank_name" field.
func BankNameHasPrefix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasPrefix(FieldBankName, v))
}

// BankNameHasSuffix applies the HasSuffix predicate on the "bank_name" field.
func BankNameHasSuffix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasSuffix(FieldBankName, v))
}

// BankNameIsNil applies the IsNil predicate on the "bank_name" field.
func BankNameIsNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIsNull(FieldBankName))
}

// BankNameNotNil applies the NotNil predicate on the "bank_name" field.
func BankNameNotNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotNull(FieldBankName))
}

// BankNameEqualFold applies the EqualFold predicate on the "bank_name" field.
func BankNameEqualFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEqualFold(FieldBankName, v))
}

// BankNameContainsFold applies the ContainsFold predicate on the "bank_name" field.
func BankNameContainsFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContainsFold(FieldBankName, v))
}

// PayerBankNameEQ applies the EQ predicate on the "payer_bank_name" field.
func PayerBankNameEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldPayerBankName, v))
}

// PayerBankNameNEQ applies the NEQ predicate on the "payer_bank_name" field.
func PayerBankNameNEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNEQ(FieldPayerBankName, v))
}

// PayerBankNameIn applies the In predicate on the "payer_bank_name" field.
func PayerBankNameIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIn(FieldPayerBankName, vs...))
}

// PayerBankNameNotIn applies the NotIn predicate on the "payer_bank_name" field.
func PayerBankNameNotIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotIn(FieldPayerBankName, vs...))
}

// PayerBankNameGT applies the GT predicate on the "payer_bank_name" field.
func PayerBankNameGT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGT(FieldPayerBankName, v))
}

// PayerBankNameGTE applies the GTE predicate on the "payer_bank_name" field.
func PayerBankNameGTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGTE(FieldPayerBankName, v))
}

// PayerBankNameLT applies the LT predicate on the "payer_bank_name" field.
func PayerBankNameLT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLT(FieldPayerBankName, v))
}

// PayerBankNameLTE applies the LTE predicate on the "payer_bank_name" field.
func PayerBankNameLTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLTE(FieldPayerBankName, v))
}

// PayerBankNameContains applies the Contains predicate on the "payer_bank_name" field.
func PayerBankNameContains(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContains(FieldPayerBankName, v))
}

// PayerBankNameHasPrefix applies the HasPrefix predicate on the "payer_bank_name" field.
func PayerBankNameHasPrefix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasPrefix(FieldPayerBankName, v))
}

// PayerBankNameHasSuffix applies the HasSuffix predicate on the "payer_bank_name" field.
func PayerBankNameHasSuffix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasSuffix(FieldPayerBankName, v))
}

// PayerBankNameIsNil applies the IsNil predicate on the "payer_bank_name" field.
func PayerBankNameIsNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIsNull(FieldPayerBankName))
}

// PayerBankNameNotNil applies the NotNil predicate on the "payer_bank_name" field.
func PayerBankNameNotNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotNull(FieldPayerBankName))
}

// PayerBankNameEqualFold applies the EqualFold predicate on the "payer_bank_name" field.
func PayerBankNameEqualFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEqualFold(FieldPayerBankName, v))
}

// PayerBankNameContainsFold applies the ContainsFold predicate on the "payer_bank_name" field.
func PayerBankNameContainsFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContainsFold(FieldPayerBankName, v))
}

// TransactionIDEQ applies the EQ predicate on the "transaction_id" field.
func TransactionIDEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldTransactionID, v))
}

// TransactionIDNEQ applies the NEQ predicate on the "transaction_id" field.
func TransactionIDNEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNEQ(FieldTransactionID, v))
}

// TransactionIDIn applies the In predicate on the "transaction_id" field.
func TransactionIDIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIn(FieldTransactionID, vs...))
}

// TransactionIDNotIn applies the NotIn predicate on the "transaction_id" field.
func TransactionIDNotIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotIn(FieldTransactionID, vs...))
}

// TransactionIDGT applies the GT predicate on the "transaction_id" field.
func TransactionIDGT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGT(FieldTransactionID, v))
}

// TransactionIDGTE applies the GTE predicate on the "transaction_id" field.
func TransactionIDGTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGTE(FieldTransactionID, v))
}

// TransactionIDLT applies the LT predicate on the "transaction_id" field.
func TransactionIDLT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLT(FieldTransactionID, v))
}

// TransactionIDLTE applies the LTE predicate on the "transaction_id" field.
func TransactionIDLTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLTE(FieldTransactionID, v))
}

// TransactionIDContains applies the Contains predicate on the "transaction_id" field.
func TransactionIDContains(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContains(FieldTransactionID, v))
}

// TransactionIDHasPrefix applies the HasPrefix predicate on the "transaction_id" field.
func TransactionIDHasPrefix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasPrefix(FieldTransactionID, v))
}

// TransactionIDHasSuffix applies the HasSuffix predicate on the "transaction_id" field.
func TransactionIDHasSuffix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasSuffix(FieldTransactionID, v))
}

// TransactionIDIsNil applies the IsNil predicate on the "transaction_id" field.
func TransactionIDIsNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIsNull(FieldTransactionID))
}

// TransactionIDNotNil applies the NotNil predicate on the "transaction_id" field.
func TransactionIDNotNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotNull(FieldTransactionID))
}

// TransactionIDEqualFold applies the EqualFold predicate on the "transaction_id" field.
func TransactionIDEqualFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEqualFold(FieldTransactionID, v))
}

// TransactionIDContainsFold applies the ContainsFold predicate on the "transaction_id" field.
func TransactionIDContainsFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContainsFold(FieldTransactionID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContainsFold(FieldStatus, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContainsFold(FieldNotes, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldContainsFold(FieldRawText, v))
}

// ExtractedJSONIsNil applies the IsNil predicate on the "extracted_json" field.
func ExtractedJSONIsNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIsNull(FieldExtractedJSON))
}

// ExtractedJSONNotNil applies the NotNil predicate on the "extracted_json" field.
func ExtractedJSONNotNil() predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotNull(FieldExtractedJSON))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLTE(FieldProcessedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewTransaction) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewTransaction) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewTransaction) predicate.ReviewTransaction {
	return predicate.ReviewTransaction(sql.NotPredicates(p))
}
