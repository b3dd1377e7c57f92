// Code generated by ent, DO NOT EDIT.

package pixtransaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/pix-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLTE(FieldID, id))
}

// SourceFilename applies equality check predicate on the "source_filename" field. It's identical to SourceFilenameEQ.
func SourceFilename(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldSourceFilename, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldAmount, v))
}

// PayerName applies equality check predicate on the "payer_name" field. It's identical to PayerNameEQ.
func PayerName(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldPayerName, v))
}

// PayeeName applies equality check predicate on the "payee_name" field. It's identical to PayeeNameEQ.
func PayeeName(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldPayeeName, v))
}

// PixKey applies equality check predicate on the "pix_key" field. It's identical to PixKeyEQ.
func PixKey(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldPixKey, v))
}

// KeyType applies equality check predicate on the "key_type" field. It's identical to KeyTypeEQ.
func KeyType(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldKeyType, v))
}

// TransferDate applies equality check predicate on the "transfer_date" field. It's identical to TransferDateEQ.
func TransferDate(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldTransferDate, v))
}

// TransferTime applies equality check predicate on the "transfer_time" field. It's identical to TransferTimeEQ.
func TransferTime(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldTransferTime, v))
}

// BankName applies equality check predicate on the "bank_name" field. It's identical to BankNameEQ.
func BankName(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldBankName, v))
}

// PayerBankName applies equality check predicate on the "payer_bank_name" field. It's identical to PayerBankNameEQ.
func PayerBankName(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldPayerBankName, v))
}

// TransactionID applies equality check predicate on the "transaction_id" field. It's identical to TransactionIDEQ.
func TransactionID(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldTransactionID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldStatus, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldNotes, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldProcessedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourceFilenameEQ applies the EQ predicate on the "source_filename" field.
func SourceFilenameEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldSourceFilename, v))
}

// SourceFilenameNEQ applies the NEQ predicate on the "source_filename" field.
func SourceFilenameNEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNEQ(FieldSourceFilename, v))
}

// SourceFilenameIn applies the In predicate on the "source_filename" field.
func SourceFilenameIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIn(FieldSourceFilename, vs...))
}

// SourceFilenameNotIn applies the NotIn predicate on the "source_filename" field.
func SourceFilenameNotIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotIn(FieldSourceFilename, vs...))
}

// SourceFilenameGT applies the GT predicate on the "source_filename" field.
func SourceFilenameGT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGT(FieldSourceFilename, v))
}

// SourceFilenameGTE applies the GTE predicate on the "source_filename" field.
func SourceFilenameGTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGTE(FieldSourceFilename, v))
}

// SourceFilenameLT applies the LT predicate on the "source_filename" field.
func SourceFilenameLT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLT(FieldSourceFilename, v))
}

// SourceFilenameLTE applies the LTE predicate on the "source_filename" field.
func SourceFilenameLTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLTE(FieldSourceFilename, v))
}

// SourceFilenameContains applies the Contains predicate on the "source_filename" field.
func SourceFilenameContains(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContains(FieldSourceFilename, v))
}

// SourceFilenameHasPrefix applies the HasPrefix predicate on the "source_filename" field.
func SourceFilenameHasPrefix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasPrefix(FieldSourceFilename, v))
}

// SourceFilenameHasSuffix applies the HasSuffix predicate on the "source_filename" field.
func SourceFilenameHasSuffix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasSuffix(FieldSourceFilename, v))
}

// SourceFilenameEqualFold applies the EqualFold predicate on the "source_filename" field.
func SourceFilenameEqualFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEqualFold(FieldSourceFilename, v))
}

// SourceFilenameContainsFold applies the ContainsFold predicate on the "source_filename" field.
func SourceFilenameContainsFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContainsFold(FieldSourceFilename, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLTE(FieldAmount, v))
}

// AmountIsNil applies the IsNil predicate on the "amount" field.
func AmountIsNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIsNull(FieldAmount))
}

// AmountNotNil applies the NotNil predicate on the "amount" field.
func AmountNotNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotNull(FieldAmount))
}

// PayerNameEQ applies the EQ predicate on the "payer_name" field.
func PayerNameEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldPayerName, v))
}

// PayerNameNEQ applies the NEQ predicate on the "payer_name" field.
func PayerNameNEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNEQ(FieldPayerName, v))
}

// PayerNameIn applies the In predicate on the "payer_name" field.
func PayerNameIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIn(FieldPayerName, vs...))
}

// PayerNameNotIn applies the NotIn predicate on the "payer_name" field.
func PayerNameNotIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotIn(FieldPayerName, vs...))
}

// PayerNameGT applies the GT predicate on the "payer_name" field.
func PayerNameGT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGT(FieldPayerName, v))
}

// PayerNameGTE applies the GTE predicate on the "payer_name" field.
func PayerNameGTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGTE(FieldPayerName, v))
}

// PayerNameLT applies the LT predicate on the "payer_name" field.
func PayerNameLT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLT(FieldPayerName, v))
}

// PayerNameLTE applies the LTE predicate on the "payer_name" field.
func PayerNameLTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLTE(FieldPayerName, v))
}

// PayerNameContains applies the Contains predicate on the "payer_name" field.
func PayerNameContains(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContains(FieldPayerName, v))
}

// PayerNameHasPrefix applies the HasPrefix predicate on the "payer_name" field.
func PayerNameHasPrefix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasPrefix(FieldPayerName, v))
}

// PayerNameHasSuffix applies the HasSuffix predicate on the "payer_name" field.
func PayerNameHasSuffix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasSuffix(FieldPayerName, v))
}

// PayerNameIsNil applies the IsNil predicate on the "payer_name" field.
func PayerNameIsNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIsNull(FieldPayerName))
}

// PayerNameNotNil applies the NotNil predicate on the "payer_name" field.
func PayerNameNotNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotNull(FieldPayerName))
}

// PayerNameEqualFold applies the EqualFold predicate on the "payer_name" field.
func PayerNameEqualFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEqualFold(FieldPayerName, v))
}

// PayerNameContainsFold applies the ContainsFold predicate on the "payer_name" field.
func PayerNameContainsFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContainsFold(FieldPayerName, v))
}

// PayeeNameEQ applies the EQ predicate on the "payee_name" field.
func PayeeNameEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldPayeeName, v))
}

// PayeeNameNEQ applies the NEQ predicate on the "payee_name" field.
func PayeeNameNEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNEQ(FieldPayeeName, v))
}

// PayeeNameIn applies the In predicate on the "payee_name" field.
func PayeeNameIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIn(FieldPayeeName, vs...))
}

// PayeeNameNotIn applies the NotIn predicate on the "payee_name" field.
func PayeeNameNotIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotIn(FieldPayeeName, vs...))
}

// PayeeNameGT applies the GT predicate on the "payee_name" field.
func PayeeNameGT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGT(FieldPayeeName, v))
}

// PayeeNameGTE applies the GTE predicate on the "payee_name" field.
func PayeeNameGTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGTE(FieldPayeeName, v))
}

// PayeeNameLT applies the LT predicate on the "payee_name" field.
func PayeeNameLT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLT(FieldPayeeName, v))
}

// PayeeNameLTE applies the LTE predicate on the "payee_name" field.
func PayeeNameLTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLTE(FieldPayeeName, v))
}

// PayeeNameContains applies the Contains predicate on the "payee_name" field.
func PayeeNameContains(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContains(FieldPayeeName, v))
}

// PayeeNameHasPrefix applies the HasPrefix predicate on the "payee_name" field.
func PayeeNameHasPrefix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasPrefix(FieldPayeeName, v))
}

// PayeeNameHasSuffix applies the HasSuffix predicate on the "payee_name" field.
func PayeeNameHasSuffix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasSuffix(FieldPayeeName, v))
}

// PayeeNameIsNil applies the IsNil predicate on the "payee_name" field.
func PayeeNameIsNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIsNull(FieldPayeeName))
}

// PayeeNameNotNil applies the NotNil predicate on the "payee_name" field.
func PayeeNameNotNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotNull(FieldPayeeName))
}

// PayeeNameEqualFold applies the EqualFold predicate on the "payee_name" field.
func PayeeNameEqualFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEqualFold(FieldPayeeName, v))
}

// PayeeNameContainsFold applies the ContainsFold predicate on the "payee_name" field.
func PayeeNameContainsFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContainsFold(FieldPayeeName, v))
}

// PixKeyEQ applies the EQ predicate on the "pix_key" field.
func PixKeyEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldPixKey, v))
}

// PixKeyNEQ applies the NEQ predicate on the "pix_key" field.
func PixKeyNEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNEQ(FieldPixKey, v))
}

// PixKeyIn applies the In predicate on the "pix_key" field.
func PixKeyIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIn(FieldPixKey, vs...))
}

// PixKeyNotIn applies the NotIn predicate on the "pix_key" field.
func PixKeyNotIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotIn(FieldPixKey, vs...))
}

// PixKeyGT applies the GT predicate on the "pix_key" field.
func PixKeyGT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGT(FieldPixKey, v))
}

// PixKeyGTE applies the GTE predicate on the "pix_key" field.
func PixKeyGTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGTE(FieldPixKey, v))
}

// PixKeyLT applies the LT predicate on the "pix_key" field.
func PixKeyLT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLT(FieldPixKey, v))
}

// PixKeyLTE applies the LTE predicate on the "pix_key" field.
func PixKeyLTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLTE(FieldPixKey, v))
}

// PixKeyContains applies the Contains predicate on the "pix_key" field.
func PixKeyContains(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContains(FieldPixKey, v))
}

// PixKeyHasPrefix applies the HasPrefix predicate on the "pix_key" field.
func PixKeyHasPrefix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasPrefix(FieldPixKey, v))
}

// PixKeyHasSuffix applies the HasSuffix predicate on the "pix_key" field.
func PixKeyHasSuffix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasSuffix(FieldPixKey, v))
}

// PixKeyIsNil applies the IsNil predicate on the "pix_key" field.
func PixKeyIsNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIsNull(FieldPixKey))
}

// PixKeyNotNil applies the NotNil predicate on the "pix_key" field.
func PixKeyNotNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotNull(FieldPixKey))
}

// PixKeyEqualFold applies the EqualFold predicate on the "pix_key" field.
func PixKeyEqualFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEqualFold(FieldPixKey, v))
}

// PixKeyContainsFold applies the ContainsFold predicate on the "pix_key" field.
func PixKeyContainsFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContainsFold(FieldPixKey, v))
}

// KeyTypeEQ applies the EQ predicate on the "key_type" field.
func KeyTypeEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldKeyType, v))
}

// KeyTypeNEQ applies the NEQ predicate on the "key_type" field.
func KeyTypeNEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNEQ(FieldKeyType, v))
}

// KeyTypeIn applies the In predicate on the "key_type" field.
func KeyTypeIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIn(FieldKeyType, vs...))
}

// KeyTypeNotIn applies the NotIn predicate on the "key_type" field.
func KeyTypeNotIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotIn(FieldKeyType, vs...))
}

// KeyTypeGT applies the GT predicate on the "key_type" field.
func KeyTypeGT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGT(FieldKeyType, v))
}

// KeyTypeGTE applies the GTE predicate on the "key_type" field.
func KeyTypeGTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGTE(FieldKeyType, v))
}

// KeyTypeLT applies the LT predicate on the "key_type" field.
func KeyTypeLT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLT(FieldKeyType, v))
}

// KeyTypeLTE applies the LTE predicate on the "key_type" field.
func KeyTypeLTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLTE(FieldKeyType, v))
}

// KeyTypeContains applies the Contains predicate on the "key_type" field.
func KeyTypeContains(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContains(FieldKeyType, v))
}

// KeyTypeHasPrefix applies the HasPrefix predicate on the "key_type" field.
func KeyTypeHasPrefix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasPrefix(FieldKeyType, v))
}

// KeyTypeHasSuffix applies the HasSuffix predicate on the "key_type" field.
func KeyTypeHasSuffix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasSuffix(FieldKeyType, v))
}

// KeyTypeIsNil applies the IsNil predicate on the "key_type" field.
func KeyTypeIsNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIsNull(FieldKeyType))
}

// KeyTypeNotNil applies the NotNil predicate on the "key_type" field.
func KeyTypeNotNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotNull(FieldKeyType))
}

// KeyTypeEqualFold applies the EqualFold predicate on the "key_type" field.
func KeyTypeEqualFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEqualFold(FieldKeyType, v))
}

// KeyTypeContainsFold applies the ContainsFold predicate on the "key_type" field.
func KeyTypeContainsFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContainsFold(FieldKeyType, v))
}

// TransferDateEQ applies the EQ predicate on the "transfer_date" field.
func TransferDateEQ(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldTransferDate, v))
}

// TransferDateNEQ applies the NEQ predicate on the "transfer_date" field.
func TransferDateNEQ(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNEQ(FieldTransferDate, v))
}

// TransferDateIn applies the In predicate on the "transfer_date" field.
func TransferDateIn(vs ...time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIn(FieldTransferDate, vs...))
}

// TransferDateNotIn applies the NotIn predicate on the "transfer_date" field.
func TransferDateNotIn(vs ...time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotIn(FieldTransferDate, vs...))
}

// TransferDateGT applies the GT predicate on the "transfer_date" field.
func TransferDateGT(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGT(FieldTransferDate, v))
}

// TransferDateGTE applies the GTE predicate on the "transfer_date" field.
func TransferDateGTE(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGTE(FieldTransferDate, v))
}

// TransferDateLT applies the LT predicate on the "transfer_date" field.
func TransferDateLT(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLT(FieldTransferDate, v))
}

// TransferDateLTE applies the LTE predicate on the "transfer_date" field.
func TransferDateLTE(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLTE(FieldTransferDate, v))
}

// TransferDateIsNil applies the IsNil predicate on the "transfer_date" field.
func TransferDateIsNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIsNull(FieldTransferDate))
}

// TransferDateNotNil applies the NotNil predicate on the "transfer_date" field.
func TransferDateNotNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotNull(FieldTransferDate))
}

// TransferTimeEQ applies the EQ predicate on the "transfer_time" field.
func TransferTimeEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldTransferTime, v))
}

// TransferTimeNEQ applies the NEQ predicate on the "transfer_time" field.
func TransferTimeNEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNEQ(FieldTransferTime, v))
}

// TransferTimeIn applies the In predicate on the "transfer_time" field.
func TransferTimeIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIn(FieldTransferTime, vs...))
}

// TransferTimeNotIn applies the NotIn predicate on the "transfer_time" field.
func TransferTimeNotIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotIn(FieldTransferTime, vs...))
}

// TransferTimeGT applies the GT predicate on the "transfer_time" field.
func TransferTimeGT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGT(FieldTransferTime, v))
}

// TransferTimeGTE applies the GTE predicate on the "transfer_time" field.
func TransferTimeGTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGTE(FieldTransferTime, v))
}

// TransferTimeLT applies the LT predicate on the "transfer_time" field.
func TransferTimeLT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLT(FieldTransferTime, v))
}

// TransferTimeLTE applies the LTE predicate on the "transfer_time" field.
func TransferTimeLTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLTE(FieldTransferTime, v))
}

// TransferTimeContains applies the Contains predicate on the "transfer_time" field.
func TransferTimeContains(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContains(FieldTransferTime, v))
}

// TransferTimeHasPrefix applies the HasPrefix predicate on the "transfer_time" field.
func TransferTimeHasPrefix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasPrefix(FieldTransferTime, v))
}

// TransferTimeHasSuffix applies the HasSuffix predicate on the "transfer_time" field.
func TransferTimeHasSuffix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasSuffix(FieldTransferTime, v))
}

// TransferTimeIsNil applies the IsNil predicate on the "transfer_time" field.
func TransferTimeIsNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIsNull(FieldTransferTime))
}

// TransferTimeNotNil applies the NotNil predicate on the "transfer_time" field.
func TransferTimeNotNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotNull(FieldTransferTime))
}

// TransferTimeEqualFold applies the EqualFold predicate on the "transfer_time" field.
func TransferTimeEqualFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEqualFold(FieldTransferTime, v))
}

// TransferTimeContainsFold applies the ContainsFold predicate on the "transfer_time" field.
func TransferTimeContainsFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContainsFold(FieldTransferTime, v))
}

// BankNameEQ applies the EQ predicate on the "bank_name" field.
func BankNameEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldBankName, v))
}

// BankNameNEQ applies the NEQ predicate on the "bank_name" field.
func BankNameNEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNEQ(FieldBankName, v))
}

// BankNameIn applies the In predicate on the "bank_name" field.
func BankNameIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIn(FieldBankName, vs...))
}

// BankNameNotIn applies the NotIn predicate on the "bank_name" field.
func BankNameNotIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotIn(FieldBankName, vs...))
}

// BankNameGT applies the GT predicate on the "bank_name" field.
func BankNameGT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGT(FieldBankName, v))
}

// BankNameGTE applies the GTE predicate on the "bank_name" field.
func BankNameGTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGTE(FieldBankName, v))
}

// BankNameLT applies the LT predicate on the "bank_name" field.
func BankNameLT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLT(FieldBankName, v))
}

// BankNameLTE applies the LTE predicate on the "bank_name" field.
func BankNameLTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLTE(FieldBankName, v))
}

// BankNameContains applies the Contains predicate on the "bank_name" field.
func BankNameContains(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContains(FieldBankName, v))
}

// BankNameHasPrefix applies the HasPrefix predicate on the "bank_name" field.
func BankNameHasPrefix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasPrefix(FieldBankName, v))
}

// BankNameHasSuffix applies the HasSuffix predicate on the "bank_name" field.
func BankNameHasSuffix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasSuffix(FieldBankName, v))
}

// BankNameIsNil applies the IsNil predicate on the "bank_name" field.
func BankNameIsNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIsNull(FieldBankName))
}

// BankNameNotNil applies the NotNil predicate on the "bank_name" field.
func BankNameNotNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotNull(FieldBankName))
}

// BankNameEqualFold applies the EqualFold predicate on the "bank_name" field.
func BankNameEqualFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEqualFold(FieldBankName, v))
}

// BankNameContainsFold applies the ContainsFold predicate on the "bank_name" field.
func BankNameContainsFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContainsFold(FieldBankName, v))
}

// PayerBankNameEQ applies the EQ predicate on the "payer_bank_name" field.
func PayerBankNameEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldPayerBankName, v))
}

// PayerBankNameNEQ applies the NEQ predicate on the "payer_bank_name" field.
func PayerBankNameNEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNEQ(FieldPayerBankName, v))
}

// PayerBankNameIn applies the In predicate on the "payer_bank_name" field.
func PayerBankNameIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIn(FieldPayerBankName, vs...))
}

// PayerBankNameNotIn applies the NotIn predicate on the "payer_bank_name" field.
func PayerBankNameNotIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotIn(FieldPayerBankName, vs...))
}

// PayerBankNameGT applies the GT predicate on the "payer_bank_name" field.
func PayerBankNameGT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGT(FieldPayerBankName, v))
}

// PayerBankNameGTE applies the GTE predicate on the "payer_bank_name" field.
func PayerBankNameGTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGTE(FieldPayerBankName, v))
}

// PayerBankNameLT applies the LT predicate on the "payer_bank_name" field.
func PayerBankNameLT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLT(FieldPayerBankName, v))
}

// PayerBankNameLTE applies the LTE predicate on the "payer_bank_name" field.
func PayerBankNameLTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLTE(FieldPayerBankName, v))
}

// PayerBankNameContains applies the Contains predicate on the "payer_bank_name" field.
func PayerBankNameContains(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContains(FieldPayerBankName, v))
}

// PayerBankNameHasPrefix applies the HasPrefix predicate on the "payer_bank_name" field.
func PayerBankNameHasPrefix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasPrefix(FieldPayerBankName, v))
}

// PayerBankNameHasSuffix applies the HasSuffix predicate on the "payer_bank_name" field.
func PayerBankNameHasSuffix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasSuffix(FieldPayerBankName, v))
}

// PayerBankNameIsNil applies the IsNil predicate on the "payer_bank_name" field.
func PayerBankNameIsNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIsNull(FieldPayerBankName))
}

// PayerBankNameNotNil applies the NotNil predicate on the "payer_bank_name" field.
func PayerBankNameNotNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotNull(FieldPayerBankName))
}

// PayerBankNameEqualFold applies the EqualFold predicate on the "payer_bank_name" field.
func PayerBankNameEqualFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEqualFold(FieldPayerBankName, v))
}

// PayerBankNameContainsFold applies the ContainsFold predicate on the "payer_bank_name" field.
func PayerBankNameContainsFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContainsFold(FieldPayerBankName, v))
}

// TransactionIDEQ applies the EQ predicate on the "transaction_id" field.
func TransactionIDEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldTransactionID, v))
}

// TransactionIDNEQ applies the NEQ predicate on the "transaction_id" field.
func TransactionIDNEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNEQ(FieldTransactionID, v))
}

// TransactionIDIn applies the In predicate on the "transaction_id" field.
func TransactionIDIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIn(FieldTransactionID, vs...))
}

// TransactionIDNotIn applies the NotIn predicate on the "transaction_id" field.
func TransactionIDNotIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotIn(FieldTransactionID, vs...))
}

// TransactionIDGT applies the GT predicate on the "transaction_id" field.
func TransactionIDGT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGT(FieldTransactionID, v))
}

// TransactionIDGTE applies the GTE predicate on the "transaction_id" field.
func TransactionIDGTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGTE(FieldTransactionID, v))
}

// TransactionIDLT applies the LT predicate on the "transaction_id" field.
func TransactionIDLT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLT(FieldTransactionID, v))
}

// TransactionIDLTE applies the LTE predicate on the "transaction_id" field.
func TransactionIDLTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLTE(FieldTransactionID, v))
}

// TransactionIDContains applies the Contains predicate on the "transaction_id" field.
func TransactionIDContains(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContains(FieldTransactionID, v))
}

// TransactionIDHasPrefix applies the HasPrefix predicate on the "transaction_id" field.
func TransactionIDHasPrefix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasPrefix(FieldTransactionID, v))
}

// TransactionIDHasSuffix applies the HasSuffix predicate on the "transaction_id" field.
func TransactionIDHasSuffix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasSuffix(FieldTransactionID, v))
}

// TransactionIDIsNil applies the IsNil predicate on the "transaction_id" field.
func TransactionIDIsNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIsNull(FieldTransactionID))
}

// TransactionIDNotNil applies the NotNil predicate on the "transaction_id" field.
func TransactionIDNotNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotNull(FieldTransactionID))
}

// TransactionIDEqualFold applies the EqualFold predicate on the "transaction_id" field.
func TransactionIDEqualFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEqualFold(FieldTransactionID, v))
}

// TransactionIDContainsFold applies the ContainsFold predicate on the "transaction_id" field.
func TransactionIDContainsFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContainsFold(FieldTransactionID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContainsFold(FieldStatus, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldContainsFold(FieldNotes, v))
}

// ExtractedJSONIsNil applies the IsNil predicate on the "extracted_json" field.
func ExtractedJSONIsNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIsNull(FieldExtractedJSON))
}

// ExtractedJSONNotNil applies the NotNil predicate on the "extracted_json" field.
func ExtractedJSONNotNil() predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotNull(FieldExtractedJSON))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLTE(FieldProcessedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PixTransaction {
	return predicate.PixTransaction(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PixTransaction) predicate.PixTransaction {
	return predicate.PixTransaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PixTransaction) predicate.PixTransaction {
	return predicate.PixTransaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PixTransaction) predicate.PixTransaction {
	return predicate.PixTransaction(sql.NotPredicates(p))
}
