// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/pix-tracker/db/ent/schema"
	"github.com/joseph-ayodele/pix-tracker/gen/ent/pixtransaction"
	"github.com/joseph-ayodele/pix-tracker/gen/ent/reviewtransaction"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	pixtransactionFields := schema.PixTransaction{}.Fields()
	_ = pixtransactionFields
	// pixtransactionDescSourceFilename is the schema descriptor for source_filename field.
	pixtransactionDescSourceFilename := pixtransactionFields[1].Descriptor()
	// pixtransaction.SourceFilenameValidator is a validator for the "source_filename" field. It is called by the builders before save.
	pixtransaction.SourceFilenameValidator = func() func(string) error {
		validators := pixtransactionDescSourceFilename.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source_filename string) error {
			for _, fn := range fns {
				if err := fn(source_filename); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// pixtransactionDescPayerName is the schema descriptor for payer_name field.
	pixtransactionDescPayerName := pixtransactionFields[3].Descriptor()
	// pixtransaction.PayerNameValidator is a validator for the "payer_name" field. It is called by the builders before save.
	pixtransaction.PayerNameValidator = pixtransactionDescPayerName.Validators[0].(func(string) error)
	// pixtransactionDescPayeeName is the schema descriptor for payee_name field.
	pixtransactionDescPayeeName := pixtransactionFields[4].Descriptor()
	// pixtransaction.PayeeNameValidator is a validator for the "payee_name" field. It is called by the builders before save.
	pixtransaction.PayeeNameValidator = pixtransactionDescPayeeName.Validators[0].(func(string) error)
	// pixtransactionDescPixKey is the schema descriptor for pix_key field.
	pixtransactionDescPixKey := pixtransactionFields[5].Descriptor()
	// pixtransaction.PixKeyValidator is a validator for the "pix_key" field. It is called by the builders before save.
	pixtransaction.PixKeyValidator = pixtransactionDescPixKey.Validators[0].(func(string) error)
	// pixtransactionDescKeyType is the schema descriptor for key_type field.
	pixtransactionDescKeyType := pixtransactionFields[6].Descriptor()
	// pixtransaction.KeyTypeValidator is a validator for the "key_type" field. It is called by the builders before save.
	pixtransaction.KeyTypeValidator = pixtransactionDescKeyType.Validators[0].(func(string) error)
	// pixtransactionDescTransferTime is the schema descriptor for transfer_time field.
	pixtransactionDescTransferTime := pixtransactionFields[8].Descriptor()
	// pixtransaction.TransferTimeValidator is a validator for the "transfer_time" field. It is called by the builders before save.
	pixtransaction.TransferTimeValidator = pixtransactionDescTransferTime.Validators[0].(func(string) error)
	// pixtransactionDescBankName is the schema descriptor for bank_name field.
	pixtransactionDescBankName := pixtransactionFields[9].Descriptor()
	// pixtransaction.BankNameValidator is a validator for the "bank_name" field. It is called by the builders before save.
	pixtransaction.BankNameValidator = pixtransactionDescBankName.Validators[0].(func(string) error)
	// pixtransactionDescPayerBankName is the schema descriptor for payer_bank_name field.
	pixtransactionDescPayerBankName := pixtransactionFields[10].Descriptor()
	// pixtransaction.PayerBankNameValidator is a validator for the "payer_bank_name" field. It is called by the builders before save.
	pixtransaction.PayerBankNameValidator = pixtransactionDescPayerBankName.Validators[0].(func(string) error)
	// pixtransactionDescTransactionID is the schema descriptor for transaction_id field.
	pixtransactionDescTransactionID := pixtransactionFields[11].Descriptor()
	// pixtransaction.TransactionIDValidator is a validator for the "transaction_id" field. It is called by the builders before save.
	pixtransaction.TransactionIDValidator = pixtransactionDescTransactionID.Validators[0].(func(string) error)
	// pixtransactionDescStatus is the schema descriptor for status field.
	pixtransactionDescStatus := pixtransactionFields[12].Descriptor()
	// pixtransaction.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	pixtransaction.StatusValidator = func() func(string) error {
		validators := pixtransactionDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// pixtransactionDescProcessedAt is the schema descriptor for processed_at field.
	pixtransactionDescProcessedAt := pixtransactionFields[15].Descriptor()
	// pixtransaction.DefaultProcessedAt holds the default value on creation for the processed_at field.
	pixtransaction.DefaultProcessedAt = pixtransactionDescProcessedAt.Default.(func() time.Time)
	// pixtransactionDescCreatedAt is the schema descriptor for created_at field.
	pixtransactionDescCreatedAt := pixtransactionFields[16].Descriptor()
	// pixtransaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	pixtransaction.DefaultCreatedAt = pixtransactionDescCreatedAt.Default.(func() time.Time)
	// pixtransactionDescUpdatedAt is the schema descriptor for updated_at field.
	pixtransactionDescUpdatedAt := pixtransactionFields[17].Descriptor()
	// pixtransaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pixtransaction.DefaultUpdatedAt = pixtransactionDescUpdatedAt.Default.(func() time.Time)
	// pixtransaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pixtransaction.UpdateDefaultUpdatedAt = pixtransactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// pixtransactionDescID is the schema descriptor for id field.
	pixtransactionDescID := pixtransactionFields[0].Descriptor()
	// pixtransaction.DefaultID holds the default value on creation for the id field.
	pixtransaction.DefaultID = pixtransactionDescID.Default.(func() uuid.UUID)
	reviewtransactionFields := schema.ReviewTransaction{}.Fields()
	_ = reviewtransactionFields
	// reviewtransactionDescSourceFilename is the schema descriptor for source_filename field.
	reviewtransactionDescSourceFilename := reviewtransactionFields[1].Descriptor()
	// reviewtransaction.SourceFilenameValidator is a validator for the "source_filename" field. It is called by the builders before save.
	reviewtransaction.SourceFilenameValidator = func() func(string) error {
		validators := reviewtransactionDescSourceFilename.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source_filename string) error {
			for _, fn := range fns {
				if err := fn(source_filename); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reviewtransactionDescPayerName is the schema descriptor for payer_name field.
	reviewtransactionDescPayerName := reviewtransactionFields[3].Descriptor()
	// reviewtransaction.PayerNameValidator is a validator for the "payer_name" field. It is called by the builders before save.
	reviewtransaction.PayerNameValidator = reviewtransactionDescPayerName.Validators[0].(func(string) error)
	// reviewtransactionDescPayeeName is the schema descriptor for payee_name field.
	reviewtransactionDescPayeeName := reviewtransactionFields[4].Descriptor()
	// reviewtransaction.PayeeNameValidator is a validator for the "payee_name" field. It is called by the builders before save.
	reviewtransaction.PayeeNameValidator = reviewtransactionDescPayeeName.Validators[0].(func(string) error)
	// reviewtransactionDescPixKey is the schema descriptor for pix_key field.
	reviewtransactionDescPixKey := reviewtransactionFields[5].Descriptor()
	// reviewtransaction.PixKeyValidator is a validator for the "pix_key" field. It is called by the builders before save.
	reviewtransaction.PixKeyValidator = reviewtransactionDescPixKey.Validators[0].(func(string) error)
	// reviewtransactionDescKeyType is the schema descriptor for key_type field.
	reviewtransactionDescKeyType := reviewtransactionFields[6].Descriptor()
	// reviewtransaction.KeyTypeValidator is a validator for the "key_type" field. It is called by the builders before save.
	reviewtransaction.KeyTypeValidator = reviewtransactionDescKeyType.Validators[0].(func(string) error)
	// reviewtransactionDescTransferTime is the schema descriptor for transfer_time field.
	reviewtransactionDescTransferTime := reviewtransactionFields[8].Descriptor()
	// reviewtransaction.TransferTimeValidator is a validator for the "transfer_time" field. It is called by the builders before save.
	reviewtransaction.TransferTimeValidator = reviewtransactionDescTransferTime.Validators[0].(func(string) error)
	// reviewtransactionDescBankName is the schema descriptor for bank_name field.
	reviewtransactionDescBankName := reviewtransactionFields[9].Descriptor()
	// reviewtransaction.BankNameValidator is a validator for the "bank_name" field. It is called by the builders before save.
	reviewtransaction.BankNameValidator = reviewtransactionDescBankName.Validators[0].(func(string) error)
	// reviewtransactionDescPayerBankName is the schema descriptor for payer_bank_name field.
	reviewtransactionDescPayerBankName := reviewtransactionFields[10].Descriptor()
	// reviewtransaction.PayerBankNameValidator is a validator for the "payer_bank_name" field. It is called by the builders before save.
	reviewtransaction.PayerBankNameValidator = reviewtransactionDescPayerBankName.Validators[0].(func(string) error)
	// reviewtransactionDescTransactionID is the schema descriptor for transaction_id field.
	reviewtransactionDescTransactionID := reviewtransactionFields[11].Descriptor()
	// reviewtransaction.TransactionIDValidator is a validator for the "transaction_id" field. It is called by the builders before save.
	reviewtransaction.TransactionIDValidator = reviewtransactionDescTransactionID.Validators[0].(func(string) error)
	// reviewtransactionDescStatus is the schema descriptor for status field.
	reviewtransactionDescStatus := reviewtransactionFields[12].Descriptor()
	// reviewtransaction.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	reviewtransaction.StatusValidator = func() func(string) error {
		validators := reviewtransactionDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reviewtransactionDescProcessedAt is the schema descriptor for processed_at field.
	reviewtransactionDescProcessedAt := reviewtransactionFields[16].Descriptor()
	// reviewtransaction.DefaultProcessedAt holds the default value on creation for the processed_at field.
	reviewtransaction.DefaultProcessedAt = reviewtransactionDescProcessedAt.Default.(func() time.Time)
	// reviewtransactionDescCreatedAt is the schema descriptor for created_at field.
	reviewtransactionDescCreatedAt := reviewtransactionFields[17].Descriptor()
	// reviewtransaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	reviewtransaction.DefaultCreatedAt = reviewtransactionDescCreatedAt.Default.(func() time.Time)
	// reviewtransactionDescUpdatedAt is the schema descriptor for updated_at field.
	reviewtransactionDescUpdatedAt := reviewtransactionFields[18].Descriptor()
	// reviewtransaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reviewtransaction.DefaultUpdatedAt = reviewtransactionDescUpdatedAt.Default.(func() time.Time)
	// reviewtransaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reviewtransaction.UpdateDefaultUpdatedAt = reviewtransactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reviewtransactionDescID is the schema descriptor for id field.
	reviewtransactionDescID := reviewtransactionFields[0].Descriptor()
	// reviewtransaction.DefaultID holds the default value on creation for the id field.
	reviewtransaction.DefaultID = reviewtransactionDescID.Default.(func() uuid.UUID)
}
