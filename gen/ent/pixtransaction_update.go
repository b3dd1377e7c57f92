// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/pix-tracker/gen/ent/pixtransaction"
	"github.com/joseph-ayodele/pix-tracker/gen/ent/predicate"
)

// PixTransactionUpdate is the builder for updating PixTransaction entities.
type PixTransactionUpdate struct {
	config
	hooks    []Hook
	mutation *PixTransactionMutation
}

// Where appends a list predicates to the PixTransactionUpdate builder.
func (_u *PixTransactionUpdate) Where(ps ...predicate.PixTransaction) *PixTransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceFilename sets the "source_filename" field.
func (_u *PixTransactionUpdate) SetSourceFilename(v string) *PixTransactionUpdate {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *PixTransactionUpdate) SetNillableSourceFilename(v *string) *PixTransactionUpdate {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PixTransactionUpdate) SetAmount(v float64) *PixTransactionUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PixTransactionUpdate) SetNillableAmount(v *float64) *PixTransactionUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PixTransactionUpdate) AddAmount(v float64) *PixTransactionUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *PixTransactionUpdate) ClearAmount() *PixTransactionUpdate {
	_u.mutation.ClearAmount()
	return _u
}

// SetPayerName sets the "payer_name" field.
func (_u *PixTransactionUpdate) SetPayerName(v string) *PixTransactionUpdate {
	_u.mutation.SetPayerName(v)
	return _u
}

// SetNillablePayerName sets the "payer_name" field if the given value is not nil.
func (_u *PixTransactionUpdate) SetNillablePayerName(v *string) *PixTransactionUpdate {
	if v != nil {
		_u.SetPayerName(*v)
	}
	return _u
}

// ClearPayerName clears the value of the "payer_name" field.
func (_u *PixTransactionUpdate) ClearPayerName() *PixTransactionUpdate {
	_u.mutation.ClearPayerName()
	return _u
}

// SetPayeeName sets the "payee_name" field.
func (_u *PixTransactionUpdate) SetPayeeName(v string) *PixTransactionUpdate {
	_u.mutation.SetPayeeName(v)
	return _u
}

// SetNillablePayeeName sets the "payee_name" field if the given value is not nil.
func (_u *PixTransactionUpdate) SetNillablePayeeName(v *string) *PixTransactionUpdate {
	if v != nil {
		_u.SetPayeeName(*v)
	}
	return _u
}

// ClearPayeeName clears the value of the "payee_name" field.
func (_u *PixTransactionUpdate) ClearPayeeName() *PixTransactionUpdate {
	_u.mutation.ClearPayeeName()
	return _u
}

// SetPixKey sets the "pix_key" field.
func (_u *PixTransactionUpdate) SetPixKey(v string) *PixTransactionUpdate {
	_u.mutation.SetPixKey(v)
	return _u
}

// SetNillablePixKey sets the "pix_key" field if the given value is not nil.
func (_u *PixTransactionUpdate) SetNillablePixKey(v *string) *PixTransactionUpdate {
	if v != nil {
		_u.SetPixKey(*v)
	}
	return _u
}

// ClearPixKey clears the value of the "pix_key" field.
func (_u *PixTransactionUpdate) ClearPixKey() *PixTransactionUpdate {
	_u.mutation.ClearPixKey()
	return _u
}

// SetKeyType sets the "key_type" field.
func (_u *PixTransactionUpdate) SetKeyType(v string) *PixTransactionUpdate {
	_u.mutation.SetKeyType(v)
	return _u
}

// SetNillableKeyType sets the "key_type" field if the given value is not nil.
func (_u *PixTransactionUpdate) SetNillableKeyType(v *string) *PixTransactionUpdate {
	if v != nil {
		_u.SetKeyType(*v)
	}
	return _u
}

// ClearKeyType clears the value of the "key_type" field.
func (_u *PixTransactionUpdate) ClearKeyType() *PixTransactionUpdate {
	_u.mutation.ClearKeyType()
	return _u
}

// SetTransferDate sets the "transfer_date" field.
func (_u *PixTransactionUpdate) SetTransferDate(v time.Time) *PixTransactionUpdate {
	_u.mutation.SetTransferDate(v)
	return _u
}

// SetNillableTransferDate sets the "transfer_date" field if the given value is not nil.
func (_u *PixTransactionUpdate) SetNillableTransferDate(v *time.Time) *PixTransactionUpdate {
	if v != nil {
		_u.SetTransferDate(*v)
	}
	return _u
}

// ClearTransferDate clears the value of the "transfer_date" field.
func (_u *PixTransactionUpdate) ClearTransferDate() *PixTransactionUpdate {
	_u.mutation.ClearTransferDate()
	return _u
}

// SetTransferTime sets the "transfer_time" field.
func (_u *PixTransactionUpdate) SetTransferTime(v string) *PixTransactionUpdate {
	_u.mutation.SetTransferTime(v)
	return _u
}

// SetNillableTransferTime sets the "transfer_time" field if the given value is not nil.
func (_u *PixTransactionUpdate) SetNillableTransferTime(v *string) *PixTransactionUpdate {
	if v != nil {
		_u.SetTransferTime(*v)
	}
	return _u
}

// ClearTransferTime clears the value of the "transfer_time" field.
func (_u *PixTransactionUpdate) ClearTransferTime() *PixTransactionUpdate {
	_u.mutation.ClearTransferTime()
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *PixTransactionUpdate) SetBankName(v string) *PixTransactionUpdate {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *PixTransactionUpdate) SetNillableBankName(v *string) *PixTransactionUpdate {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// ClearBankName clears the value of the "bank_name" field.
func (_u *PixTransactionUpdate) ClearBankName() *PixTransactionUpdate {
	_u.mutation.ClearBankName()
	return _u
}

// SetPayerBankName sets the "payer_bank_name" field.
func (_u *PixTransactionUpdate) SetPayerBankName(v string) *PixTransactionUpdate {
	_u.mutation.SetPayerBankName(v)
	return _u
}

// SetNillablePayerBankName sets the "payer_bank_name" field if the given value is not nil.
func (_u *PixTransactionUpdate) SetNillablePayerBankName(v *string) *PixTransactionUpdate {
	if v != nil {
		_u.SetPayerBankName(*v)
	}
	return _u
}

// ClearPayerBankName clears the value of the "payer_bank_name" field.
func (_u *PixTransactionUpdate) ClearPayerBankName() *PixTransactionUpdate {
	_u.mutation.ClearPayerBankName()
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *PixTransactionUpdate) SetTransactionID(v string) *PixTransactionUpdate {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *PixTransactionUpdate) SetNillableTransactionID(v *string) *PixTransactionUpdate {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (_u *PixTransactionUpdate) ClearTransactionID() *PixTransactionUpdate {
	_u.mutation.ClearTransactionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PixTransactionUpdate) SetStatus(v string) *PixTransactionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PixTransactionUpdate) SetNillableStatus(v *string) *PixTransactionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PixTransactionUpdate) SetNotes(v string) *PixTransactionUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PixTransactionUpdate) SetNillableNotes(v *string) *PixTransactionUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PixTransactionUpdate) ClearNotes() *PixTransactionUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *PixTransactionUpdate) SetExtractedJSON(v map[string]interface{}) *PixTransactionUpdate {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *PixTransactionUpdate) ClearExtractedJSON() *PixTransactionUpdate {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *PixTransactionUpdate) SetProcessedAt(v time.Time) *PixTransactionUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *PixTransactionUpdate) SetNillableProcessedAt(v *time.Time) *PixTransactionUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PixTransactionUpdate) SetCreatedAt(v time.Time) *PixTransactionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PixTransactionUpdate) SetNillableCreatedAt(v *time.Time) *PixTransactionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PixTransactionUpdate) SetUpdatedAt(v time.Time) *PixTransactionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PixTransactionMutation object of the builder.
func (_u *PixTransactionUpdate) Mutation() *PixTransactionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PixTransactionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PixTransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PixTransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PixTransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PixTransactionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pixtransaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PixTransactionUpdate) check() error {
	if v, ok := _u.mutation.SourceFilename(); ok {
		if err := pixtransaction.SourceFilenameValidator(v); err != nil {
			return &ValidationError{Name: "source_filename", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.source_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PayerName(); ok {
		if err := pixtransaction.PayerNameValidator(v); err != nil {
			return &ValidationError{Name: "payer_name", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.payer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PayeeName(); ok {
		if err := pixtransaction.PayeeNameValidator(v); err != nil {
			return &ValidationError{Name: "payee_name", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.payee_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PixKey(); ok {
		if err := pixtransaction.PixKeyValidator(v); err != nil {
			return &ValidationError{Name: "pix_key", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.pix_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KeyType(); ok {
		if err := pixtransaction.KeyTypeValidator(v); err != nil {
			return &ValidationError{Name: "key_type", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.key_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TransferTime(); ok {
		if err := pixtransaction.TransferTimeValidator(v); err != nil {
			return &ValidationError{Name: "transfer_time", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.transfer_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BankName(); ok {
		if err := pixtransaction.BankNameValidator(v); err != nil {
			return &ValidationError{Name: "bank_name", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.bank_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PayerBankName(); ok {
		if err := pixtransaction.PayerBankNameValidator(v); err != nil {
			return &ValidationError{Name: "payer_bank_name", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.payer_bank_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TransactionID(); ok {
		if err := pixtransaction.TransactionIDValidator(v); err != nil {
			return &ValidationError{Name: "transaction_id", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.transaction_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pixtransaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PixTransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pixtransaction.Table, pixtransaction.Columns, sqlgraph.NewFieldSpec(pixtransaction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceFilename(); ok {
		_spec.SetField(pixtransaction.FieldSourceFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(pixtransaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(pixtransaction.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(pixtransaction.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PayerName(); ok {
		_spec.SetField(pixtransaction.FieldPayerName, field.TypeString, value)
	}
	if _u.mutation.PayerNameCleared() {
		_spec.ClearField(pixtransaction.FieldPayerName, field.TypeString)
	}
	if value, ok := _u.mutation.PayeeName(); ok {
		_spec.SetField(pixtransaction.FieldPayeeName, field.TypeString, value)
	}
	if _u.mutation.PayeeNameCleared() {
		_spec.ClearField(pixtransaction.FieldPayeeName, field.TypeString)
	}
	if value, ok := _u.mutation.PixKey(); ok {
		_spec.SetField(pixtransaction.FieldPixKey, field.TypeString, value)
	}
	if _u.mutation.PixKeyCleared() {
		_spec.ClearField(pixtransaction.FieldPixKey, field.TypeString)
	}
	if value, ok := _u.mutation.KeyType(); ok {
		_spec.SetField(pixtransaction.FieldKeyType, field.TypeString, value)
	}
	if _u.mutation.KeyTypeCleared() {
		_spec.ClearField(pixtransaction.FieldKeyType, field.TypeString)
	}
	if value, ok := _u.mutation.TransferDate(); ok {
		_spec.SetField(pixtransaction.FieldTransferDate, field.TypeTime, value)
	}
	if _u.mutation.TransferDateCleared() {
		_spec.ClearField(pixtransaction.FieldTransferDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TransferTime(); ok {
		_spec.SetField(pixtransaction.FieldTransferTime, field.TypeString, value)
	}
	if _u.mutation.TransferTimeCleared() {
		_spec.ClearField(pixtransaction.FieldTransferTime, field.TypeString)
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(pixtransaction.FieldBankName, field.TypeString, value)
	}
	if _u.mutation.BankNameCleared() {
		_spec.ClearField(pixtransaction.FieldBankName, field.TypeString)
	}
	if value, ok := _u.mutation.PayerBankName(); ok {
		_spec.SetField(pixtransaction.FieldPayerBankName, field.TypeString, value)
	}
	if _u.mutation.PayerBankNameCleared() {
		_spec.ClearField(pixtransaction.FieldPayerBankName, field.TypeString)
	}
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(pixtransaction.FieldTransactionID, field.TypeString, value)
	}
	if _u.mutation.TransactionIDCleared() {
		_spec.ClearField(pixtransaction.FieldTransactionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pixtransaction.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(pixtransaction.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(pixtransaction.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(pixtransaction.FieldExtractedJSON, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(pixtransaction.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(pixtransaction.FieldProcessedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pixtransaction.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pixtransaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pixtransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PixTransactionUpdateOne is the builder for updating a single PixTransaction entity.
type PixTransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PixTransactionMutation
}

// SetSourceFilename sets the "source_filename" field.
func (_u *PixTransactionUpdateOne) SetSourceFilename(v string) *PixTransactionUpdateOne {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *PixTransactionUpdateOne) SetNillableSourceFilename(v *string) *PixTransactionUpdateOne {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PixTransactionUpdateOne) SetAmount(v float64) *PixTransactionUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PixTransactionUpdateOne) SetNillableAmount(v *float64) *PixTransactionUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PixTransactionUpdateOne) AddAmount(v float64) *PixTransactionUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *PixTransactionUpdateOne) ClearAmount() *PixTransactionUpdateOne {
	_u.mutation.ClearAmount()
	return _u
}

// SetPayerName sets the "payer_name" field.
func (_u *PixTransactionUpdateOne) SetPayerName(v string) *PixTransactionUpdateOne {
	_u.mutation.SetPayerName(v)
	return _u
}

// SetNillablePayerName sets the "payer_name" field if the given value is not nil.
func (_u *PixTransactionUpdateOne) SetNillablePayerName(v *string) *PixTransactionUpdateOne {
	if v != nil {
		_u.SetPayerName(*v)
	}
	return _u
}

// ClearPayerName clears the value of the "payer_name" field.
func (_u *PixTransactionUpdateOne) ClearPayerName() *PixTransactionUpdateOne {
	_u.mutation.ClearPayerName()
	return _u
}

// SetPayeeName sets the "payee_name" field.
func (_u *PixTransactionUpdateOne) SetPayeeName(v string) *PixTransactionUpdateOne {
	_u.mutation.SetPayeeName(v)
	return _u
}

// SetNillablePayeeName sets the "payee_name" field if the given value is not nil.
func (_u *PixTransactionUpdateOne) SetNillablePayeeName(v *string) *PixTransactionUpdateOne {
	if v != nil {
		_u.SetPayeeName(*v)
	}
	return _u
}

// ClearPayeeName clears the value of the "payee_name" field.
func (_u *PixTransactionUpdateOne) ClearPayeeName() *PixTransactionUpdateOne {
	_u.mutation.ClearPayeeName()
	return _u
}

// SetPixKey sets the "pix_key" field.
func (_u *PixTransactionUpdateOne) SetPixKey(v string) *PixTransactionUpdateOne {
	_u.mutation.SetPixKey(v)
	return _u
}

// SetNillablePixKey sets the "pix_key" field if the given value is not nil.
func (_u *PixTransactionUpdateOne) SetNillablePixKey(v *string) *PixTransactionUpdateOne {
	if v != nil {
		_u.SetPixKey(*v)
	}
	return _u
}

// ClearPixKey clears the value of the "pix_key" field.
func (_u *PixTransactionUpdateOne) ClearPixKey() *PixTransactionUpdateOne {
	_u.mutation.ClearPixKey()
	return _u
}

// SetKeyType sets the "key_type" field.
func (_u *PixTransactionUpdateOne) SetKeyType(v string) *PixTransactionUpdateOne {
	_u.mutation.SetKeyType(v)
	return _u
}

// SetNillableKeyType sets the "key_type" field if the given value is not nil.
func (_u *PixTransactionUpdateOne) SetNillableKeyType(v *string) *PixTransactionUpdateOne {
	if v != nil {
		_u.SetKeyType(*v)
	}
	return _u
}

// ClearKeyType clears the value of the "key_type" field.
func (_u *PixTransactionUpdateOne) ClearKeyType() *PixTransactionUpdateOne {
	_u.mutation.ClearKeyType()
	return _u
}

// SetTransferDate sets the "transfer_date" field.
func (_u *PixTransactionUpdateOne) SetTransferDate(v time.Time) *PixTransactionUpdateOne {
	_u.mutation.SetTransferDate(v)
	return _u
}

// SetNillableTransferDate sets the "transfer_date" field if the given value is not nil.
func (_u *PixTransactionUpdateOne) SetNillableTransferDate(v *time.Time) *PixTransactionUpdateOne {
	if v != nil {
		_u.SetTransferDate(*v)
	}
	return _u
}

// ClearTransferDate clears the value of the "transfer_date" field.
func (_u *PixTransactionUpdateOne) ClearTransferDate() *PixTransactionUpdateOne {
	_u.mutation.ClearTransferDate()
	return _u
}

// SetTransferTime sets the "transfer_time" field.
func (_u *PixTransactionUpdateOne) SetTransferTime(v string) *PixTransactionUpdateOne {
	_u.mutation.SetTransferTime(v)
	return _u
}

// SetNillableTransferTime sets the "transfer_time" field if the given value is not nil.
func (_u *PixTransactionUpdateOne) SetNillableTransferTime(v *string) *PixTransactionUpdateOne {
	if v != nil {
		_u.SetTransferTime(*v)
	}
	return _u
}

// ClearTransferTime clears the value of the "transfer_time" field.
func (_u *PixTransactionUpdateOne) ClearTransferTime() *PixTransactionUpdateOne {
	_u.mutation.ClearTransferTime()
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *PixTransactionUpdateOne) SetBankName(v string) *PixTransactionUpdateOne {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *PixTransactionUpdateOne) SetNillableBankName(v *string) *PixTransactionUpdateOne {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// ClearBankName clears the value of the "bank_name" field.
func (_u *PixTransactionUpdateOne) ClearBankName() *PixTransactionUpdateOne {
	_u.mutation.ClearBankName()
	return _u
}

// SetPayerBankName sets the "payer_bank_name" field.
func (_u *PixTransactionUpdateOne) SetPayerBankName(v string) *PixTransactionUpdateOne {
	_u.mutation.SetPayerBankName(v)
	return _u
}

// SetNillablePayerBankName sets the "payer_bank_name" field if the given value is not nil.
func (_u *PixTransactionUpdateOne) SetNillablePayerBankName(v *string) *PixTransactionUpdateOne {
	if v != nil {
		_u.SetPayerBankName(*v)
	}
	return _u
}

// ClearPayerBankName clears the value of the "payer_bank_name" field.
func (_u *PixTransactionUpdateOne) ClearPayerBankName() *PixTransactionUpdateOne {
	_u.mutation.ClearPayerBankName()
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *PixTransactionUpdateOne) SetTransactionID(v string) *PixTransactionUpdateOne {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *PixTransactionUpdateOne) SetNillableTransactionID(v *string) *PixTransactionUpdateOne {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (_u *PixTransactionUpdateOne) ClearTransactionID() *PixTransactionUpdateOne {
	_u.mutation.ClearTransactionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PixTransactionUpdateOne) SetStatus(v string) *PixTransactionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PixTransactionUpdateOne) SetNillableStatus(v *string) *PixTransactionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PixTransactionUpdateOne) SetNotes(v string) *PixTransactionUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PixTransactionUpdateOne) SetNillableNotes(v *string) *PixTransactionUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PixTransactionUpdateOne) ClearNotes() *PixTransactionUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *PixTransactionUpdateOne) SetExtractedJSON(v map[string]interface{}) *PixTransactionUpdateOne {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *PixTransactionUpdateOne) ClearExtractedJSON() *PixTransactionUpdateOne {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *PixTransactionUpdateOne) SetProcessedAt(v time.Time) *PixTransactionUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *PixTransactionUpdateOne) SetNillableProcessedAt(v *time.Time) *PixTransactionUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PixTransactionUpdateOne) SetCreatedAt(v time.Time) *PixTransactionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PixTransactionUpdateOne) SetNillableCreatedAt(v *time.Time) *PixTransactionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PixTransactionUpdateOne) SetUpdatedAt(v time.Time) *PixTransactionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PixTransactionMutation object of the builder.
func (_u *PixTransactionUpdateOne) Mutation() *PixTransactionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PixTransactionUpdate builder.
func (_u *PixTransactionUpdateOne) Where(ps ...predicate.PixTransaction) *PixTransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PixTransactionUpdateOne) Select(field string, fields ...string) *PixTransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PixTransaction entity.
func (_u *PixTransactionUpdateOne) Save(ctx context.Context) (*PixTransaction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PixTransactionUpdateOne) SaveX(ctx context.Context) *PixTransaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PixTransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PixTransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PixTransactionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pixtransaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PixTransactionUpdateOne) check() error {
	if v, ok := _u.mutation.SourceFilename(); ok {
		if err := pixtransaction.SourceFilenameValidator(v); err != nil {
			return &ValidationError{Name: "source_filename", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.source_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PayerName(); ok {
		if err := pixtransaction.PayerNameValidator(v); err != nil {
			return &ValidationError{Name: "payer_name", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.payer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PayeeName(); ok {
		if err := pixtransaction.PayeeNameValidator(v); err != nil {
			return &ValidationError{Name: "payee_name", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.payee_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PixKey(); ok {
		if err := pixtransaction.PixKeyValidator(v); err != nil {
			return &ValidationError{Name: "pix_key", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.pix_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KeyType(); ok {
		if err := pixtransaction.KeyTypeValidator(v); err != nil {
			return &ValidationError{Name: "key_type", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.key_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TransferTime(); ok {
		if err := pixtransaction.TransferTimeValidator(v); err != nil {
			return &ValidationError{Name: "transfer_time", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.transfer_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BankName(); ok {
		if err := pixtransaction.BankNameValidator(v); err != nil {
			return &ValidationError{Name: "bank_name", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.bank_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PayerBankName(); ok {
		if err := pixtransaction.PayerBankNameValidator(v); err != nil {
			return &ValidationError{Name: "payer_bank_name", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.payer_bank_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TransactionID(); ok {
		if err := pixtransaction.TransactionIDValidator(v); err != nil {
			return &ValidationError{Name: "transaction_id", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.transaction_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pixtransaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PixTransaction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PixTransactionUpdateOne) sqlSave(ctx context.Context) (_node *PixTransaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pixtransaction.Table, pixtransaction.Columns, sqlgraph.NewFieldSpec(pixtransaction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PixTransaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pixtransaction.FieldID)
		for _, f := range fields {
			if !pixtransaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pixtransaction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceFilename(); ok {
		_spec.SetField(pixtransaction.FieldSourceFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(pixtransaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(pixtransaction.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(pixtransaction.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PayerName(); ok {
		_spec.SetField(pixtransaction.FieldPayerName, field.TypeString, value)
	}
	if _u.mutation.PayerNameCleared() {
		_spec.ClearField(pixtransaction.FieldPayerName, field.TypeString)
	}
	if value, ok := _u.mutation.PayeeName(); ok {
		_spec.SetField(pixtransaction.FieldPayeeName, field.TypeString, value)
	}
	if _u.mutation.PayeeNameCleared() {
		_spec.ClearField(pixtransaction.FieldPayeeName, field.TypeString)
	}
	if value, ok := _u.mutation.PixKey(); ok {
		_spec.SetField(pixtransaction.FieldPixKey, field.TypeString, value)
	}
	if _u.mutation.PixKeyCleared() {
		_spec.ClearField(pixtransaction.FieldPixKey, field.TypeString)
	}
	if value, ok := _u.mutation.KeyType(); ok {
		_spec.SetField(pixtransaction.FieldKeyType, field.TypeString, value)
	}
	if _u.mutation.KeyTypeCleared() {
		_spec.ClearField(pixtransaction.FieldKeyType, field.TypeString)
	}
	if value, ok := _u.mutation.TransferDate(); ok {
		_spec.SetField(pixtransaction.FieldTransferDate, field.TypeTime, value)
	}
	if _u.mutation.TransferDateCleared() {
		_spec.ClearField(pixtransaction.FieldTransferDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TransferTime(); ok {
		_spec.SetField(pixtransaction.FieldTransferTime, field.TypeString, value)
	}
	if _u.mutation.TransferTimeCleared() {
		_spec.ClearField(pixtransaction.FieldTransferTime, field.TypeString)
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(pixtransaction.FieldBankName, field.TypeString, value)
	}
	if _u.mutation.BankNameCleared() {
		_spec.ClearField(pixtransaction.FieldBankName, field.TypeString)
	}
	if value, ok := _u.mutation.PayerBankName(); ok {
		_spec.SetField(pixtransaction.FieldPayerBankName, field.TypeString, value)
	}
	if _u.mutation.PayerBankNameCleared() {
		_spec.ClearField(pixtransaction.FieldPayerBankName, field.TypeString)
	}
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(pixtransaction.FieldTransactionID, field.TypeString, value)
	}
	if _u.mutation.TransactionIDCleared() {
		_spec.ClearField(pixtransaction.FieldTransactionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pixtransaction.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(pixtransaction.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(pixtransaction.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(pixtransaction.FieldExtractedJSON, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(pixtransaction.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(pixtransaction.FieldProcessedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pixtransaction.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pixtransaction.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PixTransaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pixtransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
