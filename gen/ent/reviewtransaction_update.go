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
	"github.com/joseph-ayodele/pix-tracker/gen/ent/predicate"
	"github.com/joseph-ayodele/pix-tracker/gen/ent/reviewtransaction"
)

// ReviewTransactionUpdate is the builder for updating ReviewTransaction entities.
type ReviewTransactionUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewTransactionMutation
}

// Where appends a list predicates to the ReviewTransactionUpdate builder.
func (_u *ReviewTransactionUpdate) Where(ps ...predicate.ReviewTransaction) *ReviewTransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceFilename sets the "source_filename" field.
func (_u *ReviewTransactionUpdate) SetSourceFilename(v string) *ReviewTransactionUpdate {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *ReviewTransactionUpdate) SetNillableSourceFilename(v *string) *ReviewTransactionUpdate {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ReviewTransactionUpdate) SetAmount(v float64) *ReviewTransactionUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ReviewTransactionUpdate) SetNillableAmount(v *float64) *ReviewTransactionUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ReviewTransactionUpdate) AddAmount(v float64) *ReviewTransactionUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *ReviewTransactionUpdate) ClearAmount() *ReviewTransactionUpdate {
	_u.mutation.ClearAmount()
	return _u
}

// SetPayerName sets the "payer_name" field.
func (_u *ReviewTransactionUpdate) SetPayerName(v string) *ReviewTransactionUpdate {
	_u.mutation.SetPayerName(v)
	return _u
}

// SetNillablePayerName sets the "payer_name" field if the given value is not nil.
func (_u *ReviewTransactionUpdate) SetNillablePayerName(v *string) *ReviewTransactionUpdate {
	if v != nil {
		_u.SetPayerName(*v)
	}
	return _u
}

// ClearPayerName clears the value of the "payer_name" field.
func (_u *ReviewTransactionUpdate) ClearPayerName() *ReviewTransactionUpdate {
	_u.mutation.ClearPayerName()
	return _u
}

// SetPayeeName sets the "payee_name" field.
func (_u *ReviewTransactionUpdate) SetPayeeName(v string) *ReviewTransactionUpdate {
	_u.mutation.SetPayeeName(v)
	return _u
}

// SetNillablePayeeName sets the "payee_name" field if the given value is not nil.
func (_u *ReviewTransactionUpdate) SetNillablePayeeName(v *string) *ReviewTransactionUpdate {
	if v != nil {
		_u.SetPayeeName(*v)
	}
	return _u
}

// ClearPayeeName clears the value of the "payee_name" field.
func (_u *ReviewTransactionUpdate) ClearPayeeName() *ReviewTransactionUpdate {
	_u.mutation.ClearPayeeName()
	return _u
}

// SetPixKey sets the "pix_key" field.
func (_u *ReviewTransactionUpdate) SetPixKey(v string) *ReviewTransactionUpdate {
	_u.mutation.SetPixKey(v)
	return _u
}

// SetNillablePixKey sets the "pix_key" field if the given value is not nil.
func (_u *ReviewTransactionUpdate) SetNillablePixKey(v *string) *ReviewTransactionUpdate {
	if v != nil {
		_u.SetPixKey(*v)
	}
	return _u
}

// ClearPixKey clears the value of the "pix_key" field.
func (_u *ReviewTransactionUpdate) ClearPixKey() *ReviewTransactionUpdate {
	_u.mutation.ClearPixKey()
	return _u
}

// SetKeyType sets the "key_type" field.
func (_u *ReviewTransactionUpdate) SetKeyType(v string) *ReviewTransactionUpdate {
	_u.mutation.SetKeyType(v)
	return _u
}

// SetNillableKeyType sets the "key_type" field if the given value is not nil.
func (_u *ReviewTransactionUpdate) SetNillableKeyType(v *string) *ReviewTransactionUpdate {
	if v != nil {
		_u.SetKeyType(*v)
	}
	return _u
}

// ClearKeyType clears the value of the "key_type" field.
func (_u *ReviewTransactionUpdate) ClearKeyType() *ReviewTransactionUpdate {
	_u.mutation.ClearKeyType()
	return _u
}

// SetTransferDate sets the "transfer_date" field.
func (_u *ReviewTransactionUpdate) SetTransferDate(v time.Time) *ReviewTransactionUpdate {
	_u.mutation.SetTransferDate(v)
	return _u
}

// SetNillableTransferDate sets the "transfer_date" field if the given value is not nil.
func (_u *ReviewTransactionUpdate) SetNillableTransferDate(v *time.Time) *ReviewTransactionUpdate {
	if v != nil {
		_u.SetTransferDate(*v)
	}
	return _u
}

// ClearTransferDate clears the value of the "transfer_date" field.
func (_u *ReviewTransactionUpdate) ClearTransferDate() *ReviewTransactionUpdate {
	_u.mutation.ClearTransferDate()
	return _u
}

// SetTransferTime sets the "transfer_time" field.
func (_u *ReviewTransactionUpdate) SetTransferTime(v string) *ReviewTransactionUpdate {
	_u.mutation.SetTransferTime(v)
	return _u
}

// SetNillableTransferTime sets the "transfer_time" field if the given value is not nil.
func (_u *ReviewTransactionUpdate) SetNillableTransferTime(v *string) *ReviewTransactionUpdate {
	if v != nil {
		_u.SetTransferTime(*v)
	}
	return _u
}

// ClearTransferTime clears the value of the "transfer_time" field.
func (_u *ReviewTransactionUpdate) ClearTransferTime() *ReviewTransactionUpdate {
	_u.mutation.ClearTransferTime()
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *ReviewTransactionUpdate) SetBankName(v string) *ReviewTransactionUpdate {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *ReviewTransactionUpdate) SetNillableBankName(v *string) *ReviewTransactionUpdate {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// ClearBankName clears the value of the "bank_name" field.
func (_u *ReviewTransactionUpdate) ClearBankName() *ReviewTransactionUpdate {
	_u.mutation.ClearBankName()
	return _u
}

// SetPayerBankName sets the "payer_bank_name" field.
func (_u *ReviewTransactionUpdate) SetPayerBankName(v string) *ReviewTransactionUpdate {
	_u.mutation.SetPayerBankName(v)
	return _u
}

// SetNillablePayerBankName sets the "payer_bank_name" field if the given value is not nil.
func (_u *ReviewTransactionUpdate) SetNillablePayerBankName(v *string) *ReviewTransactionUpdate {
	if v != nil {
		_u.SetPayerBankName(*v)
	}
	return _u
}

// ClearPayerBankName clears the value of the "payer_bank_name" field.
func (_u *ReviewTransactionUpdate) ClearPayerBankName() *ReviewTransactionUpdate {
	_u.mutation.ClearPayerBankName()
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *ReviewTransactionUpdate) SetTransactionID(v string) *ReviewTransactionUpdate {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *ReviewTransactionUpdate) SetNillableTransactionID(v *string) *ReviewTransactionUpdate {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (_u *ReviewTransactionUpdate) ClearTransactionID() *ReviewTransactionUpdate {
	_u.mutation.ClearTransactionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewTransactionUpdate) SetStatus(v string) *ReviewTransactionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewTransactionUpdate) SetNillableStatus(v *string) *ReviewTransactionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ReviewTransactionUpdate) SetNotes(v string) *ReviewTransactionUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ReviewTransactionUpdate) SetNillableNotes(v *string) *ReviewTransactionUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ReviewTransactionUpdate) ClearNotes() *ReviewTransactionUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ReviewTransactionUpdate) SetRawText(v string) *ReviewTransactionUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ReviewTransactionUpdate) SetNillableRawText(v *string) *ReviewTransactionUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ReviewTransactionUpdate) ClearRawText() *ReviewTransactionUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ReviewTransactionUpdate) SetExtractedJSON(v map[string]interface{}) *ReviewTransactionUpdate {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ReviewTransactionUpdate) ClearExtractedJSON() *ReviewTransactionUpdate {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ReviewTransactionUpdate) SetProcessedAt(v time.Time) *ReviewTransactionUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ReviewTransactionUpdate) SetNillableProcessedAt(v *time.Time) *ReviewTransactionUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReviewTransactionUpdate) SetCreatedAt(v time.Time) *ReviewTransactionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReviewTransactionUpdate) SetNillableCreatedAt(v *time.Time) *ReviewTransactionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewTransactionUpdate) SetUpdatedAt(v time.Time) *ReviewTransactionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReviewTransactionMutation object of the builder.
func (_u *ReviewTransactionUpdate) Mutation() *ReviewTransactionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewTransactionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewTransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewTransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewTransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewTransactionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewtransaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewTransactionUpdate) check() error {
	if v, ok := _u.mutation.SourceFilename(); ok {
		if err := reviewtransaction.SourceFilenameValidator(v); err != nil {
			return &ValidationError{Name: "source_filename", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.source_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PayerName(); ok {
		if err := reviewtransaction.PayerNameValidator(v); err != nil {
			return &ValidationError{Name: "payer_name", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.payer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PayeeName(); ok {
		if err := reviewtransaction.PayeeNameValidator(v); err != nil {
			return &ValidationError{Name: "payee_name", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.payee_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PixKey(); ok {
		if err := reviewtransaction.PixKeyValidator(v); err != nil {
			return &ValidationError{Name: "pix_key", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.pix_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KeyType(); ok {
		if err := reviewtransaction.KeyTypeValidator(v); err != nil {
			return &ValidationError{Name: "key_type", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.key_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TransferTime(); ok {
		if err := reviewtransaction.TransferTimeValidator(v); err != nil {
			return &ValidationError{Name: "transfer_time", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.transfer_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BankName(); ok {
		if err := reviewtransaction.BankNameValidator(v); err != nil {
			return &ValidationError{Name: "bank_name", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.bank_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PayerBankName(); ok {
		if err := reviewtransaction.PayerBankNameValidator(v); err != nil {
			return &ValidationError{Name: "payer_bank_name", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.payer_bank_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TransactionID(); ok {
		if err := reviewtransaction.TransactionIDValidator(v); err != nil {
			return &ValidationError{Name: "transaction_id", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.transaction_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := reviewtransaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewTransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewtransaction.Table, reviewtransaction.Columns, sqlgraph.NewFieldSpec(reviewtransaction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceFilename(); ok {
		_spec.SetField(reviewtransaction.FieldSourceFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(reviewtransaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(reviewtransaction.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(reviewtransaction.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PayerName(); ok {
		_spec.SetField(reviewtransaction.FieldPayerName, field.TypeString, value)
	}
	if _u.mutation.PayerNameCleared() {
		_spec.ClearField(reviewtransaction.FieldPayerName, field.TypeString)
	}
	if value, ok := _u.mutation.PayeeName(); ok {
		_spec.SetField(reviewtransaction.FieldPayeeName, field.TypeString, value)
	}
	if _u.mutation.PayeeNameCleared() {
		_spec.ClearField(reviewtransaction.FieldPayeeName, field.TypeString)
	}
	if value, ok := _u.mutation.PixKey(); ok {
		_spec.SetField(reviewtransaction.FieldPixKey, field.TypeString, value)
	}
	if _u.mutation.PixKeyCleared() {
		_spec.ClearField(reviewtransaction.FieldPixKey, field.TypeString)
	}
	if value, ok := _u.mutation.KeyType(); ok {
		_spec.SetField(reviewtransaction.FieldKeyType, field.TypeString, value)
	}
	if _u.mutation.KeyTypeCleared() {
		_spec.ClearField(reviewtransaction.FieldKeyType, field.TypeString)
	}
	if value, ok := _u.mutation.TransferDate(); ok {
		_spec.SetField(reviewtransaction.FieldTransferDate, field.TypeTime, value)
	}
	if _u.mutation.TransferDateCleared() {
		_spec.ClearField(reviewtransaction.FieldTransferDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TransferTime(); ok {
		_spec.SetField(reviewtransaction.FieldTransferTime, field.TypeString, value)
	}
	if _u.mutation.TransferTimeCleared() {
		_spec.ClearField(reviewtransaction.FieldTransferTime, field.TypeString)
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(reviewtransaction.FieldBankName, field.TypeString, value)
	}
	if _u.mutation.BankNameCleared() {
		_spec.ClearField(reviewtransaction.FieldBankName, field.TypeString)
	}
	if value, ok := _u.mutation.PayerBankName(); ok {
		_spec.SetField(reviewtransaction.FieldPayerBankName, field.TypeString, value)
	}
	if _u.mutation.PayerBankNameCleared() {
		_spec.ClearField(reviewtransaction.FieldPayerBankName, field.TypeString)
	}
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(reviewtransaction.FieldTransactionID, field.TypeString, value)
	}
	if _u.mutation.TransactionIDCleared() {
		_spec.ClearField(reviewtransaction.FieldTransactionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reviewtransaction.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(reviewtransaction.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(reviewtransaction.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(reviewtransaction.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(reviewtransaction.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(reviewtransaction.FieldExtractedJSON, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(reviewtransaction.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(reviewtransaction.FieldProcessedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reviewtransaction.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewtransaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewtransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewTransactionUpdateOne is the builder for updating a single ReviewTransaction entity.
type ReviewTransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewTransactionMutation
}

// SetSourceFilename sets the "source_filename" field.
func (_u *ReviewTransactionUpdateOne) SetSourceFilename(v string) *ReviewTransactionUpdateOne {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *ReviewTransactionUpdateOne) SetNillableSourceFilename(v *string) *ReviewTransactionUpdateOne {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ReviewTransactionUpdateOne) SetAmount(v float64) *ReviewTransactionUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ReviewTransactionUpdateOne) SetNillableAmount(v *float64) *ReviewTransactionUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ReviewTransactionUpdateOne) AddAmount(v float64) *ReviewTransactionUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *ReviewTransactionUpdateOne) ClearAmount() *ReviewTransactionUpdateOne {
	_u.mutation.ClearAmount()
	return _u
}

// SetPayerName sets the "payer_name" field.
func (_u *ReviewTransactionUpdateOne) SetPayerName(v string) *ReviewTransactionUpdateOne {
	_u.mutation.SetPayerName(v)
	return _u
}

// SetNillablePayerName sets the "payer_name" field if the given value is not nil.
func (_u *ReviewTransactionUpdateOne) SetNillablePayerName(v *string) *ReviewTransactionUpdateOne {
	if v != nil {
		_u.SetPayerName(*v)
	}
	return _u
}

// ClearPayerName clears the value of the "payer_name" field.
func (_u *ReviewTransactionUpdateOne) ClearPayerName() *ReviewTransactionUpdateOne {
	_u.mutation.ClearPayerName()
	return _u
}

// SetPayeeName sets the "payee_name" field.
func (_u *ReviewTransactionUpdateOne) SetPayeeName(v string) *ReviewTransactionUpdateOne {
	_u.mutation.SetPayeeName(v)
	return _u
}

// SetNillablePayeeName sets the "payee_name" field if the given value is not nil.
func (_u *ReviewTransactionUpdateOne) SetNillablePayeeName(v *string) *ReviewTransactionUpdateOne {
	if v != nil {
		_u.SetPayeeName(*v)
	}
	return _u
}

// ClearPayeeName clears the value of the "payee_name" field.
func (_u *ReviewTransactionUpdateOne) ClearPayeeName() *ReviewTransactionUpdateOne {
	_u.mutation.ClearPayeeName()
	return _u
}

// SetPixKey sets the "pix_key" field.
func (_u *ReviewTransactionUpdateOne) SetPixKey(v string) *ReviewTransactionUpdateOne {
	_u.mutation.SetPixKey(v)
	return _u
}

// SetNillablePixKey sets the "pix_key" field if the given value is not nil.
func (_u *ReviewTransactionUpdateOne) SetNillablePixKey(v *string) *ReviewTransactionUpdateOne {
	if v != nil {
		_u.SetPixKey(*v)
	}
	return _u
}

// ClearPixKey clears the value of the "pix_key" field.
func (_u *ReviewTransactionUpdateOne) ClearPixKey() *ReviewTransactionUpdateOne {
	_u.mutation.ClearPixKey()
	return _u
}

// SetKeyType sets the "key_type" field.
func (_u *ReviewTransactionUpdateOne) SetKeyType(v string) *ReviewTransactionUpdateOne {
	_u.mutation.SetKeyType(v)
	return _u
}

// SetNillableKeyType sets the "key_type" field if the given value is not nil.
func (_u *ReviewTransactionUpdateOne) SetNillableKeyType(v *string) *ReviewTransactionUpdateOne {
	if v != nil {
		_u.SetKeyType(*v)
	}
	return _u
}

// ClearKeyType clears the value of the "key_type" field.
func (_u *ReviewTransactionUpdateOne) ClearKeyType() *ReviewTransactionUpdateOne {
	_u.mutation.ClearKeyType()
	return _u
}

// SetTransferDate sets the "transfer_date" field.
func (_u *ReviewTransactionUpdateOne) SetTransferDate(v time.Time) *ReviewTransactionUpdateOne {
	_u.mutation.SetTransferDate(v)
	return _u
}

// SetNillableTransferDate sets the "transfer_date" field if the given value is not nil.
func (_u *ReviewTransactionUpdateOne) SetNillableTransferDate(v *time.Time) *ReviewTransactionUpdateOne {
	if v != nil {
		_u.SetTransferDate(*v)
	}
	return _u
}

// ClearTransferDate clears the value of the "transfer_date" field.
func (_u *ReviewTransactionUpdateOne) ClearTransferDate() *ReviewTransactionUpdateOne {
	_u.mutation.ClearTransferDate()
	return _u
}

// SetTransferTime sets the "transfer_time" field.
func (_u *ReviewTransactionUpdateOne) SetTransferTime(v string) *ReviewTransactionUpdateOne {
	_u.mutation.SetTransferTime(v)
	return _u
}

// SetNillableTransferTime sets the "transfer_time" field if the given value is not nil.
func (_u *ReviewTransactionUpdateOne) SetNillableTransferTime(v *string) *ReviewTransactionUpdateOne {
	if v != nil {
		_u.SetTransferTime(*v)
	}
	return _u
}

// ClearTransferTime clears the value of the "transfer_time" field.
func (_u *ReviewTransactionUpdateOne) ClearTransferTime() *ReviewTransactionUpdateOne {
	_u.mutation.ClearTransferTime()
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *ReviewTransactionUpdateOne) SetBankName(v string) *ReviewTransactionUpdateOne {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *ReviewTransactionUpdateOne) SetNillableBankName(v *string) *ReviewTransactionUpdateOne {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// ClearBankName clears the value of the "bank_name" field.
func (_u *ReviewTransactionUpdateOne) ClearBankName() *ReviewTransactionUpdateOne {
	_u.mutation.ClearBankName()
	return _u
}

// SetPayerBankName sets the "payer_bank_name" field.
func (_u *ReviewTransactionUpdateOne) SetPayerBankName(v string) *ReviewTransactionUpdateOne {
	_u.mutation.SetPayerBankName(v)
	return _u
}

// SetNillablePayerBankName sets the "payer_bank_name" field if the given value is not nil.
func (_u *ReviewTransactionUpdateOne) SetNillablePayerBankName(v *string) *ReviewTransactionUpdateOne {
	if v != nil {
		_u.SetPayerBankName(*v)
	}
	return _u
}

// ClearPayerBankName clears the value of the "payer_bank_name" field.
func (_u *ReviewTransactionUpdateOne) ClearPayerBankName() *ReviewTransactionUpdateOne {
	_u.mutation.ClearPayerBankName()
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *ReviewTransactionUpdateOne) SetTransactionID(v string) *ReviewTransactionUpdateOne {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *ReviewTransactionUpdateOne) SetNillableTransactionID(v *string) *ReviewTransactionUpdateOne {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (_u *ReviewTransactionUpdateOne) ClearTransactionID() *ReviewTransactionUpdateOne {
	_u.mutation.ClearTransactionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewTransactionUpdateOne) SetStatus(v string) *ReviewTransactionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewTransactionUpdateOne) SetNillableStatus(v *string) *ReviewTransactionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ReviewTransactionUpdateOne) SetNotes(v string) *ReviewTransactionUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ReviewTransactionUpdateOne) SetNillableNotes(v *string) *ReviewTransactionUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ReviewTransactionUpdateOne) ClearNotes() *ReviewTransactionUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ReviewTransactionUpdateOne) SetRawText(v string) *ReviewTransactionUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ReviewTransactionUpdateOne) SetNillableRawText(v *string) *ReviewTransactionUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ReviewTransactionUpdateOne) ClearRawText() *ReviewTransactionUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ReviewTransactionUpdateOne) SetExtractedJSON(v map[string]interface{}) *ReviewTransactionUpdateOne {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ReviewTransactionUpdateOne) ClearExtractedJSON() *ReviewTransactionUpdateOne {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ReviewTransactionUpdateOne) SetProcessedAt(v time.Time) *ReviewTransactionUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ReviewTransactionUpdateOne) SetNillableProcessedAt(v *time.Time) *ReviewTransactionUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReviewTransactionUpdateOne) SetCreatedAt(v time.Time) *ReviewTransactionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReviewTransactionUpdateOne) SetNillableCreatedAt(v *time.Time) *ReviewTransactionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewTransactionUpdateOne) SetUpdatedAt(v time.Time) *ReviewTransactionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReviewTransactionMutation object of the builder.
func (_u *ReviewTransactionUpdateOne) Mutation() *ReviewTransactionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewTransactionUpdate builder.
func (_u *ReviewTransactionUpdateOne) Where(ps ...predicate.ReviewTransaction) *ReviewTransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewTransactionUpdateOne) Select(field string, fields ...string) *ReviewTransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewTransaction entity.
func (_u *ReviewTransactionUpdateOne) Save(ctx context.Context) (*ReviewTransaction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewTransactionUpdateOne) SaveX(ctx context.Context) *ReviewTransaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewTransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewTransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewTransactionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewtransaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewTransactionUpdateOne) check() error {
	if v, ok := _u.mutation.SourceFilename(); ok {
		if err := reviewtransaction.SourceFilenameValidator(v); err != nil {
			return &ValidationError{Name: "source_filename", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.source_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PayerName(); ok {
		if err := reviewtransaction.PayerNameValidator(v); err != nil {
			return &ValidationError{Name: "payer_name", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.payer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PayeeName(); ok {
		if err := reviewtransaction.PayeeNameValidator(v); err != nil {
			return &ValidationError{Name: "payee_name", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.payee_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PixKey(); ok {
		if err := reviewtransaction.PixKeyValidator(v); err != nil {
			return &ValidationError{Name: "pix_key", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.pix_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KeyType(); ok {
		if err := reviewtransaction.KeyTypeValidator(v); err != nil {
			return &ValidationError{Name: "key_type", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.key_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TransferTime(); ok {
		if err := reviewtransaction.TransferTimeValidator(v); err != nil {
			return &ValidationError{Name: "transfer_time", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.transfer_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BankName(); ok {
		if err := reviewtransaction.BankNameValidator(v); err != nil {
			return &ValidationError{Name: "bank_name", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.bank_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PayerBankName(); ok {
		if err := reviewtransaction.PayerBankNameValidator(v); err != nil {
			return &ValidationError{Name: "payer_bank_name", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.payer_bank_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TransactionID(); ok {
		if err := reviewtransaction.TransactionIDValidator(v); err != nil {
			return &ValidationError{Name: "transaction_id", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.transaction_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := reviewtransaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewTransactionUpdateOne) sqlSave(ctx context.Context) (_node *ReviewTransaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewtransaction.Table, reviewtransaction.Columns, sqlgraph.NewFieldSpec(reviewtransaction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewTransaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewtransaction.FieldID)
		for _, f := range fields {
			if !reviewtransaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewtransaction.FieldID {
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
		_spec.SetField(reviewtransaction.FieldSourceFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(reviewtransaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(reviewtransaction.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(reviewtransaction.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PayerName(); ok {
		_spec.SetField(reviewtransaction.FieldPayerName, field.TypeString, value)
	}
	if _u.mutation.PayerNameCleared() {
		_spec.ClearField(reviewtransaction.FieldPayerName, field.TypeString)
	}
	if value, ok := _u.mutation.PayeeName(); ok {
		_spec.SetField(reviewtransaction.FieldPayeeName, field.TypeString, value)
	}
	if _u.mutation.PayeeNameCleared() {
		_spec.ClearField(reviewtransaction.FieldPayeeName, field.TypeString)
	}
	if value, ok := _u.mutation.PixKey(); ok {
		_spec.SetField(reviewtransaction.FieldPixKey, field.TypeString, value)
	}
	if _u.mutation.PixKeyCleared() {
		_spec.ClearField(reviewtransaction.FieldPixKey, field.TypeString)
	}
	if value, ok := _u.mutation.KeyType(); ok {
		_spec.SetField(reviewtransaction.FieldKeyType, field.TypeString, value)
	}
	if _u.mutation.KeyTypeCleared() {
		_spec.ClearField(reviewtransaction.FieldKeyType, field.TypeString)
	}
	if value, ok := _u.mutation.TransferDate(); ok {
		_spec.SetField(reviewtransaction.FieldTransferDate, field.TypeTime, value)
	}
	if _u.mutation.TransferDateCleared() {
		_spec.ClearField(reviewtransaction.FieldTransferDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TransferTime(); ok {
		_spec.SetField(reviewtransaction.FieldTransferTime, field.TypeString, value)
	}
	if _u.mutation.TransferTimeCleared() {
		_spec.ClearField(reviewtransaction.FieldTransferTime, field.TypeString)
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(reviewtransaction.FieldBankName, field.TypeString, value)
	}
	if _u.mutation.BankNameCleared() {
		_spec.ClearField(reviewtransaction.FieldBankName, field.TypeString)
	}
	if value, ok := _u.mutation.PayerBankName(); ok {
		_spec.SetField(reviewtransaction.FieldPayerBankName, field.TypeString, value)
	}
	if _u.mutation.PayerBankNameCleared() {
		_spec.ClearField(reviewtransaction.FieldPayerBankName, field.TypeString)
	}
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(reviewtransaction.FieldTransactionID, field.TypeString, value)
	}
	if _u.mutation.TransactionIDCleared() {
		_spec.ClearField(reviewtransaction.FieldTransactionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reviewtransaction.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(reviewtransaction.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(reviewtransaction.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(reviewtransaction.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(reviewtransaction.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(reviewtransaction.FieldExtractedJSON, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(reviewtransaction.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(reviewtransaction.FieldProcessedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reviewtransaction.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewtransaction.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ReviewTransaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewtransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
