// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/pix-tracker/gen/ent/reviewtransaction"
)

// ReviewTransactionCreate is the builder for creating a ReviewTransaction entity.
type ReviewTransactionCreate struct {
	config
	mutation *ReviewTransactionMutation
	hooks    []Hook
}

// SetSourceFilename sets the "source_filename" field.
func (_c *ReviewTransactionCreate) SetSourceFilename(v string) *ReviewTransactionCreate {
	_c.mutation.SetSourceFilename(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *ReviewTransactionCreate) SetAmount(v float64) *ReviewTransactionCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *ReviewTransactionCreate) SetNillableAmount(v *float64) *ReviewTransactionCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetPayerName sets the "payer_name" field.
func (_c *ReviewTransactionCreate) SetPayerName(v string) *ReviewTransactionCreate {
	_c.mutation.SetPayerName(v)
	return _c
}

// SetNillablePayerName sets the "payer_name" field if the given value is not nil.
func (_c *ReviewTransactionCreate) SetNillablePayerName(v *string) *ReviewTransactionCreate {
	if v != nil {
		_c.SetPayerName(*v)
	}
	return _c
}

// SetPayeeName sets the "payee_name" field.
func (_c *ReviewTransactionCreate) SetPayeeName(v string) *ReviewTransactionCreate {
	_c.mutation.SetPayeeName(v)
	return _c
}

// SetNillablePayeeName sets the "payee_name" field if the given value is not nil.
func (_c *ReviewTransactionCreate) SetNillablePayeeName(v *string) *ReviewTransactionCreate {
	if v != nil {
		_c.SetPayeeName(*v)
	}
	return _c
}

// SetPixKey sets the "pix_key" field.
func (_c *ReviewTransactionCreate) SetPixKey(v string) *ReviewTransactionCreate {
	_c.mutation.SetPixKey(v)
	return _c
}

// SetNillablePixKey sets the "pix_key" field if the given value is not nil.
func (_c *ReviewTransactionCreate) SetNillablePixKey(v *string) *ReviewTransactionCreate {
	if v != nil {
		_c.SetPixKey(*v)
	}
	return _c
}

// SetKeyType sets the "key_type" field.
func (_c *ReviewTransactionCreate) SetKeyType(v string) *ReviewTransactionCreate {
	_c.mutation.SetKeyType(v)
	return _c
}

// SetNillableKeyType sets the "key_type" field if the given value is not nil.
func (_c *ReviewTransactionCreate) SetNillableKeyType(v *string) *ReviewTransactionCreate {
	if v != nil {
		_c.SetKeyType(*v)
	}
	return _c
}

// SetTransferDate sets the "transfer_date" field.
func (_c *ReviewTransactionCreate) SetTransferDate(v time.Time) *ReviewTransactionCreate {
	_c.mutation.SetTransferDate(v)
	return _c
}

// SetNillableTransferDate sets the "transfer_date" field if the given value is not nil.
func (_c *ReviewTransactionCreate) SetNillableTransferDate(v *time.Time) *ReviewTransactionCreate {
	if v != nil {
		_c.SetTransferDate(*v)
	}
	return _c
}

// SetTransferTime sets the "transfer_time" field.
func (_c *ReviewTransactionCreate) SetTransferTime(v string) *ReviewTransactionCreate {
	_c.mutation.SetTransferTime(v)
	return _c
}

// SetNillableTransferTime sets the "transfer_time" field if the given value is not nil.
func (_c *ReviewTransactionCreate) SetNillableTransferTime(v *string) *ReviewTransactionCreate {
	if v != nil {
		_c.SetTransferTime(*v)
	}
	return _c
}

// SetBankName sets the "bank_name" field.
func (_c *ReviewTransactionCreate) SetBankName(v string) *ReviewTransactionCreate {
	_c.mutation.SetBankName(v)
	return _c
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_c *ReviewTransactionCreate) SetNillableBankName(v *string) *ReviewTransactionCreate {
	if v != nil {
		_c.SetBankName(*v)
	}
	return _c
}

// SetPayerBankName sets the "payer_bank_name" field.
func (_c *ReviewTransactionCreate) SetPayerBankName(v string) *ReviewTransactionCreate {
	_c.mutation.SetPayerBankName(v)
	return _c
}

// SetNillablePayerBankName sets the "payer_bank_name" field if the given value is not nil.
func (_c *ReviewTransactionCreate) SetNillablePayerBankName(v *string) *ReviewTransactionCreate {
	if v != nil {
		_c.SetPayerBankName(*v)
	}
	return _c
}

// SetTransactionID sets the "transaction_id" field.
func (_c *ReviewTransactionCreate) SetTransactionID(v string) *ReviewTransactionCreate {
	_c.mutation.SetTransactionID(v)
	return _c
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_c *ReviewTransactionCreate) SetNillableTransactionID(v *string) *ReviewTransactionCreate {
	if v != nil {
		_c.SetTransactionID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReviewTransactionCreate) SetStatus(v string) *ReviewTransactionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ReviewTransactionCreate) SetNotes(v string) *ReviewTransactionCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ReviewTransactionCreate) SetNillableNotes(v *string) *ReviewTransactionCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *ReviewTransactionCreate) SetRawText(v string) *ReviewTransactionCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *ReviewTransactionCreate) SetNillableRawText(v *string) *ReviewTransactionCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetExtractedJSON sets the "extracted_json" field.
func (_c *ReviewTransactionCreate) SetExtractedJSON(v map[string]interface{}) *ReviewTransactionCreate {
	_c.mutation.SetExtractedJSON(v)
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ReviewTransactionCreate) SetProcessedAt(v time.Time) *ReviewTransactionCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ReviewTransactionCreate) SetNillableProcessedAt(v *time.Time) *ReviewTransactionCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReviewTransactionCreate) SetCreatedAt(v time.Time) *ReviewTransactionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReviewTransactionCreate) SetNillableCreatedAt(v *time.Time) *ReviewTransactionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReviewTransactionCreate) SetUpdatedAt(v time.Time) *ReviewTransactionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReviewTransactionCreate) SetNillableUpdatedAt(v *time.Time) *ReviewTransactionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReviewTransactionCreate) SetID(v uuid.UUID) *ReviewTransactionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReviewTransactionCreate) SetNillableID(v *uuid.UUID) *ReviewTransactionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ReviewTransactionMutation object of the builder.
func (_c *ReviewTransactionCreate) Mutation() *ReviewTransactionMutation {
	return _c.mutation
}

// Save creates the ReviewTransaction in the database.
func (_c *ReviewTransactionCreate) Save(ctx context.Context) (*ReviewTransaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewTransactionCreate) SaveX(ctx context.Context) *ReviewTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewTransactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewTransactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewTransactionCreate) defaults() {
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		v := reviewtransaction.DefaultProcessedAt()
		_c.mutation.SetProcessedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reviewtransaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reviewtransaction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reviewtransaction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewTransactionCreate) check() error {
	if _, ok := _c.mutation.SourceFilename(); !ok {
		return &ValidationError{Name: "source_filename", err: errors.New(`ent: missing required field "ReviewTransaction.source_filename"`)}
	}
	if v, ok := _c.mutation.SourceFilename(); ok {
		if err := reviewtransaction.SourceFilenameValidator(v); err != nil {
			return &ValidationError{Name: "source_filename", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.source_filename": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PayerName(); ok {
		if err := reviewtransaction.PayerNameValidator(v); err != nil {
			return &ValidationError{Name: "payer_name", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.payer_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PayeeName(); ok {
		if err := reviewtransaction.PayeeNameValidator(v); err != nil {
			return &ValidationError{Name: "payee_name", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.payee_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PixKey(); ok {
		if err := reviewtransaction.PixKeyValidator(v); err != nil {
			return &ValidationError{Name: "pix_key", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.pix_key": %w`, err)}
		}
	}
	if v, ok := _c.mutation.KeyType(); ok {
		if err := reviewtransaction.KeyTypeValidator(v); err != nil {
			return &ValidationError{Name: "key_type", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.key_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TransferTime(); ok {
		if err := reviewtransaction.TransferTimeValidator(v); err != nil {
			return &ValidationError{Name: "transfer_time", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.transfer_time": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BankName(); ok {
		if err := reviewtransaction.BankNameValidator(v); err != nil {
			return &ValidationError{Name: "bank_name", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.bank_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PayerBankName(); ok {
		if err := reviewtransaction.PayerBankNameValidator(v); err != nil {
			return &ValidationError{Name: "payer_bank_name", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.payer_bank_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TransactionID(); ok {
		if err := reviewtransaction.TransactionIDValidator(v); err != nil {
			return &ValidationError{Name: "transaction_id", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.transaction_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ReviewTransaction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := reviewtransaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReviewTransaction.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		return &ValidationError{Name: "processed_at", err: errors.New(`ent: missing required field "ReviewTransaction.processed_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReviewTransaction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ReviewTransaction.updated_at"`)}
	}
	return nil
}

func (_c *ReviewTransactionCreate) sqlSave(ctx context.Context) (*ReviewTransaction, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewTransactionCreate) createSpec() (*ReviewTransaction, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewTransaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewtransaction.Table, sqlgraph.NewFieldSpec(reviewtransaction.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SourceFilename(); ok {
		_spec.SetField(reviewtransaction.FieldSourceFilename, field.TypeString, value)
		_node.SourceFilename = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(reviewtransaction.FieldAmount, field.TypeFloat64, value)
		_node.Amount = &value
	}
	if value, ok := _c.mutation.PayerName(); ok {
		_spec.SetField(reviewtransaction.FieldPayerName, field.TypeString, value)
		_node.PayerName = &value
	}
	if value, ok := _c.mutation.PayeeName(); ok {
		_spec.SetField(reviewtransaction.FieldPayeeName, field.TypeString, value)
		_node.PayeeName = &value
	}
	if value, ok := _c.mutation.PixKey(); ok {
		_spec.SetField(reviewtransaction.FieldPixKey, field.TypeString, value)
		_node.PixKey = &value
	}
	if value, ok := _c.mutation.KeyType(); ok {
		_spec.SetField(reviewtransaction.FieldKeyType, field.TypeString, value)
		_node.KeyType = &value
	}
	if value, ok := _c.mutation.TransferDate(); ok {
		_spec.SetField(reviewtransaction.FieldTransferDate, field.TypeTime, value)
		_node.TransferDate = &value
	}
	if value, ok := _c.mutation.TransferTime(); ok {
		_spec.SetField(reviewtransaction.FieldTransferTime, field.TypeString, value)
		_node.TransferTime = &value
	}
	if value, ok := _c.mutation.BankName(); ok {
		_spec.SetField(reviewtransaction.FieldBankName, field.TypeString, value)
		_node.BankName = &value
	}
	if value, ok := _c.mutation.PayerBankName(); ok {
		_spec.SetField(reviewtransaction.FieldPayerBankName, field.TypeString, value)
		_node.PayerBankName = &value
	}
	if value, ok := _c.mutation.TransactionID(); ok {
		_spec.SetField(reviewtransaction.FieldTransactionID, field.TypeString, value)
		_node.TransactionID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(reviewtransaction.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(reviewtransaction.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(reviewtransaction.FieldRawText, field.TypeString, value)
		_node.RawText = &value
	}
	if value, ok := _c.mutation.ExtractedJSON(); ok {
		_spec.SetField(reviewtransaction.FieldExtractedJSON, field.TypeJSON, value)
		_node.ExtractedJSON = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(reviewtransaction.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reviewtransaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewtransaction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ReviewTransactionCreateBulk is the builder for creating many ReviewTransaction entities in bulk.
type ReviewTransactionCreateBulk struct {
	config
	err      error
	builders []*ReviewTransactionCreate
}

// Save creates the ReviewTransaction entities in the database.
func (_c *ReviewTransactionCreateBulk) Save(ctx context.Context) ([]*ReviewTransaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewTransaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewTransactionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReviewTransactionCreateBulk) SaveX(ctx context.Context) []*ReviewTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewTransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewTransactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
