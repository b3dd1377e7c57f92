// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/pix-tracker/gen/ent/pixtransaction"
	"github.com/joseph-ayodele/pix-tracker/gen/ent/predicate"
	"github.com/joseph-ayodele/pix-tracker/gen/ent/reviewtransaction"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypePixTransaction    = "PixTransaction"
	TypeReviewTransaction = "ReviewTransaction"
)

// PixTransactionMutation represents an operation that mutates the PixTransaction nodes in the graph.
type PixTransactionMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	source_filename *string
	amount          *float64
	addamount       *float64
	payer_name      *string
	payee_name      *string
	pix_key         *string
	key_type        *string
	transfer_date   *time.Time
	transfer_time   *string
	bank_name       *string
	payer_bank_name *string
	transaction_id  *string
	status          *string
	notes           *string
	extracted_json  *map[string]interface{}
	processed_at    *time.Time
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*PixTransaction, error)
	predicates      []predicate.PixTransaction
}

var _ ent.Mutation = (*PixTransactionMutation)(nil)

// pixtransactionOption allows management of the mutation configuration using functional options.
type pixtransactionOption func(*PixTransactionMutation)

// newPixTransactionMutation creates new mutation for the PixTransaction entity.
func newPixTransactionMutation(c config, op Op, opts ...pixtransactionOption) *PixTransactionMutation {
	m := &PixTransactionMutation{
		config:        c,
		op:            op,
		typ:           TypePixTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPixTransactionID sets the ID field of the mutation.
func withPixTransactionID(id uuid.UUID) pixtransactionOption {
	return func(m *PixTransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *PixTransaction
		)
		m.oldValue = func(ctx context.Context) (*PixTransaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PixTransaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPixTransaction sets the old PixTransaction of the mutation.
func withPixTransaction(node *PixTransaction) pixtransactionOption {
	return func(m *PixTransactionMutation) {
		m.oldValue = func(context.Context) (*PixTransaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PixTransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PixTransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PixTransaction entities.
func (m *PixTransactionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PixTransactionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PixTransactionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PixTransaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceFilename sets the "source_filename" field.
func (m *PixTransactionMutation) SetSourceFilename(s string) {
	m.source_filename = &s
}

// SourceFilename returns the value of the "source_filename" field in the mutation.
func (m *PixTransactionMutation) SourceFilename() (r string, exists bool) {
	v := m.source_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFilename returns the old "source_filename" field's value of the PixTransaction entity.
// If the PixTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PixTransactionMutation) OldSourceFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFilename: %w", err)
	}
	return oldValue.SourceFilename, nil
}

// ResetSourceFilename resets all changes to the "source_filename" field.
func (m *PixTransactionMutation) ResetSourceFilename() {
	m.source_filename = nil
}

// SetAmount sets the "amount" field.
func (m *PixTransactionMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *PixTransactionMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the PixTransaction entity.
// If the PixTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PixTransactionMutation) OldAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *PixTransactionMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *PixTransactionMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ClearAmount clears the value of the "amount" field.
func (m *PixTransactionMutation) ClearAmount() {
	m.amount = nil
	m.addamount = nil
	m.clearedFields[pixtransaction.FieldAmount] = struct{}{}
}

// AmountCleared returns if the "amount" field was cleared in this mutation.
func (m *PixTransactionMutation) AmountCleared() bool {
	_, ok := m.clearedFields[pixtransaction.FieldAmount]
	return ok
}

// ResetAmount resets all changes to the "amount" field.
func (m *PixTransactionMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
	delete(m.clearedFields, pixtransaction.FieldAmount)
}

// SetPayerName sets the "payer_name" field.
func (m *PixTransactionMutation) SetPayerName(s string) {
	m.payer_name = &s
}

// PayerName returns the value of the "payer_name" field in the mutation.
func (m *PixTransactionMutation) PayerName() (r string, exists bool) {
	v := m.payer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPayerName returns the old "payer_name" field's value of the PixTransaction entity.
// If the PixTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PixTransactionMutation) OldPayerName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayerName: %w", err)
	}
	return oldValue.PayerName, nil
}

// ClearPayerName clears the value of the "payer_name" field.
func (m *PixTransactionMutation) ClearPayerName() {
	m.payer_name = nil
	m.clearedFields[pixtransaction.FieldPayerName] = struct{}{}
}

// PayerNameCleared returns if the "payer_name" field was cleared in this mutation.
func (m *PixTransactionMutation) PayerNameCleared() bool {
	_, ok := m.clearedFields[pixtransaction.FieldPayerName]
	return ok
}

// ResetPayerName resets all changes to the "payer_name" field.
func (m *PixTransactionMutation) ResetPayerName() {
	m.payer_name = nil
	delete(m.clearedFields, pixtransaction.FieldPayerName)
}

// SetPayeeName sets the "payee_name" field.
func (m *PixTransactionMutation) SetPayeeName(s string) {
	m.payee_name = &s
}

// PayeeName returns the value of the "payee_name" field in the mutation.
func (m *PixTransactionMutation) PayeeName() (r string, exists bool) {
	v := m.payee_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPayeeName returns the old "payee_name" field's value of the PixTransaction entity.
// If the PixTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PixTransactionMutation) OldPayeeName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayeeName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayeeName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayeeName: %w", err)
	}
	return oldValue.PayeeName, nil
}

// ClearPayeeName clears the value of the "payee_name" field.
func (m *PixTransactionMutation) ClearPayeeName() {
	m.payee_name = nil
	m.clearedFields[pixtransaction.FieldPayeeName] = struct{}{}
}

// PayeeNameCleared returns if the "payee_name" field was cleared in this mutation.
func (m *PixTransactionMutation) PayeeNameCleared() bool {
	_, ok := m.clearedFields[pixtransaction.FieldPayeeName]
	return ok
}

// ResetPayeeName resets all changes to the "payee_name" field.
func (m *PixTransactionMutation) ResetPayeeName() {
	m.payee_name = nil
	delete(m.clearedFields, pixtransaction.FieldPayeeName)
}

// SetPixKey sets the "pix_key" field.
func (m *PixTransactionMutation) SetPixKey(s string) {
	m.pix_key = &s
}

// PixKey returns the value of the "pix_key" field in the mutation.
func (m *PixTransactionMutation) PixKey() (r string, exists bool) {
	v := m.pix_key
	if v == nil {
		return
	}
	return *v, true
}

// OldPixKey returns the old "pix_key" field's value of the PixTransaction entity.
// If the PixTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PixTransactionMutation) OldPixKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPixKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPixKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPixKey: %w", err)
	}
	return oldValue.PixKey, nil
}

// ClearPixKey clears the value of the "pix_key" field.
func (m *PixTransactionMutation) ClearPixKey() {
	m.pix_key = nil
	m.clearedFields[pixtransaction.FieldPixKey] = struct{}{}
}

// PixKeyCleared returns if the "pix_key" field was cleared in this mutation.
func (m *PixTransactionMutation) PixKeyCleared() bool {
	_, ok := m.clearedFields[pixtransaction.FieldPixKey]
	return ok
}

// ResetPixKey resets all changes to the "pix_key" field.
func (m *PixTransactionMutation) ResetPixKey() {
	m.pix_key = nil
	delete(m.clearedFields, pixtransaction.FieldPixKey)
}

// SetKeyType sets the "key_type" field.
func (m *PixTransactionMutation) SetKeyType(s string) {
	m.key_type = &s
}

// KeyType returns the value of the "key_type" field in the mutation.
func (m *PixTransactionMutation) KeyType() (r string, exists bool) {
	v := m.key_type
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyType returns the old "key_type" field's value of the PixTransaction entity.
// If the PixTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PixTransactionMutation) OldKeyType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyType: %w", err)
	}
	return oldValue.KeyType, nil
}

// ClearKeyType clears the value of the "key_type" field.
func (m *PixTransactionMutation) ClearKeyType() {
	m.key_type = nil
	m.clearedFields[pixtransaction.FieldKeyType] = struct{}{}
}

// KeyTypeCleared returns if the "key_type" field was cleared in this mutation.
func (m *PixTransactionMutation) KeyTypeCleared() bool {
	_, ok := m.clearedFields[pixtransaction.FieldKeyType]
	return ok
}

// ResetKeyType resets all changes to the "key_type" field.
func (m *PixTransactionMutation) ResetKeyType() {
	m.key_type = nil
	delete(m.clearedFields, pixtransaction.FieldKeyType)
}

// SetTransferDate sets the "transfer_date" field.
func (m *PixTransactionMutation) SetTransferDate(t time.Time) {
	m.transfer_date = &t
}

// TransferDate returns the value of the "transfer_date" field in the mutation.
func (m *PixTransactionMutation) TransferDate() (r time.Time, exists bool) {
	v := m.transfer_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTransferDate returns the old "transfer_date" field's value of the PixTransaction entity.
// If the PixTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PixTransactionMutation) OldTransferDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransferDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransferDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransferDate: %w", err)
	}
	return oldValue.TransferDate, nil
}

// ClearTransferDate clears the value of the "transfer_date" field.
func (m *PixTransactionMutation) ClearTransferDate() {
	m.transfer_date = nil
	m.clearedFields[pixtransaction.FieldTransferDate] = struct{}{}
}

// TransferDateCleared returns if the "transfer_date" field was cleared in this mutation.
func (m *PixTransactionMutation) TransferDateCleared() bool {
	_, ok := m.clearedFields[pixtransaction.FieldTransferDate]
	return ok
}

// ResetTransferDate resets all changes to the "transfer_date" field.
func (m *PixTransactionMutation) ResetTransferDate() {
	m.transfer_date = nil
	delete(m.clearedFields, pixtransaction.FieldTransferDate)
}

// SetTransferTime sets the "transfer_time" field.
func (m *PixTransactionMutation) SetTransferTime(s string) {
	m.transfer_time = &s
}

// TransferTime returns the value of the "transfer_time" field in the mutation.
func (m *PixTransactionMutation) TransferTime() (r string, exists bool) {
	v := m.transfer_time
	if v == nil {
		return
	}
	return *v, true
}

// OldTransferTime returns the old "transfer_time" field's value of the PixTransaction entity.
// If the PixTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PixTransactionMutation) OldTransferTime(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransferTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransferTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransferTime: %w", err)
	}
	return oldValue.TransferTime, nil
}

// ClearTransferTime clears the value of the "transfer_time" field.
func (m *PixTransactionMutation) ClearTransferTime() {
	m.transfer_time = nil
	m.clearedFields[pixtransaction.FieldTransferTime] = struct{}{}
}

// TransferTimeCleared returns if the "transfer_time" field was cleared in this mutation.
func (m *PixTransactionMutation) TransferTimeCleared() bool {
	_, ok := m.clearedFields[pixtransaction.FieldTransferTime]
	return ok
}

// ResetTransferTime resets all changes to the "transfer_time" field.
func (m *PixTransactionMutation) ResetTransferTime() {
	m.transfer_time = nil
	delete(m.clearedFields, pixtransaction.FieldTransferTime)
}

// SetBankName sets the "bank_name" field.
func (m *PixTransactionMutation) SetBankName(s string) {
	m.bank_name = &s
}

// BankName returns the value of the "bank_name" field in the mutation.
func (m *PixTransactionMutation) BankName() (r string, exists bool) {
	v := m.bank_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBankName returns the old "bank_name" field's value of the PixTransaction entity.
// If the PixTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PixTransactionMutation) OldBankName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBankName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBankName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBankName: %w", err)
	}
	return oldValue.BankName, nil
}

// ClearBankName clears the value of the "bank_name" field.
func (m *PixTransactionMutation) ClearBankName() {
	m.bank_name = nil
	m.clearedFields[pixtransaction.FieldBankName] = struct{}{}
}

// BankNameCleared returns if the "bank_name" field was cleared in this mutation.
func (m *PixTransactionMutation) BankNameCleared() bool {
	_, ok := m.clearedFields[pixtransaction.FieldBankName]
	return ok
}

// ResetBankName resets all changes to the "bank_name" field.
func (m *PixTransactionMutation) ResetBankName() {
	m.bank_name = nil
	delete(m.clearedFields, pixtransaction.FieldBankName)
}

// SetPayerBankName sets the "payer_bank_name" field.
func (m *PixTransactionMutation) SetPayerBankName(s string) {
	m.payer_bank_name = &s
}

// PayerBankName returns the value of the "payer_bank_name" field in the mutation.
func (m *PixTransactionMutation) PayerBankName() (r string, exists bool) {
	v := m.payer_bank_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPayerBankName returns the old "payer_bank_name" field's value of the PixTransaction entity.
// If the PixTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PixTransactionMutation) OldPayerBankName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayerBankName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayerBankName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayerBankName: %w", err)
	}
	return oldValue.PayerBankName, nil
}

// ClearPayerBankName clears the value of the "payer_bank_name" field.
func (m *PixTransactionMutation) ClearPayerBankName() {
	m.payer_bank_name = nil
	m.clearedFields[pixtransaction.FieldPayerBankName] = struct{}{}
}

// PayerBankNameCleared returns if the "payer_bank_name" field was cleared in this mutation.
func (m *PixTransactionMutation) PayerBankNameCleared() bool {
	_, ok := m.clearedFields[pixtransaction.FieldPayerBankName]
	return ok
}

// ResetPayerBankName resets all changes to the "payer_bank_name" field.
func (m *PixTransactionMutation) ResetPayerBankName() {
	m.payer_bank_name = nil
	delete(m.clearedFields, pixtransaction.FieldPayerBankName)
}

// SetTransactionID sets the "transaction_id" field.
func (m *PixTransactionMutation) SetTransactionID(s string) {
	m.transaction_id = &s
}

// TransactionID returns the value of the "transaction_id" field in the mutation.
func (m *PixTransactionMutation) TransactionID() (r string, exists bool) {
	v := m.transaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionID returns the old "transaction_id" field's value of the PixTransaction entity.
// If the PixTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PixTransactionMutation) OldTransactionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionID: %w", err)
	}
	return oldValue.TransactionID, nil
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (m *PixTransactionMutation) ClearTransactionID() {
	m.transaction_id = nil
	m.clearedFields[pixtransaction.FieldTransactionID] = struct{}{}
}

// TransactionIDCleared returns if the "transaction_id" field was cleared in this mutation.
func (m *PixTransactionMutation) TransactionIDCleared() bool {
	_, ok := m.clearedFields[pixtransaction.FieldTransactionID]
	return ok
}

// ResetTransactionID resets all changes to the "transaction_id" field.
func (m *PixTransactionMutation) ResetTransactionID() {
	m.transaction_id = nil
	delete(m.clearedFields, pixtransaction.FieldTransactionID)
}

// SetStatus sets the "status" field.
func (m *PixTransactionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PixTransactionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PixTransaction entity.
// If the PixTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PixTransactionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PixTransactionMutation) ResetStatus() {
	m.status = nil
}

// SetNotes sets the "notes" field.
func (m *PixTransactionMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *PixTransactionMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the PixTransaction entity.
// If the PixTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PixTransactionMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *PixTransactionMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[pixtransaction.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *PixTransactionMutation) NotesCleared() bool {
	_, ok := m.clearedFields[pixtransaction.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *PixTransactionMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, pixtransaction.FieldNotes)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *PixTransactionMutation) SetExtractedJSON(value map[string]interface{}) {
	m.extracted_json = &value
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *PixTransactionMutation) ExtractedJSON() (r map[string]interface{}, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the PixTransaction entity.
// If the PixTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PixTransactionMutation) OldExtractedJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *PixTransactionMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.clearedFields[pixtransaction.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *PixTransactionMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[pixtransaction.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *PixTransactionMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	delete(m.clearedFields, pixtransaction.FieldExtractedJSON)
}

// SetProcessedAt sets the "processed_at" field.
func (m *PixTransactionMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *PixTransactionMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the PixTransaction entity.
// If the PixTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PixTransactionMutation) OldProcessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *PixTransactionMutation) ResetProcessedAt() {
	m.processed_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PixTransactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PixTransactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PixTransaction entity.
// If the PixTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PixTransactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PixTransactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PixTransactionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PixTransactionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PixTransaction entity.
// If the PixTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PixTransactionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PixTransactionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PixTransactionMutation builder.
func (m *PixTransactionMutation) Where(ps ...predicate.PixTransaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PixTransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PixTransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PixTransaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PixTransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PixTransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PixTransaction).
func (m *PixTransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PixTransactionMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.source_filename != nil {
		fields = append(fields, pixtransaction.FieldSourceFilename)
	}
	if m.amount != nil {
		fields = append(fields, pixtransaction.FieldAmount)
	}
	if m.payer_name != nil {
		fields = append(fields, pixtransaction.FieldPayerName)
	}
	if m.payee_name != nil {
		fields = append(fields, pixtransaction.FieldPayeeName)
	}
	if m.pix_key != nil {
		fields = append(fields, pixtransaction.FieldPixKey)
	}
	if m.key_type != nil {
		fields = append(fields, pixtransaction.FieldKeyType)
	}
	if m.transfer_date != nil {
		fields = append(fields, pixtransaction.FieldTransferDate)
	}
	if m.transfer_time != nil {
		fields = append(fields, pixtransaction.FieldTransferTime)
	}
	if m.bank_name != nil {
		fields = append(fields, pixtransaction.FieldBankName)
	}
	if m.payer_bank_name != nil {
		fields = append(fields, pixtransaction.FieldPayerBankName)
	}
	if m.transaction_id != nil {
		fields = append(fields, pixtransaction.FieldTransactionID)
	}
	if m.status != nil {
		fields = append(fields, pixtransaction.FieldStatus)
	}
	if m.notes != nil {
		fields = append(fields, pixtransaction.FieldNotes)
	}
	if m.extracted_json != nil {
		fields = append(fields, pixtransaction.FieldExtractedJSON)
	}
	if m.processed_at != nil {
		fields = append(fields, pixtransaction.FieldProcessedAt)
	}
	if m.created_at != nil {
		fields = append(fields, pixtransaction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pixtransaction.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PixTransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pixtransaction.FieldSourceFilename:
		return m.SourceFilename()
	case pixtransaction.FieldAmount:
		return m.Amount()
	case pixtransaction.FieldPayerName:
		return m.PayerName()
	case pixtransaction.FieldPayeeName:
		return m.PayeeName()
	case pixtransaction.FieldPixKey:
		return m.PixKey()
	case pixtransaction.FieldKeyType:
		return m.KeyType()
	case pixtransaction.FieldTransferDate:
		return m.TransferDate()
	case pixtransaction.FieldTransferTime:
		return m.TransferTime()
	case pixtransaction.FieldBankName:
		return m.BankName()
	case pixtransaction.FieldPayerBankName:
		return m.PayerBankName()
	case pixtransaction.FieldTransactionID:
		return m.TransactionID()
	case pixtransaction.FieldStatus:
		return m.Status()
	case pixtransaction.FieldNotes:
		return m.Notes()
	case pixtransaction.FieldExtractedJSON:
		return m.ExtractedJSON()
	case pixtransaction.FieldProcessedAt:
		return m.ProcessedAt()
	case pixtransaction.FieldCreatedAt:
		return m.CreatedAt()
	case pixtransaction.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PixTransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pixtransaction.FieldSourceFilename:
		return m.OldSourceFilename(ctx)
	case pixtransaction.FieldAmount:
		return m.OldAmount(ctx)
	case pixtransaction.FieldPayerName:
		return m.OldPayerName(ctx)
	case pixtransaction.FieldPayeeName:
		return m.OldPayeeName(ctx)
	case pixtransaction.FieldPixKey:
		return m.OldPixKey(ctx)
	case pixtransaction.FieldKeyType:
		return m.OldKeyType(ctx)
	case pixtransaction.FieldTransferDate:
		return m.OldTransferDate(ctx)
	case pixtransaction.FieldTransferTime:
		return m.OldTransferTime(ctx)
	case pixtransaction.FieldBankName:
		return m.OldBankName(ctx)
	case pixtransaction.FieldPayerBankName:
		return m.OldPayerBankName(ctx)
	case pixtransaction.FieldTransactionID:
		return m.OldTransactionID(ctx)
	case pixtransaction.FieldStatus:
		return m.OldStatus(ctx)
	case pixtransaction.FieldNotes:
		return m.OldNotes(ctx)
	case pixtransaction.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case pixtransaction.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case pixtransaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pixtransaction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PixTransaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PixTransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pixtransaction.FieldSourceFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFilename(v)
		return nil
	case pixtransaction.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case pixtransaction.FieldPayerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayerName(v)
		return nil
	case pixtransaction.FieldPayeeName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayeeName(v)
		return nil
	case pixtransaction.FieldPixKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPixKey(v)
		return nil
	case pixtransaction.FieldKeyType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyType(v)
		return nil
	case pixtransaction.FieldTransferDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransferDate(v)
		return nil
	case pixtransaction.FieldTransferTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransferTime(v)
		return nil
	case pixtransaction.FieldBankName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBankName(v)
		return nil
	case pixtransaction.FieldPayerBankName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayerBankName(v)
		return nil
	case pixtransaction.FieldTransactionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionID(v)
		return nil
	case pixtransaction.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pixtransaction.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case pixtransaction.FieldExtractedJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case pixtransaction.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case pixtransaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pixtransaction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PixTransaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PixTransactionMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, pixtransaction.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PixTransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pixtransaction.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PixTransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pixtransaction.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown PixTransaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PixTransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pixtransaction.FieldAmount) {
		fields = append(fields, pixtransaction.FieldAmount)
	}
	if m.FieldCleared(pixtransaction.FieldPayerName) {
		fields = append(fields, pixtransaction.FieldPayerName)
	}
	if m.FieldCleared(pixtransaction.FieldPayeeName) {
		fields = append(fields, pixtransaction.FieldPayeeName)
	}
	if m.FieldCleared(pixtransaction.FieldPixKey) {
		fields = append(fields, pixtransaction.FieldPixKey)
	}
	if m.FieldCleared(pixtransaction.FieldKeyType) {
		fields = append(fields, pixtransaction.FieldKeyType)
	}
	if m.FieldCleared(pixtransaction.FieldTransferDate) {
		fields = append(fields, pixtransaction.FieldTransferDate)
	}
	if m.FieldCleared(pixtransaction.FieldTransferTime) {
		fields = append(fields, pixtransaction.FieldTransferTime)
	}
	if m.FieldCleared(pixtransaction.FieldBankName) {
		fields = append(fields, pixtransaction.FieldBankName)
	}
	if m.FieldCleared(pixtransaction.FieldPayerBankName) {
		fields = append(fields, pixtransaction.FieldPayerBankName)
	}
	if m.FieldCleared(pixtransaction.FieldTransactionID) {
		fields = append(fields, pixtransaction.FieldTransactionID)
	}
	if m.FieldCleared(pixtransaction.FieldNotes) {
		fields = append(fields, pixtransaction.FieldNotes)
	}
	if m.FieldCleared(pixtransaction.FieldExtractedJSON) {
		fields = append(fields, pixtransaction.FieldExtractedJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PixTransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PixTransactionMutation) ClearField(name string) error {
	switch name {
	case pixtransaction.FieldAmount:
		m.ClearAmount()
		return nil
	case pixtransaction.FieldPayerName:
		m.ClearPayerName()
		return nil
	case pixtransaction.FieldPayeeName:
		m.ClearPayeeName()
		return nil
	case pixtransaction.FieldPixKey:
		m.ClearPixKey()
		return nil
	case pixtransaction.FieldKeyType:
		m.ClearKeyType()
		return nil
	case pixtransaction.FieldTransferDate:
		m.ClearTransferDate()
		return nil
	case pixtransaction.FieldTransferTime:
		m.ClearTransferTime()
		return nil
	case pixtransaction.FieldBankName:
		m.ClearBankName()
		return nil
	case pixtransaction.FieldPayerBankName:
		m.ClearPayerBankName()
		return nil
	case pixtransaction.FieldTransactionID:
		m.ClearTransactionID()
		return nil
	case pixtransaction.FieldNotes:
		m.ClearNotes()
		return nil
	case pixtransaction.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	}
	return fmt.Errorf("unknown PixTransaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PixTransactionMutation) ResetField(name string) error {
	switch name {
	case pixtransaction.FieldSourceFilename:
		m.ResetSourceFilename()
		return nil
	case pixtransaction.FieldAmount:
		m.ResetAmount()
		return nil
	case pixtransaction.FieldPayerName:
		m.ResetPayerName()
		return nil
	case pixtransaction.FieldPayeeName:
		m.ResetPayeeName()
		return nil
	case pixtransaction.FieldPixKey:
		m.ResetPixKey()
		return nil
	case pixtransaction.FieldKeyType:
		m.ResetKeyType()
		return nil
	case pixtransaction.FieldTransferDate:
		m.ResetTransferDate()
		return nil
	case pixtransaction.FieldTransferTime:
		m.ResetTransferTime()
		return nil
	case pixtransaction.FieldBankName:
		m.ResetBankName()
		return nil
	case pixtransaction.FieldPayerBankName:
		m.ResetPayerBankName()
		return nil
	case pixtransaction.FieldTransactionID:
		m.ResetTransactionID()
		return nil
	case pixtransaction.FieldStatus:
		m.ResetStatus()
		return nil
	case pixtransaction.FieldNotes:
		m.ResetNotes()
		return nil
	case pixtransaction.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case pixtransaction.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case pixtransaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pixtransaction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PixTransaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PixTransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PixTransactionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PixTransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PixTransactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PixTransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PixTransactionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PixTransactionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PixTransaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PixTransactionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PixTransaction edge %s", name)
}

// ReviewTransactionMutation represents an operation that mutates the ReviewTransaction nodes in the graph.
type ReviewTransactionMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	source_filename *string
	amount          *float64
	addamount       *float64
	payer_name      *string
	payee_name      *string
	pix_key         *string
	key_type        *string
	transfer_date   *time.Time
	transfer_time   *string
	bank_name       *string
	payer_bank_name *string
	transaction_id  *string
	status          *string
	notes           *string
	raw_text        *string
	extracted_json  *map[string]interface{}
	processed_at    *time.Time
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ReviewTransaction, error)
	predicates      []predicate.ReviewTransaction
}

var _ ent.Mutation = (*ReviewTransactionMutation)(nil)

// reviewtransactionOption allows management of the mutation configuration using functional options.
type reviewtransactionOption func(*ReviewTransactionMutation)

// newReviewTransactionMutation creates new mutation for the ReviewTransaction entity.
func newReviewTransactionMutation(c config, op Op, opts ...reviewtransactionOption) *ReviewTransactionMutation {
	m := &ReviewTransactionMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewTransactionID sets the ID field of the mutation.
func withReviewTransactionID(id uuid.UUID) reviewtransactionOption {
	return func(m *ReviewTransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewTransaction
		)
		m.oldValue = func(ctx context.Context) (*ReviewTransaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewTransaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewTransaction sets the old ReviewTransaction of the mutation.
func withReviewTransaction(node *ReviewTransaction) reviewtransactionOption {
	return func(m *ReviewTransactionMutation) {
		m.oldValue = func(context.Context) (*ReviewTransaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewTransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewTransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReviewTransaction entities.
func (m *ReviewTransactionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewTransactionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewTransactionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewTransaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceFilename sets the "source_filename" field.
func (m *ReviewTransactionMutation) SetSourceFilename(s string) {
	m.source_filename = &s
}

// SourceFilename returns the value of the "source_filename" field in the mutation.
func (m *ReviewTransactionMutation) SourceFilename() (r string, exists bool) {
	v := m.source_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFilename returns the old "source_filename" field's value of the ReviewTransaction entity.
// If the ReviewTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewTransactionMutation) OldSourceFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFilename: %w", err)
	}
	return oldValue.SourceFilename, nil
}

// ResetSourceFilename resets all changes to the "source_filename" field.
func (m *ReviewTransactionMutation) ResetSourceFilename() {
	m.source_filename = nil
}

// SetAmount sets the "amount" field.
func (m *ReviewTransactionMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *ReviewTransactionMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the ReviewTransaction entity.
// If the ReviewTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewTransactionMutation) OldAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *ReviewTransactionMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *ReviewTransactionMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ClearAmount clears the value of the "amount" field.
func (m *ReviewTransactionMutation) ClearAmount() {
	m.amount = nil
	m.addamount = nil
	m.clearedFields[reviewtransaction.FieldAmount] = struct{}{}
}

// AmountCleared returns if the "amount" field was cleared in this mutation.
func (m *ReviewTransactionMutation) AmountCleared() bool {
	_, ok := m.clearedFields[reviewtransaction.FieldAmount]
	return ok
}

// ResetAmount resets all changes to the "amount" field.
func (m *ReviewTransactionMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
	delete(m.clearedFields, reviewtransaction.FieldAmount)
}

// SetPayerName sets the "payer_name" field.
func (m *ReviewTransactionMutation) SetPayerName(s string) {
	m.payer_name = &s
}

// PayerName returns the value of the "payer_name" field in the mutation.
func (m *ReviewTransactionMutation) PayerName() (r string, exists bool) {
	v := m.payer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPayerName returns the old "payer_name" field's value of the ReviewTransaction entity.
// If the ReviewTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewTransactionMutation) OldPayerName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayerName: %w", err)
	}
	return oldValue.PayerName, nil
}

// ClearPayerName clears the value of the "payer_name" field.
func (m *ReviewTransactionMutation) ClearPayerName() {
	m.payer_name = nil
	m.clearedFields[reviewtransaction.FieldPayerName] = struct{}{}
}

// PayerNameCleared returns if the "payer_name" field was cleared in this mutation.
func (m *ReviewTransactionMutation) PayerNameCleared() bool {
	_, ok := m.clearedFields[reviewtransaction.FieldPayerName]
	return ok
}

// ResetPayerName resets all changes to the "payer_name" field.
func (m *ReviewTransactionMutation) ResetPayerName() {
	m.payer_name = nil
	delete(m.clearedFields, reviewtransaction.FieldPayerName)
}

// SetPayeeName sets the "payee_name" field.
func (m *ReviewTransactionMutation) SetPayeeName(s string) {
	m.payee_name = &s
}

// PayeeName returns the value of the "payee_name" field in the mutation.
func (m *ReviewTransactionMutation) PayeeName() (r string, exists bool) {
	v := m.payee_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPayeeName returns the old "payee_name" field's value of the ReviewTransaction entity.
// If the ReviewTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewTransactionMutation) OldPayeeName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayeeName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayeeName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayeeName: %w", err)
	}
	return oldValue.PayeeName, nil
}

// ClearPayeeName clears the value of the "payee_name" field.
func (m *ReviewTransactionMutation) ClearPayeeName() {
	m.payee_name = nil
	m.clearedFields[reviewtransaction.FieldPayeeName] = struct{}{}
}

// PayeeNameCleared returns if the "payee_name" field was cleared in this mutation.
func (m *ReviewTransactionMutation) PayeeNameCleared() bool {
	_, ok := m.clearedFields[reviewtransaction.FieldPayeeName]
	return ok
}

// ResetPayeeName resets all changes to the "payee_name" field.
func (m *ReviewTransactionMutation) ResetPayeeName() {
	m.payee_name = nil
	delete(m.clearedFields, reviewtransaction.FieldPayeeName)
}

// SetPixKey sets the "pix_key" field.
func (m *ReviewTransactionMutation) SetPixKey(s string) {
	m.pix_key = &s
}

// PixKey returns the value of the "pix_key" field in the mutation.
func (m *ReviewTransactionMutation) PixKey() (r string, exists bool) {
	v := m.pix_key
	if v == nil {
		return
	}
	return *v, true
}

// OldPixKey returns the old "pix_key" field's value of the ReviewTransaction entity.
// If the ReviewTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewTransactionMutation) OldPixKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPixKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPixKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPixKey: %w", err)
	}
	return oldValue.PixKey, nil
}

// ClearPixKey clears the value of the "pix_key" field.
func (m *ReviewTransactionMutation) ClearPixKey() {
	m.pix_key = nil
	m.clearedFields[reviewtransaction.FieldPixKey] = struct{}{}
}

// PixKeyCleared returns if the "pix_key" field was cleared in this mutation.
func (m *ReviewTransactionMutation) PixKeyCleared() bool {
	_, ok := m.clearedFields[reviewtransaction.FieldPixKey]
	return ok
}

// ResetPixKey resets all changes to the "pix_key" field.
func (m *ReviewTransactionMutation) ResetPixKey() {
	m.pix_key = nil
	delete(m.clearedFields, reviewtransaction.FieldPixKey)
}

// SetKeyType sets the "key_type" field.
func (m *ReviewTransactionMutation) SetKeyType(s string) {
	m.key_type = &s
}

// KeyType returns the value of the "key_type" field in the mutation.
func (m *ReviewTransactionMutation) KeyType() (r string, exists bool) {
	v := m.key_type
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyType returns the old "key_type" field's value of the ReviewTransaction entity.
// If the ReviewTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewTransactionMutation) OldKeyType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyType: %w", err)
	}
	return oldValue.KeyType, nil
}

// ClearKeyType clears the value of the "key_type" field.
func (m *ReviewTransactionMutation) ClearKeyType() {
	m.key_type = nil
	m.clearedFields[reviewtransaction.FieldKeyType] = struct{}{}
}

// KeyTypeCleared returns if the "key_type" field was cleared in this mutation.
func (m *ReviewTransactionMutation) KeyTypeCleared() bool {
	_, ok := m.clearedFields[reviewtransaction.FieldKeyType]
	return ok
}

// ResetKeyType resets all changes to the "key_type" field.
func (m *ReviewTransactionMutation) ResetKeyType() {
	m.key_type = nil
	delete(m.clearedFields, reviewtransaction.FieldKeyType)
}

// SetTransferDate sets the "transfer_date" field.
func (m *ReviewTransactionMutation) SetTransferDate(t time.Time) {
	m.transfer_date = &t
}

// TransferDate returns the value of the "transfer_date" field in the mutation.
func (m *ReviewTransactionMutation) TransferDate() (r time.Time, exists bool) {
	v := m.transfer_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTransferDate returns the old "transfer_date" field's value of the ReviewTransaction entity.
// If the ReviewTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewTransactionMutation) OldTransferDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransferDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransferDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransferDate: %w", err)
	}
	return oldValue.TransferDate, nil
}

// ClearTransferDate clears the value of the "transfer_date" field.
func (m *ReviewTransactionMutation) ClearTransferDate() {
	m.transfer_date = nil
	m.clearedFields[reviewtransaction.FieldTransferDate] = struct{}{}
}

// TransferDateCleared returns if the "transfer_date" field was cleared in this mutation.
func (m *ReviewTransactionMutation) TransferDateCleared() bool {
	_, ok := m.clearedFields[reviewtransaction.FieldTransferDate]
	return ok
}

// ResetTransferDate resets all changes to the "transfer_date" field.
func (m *ReviewTransactionMutation) ResetTransferDate() {
	m.transfer_date = nil
	delete(m.clearedFields, reviewtransaction.FieldTransferDate)
}

// SetTransferTime sets the "transfer_time" field.
func (m *ReviewTransactionMutation) SetTransferTime(s string) {
	m.transfer_time = &s
}

// TransferTime returns the value of the "transfer_time" field in the mutation.
func (m *ReviewTransactionMutation) TransferTime() (r string, exists bool) {
	v := m.transfer_time
	if v == nil {
		return
	}
	return *v, true
}

// OldTransferTime returns the old "transfer_time" field's value of the ReviewTransaction entity.
// If the ReviewTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewTransactionMutation) OldTransferTime(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransferTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransferTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransferTime: %w", err)
	}
	return oldValue.TransferTime, nil
}

// ClearTransferTime clears the value of the "transfer_time" field.
func (m *ReviewTransactionMutation) ClearTransferTime() {
	m.transfer_time = nil
	m.clearedFields[reviewtransaction.FieldTransferTime] = struct{}{}
}

// TransferTimeCleared returns if the "transfer_time" field was cleared in this mutation.
func (m *ReviewTransactionMutation) TransferTimeCleared() bool {
	_, ok := m.clearedFields[reviewtransaction.FieldTransferTime]
	return ok
}

// ResetTransferTime resets all changes to the "transfer_time" field.
func (m *ReviewTransactionMutation) ResetTransferTime() {
	m.transfer_time = nil
	delete(m.clearedFields, reviewtransaction.FieldTransferTime)
}

// SetBankName sets the "bank_name" field.
func (m *ReviewTransactionMutation) SetBankName(s string) {
	m.bank_name = &s
}

// BankName returns the value of the "bank_name" field in the mutation.
func (m *ReviewTransactionMutation) BankName() (r string, exists bool) {
	v := m.bank_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBankName returns the old "bank_name" field's value of the ReviewTransaction entity.
// If the ReviewTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewTransactionMutation) OldBankName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBankName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBankName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBankName: %w", err)
	}
	return oldValue.BankName, nil
}

// ClearBankName clears the value of the "bank_name" field.
func (m *ReviewTransactionMutation) ClearBankName() {
	m.bank_name = nil
	m.clearedFields[reviewtransaction.FieldBankName] = struct{}{}
}

// BankNameCleared returns if the "bank_name" field was cleared in this mutation.
func (m *ReviewTransactionMutation) BankNameCleared() bool {
	_, ok := m.clearedFields[reviewtransaction.FieldBankName]
	return ok
}

// ResetBankName resets all changes to the "bank_name" field.
func (m *ReviewTransactionMutation) ResetBankName() {
	m.bank_name = nil
	delete(m.clearedFields, reviewtransaction.FieldBankName)
}

// SetPayerBankName sets the "payer_bank_name" field.
func (m *ReviewTransactionMutation) SetPayerBankName(s string) {
	m.payer_bank_name = &s
}

// PayerBankName returns the value of the "payer_bank_name" field in the mutation.
func (m *ReviewTransactionMutation) PayerBankName() (r string, exists bool) {
	v := m.payer_bank_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPayerBankName returns the old "payer_bank_name" field's value of the ReviewTransaction entity.
// If the ReviewTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewTransactionMutation) OldPayerBankName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayerBankName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayerBankName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayerBankName: %w", err)
	}
	return oldValue.PayerBankName, nil
}

// ClearPayerBankName clears the value of the "payer_bank_name" field.
func (m *ReviewTransactionMutation) ClearPayerBankName() {
	m.payer_bank_name = nil
	m.clearedFields[reviewtransaction.FieldPayerBankName] = struct{}{}
}

// PayerBankNameCleared returns if the "payer_bank_name" field was cleared in this mutation.
func (m *ReviewTransactionMutation) PayerBankNameCleared() bool {
	_, ok := m.clearedFields[reviewtransaction.FieldPayerBankName]
	return ok
}

// ResetPayerBankName resets all changes to the "payer_bank_name" field.
func (m *ReviewTransactionMutation) ResetPayerBankName() {
	m.payer_bank_name = nil
	delete(m.clearedFields, reviewtransaction.FieldPayerBankName)
}

// SetTransactionID sets the "transaction_id" field.
func (m *ReviewTransactionMutation) SetTransactionID(s string) {
	m.transaction_id = &s
}

// TransactionID returns the value of the "transaction_id" field in the mutation.
func (m *ReviewTransactionMutation) TransactionID() (r string, exists bool) {
	v := m.transaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionID returns the old "transaction_id" field's value of the ReviewTransaction entity.
// If the ReviewTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewTransactionMutation) OldTransactionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionID: %w", err)
	}
	return oldValue.TransactionID, nil
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (m *ReviewTransactionMutation) ClearTransactionID() {
	m.transaction_id = nil
	m.clearedFields[reviewtransaction.FieldTransactionID] = struct{}{}
}

// TransactionIDCleared returns if the "transaction_id" field was cleared in this mutation.
func (m *ReviewTransactionMutation) TransactionIDCleared() bool {
	_, ok := m.clearedFields[reviewtransaction.FieldTransactionID]
	return ok
}

// ResetTransactionID resets all changes to the "transaction_id" field.
func (m *ReviewTransactionMutation) ResetTransactionID() {
	m.transaction_id = nil
	delete(m.clearedFields, reviewtransaction.FieldTransactionID)
}

// SetStatus sets the "status" field.
func (m *ReviewTransactionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ReviewTransactionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ReviewTransaction entity.
// If the ReviewTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewTransactionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReviewTransactionMutation) ResetStatus() {
	m.status = nil
}

// SetNotes sets the "notes" field.
func (m *ReviewTransactionMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *ReviewTransactionMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the ReviewTransaction entity.
// If the ReviewTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewTransactionMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *ReviewTransactionMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[reviewtransaction.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *ReviewTransactionMutation) NotesCleared() bool {
	_, ok := m.clearedFields[reviewtransaction.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *ReviewTransactionMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, reviewtransaction.FieldNotes)
}

// SetRawText sets the "raw_text" field.
func (m *ReviewTransactionMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ReviewTransactionMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the ReviewTransaction entity.
// If the ReviewTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewTransactionMutation) OldRawText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *ReviewTransactionMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[reviewtransaction.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *ReviewTransactionMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[reviewtransaction.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ReviewTransactionMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, reviewtransaction.FieldRawText)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *ReviewTransactionMutation) SetExtractedJSON(value map[string]interface{}) {
	m.extracted_json = &value
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *ReviewTransactionMutation) ExtractedJSON() (r map[string]interface{}, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the ReviewTransaction entity.
// If the ReviewTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewTransactionMutation) OldExtractedJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *ReviewTransactionMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.clearedFields[reviewtransaction.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *ReviewTransactionMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[reviewtransaction.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *ReviewTransactionMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	delete(m.clearedFields, reviewtransaction.FieldExtractedJSON)
}

// SetProcessedAt sets the "processed_at" field.
func (m *ReviewTransactionMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *ReviewTransactionMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the ReviewTransaction entity.
// If the ReviewTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewTransactionMutation) OldProcessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *ReviewTransactionMutation) ResetProcessedAt() {
	m.processed_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReviewTransactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReviewTransactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReviewTransaction entity.
// If the ReviewTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewTransactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReviewTransactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReviewTransactionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReviewTransactionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ReviewTransaction entity.
// If the ReviewTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewTransactionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReviewTransactionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ReviewTransactionMutation builder.
func (m *ReviewTransactionMutation) Where(ps ...predicate.ReviewTransaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewTransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewTransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewTransaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewTransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewTransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewTransaction).
func (m *ReviewTransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewTransactionMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.source_filename != nil {
		fields = append(fields, reviewtransaction.FieldSourceFilename)
	}
	if m.amount != nil {
		fields = append(fields, reviewtransaction.FieldAmount)
	}
	if m.payer_name != nil {
		fields = append(fields, reviewtransaction.FieldPayerName)
	}
	if m.payee_name != nil {
		fields = append(fields, reviewtransaction.FieldPayeeName)
	}
	if m.pix_key != nil {
		fields = append(fields, reviewtransaction.FieldPixKey)
	}
	if m.key_type != nil {
		fields = append(fields, reviewtransaction.FieldKeyType)
	}
	if m.transfer_date != nil {
		fields = append(fields, reviewtransaction.FieldTransferDate)
	}
	if m.transfer_time != nil {
		fields = append(fields, reviewtransaction.FieldTransferTime)
	}
	if m.bank_name != nil {
		fields = append(fields, reviewtransaction.FieldBankName)
	}
	if m.payer_bank_name != nil {
		fields = append(fields, reviewtransaction.FieldPayerBankName)
	}
	if m.transaction_id != nil {
		fields = append(fields, reviewtransaction.FieldTransactionID)
	}
	if m.status != nil {
		fields = append(fields, reviewtransaction.FieldStatus)
	}
	if m.notes != nil {
		fields = append(fields, reviewtransaction.FieldNotes)
	}
	if m.raw_text != nil {
		fields = append(fields, reviewtransaction.FieldRawText)
	}
	if m.extracted_json != nil {
		fields = append(fields, reviewtransaction.FieldExtractedJSON)
	}
	if m.processed_at != nil {
		fields = append(fields, reviewtransaction.FieldProcessedAt)
	}
	if m.created_at != nil {
		fields = append(fields, reviewtransaction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, reviewtransaction.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewTransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewtransaction.FieldSourceFilename:
		return m.SourceFilename()
	case reviewtransaction.FieldAmount:
		return m.Amount()
	case reviewtransaction.FieldPayerName:
		return m.PayerName()
	case reviewtransaction.FieldPayeeName:
		return m.PayeeName()
	case reviewtransaction.FieldPixKey:
		return m.PixKey()
	case reviewtransaction.FieldKeyType:
		return m.KeyType()
	case reviewtransaction.FieldTransferDate:
		return m.TransferDate()
	case reviewtransaction.FieldTransferTime:
		return m.TransferTime()
	case reviewtransaction.FieldBankName:
		return m.BankName()
	case reviewtransaction.FieldPayerBankName:
		return m.PayerBankName()
	case reviewtransaction.FieldTransactionID:
		return m.TransactionID()
	case reviewtransaction.FieldStatus:
		return m.Status()
	case reviewtransaction.FieldNotes:
		return m.Notes()
	case reviewtransaction.FieldRawText:
		return m.RawText()
	case reviewtransaction.FieldExtractedJSON:
		return m.ExtractedJSON()
	case reviewtransaction.FieldProcessedAt:
		return m.ProcessedAt()
	case reviewtransaction.FieldCreatedAt:
		return m.CreatedAt()
	case reviewtransaction.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewTransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewtransaction.FieldSourceFilename:
		return m.OldSourceFilename(ctx)
	case reviewtransaction.FieldAmount:
		return m.OldAmount(ctx)
	case reviewtransaction.FieldPayerName:
		return m.OldPayerName(ctx)
	case reviewtransaction.FieldPayeeName:
		return m.OldPayeeName(ctx)
	case reviewtransaction.FieldPixKey:
		return m.OldPixKey(ctx)
	case reviewtransaction.FieldKeyType:
		return m.OldKeyType(ctx)
	case reviewtransaction.FieldTransferDate:
		return m.OldTransferDate(ctx)
	case reviewtransaction.FieldTransferTime:
		return m.OldTransferTime(ctx)
	case reviewtransaction.FieldBankName:
		return m.OldBankName(ctx)
	case reviewtransaction.FieldPayerBankName:
		return m.OldPayerBankName(ctx)
	case reviewtransaction.FieldTransactionID:
		return m.OldTransactionID(ctx)
	case reviewtransaction.FieldStatus:
		return m.OldStatus(ctx)
	case reviewtransaction.FieldNotes:
		return m.OldNotes(ctx)
	case reviewtransaction.FieldRawText:
		return m.OldRawText(ctx)
	case reviewtransaction.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case reviewtransaction.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case reviewtransaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reviewtransaction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewTransaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewTransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewtransaction.FieldSourceFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFilename(v)
		return nil
	case reviewtransaction.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case reviewtransaction.FieldPayerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayerName(v)
		return nil
	case reviewtransaction.FieldPayeeName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayeeName(v)
		return nil
	case reviewtransaction.FieldPixKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPixKey(v)
		return nil
	case reviewtransaction.FieldKeyType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyType(v)
		return nil
	case reviewtransaction.FieldTransferDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransferDate(v)
		return nil
	case reviewtransaction.FieldTransferTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransferTime(v)
		return nil
	case reviewtransaction.FieldBankName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBankName(v)
		return nil
	case reviewtransaction.FieldPayerBankName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayerBankName(v)
		return nil
	case reviewtransaction.FieldTransactionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionID(v)
		return nil
	case reviewtransaction.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case reviewtransaction.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case reviewtransaction.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case reviewtransaction.FieldExtractedJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case reviewtransaction.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case reviewtransaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reviewtransaction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewTransaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewTransactionMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, reviewtransaction.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewTransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewtransaction.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewTransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewtransaction.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewTransaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewTransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reviewtransaction.FieldAmount) {
		fields = append(fields, reviewtransaction.FieldAmount)
	}
	if m.FieldCleared(reviewtransaction.FieldPayerName) {
		fields = append(fields, reviewtransaction.FieldPayerName)
	}
	if m.FieldCleared(reviewtransaction.FieldPayeeName) {
		fields = append(fields, reviewtransaction.FieldPayeeName)
	}
	if m.FieldCleared(reviewtransaction.FieldPixKey) {
		fields = append(fields, reviewtransaction.FieldPixKey)
	}
	if m.FieldCleared(reviewtransaction.FieldKeyType) {
		fields = append(fields, reviewtransaction.FieldKeyType)
	}
	if m.FieldCleared(reviewtransaction.FieldTransferDate) {
		fields = append(fields, reviewtransaction.FieldTransferDate)
	}
	if m.FieldCleared(reviewtransaction.FieldTransferTime) {
		fields = append(fields, reviewtransaction.FieldTransferTime)
	}
	if m.FieldCleared(reviewtransaction.FieldBankName) {
		fields = append(fields, reviewtransaction.FieldBankName)
	}
	if m.FieldCleared(reviewtransaction.FieldPayerBankName) {
		fields = append(fields, reviewtransaction.FieldPayerBankName)
	}
	if m.FieldCleared(reviewtransaction.FieldTransactionID) {
		fields = append(fields, reviewtransaction.FieldTransactionID)
	}
	if m.FieldCleared(reviewtransaction.FieldNotes) {
		fields = append(fields, reviewtransaction.FieldNotes)
	}
	if m.FieldCleared(reviewtransaction.FieldRawText) {
		fields = append(fields, reviewtransaction.FieldRawText)
	}
	if m.FieldCleared(reviewtransaction.FieldExtractedJSON) {
		fields = append(fields, reviewtransaction.FieldExtractedJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewTransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewTransactionMutation) ClearField(name string) error {
	switch name {
	case reviewtransaction.FieldAmount:
		m.ClearAmount()
		return nil
	case reviewtransaction.FieldPayerName:
		m.ClearPayerName()
		return nil
	case reviewtransaction.FieldPayeeName:
		m.ClearPayeeName()
		return nil
	case reviewtransaction.FieldPixKey:
		m.ClearPixKey()
		return nil
	case reviewtransaction.FieldKeyType:
		m.ClearKeyType()
		return nil
	case reviewtransaction.FieldTransferDate:
		m.ClearTransferDate()
		return nil
	case reviewtransaction.FieldTransferTime:
		m.ClearTransferTime()
		return nil
	case reviewtransaction.FieldBankName:
		m.ClearBankName()
		return nil
	case reviewtransaction.FieldPayerBankName:
		m.ClearPayerBankName()
		return nil
	case reviewtransaction.FieldTransactionID:
		m.ClearTransactionID()
		return nil
	case reviewtransaction.FieldNotes:
		m.ClearNotes()
		return nil
	case reviewtransaction.FieldRawText:
		m.ClearRawText()
		return nil
	case reviewtransaction.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	}
	return fmt.Errorf("unknown ReviewTransaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewTransactionMutation) ResetField(name string) error {
	switch name {
	case reviewtransaction.FieldSourceFilename:
		m.ResetSourceFilename()
		return nil
	case reviewtransaction.FieldAmount:
		m.ResetAmount()
		return nil
	case reviewtransaction.FieldPayerName:
		m.ResetPayerName()
		return nil
	case reviewtransaction.FieldPayeeName:
		m.ResetPayeeName()
		return nil
	case reviewtransaction.FieldPixKey:
		m.ResetPixKey()
		return nil
	case reviewtransaction.FieldKeyType:
		m.ResetKeyType()
		return nil
	case reviewtransaction.FieldTransferDate:
		m.ResetTransferDate()
		return nil
	case reviewtransaction.FieldTransferTime:
		m.ResetTransferTime()
		return nil
	case reviewtransaction.FieldBankName:
		m.ResetBankName()
		return nil
	case reviewtransaction.FieldPayerBankName:
		m.ResetPayerBankName()
		return nil
	case reviewtransaction.FieldTransactionID:
		m.ResetTransactionID()
		return nil
	case reviewtransaction.FieldStatus:
		m.ResetStatus()
		return nil
	case reviewtransaction.FieldNotes:
		m.ResetNotes()
		return nil
	case reviewtransaction.FieldRawText:
		m.ResetRawText()
		return nil
	case reviewtransaction.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case reviewtransaction.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case reviewtransaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reviewtransaction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReviewTransaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewTransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewTransactionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewTransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewTransactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewTransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewTransactionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewTransactionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewTransaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewTransactionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewTransaction edge %s", name)
}
