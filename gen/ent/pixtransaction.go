// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/pix-tracker/gen/ent/pixtransaction"
)

// PixTransaction is the model entity for the PixTransaction schema.
type PixTransaction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SourceFilename holds the value of the "source_filename" field.
	SourceFilename string `json:"source_filename,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount *float64 `json:"amount,omitempty"`
	// PayerName holds the value of the "payer_name" field.
	PayerName *string `json:"payer_name,omitempty"`
	// PayeeName holds the value of the "payee_name" field.
	PayeeName *string `json:"payee_name,omitempty"`
	// PixKey holds the value of the "pix_key" field.
	PixKey *string `json:"pix_key,omitempty"`
	// KeyType holds the value of the "key_type" field.
	KeyType *string `json:"key_type,omitempty"`
	// TransferDate holds the value of the "transfer_date" field.
	TransferDate *time.Time `json:"transfer_date,omitempty"`
	// TransferTime holds the value of the "transfer_time" field.
	TransferTime *string `json:"transfer_time,omitempty"`
	// BankName holds the value of the "bank_name" field.
	BankName *string `json:"bank_name,omitempty"`
	// PayerBankName holds the value of the "payer_bank_name" field.
	PayerBankName *string `json:"payer_bank_name,omitempty"`
	// TransactionID holds the value of the "transaction_id" field.
	TransactionID *string `json:"transaction_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// ExtractedJSON holds the value of the "extracted_json" field.
	ExtractedJSON map[string]interface{} `json:"extracted_json,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt time.Time `json:"processed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PixTransaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pixtransaction.FieldExtractedJSON:
			values[i] = new([]byte)
		case pixtransaction.FieldAmount:
			values[i] = new(sql.NullFloat64)
		case pixtransaction.FieldSourceFilename, pixtransaction.FieldPayerName, pixtransaction.FieldPayeeName, pixtransaction.FieldPixKey, pixtransaction.FieldKeyType, pixtransaction.FieldTransferTime, pixtransaction.FieldBankName, pixtransaction.FieldPayerBankName, pixtransaction.FieldTransactionID, pixtransaction.FieldStatus, pixtransaction.FieldNotes:
			values[i] = new(sql.NullString)
		case pixtransaction.FieldTransferDate, pixtransaction.FieldProcessedAt, pixtransaction.FieldCreatedAt, pixtransaction.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case pixtransaction.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PixTransaction fields.
func (_m *PixTransaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pixtransaction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pixtransaction.FieldSourceFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_filename", values[i])
			} else if value.Valid {
				_m.SourceFilename = value.String
			}
		case pixtransaction.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = new(float64)
				*_m.Amount = value.Float64
			}
		case pixtransaction.FieldPayerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payer_name", values[i])
			} else if value.Valid {
				_m.PayerName = new(string)
				*_m.PayerName = value.String
			}
		case pixtransaction.FieldPayeeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payee_name", values[i])
			} else if value.Valid {
				_m.PayeeName = new(string)
				*_m.PayeeName = value.String
			}
		case pixtransaction.FieldPixKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pix_key", values[i])
			} else if value.Valid {
				_m.PixKey = new(string)
				*_m.PixKey = value.String
			}
		case pixtransaction.FieldKeyType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key_type", values[i])
			} else if value.Valid {
				_m.KeyType = new(string)
				*_m.KeyType = value.String
			}
		case pixtransaction.FieldTransferDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field transfer_date", values[i])
			} else if value.Valid {
				_m.TransferDate = new(time.Time)
				*_m.TransferDate = value.Time
			}
		case pixtransaction.FieldTransferTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transfer_time", values[i])
			} else if value.Valid {
				_m.TransferTime = new(string)
				*_m.TransferTime = value.String
			}
		case pixtransaction.FieldBankName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bank_name", values[i])
			} else if value.Valid {
				_m.BankName = new(string)
				*_m.BankName = value.String
			}
		case pixtransaction.FieldPayerBankName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payer_bank_name", values[i])
			} else if value.Valid {
				_m.PayerBankName = new(string)
				*_m.PayerBankName = value.String
			}
		case pixtransaction.FieldTransactionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_id", values[i])
			} else if value.Valid {
				_m.TransactionID = new(string)
				*_m.TransactionID = value.String
			}
		case pixtransaction.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case pixtransaction.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case pixtransaction.FieldExtractedJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedJSON); err != nil {
					return fmt.Errorf("unmarshal field extracted_json: %w", err)
				}
			}
		case pixtransaction.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = value.Time
			}
		case pixtransaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pixtransaction.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PixTransaction.
// This includes values selected through modifiers, order, etc.
func (_m *PixTransaction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PixTransaction.
// Note that you need to call PixTransaction.Unwrap() before calling this method if this PixTransaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PixTransaction) Update() *PixTransactionUpdateOne {
	return NewPixTransactionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PixTransaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PixTransaction) Unwrap() *PixTransaction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PixTransaction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PixTransaction) String() string {
	var builder strings.Builder
	builder.WriteString("PixTransaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_filename=")
	builder.WriteString(_m.SourceFilename)
	builder.WriteString(", ")
	if v := _m.Amount; v != nil {
		builder.WriteString("amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PayerName; v != nil {
		builder.WriteString("payer_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PayeeName; v != nil {
		builder.WriteString("payee_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PixKey; v != nil {
		builder.WriteString("pix_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.KeyType; v != nil {
		builder.WriteString("key_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TransferDate; v != nil {
		builder.WriteString("transfer_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TransferTime; v != nil {
		builder.WriteString("transfer_time=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BankName; v != nil {
		builder.WriteString("bank_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PayerBankName; v != nil {
		builder.WriteString("payer_bank_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TransactionID; v != nil {
		builder.WriteString("transaction_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("extracted_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedJSON))
	builder.WriteString(", ")
	builder.WriteString("processed_at=")
	builder.WriteString(_m.ProcessedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PixTransactions is a parsable slice of PixTransaction.
type PixTransactions []*PixTransaction
