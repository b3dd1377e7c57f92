package entity

import (
	"time"

	"github.com/google/uuid"
)

// PixTransaction represents an extracted transfer record for data transfer
// between layers. The same shape serves both the processed store and the
// review store; RawText is only populated for review records.
type PixTransaction struct {
	ID             uuid.UUID              `json:"id"`
	SourceFilename string                 `json:"source_filename"`
	Amount         *float64               `json:"amount,omitempty"`
	PayerName      *string                `json:"payer_name,omitempty"`
	PayeeName      *string                `json:"payee_name,omitempty"`
	PixKey         *string                `json:"pix_key,omitempty"`
	KeyType        *string                `json:"key_type,omitempty"`
	TransferDate   *time.Time             `json:"transfer_date,omitempty"`
	TransferTime   *string                `json:"transfer_time,omitempty"`
	BankName       *string                `json:"bank_name,omitempty"`
	PayerBankName  *string                `json:"payer_bank_name,omitempty"`
	TransactionID  *string                `json:"transaction_id,omitempty"`
	Status         string                 `json:"status"`
	Notes          *string                `json:"notes,omitempty"`
	RawText        *string                `json:"raw_text,omitempty"`
	ExtractedJSON  map[string]interface{} `json:"extracted_json,omitempty"`
	ProcessedAt    time.Time              `json:"processed_at"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}
