package parser

import (
	"encoding/json"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

// BuildTransactionJSONSchema returns a JSON-Schema (draft 2020-12 subset) as
// a generic map. Extracted records are validated against it before being
// written to the audit column, catching extractor regressions at the edge.
func BuildTransactionJSONSchema() map[string]any {
	props := map[string]any{
		"amount":          map[string]any{"type": []string{"number", "null"}, "minimum": 0.0},
		"payer_name":      nullableString(),
		"payee_name":      nullableString(),
		"pix_key":         nullableString(),
		"key_type":        map[string]any{"type": []string{"string", "null"}, "enum": keyTypeEnum()},
		"transfer_date":   map[string]any{"type": []string{"string", "null"}, "pattern": `^\d{2}/\d{2}/\d{4}$`},
		"transfer_time":   map[string]any{"type": []string{"string", "null"}, "pattern": `^\d{1,2}:\d{2}(:\d{2})?$`},
		"bank_name":       nullableString(),
		"payer_bank_name": nullableString(),
		"transaction_id":  nullableString(),
		"notes":           nullableString(),
		"status": map[string]any{
			"type": "string",
			"enum": []string{
				string(constants.TxStatusProcessed),
				string(constants.TxStatusManualReview),
				string(constants.TxStatusError),
			},
		},
		"source_filename": map[string]any{"type": "string", "minLength": 1},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"status", "source_filename"},
	}
}

func nullableString() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}

func keyTypeEnum() []any {
	out := make([]any, 0, len(constants.KeyTypesAsStringSlice())+1)
	for _, kt := range constants.KeyTypesAsStringSlice() {
		out = append(out, kt)
	}
	return append(out, nil)
}

type auditRecord struct {
	Amount         *float64           `json:"amount"`
	PayerName      *string            `json:"payer_name"`
	PayeeName      *string            `json:"payee_name"`
	PixKey         *string            `json:"pix_key"`
	KeyType        *constants.KeyType `json:"key_type"`
	TransferDate   *string            `json:"transfer_date"`
	TransferTime   *string            `json:"transfer_time"`
	BankName       *string            `json:"bank_name"`
	PayerBankName  *string            `json:"payer_bank_name"`
	TransactionID  *string            `json:"transaction_id"`
	Notes          *string            `json:"notes"`
	Status         string             `json:"status"`
	SourceFilename string             `json:"source_filename"`
}

// MarshalAudit serializes a parse result into the canonical JSON stored in
// the extracted_json column.
func MarshalAudit(res Result) ([]byte, error) {
	return json.Marshal(auditRecord{
		Amount:         res.Fields.Amount,
		PayerName:      res.Fields.PayerName,
		PayeeName:      res.Fields.PayeeName,
		PixKey:         res.Fields.PixKey,
		KeyType:        res.Fields.KeyType,
		TransferDate:   res.Fields.TransferDate,
		TransferTime:   res.Fields.TransferTime,
		BankName:       res.Fields.BankName,
		PayerBankName:  res.Fields.PayerBankName,
		TransactionID:  res.Fields.TransactionID,
		Notes:          res.Fields.Notes,
		Status:         string(res.Status),
		SourceFilename: res.SourceFilename,
	})
}
