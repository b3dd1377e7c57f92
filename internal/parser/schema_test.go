package parser

import (
	"testing"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

func TestMarshalAuditValidatesAgainstSchema(t *testing.T) {
	kt := constants.KeyTypeEmail
	res := Result{
		Fields: Fields{
			Amount:        floatPtr(150.00),
			PayerName:     strPtr("João da Silva"),
			PayeeName:     strPtr("Maria Oliveira"),
			PixKey:        strPtr("maria@example.com"),
			KeyType:       &kt,
			TransferDate:  strPtr("20/11/2023"),
			TransferTime:  strPtr("10:30"),
			BankName:      strPtr(constants.BankNubank),
			TransactionID: strPtr("EBC1234567890"),
		},
		Status:         constants.TxStatusProcessed,
		SourceFilename: "nubank_20-11-2023.pdf",
	}

	data, err := MarshalAudit(res)
	if err != nil {
		t.Fatalf("MarshalAudit: %v", err)
	}
	if err := ValidateJSONAgainstSchema(BuildTransactionJSONSchema(), data); err != nil {
		t.Fatalf("audit record does not validate: %v", err)
	}
}

func TestMarshalAuditSparseRecordValidates(t *testing.T) {
	res := Result{
		Status:         constants.TxStatusManualReview,
		SourceFilename: "IMG_0042.jpeg",
	}
	data, err := MarshalAudit(res)
	if err != nil {
		t.Fatalf("MarshalAudit: %v", err)
	}
	if err := ValidateJSONAgainstSchema(BuildTransactionJSONSchema(), data); err != nil {
		t.Fatalf("sparse audit record does not validate: %v", err)
	}
}

func TestValidateRejectsBadStatus(t *testing.T) {
	bad := []byte(`{"status":"NOT_A_STATUS","source_filename":"x.pdf"}`)
	if err := ValidateJSONAgainstSchema(BuildTransactionJSONSchema(), bad); err == nil {
		t.Fatal("expected validation error for unknown status")
	}
}
