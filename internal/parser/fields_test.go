package parser

import "testing"

func TestMergeFirstWriterWins(t *testing.T) {
	first := Fields{
		BankName:  strPtr("Nubank"),
		PayerName: strPtr("João da Silva"),
	}
	second := Fields{
		BankName:      strPtr("Bradesco"),
		PayeeName:     strPtr("Maria Oliveira"),
		TransactionID: strPtr("ABC123DEF456"),
	}

	got := Merge(first, second)

	if got.BankName == nil || *got.BankName != "Nubank" {
		t.Errorf("BankName = %v, want Nubank (first writer)", got.BankName)
	}
	if got.PayerName == nil || *got.PayerName != "João da Silva" {
		t.Errorf("PayerName = %v, want João da Silva", got.PayerName)
	}
	if got.PayeeName == nil || *got.PayeeName != "Maria Oliveira" {
		t.Errorf("PayeeName = %v, want gap filled by second writer", got.PayeeName)
	}
	if got.TransactionID == nil || *got.TransactionID != "ABC123DEF456" {
		t.Errorf("TransactionID = %v, want gap filled by second writer", got.TransactionID)
	}
}

func TestMergeLeavesInputsUntouched(t *testing.T) {
	a := Fields{Amount: floatPtr(10)}
	b := Fields{Amount: floatPtr(20)}
	_ = Merge(a, b)
	if *a.Amount != 10 || *b.Amount != 20 {
		t.Errorf("Merge mutated its inputs: a=%v b=%v", *a.Amount, *b.Amount)
	}
}

func TestMergeEmpty(t *testing.T) {
	got := Merge()
	if got.Amount != nil || got.PayerName != nil || got.TransactionID != nil {
		t.Errorf("Merge() of nothing should be all nil, got %+v", got)
	}
}

func TestStrPtr(t *testing.T) {
	if strPtr("") != nil {
		t.Error("strPtr(\"\") should be nil")
	}
	if p := strPtr("x"); p == nil || *p != "x" {
		t.Error("strPtr(\"x\") should point at \"x\"")
	}
}
