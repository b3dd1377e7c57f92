package parser

import "testing"

func TestExtractFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantDate string
		wantTime string
		wantBank string
	}{
		{
			"iso date with time",
			"Sicoob_2025-10-15_17-40-26.pdf",
			"15/10/2025", "17:40:26", "Sicoob",
		},
		{
			"brazilian date order",
			"comprovante_20-11-2023.jpg",
			"20/11/2023", "", "",
		},
		{
			"long portuguese date",
			"Comprovante 5 de março de 2024 nubank.png",
			"05/03/2024", "", "Nubank",
		},
		{
			"no recognizable tokens",
			"IMG_0042.jpeg",
			"", "", "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ExtractFromFilename(tt.filename)
			checkOptStr(t, "TransferDate", f.TransferDate, tt.wantDate)
			checkOptStr(t, "TransferTime", f.TransferTime, tt.wantTime)
			checkOptStr(t, "BankName", f.BankName, tt.wantBank)
		})
	}
}

func TestExtractFromFilenameAmount(t *testing.T) {
	f := ExtractFromFilename("pix R$ 1.250,00 15-01-2024.pdf")
	if f.Amount == nil || *f.Amount != 1250.00 {
		t.Fatalf("Amount = %v, want 1250.00", f.Amount)
	}
	checkOptStr(t, "TransferDate", f.TransferDate, "15/01/2024")
}

func TestExtractFromFilenameDateDoesNotShadowTime(t *testing.T) {
	f := ExtractFromFilename("recibo_2024-03-05_08-30-00.png")
	checkOptStr(t, "TransferDate", f.TransferDate, "05/03/2024")
	checkOptStr(t, "TransferTime", f.TransferTime, "08:30:00")
}

func checkOptStr(t *testing.T, field string, got *string, want string) {
	t.Helper()
	if want == "" {
		if got != nil {
			t.Errorf("%s = %q, want nil", field, *got)
		}
		return
	}
	if got == nil {
		t.Errorf("%s = nil, want %q", field, want)
		return
	}
	if *got != want {
		t.Errorf("%s = %q, want %q", field, *got, want)
	}
}
