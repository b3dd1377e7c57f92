package parser

import "testing"

func TestParseBRL(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"150,00", 150.00, true},
		{"1.234,56", 1234.56, true},
		{"50", 50, true},
		{"1.000.000,99", 1000000.99, true},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseBRL(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseBRL(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
		none bool
	}{
		{"labeled valor", "Valor: R$ 150,00", 150.00, false},
		{"pago prefix", "pago R$ 89,90 em 20/11/2023", 89.90, false},
		{"bare currency sign", "transferido R$ 1.234,56 para maria", 1234.56, false},
		{"reais suffix", "o valor de 75,50 reais foi enviado", 75.50, false},
		{"valor without sign", "valor 320,00 conta corrente", 320.00, false},
		{"currency sign beats reais", "R$ 10,00 equivalente a 99,99 reais", 10.00, false},
		{"nothing", "comprovante de transferência", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractAmount(tt.text)
			if tt.none {
				if got != nil {
					t.Fatalf("ExtractAmount(%q) = %v, want nil", tt.text, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ExtractAmount(%q) = nil, want %v", tt.text, tt.want)
			}
			if *got != tt.want {
				t.Errorf("ExtractAmount(%q) = %v, want %v", tt.text, *got, tt.want)
			}
		})
	}
}
