package parser

import (
	"testing"

	"github.com/joseph-ayodele/pix-tracker/constants"
)

func TestIsPlausibleKey(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"cpf plain digits", "12345678901", true},
		{"cpf dotted", "123.456.789-01", true},
		{"cnpj plain digits", "12345678000195", true},
		{"cnpj punctuated", "12.345.678/0001-95", true},
		{"email", "maria.oliveira@example.com", true},
		{"phone", "+55 11 91234 5678", true},
		{"phone compact", "+5511912345678", true},
		{"uuid", "123e4567-e89b-42d3-a456-426614174000", true},
		{"too short", "abcd", false},
		{"short digits", "1234", false},
		{"free text", "chave aleatoria qualquer", false},
		{"empty", "", false},
		{"whitespace padded cpf", "  12345678901  ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPlausibleKey(tt.candidate); got != tt.want {
				t.Errorf("IsPlausibleKey(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestClassifyKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want constants.KeyType
	}{
		{"email", "joao@example.com", constants.KeyTypeEmail},
		{"phone", "+55 11 91234-5678", constants.KeyTypePhone},
		{"cpf plain", "12345678901", constants.KeyTypeCPF},
		{"cpf dotted", "123.456.789-01", constants.KeyTypeCPF},
		{"cnpj", "12345678000195", constants.KeyTypeCNPJ},
		{"uuid falls through to random", "123e4567-e89b-42d3-a456-426614174000", constants.KeyTypeRandom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyKey(tt.key); got != tt.want {
				t.Errorf("ClassifyKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}
