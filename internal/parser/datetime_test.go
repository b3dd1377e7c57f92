package parser

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"slash DMY", "Data do pagamento: 20/11/2023", "20/11/2023"},
		{"dash DMY", "20-11-2023", "20/11/2023"},
		{"dot DMY", "20.11.2023", "20/11/2023"},
		{"single digit day and month", "5/3/2024", "05/03/2024"},
		{"ISO YMD", "2025-10-15", "15/10/2025"},
		{"long form full month", "5 de março de 2024", "05/03/2024"},
		{"long form unaccented", "5 de marco de 2024", "05/03/2024"},
		{"long form abbreviated", "12 de set. de 2023", "12/09/2023"},
		{"no date", "comprovante sem data", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NormalizeDate(tt.raw)
			if tt.want == "" {
				if d != nil {
					t.Fatalf("NormalizeDate(%q) = %v, want nil", tt.raw, d)
				}
				return
			}
			if d == nil {
				t.Fatalf("NormalizeDate(%q) = nil, want %q", tt.raw, tt.want)
			}
			if got := d.String(); got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeDateIdempotent(t *testing.T) {
	for _, raw := range []string{"20/11/2023", "20-11-2023", "20.11.2023", "5/3/2024"} {
		first := NormalizeDate(raw)
		if first == nil {
			t.Fatalf("NormalizeDate(%q) = nil", raw)
		}
		second := NormalizeDate(first.String())
		if second == nil || second.String() != first.String() {
			t.Errorf("normalizing %q twice: first %q, second %v", raw, first.String(), second)
		}
	}
}

func TestDateISO(t *testing.T) {
	d := NormalizeDate("20/11/2023")
	if d == nil {
		t.Fatal("NormalizeDate returned nil")
	}
	if got := d.ISO(); got != "2023-11-20" {
		t.Errorf("ISO() = %q, want %q", got, "2023-11-20")
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"hour minute", "Hora: 10:30 ", "10:30", true},
		{"hour minute second", "pago às 17:40:26 via pix", "17:40:26", true},
		{"at end of text", "horário 09:15", "09:15", true},
		{"embedded in token is skipped", "ref123:45xyz", "", false},
		{"no time", "comprovante de pagamento", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeTime(tt.raw)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("NormalizeTime(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
