package constants

// KeyType classifies a PIX key by its shape. Derived from the key value,
// never asserted independently.
type KeyType string

const (
	KeyTypeEmail  KeyType = "EMAIL"
	KeyTypePhone  KeyType = "PHONE"
	KeyTypeCPF    KeyType = "CPF"
	KeyTypeCNPJ   KeyType = "CNPJ"
	KeyTypeRandom KeyType = "RANDOM"
)

var allKeyTypes = []KeyType{
	KeyTypeEmail,
	KeyTypePhone,
	KeyTypeCPF,
	KeyTypeCNPJ,
	KeyTypeRandom,
}

func KeyTypesAsStringSlice() []string {
	result := make([]string, len(allKeyTypes))
	for i, kt := range allKeyTypes {
		result[i] = string(kt)
	}
	return result
}
