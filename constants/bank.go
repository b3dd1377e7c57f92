package constants

// Canonical institution names as stored in the bank columns. The Santander
// spelling matches the wording its own receipts carry, which the Santander
// layout extractor keys off.
const (
	BankSicoob      = "Sicoob"
	BankBB          = "Banco do Brasil"
	BankBradesco    = "Bradesco"
	BankItau        = "Itaú"
	BankSantander   = "BCO SANTANDER (BRASIL) S.A."
	BankCaixa       = "Caixa Econômica Federal"
	BankNubank      = "Nubank"
	BankInter       = "Banco Inter"
	BankPagBank     = "PagBank (PagSeguro Internet Instituição de Pagamento S.A.)"
	BankMercadoPago = "Mercado Pago"
	BankBMG         = "Banco BMG"
)

// BankKeyword pairs a lowercase substring with the canonical institution it
// identifies. Order matters: the first keyword found in a document wins.
type BankKeyword struct {
	Keyword   string
	Canonical string
}

// BankKeywords is the ordered lookup table for institution identification.
// More specific tokens come before substrings they contain ("banco do brasil"
// before "bradesco" is irrelevant, but "mercado pago" must precede "pag").
var BankKeywords = []BankKeyword{
	{"sicoob", BankSicoob},
	{"banco do brasil", BankBB},
	{"bradesco", BankBradesco},
	{"itau", BankItau},
	{"itaú", BankItau},
	{"santander", BankSantander},
	{"caixa", BankCaixa},
	{"nubank", BankNubank},
	{"nu pagamentos", BankNubank},
	{"mercado pago", BankMercadoPago},
	{"pagbank", BankPagBank},
	{"pagseguro", BankPagBank},
	{"banco inter", BankInter},
	{"inter", BankInter},
	{"bmg", BankBMG},
}
