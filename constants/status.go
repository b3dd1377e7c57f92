package constants

// TxStatus is the canonical status for extracted PIX transactions.
type TxStatus string

// Stable values (store these exact strings in DB).
const (
	TxStatusProcessed    TxStatus = "PROCESSED"     // all required fields recovered
	TxStatusManualReview TxStatus = "MANUAL_REVIEW" // incomplete extraction, parked for follow-up
	TxStatusError        TxStatus = "ERROR"         // extraction faulted; record kept for audit
)

// ResultStatus is the per-file outcome reported to pipeline callers.
type ResultStatus string

const (
	ResultSuccess ResultStatus = "success"
	ResultSkipped ResultStatus = "skipped"
	ResultError   ResultStatus = "error"
)
