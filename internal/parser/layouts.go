package parser

// LayoutExtractor is one known receipt layout: a set of trigger substrings
// (and/or the canonical bank the layout belongs to) plus a pure extraction
// function from prepared text to a partial field set.
//
// Every triggered extractor runs; triggering one never suppresses another.
// OCR noise can plant a foreign bank token in a document, so co-triggered
// layouts legitimately coexist and the first-writer-wins merge keeps a later
// extractor from corrupting fields an earlier one already claimed.
type LayoutExtractor struct {
	Name     string
	Bank     string   // canonical bank name that selects this layout, if any
	Triggers []string // lowercase substrings that select this layout
	Extract  func(text string) Fields
}

// layouts is the fixed priority order in which triggered extractors run.
var layouts = []LayoutExtractor{
	nubankLayout,
	pagbankLayout,
	caixaLayout,
	santanderLayout,
	bancoDoBrasilLayout,
	bmgLayout,
	bradescoLayout,
	mercadoPagoLayout,
	interLayout,
	sicoobLayout,
}

// Triggered reports whether this layout applies to the document, either via
// a trigger substring or because the Bank Identifier resolved its bank.
func (l LayoutExtractor) Triggered(doc Document, identifiedBank string) bool {
	if l.Bank != "" && l.Bank == identifiedBank {
		return true
	}
	for _, t := range l.Triggers {
		if doc.Contains(t) {
			return true
		}
	}
	return false
}
