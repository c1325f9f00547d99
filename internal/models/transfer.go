package models

// Transfer is a directed settlement payment from a debtor to a creditor.
// It is terminal output of the settlement solver and has no further
// lifecycle; transfers are never persisted.
type Transfer struct {
	// From is the participant who pays (the debtor).
	From string

	// To is the participant who receives (the creditor).
	To string

	// Amount is the payment amount. Always strictly positive; amounts
	// within rounding noise of zero are never emitted.
	Amount float64
}
