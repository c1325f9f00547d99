package models

// Expense represents one row of a ledger: a payment made by one participant
// on one day. Several rows may share the same (Name, Day) pair; their amounts
// accumulate.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	// Empty for expenses loaded from a ledger file; assigned by the store
	// when persisted.
	ID string

	// GroupID is the group this expense belongs to. Empty outside the API.
	GroupID string

	// Name is the participant who paid. Participant identity is the name
	// string itself.
	Name string

	// Reason is a free-text description of the payment. The balance
	// calculation never reads it.
	Reason string

	// Amount is the amount paid, typically positive.
	Amount float64

	// Day groups rows by shared participation: everyone with a row on the
	// same day is considered present for that day's split. It is just a
	// grouping key, not necessarily a calendar date.
	Day int

	// CreatedAt is the Unix timestamp when the expense was recorded.
	// Zero for expenses loaded from a ledger file.
	CreatedAt int64
}
