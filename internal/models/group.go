package models

// Group is a named collection of expenses, e.g. one trip or one household.
// Balances and settlement plans are computed per group.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g. "Helsinki 2024").
	Name string

	// Members is the list of participant names seeded at creation.
	// Participants appearing in expense rows need not be listed here;
	// presence in the ledger is what counts for the split.
	Members []string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}
