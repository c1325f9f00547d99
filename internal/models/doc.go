// Package models defines the core domain models for money-helsinki.
//
// # Identity
//
// Participants are identified by name strings. There are no participant
// accounts: a name appearing in an expense row is all it takes to exist.
// User accounts exist only for API authentication and are unrelated to
// participant identity.
//
// # Money
//
// Amounts are float64 throughout. The calculator package compensates with a
// 1e-12 tolerance on its zero-sum checks; see calculator.Tolerance.
//
// # Lifecycle
//
//   - Expense rows are loaded from a ledger file or stored per group; they
//     are immutable once recorded.
//   - Balances and transfers are always computed fresh from the expense
//     rows and are never persisted.
package models
