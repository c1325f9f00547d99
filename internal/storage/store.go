// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/jakobj/money-helsinki/internal/models"
)

// Store is the persistence interface used by the service layer. Only groups,
// their expense rows and API users are stored; balances and settlement plans
// are recomputed on demand and never written.
type Store interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by login email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateGroup persists a new group. ID and CreatedAt are assigned by
	// the store when unset.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with its member list.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups returns all groups.
	ListGroups(ctx context.Context) ([]models.Group, error)

	// AddExpenses appends expense rows to a group's ledger. IDs and
	// timestamps are assigned by the store.
	AddExpenses(ctx context.Context, groupID string, expenses []models.Expense) error

	// ListExpenses returns a group's expense rows in insertion order,
	// which is the ledger order the calculator sees.
	ListExpenses(ctx context.Context, groupID string) ([]models.Expense, error)

	// Close releases any resources held by the store.
	Close() error
}
