package ports

import (
	"context"

	"github.com/conectar/clients-api/internal/core/domain"
)

// ListClientsFilter carries the optional predicates for listing clients.
// A zero field means the predicate is omitted. OwnerID is the ownership
// scope: empty = no scoping (admin), non-empty = records of that owner only.
type ListClientsFilter struct {
	OwnerID   string
	TradeName string // contains match
	TaxID     string // contains match
	Status    string // exact match
	City      string // contains match
	SortBy    string // empty = created_at descending
	Order     string // "asc" or "desc"; default asc when SortBy is set
}

// ClientPatch carries the mutable client fields for partial updates. Nil
// pointers are left untouched. The owner is intentionally absent: ownership
// is fixed at creation.
type ClientPatch struct {
	TradeName             *string
	TaxID                 *string
	LegalName             *string
	StateRegistration     *string
	MunicipalRegistration *string
	ZipCode               *string
	Street                *string
	Number                *string
	Complement            *string
	District              *string
	City                  *string
	State                 *string
	Country               *string
	Phone                 *string
	Email                 *string
	Website               *string
	Status                *string
	Notes                 *string
}

// ClientRepository defines persistence operations for client records.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	// FindOne retrieves a client by id. When ownerID is non-empty the query
	// is additionally filtered by owner, so a non-owner gets "not found".
	FindOne(ctx context.Context, id string, ownerID string) (*domain.Client, error)
	List(ctx context.Context, filter ListClientsFilter) ([]*domain.Client, error)
	Update(ctx context.Context, id string, patch ClientPatch) error
	// Delete removes the client and returns the number of affected documents.
	Delete(ctx context.Context, id string) (int64, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	ListByStatus(ctx context.Context, status domain.ClientStatus, ownerID string) ([]*domain.Client, error)
	// DeleteByOwner removes every client owned by ownerID and returns the
	// number of affected documents. Used by the account deletion cascade.
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
}
