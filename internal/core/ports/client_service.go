package ports

import (
	"context"
	"time"

	"github.com/conectar/clients-api/internal/core/domain"
)

// CreateClientInput carries all data needed to create a client record. The
// owner is never taken from the input; it comes from the caller's claims.
type CreateClientInput struct {
	TradeName             string
	TaxID                 string
	LegalName             string
	StateRegistration     string
	MunicipalRegistration string
	ZipCode               string
	Street                string
	Number                string
	Complement            string
	District              string
	City                  string
	State                 string
	Country               string
	Phone                 string
	Email                 string
	Website               string
	Status                string
	Notes                 string
}

// RemoveClientResult reports the outcome of a client deletion. Absence and
// delete races are results, not errors.
type RemoveClientResult struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message"`
}

// ClientStats is the per-owner summary returned by Stats.
type ClientStats struct {
	Total         int64 `json:"total"`
	Active        int64 `json:"active"`
	Inactive      int64 `json:"inactive"`
	ActivePercent int   `json:"activePercent"`
}

// StatsCache caches per-owner client stats for a short period. Get returns
// (nil, nil) on a miss.
type StatsCache interface {
	Get(ctx context.Context, ownerID string) (*ClientStats, error)
	Set(ctx context.Context, ownerID string, stats *ClientStats, ttl time.Duration) error
	Invalidate(ctx context.Context, ownerID string) error
}

// ClientService defines client record use cases. Every operation takes the
// caller's claims and applies the ownership rules internally.
type ClientService interface {
	Create(ctx context.Context, claims domain.Claims, input CreateClientInput) (*domain.Client, error)
	List(ctx context.Context, claims domain.Claims, filter ListClientsFilter) ([]*domain.Client, error)
	Get(ctx context.Context, claims domain.Claims, id string) (*domain.Client, error)
	Update(ctx context.Context, claims domain.Claims, id string, patch ClientPatch) (*domain.Client, error)
	Remove(ctx context.Context, claims domain.Claims, id string) (*RemoveClientResult, error)
	Stats(ctx context.Context, claims domain.Claims) (*ClientStats, error)
}
