package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/conectar/clients-api/internal/core/domain"
	"github.com/conectar/clients-api/internal/core/ports"
)

const statsTTL = time.Minute

// ClientService implements client record CRUD with ownership enforcement.
// Every operation takes the caller's claims; scoping follows
// Claims.ScopeOwner, so admins operate unrestricted.
type ClientService struct {
	clients ports.ClientRepository
	stats   ports.StatsCache
	logger  zerolog.Logger
}

// NewClientService builds a ClientService. The stats cache may be nil, in
// which case Stats always recomputes.
func NewClientService(clients ports.ClientRepository, stats ports.StatsCache, logger zerolog.Logger) *ClientService {
	return &ClientService{clients: clients, stats: stats, logger: logger}
}

// Create persists a new client record owned by the caller. Whatever owner
// the transport layer may have carried is ignored: ownership always comes
// from the authenticated claims.
func (s *ClientService) Create(ctx context.Context, claims domain.Claims, input ports.CreateClientInput) (*domain.Client, error) {
	status := domain.ClientStatus(input.Status)
	if status == "" {
		status = domain.ClientActive
	}
	if !domain.ValidStatus(status) {
		return nil, fmt.Errorf("unknown status %q", input.Status)
	}

	country := input.Country
	if country == "" {
		country = "Brasil"
	}

	now := time.Now().UTC()
	client := &domain.Client{
		ID:                    uuid.NewString(),
		OwnerID:               claims.UserID,
		TradeName:             input.TradeName,
		TaxID:                 input.TaxID,
		LegalName:             input.LegalName,
		StateRegistration:     input.StateRegistration,
		MunicipalRegistration: input.MunicipalRegistration,
		ZipCode:               input.ZipCode,
		Street:                input.Street,
		Number:                input.Number,
		Complement:            input.Complement,
		District:              input.District,
		City:                  input.City,
		State:                 input.State,
		Country:               country,
		Phone:                 input.Phone,
		Email:                 input.Email,
		Website:               input.Website,
		Status:                status,
		Notes:                 input.Notes,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, client.OwnerID)
	s.logger.Info().Str("client_id", client.ID).Str("owner_id", client.OwnerID).Msg("client created")
	return client, nil
}

// List returns clients matching the filter, scoped to the caller's own
// records unless the caller is an admin.
func (s *ClientService) List(ctx context.Context, claims domain.Claims, filter ports.ListClientsFilter) ([]*domain.Client, error) {
	filter.OwnerID = claims.ScopeOwner()
	return s.clients.List(ctx, filter)
}

// Get retrieves a single client. "Does not exist" and "exists but owned by
// someone else" are indistinguishable to a non-admin caller.
func (s *ClientService) Get(ctx context.Context, claims domain.Claims, id string) (*domain.Client, error) {
	return s.clients.FindOne(ctx, id, claims.ScopeOwner())
}

// Update applies a partial patch after an ownership pre-check. ErrClientNotFound
// covers both a missing record and a foreign one.
func (s *ClientService) Update(ctx context.Context, claims domain.Claims, id string, patch ports.ClientPatch) (*domain.Client, error) {
	existing, err := s.clients.FindOne(ctx, id, claims.ScopeOwner())
	if err != nil {
		return nil, err
	}

	if patch.Status != nil && !domain.ValidStatus(domain.ClientStatus(*patch.Status)) {
		return nil, fmt.Errorf("unknown status %q", *patch.Status)
	}

	if err := s.clients.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, existing.OwnerID)
	return s.clients.FindOne(ctx, id, "")
}

// Remove deletes a client after the same ownership pre-check as Update.
// Absence is a result, not an error; so is the pre-check passing and the
// delete affecting zero documents (lost race).
func (s *ClientService) Remove(ctx context.Context, claims domain.Claims, id string) (*ports.RemoveClientResult, error) {
	existing, err := s.clients.FindOne(ctx, id, claims.ScopeOwner())
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return &ports.RemoveClientResult{Deleted: false, Message: "Client not found"}, nil
		}
		return nil, err
	}

	affected, err := s.clients.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return &ports.RemoveClientResult{Deleted: false, Message: "Failed to delete client"}, nil
	}

	s.invalidateStats(ctx, existing.OwnerID)
	s.logger.Info().Str("client_id", id).Msg("client deleted")
	return &ports.RemoveClientResult{Deleted: true, Message: "Client deleted successfully"}, nil
}

// Stats summarizes the caller's own records: total, active and inactive
// counts plus the active share rounded to the nearest percent. Cache
// failures are logged and never break the request.
func (s *ClientService) Stats(ctx context.Context, claims domain.Claims) (*ports.ClientStats, error) {
	ownerID := claims.UserID

	if s.stats != nil {
		if cached, err := s.stats.Get(ctx, ownerID); err != nil {
			s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("stats cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	total, err := s.clients.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	active, err := s.clients.ListByStatus(ctx, domain.ClientActive, ownerID)
	if err != nil {
		return nil, err
	}
	inactive, err := s.clients.ListByStatus(ctx, domain.ClientInactive, ownerID)
	if err != nil {
		return nil, err
	}

	stats := &ports.ClientStats{
		Total:    total,
		Active:   int64(len(active)),
		Inactive: int64(len(inactive)),
	}
	if total > 0 {
		stats.ActivePercent = int(math.Round(float64(len(active)) / float64(total) * 100))
	}

	if s.stats != nil {
		if err := s.stats.Set(ctx, ownerID, stats, statsTTL); err != nil {
			s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

// invalidateStats drops the cached summary so the next Stats call
// recomputes. Best effort.
func (s *ClientService) invalidateStats(ctx context.Context, ownerID string) {
	if s.stats == nil {
		return
	}
	if err := s.stats.Invalidate(ctx, ownerID); err != nil {
		s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("stats cache invalidation failed")
	}
}
