package service

import (
	"context"
	"strings"
	"time"

	"github.com/conectar/clients-api/internal/core/domain"
	"github.com/conectar/clients-api/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User

	createErr        error
	lastLoginUpdates []string
	googleLinks      []string
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	if u.LastLoginAt != nil {
		at := *u.LastLoginAt
		clone.LastLoginAt = &at
	}
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByGoogleID(_ context.Context, googleID string) (*domain.User, error) {
	for _, u := range r.users {
		if u.GoogleID == googleID {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, filter ports.ListUsersFilter) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if filter.Name != "" && !strings.Contains(u.Name, filter.Name) {
			continue
		}
		if filter.Email != "" && !strings.Contains(u.Email, filter.Email) {
			continue
		}
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) ListInactive(_ context.Context, threshold time.Time) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		switch {
		case u.LastLoginAt != nil && u.LastLoginAt.Before(threshold):
			out = append(out, cloneUser(u))
		case u.LastLoginAt == nil && u.CreatedAt.Before(threshold):
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, patch ports.UserPatch) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id string, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *stubUserRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastLoginAt = &at
	r.lastLoginUpdates = append(r.lastLoginUpdates, id)
	return nil
}

func (r *stubUserRepo) LinkGoogle(_ context.Context, id string, link ports.GoogleLink) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.GoogleID = link.GoogleID
	u.Photo = link.Photo
	u.Provider = domain.ProviderGoogle
	u.PasswordHash = ""
	r.googleLinks = append(r.googleLinks, id)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := r.users[id]; !ok {
		return 0, nil
	}
	delete(r.users, id)
	return 1, nil
}

type stubClientRepo struct {
	clients map[string]*domain.Client

	deleteAffected *int64 // overrides the natural result when set
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[string]*domain.Client)}
}

func cloneClient(cl *domain.Client) *domain.Client {
	if cl == nil {
		return nil
	}
	clone := *cl
	return &clone
}

func (r *stubClientRepo) Create(_ context.Context, client *domain.Client) error {
	r.clients[client.ID] = cloneClient(client)
	return nil
}

func (r *stubClientRepo) FindOne(_ context.Context, id string, ownerID string) (*domain.Client, error) {
	cl, ok := r.clients[id]
	if !ok || (ownerID != "" && cl.OwnerID != ownerID) {
		return nil, domain.ErrClientNotFound
	}
	return cloneClient(cl), nil
}

func (r *stubClientRepo) List(_ context.Context, filter ports.ListClientsFilter) ([]*domain.Client, error) {
	var out []*domain.Client
	for _, cl := range r.clients {
		if filter.OwnerID != "" && cl.OwnerID != filter.OwnerID {
			continue
		}
		if filter.TradeName != "" && !strings.Contains(cl.TradeName, filter.TradeName) {
			continue
		}
		if filter.TaxID != "" && !strings.Contains(cl.TaxID, filter.TaxID) {
			continue
		}
		if filter.Status != "" && string(cl.Status) != filter.Status {
			continue
		}
		if filter.City != "" && !strings.Contains(cl.City, filter.City) {
			continue
		}
		out = append(out, cloneClient(cl))
	}
	return out, nil
}

func (r *stubClientRepo) Update(_ context.Context, id string, patch ports.ClientPatch) error {
	cl, ok := r.clients[id]
	if !ok {
		return domain.ErrClientNotFound
	}
	if patch.TradeName != nil {
		cl.TradeName = *patch.TradeName
	}
	if patch.City != nil {
		cl.City = *patch.City
	}
	if patch.Status != nil {
		cl.Status = domain.ClientStatus(*patch.Status)
	}
	if patch.Notes != nil {
		cl.Notes = *patch.Notes
	}
	cl.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *stubClientRepo) Delete(_ context.Context, id string) (int64, error) {
	if r.deleteAffected != nil {
		return *r.deleteAffected, nil
	}
	if _, ok := r.clients[id]; !ok {
		return 0, nil
	}
	delete(r.clients, id)
	return 1, nil
}

func (r *stubClientRepo) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	var n int64
	for _, cl := range r.clients {
		if cl.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *stubClientRepo) ListByStatus(_ context.Context, status domain.ClientStatus, ownerID string) ([]*domain.Client, error) {
	var out []*domain.Client
	for _, cl := range r.clients {
		if cl.Status != status {
			continue
		}
		if ownerID != "" && cl.OwnerID != ownerID {
			continue
		}
		out = append(out, cloneClient(cl))
	}
	return out, nil
}

func (r *stubClientRepo) DeleteByOwner(_ context.Context, ownerID string) (int64, error) {
	var n int64
	for id, cl := range r.clients {
		if cl.OwnerID == ownerID {
			delete(r.clients, id)
			n++
		}
	}
	return n, nil
}

type stubVerifier struct {
	profile *ports.GoogleProfile
	err     error
}

func (v *stubVerifier) Verify(_ context.Context, _ string) (*ports.GoogleProfile, error) {
	return v.profile, v.err
}

type stubStatsCache struct {
	entries map[string]*ports.ClientStats

	gets, sets, invalidations int
	failing                   bool
}

func newStubStatsCache() *stubStatsCache {
	return &stubStatsCache{entries: make(map[string]*ports.ClientStats)}
}

func (c *stubStatsCache) Get(_ context.Context, ownerID string) (*ports.ClientStats, error) {
	c.gets++
	if c.failing {
		return nil, context.DeadlineExceeded
	}
	return c.entries[ownerID], nil
}

func (c *stubStatsCache) Set(_ context.Context, ownerID string, stats *ports.ClientStats, _ time.Duration) error {
	c.sets++
	if c.failing {
		return context.DeadlineExceeded
	}
	c.entries[ownerID] = stats
	return nil
}

func (c *stubStatsCache) Invalidate(_ context.Context, ownerID string) error {
	c.invalidations++
	if c.failing {
		return context.DeadlineExceeded
	}
	delete(c.entries, ownerID)
	return nil
}
