package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/conectar/clients-api/internal/core/domain"
	"github.com/conectar/clients-api/internal/core/ports"
)

const usersCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID           string     `bson:"_id"`
	Name         string     `bson:"name"`
	Email        string     `bson:"email"`
	PasswordHash string     `bson:"password_hash,omitempty"`
	Role         string     `bson:"role"`
	Provider     string     `bson:"provider"`
	GoogleID     string     `bson:"google_id,omitempty"`
	Photo        string     `bson:"photo,omitempty"`
	CreatedAt    time.Time  `bson:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at"`
	LastLoginAt  *time.Time `bson:"last_login,omitempty"`
}

func toDoc(u *domain.User) userDoc {
	return userDoc{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Provider:     u.Provider,
		GoogleID:     u.GoogleID,
		Photo:        u.Photo,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		LastLoginAt:  u.LastLoginAt,
	}
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         d.Role,
		Provider:     d.Provider,
		GoogleID:     d.GoogleID,
		Photo:        d.Photo,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		LastLoginAt:  d.LastLoginAt,
	}
}

// Create inserts a new user. A duplicate email trips the unique index and
// surfaces as domain.ErrEmailTaken; there is no pre-check.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, toDoc(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"google_id": googleID})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

// buildUserQuery translates a ListUsersFilter into a Mongo filter and find
// options. A zero filter field omits its predicate. When no sort field is
// given, results come newest first; an explicit sort field without an
// explicit order sorts ascending.
func buildUserQuery(filter ports.ListUsersFilter) (bson.M, *options.FindOptions) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Name)}
	}
	if filter.Email != "" {
		query["email"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Email)}
	}
	if filter.Role != "" {
		query["role"] = filter.Role
	}

	opts := options.Find().SetSort(sortSpec(userSortField(filter.SortBy), filter.SortBy, filter.Order))
	return query, opts
}

var userSortFields = map[string]string{
	"name":      "name",
	"email":     "email",
	"role":      "role",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"lastLogin": "last_login",
}

func userSortField(sortBy string) string {
	if f, ok := userSortFields[sortBy]; ok {
		return f
	}
	return ""
}

// sortSpec keeps the historical sort defaults: created_at descending when
// no sort field was requested, ascending otherwise unless an explicit
// order says different.
func sortSpec(field, requested, order string) bson.D {
	if field == "" || requested == "" {
		return bson.D{{Key: "created_at", Value: -1}}
	}
	dir := 1
	if order == "desc" {
		dir = -1
	}
	return bson.D{{Key: field, Value: dir}}
}

func (r *UserRepository) List(ctx context.Context, filter ports.ListUsersFilter) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query, opts := buildUserQuery(filter)
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []*domain.User
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, doc.toDomain())
	}
	return users, cur.Err()
}

// ListInactive matches users whose last login predates threshold, or who
// never logged in and were created before it.
func (r *UserRepository) ListInactive(ctx context.Context, threshold time.Time) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"$or": bson.A{
		bson.M{"last_login": bson.M{"$lt": threshold}},
		bson.M{"last_login": nil, "created_at": bson.M{"$lt": threshold}},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list inactive users: %w", err)
	}
	defer cur.Close(ctx)

	var users []*domain.User
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, doc.toDomain())
	}
	return users, cur.Err()
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}

// Update applies the non-nil patch fields.
func (r *UserRepository) Update(ctx context.Context, id string, patch ports.UserPatch) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Role != nil {
		set["role"] = *patch.Role
	}
	return r.updateByID(ctx, id, bson.M{"$set": set})
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{
		"password_hash": passwordHash,
		"updated_at":    time.Now().UTC(),
	}})
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{"last_login": at}})
}

// LinkGoogle attaches the external identity, flips the provider and drops
// the stored password hash. A google-provider account never carries one.
func (r *UserRepository) LinkGoogle(ctx context.Context, id string, link ports.GoogleLink) error {
	return r.updateByID(ctx, id, bson.M{
		"$set": bson.M{
			"google_id":  link.GoogleID,
			"photo":      link.Photo,
			"provider":   domain.ProviderGoogle,
			"updated_at": time.Now().UTC(),
		},
		"$unset": bson.M{"password_hash": ""},
	})
}

func (r *UserRepository) updateByID(ctx context.Context, id string, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the unique email index duplicate registration
// relies on.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "google_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
