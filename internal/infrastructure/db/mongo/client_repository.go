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

const clientsCollection = "clients"

type ClientRepository struct {
	coll *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{coll: db.Collection(clientsCollection)}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, client); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// FindOne retrieves a client by id. A non-empty ownerID narrows the query
// to that owner, so foreign records come back as ErrClientNotFound.
func (r *ClientRepository) FindOne(ctx context.Context, id string, ownerID string) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	if ownerID != "" {
		filter["owner_id"] = ownerID
	}

	var client domain.Client
	if err := r.coll.FindOne(ctx, filter).Decode(&client); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return &client, nil
}

// buildClientQuery translates a ListClientsFilter into a Mongo filter and
// find options, omitting predicates for zero fields. Sort defaults mirror
// the user query: created_at descending without an explicit field,
// ascending with one.
func buildClientQuery(filter ports.ListClientsFilter) (bson.M, *options.FindOptions) {
	query := bson.M{}
	if filter.OwnerID != "" {
		query["owner_id"] = filter.OwnerID
	}
	if filter.TradeName != "" {
		query["trade_name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.TradeName)}
	}
	if filter.TaxID != "" {
		query["tax_id"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.TaxID)}
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.City != "" {
		query["city"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.City)}
	}

	opts := options.Find().SetSort(sortSpec(clientSortField(filter.SortBy), filter.SortBy, filter.Order))
	return query, opts
}

var clientSortFields = map[string]string{
	"name":      "trade_name",
	"tradeName": "trade_name",
	"taxId":     "tax_id",
	"city":      "city",
	"status":    "status",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func clientSortField(sortBy string) string {
	if f, ok := clientSortFields[sortBy]; ok {
		return f
	}
	return ""
}

func (r *ClientRepository) List(ctx context.Context, filter ports.ListClientsFilter) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query, opts := buildClientQuery(filter)
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cur.Close(ctx)

	return decodeClients(ctx, cur)
}

// Update applies the non-nil patch fields and bumps updated_at. The owner
// field is not part of ClientPatch, so ownership can never change here.
func (r *ClientRepository) Update(ctx context.Context, id string, patch ports.ClientPatch) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := patchToSet(patch)
	set["updated_at"] = time.Now().UTC()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func patchToSet(patch ports.ClientPatch) bson.M {
	set := bson.M{}
	fields := map[string]*string{
		"trade_name":             patch.TradeName,
		"tax_id":                 patch.TaxID,
		"legal_name":             patch.LegalName,
		"state_registration":     patch.StateRegistration,
		"municipal_registration": patch.MunicipalRegistration,
		"zip_code":               patch.ZipCode,
		"street":                 patch.Street,
		"number":                 patch.Number,
		"complement":             patch.Complement,
		"district":               patch.District,
		"city":                   patch.City,
		"state":                  patch.State,
		"country":                patch.Country,
		"phone":                  patch.Phone,
		"email":                  patch.Email,
		"website":                patch.Website,
		"status":                 patch.Status,
		"notes":                  patch.Notes,
	}
	for key, val := range fields {
		if val != nil {
			set[key] = *val
		}
	}
	return set
}

func (r *ClientRepository) Delete(ctx context.Context, id string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete client: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *ClientRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{"owner_id": ownerID})
}

func (r *ClientRepository) ListByStatus(ctx context.Context, status domain.ClientStatus, ownerID string) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"status": status}
	if ownerID != "" {
		filter["owner_id"] = ownerID
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list clients by status: %w", err)
	}
	defer cur.Close(ctx)

	return decodeClients(ctx, cur)
}

func (r *ClientRepository) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return 0, fmt.Errorf("delete clients by owner: %w", err)
	}
	return res.DeletedCount, nil
}

func decodeClients(ctx context.Context, cur *mongo.Cursor) ([]*domain.Client, error) {
	var clients []*domain.Client
	for cur.Next(ctx) {
		var client domain.Client
		if err := cur.Decode(&client); err != nil {
			return nil, fmt.Errorf("decode client: %w", err)
		}
		clients = append(clients, &client)
	}
	return clients, cur.Err()
}

// EnsureIndexes creates the indexes the ownership scoping queries rely on.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
