package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultTimeout = 10 * time.Second

// Conn bundles the driver client with the selected application database.
type Conn struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect dials MongoDB, confirms the primary is reachable and selects the
// application database.
func Connect(ctx context.Context, uri, database string) (*Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetAppName("clients-api").
		SetServerSelectionTimeout(defaultTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Conn{Client: client, DB: client.Database(database)}, nil
}

// Close disconnects the underlying client.
func (c *Conn) Close(ctx context.Context) error {
	return c.Client.Disconnect(ctx)
}
