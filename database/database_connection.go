package database

import (
	"context"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Database wraps the mongo client and the selected database so handlers get
// an explicit handle instead of reaching for package-level state.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB using MONGODB_URI / DATABASE_NAME and pings the
// primary before returning.
func Connect(ctx context.Context) (*Database, error) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		return nil, fmt.Errorf("MONGODB_URI is not set")
	}
	name := os.Getenv("DATABASE_NAME")
	if name == "" {
		return nil, fmt.Errorf("DATABASE_NAME is not set")
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Database{client: client, db: client.Database(name)}, nil
}

// Collection returns a handle on the named collection.
func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Disconnect closes the underlying client.
func (d *Database) Disconnect(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique and lookup indexes the handlers rely on.
// Safe to call on every startup.
func (d *Database) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	specs := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "passwordResetTokenHash", Value: 1}}},
		},
		"categories": {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		},
		"faqs": {
			{Keys: bson.D{{Key: "question", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "category", Value: 1}, {Key: "isActive", Value: 1}, {Key: "priority", Value: -1}}},
			{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "views", Value: -1}}},
		},
		"statistics": {
			{Keys: bson.D{{Key: "title", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		},
		"aboutpages": {
			{Keys: bson.D{{Key: "isPublished", Value: 1}}},
		},
	}

	for col, models := range specs {
		if _, err := d.db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", col, err)
		}
	}
	return nil
}
