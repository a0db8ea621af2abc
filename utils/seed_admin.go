package utils

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/visioncraft/agencybackend/auth"
	"github.com/visioncraft/agencybackend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// SeedAdminUser upserts the admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
// Accounts are otherwise only created out of band, so this is the one
// registration path the backend ships with.
func SeedAdminUser(ctx context.Context, usersCol *mongo.Collection, hasher auth.PasswordHasher) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	pass := os.Getenv("ADMIN_PASSWORD")

	if email == "" || pass == "" {
		return fmt.Errorf("missing ADMIN_EMAIL or ADMIN_PASSWORD env vars")
	}

	hash, err := hasher.Hash(pass)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()

	// Only insert if it doesn't exist
	filter := bson.M{"email": email}
	update := bson.M{
		"$setOnInsert": bson.M{
			"email":        email,
			"passwordHash": hash,
			"role":         models.RoleAdmin,
			"tokenVersion": 0,
			"createdAt":    now,
			"updatedAt":    now,
		},
	}

	opts := options.UpdateOne().SetUpsert(true)

	res, err := usersCol.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("seed admin upsert failed: %w", err)
	}

	if res.UpsertedCount == 1 {
		fmt.Println("Admin user seeded:", email)
	} else {
		fmt.Println("Admin user already exists:", email)
	}

	return nil
}
