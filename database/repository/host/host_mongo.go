package hostRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoHostRepo implements HostRepository using MongoDB.
type MongoHostRepo struct {
	coll *mongo.Collection
}

// NewMongoHostRepo constructs a new instance of MongoHostRepo.
func NewMongoHostRepo() HostRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoHostRepo{
		coll: db.Collection("hosts"),
	}
}

func (repo *MongoHostRepo) Create(h *models.Host) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, h); err != nil {
		return fmt.Errorf("error creating host: %w", err)
	}
	return nil
}

func (repo *MongoHostRepo) GetByID(id string) (*models.Host, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var h models.Host
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&h); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching host %s: %w", id, err)
	}
	return &h, nil
}

func (repo *MongoHostRepo) GetByEmail(email string) (*models.Host, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var h models.Host
	filter := bson.M{"email": strings.ToLower(email)}
	if err := repo.coll.FindOne(ctx, filter).Decode(&h); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching host by email: %w", err)
	}
	return &h, nil
}
