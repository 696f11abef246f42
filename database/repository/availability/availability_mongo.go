package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new instance of MongoAvailabilityRepo.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoAvailabilityRepo{
		coll: db.Collection("availability"),
	}
}

func (repo *MongoAvailabilityRepo) GetByHostID(hostID string) (*models.WeeklyAvailability, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var avail models.WeeklyAvailability
	filter := bson.M{"host_id": hostID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&avail); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching availability for host %s: %w", hostID, err)
	}
	return &avail, nil
}

func (repo *MongoAvailabilityRepo) Upsert(avail *models.WeeklyAvailability) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"host_id": avail.HostID}
	update := bson.M{"$set": avail}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting availability for host %s: %w", avail.HostID, err)
	}
	return nil
}
