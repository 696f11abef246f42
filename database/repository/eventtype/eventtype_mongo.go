package eventTypeRepo

import (
	"context"
	"fmt"
	"time"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoEventTypeRepo implements EventTypeRepository using MongoDB.
type MongoEventTypeRepo struct {
	coll *mongo.Collection
}

// NewMongoEventTypeRepo constructs a new instance of MongoEventTypeRepo.
func NewMongoEventTypeRepo() EventTypeRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoEventTypeRepo{
		coll: db.Collection("eventTypes"),
	}
}

func (repo *MongoEventTypeRepo) Create(et *models.EventType) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, et); err != nil {
		return fmt.Errorf("error creating event type: %w", err)
	}
	return nil
}

func (repo *MongoEventTypeRepo) GetByID(id string) (*models.EventType, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var et models.EventType
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&et); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching event type %s: %w", id, err)
	}
	return &et, nil
}

func (repo *MongoEventTypeRepo) GetByHostID(hostID string) ([]models.EventType, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"host_id": hostID})
	if err != nil {
		return nil, fmt.Errorf("error fetching event types for host %s: %w", hostID, err)
	}
	defer cursor.Close(ctx)

	var eventTypes []models.EventType
	if err := cursor.All(ctx, &eventTypes); err != nil {
		return nil, fmt.Errorf("error decoding event types: %w", err)
	}
	return eventTypes, nil
}

func (repo *MongoEventTypeRepo) Update(et *models.EventType) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": et.ID}
	update := bson.M{"$set": et}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating event type %s: %w", et.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("event type %s not found", et.ID)
	}
	return nil
}

func (repo *MongoEventTypeRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting event type %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("event type %s not found", id)
	}
	return nil
}
