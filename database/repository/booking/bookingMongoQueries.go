package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *MongoBookingRepo) FindByHost(hostID string, from, to time.Time, statuses []models.BookingStatus) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"host_id": hostID}
	if !from.IsZero() || !to.IsZero() {
		rangeFilter := bson.M{}
		if !from.IsZero() {
			rangeFilter["$gte"] = from
		}
		if !to.IsZero() {
			rangeFilter["$lt"] = to
		}
		filter["interval.start"] = rangeFilter
	}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}

	opts := options.Find().SetSort(bson.D{{Key: "interval.start", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings for host %s: %w", hostID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) FindBlockingForDay(hostID string, dayStart time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	dayEnd := dayStart.AddDate(0, 0, 1)

	// Half-open interval overlap with [dayStart, dayEnd): catches bookings
	// spilling in from a previous day, not just ones starting inside it.
	filter := bson.M{
		"host_id":        hostID,
		"status":         bson.M{"$in": []models.BookingStatus{models.BookingPending, models.BookingConfirmed}},
		"interval.start": bson.M{"$lt": dayEnd},
		"interval.end":   bson.M{"$gt": dayStart},
	}

	opts := options.Find().SetSort(bson.D{{Key: "interval.start", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding blocking bookings for host %s: %w", hostID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
