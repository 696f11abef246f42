package tasks

import (
	"encoding/json"
	"sync"
	"time"

	"slotify/config"
	"slotify/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

var (
	client     *asynq.Client
	clientOnce sync.Once
)

func getClient() *asynq.Client {
	clientOnce.Do(func() {
		client = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		})
	})
	return client
}

// NewReminderTask builds a reminder task scheduled to fire at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// EnqueueReminder schedules a reminder email for the given booking. The
// reminder fires ReminderLead minutes before the booking starts; bookings
// starting sooner than that get no reminder.
func EnqueueReminder(b *models.Booking, et *models.EventType) error {
	lead := time.Duration(config.AppConfig.ReminderLead) * time.Minute
	fireAt := b.Interval.Start.Add(-lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID: b.ID,
		Email:     b.InviteeEmail,
		Subject:   "Reminder: " + et.Title,
		Body: "This is a reminder for your upcoming booking: " + et.Title +
			".\nStarts at " + b.Interval.Start.Format(time.RFC1123) + ".\n",
		Start:    b.Interval.Start.UTC().Format(time.RFC3339),
		FireDate: fireAt.Format(time.RFC3339),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = getClient().Enqueue(task, opts...)
	return err
}
