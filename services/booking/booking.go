package booking

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	availabilityRepo "slotify/database/repository/availability"
	bookingRepo "slotify/database/repository/booking"
	eventTypeRepo "slotify/database/repository/eventtype"
	hostRepo "slotify/database/repository/host"
	"slotify/models"
	"slotify/services/notification"
	"slotify/services/scheduling"
	"slotify/services/tasks"
	"slotify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Bookings     bookingRepo.BookingRepository
	EventTypes   eventTypeRepo.EventTypeRepository
	Availability availabilityRepo.AvailabilityRepository
	Hosts        hostRepo.HostRepository
	Notifier     notification.NotificationService
	// Locker serializes admission per host; defaults to the Redis lock.
	Locker HostLocker
	// Remind schedules the reminder task; defaults to tasks.EnqueueReminder.
	Remind func(b *models.Booking, et *models.EventType) error
}

// HostLocker serializes booking writes for one host.
type HostLocker interface {
	Acquire(ctx context.Context, hostID string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, hostID string)
}

// RedisHostLocker backs HostLocker with the shared Redis SETNX lock.
type RedisHostLocker struct{}

func (RedisHostLocker) Acquire(ctx context.Context, hostID string, ttl time.Duration) (bool, error) {
	return utils.AcquireHostLock(ctx, hostID, ttl)
}

func (RedisHostLocker) Release(ctx context.Context, hostID string) {
	utils.ReleaseHostLock(ctx, hostID)
}

const (
	lockTTL          = 5 * time.Second
	lockAttempts     = 3
	lockRetryBase    = 50 * time.Millisecond
	lockRetryJitter  = 100 * time.Millisecond
	manageReschedule = "reschedule"
	manageCancel     = "cancel"
)

func (s *DefaultBookingService) CreateBooking(req *CreateBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	et, err := s.EventTypes.GetByID(req.EventTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event type: %w", err)
	}
	if et == nil || !et.IsActive {
		return nil, NewNotFoundError("event type", req.EventTypeID)
	}

	host, err := s.Hosts.GetByID(et.HostID)
	if err != nil {
		return nil, fmt.Errorf("failed to load host: %w", err)
	}
	if host == nil {
		return nil, NewNotFoundError("host", et.HostID)
	}

	loc, err := time.LoadLocation(req.Timezone)
	if err != nil {
		return nil, NewValidationError("timezone", fmt.Sprintf("unknown timezone %q", req.Timezone))
	}

	start := req.Start.UTC()
	now := time.Now().UTC()
	if start.Before(now.Add(time.Duration(et.MinNoticeMinutes) * time.Minute)) {
		return nil, NewValidationError("start",
			fmt.Sprintf("bookings require at least %d minutes notice", et.MinNoticeMinutes))
	}
	if start.After(now.AddDate(0, 0, et.MaxBookingDays)) {
		return nil, NewValidationError("start",
			fmt.Sprintf("bookings can be made at most %d days ahead", et.MaxBookingDays))
	}

	proposed := models.TimeInterval{
		Start: start,
		End:   start.Add(time.Duration(et.Duration) * time.Minute),
	}
	if !req.End.IsZero() && !req.End.UTC().Equal(proposed.End) {
		return nil, NewValidationError("end",
			fmt.Sprintf("end must be start plus the template duration of %d minutes", et.Duration))
	}

	avail, err := s.hostAvailability(et.HostID)
	if err != nil {
		return nil, err
	}

	// The requested interval must be one the generator would actually
	// offer for that day: inside the working window, on the slot grid,
	// and clear of buffered neighbours.
	if err := s.checkOffered(avail, et, proposed, loc); err != nil {
		return nil, err
	}

	b := &models.Booking{
		ID:           uuid.New().String(),
		UID:          newShareCode(),
		EventTypeID:  et.ID,
		HostID:       et.HostID,
		Interval:     proposed,
		InviteeEmail: strings.ToLower(strings.TrimSpace(req.InviteeEmail)),
		InviteeName:  strings.TrimSpace(req.InviteeName),
		InviteePhone: strings.TrimSpace(req.InviteePhone),
		Notes:        req.Notes,
		Location:     req.Location,
		Timezone:     req.Timezone,
		Status:       scheduling.InitialStatus(et.RequiresConfirmation),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Admission and insert run under a per-host lock with a fresh read,
	// so two requests racing for the same slot cannot both pass.
	err = s.withHostLock(et.HostID, func() error {
		dayStart := time.Date(start.In(loc).Year(), start.In(loc).Month(), start.In(loc).Day(), 0, 0, 0, 0, loc)
		existing, err := s.Bookings.FindBlockingForDay(et.HostID, dayStart)
		if err != nil {
			return fmt.Errorf("failed to load existing bookings: %w", err)
		}
		if err := scheduling.Admit(proposed, existing); err != nil {
			return err
		}
		return s.Bookings.Create(b)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("booking created",
		zap.String("bookingID", b.ID),
		zap.String("uid", b.UID),
		zap.String("hostID", b.HostID),
		zap.String("status", string(b.Status)))

	go s.Notifier.SendBookingCreated(b, et, host.Email, host.Name)
	s.enqueueReminder(b, et)

	return b, nil
}

func (s *DefaultBookingService) Get(idOrUID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(idOrUID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if b == nil && len(idOrUID) == shareCodeLength {
		b, err = s.Bookings.GetByUID(strings.ToUpper(idOrUID))
		if err != nil {
			return nil, fmt.Errorf("failed to load booking: %w", err)
		}
	}
	if b == nil {
		return nil, NewNotFoundError("booking", idOrUID)
	}
	return b, nil
}

func (s *DefaultBookingService) ListByHost(q ListQuery) ([]models.Booking, error) {
	var statuses []models.BookingStatus
	if q.Status != "" {
		if !models.ValidStatus(q.Status) {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", q.Status))
		}
		statuses = []models.BookingStatus{q.Status}
	}
	list, err := s.Bookings.FindByHost(q.HostID, q.From, q.To, statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return list, nil
}

func (s *DefaultBookingService) locker() HostLocker {
	if s.Locker == nil {
		return RedisHostLocker{}
	}
	return s.Locker
}

func (s *DefaultBookingService) enqueueReminder(b *models.Booking, et *models.EventType) {
	remind := s.Remind
	if remind == nil {
		remind = tasks.EnqueueReminder
	}
	if err := remind(b, et); err != nil {
		utils.GetLogger().Warn("failed to enqueue booking reminder",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
}

// withHostLock runs fn while holding the host's booking lock, retrying the
// acquisition a few times with jitter before giving up.
func (s *DefaultBookingService) withHostLock(hostID string, fn func() error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	lock := s.locker()
	for attempt := 1; attempt <= lockAttempts; attempt++ {
		ok, err := lock.Acquire(ctx, hostID, lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire booking lock: %w", err)
		}
		if ok {
			defer lock.Release(ctx, hostID)
			return fn()
		}
		if attempt < lockAttempts {
			sleep := lockRetryBase*time.Duration(attempt) + time.Duration(rand.Int63n(int64(lockRetryJitter)))
			time.Sleep(sleep)
		}
	}
	return &SlotTakenBusyError{HostID: hostID}
}

// SlotTakenBusyError signals the host's booking lock stayed contended for
// every attempt. Callers should retry the request.
type SlotTakenBusyError struct {
	HostID string
}

func (e *SlotTakenBusyError) Error() string {
	return "host calendar is busy, please retry"
}

func validateCreateRequest(req *CreateBookingRequest) error {
	if req.EventTypeID == "" {
		return NewValidationError("eventTypeId", "event type is required")
	}
	if req.Start.IsZero() {
		return NewValidationError("start", "start time is required")
	}
	email := strings.TrimSpace(req.InviteeEmail)
	if email == "" || !strings.Contains(email, "@") {
		return NewValidationError("inviteeEmail", "a valid email is required")
	}
	if strings.TrimSpace(req.InviteeName) == "" {
		return NewValidationError("inviteeName", "name is required")
	}
	if req.Timezone == "" {
		req.Timezone = "UTC"
	}
	return nil
}
