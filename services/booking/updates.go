package booking

import (
	"fmt"
	"time"

	"slotify/models"
	"slotify/services/scheduling"
	"slotify/utils"

	"go.uber.org/zap"
)

func (s *DefaultBookingService) UpdateStatus(hostID, bookingID string, to models.BookingStatus) (*models.Booking, error) {
	if !models.ValidStatus(to) {
		return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", to))
	}

	b, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if b.HostID != hostID {
		return nil, NewForbiddenError("booking belongs to another host")
	}
	if !scheduling.CanTransition(b.Status, to) {
		return nil, NewValidationError("status",
			fmt.Sprintf("cannot move a %s booking to %s", b.Status, to))
	}

	from := b.Status
	b.Status = to
	b.UpdatedAt = time.Now().UTC()
	if err := s.Bookings.Update(b); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	utils.GetLogger().Info("booking status changed",
		zap.String("bookingID", b.ID),
		zap.String("from", string(from)),
		zap.String("to", string(to)))

	s.notifyAfterChange(b, to == models.BookingCancelled)
	return b, nil
}

func (s *DefaultBookingService) Reschedule(actor Actor, bookingID string, newStart time.Time) (*models.Booking, error) {
	b, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, b, manageReschedule); err != nil {
		return nil, err
	}
	if !b.Blocks() {
		return nil, NewValidationError("status",
			fmt.Sprintf("a %s booking cannot be rescheduled", b.Status))
	}

	et, err := s.EventTypes.GetByID(b.EventTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event type: %w", err)
	}
	if et == nil {
		return nil, NewNotFoundError("event type", b.EventTypeID)
	}

	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		loc = time.UTC
	}

	start := newStart.UTC()
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

	avail, err := s.hostAvailability(b.HostID)
	if err != nil {
		return nil, err
	}
	if err := s.checkOfferedExcluding(avail, et, proposed, loc, b.ID); err != nil {
		return nil, err
	}

	err = s.withHostLock(b.HostID, func() error {
		local := start.In(loc)
		dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		existing, err := s.Bookings.FindBlockingForDay(b.HostID, dayStart)
		if err != nil {
			return fmt.Errorf("failed to load existing bookings: %w", err)
		}
		if err := scheduling.AdmitExcluding(proposed, existing, b.ID); err != nil {
			return err
		}
		b.Interval = proposed
		b.RescheduleCount++
		b.UpdatedAt = time.Now().UTC()
		return s.Bookings.Update(b)
	})
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking rescheduled",
		zap.String("bookingID", b.ID),
		zap.Time("newStart", proposed.Start),
		zap.Int("rescheduleCount", b.RescheduleCount))

	host, et2 := s.lookupContext(b)
	if et2 != nil {
		go s.Notifier.SendRescheduled(b, et2, hostEmail(host))
		s.enqueueReminder(b, et2)
	}
	return b, nil
}

func (s *DefaultBookingService) Cancel(actor Actor, bookingID, reason string) (*models.Booking, error) {
	b, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, b, manageCancel); err != nil {
		return nil, err
	}
	if !scheduling.CanTransition(b.Status, models.BookingCancelled) {
		return nil, NewValidationError("status",
			fmt.Sprintf("a %s booking cannot be cancelled", b.Status))
	}

	b.Status = models.BookingCancelled
	b.CancellationReason = reason
	b.UpdatedAt = time.Now().UTC()
	if err := s.Bookings.Update(b); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	utils.GetLogger().Info("booking cancelled", zap.String("bookingID", b.ID))
	s.notifyAfterChange(b, true)
	return b, nil
}

func (s *DefaultBookingService) loadBooking(id string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if b == nil {
		return nil, NewNotFoundError("booking", id)
	}
	return b, nil
}

// authorize permits the owning host, or an invitee presenting a valid
// manage token issued for this booking and purpose.
func (s *DefaultBookingService) authorize(actor Actor, b *models.Booking, purpose string) error {
	if actor.HostID != "" && actor.HostID == b.HostID {
		return nil
	}
	if actor.ManageToken != "" {
		if err := utils.VerifyManageToken(actor.ManageToken, b.ID, purpose); err != nil {
			return NewForbiddenError(err.Error())
		}
		return nil
	}
	return NewForbiddenError("not authorized to manage this booking")
}

func (s *DefaultBookingService) lookupContext(b *models.Booking) (*models.Host, *models.EventType) {
	host, err := s.Hosts.GetByID(b.HostID)
	if err != nil {
		utils.GetLogger().Warn("failed to load host for notification", zap.Error(err))
	}
	et, err := s.EventTypes.GetByID(b.EventTypeID)
	if err != nil {
		utils.GetLogger().Warn("failed to load event type for notification", zap.Error(err))
	}
	return host, et
}

func (s *DefaultBookingService) notifyAfterChange(b *models.Booking, cancelled bool) {
	host, et := s.lookupContext(b)
	if et == nil {
		return
	}
	if cancelled {
		go s.Notifier.SendCancelled(b, et, hostEmail(host))
		return
	}
	go s.Notifier.SendStatusChanged(b, et, hostEmail(host))
}

func hostEmail(h *models.Host) string {
	if h == nil {
		return ""
	}
	return h.Email
}
