package booking

import (
	"testing"
	"time"

	"slotify/models"
	"slotify/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			cp := b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) GetByUID(uid string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.UID == uid {
			cp := b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) Update(b *models.Booking) error {
	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			r.bookings[i] = *b
			return nil
		}
	}
	return nil
}

func (r *fakeBookingRepo) FindByHost(hostID string, from, to time.Time, statuses []models.BookingStatus) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.HostID != hostID || b.Interval.Start.Before(from) || !b.Interval.Start.Before(to) {
			continue
		}
		if len(statuses) > 0 {
			match := false
			for _, s := range statuses {
				if b.Status == s {
					match = true
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) FindBlockingForDay(hostID string, dayStart time.Time) ([]models.Booking, error) {
	dayEnd := dayStart.AddDate(0, 0, 1)
	var out []models.Booking
	for _, b := range r.bookings {
		if b.HostID != hostID || !b.Blocks() {
			continue
		}
		if b.Interval.Start.Before(dayEnd) && b.Interval.End.After(dayStart) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeEventTypeRepo struct {
	byID map[string]*models.EventType
}

func (r *fakeEventTypeRepo) Create(et *models.EventType) error { r.byID[et.ID] = et; return nil }
func (r *fakeEventTypeRepo) GetByID(id string) (*models.EventType, error) {
	et, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *et
	return &cp, nil
}
func (r *fakeEventTypeRepo) GetByHostID(string) ([]models.EventType, error) { return nil, nil }
func (r *fakeEventTypeRepo) Update(et *models.EventType) error              { r.byID[et.ID] = et; return nil }
func (r *fakeEventTypeRepo) Delete(id string) error                         { delete(r.byID, id); return nil }

type fakeAvailabilityRepo struct {
	byHost map[string]*models.WeeklyAvailability
}

func (r *fakeAvailabilityRepo) GetByHostID(hostID string) (*models.WeeklyAvailability, error) {
	avail, ok := r.byHost[hostID]
	if !ok {
		return nil, nil
	}
	cp := *avail
	return &cp, nil
}
func (r *fakeAvailabilityRepo) Upsert(a *models.WeeklyAvailability) error {
	r.byHost[a.HostID] = a
	return nil
}

type fakeHostRepo struct {
	byID map[string]*models.Host
}

func (r *fakeHostRepo) Create(h *models.Host) error { r.byID[h.ID] = h; return nil }
func (r *fakeHostRepo) GetByID(id string) (*models.Host, error) {
	h, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}
func (r *fakeHostRepo) GetByEmail(string) (*models.Host, error) { return nil, nil }

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeEventTypeRepo) {
	bk := &fakeBookingRepo{}
	et := &fakeEventTypeRepo{byID: make(map[string]*models.EventType)}
	av := &fakeAvailabilityRepo{byHost: make(map[string]*models.WeeklyAvailability)}
	h := &fakeHostRepo{byID: make(map[string]*models.Host)}
	svc := &DefaultBookingService{
		Bookings:     bk,
		EventTypes:   et,
		Availability: av,
		Hosts:        h,
	}
	return svc, bk, et
}

func testTemplate(hostID string) *models.EventType {
	return &models.EventType{
		ID:               "et-1",
		HostID:           hostID,
		Title:            "Intro Call",
		Duration:         60,
		MinNoticeMinutes: 60,
		MaxBookingDays:   60,
		IsActive:         true,
	}
}

// nextMonday returns the start of a Monday comfortably inside the booking
// horizon but past any notice cutoff.
func nextMonday(t *testing.T) string {
	t.Helper()
	d := time.Now().UTC().AddDate(0, 0, 7)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func TestGetAvailableSlotsUnknownTemplate(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetAvailableSlots(SlotQuery{EventTypeID: "nope", Date: "2026-03-02"})
	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestGetAvailableSlotsInactiveTemplate(t *testing.T) {
	svc, _, etRepo := newTestService()
	et := testTemplate("host-1")
	et.IsActive = false
	etRepo.byID[et.ID] = et

	_, err := svc.GetAvailableSlots(SlotQuery{EventTypeID: et.ID, Date: "2026-03-02"})
	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestGetAvailableSlotsBadInput(t *testing.T) {
	svc, _, etRepo := newTestService()
	et := testTemplate("host-1")
	etRepo.byID[et.ID] = et

	var valErr *ValidationError

	_, err := svc.GetAvailableSlots(SlotQuery{EventTypeID: et.ID, Date: "03/02/2026"})
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "date", valErr.Field)

	_, err = svc.GetAvailableSlots(SlotQuery{EventTypeID: et.ID, Date: "2026-03-02", Timezone: "Mars/Olympus"})
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "timezone", valErr.Field)
}

func TestGetAvailableSlotsOpenDay(t *testing.T) {
	svc, _, etRepo := newTestService()
	et := testTemplate("host-1")
	etRepo.byID[et.ID] = et

	date := nextMonday(t)
	slots, err := svc.GetAvailableSlots(SlotQuery{EventTypeID: et.ID, Date: date, Timezone: "UTC"})
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	// Default schedule: Monday 09:00-17:00, 60-minute events on a
	// 15-minute grid.
	assert.Equal(t, date+"T09:00:00Z", slots[0].Start)
	assert.Equal(t, date+"T10:00:00Z", slots[0].End)
	assert.Equal(t, date+"T16:00:00Z", slots[len(slots)-1].Start)
	assert.Len(t, slots, 29)
}

func TestGetAvailableSlotsBeyondHorizonIsEmpty(t *testing.T) {
	svc, _, etRepo := newTestService()
	et := testTemplate("host-1")
	etRepo.byID[et.ID] = et

	far := time.Now().UTC().AddDate(0, 0, et.MaxBookingDays+10).Format("2006-01-02")
	slots, err := svc.GetAvailableSlots(SlotQuery{EventTypeID: et.ID, Date: far})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailableSlotsExcludesBookedInterval(t *testing.T) {
	svc, bkRepo, etRepo := newTestService()
	et := testTemplate("host-1")
	etRepo.byID[et.ID] = et

	date := nextMonday(t)
	day, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)

	bkRepo.bookings = append(bkRepo.bookings, models.Booking{
		ID:     "b-1",
		HostID: "host-1",
		Status: models.BookingConfirmed,
		Interval: models.TimeInterval{
			Start: day.Add(9 * time.Hour),
			End:   day.Add(10 * time.Hour),
		},
	})

	slots, err := svc.GetAvailableSlots(SlotQuery{EventTypeID: et.ID, Date: date, Timezone: "UTC"})
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, date+"T10:00:00Z", slots[0].Start)
}

func TestGetAvailableSlotsExcludesOvernightSpillover(t *testing.T) {
	svc, bkRepo, etRepo := newTestService()
	et := testTemplate("host-1")
	etRepo.byID[et.ID] = et

	date := nextMonday(t)
	day, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)

	// Starts the previous evening but occupies the morning until 09:30.
	bkRepo.bookings = append(bkRepo.bookings, models.Booking{
		ID:     "overnight",
		HostID: "host-1",
		Status: models.BookingConfirmed,
		Interval: models.TimeInterval{
			Start: day.Add(-1 * time.Hour),
			End:   day.Add(9*time.Hour + 30*time.Minute),
		},
	})

	slots, err := svc.GetAvailableSlots(SlotQuery{EventTypeID: et.ID, Date: date, Timezone: "UTC"})
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, date+"T09:30:00Z", slots[0].Start)
}

func TestCheckOfferedRejectsOffGridStart(t *testing.T) {
	svc, _, etRepo := newTestService()
	et := testTemplate("host-1")
	etRepo.byID[et.ID] = et

	day, err := time.Parse("2006-01-02", nextMonday(t))
	require.NoError(t, err)

	avail := scheduling.DefaultWeeklyAvailability("host-1")

	// 09:07 is inside the window but not a generated slot start.
	off := models.TimeInterval{
		Start: day.Add(9*time.Hour + 7*time.Minute),
		End:   day.Add(10*time.Hour + 7*time.Minute),
	}
	err = svc.checkOffered(&avail, et, off, time.UTC)
	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)

	on := models.TimeInterval{
		Start: day.Add(9 * time.Hour),
		End:   day.Add(10 * time.Hour),
	}
	assert.NoError(t, svc.checkOffered(&avail, et, on, time.UTC))
}

func TestListByHostRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ListByHost(ListQuery{HostID: "host-1", Status: "sideways"})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "status", valErr.Field)
}

func TestGetByIDOrShareCode(t *testing.T) {
	svc, bkRepo, _ := newTestService()
	bkRepo.bookings = append(bkRepo.bookings, models.Booking{ID: "booking-1", UID: "ABC234"})

	byID, err := svc.Get("booking-1")
	require.NoError(t, err)
	assert.Equal(t, "ABC234", byID.UID)

	byUID, err := svc.Get("abc234")
	require.NoError(t, err)
	assert.Equal(t, "booking-1", byUID.ID)

	_, err = svc.Get("missing")
	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}
