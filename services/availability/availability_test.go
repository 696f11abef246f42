package availability

import (
	"testing"

	"slotify/models"
	"slotify/services/booking"
	"slotify/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAvailabilityRepo struct {
	byHost map[string]*models.WeeklyAvailability
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{byHost: make(map[string]*models.WeeklyAvailability)}
}

func (r *fakeAvailabilityRepo) GetByHostID(hostID string) (*models.WeeklyAvailability, error) {
	avail, ok := r.byHost[hostID]
	if !ok {
		return nil, nil
	}
	cp := *avail
	return &cp, nil
}

func (r *fakeAvailabilityRepo) Upsert(avail *models.WeeklyAvailability) error {
	cp := *avail
	r.byHost[avail.HostID] = &cp
	return nil
}

func TestGetFallsBackToDefaultWithoutPersisting(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := &DefaultAvailabilityService{Repo: repo}

	avail, err := svc.Get("host-1")
	require.NoError(t, err)
	require.NotNil(t, avail)

	assert.True(t, avail.Schedule["monday"].IsWorking)
	assert.Equal(t, "09:00", avail.Schedule["monday"].Start)
	assert.False(t, avail.Schedule["saturday"].IsWorking)

	// The fallback must not be written to the store.
	assert.Empty(t, repo.byHost)
}

func TestGetReturnsStoredAvailability(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := &DefaultAvailabilityService{Repo: repo}

	stored := scheduling.DefaultWeeklyAvailability("host-1")
	stored.Schedule["monday"] = models.DaySchedule{IsWorking: true, Start: "10:00", End: "14:00"}
	require.NoError(t, repo.Upsert(&stored))

	avail, err := svc.Get("host-1")
	require.NoError(t, err)
	assert.Equal(t, "10:00", avail.Schedule["monday"].Start)
}

func TestUpdateRoundTrip(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := &DefaultAvailabilityService{Repo: repo}

	in := scheduling.DefaultWeeklyAvailability("ignored")
	in.Exceptions = []models.DateException{
		{Date: "2026-12-25", Schedule: models.DaySchedule{IsWorking: false}},
	}

	saved, err := svc.Update("host-1", &in)
	require.NoError(t, err)
	assert.Equal(t, "host-1", saved.HostID)
	assert.NotEmpty(t, saved.ID)

	// A second update keeps the document's identity.
	again, err := svc.Update("host-1", &in)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, again.ID)
	assert.Equal(t, saved.CreatedAt, again.CreatedAt)
}

func TestUpdateRejectsBadInput(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: newFakeAvailabilityRepo()}

	cases := []struct {
		name  string
		mut   func(*models.WeeklyAvailability)
		field string
	}{
		{
			name:  "unknown weekday",
			mut:   func(a *models.WeeklyAvailability) { a.Schedule["someday"] = models.DaySchedule{IsWorking: false} },
			field: "schedule",
		},
		{
			name: "malformed clock",
			mut: func(a *models.WeeklyAvailability) {
				a.Schedule["monday"] = models.DaySchedule{IsWorking: true, Start: "9am", End: "17:00"}
			},
			field: "schedule",
		},
		{
			name: "inverted hours",
			mut: func(a *models.WeeklyAvailability) {
				a.Schedule["monday"] = models.DaySchedule{IsWorking: true, Start: "17:00", End: "09:00"}
			},
			field: "schedule",
		},
		{
			name: "bad exception date",
			mut: func(a *models.WeeklyAvailability) {
				a.Exceptions = []models.DateException{{Date: "25-12-2026", Schedule: models.DaySchedule{IsWorking: false}}}
			},
			field: "exceptions",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := scheduling.DefaultWeeklyAvailability("host-1")
			tc.mut(&in)

			_, err := svc.Update("host-1", &in)
			var valErr *booking.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tc.field, valErr.Field)
		})
	}
}

func TestUpdateAllowsNonWorkingDaysWithoutHours(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: newFakeAvailabilityRepo()}

	in := scheduling.DefaultWeeklyAvailability("host-1")
	in.Schedule["monday"] = models.DaySchedule{IsWorking: false}

	_, err := svc.Update("host-1", &in)
	assert.NoError(t, err)
}
