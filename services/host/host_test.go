package host

import (
	"testing"

	"slotify/config"
	"slotify/models"
	"slotify/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHostRepo struct {
	byID    map[string]*models.Host
	byEmail map[string]*models.Host
}

func newFakeHostRepo() *fakeHostRepo {
	return &fakeHostRepo{
		byID:    make(map[string]*models.Host),
		byEmail: make(map[string]*models.Host),
	}
}

func (r *fakeHostRepo) Create(h *models.Host) error {
	cp := *h
	r.byID[h.ID] = &cp
	r.byEmail[h.Email] = &cp
	return nil
}

func (r *fakeHostRepo) GetByID(id string) (*models.Host, error) {
	h, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}

func (r *fakeHostRepo) GetByEmail(email string) (*models.Host, error) {
	h, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}

func newTestService() *DefaultHostService {
	config.AppConfig.JWTSecret = "test-secret"
	return &DefaultHostService{Repo: newFakeHostRepo()}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService()

	h, token, err := svc.Register("Ada@Example.COM", "Ada", "correct-horse")
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ada@example.com", h.Email)
	assert.NotEqual(t, "correct-horse", h.PasswordHash)

	logged, token2, err := svc.Login("ada@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, h.ID, logged.ID)
	assert.NotEmpty(t, token2)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newTestService()
	_, _, err := svc.Register("ada@example.com", "Ada", "correct-horse")
	require.NoError(t, err)

	_, _, err = svc.Login("ada@example.com", "wrong-horse")
	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.Login("ghost@example.com", "whatever")
	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newTestService()
	_, _, err := svc.Register("ada@example.com", "Ada", "correct-horse")
	require.NoError(t, err)

	_, _, err = svc.Register("ADA@example.com", "Other Ada", "different-pass")
	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService()

	cases := []struct {
		email, name, password string
		field                 string
	}{
		{"not-an-email", "Ada", "correct-horse", "email"},
		{"", "Ada", "correct-horse", "email"},
		{"ada@example.com", "  ", "correct-horse", "name"},
		{"ada@example.com", "Ada", "short", "password"},
	}
	for _, tc := range cases {
		_, _, err := svc.Register(tc.email, tc.name, tc.password)
		var valErr *booking.ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, tc.field, valErr.Field)
	}
}

func TestGetMissingHost(t *testing.T) {
	svc := newTestService()

	_, err := svc.Get("nope")
	var nfErr *booking.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}
