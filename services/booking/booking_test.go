package booking

import (
	"errors"
	"testing"
	"time"

	"grindsphere/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeBookingRepo struct {
	bookings map[string]*models.BookingRequest
}

func (f *fakeBookingRepo) GetByID(id string) (*models.BookingRequest, error) {
	if b, ok := f.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, errors.New("booking not found")
}

func (f *fakeBookingRepo) GetByCustomer(customerID string) ([]models.BookingRequest, error) {
	var out []models.BookingRequest
	for _, b := range f.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByHustler(hustlerID string) ([]models.BookingRequest, error) {
	var out []models.BookingRequest
	for _, b := range f.bookings {
		if b.HustlerID == hustlerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Create(b *models.BookingRequest) error {
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(id, status string) error {
	b, ok := f.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.Status = status
	return nil
}

type fakeServiceRepo struct {
	services   map[string]*models.Service
	increments int
}

func (f *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	if s, ok := f.services[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, errors.New("service not found")
}

func (f *fakeServiceRepo) GetAll() ([]models.Service, error)           { return nil, nil }
func (f *fakeServiceRepo) GetByOwner(string) ([]models.Service, error) { return nil, nil }
func (f *fakeServiceRepo) Create(*models.Service) error                { return nil }
func (f *fakeServiceRepo) Replace(*models.Service) error               { return nil }
func (f *fakeServiceRepo) Delete(string) error                         { return nil }
func (f *fakeServiceRepo) IncrementViews(string) error                 { return nil }
func (f *fakeServiceRepo) SetRating(string, float64) error             { return nil }

func (f *fakeServiceRepo) IncrementBookings(id string) error {
	f.increments++
	f.services[id].Bookings++
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, errors.New("user not found")
}

func (f *fakeUserRepo) GetByEmail(string) (*models.User, error)      { return nil, nil }
func (f *fakeUserRepo) GetByIDs([]string) ([]models.User, error)     { return nil, nil }
func (f *fakeUserRepo) Create(*models.User) error                    { return nil }
func (f *fakeUserRepo) UpdateSet(string, bson.M) error               { return nil }
func (f *fakeUserRepo) Delete(string) error                          { return nil }
func (f *fakeUserRepo) AddSavedService(string, string) error         { return nil }
func (f *fakeUserRepo) RemoveSavedService(string, string) error      { return nil }
func (f *fakeUserRepo) CountBySavedServices([]string) (int64, error) { return 0, nil }

type fakePusher struct {
	payloads []models.PushPayload
}

func (f *fakePusher) EnqueuePush(p models.PushPayload) error {
	f.payloads = append(f.payloads, p)
	return nil
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeServiceRepo, *fakePusher) {
	bookingRepo := &fakeBookingRepo{bookings: map[string]*models.BookingRequest{}}
	serviceRepo := &fakeServiceRepo{services: map[string]*models.Service{
		"svc-1": {
			ID:        "svc-1",
			OwnerUID:  "hustler-1",
			OwnerName: "Zanele M",
			Name:      "Hair by Zanele",
			Price:     150,
		},
	}}
	userRepo := &fakeUserRepo{users: map[string]*models.User{
		"customer-1": {ID: "customer-1", Name: "Thabo", Surname: "Mokoena", Role: models.RoleCustomer},
	}}
	pusher := &fakePusher{}
	svc := &DefaultBookingService{
		Repo:     bookingRepo,
		Services: serviceRepo,
		Users:    userRepo,
		Pusher:   pusher,
	}
	return svc, bookingRepo, serviceRepo, pusher
}

func TestCreateBookingSnapshotsDetails(t *testing.T) {
	svc, _, serviceRepo, pusher := newTestService()

	req, err := svc.Create("customer-1", models.BookingInput{
		ServiceID: "svc-1",
		Date:      time.Now().Add(48 * time.Hour),
		Message:   "Saturday morning please",
	})
	require.NoError(t, err)

	assert.Equal(t, models.BookingPending, req.Status)
	assert.Equal(t, "Hair by Zanele", req.ServiceName)
	assert.Equal(t, "Thabo Mokoena", req.CustomerName)
	assert.Equal(t, "hustler-1", req.HustlerID)
	assert.Equal(t, 150.0, req.Price)
	assert.Equal(t, 1, serviceRepo.increments)

	require.Len(t, pusher.payloads, 1)
	assert.Equal(t, "hustler-1", pusher.payloads[0].UserID)
}

func TestCreateBookingRejectsOwnService(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Create("hustler-1", models.BookingInput{ServiceID: "svc-1"})
	assert.Error(t, err)
}

func TestUpdateStatusTransitions(t *testing.T) {
	svc, bookingRepo, _, pusher := newTestService()

	created, err := svc.Create("customer-1", models.BookingInput{ServiceID: "svc-1", Date: time.Now()})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus("hustler-1", created.ID, models.BookingAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingAccepted, updated.Status)
	assert.Equal(t, models.BookingAccepted, bookingRepo.bookings[created.ID].Status)

	// Customer is notified of the decision.
	assert.Equal(t, "customer-1", pusher.payloads[len(pusher.payloads)-1].UserID)

	updated, err = svc.UpdateStatus("hustler-1", created.ID, models.BookingCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, updated.Status)
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	svc, _, _, _ := newTestService()

	created, err := svc.Create("customer-1", models.BookingInput{ServiceID: "svc-1", Date: time.Now()})
	require.NoError(t, err)

	// pending cannot jump straight to completed.
	_, err = svc.UpdateStatus("hustler-1", created.ID, models.BookingCompleted)
	assert.Error(t, err)
}

func TestUpdateStatusRejectsWrongHustler(t *testing.T) {
	svc, _, _, _ := newTestService()

	created, err := svc.Create("customer-1", models.BookingInput{ServiceID: "svc-1", Date: time.Now()})
	require.NoError(t, err)

	_, err = svc.UpdateStatus("someone-else", created.ID, models.BookingAccepted)
	assert.Error(t, err)
}

func TestValidateTransition(t *testing.T) {
	assert.True(t, ValidateTransition(models.BookingPending, models.BookingAccepted))
	assert.True(t, ValidateTransition(models.BookingPending, models.BookingRejected))
	assert.True(t, ValidateTransition(models.BookingAccepted, models.BookingCompleted))

	assert.False(t, ValidateTransition(models.BookingRejected, models.BookingAccepted))
	assert.False(t, ValidateTransition(models.BookingCompleted, models.BookingPending))
	assert.False(t, ValidateTransition(models.BookingAccepted, models.BookingPending))
}
