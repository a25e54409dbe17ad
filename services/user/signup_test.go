package user

import (
	"testing"

	"grindsphere/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeUserRepo is an in-memory UserRepository that counts calls.
type fakeUserRepo struct {
	users map[string]*models.User
	calls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	f.calls++
	if u, ok := f.users[id]; ok {
		cp := *u
		cp.SavedServices = append([]string(nil), u.SavedServices...)
		return &cp, nil
	}
	return nil, assert.AnError
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	f.calls++
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByIDs(ids []string) ([]models.User, error) {
	f.calls++
	var out []models.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.calls++
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) UpdateSet(id string, fields bson.M) error {
	f.calls++
	u, ok := f.users[id]
	if !ok {
		return assert.AnError
	}
	if v, ok := fields["tokenHash"].(string); ok {
		u.TokenHash = v
	}
	if v, ok := fields["profilePicUrl"].(string); ok {
		u.ProfilePicURL = v
	}
	if v, ok := fields["fcmToken"].(string); ok {
		u.FCMToken = v
	}
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	f.calls++
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) AddSavedService(id, serviceID string) error {
	f.calls++
	u, ok := f.users[id]
	if !ok {
		return assert.AnError
	}
	for _, s := range u.SavedServices {
		if s == serviceID {
			return nil
		}
	}
	u.SavedServices = append(u.SavedServices, serviceID)
	return nil
}

func (f *fakeUserRepo) RemoveSavedService(id, serviceID string) error {
	f.calls++
	u, ok := f.users[id]
	if !ok {
		return assert.AnError
	}
	out := make([]string, 0, len(u.SavedServices))
	for _, s := range u.SavedServices {
		if s != serviceID {
			out = append(out, s)
		}
	}
	u.SavedServices = out
	return nil
}

func (f *fakeUserRepo) CountBySavedServices(serviceIDs []string) (int64, error) {
	f.calls++
	var n int64
	for _, u := range f.users {
		for _, saved := range u.SavedServices {
			for _, id := range serviceIDs {
				if saved == id {
					n++
				}
			}
		}
	}
	return n, nil
}

func validSignup() models.SignupRequest {
	return models.SignupRequest{
		Name:            "Thabo",
		Surname:         "Mokoena",
		Email:           "thabo@example.com",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
		Role:            models.RoleHustler,
	}
}

func TestRegisterSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(validSignup())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleHustler, resp.Role)

	stored := repo.users[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.NotEmpty(t, stored.TokenHash)
	assert.NotNil(t, stored.SavedServices)
}

func TestRegisterPasswordMismatchIssuesNoRemoteCalls(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	req := validSignup()
	req.ConfirmPassword = "different"

	_, err := svc.Register(req)
	require.Error(t, err)
	assert.IsType(t, ValidationError{}, err)
	assert.Equal(t, "passwords do not match", err.Error())
	assert.Zero(t, repo.calls, "validation failure must not reach the repository")
}

func TestRegisterEmptyFieldsIssuesNoRemoteCalls(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	req := validSignup()
	req.Role = ""

	_, err := svc.Register(req)
	require.Error(t, err)
	assert.Equal(t, "please fill in all fields and select a role", err.Error())
	assert.Zero(t, repo.calls)
}

func TestRegisterInvalidRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	req := validSignup()
	req.Role = "admin"

	_, err := svc.Register(req)
	require.Error(t, err)
	assert.Zero(t, repo.calls)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Register(validSignup())
	require.NoError(t, err)

	_, err = svc.Register(validSignup())
	require.Error(t, err)
	assert.IsType(t, ValidationError{}, err)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Register(validSignup())
	require.NoError(t, err)

	_, err = svc.Authenticate("thabo@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	reg, err := svc.Register(validSignup())
	require.NoError(t, err)

	resp, err := svc.Authenticate("thabo@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, resp.ID)
	assert.NotEmpty(t, resp.Token)
}
