package user

import (
	"testing"

	"grindsphere/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(repo *fakeUserRepo, saved ...string) string {
	u := &models.User{
		ID:            "u1",
		Name:          "Lerato",
		Email:         "lerato@example.com",
		Role:          models.RoleCustomer,
		SavedServices: append([]string{}, saved...),
	}
	repo.users[u.ID] = u
	return u.ID
}

func TestToggleFavoriteAdds(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	uid := seedUser(repo)

	saved, err := svc.ToggleFavorite(uid, "svc-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-1"}, saved)
}

func TestToggleFavoriteRemoves(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	uid := seedUser(repo, "svc-1", "svc-2")

	saved, err := svc.ToggleFavorite(uid, "svc-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-2"}, saved)
}

func TestToggleFavoriteRemoveLeavesStoredListConsistent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	uid := seedUser(repo, "svc-1", "svc-2")

	saved, err := svc.ToggleFavorite(uid, "svc-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-2"}, saved)

	stored, err := svc.GetUserByID(uid)
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-2"}, stored.SavedServices)
}

func TestToggleFavoriteTwiceRestoresOriginal(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	uid := seedUser(repo, "svc-2")

	_, err := svc.ToggleFavorite(uid, "svc-1")
	require.NoError(t, err)
	saved, err := svc.ToggleFavorite(uid, "svc-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-2"}, saved)
}
