package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/notecart/backend/internal/dto"
	apperrors "github.com/user/notecart/backend/pkg/errors"
)

func TestShareHappyPath(t *testing.T) {
	env := newTestEnv(t)
	list := env.createList(t, nil)

	shared, err := env.shareSvc.Share(list.ID, env.owner.ID, "friend@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{env.friend.ID.String()}, shared.SharedWith)
}

func TestShareResolvesEmailCaseInsensitively(t *testing.T) {
	env := newTestEnv(t)
	list := env.createList(t, nil)

	shared, err := env.shareSvc.Share(list.ID, env.owner.ID, "  FRIEND@Example.Com ")
	require.NoError(t, err)
	assert.Equal(t, []string{env.friend.ID.String()}, shared.SharedWith)
}

func TestShareIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	list := env.createList(t, nil)

	once, err := env.shareSvc.Share(list.ID, env.owner.ID, env.friend.Email)
	require.NoError(t, err)
	twice, err := env.shareSvc.Share(list.ID, env.owner.ID, env.friend.Email)
	require.NoError(t, err)

	assert.Equal(t, once.SharedWith, twice.SharedWith)
	assert.Len(t, twice.SharedWith, 1)
}

func TestShareUnknownEmail(t *testing.T) {
	env := newTestEnv(t)
	list := env.createList(t, nil)

	_, err := env.shareSvc.Share(list.ID, env.owner.ID, "nobody@example.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestShareWithSelfRejected(t *testing.T) {
	env := newTestEnv(t)
	list := env.createList(t, nil)

	for _, email := range []string{
		"owner@example.com",
		"OWNER@EXAMPLE.COM",
		"  owner@example.com  ",
	} {
		_, err := env.shareSvc.Share(list.ID, env.owner.ID, email)
		assert.ErrorIs(t, err, apperrors.ErrCannotShareWithSelf, "email %q", email)
	}
}

func TestShareByNonOwnerRejected(t *testing.T) {
	env := newTestEnv(t)
	list := env.createList(t, nil)

	_, err := env.shareSvc.Share(list.ID, env.friend.ID, env.stranger.Email)
	assert.ErrorIs(t, err, apperrors.ErrListNotFound)

	_, err = env.shareSvc.Share("missing", env.owner.ID, env.friend.Email)
	assert.ErrorIs(t, err, apperrors.ErrListNotFound)
}

func TestUnshare(t *testing.T) {
	env := newTestEnv(t)
	list := env.createList(t, nil)

	_, err := env.shareSvc.Share(list.ID, env.owner.ID, env.friend.Email)
	require.NoError(t, err)

	revoked, err := env.shareSvc.Unshare(list.ID, env.owner.ID, env.friend.ID.String())
	require.NoError(t, err)
	assert.Empty(t, revoked.SharedWith)

	// revoking an absent user is a no-op
	again, err := env.shareSvc.Unshare(list.ID, env.owner.ID, env.friend.ID.String())
	require.NoError(t, err)
	assert.Empty(t, again.SharedWith)
}

func TestUnshareByNonOwnerRejected(t *testing.T) {
	env := newTestEnv(t)
	list := env.createList(t, nil)

	_, err := env.shareSvc.Share(list.ID, env.owner.ID, env.friend.Email)
	require.NoError(t, err)

	_, err = env.shareSvc.Unshare(list.ID, env.friend.ID, env.friend.ID.String())
	assert.ErrorIs(t, err, apperrors.ErrListNotFound)
}

func TestSharedUserProfiles(t *testing.T) {
	env := newTestEnv(t)
	list := env.createList(t, nil)

	_, err := env.shareSvc.Share(list.ID, env.owner.ID, env.friend.Email)
	require.NoError(t, err)

	profiles, err := env.shareSvc.SharedUserProfiles(list.ID, env.owner.ID)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, env.friend.ID.String(), profiles[0].UID)
	require.NotNil(t, profiles[0].Email)
	assert.Equal(t, "friend@example.com", *profiles[0].Email)
	require.NotNil(t, profiles[0].DisplayName)
	assert.Equal(t, "Friend", *profiles[0].DisplayName)
}

func TestSharedUserProfilesBestEffort(t *testing.T) {
	env := newTestEnv(t)
	list := env.createList(t, nil)

	_, err := env.shareSvc.Share(list.ID, env.owner.ID, env.friend.Email)
	require.NoError(t, err)

	// plant an id that no longer resolves (e.g. a deleted account)
	ghost := uuid.New().String()
	stored, err := env.store.FindByID(list.ID)
	require.NoError(t, err)
	stored.SharedWith = append(stored.SharedWith, ghost)
	require.NoError(t, env.store.Save(stored))

	profiles, err := env.shareSvc.SharedUserProfiles(list.ID, env.owner.ID)
	require.NoError(t, err, "one bad id must not abort the batch")
	require.Len(t, profiles, 2)

	assert.Equal(t, env.friend.ID.String(), profiles[0].UID)
	assert.NotNil(t, profiles[0].Email)

	assert.Equal(t, ghost, profiles[1].UID)
	assert.Nil(t, profiles[1].Email)
	assert.Nil(t, profiles[1].DisplayName)
}

func TestSharedListsAnnotatedWithOwner(t *testing.T) {
	env := newTestEnv(t)
	list := env.createList(t, nil)

	_, err := env.shareSvc.Share(list.ID, env.owner.ID, env.friend.Email)
	require.NoError(t, err)

	shared, err := env.listSvc.SharedWithUser(env.friend.ID)
	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, list.ID, shared[0].ID)
	require.NotNil(t, shared[0].OwnerEmail)
	assert.Equal(t, "owner@example.com", *shared[0].OwnerEmail)
	require.NotNil(t, shared[0].OwnerName)
	assert.Equal(t, "Owner", *shared[0].OwnerName)
}

func TestEndToEndShareScenario(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.listSvc.Create(env.owner.ID, dto.CreateListRequest{Name: "Mercado", Type: "grocery"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, env.owner.ID.String(), created.UserID)
	assert.Empty(t, created.SharedWith)

	shared, err := env.shareSvc.Share(created.ID, env.owner.ID, "friend@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{env.friend.ID.String()}, shared.SharedWith)

	fromFriend, err := env.listSvc.Get(created.ID, env.friend.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Items, fromFriend.Items)

	_, err = env.listSvc.Get(created.ID, env.stranger.ID)
	assert.ErrorIs(t, err, apperrors.ErrListNotFound)

	revoked, err := env.shareSvc.Unshare(created.ID, env.owner.ID, env.friend.ID.String())
	require.NoError(t, err)
	assert.Empty(t, revoked.SharedWith)

	_, err = env.listSvc.Get(created.ID, env.friend.ID)
	assert.ErrorIs(t, err, apperrors.ErrListNotFound)
}
