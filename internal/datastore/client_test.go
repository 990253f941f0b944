package datastore

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mojorewards/internal/api"
	"mojorewards/internal/api/stub"
	"mojorewards/internal/models"
	"mojorewards/internal/pkg/caching"

	"github.com/go-redis/cache/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, opts ...Option) (*Client, *stub.Server) {
	t.Helper()

	s := stub.New(stub.DefaultFixtures(now))
	srv := httptest.NewServer(s.Handler(true))
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL+"/", opts...)
	require.NoError(t, err)
	return client, s
}

func TestNewClientRequiresURL(t *testing.T) {
	_, err := NewClient("  ")
	assert.Error(t, err)
}

func TestReads(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t)

	settings, err := client.GetLeaderboardSettings(ctx)
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, "5000", settings.TotalPrizePool.String())

	entries, err := client.GetLeaderboardEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 4)

	milestones, err := client.GetMilestones(ctx)
	require.NoError(t, err)
	assert.Len(t, milestones, 3)

	challenges, err := client.GetChallenges(ctx)
	require.NoError(t, err)
	assert.Len(t, challenges, 4)

	offers, err := client.GetFreeSpins(ctx)
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "MOJOSPINS", offers[0].Code)
}

func TestMissingSettings(t *testing.T) {
	s := stub.New(&stub.Fixtures{})
	srv := httptest.NewServer(s.Handler(true))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	require.NoError(t, err)

	settings, err := client.GetLeaderboardSettings(context.Background())
	require.NoError(t, err)
	assert.Nil(t, settings)

	entries, err := client.GetLeaderboardEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadsAreCachedByPath(t *testing.T) {
	ctx := context.Background()
	store := caching.NewCacheLocal(time.Minute)
	client, s := newTestClient(t, WithCache(store, time.Minute))

	for i := 0; i < 3; i++ {
		_, err := client.GetChallenges(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, s.Hits("GET "+api.PathChallenges))

	var cached []byte
	require.NoError(t, store.Get(ctx, api.PathChallenges, &cached))
	assert.Contains(t, string(cached), `"gameName":"Sweet Bonanza"`)
}

func TestClaimInvalidatesChallenges(t *testing.T) {
	ctx := context.Background()
	store := caching.NewCacheLocal(time.Minute)
	client, s := newTestClient(t, WithCache(store, time.Minute))

	_, err := client.GetChallenges(ctx)
	require.NoError(t, err)

	err = client.ClaimChallenge(ctx, "c1", models.ClaimRequest{Username: "alice", DiscordUsername: "alice#1"})
	require.NoError(t, err)

	var cached []byte
	assert.ErrorIs(t, store.Get(ctx, api.PathChallenges, &cached), cache.ErrCacheMiss)

	challenges, err := client.GetChallenges(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Hits("GET "+api.PathChallenges))
	assert.Equal(t, models.CLAIM_STATUS_CLAIMED, challenges[0].ClaimStatus)

	claims := s.Claims()
	require.Len(t, claims, 1)
	assert.Equal(t, "c1", claims[0].ChallengeID)
	assert.Equal(t, "alice#1", claims[0].DiscordUsername)
}

func TestClaimErrors(t *testing.T) {
	ctx := context.Background()
	client, s := newTestClient(t)
	req := models.ClaimRequest{Username: "alice", DiscordUsername: "alice#1"}

	err := client.ClaimChallenge(ctx, "missing", req)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	s.SetFailClaims(true)
	err = client.ClaimChallenge(ctx, "c1", req)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	assert.Equal(t, api.PathChallengeClaim("c1"), statusErr.Path)
	assert.False(t, IsNotFound(err))

	// no retries
	assert.Equal(t, 1, s.Hits("POST "+api.PathChallengeClaim("c1")))
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := NewClient(url, WithTimeout(time.Second))
	require.NoError(t, err)

	_, err = client.GetMilestones(context.Background())
	assert.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}
