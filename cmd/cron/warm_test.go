package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mojorewards/internal/api"
	"mojorewards/internal/api/stub"
	"mojorewards/internal/datastore"
	"mojorewards/internal/pkg/caching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarmFillsCache(t *testing.T) {
	s := stub.New(stub.DefaultFixtures(time.Now()))
	srv := httptest.NewServer(s.Handler(true))
	defer srv.Close()

	client, err := datastore.NewClient(srv.URL, datastore.WithCache(caching.NewCacheLocal(time.Minute), time.Minute))
	require.NoError(t, err)

	job := NewWarmJob(client)
	assert.Empty(t, job.Warm(context.Background()))

	for _, path := range api.ReadPaths {
		assert.Equal(t, 1, s.Hits(http.MethodGet+" "+path), path)
	}

	// reads are now served from the cache
	_, err = client.GetChallenges(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, s.Hits(http.MethodGet+" "+api.PathChallenges))

	// a second run replaces the cached copies
	assert.Empty(t, job.Warm(context.Background()))
	assert.Equal(t, 2, s.Hits(http.MethodGet+" "+api.PathChallenges))
}

func TestWarmReportsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client, err := datastore.NewClient(srv.URL)
	require.NoError(t, err)

	failed := NewWarmJob(client).Warm(context.Background())
	assert.Equal(t, api.ReadPaths, failed)
}
