package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"engagement-scheduler/core/config"
	coreErrors "engagement-scheduler/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(baseURL string) *StoreRepository {
	return NewStoreRepository(config.StoreConfig{BaseURL: baseURL, TimeoutSeconds: 5})
}

func TestStoreRepository_GetRaw(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/collection/42", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"id": "42", "engagementOwner": "Dana"})
	}))
	defer srv.Close()

	repo := newTestRepository(srv.URL + "/collection")
	doc, appErr := repo.GetRaw(context.Background(), "42")
	require.Nil(t, appErr)
	assert.Equal(t, "42", doc["id"])
	assert.Equal(t, "Dana", doc["engagementOwner"])
}

func TestStoreRepository_GetRaw_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "record not found"})
	}))
	defer srv.Close()

	repo := newTestRepository(srv.URL + "/collection")
	_, appErr := repo.GetRaw(context.Background(), "missing")
	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrNotFound, appErr.Code)
}

func TestStoreRepository_Create(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		payload["id"] = "1"

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	repo := newTestRepository(srv.URL + "/collection")
	doc, appErr := repo.Create(context.Background(), map[string]any{"engagementOwner": "Dana"})
	require.Nil(t, appErr)
	assert.Equal(t, "1", doc["id"])
}

func TestStoreRepository_Put_SendsFullRecord(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/collection/42", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(received)
	}))
	defer srv.Close()

	repo := newTestRepository(srv.URL + "/collection")
	_, appErr := repo.Put(context.Background(), "42", map[string]any{
		"engagementOwner": "Dana",
		"venueNotes":      "loading dock",
	})
	require.Nil(t, appErr)
	assert.Equal(t, "loading dock", received["venueNotes"])
}

func TestStoreRepository_Delete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		json.NewEncoder(w).Encode(map[string]any{"id": "42"})
	}))
	defer srv.Close()

	repo := newTestRepository(srv.URL + "/collection")
	require.Nil(t, repo.Delete(context.Background(), "42"))
}

func TestStoreRepository_ServerErrorMapsToNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	repo := newTestRepository(srv.URL + "/collection")
	_, appErr := repo.ListRaw(context.Background())
	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrNetwork, appErr.Code)
}

func TestStoreRepository_UnreachableMapsToNetwork(t *testing.T) {
	repo := newTestRepository("http://127.0.0.1:1/collection")
	_, appErr := repo.ListRaw(context.Background())
	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrNetwork, appErr.Code)
}

func TestStoreRepository_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	repo := newTestRepository(srv.URL + "/collection")
	_, appErr := repo.ListRaw(context.Background())
	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrInvalidRequestData, appErr.Code)
}
