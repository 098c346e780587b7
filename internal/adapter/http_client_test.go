// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: serverURL, Timeout: time.Second})
	return a.(*httpServerAdapter)
}

func testBearerToken(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": userID})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

// ── Register / Login ─────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	user := models.User{Login: "alice", Name: "Alice"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		w.Header().Set("Authorization", "Bearer "+testBearerToken(t, "42"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, user.Login, got.Login)
	assert.Equal(t, int64(42), got.UserID)
	assert.NotEmpty(t, a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("login already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid login/password"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_Success_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer "+testBearerToken(t, "7"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.User{Login: "alice"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.NotEmpty(t, a.Token())
}

// ── Sync endpoints ───────────────────────────────────────────────────────────

func TestGetServerStates_Success(t *testing.T) {
	now := time.Now()
	want := models.StatesResponse{
		ContactStates: []models.ContactState{
			{ClientSideID: "c1", Version: 3, Deleted: false, UpdatedAt: &now},
		},
		Length: 1,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/sync/", r.URL.Path)
		assert.Contains(t, r.Header.Get("Authorization"), "Bearer ")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("some-token")

	states, err := a.GetServerStates(context.Background())

	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "c1", states[0].ClientSideID)
	assert.Equal(t, int64(3), states[0].Version)
}

func TestDownload_DecodesRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contacts/download", r.URL.Path)

		var req models.DownloadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"c1"}, req.ClientSideIDs)
		assert.Equal(t, 1, req.Length, "длина проставляется адаптером")

		resp := models.DownloadResponse{
			Contacts: []models.ContactRecord{
				{ClientSideID: "c1", Contact: models.Contact{LastName: "Ivanova"}},
			},
			Length: 1,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("some-token")

	records, err := a.Download(context.Background(), models.DownloadRequest{ClientSideIDs: []string{"c1"}})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Ivanova", records[0].Contact.LastName)
}

func TestUpdate_VersionConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("contact version conflict occurred"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("some-token")

	err := a.Update(context.Background(), models.UpdateRequest{
		Updates: []models.ContactUpdate{{ClientSideID: "c1", Version: 1}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestDelete_SendsEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/contacts/delete", r.URL.Path)

		var req models.DeleteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Entries, 1)
		assert.Equal(t, "c1", req.Entries[0].ClientSideID)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("some-token")

	err := a.Delete(context.Background(), models.DeleteRequest{
		Entries: []models.DeleteEntry{{ClientSideID: "c1", Version: 2}},
	})

	require.NoError(t, err)
}

func TestUndelete_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	err := a.Undelete(context.Background(), models.UndeleteRequest{
		Entries: []models.DeleteEntry{{ClientSideID: "c1", Version: 2}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
