package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilhale/sitestore/pkg/auth"
	"github.com/lilhale/sitestore/pkg/kv"
	"github.com/lilhale/sitestore/pkg/storage"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	mem := kv.NewMemoryStore()
	store := storage.NewStore(mem)
	_, err := store.Initialize()
	require.NoError(t, err)
	manager, err := auth.NewManager(mem, []byte("handler-secret"))
	require.NoError(t, err)
	return NewHandler(store, manager)
}

func TestRequireAuth_HeaderFormats(t *testing.T) {
	handler := newTestHandler(t)
	protected := handler.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc123", http.StatusUnauthorized},
		{"bearer garbage", "Bearer not-a-token", http.StatusUnauthorized},
		{"no space", "Bearertoken", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/collections/courses", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestRequireAuth_ValidToken(t *testing.T) {
	handler := newTestHandler(t)
	require.True(t, handler.sessions.Login(auth.DefaultUsername, auth.DefaultPassword).Success)

	var gotUser bool
	protected := handler.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = sessionUserFrom(r) != nil
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/collections/courses", nil)
	req.Header.Set("Authorization", "Bearer "+handler.sessions.SessionToken())
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotUser)
}

func TestWriteJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSONError(rec, http.StatusNotFound, "record not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Not Found", resp.Error)
	assert.Equal(t, "record not found", resp.Message)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
