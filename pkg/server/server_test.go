package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilhale/sitestore/pkg/domain"
	"github.com/lilhale/sitestore/pkg/kv"
)

func TestServer_WiresRoutes(t *testing.T) {
	srv, err := NewServer(kv.NewMemoryStore(), []byte("server-secret"))
	require.NoError(t, err)
	srv.InitStore()

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/api/collections/courses")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Unknown routes hit the custom 404 handler
	resp, err = http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_SharedStorage(t *testing.T) {
	mem := kv.NewMemoryStore()
	srv, err := NewServer(mem, []byte("server-secret"))
	require.NoError(t, err)
	srv.InitStore()

	_, err = srv.Store().AddRecord(domain.CollGallery, domain.Record{"caption": "From server"})
	require.NoError(t, err)

	// A second server over the same storage sees the write
	srv2, err := NewServer(mem, []byte("server-secret"))
	require.NoError(t, err)
	srv2.InitStore()
	gallery := srv2.Store().ListCollection(domain.CollGallery)
	assert.Len(t, gallery, 4) // 3 seeded + 1 added
}
