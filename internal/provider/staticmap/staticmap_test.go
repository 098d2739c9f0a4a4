package staticmap

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"location-proxy/internal/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "test-secret-key"

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0x01}

func TestClient_ThumbnailURL(t *testing.T) {
	client := New("https://maps.example.com/maps/api/", testKey, http.DefaultClient)

	raw := client.ThumbnailURL(40.0, -75.0)
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "maps.example.com", u.Host)
	assert.Equal(t, "/maps/api/staticmap", u.Path)

	q := u.Query()
	assert.Equal(t, "40,-75", q.Get("center"))
	assert.Equal(t, "17", q.Get("zoom"))
	assert.Equal(t, "150x150", q.Get("size"))
	assert.Equal(t, "hybrid", q.Get("maptype"))
	assert.Equal(t, "color:red|40,-75", q.Get("markers"))
	assert.Equal(t, testKey, q.Get("key"))
}

func TestClient_Thumbnail(t *testing.T) {
	t.Run("returns upstream bytes unmodified", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/staticmap", r.URL.Path)
			assert.Equal(t, "35.681236,139.767125", r.URL.Query().Get("center"))
			assert.Equal(t, testKey, r.URL.Query().Get("key"))
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(pngBytes)
		}))
		defer srv.Close()

		client := New(srv.URL, testKey, srv.Client())
		image, err := client.Thumbnail(context.Background(), 35.681236, 139.767125)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(pngBytes, image))
	})

	t.Run("upstream denial is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("The provided API key is invalid."))
		}))
		defer srv.Close()

		client := New(srv.URL, testKey, srv.Client())
		_, err := client.Thumbnail(context.Background(), 40, -75)
		require.Error(t, err)
		assert.True(t, errors.Is(err, provider.ErrUpstreamStatus))
		assert.NotContains(t, err.Error(), testKey)
	})

	t.Run("transport error does not leak the key", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		baseURL := srv.URL
		srv.Close()

		client := New(baseURL, testKey, http.DefaultClient)
		_, err := client.Thumbnail(context.Background(), 40, -75)
		require.Error(t, err)
		assert.NotContains(t, err.Error(), testKey)
	})
}
