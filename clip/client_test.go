package clip

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := NewClient("")
	assert.Error(t, err)
}

func TestEmbedText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embed/text", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a red dress", req["text"])

		fmt.Fprint(w, `{"embedding":[0.1,0.2,0.3]}`)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	vec, err := c.EmbedText(context.Background(), "a red dress")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, vec)
}

func TestEmbedTextRejectsEmptyInput(t *testing.T) {
	c, err := NewClient("http://localhost:8090")
	require.NoError(t, err)

	_, err = c.EmbedText(context.Background(), "")
	assert.Error(t, err)
}

func TestEmbedImageSendsBase64(t *testing.T) {
	image := []byte{0xff, 0xd8, 0xff, 0xe0}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embed/image", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, base64.StdEncoding.EncodeToString(image), req["image_base64"])

		fmt.Fprint(w, `{"embedding":[1,0]}`)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	vec, err := c.EmbedImage(context.Background(), image)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, vec)
}

func TestEmbedSurfacesServiceErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.EmbedText(context.Background(), "a red dress")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEmbedRejectsEmptyEmbedding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"embedding":[]}`)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.EmbedText(context.Background(), "a red dress")
	assert.Error(t, err)
}
