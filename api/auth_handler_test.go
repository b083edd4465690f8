package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleLoginIssuesRandomState(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/auth/google/login", nil)
	w := httptest.NewRecorder()

	GoogleLoginHandler(w, r)

	resp := w.Result()
	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)

	var state string
	for _, c := range resp.Cookies() {
		if c.Name == oauthStateCookie {
			state = c.Value
			assert.True(t, c.HttpOnly)
		}
	}
	require.NotEmpty(t, state, "login must set the state cookie")

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, state, loc.Query().Get("state"), "redirect state must match the cookie")
}

func TestGoogleLoginStateIsUniquePerRequest(t *testing.T) {
	stateOf := func() string {
		w := httptest.NewRecorder()
		GoogleLoginHandler(w, httptest.NewRequest(http.MethodGet, "/auth/google/login", nil))
		for _, c := range w.Result().Cookies() {
			if c.Name == oauthStateCookie {
				return c.Value
			}
		}
		return ""
	}

	first := stateOf()
	second := stateOf()
	require.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestGoogleCallbackRejectsStateMismatch(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=forged&code=abc", nil)
	r.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "expected"})
	w := httptest.NewRecorder()

	GoogleCallbackHandler(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGoogleCallbackRejectsMissingStateCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=anything&code=abc", nil)
	w := httptest.NewRecorder()

	GoogleCallbackHandler(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
