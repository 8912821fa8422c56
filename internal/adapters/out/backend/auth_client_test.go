package backend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lytefood/internal/pkg/errs"
)

func TestHTTPAuthClientLogin(t *testing.T) {
	ctx := t.Context()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ada@example.com", req.Email)
		assert.Equal(t, "s3cret", req.Password)

		writeJSON(t, w, loginResponse{
			ID:              "0b8a6d2e-1f0c-4a7b-9c3d-2e5f6a7b8c9d",
			Email:           "ada@example.com",
			Token:           "opaque-token",
			FirstName:       "Ada",
			LastName:        "Lovelace",
			PhoneNumber:     "+33600000001",
			DeliveryAddress: "12 Rue de la Paix, Paris",
			IsLivreur:       true,
		})
	}))
	defer server.Close()

	client := NewHTTPAuthClient(server.URL, nil)

	user, err := client.Login(ctx, "ada@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email())
	assert.Equal(t, "opaque-token", user.Token())
	assert.True(t, user.Roles().Courier)
	assert.False(t, user.Roles().Admin)
	assert.Equal(t, "Ada", user.Profile().FirstName)
}

func TestHTTPAuthClientLoginRejected(t *testing.T) {
	ctx := t.Context()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewHTTPAuthClient(server.URL, nil)

	user, err := client.Login(ctx, "ada@example.com", "wrong")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestHTTPAuthClientLoginServerError(t *testing.T) {
	ctx := t.Context()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPAuthClient(server.URL, nil)

	_, err := client.Login(ctx, "ada@example.com", "s3cret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
}

func TestHTTPAuthClientLogout(t *testing.T) {
	ctx := t.Context()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/logout", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewHTTPAuthClient(server.URL, nil)

	require.NoError(t, client.Logout(ctx, "opaque-token"))
	assert.Equal(t, "Bearer opaque-token", gotAuth)
}

func TestHTTPMenuClientGetMenu(t *testing.T) {
	ctx := t.Context()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/menu", r.URL.Path)

		writeJSON(t, w, []menuItemResponse{
			{
				ID:          "5e7f8a9b-0c1d-4e2f-8a3b-4c5d6e7f8a9b",
				Name:        "Margherita",
				Description: "Tomato, mozzarella, basil",
				Price:       "9.50",
				ImageURL:    "https://cdn.example.com/margherita.png",
				Available:   true,
			},
			{
				ID:        "6a8b9c0d-1e2f-4a3b-9c4d-5e6f7a8b9c0d",
				Name:      "Calzone",
				Price:     "11.00",
				Available: false,
			},
		})
	}))
	defer server.Close()

	client := NewHTTPMenuClient(server.URL, nil)

	items, err := client.GetMenu(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Margherita", items[0].Name)
	assert.Equal(t, "9.50", items[0].Price.String())
	assert.True(t, items[0].Available)
	assert.False(t, items[1].Available)
}

func writeJSON(t *testing.T, w http.ResponseWriter, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(body))
}
