package backend

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPUserClientGetUsers(t *testing.T) {
	ctx := t.Context()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/super_admin/users", r.URL.Path)
		assert.Equal(t, "Bearer opaque-token", r.Header.Get("Authorization"))

		writeJSON(t, w, []accountResponse{
			{
				ID:           "0b8a6d2e-1f0c-4a7b-9c3d-2e5f6a7b8c9d",
				Email:        "ada@example.com",
				FirstName:    "Ada",
				LastName:     "Lovelace",
				IsActive:     true,
				IsSuperAdmin: true,
			},
			{
				ID:        "5e7f8a9b-0c1d-4e2f-8a3b-4c5d6e7f8a9b",
				Email:     "bob@example.com",
				IsActive:  false,
				IsLivreur: true,
			},
		})
	}))
	defer server.Close()

	client := NewHTTPUserClient(server.URL, nil)

	accounts, err := client.GetUsers(ctx, "opaque-token")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "ada@example.com", accounts[0].Email)
	assert.Equal(t, "Ada", accounts[0].Profile.FirstName)
	assert.True(t, accounts[0].Active)
	assert.True(t, accounts[0].Roles.SuperAdmin)
	assert.False(t, accounts[1].Active)
	assert.True(t, accounts[1].Roles.Courier)
}

func TestHTTPUserClientGetUsersForbidden(t *testing.T) {
	ctx := t.Context()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewHTTPUserClient(server.URL, nil)

	_, err := client.GetUsers(ctx, "customer-token")
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
}
