package api

import (
	"net/http"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAPIContractIsValid(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile("openapi.yml")
	require.NoError(t, err)
	require.NoError(t, doc.Validate(loader.Context))

	assert.Equal(t, "Lytefood Client API", doc.Info.Title)
}

func TestOpenAPIContractCoversEveryRoute(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile("openapi.yml")
	require.NoError(t, err)

	routes := map[string]string{
		"/api/v1/admin/users":                      http.MethodGet,
		"/api/v1/auth/login":                       http.MethodPost,
		"/api/v1/auth/logout":                      http.MethodPost,
		"/api/v1/cart":                             http.MethodGet,
		"/api/v1/cart/items":                       http.MethodPost,
		"/api/v1/cart/items/{menuItemId}":          http.MethodDelete,
		"/api/v1/checkout":                         http.MethodPost,
		"/api/v1/courier/board":                    http.MethodGet,
		"/api/v1/courier/orders/{orderId}/claim":   http.MethodPost,
		"/api/v1/courier/orders/{orderId}/deliver": http.MethodPost,
		"/api/v1/menu":                             http.MethodGet,
		"/api/v1/orders/active":                    http.MethodGet,
		"/api/v1/orders/{orderId}":                 http.MethodGet,
		"/api/v1/orders/{orderId}/status":          http.MethodPut,
	}

	for path, method := range routes {
		item := doc.Paths.Find(path)
		require.NotNil(t, item, path)
		assert.NotNil(t, item.GetOperation(method), path)
	}
}
