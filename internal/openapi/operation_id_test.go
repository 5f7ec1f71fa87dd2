//go:build !integration

package openapi

import (
	"testing"

	v3high "github.com/pb33f/libopenapi/datamodel/high/v3"
	assert2 "github.com/stretchr/testify/assert"
)

func TestSynthesizeOperationID(t *testing.T) {
	t.Parallel()

	pathParam := func(name string) *v3high.Parameter {
		return &v3high.Parameter{Name: name, In: "path"}
	}

	testCases := []struct {
		name       string
		method     string
		path       string
		parameters []*v3high.Parameter
		expected   string
	}{
		{
			name:     "literal segments only",
			method:   "GET",
			path:     "/api/users/active",
			expected: "getUsersActive",
		},
		{
			name:       "placeholder with path parameter",
			method:     "GET",
			path:       "/api/users/{id}",
			parameters: []*v3high.Parameter{pathParam("id")},
			expected:   "getUsersById",
		},
		{
			name:     "segments after placeholder are dropped",
			method:   "GET",
			path:     "/api/a/{x}/b",
			expected: "getA",
		},
		{
			name:     "no api prefix",
			method:   "POST",
			path:     "/orders/pending",
			expected: "postOrdersPending",
		},
		{
			name:     "prefix match is case-insensitive",
			method:   "GET",
			path:     "/API/users",
			expected: "getUsers",
		},
		{
			name:     "root path without parameters",
			method:   "DELETE",
			path:     "/",
			expected: "delete",
		},
		{
			name:       "placeholder-only path",
			method:     "GET",
			path:       "/api/{id}",
			parameters: []*v3high.Parameter{pathParam("id")},
			expected:   "getById",
		},
		{
			name:   "multiple path parameters keep declaration order",
			method: "GET",
			path:   "/api/users/{userId}/orders/{orderId}",
			parameters: []*v3high.Parameter{
				pathParam("userId"),
				pathParam("orderId"),
			},
			expected: "getUsersByUserIdOrderId",
		},
		{
			name:   "non-path parameters are skipped after By",
			method: "GET",
			path:   "/api/users",
			parameters: []*v3high.Parameter{
				{Name: "limit", In: "query"},
			},
			expected: "getUsersBy",
		},
		{
			name:   "nil and unnamed parameters are skipped",
			method: "GET",
			path:   "/api/users/{id}",
			parameters: []*v3high.Parameter{
				nil,
				{Name: "", In: "path"},
				pathParam("id"),
			},
			expected: "getUsersById",
		},
		{
			name:     "dashed segments become pascal case",
			method:   "GET",
			path:     "/api/active-users/recent-orders",
			expected: "getActiveUsersRecentOrders",
		},
		{
			name:     "empty segments are discarded and prefix must be exact",
			method:   "GET",
			path:     "//api//users//",
			expected: "getApiUsers",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert2.New(t)
			actual := SynthesizeOperationID(tc.method, tc.path, tc.parameters)
			assert.Equal(tc.expected, actual)
		})
	}
}
