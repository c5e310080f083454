package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func mustToken(t *testing.T, secret, role string, ttl time.Duration) string {
	t.Helper()
	token, err := GenerateToken(secret, "editor@example.com", role, ttl)
	require.NoError(t, err)
	return token
}

func TestMiddleware(t *testing.T) {
	testCases := []struct {
		name               string
		header             string
		expectedStatusCode int
		expectedError      string
	}{
		{
			name:               "Valid administrator token",
			header:             "Bearer " + mustToken(t, testSecret, RoleAdministrator, time.Hour),
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "Valid shop manager token, lowercase scheme",
			header:             "bearer " + mustToken(t, testSecret, RoleShopManager, time.Hour),
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "Missing header",
			expectedStatusCode: http.StatusUnauthorized,
			expectedError:      "Missing authorization header",
		},
		{
			name:               "Wrong scheme",
			header:             "Basic abc",
			expectedStatusCode: http.StatusUnauthorized,
			expectedError:      "Authorization must be 'Bearer <token>'",
		},
		{
			name:               "Wrong secret",
			header:             "Bearer " + mustToken(t, "another-secret-another-secret-xx", RoleAdministrator, time.Hour),
			expectedStatusCode: http.StatusUnauthorized,
			expectedError:      "Invalid or expired token",
		},
		{
			name:               "Expired token",
			header:             "Bearer " + mustToken(t, testSecret, RoleAdministrator, -time.Minute),
			expectedStatusCode: http.StatusUnauthorized,
			expectedError:      "Invalid or expired token",
		},
		{
			name:               "Customer role",
			header:             "Bearer " + mustToken(t, testSecret, "customer", time.Hour),
			expectedStatusCode: http.StatusForbidden,
			expectedError:      "Insufficient role",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var seen *Claims
			handler := Middleware(testSecret, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))
			req := httptest.NewRequest("GET", "/admin/products/PROD001", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			// Act
			handler.ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.expectedError != "" {
				var errResp map[string]string
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, tc.expectedError, errResp["error"])
				assert.Nil(t, seen)
			} else {
				require.NotNil(t, seen)
				assert.Equal(t, "editor@example.com", seen.Subject)
			}
		})
	}
}
