package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestService() Service {
	return NewJWTService(testSecret, "15m")
}

func TestValidateSSEToken_RoundTrip(t *testing.T) {
	svc := newTestService()

	token, expiresIn, err := svc.GenerateSSEToken("emp-1", identity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	employeeID, role, err := svc.ValidateSSEToken(token)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", employeeID)
	assert.Equal(t, identity.RoleAdmin, role)
}

func TestValidateSSEToken_RejectsExpired(t *testing.T) {
	svc := newTestService()

	// Signed with the right key but exp an hour in the past.
	auth := jwtauth.New("HS256", []byte(testSecret), nil)
	_, expired, err := auth.Encode(map[string]interface{}{
		"employee_id": "emp-1",
		"role":        "admin",
		"type":        "sse",
		"exp":         time.Now().Add(-time.Hour).Unix(),
	})
	require.NoError(t, err)

	_, _, err = svc.ValidateSSEToken(expired)
	assert.Error(t, err)
}

func TestValidateSSEToken_RejectsAccessToken(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateAccessToken("emp-1", "one@example.com", identity.RoleEmployee)
	require.NoError(t, err)

	_, _, err = svc.ValidateSSEToken(token)
	assert.Error(t, err)
}

func TestValidateSSEToken_RejectsWrongKey(t *testing.T) {
	other := jwtauth.New("HS256", []byte("other-secret"), nil)
	_, forged, err := other.Encode(map[string]interface{}{
		"employee_id": "emp-1",
		"type":        "sse",
		"exp":         time.Now().Add(time.Minute).Unix(),
	})
	require.NoError(t, err)

	_, _, err = newTestService().ValidateSSEToken(forged)
	assert.Error(t, err)
}
