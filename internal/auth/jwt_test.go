package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvieira/portfolio-be/internal/models"
)

type stubResolver struct {
	admins map[string]models.Admin
}

func (r *stubResolver) GetAdminByID(id string) (models.Admin, error) {
	admin, ok := r.admins[id]
	if !ok {
		return models.Admin{}, fmt.Errorf("admin with ID %s not found", id)
	}
	return admin, nil
}

func newTestAuth(admins ...models.Admin) *Auth {
	resolver := &stubResolver{admins: map[string]models.Admin{}}
	for _, a := range admins {
		resolver.admins[a.ID] = a
	}
	return New([]byte("test-secret"), resolver)
}

func testAdmin() models.Admin {
	return models.Admin{ID: "admin-1", Username: "admin", Email: "admin@example.com", GithubUsername: "octocat"}
}

func TestGenerateAndValidateToken(t *testing.T) {
	a := newTestAuth(testAdmin())

	token, err := a.GenerateToken(testAdmin())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := a.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
}

func TestTokenExpiryIsSevenDays(t *testing.T) {
	a := newTestAuth(testAdmin())
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return issued }

	token, err := a.GenerateToken(testAdmin())
	require.NoError(t, err)

	claims, err := a.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(TokenTTL), claims.ExpiresAt.Time.UTC())
	assert.Equal(t, issued, claims.IssuedAt.Time.UTC())
}

func TestValidateToken_Expired(t *testing.T) {
	a := newTestAuth(testAdmin())
	a.now = func() time.Time { return time.Now().Add(-TokenTTL - time.Second) }

	token, err := a.GenerateToken(testAdmin())
	require.NoError(t, err)

	// Validate with real time: one second past expiry.
	a.now = time.Now
	_, err = a.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	forger := New([]byte("other-secret"), &stubResolver{})
	token, err := forger.GenerateToken(testAdmin())
	require.NoError(t, err)

	a := newTestAuth(testAdmin())
	_, err = a.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	a := newTestAuth(testAdmin())
	_, err := a.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// gateRequest runs one request through the middleware and reports the
// recorder plus whether the wrapped handler executed.
func gateRequest(t *testing.T, a *Auth, authHeader string) (*httptest.ResponseRecorder, bool, models.Admin) {
	t.Helper()

	var called bool
	var seen models.Admin
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		seen, _ = AdminFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	a.Middleware()(next).ServeHTTP(rec, req)
	return rec, called, seen
}

func TestMiddleware_NoHeader(t *testing.T) {
	a := newTestAuth(testAdmin())

	rec, called, _ := gateRequest(t, a, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called, "wrapped handler must not run without a token")
	assert.JSONEq(t, `{"success":false,"message":"No token provided"}`, rec.Body.String())
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	a := newTestAuth(testAdmin())

	rec, called, _ := gateRequest(t, a, "Token abcdef")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.JSONEq(t, `{"success":false,"message":"No token provided"}`, rec.Body.String())
}

func TestMiddleware_InvalidToken(t *testing.T) {
	a := newTestAuth(testAdmin())

	rec, called, _ := gateRequest(t, a, "Bearer bogus")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.JSONEq(t, `{"success":false,"message":"Invalid token"}`, rec.Body.String())
}

func TestMiddleware_ForgedToken(t *testing.T) {
	forger := New([]byte("other-secret"), &stubResolver{})
	token, err := forger.GenerateToken(testAdmin())
	require.NoError(t, err)

	a := newTestAuth(testAdmin())
	rec, called, _ := gateRequest(t, a, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.JSONEq(t, `{"success":false,"message":"Invalid token"}`, rec.Body.String())
}

func TestMiddleware_AdminGone(t *testing.T) {
	// Token valid, but the embedded ID no longer resolves. Must look exactly
	// like any other invalid token.
	a := newTestAuth()
	token, err := a.GenerateToken(testAdmin())
	require.NoError(t, err)

	rec, called, _ := gateRequest(t, a, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.JSONEq(t, `{"success":false,"message":"Invalid token"}`, rec.Body.String())
}

func TestMiddleware_ValidToken(t *testing.T) {
	a := newTestAuth(testAdmin())
	token, err := a.GenerateToken(testAdmin())
	require.NoError(t, err)

	rec, called, seen := gateRequest(t, a, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, "admin-1", seen.ID)
	assert.Equal(t, "octocat", seen.GithubUsername)
	assert.Empty(t, seen.PasswordHash)
}

func TestMiddleware_TokenReusableUntilExpiry(t *testing.T) {
	a := newTestAuth(testAdmin())
	token, err := a.GenerateToken(testAdmin())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		rec, called, seen := gateRequest(t, a, "Bearer "+token)
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, called)
		require.Equal(t, "admin-1", seen.ID)
	}
}

func TestAdminFromContext_Missing(t *testing.T) {
	_, ok := AdminFromContext(context.Background())
	assert.False(t, ok)
}
