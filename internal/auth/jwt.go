package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dvieira/portfolio-be/internal/models"
)

// TokenTTL is the fixed validity window of a session token. There is no
// refresh and no revocation: a token stays valid until it expires.
const TokenTTL = 7 * 24 * time.Hour

// AdminResolver resolves a token's embedded admin ID to a stored record.
type AdminResolver interface {
	GetAdminByID(id string) (models.Admin, error)
}

// Claims defines the JWT claims structure.
type Claims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}

type contextKey string

// adminContextKey is the context key under which the gate stores the
// resolved admin for the wrapped handler.
const adminContextKey = contextKey("admin")

// ErrInvalidToken covers every verification failure: bad signature, expired,
// malformed, or an admin ID that no longer resolves. Callers must not
// distinguish between these cases.
var ErrInvalidToken = errors.New("invalid token")

// Auth issues and verifies session tokens. The signing secret is injected at
// construction so tests can run with their own secret.
type Auth struct {
	secret []byte
	admins AdminResolver
	now    func() time.Time
}

// New creates an Auth using the given signing secret and admin store.
func New(secret []byte, admins AdminResolver) *Auth {
	return &Auth{secret: secret, admins: admins, now: time.Now}
}

// GenerateToken creates a new signed token for the given admin.
func (a *Auth) GenerateToken(admin models.Admin) (string, error) {
	issuedAt := a.now()
	claims := &Claims{
		AdminID: admin.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// ValidateToken parses and verifies a token string, checking signature and
// expiry. It does not consult the admin store; that is the middleware's job.
func (a *Auth) ValidateToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithTimeFunc(a.now))
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Middleware creates the gate placed in front of every protected route.
// A request passes only when the bearer token's signature verifies, it has
// not expired, and the embedded admin ID resolves to a stored record; any
// failure yields the same generic 401. On success the resolved admin is
// attached to the request context and the wrapped handler runs.
func (a *Auth) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "No token provided")
				return
			}

			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				unauthorized(w, "No token provided")
				return
			}

			claims, err := a.ValidateToken(tokenStr)
			if err != nil {
				unauthorized(w, "Invalid token")
				return
			}

			admin, err := a.admins.GetAdminByID(claims.AdminID)
			if err != nil {
				// A token referencing a deleted admin is rejected exactly
				// like a forged or expired one.
				unauthorized(w, "Invalid token")
				return
			}
			admin.PasswordHash = ""

			ctx := context.WithValue(r.Context(), adminContextKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext returns the admin attached by the middleware.
func AdminFromContext(ctx context.Context) (models.Admin, bool) {
	admin, ok := ctx.Value(adminContextKey).(models.Admin)
	return admin, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = fmt.Fprintf(w, `{"success":false,"message":%q}`, message)
}
