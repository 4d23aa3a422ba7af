package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingCredential = errors.New("bearer credential is required")
	ErrInvalidCredential = errors.New("bearer credential is invalid")
)

// Caller is the verified identity behind a request. Role is upper-case,
// e.g. STUDENT, COMPANY or SUPER_ADMIN.
type Caller struct {
	UserID string
	Role   string
}

// Claims is the HS256 token payload. The subject carries the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier resolves bearer tokens into callers and issues tokens for tests
// and local tooling.
type Verifier struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewVerifier(secret string, issuer string) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &Verifier{
		secret: []byte(secret),
		issuer: strings.TrimSpace(issuer),
		now:    time.Now,
	}, nil
}

// Resolve accepts an Authorization header value ("Bearer <token>").
func (v *Verifier) Resolve(authorization string) (Caller, error) {
	raw := strings.TrimSpace(authorization)
	if raw == "" {
		return Caller{}, ErrMissingCredential
	}
	scheme, token, found := strings.Cut(raw, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return Caller{}, ErrMissingCredential
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	}
	if v.issuer != "" {
		options = append(options, jwt.WithIssuer(v.issuer))
	}

	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(token), &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, options...)
	if err != nil {
		return Caller{}, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Caller{}, ErrInvalidCredential
	}
	userID := strings.TrimSpace(claims.Subject)
	role := strings.ToUpper(strings.TrimSpace(claims.Role))
	if userID == "" || role == "" {
		return Caller{}, ErrInvalidCredential
	}
	return Caller{UserID: userID, Role: role}, nil
}

func (v *Verifier) Issue(userID string, role string, ttl time.Duration) (string, error) {
	now := v.now()
	claims := Claims{
		Role: strings.ToUpper(strings.TrimSpace(role)),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strings.TrimSpace(userID),
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
