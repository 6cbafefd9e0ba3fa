package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	AccessTTL  = 4 * time.Hour
	RefreshTTL = 365 * 24 * time.Hour

	// Leeway tolerated on exp/nbf when verifying protected requests.
	Leeway = 15 * time.Second
)

var ErrMalformedToken = errors.New("tokens: malformed token")

// UserClaims is the identity embedded in every access token.
type UserClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AccessClaims struct {
	User UserClaims `json:"user"`
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	jwt.RegisteredClaims
}

// Issuer signs and checks both token kinds. Access and refresh tokens use
// distinct secrets; the refresh token carries no user claims, its owner is
// the database row it is stored in.
type Issuer struct {
	AccessSecret  []byte
	RefreshSecret []byte
	Audience      string
	Issuer        string
}

func (i *Issuer) IssueAccess(user UserClaims) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{i.Audience},
			Issuer:    i.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return t.SignedString(i.AccessSecret)
}

func (i *Issuer) IssueRefresh() (string, error) {
	now := time.Now()
	claims := RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{i.Audience},
			Issuer:    i.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(RefreshTTL)),
			ID:        uuid.NewString(),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return t.SignedString(i.RefreshSecret)
}

// DecodeAccess recovers the claims of an access token without checking the
// signature or the expiry. The refresh flow uses it to read identity out of
// an already-expired token.
func (i *Issuer) DecodeAccess(tokenStr string) (*AccessClaims, error) {
	var claims AccessClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenStr, &claims); err != nil {
		return nil, ErrMalformedToken
	}
	return &claims, nil
}

// VerifyAccess fully validates an access token: HS512 signature, audience,
// issuer and exp/nbf with Leeway of clock skew.
func (i *Issuer) VerifyAccess(tokenStr string) (*AccessClaims, error) {
	var claims AccessClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims,
		func(t *jwt.Token) (any, error) {
			return i.AccessSecret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithAudience(i.Audience),
		jwt.WithIssuer(i.Issuer),
		jwt.WithLeeway(Leeway),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tkn.Valid {
		return nil, err
	}
	return &claims, nil
}
