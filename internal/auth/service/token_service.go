package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/ShesaiXD/auth-service/internal/auth/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	autherror "github.com/ShesaiXD/auth-service/internal/errors"
	authconstant "github.com/ShesaiXD/auth-service/pkg/constant"
)

type TokenGenerator interface {
	Generate(userID, email, tokenType string) (string, error)
	GeneratePair(userID, email string) (string, string, error)
	VerifyAccessToken(tokenString string) (*JWTCustomClaims, error)
	VerifyRefreshToken(tokenString string) (*JWTCustomClaims, error)
	DecodeExpired(tokenString string) (*JWTCustomClaims, error)
}

// TokenService signs and verifies both token types with a single shared
// HMAC secret. The clock is injectable so expiry behaviour can be tested
// deterministically.
type TokenService struct {
	SigningSecret   string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	now func() time.Time
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"typ"`
}

func NewTokenService(signingSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		SigningSecret:   signingSecret,
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: refreshTTL,
		now:             time.Now,
	}
}

// Generate mints a single token of the given type. The token id (jti) is a
// random UUID, giving 128 bits of entropy.
func (ts *TokenService) Generate(userID, email, tokenType string) (string, error) {
	lifetime := ts.AccessTokenTTL
	if tokenType == authconstant.TokenTypeRefresh {
		lifetime = ts.RefreshTokenTTL
	}

	now := ts.now()
	claims := JWTCustomClaims{
		UserID:    userID,
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.SigningSecret))
}

// GeneratePair mints an access and a refresh token for the same subject.
func (ts *TokenService) GeneratePair(userID, email string) (string, string, error) {
	accessToken, err := ts.Generate(userID, email, authconstant.TokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := ts.Generate(userID, email, authconstant.TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// VerifyAccessToken parses and validates an access token string.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*JWTCustomClaims, error) {
	claims, err := ts.decode(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != authconstant.TokenTypeAccess {
		return nil, autherror.ErrTokenWrongType
	}

	return claims, nil
}

// VerifyRefreshToken parses and validates a refresh token string.
func (ts *TokenService) VerifyRefreshToken(tokenString string) (*JWTCustomClaims, error) {
	claims, err := ts.decode(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != authconstant.TokenTypeRefresh {
		return nil, autherror.ErrTokenWrongType
	}

	return claims, nil
}

// DecodeExpired verifies the signature but tolerates an elapsed expiry.
// Logout uses it so clients can discard tokens that already expired.
func (ts *TokenService) DecodeExpired(tokenString string) (*JWTCustomClaims, error) {
	return ts.decode(tokenString, jwt.WithoutClaimsValidation())
}

func (ts *TokenService) decode(tokenString string, opts ...jwt.ParserOption) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	opts = append(opts, jwt.WithTimeFunc(ts.now), jwt.WithExpirationRequired())

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.SigningSecret), nil
	}, opts...)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, autherror.ErrTokenBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, autherror.ErrTokenExpired
		default:
			return nil, autherror.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return nil, autherror.ErrTokenMalformed
	}

	return claims, nil
}
