package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"clearx/internal/domain/entity"
	"clearx/internal/domain/repository"
	"clearx/pkg/errors"
	"clearx/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	verifier     TokenVerifier
	jwtSecret    []byte
	jwtExpiry    time.Duration
	isProduction bool
}

func NewAuthUseCase(userRepo repository.UserRepository, verifier TokenVerifier, jwtSecret string, jwtExpiry time.Duration, isProduction bool) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		verifier:     verifier,
		jwtSecret:    []byte(jwtSecret),
		jwtExpiry:    jwtExpiry,
		isProduction: isProduction,
	}
}

type LoginInput struct {
	IDToken     string
	UID         string
	PhoneNumber string
	Name        string
	Email       string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

type SessionClaims struct {
	PhoneNumber string `json:"phoneNumber"`
	jwt.RegisteredClaims
}

// Login exchanges a Firebase ID token (or, outside production, a bare uid)
// for a session token, creating the user record on first sign-in.
func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	identity := &entity.User{
		UID:         input.UID,
		PhoneNumber: input.PhoneNumber,
		Name:        input.Name,
		Email:       input.Email,
	}

	if input.IDToken == "" {
		if uc.isProduction {
			return nil, errors.BadRequest("idToken is required", nil)
		}
		if input.UID == "" {
			return nil, errors.BadRequest("uid required in dev mode", nil)
		}
	} else {
		verified, err := uc.verifier.VerifyIDToken(ctx, input.IDToken)
		if err != nil {
			return nil, errors.Unauthorized("Invalid or expired token", err)
		}
		identity = &entity.User{
			UID:         verified.UID,
			PhoneNumber: verified.PhoneNumber,
			Name:        verified.Name,
			Email:       verified.Email,
		}
	}

	user, err := uc.userRepo.GetByUID(ctx, identity.UID)
	if err != nil {
		user = &entity.User{
			UID:         identity.UID,
			PhoneNumber: identity.PhoneNumber,
			Name:        identity.Name,
			Email:       identity.Email,
			Role:        entity.RoleConsumer,
			Coins:       entity.DefaultCoins,
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, errors.Internal("Failed to create user record", err)
		}
		logger.Info("Created user %s on first login", user.UID)
	}

	token, err := uc.signSessionToken(user)
	if err != nil {
		return nil, errors.Internal("Failed to issue session token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) signSessionToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		PhoneNumber: user.PhoneNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(uc.jwtExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(uc.jwtSecret)
}

// VerifySessionToken validates a backend-issued session token and returns
// the uid it was bound to.
func (uc *AuthUseCase) VerifySessionToken(tokenStr string) (string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthorized("Unexpected signing method", nil)
		}
		return uc.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.Unauthorized("Invalid or expired token", err)
	}
	return claims.Subject, nil
}

// Logout is stateless; the session token stays valid until expiry.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return nil
}
