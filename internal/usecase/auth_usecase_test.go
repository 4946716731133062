package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clearx/internal/adapter/repository"
	"clearx/internal/domain/entity"
	"clearx/internal/infrastructure/firebase"
	"clearx/pkg/errors"
)

type stubVerifier struct {
	token *firebase.VerifiedToken
	err   error
}

func (s *stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*firebase.VerifiedToken, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.token, nil
}

func newAuthTestCase(verifier TokenVerifier, isProduction bool) *AuthUseCase {
	return NewAuthUseCase(
		repository.NewMemoryUserRepository(),
		verifier,
		"test-secret",
		7*24*time.Hour,
		isProduction,
	)
}

func TestLoginDevMode(t *testing.T) {
	uc := newAuthTestCase(&stubVerifier{}, false)

	result, err := uc.Login(context.Background(), LoginInput{
		UID:         "dev-user-1",
		PhoneNumber: "+919876543210",
		Name:        "Dev User",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "dev-user-1", result.User.UID)
	assert.Equal(t, entity.RoleConsumer, result.User.Role)
	assert.Equal(t, entity.DefaultCoins, result.User.Coins)

	uid, err := uc.VerifySessionToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "dev-user-1", uid)
}

func TestLoginDevModeRequiresUID(t *testing.T) {
	uc := newAuthTestCase(&stubVerifier{}, false)

	_, err := uc.Login(context.Background(), LoginInput{})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestLoginProductionRequiresIDToken(t *testing.T) {
	uc := newAuthTestCase(&stubVerifier{}, true)

	_, err := uc.Login(context.Background(), LoginInput{UID: "dev-user-1"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestLoginWithVerifiedToken(t *testing.T) {
	uc := newAuthTestCase(&stubVerifier{
		token: &firebase.VerifiedToken{
			UID:         "fb-user-1",
			PhoneNumber: "+919876543210",
		},
	}, true)

	result, err := uc.Login(context.Background(), LoginInput{IDToken: "firebase-token"})
	require.NoError(t, err)

	// Identity comes from the verified token, never the request body.
	assert.Equal(t, "fb-user-1", result.User.UID)
	assert.Equal(t, "+919876543210", result.User.PhoneNumber)
}

func TestLoginRejectsBadToken(t *testing.T) {
	uc := newAuthTestCase(&stubVerifier{
		err: errors.Unauthorized("token expired", nil),
	}, true)

	_, err := uc.Login(context.Background(), LoginInput{IDToken: "stale"})
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLoginIsIdempotentPerUID(t *testing.T) {
	uc := newAuthTestCase(&stubVerifier{}, false)
	ctx := context.Background()

	first, err := uc.Login(ctx, LoginInput{UID: "dev-user-1", PhoneNumber: "+911111111111"})
	require.NoError(t, err)

	again, err := uc.Login(ctx, LoginInput{UID: "dev-user-1"})
	require.NoError(t, err)

	// Second login reuses the stored record instead of recreating it.
	assert.Equal(t, first.User.PhoneNumber, again.User.PhoneNumber)
}

func TestVerifySessionTokenRejectsForgery(t *testing.T) {
	uc := newAuthTestCase(&stubVerifier{}, false)

	other := newAuthTestCase(&stubVerifier{}, false)
	other.jwtSecret = []byte("other-secret")

	result, err := other.Login(context.Background(), LoginInput{UID: "dev-user-1"})
	require.NoError(t, err)

	_, err = uc.VerifySessionToken(result.Token)
	assert.Error(t, err)

	_, err = uc.VerifySessionToken("not.a.token")
	assert.Error(t, err)
}
