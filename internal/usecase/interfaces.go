package usecase

import (
	"context"

	"clearx/internal/infrastructure/firebase"
)

// TokenVerifier is what the auth use case needs from Firebase Admin; tests
// substitute a stub so no live project is required.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebase.VerifiedToken, error)
}
