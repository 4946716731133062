package firebase

import (
	"context"
	"os"

	fbapp "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// VerifiedToken carries the identity claims ClearX reads off a Firebase ID
// token after phone-OTP sign-in.
type VerifiedToken struct {
	UID         string
	PhoneNumber string
	Email       string
	Name        string
}

type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

// NewApp initializes the Firebase Admin SDK. Credentials come from
// FIREBASE_SERVICE_ACCOUNT_JSON when set (production), otherwise from a
// service account file on disk (local development).
func NewApp(ctx context.Context, projectID string) (*fbapp.App, error) {
	var opt option.ClientOption

	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./serviceAccountKey.json"
		}
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	return fbapp.NewApp(ctx, &fbapp.Config{ProjectID: projectID}, opt)
}

func (f *AuthClient) VerifyIDToken(ctx context.Context, idToken string) (*VerifiedToken, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	verified := &VerifiedToken{UID: token.UID}
	if v, ok := token.Claims["phone_number"].(string); ok {
		verified.PhoneNumber = v
	}
	if v, ok := token.Claims["email"].(string); ok {
		verified.Email = v
	}
	if v, ok := token.Claims["name"].(string); ok {
		verified.Name = v
	}

	return verified, nil
}
