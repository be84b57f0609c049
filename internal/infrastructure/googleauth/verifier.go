// Package googleauth verifies Google-issued ID tokens for provider
// login.
package googleauth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/HailNail/MindArc/internal/usecase"
)

type Verifier struct {
	clientID string
}

func NewVerifier(clientID string) *Verifier {
	return &Verifier{clientID: clientID}
}

func (v *Verifier) Verify(ctx context.Context, token string) (*usecase.ProviderIdentity, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("google: token validation failed: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return nil, fmt.Errorf("google: token carries no email claim")
	}
	if name == "" {
		name = email
	}

	return &usecase.ProviderIdentity{
		Subject: payload.Subject,
		Email:   email,
		Name:    name,
	}, nil
}
