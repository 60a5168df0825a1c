package google

import (
	"context"
	"errors"

	"github.com/election/api/internal/core/ports"
	"google.golang.org/api/idtoken"
)

// Verifier validates Google sign-in credentials against the configured OAuth
// client id.
type Verifier struct{}

func NewVerifier() ports.TokenVerifier {
	return &Verifier{}
}

func (v *Verifier) Verify(ctx context.Context, token string, clientID string) (*ports.TokenPayload, error) {
	payload, err := idtoken.Validate(ctx, token, clientID)
	if err != nil {
		return nil, err
	}

	email, ok := payload.Claims["email"].(string)
	if !ok {
		return nil, errors.New("email not found in claims")
	}

	// The name claim is optional; profiles without one are kept nameless.
	name, _ := payload.Claims["name"].(string)

	return &ports.TokenPayload{Email: email, Name: name}, nil
}
