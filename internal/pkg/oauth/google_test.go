package oauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoogleService_NewStateIsRandom(t *testing.T) {
	svc := NewGoogleService("client-id", "client-secret", "http://localhost/callback", []string{"email"})

	first := svc.NewState()
	second := svc.NewState()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestGoogleService_AuthCodeURLCarriesState(t *testing.T) {
	svc := NewGoogleService("client-id", "client-secret", "http://localhost/callback", []string{"email"})

	url := svc.AuthCodeURL("state-123")

	assert.Contains(t, url, "state=state-123")
	assert.Contains(t, url, "client_id=client-id")
}
