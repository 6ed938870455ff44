package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

// Profile is the subset of Google's userinfo response the login flow needs.
type Profile struct {
	GoogleID      string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
}

// GoogleService drives the OAuth2 authorization-code flow for Google login.
type GoogleService interface {
	// NewState returns a single-use random state for CSRF protection.
	NewState() string
	// AuthCodeURL is the Google consent page URL carrying the state.
	AuthCodeURL(state string) string
	// ExchangeCode trades the callback code for a token.
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)
	// FetchProfile loads the authenticated user's Google profile.
	FetchProfile(ctx context.Context, token *oauth2.Token) (Profile, error)
}

type GoogleServiceImpl struct {
	config *oauth2.Config
}

func NewGoogleService(clientID, clientSecret, redirectURL string, scopes []string) GoogleService {
	return &GoogleServiceImpl{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
	}
}

// NewState implements GoogleService.
func (g *GoogleServiceImpl) NewState() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// AuthCodeURL implements GoogleService.
func (g *GoogleServiceImpl) AuthCodeURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// ExchangeCode implements GoogleService.
func (g *GoogleServiceImpl) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	return g.config.Exchange(ctx, code)
}

// FetchProfile implements GoogleService.
func (g *GoogleServiceImpl) FetchProfile(ctx context.Context, token *oauth2.Token) (Profile, error) {
	client := g.config.Client(ctx, token)

	resp, err := client.Get(userinfoEndpoint)
	if err != nil {
		return Profile{}, fmt.Errorf("fetch google profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("fetch google profile: unexpected status %d", resp.StatusCode)
	}

	var p Profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("decode google profile: %w", err)
	}

	return p, nil
}
