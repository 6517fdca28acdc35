package auth

import (
	"context"

	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"

	"github.com/Rejzi-dich/RytonStore/internal/config"
	"github.com/Rejzi-dich/RytonStore/internal/domain"
	apperrors "github.com/Rejzi-dich/RytonStore/internal/errors"
	"github.com/Rejzi-dich/RytonStore/internal/gh"
)

// OAuthFlow drives the GitHub authorization-code flow
type OAuthFlow struct {
	config *oauth2.Config
	github gh.Client
}

// NewOAuthFlow creates the OAuth flow from server configuration
func NewOAuthFlow(cfg *config.Config, client gh.Client) *OAuthFlow {
	return &OAuthFlow{
		config: &oauth2.Config{
			ClientID:     cfg.GitHubClientID,
			ClientSecret: cfg.GitHubClientSecret,
			RedirectURL:  cfg.GitHubRedirectURL,
			Scopes:       []string{"user", "repo"},
			Endpoint:     githuboauth.Endpoint,
		},
		github: client,
	}
}

// AuthCodeURL returns the GitHub authorize URL to redirect the browser to
func (f *OAuthFlow) AuthCodeURL(state string) string {
	return f.config.AuthCodeURL(state)
}

// CompleteLogin exchanges the callback code for an access token and fetches
// the authenticated user's profile. Unlike catalog reads, failures here are
// authentication errors and propagate.
func (f *OAuthFlow) CompleteLogin(ctx context.Context, code string) (*domain.Identity, error) {
	token, err := f.config.Exchange(ctx, code)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("could not exchange authorization code")
	}
	return f.github.FetchAuthenticatedUser(ctx, token.AccessToken)
}
