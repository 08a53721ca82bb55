package adapthttp

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OIDCConfig holds the optional SSO provider wiring. A zero value means SSO
// is disabled and only password login is offered.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config oauth2.Config
}

// NewOIDCConfig discovers the issuer and prepares the auth-code flow.
func NewOIDCConfig(ctx context.Context, issuerURL, clientID, clientSecret, redirectURL string) (OIDCConfig, error) {
	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return OIDCConfig{}, err
	}
	return OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "email"},
		},
	}, nil
}
