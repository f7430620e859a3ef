package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/oauth2/clientcredentials"
)

// ManagementClient talks to the identity provider's management API using the
// client credentials grant. Token refresh is handled by the oauth2 transport.
type ManagementClient struct {
	client   *http.Client
	audience string
}

// ProviderProfile is the account record held by the identity provider
type ProviderProfile struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

// NewManagementClient creates a management API client from auth configuration
func NewManagementClient(cfg *AuthConfig) (*ManagementClient, error) {
	if !cfg.HasManagementAPI() {
		return nil, fmt.Errorf("management API credentials are not configured")
	}

	cc := &clientcredentials.Config{
		ClientID:     cfg.Management.ClientID,
		ClientSecret: cfg.Management.ClientSecret,
		TokenURL:     cfg.Management.TokenURL,
		EndpointParams: url.Values{
			"audience": {cfg.Management.Audience},
		},
	}

	return &ManagementClient{
		client:   cc.Client(context.Background()),
		audience: cfg.Management.Audience,
	}, nil
}

// GetProfile fetches the provider-side profile for a subject
func (m *ManagementClient) GetProfile(ctx context.Context, subject string) (*ProviderProfile, error) {
	endpoint := m.audience + "users/" + url.PathEscape(subject)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile request: %w", err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d for profile lookup", resp.StatusCode)
	}

	var profile ProviderProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode provider profile: %w", err)
	}
	return &profile, nil
}

// DeleteAccount removes a subject from the identity provider. Used when an
// admin deletes an account so the login stops working too.
func (m *ManagementClient) DeleteAccount(ctx context.Context, subject string) error {
	endpoint := m.audience + "users/" + url.PathEscape(subject)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create delete request: %w", err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete provider account: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d for account deletion", resp.StatusCode)
	}
	return nil
}
