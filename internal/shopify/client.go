// Package shopify is the profile-store boundary: it pushes metafield
// upserts to the Shopify Admin GraphQL API via the customerUpdate mutation.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"personatag/internal/models"
)

const customerUpdateMutation = `mutation updateCustomerMetafields($input: CustomerInput!) {
  customerUpdate(input: $input) {
    customer {
      id
      metafields(first: 20) {
        edges {
          node {
            namespace
            key
            value
          }
        }
      }
    }
    userErrors {
      field
      message
    }
  }
}`

// Config holds the Admin API connection settings.
type Config struct {
	ShopDomain  string // e.g. "example.myshopify.com"
	APIVersion  string // e.g. "2024-04"
	AccessToken string
	Timeout     time.Duration

	// Endpoint overrides the URL derived from ShopDomain/APIVersion.
	// Used by tests.
	Endpoint string
}

// Client talks to one shop's Admin GraphQL endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

// NewClient creates a profile-store client. A missing access token disables
// the client instead of failing startup.
func NewClient(cfg Config) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s/admin/api/%s/graphql.json", cfg.ShopDomain, cfg.APIVersion)
	}
	if cfg.AccessToken == "" {
		log.Warn("Shopify access token not provided. Profile sync will be disabled.")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      cfg.AccessToken,
	}
}

type userError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// UpdateCustomerMetafields upserts the given records on one customer and
// returns the store's mutation result opaquely. User-level errors reported
// by the store are surfaced, not retried.
func (c *Client) UpdateCustomerMetafields(ctx context.Context, customerID string, records []models.MetafieldRecord) (json.RawMessage, error) {
	if c.token == "" {
		return nil, fmt.Errorf("%w: shopify client is not initialized (missing access token)", models.ErrStore)
	}

	body, err := json.Marshal(map[string]interface{}{
		"query": customerUpdateMutation,
		"variables": map[string]interface{}{
			"input": map[string]interface{}{
				"id":         "gid://shopify/Customer/" + customerID,
				"metafields": records,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode mutation: %v", models.ErrStore, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStore, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", models.ErrStore, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", models.ErrStore, resp.StatusCode)
	}

	var envelope struct {
		Data   map[string]json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", models.ErrStore, err)
	}
	if len(envelope.Errors) > 0 {
		return nil, fmt.Errorf("%w: graphql error: %s", models.ErrStore, envelope.Errors[0].Message)
	}

	result, ok := envelope.Data["customerUpdate"]
	if !ok {
		return nil, fmt.Errorf("%w: response missing customerUpdate payload", models.ErrStore)
	}

	var mutation struct {
		UserErrors []userError `json:"userErrors"`
	}
	if err := json.Unmarshal(result, &mutation); err != nil {
		return nil, fmt.Errorf("%w: failed to decode mutation result: %v", models.ErrStore, err)
	}
	if len(mutation.UserErrors) > 0 {
		log.Warnf("customerUpdate returned %d user error(s) for customer %s", len(mutation.UserErrors), customerID)
		return nil, fmt.Errorf("%w: %s", models.ErrStore, mutation.UserErrors[0].Message)
	}

	return result, nil
}
