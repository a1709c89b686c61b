package config

import (
	"errors"
	"fmt"
)

func (c *Config) Validate() error {
	if c.Auth.APISecret == "" {
		return errors.New("auth.api_secret is required (set API_SECRET)")
	}

	switch c.Classifier.Provider {
	case "openai", "gemini":
	default:
		return fmt.Errorf("classifier.provider must be \"openai\" or \"gemini\", got %q", c.Classifier.Provider)
	}
	if c.Classifier.Model == "" {
		return errors.New("classifier.model is required")
	}

	// Profile sync is optional; when a token is set the shop must be known.
	if c.Shopify.AdminToken != "" && c.Shopify.ShopDomain == "" {
		return errors.New("shopify.shop_domain is required when shopify.admin_token is set")
	}
	if c.Shopify.TimeoutSeconds < 0 {
		return errors.New("shopify.timeout_seconds must be non-negative")
	}

	return nil
}
