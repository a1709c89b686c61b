package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"personatag/internal/metafields"
	"personatag/internal/models"
)

// ProfileStore is the profile-store boundary consumed by the sync flow.
type ProfileStore interface {
	UpdateCustomerMetafields(ctx context.Context, customerID string, records []models.MetafieldRecord) (json.RawMessage, error)
}

// ProfileSyncService converts a tag mapping into metafield records and
// pushes them to the profile store.
type ProfileSyncService struct {
	Store ProfileStore
}

func NewProfileSyncService(store ProfileStore) *ProfileSyncService {
	return &ProfileSyncService{Store: store}
}

// Sync builds the metafield payload from mapping (a JSON object) and
// upserts it on the given customer. The store's mutation result is passed
// through opaquely.
func (s *ProfileSyncService) Sync(ctx context.Context, customerID string, mapping []byte) (json.RawMessage, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, fmt.Errorf("%w: customerId is required", models.ErrInvalidRequest)
	}
	if s.Store == nil {
		return nil, fmt.Errorf("%w: no profile store configured", models.ErrStore)
	}

	records, err := metafields.Build(mapping)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: metafields must contain at least one entry", models.ErrInvalidRequest)
	}

	log.WithFields(log.Fields{
		"customer_id": customerID,
		"records":     len(records),
	}).Debug("Syncing customer metafields")

	return s.Store.UpdateCustomerMetafields(ctx, customerID, records)
}
