// Package metafields converts accumulated tag data into typed, namespaced
// upsert records for the customer profile store. The builder is
// taxonomy-agnostic: it serves any caller-supplied mapping, not only ones
// produced by the classification flow.
package metafields

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"personatag/internal/models"
)

// GenderKey is the one mapping key treated as a scalar metafield; every
// other entry becomes a list-typed record.
const GenderKey = "gender"

// Build converts a tag mapping (a JSON object of scalars or string lists)
// into one MetafieldRecord per entry. Records come out in document order:
// gjson walks the object as written, which keeps output deterministic for a
// given input.
func Build(mapping []byte) ([]models.MetafieldRecord, error) {
	parsed := gjson.ParseBytes(mapping)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("%w: metafields must be a JSON object", models.ErrInvalidRequest)
	}

	var records []models.MetafieldRecord
	var buildErr error
	parsed.ForEach(func(key, value gjson.Result) bool {
		rec, err := buildRecord(key.String(), value)
		if err != nil {
			buildErr = err
			return false
		}
		records = append(records, rec)
		return true
	})
	if buildErr != nil {
		return nil, buildErr
	}
	return records, nil
}

func buildRecord(key string, value gjson.Result) (models.MetafieldRecord, error) {
	if key == GenderKey {
		return models.MetafieldRecord{
			Namespace: models.NamespaceCustom,
			Key:       key,
			Type:      models.TypeSingleLineText,
			Value:     value.String(),
		}, nil
	}

	list := []string{}
	if value.IsArray() {
		for _, item := range value.Array() {
			list = append(list, item.String())
		}
	} else {
		list = append(list, value.String())
	}

	encoded, err := json.Marshal(list)
	if err != nil {
		return models.MetafieldRecord{}, fmt.Errorf("failed to encode metafield %q: %w", key, err)
	}

	return models.MetafieldRecord{
		Namespace: models.NamespacePersona,
		Key:       key,
		Type:      models.TypeListSingleLineText,
		Value:     string(encoded),
	}, nil
}
