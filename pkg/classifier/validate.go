package classifier

import (
	"encoding/json"
	"fmt"

	"personatag/internal/models"
	"personatag/internal/taxonomy"
)

// ValidateResponse parses the provider's raw completion and enforces the
// taxonomy. Parsing is strict: markdown fences or surrounding prose fail,
// they are not stripped. The raw text is embedded in the returned error for
// internal logging; handlers must not echo it to callers.
func ValidateResponse(raw string, genderFlow bool) (Result, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return Result{}, fmt.Errorf("%w: %v\nresponse content: %s", models.ErrMalformedResponse, err, raw)
	}

	expected := map[string]bool{
		taxonomy.Style.Field:    true,
		taxonomy.Fitting.Field:  true,
		taxonomy.Activity.Field: true,
	}
	if genderFlow {
		expected[taxonomy.Gender.Field] = true
	}

	for field := range fields {
		if !expected[field] {
			return Result{}, fmt.Errorf("%w: unexpected field %q", models.ErrSchemaViolation, field)
		}
	}
	for field := range expected {
		if _, ok := fields[field]; !ok {
			return Result{}, fmt.Errorf("%w: missing field %q", models.ErrSchemaViolation, field)
		}
	}

	var res Result
	var err error
	if res.StyleTags, err = validateTagList(taxonomy.Style, fields[taxonomy.Style.Field]); err != nil {
		return Result{}, err
	}
	if res.FittingTags, err = validateTagList(taxonomy.Fitting, fields[taxonomy.Fitting.Field]); err != nil {
		return Result{}, err
	}
	if res.ActivityTags, err = validateTagList(taxonomy.Activity, fields[taxonomy.Activity.Field]); err != nil {
		return Result{}, err
	}

	if genderFlow {
		var gender string
		if err := json.Unmarshal(fields[taxonomy.Gender.Field], &gender); err != nil {
			return Result{}, fmt.Errorf("%w: field %q must be a string", models.ErrSchemaViolation, taxonomy.Gender.Field)
		}
		if !taxonomy.Gender.Contains(gender) {
			return Result{}, fmt.Errorf("%w: %s: value %q is not in the allowed set", models.ErrTaxonomyViolation, taxonomy.Gender.Name, gender)
		}
		res.Gender = gender
	}

	return res, nil
}

// validateTagList checks one category's list for taxonomy membership
// (case-sensitive) and cardinality bounds. Provider ordering is preserved.
func validateTagList(cat taxonomy.Category, raw json.RawMessage) ([]string, error) {
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, fmt.Errorf("%w: field %q must be a list of strings", models.ErrSchemaViolation, cat.Field)
	}
	if len(tags) < cat.MinSelect || len(tags) > cat.MaxSelect {
		return nil, fmt.Errorf("%w: %s: expected %d to %d tags, got %d",
			models.ErrTaxonomyViolation, cat.Name, cat.MinSelect, cat.MaxSelect, len(tags))
	}
	for _, tag := range tags {
		if !cat.Contains(tag) {
			return nil, fmt.Errorf("%w: %s: value %q is not in the allowed set",
				models.ErrTaxonomyViolation, cat.Name, tag)
		}
	}
	return tags, nil
}
