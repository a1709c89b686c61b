package metafields

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personatag/internal/models"
)

func TestBuildGenderAndListEntries(t *testing.T) {
	mapping := []byte(`{"gender":"Female","style":["Minimal & Modern"]}`)

	records, err := Build(mapping)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, models.MetafieldRecord{
		Namespace: "custom",
		Key:       "gender",
		Type:      "single_line_text_field",
		Value:     "Female",
	}, records[0])

	assert.Equal(t, models.MetafieldRecord{
		Namespace: "persona",
		Key:       "style",
		Type:      "list.single_line_text_field",
		Value:     `["Minimal & Modern"]`,
	}, records[1])
}

func TestBuildPreservesInputOrder(t *testing.T) {
	mapping := []byte(`{"style":["A"],"activity":["B","C"],"gender":"Male","fitting":["D"]}`)

	records, err := Build(mapping)
	require.NoError(t, err)
	require.Len(t, records, 4)

	keys := make([]string, len(records))
	for i, r := range records {
		keys[i] = r.Key
	}
	assert.Equal(t, []string{"style", "activity", "gender", "fitting"}, keys)
}

func TestBuildScalarWrappedIntoList(t *testing.T) {
	records, err := Build([]byte(`{"style":"Minimal & Modern"}`))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "persona", records[0].Namespace)
	assert.Equal(t, models.TypeListSingleLineText, records[0].Type)
	assert.Equal(t, `["Minimal & Modern"]`, records[0].Value)
}

func TestBuildListValuesRoundTrip(t *testing.T) {
	mapping := []byte(`{"activity":["Work / Office","Travel / On-the-Go","Weekend Casual"]}`)

	records, err := Build(mapping)
	require.NoError(t, err)
	require.Len(t, records, 1)

	var decoded []string
	require.NoError(t, json.Unmarshal([]byte(records[0].Value), &decoded))
	assert.Equal(t, []string{"Work / Office", "Travel / On-the-Go", "Weekend Casual"}, decoded)
}

func TestBuildIsTaxonomyAgnostic(t *testing.T) {
	// Arbitrary keys and values pass through; validation belongs upstream.
	records, err := Build([]byte(`{"favorite_color":"teal"}`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "favorite_color", records[0].Key)
	assert.Equal(t, `["teal"]`, records[0].Value)
}

func TestBuildRejectsNonObject(t *testing.T) {
	for _, in := range []string{`[1,2,3]`, `"text"`, `not json`} {
		_, err := Build([]byte(in))
		assert.ErrorIs(t, err, models.ErrInvalidRequest, "input: %s", in)
	}
}

func TestBuildEmptyObject(t *testing.T) {
	records, err := Build([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, records)
}
