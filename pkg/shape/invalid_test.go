package shape_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation/pkg/shape"
)

func invalidOrder() *shape.InvalidFields {
	return shape.NewGroup(shape.Required, shape.Fields{
		"id": shape.String(shape.Required),
		"lines": shape.NewArray(shape.Required, shape.NewGroup(shape.Required, shape.Fields{
			"sku": shape.String(shape.Required),
			"qty": shape.Int(shape.Required),
		})),
	}, func(map[string]any, shape.Node) shape.Messages {
		return shape.Messages{"Order is locked!"}
	}).ValidateSafe(map[string]any{
		"lines": []any{map[string]any{"sku": "A-1", "qty": 1}, map[string]any{"qty": "2"}},
	}).Invalid
}

func TestInvalidFields(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		var nilFields *shape.InvalidFields
		assert.True(t, nilFields.Empty())
		assert.True(t, (&shape.InvalidFields{}).Empty())
		assert.False(t, (&shape.InvalidFields{Errors: []string{"x"}}).Empty())
		assert.Nil(t, nilFields.Field("a"))
		assert.Nil(t, nilFields.Keys())
	})

	t.Run("flatten uses dotted paths", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, map[string][]string{
			"":            {"Order is locked!"},
			"id":          {shape.MessageRequired},
			"lines.1.sku": {shape.MessageRequired},
			"lines.1.qty": {"Value must be an integer!"},
		}, invalidOrder().Flatten())
	})

	t.Run("string is sorted by path", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			"Order is locked!; id: Value required!; lines.1.qty: Value must be an integer!; lines.1.sku: Value required!",
			invalidOrder().String())
	})

	t.Run("json uses the reserved errors key", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(invalidOrder())
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"_errors": ["Order is locked!"],
			"id": {"_errors": ["Value required!"]},
			"lines": {"1": {
				"sku": {"_errors": ["Value required!"]},
				"qty": {"_errors": ["Value must be an integer!"]}
			}}
		}`, string(data))

		var decoded shape.InvalidFields
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, invalidOrder().Flatten(), decoded.Flatten())
		assert.Equal(t, []string{"Value required!"}, decoded.Field("lines").Index(1).Field("sku").Errors)
	})

	t.Run("invalid json is rejected", func(t *testing.T) {
		t.Parallel()
		var decoded shape.InvalidFields
		assert.Error(t, json.Unmarshal([]byte(`{"_errors": "nope"}`), &decoded))
	})

	t.Run("validation error message includes every path", func(t *testing.T) {
		t.Parallel()
		err := shape.NewValidationError(shape.MessageInvalid, invalidOrder())
		assert.Contains(t, err.Error(), "The following fields are incorrect: ")
		assert.Contains(t, err.Error(), "lines.1.sku: Value required!")
		assert.Equal(t, shape.MessageInvalid, shape.NewValidationError(shape.MessageInvalid, nil).Error())
	})
}
