package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation/pkg/shape"
)

func TestArray(t *testing.T) {
	t.Parallel()

	t.Run("type check follows the required policy", func(t *testing.T) {
		t.Parallel()
		list := shape.NewArray(shape.Required, shape.Number(shape.Required))

		res := list.ValidateSafe(shape.Undefined)
		require.False(t, res.Valid())
		assert.Equal(t, []string{shape.MessageRequired}, res.Invalid.Errors)

		res = list.ValidateSafe(nil)
		require.False(t, res.Valid())
		assert.Equal(t, []string{"Value must be an array!"}, res.Invalid.Errors)

		res = list.ValidateSafe(map[string]any{})
		require.False(t, res.Valid())
		assert.Equal(t, []string{"Value must be an array!"}, res.Invalid.Errors)

		res = shape.NewArray(shape.Optional, shape.Number(shape.Required)).ValidateSafe(shape.Undefined)
		assert.True(t, res.Valid())
	})

	t.Run("empty array is valid", func(t *testing.T) {
		t.Parallel()
		v, err := shape.NewArray(shape.Required, shape.Number(shape.Required)).Validate([]any{})
		require.NoError(t, err)
		assert.Equal(t, []any{}, v)
	})

	t.Run("own rule can reject empty arrays", func(t *testing.T) {
		t.Parallel()
		list := shape.NewArray(shape.Required, shape.Number(shape.Required),
			func(items []any, _ shape.Node) shape.Messages {
				if len(items) == 0 {
					return shape.Messages{"Length must be greater than 0!"}
				}
				return nil
			})
		res := list.ValidateSafe([]any{})
		require.False(t, res.Valid())
		assert.Equal(t, []string{"Length must be greater than 0!"}, res.Invalid.Errors)
	})

	t.Run("element failures are keyed by index", func(t *testing.T) {
		t.Parallel()
		list := shape.NewArray(shape.Required, shape.Number(shape.Required))
		res := list.ValidateSafe([]any{1.0, "two", 3.0, nil})

		require.False(t, res.Valid())
		assert.Equal(t, []string{"1", "3"}, res.Invalid.Keys())
		assert.Equal(t, []string{"Value must be a number!"}, res.Invalid.Index(1).Errors)
		assert.Equal(t, []string{"Value must be a number!"}, res.Invalid.Index(3).Errors)
		assert.Nil(t, res.Invalid.Index(0))
	})

	t.Run("typed slices are converted", func(t *testing.T) {
		t.Parallel()
		v, err := shape.NewArray(shape.Required, shape.String(shape.Required)).Validate([]string{"a", "", "c"})
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "", "c"}, v)
	})

	t.Run("element node is reused for every index", func(t *testing.T) {
		t.Parallel()
		element := shape.Number(shape.Required)
		list := shape.NewArray(shape.Required, element)
		_, err := list.Validate([]any{1.0, 2.0, 3.0})
		require.NoError(t, err)
		assert.Equal(t, 3.0, element.LastSubject())
		assert.Same(t, list, element.Parent())
	})

	t.Run("set element moves the parent link", func(t *testing.T) {
		t.Parallel()
		old := shape.Number(shape.Required)
		list := shape.NewArray(shape.Required, old)
		next := shape.String(shape.Required)

		require.NoError(t, list.SetElement(next))
		assert.Nil(t, old.Parent())
		assert.Same(t, list, next.Parent())
		assert.Same(t, next, list.Element())
		assert.ErrorIs(t, list.SetElement(nil), shape.ErrNilNode)

		v, err := list.Validate([]any{"x"})
		require.NoError(t, err)
		assert.Equal(t, []any{"x"}, v)
	})

	t.Run("nested arrays report nested indices", func(t *testing.T) {
		t.Parallel()
		matrix := shape.NewArray(shape.Required, shape.NewArray(shape.Required, shape.Int(shape.Required)))
		res := matrix.ValidateSafe([]any{[]any{1, 2}, []any{3, 4.5}})
		require.False(t, res.Valid())
		assert.Equal(t, []string{"Value must be an integer!"}, res.Invalid.Index(1).Index(1).Errors)
		assert.Equal(t, map[string][]string{"1.1": {"Value must be an integer!"}}, res.Invalid.Flatten())
	})
}
