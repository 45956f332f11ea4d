package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation/pkg/shape"
	"github.com/dmitrymomot/validation/pkg/validator"
)

func newSignup() *validator.Group {
	return validator.NewGroup(map[string]validator.Node{
		"email": validator.New(nil, validator.IsString(validator.Required)),
		"tags": validator.NewList([]validator.Node{
			validator.New("go", isStr),
			validator.New(3, isStr),
		}, func(node validator.Node) []string {
			if len(node.Value().([]any)) > 1 {
				return []string{"Too many tags!"}
			}
			return nil
		}),
		"remember": validator.New(true, validator.IsBoolean(validator.Optional)),
	})
}

func TestCollectErrors(t *testing.T) {
	t.Parallel()

	t.Run("mirrors the failing subtree", func(t *testing.T) {
		t.Parallel()
		g := newSignup()
		g.Validate()

		invalid := validator.CollectErrors(g)
		assert.Empty(t, invalid.Errors)
		assert.Equal(t, []string{"email", "tags"}, invalid.Keys())
		assert.Equal(t, []string{"Value required!"}, invalid.Field("email").Errors)
		assert.Equal(t, []string{"Too many tags!"}, invalid.Field("tags").Errors)
		assert.Equal(t, []string{"Value is not a string!"}, invalid.Field("tags").Index(1).Errors)
		assert.False(t, invalid.Field("tags").Has("0"))
	})

	t.Run("valid tree is empty", func(t *testing.T) {
		t.Parallel()
		v := validator.New("ok", isStr)
		v.Validate()
		assert.True(t, validator.CollectErrors(v).Empty())
		assert.True(t, validator.CollectErrors(nil).Empty())
	})
}

func TestCheck(t *testing.T) {
	t.Parallel()

	t.Run("returns flat errors", func(t *testing.T) {
		t.Parallel()
		err := validator.Check(newSignup())
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.True(t, validator.IsValidationError(err))

		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"email", "tags", "tags.1"}, errs.Fields())
		assert.Equal(t, []string{"Value required!"}, errs.Get("email"))
		assert.True(t, errs.Has("tags.1"))
		assert.False(t, errs.Has("remember"))
		assert.Equal(t,
			"validation failed: email: Value required!; tags: Too many tags!; tags.1: Value is not a string!",
			err.Error())
	})

	t.Run("returns nil for a valid tree", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Check(newNames()))
	})
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty list has the default message", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		assert.True(t, errs.IsEmpty())
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("root messages have no path", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Message: "Object cannot be null!"})
		errs.Add(validator.ValidationError{Field: "name", Message: "Value required!"})
		assert.Equal(t, "validation failed: Object cannot be null!; name: Value required!", errs.Error())
		assert.Equal(t, []string{"", "name"}, errs.Fields())
	})

	t.Run("extracts shape errors", func(t *testing.T) {
		t.Parallel()
		node := shape.Object(shape.Required, shape.Fields{"name": shape.String(shape.Required)})
		_, err := node.Validate(map[string]any{})
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, validator.ValidationErrors{{Field: "name", Message: "Value required!"}}, errs)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("ignores other errors", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
	})
}
