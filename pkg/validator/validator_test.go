package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validation/pkg/validator"
)

func isStr(node validator.Node) []string {
	if _, ok := node.Value().(string); !ok {
		return []string{"Value is not a string!"}
	}
	return nil
}

func TestValidator(t *testing.T) {
	t.Parallel()

	t.Run("starts valid before validation", func(t *testing.T) {
		t.Parallel()
		v := validator.New(42, isStr)
		assert.True(t, v.Valid())
		assert.Empty(t, v.Errors())
		assert.Equal(t, 42, v.Value())
		assert.Nil(t, v.Parent())
	})

	t.Run("validate refreshes errors", func(t *testing.T) {
		t.Parallel()
		v := validator.New(42, isStr)
		v.Validate()
		assert.False(t, v.Valid())
		assert.True(t, v.Invalid())
		assert.Equal(t, []string{"Value is not a string!"}, v.Errors())

		assert.NoError(t, v.SetValue("text"))
		v.Validate()
		assert.True(t, v.Valid())
		assert.Empty(t, v.Errors())
	})

	t.Run("keeps every message of a function", func(t *testing.T) {
		t.Parallel()
		v := validator.New("", func(validator.Node) []string {
			return []string{"first", "", "second"}
		})
		v.AddFunc(isStr)
		v.Validate()
		assert.Equal(t, []string{"first", "second"}, v.Errors())
	})
}

func TestTypeFuncs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fn    validator.Func
		value any
		want  []string
	}{
		{"string accepts string", validator.IsString(validator.Required), "a", nil},
		{"string rejects number", validator.IsString(validator.Required), 1, []string{"Value must be a string!"}},
		{"required nil", validator.IsString(validator.Required), nil, []string{"Value required!"}},
		{"nil predicate means required", validator.IsBoolean(nil), nil, []string{"Value required!"}},
		{"optional nil", validator.IsNumber(validator.Optional), nil, nil},
		{"number accepts int", validator.IsNumber(validator.Required), 3, nil},
		{"number accepts float", validator.IsNumber(validator.Required), 3.5, nil},
		{"number rejects string", validator.IsNumber(validator.Required), "3", []string{"Value must be a number!"}},
		{"boolean accepts false", validator.IsBoolean(validator.Required), false, nil},
		{"boolean rejects zero", validator.IsBoolean(validator.Optional), 0, []string{"Value must be a boolean!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := validator.New(tt.value, tt.fn)
			v.Validate()
			assert.Equal(t, tt.want, v.Errors())
		})
	}
}

func TestRequiredWithout(t *testing.T) {
	t.Parallel()

	contact := validator.NewGroup(map[string]validator.Node{
		"email": validator.New(nil, validator.IsString(validator.RequiredWithout("phone"))),
		"phone": validator.New(nil, validator.IsString(validator.RequiredWithout("email"))),
	})

	contact.Validate()
	assert.False(t, contact.Valid())

	assert.NoError(t, contact.PatchValue("phone", "+1 555 0100"))
	contact.Validate()
	assert.True(t, contact.Valid())

	detached := validator.New(nil, validator.IsString(validator.RequiredWithout("phone")))
	detached.Validate()
	assert.Equal(t, []string{"Value required!"}, detached.Errors())
}
