package shape_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation/pkg/shape"
)

// [name, lastname, age]
func newPersonTuple() *shape.Tuple {
	return shape.NewTuple(shape.Required, shape.Items(
		shape.String(shape.Required),
		shape.String(shape.Required),
		shape.Number(shape.Required),
	), nil)
}

// [id, ...keywords]
func newPostTuple() *shape.Tuple {
	id := shape.String(shape.Required, func(v string, _ shape.Node) shape.Messages {
		if strings.HasPrefix(v, "PT") && len(v) == 10 {
			return nil
		}
		return shape.Messages{"Invalid ID format!"}
	})
	keywords := func(items []any, _ shape.Node) shape.Messages {
		count := max(len(items)-1, 0)
		switch {
		case count == 0:
			return shape.Messages{"At least 1 keyword is required!"}
		case count > 5:
			return shape.Messages{"A post can only contain up to 5 keywords!"}
		}
		return nil
	}
	return shape.NewTuple(shape.Required, shape.Items(id), shape.String(shape.Required), keywords)
}

func TestTuple_TypeCheck(t *testing.T) {
	t.Parallel()

	person := newPersonTuple()

	res := person.ValidateSafe(shape.Undefined)
	require.False(t, res.Valid())
	assert.Equal(t, []string{shape.MessageRequired}, res.Invalid.Errors)

	res = person.ValidateSafe("test")
	require.False(t, res.Valid())
	assert.Equal(t, []string{"Value must be an array!"}, res.Invalid.Errors)
	assert.Equal(t, "test", person.LastSubject())

	_, err := newPostTuple().Validate(nil)
	require.Error(t, err)
	assert.Equal(t, []string{"Value must be an array!"}, shape.ExtractValidationError(err).Invalid.Errors)
}

func TestTuple_Positions(t *testing.T) {
	t.Parallel()

	t.Run("valid tuple is returned element by element", func(t *testing.T) {
		t.Parallel()
		v, err := newPersonTuple().Validate([]any{"Jon", "Doe", 24.0})
		require.NoError(t, err)
		assert.Equal(t, []any{"Jon", "Doe", 24.0}, v)
	})

	t.Run("position failures are keyed by index", func(t *testing.T) {
		t.Parallel()
		res := newPersonTuple().ValidateSafe([]any{"Alfonso", "Valencia", "24"})
		require.False(t, res.Valid())
		assert.Nil(t, res.Invalid.Index(0))
		assert.Nil(t, res.Invalid.Index(1))
		assert.Equal(t, []string{"Value must be a number!"}, res.Invalid.Index(2).Errors)
	})

	t.Run("missing positions are absent", func(t *testing.T) {
		t.Parallel()
		res := newPersonTuple().ValidateSafe([]any{"Jon"})
		require.False(t, res.Valid())
		assert.Equal(t, []string{shape.MessageRequired}, res.Invalid.Index(1).Errors)
		assert.Equal(t, []string{shape.MessageRequired}, res.Invalid.Index(2).Errors)

		optional := shape.NewTuple(shape.Required, shape.Items(
			shape.String(shape.Required),
			shape.Number(shape.Optional),
		), nil)
		v, err := optional.Validate([]any{"Jon"})
		require.NoError(t, err)
		assert.Equal(t, []any{"Jon"}, v)
	})

	t.Run("extra elements are ignored without rest node", func(t *testing.T) {
		t.Parallel()
		v, err := newPersonTuple().Validate([]any{"Jon", "Doe", 24.0, false, "extra"})
		require.NoError(t, err)
		assert.Equal(t, []any{"Jon", "Doe", 24.0}, v)
	})
}

func TestTuple_Rest(t *testing.T) {
	t.Parallel()

	t.Run("rest elements are validated", func(t *testing.T) {
		t.Parallel()
		subject := []any{"PT83jd7490", "Amazing", "Validation", "Validate", "Easy"}
		v, err := newPostTuple().Validate(subject)
		require.NoError(t, err)
		assert.Equal(t, subject, v)
	})

	t.Run("validating twice yields identical output", func(t *testing.T) {
		t.Parallel()
		post := newPostTuple()
		subject := []any{"PT83jd7490", "Amazing", "Validation"}

		first := post.ValidateSafe(subject)
		second := post.ValidateSafe(subject)
		require.True(t, first.Valid())
		assert.Equal(t, first, second)
		assert.Equal(t, subject, first.Value)
	})

	t.Run("tuple and position messages are reported together", func(t *testing.T) {
		t.Parallel()
		res := newPostTuple().ValidateSafe([]any{"Not an ID"})
		require.False(t, res.Valid())
		assert.Equal(t, []string{"At least 1 keyword is required!"}, res.Invalid.Errors)
		assert.Equal(t, []string{"Invalid ID format!"}, res.Invalid.Index(0).Errors)
	})

	t.Run("too many keywords", func(t *testing.T) {
		t.Parallel()
		res := newPostTuple().ValidateSafe([]any{"PT83jd7490", "a", "b", "c", "d", "e", "f"})
		require.False(t, res.Valid())
		assert.Equal(t, []string{"A post can only contain up to 5 keywords!"}, res.Invalid.Errors)
		assert.Empty(t, res.Invalid.Children)
	})

	t.Run("rest failures use absolute indices", func(t *testing.T) {
		t.Parallel()
		res := newPostTuple().ValidateSafe([]any{"PT83jd7490", "ok", 3, "ok", false})
		require.False(t, res.Valid())
		assert.Equal(t, []string{"2", "4"}, res.Invalid.Keys())
		assert.Equal(t, []string{"Value must be a string!"}, res.Invalid.Index(4).Errors)
	})
}

func TestTuple_Accessors(t *testing.T) {
	t.Parallel()

	t.Run("set position moves the parent link", func(t *testing.T) {
		t.Parallel()
		person := newPersonTuple()
		old := person.Position(2)
		next := shape.Int(shape.Required)

		require.NoError(t, person.SetPosition(2, next))
		assert.Nil(t, old.Parent())
		assert.Same(t, person, next.Parent())
		assert.Same(t, next, person.Position(2))

		res := person.ValidateSafe([]any{"Jon", "Doe", 24.5})
		require.False(t, res.Valid())
		assert.Equal(t, []string{"Value must be an integer!"}, res.Invalid.Index(2).Errors)
	})

	t.Run("set position rejects out of range and nil", func(t *testing.T) {
		t.Parallel()
		person := newPersonTuple()
		assert.ErrorIs(t, person.SetPosition(3, shape.String(shape.Required)), shape.ErrIndexOutOfRange)
		assert.ErrorIs(t, person.SetPosition(-1, shape.String(shape.Required)), shape.ErrIndexOutOfRange)
		assert.ErrorIs(t, person.SetPosition(0, nil), shape.ErrNilNode)
		assert.Nil(t, person.Position(7))
		assert.Equal(t, 3, person.Len())
	})

	t.Run("set rest requires an existing rest node", func(t *testing.T) {
		t.Parallel()
		person := newPersonTuple()
		assert.Nil(t, person.Rest())
		assert.ErrorIs(t, person.SetRest(shape.String(shape.Required)), shape.ErrNoRestValidator)
		assert.Nil(t, person.Rest())

		post := newPostTuple()
		old := post.Rest()
		next := shape.Number(shape.Required)
		require.NoError(t, post.SetRest(next))
		assert.Nil(t, old.Parent())
		assert.Same(t, post, next.Parent())
		assert.ErrorIs(t, post.SetRest(nil), shape.ErrNilNode)

		v, err := post.Validate([]any{"PT83jd7490", 1.0, 2.0})
		require.NoError(t, err)
		assert.Equal(t, []any{"PT83jd7490", 1.0, 2.0}, v)
	})
}
