package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation/pkg/shape"
)

const (
	goodSignup = `{"email": "ada@example.com", "password": "correct horse", "confirm": "correct horse", "age": 36}`
	badSignup  = "email: nope\npassword: short\nconfirm: other\nage: 9\n"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", goodSignup)
	bad := writeFile(t, dir, "bad.yaml", badSignup)
	broken := writeFile(t, dir, "broken.json", `{"email":`)

	t.Run("valid documents", func(t *testing.T) {
		out, err := run(t, "", "validate", "--shape", "signup", good)
		require.NoError(t, err)
		assert.Equal(t, "✓ "+good+"\n", out)
	})

	t.Run("invalid documents list every failure", func(t *testing.T) {
		out, err := run(t, "", "validate", "-s", "signup", good, bad)
		require.ErrorIs(t, err, errInvalid)
		assert.Contains(t, out, "✓ "+good)
		assert.Contains(t, out, "✗ "+bad)
		assert.Contains(t, out, "    age: Value must be at least 13!")
		assert.Contains(t, out, "    confirm: Passwords do not match!")
		assert.Contains(t, out, "    email: Value must be a valid email address!")
		assert.Contains(t, out, "    password: Value must be at least 8 characters long!")
	})

	t.Run("unreadable documents fail", func(t *testing.T) {
		out, err := run(t, "", "validate", "-s", "signup", broken)
		require.ErrorIs(t, err, errInvalid)
		assert.Contains(t, out, "! "+broken+": ")
	})

	t.Run("reads stdin", func(t *testing.T) {
		out, err := run(t, "- Ada\n- Lovelace\n- 36\n", "validate", "-s", "person")
		require.NoError(t, err)
		assert.Equal(t, "✓ -\n", out)

		out, err = run(t, "", "validate", "-s", "person", "-")
		require.ErrorIs(t, err, errInvalid)
		assert.Contains(t, out, "(root): Value required!")
	})

	t.Run("tuple failures are reported by index", func(t *testing.T) {
		out, err := run(t, "[\"PT83jd7490\", \"ok\", 3]", "validate", "-s", "post")
		require.ErrorIs(t, err, errInvalid)
		assert.Contains(t, out, "    2: Value must be a string!")
	})

	t.Run("json report", func(t *testing.T) {
		out, err := run(t, "", "validate", "-s", "signup", "--format", "json", good, bad)
		require.ErrorIs(t, err, errInvalid)

		var reports []struct {
			File   string               `json:"file"`
			Valid  bool                 `json:"valid"`
			Errors *shape.InvalidFields `json:"errors"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &reports))
		require.Len(t, reports, 2)
		assert.True(t, reports[0].Valid)
		assert.False(t, reports[1].Valid)
		assert.Nil(t, reports[0].Errors)
		assert.Equal(t, map[string][]string{
			"age":      {"Value must be at least 13!"},
			"confirm":  {"Passwords do not match!"},
			"email":    {"Value must be a valid email address!"},
			"password": {"Value must be at least 8 characters long!"},
		}, reports[1].Errors.Flatten())
	})

	t.Run("shape from environment", func(t *testing.T) {
		t.Setenv("SHAPECHECK_SHAPE", "signup")
		_, err := run(t, "", "validate", good)
		require.NoError(t, err)
	})

	t.Run("format from env file", func(t *testing.T) {
		envFile := writeFile(t, dir, ".env.test", "SHAPECHECK_FORMAT=json\n")
		t.Setenv("SHAPECHECK_FORMAT", "")
		require.NoError(t, os.Unsetenv("SHAPECHECK_FORMAT"))

		out, err := run(t, "", "--env-file", envFile, "validate", "-s", "signup", good)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "["))
	})

	t.Run("usage errors", func(t *testing.T) {
		t.Setenv("SHAPECHECK_SHAPE", "")
		_, err := run(t, "", "validate", good)
		assert.ErrorContains(t, err, "no shape")

		_, err = run(t, "", "validate", "-s", "signup", "-f", "xml", good)
		assert.ErrorContains(t, err, "unknown format")

		_, err = run(t, "", "validate", "-s", "nope", good)
		assert.ErrorContains(t, err, `unknown shape "nope"`)
		assert.NotErrorIs(t, err, errInvalid)
	})
}

func TestShapes(t *testing.T) {
	out, err := run(t, "", "shapes")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(builtins))
	for i, name := range builtinNames() {
		assert.True(t, strings.HasPrefix(lines[i], name+" "), lines[i])
		assert.True(t, strings.HasSuffix(lines[i], builtins[name].Description), lines[i])
	}

	_, err = run(t, "", "shapes", "extra")
	assert.Error(t, err)
}

func TestBuiltins(t *testing.T) {
	t.Parallel()

	for _, name := range builtinNames() {
		b := builtins[name]
		assert.NotEmpty(t, b.Description, name)
		assert.NotNil(t, b.New(), name)
	}

	t.Run("signup tags must be unique", func(t *testing.T) {
		t.Parallel()
		res := signupShape().ValidateSafe(map[string]any{
			"email": "ada@example.com", "password": "correct horse", "confirm": "correct horse",
			"tags": []any{"a", "a"},
		})
		require.False(t, res.Valid())
		assert.Equal(t, map[string][]string{"tags": {"Value must not contain duplicate items!"}}, res.Invalid.Flatten())
	})

	t.Run("pet owner", func(t *testing.T) {
		t.Parallel()
		owner := map[string]any{
			"name": "Alfonso", "lastname": "Valencia",
			"pets": []any{[]any{"Kira", "Dog", 4.0}},
		}
		v, err := shape.Validate(petOwnerShape(), owner)
		require.NoError(t, err)
		assert.Equal(t, owner, v)

		owner["pets"] = []any{[]any{"Milo", "dragon", -1.0}}
		res := petOwnerShape().ValidateSafe(owner)
		require.False(t, res.Valid())
		assert.Equal(t, map[string][]string{
			"pets.0.1": {"Value must be one of dog, cat, bird, fish!"},
			"pets.0.2": {"Value must be at least 0!"},
		}, res.Invalid.Flatten())
	})
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "shapecheck version "))
}
