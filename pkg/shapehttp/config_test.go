package shapehttp_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation/pkg/config"
	"github.com/dmitrymomot/validation/pkg/shapehttp"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)

		cfg, err := shapehttp.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, shapehttp.DefaultConfig(), cfg)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("SHAPE_MAX_BODY_BYTES", "64")
		t.Setenv("SHAPE_ERROR_STATUS", "400")
		t.Setenv("SHAPE_LOG_FAILURES", "false")
		config.Reset()
		t.Cleanup(config.Reset)

		cfg, err := shapehttp.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, shapehttp.Config{MaxBodyBytes: 64, ErrorStatus: http.StatusBadRequest}, cfg)

		v, err := shapehttp.NewFromEnv(signupSchema)
		require.NoError(t, err)
		rec := post(v.Handler(http.NotFoundHandler()), "/signup", "application/json", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid environment", func(t *testing.T) {
		t.Setenv("SHAPE_ERROR_STATUS", "teapot")
		config.Reset()
		t.Cleanup(config.Reset)

		_, err := shapehttp.LoadConfig()
		assert.ErrorIs(t, err, config.ErrParsingConfig)

		_, err = shapehttp.NewFromEnv(signupSchema)
		assert.Error(t, err)
	})
}
