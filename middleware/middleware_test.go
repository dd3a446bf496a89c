package middleware

import (
	"net/http"
	"strings"
	"testing"

	"leopa/api/contexts"
	"leopa/api/models/constants/inheritance"
	"leopa/api/tests/common"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireHttpError(t *testing.T, err error, code int) {
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected an echo.HTTPError, got %T", err)
	assert.Equal(t, code, httpErr.Code)
}

func TestValidateOptionalInheritanceAttribute(t *testing.T) {
	cfg := common.InitConfig()

	tests := []struct {
		target   string
		expected string
		code     int
	}{
		{target: "/morphs", expected: ""},
		{target: "/morphs?type=all", expected: ""},
		{target: "/morphs?type=recessive", expected: "recessive"},
		{target: "/morphs?type=Co-Dominant", expected: "codominant"},
		{target: "/morphs?type=polygenic", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			gc, _ := common.NewLeopaContext(t, cfg, http.MethodGet, tt.target, "")

			called := false
			err := ValidateOptionalInheritanceAttribute(func(c echo.Context) error {
				called = true
				assert.Equal(t, tt.expected, string(c.(*contexts.LeopaContext).Inheritance))
				return nil
			})(gc)

			if tt.code != 0 {
				requireHttpError(t, err, tt.code)
				assert.False(t, called)
				return
			}
			require.NoError(t, err)
			assert.True(t, called)
		})
	}
}

func TestCalibrateOptionalSearchTermAttribute(t *testing.T) {
	cfg := common.InitConfig()
	gc, _ := common.NewLeopaContext(t, cfg, http.MethodGet, "/morphs?q=+snow+", "")

	err := CalibrateOptionalSearchTermAttribute(func(c echo.Context) error {
		assert.Equal(t, "snow", c.(*contexts.LeopaContext).SearchTerm)
		return nil
	})(gc)
	require.NoError(t, err)
	assert.Equal(t, inheritance.Unknown, gc.Inheritance)
}

func TestMandateCalculationBody(t *testing.T) {
	cfg := common.InitConfig()

	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "array and object parents", body: `{"parent1": [{"morphId": "eclipse", "status": "het"}], "parent2": {"eclipse": "het"}}`},
		{name: "absent parents", body: `{}`},
		{name: "null parent", body: `{"parent1": null}`},
		{name: "empty body", body: "", code: http.StatusBadRequest},
		{name: "invalid json", body: `{"parent1": [`, code: http.StatusBadRequest},
		{name: "not an object", body: `[1, 2]`, code: http.StatusBadRequest},
		{name: "parent is a string", body: `{"parent1": "eclipse"}`, code: http.StatusBadRequest},
		{name: "too large", body: `{"pad": "` + strings.Repeat("x", maxCalculationBodySize) + `"}`, code: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gc, _ := common.NewLeopaContext(t, cfg, http.MethodPost, "/genetics/calculate", tt.body)

			err := MandateCalculationBody(func(c echo.Context) error {
				assert.NotNil(t, c.(*contexts.LeopaContext).CalculationBody)
				return nil
			})(gc)

			if tt.code != 0 {
				requireHttpError(t, err, tt.code)
				return
			}
			require.NoError(t, err)
		})
	}
}
