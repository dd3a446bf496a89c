package middleware

import (
	"fmt"
	"io"
	"leopa/api/contexts"
	"net/http"

	"github.com/Jeffail/gabs"
	"github.com/labstack/echo"
)

// largest accepted calculation body, in bytes
const maxCalculationBodySize = 64 << 10

var parentKeys = []string{"parent1", "parent2"}

/*
Echo middleware to ensure the request body is a JSON calculation request:
an object whose optional `parent1` and `parent2` members are each either an array of
{"morphId", "status"} entries or an object of morphId -> status
*/
func MandateCalculationBody(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.LeopaContext)

		body, readErr := io.ReadAll(io.LimitReader(c.Request().Body, maxCalculationBodySize+1))
		if readErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Unable to read the request body!")
		}
		if len(body) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Missing calculation request body!")
		}
		if len(body) > maxCalculationBodySize {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Calculation request body is too large!")
		}

		parsed, parseErr := gabs.ParseJSON(body)
		if parseErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid JSON body: %s", parseErr))
		}
		if _, isObject := parsed.Data().(map[string]interface{}); !isObject {
			return echo.NewHTTPError(http.StatusBadRequest, "Calculation request body must be a JSON object!")
		}

		for _, key := range parentKeys {
			if !parsed.Exists(key) {
				// absent parent is all wild-type
				continue
			}
			switch parsed.Path(key).Data().(type) {
			case []interface{}, map[string]interface{}, nil:
			default:
				return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("'%s' must be an array of genotype entries or an object!", key))
			}
		}

		gc.CalculationBody = parsed
		return next(gc)
	}
}
