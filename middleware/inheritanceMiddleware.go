package middleware

import (
	"fmt"
	"leopa/api/contexts"
	"leopa/api/models/constants/inheritance"
	"net/http"
	"strings"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure an optionally provided `type` HTTP query parameter is a known inheritance type
*/
func ValidateOptionalInheritanceAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.LeopaContext)

		// check for type query parameter
		typeQP := c.QueryParam("type")
		if len(typeQP) > 0 && strings.ToLower(typeQP) != "all" {
			if !inheritance.IsKnown(typeQP) {
				// if the type was invalid, return an error
				return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Unknown morph type %s! Use recessive, dominant or codominant", typeQP))
			}
			gc.Inheritance = inheritance.CastToInheritance(typeQP)
		}

		return next(gc)
	}
}

/*
Echo middleware to prepare the context for an optionally provided `q` search term HTTP query parameter
*/
func CalibrateOptionalSearchTermAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.LeopaContext)
		gc.SearchTerm = strings.TrimSpace(c.QueryParam("q"))
		return next(gc)
	}
}
