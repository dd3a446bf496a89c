package morphs

import (
	"fmt"
	"net/http"
	"time"

	"leopa/api/contexts"
	"leopa/api/models/dtos"
	errorDtos "leopa/api/models/dtos/errors"

	"github.com/labstack/echo"
)

func MorphsGet(c echo.Context) error {
	fmt.Printf("[%s] - MorphsGet hit!\n", time.Now())
	gc := c.(*contexts.LeopaContext)

	results := gc.CatalogService.Query(gc.Inheritance, gc.SearchTerm)

	return c.JSON(http.StatusOK, dtos.MorphsResponseDto{
		Status:  http.StatusOK,
		Message: "Success",
		Type:    string(gc.Inheritance),
		Term:    gc.SearchTerm,
		Count:   len(results),
		Results: results,
	})
}

func MorphsGetById(c echo.Context) error {
	fmt.Printf("[%s] - MorphsGetById hit!\n", time.Now())
	gc := c.(*contexts.LeopaContext)

	id := c.Param("id")
	morph, ok := gc.CatalogService.GetMorph(id)
	if !ok {
		return c.JSON(http.StatusNotFound, errorDtos.CreateSimpleNotFound(fmt.Sprintf("Morph %s not found", id)))
	}

	return c.JSON(http.StatusOK, morph)
}

func CombinationsGet(c echo.Context) error {
	fmt.Printf("[%s] - CombinationsGet hit!\n", time.Now())
	gc := c.(*contexts.LeopaContext)

	results := gc.CatalogService.Combinations()

	return c.JSON(http.StatusOK, dtos.CombinationsResponseDto{
		Status:  http.StatusOK,
		Message: "Success",
		Count:   len(results),
		Results: results,
	})
}
