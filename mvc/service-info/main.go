package serviceInfo

import (
	"leopa/api/contexts"
	serviceInfo "leopa/api/models/constants/service-info"

	"net/http"

	"github.com/labstack/echo"
)

func GetServiceInfo(c echo.Context) error {
	gc := c.(*contexts.LeopaContext)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":          serviceInfo.SERVICE_ID,
		"name":        serviceInfo.SERVICE_NAME,
		"type":        serviceInfo.SERVICE_TYPE,
		"description": serviceInfo.SERVICE_DESCRIPTION,
		"contactUrl":  serviceInfo.SERVICE_CONTACT,
		"version":     serviceInfo.SERVICE_VERSION,
		"catalog": map[string]interface{}{
			"morphs":   len(gc.CatalogService.Snapshot()),
			"loadedAt": gc.CatalogService.LoadedAt(),
		},
		"limits": map[string]interface{}{
			"maxLoci":            gc.Config.Api.MaxLoci,
			"maxPossibleHetLoci": gc.Config.Api.MaxPossibleHetLoci,
			"unknownLocusPolicy": gc.Config.Api.UnknownLocusPolicy,
		},
	})
}
