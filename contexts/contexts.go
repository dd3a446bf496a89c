package contexts

import (
	"leopa/api/models"
	"leopa/api/models/constants"
	"leopa/api/services"

	"github.com/Jeffail/gabs"
	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  the catalog, the calculator and other variables
	LeopaContext struct {
		echo.Context
		Es7Client          *es7.Client
		Config             *models.Config
		CatalogService     *services.CatalogService
		CalculationService *services.CalculationService

		// request-scoped values set by middleware
		Inheritance     constants.Inheritance
		SearchTerm      string
		CalculationBody *gabs.Container
	}
)
