package main

import (
	"leopa/api/contexts"
	lam "leopa/api/middleware"
	"leopa/api/models"
	serviceInfo "leopa/api/models/constants/service-info"
	geneticsMvc "leopa/api/mvc/genetics"
	morphsMvc "leopa/api/mvc/morphs"
	serviceInfoMvc "leopa/api/mvc/service-info"
	"leopa/api/services"
	"leopa/api/utils"
	"time"

	"fmt"
	"net/http"
	"os"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n\n"+

		"\tMax Loci per Calculation : %d\n"+
		"\tMax Possible Het Loci per Calculation : %d\n"+
		"\tCalculation Concurrency Level : %d\n"+
		"\tUnknown Locus Policy : %s\n\n"+

		"\tCatalog File Path : %s\n"+
		"\tCatalog Refresh (minutes) : %d\n\n"+

		"\tElasticsearch Enabled : %t\n"+
		"\tElasticsearch Url : %s \n"+
		"\tElasticsearch Username : %s\n"+
		"\tElasticsearch Morph Index : %s\n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.Api.MaxLoci,
		cfg.Api.MaxPossibleHetLoci,
		cfg.Api.CalculationConcurrencyLevel,
		cfg.Api.UnknownLocusPolicy,
		cfg.Catalog.FilePath,
		cfg.Catalog.RefreshMinutes,
		cfg.Elasticsearch.Enabled,
		cfg.Elasticsearch.Url, cfg.Elasticsearch.Username,
		cfg.Elasticsearch.MorphIndex,
		cfg.Api.Port)
	// --

	// Instantiate Server
	e := echo.New()

	// Service Connections:
	// -- Elasticsearch (optional morph catalog store)
	var es *es7.Client
	if cfg.Elasticsearch.Enabled {
		es, err = utils.CreateEsConnection(cfg.Elasticsearch.Url, cfg.Elasticsearch.Username, cfg.Elasticsearch.Password)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}

	// Service Singletons
	catalog := services.NewCatalogService(es, &cfg)
	if err := catalog.Init(); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	defer catalog.Stop()

	calculator := services.NewCalculationService(catalog, &cfg)

	// Configure Server
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST},
	}))

	// -- Override handlers with "custom Leopa" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.LeopaContext{
				Context:            c,
				Es7Client:          es,
				Config:             &cfg,
				CatalogService:     catalog,
				CalculationService: calculator,
			}
			return h(cc)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		fmt.Printf("[%s] - Root hit!\n", time.Now())
		return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
	})

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Morph catalog
	e.GET("/morphs", morphsMvc.MorphsGet,
		// middleware
		lam.ValidateOptionalInheritanceAttribute,
		lam.CalibrateOptionalSearchTermAttribute)
	e.GET("/morphs/combinations", morphsMvc.CombinationsGet)
	e.GET("/morphs/combinations/:id/pairings", geneticsMvc.CombinationPairingsGet)
	e.GET("/morphs/:id", morphsMvc.MorphsGetById)

	// -- Genetics
	e.POST("/genetics/calculate", geneticsMvc.GeneticsCalculate,
		// middleware
		lam.MandateCalculationBody)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}
