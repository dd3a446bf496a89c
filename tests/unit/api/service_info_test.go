package api

import (
	"encoding/json"
	"io"
	"leopa/api/contexts"
	serviceInfo "leopa/api/models/constants/service-info"
	serviceInfoMvc "leopa/api/mvc/service-info"
	"leopa/api/tests/common"

	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func TestGetServiceInfo(t *testing.T) {
	cfg := common.InitConfig()
	catalog, calculator := common.InitServices(t, cfg)

	setUpEcho := func(method string, path string) (*contexts.LeopaContext, *httptest.ResponseRecorder) {
		e := echo.New()
		req := httptest.NewRequest(method, path, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		gc := &contexts.LeopaContext{
			Context:            c,
			Es7Client:          nil,
			Config:             cfg,
			CatalogService:     catalog,
			CalculationService: calculator,
		}
		return gc, rec
	}

	getJsonBody := func(rec *httptest.ResponseRecorder) map[string]interface{} {
		// - extract body bytes from response
		body, _ := io.ReadAll(rec.Body)
		// - unmarshal or decode the JSON to a declared empty interface.
		var bodyJson map[string]interface{}
		json.Unmarshal(body, &bodyJson)

		return bodyJson
	}

	t.Run("should return 200 status ok and service details", func(t *testing.T) {
		//set up
		gc, rec := setUpEcho(http.MethodGet, "/service-info")

		// perform
		serviceInfoMvc.GetServiceInfo(gc)

		// verify response status
		assert.Equal(t, http.StatusOK, rec.Code)

		// verify body
		json := getJsonBody(rec)

		assert.Equal(t, json["id"].(string), string(serviceInfo.SERVICE_ID))
		assert.Equal(t, json["name"].(string), string(serviceInfo.SERVICE_NAME))
		assert.Equal(t, json["description"].(string), string(serviceInfo.SERVICE_DESCRIPTION))
		assert.Equal(t, json["version"].(string), string(serviceInfo.SERVICE_VERSION))

		// - catalog and limits
		assert.Equal(t, float64(len(catalog.Snapshot())), json["catalog"].(map[string]interface{})["morphs"].(float64))
		assert.Equal(t, float64(cfg.Api.MaxLoci), json["limits"].(map[string]interface{})["maxLoci"].(float64))
		assert.Equal(t, cfg.Api.UnknownLocusPolicy, json["limits"].(map[string]interface{})["unknownLocusPolicy"].(string))
	})
}
